package service

import (
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/freeeve/warzone/pkg/warzone"
)

// Broadcaster fans game log entries out to every attached observer: the
// text game log, the Redis publisher, test recorders.
type Broadcaster struct {
	mu    sync.RWMutex
	sinks []warzone.Observer
}

// NewBroadcaster creates a Broadcaster. Nil observers are ignored.
func NewBroadcaster(sinks ...warzone.Observer) *Broadcaster {
	b := &Broadcaster{}
	for _, s := range sinks {
		b.Attach(s)
	}
	return b
}

// Attach adds an observer.
func (b *Broadcaster) Attach(o warzone.Observer) {
	if o == nil {
		return
	}
	b.mu.Lock()
	b.sinks = append(b.sinks, o)
	b.mu.Unlock()
}

// Notify delivers the entry to every observer in attachment order.
func (b *Broadcaster) Notify(entry string) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	for _, s := range b.sinks {
		s.Notify(entry)
	}
}

// LogObserver writes entries to the zerolog global logger at debug level,
// tagged with the id MatchID returns at the time of the entry.
type LogObserver struct {
	MatchID func() string
}

func (o LogObserver) Notify(entry string) {
	id := ""
	if o.MatchID != nil {
		id = o.MatchID()
	}
	log.Debug().Str("matchId", id).Msg(entry)
}

// Tagged prefixes every entry with Tag before passing it on, so games
// sharing one sink stay apart.
type Tagged struct {
	Tag  string
	Sink warzone.Observer
}

func (t Tagged) Notify(entry string) {
	t.Sink.Notify("[" + t.Tag + "] " + entry)
}

// Recorder keeps every entry in memory.
type Recorder struct {
	mu      sync.Mutex
	entries []string
}

func (r *Recorder) Notify(entry string) {
	r.mu.Lock()
	r.entries = append(r.entries, entry)
	r.mu.Unlock()
}

// Entries returns a copy of the recorded entries.
func (r *Recorder) Entries() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.entries...)
}
