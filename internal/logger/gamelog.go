package logger

import (
	"io"
	"sync"

	"github.com/rs/zerolog/log"
)

// GameLog writes game log entries, one per line, to a rotated text file.
// It satisfies warzone.Observer.
type GameLog struct {
	mu sync.Mutex
	w  io.WriteCloser
}

// NewGameLog opens (or appends to) the game log at path.
func NewGameLog(path string) *GameLog {
	return &GameLog{w: rotating(path)}
}

// Notify appends one entry. Write failures are logged, never returned:
// the game goes on without its log.
func (g *GameLog) Notify(entry string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.w == nil {
		return
	}
	if _, err := io.WriteString(g.w, entry+"\n"); err != nil {
		log.Warn().Err(err).Msg("Game log write failed")
	}
}

// Close flushes and closes the file. Later entries are dropped.
func (g *GameLog) Close() error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.w == nil {
		return nil
	}
	err := g.w.Close()
	g.w = nil
	return err
}
