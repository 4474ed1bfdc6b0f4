package pubsub

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
)

// PublishTimeout bounds each Redis round trip made from Notify.
const PublishTimeout = 2 * time.Second

// Publisher forwards game log entries to Redis. It satisfies
// warzone.Observer; the match id is read on every entry so one Publisher
// follows an engine across replays.
type Publisher struct {
	client  *Client
	matchID func() string
}

// NewPublisher creates a publisher. matchID may return "" before a match
// exists; those entries go to the lobby channel.
func NewPublisher(c *Client, matchID func() string) *Publisher {
	return &Publisher{client: c, matchID: matchID}
}

func (p *Publisher) Notify(entry string) {
	ctx, cancel := context.WithTimeout(context.Background(), PublishTimeout)
	defer cancel()
	id := p.matchID()
	if err := p.client.PublishEntry(ctx, id, entry); err != nil {
		log.Warn().Err(err).Str("matchId", id).Msg("Publish failed")
	}
}
