package pubsub

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// HistoryLimit caps the replay list kept per match.
const HistoryLimit = 1000

// LobbyID stands in for the match id before a match exists.
const LobbyID = "lobby"

// Key patterns for match data.
func channelKey(matchID string) string { return "warzone:" + orLobby(matchID) + ":log" }
func historyKey(matchID string) string { return "warzone:" + orLobby(matchID) + ":history" }
func resultKey(matchID string) string  { return "warzone:" + orLobby(matchID) + ":result" }

func orLobby(matchID string) string {
	if matchID == "" {
		return LobbyID
	}
	return matchID
}

// PublishEntry sends an entry to the match channel and appends it to the
// capped history list.
func (c *Client) PublishEntry(ctx context.Context, matchID, entry string) error {
	_, err := c.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Publish(ctx, channelKey(matchID), entry)
		pipe.RPush(ctx, historyKey(matchID), entry)
		pipe.LTrim(ctx, historyKey(matchID), -HistoryLimit, -1)
		return nil
	})
	if err != nil {
		return fmt.Errorf("publish entry: %w", err)
	}
	return nil
}

// History returns the stored entries of a match, oldest first.
func (c *Client) History(ctx context.Context, matchID string) ([]string, error) {
	entries, err := c.rdb.LRange(ctx, historyKey(matchID), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("read history: %w", err)
	}
	return entries, nil
}

// SetResult stores the JSON summary of a finished match.
func (c *Client) SetResult(ctx context.Context, matchID string, result any) error {
	data, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	return c.rdb.Set(ctx, resultKey(matchID), data, 0).Err()
}

// GetResult retrieves a stored match summary, or nil if there is none.
func (c *Client) GetResult(ctx context.Context, matchID string) (json.RawMessage, error) {
	data, err := c.rdb.Get(ctx, resultKey(matchID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get result: %w", err)
	}
	return json.RawMessage(data), nil
}

// Subscribe streams entries published for a match until ctx is done.
func (c *Client) Subscribe(ctx context.Context, matchID string) <-chan string {
	sub := c.rdb.Subscribe(ctx, channelKey(matchID))
	out := make(chan string)
	go func() {
		defer close(out)
		defer sub.Close()
		ch := sub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-ch:
				if !ok {
					return
				}
				select {
				case out <- msg.Payload:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return out
}

// DeleteMatch removes all Redis data for a match.
func (c *Client) DeleteMatch(ctx context.Context, matchID string) error {
	return c.rdb.Del(ctx, historyKey(matchID), resultKey(matchID)).Err()
}
