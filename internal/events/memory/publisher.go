package memory

import (
	"context"
	"sync"

	interfaces "github.com/sheikh-saqib/cashconnect-ledger/internal/interfaces"
)

// Message is one published event as seen by a subscriber.
type Message struct {
	Topic string `json:"topic"`
	Key   string `json:"key"`
	Event any    `json:"event"`
}

// Publisher keeps published events in process so callers can poll them by offset.
type Publisher struct {
	mu       sync.Mutex
	messages []Message
	limit    int
	dropped  int // messages evicted from the front once limit is reached
}

// NewPublisher retains at most limit messages; zero keeps everything.
func NewPublisher(limit int) *Publisher {
	return &Publisher{limit: limit}
}

func (p *Publisher) Publish(ctx context.Context, topic string, key string, event any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	p.messages = append(p.messages, Message{Topic: topic, Key: key, Event: event})
	if p.limit > 0 && len(p.messages) > p.limit {
		over := len(p.messages) - p.limit
		p.messages = append([]Message(nil), p.messages[over:]...)
		p.dropped += over
	}
	return nil
}

// Since returns the messages published at or after offset together with the
// next offset to poll from. Offsets count every message ever published.
func (p *Publisher) Since(offset int) ([]Message, int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	next := p.dropped + len(p.messages)
	start := max(offset-p.dropped, 0)
	if start >= len(p.messages) {
		return []Message{}, next
	}
	out := make([]Message, len(p.messages)-start)
	copy(out, p.messages[start:])
	return out, next
}

var _ interfaces.EventPublisher = (*Publisher)(nil)
