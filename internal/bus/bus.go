package bus

import (
	"sync"

	"go.uber.org/zap"
)

const (
	TopicCartUpdated     = "cart.updated"
	TopicWishlistUpdated = "wishlist.updated"
)

// Event carries the new aggregate count for a profile's store, the same
// payload the header badges consume.
type Event struct {
	Topic     string
	ProfileID string
	Count     int
}

// Bus is an in-process publish/subscribe channel between the state stores and
// whatever surfaces render their counts. Publish never blocks: a subscriber
// that has fallen behind misses intermediate events and catches up on the
// next one.
type Bus struct {
	mu     sync.RWMutex
	subs   map[string][]chan Event
	logger *zap.Logger
}

func New(logger *zap.Logger) *Bus {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Bus{
		subs:   make(map[string][]chan Event),
		logger: logger,
	}
}

// Subscribe returns a receive channel for the topic and a cancel func that
// detaches and closes it.
func (b *Bus) Subscribe(topic string) (<-chan Event, func()) {
	ch := make(chan Event, 16)

	b.mu.Lock()
	b.subs[topic] = append(b.subs[topic], ch)
	b.mu.Unlock()

	cancel := func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		chans := b.subs[topic]
		for i, c := range chans {
			if c == ch {
				b.subs[topic] = append(chans[:i], chans[i+1:]...)
				close(ch)
				return
			}
		}
	}
	return ch, cancel
}

func (b *Bus) Publish(evt Event) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for _, ch := range b.subs[evt.Topic] {
		select {
		case ch <- evt:
		default:
			b.logger.Debug("bus subscriber lagging, event dropped",
				zap.String("topic", evt.Topic),
				zap.String("profile_id", evt.ProfileID))
		}
	}
}
