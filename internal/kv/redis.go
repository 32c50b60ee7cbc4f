package kv

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const changeChannelPrefix = "storefront.changed."

type changeMessage struct {
	Origin string `json:"origin"`
	Value  []byte `json:"value"`
}

type redisStore struct {
	client *redis.Client
	// origin tags this instance's writes so its own changes are not
	// delivered back to it, the way a browser tab only sees storage
	// events from other tabs.
	origin string
	logger *zap.Logger
}

func NewRedisStore(client *redis.Client, logger *zap.Logger) Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &redisStore{
		client: client,
		origin: uuid.NewString(),
		logger: logger,
	}
}

func (s *redisStore) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := s.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return val, nil
}

func (s *redisStore) Set(ctx context.Context, key string, value []byte) error {
	if err := s.client.Set(ctx, key, value, 0).Err(); err != nil {
		return err
	}

	msg, err := json.Marshal(changeMessage{Origin: s.origin, Value: value})
	if err != nil {
		return err
	}
	// Change notification is best-effort: a dropped publish only delays
	// another instance's resync until its own next load.
	if err := s.client.Publish(ctx, changeChannelPrefix+key, msg).Err(); err != nil {
		s.logger.Warn("kv change publish failed", zap.String("key", key), zap.Error(err))
	}
	return nil
}

func (s *redisStore) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, key).Err(); err != nil {
		return err
	}
	msg, _ := json.Marshal(changeMessage{Origin: s.origin, Value: nil})
	if err := s.client.Publish(ctx, changeChannelPrefix+key, msg).Err(); err != nil {
		s.logger.Warn("kv change publish failed", zap.String("key", key), zap.Error(err))
	}
	return nil
}

func (s *redisStore) OnExternalChange(ctx context.Context, key string) (<-chan []byte, func()) {
	sub := s.client.Subscribe(ctx, changeChannelPrefix+key)
	out := make(chan []byte, 4)

	go func() {
		defer close(out)
		for msg := range sub.Channel() {
			var change changeMessage
			if err := json.Unmarshal([]byte(msg.Payload), &change); err != nil {
				s.logger.Warn("kv change message malformed", zap.String("key", key), zap.Error(err))
				continue
			}
			if change.Origin == s.origin {
				continue
			}
			select {
			case out <- change.Value:
			default:
				// Stale intermediate state; the next change carries
				// the full value anyway.
			}
		}
	}()

	cancel := func() {
		_ = sub.Close()
	}
	return out, cancel
}
