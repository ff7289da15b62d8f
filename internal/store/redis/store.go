package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/MrSnakeDoc/curator/internal/store"
)

// Store is a store.Backend keeping one profile's slots in Redis strings.
// Keys never expire: the cache is dropped only by an explicit reset.
type Store struct {
	client  *redis.Client
	profile string
}

// NewStore creates a Redis-backed slot store for profile.
func NewStore(client *redis.Client, profile string) *Store {
	return &Store{
		client:  client,
		profile: profile,
	}
}

// Get retrieves a slot value.
func (s *Store) Get(ctx context.Context, slot store.Slot) (string, bool, error) {
	value, err := s.client.Get(ctx, SlotKey(s.profile, slot)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to get slot %s: %w", slot, err)
	}
	return value, true, nil
}

// SetMany stores several slots in a single pipeline round-trip.
// The pipeline is not MULTI/EXEC: a failure can leave a partial write.
func (s *Store) SetMany(ctx context.Context, values map[store.Slot]string) error {
	pipe := s.client.Pipeline()
	for slot, value := range values {
		pipe.Set(ctx, SlotKey(s.profile, slot), value, 0)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save slots: %w", err)
	}
	return nil
}

// Delete removes slots.
func (s *Store) Delete(ctx context.Context, slots ...store.Slot) error {
	if len(slots) == 0 {
		return nil
	}
	keys := make([]string, 0, len(slots))
	for _, slot := range slots {
		keys = append(keys, SlotKey(s.profile, slot))
	}
	if err := s.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("failed to delete slots: %w", err)
	}
	return nil
}

// Slots lists the slots currently stored for the profile.
func (s *Store) Slots(ctx context.Context) ([]store.Slot, error) {
	var slots []store.Slot
	iter := s.client.Scan(ctx, 0, ProfilePattern(s.profile), 0).Iterator()
	for iter.Next(ctx) {
		slot, err := ExtractSlot(s.profile, iter.Val())
		if err != nil {
			continue
		}
		slots = append(slots, slot)
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan slots: %w", err)
	}
	return slots, nil
}

// Ping checks the connection.
func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Close closes the underlying client.
func (s *Store) Close() error {
	return s.client.Close()
}
