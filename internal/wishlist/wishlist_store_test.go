package wishlist_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-venusa-api/internal/bus"
	"go-venusa-api/internal/kv"
	"go-venusa-api/internal/wishlist"
)

func newTestStore(t *testing.T) (*wishlist.Store, *kv.MemoryStore, *bus.Bus) {
	t.Helper()
	mem := kv.NewMemoryStore()
	b := bus.New(nil)
	s := wishlist.NewStore(context.Background(), "profile-1", mem, b, nil)
	t.Cleanup(s.Close)
	return s, mem, b
}

func TestStore_AddIsIdempotent(t *testing.T) {
	s, _, _ := newTestStore(t)
	ctx := context.Background()

	s.Add(ctx, "linen-shirt")
	s.Add(ctx, "tee")
	s.Add(ctx, "linen-shirt")

	slugs := s.Slugs()
	require.Len(t, slugs, 2)
	// duplicate add keeps the original position
	assert.Equal(t, []string{"tee", "linen-shirt"}, slugs)
}

func TestStore_ToggleFlipsMembership(t *testing.T) {
	s, _, _ := newTestStore(t)
	ctx := context.Background()

	assert.True(t, s.Toggle(ctx, "tee"))
	assert.True(t, s.Has("tee"))

	assert.False(t, s.Toggle(ctx, "tee"))
	assert.False(t, s.Has("tee"))
	assert.Equal(t, 0, s.Count())
}

func TestStore_RemoveAndClear(t *testing.T) {
	s, _, _ := newTestStore(t)
	ctx := context.Background()

	s.Add(ctx, "tee")
	s.Add(ctx, "jacket")

	s.Remove(ctx, "tee")
	assert.Equal(t, []string{"jacket"}, s.Slugs())

	s.Clear(ctx)
	assert.Empty(t, s.Slugs())
}

func TestStore_RemoveAbsentSlugIsNoop(t *testing.T) {
	s, _, _ := newTestStore(t)
	ctx := context.Background()

	s.Add(ctx, "tee")
	s.Remove(ctx, "ghost")
	assert.Equal(t, []string{"tee"}, s.Slugs())
}

func TestStore_PersistFailureKeepsMemoryState(t *testing.T) {
	s, mem, _ := newTestStore(t)
	ctx := context.Background()

	mem.FailWrites(true)
	s.Add(ctx, "tee")

	assert.True(t, s.Has("tee"))

	_, err := mem.Get(ctx, "wishlist:v1:profile-1")
	assert.ErrorIs(t, err, kv.ErrNotFound)
}

func TestStore_PublishesCountOnMutation(t *testing.T) {
	s, _, b := newTestStore(t)
	ctx := context.Background()

	events, cancel := b.Subscribe(bus.TopicWishlistUpdated)
	defer cancel()

	s.Add(ctx, "tee")

	select {
	case evt := <-events:
		assert.Equal(t, "profile-1", evt.ProfileID)
		assert.Equal(t, 1, evt.Count)
	case <-time.After(time.Second):
		t.Fatal("expected a wishlist.updated event")
	}
}

func TestStore_ExternalChangeReplacesState(t *testing.T) {
	s, mem, b := newTestStore(t)
	ctx := context.Background()

	s.Add(ctx, "tee")

	events, cancel := b.Subscribe(bus.TopicWishlistUpdated)
	defer cancel()

	raw, err := json.Marshal(map[string]any{"version": 1, "slugs": []string{"jacket", "scarf"}})
	require.NoError(t, err)
	mem.SimulateExternalChange("wishlist:v1:profile-1", raw)

	select {
	case evt := <-events:
		assert.Equal(t, 2, evt.Count)
	case <-time.After(time.Second):
		t.Fatal("expected a resync event")
	}

	assert.Equal(t, []string{"jacket", "scarf"}, s.Slugs())
}

func TestStore_LoadsPersistedState(t *testing.T) {
	mem := kv.NewMemoryStore()
	ctx := context.Background()

	first := wishlist.NewStore(ctx, "profile-2", mem, bus.New(nil), nil)
	first.Add(ctx, "tee")
	first.Close()

	second := wishlist.NewStore(ctx, "profile-2", mem, bus.New(nil), nil)
	defer second.Close()

	assert.True(t, second.Has("tee"))
}
