package cart_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-venusa-api/internal/bus"
	"go-venusa-api/internal/cart"
	"go-venusa-api/internal/kv"
)

func newTestStore(t *testing.T) (*cart.Store, *kv.MemoryStore, *bus.Bus) {
	t.Helper()
	mem := kv.NewMemoryStore()
	b := bus.New(nil)
	s := cart.NewStore(context.Background(), "profile-1", mem, b, nil)
	t.Cleanup(s.Close)
	return s, mem, b
}

func TestStore_AddMergesSameSlugAndSize(t *testing.T) {
	s, _, _ := newTestStore(t)
	ctx := context.Background()

	s.Add(ctx, cart.Line{Slug: "linen-shirt", Size: "M", Qty: 1, UnitPricePaise: 149900})
	s.Add(ctx, cart.Line{Slug: "linen-shirt", Size: "M", Qty: 2, UnitPricePaise: 149900})
	s.Add(ctx, cart.Line{Slug: "linen-shirt", Size: "L", Qty: 1, UnitPricePaise: 149900})

	lines := s.Lines()
	require.Len(t, lines, 2)
	// newest distinct line sits first
	assert.Equal(t, "L", lines[0].Size)
	assert.Equal(t, 1, lines[0].Qty)
	assert.Equal(t, "M", lines[1].Size)
	assert.Equal(t, 3, lines[1].Qty)
}

func TestStore_QtyClampedToOne(t *testing.T) {
	s, _, _ := newTestStore(t)
	ctx := context.Background()

	s.Add(ctx, cart.Line{Slug: "tee", Qty: 0, UnitPricePaise: 49900})
	assert.Equal(t, 1, s.Count())

	s.SetQty(ctx, "tee", "", -5)
	assert.Equal(t, 1, s.Count())

	s.Decrement(ctx, "tee", "")
	assert.Equal(t, 1, s.Count(), "decrement floors at 1")
}

func TestStore_CountAndSubtotal(t *testing.T) {
	s, _, _ := newTestStore(t)
	ctx := context.Background()

	s.Add(ctx, cart.Line{Slug: "tee", Qty: 2, UnitPricePaise: 49900})
	s.Add(ctx, cart.Line{Slug: "linen-shirt", Size: "M", Qty: 1, UnitPricePaise: 149900})

	assert.Equal(t, 3, s.Count())
	assert.Equal(t, int64(2*49900+149900), s.Subtotal())
}

func TestStore_SetQtyAbsentLineIsNoop(t *testing.T) {
	s, _, _ := newTestStore(t)
	ctx := context.Background()

	s.SetQty(ctx, "ghost", "", 4)
	assert.Empty(t, s.Lines())
}

func TestStore_RemoveAndClear(t *testing.T) {
	s, _, _ := newTestStore(t)
	ctx := context.Background()

	s.Add(ctx, cart.Line{Slug: "tee", Qty: 1, UnitPricePaise: 49900})
	s.Add(ctx, cart.Line{Slug: "linen-shirt", Size: "M", Qty: 1, UnitPricePaise: 149900})

	s.Remove(ctx, "tee", "")
	require.Len(t, s.Lines(), 1)

	s.Clear(ctx)
	assert.Empty(t, s.Lines())
	assert.Equal(t, 0, s.Count())
}

func TestStore_PersistFailureKeepsMemoryState(t *testing.T) {
	s, mem, _ := newTestStore(t)
	ctx := context.Background()

	mem.FailWrites(true)
	s.Add(ctx, cart.Line{Slug: "tee", Qty: 2, UnitPricePaise: 49900})

	// the session keeps working even though nothing was persisted
	assert.Equal(t, 2, s.Count())

	_, err := mem.Get(ctx, "cart:v1:profile-1")
	assert.ErrorIs(t, err, kv.ErrNotFound)
}

func TestStore_PublishesCountOnEveryMutation(t *testing.T) {
	s, _, b := newTestStore(t)
	ctx := context.Background()

	events, cancel := b.Subscribe(bus.TopicCartUpdated)
	defer cancel()

	s.Add(ctx, cart.Line{Slug: "tee", Qty: 2, UnitPricePaise: 49900})

	select {
	case evt := <-events:
		assert.Equal(t, "profile-1", evt.ProfileID)
		assert.Equal(t, 2, evt.Count)
	case <-time.After(time.Second):
		t.Fatal("expected a cart.updated event")
	}
}

func TestStore_ExternalChangeReplacesState(t *testing.T) {
	s, mem, b := newTestStore(t)
	ctx := context.Background()

	s.Add(ctx, cart.Line{Slug: "tee", Qty: 1, UnitPricePaise: 49900})

	events, cancel := b.Subscribe(bus.TopicCartUpdated)
	defer cancel()

	raw, err := json.Marshal(map[string]any{
		"version": 1,
		"lines": []cart.Line{
			{Slug: "jacket", Qty: 5, UnitPricePaise: 299900},
		},
	})
	require.NoError(t, err)
	mem.SimulateExternalChange("cart:v1:profile-1", raw)

	select {
	case evt := <-events:
		assert.Equal(t, 5, evt.Count)
	case <-time.After(time.Second):
		t.Fatal("expected a resync event")
	}

	lines := s.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, "jacket", lines[0].Slug)
}

func TestStore_UnknownSchemaVersionStartsEmpty(t *testing.T) {
	mem := kv.NewMemoryStore()
	ctx := context.Background()

	raw, _ := json.Marshal(map[string]any{"version": 99, "lines": []cart.Line{{Slug: "tee", Qty: 1}}})
	require.NoError(t, mem.Set(ctx, "cart:v1:profile-2", raw))

	s := cart.NewStore(ctx, "profile-2", mem, bus.New(nil), nil)
	defer s.Close()

	assert.Empty(t, s.Lines())
}

func TestStore_LoadsPersistedState(t *testing.T) {
	mem := kv.NewMemoryStore()
	ctx := context.Background()

	first := cart.NewStore(ctx, "profile-3", mem, bus.New(nil), nil)
	first.Add(ctx, cart.Line{Slug: "tee", Qty: 2, UnitPricePaise: 49900})
	first.Close()

	second := cart.NewStore(ctx, "profile-3", mem, bus.New(nil), nil)
	defer second.Close()

	assert.Equal(t, 2, second.Count())
	assert.Equal(t, int64(99800), second.Subtotal())
}
