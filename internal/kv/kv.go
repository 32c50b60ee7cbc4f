package kv

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("kv: key not found")


// Store is durable per-profile state storage with external-change
// notification. Each storefront store (cart, wishlist) owns its own key
// namespace and never touches another store's keys.
//
// OnExternalChange delivers the new value whenever the key is written by a
// different writer (another API instance serving the same profile). Writes
// made through this same Store instance are not echoed back.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	OnExternalChange(ctx context.Context, key string) (<-chan []byte, func())
}
