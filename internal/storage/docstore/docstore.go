package docstore

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("document not found")

// Store persists whole named JSON documents. The ledger rewrites each
// document in full on every mutation, so implementations only need
// last-write-wins semantics.
type Store interface {
	Load(ctx context.Context, name string) ([]byte, error)
	Save(ctx context.Context, name string, doc []byte) error
}
