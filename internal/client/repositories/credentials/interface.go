// Package credentials persists sealed access credentials in the local SQLite
// database. Values are stored exactly as given; sealing is the caller's job.
package credentials

import (
	"context"
	"time"
)

// Record is one sealed credential row.
type Record struct {
	Name       string
	Ciphertext []byte
	Nonce      []byte
	Salt       []byte
	UpdatedAt  time.Time
}

type Repository interface {
	// Get returns (nil, nil) when no row named name exists.
	Get(ctx context.Context, name string) (*Record, error)
	Put(ctx context.Context, rec *Record) error
	Delete(ctx context.Context, name string) error
	Clear(ctx context.Context) error
}
