// Package metadata stores small key/value settings of the SQL stores, such
// as the key-derivation salt and the password verifier.
package metadata

import (
	"context"
)

// Well-known keys.
const (
	KeySalt     = "salt"
	KeyVerifier = "verifier"
)

// Repository is a key/value table. Get returns (nil, nil) for a missing key.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) (map[string][]byte, error)
	Clear(ctx context.Context) error
}
