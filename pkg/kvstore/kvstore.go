// Package kvstore provides the key/value persistence abstraction the record
// and wizard stores write through. Values are opaque byte blobs; callers own
// serialization. Backends are substitutable: in-memory for tests, a file per
// key on disk, Redis, or a single Postgres table.
package kvstore

import (
	"context"
	"fmt"

	"github.com/applipro/entretiens/pkg/configuration"
)

// Store is a minimal get/set surface. Get reports whether the key was present
// so that absence is distinguishable from an empty value. Set overwrites
// atomically as observed by subsequent Gets within the same process.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// NewFromConfig builds the backend selected by STORAGE_BACKEND.
func NewFromConfig(ctx context.Context, conf *configuration.Configuration) (Store, error) {
	switch conf.Storage.Backend {
	case "memory":
		return NewMemoryStore(), nil
	case "file":
		return NewFileStore(conf.Storage.Dir)
	case "redis":
		return NewRedisStore(conf.RedisURL), nil
	case "postgres":
		return NewPostgresStore(ctx, conf.Database.Opts)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", conf.Storage.Backend)
	}
}
