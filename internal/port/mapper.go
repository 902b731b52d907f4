package port

import (
	"context"

	"github.com/relman-tools/trainhop-readiness/internal/domain"
)

// CommitMapper translates one commit hash between the hg and git
// namespaces. One network fetch per direction; caching sits above it.
type CommitMapper interface {
	Translate(ctx context.Context, dir domain.Direction, id string) (string, error)
}

// MappingCache is the persistent key-value store for resolved hash
// pairs. Entries are write-once per key and never expire; commit
// mappings are immutable once the commit exists.
type MappingCache interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Put(ctx context.Context, key, value string) error
}
