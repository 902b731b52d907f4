package service

import (
	"context"
	"log/slog"

	"github.com/relman-tools/trainhop-readiness/internal/domain"
	"github.com/relman-tools/trainhop-readiness/internal/port"
)

// IdentifierResolver translates commit hashes between the hg and git
// namespaces, consulting the persistent mapping cache before the
// network. Mappings are immutable, so cached entries never expire and
// each hash pair costs at most one mapper call per process lifetime.
type IdentifierResolver struct {
	mapper port.CommitMapper
	cache  port.MappingCache
}

// NewIdentifierResolver creates a resolver over a mapper and a cache.
func NewIdentifierResolver(mapper port.CommitMapper, cache port.MappingCache) *IdentifierResolver {
	return &IdentifierResolver{mapper: mapper, cache: cache}
}

// Resolve returns the counterpart hash for id in the given direction.
func (r *IdentifierResolver) Resolve(ctx context.Context, dir domain.Direction, id string) (string, error) {
	key := dir.String() + ":" + id

	cached, ok, err := r.cache.Get(ctx, key)
	if err != nil {
		// A broken cache read degrades to a mapper call.
		slog.Warn("mapping cache read failed", "key", key, "error", err)
	} else if ok {
		return cached, nil
	}

	resolved, err := r.mapper.Translate(ctx, dir, id)
	if err != nil {
		return "", err
	}

	if err := r.cache.Put(ctx, key, resolved); err != nil {
		slog.Warn("mapping cache write failed", "key", key, "error", err)
	}
	return resolved, nil
}
