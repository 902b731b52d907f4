package port

import (
	"context"

	"github.com/relman-tools/trainhop-readiness/internal/domain"
)

// HgHistory reads from the Mercurial side of the source history.
type HgHistory interface {
	// FileInfo returns last-modified metadata for a file at a revision.
	// An empty rev means the repository tip.
	FileInfo(ctx context.Context, rev, path string) (*domain.FileInfo, error)
}

// GitHistory reads from the git side, which is the canonical history
// revisions are validated against.
type GitHistory interface {
	// LatestCommit returns the hash of the most recent commit on the
	// default branch.
	LatestCommit(ctx context.Context) (string, error)

	// Commit confirms a commit exists; a missing commit is a
	// *NotFoundError.
	Commit(ctx context.Context, sha string) error

	// FileContent returns the decoded content of a file at a ref.
	FileContent(ctx context.Context, ref, path string) ([]byte, error)
}
