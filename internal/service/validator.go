package service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/relman-tools/trainhop-readiness/internal/domain"
	"github.com/relman-tools/trainhop-readiness/internal/port"
)

// RevisionValidator normalizes a raw user-supplied revision into a
// validated identifier pair. Existence is only ever checked against
// the git history; the hg side is derived through the resolver.
type RevisionValidator struct {
	git      port.GitHistory
	resolver *IdentifierResolver
}

// NewRevisionValidator creates a validator.
func NewRevisionValidator(git port.GitHistory, resolver *IdentifierResolver) *RevisionValidator {
	return &RevisionValidator{git: git, resolver: resolver}
}

// ResolveTarget resolves the revision to assess. A blank input means
// the latest commit in the canonical history. The returned identifier
// carries whatever was resolved before a failure, so callers can still
// report which commit was being checked.
func (v *RevisionValidator) ResolveTarget(ctx context.Context, raw string, kind domain.InputKind) (domain.Identifier, error) {
	raw = strings.TrimSpace(raw)

	if raw == "" {
		gitID, err := v.git.LatestCommit(ctx)
		if err != nil {
			return domain.Identifier{}, err
		}
		return domain.Identifier{GitID: gitID, HgID: v.deriveHg(ctx, gitID, "")}, nil
	}

	if kind == domain.InputHg {
		gitID, err := v.resolver.Resolve(ctx, domain.HgToGit, raw)
		if err != nil {
			return domain.Identifier{HgID: raw}, err
		}
		ident := domain.Identifier{GitID: gitID, HgID: raw}
		if err := v.git.Commit(ctx, gitID); err != nil {
			return ident, err
		}
		ident.HgID = v.deriveHg(ctx, gitID, raw)
		return ident, nil
	}

	ident := domain.Identifier{GitID: raw}
	if err := v.git.Commit(ctx, raw); err != nil {
		return ident, err
	}
	ident.HgID = v.deriveHg(ctx, raw, "")
	return ident, nil
}

// deriveHg attempts the display-only git→hg derivation. A failure here
// never blocks the assessment: it logs and falls back, leaving the hg
// side empty when nothing better is known.
func (v *RevisionValidator) deriveHg(ctx context.Context, gitID, fallback string) string {
	hgID, err := v.resolver.Resolve(ctx, domain.GitToHg, gitID)
	if err != nil {
		slog.Warn("hg counterpart derivation failed", "git_id", gitID, "error", err)
		return fallback
	}
	return hgID
}
