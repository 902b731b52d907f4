package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/relman-tools/trainhop-readiness/internal/domain"
	"github.com/relman-tools/trainhop-readiness/internal/port"
)

func newTestValidator(git *fakeGit, mapper *fakeMapper) *RevisionValidator {
	return NewRevisionValidator(git, NewIdentifierResolver(mapper, newMemCache()))
}

func TestResolveTargetBlankUsesLatest(t *testing.T) {
	git := &fakeGit{latest: "abc123", known: map[string]bool{"abc123": true}}
	mapper := &fakeMapper{pairs: map[string]string{
		"git-to-hg:abc123": "def456",
	}}
	v := newTestValidator(git, mapper)

	ident, err := v.ResolveTarget(context.Background(), "   ", domain.InputHg)
	require.NoError(t, err)
	assert.Equal(t, "abc123", ident.GitID)
	assert.Equal(t, "def456", ident.HgID)
}

func TestResolveTargetHgInput(t *testing.T) {
	git := &fakeGit{known: map[string]bool{"bbb222": true}}
	mapper := &fakeMapper{pairs: map[string]string{
		"hg-to-git:aaa111": "bbb222",
		"git-to-hg:bbb222": "aaa111",
	}}
	v := newTestValidator(git, mapper)

	ident, err := v.ResolveTarget(context.Background(), "aaa111", domain.InputHg)
	require.NoError(t, err)
	assert.Equal(t, "bbb222", ident.GitID)
	assert.Equal(t, "aaa111", ident.HgID)
}

func TestResolveTargetGitInput(t *testing.T) {
	git := &fakeGit{known: map[string]bool{"bbb222": true}}
	mapper := &fakeMapper{pairs: map[string]string{
		"git-to-hg:bbb222": "aaa111",
	}}
	v := newTestValidator(git, mapper)

	ident, err := v.ResolveTarget(context.Background(), "bbb222", domain.InputGit)
	require.NoError(t, err)
	assert.Equal(t, "bbb222", ident.GitID)
	assert.Equal(t, "aaa111", ident.HgID)
}

func TestResolveTargetUnknownGitRevision(t *testing.T) {
	git := &fakeGit{known: map[string]bool{}}
	v := newTestValidator(git, &fakeMapper{pairs: map[string]string{}})

	ident, err := v.ResolveTarget(context.Background(), "nope", domain.InputGit)
	var notFound *port.NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "nope", notFound.ID)
	// Best-effort identifier still reports what was being checked.
	assert.Equal(t, "nope", ident.GitID)
}

func TestResolveTargetHgInputConversionFailureIsTerminal(t *testing.T) {
	git := &fakeGit{known: map[string]bool{}}
	v := newTestValidator(git, &fakeMapper{pairs: map[string]string{}})

	ident, err := v.ResolveTarget(context.Background(), "aaa111", domain.InputHg)
	var convErr *port.ConversionError
	require.ErrorAs(t, err, &convErr)
	assert.Equal(t, "aaa111", ident.HgID)
	assert.Empty(t, ident.GitID)
}

func TestResolveTargetDisplayDerivationFailureFallsBack(t *testing.T) {
	// The hg→git hop works, the git→hg display hop does not. The input
	// hash is still shown rather than nothing.
	git := &fakeGit{known: map[string]bool{"bbb222": true}}
	mapper := &fakeMapper{pairs: map[string]string{
		"hg-to-git:aaa111": "bbb222",
	}}
	v := newTestValidator(git, mapper)

	ident, err := v.ResolveTarget(context.Background(), "aaa111", domain.InputHg)
	require.NoError(t, err)
	assert.Equal(t, "bbb222", ident.GitID)
	assert.Equal(t, "aaa111", ident.HgID)
}
