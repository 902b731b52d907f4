package report

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/relman-tools/trainhop-readiness/internal/port"
)

type stubGit struct {
	files map[string][]byte
}

func (g *stubGit) LatestCommit(context.Context) (string, error) { return "", nil }
func (g *stubGit) Commit(context.Context, string) error         { return nil }

func (g *stubGit) FileContent(_ context.Context, _, path string) ([]byte, error) {
	data, ok := g.files[path]
	if !ok {
		return nil, &port.NotFoundError{Resource: "file", ID: path}
	}
	return data, nil
}

const reportJSON = `{
	"locales": {
		"de": {"missing": {"browser/newtab/newtab.ftl": ["newtab-topic-label"]}},
		"fr": {"missing": {}}
	},
	"key_dates": {
		"newtab-topic-label": "2024-06-05"
	}
}`

func TestFetchParsesReport(t *testing.T) {
	git := &stubGit{files: map[string][]byte{"report.json": []byte(reportJSON)}}
	s := New(git, "report.json")

	got, err := s.Fetch(context.Background(), "abc123")
	require.NoError(t, err)

	require.Contains(t, got.Locales, "de")
	assert.Equal(t, []string{"newtab-topic-label"},
		got.Locales["de"].MissingByFile["browser/newtab/newtab.ftl"])
	assert.Equal(t, time.Date(2024, 6, 5, 0, 0, 0, 0, time.UTC),
		got.KeyDates["newtab-topic-label"])
}

func TestFetchMissingReportFile(t *testing.T) {
	s := New(&stubGit{files: map[string][]byte{}}, "report.json")
	_, err := s.Fetch(context.Background(), "abc123")

	var notFound *port.NotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestFetchRejectsBadKeyDate(t *testing.T) {
	bad := `{"locales": {}, "key_dates": {"k": "tomorrow"}}`
	s := New(&stubGit{files: map[string][]byte{"report.json": []byte(bad)}}, "report.json")

	_, err := s.Fetch(context.Background(), "abc123")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid date")
}
