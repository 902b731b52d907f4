package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/relman-tools/trainhop-readiness/internal/domain"
	"github.com/relman-tools/trainhop-readiness/internal/port"
)

// fakeMapper answers hash translations from a fixed table and counts
// network calls.
type fakeMapper struct {
	mu      sync.Mutex
	pairs   map[string]string // "hg-to-git:<id>" -> counterpart
	failAll error
	calls   int
}

func (m *fakeMapper) Translate(_ context.Context, dir domain.Direction, id string) (string, error) {
	m.mu.Lock()
	m.calls++
	m.mu.Unlock()
	if m.failAll != nil {
		return "", m.failAll
	}
	v, ok := m.pairs[dir.String()+":"+id]
	if !ok {
		return "", &port.ConversionError{Direction: dir.String(), ID: id, Status: 404}
	}
	return v, nil
}

func (m *fakeMapper) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

// memCache is a minimal in-memory mapping cache.
type memCache struct {
	mu      sync.Mutex
	entries map[string]string
	getErr  error
	puts    int
}

func newMemCache() *memCache {
	return &memCache{entries: make(map[string]string)}
}

func (c *memCache) Get(_ context.Context, key string) (string, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.getErr != nil {
		return "", false, c.getErr
	}
	v, ok := c.entries[key]
	return v, ok, nil
}

func (c *memCache) Put(_ context.Context, key, value string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.puts++
	c.entries[key] = value
	return nil
}

// fakeGit implements port.GitHistory.
type fakeGit struct {
	latest    string
	latestErr error
	known     map[string]bool
	commitErr error
	files     map[string][]byte // path -> content
	fileErr   error
}

func (g *fakeGit) LatestCommit(context.Context) (string, error) {
	return g.latest, g.latestErr
}

func (g *fakeGit) Commit(_ context.Context, sha string) error {
	if g.commitErr != nil {
		return g.commitErr
	}
	if !g.known[sha] {
		return &port.NotFoundError{Resource: "commit", ID: sha}
	}
	return nil
}

func (g *fakeGit) FileContent(_ context.Context, _, path string) ([]byte, error) {
	if g.fileErr != nil {
		return nil, g.fileErr
	}
	data, ok := g.files[path]
	if !ok {
		return nil, &port.NotFoundError{Resource: "file", ID: path}
	}
	return data, nil
}

// fakeHg implements port.HgHistory.
type fakeHg struct {
	infos map[string]*domain.FileInfo // path -> info
	err   error
}

func (h *fakeHg) FileInfo(_ context.Context, _, path string) (*domain.FileInfo, error) {
	if h.err != nil {
		return nil, h.err
	}
	info, ok := h.infos[path]
	if !ok {
		return nil, &port.NotFoundError{Resource: "file", ID: path}
	}
	return info, nil
}

// fakeCI implements port.CIService.
type fakeCI struct {
	push    *domain.Push
	pushErr error
	payload *domain.JobPayload
	jobsErr error
}

func (c *fakeCI) PushByRevision(_ context.Context, rev string) (*domain.Push, error) {
	if c.pushErr != nil {
		return nil, c.pushErr
	}
	if c.push == nil {
		return nil, &port.NotFoundError{Resource: "push", ID: rev}
	}
	return c.push, nil
}

func (c *fakeCI) JobsForPush(context.Context, int64, string) (*domain.JobPayload, error) {
	if c.jobsErr != nil {
		return nil, c.jobsErr
	}
	if c.payload == nil {
		return &domain.JobPayload{}, nil
	}
	return c.payload, nil
}

// fakeCalendar implements port.ReleaseCalendar.
type fakeCalendar struct {
	entries map[string]*domain.ChannelSchedule
	errs    map[string]error
}

func (c *fakeCalendar) Schedule(_ context.Context, channel string) (*domain.ChannelSchedule, error) {
	if err := c.errs[channel]; err != nil {
		return nil, err
	}
	sched, ok := c.entries[channel]
	if !ok {
		return nil, fmt.Errorf("no %s entry", channel)
	}
	return sched, nil
}

// fakeReports implements port.ReportSource.
type fakeReports struct {
	report *domain.LocaleReport
	err    error
}

func (r *fakeReports) Fetch(context.Context, string) (*domain.LocaleReport, error) {
	return r.report, r.err
}

// fakeDates implements port.DateProvider from a fixed map; absent
// fields count as declined. Requested fields are recorded.
type fakeDates struct {
	dates     map[string]time.Time
	requested []string
}

func (d *fakeDates) RequestDate(_ context.Context, field string) (*time.Time, error) {
	d.requested = append(d.requested, field)
	t, ok := d.dates[field]
	if !ok {
		return nil, nil
	}
	return &t, nil
}

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}
