package main

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAnalytics(t *testing.T) *Analytics {
	t.Helper()
	a, err := openAnalytics(context.Background(), ":memory:", zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })
	return a
}

func TestHashIP(t *testing.T) {
	a := newTestAnalytics(t)

	h := a.hashIP("203.0.113.7")
	assert.Len(t, h, 16)
	assert.Equal(t, h, a.hashIP("203.0.113.7"))
	assert.NotEqual(t, h, a.hashIP("203.0.113.8"))
	assert.NotContains(t, h, "203")

	other := newTestAnalytics(t)
	assert.NotEqual(t, h, other.hashIP("203.0.113.7"))
}

func TestAnalyticsStats(t *testing.T) {
	a := newTestAnalytics(t)
	ctx := context.Background()

	now := time.Date(2025, 10, 30, 12, 0, 0, 0, time.UTC)
	at := func(ago time.Duration) { a.now = func() time.Time { return now.Add(-ago) } }

	at(0)
	require.NoError(t, a.Record(ctx, "198.51.100.1", "firefox", "/"))
	require.NoError(t, a.Record(ctx, "198.51.100.1", "firefox", "/"))
	at(3 * 24 * time.Hour)
	require.NoError(t, a.Record(ctx, "198.51.100.2", "curl", "/"))
	at(30 * 24 * time.Hour)
	require.NoError(t, a.Record(ctx, "198.51.100.3", "safari", "/about"))

	at(0)
	stats, err := a.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(4), stats.TotalVisits)
	assert.Equal(t, int64(3), stats.UniqueVisitors)
	assert.Equal(t, int64(2), stats.VisitsToday)
	assert.Equal(t, int64(3), stats.VisitsThisWeek)
	assert.Equal(t, []PathStat{{"/", 3}, {"/about", 1}}, stats.TopPaths)

	require.Len(t, stats.RecentVisits, 4)
	assert.Equal(t, now, stats.RecentVisits[0].Timestamp)
	assert.Equal(t, "/about", stats.RecentVisits[3].Path)
	assert.Equal(t, a.hashIP("198.51.100.3"), stats.RecentVisits[3].HashedIP)
}

func TestAnalyticsCleanup(t *testing.T) {
	a := newTestAnalytics(t)
	ctx := context.Background()

	now := time.Date(2025, 10, 30, 12, 0, 0, 0, time.UTC)
	a.now = func() time.Time { return now.AddDate(-2, 0, 0) }
	require.NoError(t, a.Record(ctx, "192.0.2.1", "old", "/"))
	a.now = func() time.Time { return now }
	require.NoError(t, a.Record(ctx, "192.0.2.2", "new", "/"))

	removed, err := a.Cleanup(ctx, 365*24*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed)

	removed, err = a.Cleanup(ctx, 0)
	require.NoError(t, err)
	assert.Zero(t, removed)

	visits, err := a.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, visits, 1)
	assert.Equal(t, "new", visits[0].UserAgent)
}

func TestAnalyticsEmpty(t *testing.T) {
	a := newTestAnalytics(t)
	stats, err := a.Stats(context.Background())
	require.NoError(t, err)
	assert.Zero(t, stats.TotalVisits)
	assert.Empty(t, stats.TopPaths)
	assert.Empty(t, stats.RecentVisits)
}
