package main

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	_ "modernc.org/sqlite"
)

// Visit is one recorded page view. The network address is only kept hashed.
type Visit struct {
	ID        int64     `json:"id"`
	HashedIP  string    `json:"hashed_ip"`
	UserAgent string    `json:"user_agent"`
	Path      string    `json:"path"`
	Timestamp time.Time `json:"timestamp"`
}

type PathStat struct {
	Path   string `json:"path"`
	Visits int64  `json:"visits"`
}

type Stats struct {
	TotalVisits    int64      `json:"total_visits"`
	UniqueVisitors int64      `json:"unique_visitors"`
	VisitsToday    int64      `json:"visits_today"`
	VisitsThisWeek int64      `json:"visits_this_week"`
	TopPaths       []PathStat `json:"top_paths"`
	RecentVisits   []Visit    `json:"recent_visits"`
}

var schema = []string{`
	CREATE TABLE IF NOT EXISTS visits (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		hashed_ip TEXT NOT NULL,
		user_agent TEXT NOT NULL DEFAULT '',
		path TEXT NOT NULL,
		visited_at INTEGER NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS visits_visited_at ON visits (visited_at)`,
}

// Analytics stores privacy-conscious page views in SQLite.
type Analytics struct {
	db   *sql.DB
	salt string
	log  zerolog.Logger
	now  func() time.Time

	wg sync.WaitGroup
}

// openAnalytics opens (and if needed creates) the visits database at dsn.
func openAnalytics(ctx context.Context, dsn string, log zerolog.Logger) (*Analytics, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open analytics db: %w", err)
	}
	// An in-memory database lives on a single connection.
	db.SetMaxOpenConns(1)

	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("create visits table: %w", err)
		}
	}

	salt, err := randomToken()
	if err != nil {
		db.Close()
		return nil, err
	}
	return &Analytics{db: db, salt: salt, log: log, now: time.Now}, nil
}

func randomToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// hashIP maps an address to a stable, salted, truncated digest. The salt is
// per process, so digests cannot be joined across restarts.
func (a *Analytics) hashIP(ip string) string {
	sum := sha256.Sum256([]byte(ip + a.salt))
	return hex.EncodeToString(sum[:])[:16]
}

// Record stores a page view.
func (a *Analytics) Record(ctx context.Context, ip, userAgent, path string) error {
	_, err := a.db.ExecContext(ctx,
		`INSERT INTO visits (hashed_ip, user_agent, path, visited_at) VALUES (?, ?, ?, ?)`,
		a.hashIP(ip), userAgent, path, a.now().Unix())
	if err != nil {
		return fmt.Errorf("record visit: %w", err)
	}
	return nil
}

func (a *Analytics) recordAsync(ip, userAgent, path string) {
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := a.Record(ctx, ip, userAgent, path); err != nil {
			a.log.Error().Err(err).Msg("error recording visit")
		}
	}()
}

// Flush waits for in-flight asynchronous records.
func (a *Analytics) Flush() { a.wg.Wait() }

// Close flushes pending records and closes the database.
func (a *Analytics) Close() error {
	a.Flush()
	return a.db.Close()
}

// Cleanup deletes visits older than retention and returns how many went.
func (a *Analytics) Cleanup(ctx context.Context, retention time.Duration) (int64, error) {
	if retention <= 0 {
		return 0, nil
	}
	cutoff := a.now().Add(-retention).Unix()
	res, err := a.db.ExecContext(ctx, `DELETE FROM visits WHERE visited_at < ?`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("cleanup visits: %w", err)
	}
	n, _ := res.RowsAffected()
	if n > 0 {
		a.log.Info().Int64("removed", n).Dur("retention", retention).Msg("privacy cleanup")
	}
	return n, nil
}

// Stats summarises the stored visits.
func (a *Analytics) Stats(ctx context.Context) (*Stats, error) {
	now := a.now().UTC()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	weekAgo := now.Add(-7 * 24 * time.Hour)

	stats := &Stats{}
	err := a.db.QueryRowContext(ctx, `
		SELECT COUNT(*),
		       COUNT(DISTINCT hashed_ip),
		       COALESCE(SUM(CASE WHEN visited_at >= ? THEN 1 ELSE 0 END), 0),
		       COALESCE(SUM(CASE WHEN visited_at >= ? THEN 1 ELSE 0 END), 0)
		FROM visits`, midnight.Unix(), weekAgo.Unix(),
	).Scan(&stats.TotalVisits, &stats.UniqueVisitors, &stats.VisitsToday, &stats.VisitsThisWeek)
	if err != nil {
		return nil, fmt.Errorf("count visits: %w", err)
	}

	rows, err := a.db.QueryContext(ctx, `
		SELECT path, COUNT(*) AS n FROM visits
		GROUP BY path ORDER BY n DESC, path ASC LIMIT 10`)
	if err != nil {
		return nil, fmt.Errorf("top paths: %w", err)
	}
	stats.TopPaths, err = scanPathStats(rows)
	if err != nil {
		return nil, err
	}

	// Rows must be closed first: the pool holds a single connection.
	stats.RecentVisits, err = a.Recent(ctx, 50)
	if err != nil {
		return nil, err
	}
	return stats, nil
}

func scanPathStats(rows *sql.Rows) ([]PathStat, error) {
	defer rows.Close()
	var out []PathStat
	for rows.Next() {
		var p PathStat
		if err := rows.Scan(&p.Path, &p.Visits); err != nil {
			return nil, fmt.Errorf("scan path stat: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// Recent returns the latest visits, newest first.
func (a *Analytics) Recent(ctx context.Context, limit int) ([]Visit, error) {
	rows, err := a.db.QueryContext(ctx, `
		SELECT id, hashed_ip, user_agent, path, visited_at FROM visits
		ORDER BY visited_at DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("recent visits: %w", err)
	}
	defer rows.Close()

	var visits []Visit
	for rows.Next() {
		var (
			v  Visit
			at int64
		)
		if err := rows.Scan(&v.ID, &v.HashedIP, &v.UserAgent, &v.Path, &at); err != nil {
			return nil, fmt.Errorf("scan visit: %w", err)
		}
		v.Timestamp = time.Unix(at, 0).UTC()
		visits = append(visits, v)
	}
	return visits, rows.Err()
}

var untrackedPrefixes = []string{
	"/static/", "/images/", "/admin", "/api/", "/favicon", "/privacy", "/terms", "/healthz",
}

// visitTracking records page views in the background. Asset, admin and API
// requests are skipped, and so is anyone sending Do Not Track.
func visitTracking(a *Analytics) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		for _, prefix := range untrackedPrefixes {
			if strings.HasPrefix(path, prefix) {
				c.Next()
				return
			}
		}
		if c.GetHeader("DNT") == "1" || c.Request.Method != "GET" {
			c.Next()
			return
		}

		c.Next()
		if c.Writer.Status() < 400 {
			a.recordAsync(c.ClientIP(), c.Request.UserAgent(), path)
		}
	}
}
