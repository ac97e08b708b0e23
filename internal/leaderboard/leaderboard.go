// Package leaderboard submits and reads scored records from a shared store.
//
// The Client never returns errors to the game loop: every failure is logged
// and folded into a Result with Err set and no records.
package leaderboard

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/charmbracelet/log"
)

const (
	// TopN is the size of the results table shown after a run.
	TopN = 10
	// FullLimit bounds the full leaderboard listing.
	FullLimit = 100
	// MaxNameLen is the longest stored player name, in runes.
	MaxNameLen = 16
	// DefaultName is used when the player never set one.
	DefaultName = "Erika"
)

// ErrOffline is returned by clients without a backend.
var ErrOffline = errors.New("leaderboard: offline")

// Record is one scored entry.
type Record struct {
	Table     string
	Name      string
	Score     int
	CreatedAt time.Time
}

// Backend is the store behind the client. Implementations must be safe for
// concurrent use; every session shares one.
type Backend interface {
	Submit(ctx context.Context, rec Record) error
	Top(ctx context.Context, table string, n int) ([]Record, error)
	// Rank returns 1 + the number of records in table with a strictly greater score.
	Rank(ctx context.Context, table string, score int) (int, error)
}

// Result is the outcome of a leaderboard request.
type Result struct {
	Table     string
	Records   []Record
	Rank      int // 0 when unknown
	Submitted bool
	Err       error
}

// Ok reports whether the request succeeded.
func (r Result) Ok() bool {
	return r.Err == nil
}

// Client wraps a Backend with timeouts and logging.
type Client struct {
	backend Backend
	logger  *log.Logger
	timeout time.Duration
}

// NewClient creates a client. A nil backend yields an offline client.
func NewClient(b Backend, logger *log.Logger) *Client {
	if logger == nil {
		logger = log.Default()
	}
	return &Client{
		backend: b,
		logger:  logger,
		timeout: 5 * time.Second,
	}
}

// SetTimeout overrides the per-request timeout.
func (c *Client) SetTimeout(d time.Duration) {
	c.timeout = d
}

// Online reports whether a backend is configured.
func (c *Client) Online() bool {
	return c.backend != nil
}

// SanitizeName trims whitespace, truncates to MaxNameLen runes and falls back
// to DefaultName.
func SanitizeName(name string) string {
	name = strings.TrimSpace(name)
	if utf8.RuneCountInString(name) > MaxNameLen {
		name = string([]rune(name)[:MaxNameLen])
	}
	if name == "" {
		return DefaultName
	}
	return name
}

func (c *Client) ctx(parent context.Context) (context.Context, context.CancelFunc) {
	if c.timeout <= 0 {
		return context.WithCancel(parent)
	}
	return context.WithTimeout(parent, c.timeout)
}

// Submit stores a record. Returns false on failure.
func (c *Client) Submit(ctx context.Context, rec Record) bool {
	if c.backend == nil {
		return false
	}
	rec.Name = SanitizeName(rec.Name)
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now()
	}

	ctx, cancel := c.ctx(ctx)
	defer cancel()
	if err := c.backend.Submit(ctx, rec); err != nil {
		c.logger.Warn("leaderboard submit failed", "table", rec.Table, "err", err)
		return false
	}
	return true
}

// Top fetches the best n records of a table.
func (c *Client) Top(ctx context.Context, table string, n int) Result {
	res := Result{Table: table}
	if c.backend == nil {
		res.Err = ErrOffline
		return res
	}

	ctx, cancel := c.ctx(ctx)
	defer cancel()
	recs, err := c.backend.Top(ctx, table, n)
	if err != nil {
		c.logger.Warn("leaderboard fetch failed", "table", table, "err", err)
		res.Err = err
		return res
	}
	res.Records = recs
	return res
}

// Rank returns the position a score would take, or 0 on failure.
func (c *Client) Rank(ctx context.Context, table string, score int) int {
	if c.backend == nil {
		return 0
	}

	ctx, cancel := c.ctx(ctx)
	defer cancel()
	rank, err := c.backend.Rank(ctx, table, score)
	if err != nil {
		c.logger.Warn("leaderboard rank failed", "table", table, "err", err)
		return 0
	}
	return rank
}

// SubmitAndFetch runs the end-of-run flow: submit, rank, then the top table.
// A failed submit still fetches the table so the player sees something.
func (c *Client) SubmitAndFetch(ctx context.Context, rec Record) Result {
	if c.backend == nil {
		return Result{Table: rec.Table, Err: ErrOffline}
	}

	submitted := c.Submit(ctx, rec)
	rank := c.Rank(ctx, rec.Table, rec.Score)
	res := c.Top(ctx, rec.Table, TopN)
	res.Submitted = submitted
	res.Rank = rank
	return res
}
