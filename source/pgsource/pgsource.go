// Package pgsource provides a paging source backed by PostgreSQL via pgx.
//
// The caller supplies two queries: one that counts the full result set and
// one that selects a page ordered the same way, with limit and offset as
// its final two placeholders. Keeping the SQL in the caller's hands means
// the package never guesses at ordering or filtering; it only windows.
package pgsource

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/tracelog"
	"github.com/rs/zerolog"
)

// Querier is the subset of *pgxpool.Pool the source needs. Tests fake it;
// production code passes the pool straight in.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// ScanFunc turns the current row into an item. It must not call Next.
type ScanFunc[T any] func(rows pgx.Rows) (T, error)

// Source implements paging.Source[T] over a count query and a page query.
//
// The page query receives limit as its next-to-last and offset as its last
// argument, e.g.
//
//	SELECT id, name FROM teams ORDER BY id LIMIT $1 OFFSET $2
type Source[T any] struct {
	q          Querier
	countQuery string
	pageQuery  string
	scan       ScanFunc[T]
	log        zerolog.Logger
}

// New wires a source to an existing querier. All arguments are required.
func New[T any](q Querier, countQuery, pageQuery string, scan ScanFunc[T], logger zerolog.Logger) (*Source[T], error) {
	if q == nil {
		return nil, errors.New("querier is required")
	}
	if countQuery == "" || pageQuery == "" {
		return nil, errors.New("count and page queries are required")
	}
	if scan == nil {
		return nil, errors.New("scan func is required")
	}
	l := logger.With().Str("component", "pgsource").Logger()
	return &Source[T]{q: q, countQuery: countQuery, pageQuery: pageQuery, scan: scan, log: l}, nil
}

// Count runs the count query and expects a single integer back.
// Errors pass through untranslated; the paging core surfaces them as-is.
func (s *Source[T]) Count(ctx context.Context) (int, error) {
	var total int
	if err := s.q.QueryRow(ctx, s.countQuery).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}

// Slice runs the page query with the computed limit and offset and scans
// every returned row.
func (s *Source[T]) Slice(ctx context.Context, offset, limit int) ([]T, error) {
	rows, err := s.q.Query(ctx, s.pageQuery, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]T, 0, limit)
	for rows.Next() {
		item, err := s.scan(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	s.log.Debug().Int("limit", limit).Int("offset", offset).Int("rows", len(items)).Msg("page fetched")
	return items, nil
}

// NewPool opens a pgx pool with SQL tracing wired into the given logger
// and verifies connectivity before handing it back. Convenience for
// callers that don't already manage a pool.
func NewPool(ctx context.Context, dsn string, logger zerolog.Logger) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, err
	}
	cfg.ConnConfig.Tracer = &tracelog.TraceLog{
		Logger:   newPgxLogger(logger),
		LogLevel: traceLevel(logger),
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}

	// Ping with a bounded timeout so a dead database fails fast instead of
	// hanging the caller's startup.
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, err
	}
	return pool, nil
}
