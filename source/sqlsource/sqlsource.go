// Package sqlsource provides a paging source over database/sql, for
// deployments that are not on pgx. The query contract matches pgsource:
// a count query returning one integer and a page query whose final two
// placeholders are limit and offset, in the caller's placeholder style.
package sqlsource

import (
	"context"
	"database/sql"
	"errors"

	"github.com/rs/zerolog"
)

// ScanFunc turns the current row into an item. It must not call Next.
type ScanFunc[T any] func(rows *sql.Rows) (T, error)

// Source implements paging.Source[T] over an *sql.DB.
type Source[T any] struct {
	db         *sql.DB
	countQuery string
	pageQuery  string
	scan       ScanFunc[T]
	log        zerolog.Logger
}

// New wires a source to an open database handle. All arguments are required.
func New[T any](db *sql.DB, countQuery, pageQuery string, scan ScanFunc[T], logger zerolog.Logger) (*Source[T], error) {
	if db == nil {
		return nil, errors.New("db is required")
	}
	if countQuery == "" || pageQuery == "" {
		return nil, errors.New("count and page queries are required")
	}
	if scan == nil {
		return nil, errors.New("scan func is required")
	}
	l := logger.With().Str("component", "sqlsource").Logger()
	return &Source[T]{db: db, countQuery: countQuery, pageQuery: pageQuery, scan: scan, log: l}, nil
}

// Count runs the count query and expects a single integer back.
func (s *Source[T]) Count(ctx context.Context) (int, error) {
	var total int
	if err := s.db.QueryRowContext(ctx, s.countQuery).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}

// Slice runs the page query with the computed limit and offset.
// Row errors surface through rows.Err after the scan loop, so a failure
// midway through a page aborts the whole slice rather than truncating it.
func (s *Source[T]) Slice(ctx context.Context, offset, limit int) ([]T, error) {
	rows, err := s.db.QueryContext(ctx, s.pageQuery, limit, offset)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

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
