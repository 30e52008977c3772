// Package paging computes fixed-size pages over an ordered data source.
//
// Given a source that can count its elements and slice out a window, the
// package materializes one page as an immutable snapshot: total item
// count, total page count, the items on the requested page, and the
// derived navigation flags (first/last page, has next/previous).
//
// Two construction paths exist for the same result type:
//
//	list, err := paging.New(src, pageNumber, pageSize)            // Queryable source
//	list, err := paging.Load(ctx, src, pageNumber, pageSize)      // context-aware source
//
// The source is enumerated twice per construction, once to count and once
// to cut the page window. That is a deliberate trade-off: pick a source
// whose count is cheap (an indexed store, a Redis list, a SQL COUNT) when
// the data is expensive to walk. Adapters for pgx, database/sql and Redis
// live under source/.
//
// The package itself never sorts, filters or retries; the source is
// expected to be ordered already, and any error it reports is returned to
// the caller unchanged.
package paging
