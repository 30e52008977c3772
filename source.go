package paging

import (
	"context"
	"iter"
)

// Queryable is the synchronous source contract: an ordered sequence that
// can report its size and cut out a window. Offset and limit arrive
// already validated (offset >= 0, limit >= 1); implementations may return
// fewer than limit items when the window runs past the end.
type Queryable[T any] interface {
	Count() (int, error)
	Slice(offset, limit int) ([]T, error)
}

// Source is the context-aware counterpart of Queryable, for sequences that
// live behind I/O. Implementations should honor ctx cancellation; the
// paging core adds no cancellation or timeout of its own.
type Source[T any] interface {
	Count(ctx context.Context) (int, error)
	Slice(ctx context.Context, offset, limit int) ([]T, error)
}

// FuncSource adapts a pair of functions to the Source interface, so simple
// closures can act as sources without a named type. Both fields must be set.
type FuncSource[T any] struct {
	CountFn func(ctx context.Context) (int, error)
	SliceFn func(ctx context.Context, offset, limit int) ([]T, error)
}

func (f FuncSource[T]) Count(ctx context.Context) (int, error) {
	return f.CountFn(ctx)
}

func (f FuncSource[T]) Slice(ctx context.Context, offset, limit int) ([]T, error) {
	return f.SliceFn(ctx, offset, limit)
}

// SliceSource is an in-memory Queryable over a plain slice. The slice is
// not copied; it must not change while pages are being built from it.
type SliceSource[T any] struct {
	items []T
}

func NewSliceSource[T any](items []T) *SliceSource[T] {
	return &SliceSource[T]{items: items}
}

func (s *SliceSource[T]) Count() (int, error) {
	return len(s.items), nil
}

func (s *SliceSource[T]) Slice(offset, limit int) ([]T, error) {
	if offset >= len(s.items) {
		return nil, nil
	}
	end := offset + limit
	if end > len(s.items) {
		end = len(s.items)
	}
	return s.items[offset:end], nil
}

// seqSource wraps a re-iterable sequence. Count and Slice each walk the
// sequence from the start, which is exactly the two-pass cost model the
// package documents; the seq must yield the same elements on every walk.
type seqSource[T any] struct {
	seq iter.Seq[T]
}

// FromSeq adapts an iter.Seq to the Queryable contract.
func FromSeq[T any](seq iter.Seq[T]) Queryable[T] {
	return seqSource[T]{seq: seq}
}

func (s seqSource[T]) Count() (int, error) {
	n := 0
	for range s.seq {
		n++
	}
	return n, nil
}

func (s seqSource[T]) Slice(offset, limit int) ([]T, error) {
	out := make([]T, 0, limit)
	i := 0
	for v := range s.seq {
		if i >= offset+limit {
			break
		}
		if i >= offset {
			out = append(out, v)
		}
		i++
	}
	return out, nil
}

// AsSource lifts a Queryable into the Source contract. The adapter checks
// ctx before each call but cannot interrupt the underlying enumeration.
func AsSource[T any](q Queryable[T]) Source[T] {
	return ctxAdapter[T]{q: q}
}

type ctxAdapter[T any] struct {
	q Queryable[T]
}

func (a ctxAdapter[T]) Count(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	return a.q.Count()
}

func (a ctxAdapter[T]) Slice(ctx context.Context, offset, limit int) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return a.q.Slice(offset, limit)
}
