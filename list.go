package paging

import "fmt"

// List is the one concrete PagedList implementation. It is populated once
// by New or Load and never mutated afterwards; every accessor is either a
// stored field or a pure function of stored fields.
type List[T any] struct {
	pageNumber int
	pageSize   int
	totalCount int
	pageCount  int
	items      []T
}

var _ PagedList[int] = (*List[int])(nil)

// newList allocates a list with validated page parameters only.
// Count, page count and items are filled in by the construction path.
func newList[T any](pageNumber, pageSize int) *List[T] {
	return &List[T]{pageNumber: pageNumber, pageSize: pageSize}
}

// New builds a page snapshot from a synchronous source: count everything,
// derive the page count, then cut the window for pageNumber. The source is
// enumerated twice; see the package doc for the trade-off.
func New[T any](src Queryable[T], pageNumber, pageSize int) (*List[T], error) {
	if src == nil {
		return nil, ErrNilSource
	}
	if err := validatePageParams(pageNumber, pageSize); err != nil {
		return nil, err
	}

	total, err := src.Count()
	if err != nil {
		return nil, err
	}

	l := newList[T](pageNumber, pageSize)
	l.setCounts(total)

	items, err := src.Slice(l.offset(), pageSize)
	if err != nil {
		return nil, err
	}
	l.setItems(items)
	return l, nil
}

// offset is the number of items to skip before this page starts.
func (l *List[T]) offset() int {
	return (l.pageNumber - 1) * l.pageSize
}

func (l *List[T]) setCounts(total int) {
	l.totalCount = total
	l.pageCount = ceilDiv(total, l.pageSize)
}

// setItems enforces the page invariants regardless of source behavior:
// never more than pageSize items, never a nil slice.
func (l *List[T]) setItems(items []T) {
	if len(items) > l.pageSize {
		items = items[:l.pageSize]
	}
	if items == nil {
		items = make([]T, 0)
	}
	l.items = items
}

func ceilDiv(total, size int) int {
	return (total + size - 1) / size
}

func (l *List[T]) PageNumber() int { return l.pageNumber }
func (l *List[T]) PageSize() int   { return l.pageSize }
func (l *List[T]) TotalCount() int { return l.totalCount }
func (l *List[T]) PageCount() int  { return l.pageCount }
func (l *List[T]) Items() []T      { return l.items }

func (l *List[T]) FirstItemOnPage() int {
	return l.offset() + 1
}

func (l *List[T]) LastItemOnPage() int {
	return l.FirstItemOnPage() + len(l.items) - 1
}

func (l *List[T]) HasNextPage() bool {
	return l.pageNumber < l.pageCount
}

func (l *List[T]) HasPreviousPage() bool {
	return l.pageNumber > 1
}

func (l *List[T]) IsFirstPage() bool {
	return l.pageNumber == 1
}

// IsLastPage treats an empty source as a single empty page, so page 1 of
// nothing reports both first and last. A requested page beyond a non-empty
// range keeps the plain equality and reports false.
func (l *List[T]) IsLastPage() bool {
	return l.pageCount == 0 || l.pageNumber == l.pageCount
}

// At returns the item at index i within this page.
func (l *List[T]) At(i int) (T, error) {
	if i < 0 || i >= len(l.items) {
		var zero T
		return zero, fmt.Errorf("%w: index %d, page holds %d items", ErrIndexOutOfRange, i, len(l.items))
	}
	return l.items[i], nil
}
