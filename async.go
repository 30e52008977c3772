package paging

import "context"

// Load builds a page snapshot from a context-aware source. Parameters are
// validated synchronously before the source is touched; the list is then
// allocated empty and populated by a single load pass (count, then slice).
// Callers never see a partially loaded list: on any source failure the
// allocation is discarded and only the error is returned.
func Load[T any](ctx context.Context, src Source[T], pageNumber, pageSize int) (*List[T], error) {
	if src == nil {
		return nil, ErrNilSource
	}
	if err := validatePageParams(pageNumber, pageSize); err != nil {
		return nil, err
	}

	l := newList[T](pageNumber, pageSize)
	if err := l.load(ctx, src); err != nil {
		return nil, err
	}
	return l, nil
}

// load populates counts and items from the source. Count and slice run
// sequentially; the slice offset depends only on the page parameters, but
// the Source contract gives no way to enumerate a window and count in one
// pass, and both must describe the same snapshot of the data.
func (l *List[T]) load(ctx context.Context, src Source[T]) error {
	total, err := src.Count(ctx)
	if err != nil {
		return err
	}
	l.setCounts(total)

	items, err := src.Slice(ctx, l.offset(), l.pageSize)
	if err != nil {
		return err
	}
	l.setItems(items)
	return nil
}
