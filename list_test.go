package paging_test

import (
	"errors"
	"testing"

	paging "github.com/maxviazov/go-paging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeQueryable serves ints out of a slice and can be told to fail either
// pass, so error propagation stays observable without a real store.
type fakeQueryable struct {
	items      []int
	countErr   error
	sliceErr   error
	sliceExtra int // extra items returned beyond limit, to probe truncation
}

func (f *fakeQueryable) Count() (int, error) {
	if f.countErr != nil {
		return 0, f.countErr
	}
	return len(f.items), nil
}

func (f *fakeQueryable) Slice(offset, limit int) ([]int, error) {
	if f.sliceErr != nil {
		return nil, f.sliceErr
	}
	if offset >= len(f.items) {
		return nil, nil
	}
	end := offset + limit + f.sliceExtra
	if end > len(f.items) {
		end = len(f.items)
	}
	return f.items[offset:end], nil
}

var _ paging.Queryable[int] = (*fakeQueryable)(nil)

func intsUpTo(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i + 1
	}
	return out
}

func TestNew_FirstPage(t *testing.T) {
	list, err := paging.New(&fakeQueryable{items: intsUpTo(25)}, 1, 10)
	require.NoError(t, err)

	assert.Equal(t, 25, list.TotalCount())
	assert.Equal(t, 3, list.PageCount())
	assert.Len(t, list.Items(), 10)
	assert.Equal(t, 1, list.FirstItemOnPage())
	assert.Equal(t, 10, list.LastItemOnPage())
	assert.True(t, list.HasNextPage())
	assert.False(t, list.HasPreviousPage())
	assert.True(t, list.IsFirstPage())
	assert.False(t, list.IsLastPage())
}

func TestNew_LastShortPage(t *testing.T) {
	list, err := paging.New(&fakeQueryable{items: intsUpTo(25)}, 3, 10)
	require.NoError(t, err)

	assert.Len(t, list.Items(), 5)
	assert.Equal(t, []int{21, 22, 23, 24, 25}, list.Items())
	assert.Equal(t, 21, list.FirstItemOnPage())
	assert.Equal(t, 25, list.LastItemOnPage())
	assert.True(t, list.IsLastPage())
	assert.False(t, list.HasNextPage())
	assert.True(t, list.HasPreviousPage())
}

func TestNew_EmptySource(t *testing.T) {
	list, err := paging.New(&fakeQueryable{}, 1, 10)
	require.NoError(t, err)

	assert.Equal(t, 0, list.TotalCount())
	assert.Equal(t, 0, list.PageCount())
	assert.NotNil(t, list.Items())
	assert.Empty(t, list.Items())
	// An empty source behaves as a single empty page.
	assert.True(t, list.IsFirstPage())
	assert.True(t, list.IsLastPage())
	assert.False(t, list.HasNextPage())
	assert.False(t, list.HasPreviousPage())
}

func TestNew_PageBeyondRange(t *testing.T) {
	list, err := paging.New(&fakeQueryable{items: intsUpTo(25)}, 5, 10)
	require.NoError(t, err)

	assert.Empty(t, list.Items())
	assert.Equal(t, 41, list.FirstItemOnPage())
	assert.Equal(t, 40, list.LastItemOnPage())
	assert.False(t, list.HasNextPage())
	assert.True(t, list.HasPreviousPage())
	assert.False(t, list.IsLastPage()) // beyond the range is not "the last page"
}

func TestNew_InvalidParams(t *testing.T) {
	cases := []struct {
		name      string
		page      int
		size      int
		wantField string
	}{
		{"zero page", 0, 10, "page_number"},
		{"negative page", -2, 10, "page_number"},
		{"zero size", 1, 0, "page_size"},
		{"negative size", 1, -5, "page_size"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := paging.New(&fakeQueryable{items: intsUpTo(3)}, tc.page, tc.size)
			require.ErrorIs(t, err, paging.ErrPageOutOfRange)

			fields := make([]string, 0, 2)
			for _, fe := range paging.FieldErrors(err) {
				fields = append(fields, fe.Field)
			}
			assert.Contains(t, fields, tc.wantField)
		})
	}
}

func TestNew_BothParamsInvalid(t *testing.T) {
	_, err := paging.New(&fakeQueryable{}, 0, 0)
	require.ErrorIs(t, err, paging.ErrPageOutOfRange)
	assert.Len(t, paging.FieldErrors(err), 2)
}

func TestNew_NilSource(t *testing.T) {
	_, err := paging.New[int](nil, 1, 10)
	require.ErrorIs(t, err, paging.ErrNilSource)
}

func TestNew_SourceErrorsPassThrough(t *testing.T) {
	boom := errors.New("connection reset")

	_, err := paging.New(&fakeQueryable{countErr: boom}, 1, 10)
	assert.Equal(t, boom, err) // unchanged, not wrapped

	_, err = paging.New(&fakeQueryable{items: intsUpTo(5), sliceErr: boom}, 1, 10)
	assert.Equal(t, boom, err)
}

func TestNew_TruncatesOverReturningSource(t *testing.T) {
	list, err := paging.New(&fakeQueryable{items: intsUpTo(25), sliceExtra: 3}, 1, 10)
	require.NoError(t, err)
	assert.Len(t, list.Items(), 10)
}

func TestList_PageArithmetic(t *testing.T) {
	cases := []struct {
		total, size, wantPages int
	}{
		{0, 10, 0},
		{1, 10, 1},
		{9, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{25, 10, 3},
		{25, 1, 25},
		{25, 25, 1},
		{25, 100, 1},
	}

	for _, tc := range cases {
		list, err := paging.New(&fakeQueryable{items: intsUpTo(tc.total)}, 1, tc.size)
		require.NoError(t, err)
		assert.Equalf(t, tc.wantPages, list.PageCount(), "total=%d size=%d", tc.total, tc.size)
	}
}

func TestList_FlagsConsistentAcrossPages(t *testing.T) {
	src := &fakeQueryable{items: intsUpTo(25)}
	for page := 1; page <= 3; page++ {
		list, err := paging.New(src, page, 10)
		require.NoError(t, err)

		assert.Equal(t, page == 1, list.IsFirstPage())
		assert.Equal(t, page == 3, list.IsLastPage())
		assert.Equal(t, !list.IsLastPage(), list.HasNextPage())
		assert.Equal(t, !list.IsFirstPage(), list.HasPreviousPage())
		assert.Equal(t, (page-1)*10+1, list.FirstItemOnPage())
		assert.Equal(t, list.FirstItemOnPage()+len(list.Items())-1, list.LastItemOnPage())

		if page < 3 {
			assert.Len(t, list.Items(), 10) // every page but the last is full
		}
	}
}

func TestList_At(t *testing.T) {
	list, err := paging.New(&fakeQueryable{items: intsUpTo(25)}, 3, 10)
	require.NoError(t, err)

	for i, want := range list.Items() {
		got, err := list.At(i)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err = list.At(-1)
	assert.ErrorIs(t, err, paging.ErrIndexOutOfRange)
	_, err = list.At(len(list.Items()))
	assert.ErrorIs(t, err, paging.ErrIndexOutOfRange)
}
