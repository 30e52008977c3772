package paging

import "errors"

// Marker errors for the failure modes callers are expected to branch on.
// I keep them as plain sentinels so errors.Is works across wrapping.
var (
	// ErrNilSource is returned when a constructor receives no source at all.
	ErrNilSource = errors.New("source is required")

	// ErrPageOutOfRange is the marker for invalid page parameters.
	// Field-level details are retrieved via FieldErrors(err).
	ErrPageOutOfRange = errors.New("page parameters out of range")

	// ErrIndexOutOfRange is returned by At for indexes outside the page.
	ErrIndexOutOfRange = errors.New("index out of range")
)

// FieldError describes a single invalid construction parameter.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// outOfRangeError aggregates FieldError instances and unwraps to ErrPageOutOfRange.
type outOfRangeError struct {
	fields []FieldError
}

func (e *outOfRangeError) Error() string        { return ErrPageOutOfRange.Error() }
func (e *outOfRangeError) Unwrap() error        { return ErrPageOutOfRange }
func (e *outOfRangeError) Fields() []FieldError { return e.fields }

// newOutOfRange builds an aggregated parameter error if any field errors are present.
func newOutOfRange(fe []FieldError) error {
	if len(fe) == 0 { // protective case
		return nil
	}
	return &outOfRangeError{fields: fe}
}

// FieldErrors extracts field errors from an aggregated parameter error.
func FieldErrors(err error) []FieldError {
	if err == nil {
		return nil
	}
	type feIface interface{ Fields() []FieldError }
	if v, ok := err.(feIface); ok && errors.Is(err, ErrPageOutOfRange) {
		return v.Fields()
	}
	return nil
}

// PagedList is the read-only surface every paged result exposes,
// regardless of which construction path produced it. Callers should
// depend on this interface, not on *List, so sources and construction
// strategies stay swappable.
type PagedList[T any] interface {
	// PageNumber is the 1-based page this snapshot holds.
	PageNumber() int
	// PageSize is the requested window size; the last page may hold fewer items.
	PageSize() int
	// TotalCount is the number of items in the entire source, not just this page.
	TotalCount() int
	// PageCount is ceil(TotalCount / PageSize).
	PageCount() int

	// Items returns the items on this page, in source order.
	// The slice is owned by the list; callers must not mutate it.
	Items() []T

	// FirstItemOnPage and LastItemOnPage are 1-based positions within the
	// whole source, the way a "showing 21-25 of 25" footer counts them.
	FirstItemOnPage() int
	LastItemOnPage() int

	HasNextPage() bool
	HasPreviousPage() bool
	IsFirstPage() bool
	IsLastPage() bool

	// At returns the item at index i within the page, or ErrIndexOutOfRange
	// when i is outside [0, len(Items())).
	At(i int) (T, error)
}
