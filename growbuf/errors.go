package growbuf

import "errors"

var (
	// ErrCapacityBelowLen indicates a Reserve below the current live
	// length. Shrinking capacity never discards live elements; callers
	// must Resize first.
	ErrCapacityBelowLen = errors.New("growbuf: capacity below length")

	// ErrNegativeCount indicates a negative size or capacity argument.
	ErrNegativeCount = errors.New("growbuf: negative count")
)
