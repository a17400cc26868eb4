package alloc

import "errors"

var (
	// ErrOutOfMemory indicates that backing storage could not be obtained.
	ErrOutOfMemory = errors.New("alloc: out of memory")

	// ErrBadSize indicates a negative or overflowing slot count.
	ErrBadSize = errors.New("alloc: bad slot count")

	// ErrReleased indicates use of an arena after Release.
	ErrReleased = errors.New("alloc: arena used after release")
)
