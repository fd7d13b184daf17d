package dynarray

import (
	"errors"
	"fmt"
)

// Sentinel errors carried by UsageError. Misuse is never returned as a
// value: it panics with a *UsageError wrapping one of these.
var (
	ErrIndexOutOfRange     = errors.New("index out of range")
	ErrInvalidRange        = errors.New("invalid range")
	ErrEmpty               = errors.New("empty array")
	ErrNegativeCount       = errors.New("negative count")
	ErrCapacityBelowLength = errors.New("capacity below length")
	ErrReleased            = errors.New("use after release")
	ErrConsumed            = errors.New("builder already consumed")
	ErrNilArray            = errors.New("nil array")
	ErrNilFunc             = errors.New("nil function")
)

// UsageError reports a programmer error detected at the point of misuse.
// The operation that detected it leaves the container unchanged.
type UsageError struct {
	Op     string
	Err    error
	Detail string
}

func (e *UsageError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("dynarray: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("dynarray: %s: %v (%s)", e.Op, e.Err, e.Detail)
}

func (e *UsageError) Unwrap() error {
	return e.Err
}

// IsUsageError reports whether v (typically a recovered panic value) is,
// or wraps, a *UsageError.
func IsUsageError(v any) bool {
	err, ok := v.(error)
	if !ok {
		return false
	}
	var ue *UsageError
	return errors.As(err, &ue)
}

func usageErr(op string, err error, format string, args ...any) *UsageError {
	ue := &UsageError{Op: op, Err: err}
	if format != "" {
		ue.Detail = fmt.Sprintf(format, args...)
	}
	return ue
}
