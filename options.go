package dynarray

// options.go implements construction-time configuration for arrays and builders.

import "github.com/pavanmanishd/dynarray/internal/logging"

// Logger is an alias for the logging.Logger interface.
// This allows users to pass their own logger implementation.
type Logger = logging.Logger

// Level is an alias for the logging level type.
type Level = logging.Level

// Log levels re-exported for NewLogger.
const (
	LevelError = logging.LevelError
	LevelWarn  = logging.LevelWarn
	LevelInfo  = logging.LevelInfo
	LevelDebug = logging.LevelDebug
)

// NewLogger returns a stderr logger at the given level.
func NewLogger(level Level) Logger {
	return logging.NewDefaultLogger(level)
}

// Options configures an Array (and the Array a Builder produces).
// The zero value is valid and equals DefaultOptions.
type Options[T any] struct {
	// Growth governs how a full buffer over-allocates. Builders ignore it
	// while building and always double.
	Growth Growth

	// Hooks are the per-element retain/destroy callbacks.
	Hooks Hooks[T]

	// Allocator supplies buffers. nil means HeapAllocator.
	Allocator Allocator[T]

	// Logger receives misuse reports (ERROR) and reallocations (DEBUG).
	// nil means no logging.
	Logger Logger

	// OnFailure observes every misuse before the operation panics. It may
	// log, count or abort the process; it cannot make the operation proceed.
	OnFailure func(err error)
}

// DefaultOptions returns doubling growth, heap allocation, no hooks and no logging.
func DefaultOptions[T any]() Options[T] {
	return Options[T]{
		Growth:    Doubling(),
		Allocator: HeapAllocator[T]{},
		Logger:    logging.Discard,
	}
}

// sanitized fills unset fields with their defaults.
func (o Options[T]) sanitized() Options[T] {
	if o.Allocator == nil {
		o.Allocator = HeapAllocator[T]{}
	}
	o.Logger = logging.OrDefault(o.Logger)
	return o
}

// fail reports misuse through the logger and failure handler, then panics.
func (o *Options[T]) fail(ns string, err *UsageError) {
	o.Logger.Errorf(ns+"%v", err)
	if o.OnFailure != nil {
		o.OnFailure(err)
	}
	panic(err)
}
