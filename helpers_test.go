package dynarray

import (
	"io"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pavanmanishd/dynarray/internal/logging"
)

// requireMisuse runs fn and requires it to panic with a *UsageError wrapping want.
func requireMisuse(t *testing.T, want error, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected panic wrapping %v", want)
		err, ok := r.(error)
		require.Truef(t, ok, "panic value %v is not an error", r)
		require.ErrorIs(t, err, want)
		require.True(t, IsUsageError(r))
	}()
	fn()
}

func newTestLogger(w io.Writer) Logger {
	return logging.NewDefaultLoggerWithWriter(w, LevelDebug)
}

func ints(n int) *Array[int] {
	a := New[int](0)
	for i := 0; i < n; i++ {
		a.Push(i)
	}
	return a
}

// tracked is an element whose Clone and Release are counted by a tracker.
type tracked struct {
	id int
	tr *tracker
}

type tracker struct {
	clones   int
	releases []int
}

func (tr *tracker) make(id int) tracked {
	return tracked{id: id, tr: tr}
}

func (v tracked) Clone() tracked {
	v.tr.clones++
	return v
}

func (v tracked) Release() {
	v.tr.releases = append(v.tr.releases, v.id)
}

// countingHooks counts hook calls on ints.
type countingHooks struct {
	retained  []int
	destroyed []int
}

func (c *countingHooks) hooks() Hooks[int] {
	return Hooks[int]{
		Retain: func(v int) int {
			c.retained = append(c.retained, v)
			return v
		},
		Destroy: func(v int) {
			c.destroyed = append(c.destroyed, v)
		},
	}
}
