package eytzmap

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// requirePanicsIs runs f and requires it to panic with an error matching
// target.
func requirePanicsIs(t *testing.T, target error, f func()) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected a panic")
		err, ok := r.(error)
		require.True(t, ok, "panic value %v is not an error", r)
		require.ErrorIs(t, err, target)
	}()
	f()
}

func identityEntries(n int) []Entry[int, int] {
	entries := make([]Entry[int, int], 0, n)
	for i := range n {
		entries = append(entries, Entry[int, int]{Key: i, Value: i})
	}
	return entries
}
