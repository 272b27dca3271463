package fit

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/survlab/survfit/curve"
)

func testResult(t *testing.T, typ curve.Type) *Result {
	t.Helper()

	r, err := NewResult(typ, Params{K: 2.0, Alpha: 0.5}, 0.01)
	require.NoError(t, err)

	return r
}

func TestTable_Basic(t *testing.T) {
	table := NewTable()
	require.Zero(t, table.Len())

	_, ok := table.Get("missing")
	require.False(t, ok)

	table.Set("b", testResult(t, curve.Tanh))
	table.Set("a", testResult(t, curve.Logistic))

	require.Equal(t, 2, table.Len())
	require.Equal(t, []string{"a", "b"}, table.Categories())

	r, ok := table.Get("a")
	require.True(t, ok)
	require.Equal(t, curve.Logistic, r.Type)
}

func TestTable_ResultsIsACopy(t *testing.T) {
	table := NewTable()
	table.Set("a", testResult(t, curve.Logistic))

	results := table.Results()
	delete(results, "a")

	require.Equal(t, 1, table.Len())
}

// TestTable_ConcurrentWrites mirrors the batch write pattern: many workers,
// one distinct key each, no lost or duplicated entries.
func TestTable_ConcurrentWrites(t *testing.T) {
	const n = 100

	table := NewTable()
	shared := testResult(t, curve.Algebraic) // immutable, safe to share

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			table.Set(fmt.Sprintf("category-%03d", i), shared)
		}(i)
	}
	wg.Wait()

	require.Equal(t, n, table.Len())
}
