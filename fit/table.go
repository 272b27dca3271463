package fit

import (
	"slices"
	"sync"
)

// Table is the shared category fit table: a mutex-guarded mapping from
// category label to its best fit.
//
// During a batch each category's entry is written exactly once, by the worker
// owning that category; the lock is held only for the duration of the map
// insert, never during the numeric solve. All methods are safe for concurrent
// use.
type Table struct {
	mu   sync.RWMutex
	fits map[string]*Result
}

// NewTable creates an empty table.
func NewTable() *Table {
	return &Table{fits: make(map[string]*Result)}
}

// Set stores the best fit for a category, replacing any previous entry.
func (t *Table) Set(category string, result *Result) {
	t.mu.Lock()
	t.fits[category] = result
	t.mu.Unlock()
}

// Get returns the best fit for a category.
func (t *Table) Get(category string) (*Result, bool) {
	t.mu.RLock()
	r, ok := t.fits[category]
	t.mu.RUnlock()

	return r, ok
}

// Len returns the number of categories with a fit.
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return len(t.fits)
}

// Categories returns all category labels in sorted order.
func (t *Table) Categories() []string {
	t.mu.RLock()
	labels := make([]string, 0, len(t.fits))
	for label := range t.fits {
		labels = append(labels, label)
	}
	t.mu.RUnlock()

	slices.Sort(labels)

	return labels
}

// Results returns a shallow copy of the category to best-fit mapping. The
// Result values are immutable and safe to share.
func (t *Table) Results() map[string]*Result {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make(map[string]*Result, len(t.fits))
	for label, r := range t.fits {
		out[label] = r
	}

	return out
}
