// internal/scores/store.go
//
// Store is the persistence interface for completed-game entries.
// Implementations: JSON file (file.go, the default), SQLite
// (sqlite.go), and memory (memory.go, for tests and throwaway runs).

package scores

import (
	"context"
	"sort"
)

// Store persists score entries and answers ranked queries.
// Append order is preserved by implementations; ranking is computed on
// read, never stored.
type Store interface {
	// Append durably records one entry.
	Append(ctx context.Context, e Entry) error

	// Top returns at most limit entries ranked best-first.
	// A negative limit returns everything.
	Top(ctx context.Context, limit int) ([]Entry, error)
}

// rank sorts entries by score descending, breaking ties by earlier
// timestamp, and truncates to limit. The input slice is not modified.
func rank(entries []Entry, limit int) []Entry {
	out := make([]Entry, len(entries))
	copy(out, entries)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return out[i].Timestamp < out[j].Timestamp
	})
	if limit >= 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}
