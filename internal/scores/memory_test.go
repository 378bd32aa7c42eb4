package scores

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	got, err := s.Top(ctx, 5)
	require.NoError(t, err)
	assert.Empty(t, got)

	ts := time.Date(2026, 8, 26, 9, 0, 0, 0, time.UTC)
	require.NoError(t, s.Append(ctx, NewEntry("a", "pvc", true, 5, 10, ts)))
	require.NoError(t, s.Append(ctx, NewEntry("b", "pvc", true, 1, 10, ts)))

	got, err = s.Top(ctx, 5)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "b", got[0].PlayerName)
	assert.Equal(t, "a", got[1].PlayerName)
}
