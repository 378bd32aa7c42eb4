package colors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToSymbols(t *testing.T) {
	code, err := ToSymbols([]string{"Red", "Green", "Blue", "Yellow"})
	require.NoError(t, err)
	assert.Equal(t, "0213", code)

	// Names are matched case-insensitively.
	code, err = ToSymbols([]string{"red", "GREEN", "blue", "yellow"})
	require.NoError(t, err)
	assert.Equal(t, "0213", code)

	_, err = ToSymbols([]string{"Red", "Magenta"})
	assert.Error(t, err)
}

func TestToColors(t *testing.T) {
	names, err := ToColors("0213")
	require.NoError(t, err)
	assert.Equal(t, []string{"Red", "Green", "Blue", "Yellow"}, names)

	_, err = ToColors("09")
	assert.Error(t, err)
}

func TestRoundTrip(t *testing.T) {
	names, err := ToColors(Alphabet())
	require.NoError(t, err)
	assert.Equal(t, Ordered, names)

	code, err := ToSymbols(names)
	require.NoError(t, err)
	assert.Equal(t, Alphabet(), code)
}

func TestAlphabet(t *testing.T) {
	assert.Equal(t, "012345", Alphabet())
	assert.Len(t, Ordered, len(Alphabet()))
}
