package cache

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPutGetRoundTrip(t *testing.T) {
	c := New(filepath.Join(t.TempDir(), "cache.json"))

	var out []string
	assert.ErrorIs(t, c.Get(&out), ErrEmpty)

	require.NoError(t, c.Put([]string{"a", "b"}))
	require.NoError(t, c.Get(&out))
	assert.Equal(t, []string{"a", "b"}, out)

	// second Put replaces, not appends
	require.NoError(t, c.Put([]string{"c"}))
	out = nil
	require.NoError(t, c.Get(&out))
	assert.Equal(t, []string{"c"}, out)
}
