package id

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var idPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{6}$`)

func TestNew(t *testing.T) {
	seen := make(map[string]struct{}, 1000)
	for i := 0; i < 1000; i++ {
		v, err := New()
		require.NoError(t, err)
		assert.Len(t, v, Length)
		assert.Regexp(t, idPattern, v)
		_, dup := seen[v]
		assert.False(t, dup, "duplicate id %q", v)
		seen[v] = struct{}{}
	}
}
