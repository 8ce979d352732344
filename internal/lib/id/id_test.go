package id

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAt(t *testing.T) {
	ts := time.UnixMilli(1700000000123)

	got := NewAt(ts)

	parts := strings.SplitN(got, "-", 2)
	require.Len(t, parts, 2)
	assert.Equal(t, "1700000000123", parts[0])
	assert.Len(t, parts[1], randomLen)
}

func TestNew_Unique(t *testing.T) {
	seen := make(map[string]struct{}, 1000)
	for i := 0; i < 1000; i++ {
		v := New()
		_, dup := seen[v]
		require.False(t, dup, "duplicate id %s", v)
		seen[v] = struct{}{}
	}
}
