package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncode(t *testing.T) {
	raw, err := encode("42")
	require.NoError(t, err)
	assert.Equal(t, "42", string(raw))

	raw, err = encode(map[string]int64{"total": 6500})
	require.NoError(t, err)
	assert.JSONEq(t, `{"total":6500}`, string(raw))

	_, err = encode(make(chan int))
	assert.Error(t, err)
}
