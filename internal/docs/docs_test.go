package docs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTopicsAreSortedAndReadable(t *testing.T) {
	topics := Topics()
	require.Equal(t, []string{"config", "keys", "serve"}, topics)

	for _, topic := range topics {
		body, ok := Get(topic)
		require.True(t, ok, topic)
		assert.NotEmpty(t, body, topic)
	}
}

func TestGetNormalizesAndRejectsUnknown(t *testing.T) {
	body, ok := Get("  KEYS ")
	require.True(t, ok)
	assert.Contains(t, body, "Keys")

	_, ok = Get("")
	assert.False(t, ok)
	_, ok = Get("nope")
	assert.False(t, ok)
}
