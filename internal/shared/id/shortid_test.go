package id

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	t.Run("default length", func(t *testing.T) {
		id, err := Generate(0)
		require.NoError(t, err)
		assert.Len(t, id, DefaultLength)
		assert.True(t, IsValid(id, DefaultLength))
	})

	t.Run("custom length", func(t *testing.T) {
		id, err := Generate(SessionIDLength)
		require.NoError(t, err)
		assert.Len(t, id, SessionIDLength)
	})

	t.Run("ids are unique", func(t *testing.T) {
		seen := make(map[string]bool)
		for i := 0; i < 100; i++ {
			id := MustGenerate(DefaultLength)
			assert.False(t, seen[id])
			seen[id] = true
		}
	})
}

func TestGenerateWithPrefix(t *testing.T) {
	id, err := GenerateWithPrefix("att", 8)
	require.NoError(t, err)
	assert.Len(t, id, len("att_")+8)
	assert.Equal(t, "att_", id[:4])
}

func TestIsValid(t *testing.T) {
	assert.True(t, IsValid("abcDEF123456", 12))
	assert.False(t, IsValid("too-short", 12))
	assert.False(t, IsValid("has spaces!!", 12))
}
