package uuid

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultUUIDIsParseable(t *testing.T) {
	id := New().NewUUID()

	_, err := uuid.Parse(id)
	require.NoError(t, err)
	assert.NotEqual(t, id, New().NewUUID())
}

func TestSequence(t *testing.T) {
	seq := NewSequence("seed-42")

	assert.Equal(t, "seed-42-1", seq.NewUUID())
	assert.Equal(t, "seed-42-2", seq.NewUUID())
}
