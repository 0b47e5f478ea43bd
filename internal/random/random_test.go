package random

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeededRollersAgree(t *testing.T) {
	a := New(&Config{Seed: 7})
	b := New(&Config{Seed: 7})

	for i := 0; i < 50; i++ {
		assert.Equal(t, a.Intn(100), b.Intn(100))
		assert.Equal(t, a.Bool(), b.Bool())
	}
}

func TestIntnBounds(t *testing.T) {
	r := New(nil)

	assert.Zero(t, r.Intn(0))
	assert.Zero(t, r.Intn(-5))
	for i := 0; i < 200; i++ {
		v := r.Intn(3)
		assert.GreaterOrEqual(t, v, 0)
		assert.Less(t, v, 3)
	}
}
