package namegen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLines_DeterministicForSeed(t *testing.T) {
	a := New(42, DefaultMiddleRatio).Lines(200)
	b := New(42, DefaultMiddleRatio).Lines(200)
	assert.Equal(t, a, b)

	c := New(7, DefaultMiddleRatio).Lines(200)
	assert.NotEqual(t, a, c)
}

func TestLines_HaveAtLeastTwoTokens(t *testing.T) {
	for _, line := range New(1, DefaultMiddleRatio).Lines(500) {
		fields := strings.Fields(line)
		assert.GreaterOrEqual(t, len(fields), 2, line)
		assert.LessOrEqual(t, len(fields), 4, line)
	}
}

func TestLines_MiddleRatioBounds(t *testing.T) {
	for _, line := range New(3, 0).Lines(100) {
		assert.Len(t, strings.Fields(line), 2, line)
	}
	for _, line := range New(3, 1).Lines(100) {
		assert.GreaterOrEqual(t, len(strings.Fields(line)), 3, line)
	}
}

func TestNames(t *testing.T) {
	names := New(42, 1).Names(100)
	assert.Len(t, names, 100)
	for _, n := range names {
		assert.NotEmpty(t, n.FirstName)
		assert.NotEmpty(t, n.LastName)
		assert.True(t, n.HasMiddleNames())
		assert.GreaterOrEqual(t, len(n.LastName), 3)
		assert.LessOrEqual(t, len(n.LastName), 7)
		assert.Equal(t, strings.ToUpper(n.LastName), n.LastName)
	}
}

func TestNew_ClampsMiddleRatio(t *testing.T) {
	g := New(1, 5)
	assert.Equal(t, DefaultMiddleRatio, g.middleRatio)
}
