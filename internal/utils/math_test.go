package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSecureRandomInt(t *testing.T) {
	t.Run("returns value within range", func(t *testing.T) {
		for i := 0; i < 100; i++ {
			result, err := SecureRandomInt(1, 10)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, result, 1)
			assert.LessOrEqual(t, result, 10)
		}
	})

	t.Run("handles min equals max", func(t *testing.T) {
		result, err := SecureRandomInt(42, 42)
		require.NoError(t, err)
		assert.Equal(t, 42, result)
	})

	t.Run("rejects inverted range", func(t *testing.T) {
		_, err := SecureRandomInt(10, 5)
		assert.Error(t, err)
	})
}

func TestSecureIntn(t *testing.T) {
	t.Run("covers every value of a small range", func(t *testing.T) {
		seen := make(map[int]bool)
		for i := 0; i < 500; i++ {
			v := SecureIntn(7)
			assert.GreaterOrEqual(t, v, 0)
			assert.Less(t, v, 7)
			seen[v] = true
		}
		// 500 draws over 7 values; missing one has probability ~1e-33
		assert.Len(t, seen, 7)
	})

	t.Run("n of one always yields zero", func(t *testing.T) {
		assert.Equal(t, 0, SecureIntn(1))
	})

	t.Run("panics on non-positive n", func(t *testing.T) {
		assert.Panics(t, func() { SecureIntn(0) })
		assert.Panics(t, func() { SecureIntn(-3) })
	})
}

func TestSeededIntn(t *testing.T) {
	t.Run("same seed gives same sequence", func(t *testing.T) {
		a := SeededIntn(42)
		b := SeededIntn(42)
		for i := 0; i < 50; i++ {
			assert.Equal(t, a(7), b(7))
		}
	})

	t.Run("values stay in range", func(t *testing.T) {
		rng := SeededIntn(7)
		for i := 0; i < 200; i++ {
			v := rng(3)
			assert.GreaterOrEqual(t, v, 0)
			assert.Less(t, v, 3)
		}
	})

	t.Run("different seeds diverge", func(t *testing.T) {
		a := SeededIntn(1)
		b := SeededIntn(2)
		same := true
		for i := 0; i < 50; i++ {
			if a(1000) != b(1000) {
				same = false
			}
		}
		assert.False(t, same, "Distinct seeds should not produce identical sequences")
	})
}
