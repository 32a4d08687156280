package utils

import (
	crand "crypto/rand"
	"fmt"
	"math/big"
	"math/rand/v2"
)

// SecureRandomInt returns a random integer between min and max (inclusive) using crypto/rand
func SecureRandomInt(min, max int) (int, error) {
	if min > max {
		return 0, fmt.Errorf("min cannot be greater than max")
	}
	diff := big.NewInt(int64(max - min + 1))
	n, err := crand.Int(crand.Reader, diff)
	if err != nil {
		return 0, err
	}
	return int(n.Int64()) + min, nil
}

// SecureIntn returns a uniform random integer in [0, n) using crypto/rand.
// It panics if n <= 0 or the system entropy source fails.
func SecureIntn(n int) int {
	if n <= 0 {
		panic("utils: SecureIntn called with non-positive n")
	}
	v, err := SecureRandomInt(0, n-1)
	if err != nil {
		panic(fmt.Sprintf("utils: crypto/rand unavailable: %v", err))
	}
	return v
}

// SeededIntn returns a deterministic [0, n) generator for reproducible runs.
// The returned function is not safe for concurrent use.
func SeededIntn(seed uint64) func(int) int {
	r := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	return r.IntN
}
