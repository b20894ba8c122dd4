package generator

import (
	"math/rand"
	"sync"
)

// All generators in this package share a single pseudo-random stream so
// that distributions seeded once at process start stay statistically
// coherent across goroutines. rand.Rand built on rand.NewSource is not safe
// for concurrent use on its own, so every draw goes through this mutex.
var (
	randMu     sync.Mutex
	randSource = rand.New(rand.NewSource(rand.Int63()))
)

// NextInt64 returns a uniform random value in [0, n).
func NextInt64(n int64) int64 {
	randMu.Lock()
	defer randMu.Unlock()
	return randSource.Int63n(n)
}

// NextFloat64 returns a uniform random value in [0, 1).
func NextFloat64() float64 {
	randMu.Lock()
	defer randMu.Unlock()
	return randSource.Float64()
}

// Seed reseeds the shared stream. Exposed so tests can make distribution
// draws reproducible.
func Seed(seed int64) {
	randMu.Lock()
	defer randMu.Unlock()
	randSource = rand.New(rand.NewSource(seed))
}
