// Package rng provides the random source used for offspring draws.
package rng

import (
	"math/rand"
	"time"
)

// New returns a generator for seed and the seed actually used. A zero seed
// is replaced by the current time so callers can log it for replay.
func New(seed int64) (*rand.Rand, int64) {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed)), seed
}
