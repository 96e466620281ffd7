package learn

import (
	"math/rand"
	"time"
)

// Worth given to every legal move of a freshly created node
const InitialWorth int = 100

// Base amount moved onto the chosen decision after a won (or drawn) game,
// the node's decision count minus one is added on top of it
const GoodReward int = 100

// Base amount taken from the chosen decision after a lost game,
// the node's decision count minus one is added on top of it
const BadPenalty int = 50

// Source of randomness for the weighted move selection, *rand.Rand satisfies it
type Rand interface {
	// Uniform integer in [0, n)
	Intn(n int) int
}

type SeedGeneratorFnType func() int64

var SeedGeneratorFn SeedGeneratorFnType = func() int64 {
	return time.Now().UnixNano()
}

// Set custom seed generator function for random number generators,
// by default uses current time in nanoseconds
func SetSeedGeneratorFn(f SeedGeneratorFnType) {
	if f != nil {
		SeedGeneratorFn = f
	}
}

// New random number generator seeded with SeedGeneratorFn
func NewRand() *rand.Rand {
	return rand.New(rand.NewSource(SeedGeneratorFn()))
}
