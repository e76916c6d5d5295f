package routerall

import "math/rand"

// deriveAttemptSeed mixes a base seed and an attempt index into a new
// 64-bit seed, so every attempt gets its own independent, reproducible
// shuffle stream instead of advancing one process-wide generator.
//
// A SplitMix64-style avalanche mix eliminates correlation between
// consecutive attempt indices; small changes in attempt produce large,
// well-distributed changes in the derived seed.
func deriveAttemptSeed(base int64, attempt int) int64 {
	x := uint64(base) ^ (uint64(attempt) + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// shuffledOrder returns a permutation of [0,n) generated deterministically
// from a PRNG seeded by deriveAttemptSeed(base, attempt).
func shuffledOrder(n int, base int64, attempt int) []int {
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}

	rng := rand.New(rand.NewSource(deriveAttemptSeed(base, attempt)))
	for i := n - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		order[i], order[j] = order[j], order[i]
	}

	return order
}
