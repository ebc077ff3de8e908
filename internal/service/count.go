package service

import (
	"fmt"
	"math/rand/v2"
)

// globalRand draws from the goroutine-safe top-level math/rand/v2 source.
type globalRand struct{}

func (globalRand) IntN(n int) int {
	return rand.IntN(n)
}

// randomInRange returns a uniform integer in [lo, hi], both inclusive.
func randomInRange(rng Rand, lo, hi int) int {
	return rng.IntN(hi-lo+1) + lo
}

// Contribution formats userTotal as a percentage of leaderboardTotal with two
// decimals, e.g. "25.00%". An empty leaderboard yields "N/A".
func Contribution(userTotal, leaderboardTotal int64) string {
	if leaderboardTotal == 0 {
		return "N/A"
	}
	return fmt.Sprintf("%.2f%%", float64(userTotal)/float64(leaderboardTotal)*100)
}

func activityLabel(active bool) string {
	if active {
		return "Active"
	}
	return "Inactive"
}
