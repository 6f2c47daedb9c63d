// Package streak computes the consecutive check-in counter from
// persisted timestamps. It holds no state and never touches the clock
// itself: "now" always comes from the caller.
package streak

import "time"

// Compute returns the new streak value for a check-in happening at now,
// given the previous check-in time and the previous streak value.
//
// Rules:
//   - no previous check-in: the streak starts at 1
//   - same UTC calendar day: the streak doesn't change (repeated
//     check-ins never double-count); a non-positive elapsed time (clock
//     moved backward) is clamped into this branch
//   - elapsed within the grace window: streak grows by one; the exact
//     window boundary still extends the streak (inclusive)
//   - anything longer: the streak resets to 1
//
// The result is always >= 1.
func Compute(lastCheckIn *time.Time, now time.Time, previous int, window time.Duration) int {
	if lastCheckIn == nil {
		return 1
	}
	elapsed := now.Sub(*lastCheckIn)
	if elapsed <= 0 || sameUTCDay(*lastCheckIn, now) {
		if previous < 1 {
			return 1
		}
		return previous
	}
	if elapsed <= window {
		if previous < 0 {
			previous = 0
		}
		return previous + 1
	}
	return 1
}

func sameUTCDay(a, b time.Time) bool {
	ay, am, ad := a.UTC().Date()
	by, bm, bd := b.UTC().Date()
	return ay == by && am == bm && ad == bd
}
