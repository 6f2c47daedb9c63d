package service

import (
	"time"

	"github.com/limbo/cadence/pkg/entity"
)

// ResolveGate derives eligibility purely from persisted timestamps and
// the caller's clock. It holds no session state, so any number of
// readers can call it concurrently.
//
// The cooldown anchor is the most recent completion, or the account
// creation time while nothing is completed yet.
func ResolveGate(nextDay int, lastCompletedAt *time.Time, createdAt time.Time, now time.Time, cooldown time.Duration) NextDayState {
	if nextDay == entity.DayComplete {
		return NextDayState{
			DayNumber: entity.DayComplete,
			Complete:  true,
		}
	}
	anchor := createdAt
	if lastCompletedAt != nil {
		anchor = *lastCompletedAt
	}
	remaining := cooldown - now.Sub(anchor)
	if remaining <= 0 {
		return NextDayState{
			DayNumber: nextDay,
			Eligible:  true,
		}
	}
	// A backward clock jump can't inflate the wait past one full cooldown
	if remaining > cooldown {
		remaining = cooldown
	}
	return NextDayState{
		DayNumber:         nextDay,
		CooldownRemaining: remaining,
	}
}
