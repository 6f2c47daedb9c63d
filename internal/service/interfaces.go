package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/cadence/pkg/entity"
)

type RegisterRequest struct {
	Name     string `validate:"required,alphanum_underscore,min=3,max=100"`
	Password string `validate:"required,min=8,max=72"`
}

type UserServiceI interface {
	// Validates user's credentials, creates new row in database. Returns user's data with ID
	Register(ctx context.Context, req *RegisterRequest) (*entity.User, error)
	// Compares given credentials. If ok, give back user's data with ID.
	Login(ctx context.Context, name, password string) (*entity.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	DeleteAccount(ctx context.Context, id uuid.UUID, password string) error
}

// NextDayState is the read-side projection of the progression gate.
// Cooldown remaining is recomputed from persisted timestamps on every
// call; clients may render it but never write it back.
type NextDayState struct {
	DayNumber         int
	Complete          bool
	Eligible          bool
	CooldownRemaining time.Duration
}

type CompleteDayResult struct {
	Success             bool
	AlreadyCompleted    bool
	NewStreak           int
	TotalCompleted      int
	IsChallengeComplete bool
}

type ChallengeServiceI interface {
	// Derives the next eligible day and cooldown state for a user
	NextDayState(ctx context.Context, uid uuid.UUID) (*NextDayState, error)
	// Full ordered day list for the calendar view
	Days(ctx context.Context, uid uuid.UUID) ([]entity.ChallengeDay, error)
	// Aggregated progress view: counts, percent, streak, gate state
	Summary(ctx context.Context, uid uuid.UUID) (*entity.ChallengeStats, error)
	// Applies one day completion. Duplicate retries resolve to a soft
	// success; ordering and cooldown violations come back as sentinel
	// errors from internal/error_values. profileTag is opaque metadata
	// carried into the completion event, never part of the ordering
	CompleteDay(ctx context.Context, uid uuid.UUID, dayNumber int, profileTag string) (*CompleteDayResult, error)
}
