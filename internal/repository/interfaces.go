package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/limbo/cadence/pkg/entity"
)

type UsersRepositoryI interface {
	// Creates new user in database
	Create(ctx context.Context, user *entity.User) error
	// Looks up user by name. Can be used for login
	FindByName(ctx context.Context, name string) (*entity.User, error)
	// Looks up user by uid. Can be used for authorization middleware
	FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error)
	// Deletes user
	Delete(ctx context.Context, uid uuid.UUID) error
}

// CompletionOpts carries the challenge parameters into the completion
// transaction. They are configuration, never inferred.
type CompletionOpts struct {
	TotalDays    int
	Cooldown     time.Duration
	StreakWindow time.Duration
}

// CompletionResult is what a committed completion looks like.
type CompletionResult struct {
	DayNumber           int
	NewStreak           int
	TotalCompleted      int
	IsChallengeComplete bool
	CompletedAt         time.Time
}

type ChallengeRepositoryI interface {
	// Idempotently creates any of the total day slots missing for a user.
	// Existing slots are never overwritten. Safe to call repeatedly.
	EnsureDays(ctx context.Context, uid uuid.UUID, total int) error
	// Lists every slot for a user ordered by day number
	GetDays(ctx context.Context, uid uuid.UUID) ([]entity.ChallengeDay, error)
	// Returns the lowest uncompleted day number, or entity.DayComplete
	// when every slot is done
	GetNextDayNumber(ctx context.Context, uid uuid.UUID) (int, error)
	// Returns the completion time of the most recently completed day,
	// nil when none is completed yet
	GetLastCompletedAt(ctx context.Context, uid uuid.UUID) (*time.Time, error)
	// Counts completed slots. Always derived from rows, never cached
	CountCompleted(ctx context.Context, uid uuid.UUID) (int, error)
	// Returns streak state; a zero-value progress when no row exists yet
	GetProgress(ctx context.Context, uid uuid.UUID) (*entity.UserProgress, error)
	// Account creation time, the cooldown anchor before the first completion
	GetAccountCreatedAt(ctx context.Context, uid uuid.UUID) (time.Time, error)
	// Atomically marks the day completed and updates the streak in a
	// single per-user serialized transaction
	CompleteDay(ctx context.Context, uid uuid.UUID, dayNumber int, now time.Time, opts CompletionOpts) (*CompletionResult, error)
}

type DBConfig interface {
	ConnString() string
}

type PgConnection interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PGCfg struct {
	Address  string
	Username string
	Password string
	DB       string
}

func (pgcfg *PGCfg) ConnString() string {
	return fmt.Sprintf("postgresql://%s:%s@%s/%s", pgcfg.Username, pgcfg.Password, pgcfg.Address, pgcfg.DB)
}
