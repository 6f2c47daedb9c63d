package repository

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	errorvalues "github.com/limbo/cadence/internal/error_values"
	"github.com/limbo/cadence/pkg/cleanup"
	"github.com/limbo/cadence/pkg/entity"
	"github.com/limbo/cadence/pkg/streak"
)

type ChallengeRepository struct {
	conn PgConnection
}

func NewChallengeRepo(cfg DBConfig) *ChallengeRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for challengeRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for challengeRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &ChallengeRepository{
		conn: pool,
	}
}

func NewChallengeRepoWithConn(conn PgConnection) *ChallengeRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for challengeRepo: " + err.Error())
	}
	return &ChallengeRepository{
		conn: conn,
	}
}

func (cr *ChallengeRepository) EnsureDays(ctx context.Context, uid uuid.UUID, total int) error {
	_, err := cr.conn.Exec(
		ctx,
		`INSERT INTO challenge_days (user_id, day_number) SELECT $1, gs FROM generate_series(1, $2) AS gs ON CONFLICT (user_id, day_number) DO NOTHING;`,
		uid,
		total,
	)
	if err != nil {
		return errors.New("ensuring challenge days error: " + err.Error())
	}
	return nil
}

func (cr *ChallengeRepository) GetDays(ctx context.Context, uid uuid.UUID) ([]entity.ChallengeDay, error) {
	rows, err := cr.conn.Query(
		ctx,
		`SELECT user_id, day_number, completed, completed_at FROM challenge_days WHERE user_id = $1 ORDER BY day_number;`,
		uid,
	)
	if err != nil {
		return nil, errors.New("getting challenge days error: " + err.Error())
	}
	defer rows.Close()
	days := make([]entity.ChallengeDay, 0)
	for rows.Next() {
		d := entity.ChallengeDay{}
		err = rows.Scan(&d.UserID, &d.DayNumber, &d.Completed, &d.CompletedAt)
		if err != nil {
			return nil, errors.New("challenge day row parsing error: " + err.Error())
		}
		days = append(days, d)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected challenge day rows error: " + rows.Err().Error())
	}
	return days, nil
}

func (cr *ChallengeRepository) GetNextDayNumber(ctx context.Context, uid uuid.UUID) (int, error) {
	row := cr.conn.QueryRow(
		ctx,
		`SELECT COALESCE(MIN(day_number), 0) FROM challenge_days WHERE user_id = $1 AND NOT completed;`,
		uid,
	)
	var next int
	if err := row.Scan(&next); err != nil {
		return 0, errors.New("getting next day number error: " + err.Error())
	}
	return next, nil
}

func (cr *ChallengeRepository) GetLastCompletedAt(ctx context.Context, uid uuid.UUID) (*time.Time, error) {
	row := cr.conn.QueryRow(
		ctx,
		`SELECT completed_at FROM challenge_days WHERE user_id = $1 AND completed ORDER BY day_number DESC LIMIT 1;`,
		uid,
	)
	var at time.Time
	if err := row.Scan(&at); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.New("getting last completion time error: " + err.Error())
	}
	return &at, nil
}

func (cr *ChallengeRepository) CountCompleted(ctx context.Context, uid uuid.UUID) (int, error) {
	row := cr.conn.QueryRow(
		ctx,
		`SELECT COUNT(*) FROM challenge_days WHERE user_id = $1 AND completed;`,
		uid,
	)
	var count int
	if err := row.Scan(&count); err != nil {
		return 0, errors.New("error counting completed days: " + err.Error())
	}
	return count, nil
}

func (cr *ChallengeRepository) GetProgress(ctx context.Context, uid uuid.UUID) (*entity.UserProgress, error) {
	progress := entity.UserProgress{UserID: uid}
	row := cr.conn.QueryRow(
		ctx,
		`SELECT streak, last_check_in FROM user_progress WHERE user_id = $1;`,
		uid,
	)
	if err := row.Scan(&progress.Streak, &progress.LastCheckIn); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// No qualifying activity yet
			return &progress, nil
		}
		return nil, errors.New("getting user progress error: " + err.Error())
	}
	return &progress, nil
}

func (cr *ChallengeRepository) GetAccountCreatedAt(ctx context.Context, uid uuid.UUID) (time.Time, error) {
	row := cr.conn.QueryRow(
		ctx,
		`SELECT created_at FROM users WHERE id = $1;`,
		uid,
	)
	var at time.Time
	if err := row.Scan(&at); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return time.Time{}, errorvalues.ErrUserNotFound
		}
		return time.Time{}, errors.New("getting account creation time error: " + err.Error())
	}
	return at, nil
}

// CompleteDay applies one completion as a single all-or-nothing unit.
// The SELECT ... FOR UPDATE on the user's progress row is the per-user
// critical section: two simultaneous calls for one user serialize on it,
// the loser re-reads state and resolves to ErrAlreadyCompleted.
func (cr *ChallengeRepository) CompleteDay(ctx context.Context, uid uuid.UUID, dayNumber int, now time.Time, opts CompletionOpts) (*CompletionResult, error) {
	tx, err := cr.conn.Begin(ctx)
	if err != nil {
		return nil, errors.New("beginning completion tx error: " + err.Error())
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `INSERT INTO user_progress (user_id) VALUES ($1) ON CONFLICT (user_id) DO NOTHING;`, uid)
	if err != nil {
		return nil, errors.New("ensuring progress row error: " + err.Error())
	}
	var prevStreak int
	var lastCheckIn *time.Time
	row := tx.QueryRow(ctx, `SELECT streak, last_check_in FROM user_progress WHERE user_id = $1 FOR UPDATE;`, uid)
	if err = row.Scan(&prevStreak, &lastCheckIn); err != nil {
		return nil, errors.New("locking progress row error: " + err.Error())
	}

	// State is re-derived here, inside the lock. Client-cached state is
	// never trusted.
	var next int
	row = tx.QueryRow(ctx, `SELECT COALESCE(MIN(day_number), 0) FROM challenge_days WHERE user_id = $1 AND NOT completed;`, uid)
	if err = row.Scan(&next); err != nil {
		return nil, errors.New("deriving next day error: " + err.Error())
	}
	switch {
	case next == entity.DayComplete:
		return nil, errorvalues.ErrChallengeComplete
	case dayNumber < 1 || dayNumber > opts.TotalDays:
		return nil, errorvalues.ErrSequenceViolation
	case dayNumber < next:
		return nil, errorvalues.ErrAlreadyCompleted
	case dayNumber > next:
		return nil, errorvalues.ErrSequenceViolation
	}

	var lastCompletedAt *time.Time
	row = tx.QueryRow(ctx, `SELECT MAX(completed_at) FROM challenge_days WHERE user_id = $1 AND completed;`, uid)
	if err = row.Scan(&lastCompletedAt); err != nil {
		return nil, errors.New("getting last completion time error: " + err.Error())
	}
	if lastCompletedAt == nil {
		var createdAt time.Time
		row = tx.QueryRow(ctx, `SELECT created_at FROM users WHERE id = $1;`, uid)
		if err = row.Scan(&createdAt); err != nil {
			return nil, errors.New("getting account creation time error: " + err.Error())
		}
		lastCompletedAt = &createdAt
	}
	if now.Sub(*lastCompletedAt) < opts.Cooldown {
		return nil, errorvalues.ErrCooldownActive
	}

	ct, err := tx.Exec(
		ctx,
		`UPDATE challenge_days SET completed = TRUE, completed_at = $3 WHERE user_id = $1 AND day_number = $2 AND NOT completed;`,
		uid,
		dayNumber,
		now,
	)
	if err != nil {
		return nil, errors.New("marking day completed error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return nil, errorvalues.ErrAlreadyCompleted
	}

	newStreak := streak.Compute(lastCheckIn, now, prevStreak, opts.StreakWindow)
	_, err = tx.Exec(
		ctx,
		`UPDATE user_progress SET streak = $2, last_check_in = $3 WHERE user_id = $1;`,
		uid,
		newStreak,
		now,
	)
	if err != nil {
		return nil, errors.New("updating streak error: " + err.Error())
	}

	var completed int
	row = tx.QueryRow(ctx, `SELECT COUNT(*) FROM challenge_days WHERE user_id = $1 AND completed;`, uid)
	if err = row.Scan(&completed); err != nil {
		return nil, errors.New("error counting completed days: " + err.Error())
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, errors.New("committing completion tx error: " + err.Error())
	}
	return &CompletionResult{
		DayNumber:           dayNumber,
		NewStreak:           newStreak,
		TotalCompleted:      completed,
		IsChallengeComplete: completed == opts.TotalDays,
		CompletedAt:         now,
	}, nil
}
