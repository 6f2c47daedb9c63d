package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	errorvalues "github.com/limbo/cadence/internal/error_values"
	"github.com/limbo/cadence/internal/repository"
	"github.com/limbo/cadence/pkg/entity"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	ensureDaysQuery      = regexp.QuoteMeta(`INSERT INTO challenge_days (user_id, day_number) SELECT $1, gs FROM generate_series(1, $2) AS gs ON CONFLICT (user_id, day_number) DO NOTHING;`)
	getDaysQuery         = regexp.QuoteMeta(`SELECT user_id, day_number, completed, completed_at FROM challenge_days WHERE user_id = $1 ORDER BY day_number;`)
	nextDayQuery         = regexp.QuoteMeta(`SELECT COALESCE(MIN(day_number), 0) FROM challenge_days WHERE user_id = $1 AND NOT completed;`)
	lastCompletedQuery   = regexp.QuoteMeta(`SELECT completed_at FROM challenge_days WHERE user_id = $1 AND completed ORDER BY day_number DESC LIMIT 1;`)
	countCompletedQuery  = regexp.QuoteMeta(`SELECT COUNT(*) FROM challenge_days WHERE user_id = $1 AND completed;`)
	progressQuery        = regexp.QuoteMeta(`SELECT streak, last_check_in FROM user_progress WHERE user_id = $1;`)
	ensureProgressQuery  = regexp.QuoteMeta(`INSERT INTO user_progress (user_id) VALUES ($1) ON CONFLICT (user_id) DO NOTHING;`)
	lockProgressQuery    = regexp.QuoteMeta(`SELECT streak, last_check_in FROM user_progress WHERE user_id = $1 FOR UPDATE;`)
	maxCompletedQuery    = regexp.QuoteMeta(`SELECT MAX(completed_at) FROM challenge_days WHERE user_id = $1 AND completed;`)
	accountCreatedQuery  = regexp.QuoteMeta(`SELECT created_at FROM users WHERE id = $1;`)
	markCompletedQuery   = regexp.QuoteMeta(`UPDATE challenge_days SET completed = TRUE, completed_at = $3 WHERE user_id = $1 AND day_number = $2 AND NOT completed;`)
	updateProgressQuery  = regexp.QuoteMeta(`UPDATE user_progress SET streak = $2, last_check_in = $3 WHERE user_id = $1;`)
)

var completionOpts = repository.CompletionOpts{
	TotalDays:    30,
	Cooldown:     time.Hour * 20,
	StreakWindow: time.Hour * 36,
}

func TestEnsureDays(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewChallengeRepoWithConn(mock)
	uid := uuid.New()
	testCases := []struct {
		Desc         string
		Error        error
		MockPrepFunc func()
	}{
		{
			Desc:  "creates missing slots",
			Error: nil,
			MockPrepFunc: func() {
				mock.ExpectExec(ensureDaysQuery).WithArgs(uid, 30).WillReturnResult(pgxmock.NewResult("INSERT", 30))
			},
		},
		{
			Desc:  "idempotent on repeated call",
			Error: nil,
			MockPrepFunc: func() {
				mock.ExpectExec(ensureDaysQuery).WithArgs(uid, 30).WillReturnResult(pgxmock.NewResult("INSERT", 0))
			},
		},
		{
			Desc:  "db error",
			Error: errors.New("ensuring challenge days error: db error"),
			MockPrepFunc: func() {
				mock.ExpectExec(ensureDaysQuery).WithArgs(uid, 30).WillReturnError(errors.New("db error"))
			},
		},
	}
	ctx := context.Background()
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			err := repo.EnsureDays(ctx, uid, 30)
			if tc.Error != nil {
				assert.EqualError(t, err, tc.Error.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestGetDays(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewChallengeRepoWithConn(mock)
	uid := uuid.New()
	completedAt := time.Now().Add(-time.Hour * 24)
	returnedDays := []entity.ChallengeDay{
		{UserID: uid, DayNumber: 1, Completed: true, CompletedAt: &completedAt},
		{UserID: uid, DayNumber: 2, Completed: false, CompletedAt: nil},
		{UserID: uid, DayNumber: 3, Completed: false, CompletedAt: nil},
	}
	ctx := context.Background()
	t.Run("success", func(t *testing.T) {
		rows := pgxmock.NewRows([]string{"user_id", "day_number", "completed", "completed_at"})
		for _, d := range returnedDays {
			rows.AddRow(d.UserID, d.DayNumber, d.Completed, d.CompletedAt)
		}
		mock.ExpectQuery(getDaysQuery).WithArgs(uid).WillReturnRows(rows)
		result, err := repo.GetDays(ctx, uid)
		assert.NoError(t, err)
		assert.Equal(t, returnedDays, result)
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectQuery(getDaysQuery).WithArgs(uid).WillReturnError(errors.New("db error"))
		_, err := repo.GetDays(ctx, uid)
		assert.EqualError(t, err, "getting challenge days error: db error")
	})
}

func TestGetNextDayNumber(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewChallengeRepoWithConn(mock)
	uid := uuid.New()
	testCases := []struct {
		Desc         string
		Error        error
		NextResult   int
		MockPrepFunc func()
	}{
		{
			Desc:       "next is the lowest uncompleted day",
			NextResult: 4,
			MockPrepFunc: func() {
				mock.ExpectQuery(nextDayQuery).WithArgs(uid).
					WillReturnRows(pgxmock.NewRows([]string{"coalesce"}).AddRow(4))
			},
		},
		{
			Desc:       "complete sentinel when every day is done",
			NextResult: entity.DayComplete,
			MockPrepFunc: func() {
				mock.ExpectQuery(nextDayQuery).WithArgs(uid).
					WillReturnRows(pgxmock.NewRows([]string{"coalesce"}).AddRow(0))
			},
		},
		{
			Desc:  "db error",
			Error: errors.New("getting next day number error: db error"),
			MockPrepFunc: func() {
				mock.ExpectQuery(nextDayQuery).WithArgs(uid).WillReturnError(errors.New("db error"))
			},
		},
	}
	ctx := context.Background()
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			next, err := repo.GetNextDayNumber(ctx, uid)
			if tc.Error != nil {
				assert.EqualError(t, err, tc.Error.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tc.NextResult, next)
			}
		})
	}
}

func TestGetLastCompletedAt(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewChallengeRepoWithConn(mock)
	uid := uuid.New()
	completedAt := time.Now().Add(-time.Hour * 30)
	ctx := context.Background()
	t.Run("found", func(t *testing.T) {
		mock.ExpectQuery(lastCompletedQuery).WithArgs(uid).
			WillReturnRows(pgxmock.NewRows([]string{"completed_at"}).AddRow(completedAt))
		result, err := repo.GetLastCompletedAt(ctx, uid)
		assert.NoError(t, err)
		require.NotNil(t, result)
		assert.Equal(t, completedAt, *result)
	})
	t.Run("nothing completed yet", func(t *testing.T) {
		mock.ExpectQuery(lastCompletedQuery).WithArgs(uid).WillReturnError(pgx.ErrNoRows)
		result, err := repo.GetLastCompletedAt(ctx, uid)
		assert.NoError(t, err)
		assert.Nil(t, result)
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectQuery(lastCompletedQuery).WithArgs(uid).WillReturnError(errors.New("db error"))
		_, err := repo.GetLastCompletedAt(ctx, uid)
		assert.EqualError(t, err, "getting last completion time error: db error")
	})
}

func TestCountCompleted(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewChallengeRepoWithConn(mock)
	uid := uuid.New()
	ctx := context.Background()
	t.Run("successful", func(t *testing.T) {
		mock.ExpectQuery(countCompletedQuery).WithArgs(uid).
			WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(12))
		count, err := repo.CountCompleted(ctx, uid)
		assert.NoError(t, err)
		assert.Equal(t, 12, count)
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectQuery(countCompletedQuery).WithArgs(uid).WillReturnError(errors.New("db error"))
		_, err := repo.CountCompleted(ctx, uid)
		assert.EqualError(t, err, "error counting completed days: db error")
	})
}

func TestGetProgress(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewChallengeRepoWithConn(mock)
	uid := uuid.New()
	lastCheckIn := time.Now().Add(-time.Hour * 10)
	ctx := context.Background()
	t.Run("found", func(t *testing.T) {
		mock.ExpectQuery(progressQuery).WithArgs(uid).
			WillReturnRows(pgxmock.NewRows([]string{"streak", "last_check_in"}).AddRow(5, &lastCheckIn))
		progress, err := repo.GetProgress(ctx, uid)
		assert.NoError(t, err)
		assert.Equal(t, 5, progress.Streak)
		require.NotNil(t, progress.LastCheckIn)
		assert.Equal(t, lastCheckIn, *progress.LastCheckIn)
	})
	t.Run("no row means zero progress", func(t *testing.T) {
		mock.ExpectQuery(progressQuery).WithArgs(uid).WillReturnError(pgx.ErrNoRows)
		progress, err := repo.GetProgress(ctx, uid)
		assert.NoError(t, err)
		assert.Equal(t, 0, progress.Streak)
		assert.Nil(t, progress.LastCheckIn)
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectQuery(progressQuery).WithArgs(uid).WillReturnError(errors.New("db error"))
		_, err := repo.GetProgress(ctx, uid)
		assert.EqualError(t, err, "getting user progress error: db error")
	})
}

func TestCompleteDay(t *testing.T) {
	uid := uuid.New()
	now := time.Date(2025, time.March, 12, 10, 0, 0, 0, time.UTC)
	lastDone := now.Add(-time.Hour * 21)
	testCases := []struct {
		Desc         string
		DayNumber    int
		Error        error
		Result       *repository.CompletionResult
		MockPrepFunc func(mock pgxmock.PgxPoolIface)
	}{
		{
			Desc:      "successful completion extends streak",
			DayNumber: 3,
			Result: &repository.CompletionResult{
				DayNumber:      3,
				NewStreak:      3,
				TotalCompleted: 3,
				CompletedAt:    now,
			},
			MockPrepFunc: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectBegin()
				mock.ExpectExec(ensureProgressQuery).WithArgs(uid).WillReturnResult(pgxmock.NewResult("INSERT", 0))
				mock.ExpectQuery(lockProgressQuery).WithArgs(uid).
					WillReturnRows(pgxmock.NewRows([]string{"streak", "last_check_in"}).AddRow(2, &lastDone))
				mock.ExpectQuery(nextDayQuery).WithArgs(uid).
					WillReturnRows(pgxmock.NewRows([]string{"coalesce"}).AddRow(3))
				mock.ExpectQuery(maxCompletedQuery).WithArgs(uid).
					WillReturnRows(pgxmock.NewRows([]string{"max"}).AddRow(&lastDone))
				mock.ExpectExec(markCompletedQuery).WithArgs(uid, 3, now).WillReturnResult(pgxmock.NewResult("UPDATE", 1))
				mock.ExpectExec(updateProgressQuery).WithArgs(uid, 3, now).WillReturnResult(pgxmock.NewResult("UPDATE", 1))
				mock.ExpectQuery(countCompletedQuery).WithArgs(uid).
					WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(3))
				mock.ExpectCommit()
			},
		},
		{
			Desc:      "first completion anchors cooldown on account creation",
			DayNumber: 1,
			Result: &repository.CompletionResult{
				DayNumber:      1,
				NewStreak:      1,
				TotalCompleted: 1,
				CompletedAt:    now,
			},
			MockPrepFunc: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectBegin()
				mock.ExpectExec(ensureProgressQuery).WithArgs(uid).WillReturnResult(pgxmock.NewResult("INSERT", 1))
				mock.ExpectQuery(lockProgressQuery).WithArgs(uid).
					WillReturnRows(pgxmock.NewRows([]string{"streak", "last_check_in"}).AddRow(0, nil))
				mock.ExpectQuery(nextDayQuery).WithArgs(uid).
					WillReturnRows(pgxmock.NewRows([]string{"coalesce"}).AddRow(1))
				mock.ExpectQuery(maxCompletedQuery).WithArgs(uid).
					WillReturnRows(pgxmock.NewRows([]string{"max"}).AddRow(nil))
				mock.ExpectQuery(accountCreatedQuery).WithArgs(uid).
					WillReturnRows(pgxmock.NewRows([]string{"created_at"}).AddRow(now.Add(-time.Hour * 25)))
				mock.ExpectExec(markCompletedQuery).WithArgs(uid, 1, now).WillReturnResult(pgxmock.NewResult("UPDATE", 1))
				mock.ExpectExec(updateProgressQuery).WithArgs(uid, 1, now).WillReturnResult(pgxmock.NewResult("UPDATE", 1))
				mock.ExpectQuery(countCompletedQuery).WithArgs(uid).
					WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(1))
				mock.ExpectCommit()
			},
		},
		{
			Desc:      "completing the final day reports challenge complete",
			DayNumber: 30,
			Result: &repository.CompletionResult{
				DayNumber:           30,
				NewStreak:           30,
				TotalCompleted:      30,
				IsChallengeComplete: true,
				CompletedAt:         now,
			},
			MockPrepFunc: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectBegin()
				mock.ExpectExec(ensureProgressQuery).WithArgs(uid).WillReturnResult(pgxmock.NewResult("INSERT", 0))
				mock.ExpectQuery(lockProgressQuery).WithArgs(uid).
					WillReturnRows(pgxmock.NewRows([]string{"streak", "last_check_in"}).AddRow(29, &lastDone))
				mock.ExpectQuery(nextDayQuery).WithArgs(uid).
					WillReturnRows(pgxmock.NewRows([]string{"coalesce"}).AddRow(30))
				mock.ExpectQuery(maxCompletedQuery).WithArgs(uid).
					WillReturnRows(pgxmock.NewRows([]string{"max"}).AddRow(&lastDone))
				mock.ExpectExec(markCompletedQuery).WithArgs(uid, 30, now).WillReturnResult(pgxmock.NewResult("UPDATE", 1))
				mock.ExpectExec(updateProgressQuery).WithArgs(uid, 30, now).WillReturnResult(pgxmock.NewResult("UPDATE", 1))
				mock.ExpectQuery(countCompletedQuery).WithArgs(uid).
					WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(30))
				mock.ExpectCommit()
			},
		},
		{
			Desc:      "sequence violation on a day ahead of next",
			DayNumber: 5,
			Error:     errorvalues.ErrSequenceViolation,
			MockPrepFunc: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectBegin()
				mock.ExpectExec(ensureProgressQuery).WithArgs(uid).WillReturnResult(pgxmock.NewResult("INSERT", 0))
				mock.ExpectQuery(lockProgressQuery).WithArgs(uid).
					WillReturnRows(pgxmock.NewRows([]string{"streak", "last_check_in"}).AddRow(2, &lastDone))
				mock.ExpectQuery(nextDayQuery).WithArgs(uid).
					WillReturnRows(pgxmock.NewRows([]string{"coalesce"}).AddRow(3))
				mock.ExpectRollback()
			},
		},
		{
			Desc:      "already completed day resolves softly",
			DayNumber: 2,
			Error:     errorvalues.ErrAlreadyCompleted,
			MockPrepFunc: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectBegin()
				mock.ExpectExec(ensureProgressQuery).WithArgs(uid).WillReturnResult(pgxmock.NewResult("INSERT", 0))
				mock.ExpectQuery(lockProgressQuery).WithArgs(uid).
					WillReturnRows(pgxmock.NewRows([]string{"streak", "last_check_in"}).AddRow(2, &lastDone))
				mock.ExpectQuery(nextDayQuery).WithArgs(uid).
					WillReturnRows(pgxmock.NewRows([]string{"coalesce"}).AddRow(3))
				mock.ExpectRollback()
			},
		},
		{
			Desc:      "challenge complete rejects any further attempt",
			DayNumber: 30,
			Error:     errorvalues.ErrChallengeComplete,
			MockPrepFunc: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectBegin()
				mock.ExpectExec(ensureProgressQuery).WithArgs(uid).WillReturnResult(pgxmock.NewResult("INSERT", 0))
				mock.ExpectQuery(lockProgressQuery).WithArgs(uid).
					WillReturnRows(pgxmock.NewRows([]string{"streak", "last_check_in"}).AddRow(30, &lastDone))
				mock.ExpectQuery(nextDayQuery).WithArgs(uid).
					WillReturnRows(pgxmock.NewRows([]string{"coalesce"}).AddRow(0))
				mock.ExpectRollback()
			},
		},
		{
			Desc:      "cooldown still active",
			DayNumber: 3,
			Error:     errorvalues.ErrCooldownActive,
			MockPrepFunc: func(mock pgxmock.PgxPoolIface) {
				justDone := now.Add(-time.Hour * 2)
				mock.ExpectBegin()
				mock.ExpectExec(ensureProgressQuery).WithArgs(uid).WillReturnResult(pgxmock.NewResult("INSERT", 0))
				mock.ExpectQuery(lockProgressQuery).WithArgs(uid).
					WillReturnRows(pgxmock.NewRows([]string{"streak", "last_check_in"}).AddRow(2, &justDone))
				mock.ExpectQuery(nextDayQuery).WithArgs(uid).
					WillReturnRows(pgxmock.NewRows([]string{"coalesce"}).AddRow(3))
				mock.ExpectQuery(maxCompletedQuery).WithArgs(uid).
					WillReturnRows(pgxmock.NewRows([]string{"max"}).AddRow(&justDone))
				mock.ExpectRollback()
			},
		},
		{
			Desc:      "concurrent loser resolves to already completed",
			DayNumber: 3,
			Error:     errorvalues.ErrAlreadyCompleted,
			MockPrepFunc: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectBegin()
				mock.ExpectExec(ensureProgressQuery).WithArgs(uid).WillReturnResult(pgxmock.NewResult("INSERT", 0))
				mock.ExpectQuery(lockProgressQuery).WithArgs(uid).
					WillReturnRows(pgxmock.NewRows([]string{"streak", "last_check_in"}).AddRow(2, &lastDone))
				mock.ExpectQuery(nextDayQuery).WithArgs(uid).
					WillReturnRows(pgxmock.NewRows([]string{"coalesce"}).AddRow(3))
				mock.ExpectQuery(maxCompletedQuery).WithArgs(uid).
					WillReturnRows(pgxmock.NewRows([]string{"max"}).AddRow(&lastDone))
				mock.ExpectExec(markCompletedQuery).WithArgs(uid, 3, now).WillReturnResult(pgxmock.NewResult("UPDATE", 0))
				mock.ExpectRollback()
			},
		},
		{
			Desc:      "begin error",
			DayNumber: 3,
			Error:     errors.New("beginning completion tx error: db error"),
			MockPrepFunc: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectBegin().WillReturnError(errors.New("db error"))
			},
		},
	}
	ctx := context.Background()
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			mock, err := pgxmock.NewPool()
			require.NoError(t, err)
			repo := repository.NewChallengeRepoWithConn(mock)
			tc.MockPrepFunc(mock)
			result, err := repo.CompleteDay(ctx, uid, tc.DayNumber, now, completionOpts)
			if tc.Error != nil {
				assert.EqualError(t, err, tc.Error.Error())
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tc.Result, result)
			}
		})
	}
}
