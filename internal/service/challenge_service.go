package service

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/cadence/internal/error_values"
	"github.com/limbo/cadence/internal/events"
	"github.com/limbo/cadence/internal/repository"
	"github.com/limbo/cadence/pkg/entity"
)

type ChallengeConfig struct {
	TotalDays    int
	Cooldown     time.Duration
	StreakWindow time.Duration
}

type ChallengeService struct {
	repo      repository.ChallengeRepositoryI
	publisher events.PublisherI
	cfg       ChallengeConfig
	now       func() time.Time
}

func NewChallengeService(repo repository.ChallengeRepositoryI, publisher events.PublisherI, cfg ChallengeConfig) *ChallengeService {
	return NewChallengeServiceWithClock(repo, publisher, cfg, time.Now)
}

// NewChallengeServiceWithClock lets tests step the clock; everything
// time-dependent in the service flows through now().
func NewChallengeServiceWithClock(repo repository.ChallengeRepositoryI, publisher events.PublisherI, cfg ChallengeConfig, now func() time.Time) *ChallengeService {
	if repo == nil {
		log.Fatal("on challenge service provided nil repo")
	}
	if cfg.TotalDays < 1 || cfg.Cooldown <= 0 || cfg.StreakWindow <= 0 {
		log.Fatal("on challenge service provided invalid challenge config")
	}
	return &ChallengeService{
		repo:      repo,
		publisher: publisher,
		cfg:       cfg,
		now:       now,
	}
}

func (serv *ChallengeService) NextDayState(ctx context.Context, uid uuid.UUID) (*NextDayState, error) {
	if err := serv.repo.EnsureDays(ctx, uid, serv.cfg.TotalDays); err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	state, err := serv.resolveGate(ctx, uid)
	if err != nil {
		return nil, err
	}
	return state, nil
}

func (serv *ChallengeService) Days(ctx context.Context, uid uuid.UUID) ([]entity.ChallengeDay, error) {
	if err := serv.repo.EnsureDays(ctx, uid, serv.cfg.TotalDays); err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	days, err := serv.repo.GetDays(ctx, uid)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	return days, nil
}

func (serv *ChallengeService) Summary(ctx context.Context, uid uuid.UUID) (*entity.ChallengeStats, error) {
	if err := serv.repo.EnsureDays(ctx, uid, serv.cfg.TotalDays); err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	count, err := serv.repo.CountCompleted(ctx, uid)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	progress, err := serv.repo.GetProgress(ctx, uid)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	state, err := serv.resolveGate(ctx, uid)
	if err != nil {
		return nil, err
	}
	return &entity.ChallengeStats{
		CompletedCount:      count,
		TotalDays:           serv.cfg.TotalDays,
		Percent:             count * 100 / serv.cfg.TotalDays,
		CurrentStreak:       progress.Streak,
		NextDay:             state.DayNumber,
		CooldownRemainingMS: state.CooldownRemaining.Milliseconds(),
		IsChallengeComplete: state.Complete,
	}, nil
}

func (serv *ChallengeService) CompleteDay(ctx context.Context, uid uuid.UUID, dayNumber int, profileTag string) (*CompleteDayResult, error) {
	if dayNumber < 1 || dayNumber > serv.cfg.TotalDays {
		return nil, errorvalues.ErrSequenceViolation
	}
	if err := serv.repo.EnsureDays(ctx, uid, serv.cfg.TotalDays); err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	result, err := serv.repo.CompleteDay(ctx, uid, dayNumber, serv.now(), repository.CompletionOpts{
		TotalDays:    serv.cfg.TotalDays,
		Cooldown:     serv.cfg.Cooldown,
		StreakWindow: serv.cfg.StreakWindow,
	})
	if err != nil {
		if errors.Is(err, errorvalues.ErrAlreadyCompleted) {
			return serv.alreadyCompletedResult(ctx, uid)
		}
		if errors.Is(err, errorvalues.ErrSequenceViolation) ||
			errors.Is(err, errorvalues.ErrCooldownActive) ||
			errors.Is(err, errorvalues.ErrChallengeComplete) {
			return nil, err
		}
		return nil, errors.New("repository error: " + err.Error())
	}
	serv.publish(entity.CompletionEvent{
		UserID:     uid,
		DayNumber:  result.DayNumber,
		NewStreak:  result.NewStreak,
		Timestamp:  result.CompletedAt,
		ProfileTag: profileTag,
	})
	return &CompleteDayResult{
		Success:             true,
		NewStreak:           result.NewStreak,
		TotalCompleted:      result.TotalCompleted,
		IsChallengeComplete: result.IsChallengeComplete,
	}, nil
}

// alreadyCompletedResult turns a duplicate retry into a soft success
// built from current persisted state, so resubmitting is always safe.
func (serv *ChallengeService) alreadyCompletedResult(ctx context.Context, uid uuid.UUID) (*CompleteDayResult, error) {
	progress, err := serv.repo.GetProgress(ctx, uid)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	count, err := serv.repo.CountCompleted(ctx, uid)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	return &CompleteDayResult{
		Success:             true,
		AlreadyCompleted:    true,
		NewStreak:           progress.Streak,
		TotalCompleted:      count,
		IsChallengeComplete: count == serv.cfg.TotalDays,
	}, nil
}

func (serv *ChallengeService) resolveGate(ctx context.Context, uid uuid.UUID) (*NextDayState, error) {
	next, err := serv.repo.GetNextDayNumber(ctx, uid)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	var createdAt time.Time
	lastCompletedAt, err := serv.repo.GetLastCompletedAt(ctx, uid)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	if lastCompletedAt == nil {
		createdAt, err = serv.repo.GetAccountCreatedAt(ctx, uid)
		if err != nil {
			if errors.Is(err, errorvalues.ErrUserNotFound) {
				return nil, err
			}
			return nil, errors.New("repository error: " + err.Error())
		}
	}
	state := ResolveGate(next, lastCompletedAt, createdAt, serv.now(), serv.cfg.Cooldown)
	return &state, nil
}

// publish hands the completion event off without awaiting consumers. A
// delivery failure is logged and never fails the completed request.
func (serv *ChallengeService) publish(event entity.CompletionEvent) {
	if serv.publisher == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
		defer cancel()
		if err := serv.publisher.Publish(ctx, event); err != nil {
			slog.Error("publishing completion event error",
				slog.String("uid", event.UserID.String()),
				slog.String("error", err.Error()),
			)
		}
	}()
}
