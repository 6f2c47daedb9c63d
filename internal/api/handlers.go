package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/bytedance/sonic"
	errorvalues "github.com/limbo/cadence/internal/error_values"
	"github.com/limbo/cadence/internal/service"
	"github.com/limbo/cadence/pkg/httputil"
)

// ProfileTagHeader is an opaque scoping tag set by the profile
// collaborator. It rides along as event metadata only.
const ProfileTagHeader = "X-Profile-Tag"

type RegisterRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

type DeleteAccountRequest struct {
	Password string `json:"password"`
}

type NextDayResponse struct {
	DayNumber            int  `json:"day_number"`
	Complete             bool `json:"complete"`
	Eligible             bool `json:"eligible"`
	CooldownRemainingSec int64 `json:"cooldown_remaining_seconds"`
}

type CompleteDayResponse struct {
	Success             bool `json:"success"`
	AlreadyCompleted    bool `json:"already_completed"`
	NewStreak           int  `json:"new_streak"`
	TotalCompleted      int  `json:"total_completed"`
	IsChallengeComplete bool `json:"is_challenge_complete"`
}

func (s *Server) Register(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req RegisterRequest
	defer r.Body.Close()
	err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("registering error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	user, err := s.userService.Register(ctx, &service.RegisterRequest{
		Name:     req.Name,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserExists) {
			logger.Error("registering error: existed user")
			httputil.WriteErrorResponse(w, http.StatusConflict, "user with such name already exists", nil)
			return
		}
		logger.Error("registering error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error during registration", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, map[string]any{
		"uid": user.ID.String(),
	})
	logger.Info("successful registration")
}

func (s *Server) Login(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req LoginRequest
	defer r.Body.Close()
	err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("login error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	user, err := s.userService.Login(ctx, req.Name, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrUserNotFound):
			logger.Error("login error: unexist user")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "user with such name doesn't exist", nil)
			return
		case errors.Is(err, errorvalues.ErrWrongCredentials):
			logger.Error("login error: wrong password")
			httputil.WriteErrorResponse(w, http.StatusForbidden, "invalid username or password", nil)
			return
		default:
			logger.Error("login error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error during login", nil)
			return
		}
	}
	token, err := s.jwtService.GenerateToken(user)
	if err != nil {
		logger.Error("login error: generating token error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error creating token", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{
		"uid":   user.ID.String(),
		"token": token,
	})
	logger.Info("successful login")
}

func (s *Server) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("account deletion error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req DeleteAccountRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("account deletion error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	err = s.userService.DeleteAccount(ctx, uid, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrUserNotFound):
			logger.Error("account deletion error: unexist user")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "user doesn't exist", nil)
		case errors.Is(err, errorvalues.ErrWrongCredentials):
			logger.Error("account deletion error: wrong password")
			httputil.WriteErrorResponse(w, http.StatusForbidden, "wrong password", nil)
		default:
			logger.Error("account deletion error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while deleting account", nil)
		}
		return
	}
	logger.Info("account deleted")
}

func (s *Server) NextDay(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("next day state error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	state, err := s.challengeService.NextDayState(ctx, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			logger.Error("next day state error: unexist user")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "user doesn't exist", nil)
			return
		}
		logger.Error("next day state error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while deriving next day state", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, NextDayResponse{
		DayNumber:            state.DayNumber,
		Complete:             state.Complete,
		Eligible:             state.Eligible,
		CooldownRemainingSec: int64(state.CooldownRemaining.Seconds()),
	})
	logger.Info("next day state provided")
}

func (s *Server) Days(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("day list error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	days, err := s.challengeService.Days(ctx, uid)
	if err != nil {
		logger.Error("day list error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while listing days", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{
		"days": days,
	})
	logger.Info("day list provided")
}

func (s *Server) Summary(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("summary error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	stats, err := s.challengeService.Summary(ctx, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			logger.Error("summary error: unexist user")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "user doesn't exist", nil)
			return
		}
		logger.Error("summary error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while building summary", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, stats)
	logger.Info("summary provided")
}

func (s *Server) CompleteDay(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("complete day error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	dayNumber, err := strconv.Atoi(r.PathValue("dayNumber"))
	if err != nil || dayNumber < 1 {
		logger.Error("complete day error: invalid day number in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid day number in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	result, err := s.challengeService.CompleteDay(ctx, uid, dayNumber, r.Header.Get(ProfileTagHeader))
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrSequenceViolation):
			logger.Error("complete day error: out of order attempt", slog.Int("day", dayNumber))
			httputil.WriteErrorResponse(w, http.StatusConflict, "day is not the current next day", nil)
		case errors.Is(err, errorvalues.ErrChallengeComplete):
			logger.Error("complete day error: challenge already complete")
			httputil.WriteErrorResponse(w, http.StatusConflict, "challenge already complete", nil)
		case errors.Is(err, errorvalues.ErrCooldownActive):
			logger.Error("complete day error: cooldown active", slog.Int("day", dayNumber))
			s.writeCooldownResponse(ctx, w, r)
		default:
			logger.Error("complete day error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while completing day", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, CompleteDayResponse{
		Success:             result.Success,
		AlreadyCompleted:    result.AlreadyCompleted,
		NewStreak:           result.NewStreak,
		TotalCompleted:      result.TotalCompleted,
		IsChallengeComplete: result.IsChallengeComplete,
	})
	logger.Info("day completed", slog.Int("day", dayNumber), slog.Int("streak", result.NewStreak))
}

// writeCooldownResponse re-derives the remaining wait so the client
// gets an authoritative Retry-After instead of its own countdown.
func (s *Server) writeCooldownResponse(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	retryAfter := 1
	uid, err := GetUIDFromContext(r)
	if err == nil {
		if state, stateErr := s.challengeService.NextDayState(ctx, uid); stateErr == nil {
			retryAfter = int(state.CooldownRemaining.Seconds())
		}
	}
	httputil.WriteRetryAfterResponse(w, http.StatusTooManyRequests, "cooldown hasn't elapsed yet", retryAfter)
}
