package errorvalues

import "errors"

var (
	ErrUserExists       = errors.New("such user already exists")
	ErrUserNotFound     = errors.New("user doesn't exists")
	ErrWrongCredentials = errors.New("wrong name or password")
	ErrInvalidToken     = errors.New("invalid token")

	// Completion taxonomy. All of these are recovered inside the
	// challenge service and mapped to typed responses.
	ErrSequenceViolation = errors.New("day is not the current next day")
	ErrCooldownActive    = errors.New("cooldown hasn't elapsed yet")
	ErrAlreadyCompleted  = errors.New("day already completed")
	ErrChallengeComplete = errors.New("challenge already complete")
)
