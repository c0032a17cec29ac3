package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	ErrTokenIsExpired = errors.New("token is expired")
	ErrTokenIsInvalid = errors.New("token is invalid")

	ErrTokenCreationFailed = errors.New("token creation failed")

	ErrPlayerIDRequired = errors.New("player ID is required")
	ErrTeamIDRequired   = errors.New("team ID is required")
)
