package domain

import "errors"

var (
	ErrUnauthenticated         = errors.New("not authenticated")
	ErrSessionExpiredOrInvalid = errors.New("session expired")
	ErrUpstreamAuth            = errors.New("oauth session exchange failed")
	ErrUserNotFound            = errors.New("user not found")
	ErrInvalidExperienceLevel  = errors.New("experience_level must be one of: beginner, intermediate, advanced")
	ErrSessionIDRequired       = errors.New("session id required")
)
