package utils

import "errors"

var (
	ErrInvalidPreferences    = errors.New("invalid preferences")
	ErrInvalidInput          = errors.New("invalid input")
	ErrSessionNotFound       = errors.New("itinerary session not found")
	ErrActivityNotFound      = errors.New("activity not found")
	ErrExperienceNotFound    = errors.New("signature experience not found")
	ErrNotReplaceable        = errors.New("activity is not replaceable")
	ErrUnauthorized          = errors.New("unauthorized")
	ErrDatabaseError         = errors.New("database error")
	ErrMailDeliveryFailed    = errors.New("mail delivery failed")
)
