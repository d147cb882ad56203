package event

import "errors"

var (
	ErrEventNotFound   = errors.New("event not found")
	ErrUnauthenticated = errors.New("authentication required")
	ErrNotAttending    = errors.New("you are not attending this event")
)
