package domain

import "errors"

var (
	ErrEventNotFound = errors.New("event not found")
	ErrUserNotFound  = errors.New("user not found")
	ErrJoinNotFound  = errors.New("join not found")
)

var (
	ErrAlreadyJoined = errors.New("user already joined this event")
)

var (
	ErrNotEventOwner = errors.New("only the event creator may modify this event")
	ErrAdminRequired = errors.New("admin role required")
)

var (
	ErrValidation = errors.New("validation error")
)
