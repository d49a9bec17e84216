package domain

import "errors"

var (
	ErrRunInProgress    = errors.New("pipeline run already in progress")
	ErrUnknownSender    = errors.New("unknown sender kind")
	ErrInvalidRecipient = errors.New("invalid recipient")
)
