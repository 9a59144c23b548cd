package complaint

import "errors"

var (
	ErrComplaintNotFound  = errors.New("complaint not found")
	ErrInvalidTransition  = errors.New("illegal status transition")
	ErrNotComplaintOwner  = errors.New("complaint belongs to another citizen")
	ErrUnknownCategory    = errors.New("unknown complaint category")
)
