package notification

import "errors"

var (
	ErrNotificationNotFound = errors.New("notification not found")
	ErrUnknownAction        = errors.New("action not attached to notification")
)
