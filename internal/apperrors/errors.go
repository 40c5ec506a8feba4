package apperrors

import "errors"

var (
	ErrMonitorNotFound      = errors.New("monitor not found")
	ErrGroupNotFound        = errors.New("group not found")
	ErrSSLInfoNotFound      = errors.New("ssl info not found")
	ErrSubscriptionNotFound = errors.New("subscription not found")
	ErrTokenExpired         = errors.New("verification token expired")
	ErrDuplicateSubscriber  = errors.New("email already subscribed to monitor")
	ErrInvalidMonitorConfig = errors.New("invalid monitor configuration")
)
