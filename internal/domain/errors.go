package domain

import "errors"

var (
	ErrChannelNotFound    = errors.New("channel not found")
	ErrChannelInactive    = errors.New("channel is not active")
	ErrRequestNotFound    = errors.New("join request not found")
	ErrRequestNotPending  = errors.New("join request is not pending")
	ErrRequestNotRejected = errors.New("only rejected join requests can be requeued")
	ErrTaskNotFound       = errors.New("scheduled task not found")
	ErrTaskInPast         = errors.New("scheduled time must be in the future")
	ErrTaskExecuted       = errors.New("scheduled task already ran and cannot be cancelled")
	ErrInvalidBatchSize   = errors.New("batch size must be a positive number or all")
	ErrInvalidTimeOfDay   = errors.New("time of day must be HH:MM between 00:00 and 23:59")
	ErrInvalidWeekday     = errors.New("weekday must be between 0 (Monday) and 6 (Sunday)")
	ErrEmptyWeekdays      = errors.New("an enabled schedule needs at least one weekday")
	ErrInvalidAction      = errors.New("action must be approve_all or approve_n")
	ErrInvalidPeriod      = errors.New("period must be day, week, month, year or all")
	ErrDeleteNotConfirmed = errors.New("channel deletion must be confirmed")
)
