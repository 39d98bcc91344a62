package core

import (
	"errors"
)

var (
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrUnknownEasing   = errors.New("unknown easing function")
	ErrInvalidCurve    = errors.New("invalid curve")
	ErrUnknownFormat   = errors.New("unknown output format")
	ErrWatcherClosed   = errors.New("watcher already closed")

	ErrNoWorkers           = errors.New("attempting to create worker pool with less than 1 worker")
	ErrNegativeChannelSize = errors.New("attempting to create worker pool with a negative channel size")
)
