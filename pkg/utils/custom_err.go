package utils

import "errors"

var (
	ErrInvalidInput    = errors.New("invalid input")
	ErrInvalidDayCount = errors.New("day count out of range")
	ErrTripNotFound    = errors.New("trip not found")
)
