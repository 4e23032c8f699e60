package booking

import "errors"

var (
	ErrBookingNotFound = errors.New("booking not found")
	ErrInvalidDate     = errors.New("invalid booking date")
)
