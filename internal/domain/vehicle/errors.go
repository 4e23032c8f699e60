package vehicle

import "errors"

var (
	ErrVehicleNotFound = errors.New("vehicle not found")
)
