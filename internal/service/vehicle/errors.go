package vehicle

import (
	"errors"
	"fmt"

	"shipping/internal/entities"
)

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidLicensePlate   = errors.New("invalid license plate")
	ErrInvalidType           = errors.New("invalid vehicle type")
	ErrInvalidBrand          = errors.New("invalid vehicle brand")
	ErrInvalidCapacity       = errors.New("invalid vehicle capacity")

	ErrVehicleNotFound = fmt.Errorf("vehicle %w", entities.ErrNotFound)
	ErrNotCarrier      = fmt.Errorf("only carriers can register vehicles: %w", entities.ErrForbidden)
	ErrConflict        = fmt.Errorf("vehicle: %w", entities.ErrConflict)
)
