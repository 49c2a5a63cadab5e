package journey

import (
	"errors"
	"fmt"

	"shipping/internal/entities"
)

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidJourneyID      = errors.New("invalid journey id")
	ErrInvalidCity           = errors.New("invalid city")
	ErrInvalidAddress        = errors.New("invalid address")
	ErrInvalidPrice          = errors.New("invalid price per kg")
	ErrInvalidStatus         = errors.New("invalid status")
	ErrInvalidStopPoint      = errors.New("invalid stop point")

	ErrJourneyNotFound = fmt.Errorf("journey %w", entities.ErrNotFound)
	ErrNotCarrier      = fmt.Errorf("only carriers can publish journeys: %w", entities.ErrForbidden)
	ErrNotJourneyOwner = fmt.Errorf("journey is owned by another carrier: %w", entities.ErrForbidden)
)
