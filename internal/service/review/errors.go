package review

import (
	"errors"
	"fmt"

	"shipping/internal/entities"
)

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidRating         = errors.New("rating must be between 1 and 5")
	ErrInvalidComment        = errors.New("invalid comment")

	ErrConflict = fmt.Errorf("review: %w", entities.ErrConflict)
)
