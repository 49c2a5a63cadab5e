package parcel

import (
	"errors"
	"fmt"

	"shipping/internal/entities"
)

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidPackageID      = errors.New("invalid package id")
	ErrInvalidSize           = errors.New("invalid package size")
	ErrInvalidWeight         = errors.New("invalid package weight")
	ErrInvalidPhone          = errors.New("invalid phone")
	ErrInvalidIDCard         = errors.New("invalid sender id card")
	ErrInvalidContents       = errors.New("invalid package contents")

	ErrInsufficientCapacity = errors.New("package weight exceeds available capacity")
	ErrInvalidStatus        = errors.New("invalid status")
	ErrInvalidCode          = errors.New("invalid code")
	ErrInvalidPickupCode    = fmt.Errorf("pickup: %w", ErrInvalidCode)
	ErrInvalidDeliveryCode  = fmt.Errorf("delivery: %w", ErrInvalidCode)

	ErrPackageNotFound = fmt.Errorf("package %w", entities.ErrNotFound)
	ErrNotPackageOwner = fmt.Errorf("package is owned by another sender: %w", entities.ErrForbidden)
	ErrConflict        = fmt.Errorf("package: %w", entities.ErrConflict)
)
