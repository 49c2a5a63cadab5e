package tracking

import "errors"

var (
	ErrInvalidEvent     = errors.New("invalid package status event")
	ErrInvalidPackageID = errors.New("invalid package id")
)
