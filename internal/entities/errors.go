package entities

import (
	"errors"
	"fmt"
)

// Категории ошибок, общие для всех сервисов. Конкретные ошибки сервисов оборачивают их,
// поэтому обработчики могут сверяться как с категорией, так и с конкретной ошибкой.
var (
	ErrNotFound  = errors.New("not found")
	ErrForbidden = errors.New("forbidden")
	ErrConflict  = errors.New("resource already exists")

	ErrProfileNotFound = fmt.Errorf("profile %w", ErrNotFound)
)
