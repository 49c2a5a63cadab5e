package tracking

import (
	"context"
	"fmt"
	"strings"
	"time"

	"shipping/internal/entities"
)

// Service ведёт историю статусов посылки по событиям package.status.changed.
type Service struct {
	repository        Repository
	packageRepository PackageRepository
}

func New(repository Repository, packageRepository PackageRepository) *Service {
	return &Service{
		repository:        repository,
		packageRepository: packageRepository,
	}
}

// RecordStatusChange идемпотентна по event_id: повторная доставка события не создаёт дубль.
// Возвращает false, если событие уже было записано.
func (s *Service) RecordStatusChange(ctx context.Context, event entities.PackageStatusChangedEvent) (bool, error) {
	status := entities.PackageStatus(event.Status)
	if strings.TrimSpace(event.EventID) == "" || event.PackageID <= 0 || !status.Valid() {
		return false, ErrInvalidEvent
	}

	record := entities.PackageStatusRecord{
		EventID:        event.EventID,
		PackageID:      event.PackageID,
		TrackingNumber: event.TrackingNumber,
		Status:         status,
		ChangedAt:      event.ChangedAt,
		RecordedAt:     time.Now().UTC(),
	}

	inserted, err := s.repository.Create(ctx, record)
	if err != nil {
		return false, fmt.Errorf("record package status: %w", err)
	}
	return inserted, nil
}

func (s *Service) GetPackageHistory(ctx context.Context, packageID int64) ([]entities.PackageStatusRecord, error) {
	if packageID <= 0 {
		return nil, ErrInvalidPackageID
	}

	if _, err := s.packageRepository.GetByID(ctx, packageID); err != nil {
		return nil, fmt.Errorf("get package: %w", err)
	}

	history, err := s.repository.GetByPackageID(ctx, packageID)
	if err != nil {
		return nil, fmt.Errorf("get package history: %w", err)
	}
	return history, nil
}
