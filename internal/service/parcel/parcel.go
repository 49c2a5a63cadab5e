package parcel

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"shipping/internal/entities"
)

// при коллизии трек-номера генерируем новый
const trackingNumberAttempts = 3

type Service struct {
	repository        Repository
	journeyRepository JourneyRepository
	profileRepository ProfileRepository
	outboxRepository  OutboxRepository
	codeFactory       CodeFactory
	txManager         TxManager
}

func New(
	repository Repository,
	journeyRepository JourneyRepository,
	profileRepository ProfileRepository,
	outboxRepository OutboxRepository,
	codeFactory CodeFactory,
	txManager TxManager,
) *Service {
	return &Service{
		repository:        repository,
		journeyRepository: journeyRepository,
		profileRepository: profileRepository,
		outboxRepository:  outboxRepository,
		codeFactory:       codeFactory,
		txManager:         txManager,
	}
}

func (s *Service) CreatePackage(ctx context.Context, userID int64, packageModify entities.PackageModify) (*entities.Package, error) {
	if packageModify.JourneyID == nil ||
		packageModify.SenderIDCard == nil ||
		packageModify.SenderPhone == nil ||
		packageModify.RecipientPhone == nil ||
		packageModify.Size == nil ||
		packageModify.Weight == nil ||
		packageModify.Contents == nil {
		return nil, ErrMissingRequiredFields
	}

	if !packageModify.Size.Valid() {
		return nil, ErrInvalidSize
	}
	if !isValidWeight(*packageModify.Weight) {
		return nil, ErrInvalidWeight
	}
	if !isValidPhone(*packageModify.SenderPhone) || !isValidPhone(*packageModify.RecipientPhone) {
		return nil, ErrInvalidPhone
	}
	if !isValidIDCard(*packageModify.SenderIDCard) {
		return nil, ErrInvalidIDCard
	}
	if len(packageModify.Contents) == 0 {
		return nil, ErrInvalidContents
	}

	sender, err := s.profileRepository.GetSenderByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get sender profile: %w", err)
	}

	journey, err := s.journeyRepository.GetByID(ctx, *packageModify.JourneyID)
	if err != nil {
		return nil, fmt.Errorf("get journey: %w", err)
	}

	if err := CheckCapacity(journey, *packageModify.Weight); err != nil {
		CapacityRejectionsTotal.Inc()
		return nil, err
	}

	pickupCode, err := s.codeFactory.HandoverCode()
	if err != nil {
		return nil, fmt.Errorf("generate pickup code: %w", err)
	}
	deliveryCode, err := s.codeFactory.HandoverCode()
	if err != nil {
		return nil, fmt.Errorf("generate delivery code: %w", err)
	}

	status := entities.DefaultPackageStatus
	packageModify.SenderID = &sender.ID
	packageModify.Status = &status
	packageModify.PickupCode = &pickupCode
	packageModify.DeliveryCode = &deliveryCode

	var created *entities.Package
	for attempt := 1; ; attempt++ {
		trackingNumber := s.codeFactory.TrackingNumber()
		packageModify.TrackingNumber = &trackingNumber

		created, err = s.repository.Create(ctx, packageModify)
		if err == nil {
			break
		}
		if errors.Is(err, ErrConflict) && attempt < trackingNumberAttempts {
			continue
		}
		return nil, fmt.Errorf("create package: %w", err)
	}

	PackagesCreatedTotal.Inc()
	return created, nil
}

func (s *Service) UpdatePackageStatus(ctx context.Context, userID int64, change entities.PackageStatusChange) (*entities.Package, error) {
	if change.PackageID <= 0 {
		return nil, ErrInvalidPackageID
	}

	var updated *entities.Package
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		pkg, err := s.repository.GetByID(ctx, change.PackageID)
		if err != nil {
			return fmt.Errorf("get package: %w", err)
		}

		if err := s.checkOwner(ctx, userID, pkg); err != nil {
			return err
		}

		if err := ValidateTransition(pkg, change.Status, change.Code); err != nil {
			return err
		}

		updated, err = s.repository.UpdateStatus(ctx, pkg.ID, change.Status)
		if err != nil {
			return fmt.Errorf("update package status: %w", err)
		}

		if change.Status == entities.PackageDelivered {
			// повторный DELIVERED снова увеличит счётчики
			if err := s.profileRepository.IncrementSenderTotalPackages(ctx, pkg.SenderID); err != nil {
				return fmt.Errorf("increment sender total packages: %w", err)
			}

			journey, err := s.journeyRepository.GetByID(ctx, pkg.JourneyID)
			if err != nil {
				return fmt.Errorf("get journey: %w", err)
			}
			if err := s.profileRepository.IncrementCarrierTotalDeliveries(ctx, journey.CarrierID); err != nil {
				return fmt.Errorf("increment carrier total deliveries: %w", err)
			}
		}

		event, err := s.statusChangedEvent(updated)
		if err != nil {
			return err
		}
		if err := s.outboxRepository.Create(ctx, event); err != nil {
			return fmt.Errorf("write status changed event: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	StatusTransitionsTotal.WithLabelValues(updated.Status.String()).Inc()
	return updated, nil
}

// GetPackage скрывает коды передачи от всех, кроме отправителя посылки.
func (s *Service) GetPackage(ctx context.Context, userID int64, id int64) (*entities.Package, error) {
	if id <= 0 {
		return nil, ErrInvalidPackageID
	}

	pkg, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get package: %w", err)
	}

	err = s.checkOwner(ctx, userID, pkg)
	switch {
	case err == nil:
	case errors.Is(err, ErrNotPackageOwner):
		pkg.PickupCode = ""
		pkg.DeliveryCode = ""
	default:
		return nil, err
	}

	return pkg, nil
}

func (s *Service) checkOwner(ctx context.Context, userID int64, pkg *entities.Package) error {
	sender, err := s.profileRepository.GetSenderByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, entities.ErrNotFound) {
			return ErrNotPackageOwner
		}
		return fmt.Errorf("get sender profile: %w", err)
	}

	if sender.ID != pkg.SenderID {
		return ErrNotPackageOwner
	}
	return nil
}

func (s *Service) statusChangedEvent(pkg *entities.Package) (entities.OutboxEvent, error) {
	eventID := s.codeFactory.EventID()
	payload, err := json.Marshal(entities.PackageStatusChangedEvent{
		EventID:        eventID,
		PackageID:      pkg.ID,
		JourneyID:      pkg.JourneyID,
		TrackingNumber: pkg.TrackingNumber,
		Status:         pkg.Status.String(),
		ChangedAt:      pkg.UpdatedAt,
	})
	if err != nil {
		return entities.OutboxEvent{}, fmt.Errorf("marshal status changed event: %w", err)
	}

	return entities.OutboxEvent{
		EventID: eventID,
		Topic:   entities.TopicPackageStatusChanged,
		Key:     strconv.FormatInt(pkg.ID, 10),
		Payload: payload,
	}, nil
}
