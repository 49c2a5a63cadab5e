package journey

import (
	"context"
	"errors"
	"fmt"

	"shipping/internal/entities"
)

type Service struct {
	repository        Repository
	vehicleRepository VehicleRepository
	profileRepository ProfileRepository
	txManager         TxManager
}

func New(
	repository Repository,
	vehicleRepository VehicleRepository,
	profileRepository ProfileRepository,
	txManager TxManager,
) *Service {
	return &Service{
		repository:        repository,
		vehicleRepository: vehicleRepository,
		profileRepository: profileRepository,
		txManager:         txManager,
	}
}

// CreateJourney публикует маршрут перевозчика. Свободная вместимость берётся из вместимости ТС,
// остановки получают ту же вместимость.
func (s *Service) CreateJourney(ctx context.Context, userID int64, journeyModify entities.JourneyModify) (*entities.Journey, error) {
	if journeyModify.VehicleID == nil ||
		journeyModify.DepartureCity == nil ||
		journeyModify.ArrivalCity == nil ||
		journeyModify.DepartureDate == nil ||
		journeyModify.CollectionDate == nil ||
		journeyModify.CollectionAddress == nil ||
		journeyModify.PricePerKg == nil {
		return nil, ErrMissingRequiredFields
	}

	if !isValidCity(*journeyModify.DepartureCity) || !isValidCity(*journeyModify.ArrivalCity) {
		return nil, ErrInvalidCity
	}
	if !isValidAddress(*journeyModify.CollectionAddress) {
		return nil, ErrInvalidAddress
	}
	if !isValidPrice(*journeyModify.PricePerKg) {
		return nil, ErrInvalidPrice
	}
	for _, stopPoint := range journeyModify.StopPoints {
		if !isValidStopPoint(stopPoint) {
			return nil, ErrInvalidStopPoint
		}
	}

	carrier, err := s.carrierOf(ctx, userID)
	if err != nil {
		return nil, err
	}

	vehicle, err := s.vehicleRepository.GetByID(ctx, *journeyModify.VehicleID)
	if err != nil {
		return nil, fmt.Errorf("get vehicle: %w", err)
	}

	status := entities.DefaultJourneyStatus
	capacity := vehicle.Capacity
	journeyModify.CarrierID = &carrier.ID
	journeyModify.Status = &status
	journeyModify.AvailableCapacity = &capacity

	stopPoints := make([]entities.StopPoint, len(journeyModify.StopPoints))
	for i, stopPoint := range journeyModify.StopPoints {
		stopPoint.AvailableCapacity = capacity
		stopPoints[i] = stopPoint
	}
	journeyModify.StopPoints = stopPoints

	var created *entities.Journey
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		created, err = s.repository.Create(ctx, journeyModify)
		if err != nil {
			return fmt.Errorf("create journey: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

// UpdateJourneyStatus перезаписывает статус без проверки порядка переходов.
func (s *Service) UpdateJourneyStatus(ctx context.Context, userID int64, id int64, status entities.JourneyStatus) (*entities.Journey, error) {
	if id <= 0 {
		return nil, ErrInvalidJourneyID
	}

	journey, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get journey: %w", err)
	}

	carrier, err := s.profileRepository.GetCarrierByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, entities.ErrNotFound) {
			return nil, ErrNotJourneyOwner
		}
		return nil, fmt.Errorf("get carrier profile: %w", err)
	}
	if carrier.ID != journey.CarrierID {
		return nil, ErrNotJourneyOwner
	}

	if !status.Valid() {
		return nil, ErrInvalidStatus
	}

	updated, err := s.repository.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, fmt.Errorf("update journey status: %w", err)
	}
	return updated, nil
}

func (s *Service) GetJourney(ctx context.Context, id int64) (*entities.Journey, error) {
	if id <= 0 {
		return nil, ErrInvalidJourneyID
	}

	journey, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get journey: %w", err)
	}
	return journey, nil
}

func (s *Service) carrierOf(ctx context.Context, userID int64) (*entities.CarrierProfile, error) {
	profile, err := s.profileRepository.GetUserProfileByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get user profile: %w", err)
	}
	if profile.Type != entities.ProfileCarrier {
		return nil, ErrNotCarrier
	}

	carrier, err := s.profileRepository.GetCarrierByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get carrier profile: %w", err)
	}
	return carrier, nil
}
