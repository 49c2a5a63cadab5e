package vehicle

import (
	"context"
	"fmt"
	"strings"

	"shipping/internal/entities"
)

type Service struct {
	repository        Repository
	profileRepository ProfileRepository
}

func New(repository Repository, profileRepository ProfileRepository) *Service {
	return &Service{
		repository:        repository,
		profileRepository: profileRepository,
	}
}

func (s *Service) CreateVehicle(ctx context.Context, userID int64, vehicleModify entities.VehicleModify) (*entities.Vehicle, error) {
	if vehicleModify.LicensePlate == nil ||
		vehicleModify.Type == nil ||
		vehicleModify.Brand == nil ||
		vehicleModify.Capacity == nil {
		return nil, ErrMissingRequiredFields
	}

	if !isValidText(*vehicleModify.LicensePlate, 20) {
		return nil, ErrInvalidLicensePlate
	}
	if !isValidText(*vehicleModify.Type, 50) {
		return nil, ErrInvalidType
	}
	if !isValidText(*vehicleModify.Brand, 50) {
		return nil, ErrInvalidBrand
	}
	if !isValidCapacity(*vehicleModify.Capacity) {
		return nil, ErrInvalidCapacity
	}

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

	plate := strings.ToUpper(strings.TrimSpace(*vehicleModify.LicensePlate))
	vehicleModify.LicensePlate = &plate
	vehicleModify.CarrierID = &carrier.ID
	if vehicleModify.Active == nil {
		active := true
		vehicleModify.Active = &active
	}

	vehicle, err := s.repository.Create(ctx, vehicleModify)
	if err != nil {
		return nil, fmt.Errorf("create vehicle: %w", err)
	}
	return vehicle, nil
}
