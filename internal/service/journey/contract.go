//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=journey_test
package journey

import (
	"context"

	"shipping/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, journeyModify entities.JourneyModify) (*entities.Journey, error)
	GetByID(ctx context.Context, id int64) (*entities.Journey, error)
	UpdateStatus(ctx context.Context, id int64, status entities.JourneyStatus) (*entities.Journey, error)
}

type VehicleRepository interface {
	GetByID(ctx context.Context, id int64) (*entities.Vehicle, error)
}

type ProfileRepository interface {
	GetUserProfileByUserID(ctx context.Context, userID int64) (*entities.UserProfile, error)
	GetCarrierByUserID(ctx context.Context, userID int64) (*entities.CarrierProfile, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
