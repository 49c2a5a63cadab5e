//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=vehicle_test
package vehicle

import (
	"context"

	"shipping/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, vehicleModify entities.VehicleModify) (*entities.Vehicle, error)
}

type ProfileRepository interface {
	GetUserProfileByUserID(ctx context.Context, userID int64) (*entities.UserProfile, error)
	GetCarrierByUserID(ctx context.Context, userID int64) (*entities.CarrierProfile, error)
}
