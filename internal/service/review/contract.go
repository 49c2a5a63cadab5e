//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=review_test
package review

import (
	"context"

	"shipping/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, reviewModify entities.ReviewModify) (*entities.Review, error)
}

type PackageRepository interface {
	GetByID(ctx context.Context, id int64) (*entities.Package, error)
}

type JourneyRepository interface {
	GetByID(ctx context.Context, id int64) (*entities.Journey, error)
}

type ProfileRepository interface {
	GetUserProfileByUserID(ctx context.Context, userID int64) (*entities.UserProfile, error)
	GetSenderByID(ctx context.Context, id int64) (*entities.SenderProfile, error)
	GetCarrierByID(ctx context.Context, id int64) (*entities.CarrierProfile, error)
}
