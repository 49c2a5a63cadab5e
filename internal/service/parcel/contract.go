//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=parcel_test
package parcel

import (
	"context"

	"shipping/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, packageModify entities.PackageModify) (*entities.Package, error)
	GetByID(ctx context.Context, id int64) (*entities.Package, error)
	UpdateStatus(ctx context.Context, id int64, status entities.PackageStatus) (*entities.Package, error)
}

type JourneyRepository interface {
	GetByID(ctx context.Context, id int64) (*entities.Journey, error)
}

type ProfileRepository interface {
	GetSenderByUserID(ctx context.Context, userID int64) (*entities.SenderProfile, error)
	IncrementSenderTotalPackages(ctx context.Context, senderID int64) error
	IncrementCarrierTotalDeliveries(ctx context.Context, carrierID int64) error
}

type OutboxRepository interface {
	Create(ctx context.Context, event entities.OutboxEvent) error
}

type CodeFactory interface {
	TrackingNumber() string
	HandoverCode() (string, error)
	EventID() string
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
