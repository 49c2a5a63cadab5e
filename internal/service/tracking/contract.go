//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=tracking_test
package tracking

import (
	"context"

	"shipping/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, record entities.PackageStatusRecord) (bool, error)
	GetByPackageID(ctx context.Context, packageID int64) ([]entities.PackageStatusRecord, error)
}

type PackageRepository interface {
	GetByID(ctx context.Context, id int64) (*entities.Package, error)
}
