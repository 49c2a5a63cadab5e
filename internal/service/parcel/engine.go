package parcel

import (
	"github.com/shopspring/decimal"
	"shipping/internal/entities"
)

// CheckCapacity допускает посылку, если её вес не больше available_capacity маршрута.
// Счётчик маршрута не уменьшается и не сверяется с уже принятыми посылками.
func CheckCapacity(journey *entities.Journey, weight decimal.Decimal) error {
	if weight.GreaterThan(decimal.NewFromInt(journey.AvailableCapacity)) {
		return ErrInsufficientCapacity
	}
	return nil
}

// ValidateTransition проверяет новый статус и предъявленный код передачи.
// Порядок статусов не навязывается: любой статус из набора достижим из любого.
func ValidateTransition(pkg *entities.Package, status entities.PackageStatus, code string) error {
	if !status.Valid() {
		return ErrInvalidStatus
	}

	switch status {
	case entities.PackageInTransit:
		if code != pkg.PickupCode {
			return ErrInvalidPickupCode
		}
	case entities.PackageDelivered:
		if code != pkg.DeliveryCode {
			return ErrInvalidDeliveryCode
		}
	}
	return nil
}
