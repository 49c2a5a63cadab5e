package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// Package - посылка отправителя, забронированная на конкретный маршрут.
type Package struct {
	ID             int64
	SenderID       int64
	JourneyID      int64
	SenderIDCard   string
	SenderPhone    string
	RecipientPhone string
	Size           PackageSize
	Weight         decimal.Decimal
	Contents       map[string]any
	Status         PackageStatus
	TrackingNumber string
	PickupCode     string
	DeliveryCode   string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type PackageSize string

const (
	SizeSmall  PackageSize = "SMALL"
	SizeMedium PackageSize = "MEDIUM"
	SizeLarge  PackageSize = "LARGE"
)

func (s PackageSize) String() string {
	return string(s)
}

func (s PackageSize) Valid() bool {
	switch s {
	case SizeSmall, SizeMedium, SizeLarge:
		return true
	default:
		return false
	}
}

type PackageStatus string

const (
	PackagePending   PackageStatus = "PENDING"
	PackageApproved  PackageStatus = "APPROVED"
	PackageInTransit PackageStatus = "IN_TRANSIT"
	PackageDelivered PackageStatus = "DELIVERED"
	PackageCancelled PackageStatus = "CANCELLED"
)

const DefaultPackageStatus = PackagePending

func (s PackageStatus) String() string {
	return string(s)
}

func (s PackageStatus) Valid() bool {
	switch s {
	case PackagePending, PackageApproved, PackageInTransit, PackageDelivered, PackageCancelled:
		return true
	default:
		return false
	}
}

type PackageModify struct {
	ID             *int64
	SenderID       *int64
	JourneyID      *int64
	SenderIDCard   *string
	SenderPhone    *string
	RecipientPhone *string
	Size           *PackageSize
	Weight         *decimal.Decimal
	Contents       map[string]any
	Status         *PackageStatus
	TrackingNumber *string
	PickupCode     *string
	DeliveryCode   *string
}

// PackageStatusChange - запрос на смену статуса с предъявленным кодом передачи.
type PackageStatusChange struct {
	PackageID int64
	Status    PackageStatus
	Code      string
}

type PackageStatusRecord struct {
	EventID        string
	PackageID      int64
	TrackingNumber string
	Status         PackageStatus
	ChangedAt      time.Time
	RecordedAt     time.Time
}
