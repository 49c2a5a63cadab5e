package parcel

import (
	"time"

	"github.com/shopspring/decimal"
)

type PackageDB struct {
	ID             int64
	SenderID       int64
	JourneyID      int64
	SenderIDCard   string
	SenderPhone    string
	RecipientPhone string
	Size           string
	Weight         decimal.Decimal
	Contents       map[string]any
	Status         string
	TrackingNumber string
	PickupCode     string
	DeliveryCode   string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type PackageModifyDB struct {
	SenderID       *int64
	JourneyID      *int64
	SenderIDCard   *string
	SenderPhone    *string
	RecipientPhone *string
	Size           *string
	Weight         *decimal.Decimal
	Contents       map[string]any
	Status         *string
	TrackingNumber *string
	PickupCode     *string
	DeliveryCode   *string
}
