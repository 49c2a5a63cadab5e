package journey

import (
	"time"

	"github.com/shopspring/decimal"
)

type JourneyDB struct {
	ID                int64
	CarrierID         int64
	VehicleID         int64
	DepartureCity     string
	ArrivalCity       string
	DepartureDate     time.Time
	CollectionDate    time.Time
	CollectionAddress string
	PricePerKg        decimal.Decimal
	AvailableCapacity int64
	Status            string
	CreatedAt         time.Time
}

type StopPointDB struct {
	ID                int64
	JourneyID         int64
	City              string
	Address           string
	CollectionDate    time.Time
	AvailableCapacity int64
}

type JourneyModifyDB struct {
	CarrierID         *int64
	VehicleID         *int64
	DepartureCity     *string
	ArrivalCity       *string
	DepartureDate     *time.Time
	CollectionDate    *time.Time
	CollectionAddress *string
	PricePerKg        *decimal.Decimal
	AvailableCapacity *int64
	Status            *string
}
