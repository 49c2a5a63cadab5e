package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type Journey struct {
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
	Status            JourneyStatus
	StopPoints        []StopPoint
	CreatedAt         time.Time
}

type JourneyStatus string

const (
	JourneyScheduled  JourneyStatus = "SCHEDULED"
	JourneyInProgress JourneyStatus = "IN_PROGRESS"
	JourneyCompleted  JourneyStatus = "COMPLETED"
	JourneyCancelled  JourneyStatus = "CANCELLED"
)

const DefaultJourneyStatus = JourneyScheduled

func (s JourneyStatus) String() string {
	return string(s)
}

// Valid - значение из закрытого набора статусов маршрута.
func (s JourneyStatus) Valid() bool {
	switch s {
	case JourneyScheduled, JourneyInProgress, JourneyCompleted, JourneyCancelled:
		return true
	default:
		return false
	}
}

type StopPoint struct {
	ID                int64
	JourneyID         int64
	City              string
	Address           string
	CollectionDate    time.Time
	AvailableCapacity int64
}

type JourneyModify struct {
	ID                *int64
	CarrierID         *int64
	VehicleID         *int64
	DepartureCity     *string
	ArrivalCity       *string
	DepartureDate     *time.Time
	CollectionDate    *time.Time
	CollectionAddress *string
	PricePerKg        *decimal.Decimal
	AvailableCapacity *int64
	Status            *JourneyStatus
	StopPoints        []StopPoint
}
