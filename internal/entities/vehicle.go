package entities

type Vehicle struct {
	ID           int64
	CarrierID    int64
	LicensePlate string
	Type         string
	Brand        string
	Capacity     int64 // кг
	Active       bool
}

type VehicleModify struct {
	ID           *int64
	CarrierID    *int64
	LicensePlate *string
	Type         *string
	Brand        *string
	Capacity     *int64
	Active       *bool
}
