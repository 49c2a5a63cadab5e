package vehicle

type VehicleDB struct {
	ID           int64
	CarrierID    int64
	LicensePlate string
	Type         string
	Brand        string
	Capacity     int64
	Active       bool
}

type VehicleModifyDB struct {
	ID           *int64
	CarrierID    *int64
	LicensePlate *string
	Type         *string
	Brand        *string
	Capacity     *int64
	Active       *bool
}
