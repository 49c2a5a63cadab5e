package vehicle

import "shipping/internal/entities"

func ToDomain(v *VehicleDB) *entities.Vehicle {
	if v == nil {
		return nil
	}

	return &entities.Vehicle{
		ID:           v.ID,
		CarrierID:    v.CarrierID,
		LicensePlate: v.LicensePlate,
		Type:         v.Type,
		Brand:        v.Brand,
		Capacity:     v.Capacity,
		Active:       v.Active,
	}
}

func FromDomainModify(vehicleModify *entities.VehicleModify) *VehicleModifyDB {
	if vehicleModify == nil {
		return nil
	}

	return &VehicleModifyDB{
		ID:           vehicleModify.ID,
		CarrierID:    vehicleModify.CarrierID,
		LicensePlate: vehicleModify.LicensePlate,
		Type:         vehicleModify.Type,
		Brand:        vehicleModify.Brand,
		Capacity:     vehicleModify.Capacity,
		Active:       vehicleModify.Active,
	}
}
