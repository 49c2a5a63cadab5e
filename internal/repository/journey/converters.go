package journey

import "shipping/internal/entities"

func ToDomain(j *JourneyDB, stopPoints []StopPointDB) *entities.Journey {
	if j == nil {
		return nil
	}

	return &entities.Journey{
		ID:                j.ID,
		CarrierID:         j.CarrierID,
		VehicleID:         j.VehicleID,
		DepartureCity:     j.DepartureCity,
		ArrivalCity:       j.ArrivalCity,
		DepartureDate:     j.DepartureDate,
		CollectionDate:    j.CollectionDate,
		CollectionAddress: j.CollectionAddress,
		PricePerKg:        j.PricePerKg,
		AvailableCapacity: j.AvailableCapacity,
		Status:            entities.JourneyStatus(j.Status),
		StopPoints:        StopPointsToDomain(stopPoints),
		CreatedAt:         j.CreatedAt,
	}
}

func StopPointsToDomain(stopPointsDB []StopPointDB) []entities.StopPoint {
	if len(stopPointsDB) == 0 {
		return []entities.StopPoint{}
	}

	result := make([]entities.StopPoint, len(stopPointsDB))
	for i, stopPoint := range stopPointsDB {
		result[i] = entities.StopPoint{
			ID:                stopPoint.ID,
			JourneyID:         stopPoint.JourneyID,
			City:              stopPoint.City,
			Address:           stopPoint.Address,
			CollectionDate:    stopPoint.CollectionDate,
			AvailableCapacity: stopPoint.AvailableCapacity,
		}
	}
	return result
}

func FromDomainModify(journeyModify *entities.JourneyModify) *JourneyModifyDB {
	if journeyModify == nil {
		return nil
	}
	journeyDB := &JourneyModifyDB{
		CarrierID:         journeyModify.CarrierID,
		VehicleID:         journeyModify.VehicleID,
		DepartureCity:     journeyModify.DepartureCity,
		ArrivalCity:       journeyModify.ArrivalCity,
		DepartureDate:     journeyModify.DepartureDate,
		CollectionDate:    journeyModify.CollectionDate,
		CollectionAddress: journeyModify.CollectionAddress,
		PricePerKg:        journeyModify.PricePerKg,
		AvailableCapacity: journeyModify.AvailableCapacity,
	}

	if journeyModify.Status != nil {
		status := journeyModify.Status.String()
		journeyDB.Status = &status
	}

	return journeyDB
}
