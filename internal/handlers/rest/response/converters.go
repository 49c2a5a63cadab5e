package response

import (
	"shipping/internal/entities"
	"shipping/internal/generated/dto"
)

func Journey(journey *entities.Journey) dto.Journey {
	stopPoints := make([]dto.StopPoint, 0, len(journey.StopPoints))
	for _, sp := range journey.StopPoints {
		stopPoints = append(stopPoints, dto.StopPoint{
			ID:                sp.ID,
			City:              sp.City,
			Address:           sp.Address,
			CollectionDate:    sp.CollectionDate,
			AvailableCapacity: sp.AvailableCapacity,
		})
	}

	return dto.Journey{
		ID:                journey.ID,
		CarrierID:         journey.CarrierID,
		VehicleID:         journey.VehicleID,
		DepartureCity:     journey.DepartureCity,
		ArrivalCity:       journey.ArrivalCity,
		DepartureDate:     journey.DepartureDate,
		CollectionDate:    journey.CollectionDate,
		CollectionAddress: journey.CollectionAddress,
		PricePerKg:        journey.PricePerKg,
		AvailableCapacity: journey.AvailableCapacity,
		Status:            dto.JourneyStatus(journey.Status),
		StopPoints:        stopPoints,
	}
}

// Package не выводит пустые коды передачи (их скрывает сервис для чужих посылок)
func Package(pkg *entities.Package) dto.Package {
	res := dto.Package{
		ID:             pkg.ID,
		SenderID:       pkg.SenderID,
		JourneyID:      pkg.JourneyID,
		Size:           pkg.Size.String(),
		Weight:         pkg.Weight,
		Status:         dto.PackageStatus(pkg.Status),
		TrackingNumber: pkg.TrackingNumber,
		CreatedAt:      pkg.CreatedAt,
	}
	if pkg.Contents != nil {
		contents := pkg.Contents
		res.Contents = &contents
	}
	if pkg.PickupCode != "" {
		code := pkg.PickupCode
		res.PickupCode = &code
	}
	if pkg.DeliveryCode != "" {
		code := pkg.DeliveryCode
		res.DeliveryCode = &code
	}
	return res
}

func Vehicle(vehicle *entities.Vehicle) dto.Vehicle {
	return dto.Vehicle{
		ID:           vehicle.ID,
		CarrierID:    vehicle.CarrierID,
		LicensePlate: vehicle.LicensePlate,
		Type:         vehicle.Type,
		Brand:        vehicle.Brand,
		Capacity:     vehicle.Capacity,
		Active:       vehicle.Active,
	}
}

func Review(review *entities.Review) dto.Review {
	return dto.Review{
		ID:         review.ID,
		PackageID:  review.PackageID,
		ReviewerID: review.ReviewerID,
		ReviewedID: review.ReviewedID,
		Rating:     review.Rating,
		Comment:    review.Comment,
		Type:       dto.ReviewType(review.Type),
		CreatedAt:  review.CreatedAt,
	}
}

func PackageHistory(packageID int64, records []entities.PackageStatusRecord) dto.PackageHistory {
	items := make([]dto.PackageStatusRecord, 0, len(records))
	for _, r := range records {
		items = append(items, dto.PackageStatusRecord{
			EventID:    r.EventID,
			Status:     r.Status.String(),
			ChangedAt:  r.ChangedAt,
			RecordedAt: r.RecordedAt,
		})
	}
	return dto.PackageHistory{
		PackageID: packageID,
		Items:     items,
	}
}
