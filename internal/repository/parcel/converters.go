package parcel

import "shipping/internal/entities"

func ToDomain(p *PackageDB) *entities.Package {
	if p == nil {
		return nil
	}

	return &entities.Package{
		ID:             p.ID,
		SenderID:       p.SenderID,
		JourneyID:      p.JourneyID,
		SenderIDCard:   p.SenderIDCard,
		SenderPhone:    p.SenderPhone,
		RecipientPhone: p.RecipientPhone,
		Size:           entities.PackageSize(p.Size),
		Weight:         p.Weight,
		Contents:       p.Contents,
		Status:         entities.PackageStatus(p.Status),
		TrackingNumber: p.TrackingNumber,
		PickupCode:     p.PickupCode,
		DeliveryCode:   p.DeliveryCode,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

func FromDomainModify(packageModify *entities.PackageModify) *PackageModifyDB {
	if packageModify == nil {
		return nil
	}
	packageDB := &PackageModifyDB{
		SenderID:       packageModify.SenderID,
		JourneyID:      packageModify.JourneyID,
		SenderIDCard:   packageModify.SenderIDCard,
		SenderPhone:    packageModify.SenderPhone,
		RecipientPhone: packageModify.RecipientPhone,
		Weight:         packageModify.Weight,
		Contents:       packageModify.Contents,
		TrackingNumber: packageModify.TrackingNumber,
		PickupCode:     packageModify.PickupCode,
		DeliveryCode:   packageModify.DeliveryCode,
	}

	if packageModify.Size != nil {
		size := packageModify.Size.String()
		packageDB.Size = &size
	}
	if packageModify.Status != nil {
		status := packageModify.Status.String()
		packageDB.Status = &status
	}

	return packageDB
}
