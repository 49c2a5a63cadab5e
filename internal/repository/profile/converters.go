package profile

import "shipping/internal/entities"

func UserProfileToDomain(p *UserProfileDB) *entities.UserProfile {
	if p == nil {
		return nil
	}

	return &entities.UserProfile{
		ID:     p.ID,
		UserID: p.UserID,
		Type:   entities.ProfileType(p.Type),
		Phone:  p.Phone,
	}
}

func CarrierToDomain(c *CarrierProfileDB) *entities.CarrierProfile {
	if c == nil {
		return nil
	}

	return &entities.CarrierProfile{
		ID:                   c.ID,
		UserProfileID:        c.UserProfileID,
		UserID:               c.UserID,
		CompanyName:          c.CompanyName,
		BusinessRegistration: c.BusinessRegistration,
		Rating:               c.Rating,
		ReviewCount:          c.ReviewCount,
		Verified:             c.Verified,
		TotalDeliveries:      c.TotalDeliveries,
	}
}

func SenderToDomain(s *SenderProfileDB) *entities.SenderProfile {
	if s == nil {
		return nil
	}

	return &entities.SenderProfile{
		ID:            s.ID,
		UserProfileID: s.UserProfileID,
		UserID:        s.UserID,
		TotalPackages: s.TotalPackages,
		Rating:        s.Rating,
		ReviewCount:   s.ReviewCount,
	}
}
