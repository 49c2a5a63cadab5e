package review

import "shipping/internal/entities"

func ToDomain(r *ReviewDB) *entities.Review {
	if r == nil {
		return nil
	}

	return &entities.Review{
		ID:         r.ID,
		ReviewerID: r.ReviewerID,
		ReviewedID: r.ReviewedID,
		PackageID:  r.PackageID,
		Rating:     r.Rating,
		Comment:    r.Comment,
		Type:       entities.ReviewType(r.Type),
		CreatedAt:  r.CreatedAt,
	}
}
