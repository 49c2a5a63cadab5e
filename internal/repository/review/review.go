package review

import (
	"context"
	"fmt"

	"shipping/internal/entities"
	"shipping/internal/repository"
	"shipping/internal/service/review"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, reviewModify entities.ReviewModify) (*entities.Review, error) {
	var reviewType *string
	if reviewModify.Type != nil {
		value := reviewModify.Type.String()
		reviewType = &value
	}

	query := `INSERT INTO reviews (reviewer_id, reviewed_id, package_id, rating, comment, review_type)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, reviewer_id, reviewed_id, package_id, rating, comment, review_type, created_at`

	var reviewModel ReviewDB
	err := r.querier.QueryRow(
		ctx,
		query,
		reviewModify.ReviewerID,
		reviewModify.ReviewedID,
		reviewModify.PackageID,
		reviewModify.Rating,
		reviewModify.Comment,
		reviewType,
	).Scan(
		&reviewModel.ID,
		&reviewModel.ReviewerID,
		&reviewModel.ReviewedID,
		&reviewModel.PackageID,
		&reviewModel.Rating,
		&reviewModel.Comment,
		&reviewModel.Type,
		&reviewModel.CreatedAt,
	)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, review.ErrConflict
		}
		return nil, fmt.Errorf("unexpected review repository create error: %w", err)
	}

	return ToDomain(&reviewModel), nil
}
