package parcel

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"shipping/internal/entities"
	"shipping/internal/repository"
	"shipping/internal/service/parcel"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const packageColumns = `id, sender_id, journey_id, sender_id_card, sender_phone, recipient_phone, size,
	weight, contents, status, tracking_number, pickup_code, delivery_code, created_at, updated_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, packageModifyEntity entities.PackageModify) (*entities.Package, error) {
	packageModifyModel := FromDomainModify(&packageModifyEntity)
	query := `INSERT INTO packages (sender_id, journey_id, sender_id_card, sender_phone, recipient_phone,
			size, weight, contents, status, tracking_number, pickup_code, delivery_code)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING ` + packageColumns

	packageModel, err := scanPackage(r.querier.QueryRow(
		ctx,
		query,
		packageModifyModel.SenderID,
		packageModifyModel.JourneyID,
		packageModifyModel.SenderIDCard,
		packageModifyModel.SenderPhone,
		packageModifyModel.RecipientPhone,
		packageModifyModel.Size,
		packageModifyModel.Weight,
		packageModifyModel.Contents,
		packageModifyModel.Status,
		packageModifyModel.TrackingNumber,
		packageModifyModel.PickupCode,
		packageModifyModel.DeliveryCode,
	))
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, parcel.ErrConflict
		}
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return nil, fmt.Errorf("package references missing sender or journey: %w", entities.ErrNotFound)
		}
		return nil, fmt.Errorf("unexpected package repository create error: %w", err)
	}

	return ToDomain(packageModel), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Package, error) {
	query := `SELECT ` + packageColumns + `
		FROM packages
		WHERE id = $1`

	packageModel, err := scanPackage(r.querier.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, parcel.ErrPackageNotFound
		}
		return nil, fmt.Errorf("unexpected package repository getbyid error: %w", err)
	}

	return ToDomain(packageModel), nil
}

func (r *Repository) UpdateStatus(ctx context.Context, id int64, status entities.PackageStatus) (*entities.Package, error) {
	query, args, err := qb.
		Update("packages").
		Set("status", status.String()).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + packageColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected package repository update status error: %w", err)
	}

	packageModel, err := scanPackage(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, parcel.ErrPackageNotFound
		}
		return nil, fmt.Errorf("unexpected package repository update status error: %w", err)
	}

	return ToDomain(packageModel), nil
}

func scanPackage(row pgx.Row) (*PackageDB, error) {
	var packageModel PackageDB
	err := row.Scan(
		&packageModel.ID,
		&packageModel.SenderID,
		&packageModel.JourneyID,
		&packageModel.SenderIDCard,
		&packageModel.SenderPhone,
		&packageModel.RecipientPhone,
		&packageModel.Size,
		&packageModel.Weight,
		&packageModel.Contents,
		&packageModel.Status,
		&packageModel.TrackingNumber,
		&packageModel.PickupCode,
		&packageModel.DeliveryCode,
		&packageModel.CreatedAt,
		&packageModel.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &packageModel, nil
}
