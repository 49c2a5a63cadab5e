package profile

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"shipping/internal/entities"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const (
	carrierColumns = `c.id, c.user_profile_id, u.user_id, c.company_name, c.business_registration,
		c.rating, c.review_count, c.verified, c.total_deliveries`
	senderColumns = `s.id, s.user_profile_id, u.user_id, s.total_packages, s.rating, s.review_count`
)

// Repository читает профили пользователей. Профили создаются вне сервиса,
// здесь меняются только счётчики доставок.
type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) GetUserProfileByUserID(ctx context.Context, userID int64) (*entities.UserProfile, error) {
	query := `SELECT id, user_id, type, phone
		FROM user_profiles
		WHERE user_id = $1`

	var profileModel UserProfileDB
	err := r.querier.QueryRow(ctx, query, userID).
		Scan(
			&profileModel.ID,
			&profileModel.UserID,
			&profileModel.Type,
			&profileModel.Phone,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrProfileNotFound
		}
		return nil, fmt.Errorf("unexpected profile repository get user profile error: %w", err)
	}

	return UserProfileToDomain(&profileModel), nil
}

func (r *Repository) GetCarrierByUserID(ctx context.Context, userID int64) (*entities.CarrierProfile, error) {
	query := `SELECT ` + carrierColumns + `
		FROM carrier_profiles c
		JOIN user_profiles u ON u.id = c.user_profile_id
		WHERE u.user_id = $1`

	return r.getCarrier(ctx, query, userID)
}

func (r *Repository) GetCarrierByID(ctx context.Context, id int64) (*entities.CarrierProfile, error) {
	query := `SELECT ` + carrierColumns + `
		FROM carrier_profiles c
		JOIN user_profiles u ON u.id = c.user_profile_id
		WHERE c.id = $1`

	return r.getCarrier(ctx, query, id)
}

func (r *Repository) GetSenderByUserID(ctx context.Context, userID int64) (*entities.SenderProfile, error) {
	query := `SELECT ` + senderColumns + `
		FROM sender_profiles s
		JOIN user_profiles u ON u.id = s.user_profile_id
		WHERE u.user_id = $1`

	return r.getSender(ctx, query, userID)
}

func (r *Repository) GetSenderByID(ctx context.Context, id int64) (*entities.SenderProfile, error) {
	query := `SELECT ` + senderColumns + `
		FROM sender_profiles s
		JOIN user_profiles u ON u.id = s.user_profile_id
		WHERE s.id = $1`

	return r.getSender(ctx, query, id)
}

func (r *Repository) IncrementSenderTotalPackages(ctx context.Context, senderID int64) error {
	return r.increment(ctx, "sender_profiles", "total_packages", senderID)
}

func (r *Repository) IncrementCarrierTotalDeliveries(ctx context.Context, carrierID int64) error {
	return r.increment(ctx, "carrier_profiles", "total_deliveries", carrierID)
}

func (r *Repository) increment(ctx context.Context, table, column string, id int64) error {
	query, args, err := qb.
		Update(table).
		Set(column, sq.Expr(column+" + 1")).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("unexpected profile repository increment error: %w", err)
	}

	tag, err := r.querier.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("unexpected profile repository increment error: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return entities.ErrProfileNotFound
	}
	return nil
}

func (r *Repository) getCarrier(ctx context.Context, query string, arg int64) (*entities.CarrierProfile, error) {
	var carrierModel CarrierProfileDB
	err := r.querier.QueryRow(ctx, query, arg).
		Scan(
			&carrierModel.ID,
			&carrierModel.UserProfileID,
			&carrierModel.UserID,
			&carrierModel.CompanyName,
			&carrierModel.BusinessRegistration,
			&carrierModel.Rating,
			&carrierModel.ReviewCount,
			&carrierModel.Verified,
			&carrierModel.TotalDeliveries,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrProfileNotFound
		}
		return nil, fmt.Errorf("unexpected profile repository get carrier error: %w", err)
	}

	return CarrierToDomain(&carrierModel), nil
}

func (r *Repository) getSender(ctx context.Context, query string, arg int64) (*entities.SenderProfile, error) {
	var senderModel SenderProfileDB
	err := r.querier.QueryRow(ctx, query, arg).
		Scan(
			&senderModel.ID,
			&senderModel.UserProfileID,
			&senderModel.UserID,
			&senderModel.TotalPackages,
			&senderModel.Rating,
			&senderModel.ReviewCount,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrProfileNotFound
		}
		return nil, fmt.Errorf("unexpected profile repository get sender error: %w", err)
	}

	return SenderToDomain(&senderModel), nil
}
