package journey

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"shipping/internal/entities"
	"shipping/internal/repository"
	"shipping/internal/service/journey"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const journeyColumns = `id, carrier_id, vehicle_id, departure_city, arrival_city, departure_date,
	collection_date, collection_address, price_per_kg, available_capacity, status, created_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// Create сохраняет маршрут вместе с остановками, вызывать внутри транзакции.
func (r *Repository) Create(ctx context.Context, journeyModifyEntity entities.JourneyModify) (*entities.Journey, error) {
	journeyModifyModel := FromDomainModify(&journeyModifyEntity)
	query := `INSERT INTO journeys (carrier_id, vehicle_id, departure_city, arrival_city, departure_date,
			collection_date, collection_address, price_per_kg, available_capacity, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING ` + journeyColumns

	journeyModel, err := scanJourney(r.querier.QueryRow(
		ctx,
		query,
		journeyModifyModel.CarrierID,
		journeyModifyModel.VehicleID,
		journeyModifyModel.DepartureCity,
		journeyModifyModel.ArrivalCity,
		journeyModifyModel.DepartureDate,
		journeyModifyModel.CollectionDate,
		journeyModifyModel.CollectionAddress,
		journeyModifyModel.PricePerKg,
		journeyModifyModel.AvailableCapacity,
		journeyModifyModel.Status,
	))
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return nil, fmt.Errorf("journey references missing carrier or vehicle: %w", entities.ErrNotFound)
		}
		return nil, fmt.Errorf("unexpected journey repository create error: %w", err)
	}

	stopPoints, err := r.insertStopPoints(ctx, journeyModel.ID, journeyModifyEntity.StopPoints)
	if err != nil {
		return nil, err
	}

	return ToDomain(journeyModel, stopPoints), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Journey, error) {
	query := `SELECT ` + journeyColumns + `
		FROM journeys
		WHERE id = $1`

	journeyModel, err := scanJourney(r.querier.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, journey.ErrJourneyNotFound
		}
		return nil, fmt.Errorf("unexpected journey repository getbyid error: %w", err)
	}

	stopPoints, err := r.getStopPoints(ctx, id)
	if err != nil {
		return nil, err
	}

	return ToDomain(journeyModel, stopPoints), nil
}

func (r *Repository) UpdateStatus(ctx context.Context, id int64, status entities.JourneyStatus) (*entities.Journey, error) {
	query, args, err := qb.
		Update("journeys").
		Set("status", status.String()).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + journeyColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected journey repository update status error: %w", err)
	}

	journeyModel, err := scanJourney(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, journey.ErrJourneyNotFound
		}
		return nil, fmt.Errorf("unexpected journey repository update status error: %w", err)
	}

	stopPoints, err := r.getStopPoints(ctx, id)
	if err != nil {
		return nil, err
	}

	return ToDomain(journeyModel, stopPoints), nil
}

func (r *Repository) insertStopPoints(ctx context.Context, journeyID int64, stopPoints []entities.StopPoint) ([]StopPointDB, error) {
	if len(stopPoints) == 0 {
		return nil, nil
	}

	builder := qb.
		Insert("stop_points").
		Columns("journey_id", "city", "address", "collection_date", "available_capacity")
	for _, stopPoint := range stopPoints {
		builder = builder.Values(journeyID, stopPoint.City, stopPoint.Address, stopPoint.CollectionDate, stopPoint.AvailableCapacity)
	}
	builder = builder.Suffix("RETURNING id, journey_id, city, address, collection_date, available_capacity")

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected journey repository insert stop points error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected journey repository insert stop points error: %w", err)
	}
	defer rows.Close()

	return collectStopPoints(rows, len(stopPoints))
}

func (r *Repository) getStopPoints(ctx context.Context, journeyID int64) ([]StopPointDB, error) {
	query := `SELECT id, journey_id, city, address, collection_date, available_capacity
		FROM stop_points
		WHERE journey_id = $1
		ORDER BY collection_date, id`

	rows, err := r.querier.Query(ctx, query, journeyID)
	if err != nil {
		return nil, fmt.Errorf("unexpected journey repository get stop points error: %w", err)
	}
	defer rows.Close()

	return collectStopPoints(rows, 4)
}

func collectStopPoints(rows pgx.Rows, capacity int) ([]StopPointDB, error) {
	stopPointModels := make([]StopPointDB, 0, capacity)
	for rows.Next() {
		var stopPointModel StopPointDB
		err := rows.Scan(
			&stopPointModel.ID,
			&stopPointModel.JourneyID,
			&stopPointModel.City,
			&stopPointModel.Address,
			&stopPointModel.CollectionDate,
			&stopPointModel.AvailableCapacity,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected journey repository scan stop point error: %w", err)
		}
		stopPointModels = append(stopPointModels, stopPointModel)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected journey repository scan stop point error: %w", err)
	}
	return stopPointModels, nil
}

func scanJourney(row pgx.Row) (*JourneyDB, error) {
	var journeyModel JourneyDB
	err := row.Scan(
		&journeyModel.ID,
		&journeyModel.CarrierID,
		&journeyModel.VehicleID,
		&journeyModel.DepartureCity,
		&journeyModel.ArrivalCity,
		&journeyModel.DepartureDate,
		&journeyModel.CollectionDate,
		&journeyModel.CollectionAddress,
		&journeyModel.PricePerKg,
		&journeyModel.AvailableCapacity,
		&journeyModel.Status,
		&journeyModel.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &journeyModel, nil
}
