package vehicle

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"shipping/internal/entities"
	"shipping/internal/repository"
	"shipping/internal/service/vehicle"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, vehicleModifyEntity entities.VehicleModify) (*entities.Vehicle, error) {
	vehicleModifyModel := FromDomainModify(&vehicleModifyEntity)
	query := `INSERT INTO vehicles (carrier_id, license_plate, type, brand, capacity, active)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, carrier_id, license_plate, type, brand, capacity, active`

	var vehicleModel VehicleDB
	err := r.querier.QueryRow(
		ctx,
		query,
		vehicleModifyModel.CarrierID,
		vehicleModifyModel.LicensePlate,
		vehicleModifyModel.Type,
		vehicleModifyModel.Brand,
		vehicleModifyModel.Capacity,
		vehicleModifyModel.Active,
	).Scan(
		&vehicleModel.ID,
		&vehicleModel.CarrierID,
		&vehicleModel.LicensePlate,
		&vehicleModel.Type,
		&vehicleModel.Brand,
		&vehicleModel.Capacity,
		&vehicleModel.Active,
	)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, vehicle.ErrConflict
		}
		return nil, fmt.Errorf("unexpected vehicle repository create error: %w", err)
	}

	return ToDomain(&vehicleModel), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Vehicle, error) {
	query := `SELECT id, carrier_id, license_plate, type, brand, capacity, active
		FROM vehicles
		WHERE id = $1`

	var vehicleModel VehicleDB
	err := r.querier.QueryRow(ctx, query, id).
		Scan(
			&vehicleModel.ID,
			&vehicleModel.CarrierID,
			&vehicleModel.LicensePlate,
			&vehicleModel.Type,
			&vehicleModel.Brand,
			&vehicleModel.Capacity,
			&vehicleModel.Active,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, vehicle.ErrVehicleNotFound
		}
		return nil, fmt.Errorf("unexpected vehicle repository getbyid error: %w", err)
	}

	return ToDomain(&vehicleModel), nil
}
