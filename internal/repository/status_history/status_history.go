package status_history

import (
	"context"
	"fmt"

	"shipping/internal/entities"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// Create возвращает false, если запись с таким event_id уже есть.
func (r *Repository) Create(ctx context.Context, record entities.PackageStatusRecord) (bool, error) {
	query := `INSERT INTO package_status_history (event_id, package_id, tracking_number, status, changed_at, recorded_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (event_id) DO NOTHING`

	tag, err := r.querier.Exec(
		ctx,
		query,
		record.EventID,
		record.PackageID,
		record.TrackingNumber,
		record.Status.String(),
		record.ChangedAt,
		record.RecordedAt,
	)
	if err != nil {
		return false, fmt.Errorf("unexpected status history repository create error: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

func (r *Repository) GetByPackageID(ctx context.Context, packageID int64) ([]entities.PackageStatusRecord, error) {
	query := `SELECT event_id, package_id, tracking_number, status, changed_at, recorded_at
		FROM package_status_history
		WHERE package_id = $1
		ORDER BY changed_at, id`

	rows, err := r.querier.Query(ctx, query, packageID)
	if err != nil {
		return nil, fmt.Errorf("unexpected status history repository get error: %w", err)
	}
	defer rows.Close()

	recordModels := make([]RecordDB, 0, 8)
	for rows.Next() {
		var recordModel RecordDB
		err := rows.Scan(
			&recordModel.EventID,
			&recordModel.PackageID,
			&recordModel.TrackingNumber,
			&recordModel.Status,
			&recordModel.ChangedAt,
			&recordModel.RecordedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected status history repository get error: %w", err)
		}
		recordModels = append(recordModels, recordModel)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected status history repository get error: %w", err)
	}

	return ToDomainList(recordModels), nil
}
