package outbox

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"shipping/internal/entities"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, event entities.OutboxEvent) error {
	query := `INSERT INTO outbox_events (event_id, topic, event_key, payload)
		VALUES ($1, $2, $3, $4)`

	_, err := r.querier.Exec(ctx, query, event.EventID, event.Topic, event.Key, event.Payload)
	if err != nil {
		return fmt.Errorf("unexpected outbox repository create error: %w", err)
	}
	return nil
}

// GetUnpublished блокирует выбранные строки до конца транзакции,
// параллельные релеи пропускают их и берут следующие.
func (r *Repository) GetUnpublished(ctx context.Context, limit uint64) ([]entities.OutboxEvent, error) {
	query, args, err := qb.
		Select("id", "event_id", "topic", "event_key", "payload", "created_at", "published_at").
		From("outbox_events").
		Where(sq.Eq{"published_at": nil}).
		OrderBy("id").
		Limit(limit).
		Suffix("FOR UPDATE SKIP LOCKED").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected outbox repository get unpublished error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected outbox repository get unpublished error: %w", err)
	}
	defer rows.Close()

	eventModels := make([]EventDB, 0, limit)
	for rows.Next() {
		var eventModel EventDB
		err := rows.Scan(
			&eventModel.ID,
			&eventModel.EventID,
			&eventModel.Topic,
			&eventModel.Key,
			&eventModel.Payload,
			&eventModel.CreatedAt,
			&eventModel.PublishedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected outbox repository get unpublished error: %w", err)
		}
		eventModels = append(eventModels, eventModel)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected outbox repository get unpublished error: %w", err)
	}

	return ToDomainList(eventModels), nil
}

func (r *Repository) MarkPublished(ctx context.Context, ids []int64) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	query, args, err := qb.
		Update("outbox_events").
		Set("published_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": ids}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("unexpected outbox repository mark published error: %w", err)
	}

	tag, err := r.querier.Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("unexpected outbox repository mark published error: %w", err)
	}
	return tag.RowsAffected(), nil
}
