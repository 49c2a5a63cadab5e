package outbox

import "shipping/internal/entities"

func ToDomain(e *EventDB) *entities.OutboxEvent {
	if e == nil {
		return nil
	}

	return &entities.OutboxEvent{
		ID:          e.ID,
		EventID:     e.EventID,
		Topic:       e.Topic,
		Key:         e.Key,
		Payload:     e.Payload,
		CreatedAt:   e.CreatedAt,
		PublishedAt: e.PublishedAt,
	}
}

func ToDomainList(eventsDB []EventDB) []entities.OutboxEvent {
	if len(eventsDB) == 0 {
		return []entities.OutboxEvent{}
	}

	result := make([]entities.OutboxEvent, len(eventsDB))
	for i, eventDB := range eventsDB {
		result[i] = *ToDomain(&eventDB)
	}
	return result
}
