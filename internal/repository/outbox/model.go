package outbox

import "time"

type EventDB struct {
	ID          int64
	EventID     string
	Topic       string
	Key         string
	Payload     []byte
	CreatedAt   time.Time
	PublishedAt *time.Time
}
