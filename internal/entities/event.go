package entities

import "time"

const TopicPackageStatusChanged = "package.status.changed"

// OutboxEvent - событие, записанное в одной транзакции с изменением и отправляемое в kafka позже.
type OutboxEvent struct {
	ID          int64
	EventID     string
	Topic       string
	Key         string
	Payload     []byte
	CreatedAt   time.Time
	PublishedAt *time.Time
}

// PackageStatusChangedEvent - payload события package.status.changed.
type PackageStatusChangedEvent struct {
	EventID        string    `json:"event_id"`
	PackageID      int64     `json:"package_id"`
	JourneyID      int64     `json:"journey_id"`
	TrackingNumber string    `json:"tracking_number"`
	Status         string    `json:"status"`
	ChangedAt      time.Time `json:"changed_at"`
}
