package status_history

import "time"

type RecordDB struct {
	EventID        string
	PackageID      int64
	TrackingNumber string
	Status         string
	ChangedAt      time.Time
	RecordedAt     time.Time
}
