package review

import "time"

type ReviewDB struct {
	ID         int64
	ReviewerID int64
	ReviewedID int64
	PackageID  int64
	Rating     int
	Comment    string
	Type       string
	CreatedAt  time.Time
}
