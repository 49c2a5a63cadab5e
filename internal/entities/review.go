package entities

import "time"

type Review struct {
	ID         int64
	ReviewerID int64
	ReviewedID int64
	PackageID  int64
	Rating     int
	Comment    string
	Type       ReviewType
	CreatedAt  time.Time
}

type ReviewType string

const (
	ReviewOfCarrier ReviewType = "CARRIER"
	ReviewOfSender  ReviewType = "SENDER"
)

func (t ReviewType) String() string {
	return string(t)
}

type ReviewModify struct {
	PackageID  *int64
	ReviewerID *int64
	ReviewedID *int64
	Rating     *int
	Comment    *string
	Type       *ReviewType
}
