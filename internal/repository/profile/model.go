package profile

import "github.com/shopspring/decimal"

type UserProfileDB struct {
	ID     int64
	UserID int64
	Type   string
	Phone  string
}

type CarrierProfileDB struct {
	ID                   int64
	UserProfileID        int64
	UserID               int64
	CompanyName          string
	BusinessRegistration string
	Rating               decimal.Decimal
	ReviewCount          int64
	Verified             bool
	TotalDeliveries      int64
}

type SenderProfileDB struct {
	ID            int64
	UserProfileID int64
	UserID        int64
	TotalPackages int64
	Rating        decimal.Decimal
	ReviewCount   int64
}
