package entities

import "github.com/shopspring/decimal"

type ProfileType string

const (
	ProfileCarrier ProfileType = "CARRIER"
	ProfileSender  ProfileType = "SENDER"
)

func (t ProfileType) String() string {
	return string(t)
}

// UserProfile связывает пользователя внешнего каталога (UserID) с ролью на площадке.
type UserProfile struct {
	ID     int64
	UserID int64
	Type   ProfileType
	Phone  string
}

type CarrierProfile struct {
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

type SenderProfile struct {
	ID            int64
	UserProfileID int64
	UserID        int64
	TotalPackages int64
	Rating        decimal.Decimal
	ReviewCount   int64
}
