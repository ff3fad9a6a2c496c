package tole

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrNotFound          = errors.New("tole not found")
	ErrExpiryNotInFuture = errors.New("expiry date must be later than now")
)

// AllowApp is the operator switch for a tole's mobile app access.
type AllowApp string

const (
	AllowAppYes AllowApp = "Y"
	AllowAppNo  AllowApp = "N"
)

func (a AllowApp) Toggled() AllowApp {
	if a == AllowAppYes {
		return AllowAppNo
	}
	return AllowAppYes
}

// Location is the province > district > municipality triple a tole belongs to.
type Location struct {
	ProvinceID     string
	DistrictID     string
	MunicipalityID string
}

// Tole is a registered community. ID is chosen by the operator on create and
// never changes afterwards.
type Tole struct {
	ID          string
	Name        string
	Address     string
	Location    Location
	WardNo      int
	Contact     string
	Email       string
	Logo        string
	About       string
	Website     string
	Facebook    string
	RegDate     time.Time
	Latitude    decimal.Decimal
	Longitude   decimal.Decimal
	AllowApp    AllowApp
	ExpiryDate  time.Time
	CreatedDate time.Time
}

// NewDefaults is the state of the create form: registered today, app access
// allowed, expiring one year from today.
func NewDefaults(now time.Time) Tole {
	today := Day(now)
	return Tole{
		RegDate:    today,
		AllowApp:   AllowAppYes,
		ExpiryDate: today.AddDate(1, 0, 0),
	}
}

// Day truncates t to midnight UTC of its calendar date, the way the backend stores dates.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
