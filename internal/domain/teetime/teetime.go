package teetime

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TaxRates are percentages, e.g. 8.25 for 8.25%.
type TaxRates struct {
	GreenFee    decimal.Decimal
	CartFee     decimal.Decimal
	Weather     decimal.Decimal
	Markup      decimal.Decimal
	Merchandise decimal.Decimal
}

func (r TaxRates) Equal(o TaxRates) bool {
	return r.GreenFee.Equal(o.GreenFee) &&
		r.CartFee.Equal(o.CartFee) &&
		r.Weather.Equal(o.Weather) &&
		r.Markup.Equal(o.Markup) &&
		r.Merchandise.Equal(o.Merchandise)
}

// TeeTime is a bookable slot at a course, mirrored from the provider tee sheet.
type TeeTime struct {
	ID                       uuid.UUID
	CourseID                 uuid.UUID
	ProviderTeeTimeID        string
	ProviderDate             string
	Date                     time.Time
	Time                     int // HHMM in course local time
	NumberOfHoles            int
	MaxPlayers               int
	GreenFee                 int64 // cents per player
	CartFee                  int64 // cents per player
	Rates                    TaxRates
	AvailableFirstHandSpots  int
	AvailableSecondHandSpots int
	SoldByProvider           int
}

func (t TeeTime) HasFirstHandSpots(players int) bool {
	return players > 0 && t.AvailableFirstHandSpots >= players
}

// ParsedProviderDate parses the provider's local date-time string.
func (t TeeTime) ParsedProviderDate() (time.Time, error) {
	return ParseProviderDate(t.ProviderDate)
}

var providerDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
}

func ParseProviderDate(s string) (time.Time, error) {
	var lastErr error
	for _, layout := range providerDateLayouts {
		parsed, err := time.Parse(layout, s)
		if err == nil {
			return parsed, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

// SameTrackedFields reports whether an indexed row already matches upstream.
func (t TeeTime) SameTrackedFields(o TeeTime) bool {
	return t.ProviderDate == o.ProviderDate &&
		t.Time == o.Time &&
		t.NumberOfHoles == o.NumberOfHoles &&
		t.MaxPlayers == o.MaxPlayers &&
		t.GreenFee == o.GreenFee &&
		t.CartFee == o.CartFee &&
		t.AvailableFirstHandSpots == o.AvailableFirstHandSpots &&
		t.SoldByProvider == o.SoldByProvider &&
		t.Rates.Equal(o.Rates)
}
