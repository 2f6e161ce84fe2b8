//go:build unit || e2e

package builder

import (
	"teetime-exchange/internal/domain/teetime"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type TeeTimeBuilder struct {
	TeeTime teetime.TeeTime
}

func NewTeeTimeBuilder() *TeeTimeBuilder {
	return &TeeTimeBuilder{TeeTime: teetime.TeeTime{
		ID:                       uuid.New(),
		CourseID:                 uuid.New(),
		ProviderTeeTimeID:        "tt-1001",
		ProviderDate:             "2030-06-01T08:30",
		Time:                     830,
		NumberOfHoles:            18,
		MaxPlayers:               4,
		GreenFee:                 5000,
		CartFee:                  1500,
		AvailableFirstHandSpots:  4,
		AvailableSecondHandSpots: 0,
		Rates: teetime.TaxRates{
			GreenFee:    decimal.NewFromInt(1000),
			CartFee:     decimal.NewFromInt(500),
			Weather:     decimal.NewFromInt(500),
			Markup:      decimal.NewFromInt(1000),
			Merchandise: decimal.NewFromInt(750),
		},
	}}
}

func (b *TeeTimeBuilder) With(mutate func(*teetime.TeeTime)) *TeeTimeBuilder {
	mutate(&b.TeeTime)
	return b
}

func (b *TeeTimeBuilder) Build() teetime.TeeTime {
	tt := b.TeeTime
	if d, err := teetime.ParseProviderDate(tt.ProviderDate); err == nil {
		tt.Date = d
	}
	return tt
}
