package converter

import (
	"teetime-exchange/internal/domain/teetime"
	sqlc "teetime-exchange/internal/infra/sqlc/generated"
	"teetime-exchange/internal/pkg/errs"
	"teetime-exchange/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

func TeeTimeFromRow(row sqlc.TeeTime) (teetime.TeeTime, error) {
	rates, err := RatesFromNumerics(
		row.GreenFeeTaxPercent,
		row.CartFeeTaxPercent,
		row.WeatherGuaranteeTaxPercent,
		row.MarkupTaxPercent,
		row.MerchandiseTaxPercent,
	)
	if err != nil {
		return teetime.TeeTime{}, errs.Wrapf(err, "tee time %s", row.ID)
	}
	return teetime.TeeTime{
		ID:                       row.ID,
		CourseID:                 row.CourseID,
		ProviderTeeTimeID:        row.ProviderTeeTimeID,
		ProviderDate:             row.ProviderDate,
		Date:                     pgconv.DateFromPgtype(row.Date),
		Time:                     int(row.Time),
		NumberOfHoles:            int(row.NumberOfHoles),
		MaxPlayers:               int(row.MaxPlayers),
		GreenFee:                 row.GreenFee,
		CartFee:                  row.CartFee,
		Rates:                    rates,
		AvailableFirstHandSpots:  int(row.AvailableFirstHandSpots),
		AvailableSecondHandSpots: int(row.AvailableSecondHandSpots),
		SoldByProvider:           int(row.SoldByProvider),
	}, nil
}

func TeeTimeToInsertParams(tt teetime.TeeTime) sqlc.InsertTeeTimeParams {
	return sqlc.InsertTeeTimeParams{
		ID:                         tt.ID,
		CourseID:                   tt.CourseID,
		ProviderTeeTimeID:          tt.ProviderTeeTimeID,
		ProviderDate:               tt.ProviderDate,
		Date:                       pgconv.DateToPgtype(tt.Date),
		Time:                       pgconv.IntToInt32(tt.Time),
		NumberOfHoles:              pgconv.IntToInt32(tt.NumberOfHoles),
		MaxPlayers:                 pgconv.IntToInt32(tt.MaxPlayers),
		GreenFee:                   tt.GreenFee,
		CartFee:                    tt.CartFee,
		GreenFeeTaxPercent:         pgconv.DecimalToNumeric(tt.Rates.GreenFee),
		CartFeeTaxPercent:          pgconv.DecimalToNumeric(tt.Rates.CartFee),
		WeatherGuaranteeTaxPercent: pgconv.DecimalToNumeric(tt.Rates.Weather),
		MarkupTaxPercent:           pgconv.DecimalToNumeric(tt.Rates.Markup),
		MerchandiseTaxPercent:      pgconv.DecimalToNumeric(tt.Rates.Merchandise),
		AvailableFirstHandSpots:    pgconv.IntToInt32(tt.AvailableFirstHandSpots),
		AvailableSecondHandSpots:   pgconv.IntToInt32(tt.AvailableSecondHandSpots),
		SoldByProvider:             pgconv.IntToInt32(tt.SoldByProvider),
	}
}

// TeeTimeToUpdateParams leaves second-hand availability alone; the
// marketplace owns that column.
func TeeTimeToUpdateParams(tt teetime.TeeTime) sqlc.UpdateTeeTimeFromProviderParams {
	return sqlc.UpdateTeeTimeFromProviderParams{
		ID:                         tt.ID,
		ProviderDate:               tt.ProviderDate,
		Date:                       pgconv.DateToPgtype(tt.Date),
		Time:                       pgconv.IntToInt32(tt.Time),
		NumberOfHoles:              pgconv.IntToInt32(tt.NumberOfHoles),
		MaxPlayers:                 pgconv.IntToInt32(tt.MaxPlayers),
		GreenFee:                   tt.GreenFee,
		CartFee:                    tt.CartFee,
		GreenFeeTaxPercent:         pgconv.DecimalToNumeric(tt.Rates.GreenFee),
		CartFeeTaxPercent:          pgconv.DecimalToNumeric(tt.Rates.CartFee),
		WeatherGuaranteeTaxPercent: pgconv.DecimalToNumeric(tt.Rates.Weather),
		MarkupTaxPercent:           pgconv.DecimalToNumeric(tt.Rates.Markup),
		MerchandiseTaxPercent:      pgconv.DecimalToNumeric(tt.Rates.Merchandise),
		AvailableFirstHandSpots:    pgconv.IntToInt32(tt.AvailableFirstHandSpots),
		SoldByProvider:             pgconv.IntToInt32(tt.SoldByProvider),
	}
}

func RatesFromNumerics(green, cart, weather, markup, merch pgtype.Numeric) (teetime.TaxRates, error) {
	var r teetime.TaxRates
	var err error
	if r.GreenFee, err = pgconv.DecimalFromNumeric(green); err != nil {
		return r, err
	}
	if r.CartFee, err = pgconv.DecimalFromNumeric(cart); err != nil {
		return r, err
	}
	if r.Weather, err = pgconv.DecimalFromNumeric(weather); err != nil {
		return r, err
	}
	if r.Markup, err = pgconv.DecimalFromNumeric(markup); err != nil {
		return r, err
	}
	if r.Merchandise, err = pgconv.DecimalFromNumeric(merch); err != nil {
		return r, err
	}
	return r, nil
}
