package converter

import (
	sqlc "teetime-exchange/internal/infra/sqlc/generated"
	"teetime-exchange/internal/pkg/errs"
	"teetime-exchange/internal/pkg/pgconv"
	"teetime-exchange/internal/usecase/shared"
)

func CourseFromRow(row sqlc.GetCourseByIDRow) (*shared.CourseSnapshot, error) {
	rates, err := RatesFromNumerics(
		row.GreenFeeTaxPercent,
		row.CartFeeTaxPercent,
		row.WeatherGuaranteeTaxPercent,
		row.MarkupTaxPercent,
		row.MerchandiseTaxPercent,
	)
	if err != nil {
		return nil, errs.Wrapf(err, "course %s", row.ID)
	}
	return &shared.CourseSnapshot{
		ID:                 row.ID,
		Name:               row.Name,
		ProviderID:         row.ProviderID,
		ProviderKey:        row.ProviderKey,
		ProviderCourseID:   row.ProviderCourseID,
		ProviderTeeSheetID: row.ProviderTeeSheetID,
		Timezone:           row.Timezone,
		Rates:              rates,
		MaxPlayersPerGroup: int(row.MaxPlayersPerGroup),
		LastIndexedAt:      pgconv.TimePtrFromPgtype(row.LastIndexedAt),
	}, nil
}
