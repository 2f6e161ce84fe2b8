//go:build unit

package teetime_test

import (
	"testing"

	"teetime-exchange/internal/domain/teetime"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTeeTime(providerID string, spots int) teetime.TeeTime {
	return teetime.TeeTime{
		ID:                      uuid.New(),
		ProviderTeeTimeID:       providerID,
		ProviderDate:            "2026-11-02T08:10:00",
		Time:                    810,
		NumberOfHoles:           18,
		MaxPlayers:              4,
		GreenFee:                12500,
		CartFee:                 550,
		Rates:                   teetime.TaxRates{GreenFee: decimal.RequireFromString("8.25")},
		AvailableFirstHandSpots: spots,
	}
}

func TestDiff(t *testing.T) {
	fixedID := uuid.MustParse("6b1f6a3e-0d55-4b1e-9a5a-1f0d0c1b2a3c")
	newID := func() uuid.UUID { return fixedID }

	t.Run("upstream only rows are inserted with a fresh id", func(t *testing.T) {
		up := newTeeTime("p-1", 4)
		res := teetime.Diff(nil, []teetime.TeeTime{up}, newID)

		require.Len(t, res.Insert, 1)
		assert.Equal(t, fixedID, res.Insert[0].ID)
		assert.Empty(t, res.Update)
		assert.Empty(t, res.MarkUnavailable)
	})

	t.Run("unchanged rows produce no writes", func(t *testing.T) {
		cur := newTeeTime("p-1", 4)
		up := cur
		up.ID = uuid.Nil

		res := teetime.Diff([]teetime.TeeTime{cur}, []teetime.TeeTime{up}, newID)
		assert.True(t, res.IsEmpty())
	})

	t.Run("changed rows keep internal id and second hand spots", func(t *testing.T) {
		cur := newTeeTime("p-1", 4)
		cur.AvailableSecondHandSpots = 2
		up := newTeeTime("p-1", 3)

		res := teetime.Diff([]teetime.TeeTime{cur}, []teetime.TeeTime{up}, newID)
		require.Len(t, res.Update, 1)

		want := up
		want.ID = cur.ID
		want.AvailableSecondHandSpots = 2
		if diff := cmp.Diff(want, res.Update[0]); diff != "" {
			t.Errorf("updated tee time mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("tax rate change counts as a change", func(t *testing.T) {
		cur := newTeeTime("p-1", 4)
		up := cur
		up.Rates.GreenFee = decimal.RequireFromString("9")

		res := teetime.Diff([]teetime.TeeTime{cur}, []teetime.TeeTime{up}, newID)
		assert.Len(t, res.Update, 1)
	})

	t.Run("rows missing upstream are marked unavailable only when still available", func(t *testing.T) {
		available := newTeeTime("gone-1", 2)
		soldOut := newTeeTime("gone-2", 0)

		res := teetime.Diff([]teetime.TeeTime{available, soldOut}, nil, newID)
		assert.Equal(t, []uuid.UUID{available.ID}, res.MarkUnavailable)
	})

	t.Run("duplicate upstream ids are inserted once", func(t *testing.T) {
		up := newTeeTime("p-1", 4)
		res := teetime.Diff(nil, []teetime.TeeTime{up, up}, newID)
		assert.Len(t, res.Insert, 1)
	})
}

func TestParseProviderDate(t *testing.T) {
	for _, s := range []string{"2026-11-02T08:10:00-07:00", "2026-11-02T08:10:00", "2026-11-02T08:10", "2026-11-02 08:10"} {
		_, err := teetime.ParseProviderDate(s)
		assert.NoError(t, err, s)
	}
	_, err := teetime.ParseProviderDate("next tuesday")
	assert.Error(t, err)
}
