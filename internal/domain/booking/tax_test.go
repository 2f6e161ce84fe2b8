//go:build unit

package booking_test

import (
	"testing"

	"teetime-exchange/internal/domain/booking"
	"teetime-exchange/internal/domain/cart"
	"teetime-exchange/internal/domain/money"
	"teetime-exchange/internal/domain/teetime"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func scenarioCart() *cart.Cart {
	overrideTax := int64(165)
	return &cart.Cart{
		ID:        uuid.New(),
		PaymentID: "pay_123",
		Items: []cart.Item{
			&cart.FirstHandItem{Line: cart.Line{Kind: cart.ItemFirstHand, Cents: 25000}, TeeTimeID: uuid.New(), NumberOfBookings: 2},
			&cart.FeeItem{Line: cart.Line{Kind: cart.ItemMarkup, Cents: 1000}},
			&cart.SensibleItem{Line: cart.Line{Kind: cart.ItemSensible, Cents: 1575}, QuoteID: "quote-1"},
			&cart.FeeItem{Line: cart.Line{Kind: cart.ItemCartFee, Cents: 550}},
			&cart.MerchandiseItem{
				Line: cart.Line{Kind: cart.ItemMerchandise, Cents: 3025},
				Lines: []cart.MerchandiseLine{
					{ProductID: "balls", Quantity: 1, PricePerItem: 1025},
					{ProductID: "hat", Quantity: 1, PricePerItem: 2000, TaxOverride: &overrideTax},
				},
			},
			&cart.FeeItem{Line: cart.Line{Kind: cart.ItemAdvancedBooking, Cents: 5}},
		},
	}
}

var scenarioRates = teetime.TaxRates{
	GreenFee:    d("8.25"),
	CartFee:     d("8.25"),
	Weather:     d("5"),
	Markup:      d("8.25"),
	Merchandise: d("8.25"),
}

func TestComputeTaxes(t *testing.T) {
	t.Run("two player scenario with every add-on", func(t *testing.T) {
		ch, err := cart.Normalize(scenarioCart())
		require.NoError(t, err)

		tb := booking.ComputeTaxes(booking.TaxInput{
			GreenFeePerPlayer: money.FromCents(12500),
			Players:           2,
			Charges:           ch,
			Rates:             scenarioRates,
		})

		// (125 + 0.05) * 0.0825 * 2
		assert.True(t, d("20.63325").Equal(tb.GreenFeeTax), tb.GreenFeeTax.String())
		// 10 * 0.0825 * 2
		assert.True(t, d("1.65").Equal(tb.MarkupTax), tb.MarkupTax.String())
		// 15.75 * 0.05
		assert.True(t, d("0.7875").Equal(tb.WeatherTax), tb.WeatherTax.String())
		// 5.50 / 100 * 0.0825 * 2
		assert.True(t, d("0.009075").Equal(tb.CartFeeTax), tb.CartFeeTax.String())
		// 10.25 * 0.0825 + 1.65
		assert.True(t, d("2.495625").Equal(tb.MerchandiseTax), tb.MerchandiseTax.String())

		assert.Equal(t, "25.58", tb.AdditionalTaxes.StringFixed(2))
		assert.True(t, money.CeilCent(tb.Sum()).Equal(tb.AdditionalTaxes))
	})

	t.Run("additional taxes are always whole cents", func(t *testing.T) {
		for players := 1; players <= 4; players++ {
			for _, pct := range []string{"0", "1.5", "7.125", "8.25", "13.333"} {
				rates := teetime.TaxRates{GreenFee: d(pct), CartFee: d(pct), Weather: d(pct), Markup: d(pct), Merchandise: d(pct)}
				ch, err := cart.Normalize(scenarioCart())
				require.NoError(t, err)

				tb := booking.ComputeTaxes(booking.TaxInput{
					GreenFeePerPlayer: d("97.13"),
					Players:           players,
					Charges:           ch,
					Rates:             rates,
				})

				cents := tb.AdditionalTaxes.Mul(decimal.NewFromInt(100))
				assert.True(t, cents.Equal(cents.Truncate(0)), "players=%d pct=%s got %s", players, pct, tb.AdditionalTaxes)
				assert.True(t, tb.AdditionalTaxes.GreaterThanOrEqual(tb.Sum()))
			}
		}
	})

	t.Run("zero input yields zero taxes", func(t *testing.T) {
		ch, err := cart.Normalize(&cart.Cart{Items: []cart.Item{
			&cart.FirstHandItem{Line: cart.Line{Kind: cart.ItemFirstHand}, NumberOfBookings: 1},
		}})
		require.NoError(t, err)

		tb := booking.ComputeTaxes(booking.TaxInput{Players: 1, Charges: ch})
		assert.True(t, tb.AdditionalTaxes.IsZero())
		assert.Equal(t, "$0.00", money.FormatUSD(tb.AdditionalTaxes))
	})
}
