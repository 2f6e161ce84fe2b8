package cart

import (
	"teetime-exchange/internal/domain/money"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Charges is the typed aggregate of a cart; every amount is in currency units.
type Charges struct {
	PlayerCount                      int
	PrimaryGreenFeeCharge            decimal.Decimal
	MarkupCharge                     decimal.Decimal
	SensibleCharge                   decimal.Decimal
	CartFeeCharge                    decimal.Decimal
	MerchandiseCharge                decimal.Decimal
	MerchandiseWithTaxOverrideCharge decimal.Decimal
	MerchandiseOverriddenTaxAmount   decimal.Decimal
	AdvancedBookingAmount            decimal.Decimal
	TaxCharge                        decimal.Decimal
	ConvenienceCharge                decimal.Decimal
	CharityCharge                    decimal.Decimal
	CharityID                        *uuid.UUID
	WeatherQuoteID                   string
	// Total is every line except markup, which is already inside the green fee.
	Total decimal.Decimal
	// Taxes is taxCharge + sensibleCharge + charityCharge + convenienceCharge.
	Taxes decimal.Decimal
}

func (c Charges) TotalCents() int64 {
	return money.ToCents(c.Total)
}

// Normalize reduces a cart to its Charges. A nil cart or one without a
// purchase line yields ErrCartNotFound.
func Normalize(c *Cart) (Charges, error) {
	if c == nil {
		return Charges{}, ErrCartNotFound
	}
	if _, ok := c.Primary(); !ok {
		return Charges{}, ErrCartNotFound
	}

	var (
		ch    Charges
		cents = map[ItemType]int64{}
		total int64
	)
	var merchPlain, merchOverridden, overriddenTax int64

	for _, it := range c.Items {
		cents[it.Type()] += it.PriceCents()
		if it.Type() != ItemMarkup {
			total += it.PriceCents()
		}

		switch v := it.(type) {
		case *FirstHandItem:
			ch.PlayerCount += v.NumberOfBookings
		case *SecondHandItem:
			ch.PlayerCount += v.Slots
		case *CharityItem:
			id := v.CharityID
			ch.CharityID = &id
		case *SensibleItem:
			ch.WeatherQuoteID = v.QuoteID
		case *MerchandiseItem:
			if len(v.Lines) == 0 {
				merchPlain += v.PriceCents()
				continue
			}
			for _, ml := range v.Lines {
				if ml.TaxOverride != nil {
					merchOverridden += ml.TotalCents()
					overriddenTax += *ml.TaxOverride
					continue
				}
				merchPlain += ml.TotalCents()
			}
		}
	}

	ch.PrimaryGreenFeeCharge = money.FromCents(cents[ItemFirstHand] + cents[ItemSecondHand])
	ch.MarkupCharge = money.FromCents(cents[ItemMarkup])
	ch.SensibleCharge = money.FromCents(cents[ItemSensible])
	ch.CartFeeCharge = money.FromCents(cents[ItemCartFee])
	ch.MerchandiseCharge = money.FromCents(merchPlain)
	ch.MerchandiseWithTaxOverrideCharge = money.FromCents(merchOverridden)
	ch.MerchandiseOverriddenTaxAmount = money.FromCents(overriddenTax)
	ch.AdvancedBookingAmount = money.FromCents(cents[ItemAdvancedBooking])
	ch.TaxCharge = money.FromCents(cents[ItemTaxes])
	ch.ConvenienceCharge = money.FromCents(cents[ItemConvenienceFee])
	ch.CharityCharge = money.FromCents(cents[ItemCharity])
	ch.Total = money.FromCents(total)
	ch.Taxes = ch.TaxCharge.Add(ch.SensibleCharge).Add(ch.CharityCharge).Add(ch.ConvenienceCharge)

	return ch, nil
}
