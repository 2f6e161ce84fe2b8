package cart

import (
	"time"

	"teetime-exchange/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrCartNotFound = errs.NotFound("cart not found")

// Cart is the priced snapshot stored at checkout, keyed by payment id.
type Cart struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	CourseID  uuid.UUID
	PaymentID string
	PromoCode *string
	Items     []Item
	CreatedAt time.Time
}

func (c *Cart) FirstHand() (*FirstHandItem, bool) {
	for _, it := range c.Items {
		if fh, ok := it.(*FirstHandItem); ok {
			return fh, true
		}
	}
	return nil, false
}

func (c *Cart) Sensible() (*SensibleItem, bool) {
	for _, it := range c.Items {
		if s, ok := it.(*SensibleItem); ok {
			return s, true
		}
	}
	return nil, false
}

func (c *Cart) HasType(t ItemType) bool {
	for _, it := range c.Items {
		if it.Type() == t {
			return true
		}
	}
	return false
}

// Primary returns the first purchase line of the cart.
func (c *Cart) Primary() (Item, bool) {
	for _, it := range c.Items {
		if it.Type().IsPrimary() {
			return it, true
		}
	}
	return nil, false
}

// InDispatchOrder returns the items with primary and charity/merchandise lines
// first and the informational lines (sensible, taxes, fees, markup) after,
// preserving cart order within each group.
func (c *Cart) InDispatchOrder() []Item {
	first := make([]Item, 0, len(c.Items))
	var later []Item
	for _, it := range c.Items {
		if isInformational(it.Type()) {
			later = append(later, it)
			continue
		}
		first = append(first, it)
	}
	return append(first, later...)
}

func isInformational(t ItemType) bool {
	switch t {
	case ItemSensible, ItemTaxes, ItemConvenienceFee, ItemMarkup, ItemCartFee, ItemAdvancedBooking:
		return true
	}
	return false
}
