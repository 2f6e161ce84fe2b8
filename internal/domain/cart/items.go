package cart

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type ItemType string

const (
	ItemFirstHand       ItemType = "first_hand"
	ItemSecondHand      ItemType = "second_hand"
	ItemMarkup          ItemType = "markup"
	ItemTaxes           ItemType = "taxes"
	ItemSensible        ItemType = "sensible"
	ItemCharity         ItemType = "charity"
	ItemConvenienceFee  ItemType = "convenience_fee"
	ItemMerchandise     ItemType = "merchandise"
	ItemOffer           ItemType = "offer"
	ItemAuction         ItemType = "auction"
	ItemCartFee         ItemType = "cart_fee"
	ItemAdvancedBooking ItemType = "advanced_booking_fees_per_player"
)

func (t ItemType) IsValid() bool {
	switch t {
	case ItemFirstHand, ItemSecondHand, ItemMarkup, ItemTaxes, ItemSensible, ItemCharity,
		ItemConvenienceFee, ItemMerchandise, ItemOffer, ItemAuction, ItemCartFee, ItemAdvancedBooking:
		return true
	}
	return false
}

// Primary items carry the purchase itself; the rest are bookkeeping around it.
func (t ItemType) IsPrimary() bool {
	switch t {
	case ItemFirstHand, ItemSecondHand, ItemOffer, ItemAuction:
		return true
	}
	return false
}

// Item is one priced cart line. Concrete types are enumerated below.
type Item interface {
	Type() ItemType
	PriceCents() int64
	Name() string
}

// Line holds the fields every cart line shares.
type Line struct {
	Kind  ItemType `json:"-"`
	Cents int64    `json:"-"`
	Label string   `json:"-"`
}

func (l Line) Type() ItemType    { return l.Kind }
func (l Line) PriceCents() int64 { return l.Cents }
func (l Line) Name() string      { return l.Label }

type FirstHandItem struct {
	Line
	TeeTimeID        uuid.UUID `json:"tee_time_id"`
	NumberOfBookings int       `json:"number_of_bookings"`
	// GroupSplits holds the player count of each sub-booking for group reservations.
	GroupSplits []int `json:"group_splits,omitempty"`
}

type SecondHandItem struct {
	Line
	ListingID uuid.UUID `json:"listing_id"`
	TeeTimeID uuid.UUID `json:"tee_time_id"`
	Slots     int       `json:"slots"`
}

type OfferItem struct {
	Line
	BookingIDs []uuid.UUID `json:"booking_ids"`
	ExpiresAt  time.Time   `json:"expires_at"`
}

type AuctionItem struct {
	Line
	AuctionID uuid.UUID `json:"auction_id"`
	TeeTimeID uuid.UUID `json:"tee_time_id"`
}

type CharityItem struct {
	Line
	CharityID uuid.UUID `json:"charity_id"`
}

type SensibleItem struct {
	Line
	QuoteID string `json:"sensible_quote_id"`
}

type MerchandiseLine struct {
	ProductID    string `json:"product_id"`
	Quantity     int    `json:"qty"`
	PricePerItem int64  `json:"price_per_item"`
	// TaxOverride is the flat tax in cents for this line; nil means the course rate applies.
	TaxOverride *int64 `json:"tax_override,omitempty"`
}

func (m MerchandiseLine) TotalCents() int64 {
	return int64(m.Quantity) * m.PricePerItem
}

type MerchandiseItem struct {
	Line
	Lines []MerchandiseLine `json:"merchandise"`
}

// FeeItem covers markup, taxes, convenience, cart and advanced booking fees.
type FeeItem struct {
	Line
}

// LineItem is the stored JSON shape of a cart line.
type LineItem struct {
	Name     string          `json:"name"`
	Price    int64           `json:"price"`
	Type     ItemType        `json:"type"`
	Metadata json.RawMessage `json:"metadata,omitempty"`
}

func DecodeLineItems(raw []byte) ([]Item, error) {
	var lines []LineItem
	if err := json.Unmarshal(raw, &lines); err != nil {
		return nil, fmt.Errorf("decode cart line items: %w", err)
	}
	items := make([]Item, 0, len(lines))
	for i, li := range lines {
		it, err := li.Decode()
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i, err)
		}
		items = append(items, it)
	}
	return items, nil
}

func (li LineItem) Decode() (Item, error) {
	base := Line{Kind: li.Type, Cents: li.Price, Label: li.Name}
	switch li.Type {
	case ItemFirstHand:
		it := &FirstHandItem{Line: base}
		return it, li.unmarshalMetadata(it)
	case ItemSecondHand:
		it := &SecondHandItem{Line: base}
		return it, li.unmarshalMetadata(it)
	case ItemOffer:
		it := &OfferItem{Line: base}
		return it, li.unmarshalMetadata(it)
	case ItemAuction:
		it := &AuctionItem{Line: base}
		return it, li.unmarshalMetadata(it)
	case ItemCharity:
		it := &CharityItem{Line: base}
		return it, li.unmarshalMetadata(it)
	case ItemSensible:
		it := &SensibleItem{Line: base}
		return it, li.unmarshalMetadata(it)
	case ItemMerchandise:
		it := &MerchandiseItem{Line: base}
		return it, li.unmarshalMetadata(it)
	case ItemMarkup, ItemTaxes, ItemConvenienceFee, ItemCartFee, ItemAdvancedBooking:
		return &FeeItem{Line: base}, nil
	default:
		return nil, fmt.Errorf("unknown cart item type %q", li.Type)
	}
}

func (li LineItem) unmarshalMetadata(target any) error {
	if len(li.Metadata) == 0 {
		return nil
	}
	if err := json.Unmarshal(li.Metadata, target); err != nil {
		return fmt.Errorf("decode %s metadata: %w", li.Type, err)
	}
	return nil
}

// EncodeLineItems is the inverse of DecodeLineItems.
func EncodeLineItems(items []Item) ([]byte, error) {
	lines := make([]LineItem, 0, len(items))
	for _, it := range items {
		li := LineItem{Name: it.Name(), Price: it.PriceCents(), Type: it.Type()}
		if _, isFee := it.(*FeeItem); !isFee {
			meta, err := json.Marshal(it)
			if err != nil {
				return nil, err
			}
			li.Metadata = meta
		}
		lines = append(lines, li)
	}
	return json.Marshal(lines)
}
