package orderform

import (
	"time"

	"github.com/shopspring/decimal"

	"atelier-desk/internal/model"
)

// DefaultDescription is the business default stamped on every new order.
const DefaultDescription = "Одяг"

// Recipient holds the editable recipient identity fields.
type Recipient struct {
	LastName        string `json:"lastName"`
	FirstName       string `json:"firstName"`
	MiddleName      string `json:"middleName"`
	Phone           string `json:"phone"`
	InstagramHandle string `json:"instUrl"`
}

// AddressFields is the door-delivery address sub-model. Active only while
// delivery type is address-based.
type AddressFields struct {
	Note   string `json:"note"`
	City   string `json:"city"`
	Street string `json:"street"`
	House  string `json:"house"`
	Flat   string `json:"flat"`
}

// WarehouseSelection is the carrier-warehouse sub-model. A field is concrete
// only when it was picked from a lookup suggestion, never free text.
type WarehouseSelection struct {
	City      *model.City      `json:"city,omitempty"`
	Warehouse *model.Warehouse `json:"warehouse,omitempty"`
}

// LineItem is one draft order line. Duplicate variants are permitted; each
// line carries its own comment and tailoring flag.
type LineItem struct {
	ItemID            string                `json:"itemId,omitempty"`
	VariantID         string                `json:"productVariantId"`
	Variant           *model.ProductVariant `json:"productVariant,omitempty"`
	IsCustomTailoring bool                  `json:"isCustomTailoring"`
	Comment           string                `json:"comment"`
	Quantity          int                   `json:"quantity"`
}

// Seat is the draft shipment seat: weight preset plus volumetric dimensions.
type Seat struct {
	Weight int `json:"weight"`
	Length int `json:"length"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Draft is the in-memory, unsaved state of an order being created or edited.
// It is owned exclusively by one Form and mutated only through Form events.
type Draft struct {
	DeliveryType model.DeliveryType `json:"deliveryType"`
	Recipient    Recipient          `json:"recipient"`
	Address      AddressFields      `json:"addressInfo"`
	Warehouse    WarehouseSelection `json:"warehouseSelection"`
	Items        []LineItem         `json:"items"`
	SaleType     model.SaleType     `json:"saleType"`
	Cost         decimal.Decimal    `json:"cost"`
	IsPrepayment bool               `json:"isPrepayment"`
	Afterpayment *decimal.Decimal   `json:"afterpaymentOnGoodsCost,omitempty"`
	Seat         Seat               `json:"seat"`
	SeatsAmount  int                `json:"seatsAmount"`
	SendUntil    time.Time          `json:"sendUntilDate"`
	Description  string             `json:"description"`
}

// clone returns a copy safe to read outside the form lock. Line items are
// copied; variant snapshots are shared since they are never mutated.
func (d *Draft) clone() Draft {
	out := *d
	out.Items = make([]LineItem, len(d.Items))
	copy(out.Items, d.Items)
	if d.Afterpayment != nil {
		v := *d.Afterpayment
		out.Afterpayment = &v
	}
	return out
}
