package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// AddressInfo is the door-to-door delivery address of an order. Present only
// for address-based delivery.
type AddressInfo struct {
	ID     string `json:"id,omitempty"`
	Note   string `json:"recipientAddressNote"`
	City   string `json:"recipientCity"`
	Street string `json:"recipientAddressName"`
	House  string `json:"recipientHouse"`
	Flat   string `json:"recipientFlat"`
}

// OrderRecipient identifies who receives the parcel.
type OrderRecipient struct {
	ID              string        `json:"id,omitempty"`
	InstagramHandle string        `json:"instUrl"`
	Contact         ContactPerson `json:"npContactPerson"`
}

// OrderItem is one line of an order with its variant snapshot.
type OrderItem struct {
	ID                string          `json:"id,omitempty"`
	OrderID           string          `json:"orderId,omitempty"`
	VariantID         string          `json:"productVariantId"`
	Variant           *ProductVariant `json:"productVariant,omitempty"`
	IsCustomTailoring bool            `json:"isCustomTailoring"`
	Comment           string          `json:"comment"`
	Quantity          int             `json:"quantity"`
	Status            OrderItemStatus `json:"orderItemStatus"`
	QuantityToProduce int             `json:"quantityToProduce"`
}

// ShipmentSeat is one physical parcel: its weight preset and the volumetric
// dimensions the carrier rates against.
type ShipmentSeat struct {
	Weight int `json:"weight"`
	Length int `json:"volumetricLength"`
	Width  int `json:"volumetricWidth"`
	Height int `json:"volumetricHeight"`
}

// Order is the persisted order aggregate as returned by the upstream API.
type Order struct {
	ID                   string               `json:"id"`
	SenderWarehouseID    string               `json:"senderWarehouseId"`
	RecipientWarehouseID string               `json:"recipientWarehouseId,omitempty"`
	PayerType            PayerType            `json:"payerType"`
	PaymentMethod        PaymentMethod        `json:"paymentMethod"`
	SaleType             SaleType             `json:"saleType"`
	CreatedAt            time.Time            `json:"creationDateTime"`
	SendUntilDate        time.Time            `json:"sendUntilDate"`
	Weight               int                  `json:"weight"`
	DeliveryType         DeliveryType         `json:"deliveryType"`
	SeatsAmount          int                  `json:"seatsAmount"`
	Description          string               `json:"description"`
	Cost                 decimal.Decimal      `json:"cost"`
	Afterpayment         *decimal.Decimal     `json:"afterpaymentOnGoodsCost,omitempty"`
	ReadinessStatus      OrderReadinessStatus `json:"orderReadinessStatus"`
	ShippingDocStatus    ShippingDocStatus    `json:"orderInternetDocStatus"`
	ManualStatus         OrderManualStatus    `json:"orderManualStatus"`
	DocAttempted         bool                 `json:"internetDocumentCreationAttempted"`
	DocRef               string               `json:"internetDocumentRef"`
	DocNumber            string               `json:"internetDocumentIntDocNumber"`

	Items []OrderItem    `json:"orderItems"`
	Seats []ShipmentSeat `json:"orderSeats"`

	SenderCity         City           `json:"senderCity"`
	RecipientCity      *City          `json:"recipientCity,omitempty"`
	RecipientWarehouse *Warehouse     `json:"recipientWarehouse,omitempty"`
	SenderContact      ContactPerson  `json:"senderContactPerson"`
	Recipient          OrderRecipient `json:"orderRecipient"`
	AddressInfo        *AddressInfo   `json:"addressInfo,omitempty"`
}

// OrderListRequest filters and pages the order listing.
type OrderListRequest struct {
	Search string
	Limit  int
	Offset int
}

// OrderListResponse is one page of orders plus the total match count.
type OrderListResponse struct {
	Orders        []Order `json:"orders"`
	ResultsAmount int     `json:"resultsAmount"`
}

// SetManualOrderStatus moves an order to a new operator-driven status.
type SetManualOrderStatus struct {
	OrderID string            `json:"orderId"`
	Status  OrderManualStatus `json:"orderManualStatus"`
}
