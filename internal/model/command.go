package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// AddOrderItem is one line of a create-order command.
type AddOrderItem struct {
	VariantID         string `json:"productVariantId"`
	IsCustomTailoring bool   `json:"isCustomTailoring"`
	Comment           string `json:"comment"`
	Quantity          int    `json:"quantity"`
}

// UpdateOrderItem is one line of an update-order command. The id is empty for
// lines added during the edit.
type UpdateOrderItem struct {
	ID                string `json:"id,omitempty"`
	VariantID         string `json:"productVariantId"`
	IsCustomTailoring bool   `json:"isCustomTailoring"`
	Comment           string `json:"comment"`
	Quantity          int    `json:"quantity"`
}

// AddOrderAddressInfo is the address payload of a create-order command.
type AddOrderAddressInfo struct {
	Note   string `json:"recipientAddressNote"`
	City   string `json:"recipientCity"`
	Street string `json:"recipientAddressName"`
	House  string `json:"recipientHouse"`
	Flat   string `json:"recipientFlat"`
}

// UpdateOrderAddressInfo carries the persisted address record id so the
// upstream updates the existing sub-record instead of duplicating it.
type UpdateOrderAddressInfo struct {
	ID string `json:"id,omitempty"`
	AddOrderAddressInfo
}

// AddOrderRecipient is the recipient payload of an order command.
type AddOrderRecipient struct {
	InstagramHandle string        `json:"instUrl"`
	Contact         ContactPerson `json:"npContactPerson"`
}

// AddOrder is the create-order command sent to the upstream order service.
// Exactly one of RecipientWarehouseID/RecipientCity or AddressInfo is set,
// determined by DeliveryType; the unused branch is always nil.
type AddOrder struct {
	SenderWarehouseID    string           `json:"senderNpWarehouseId"`
	RecipientWarehouseID *string          `json:"recipientNpWarehouseId,omitempty"`
	PayerType            PayerType        `json:"payerType"`
	PaymentMethod        PaymentMethod    `json:"paymentMethod"`
	SaleType             SaleType         `json:"saleType"`
	SendUntilDate        time.Time        `json:"sendUntilDate"`
	Weight               int              `json:"weight"`
	DeliveryType         DeliveryType     `json:"deliveryType"`
	SeatsAmount          int              `json:"seatsAmount"`
	Description          string           `json:"description"`
	Cost                 decimal.Decimal  `json:"cost"`
	Afterpayment         *decimal.Decimal `json:"afterpaymentOnGoodsCost,omitempty"`

	Items []AddOrderItem `json:"orderItems"`
	Seats []ShipmentSeat `json:"orderSeats"`

	SenderCity    City                 `json:"senderCity"`
	RecipientCity *City                `json:"recipientCity,omitempty"`
	SenderContact ContactPerson        `json:"senderContactPerson"`
	Recipient     AddOrderRecipient    `json:"orderRecipient"`
	AddressInfo   *AddOrderAddressInfo `json:"addressInfo,omitempty"`
}

// UpdateOrder is the update-order command. Sale type is the order's original,
// immutable value.
type UpdateOrder struct {
	ID                   string           `json:"id"`
	SenderWarehouseID    string           `json:"senderNpWarehouseId"`
	RecipientWarehouseID *string          `json:"recipientNpWarehouseId,omitempty"`
	PayerType            PayerType        `json:"payerType"`
	PaymentMethod        PaymentMethod    `json:"paymentMethod"`
	SaleType             SaleType         `json:"saleType"`
	SendUntilDate        time.Time        `json:"sendUntilDate"`
	Weight               int              `json:"weight"`
	DeliveryType         DeliveryType     `json:"deliveryType"`
	SeatsAmount          int              `json:"seatsAmount"`
	Description          string           `json:"description"`
	Cost                 decimal.Decimal  `json:"cost"`
	Afterpayment         *decimal.Decimal `json:"afterpaymentOnGoodsCost,omitempty"`

	Items []UpdateOrderItem `json:"orderItems"`
	Seats []ShipmentSeat    `json:"orderSeats"`

	SenderCity    City                    `json:"senderCity"`
	RecipientCity *City                   `json:"recipientCity,omitempty"`
	SenderContact ContactPerson           `json:"senderContactPerson"`
	Recipient     AddOrderRecipient       `json:"orderRecipient"`
	AddressInfo   *UpdateOrderAddressInfo `json:"addressInfo,omitempty"`
}

// OrderCreationResult reports the two independent outcomes of a create:
// whether the order record persisted and whether the carrier shipping
// document was created. A failed document is not a failed order.
type OrderCreationResult struct {
	OrderID            string `json:"orderId"`
	OrderSaved         bool   `json:"orderSaved"`
	ShippingDocCreated bool   `json:"shippingDocCreated"`
	ShippingDocError   string `json:"shippingDocError,omitempty"`
}

// OrderUpdateResult is the update-path counterpart of OrderCreationResult.
type OrderUpdateResult struct {
	OrderID            string `json:"orderId"`
	OrderSaved         bool   `json:"orderSaved"`
	ShippingDocUpdated bool   `json:"shippingDocUpdated"`
	ShippingDocError   string `json:"shippingDocError,omitempty"`
}
