package model

// DeliveryType selects which recipient address sub-model an order uses.
type DeliveryType int

const (
	DeliveryWarehouseOrPost DeliveryType = iota
	DeliveryAddress
)

// Valid reports whether the value is a known delivery type.
func (d DeliveryType) Valid() bool {
	return d == DeliveryWarehouseOrPost || d == DeliveryAddress
}

// SaleType is the pricing basis of an order. It is immutable after creation.
type SaleType int

const (
	SaleRetail SaleType = iota
	SaleDrop
	SaleWholesale
)

// Valid reports whether the value is a known sale type.
func (s SaleType) Valid() bool {
	return s == SaleRetail || s == SaleDrop || s == SaleWholesale
}

// PayerType identifies who pays for carrier delivery.
type PayerType int

const (
	PayerSender PayerType = iota
	PayerRecipient
)

// PaymentMethod identifies how carrier delivery is paid.
type PaymentMethod int

const (
	PaymentCash PaymentMethod = iota
	PaymentNonCash
)

// ProductStatus is the lifecycle status of a product variant.
type ProductStatus int

const (
	ProductInStock ProductStatus = iota
	ProductOnOrder
	ProductDiscontinued
)

// OrderManualStatus is the operator-driven fulfilment status of an order.
type OrderManualStatus int

const (
	ManualStatusNew OrderManualStatus = iota
	ManualStatusInProgress
	ManualStatusPacked
	ManualStatusShipped
	ManualStatusCompleted
	ManualStatusCancelled
)

// OrderReadinessStatus tracks whether all line items are produced.
type OrderReadinessStatus int

const (
	ReadinessNotReady OrderReadinessStatus = iota
	ReadinessInSewing
	ReadinessReady
)

// ShippingDocStatus tracks the carrier shipping document of an order.
type ShippingDocStatus int

const (
	ShippingDocNotCreated ShippingDocStatus = iota
	ShippingDocCreated
	ShippingDocFailed
)

// OrderItemStatus is the production status of a single line item.
type OrderItemStatus int

const (
	ItemPending OrderItemStatus = iota
	ItemInProduction
	ItemReady
)

// SyncStatus is the state of a carrier directory synchronisation run.
type SyncStatus int

const (
	SyncPending SyncStatus = iota
	SyncRunning
	SyncCompleted
	SyncFailed
)

// SyncType distinguishes full from incremental carrier directory syncs.
type SyncType int

const (
	SyncFull SyncType = iota
	SyncIncremental
)
