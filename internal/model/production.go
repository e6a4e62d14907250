package model

// SewingQueueItem is one outstanding production demand: a quantity of a
// variant still to be sewn. Custom tailoring rows are tied to a single
// order line item; stock rows aggregate across orders.
type SewingQueueItem struct {
	ProductVariantID  string          `json:"productVariantId"`
	QuantityToProduce int             `json:"quantityToProduce"`
	IsCustomTailoring bool            `json:"isCustomTailoring"`
	Comment           string          `json:"comment"`
	OrderItemID       string          `json:"orderItemId,omitempty"`
	ProductVariant    *ProductVariant `json:"productVariant"`
}

// SewingQueueResponse is the current production queue.
type SewingQueueResponse struct {
	SewingQueueItems []SewingQueueItem `json:"sewingQueueItems"`
	ResultsAmount    int               `json:"resultsAmount"`
}

// SubmitSewedReport reports a quantity actually sewn against a queue row.
// OrderItemID is set only for custom tailoring rows.
type SubmitSewedReport struct {
	ProductVariantID    string `json:"productVariantId"`
	ActualSewedQuantity int    `json:"actualSewedQuantity"`
	OrderItemID         string `json:"orderItemId,omitempty"`
}
