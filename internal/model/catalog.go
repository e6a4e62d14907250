package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Category groups products in the catalogue.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Color is a garment color attribute.
type Color struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Size is a garment size attribute.
type Size struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Product is a sellable garment with its four price columns.
type Product struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Article        string          `json:"article"`
	CostPrice      decimal.Decimal `json:"costPrice"`
	WholesalePrice decimal.Decimal `json:"wholesalePrice"`
	DropPrice      decimal.Decimal `json:"dropPrice"`
	Price          decimal.Decimal `json:"price"`
	Category       Category        `json:"category"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

// ProductVariant is a concrete color/size combination of a product.
// The same shape is used for catalogue search results and for the
// variant snapshots carried by order line items.
type ProductVariant struct {
	ID                string        `json:"id"`
	ProductID         string        `json:"productId"`
	Status            ProductStatus `json:"status"`
	Article           string        `json:"article"`
	IsDrop            bool          `json:"isDrop"`
	QuantityInStock   int           `json:"quantityInStock"`
	AvailableQuantity int           `json:"availableQuantity"`
	Color             Color         `json:"color"`
	Size              Size          `json:"size"`
	Product           Product       `json:"product"`
	CreatedAt         time.Time     `json:"createdAt"`
	UpdatedAt         time.Time     `json:"updatedAt"`
}

// VariantSearchResponse is the catalogue answer to a variant name search.
type VariantSearchResponse struct {
	Variants      []ProductVariant `json:"productVariants"`
	ResultsAmount int              `json:"resultsAmount"`
}
