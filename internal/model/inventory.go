package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// MeasurementType is a named garment measurement (chest, waist, length).
type MeasurementType struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// VariantMeasurement is one measured value of a product variant.
type VariantMeasurement struct {
	MeasurementTypeID string          `json:"measurementTypeId"`
	Value             decimal.Decimal `json:"value"`
}

// ProductPhoto is a stored photo of a product variant.
type ProductPhoto struct {
	ID               string    `json:"id"`
	ProductVariantID string    `json:"productVariantId"`
	PhotoURL         string    `json:"photoUrl"`
	AltText          string    `json:"altText"`
	DisplayOrder     int       `json:"displayOrder"`
	UploadedAt       time.Time `json:"uploadedAt"`
}

// CategoryListResponse lists all product categories.
type CategoryListResponse struct {
	Categories    []Category `json:"categories"`
	ResultsAmount int        `json:"resultsAmount"`
}

// ColorListResponse lists all garment colors.
type ColorListResponse struct {
	Colors        []Color `json:"colors"`
	ResultsAmount int     `json:"resultsAmount"`
}

// SizeListResponse lists all garment sizes.
type SizeListResponse struct {
	Sizes         []Size `json:"sizes"`
	ResultsAmount int    `json:"resultsAmount"`
}

// MeasurementTypeListResponse lists all measurement types.
type MeasurementTypeListResponse struct {
	MeasurementTypes []MeasurementType `json:"measurementTypes"`
	ResultsAmount    int               `json:"resultsAmount"`
}

// ProductListResponse lists products with the total match count.
type ProductListResponse struct {
	Products      []Product `json:"products"`
	ResultsAmount int       `json:"resultsAmount"`
}

// PhotoListResponse lists the photos of one product variant.
type PhotoListResponse struct {
	Photos        []ProductPhoto `json:"photos"`
	ResultsAmount int            `json:"resultsAmount"`
}

// VariantListRequest filters the variant listing. All fields are optional;
// the zero value lists everything.
type VariantListRequest struct {
	ProductName string
	CategoryID  string
	Status      *ProductStatus
}

// AddColor creates a new garment color.
type AddColor struct {
	Name string `json:"name"`
}

// UpdateColor renames an existing color.
type UpdateColor struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// AddSize creates a new garment size.
type AddSize struct {
	Name string `json:"name"`
}

// AddProduct creates a product with its four price columns.
type AddProduct struct {
	Name           string          `json:"name"`
	Article        string          `json:"article"`
	CategoryID     string          `json:"categoryId"`
	CostPrice      decimal.Decimal `json:"costPrice"`
	WholesalePrice decimal.Decimal `json:"wholesalePrice"`
	DropPrice      decimal.Decimal `json:"dropPrice"`
	Price          decimal.Decimal `json:"price"`
}

// UpdateProduct replaces the mutable fields of a product.
type UpdateProduct struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Article        string          `json:"article"`
	CategoryID     string          `json:"categoryId"`
	CostPrice      decimal.Decimal `json:"costPrice"`
	WholesalePrice decimal.Decimal `json:"wholesalePrice"`
	DropPrice      decimal.Decimal `json:"dropPrice"`
	Price          decimal.Decimal `json:"price"`
}

// AddProductVariant creates a concrete color/size combination of a product.
type AddProductVariant struct {
	ProductID       string               `json:"productId"`
	SizeID          string               `json:"sizeId"`
	ColorID         string               `json:"colorId"`
	Status          ProductStatus        `json:"status"`
	QuantityInStock int                  `json:"quantityInStock"`
	IsDrop          bool                 `json:"isDrop"`
	Article         string               `json:"article"`
	Measurements    []VariantMeasurement `json:"measurements"`
}

// UpdateProductVariant replaces the mutable fields of a variant.
type UpdateProductVariant struct {
	ID              string               `json:"id"`
	SizeID          string               `json:"sizeId"`
	ColorID         string               `json:"colorId"`
	Status          ProductStatus        `json:"status"`
	QuantityInStock int                  `json:"quantityInStock"`
	IsDrop          bool                 `json:"isDrop"`
	Article         string               `json:"article"`
	Measurements    []VariantMeasurement `json:"measurements"`
}

// AddProductPhoto attaches a photo to a product variant.
type AddProductPhoto struct {
	ProductVariantID string `json:"productVariantId"`
	PhotoURL         string `json:"photoUrl"`
	AltText          string `json:"altText"`
	DisplayOrder     int    `json:"displayOrder"`
}
