package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/hajime-ito/catalog-extractor/constants"
)

// RecordFields holds every product attribute the extractors can produce.
// All fields are optional; nil means "no plausible value found in the text".
type RecordFields struct {
	ProductName   *string `json:"product_name,omitempty"`
	SKU           *string `json:"sku,omitempty"`
	ProductCode   *string `json:"product_code,omitempty"`
	JANCode       *string `json:"jan_code,omitempty"`
	CharacterName *string `json:"character_name,omitempty"`
	Brand         *string `json:"brand,omitempty"`
	Manufacturer  *string `json:"manufacturer,omitempty"`
	SupplierName  *string `json:"supplier_name,omitempty"`
	IPName        *string `json:"ip_name,omitempty"`

	Price               *float64 `json:"price,omitempty"`
	ReferenceSalesPrice *float64 `json:"reference_sales_price,omitempty"`
	WholesalePrice      *float64 `json:"wholesale_price,omitempty"`
	OrderAmount         *float64 `json:"order_amount,omitempty"`
	Stock               *int     `json:"stock,omitempty"`
	WholesaleQuantity   *int     `json:"wholesale_quantity,omitempty"`

	ReleaseDate             *string `json:"release_date,omitempty"`
	ReservationReleaseDate  *string `json:"reservation_release_date,omitempty"`
	ReservationDeadline     *string `json:"reservation_deadline,omitempty"`
	ReservationShippingDate *string `json:"reservation_shipping_date,omitempty"`

	Dimensions        *string `json:"dimensions,omitempty"`
	SingleProductSize *string `json:"single_product_size,omitempty"`
	PackageSize       *string `json:"package_size,omitempty"`
	InnerBoxSize      *string `json:"inner_box_size,omitempty"`
	CartonSize        *string `json:"carton_size,omitempty"`
	Weight            *string `json:"weight,omitempty"`
	PackageType       *string `json:"package_type,omitempty"`
	ProtectiveFilm    *string `json:"protective_film,omitempty"`

	QuantityPerPack  *string `json:"quantity_per_pack,omitempty"`
	CasePackQuantity *int    `json:"case_pack_quantity,omitempty"`
	InnerBoxGTIN     *string `json:"inner_box_gtin,omitempty"`
	OuterBoxGTIN     *string `json:"outer_box_gtin,omitempty"`

	Category       *string `json:"category,omitempty"`
	MajorCategory  *string `json:"major_category,omitempty"`
	MinorCategory  *string `json:"minor_category,omitempty"`
	GenreName      *string `json:"genre_name,omitempty"`
	Classification *string `json:"classification,omitempty"`
	InStore        *string `json:"in_store,omitempty"`
	LotNumber      *string `json:"lot_number,omitempty"`

	Color           *string `json:"color,omitempty"`
	Material        *string `json:"material,omitempty"`
	Origin          *string `json:"origin,omitempty"`
	CountryOfOrigin *string `json:"country_of_origin,omitempty"`
	TargetAge       *string `json:"target_age,omitempty"`
	Warranty        *string `json:"warranty,omitempty"`
	Description     *string `json:"description,omitempty"`

	ImageURLs []string `json:"image_urls,omitempty"`
}

// ExtractedRecord is one structured product extracted from one section of a
// source document.
type ExtractedRecord struct {
	ID              uuid.UUID
	OwnerID         uuid.UUID
	ConversionJobID *uuid.UUID
	SourceFileID    uuid.UUID

	Fields RecordFields

	RawText     string
	SectionText string

	ConfidenceScore float32
	Status          constants.RecordStatus
	NeedsReview     bool
	IsValidated     bool

	IsMultiProduct      bool
	TotalProductsInFile int
	ProductIndex        int // 1-based position within the source file

	ErrorMessage *string

	CreatedAt time.Time
	UpdatedAt time.Time
}
