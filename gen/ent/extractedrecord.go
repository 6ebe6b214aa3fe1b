// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/hajime-ito/catalog-extractor/gen/ent/conversionjob"
	"github.com/hajime-ito/catalog-extractor/gen/ent/extractedrecord"
	"github.com/hajime-ito/catalog-extractor/gen/ent/uploadfile"
)

// ExtractedRecord is the model entity for the ExtractedRecord schema.
type ExtractedRecord struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// OwnerID holds the value of the "owner_id" field.
	OwnerID uuid.UUID `json:"owner_id,omitempty"`
	// ConversionJobID holds the value of the "conversion_job_id" field.
	ConversionJobID *uuid.UUID `json:"conversion_job_id,omitempty"`
	// SourceFileID holds the value of the "source_file_id" field.
	SourceFileID uuid.UUID `json:"source_file_id,omitempty"`
	// ProductName holds the value of the "product_name" field.
	ProductName *string `json:"product_name,omitempty"`
	// Sku holds the value of the "sku" field.
	Sku *string `json:"sku,omitempty"`
	// ProductCode holds the value of the "product_code" field.
	ProductCode *string `json:"product_code,omitempty"`
	// JanCode holds the value of the "jan_code" field.
	JanCode *string `json:"jan_code,omitempty"`
	// CharacterName holds the value of the "character_name" field.
	CharacterName *string `json:"character_name,omitempty"`
	// Brand holds the value of the "brand" field.
	Brand *string `json:"brand,omitempty"`
	// Manufacturer holds the value of the "manufacturer" field.
	Manufacturer *string `json:"manufacturer,omitempty"`
	// SupplierName holds the value of the "supplier_name" field.
	SupplierName *string `json:"supplier_name,omitempty"`
	// IPName holds the value of the "ip_name" field.
	IPName *string `json:"ip_name,omitempty"`
	// Price holds the value of the "price" field.
	Price *float64 `json:"price,omitempty"`
	// ReferenceSalesPrice holds the value of the "reference_sales_price" field.
	ReferenceSalesPrice *float64 `json:"reference_sales_price,omitempty"`
	// WholesalePrice holds the value of the "wholesale_price" field.
	WholesalePrice *float64 `json:"wholesale_price,omitempty"`
	// OrderAmount holds the value of the "order_amount" field.
	OrderAmount *float64 `json:"order_amount,omitempty"`
	// Stock holds the value of the "stock" field.
	Stock *int `json:"stock,omitempty"`
	// WholesaleQuantity holds the value of the "wholesale_quantity" field.
	WholesaleQuantity *int `json:"wholesale_quantity,omitempty"`
	// ReleaseDate holds the value of the "release_date" field.
	ReleaseDate *string `json:"release_date,omitempty"`
	// ReservationReleaseDate holds the value of the "reservation_release_date" field.
	ReservationReleaseDate *string `json:"reservation_release_date,omitempty"`
	// ReservationDeadline holds the value of the "reservation_deadline" field.
	ReservationDeadline *string `json:"reservation_deadline,omitempty"`
	// ReservationShippingDate holds the value of the "reservation_shipping_date" field.
	ReservationShippingDate *string `json:"reservation_shipping_date,omitempty"`
	// Dimensions holds the value of the "dimensions" field.
	Dimensions *string `json:"dimensions,omitempty"`
	// SingleProductSize holds the value of the "single_product_size" field.
	SingleProductSize *string `json:"single_product_size,omitempty"`
	// PackageSize holds the value of the "package_size" field.
	PackageSize *string `json:"package_size,omitempty"`
	// InnerBoxSize holds the value of the "inner_box_size" field.
	InnerBoxSize *string `json:"inner_box_size,omitempty"`
	// CartonSize holds the value of the "carton_size" field.
	CartonSize *string `json:"carton_size,omitempty"`
	// Weight holds the value of the "weight" field.
	Weight *string `json:"weight,omitempty"`
	// PackageType holds the value of the "package_type" field.
	PackageType *string `json:"package_type,omitempty"`
	// ProtectiveFilm holds the value of the "protective_film" field.
	ProtectiveFilm *string `json:"protective_film,omitempty"`
	// QuantityPerPack holds the value of the "quantity_per_pack" field.
	QuantityPerPack *string `json:"quantity_per_pack,omitempty"`
	// CasePackQuantity holds the value of the "case_pack_quantity" field.
	CasePackQuantity *int `json:"case_pack_quantity,omitempty"`
	// InnerBoxGtin holds the value of the "inner_box_gtin" field.
	InnerBoxGtin *string `json:"inner_box_gtin,omitempty"`
	// OuterBoxGtin holds the value of the "outer_box_gtin" field.
	OuterBoxGtin *string `json:"outer_box_gtin,omitempty"`
	// Category holds the value of the "category" field.
	Category *string `json:"category,omitempty"`
	// MajorCategory holds the value of the "major_category" field.
	MajorCategory *string `json:"major_category,omitempty"`
	// MinorCategory holds the value of the "minor_category" field.
	MinorCategory *string `json:"minor_category,omitempty"`
	// GenreName holds the value of the "genre_name" field.
	GenreName *string `json:"genre_name,omitempty"`
	// Classification holds the value of the "classification" field.
	Classification *string `json:"classification,omitempty"`
	// InStore holds the value of the "in_store" field.
	InStore *string `json:"in_store,omitempty"`
	// LotNumber holds the value of the "lot_number" field.
	LotNumber *string `json:"lot_number,omitempty"`
	// Color holds the value of the "color" field.
	Color *string `json:"color,omitempty"`
	// Material holds the value of the "material" field.
	Material *string `json:"material,omitempty"`
	// Origin holds the value of the "origin" field.
	Origin *string `json:"origin,omitempty"`
	// CountryOfOrigin holds the value of the "country_of_origin" field.
	CountryOfOrigin *string `json:"country_of_origin,omitempty"`
	// TargetAge holds the value of the "target_age" field.
	TargetAge *string `json:"target_age,omitempty"`
	// Warranty holds the value of the "warranty" field.
	Warranty *string `json:"warranty,omitempty"`
	// Description holds the value of the "description" field.
	Description *string `json:"description,omitempty"`
	// ImageUrls holds the value of the "image_urls" field.
	ImageUrls []string `json:"image_urls,omitempty"`
	// RawText holds the value of the "raw_text" field.
	RawText string `json:"raw_text,omitempty"`
	// SectionText holds the value of the "section_text" field.
	SectionText string `json:"section_text,omitempty"`
	// ConfidenceScore holds the value of the "confidence_score" field.
	ConfidenceScore float32 `json:"confidence_score,omitempty"`
	// Status holds the value of the "status" field.
	Status string `json:"status,omitempty"`
	// NeedsReview holds the value of the "needs_review" field.
	NeedsReview bool `json:"needs_review,omitempty"`
	// IsValidated holds the value of the "is_validated" field.
	IsValidated bool `json:"is_validated,omitempty"`
	// IsMultiProduct holds the value of the "is_multi_product" field.
	IsMultiProduct bool `json:"is_multi_product,omitempty"`
	// TotalProductsInFile holds the value of the "total_products_in_file" field.
	TotalProductsInFile int `json:"total_products_in_file,omitempty"`
	// ProductIndex holds the value of the "product_index" field.
	ProductIndex int `json:"product_index,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ExtractedRecordQuery when eager-loading is set.
	Edges        ExtractedRecordEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ExtractedRecordEdges holds the relations/edges for other nodes in the graph.
type ExtractedRecordEdges struct {
	// Job holds the value of the job edge.
	Job *ConversionJob `json:"job,omitempty"`
	// File holds the value of the file edge.
	File *UploadFile `json:"file,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// JobOrErr returns the Job value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ExtractedRecordEdges) JobOrErr() (*ConversionJob, error) {
	if e.Job != nil {
		return e.Job, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: conversionjob.Label}
	}
	return nil, &NotLoadedError{edge: "job"}
}

// FileOrErr returns the File value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ExtractedRecordEdges) FileOrErr() (*UploadFile, error) {
	if e.File != nil {
		return e.File, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: uploadfile.Label}
	}
	return nil, &NotLoadedError{edge: "file"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ExtractedRecord) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case extractedrecord.FieldConversionJobID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case extractedrecord.FieldImageUrls:
			values[i] = new([]byte)
		case extractedrecord.FieldNeedsReview, extractedrecord.FieldIsValidated, extractedrecord.FieldIsMultiProduct:
			values[i] = new(sql.NullBool)
		case extractedrecord.FieldPrice, extractedrecord.FieldReferenceSalesPrice, extractedrecord.FieldWholesalePrice, extractedrecord.FieldOrderAmount, extractedrecord.FieldConfidenceScore:
			values[i] = new(sql.NullFloat64)
		case extractedrecord.FieldStock, extractedrecord.FieldWholesaleQuantity, extractedrecord.FieldCasePackQuantity, extractedrecord.FieldTotalProductsInFile, extractedrecord.FieldProductIndex:
			values[i] = new(sql.NullInt64)
		case extractedrecord.FieldProductName, extractedrecord.FieldSku, extractedrecord.FieldProductCode, extractedrecord.FieldJanCode, extractedrecord.FieldCharacterName, extractedrecord.FieldBrand, extractedrecord.FieldManufacturer, extractedrecord.FieldSupplierName, extractedrecord.FieldIPName, extractedrecord.FieldReleaseDate, extractedrecord.FieldReservationReleaseDate, extractedrecord.FieldReservationDeadline, extractedrecord.FieldReservationShippingDate, extractedrecord.FieldDimensions, extractedrecord.FieldSingleProductSize, extractedrecord.FieldPackageSize, extractedrecord.FieldInnerBoxSize, extractedrecord.FieldCartonSize, extractedrecord.FieldWeight, extractedrecord.FieldPackageType, extractedrecord.FieldProtectiveFilm, extractedrecord.FieldQuantityPerPack, extractedrecord.FieldInnerBoxGtin, extractedrecord.FieldOuterBoxGtin, extractedrecord.FieldCategory, extractedrecord.FieldMajorCategory, extractedrecord.FieldMinorCategory, extractedrecord.FieldGenreName, extractedrecord.FieldClassification, extractedrecord.FieldInStore, extractedrecord.FieldLotNumber, extractedrecord.FieldColor, extractedrecord.FieldMaterial, extractedrecord.FieldOrigin, extractedrecord.FieldCountryOfOrigin, extractedrecord.FieldTargetAge, extractedrecord.FieldWarranty, extractedrecord.FieldDescription, extractedrecord.FieldRawText, extractedrecord.FieldSectionText, extractedrecord.FieldStatus, extractedrecord.FieldErrorMessage:
			values[i] = new(sql.NullString)
		case extractedrecord.FieldCreatedAt, extractedrecord.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case extractedrecord.FieldID, extractedrecord.FieldOwnerID, extractedrecord.FieldSourceFileID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ExtractedRecord fields.
func (er *ExtractedRecord) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case extractedrecord.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				er.ID = *value
			}
		case extractedrecord.FieldOwnerID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field owner_id", values[i])
			} else if value != nil {
				er.OwnerID = *value
			}
		case extractedrecord.FieldConversionJobID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field conversion_job_id", values[i])
			} else if value.Valid {
				er.ConversionJobID = new(uuid.UUID)
				*er.ConversionJobID = *value.S.(*uuid.UUID)
			}
		case extractedrecord.FieldSourceFileID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field source_file_id", values[i])
			} else if value != nil {
				er.SourceFileID = *value
			}
		case extractedrecord.FieldProductName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field product_name", values[i])
			} else if value.Valid {
				er.ProductName = new(string)
				*er.ProductName = value.String
			}
		case extractedrecord.FieldSku:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field sku", values[i])
			} else if value.Valid {
				er.Sku = new(string)
				*er.Sku = value.String
			}
		case extractedrecord.FieldProductCode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field product_code", values[i])
			} else if value.Valid {
				er.ProductCode = new(string)
				*er.ProductCode = value.String
			}
		case extractedrecord.FieldJanCode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field jan_code", values[i])
			} else if value.Valid {
				er.JanCode = new(string)
				*er.JanCode = value.String
			}
		case extractedrecord.FieldCharacterName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field character_name", values[i])
			} else if value.Valid {
				er.CharacterName = new(string)
				*er.CharacterName = value.String
			}
		case extractedrecord.FieldBrand:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field brand", values[i])
			} else if value.Valid {
				er.Brand = new(string)
				*er.Brand = value.String
			}
		case extractedrecord.FieldManufacturer:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field manufacturer", values[i])
			} else if value.Valid {
				er.Manufacturer = new(string)
				*er.Manufacturer = value.String
			}
		case extractedrecord.FieldSupplierName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field supplier_name", values[i])
			} else if value.Valid {
				er.SupplierName = new(string)
				*er.SupplierName = value.String
			}
		case extractedrecord.FieldIPName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field ip_name", values[i])
			} else if value.Valid {
				er.IPName = new(string)
				*er.IPName = value.String
			}
		case extractedrecord.FieldPrice:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field price", values[i])
			} else if value.Valid {
				er.Price = new(float64)
				*er.Price = value.Float64
			}
		case extractedrecord.FieldReferenceSalesPrice:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field reference_sales_price", values[i])
			} else if value.Valid {
				er.ReferenceSalesPrice = new(float64)
				*er.ReferenceSalesPrice = value.Float64
			}
		case extractedrecord.FieldWholesalePrice:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field wholesale_price", values[i])
			} else if value.Valid {
				er.WholesalePrice = new(float64)
				*er.WholesalePrice = value.Float64
			}
		case extractedrecord.FieldOrderAmount:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field order_amount", values[i])
			} else if value.Valid {
				er.OrderAmount = new(float64)
				*er.OrderAmount = value.Float64
			}
		case extractedrecord.FieldStock:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field stock", values[i])
			} else if value.Valid {
				er.Stock = new(int)
				*er.Stock = int(value.Int64)
			}
		case extractedrecord.FieldWholesaleQuantity:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field wholesale_quantity", values[i])
			} else if value.Valid {
				er.WholesaleQuantity = new(int)
				*er.WholesaleQuantity = int(value.Int64)
			}
		case extractedrecord.FieldReleaseDate:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field release_date", values[i])
			} else if value.Valid {
				er.ReleaseDate = new(string)
				*er.ReleaseDate = value.String
			}
		case extractedrecord.FieldReservationReleaseDate:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field reservation_release_date", values[i])
			} else if value.Valid {
				er.ReservationReleaseDate = new(string)
				*er.ReservationReleaseDate = value.String
			}
		case extractedrecord.FieldReservationDeadline:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field reservation_deadline", values[i])
			} else if value.Valid {
				er.ReservationDeadline = new(string)
				*er.ReservationDeadline = value.String
			}
		case extractedrecord.FieldReservationShippingDate:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field reservation_shipping_date", values[i])
			} else if value.Valid {
				er.ReservationShippingDate = new(string)
				*er.ReservationShippingDate = value.String
			}
		case extractedrecord.FieldDimensions:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field dimensions", values[i])
			} else if value.Valid {
				er.Dimensions = new(string)
				*er.Dimensions = value.String
			}
		case extractedrecord.FieldSingleProductSize:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field single_product_size", values[i])
			} else if value.Valid {
				er.SingleProductSize = new(string)
				*er.SingleProductSize = value.String
			}
		case extractedrecord.FieldPackageSize:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field package_size", values[i])
			} else if value.Valid {
				er.PackageSize = new(string)
				*er.PackageSize = value.String
			}
		case extractedrecord.FieldInnerBoxSize:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field inner_box_size", values[i])
			} else if value.Valid {
				er.InnerBoxSize = new(string)
				*er.InnerBoxSize = value.String
			}
		case extractedrecord.FieldCartonSize:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field carton_size", values[i])
			} else if value.Valid {
				er.CartonSize = new(string)
				*er.CartonSize = value.String
			}
		case extractedrecord.FieldWeight:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field weight", values[i])
			} else if value.Valid {
				er.Weight = new(string)
				*er.Weight = value.String
			}
		case extractedrecord.FieldPackageType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field package_type", values[i])
			} else if value.Valid {
				er.PackageType = new(string)
				*er.PackageType = value.String
			}
		case extractedrecord.FieldProtectiveFilm:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field protective_film", values[i])
			} else if value.Valid {
				er.ProtectiveFilm = new(string)
				*er.ProtectiveFilm = value.String
			}
		case extractedrecord.FieldQuantityPerPack:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field quantity_per_pack", values[i])
			} else if value.Valid {
				er.QuantityPerPack = new(string)
				*er.QuantityPerPack = value.String
			}
		case extractedrecord.FieldCasePackQuantity:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field case_pack_quantity", values[i])
			} else if value.Valid {
				er.CasePackQuantity = new(int)
				*er.CasePackQuantity = int(value.Int64)
			}
		case extractedrecord.FieldInnerBoxGtin:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field inner_box_gtin", values[i])
			} else if value.Valid {
				er.InnerBoxGtin = new(string)
				*er.InnerBoxGtin = value.String
			}
		case extractedrecord.FieldOuterBoxGtin:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field outer_box_gtin", values[i])
			} else if value.Valid {
				er.OuterBoxGtin = new(string)
				*er.OuterBoxGtin = value.String
			}
		case extractedrecord.FieldCategory:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field category", values[i])
			} else if value.Valid {
				er.Category = new(string)
				*er.Category = value.String
			}
		case extractedrecord.FieldMajorCategory:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field major_category", values[i])
			} else if value.Valid {
				er.MajorCategory = new(string)
				*er.MajorCategory = value.String
			}
		case extractedrecord.FieldMinorCategory:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field minor_category", values[i])
			} else if value.Valid {
				er.MinorCategory = new(string)
				*er.MinorCategory = value.String
			}
		case extractedrecord.FieldGenreName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field genre_name", values[i])
			} else if value.Valid {
				er.GenreName = new(string)
				*er.GenreName = value.String
			}
		case extractedrecord.FieldClassification:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field classification", values[i])
			} else if value.Valid {
				er.Classification = new(string)
				*er.Classification = value.String
			}
		case extractedrecord.FieldInStore:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field in_store", values[i])
			} else if value.Valid {
				er.InStore = new(string)
				*er.InStore = value.String
			}
		case extractedrecord.FieldLotNumber:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field lot_number", values[i])
			} else if value.Valid {
				er.LotNumber = new(string)
				*er.LotNumber = value.String
			}
		case extractedrecord.FieldColor:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field color", values[i])
			} else if value.Valid {
				er.Color = new(string)
				*er.Color = value.String
			}
		case extractedrecord.FieldMaterial:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field material", values[i])
			} else if value.Valid {
				er.Material = new(string)
				*er.Material = value.String
			}
		case extractedrecord.FieldOrigin:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field origin", values[i])
			} else if value.Valid {
				er.Origin = new(string)
				*er.Origin = value.String
			}
		case extractedrecord.FieldCountryOfOrigin:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field country_of_origin", values[i])
			} else if value.Valid {
				er.CountryOfOrigin = new(string)
				*er.CountryOfOrigin = value.String
			}
		case extractedrecord.FieldTargetAge:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field target_age", values[i])
			} else if value.Valid {
				er.TargetAge = new(string)
				*er.TargetAge = value.String
			}
		case extractedrecord.FieldWarranty:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field warranty", values[i])
			} else if value.Valid {
				er.Warranty = new(string)
				*er.Warranty = value.String
			}
		case extractedrecord.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				er.Description = new(string)
				*er.Description = value.String
			}
		case extractedrecord.FieldImageUrls:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field image_urls", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &er.ImageUrls); err != nil {
					return fmt.Errorf("unmarshal field image_urls: %w", err)
				}
			}
		case extractedrecord.FieldRawText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field raw_text", values[i])
			} else if value.Valid {
				er.RawText = value.String
			}
		case extractedrecord.FieldSectionText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field section_text", values[i])
			} else if value.Valid {
				er.SectionText = value.String
			}
		case extractedrecord.FieldConfidenceScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence_score", values[i])
			} else if value.Valid {
				er.ConfidenceScore = float32(value.Float64)
			}
		case extractedrecord.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				er.Status = value.String
			}
		case extractedrecord.FieldNeedsReview:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field needs_review", values[i])
			} else if value.Valid {
				er.NeedsReview = value.Bool
			}
		case extractedrecord.FieldIsValidated:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_validated", values[i])
			} else if value.Valid {
				er.IsValidated = value.Bool
			}
		case extractedrecord.FieldIsMultiProduct:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_multi_product", values[i])
			} else if value.Valid {
				er.IsMultiProduct = value.Bool
			}
		case extractedrecord.FieldTotalProductsInFile:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_products_in_file", values[i])
			} else if value.Valid {
				er.TotalProductsInFile = int(value.Int64)
			}
		case extractedrecord.FieldProductIndex:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field product_index", values[i])
			} else if value.Valid {
				er.ProductIndex = int(value.Int64)
			}
		case extractedrecord.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				er.ErrorMessage = new(string)
				*er.ErrorMessage = value.String
			}
		case extractedrecord.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				er.CreatedAt = value.Time
			}
		case extractedrecord.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				er.UpdatedAt = value.Time
			}
		default:
			er.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ExtractedRecord.
// This includes values selected through modifiers, order, etc.
func (er *ExtractedRecord) Value(name string) (ent.Value, error) {
	return er.selectValues.Get(name)
}

// QueryJob queries the "job" edge of the ExtractedRecord entity.
func (er *ExtractedRecord) QueryJob() *ConversionJobQuery {
	return NewExtractedRecordClient(er.config).QueryJob(er)
}

// QueryFile queries the "file" edge of the ExtractedRecord entity.
func (er *ExtractedRecord) QueryFile() *UploadFileQuery {
	return NewExtractedRecordClient(er.config).QueryFile(er)
}

// Update returns a builder for updating this ExtractedRecord.
// Note that you need to call ExtractedRecord.Unwrap() before calling this method if this ExtractedRecord
// was returned from a transaction, and the transaction was committed or rolled back.
func (er *ExtractedRecord) Update() *ExtractedRecordUpdateOne {
	return NewExtractedRecordClient(er.config).UpdateOne(er)
}

// Unwrap unwraps the ExtractedRecord entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (er *ExtractedRecord) Unwrap() *ExtractedRecord {
	_tx, ok := er.config.driver.(*txDriver)
	if !ok {
		panic("ent: ExtractedRecord is not a transactional entity")
	}
	er.config.driver = _tx.drv
	return er
}

// String implements the fmt.Stringer.
func (er *ExtractedRecord) String() string {
	var builder strings.Builder
	builder.WriteString("ExtractedRecord(")
	builder.WriteString(fmt.Sprintf("id=%v, ", er.ID))
	builder.WriteString("owner_id=")
	builder.WriteString(fmt.Sprintf("%v", er.OwnerID))
	builder.WriteString(", ")
	if v := er.ConversionJobID; v != nil {
		builder.WriteString("conversion_job_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("source_file_id=")
	builder.WriteString(fmt.Sprintf("%v", er.SourceFileID))
	builder.WriteString(", ")
	if v := er.ProductName; v != nil {
		builder.WriteString("product_name=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := er.Sku; v != nil {
		builder.WriteString("sku=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := er.ProductCode; v != nil {
		builder.WriteString("product_code=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := er.JanCode; v != nil {
		builder.WriteString("jan_code=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := er.CharacterName; v != nil {
		builder.WriteString("character_name=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := er.Brand; v != nil {
		builder.WriteString("brand=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := er.Manufacturer; v != nil {
		builder.WriteString("manufacturer=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := er.SupplierName; v != nil {
		builder.WriteString("supplier_name=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := er.IPName; v != nil {
		builder.WriteString("ip_name=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := er.Price; v != nil {
		builder.WriteString("price=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := er.ReferenceSalesPrice; v != nil {
		builder.WriteString("reference_sales_price=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := er.WholesalePrice; v != nil {
		builder.WriteString("wholesale_price=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := er.OrderAmount; v != nil {
		builder.WriteString("order_amount=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := er.Stock; v != nil {
		builder.WriteString("stock=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := er.WholesaleQuantity; v != nil {
		builder.WriteString("wholesale_quantity=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := er.ReleaseDate; v != nil {
		builder.WriteString("release_date=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := er.ReservationReleaseDate; v != nil {
		builder.WriteString("reservation_release_date=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := er.ReservationDeadline; v != nil {
		builder.WriteString("reservation_deadline=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := er.ReservationShippingDate; v != nil {
		builder.WriteString("reservation_shipping_date=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := er.Dimensions; v != nil {
		builder.WriteString("dimensions=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := er.SingleProductSize; v != nil {
		builder.WriteString("single_product_size=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := er.PackageSize; v != nil {
		builder.WriteString("package_size=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := er.InnerBoxSize; v != nil {
		builder.WriteString("inner_box_size=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := er.CartonSize; v != nil {
		builder.WriteString("carton_size=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := er.Weight; v != nil {
		builder.WriteString("weight=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := er.PackageType; v != nil {
		builder.WriteString("package_type=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := er.ProtectiveFilm; v != nil {
		builder.WriteString("protective_film=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := er.QuantityPerPack; v != nil {
		builder.WriteString("quantity_per_pack=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := er.CasePackQuantity; v != nil {
		builder.WriteString("case_pack_quantity=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := er.InnerBoxGtin; v != nil {
		builder.WriteString("inner_box_gtin=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := er.OuterBoxGtin; v != nil {
		builder.WriteString("outer_box_gtin=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := er.Category; v != nil {
		builder.WriteString("category=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := er.MajorCategory; v != nil {
		builder.WriteString("major_category=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := er.MinorCategory; v != nil {
		builder.WriteString("minor_category=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := er.GenreName; v != nil {
		builder.WriteString("genre_name=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := er.Classification; v != nil {
		builder.WriteString("classification=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := er.InStore; v != nil {
		builder.WriteString("in_store=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := er.LotNumber; v != nil {
		builder.WriteString("lot_number=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := er.Color; v != nil {
		builder.WriteString("color=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := er.Material; v != nil {
		builder.WriteString("material=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := er.Origin; v != nil {
		builder.WriteString("origin=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := er.CountryOfOrigin; v != nil {
		builder.WriteString("country_of_origin=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := er.TargetAge; v != nil {
		builder.WriteString("target_age=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := er.Warranty; v != nil {
		builder.WriteString("warranty=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := er.Description; v != nil {
		builder.WriteString("description=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("image_urls=")
	builder.WriteString(fmt.Sprintf("%v", er.ImageUrls))
	builder.WriteString(", ")
	builder.WriteString("raw_text=")
	builder.WriteString(er.RawText)
	builder.WriteString(", ")
	builder.WriteString("section_text=")
	builder.WriteString(er.SectionText)
	builder.WriteString(", ")
	builder.WriteString("confidence_score=")
	builder.WriteString(fmt.Sprintf("%v", er.ConfidenceScore))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(er.Status)
	builder.WriteString(", ")
	builder.WriteString("needs_review=")
	builder.WriteString(fmt.Sprintf("%v", er.NeedsReview))
	builder.WriteString(", ")
	builder.WriteString("is_validated=")
	builder.WriteString(fmt.Sprintf("%v", er.IsValidated))
	builder.WriteString(", ")
	builder.WriteString("is_multi_product=")
	builder.WriteString(fmt.Sprintf("%v", er.IsMultiProduct))
	builder.WriteString(", ")
	builder.WriteString("total_products_in_file=")
	builder.WriteString(fmt.Sprintf("%v", er.TotalProductsInFile))
	builder.WriteString(", ")
	builder.WriteString("product_index=")
	builder.WriteString(fmt.Sprintf("%v", er.ProductIndex))
	builder.WriteString(", ")
	if v := er.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(er.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(er.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ExtractedRecords is a parsable slice of ExtractedRecord.
type ExtractedRecords []*ExtractedRecord
