// Code generated by ent, DO NOT EDIT.

package extractedrecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/hajime-ito/catalog-extractor/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldLTE(FieldID, id))
}

// OwnerID applies equality check predicate on the "owner_id" field. It's identical to OwnerIDEQ.
func OwnerID(v uuid.UUID) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldEQ(FieldOwnerID, v))
}

// ConversionJobID applies equality check predicate on the "conversion_job_id" field. It's identical to ConversionJobIDEQ.
func ConversionJobID(v uuid.UUID) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldEQ(FieldConversionJobID, v))
}

// SourceFileID applies equality check predicate on the "source_file_id" field. It's identical to SourceFileIDEQ.
func SourceFileID(v uuid.UUID) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldEQ(FieldSourceFileID, v))
}

// ProductName applies equality check predicate on the "product_name" field. It's identical to ProductNameEQ.
func ProductName(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldEQ(FieldProductName, v))
}

// Sku applies equality check predicate on the "sku" field. It's identical to SkuEQ.
func Sku(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldEQ(FieldSku, v))
}

// ProductCode applies equality check predicate on the "product_code" field. It's identical to ProductCodeEQ.
func ProductCode(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldEQ(FieldProductCode, v))
}

// JanCode applies equality check predicate on the "jan_code" field. It's identical to JanCodeEQ.
func JanCode(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldEQ(FieldJanCode, v))
}

// CharacterName applies equality check predicate on the "character_name" field. It's identical to CharacterNameEQ.
func CharacterName(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldEQ(FieldCharacterName, v))
}

// Brand applies equality check predicate on the "brand" field. It's identical to BrandEQ.
func Brand(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldEQ(FieldBrand, v))
}

// Manufacturer applies equality check predicate on the "manufacturer" field. It's identical to ManufacturerEQ.
func Manufacturer(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldEQ(FieldManufacturer, v))
}

// SupplierName applies equality check predicate on the "supplier_name" field. It's identical to SupplierNameEQ.
func SupplierName(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldEQ(FieldSupplierName, v))
}

// IPName applies equality check predicate on the "ip_name" field. It's identical to IPNameEQ.
func IPName(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldEQ(FieldIPName, v))
}

// Price applies equality check predicate on the "price" field. It's identical to PriceEQ.
func Price(v float64) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldEQ(FieldPrice, v))
}

// ReferenceSalesPrice applies equality check predicate on the "reference_sales_price" field. It's identical to ReferenceSalesPriceEQ.
func ReferenceSalesPrice(v float64) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldEQ(FieldReferenceSalesPrice, v))
}

// WholesalePrice applies equality check predicate on the "wholesale_price" field. It's identical to WholesalePriceEQ.
func WholesalePrice(v float64) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldEQ(FieldWholesalePrice, v))
}

// OrderAmount applies equality check predicate on the "order_amount" field. It's identical to OrderAmountEQ.
func OrderAmount(v float64) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldEQ(FieldOrderAmount, v))
}

// Stock applies equality check predicate on the "stock" field. It's identical to StockEQ.
func Stock(v int) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldEQ(FieldStock, v))
}

// WholesaleQuantity applies equality check predicate on the "wholesale_quantity" field. It's identical to WholesaleQuantityEQ.
func WholesaleQuantity(v int) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldEQ(FieldWholesaleQuantity, v))
}

// ReleaseDate applies equality check predicate on the "release_date" field. It's identical to ReleaseDateEQ.
func ReleaseDate(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldEQ(FieldReleaseDate, v))
}

// ReservationReleaseDate applies equality check predicate on the "reservation_release_date" field. It's identical to ReservationReleaseDateEQ.
func ReservationReleaseDate(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldEQ(FieldReservationReleaseDate, v))
}

// ReservationDeadline applies equality check predicate on the "reservation_deadline" field. It's identical to ReservationDeadlineEQ.
func ReservationDeadline(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldEQ(FieldReservationDeadline, v))
}

// ReservationShippingDate applies equality check predicate on the "reservation_shipping_date" field. It's identical to ReservationShippingDateEQ.
func ReservationShippingDate(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldEQ(FieldReservationShippingDate, v))
}

// Dimensions applies equality check predicate on the "dimensions" field. It's identical to DimensionsEQ.
func Dimensions(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldEQ(FieldDimensions, v))
}

// SingleProductSize applies equality check predicate on the "single_product_size" field. It's identical to SingleProductSizeEQ.
func SingleProductSize(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldEQ(FieldSingleProductSize, v))
}

// PackageSize applies equality check predicate on the "package_size" field. It's identical to PackageSizeEQ.
func PackageSize(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldEQ(FieldPackageSize, v))
}

// InnerBoxSize applies equality check predicate on the "inner_box_size" field. It's identical to InnerBoxSizeEQ.
func InnerBoxSize(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldEQ(FieldInnerBoxSize, v))
}

// CartonSize applies equality check predicate on the "carton_size" field. It's identical to CartonSizeEQ.
func CartonSize(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldEQ(FieldCartonSize, v))
}

// Weight applies equality check predicate on the "weight" field. It's identical to WeightEQ.
func Weight(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldEQ(FieldWeight, v))
}

// PackageType applies equality check predicate on the "package_type" field. It's identical to PackageTypeEQ.
func PackageType(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldEQ(FieldPackageType, v))
}

// ProtectiveFilm applies equality check predicate on the "protective_film" field. It's identical to ProtectiveFilmEQ.
func ProtectiveFilm(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldEQ(FieldProtectiveFilm, v))
}

// QuantityPerPack applies equality check predicate on the "quantity_per_pack" field. It's identical to QuantityPerPackEQ.
func QuantityPerPack(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldEQ(FieldQuantityPerPack, v))
}

// CasePackQuantity applies equality check predicate on the "case_pack_quantity" field. It's identical to CasePackQuantityEQ.
func CasePackQuantity(v int) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldEQ(FieldCasePackQuantity, v))
}

// InnerBoxGtin applies equality check predicate on the "inner_box_gtin" field. It's identical to InnerBoxGtinEQ.
func InnerBoxGtin(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldEQ(FieldInnerBoxGtin, v))
}

// OuterBoxGtin applies equality check predicate on the "outer_box_gtin" field. It's identical to OuterBoxGtinEQ.
func OuterBoxGtin(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldEQ(FieldOuterBoxGtin, v))
}

// Category applies equality check predicate on the "category" field. It's identical to CategoryEQ.
func Category(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldEQ(FieldCategory, v))
}

// MajorCategory applies equality check predicate on the "major_category" field. It's identical to MajorCategoryEQ.
func MajorCategory(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldEQ(FieldMajorCategory, v))
}

// MinorCategory applies equality check predicate on the "minor_category" field. It's identical to MinorCategoryEQ.
func MinorCategory(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldEQ(FieldMinorCategory, v))
}

// GenreName applies equality check predicate on the "genre_name" field. It's identical to GenreNameEQ.
func GenreName(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldEQ(FieldGenreName, v))
}

// Classification applies equality check predicate on the "classification" field. It's identical to ClassificationEQ.
func Classification(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldEQ(FieldClassification, v))
}

// InStore applies equality check predicate on the "in_store" field. It's identical to InStoreEQ.
func InStore(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldEQ(FieldInStore, v))
}

// LotNumber applies equality check predicate on the "lot_number" field. It's identical to LotNumberEQ.
func LotNumber(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldEQ(FieldLotNumber, v))
}

// Color applies equality check predicate on the "color" field. It's identical to ColorEQ.
func Color(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldEQ(FieldColor, v))
}

// Material applies equality check predicate on the "material" field. It's identical to MaterialEQ.
func Material(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldEQ(FieldMaterial, v))
}

// Origin applies equality check predicate on the "origin" field. It's identical to OriginEQ.
func Origin(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldEQ(FieldOrigin, v))
}

// CountryOfOrigin applies equality check predicate on the "country_of_origin" field. It's identical to CountryOfOriginEQ.
func CountryOfOrigin(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldEQ(FieldCountryOfOrigin, v))
}

// TargetAge applies equality check predicate on the "target_age" field. It's identical to TargetAgeEQ.
func TargetAge(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldEQ(FieldTargetAge, v))
}

// Warranty applies equality check predicate on the "warranty" field. It's identical to WarrantyEQ.
func Warranty(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldEQ(FieldWarranty, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldEQ(FieldDescription, v))
}

// RawText applies equality check predicate on the "raw_text" field. It's identical to RawTextEQ.
func RawText(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldEQ(FieldRawText, v))
}

// SectionText applies equality check predicate on the "section_text" field. It's identical to SectionTextEQ.
func SectionText(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldEQ(FieldSectionText, v))
}

// ConfidenceScore applies equality check predicate on the "confidence_score" field. It's identical to ConfidenceScoreEQ.
func ConfidenceScore(v float32) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldEQ(FieldConfidenceScore, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldEQ(FieldStatus, v))
}

// NeedsReview applies equality check predicate on the "needs_review" field. It's identical to NeedsReviewEQ.
func NeedsReview(v bool) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldEQ(FieldNeedsReview, v))
}

// IsValidated applies equality check predicate on the "is_validated" field. It's identical to IsValidatedEQ.
func IsValidated(v bool) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldEQ(FieldIsValidated, v))
}

// IsMultiProduct applies equality check predicate on the "is_multi_product" field. It's identical to IsMultiProductEQ.
func IsMultiProduct(v bool) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldEQ(FieldIsMultiProduct, v))
}

// TotalProductsInFile applies equality check predicate on the "total_products_in_file" field. It's identical to TotalProductsInFileEQ.
func TotalProductsInFile(v int) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldEQ(FieldTotalProductsInFile, v))
}

// ProductIndex applies equality check predicate on the "product_index" field. It's identical to ProductIndexEQ.
func ProductIndex(v int) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldEQ(FieldProductIndex, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldEQ(FieldErrorMessage, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldEQ(FieldUpdatedAt, v))
}

// OwnerIDEQ applies the EQ predicate on the "owner_id" field.
func OwnerIDEQ(v uuid.UUID) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldEQ(FieldOwnerID, v))
}

// OwnerIDNEQ applies the NEQ predicate on the "owner_id" field.
func OwnerIDNEQ(v uuid.UUID) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldNEQ(FieldOwnerID, v))
}

// OwnerIDIn applies the In predicate on the "owner_id" field.
func OwnerIDIn(vs ...uuid.UUID) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldIn(FieldOwnerID, vs...))
}

// OwnerIDNotIn applies the NotIn predicate on the "owner_id" field.
func OwnerIDNotIn(vs ...uuid.UUID) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldNotIn(FieldOwnerID, vs...))
}

// OwnerIDGT applies the GT predicate on the "owner_id" field.
func OwnerIDGT(v uuid.UUID) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldGT(FieldOwnerID, v))
}

// OwnerIDGTE applies the GTE predicate on the "owner_id" field.
func OwnerIDGTE(v uuid.UUID) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldGTE(FieldOwnerID, v))
}

// OwnerIDLT applies the LT predicate on the "owner_id" field.
func OwnerIDLT(v uuid.UUID) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldLT(FieldOwnerID, v))
}

// OwnerIDLTE applies the LTE predicate on the "owner_id" field.
func OwnerIDLTE(v uuid.UUID) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldLTE(FieldOwnerID, v))
}

// ConversionJobIDEQ applies the EQ predicate on the "conversion_job_id" field.
func ConversionJobIDEQ(v uuid.UUID) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldEQ(FieldConversionJobID, v))
}

// ConversionJobIDNEQ applies the NEQ predicate on the "conversion_job_id" field.
func ConversionJobIDNEQ(v uuid.UUID) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldNEQ(FieldConversionJobID, v))
}

// ConversionJobIDIn applies the In predicate on the "conversion_job_id" field.
func ConversionJobIDIn(vs ...uuid.UUID) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldIn(FieldConversionJobID, vs...))
}

// ConversionJobIDNotIn applies the NotIn predicate on the "conversion_job_id" field.
func ConversionJobIDNotIn(vs ...uuid.UUID) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldNotIn(FieldConversionJobID, vs...))
}

// ConversionJobIDIsNil applies the IsNil predicate on the "conversion_job_id" field.
func ConversionJobIDIsNil() predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldIsNull(FieldConversionJobID))
}

// ConversionJobIDNotNil applies the NotNil predicate on the "conversion_job_id" field.
func ConversionJobIDNotNil() predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldNotNull(FieldConversionJobID))
}

// SourceFileIDEQ applies the EQ predicate on the "source_file_id" field.
func SourceFileIDEQ(v uuid.UUID) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldEQ(FieldSourceFileID, v))
}

// SourceFileIDNEQ applies the NEQ predicate on the "source_file_id" field.
func SourceFileIDNEQ(v uuid.UUID) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldNEQ(FieldSourceFileID, v))
}

// SourceFileIDIn applies the In predicate on the "source_file_id" field.
func SourceFileIDIn(vs ...uuid.UUID) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldIn(FieldSourceFileID, vs...))
}

// SourceFileIDNotIn applies the NotIn predicate on the "source_file_id" field.
func SourceFileIDNotIn(vs ...uuid.UUID) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldNotIn(FieldSourceFileID, vs...))
}

// ProductNameEQ applies the EQ predicate on the "product_name" field.
func ProductNameEQ(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldEQ(FieldProductName, v))
}

// ProductNameNEQ applies the NEQ predicate on the "product_name" field.
func ProductNameNEQ(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldNEQ(FieldProductName, v))
}

// ProductNameIn applies the In predicate on the "product_name" field.
func ProductNameIn(vs ...string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldIn(FieldProductName, vs...))
}

// ProductNameNotIn applies the NotIn predicate on the "product_name" field.
func ProductNameNotIn(vs ...string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldNotIn(FieldProductName, vs...))
}

// ProductNameGT applies the GT predicate on the "product_name" field.
func ProductNameGT(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldGT(FieldProductName, v))
}

// ProductNameGTE applies the GTE predicate on the "product_name" field.
func ProductNameGTE(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldGTE(FieldProductName, v))
}

// ProductNameLT applies the LT predicate on the "product_name" field.
func ProductNameLT(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldLT(FieldProductName, v))
}

// ProductNameLTE applies the LTE predicate on the "product_name" field.
func ProductNameLTE(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldLTE(FieldProductName, v))
}

// ProductNameContains applies the Contains predicate on the "product_name" field.
func ProductNameContains(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldContains(FieldProductName, v))
}

// ProductNameHasPrefix applies the HasPrefix predicate on the "product_name" field.
func ProductNameHasPrefix(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldHasPrefix(FieldProductName, v))
}

// ProductNameHasSuffix applies the HasSuffix predicate on the "product_name" field.
func ProductNameHasSuffix(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldHasSuffix(FieldProductName, v))
}

// ProductNameIsNil applies the IsNil predicate on the "product_name" field.
func ProductNameIsNil() predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldIsNull(FieldProductName))
}

// ProductNameNotNil applies the NotNil predicate on the "product_name" field.
func ProductNameNotNil() predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldNotNull(FieldProductName))
}

// ProductNameEqualFold applies the EqualFold predicate on the "product_name" field.
func ProductNameEqualFold(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldEqualFold(FieldProductName, v))
}

// ProductNameContainsFold applies the ContainsFold predicate on the "product_name" field.
func ProductNameContainsFold(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldContainsFold(FieldProductName, v))
}

// SkuEQ applies the EQ predicate on the "sku" field.
func SkuEQ(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldEQ(FieldSku, v))
}

// SkuNEQ applies the NEQ predicate on the "sku" field.
func SkuNEQ(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldNEQ(FieldSku, v))
}

// SkuIn applies the In predicate on the "sku" field.
func SkuIn(vs ...string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldIn(FieldSku, vs...))
}

// SkuNotIn applies the NotIn predicate on the "sku" field.
func SkuNotIn(vs ...string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldNotIn(FieldSku, vs...))
}

// SkuGT applies the GT predicate on the "sku" field.
func SkuGT(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldGT(FieldSku, v))
}

// SkuGTE applies the GTE predicate on the "sku" field.
func SkuGTE(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldGTE(FieldSku, v))
}

// SkuLT applies the LT predicate on the "sku" field.
func SkuLT(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldLT(FieldSku, v))
}

// SkuLTE applies the LTE predicate on the "sku" field.
func SkuLTE(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldLTE(FieldSku, v))
}

// SkuContains applies the Contains predicate on the "sku" field.
func SkuContains(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldContains(FieldSku, v))
}

// SkuHasPrefix applies the HasPrefix predicate on the "sku" field.
func SkuHasPrefix(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldHasPrefix(FieldSku, v))
}

// SkuHasSuffix applies the HasSuffix predicate on the "sku" field.
func SkuHasSuffix(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldHasSuffix(FieldSku, v))
}

// SkuIsNil applies the IsNil predicate on the "sku" field.
func SkuIsNil() predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldIsNull(FieldSku))
}

// SkuNotNil applies the NotNil predicate on the "sku" field.
func SkuNotNil() predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldNotNull(FieldSku))
}

// SkuEqualFold applies the EqualFold predicate on the "sku" field.
func SkuEqualFold(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldEqualFold(FieldSku, v))
}

// SkuContainsFold applies the ContainsFold predicate on the "sku" field.
func SkuContainsFold(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldContainsFold(FieldSku, v))
}

// ProductCodeEQ applies the EQ predicate on the "product_code" field.
func ProductCodeEQ(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldEQ(FieldProductCode, v))
}

// ProductCodeNEQ applies the NEQ predicate on the "product_code" field.
func ProductCodeNEQ(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldNEQ(FieldProductCode, v))
}

// ProductCodeIn applies the In predicate on the "product_code" field.
func ProductCodeIn(vs ...string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldIn(FieldProductCode, vs...))
}

// ProductCodeNotIn applies the NotIn predicate on the "product_code" field.
func ProductCodeNotIn(vs ...string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldNotIn(FieldProductCode, vs...))
}

// ProductCodeGT applies the GT predicate on the "product_code" field.
func ProductCodeGT(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldGT(FieldProductCode, v))
}

// ProductCodeGTE applies the GTE predicate on the "product_code" field.
func ProductCodeGTE(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldGTE(FieldProductCode, v))
}

// ProductCodeLT applies the LT predicate on the "product_code" field.
func ProductCodeLT(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldLT(FieldProductCode, v))
}

// ProductCodeLTE applies the LTE predicate on the "product_code" field.
func ProductCodeLTE(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldLTE(FieldProductCode, v))
}

// ProductCodeContains applies the Contains predicate on the "product_code" field.
func ProductCodeContains(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldContains(FieldProductCode, v))
}

// ProductCodeHasPrefix applies the HasPrefix predicate on the "product_code" field.
func ProductCodeHasPrefix(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldHasPrefix(FieldProductCode, v))
}

// ProductCodeHasSuffix applies the HasSuffix predicate on the "product_code" field.
func ProductCodeHasSuffix(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldHasSuffix(FieldProductCode, v))
}

// ProductCodeIsNil applies the IsNil predicate on the "product_code" field.
func ProductCodeIsNil() predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldIsNull(FieldProductCode))
}

// ProductCodeNotNil applies the NotNil predicate on the "product_code" field.
func ProductCodeNotNil() predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldNotNull(FieldProductCode))
}

// ProductCodeEqualFold applies the EqualFold predicate on the "product_code" field.
func ProductCodeEqualFold(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldEqualFold(FieldProductCode, v))
}

// ProductCodeContainsFold applies the ContainsFold predicate on the "product_code" field.
func ProductCodeContainsFold(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldContainsFold(FieldProductCode, v))
}

// JanCodeEQ applies the EQ predicate on the "jan_code" field.
func JanCodeEQ(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldEQ(FieldJanCode, v))
}

// JanCodeNEQ applies the NEQ predicate on the "jan_code" field.
func JanCodeNEQ(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldNEQ(FieldJanCode, v))
}

// JanCodeIn applies the In predicate on the "jan_code" field.
func JanCodeIn(vs ...string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldIn(FieldJanCode, vs...))
}

// JanCodeNotIn applies the NotIn predicate on the "jan_code" field.
func JanCodeNotIn(vs ...string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldNotIn(FieldJanCode, vs...))
}

// JanCodeGT applies the GT predicate on the "jan_code" field.
func JanCodeGT(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldGT(FieldJanCode, v))
}

// JanCodeGTE applies the GTE predicate on the "jan_code" field.
func JanCodeGTE(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldGTE(FieldJanCode, v))
}

// JanCodeLT applies the LT predicate on the "jan_code" field.
func JanCodeLT(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldLT(FieldJanCode, v))
}

// JanCodeLTE applies the LTE predicate on the "jan_code" field.
func JanCodeLTE(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldLTE(FieldJanCode, v))
}

// JanCodeContains applies the Contains predicate on the "jan_code" field.
func JanCodeContains(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldContains(FieldJanCode, v))
}

// JanCodeHasPrefix applies the HasPrefix predicate on the "jan_code" field.
func JanCodeHasPrefix(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldHasPrefix(FieldJanCode, v))
}

// JanCodeHasSuffix applies the HasSuffix predicate on the "jan_code" field.
func JanCodeHasSuffix(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldHasSuffix(FieldJanCode, v))
}

// JanCodeIsNil applies the IsNil predicate on the "jan_code" field.
func JanCodeIsNil() predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldIsNull(FieldJanCode))
}

// JanCodeNotNil applies the NotNil predicate on the "jan_code" field.
func JanCodeNotNil() predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldNotNull(FieldJanCode))
}

// JanCodeEqualFold applies the EqualFold predicate on the "jan_code" field.
func JanCodeEqualFold(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldEqualFold(FieldJanCode, v))
}

// JanCodeContainsFold applies the ContainsFold predicate on the "jan_code" field.
func JanCodeContainsFold(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldContainsFold(FieldJanCode, v))
}

// CharacterNameEQ applies the EQ predicate on the "character_name" field.
func CharacterNameEQ(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldEQ(FieldCharacterName, v))
}

// CharacterNameNEQ applies the NEQ predicate on the "character_name" field.
func CharacterNameNEQ(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldNEQ(FieldCharacterName, v))
}

// CharacterNameIn applies the In predicate on the "character_name" field.
func CharacterNameIn(vs ...string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldIn(FieldCharacterName, vs...))
}

// CharacterNameNotIn applies the NotIn predicate on the "character_name" field.
func CharacterNameNotIn(vs ...string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldNotIn(FieldCharacterName, vs...))
}

// CharacterNameGT applies the GT predicate on the "character_name" field.
func CharacterNameGT(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldGT(FieldCharacterName, v))
}

// CharacterNameGTE applies the GTE predicate on the "character_name" field.
func CharacterNameGTE(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldGTE(FieldCharacterName, v))
}

// CharacterNameLT applies the LT predicate on the "character_name" field.
func CharacterNameLT(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldLT(FieldCharacterName, v))
}

// CharacterNameLTE applies the LTE predicate on the "character_name" field.
func CharacterNameLTE(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldLTE(FieldCharacterName, v))
}

// CharacterNameContains applies the Contains predicate on the "character_name" field.
func CharacterNameContains(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldContains(FieldCharacterName, v))
}

// CharacterNameHasPrefix applies the HasPrefix predicate on the "character_name" field.
func CharacterNameHasPrefix(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldHasPrefix(FieldCharacterName, v))
}

// CharacterNameHasSuffix applies the HasSuffix predicate on the "character_name" field.
func CharacterNameHasSuffix(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldHasSuffix(FieldCharacterName, v))
}

// CharacterNameIsNil applies the IsNil predicate on the "character_name" field.
func CharacterNameIsNil() predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldIsNull(FieldCharacterName))
}

// CharacterNameNotNil applies the NotNil predicate on the "character_name" field.
func CharacterNameNotNil() predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldNotNull(FieldCharacterName))
}

// CharacterNameEqualFold applies the EqualFold predicate on the "character_name" field.
func CharacterNameEqualFold(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldEqualFold(FieldCharacterName, v))
}

// CharacterNameContainsFold applies the ContainsFold predicate on the "character_name" field.
func CharacterNameContainsFold(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldContainsFold(FieldCharacterName, v))
}

// BrandEQ applies the EQ predicate on the "brand" field.
func BrandEQ(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldEQ(FieldBrand, v))
}

// BrandNEQ applies the NEQ predicate on the "brand" field.
func BrandNEQ(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldNEQ(FieldBrand, v))
}

// BrandIn applies the In predicate on the "brand" field.
func BrandIn(vs ...string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldIn(FieldBrand, vs...))
}

// BrandNotIn applies the NotIn predicate on the "brand" field.
func BrandNotIn(vs ...string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldNotIn(FieldBrand, vs...))
}

// BrandGT applies the GT predicate on the "brand" field.
func BrandGT(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldGT(FieldBrand, v))
}

// BrandGTE applies the GTE predicate on the "brand" field.
func BrandGTE(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldGTE(FieldBrand, v))
}

// BrandLT applies the LT predicate on the "brand" field.
func BrandLT(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldLT(FieldBrand, v))
}

// BrandLTE applies the LTE predicate on the "brand" field.
func BrandLTE(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldLTE(FieldBrand, v))
}

// BrandContains applies the Contains predicate on the "brand" field.
func BrandContains(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldContains(FieldBrand, v))
}

// BrandHasPrefix applies the HasPrefix predicate on the "brand" field.
func BrandHasPrefix(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldHasPrefix(FieldBrand, v))
}

// BrandHasSuffix applies the HasSuffix predicate on the "brand" field.
func BrandHasSuffix(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldHasSuffix(FieldBrand, v))
}

// BrandIsNil applies the IsNil predicate on the "brand" field.
func BrandIsNil() predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldIsNull(FieldBrand))
}

// BrandNotNil applies the NotNil predicate on the "brand" field.
func BrandNotNil() predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldNotNull(FieldBrand))
}

// BrandEqualFold applies the EqualFold predicate on the "brand" field.
func BrandEqualFold(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldEqualFold(FieldBrand, v))
}

// BrandContainsFold applies the ContainsFold predicate on the "brand" field.
func BrandContainsFold(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldContainsFold(FieldBrand, v))
}

// ManufacturerEQ applies the EQ predicate on the "manufacturer" field.
func ManufacturerEQ(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldEQ(FieldManufacturer, v))
}

// ManufacturerNEQ applies the NEQ predicate on the "manufacturer" field.
func ManufacturerNEQ(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldNEQ(FieldManufacturer, v))
}

// ManufacturerIn applies the In predicate on the "manufacturer" field.
func ManufacturerIn(vs ...string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldIn(FieldManufacturer, vs...))
}

// ManufacturerNotIn applies the NotIn predicate on the "manufacturer" field.
func ManufacturerNotIn(vs ...string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldNotIn(FieldManufacturer, vs...))
}

// ManufacturerGT applies the GT predicate on the "manufacturer" field.
func ManufacturerGT(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldGT(FieldManufacturer, v))
}

// ManufacturerGTE applies the GTE predicate on the "manufacturer" field.
func ManufacturerGTE(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldGTE(FieldManufacturer, v))
}

// ManufacturerLT applies the LT predicate on the "manufacturer" field.
func ManufacturerLT(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldLT(FieldManufacturer, v))
}

// ManufacturerLTE applies the LTE predicate on the "manufacturer" field.
func ManufacturerLTE(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldLTE(FieldManufacturer, v))
}

// ManufacturerContains applies the Contains predicate on the "manufacturer" field.
func ManufacturerContains(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldContains(FieldManufacturer, v))
}

// ManufacturerHasPrefix applies the HasPrefix predicate on the "manufacturer" field.
func ManufacturerHasPrefix(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldHasPrefix(FieldManufacturer, v))
}

// ManufacturerHasSuffix applies the HasSuffix predicate on the "manufacturer" field.
func ManufacturerHasSuffix(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldHasSuffix(FieldManufacturer, v))
}

// ManufacturerIsNil applies the IsNil predicate on the "manufacturer" field.
func ManufacturerIsNil() predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldIsNull(FieldManufacturer))
}

// ManufacturerNotNil applies the NotNil predicate on the "manufacturer" field.
func ManufacturerNotNil() predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldNotNull(FieldManufacturer))
}

// ManufacturerEqualFold applies the EqualFold predicate on the "manufacturer" field.
func ManufacturerEqualFold(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldEqualFold(FieldManufacturer, v))
}

// ManufacturerContainsFold applies the ContainsFold predicate on the "manufacturer" field.
func ManufacturerContainsFold(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldContainsFold(FieldManufacturer, v))
}

// SupplierNameEQ applies the EQ predicate on the "supplier_name" field.
func SupplierNameEQ(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldEQ(FieldSupplierName, v))
}

// SupplierNameNEQ applies the NEQ predicate on the "supplier_name" field.
func SupplierNameNEQ(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldNEQ(FieldSupplierName, v))
}

// SupplierNameIn applies the In predicate on the "supplier_name" field.
func SupplierNameIn(vs ...string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldIn(FieldSupplierName, vs...))
}

// SupplierNameNotIn applies the NotIn predicate on the "supplier_name" field.
func SupplierNameNotIn(vs ...string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldNotIn(FieldSupplierName, vs...))
}

// SupplierNameGT applies the GT predicate on the "supplier_name" field.
func SupplierNameGT(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldGT(FieldSupplierName, v))
}

// SupplierNameGTE applies the GTE predicate on the "supplier_name" field.
func SupplierNameGTE(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldGTE(FieldSupplierName, v))
}

// SupplierNameLT applies the LT predicate on the "supplier_name" field.
func SupplierNameLT(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldLT(FieldSupplierName, v))
}

// SupplierNameLTE applies the LTE predicate on the "supplier_name" field.
func SupplierNameLTE(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldLTE(FieldSupplierName, v))
}

// SupplierNameContains applies the Contains predicate on the "supplier_name" field.
func SupplierNameContains(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldContains(FieldSupplierName, v))
}

// SupplierNameHasPrefix applies the HasPrefix predicate on the "supplier_name" field.
func SupplierNameHasPrefix(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldHasPrefix(FieldSupplierName, v))
}

// SupplierNameHasSuffix applies the HasSuffix predicate on the "supplier_name" field.
func SupplierNameHasSuffix(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldHasSuffix(FieldSupplierName, v))
}

// SupplierNameIsNil applies the IsNil predicate on the "supplier_name" field.
func SupplierNameIsNil() predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldIsNull(FieldSupplierName))
}

// SupplierNameNotNil applies the NotNil predicate on the "supplier_name" field.
func SupplierNameNotNil() predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldNotNull(FieldSupplierName))
}

// SupplierNameEqualFold applies the EqualFold predicate on the "supplier_name" field.
func SupplierNameEqualFold(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldEqualFold(FieldSupplierName, v))
}

// SupplierNameContainsFold applies the ContainsFold predicate on the "supplier_name" field.
func SupplierNameContainsFold(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldContainsFold(FieldSupplierName, v))
}

// IPNameEQ applies the EQ predicate on the "ip_name" field.
func IPNameEQ(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldEQ(FieldIPName, v))
}

// IPNameNEQ applies the NEQ predicate on the "ip_name" field.
func IPNameNEQ(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldNEQ(FieldIPName, v))
}

// IPNameIn applies the In predicate on the "ip_name" field.
func IPNameIn(vs ...string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldIn(FieldIPName, vs...))
}

// IPNameNotIn applies the NotIn predicate on the "ip_name" field.
func IPNameNotIn(vs ...string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldNotIn(FieldIPName, vs...))
}

// IPNameGT applies the GT predicate on the "ip_name" field.
func IPNameGT(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldGT(FieldIPName, v))
}

// IPNameGTE applies the GTE predicate on the "ip_name" field.
func IPNameGTE(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldGTE(FieldIPName, v))
}

// IPNameLT applies the LT predicate on the "ip_name" field.
func IPNameLT(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldLT(FieldIPName, v))
}

// IPNameLTE applies the LTE predicate on the "ip_name" field.
func IPNameLTE(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldLTE(FieldIPName, v))
}

// IPNameContains applies the Contains predicate on the "ip_name" field.
func IPNameContains(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldContains(FieldIPName, v))
}

// IPNameHasPrefix applies the HasPrefix predicate on the "ip_name" field.
func IPNameHasPrefix(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldHasPrefix(FieldIPName, v))
}

// IPNameHasSuffix applies the HasSuffix predicate on the "ip_name" field.
func IPNameHasSuffix(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldHasSuffix(FieldIPName, v))
}

// IPNameIsNil applies the IsNil predicate on the "ip_name" field.
func IPNameIsNil() predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldIsNull(FieldIPName))
}

// IPNameNotNil applies the NotNil predicate on the "ip_name" field.
func IPNameNotNil() predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldNotNull(FieldIPName))
}

// IPNameEqualFold applies the EqualFold predicate on the "ip_name" field.
func IPNameEqualFold(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldEqualFold(FieldIPName, v))
}

// IPNameContainsFold applies the ContainsFold predicate on the "ip_name" field.
func IPNameContainsFold(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldContainsFold(FieldIPName, v))
}

// PriceEQ applies the EQ predicate on the "price" field.
func PriceEQ(v float64) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldEQ(FieldPrice, v))
}

// PriceNEQ applies the NEQ predicate on the "price" field.
func PriceNEQ(v float64) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldNEQ(FieldPrice, v))
}

// PriceIn applies the In predicate on the "price" field.
func PriceIn(vs ...float64) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldIn(FieldPrice, vs...))
}

// PriceNotIn applies the NotIn predicate on the "price" field.
func PriceNotIn(vs ...float64) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldNotIn(FieldPrice, vs...))
}

// PriceGT applies the GT predicate on the "price" field.
func PriceGT(v float64) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldGT(FieldPrice, v))
}

// PriceGTE applies the GTE predicate on the "price" field.
func PriceGTE(v float64) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldGTE(FieldPrice, v))
}

// PriceLT applies the LT predicate on the "price" field.
func PriceLT(v float64) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldLT(FieldPrice, v))
}

// PriceLTE applies the LTE predicate on the "price" field.
func PriceLTE(v float64) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldLTE(FieldPrice, v))
}

// PriceIsNil applies the IsNil predicate on the "price" field.
func PriceIsNil() predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldIsNull(FieldPrice))
}

// PriceNotNil applies the NotNil predicate on the "price" field.
func PriceNotNil() predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldNotNull(FieldPrice))
}

// ReferenceSalesPriceEQ applies the EQ predicate on the "reference_sales_price" field.
func ReferenceSalesPriceEQ(v float64) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldEQ(FieldReferenceSalesPrice, v))
}

// ReferenceSalesPriceNEQ applies the NEQ predicate on the "reference_sales_price" field.
func ReferenceSalesPriceNEQ(v float64) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldNEQ(FieldReferenceSalesPrice, v))
}

// ReferenceSalesPriceIn applies the In predicate on the "reference_sales_price" field.
func ReferenceSalesPriceIn(vs ...float64) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldIn(FieldReferenceSalesPrice, vs...))
}

// ReferenceSalesPriceNotIn applies the NotIn predicate on the "reference_sales_price" field.
func ReferenceSalesPriceNotIn(vs ...float64) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldNotIn(FieldReferenceSalesPrice, vs...))
}

// ReferenceSalesPriceGT applies the GT predicate on the "reference_sales_price" field.
func ReferenceSalesPriceGT(v float64) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldGT(FieldReferenceSalesPrice, v))
}

// ReferenceSalesPriceGTE applies the GTE predicate on the "reference_sales_price" field.
func ReferenceSalesPriceGTE(v float64) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldGTE(FieldReferenceSalesPrice, v))
}

// ReferenceSalesPriceLT applies the LT predicate on the "reference_sales_price" field.
func ReferenceSalesPriceLT(v float64) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldLT(FieldReferenceSalesPrice, v))
}

// ReferenceSalesPriceLTE applies the LTE predicate on the "reference_sales_price" field.
func ReferenceSalesPriceLTE(v float64) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldLTE(FieldReferenceSalesPrice, v))
}

// ReferenceSalesPriceIsNil applies the IsNil predicate on the "reference_sales_price" field.
func ReferenceSalesPriceIsNil() predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldIsNull(FieldReferenceSalesPrice))
}

// ReferenceSalesPriceNotNil applies the NotNil predicate on the "reference_sales_price" field.
func ReferenceSalesPriceNotNil() predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldNotNull(FieldReferenceSalesPrice))
}

// WholesalePriceEQ applies the EQ predicate on the "wholesale_price" field.
func WholesalePriceEQ(v float64) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldEQ(FieldWholesalePrice, v))
}

// WholesalePriceNEQ applies the NEQ predicate on the "wholesale_price" field.
func WholesalePriceNEQ(v float64) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldNEQ(FieldWholesalePrice, v))
}

// WholesalePriceIn applies the In predicate on the "wholesale_price" field.
func WholesalePriceIn(vs ...float64) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldIn(FieldWholesalePrice, vs...))
}

// WholesalePriceNotIn applies the NotIn predicate on the "wholesale_price" field.
func WholesalePriceNotIn(vs ...float64) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldNotIn(FieldWholesalePrice, vs...))
}

// WholesalePriceGT applies the GT predicate on the "wholesale_price" field.
func WholesalePriceGT(v float64) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldGT(FieldWholesalePrice, v))
}

// WholesalePriceGTE applies the GTE predicate on the "wholesale_price" field.
func WholesalePriceGTE(v float64) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldGTE(FieldWholesalePrice, v))
}

// WholesalePriceLT applies the LT predicate on the "wholesale_price" field.
func WholesalePriceLT(v float64) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldLT(FieldWholesalePrice, v))
}

// WholesalePriceLTE applies the LTE predicate on the "wholesale_price" field.
func WholesalePriceLTE(v float64) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldLTE(FieldWholesalePrice, v))
}

// WholesalePriceIsNil applies the IsNil predicate on the "wholesale_price" field.
func WholesalePriceIsNil() predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldIsNull(FieldWholesalePrice))
}

// WholesalePriceNotNil applies the NotNil predicate on the "wholesale_price" field.
func WholesalePriceNotNil() predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldNotNull(FieldWholesalePrice))
}

// OrderAmountEQ applies the EQ predicate on the "order_amount" field.
func OrderAmountEQ(v float64) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldEQ(FieldOrderAmount, v))
}

// OrderAmountNEQ applies the NEQ predicate on the "order_amount" field.
func OrderAmountNEQ(v float64) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldNEQ(FieldOrderAmount, v))
}

// OrderAmountIn applies the In predicate on the "order_amount" field.
func OrderAmountIn(vs ...float64) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldIn(FieldOrderAmount, vs...))
}

// OrderAmountNotIn applies the NotIn predicate on the "order_amount" field.
func OrderAmountNotIn(vs ...float64) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldNotIn(FieldOrderAmount, vs...))
}

// OrderAmountGT applies the GT predicate on the "order_amount" field.
func OrderAmountGT(v float64) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldGT(FieldOrderAmount, v))
}

// OrderAmountGTE applies the GTE predicate on the "order_amount" field.
func OrderAmountGTE(v float64) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldGTE(FieldOrderAmount, v))
}

// OrderAmountLT applies the LT predicate on the "order_amount" field.
func OrderAmountLT(v float64) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldLT(FieldOrderAmount, v))
}

// OrderAmountLTE applies the LTE predicate on the "order_amount" field.
func OrderAmountLTE(v float64) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldLTE(FieldOrderAmount, v))
}

// OrderAmountIsNil applies the IsNil predicate on the "order_amount" field.
func OrderAmountIsNil() predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldIsNull(FieldOrderAmount))
}

// OrderAmountNotNil applies the NotNil predicate on the "order_amount" field.
func OrderAmountNotNil() predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldNotNull(FieldOrderAmount))
}

// StockEQ applies the EQ predicate on the "stock" field.
func StockEQ(v int) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldEQ(FieldStock, v))
}

// StockNEQ applies the NEQ predicate on the "stock" field.
func StockNEQ(v int) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldNEQ(FieldStock, v))
}

// StockIn applies the In predicate on the "stock" field.
func StockIn(vs ...int) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldIn(FieldStock, vs...))
}

// StockNotIn applies the NotIn predicate on the "stock" field.
func StockNotIn(vs ...int) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldNotIn(FieldStock, vs...))
}

// StockGT applies the GT predicate on the "stock" field.
func StockGT(v int) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldGT(FieldStock, v))
}

// StockGTE applies the GTE predicate on the "stock" field.
func StockGTE(v int) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldGTE(FieldStock, v))
}

// StockLT applies the LT predicate on the "stock" field.
func StockLT(v int) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldLT(FieldStock, v))
}

// StockLTE applies the LTE predicate on the "stock" field.
func StockLTE(v int) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldLTE(FieldStock, v))
}

// StockIsNil applies the IsNil predicate on the "stock" field.
func StockIsNil() predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldIsNull(FieldStock))
}

// StockNotNil applies the NotNil predicate on the "stock" field.
func StockNotNil() predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldNotNull(FieldStock))
}

// WholesaleQuantityEQ applies the EQ predicate on the "wholesale_quantity" field.
func WholesaleQuantityEQ(v int) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldEQ(FieldWholesaleQuantity, v))
}

// WholesaleQuantityNEQ applies the NEQ predicate on the "wholesale_quantity" field.
func WholesaleQuantityNEQ(v int) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldNEQ(FieldWholesaleQuantity, v))
}

// WholesaleQuantityIn applies the In predicate on the "wholesale_quantity" field.
func WholesaleQuantityIn(vs ...int) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldIn(FieldWholesaleQuantity, vs...))
}

// WholesaleQuantityNotIn applies the NotIn predicate on the "wholesale_quantity" field.
func WholesaleQuantityNotIn(vs ...int) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldNotIn(FieldWholesaleQuantity, vs...))
}

// WholesaleQuantityGT applies the GT predicate on the "wholesale_quantity" field.
func WholesaleQuantityGT(v int) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldGT(FieldWholesaleQuantity, v))
}

// WholesaleQuantityGTE applies the GTE predicate on the "wholesale_quantity" field.
func WholesaleQuantityGTE(v int) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldGTE(FieldWholesaleQuantity, v))
}

// WholesaleQuantityLT applies the LT predicate on the "wholesale_quantity" field.
func WholesaleQuantityLT(v int) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldLT(FieldWholesaleQuantity, v))
}

// WholesaleQuantityLTE applies the LTE predicate on the "wholesale_quantity" field.
func WholesaleQuantityLTE(v int) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldLTE(FieldWholesaleQuantity, v))
}

// WholesaleQuantityIsNil applies the IsNil predicate on the "wholesale_quantity" field.
func WholesaleQuantityIsNil() predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldIsNull(FieldWholesaleQuantity))
}

// WholesaleQuantityNotNil applies the NotNil predicate on the "wholesale_quantity" field.
func WholesaleQuantityNotNil() predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldNotNull(FieldWholesaleQuantity))
}

// ReleaseDateEQ applies the EQ predicate on the "release_date" field.
func ReleaseDateEQ(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldEQ(FieldReleaseDate, v))
}

// ReleaseDateNEQ applies the NEQ predicate on the "release_date" field.
func ReleaseDateNEQ(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldNEQ(FieldReleaseDate, v))
}

// ReleaseDateIn applies the In predicate on the "release_date" field.
func ReleaseDateIn(vs ...string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldIn(FieldReleaseDate, vs...))
}

// ReleaseDateNotIn applies the NotIn predicate on the "release_date" field.
func ReleaseDateNotIn(vs ...string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldNotIn(FieldReleaseDate, vs...))
}

// ReleaseDateGT applies the GT predicate on the "release_date" field.
func ReleaseDateGT(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldGT(FieldReleaseDate, v))
}

// ReleaseDateGTE applies the GTE predicate on the "release_date" field.
func ReleaseDateGTE(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldGTE(FieldReleaseDate, v))
}

// ReleaseDateLT applies the LT predicate on the "release_date" field.
func ReleaseDateLT(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldLT(FieldReleaseDate, v))
}

// ReleaseDateLTE applies the LTE predicate on the "release_date" field.
func ReleaseDateLTE(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldLTE(FieldReleaseDate, v))
}

// ReleaseDateContains applies the Contains predicate on the "release_date" field.
func ReleaseDateContains(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldContains(FieldReleaseDate, v))
}

// ReleaseDateHasPrefix applies the HasPrefix predicate on the "release_date" field.
func ReleaseDateHasPrefix(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldHasPrefix(FieldReleaseDate, v))
}

// ReleaseDateHasSuffix applies the HasSuffix predicate on the "release_date" field.
func ReleaseDateHasSuffix(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldHasSuffix(FieldReleaseDate, v))
}

// ReleaseDateIsNil applies the IsNil predicate on the "release_date" field.
func ReleaseDateIsNil() predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldIsNull(FieldReleaseDate))
}

// ReleaseDateNotNil applies the NotNil predicate on the "release_date" field.
func ReleaseDateNotNil() predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldNotNull(FieldReleaseDate))
}

// ReleaseDateEqualFold applies the EqualFold predicate on the "release_date" field.
func ReleaseDateEqualFold(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldEqualFold(FieldReleaseDate, v))
}

// ReleaseDateContainsFold applies the ContainsFold predicate on the "release_date" field.
func ReleaseDateContainsFold(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldContainsFold(FieldReleaseDate, v))
}

// ReservationReleaseDateEQ applies the EQ predicate on the "reservation_release_date" field.
func ReservationReleaseDateEQ(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldEQ(FieldReservationReleaseDate, v))
}

// ReservationReleaseDateNEQ applies the NEQ predicate on the "reservation_release_date" field.
func ReservationReleaseDateNEQ(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldNEQ(FieldReservationReleaseDate, v))
}

// ReservationReleaseDateIn applies the In predicate on the "reservation_release_date" field.
func ReservationReleaseDateIn(vs ...string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldIn(FieldReservationReleaseDate, vs...))
}

// ReservationReleaseDateNotIn applies the NotIn predicate on the "reservation_release_date" field.
func ReservationReleaseDateNotIn(vs ...string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldNotIn(FieldReservationReleaseDate, vs...))
}

// ReservationReleaseDateGT applies the GT predicate on the "reservation_release_date" field.
func ReservationReleaseDateGT(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldGT(FieldReservationReleaseDate, v))
}

// ReservationReleaseDateGTE applies the GTE predicate on the "reservation_release_date" field.
func ReservationReleaseDateGTE(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldGTE(FieldReservationReleaseDate, v))
}

// ReservationReleaseDateLT applies the LT predicate on the "reservation_release_date" field.
func ReservationReleaseDateLT(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldLT(FieldReservationReleaseDate, v))
}

// ReservationReleaseDateLTE applies the LTE predicate on the "reservation_release_date" field.
func ReservationReleaseDateLTE(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldLTE(FieldReservationReleaseDate, v))
}

// ReservationReleaseDateContains applies the Contains predicate on the "reservation_release_date" field.
func ReservationReleaseDateContains(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldContains(FieldReservationReleaseDate, v))
}

// ReservationReleaseDateHasPrefix applies the HasPrefix predicate on the "reservation_release_date" field.
func ReservationReleaseDateHasPrefix(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldHasPrefix(FieldReservationReleaseDate, v))
}

// ReservationReleaseDateHasSuffix applies the HasSuffix predicate on the "reservation_release_date" field.
func ReservationReleaseDateHasSuffix(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldHasSuffix(FieldReservationReleaseDate, v))
}

// ReservationReleaseDateIsNil applies the IsNil predicate on the "reservation_release_date" field.
func ReservationReleaseDateIsNil() predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldIsNull(FieldReservationReleaseDate))
}

// ReservationReleaseDateNotNil applies the NotNil predicate on the "reservation_release_date" field.
func ReservationReleaseDateNotNil() predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldNotNull(FieldReservationReleaseDate))
}

// ReservationReleaseDateEqualFold applies the EqualFold predicate on the "reservation_release_date" field.
func ReservationReleaseDateEqualFold(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldEqualFold(FieldReservationReleaseDate, v))
}

// ReservationReleaseDateContainsFold applies the ContainsFold predicate on the "reservation_release_date" field.
func ReservationReleaseDateContainsFold(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldContainsFold(FieldReservationReleaseDate, v))
}

// ReservationDeadlineEQ applies the EQ predicate on the "reservation_deadline" field.
func ReservationDeadlineEQ(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldEQ(FieldReservationDeadline, v))
}

// ReservationDeadlineNEQ applies the NEQ predicate on the "reservation_deadline" field.
func ReservationDeadlineNEQ(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldNEQ(FieldReservationDeadline, v))
}

// ReservationDeadlineIn applies the In predicate on the "reservation_deadline" field.
func ReservationDeadlineIn(vs ...string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldIn(FieldReservationDeadline, vs...))
}

// ReservationDeadlineNotIn applies the NotIn predicate on the "reservation_deadline" field.
func ReservationDeadlineNotIn(vs ...string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldNotIn(FieldReservationDeadline, vs...))
}

// ReservationDeadlineGT applies the GT predicate on the "reservation_deadline" field.
func ReservationDeadlineGT(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldGT(FieldReservationDeadline, v))
}

// ReservationDeadlineGTE applies the GTE predicate on the "reservation_deadline" field.
func ReservationDeadlineGTE(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldGTE(FieldReservationDeadline, v))
}

// ReservationDeadlineLT applies the LT predicate on the "reservation_deadline" field.
func ReservationDeadlineLT(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldLT(FieldReservationDeadline, v))
}

// ReservationDeadlineLTE applies the LTE predicate on the "reservation_deadline" field.
func ReservationDeadlineLTE(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldLTE(FieldReservationDeadline, v))
}

// ReservationDeadlineContains applies the Contains predicate on the "reservation_deadline" field.
func ReservationDeadlineContains(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldContains(FieldReservationDeadline, v))
}

// ReservationDeadlineHasPrefix applies the HasPrefix predicate on the "reservation_deadline" field.
func ReservationDeadlineHasPrefix(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldHasPrefix(FieldReservationDeadline, v))
}

// ReservationDeadlineHasSuffix applies the HasSuffix predicate on the "reservation_deadline" field.
func ReservationDeadlineHasSuffix(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldHasSuffix(FieldReservationDeadline, v))
}

// ReservationDeadlineIsNil applies the IsNil predicate on the "reservation_deadline" field.
func ReservationDeadlineIsNil() predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldIsNull(FieldReservationDeadline))
}

// ReservationDeadlineNotNil applies the NotNil predicate on the "reservation_deadline" field.
func ReservationDeadlineNotNil() predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldNotNull(FieldReservationDeadline))
}

// ReservationDeadlineEqualFold applies the EqualFold predicate on the "reservation_deadline" field.
func ReservationDeadlineEqualFold(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldEqualFold(FieldReservationDeadline, v))
}

// ReservationDeadlineContainsFold applies the ContainsFold predicate on the "reservation_deadline" field.
func ReservationDeadlineContainsFold(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldContainsFold(FieldReservationDeadline, v))
}

// ReservationShippingDateEQ applies the EQ predicate on the "reservation_shipping_date" field.
func ReservationShippingDateEQ(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldEQ(FieldReservationShippingDate, v))
}

// ReservationShippingDateNEQ applies the NEQ predicate on the "reservation_shipping_date" field.
func ReservationShippingDateNEQ(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldNEQ(FieldReservationShippingDate, v))
}

// ReservationShippingDateIn applies the In predicate on the "reservation_shipping_date" field.
func ReservationShippingDateIn(vs ...string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldIn(FieldReservationShippingDate, vs...))
}

// ReservationShippingDateNotIn applies the NotIn predicate on the "reservation_shipping_date" field.
func ReservationShippingDateNotIn(vs ...string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldNotIn(FieldReservationShippingDate, vs...))
}

// ReservationShippingDateGT applies the GT predicate on the "reservation_shipping_date" field.
func ReservationShippingDateGT(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldGT(FieldReservationShippingDate, v))
}

// ReservationShippingDateGTE applies the GTE predicate on the "reservation_shipping_date" field.
func ReservationShippingDateGTE(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldGTE(FieldReservationShippingDate, v))
}

// ReservationShippingDateLT applies the LT predicate on the "reservation_shipping_date" field.
func ReservationShippingDateLT(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldLT(FieldReservationShippingDate, v))
}

// ReservationShippingDateLTE applies the LTE predicate on the "reservation_shipping_date" field.
func ReservationShippingDateLTE(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldLTE(FieldReservationShippingDate, v))
}

// ReservationShippingDateContains applies the Contains predicate on the "reservation_shipping_date" field.
func ReservationShippingDateContains(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldContains(FieldReservationShippingDate, v))
}

// ReservationShippingDateHasPrefix applies the HasPrefix predicate on the "reservation_shipping_date" field.
func ReservationShippingDateHasPrefix(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldHasPrefix(FieldReservationShippingDate, v))
}

// ReservationShippingDateHasSuffix applies the HasSuffix predicate on the "reservation_shipping_date" field.
func ReservationShippingDateHasSuffix(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldHasSuffix(FieldReservationShippingDate, v))
}

// ReservationShippingDateIsNil applies the IsNil predicate on the "reservation_shipping_date" field.
func ReservationShippingDateIsNil() predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldIsNull(FieldReservationShippingDate))
}

// ReservationShippingDateNotNil applies the NotNil predicate on the "reservation_shipping_date" field.
func ReservationShippingDateNotNil() predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldNotNull(FieldReservationShippingDate))
}

// ReservationShippingDateEqualFold applies the EqualFold predicate on the "reservation_shipping_date" field.
func ReservationShippingDateEqualFold(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldEqualFold(FieldReservationShippingDate, v))
}

// ReservationShippingDateContainsFold applies the ContainsFold predicate on the "reservation_shipping_date" field.
func ReservationShippingDateContainsFold(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldContainsFold(FieldReservationShippingDate, v))
}

// DimensionsEQ applies the EQ predicate on the "dimensions" field.
func DimensionsEQ(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldEQ(FieldDimensions, v))
}

// DimensionsNEQ applies the NEQ predicate on the "dimensions" field.
func DimensionsNEQ(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldNEQ(FieldDimensions, v))
}

// DimensionsIn applies the In predicate on the "dimensions" field.
func DimensionsIn(vs ...string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldIn(FieldDimensions, vs...))
}

// DimensionsNotIn applies the NotIn predicate on the "dimensions" field.
func DimensionsNotIn(vs ...string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldNotIn(FieldDimensions, vs...))
}

// DimensionsGT applies the GT predicate on the "dimensions" field.
func DimensionsGT(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldGT(FieldDimensions, v))
}

// DimensionsGTE applies the GTE predicate on the "dimensions" field.
func DimensionsGTE(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldGTE(FieldDimensions, v))
}

// DimensionsLT applies the LT predicate on the "dimensions" field.
func DimensionsLT(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldLT(FieldDimensions, v))
}

// DimensionsLTE applies the LTE predicate on the "dimensions" field.
func DimensionsLTE(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldLTE(FieldDimensions, v))
}

// DimensionsContains applies the Contains predicate on the "dimensions" field.
func DimensionsContains(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldContains(FieldDimensions, v))
}

// DimensionsHasPrefix applies the HasPrefix predicate on the "dimensions" field.
func DimensionsHasPrefix(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldHasPrefix(FieldDimensions, v))
}

// DimensionsHasSuffix applies the HasSuffix predicate on the "dimensions" field.
func DimensionsHasSuffix(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldHasSuffix(FieldDimensions, v))
}

// DimensionsIsNil applies the IsNil predicate on the "dimensions" field.
func DimensionsIsNil() predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldIsNull(FieldDimensions))
}

// DimensionsNotNil applies the NotNil predicate on the "dimensions" field.
func DimensionsNotNil() predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldNotNull(FieldDimensions))
}

// DimensionsEqualFold applies the EqualFold predicate on the "dimensions" field.
func DimensionsEqualFold(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldEqualFold(FieldDimensions, v))
}

// DimensionsContainsFold applies the ContainsFold predicate on the "dimensions" field.
func DimensionsContainsFold(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldContainsFold(FieldDimensions, v))
}

// SingleProductSizeEQ applies the EQ predicate on the "single_product_size" field.
func SingleProductSizeEQ(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldEQ(FieldSingleProductSize, v))
}

// SingleProductSizeNEQ applies the NEQ predicate on the "single_product_size" field.
func SingleProductSizeNEQ(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldNEQ(FieldSingleProductSize, v))
}

// SingleProductSizeIn applies the In predicate on the "single_product_size" field.
func SingleProductSizeIn(vs ...string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldIn(FieldSingleProductSize, vs...))
}

// SingleProductSizeNotIn applies the NotIn predicate on the "single_product_size" field.
func SingleProductSizeNotIn(vs ...string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldNotIn(FieldSingleProductSize, vs...))
}

// SingleProductSizeGT applies the GT predicate on the "single_product_size" field.
func SingleProductSizeGT(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldGT(FieldSingleProductSize, v))
}

// SingleProductSizeGTE applies the GTE predicate on the "single_product_size" field.
func SingleProductSizeGTE(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldGTE(FieldSingleProductSize, v))
}

// SingleProductSizeLT applies the LT predicate on the "single_product_size" field.
func SingleProductSizeLT(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldLT(FieldSingleProductSize, v))
}

// SingleProductSizeLTE applies the LTE predicate on the "single_product_size" field.
func SingleProductSizeLTE(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldLTE(FieldSingleProductSize, v))
}

// SingleProductSizeContains applies the Contains predicate on the "single_product_size" field.
func SingleProductSizeContains(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldContains(FieldSingleProductSize, v))
}

// SingleProductSizeHasPrefix applies the HasPrefix predicate on the "single_product_size" field.
func SingleProductSizeHasPrefix(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldHasPrefix(FieldSingleProductSize, v))
}

// SingleProductSizeHasSuffix applies the HasSuffix predicate on the "single_product_size" field.
func SingleProductSizeHasSuffix(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldHasSuffix(FieldSingleProductSize, v))
}

// SingleProductSizeIsNil applies the IsNil predicate on the "single_product_size" field.
func SingleProductSizeIsNil() predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldIsNull(FieldSingleProductSize))
}

// SingleProductSizeNotNil applies the NotNil predicate on the "single_product_size" field.
func SingleProductSizeNotNil() predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldNotNull(FieldSingleProductSize))
}

// SingleProductSizeEqualFold applies the EqualFold predicate on the "single_product_size" field.
func SingleProductSizeEqualFold(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldEqualFold(FieldSingleProductSize, v))
}

// SingleProductSizeContainsFold applies the ContainsFold predicate on the "single_product_size" field.
func SingleProductSizeContainsFold(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldContainsFold(FieldSingleProductSize, v))
}

// PackageSizeEQ applies the EQ predicate on the "package_size" field.
func PackageSizeEQ(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldEQ(FieldPackageSize, v))
}

// PackageSizeNEQ applies the NEQ predicate on the "package_size" field.
func PackageSizeNEQ(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldNEQ(FieldPackageSize, v))
}

// PackageSizeIn applies the In predicate on the "package_size" field.
func PackageSizeIn(vs ...string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldIn(FieldPackageSize, vs...))
}

// PackageSizeNotIn applies the NotIn predicate on the "package_size" field.
func PackageSizeNotIn(vs ...string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldNotIn(FieldPackageSize, vs...))
}

// PackageSizeGT applies the GT predicate on the "package_size" field.
func PackageSizeGT(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldGT(FieldPackageSize, v))
}

// PackageSizeGTE applies the GTE predicate on the "package_size" field.
func PackageSizeGTE(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldGTE(FieldPackageSize, v))
}

// PackageSizeLT applies the LT predicate on the "package_size" field.
func PackageSizeLT(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldLT(FieldPackageSize, v))
}

// PackageSizeLTE applies the LTE predicate on the "package_size" field.
func PackageSizeLTE(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldLTE(FieldPackageSize, v))
}

// PackageSizeContains applies the Contains predicate on the "package_size" field.
func PackageSizeContains(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldContains(FieldPackageSize, v))
}

// PackageSizeHasPrefix applies the HasPrefix predicate on the "package_size" field.
func PackageSizeHasPrefix(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldHasPrefix(FieldPackageSize, v))
}

// PackageSizeHasSuffix applies the HasSuffix predicate on the "package_size" field.
func PackageSizeHasSuffix(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldHasSuffix(FieldPackageSize, v))
}

// PackageSizeIsNil applies the IsNil predicate on the "package_size" field.
func PackageSizeIsNil() predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldIsNull(FieldPackageSize))
}

// PackageSizeNotNil applies the NotNil predicate on the "package_size" field.
func PackageSizeNotNil() predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldNotNull(FieldPackageSize))
}

// PackageSizeEqualFold applies the EqualFold predicate on the "package_size" field.
func PackageSizeEqualFold(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldEqualFold(FieldPackageSize, v))
}

// PackageSizeContainsFold applies the ContainsFold predicate on the "package_size" field.
func PackageSizeContainsFold(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldContainsFold(FieldPackageSize, v))
}

// InnerBoxSizeEQ applies the EQ predicate on the "inner_box_size" field.
func InnerBoxSizeEQ(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldEQ(FieldInnerBoxSize, v))
}

// InnerBoxSizeNEQ applies the NEQ predicate on the "inner_box_size" field.
func InnerBoxSizeNEQ(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldNEQ(FieldInnerBoxSize, v))
}

// InnerBoxSizeIn applies the In predicate on the "inner_box_size" field.
func InnerBoxSizeIn(vs ...string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldIn(FieldInnerBoxSize, vs...))
}

// InnerBoxSizeNotIn applies the NotIn predicate on the "inner_box_size" field.
func InnerBoxSizeNotIn(vs ...string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldNotIn(FieldInnerBoxSize, vs...))
}

// InnerBoxSizeGT applies the GT predicate on the "inner_box_size" field.
func InnerBoxSizeGT(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldGT(FieldInnerBoxSize, v))
}

// InnerBoxSizeGTE applies the GTE predicate on the "inner_box_size" field.
func InnerBoxSizeGTE(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldGTE(FieldInnerBoxSize, v))
}

// InnerBoxSizeLT applies the LT predicate on the "inner_box_size" field.
func InnerBoxSizeLT(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldLT(FieldInnerBoxSize, v))
}

// InnerBoxSizeLTE applies the LTE predicate on the "inner_box_size" field.
func InnerBoxSizeLTE(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldLTE(FieldInnerBoxSize, v))
}

// InnerBoxSizeContains applies the Contains predicate on the "inner_box_size" field.
func InnerBoxSizeContains(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldContains(FieldInnerBoxSize, v))
}

// InnerBoxSizeHasPrefix applies the HasPrefix predicate on the "inner_box_size" field.
func InnerBoxSizeHasPrefix(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldHasPrefix(FieldInnerBoxSize, v))
}

// InnerBoxSizeHasSuffix applies the HasSuffix predicate on the "inner_box_size" field.
func InnerBoxSizeHasSuffix(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldHasSuffix(FieldInnerBoxSize, v))
}

// InnerBoxSizeIsNil applies the IsNil predicate on the "inner_box_size" field.
func InnerBoxSizeIsNil() predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldIsNull(FieldInnerBoxSize))
}

// InnerBoxSizeNotNil applies the NotNil predicate on the "inner_box_size" field.
func InnerBoxSizeNotNil() predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldNotNull(FieldInnerBoxSize))
}

// InnerBoxSizeEqualFold applies the EqualFold predicate on the "inner_box_size" field.
func InnerBoxSizeEqualFold(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldEqualFold(FieldInnerBoxSize, v))
}

// InnerBoxSizeContainsFold applies the ContainsFold predicate on the "inner_box_size" field.
func InnerBoxSizeContainsFold(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldContainsFold(FieldInnerBoxSize, v))
}

// CartonSizeEQ applies the EQ predicate on the "carton_size" field.
func CartonSizeEQ(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldEQ(FieldCartonSize, v))
}

// CartonSizeNEQ applies the NEQ predicate on the "carton_size" field.
func CartonSizeNEQ(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldNEQ(FieldCartonSize, v))
}

// CartonSizeIn applies the In predicate on the "carton_size" field.
func CartonSizeIn(vs ...string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldIn(FieldCartonSize, vs...))
}

// CartonSizeNotIn applies the NotIn predicate on the "carton_size" field.
func CartonSizeNotIn(vs ...string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldNotIn(FieldCartonSize, vs...))
}

// CartonSizeGT applies the GT predicate on the "carton_size" field.
func CartonSizeGT(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldGT(FieldCartonSize, v))
}

// CartonSizeGTE applies the GTE predicate on the "carton_size" field.
func CartonSizeGTE(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldGTE(FieldCartonSize, v))
}

// CartonSizeLT applies the LT predicate on the "carton_size" field.
func CartonSizeLT(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldLT(FieldCartonSize, v))
}

// CartonSizeLTE applies the LTE predicate on the "carton_size" field.
func CartonSizeLTE(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldLTE(FieldCartonSize, v))
}

// CartonSizeContains applies the Contains predicate on the "carton_size" field.
func CartonSizeContains(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldContains(FieldCartonSize, v))
}

// CartonSizeHasPrefix applies the HasPrefix predicate on the "carton_size" field.
func CartonSizeHasPrefix(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldHasPrefix(FieldCartonSize, v))
}

// CartonSizeHasSuffix applies the HasSuffix predicate on the "carton_size" field.
func CartonSizeHasSuffix(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldHasSuffix(FieldCartonSize, v))
}

// CartonSizeIsNil applies the IsNil predicate on the "carton_size" field.
func CartonSizeIsNil() predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldIsNull(FieldCartonSize))
}

// CartonSizeNotNil applies the NotNil predicate on the "carton_size" field.
func CartonSizeNotNil() predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldNotNull(FieldCartonSize))
}

// CartonSizeEqualFold applies the EqualFold predicate on the "carton_size" field.
func CartonSizeEqualFold(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldEqualFold(FieldCartonSize, v))
}

// CartonSizeContainsFold applies the ContainsFold predicate on the "carton_size" field.
func CartonSizeContainsFold(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldContainsFold(FieldCartonSize, v))
}

// WeightEQ applies the EQ predicate on the "weight" field.
func WeightEQ(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldEQ(FieldWeight, v))
}

// WeightNEQ applies the NEQ predicate on the "weight" field.
func WeightNEQ(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldNEQ(FieldWeight, v))
}

// WeightIn applies the In predicate on the "weight" field.
func WeightIn(vs ...string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldIn(FieldWeight, vs...))
}

// WeightNotIn applies the NotIn predicate on the "weight" field.
func WeightNotIn(vs ...string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldNotIn(FieldWeight, vs...))
}

// WeightGT applies the GT predicate on the "weight" field.
func WeightGT(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldGT(FieldWeight, v))
}

// WeightGTE applies the GTE predicate on the "weight" field.
func WeightGTE(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldGTE(FieldWeight, v))
}

// WeightLT applies the LT predicate on the "weight" field.
func WeightLT(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldLT(FieldWeight, v))
}

// WeightLTE applies the LTE predicate on the "weight" field.
func WeightLTE(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldLTE(FieldWeight, v))
}

// WeightContains applies the Contains predicate on the "weight" field.
func WeightContains(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldContains(FieldWeight, v))
}

// WeightHasPrefix applies the HasPrefix predicate on the "weight" field.
func WeightHasPrefix(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldHasPrefix(FieldWeight, v))
}

// WeightHasSuffix applies the HasSuffix predicate on the "weight" field.
func WeightHasSuffix(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldHasSuffix(FieldWeight, v))
}

// WeightIsNil applies the IsNil predicate on the "weight" field.
func WeightIsNil() predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldIsNull(FieldWeight))
}

// WeightNotNil applies the NotNil predicate on the "weight" field.
func WeightNotNil() predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldNotNull(FieldWeight))
}

// WeightEqualFold applies the EqualFold predicate on the "weight" field.
func WeightEqualFold(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldEqualFold(FieldWeight, v))
}

// WeightContainsFold applies the ContainsFold predicate on the "weight" field.
func WeightContainsFold(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldContainsFold(FieldWeight, v))
}

// PackageTypeEQ applies the EQ predicate on the "package_type" field.
func PackageTypeEQ(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldEQ(FieldPackageType, v))
}

// PackageTypeNEQ applies the NEQ predicate on the "package_type" field.
func PackageTypeNEQ(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldNEQ(FieldPackageType, v))
}

// PackageTypeIn applies the In predicate on the "package_type" field.
func PackageTypeIn(vs ...string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldIn(FieldPackageType, vs...))
}

// PackageTypeNotIn applies the NotIn predicate on the "package_type" field.
func PackageTypeNotIn(vs ...string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldNotIn(FieldPackageType, vs...))
}

// PackageTypeGT applies the GT predicate on the "package_type" field.
func PackageTypeGT(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldGT(FieldPackageType, v))
}

// PackageTypeGTE applies the GTE predicate on the "package_type" field.
func PackageTypeGTE(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldGTE(FieldPackageType, v))
}

// PackageTypeLT applies the LT predicate on the "package_type" field.
func PackageTypeLT(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldLT(FieldPackageType, v))
}

// PackageTypeLTE applies the LTE predicate on the "package_type" field.
func PackageTypeLTE(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldLTE(FieldPackageType, v))
}

// PackageTypeContains applies the Contains predicate on the "package_type" field.
func PackageTypeContains(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldContains(FieldPackageType, v))
}

// PackageTypeHasPrefix applies the HasPrefix predicate on the "package_type" field.
func PackageTypeHasPrefix(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldHasPrefix(FieldPackageType, v))
}

// PackageTypeHasSuffix applies the HasSuffix predicate on the "package_type" field.
func PackageTypeHasSuffix(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldHasSuffix(FieldPackageType, v))
}

// PackageTypeIsNil applies the IsNil predicate on the "package_type" field.
func PackageTypeIsNil() predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldIsNull(FieldPackageType))
}

// PackageTypeNotNil applies the NotNil predicate on the "package_type" field.
func PackageTypeNotNil() predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldNotNull(FieldPackageType))
}

// PackageTypeEqualFold applies the EqualFold predicate on the "package_type" field.
func PackageTypeEqualFold(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldEqualFold(FieldPackageType, v))
}

// PackageTypeContainsFold applies the ContainsFold predicate on the "package_type" field.
func PackageTypeContainsFold(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldContainsFold(FieldPackageType, v))
}

// ProtectiveFilmEQ applies the EQ predicate on the "protective_film" field.
func ProtectiveFilmEQ(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldEQ(FieldProtectiveFilm, v))
}

// ProtectiveFilmNEQ applies the NEQ predicate on the "protective_film" field.
func ProtectiveFilmNEQ(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldNEQ(FieldProtectiveFilm, v))
}

// ProtectiveFilmIn applies the In predicate on the "protective_film" field.
func ProtectiveFilmIn(vs ...string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldIn(FieldProtectiveFilm, vs...))
}

// ProtectiveFilmNotIn applies the NotIn predicate on the "protective_film" field.
func ProtectiveFilmNotIn(vs ...string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldNotIn(FieldProtectiveFilm, vs...))
}

// ProtectiveFilmGT applies the GT predicate on the "protective_film" field.
func ProtectiveFilmGT(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldGT(FieldProtectiveFilm, v))
}

// ProtectiveFilmGTE applies the GTE predicate on the "protective_film" field.
func ProtectiveFilmGTE(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldGTE(FieldProtectiveFilm, v))
}

// ProtectiveFilmLT applies the LT predicate on the "protective_film" field.
func ProtectiveFilmLT(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldLT(FieldProtectiveFilm, v))
}

// ProtectiveFilmLTE applies the LTE predicate on the "protective_film" field.
func ProtectiveFilmLTE(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldLTE(FieldProtectiveFilm, v))
}

// ProtectiveFilmContains applies the Contains predicate on the "protective_film" field.
func ProtectiveFilmContains(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldContains(FieldProtectiveFilm, v))
}

// ProtectiveFilmHasPrefix applies the HasPrefix predicate on the "protective_film" field.
func ProtectiveFilmHasPrefix(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldHasPrefix(FieldProtectiveFilm, v))
}

// ProtectiveFilmHasSuffix applies the HasSuffix predicate on the "protective_film" field.
func ProtectiveFilmHasSuffix(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldHasSuffix(FieldProtectiveFilm, v))
}

// ProtectiveFilmIsNil applies the IsNil predicate on the "protective_film" field.
func ProtectiveFilmIsNil() predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldIsNull(FieldProtectiveFilm))
}

// ProtectiveFilmNotNil applies the NotNil predicate on the "protective_film" field.
func ProtectiveFilmNotNil() predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldNotNull(FieldProtectiveFilm))
}

// ProtectiveFilmEqualFold applies the EqualFold predicate on the "protective_film" field.
func ProtectiveFilmEqualFold(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldEqualFold(FieldProtectiveFilm, v))
}

// ProtectiveFilmContainsFold applies the ContainsFold predicate on the "protective_film" field.
func ProtectiveFilmContainsFold(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldContainsFold(FieldProtectiveFilm, v))
}

// QuantityPerPackEQ applies the EQ predicate on the "quantity_per_pack" field.
func QuantityPerPackEQ(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldEQ(FieldQuantityPerPack, v))
}

// QuantityPerPackNEQ applies the NEQ predicate on the "quantity_per_pack" field.
func QuantityPerPackNEQ(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldNEQ(FieldQuantityPerPack, v))
}

// QuantityPerPackIn applies the In predicate on the "quantity_per_pack" field.
func QuantityPerPackIn(vs ...string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldIn(FieldQuantityPerPack, vs...))
}

// QuantityPerPackNotIn applies the NotIn predicate on the "quantity_per_pack" field.
func QuantityPerPackNotIn(vs ...string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldNotIn(FieldQuantityPerPack, vs...))
}

// QuantityPerPackGT applies the GT predicate on the "quantity_per_pack" field.
func QuantityPerPackGT(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldGT(FieldQuantityPerPack, v))
}

// QuantityPerPackGTE applies the GTE predicate on the "quantity_per_pack" field.
func QuantityPerPackGTE(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldGTE(FieldQuantityPerPack, v))
}

// QuantityPerPackLT applies the LT predicate on the "quantity_per_pack" field.
func QuantityPerPackLT(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldLT(FieldQuantityPerPack, v))
}

// QuantityPerPackLTE applies the LTE predicate on the "quantity_per_pack" field.
func QuantityPerPackLTE(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldLTE(FieldQuantityPerPack, v))
}

// QuantityPerPackContains applies the Contains predicate on the "quantity_per_pack" field.
func QuantityPerPackContains(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldContains(FieldQuantityPerPack, v))
}

// QuantityPerPackHasPrefix applies the HasPrefix predicate on the "quantity_per_pack" field.
func QuantityPerPackHasPrefix(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldHasPrefix(FieldQuantityPerPack, v))
}

// QuantityPerPackHasSuffix applies the HasSuffix predicate on the "quantity_per_pack" field.
func QuantityPerPackHasSuffix(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldHasSuffix(FieldQuantityPerPack, v))
}

// QuantityPerPackIsNil applies the IsNil predicate on the "quantity_per_pack" field.
func QuantityPerPackIsNil() predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldIsNull(FieldQuantityPerPack))
}

// QuantityPerPackNotNil applies the NotNil predicate on the "quantity_per_pack" field.
func QuantityPerPackNotNil() predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldNotNull(FieldQuantityPerPack))
}

// QuantityPerPackEqualFold applies the EqualFold predicate on the "quantity_per_pack" field.
func QuantityPerPackEqualFold(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldEqualFold(FieldQuantityPerPack, v))
}

// QuantityPerPackContainsFold applies the ContainsFold predicate on the "quantity_per_pack" field.
func QuantityPerPackContainsFold(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldContainsFold(FieldQuantityPerPack, v))
}

// CasePackQuantityEQ applies the EQ predicate on the "case_pack_quantity" field.
func CasePackQuantityEQ(v int) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldEQ(FieldCasePackQuantity, v))
}

// CasePackQuantityNEQ applies the NEQ predicate on the "case_pack_quantity" field.
func CasePackQuantityNEQ(v int) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldNEQ(FieldCasePackQuantity, v))
}

// CasePackQuantityIn applies the In predicate on the "case_pack_quantity" field.
func CasePackQuantityIn(vs ...int) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldIn(FieldCasePackQuantity, vs...))
}

// CasePackQuantityNotIn applies the NotIn predicate on the "case_pack_quantity" field.
func CasePackQuantityNotIn(vs ...int) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldNotIn(FieldCasePackQuantity, vs...))
}

// CasePackQuantityGT applies the GT predicate on the "case_pack_quantity" field.
func CasePackQuantityGT(v int) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldGT(FieldCasePackQuantity, v))
}

// CasePackQuantityGTE applies the GTE predicate on the "case_pack_quantity" field.
func CasePackQuantityGTE(v int) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldGTE(FieldCasePackQuantity, v))
}

// CasePackQuantityLT applies the LT predicate on the "case_pack_quantity" field.
func CasePackQuantityLT(v int) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldLT(FieldCasePackQuantity, v))
}

// CasePackQuantityLTE applies the LTE predicate on the "case_pack_quantity" field.
func CasePackQuantityLTE(v int) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldLTE(FieldCasePackQuantity, v))
}

// CasePackQuantityIsNil applies the IsNil predicate on the "case_pack_quantity" field.
func CasePackQuantityIsNil() predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldIsNull(FieldCasePackQuantity))
}

// CasePackQuantityNotNil applies the NotNil predicate on the "case_pack_quantity" field.
func CasePackQuantityNotNil() predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldNotNull(FieldCasePackQuantity))
}

// InnerBoxGtinEQ applies the EQ predicate on the "inner_box_gtin" field.
func InnerBoxGtinEQ(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldEQ(FieldInnerBoxGtin, v))
}

// InnerBoxGtinNEQ applies the NEQ predicate on the "inner_box_gtin" field.
func InnerBoxGtinNEQ(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldNEQ(FieldInnerBoxGtin, v))
}

// InnerBoxGtinIn applies the In predicate on the "inner_box_gtin" field.
func InnerBoxGtinIn(vs ...string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldIn(FieldInnerBoxGtin, vs...))
}

// InnerBoxGtinNotIn applies the NotIn predicate on the "inner_box_gtin" field.
func InnerBoxGtinNotIn(vs ...string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldNotIn(FieldInnerBoxGtin, vs...))
}

// InnerBoxGtinGT applies the GT predicate on the "inner_box_gtin" field.
func InnerBoxGtinGT(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldGT(FieldInnerBoxGtin, v))
}

// InnerBoxGtinGTE applies the GTE predicate on the "inner_box_gtin" field.
func InnerBoxGtinGTE(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldGTE(FieldInnerBoxGtin, v))
}

// InnerBoxGtinLT applies the LT predicate on the "inner_box_gtin" field.
func InnerBoxGtinLT(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldLT(FieldInnerBoxGtin, v))
}

// InnerBoxGtinLTE applies the LTE predicate on the "inner_box_gtin" field.
func InnerBoxGtinLTE(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldLTE(FieldInnerBoxGtin, v))
}

// InnerBoxGtinContains applies the Contains predicate on the "inner_box_gtin" field.
func InnerBoxGtinContains(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldContains(FieldInnerBoxGtin, v))
}

// InnerBoxGtinHasPrefix applies the HasPrefix predicate on the "inner_box_gtin" field.
func InnerBoxGtinHasPrefix(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldHasPrefix(FieldInnerBoxGtin, v))
}

// InnerBoxGtinHasSuffix applies the HasSuffix predicate on the "inner_box_gtin" field.
func InnerBoxGtinHasSuffix(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldHasSuffix(FieldInnerBoxGtin, v))
}

// InnerBoxGtinIsNil applies the IsNil predicate on the "inner_box_gtin" field.
func InnerBoxGtinIsNil() predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldIsNull(FieldInnerBoxGtin))
}

// InnerBoxGtinNotNil applies the NotNil predicate on the "inner_box_gtin" field.
func InnerBoxGtinNotNil() predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldNotNull(FieldInnerBoxGtin))
}

// InnerBoxGtinEqualFold applies the EqualFold predicate on the "inner_box_gtin" field.
func InnerBoxGtinEqualFold(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldEqualFold(FieldInnerBoxGtin, v))
}

// InnerBoxGtinContainsFold applies the ContainsFold predicate on the "inner_box_gtin" field.
func InnerBoxGtinContainsFold(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldContainsFold(FieldInnerBoxGtin, v))
}

// OuterBoxGtinEQ applies the EQ predicate on the "outer_box_gtin" field.
func OuterBoxGtinEQ(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldEQ(FieldOuterBoxGtin, v))
}

// OuterBoxGtinNEQ applies the NEQ predicate on the "outer_box_gtin" field.
func OuterBoxGtinNEQ(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldNEQ(FieldOuterBoxGtin, v))
}

// OuterBoxGtinIn applies the In predicate on the "outer_box_gtin" field.
func OuterBoxGtinIn(vs ...string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldIn(FieldOuterBoxGtin, vs...))
}

// OuterBoxGtinNotIn applies the NotIn predicate on the "outer_box_gtin" field.
func OuterBoxGtinNotIn(vs ...string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldNotIn(FieldOuterBoxGtin, vs...))
}

// OuterBoxGtinGT applies the GT predicate on the "outer_box_gtin" field.
func OuterBoxGtinGT(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldGT(FieldOuterBoxGtin, v))
}

// OuterBoxGtinGTE applies the GTE predicate on the "outer_box_gtin" field.
func OuterBoxGtinGTE(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldGTE(FieldOuterBoxGtin, v))
}

// OuterBoxGtinLT applies the LT predicate on the "outer_box_gtin" field.
func OuterBoxGtinLT(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldLT(FieldOuterBoxGtin, v))
}

// OuterBoxGtinLTE applies the LTE predicate on the "outer_box_gtin" field.
func OuterBoxGtinLTE(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldLTE(FieldOuterBoxGtin, v))
}

// OuterBoxGtinContains applies the Contains predicate on the "outer_box_gtin" field.
func OuterBoxGtinContains(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldContains(FieldOuterBoxGtin, v))
}

// OuterBoxGtinHasPrefix applies the HasPrefix predicate on the "outer_box_gtin" field.
func OuterBoxGtinHasPrefix(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldHasPrefix(FieldOuterBoxGtin, v))
}

// OuterBoxGtinHasSuffix applies the HasSuffix predicate on the "outer_box_gtin" field.
func OuterBoxGtinHasSuffix(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldHasSuffix(FieldOuterBoxGtin, v))
}

// OuterBoxGtinIsNil applies the IsNil predicate on the "outer_box_gtin" field.
func OuterBoxGtinIsNil() predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldIsNull(FieldOuterBoxGtin))
}

// OuterBoxGtinNotNil applies the NotNil predicate on the "outer_box_gtin" field.
func OuterBoxGtinNotNil() predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldNotNull(FieldOuterBoxGtin))
}

// OuterBoxGtinEqualFold applies the EqualFold predicate on the "outer_box_gtin" field.
func OuterBoxGtinEqualFold(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldEqualFold(FieldOuterBoxGtin, v))
}

// OuterBoxGtinContainsFold applies the ContainsFold predicate on the "outer_box_gtin" field.
func OuterBoxGtinContainsFold(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldContainsFold(FieldOuterBoxGtin, v))
}

// CategoryEQ applies the EQ predicate on the "category" field.
func CategoryEQ(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldEQ(FieldCategory, v))
}

// CategoryNEQ applies the NEQ predicate on the "category" field.
func CategoryNEQ(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldNEQ(FieldCategory, v))
}

// CategoryIn applies the In predicate on the "category" field.
func CategoryIn(vs ...string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldIn(FieldCategory, vs...))
}

// CategoryNotIn applies the NotIn predicate on the "category" field.
func CategoryNotIn(vs ...string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldNotIn(FieldCategory, vs...))
}

// CategoryGT applies the GT predicate on the "category" field.
func CategoryGT(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldGT(FieldCategory, v))
}

// CategoryGTE applies the GTE predicate on the "category" field.
func CategoryGTE(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldGTE(FieldCategory, v))
}

// CategoryLT applies the LT predicate on the "category" field.
func CategoryLT(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldLT(FieldCategory, v))
}

// CategoryLTE applies the LTE predicate on the "category" field.
func CategoryLTE(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldLTE(FieldCategory, v))
}

// CategoryContains applies the Contains predicate on the "category" field.
func CategoryContains(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldContains(FieldCategory, v))
}

// CategoryHasPrefix applies the HasPrefix predicate on the "category" field.
func CategoryHasPrefix(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldHasPrefix(FieldCategory, v))
}

// CategoryHasSuffix applies the HasSuffix predicate on the "category" field.
func CategoryHasSuffix(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldHasSuffix(FieldCategory, v))
}

// CategoryIsNil applies the IsNil predicate on the "category" field.
func CategoryIsNil() predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldIsNull(FieldCategory))
}

// CategoryNotNil applies the NotNil predicate on the "category" field.
func CategoryNotNil() predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldNotNull(FieldCategory))
}

// CategoryEqualFold applies the EqualFold predicate on the "category" field.
func CategoryEqualFold(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldEqualFold(FieldCategory, v))
}

// CategoryContainsFold applies the ContainsFold predicate on the "category" field.
func CategoryContainsFold(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldContainsFold(FieldCategory, v))
}

// MajorCategoryEQ applies the EQ predicate on the "major_category" field.
func MajorCategoryEQ(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldEQ(FieldMajorCategory, v))
}

// MajorCategoryNEQ applies the NEQ predicate on the "major_category" field.
func MajorCategoryNEQ(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldNEQ(FieldMajorCategory, v))
}

// MajorCategoryIn applies the In predicate on the "major_category" field.
func MajorCategoryIn(vs ...string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldIn(FieldMajorCategory, vs...))
}

// MajorCategoryNotIn applies the NotIn predicate on the "major_category" field.
func MajorCategoryNotIn(vs ...string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldNotIn(FieldMajorCategory, vs...))
}

// MajorCategoryGT applies the GT predicate on the "major_category" field.
func MajorCategoryGT(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldGT(FieldMajorCategory, v))
}

// MajorCategoryGTE applies the GTE predicate on the "major_category" field.
func MajorCategoryGTE(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldGTE(FieldMajorCategory, v))
}

// MajorCategoryLT applies the LT predicate on the "major_category" field.
func MajorCategoryLT(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldLT(FieldMajorCategory, v))
}

// MajorCategoryLTE applies the LTE predicate on the "major_category" field.
func MajorCategoryLTE(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldLTE(FieldMajorCategory, v))
}

// MajorCategoryContains applies the Contains predicate on the "major_category" field.
func MajorCategoryContains(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldContains(FieldMajorCategory, v))
}

// MajorCategoryHasPrefix applies the HasPrefix predicate on the "major_category" field.
func MajorCategoryHasPrefix(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldHasPrefix(FieldMajorCategory, v))
}

// MajorCategoryHasSuffix applies the HasSuffix predicate on the "major_category" field.
func MajorCategoryHasSuffix(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldHasSuffix(FieldMajorCategory, v))
}

// MajorCategoryIsNil applies the IsNil predicate on the "major_category" field.
func MajorCategoryIsNil() predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldIsNull(FieldMajorCategory))
}

// MajorCategoryNotNil applies the NotNil predicate on the "major_category" field.
func MajorCategoryNotNil() predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldNotNull(FieldMajorCategory))
}

// MajorCategoryEqualFold applies the EqualFold predicate on the "major_category" field.
func MajorCategoryEqualFold(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldEqualFold(FieldMajorCategory, v))
}

// MajorCategoryContainsFold applies the ContainsFold predicate on the "major_category" field.
func MajorCategoryContainsFold(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldContainsFold(FieldMajorCategory, v))
}

// MinorCategoryEQ applies the EQ predicate on the "minor_category" field.
func MinorCategoryEQ(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldEQ(FieldMinorCategory, v))
}

// MinorCategoryNEQ applies the NEQ predicate on the "minor_category" field.
func MinorCategoryNEQ(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldNEQ(FieldMinorCategory, v))
}

// MinorCategoryIn applies the In predicate on the "minor_category" field.
func MinorCategoryIn(vs ...string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldIn(FieldMinorCategory, vs...))
}

// MinorCategoryNotIn applies the NotIn predicate on the "minor_category" field.
func MinorCategoryNotIn(vs ...string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldNotIn(FieldMinorCategory, vs...))
}

// MinorCategoryGT applies the GT predicate on the "minor_category" field.
func MinorCategoryGT(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldGT(FieldMinorCategory, v))
}

// MinorCategoryGTE applies the GTE predicate on the "minor_category" field.
func MinorCategoryGTE(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldGTE(FieldMinorCategory, v))
}

// MinorCategoryLT applies the LT predicate on the "minor_category" field.
func MinorCategoryLT(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldLT(FieldMinorCategory, v))
}

// MinorCategoryLTE applies the LTE predicate on the "minor_category" field.
func MinorCategoryLTE(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldLTE(FieldMinorCategory, v))
}

// MinorCategoryContains applies the Contains predicate on the "minor_category" field.
func MinorCategoryContains(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldContains(FieldMinorCategory, v))
}

// MinorCategoryHasPrefix applies the HasPrefix predicate on the "minor_category" field.
func MinorCategoryHasPrefix(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldHasPrefix(FieldMinorCategory, v))
}

// MinorCategoryHasSuffix applies the HasSuffix predicate on the "minor_category" field.
func MinorCategoryHasSuffix(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldHasSuffix(FieldMinorCategory, v))
}

// MinorCategoryIsNil applies the IsNil predicate on the "minor_category" field.
func MinorCategoryIsNil() predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldIsNull(FieldMinorCategory))
}

// MinorCategoryNotNil applies the NotNil predicate on the "minor_category" field.
func MinorCategoryNotNil() predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldNotNull(FieldMinorCategory))
}

// MinorCategoryEqualFold applies the EqualFold predicate on the "minor_category" field.
func MinorCategoryEqualFold(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldEqualFold(FieldMinorCategory, v))
}

// MinorCategoryContainsFold applies the ContainsFold predicate on the "minor_category" field.
func MinorCategoryContainsFold(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldContainsFold(FieldMinorCategory, v))
}

// GenreNameEQ applies the EQ predicate on the "genre_name" field.
func GenreNameEQ(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldEQ(FieldGenreName, v))
}

// GenreNameNEQ applies the NEQ predicate on the "genre_name" field.
func GenreNameNEQ(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldNEQ(FieldGenreName, v))
}

// GenreNameIn applies the In predicate on the "genre_name" field.
func GenreNameIn(vs ...string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldIn(FieldGenreName, vs...))
}

// GenreNameNotIn applies the NotIn predicate on the "genre_name" field.
func GenreNameNotIn(vs ...string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldNotIn(FieldGenreName, vs...))
}

// GenreNameGT applies the GT predicate on the "genre_name" field.
func GenreNameGT(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldGT(FieldGenreName, v))
}

// GenreNameGTE applies the GTE predicate on the "genre_name" field.
func GenreNameGTE(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldGTE(FieldGenreName, v))
}

// GenreNameLT applies the LT predicate on the "genre_name" field.
func GenreNameLT(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldLT(FieldGenreName, v))
}

// GenreNameLTE applies the LTE predicate on the "genre_name" field.
func GenreNameLTE(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldLTE(FieldGenreName, v))
}

// GenreNameContains applies the Contains predicate on the "genre_name" field.
func GenreNameContains(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldContains(FieldGenreName, v))
}

// GenreNameHasPrefix applies the HasPrefix predicate on the "genre_name" field.
func GenreNameHasPrefix(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldHasPrefix(FieldGenreName, v))
}

// GenreNameHasSuffix applies the HasSuffix predicate on the "genre_name" field.
func GenreNameHasSuffix(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldHasSuffix(FieldGenreName, v))
}

// GenreNameIsNil applies the IsNil predicate on the "genre_name" field.
func GenreNameIsNil() predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldIsNull(FieldGenreName))
}

// GenreNameNotNil applies the NotNil predicate on the "genre_name" field.
func GenreNameNotNil() predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldNotNull(FieldGenreName))
}

// GenreNameEqualFold applies the EqualFold predicate on the "genre_name" field.
func GenreNameEqualFold(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldEqualFold(FieldGenreName, v))
}

// GenreNameContainsFold applies the ContainsFold predicate on the "genre_name" field.
func GenreNameContainsFold(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldContainsFold(FieldGenreName, v))
}

// ClassificationEQ applies the EQ predicate on the "classification" field.
func ClassificationEQ(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldEQ(FieldClassification, v))
}

// ClassificationNEQ applies the NEQ predicate on the "classification" field.
func ClassificationNEQ(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldNEQ(FieldClassification, v))
}

// ClassificationIn applies the In predicate on the "classification" field.
func ClassificationIn(vs ...string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldIn(FieldClassification, vs...))
}

// ClassificationNotIn applies the NotIn predicate on the "classification" field.
func ClassificationNotIn(vs ...string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldNotIn(FieldClassification, vs...))
}

// ClassificationGT applies the GT predicate on the "classification" field.
func ClassificationGT(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldGT(FieldClassification, v))
}

// ClassificationGTE applies the GTE predicate on the "classification" field.
func ClassificationGTE(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldGTE(FieldClassification, v))
}

// ClassificationLT applies the LT predicate on the "classification" field.
func ClassificationLT(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldLT(FieldClassification, v))
}

// ClassificationLTE applies the LTE predicate on the "classification" field.
func ClassificationLTE(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldLTE(FieldClassification, v))
}

// ClassificationContains applies the Contains predicate on the "classification" field.
func ClassificationContains(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldContains(FieldClassification, v))
}

// ClassificationHasPrefix applies the HasPrefix predicate on the "classification" field.
func ClassificationHasPrefix(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldHasPrefix(FieldClassification, v))
}

// ClassificationHasSuffix applies the HasSuffix predicate on the "classification" field.
func ClassificationHasSuffix(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldHasSuffix(FieldClassification, v))
}

// ClassificationIsNil applies the IsNil predicate on the "classification" field.
func ClassificationIsNil() predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldIsNull(FieldClassification))
}

// ClassificationNotNil applies the NotNil predicate on the "classification" field.
func ClassificationNotNil() predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldNotNull(FieldClassification))
}

// ClassificationEqualFold applies the EqualFold predicate on the "classification" field.
func ClassificationEqualFold(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldEqualFold(FieldClassification, v))
}

// ClassificationContainsFold applies the ContainsFold predicate on the "classification" field.
func ClassificationContainsFold(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldContainsFold(FieldClassification, v))
}

// InStoreEQ applies the EQ predicate on the "in_store" field.
func InStoreEQ(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldEQ(FieldInStore, v))
}

// InStoreNEQ applies the NEQ predicate on the "in_store" field.
func InStoreNEQ(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldNEQ(FieldInStore, v))
}

// InStoreIn applies the In predicate on the "in_store" field.
func InStoreIn(vs ...string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldIn(FieldInStore, vs...))
}

// InStoreNotIn applies the NotIn predicate on the "in_store" field.
func InStoreNotIn(vs ...string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldNotIn(FieldInStore, vs...))
}

// InStoreGT applies the GT predicate on the "in_store" field.
func InStoreGT(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldGT(FieldInStore, v))
}

// InStoreGTE applies the GTE predicate on the "in_store" field.
func InStoreGTE(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldGTE(FieldInStore, v))
}

// InStoreLT applies the LT predicate on the "in_store" field.
func InStoreLT(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldLT(FieldInStore, v))
}

// InStoreLTE applies the LTE predicate on the "in_store" field.
func InStoreLTE(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldLTE(FieldInStore, v))
}

// InStoreContains applies the Contains predicate on the "in_store" field.
func InStoreContains(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldContains(FieldInStore, v))
}

// InStoreHasPrefix applies the HasPrefix predicate on the "in_store" field.
func InStoreHasPrefix(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldHasPrefix(FieldInStore, v))
}

// InStoreHasSuffix applies the HasSuffix predicate on the "in_store" field.
func InStoreHasSuffix(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldHasSuffix(FieldInStore, v))
}

// InStoreIsNil applies the IsNil predicate on the "in_store" field.
func InStoreIsNil() predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldIsNull(FieldInStore))
}

// InStoreNotNil applies the NotNil predicate on the "in_store" field.
func InStoreNotNil() predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldNotNull(FieldInStore))
}

// InStoreEqualFold applies the EqualFold predicate on the "in_store" field.
func InStoreEqualFold(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldEqualFold(FieldInStore, v))
}

// InStoreContainsFold applies the ContainsFold predicate on the "in_store" field.
func InStoreContainsFold(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldContainsFold(FieldInStore, v))
}

// LotNumberEQ applies the EQ predicate on the "lot_number" field.
func LotNumberEQ(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldEQ(FieldLotNumber, v))
}

// LotNumberNEQ applies the NEQ predicate on the "lot_number" field.
func LotNumberNEQ(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldNEQ(FieldLotNumber, v))
}

// LotNumberIn applies the In predicate on the "lot_number" field.
func LotNumberIn(vs ...string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldIn(FieldLotNumber, vs...))
}

// LotNumberNotIn applies the NotIn predicate on the "lot_number" field.
func LotNumberNotIn(vs ...string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldNotIn(FieldLotNumber, vs...))
}

// LotNumberGT applies the GT predicate on the "lot_number" field.
func LotNumberGT(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldGT(FieldLotNumber, v))
}

// LotNumberGTE applies the GTE predicate on the "lot_number" field.
func LotNumberGTE(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldGTE(FieldLotNumber, v))
}

// LotNumberLT applies the LT predicate on the "lot_number" field.
func LotNumberLT(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldLT(FieldLotNumber, v))
}

// LotNumberLTE applies the LTE predicate on the "lot_number" field.
func LotNumberLTE(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldLTE(FieldLotNumber, v))
}

// LotNumberContains applies the Contains predicate on the "lot_number" field.
func LotNumberContains(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldContains(FieldLotNumber, v))
}

// LotNumberHasPrefix applies the HasPrefix predicate on the "lot_number" field.
func LotNumberHasPrefix(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldHasPrefix(FieldLotNumber, v))
}

// LotNumberHasSuffix applies the HasSuffix predicate on the "lot_number" field.
func LotNumberHasSuffix(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldHasSuffix(FieldLotNumber, v))
}

// LotNumberIsNil applies the IsNil predicate on the "lot_number" field.
func LotNumberIsNil() predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldIsNull(FieldLotNumber))
}

// LotNumberNotNil applies the NotNil predicate on the "lot_number" field.
func LotNumberNotNil() predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldNotNull(FieldLotNumber))
}

// LotNumberEqualFold applies the EqualFold predicate on the "lot_number" field.
func LotNumberEqualFold(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldEqualFold(FieldLotNumber, v))
}

// LotNumberContainsFold applies the ContainsFold predicate on the "lot_number" field.
func LotNumberContainsFold(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldContainsFold(FieldLotNumber, v))
}

// ColorEQ applies the EQ predicate on the "color" field.
func ColorEQ(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldEQ(FieldColor, v))
}

// ColorNEQ applies the NEQ predicate on the "color" field.
func ColorNEQ(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldNEQ(FieldColor, v))
}

// ColorIn applies the In predicate on the "color" field.
func ColorIn(vs ...string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldIn(FieldColor, vs...))
}

// ColorNotIn applies the NotIn predicate on the "color" field.
func ColorNotIn(vs ...string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldNotIn(FieldColor, vs...))
}

// ColorGT applies the GT predicate on the "color" field.
func ColorGT(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldGT(FieldColor, v))
}

// ColorGTE applies the GTE predicate on the "color" field.
func ColorGTE(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldGTE(FieldColor, v))
}

// ColorLT applies the LT predicate on the "color" field.
func ColorLT(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldLT(FieldColor, v))
}

// ColorLTE applies the LTE predicate on the "color" field.
func ColorLTE(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldLTE(FieldColor, v))
}

// ColorContains applies the Contains predicate on the "color" field.
func ColorContains(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldContains(FieldColor, v))
}

// ColorHasPrefix applies the HasPrefix predicate on the "color" field.
func ColorHasPrefix(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldHasPrefix(FieldColor, v))
}

// ColorHasSuffix applies the HasSuffix predicate on the "color" field.
func ColorHasSuffix(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldHasSuffix(FieldColor, v))
}

// ColorIsNil applies the IsNil predicate on the "color" field.
func ColorIsNil() predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldIsNull(FieldColor))
}

// ColorNotNil applies the NotNil predicate on the "color" field.
func ColorNotNil() predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldNotNull(FieldColor))
}

// ColorEqualFold applies the EqualFold predicate on the "color" field.
func ColorEqualFold(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldEqualFold(FieldColor, v))
}

// ColorContainsFold applies the ContainsFold predicate on the "color" field.
func ColorContainsFold(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldContainsFold(FieldColor, v))
}

// MaterialEQ applies the EQ predicate on the "material" field.
func MaterialEQ(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldEQ(FieldMaterial, v))
}

// MaterialNEQ applies the NEQ predicate on the "material" field.
func MaterialNEQ(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldNEQ(FieldMaterial, v))
}

// MaterialIn applies the In predicate on the "material" field.
func MaterialIn(vs ...string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldIn(FieldMaterial, vs...))
}

// MaterialNotIn applies the NotIn predicate on the "material" field.
func MaterialNotIn(vs ...string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldNotIn(FieldMaterial, vs...))
}

// MaterialGT applies the GT predicate on the "material" field.
func MaterialGT(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldGT(FieldMaterial, v))
}

// MaterialGTE applies the GTE predicate on the "material" field.
func MaterialGTE(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldGTE(FieldMaterial, v))
}

// MaterialLT applies the LT predicate on the "material" field.
func MaterialLT(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldLT(FieldMaterial, v))
}

// MaterialLTE applies the LTE predicate on the "material" field.
func MaterialLTE(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldLTE(FieldMaterial, v))
}

// MaterialContains applies the Contains predicate on the "material" field.
func MaterialContains(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldContains(FieldMaterial, v))
}

// MaterialHasPrefix applies the HasPrefix predicate on the "material" field.
func MaterialHasPrefix(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldHasPrefix(FieldMaterial, v))
}

// MaterialHasSuffix applies the HasSuffix predicate on the "material" field.
func MaterialHasSuffix(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldHasSuffix(FieldMaterial, v))
}

// MaterialIsNil applies the IsNil predicate on the "material" field.
func MaterialIsNil() predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldIsNull(FieldMaterial))
}

// MaterialNotNil applies the NotNil predicate on the "material" field.
func MaterialNotNil() predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldNotNull(FieldMaterial))
}

// MaterialEqualFold applies the EqualFold predicate on the "material" field.
func MaterialEqualFold(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldEqualFold(FieldMaterial, v))
}

// MaterialContainsFold applies the ContainsFold predicate on the "material" field.
func MaterialContainsFold(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldContainsFold(FieldMaterial, v))
}

// OriginEQ applies the EQ predicate on the "origin" field.
func OriginEQ(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldEQ(FieldOrigin, v))
}

// OriginNEQ applies the NEQ predicate on the "origin" field.
func OriginNEQ(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldNEQ(FieldOrigin, v))
}

// OriginIn applies the In predicate on the "origin" field.
func OriginIn(vs ...string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldIn(FieldOrigin, vs...))
}

// OriginNotIn applies the NotIn predicate on the "origin" field.
func OriginNotIn(vs ...string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldNotIn(FieldOrigin, vs...))
}

// OriginGT applies the GT predicate on the "origin" field.
func OriginGT(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldGT(FieldOrigin, v))
}

// OriginGTE applies the GTE predicate on the "origin" field.
func OriginGTE(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldGTE(FieldOrigin, v))
}

// OriginLT applies the LT predicate on the "origin" field.
func OriginLT(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldLT(FieldOrigin, v))
}

// OriginLTE applies the LTE predicate on the "origin" field.
func OriginLTE(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldLTE(FieldOrigin, v))
}

// OriginContains applies the Contains predicate on the "origin" field.
func OriginContains(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldContains(FieldOrigin, v))
}

// OriginHasPrefix applies the HasPrefix predicate on the "origin" field.
func OriginHasPrefix(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldHasPrefix(FieldOrigin, v))
}

// OriginHasSuffix applies the HasSuffix predicate on the "origin" field.
func OriginHasSuffix(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldHasSuffix(FieldOrigin, v))
}

// OriginIsNil applies the IsNil predicate on the "origin" field.
func OriginIsNil() predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldIsNull(FieldOrigin))
}

// OriginNotNil applies the NotNil predicate on the "origin" field.
func OriginNotNil() predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldNotNull(FieldOrigin))
}

// OriginEqualFold applies the EqualFold predicate on the "origin" field.
func OriginEqualFold(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldEqualFold(FieldOrigin, v))
}

// OriginContainsFold applies the ContainsFold predicate on the "origin" field.
func OriginContainsFold(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldContainsFold(FieldOrigin, v))
}

// CountryOfOriginEQ applies the EQ predicate on the "country_of_origin" field.
func CountryOfOriginEQ(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldEQ(FieldCountryOfOrigin, v))
}

// CountryOfOriginNEQ applies the NEQ predicate on the "country_of_origin" field.
func CountryOfOriginNEQ(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldNEQ(FieldCountryOfOrigin, v))
}

// CountryOfOriginIn applies the In predicate on the "country_of_origin" field.
func CountryOfOriginIn(vs ...string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldIn(FieldCountryOfOrigin, vs...))
}

// CountryOfOriginNotIn applies the NotIn predicate on the "country_of_origin" field.
func CountryOfOriginNotIn(vs ...string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldNotIn(FieldCountryOfOrigin, vs...))
}

// CountryOfOriginGT applies the GT predicate on the "country_of_origin" field.
func CountryOfOriginGT(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldGT(FieldCountryOfOrigin, v))
}

// CountryOfOriginGTE applies the GTE predicate on the "country_of_origin" field.
func CountryOfOriginGTE(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldGTE(FieldCountryOfOrigin, v))
}

// CountryOfOriginLT applies the LT predicate on the "country_of_origin" field.
func CountryOfOriginLT(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldLT(FieldCountryOfOrigin, v))
}

// CountryOfOriginLTE applies the LTE predicate on the "country_of_origin" field.
func CountryOfOriginLTE(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldLTE(FieldCountryOfOrigin, v))
}

// CountryOfOriginContains applies the Contains predicate on the "country_of_origin" field.
func CountryOfOriginContains(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldContains(FieldCountryOfOrigin, v))
}

// CountryOfOriginHasPrefix applies the HasPrefix predicate on the "country_of_origin" field.
func CountryOfOriginHasPrefix(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldHasPrefix(FieldCountryOfOrigin, v))
}

// CountryOfOriginHasSuffix applies the HasSuffix predicate on the "country_of_origin" field.
func CountryOfOriginHasSuffix(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldHasSuffix(FieldCountryOfOrigin, v))
}

// CountryOfOriginIsNil applies the IsNil predicate on the "country_of_origin" field.
func CountryOfOriginIsNil() predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldIsNull(FieldCountryOfOrigin))
}

// CountryOfOriginNotNil applies the NotNil predicate on the "country_of_origin" field.
func CountryOfOriginNotNil() predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldNotNull(FieldCountryOfOrigin))
}

// CountryOfOriginEqualFold applies the EqualFold predicate on the "country_of_origin" field.
func CountryOfOriginEqualFold(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldEqualFold(FieldCountryOfOrigin, v))
}

// CountryOfOriginContainsFold applies the ContainsFold predicate on the "country_of_origin" field.
func CountryOfOriginContainsFold(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldContainsFold(FieldCountryOfOrigin, v))
}

// TargetAgeEQ applies the EQ predicate on the "target_age" field.
func TargetAgeEQ(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldEQ(FieldTargetAge, v))
}

// TargetAgeNEQ applies the NEQ predicate on the "target_age" field.
func TargetAgeNEQ(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldNEQ(FieldTargetAge, v))
}

// TargetAgeIn applies the In predicate on the "target_age" field.
func TargetAgeIn(vs ...string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldIn(FieldTargetAge, vs...))
}

// TargetAgeNotIn applies the NotIn predicate on the "target_age" field.
func TargetAgeNotIn(vs ...string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldNotIn(FieldTargetAge, vs...))
}

// TargetAgeGT applies the GT predicate on the "target_age" field.
func TargetAgeGT(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldGT(FieldTargetAge, v))
}

// TargetAgeGTE applies the GTE predicate on the "target_age" field.
func TargetAgeGTE(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldGTE(FieldTargetAge, v))
}

// TargetAgeLT applies the LT predicate on the "target_age" field.
func TargetAgeLT(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldLT(FieldTargetAge, v))
}

// TargetAgeLTE applies the LTE predicate on the "target_age" field.
func TargetAgeLTE(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldLTE(FieldTargetAge, v))
}

// TargetAgeContains applies the Contains predicate on the "target_age" field.
func TargetAgeContains(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldContains(FieldTargetAge, v))
}

// TargetAgeHasPrefix applies the HasPrefix predicate on the "target_age" field.
func TargetAgeHasPrefix(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldHasPrefix(FieldTargetAge, v))
}

// TargetAgeHasSuffix applies the HasSuffix predicate on the "target_age" field.
func TargetAgeHasSuffix(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldHasSuffix(FieldTargetAge, v))
}

// TargetAgeIsNil applies the IsNil predicate on the "target_age" field.
func TargetAgeIsNil() predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldIsNull(FieldTargetAge))
}

// TargetAgeNotNil applies the NotNil predicate on the "target_age" field.
func TargetAgeNotNil() predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldNotNull(FieldTargetAge))
}

// TargetAgeEqualFold applies the EqualFold predicate on the "target_age" field.
func TargetAgeEqualFold(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldEqualFold(FieldTargetAge, v))
}

// TargetAgeContainsFold applies the ContainsFold predicate on the "target_age" field.
func TargetAgeContainsFold(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldContainsFold(FieldTargetAge, v))
}

// WarrantyEQ applies the EQ predicate on the "warranty" field.
func WarrantyEQ(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldEQ(FieldWarranty, v))
}

// WarrantyNEQ applies the NEQ predicate on the "warranty" field.
func WarrantyNEQ(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldNEQ(FieldWarranty, v))
}

// WarrantyIn applies the In predicate on the "warranty" field.
func WarrantyIn(vs ...string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldIn(FieldWarranty, vs...))
}

// WarrantyNotIn applies the NotIn predicate on the "warranty" field.
func WarrantyNotIn(vs ...string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldNotIn(FieldWarranty, vs...))
}

// WarrantyGT applies the GT predicate on the "warranty" field.
func WarrantyGT(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldGT(FieldWarranty, v))
}

// WarrantyGTE applies the GTE predicate on the "warranty" field.
func WarrantyGTE(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldGTE(FieldWarranty, v))
}

// WarrantyLT applies the LT predicate on the "warranty" field.
func WarrantyLT(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldLT(FieldWarranty, v))
}

// WarrantyLTE applies the LTE predicate on the "warranty" field.
func WarrantyLTE(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldLTE(FieldWarranty, v))
}

// WarrantyContains applies the Contains predicate on the "warranty" field.
func WarrantyContains(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldContains(FieldWarranty, v))
}

// WarrantyHasPrefix applies the HasPrefix predicate on the "warranty" field.
func WarrantyHasPrefix(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldHasPrefix(FieldWarranty, v))
}

// WarrantyHasSuffix applies the HasSuffix predicate on the "warranty" field.
func WarrantyHasSuffix(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldHasSuffix(FieldWarranty, v))
}

// WarrantyIsNil applies the IsNil predicate on the "warranty" field.
func WarrantyIsNil() predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldIsNull(FieldWarranty))
}

// WarrantyNotNil applies the NotNil predicate on the "warranty" field.
func WarrantyNotNil() predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldNotNull(FieldWarranty))
}

// WarrantyEqualFold applies the EqualFold predicate on the "warranty" field.
func WarrantyEqualFold(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldEqualFold(FieldWarranty, v))
}

// WarrantyContainsFold applies the ContainsFold predicate on the "warranty" field.
func WarrantyContainsFold(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldContainsFold(FieldWarranty, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionIsNil applies the IsNil predicate on the "description" field.
func DescriptionIsNil() predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldIsNull(FieldDescription))
}

// DescriptionNotNil applies the NotNil predicate on the "description" field.
func DescriptionNotNil() predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldNotNull(FieldDescription))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldContainsFold(FieldDescription, v))
}

// ImageUrlsIsNil applies the IsNil predicate on the "image_urls" field.
func ImageUrlsIsNil() predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldIsNull(FieldImageUrls))
}

// ImageUrlsNotNil applies the NotNil predicate on the "image_urls" field.
func ImageUrlsNotNil() predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldNotNull(FieldImageUrls))
}

// RawTextEQ applies the EQ predicate on the "raw_text" field.
func RawTextEQ(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldEQ(FieldRawText, v))
}

// RawTextNEQ applies the NEQ predicate on the "raw_text" field.
func RawTextNEQ(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldNEQ(FieldRawText, v))
}

// RawTextIn applies the In predicate on the "raw_text" field.
func RawTextIn(vs ...string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldIn(FieldRawText, vs...))
}

// RawTextNotIn applies the NotIn predicate on the "raw_text" field.
func RawTextNotIn(vs ...string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldNotIn(FieldRawText, vs...))
}

// RawTextGT applies the GT predicate on the "raw_text" field.
func RawTextGT(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldGT(FieldRawText, v))
}

// RawTextGTE applies the GTE predicate on the "raw_text" field.
func RawTextGTE(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldGTE(FieldRawText, v))
}

// RawTextLT applies the LT predicate on the "raw_text" field.
func RawTextLT(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldLT(FieldRawText, v))
}

// RawTextLTE applies the LTE predicate on the "raw_text" field.
func RawTextLTE(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldLTE(FieldRawText, v))
}

// RawTextContains applies the Contains predicate on the "raw_text" field.
func RawTextContains(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldContains(FieldRawText, v))
}

// RawTextHasPrefix applies the HasPrefix predicate on the "raw_text" field.
func RawTextHasPrefix(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldHasPrefix(FieldRawText, v))
}

// RawTextHasSuffix applies the HasSuffix predicate on the "raw_text" field.
func RawTextHasSuffix(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldHasSuffix(FieldRawText, v))
}

// RawTextIsNil applies the IsNil predicate on the "raw_text" field.
func RawTextIsNil() predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldIsNull(FieldRawText))
}

// RawTextNotNil applies the NotNil predicate on the "raw_text" field.
func RawTextNotNil() predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldNotNull(FieldRawText))
}

// RawTextEqualFold applies the EqualFold predicate on the "raw_text" field.
func RawTextEqualFold(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldEqualFold(FieldRawText, v))
}

// RawTextContainsFold applies the ContainsFold predicate on the "raw_text" field.
func RawTextContainsFold(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldContainsFold(FieldRawText, v))
}

// SectionTextEQ applies the EQ predicate on the "section_text" field.
func SectionTextEQ(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldEQ(FieldSectionText, v))
}

// SectionTextNEQ applies the NEQ predicate on the "section_text" field.
func SectionTextNEQ(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldNEQ(FieldSectionText, v))
}

// SectionTextIn applies the In predicate on the "section_text" field.
func SectionTextIn(vs ...string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldIn(FieldSectionText, vs...))
}

// SectionTextNotIn applies the NotIn predicate on the "section_text" field.
func SectionTextNotIn(vs ...string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldNotIn(FieldSectionText, vs...))
}

// SectionTextGT applies the GT predicate on the "section_text" field.
func SectionTextGT(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldGT(FieldSectionText, v))
}

// SectionTextGTE applies the GTE predicate on the "section_text" field.
func SectionTextGTE(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldGTE(FieldSectionText, v))
}

// SectionTextLT applies the LT predicate on the "section_text" field.
func SectionTextLT(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldLT(FieldSectionText, v))
}

// SectionTextLTE applies the LTE predicate on the "section_text" field.
func SectionTextLTE(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldLTE(FieldSectionText, v))
}

// SectionTextContains applies the Contains predicate on the "section_text" field.
func SectionTextContains(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldContains(FieldSectionText, v))
}

// SectionTextHasPrefix applies the HasPrefix predicate on the "section_text" field.
func SectionTextHasPrefix(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldHasPrefix(FieldSectionText, v))
}

// SectionTextHasSuffix applies the HasSuffix predicate on the "section_text" field.
func SectionTextHasSuffix(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldHasSuffix(FieldSectionText, v))
}

// SectionTextIsNil applies the IsNil predicate on the "section_text" field.
func SectionTextIsNil() predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldIsNull(FieldSectionText))
}

// SectionTextNotNil applies the NotNil predicate on the "section_text" field.
func SectionTextNotNil() predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldNotNull(FieldSectionText))
}

// SectionTextEqualFold applies the EqualFold predicate on the "section_text" field.
func SectionTextEqualFold(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldEqualFold(FieldSectionText, v))
}

// SectionTextContainsFold applies the ContainsFold predicate on the "section_text" field.
func SectionTextContainsFold(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldContainsFold(FieldSectionText, v))
}

// ConfidenceScoreEQ applies the EQ predicate on the "confidence_score" field.
func ConfidenceScoreEQ(v float32) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldEQ(FieldConfidenceScore, v))
}

// ConfidenceScoreNEQ applies the NEQ predicate on the "confidence_score" field.
func ConfidenceScoreNEQ(v float32) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldNEQ(FieldConfidenceScore, v))
}

// ConfidenceScoreIn applies the In predicate on the "confidence_score" field.
func ConfidenceScoreIn(vs ...float32) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldIn(FieldConfidenceScore, vs...))
}

// ConfidenceScoreNotIn applies the NotIn predicate on the "confidence_score" field.
func ConfidenceScoreNotIn(vs ...float32) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldNotIn(FieldConfidenceScore, vs...))
}

// ConfidenceScoreGT applies the GT predicate on the "confidence_score" field.
func ConfidenceScoreGT(v float32) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldGT(FieldConfidenceScore, v))
}

// ConfidenceScoreGTE applies the GTE predicate on the "confidence_score" field.
func ConfidenceScoreGTE(v float32) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldGTE(FieldConfidenceScore, v))
}

// ConfidenceScoreLT applies the LT predicate on the "confidence_score" field.
func ConfidenceScoreLT(v float32) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldLT(FieldConfidenceScore, v))
}

// ConfidenceScoreLTE applies the LTE predicate on the "confidence_score" field.
func ConfidenceScoreLTE(v float32) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldLTE(FieldConfidenceScore, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldContainsFold(FieldStatus, v))
}

// NeedsReviewEQ applies the EQ predicate on the "needs_review" field.
func NeedsReviewEQ(v bool) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldEQ(FieldNeedsReview, v))
}

// NeedsReviewNEQ applies the NEQ predicate on the "needs_review" field.
func NeedsReviewNEQ(v bool) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldNEQ(FieldNeedsReview, v))
}

// IsValidatedEQ applies the EQ predicate on the "is_validated" field.
func IsValidatedEQ(v bool) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldEQ(FieldIsValidated, v))
}

// IsValidatedNEQ applies the NEQ predicate on the "is_validated" field.
func IsValidatedNEQ(v bool) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldNEQ(FieldIsValidated, v))
}

// IsMultiProductEQ applies the EQ predicate on the "is_multi_product" field.
func IsMultiProductEQ(v bool) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldEQ(FieldIsMultiProduct, v))
}

// IsMultiProductNEQ applies the NEQ predicate on the "is_multi_product" field.
func IsMultiProductNEQ(v bool) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldNEQ(FieldIsMultiProduct, v))
}

// TotalProductsInFileEQ applies the EQ predicate on the "total_products_in_file" field.
func TotalProductsInFileEQ(v int) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldEQ(FieldTotalProductsInFile, v))
}

// TotalProductsInFileNEQ applies the NEQ predicate on the "total_products_in_file" field.
func TotalProductsInFileNEQ(v int) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldNEQ(FieldTotalProductsInFile, v))
}

// TotalProductsInFileIn applies the In predicate on the "total_products_in_file" field.
func TotalProductsInFileIn(vs ...int) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldIn(FieldTotalProductsInFile, vs...))
}

// TotalProductsInFileNotIn applies the NotIn predicate on the "total_products_in_file" field.
func TotalProductsInFileNotIn(vs ...int) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldNotIn(FieldTotalProductsInFile, vs...))
}

// TotalProductsInFileGT applies the GT predicate on the "total_products_in_file" field.
func TotalProductsInFileGT(v int) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldGT(FieldTotalProductsInFile, v))
}

// TotalProductsInFileGTE applies the GTE predicate on the "total_products_in_file" field.
func TotalProductsInFileGTE(v int) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldGTE(FieldTotalProductsInFile, v))
}

// TotalProductsInFileLT applies the LT predicate on the "total_products_in_file" field.
func TotalProductsInFileLT(v int) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldLT(FieldTotalProductsInFile, v))
}

// TotalProductsInFileLTE applies the LTE predicate on the "total_products_in_file" field.
func TotalProductsInFileLTE(v int) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldLTE(FieldTotalProductsInFile, v))
}

// ProductIndexEQ applies the EQ predicate on the "product_index" field.
func ProductIndexEQ(v int) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldEQ(FieldProductIndex, v))
}

// ProductIndexNEQ applies the NEQ predicate on the "product_index" field.
func ProductIndexNEQ(v int) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldNEQ(FieldProductIndex, v))
}

// ProductIndexIn applies the In predicate on the "product_index" field.
func ProductIndexIn(vs ...int) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldIn(FieldProductIndex, vs...))
}

// ProductIndexNotIn applies the NotIn predicate on the "product_index" field.
func ProductIndexNotIn(vs ...int) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldNotIn(FieldProductIndex, vs...))
}

// ProductIndexGT applies the GT predicate on the "product_index" field.
func ProductIndexGT(v int) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldGT(FieldProductIndex, v))
}

// ProductIndexGTE applies the GTE predicate on the "product_index" field.
func ProductIndexGTE(v int) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldGTE(FieldProductIndex, v))
}

// ProductIndexLT applies the LT predicate on the "product_index" field.
func ProductIndexLT(v int) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldLT(FieldProductIndex, v))
}

// ProductIndexLTE applies the LTE predicate on the "product_index" field.
func ProductIndexLTE(v int) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldLTE(FieldProductIndex, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldContainsFold(FieldErrorMessage, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasJob applies the HasEdge predicate on the "job" edge.
func HasJob() predicate.ExtractedRecord {
	return predicate.ExtractedRecord(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, JobTable, JobColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasJobWith applies the HasEdge predicate on the "job" edge with a given conditions (other predicates).
func HasJobWith(preds ...predicate.ConversionJob) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(func(s *sql.Selector) {
		step := newJobStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasFile applies the HasEdge predicate on the "file" edge.
func HasFile() predicate.ExtractedRecord {
	return predicate.ExtractedRecord(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, FileTable, FileColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasFileWith applies the HasEdge predicate on the "file" edge with a given conditions (other predicates).
func HasFileWith(preds ...predicate.UploadFile) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(func(s *sql.Selector) {
		step := newFileStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ExtractedRecord) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ExtractedRecord) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ExtractedRecord) predicate.ExtractedRecord {
	return predicate.ExtractedRecord(sql.NotPredicates(p))
}
