// Code generated by ent, DO NOT EDIT.

package extractedrecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the extractedrecord type in the database.
	Label = "extracted_record"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldOwnerID holds the string denoting the owner_id field in the database.
	FieldOwnerID = "owner_id"
	// FieldConversionJobID holds the string denoting the conversion_job_id field in the database.
	FieldConversionJobID = "conversion_job_id"
	// FieldSourceFileID holds the string denoting the source_file_id field in the database.
	FieldSourceFileID = "source_file_id"
	// FieldProductName holds the string denoting the product_name field in the database.
	FieldProductName = "product_name"
	// FieldSku holds the string denoting the sku field in the database.
	FieldSku = "sku"
	// FieldProductCode holds the string denoting the product_code field in the database.
	FieldProductCode = "product_code"
	// FieldJanCode holds the string denoting the jan_code field in the database.
	FieldJanCode = "jan_code"
	// FieldCharacterName holds the string denoting the character_name field in the database.
	FieldCharacterName = "character_name"
	// FieldBrand holds the string denoting the brand field in the database.
	FieldBrand = "brand"
	// FieldManufacturer holds the string denoting the manufacturer field in the database.
	FieldManufacturer = "manufacturer"
	// FieldSupplierName holds the string denoting the supplier_name field in the database.
	FieldSupplierName = "supplier_name"
	// FieldIPName holds the string denoting the ip_name field in the database.
	FieldIPName = "ip_name"
	// FieldPrice holds the string denoting the price field in the database.
	FieldPrice = "price"
	// FieldReferenceSalesPrice holds the string denoting the reference_sales_price field in the database.
	FieldReferenceSalesPrice = "reference_sales_price"
	// FieldWholesalePrice holds the string denoting the wholesale_price field in the database.
	FieldWholesalePrice = "wholesale_price"
	// FieldOrderAmount holds the string denoting the order_amount field in the database.
	FieldOrderAmount = "order_amount"
	// FieldStock holds the string denoting the stock field in the database.
	FieldStock = "stock"
	// FieldWholesaleQuantity holds the string denoting the wholesale_quantity field in the database.
	FieldWholesaleQuantity = "wholesale_quantity"
	// FieldReleaseDate holds the string denoting the release_date field in the database.
	FieldReleaseDate = "release_date"
	// FieldReservationReleaseDate holds the string denoting the reservation_release_date field in the database.
	FieldReservationReleaseDate = "reservation_release_date"
	// FieldReservationDeadline holds the string denoting the reservation_deadline field in the database.
	FieldReservationDeadline = "reservation_deadline"
	// FieldReservationShippingDate holds the string denoting the reservation_shipping_date field in the database.
	FieldReservationShippingDate = "reservation_shipping_date"
	// FieldDimensions holds the string denoting the dimensions field in the database.
	FieldDimensions = "dimensions"
	// FieldSingleProductSize holds the string denoting the single_product_size field in the database.
	FieldSingleProductSize = "single_product_size"
	// FieldPackageSize holds the string denoting the package_size field in the database.
	FieldPackageSize = "package_size"
	// FieldInnerBoxSize holds the string denoting the inner_box_size field in the database.
	FieldInnerBoxSize = "inner_box_size"
	// FieldCartonSize holds the string denoting the carton_size field in the database.
	FieldCartonSize = "carton_size"
	// FieldWeight holds the string denoting the weight field in the database.
	FieldWeight = "weight"
	// FieldPackageType holds the string denoting the package_type field in the database.
	FieldPackageType = "package_type"
	// FieldProtectiveFilm holds the string denoting the protective_film field in the database.
	FieldProtectiveFilm = "protective_film"
	// FieldQuantityPerPack holds the string denoting the quantity_per_pack field in the database.
	FieldQuantityPerPack = "quantity_per_pack"
	// FieldCasePackQuantity holds the string denoting the case_pack_quantity field in the database.
	FieldCasePackQuantity = "case_pack_quantity"
	// FieldInnerBoxGtin holds the string denoting the inner_box_gtin field in the database.
	FieldInnerBoxGtin = "inner_box_gtin"
	// FieldOuterBoxGtin holds the string denoting the outer_box_gtin field in the database.
	FieldOuterBoxGtin = "outer_box_gtin"
	// FieldCategory holds the string denoting the category field in the database.
	FieldCategory = "category"
	// FieldMajorCategory holds the string denoting the major_category field in the database.
	FieldMajorCategory = "major_category"
	// FieldMinorCategory holds the string denoting the minor_category field in the database.
	FieldMinorCategory = "minor_category"
	// FieldGenreName holds the string denoting the genre_name field in the database.
	FieldGenreName = "genre_name"
	// FieldClassification holds the string denoting the classification field in the database.
	FieldClassification = "classification"
	// FieldInStore holds the string denoting the in_store field in the database.
	FieldInStore = "in_store"
	// FieldLotNumber holds the string denoting the lot_number field in the database.
	FieldLotNumber = "lot_number"
	// FieldColor holds the string denoting the color field in the database.
	FieldColor = "color"
	// FieldMaterial holds the string denoting the material field in the database.
	FieldMaterial = "material"
	// FieldOrigin holds the string denoting the origin field in the database.
	FieldOrigin = "origin"
	// FieldCountryOfOrigin holds the string denoting the country_of_origin field in the database.
	FieldCountryOfOrigin = "country_of_origin"
	// FieldTargetAge holds the string denoting the target_age field in the database.
	FieldTargetAge = "target_age"
	// FieldWarranty holds the string denoting the warranty field in the database.
	FieldWarranty = "warranty"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldImageUrls holds the string denoting the image_urls field in the database.
	FieldImageUrls = "image_urls"
	// FieldRawText holds the string denoting the raw_text field in the database.
	FieldRawText = "raw_text"
	// FieldSectionText holds the string denoting the section_text field in the database.
	FieldSectionText = "section_text"
	// FieldConfidenceScore holds the string denoting the confidence_score field in the database.
	FieldConfidenceScore = "confidence_score"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldNeedsReview holds the string denoting the needs_review field in the database.
	FieldNeedsReview = "needs_review"
	// FieldIsValidated holds the string denoting the is_validated field in the database.
	FieldIsValidated = "is_validated"
	// FieldIsMultiProduct holds the string denoting the is_multi_product field in the database.
	FieldIsMultiProduct = "is_multi_product"
	// FieldTotalProductsInFile holds the string denoting the total_products_in_file field in the database.
	FieldTotalProductsInFile = "total_products_in_file"
	// FieldProductIndex holds the string denoting the product_index field in the database.
	FieldProductIndex = "product_index"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeJob holds the string denoting the job edge name in mutations.
	EdgeJob = "job"
	// EdgeFile holds the string denoting the file edge name in mutations.
	EdgeFile = "file"
	// Table holds the table name of the extractedrecord in the database.
	Table = "extracted_records"
	// JobTable is the table that holds the job relation/edge.
	JobTable = "extracted_records"
	// JobInverseTable is the table name for the ConversionJob entity.
	// It exists in this package in order to avoid circular dependency with the "conversionjob" package.
	JobInverseTable = "conversion_jobs"
	// JobColumn is the table column denoting the job relation/edge.
	JobColumn = "conversion_job_id"
	// FileTable is the table that holds the file relation/edge.
	FileTable = "extracted_records"
	// FileInverseTable is the table name for the UploadFile entity.
	// It exists in this package in order to avoid circular dependency with the "uploadfile" package.
	FileInverseTable = "upload_files"
	// FileColumn is the table column denoting the file relation/edge.
	FileColumn = "source_file_id"
)

// Columns holds all SQL columns for extractedrecord fields.
var Columns = []string{
	FieldID,
	FieldOwnerID,
	FieldConversionJobID,
	FieldSourceFileID,
	FieldProductName,
	FieldSku,
	FieldProductCode,
	FieldJanCode,
	FieldCharacterName,
	FieldBrand,
	FieldManufacturer,
	FieldSupplierName,
	FieldIPName,
	FieldPrice,
	FieldReferenceSalesPrice,
	FieldWholesalePrice,
	FieldOrderAmount,
	FieldStock,
	FieldWholesaleQuantity,
	FieldReleaseDate,
	FieldReservationReleaseDate,
	FieldReservationDeadline,
	FieldReservationShippingDate,
	FieldDimensions,
	FieldSingleProductSize,
	FieldPackageSize,
	FieldInnerBoxSize,
	FieldCartonSize,
	FieldWeight,
	FieldPackageType,
	FieldProtectiveFilm,
	FieldQuantityPerPack,
	FieldCasePackQuantity,
	FieldInnerBoxGtin,
	FieldOuterBoxGtin,
	FieldCategory,
	FieldMajorCategory,
	FieldMinorCategory,
	FieldGenreName,
	FieldClassification,
	FieldInStore,
	FieldLotNumber,
	FieldColor,
	FieldMaterial,
	FieldOrigin,
	FieldCountryOfOrigin,
	FieldTargetAge,
	FieldWarranty,
	FieldDescription,
	FieldImageUrls,
	FieldRawText,
	FieldSectionText,
	FieldConfidenceScore,
	FieldStatus,
	FieldNeedsReview,
	FieldIsValidated,
	FieldIsMultiProduct,
	FieldTotalProductsInFile,
	FieldProductIndex,
	FieldErrorMessage,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultConfidenceScore holds the default value on creation for the "confidence_score" field.
	DefaultConfidenceScore float32
	// DefaultStatus holds the default value on creation for the "status" field.
	DefaultStatus string
	// StatusValidator is a validator for the "status" field. It is called by the builders before save.
	StatusValidator func(string) error
	// DefaultNeedsReview holds the default value on creation for the "needs_review" field.
	DefaultNeedsReview bool
	// DefaultIsValidated holds the default value on creation for the "is_validated" field.
	DefaultIsValidated bool
	// DefaultIsMultiProduct holds the default value on creation for the "is_multi_product" field.
	DefaultIsMultiProduct bool
	// DefaultTotalProductsInFile holds the default value on creation for the "total_products_in_file" field.
	DefaultTotalProductsInFile int
	// TotalProductsInFileValidator is a validator for the "total_products_in_file" field. It is called by the builders before save.
	TotalProductsInFileValidator func(int) error
	// DefaultProductIndex holds the default value on creation for the "product_index" field.
	DefaultProductIndex int
	// ProductIndexValidator is a validator for the "product_index" field. It is called by the builders before save.
	ProductIndexValidator func(int) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the ExtractedRecord queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByOwnerID orders the results by the owner_id field.
func ByOwnerID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOwnerID, opts...).ToFunc()
}

// ByConversionJobID orders the results by the conversion_job_id field.
func ByConversionJobID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConversionJobID, opts...).ToFunc()
}

// BySourceFileID orders the results by the source_file_id field.
func BySourceFileID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSourceFileID, opts...).ToFunc()
}

// ByProductName orders the results by the product_name field.
func ByProductName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProductName, opts...).ToFunc()
}

// BySku orders the results by the sku field.
func BySku(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSku, opts...).ToFunc()
}

// ByProductCode orders the results by the product_code field.
func ByProductCode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProductCode, opts...).ToFunc()
}

// ByJanCode orders the results by the jan_code field.
func ByJanCode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldJanCode, opts...).ToFunc()
}

// ByCharacterName orders the results by the character_name field.
func ByCharacterName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCharacterName, opts...).ToFunc()
}

// ByBrand orders the results by the brand field.
func ByBrand(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBrand, opts...).ToFunc()
}

// ByManufacturer orders the results by the manufacturer field.
func ByManufacturer(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldManufacturer, opts...).ToFunc()
}

// BySupplierName orders the results by the supplier_name field.
func BySupplierName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSupplierName, opts...).ToFunc()
}

// ByIPName orders the results by the ip_name field.
func ByIPName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIPName, opts...).ToFunc()
}

// ByPrice orders the results by the price field.
func ByPrice(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPrice, opts...).ToFunc()
}

// ByReferenceSalesPrice orders the results by the reference_sales_price field.
func ByReferenceSalesPrice(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReferenceSalesPrice, opts...).ToFunc()
}

// ByWholesalePrice orders the results by the wholesale_price field.
func ByWholesalePrice(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWholesalePrice, opts...).ToFunc()
}

// ByOrderAmount orders the results by the order_amount field.
func ByOrderAmount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOrderAmount, opts...).ToFunc()
}

// ByStock orders the results by the stock field.
func ByStock(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStock, opts...).ToFunc()
}

// ByWholesaleQuantity orders the results by the wholesale_quantity field.
func ByWholesaleQuantity(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWholesaleQuantity, opts...).ToFunc()
}

// ByReleaseDate orders the results by the release_date field.
func ByReleaseDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReleaseDate, opts...).ToFunc()
}

// ByReservationReleaseDate orders the results by the reservation_release_date field.
func ByReservationReleaseDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReservationReleaseDate, opts...).ToFunc()
}

// ByReservationDeadline orders the results by the reservation_deadline field.
func ByReservationDeadline(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReservationDeadline, opts...).ToFunc()
}

// ByReservationShippingDate orders the results by the reservation_shipping_date field.
func ByReservationShippingDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReservationShippingDate, opts...).ToFunc()
}

// ByDimensions orders the results by the dimensions field.
func ByDimensions(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDimensions, opts...).ToFunc()
}

// BySingleProductSize orders the results by the single_product_size field.
func BySingleProductSize(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSingleProductSize, opts...).ToFunc()
}

// ByPackageSize orders the results by the package_size field.
func ByPackageSize(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPackageSize, opts...).ToFunc()
}

// ByInnerBoxSize orders the results by the inner_box_size field.
func ByInnerBoxSize(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInnerBoxSize, opts...).ToFunc()
}

// ByCartonSize orders the results by the carton_size field.
func ByCartonSize(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCartonSize, opts...).ToFunc()
}

// ByWeight orders the results by the weight field.
func ByWeight(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWeight, opts...).ToFunc()
}

// ByPackageType orders the results by the package_type field.
func ByPackageType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPackageType, opts...).ToFunc()
}

// ByProtectiveFilm orders the results by the protective_film field.
func ByProtectiveFilm(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProtectiveFilm, opts...).ToFunc()
}

// ByQuantityPerPack orders the results by the quantity_per_pack field.
func ByQuantityPerPack(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuantityPerPack, opts...).ToFunc()
}

// ByCasePackQuantity orders the results by the case_pack_quantity field.
func ByCasePackQuantity(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCasePackQuantity, opts...).ToFunc()
}

// ByInnerBoxGtin orders the results by the inner_box_gtin field.
func ByInnerBoxGtin(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInnerBoxGtin, opts...).ToFunc()
}

// ByOuterBoxGtin orders the results by the outer_box_gtin field.
func ByOuterBoxGtin(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOuterBoxGtin, opts...).ToFunc()
}

// ByCategory orders the results by the category field.
func ByCategory(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCategory, opts...).ToFunc()
}

// ByMajorCategory orders the results by the major_category field.
func ByMajorCategory(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMajorCategory, opts...).ToFunc()
}

// ByMinorCategory orders the results by the minor_category field.
func ByMinorCategory(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMinorCategory, opts...).ToFunc()
}

// ByGenreName orders the results by the genre_name field.
func ByGenreName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGenreName, opts...).ToFunc()
}

// ByClassification orders the results by the classification field.
func ByClassification(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClassification, opts...).ToFunc()
}

// ByInStore orders the results by the in_store field.
func ByInStore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInStore, opts...).ToFunc()
}

// ByLotNumber orders the results by the lot_number field.
func ByLotNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLotNumber, opts...).ToFunc()
}

// ByColor orders the results by the color field.
func ByColor(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldColor, opts...).ToFunc()
}

// ByMaterial orders the results by the material field.
func ByMaterial(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMaterial, opts...).ToFunc()
}

// ByOrigin orders the results by the origin field.
func ByOrigin(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOrigin, opts...).ToFunc()
}

// ByCountryOfOrigin orders the results by the country_of_origin field.
func ByCountryOfOrigin(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCountryOfOrigin, opts...).ToFunc()
}

// ByTargetAge orders the results by the target_age field.
func ByTargetAge(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTargetAge, opts...).ToFunc()
}

// ByWarranty orders the results by the warranty field.
func ByWarranty(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWarranty, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByRawText orders the results by the raw_text field.
func ByRawText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRawText, opts...).ToFunc()
}

// BySectionText orders the results by the section_text field.
func BySectionText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSectionText, opts...).ToFunc()
}

// ByConfidenceScore orders the results by the confidence_score field.
func ByConfidenceScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfidenceScore, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByNeedsReview orders the results by the needs_review field.
func ByNeedsReview(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNeedsReview, opts...).ToFunc()
}

// ByIsValidated orders the results by the is_validated field.
func ByIsValidated(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsValidated, opts...).ToFunc()
}

// ByIsMultiProduct orders the results by the is_multi_product field.
func ByIsMultiProduct(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsMultiProduct, opts...).ToFunc()
}

// ByTotalProductsInFile orders the results by the total_products_in_file field.
func ByTotalProductsInFile(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalProductsInFile, opts...).ToFunc()
}

// ByProductIndex orders the results by the product_index field.
func ByProductIndex(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProductIndex, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByJobField orders the results by job field.
func ByJobField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newJobStep(), sql.OrderByField(field, opts...))
	}
}

// ByFileField orders the results by file field.
func ByFileField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newFileStep(), sql.OrderByField(field, opts...))
	}
}
func newJobStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(JobInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, JobTable, JobColumn),
	)
}
func newFileStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(FileInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, FileTable, FileColumn),
	)
}
