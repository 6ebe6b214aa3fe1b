// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/hajime-ito/catalog-extractor/db/ent/schema"
	"github.com/hajime-ito/catalog-extractor/gen/ent/conversionjob"
	"github.com/hajime-ito/catalog-extractor/gen/ent/extractedrecord"
	"github.com/hajime-ito/catalog-extractor/gen/ent/uploadfile"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	conversionjobFields := schema.ConversionJob{}.Fields()
	_ = conversionjobFields
	// conversionjobDescTotalFiles is the schema descriptor for total_files field.
	conversionjobDescTotalFiles := conversionjobFields[4].Descriptor()
	// conversionjob.TotalFilesValidator is a validator for the "total_files" field. It is called by the builders before save.
	conversionjob.TotalFilesValidator = conversionjobDescTotalFiles.Validators[0].(func(int) error)
	// conversionjobDescProcessedFiles is the schema descriptor for processed_files field.
	conversionjobDescProcessedFiles := conversionjobFields[5].Descriptor()
	// conversionjob.DefaultProcessedFiles holds the default value on creation for the processed_files field.
	conversionjob.DefaultProcessedFiles = conversionjobDescProcessedFiles.Default.(int)
	// conversionjob.ProcessedFilesValidator is a validator for the "processed_files" field. It is called by the builders before save.
	conversionjob.ProcessedFilesValidator = conversionjobDescProcessedFiles.Validators[0].(func(int) error)
	// conversionjobDescStatus is the schema descriptor for status field.
	conversionjobDescStatus := conversionjobFields[6].Descriptor()
	// conversionjob.DefaultStatus holds the default value on creation for the status field.
	conversionjob.DefaultStatus = conversionjobDescStatus.Default.(string)
	// conversionjob.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	conversionjob.StatusValidator = conversionjobDescStatus.Validators[0].(func(string) error)
	// conversionjobDescCreatedAt is the schema descriptor for created_at field.
	conversionjobDescCreatedAt := conversionjobFields[10].Descriptor()
	// conversionjob.DefaultCreatedAt holds the default value on creation for the created_at field.
	conversionjob.DefaultCreatedAt = conversionjobDescCreatedAt.Default.(func() time.Time)
	// conversionjobDescUpdatedAt is the schema descriptor for updated_at field.
	conversionjobDescUpdatedAt := conversionjobFields[11].Descriptor()
	// conversionjob.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	conversionjob.DefaultUpdatedAt = conversionjobDescUpdatedAt.Default.(func() time.Time)
	// conversionjob.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	conversionjob.UpdateDefaultUpdatedAt = conversionjobDescUpdatedAt.UpdateDefault.(func() time.Time)
	// conversionjobDescID is the schema descriptor for id field.
	conversionjobDescID := conversionjobFields[0].Descriptor()
	// conversionjob.DefaultID holds the default value on creation for the id field.
	conversionjob.DefaultID = conversionjobDescID.Default.(func() uuid.UUID)
	extractedrecordFields := schema.ExtractedRecord{}.Fields()
	_ = extractedrecordFields
	// extractedrecordDescConfidenceScore is the schema descriptor for confidence_score field.
	extractedrecordDescConfidenceScore := extractedrecordFields[52].Descriptor()
	// extractedrecord.DefaultConfidenceScore holds the default value on creation for the confidence_score field.
	extractedrecord.DefaultConfidenceScore = extractedrecordDescConfidenceScore.Default.(float32)
	// extractedrecordDescStatus is the schema descriptor for status field.
	extractedrecordDescStatus := extractedrecordFields[53].Descriptor()
	// extractedrecord.DefaultStatus holds the default value on creation for the status field.
	extractedrecord.DefaultStatus = extractedrecordDescStatus.Default.(string)
	// extractedrecord.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	extractedrecord.StatusValidator = extractedrecordDescStatus.Validators[0].(func(string) error)
	// extractedrecordDescNeedsReview is the schema descriptor for needs_review field.
	extractedrecordDescNeedsReview := extractedrecordFields[54].Descriptor()
	// extractedrecord.DefaultNeedsReview holds the default value on creation for the needs_review field.
	extractedrecord.DefaultNeedsReview = extractedrecordDescNeedsReview.Default.(bool)
	// extractedrecordDescIsValidated is the schema descriptor for is_validated field.
	extractedrecordDescIsValidated := extractedrecordFields[55].Descriptor()
	// extractedrecord.DefaultIsValidated holds the default value on creation for the is_validated field.
	extractedrecord.DefaultIsValidated = extractedrecordDescIsValidated.Default.(bool)
	// extractedrecordDescIsMultiProduct is the schema descriptor for is_multi_product field.
	extractedrecordDescIsMultiProduct := extractedrecordFields[56].Descriptor()
	// extractedrecord.DefaultIsMultiProduct holds the default value on creation for the is_multi_product field.
	extractedrecord.DefaultIsMultiProduct = extractedrecordDescIsMultiProduct.Default.(bool)
	// extractedrecordDescTotalProductsInFile is the schema descriptor for total_products_in_file field.
	extractedrecordDescTotalProductsInFile := extractedrecordFields[57].Descriptor()
	// extractedrecord.DefaultTotalProductsInFile holds the default value on creation for the total_products_in_file field.
	extractedrecord.DefaultTotalProductsInFile = extractedrecordDescTotalProductsInFile.Default.(int)
	// extractedrecord.TotalProductsInFileValidator is a validator for the "total_products_in_file" field. It is called by the builders before save.
	extractedrecord.TotalProductsInFileValidator = extractedrecordDescTotalProductsInFile.Validators[0].(func(int) error)
	// extractedrecordDescProductIndex is the schema descriptor for product_index field.
	extractedrecordDescProductIndex := extractedrecordFields[58].Descriptor()
	// extractedrecord.DefaultProductIndex holds the default value on creation for the product_index field.
	extractedrecord.DefaultProductIndex = extractedrecordDescProductIndex.Default.(int)
	// extractedrecord.ProductIndexValidator is a validator for the "product_index" field. It is called by the builders before save.
	extractedrecord.ProductIndexValidator = extractedrecordDescProductIndex.Validators[0].(func(int) error)
	// extractedrecordDescCreatedAt is the schema descriptor for created_at field.
	extractedrecordDescCreatedAt := extractedrecordFields[60].Descriptor()
	// extractedrecord.DefaultCreatedAt holds the default value on creation for the created_at field.
	extractedrecord.DefaultCreatedAt = extractedrecordDescCreatedAt.Default.(func() time.Time)
	// extractedrecordDescUpdatedAt is the schema descriptor for updated_at field.
	extractedrecordDescUpdatedAt := extractedrecordFields[61].Descriptor()
	// extractedrecord.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	extractedrecord.DefaultUpdatedAt = extractedrecordDescUpdatedAt.Default.(func() time.Time)
	// extractedrecord.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	extractedrecord.UpdateDefaultUpdatedAt = extractedrecordDescUpdatedAt.UpdateDefault.(func() time.Time)
	// extractedrecordDescID is the schema descriptor for id field.
	extractedrecordDescID := extractedrecordFields[0].Descriptor()
	// extractedrecord.DefaultID holds the default value on creation for the id field.
	extractedrecord.DefaultID = extractedrecordDescID.Default.(func() uuid.UUID)
	uploadfileFields := schema.UploadFile{}.Fields()
	_ = uploadfileFields
	// uploadfileDescFilename is the schema descriptor for filename field.
	uploadfileDescFilename := uploadfileFields[2].Descriptor()
	// uploadfile.FilenameValidator is a validator for the "filename" field. It is called by the builders before save.
	uploadfile.FilenameValidator = uploadfileDescFilename.Validators[0].(func(string) error)
	// uploadfileDescFilePath is the schema descriptor for file_path field.
	uploadfileDescFilePath := uploadfileFields[3].Descriptor()
	// uploadfile.FilePathValidator is a validator for the "file_path" field. It is called by the builders before save.
	uploadfile.FilePathValidator = uploadfileDescFilePath.Validators[0].(func(string) error)
	// uploadfileDescFileExt is the schema descriptor for file_ext field.
	uploadfileDescFileExt := uploadfileFields[4].Descriptor()
	// uploadfile.FileExtValidator is a validator for the "file_ext" field. It is called by the builders before save.
	uploadfile.FileExtValidator = uploadfileDescFileExt.Validators[0].(func(string) error)
	// uploadfileDescFormat is the schema descriptor for format field.
	uploadfileDescFormat := uploadfileFields[5].Descriptor()
	// uploadfile.FormatValidator is a validator for the "format" field. It is called by the builders before save.
	uploadfile.FormatValidator = uploadfileDescFormat.Validators[0].(func(string) error)
	// uploadfileDescFileSize is the schema descriptor for file_size field.
	uploadfileDescFileSize := uploadfileFields[6].Descriptor()
	// uploadfile.FileSizeValidator is a validator for the "file_size" field. It is called by the builders before save.
	uploadfile.FileSizeValidator = uploadfileDescFileSize.Validators[0].(func(int) error)
	// uploadfileDescStatus is the schema descriptor for status field.
	uploadfileDescStatus := uploadfileFields[7].Descriptor()
	// uploadfile.DefaultStatus holds the default value on creation for the status field.
	uploadfile.DefaultStatus = uploadfileDescStatus.Default.(string)
	// uploadfile.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	uploadfile.StatusValidator = uploadfileDescStatus.Validators[0].(func(string) error)
	// uploadfileDescUploadedAt is the schema descriptor for uploaded_at field.
	uploadfileDescUploadedAt := uploadfileFields[8].Descriptor()
	// uploadfile.DefaultUploadedAt holds the default value on creation for the uploaded_at field.
	uploadfile.DefaultUploadedAt = uploadfileDescUploadedAt.Default.(func() time.Time)
	// uploadfileDescID is the schema descriptor for id field.
	uploadfileDescID := uploadfileFields[0].Descriptor()
	// uploadfile.DefaultID holds the default value on creation for the id field.
	uploadfile.DefaultID = uploadfileDescID.Default.(func() uuid.UUID)
}
