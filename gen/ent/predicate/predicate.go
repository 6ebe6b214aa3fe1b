// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// ConversionJob is the predicate function for conversionjob builders.
type ConversionJob func(*sql.Selector)

// ExtractedRecord is the predicate function for extractedrecord builders.
type ExtractedRecord func(*sql.Selector)

// UploadFile is the predicate function for uploadfile builders.
type UploadFile func(*sql.Selector)
