// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ConversionJobsColumns holds the columns for the "conversion_jobs" table.
	ConversionJobsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "owner_id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString, Nullable: true},
		{Name: "file_ids", Type: field.TypeJSON},
		{Name: "total_files", Type: field.TypeInt},
		{Name: "processed_files", Type: field.TypeInt, Default: 0},
		{Name: "status", Type: field.TypeString, Default: "pending"},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ConversionJobsTable holds the schema information for the "conversion_jobs" table.
	ConversionJobsTable = &schema.Table{
		Name:       "conversion_jobs",
		Columns:    ConversionJobsColumns,
		PrimaryKey: []*schema.Column{ConversionJobsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "conversionjob_owner_id_status",
				Unique:  false,
				Columns: []*schema.Column{ConversionJobsColumns[1], ConversionJobsColumns[6]},
			},
			{
				Name:    "conversionjob_owner_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{ConversionJobsColumns[1], ConversionJobsColumns[10]},
			},
		},
	}
	// ExtractedRecordsColumns holds the columns for the "extracted_records" table.
	ExtractedRecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "owner_id", Type: field.TypeUUID},
		{Name: "product_name", Type: field.TypeString, Nullable: true},
		{Name: "sku", Type: field.TypeString, Nullable: true},
		{Name: "product_code", Type: field.TypeString, Nullable: true},
		{Name: "jan_code", Type: field.TypeString, Nullable: true},
		{Name: "character_name", Type: field.TypeString, Nullable: true},
		{Name: "brand", Type: field.TypeString, Nullable: true},
		{Name: "manufacturer", Type: field.TypeString, Nullable: true},
		{Name: "supplier_name", Type: field.TypeString, Nullable: true},
		{Name: "ip_name", Type: field.TypeString, Nullable: true},
		{Name: "price", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "reference_sales_price", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "wholesale_price", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "order_amount", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "stock", Type: field.TypeInt, Nullable: true},
		{Name: "wholesale_quantity", Type: field.TypeInt, Nullable: true},
		{Name: "release_date", Type: field.TypeString, Nullable: true},
		{Name: "reservation_release_date", Type: field.TypeString, Nullable: true},
		{Name: "reservation_deadline", Type: field.TypeString, Nullable: true},
		{Name: "reservation_shipping_date", Type: field.TypeString, Nullable: true},
		{Name: "dimensions", Type: field.TypeString, Nullable: true},
		{Name: "single_product_size", Type: field.TypeString, Nullable: true},
		{Name: "package_size", Type: field.TypeString, Nullable: true},
		{Name: "inner_box_size", Type: field.TypeString, Nullable: true},
		{Name: "carton_size", Type: field.TypeString, Nullable: true},
		{Name: "weight", Type: field.TypeString, Nullable: true},
		{Name: "package_type", Type: field.TypeString, Nullable: true},
		{Name: "protective_film", Type: field.TypeString, Nullable: true},
		{Name: "quantity_per_pack", Type: field.TypeString, Nullable: true},
		{Name: "case_pack_quantity", Type: field.TypeInt, Nullable: true},
		{Name: "inner_box_gtin", Type: field.TypeString, Nullable: true},
		{Name: "outer_box_gtin", Type: field.TypeString, Nullable: true},
		{Name: "category", Type: field.TypeString, Nullable: true},
		{Name: "major_category", Type: field.TypeString, Nullable: true},
		{Name: "minor_category", Type: field.TypeString, Nullable: true},
		{Name: "genre_name", Type: field.TypeString, Nullable: true},
		{Name: "classification", Type: field.TypeString, Nullable: true},
		{Name: "in_store", Type: field.TypeString, Nullable: true},
		{Name: "lot_number", Type: field.TypeString, Nullable: true},
		{Name: "color", Type: field.TypeString, Nullable: true},
		{Name: "material", Type: field.TypeString, Nullable: true},
		{Name: "origin", Type: field.TypeString, Nullable: true},
		{Name: "country_of_origin", Type: field.TypeString, Nullable: true},
		{Name: "target_age", Type: field.TypeString, Nullable: true},
		{Name: "warranty", Type: field.TypeString, Nullable: true},
		{Name: "description", Type: field.TypeString, Nullable: true},
		{Name: "image_urls", Type: field.TypeJSON, Nullable: true},
		{Name: "raw_text", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "section_text", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "confidence_score", Type: field.TypeFloat32, Default: 0},
		{Name: "status", Type: field.TypeString, Default: "extracted"},
		{Name: "needs_review", Type: field.TypeBool, Default: false},
		{Name: "is_validated", Type: field.TypeBool, Default: false},
		{Name: "is_multi_product", Type: field.TypeBool, Default: false},
		{Name: "total_products_in_file", Type: field.TypeInt, Default: 1},
		{Name: "product_index", Type: field.TypeInt, Default: 1},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "conversion_job_id", Type: field.TypeUUID, Nullable: true},
		{Name: "source_file_id", Type: field.TypeUUID},
	}
	// ExtractedRecordsTable holds the schema information for the "extracted_records" table.
	ExtractedRecordsTable = &schema.Table{
		Name:       "extracted_records",
		Columns:    ExtractedRecordsColumns,
		PrimaryKey: []*schema.Column{ExtractedRecordsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "extracted_records_conversion_jobs_records",
				Columns:    []*schema.Column{ExtractedRecordsColumns[60]},
				RefColumns: []*schema.Column{ConversionJobsColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "extracted_records_upload_files_records",
				Columns:    []*schema.Column{ExtractedRecordsColumns[61]},
				RefColumns: []*schema.Column{UploadFilesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "extractedrecord_owner_id_status",
				Unique:  false,
				Columns: []*schema.Column{ExtractedRecordsColumns[1], ExtractedRecordsColumns[51]},
			},
			{
				Name:    "extractedrecord_owner_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{ExtractedRecordsColumns[1], ExtractedRecordsColumns[58]},
			},
			{
				Name:    "extractedrecord_source_file_id",
				Unique:  false,
				Columns: []*schema.Column{ExtractedRecordsColumns[61]},
			},
			{
				Name:    "extractedrecord_jan_code",
				Unique:  false,
				Columns: []*schema.Column{ExtractedRecordsColumns[5]},
			},
		},
	}
	// UploadFilesColumns holds the columns for the "upload_files" table.
	UploadFilesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "owner_id", Type: field.TypeUUID},
		{Name: "filename", Type: field.TypeString},
		{Name: "file_path", Type: field.TypeString},
		{Name: "file_ext", Type: field.TypeString},
		{Name: "format", Type: field.TypeString},
		{Name: "file_size", Type: field.TypeInt},
		{Name: "status", Type: field.TypeString, Default: "uploaded"},
		{Name: "uploaded_at", Type: field.TypeTime},
	}
	// UploadFilesTable holds the schema information for the "upload_files" table.
	UploadFilesTable = &schema.Table{
		Name:       "upload_files",
		Columns:    UploadFilesColumns,
		PrimaryKey: []*schema.Column{UploadFilesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "uploadfile_owner_id_uploaded_at",
				Unique:  false,
				Columns: []*schema.Column{UploadFilesColumns[1], UploadFilesColumns[8]},
			},
			{
				Name:    "uploadfile_owner_id_status",
				Unique:  false,
				Columns: []*schema.Column{UploadFilesColumns[1], UploadFilesColumns[7]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ConversionJobsTable,
		ExtractedRecordsTable,
		UploadFilesTable,
	}
)

func init() {
	ConversionJobsTable.Annotation = &entsql.Annotation{
		Table: "conversion_jobs",
	}
	ExtractedRecordsTable.ForeignKeys[0].RefTable = ConversionJobsTable
	ExtractedRecordsTable.ForeignKeys[1].RefTable = UploadFilesTable
	ExtractedRecordsTable.Annotation = &entsql.Annotation{
		Table: "extracted_records",
	}
	UploadFilesTable.Annotation = &entsql.Annotation{
		Table: "upload_files",
	}
}
