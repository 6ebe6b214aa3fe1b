package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"

	"github.com/hajime-ito/catalog-extractor/constants"
	"github.com/hajime-ito/catalog-extractor/db/ent/schema/utils"
)

type ExtractedRecord struct {
	ent.Schema
}

func (ExtractedRecord) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "extracted_records"},
	}
}

func (ExtractedRecord) Fields() []ent.Field {
	money := map[string]string{dialect.Postgres: "numeric(12,2)"}

	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.UUID("owner_id", uuid.UUID{}),
		// explicit FKs so the edges below can bind to them
		field.UUID("conversion_job_id", uuid.UUID{}).Optional().Nillable(),
		field.UUID("source_file_id", uuid.UUID{}),

		// product identity
		field.String("product_name").Optional().Nillable(),
		field.String("sku").Optional().Nillable(),
		field.String("product_code").Optional().Nillable(),
		field.String("jan_code").Optional().Nillable(),
		field.String("character_name").Optional().Nillable(),
		field.String("brand").Optional().Nillable(),
		field.String("manufacturer").Optional().Nillable(),
		field.String("supplier_name").Optional().Nillable(),
		field.String("ip_name").Optional().Nillable(),

		// commercial
		field.Float("price").Optional().Nillable().SchemaType(money),
		field.Float("reference_sales_price").Optional().Nillable().SchemaType(money),
		field.Float("wholesale_price").Optional().Nillable().SchemaType(money),
		field.Float("order_amount").Optional().Nillable().SchemaType(money),
		field.Int("stock").Optional().Nillable(),
		field.Int("wholesale_quantity").Optional().Nillable(),

		// dates kept as printed (Japanese calendar text), not time.Time
		field.String("release_date").Optional().Nillable(),
		field.String("reservation_release_date").Optional().Nillable(),
		field.String("reservation_deadline").Optional().Nillable(),
		field.String("reservation_shipping_date").Optional().Nillable(),

		// physical
		field.String("dimensions").Optional().Nillable(),
		field.String("single_product_size").Optional().Nillable(),
		field.String("package_size").Optional().Nillable(),
		field.String("inner_box_size").Optional().Nillable(),
		field.String("carton_size").Optional().Nillable(),
		field.String("weight").Optional().Nillable(),
		field.String("package_type").Optional().Nillable(),
		field.String("protective_film").Optional().Nillable(),

		// packaging / logistics
		field.String("quantity_per_pack").Optional().Nillable(),
		field.Int("case_pack_quantity").Optional().Nillable(),
		field.String("inner_box_gtin").Optional().Nillable(),
		field.String("outer_box_gtin").Optional().Nillable(),

		// classification
		field.String("category").Optional().Nillable(),
		field.String("major_category").Optional().Nillable(),
		field.String("minor_category").Optional().Nillable(),
		field.String("genre_name").Optional().Nillable(),
		field.String("classification").Optional().Nillable(),
		field.String("in_store").Optional().Nillable(),
		field.String("lot_number").Optional().Nillable(),

		// attributes
		field.String("color").Optional().Nillable(),
		field.String("material").Optional().Nillable(),
		field.String("origin").Optional().Nillable(),
		field.String("country_of_origin").Optional().Nillable(),
		field.String("target_age").Optional().Nillable(),
		field.String("warranty").Optional().Nillable(),
		field.String("description").Optional().Nillable(),
		field.JSON("image_urls", []string{}).Optional(),

		// provenance
		field.Text("raw_text").Optional(),
		field.Text("section_text").Optional(),
		field.Float32("confidence_score").Default(0),
		field.String("status").
			Default(string(constants.RecordStatusExtracted)).
			Validate(utils.EnumValidator(constants.RecordStatuses...)),
		field.Bool("needs_review").Default(false),
		field.Bool("is_validated").Default(false),
		field.Bool("is_multi_product").Default(false),
		field.Int("total_products_in_file").Positive().Default(1),
		field.Int("product_index").Positive().Default(1),
		field.String("error_message").Optional().Nillable(),

		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (ExtractedRecord) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY records -> ONE job (optional: batch-mode records have none)
		edge.From("job", ConversionJob.Type).
			Ref("records").
			Field("conversion_job_id").
			Unique(),
		// MANY records -> ONE source file
		edge.From("file", UploadFile.Type).
			Ref("records").
			Field("source_file_id").
			Required().
			Unique(),
	}
}

func (ExtractedRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("owner_id", "status"),
		index.Fields("owner_id", "created_at"),
		index.Fields("source_file_id"),
		index.Fields("jan_code"),
	}
}
