package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"

	"github.com/hajime-ito/catalog-extractor/constants"
	"github.com/hajime-ito/catalog-extractor/db/ent/schema/utils"
)

type UploadFile struct {
	ent.Schema
}

func (UploadFile) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "upload_files"},
	}
}

func (UploadFile) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.UUID("owner_id", uuid.UUID{}),
		field.String("filename").NotEmpty(),
		field.String("file_path").NotEmpty(),
		field.String("file_ext").NotEmpty(),
		field.String("format").
			Validate(utils.EnumValidator(constants.FileTypes...)),
		field.Int("file_size").NonNegative(),
		field.String("status").
			Default("uploaded").
			Validate(utils.EnumValidator(constants.FileStatuses...)),
		field.Time("uploaded_at").Default(time.Now),
	}
}

func (UploadFile) Edges() []ent.Edge {
	return []ent.Edge{
		// ONE file -> MANY records
		edge.To("records", ExtractedRecord.Type),
	}
}

func (UploadFile) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("owner_id", "uploaded_at"),
		index.Fields("owner_id", "status"),
	}
}
