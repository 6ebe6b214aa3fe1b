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

type ConversionJob struct {
	ent.Schema
}

func (ConversionJob) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "conversion_jobs"},
	}
}

func (ConversionJob) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.UUID("owner_id", uuid.UUID{}),
		field.String("name").Optional(),
		// file membership is fixed at submit time; records edge carries
		// the per-file outcomes
		field.JSON("file_ids", []uuid.UUID{}),
		field.Int("total_files").NonNegative(),
		field.Int("processed_files").NonNegative().Default(0),
		field.String("status").
			Default(string(constants.JobStatusPending)).
			Validate(utils.EnumValidator(constants.JobStatuses...)),
		field.String("error_message").Optional().Nillable(),
		field.Time("started_at").Optional().Nillable(),
		field.Time("completed_at").Optional().Nillable(),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (ConversionJob) Edges() []ent.Edge {
	return []ent.Edge{
		// ONE job -> MANY records
		edge.To("records", ExtractedRecord.Type),
	}
}

func (ConversionJob) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("owner_id", "status"),
		index.Fields("owner_id", "created_at"),
	}
}
