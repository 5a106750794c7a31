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

	"github.com/paperpilot/invoicer/constants"
	"github.com/paperpilot/invoicer/db/ent/schema/utils"
)

// ProcessingLog is append-only. Rows are never updated or deleted.
type ProcessingLog struct{ ent.Schema }

func (ProcessingLog) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "processing_logs"},
	}
}

func (ProcessingLog) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.UUID("invoice_id", uuid.UUID{}).Immutable(),
		field.String("stage").
			Immutable().
			Validate(utils.EnumValidator(constants.StageValues()...)),
		field.String("status").
			Immutable().
			Validate(utils.EnumValidator(constants.LogStatusValues()...)),
		field.String("message").Optional().Immutable(),
		field.Int("attempt").Default(1).Immutable(),
		field.Int64("duration_ms").Default(0).Immutable(),
		field.JSON("details", map[string]interface{}{}).Optional().Immutable(),
		field.Time("created_at").Default(time.Now).Immutable(),
	}
}

func (ProcessingLog) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("invoice", Invoice.Type).
			Ref("logs").
			Field("invoice_id").
			Unique().
			Required().
			Immutable(),
	}
}

func (ProcessingLog) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("invoice_id", "created_at"),
	}
}
