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
)

type Vendor struct{ ent.Schema }

func (Vendor) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "vendors"},
	}
}

func (Vendor) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.UUID("user_id", uuid.UUID{}),
		field.String("name").NotEmpty(),
		// lowercased, punctuation-stripped, whitespace-collapsed matching key
		field.String("normalized_name").NotEmpty(),
		// raw names previously seen that resolved to this vendor
		field.Strings("aliases").Optional(),
		field.String("address").Optional().Nillable(),
		field.String("email").Optional().Nillable(),
		field.String("phone").Optional().Nillable(),
		field.Bool("ai_created").Default(false),
		field.Float32("confidence_score").Default(0),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Vendor) Edges() []ent.Edge {
	return []ent.Edge{
		// ONE vendor -> MANY invoices
		edge.To("invoices", Invoice.Type),
	}
}

func (Vendor) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "normalized_name").Unique(),
		index.Fields("user_id"),
	}
}
