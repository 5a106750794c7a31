package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"

	"github.com/google/uuid"
)

type InvoiceItem struct{ ent.Schema }

func (InvoiceItem) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "invoice_items"},
	}
}

func (InvoiceItem) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.UUID("invoice_id", uuid.UUID{}),
		field.String("description").NotEmpty(),
		field.Float("quantity").Default(1),
		field.Float("unit_price").Default(0).
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		field.Float("total").Default(0).
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		field.String("product_code").Optional().Nillable(),
		field.String("unit_of_measure").Optional().Nillable(),
		field.Int("position").Default(0),
	}
}

func (InvoiceItem) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("invoice", Invoice.Type).
			Ref("items").
			Field("invoice_id").
			Unique().
			Required(),
	}
}
