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
)

// InvoiceDocument is the uploaded file. Immutable once created.
type InvoiceDocument struct{ ent.Schema }

func (InvoiceDocument) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "invoice_documents"},
	}
}

func (InvoiceDocument) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.UUID("user_id", uuid.UUID{}).Immutable(),
		field.String("filename").NotEmpty().Immutable(),
		field.String("mime_type").NotEmpty().Immutable(),
		field.Int("byte_size").NonNegative().Immutable(),
		field.Bytes("content").Immutable().
			SchemaType(map[string]string{dialect.Postgres: "bytea"}),
		field.Time("uploaded_at").Default(time.Now).Immutable(),
	}
}

func (InvoiceDocument) Edges() []ent.Edge {
	return []ent.Edge{
		// ONE document -> ONE invoice
		edge.To("invoice", Invoice.Type).Unique(),
	}
}

func (InvoiceDocument) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "uploaded_at"),
	}
}
