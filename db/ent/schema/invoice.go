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

	"github.com/paperpilot/invoicer/constants"
	"github.com/paperpilot/invoicer/db/ent/schema/utils"
)

type Invoice struct{ ent.Schema }

func (Invoice) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "invoices"},
	}
}

func (Invoice) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.UUID("user_id", uuid.UUID{}).Immutable(),
		field.UUID("vendor_id", uuid.UUID{}).Optional().Nillable(),
		field.UUID("document_id", uuid.UUID{}).Optional().Nillable(),
		field.String("status").
			Default(string(constants.StatusPending)).
			Validate(utils.EnumValidator(constants.StatusValues()...)),
		field.String("invoice_number").Optional().Nillable(),
		field.Time("invoice_date").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "date"}),
		field.Time("due_date").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "date"}),
		field.Float("subtotal").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		field.Float("tax_amount").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		field.Float("total_amount").Default(0).
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		field.String("currency").Default("USD").MaxLen(3),
		field.String("notes").Optional().Nillable(),
		field.Strings("tags").Optional(),
		// sha256 over (user, vendor, normalized number, total, date); empty
		// when the invoice number is blank
		field.String("fingerprint").Optional(),
		field.UUID("duplicate_of", uuid.UUID{}).Optional().Nillable(),
		field.Float32("confidence_score").Default(0),
		field.Bool("needs_review").Default(false),
		// raw model output kept for audit and re-validation
		field.JSON("extracted_data", map[string]interface{}{}).Optional(),
		field.String("failure_reason").Optional().Nillable(),
		// processing lease; a row with lease_expires_at in the past is
		// reclaimable even while status is processing
		field.Time("processing_started_at").Optional().Nillable(),
		field.Time("lease_expires_at").Optional().Nillable(),
		field.Time("paid_at").Optional().Nillable(),
		field.Time("created_at").Default(time.Now).Immutable(),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Invoice) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("vendor", Vendor.Type).
			Ref("invoices").
			Field("vendor_id").
			Unique(),
		edge.From("document", InvoiceDocument.Type).
			Ref("invoice").
			Field("document_id").
			Unique(),
		edge.To("items", InvoiceItem.Type),
		edge.To("logs", ProcessingLog.Type),
	}
}

func (Invoice) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "status"),
		index.Fields("user_id", "fingerprint"),
		index.Fields("user_id", "created_at"),
	}
}
