// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// InvoicesColumns holds the columns for the "invoices" table.
	InvoicesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "user_id", Type: field.TypeUUID},
		{Name: "status", Type: field.TypeString, Default: "pending"},
		{Name: "invoice_number", Type: field.TypeString, Nullable: true},
		{Name: "invoice_date", Type: field.TypeTime, Nullable: true, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "due_date", Type: field.TypeTime, Nullable: true, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "subtotal", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "tax_amount", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "total_amount", Type: field.TypeFloat64, Default: 0, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "currency", Type: field.TypeString, Size: 3, Default: "USD"},
		{Name: "notes", Type: field.TypeString, Nullable: true},
		{Name: "tags", Type: field.TypeJSON, Nullable: true},
		{Name: "fingerprint", Type: field.TypeString, Nullable: true},
		{Name: "duplicate_of", Type: field.TypeUUID, Nullable: true},
		{Name: "confidence_score", Type: field.TypeFloat32, Default: 0},
		{Name: "needs_review", Type: field.TypeBool, Default: false},
		{Name: "extracted_data", Type: field.TypeJSON, Nullable: true},
		{Name: "failure_reason", Type: field.TypeString, Nullable: true},
		{Name: "processing_started_at", Type: field.TypeTime, Nullable: true},
		{Name: "lease_expires_at", Type: field.TypeTime, Nullable: true},
		{Name: "paid_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "document_id", Type: field.TypeUUID, Unique: true, Nullable: true},
		{Name: "vendor_id", Type: field.TypeUUID, Nullable: true},
	}
	// InvoicesTable holds the schema information for the "invoices" table.
	InvoicesTable = &schema.Table{
		Name:       "invoices",
		Columns:    InvoicesColumns,
		PrimaryKey: []*schema.Column{InvoicesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "invoices_invoice_documents_invoice",
				Columns:    []*schema.Column{InvoicesColumns[23]},
				RefColumns: []*schema.Column{InvoiceDocumentsColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "invoices_vendors_invoices",
				Columns:    []*schema.Column{InvoicesColumns[24]},
				RefColumns: []*schema.Column{VendorsColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "invoice_user_id_status",
				Unique:  false,
				Columns: []*schema.Column{InvoicesColumns[1], InvoicesColumns[2]},
			},
			{
				Name:    "invoice_user_id_fingerprint",
				Unique:  false,
				Columns: []*schema.Column{InvoicesColumns[1], InvoicesColumns[12]},
			},
			{
				Name:    "invoice_user_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{InvoicesColumns[1], InvoicesColumns[21]},
			},
		},
	}
	// InvoiceDocumentsColumns holds the columns for the "invoice_documents" table.
	InvoiceDocumentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "user_id", Type: field.TypeUUID},
		{Name: "filename", Type: field.TypeString},
		{Name: "mime_type", Type: field.TypeString},
		{Name: "byte_size", Type: field.TypeInt},
		{Name: "content", Type: field.TypeBytes, SchemaType: map[string]string{"postgres": "bytea"}},
		{Name: "uploaded_at", Type: field.TypeTime},
	}
	// InvoiceDocumentsTable holds the schema information for the "invoice_documents" table.
	InvoiceDocumentsTable = &schema.Table{
		Name:       "invoice_documents",
		Columns:    InvoiceDocumentsColumns,
		PrimaryKey: []*schema.Column{InvoiceDocumentsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "invoicedocument_user_id_uploaded_at",
				Unique:  false,
				Columns: []*schema.Column{InvoiceDocumentsColumns[1], InvoiceDocumentsColumns[6]},
			},
		},
	}
	// InvoiceItemsColumns holds the columns for the "invoice_items" table.
	InvoiceItemsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "description", Type: field.TypeString},
		{Name: "quantity", Type: field.TypeFloat64, Default: 1},
		{Name: "unit_price", Type: field.TypeFloat64, Default: 0, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "total", Type: field.TypeFloat64, Default: 0, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "product_code", Type: field.TypeString, Nullable: true},
		{Name: "unit_of_measure", Type: field.TypeString, Nullable: true},
		{Name: "position", Type: field.TypeInt, Default: 0},
		{Name: "invoice_id", Type: field.TypeUUID},
	}
	// InvoiceItemsTable holds the schema information for the "invoice_items" table.
	InvoiceItemsTable = &schema.Table{
		Name:       "invoice_items",
		Columns:    InvoiceItemsColumns,
		PrimaryKey: []*schema.Column{InvoiceItemsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "invoice_items_invoices_items",
				Columns:    []*schema.Column{InvoiceItemsColumns[8]},
				RefColumns: []*schema.Column{InvoicesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
	}
	// ProcessingLogsColumns holds the columns for the "processing_logs" table.
	ProcessingLogsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "stage", Type: field.TypeString},
		{Name: "status", Type: field.TypeString},
		{Name: "message", Type: field.TypeString, Nullable: true},
		{Name: "attempt", Type: field.TypeInt, Default: 1},
		{Name: "duration_ms", Type: field.TypeInt64, Default: 0},
		{Name: "details", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "invoice_id", Type: field.TypeUUID},
	}
	// ProcessingLogsTable holds the schema information for the "processing_logs" table.
	ProcessingLogsTable = &schema.Table{
		Name:       "processing_logs",
		Columns:    ProcessingLogsColumns,
		PrimaryKey: []*schema.Column{ProcessingLogsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "processing_logs_invoices_logs",
				Columns:    []*schema.Column{ProcessingLogsColumns[8]},
				RefColumns: []*schema.Column{InvoicesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "processinglog_invoice_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{ProcessingLogsColumns[8], ProcessingLogsColumns[7]},
			},
		},
	}
	// VendorsColumns holds the columns for the "vendors" table.
	VendorsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "user_id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "normalized_name", Type: field.TypeString},
		{Name: "aliases", Type: field.TypeJSON, Nullable: true},
		{Name: "address", Type: field.TypeString, Nullable: true},
		{Name: "email", Type: field.TypeString, Nullable: true},
		{Name: "phone", Type: field.TypeString, Nullable: true},
		{Name: "ai_created", Type: field.TypeBool, Default: false},
		{Name: "confidence_score", Type: field.TypeFloat32, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// VendorsTable holds the schema information for the "vendors" table.
	VendorsTable = &schema.Table{
		Name:       "vendors",
		Columns:    VendorsColumns,
		PrimaryKey: []*schema.Column{VendorsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "vendor_user_id_normalized_name",
				Unique:  true,
				Columns: []*schema.Column{VendorsColumns[1], VendorsColumns[3]},
			},
			{
				Name:    "vendor_user_id",
				Unique:  false,
				Columns: []*schema.Column{VendorsColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		InvoicesTable,
		InvoiceDocumentsTable,
		InvoiceItemsTable,
		ProcessingLogsTable,
		VendorsTable,
	}
)

func init() {
	InvoicesTable.ForeignKeys[0].RefTable = InvoiceDocumentsTable
	InvoicesTable.ForeignKeys[1].RefTable = VendorsTable
	InvoicesTable.Annotation = &entsql.Annotation{
		Table: "invoices",
	}
	InvoiceDocumentsTable.Annotation = &entsql.Annotation{
		Table: "invoice_documents",
	}
	InvoiceItemsTable.ForeignKeys[0].RefTable = InvoicesTable
	InvoiceItemsTable.Annotation = &entsql.Annotation{
		Table: "invoice_items",
	}
	ProcessingLogsTable.ForeignKeys[0].RefTable = InvoicesTable
	ProcessingLogsTable.Annotation = &entsql.Annotation{
		Table: "processing_logs",
	}
	VendorsTable.Annotation = &entsql.Annotation{
		Table: "vendors",
	}
}
