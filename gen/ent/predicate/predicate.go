// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Invoice is the predicate function for invoice builders.
type Invoice func(*sql.Selector)

// InvoiceDocument is the predicate function for invoicedocument builders.
type InvoiceDocument func(*sql.Selector)

// InvoiceItem is the predicate function for invoiceitem builders.
type InvoiceItem func(*sql.Selector)

// ProcessingLog is the predicate function for processinglog builders.
type ProcessingLog func(*sql.Selector)

// Vendor is the predicate function for vendor builders.
type Vendor func(*sql.Selector)
