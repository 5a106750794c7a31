// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/paperpilot/invoicer/gen/ent/invoice"
	"github.com/paperpilot/invoicer/gen/ent/invoicedocument"
	"github.com/paperpilot/invoicer/gen/ent/predicate"
)

// InvoiceDocumentUpdate is the builder for updating InvoiceDocument entities.
type InvoiceDocumentUpdate struct {
	config
	hooks    []Hook
	mutation *InvoiceDocumentMutation
}

// Where appends a list predicates to the InvoiceDocumentUpdate builder.
func (_u *InvoiceDocumentUpdate) Where(ps ...predicate.InvoiceDocument) *InvoiceDocumentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetInvoiceID sets the "invoice" edge to the Invoice entity by ID.
func (_u *InvoiceDocumentUpdate) SetInvoiceID(id uuid.UUID) *InvoiceDocumentUpdate {
	_u.mutation.SetInvoiceID(id)
	return _u
}

// SetNillableInvoiceID sets the "invoice" edge to the Invoice entity by ID if the given value is not nil.
func (_u *InvoiceDocumentUpdate) SetNillableInvoiceID(id *uuid.UUID) *InvoiceDocumentUpdate {
	if id != nil {
		_u = _u.SetInvoiceID(*id)
	}
	return _u
}

// SetInvoice sets the "invoice" edge to the Invoice entity.
func (_u *InvoiceDocumentUpdate) SetInvoice(v *Invoice) *InvoiceDocumentUpdate {
	return _u.SetInvoiceID(v.ID)
}

// Mutation returns the InvoiceDocumentMutation object of the builder.
func (_u *InvoiceDocumentUpdate) Mutation() *InvoiceDocumentMutation {
	return _u.mutation
}

// ClearInvoice clears the "invoice" edge to the Invoice entity.
func (_u *InvoiceDocumentUpdate) ClearInvoice() *InvoiceDocumentUpdate {
	_u.mutation.ClearInvoice()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *InvoiceDocumentUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InvoiceDocumentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *InvoiceDocumentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InvoiceDocumentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *InvoiceDocumentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(invoicedocument.Table, invoicedocument.Columns, sqlgraph.NewFieldSpec(invoicedocument.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.InvoiceCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   invoicedocument.InvoiceTable,
			Columns: []string{invoicedocument.InvoiceColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(invoice.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.InvoiceIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   invoicedocument.InvoiceTable,
			Columns: []string{invoicedocument.InvoiceColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(invoice.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{invoicedocument.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// InvoiceDocumentUpdateOne is the builder for updating a single InvoiceDocument entity.
type InvoiceDocumentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *InvoiceDocumentMutation
}

// SetInvoiceID sets the "invoice" edge to the Invoice entity by ID.
func (_u *InvoiceDocumentUpdateOne) SetInvoiceID(id uuid.UUID) *InvoiceDocumentUpdateOne {
	_u.mutation.SetInvoiceID(id)
	return _u
}

// SetNillableInvoiceID sets the "invoice" edge to the Invoice entity by ID if the given value is not nil.
func (_u *InvoiceDocumentUpdateOne) SetNillableInvoiceID(id *uuid.UUID) *InvoiceDocumentUpdateOne {
	if id != nil {
		_u = _u.SetInvoiceID(*id)
	}
	return _u
}

// SetInvoice sets the "invoice" edge to the Invoice entity.
func (_u *InvoiceDocumentUpdateOne) SetInvoice(v *Invoice) *InvoiceDocumentUpdateOne {
	return _u.SetInvoiceID(v.ID)
}

// Mutation returns the InvoiceDocumentMutation object of the builder.
func (_u *InvoiceDocumentUpdateOne) Mutation() *InvoiceDocumentMutation {
	return _u.mutation
}

// ClearInvoice clears the "invoice" edge to the Invoice entity.
func (_u *InvoiceDocumentUpdateOne) ClearInvoice() *InvoiceDocumentUpdateOne {
	_u.mutation.ClearInvoice()
	return _u
}

// Where appends a list predicates to the InvoiceDocumentUpdate builder.
func (_u *InvoiceDocumentUpdateOne) Where(ps ...predicate.InvoiceDocument) *InvoiceDocumentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *InvoiceDocumentUpdateOne) Select(field string, fields ...string) *InvoiceDocumentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated InvoiceDocument entity.
func (_u *InvoiceDocumentUpdateOne) Save(ctx context.Context) (*InvoiceDocument, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InvoiceDocumentUpdateOne) SaveX(ctx context.Context) *InvoiceDocument {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *InvoiceDocumentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InvoiceDocumentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *InvoiceDocumentUpdateOne) sqlSave(ctx context.Context) (_node *InvoiceDocument, err error) {
	_spec := sqlgraph.NewUpdateSpec(invoicedocument.Table, invoicedocument.Columns, sqlgraph.NewFieldSpec(invoicedocument.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "InvoiceDocument.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, invoicedocument.FieldID)
		for _, f := range fields {
			if !invoicedocument.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != invoicedocument.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.InvoiceCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   invoicedocument.InvoiceTable,
			Columns: []string{invoicedocument.InvoiceColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(invoice.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.InvoiceIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   invoicedocument.InvoiceTable,
			Columns: []string{invoicedocument.InvoiceColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(invoice.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &InvoiceDocument{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{invoicedocument.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
