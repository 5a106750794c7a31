// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/paperpilot/invoicer/gen/ent/invoice"
	"github.com/paperpilot/invoicer/gen/ent/invoicedocument"
)

// InvoiceDocumentCreate is the builder for creating a InvoiceDocument entity.
type InvoiceDocumentCreate struct {
	config
	mutation *InvoiceDocumentMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *InvoiceDocumentCreate) SetUserID(v uuid.UUID) *InvoiceDocumentCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetFilename sets the "filename" field.
func (_c *InvoiceDocumentCreate) SetFilename(v string) *InvoiceDocumentCreate {
	_c.mutation.SetFilename(v)
	return _c
}

// SetMimeType sets the "mime_type" field.
func (_c *InvoiceDocumentCreate) SetMimeType(v string) *InvoiceDocumentCreate {
	_c.mutation.SetMimeType(v)
	return _c
}

// SetByteSize sets the "byte_size" field.
func (_c *InvoiceDocumentCreate) SetByteSize(v int) *InvoiceDocumentCreate {
	_c.mutation.SetByteSize(v)
	return _c
}

// SetContent sets the "content" field.
func (_c *InvoiceDocumentCreate) SetContent(v []byte) *InvoiceDocumentCreate {
	_c.mutation.SetContent(v)
	return _c
}

// SetUploadedAt sets the "uploaded_at" field.
func (_c *InvoiceDocumentCreate) SetUploadedAt(v time.Time) *InvoiceDocumentCreate {
	_c.mutation.SetUploadedAt(v)
	return _c
}

// SetNillableUploadedAt sets the "uploaded_at" field if the given value is not nil.
func (_c *InvoiceDocumentCreate) SetNillableUploadedAt(v *time.Time) *InvoiceDocumentCreate {
	if v != nil {
		_c.SetUploadedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *InvoiceDocumentCreate) SetID(v uuid.UUID) *InvoiceDocumentCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *InvoiceDocumentCreate) SetNillableID(v *uuid.UUID) *InvoiceDocumentCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetInvoiceID sets the "invoice" edge to the Invoice entity by ID.
func (_c *InvoiceDocumentCreate) SetInvoiceID(id uuid.UUID) *InvoiceDocumentCreate {
	_c.mutation.SetInvoiceID(id)
	return _c
}

// SetNillableInvoiceID sets the "invoice" edge to the Invoice entity by ID if the given value is not nil.
func (_c *InvoiceDocumentCreate) SetNillableInvoiceID(id *uuid.UUID) *InvoiceDocumentCreate {
	if id != nil {
		_c = _c.SetInvoiceID(*id)
	}
	return _c
}

// SetInvoice sets the "invoice" edge to the Invoice entity.
func (_c *InvoiceDocumentCreate) SetInvoice(v *Invoice) *InvoiceDocumentCreate {
	return _c.SetInvoiceID(v.ID)
}

// Mutation returns the InvoiceDocumentMutation object of the builder.
func (_c *InvoiceDocumentCreate) Mutation() *InvoiceDocumentMutation {
	return _c.mutation
}

// Save creates the InvoiceDocument in the database.
func (_c *InvoiceDocumentCreate) Save(ctx context.Context) (*InvoiceDocument, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *InvoiceDocumentCreate) SaveX(ctx context.Context) *InvoiceDocument {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InvoiceDocumentCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InvoiceDocumentCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *InvoiceDocumentCreate) defaults() {
	if _, ok := _c.mutation.UploadedAt(); !ok {
		v := invoicedocument.DefaultUploadedAt()
		_c.mutation.SetUploadedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := invoicedocument.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *InvoiceDocumentCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "InvoiceDocument.user_id"`)}
	}
	if _, ok := _c.mutation.Filename(); !ok {
		return &ValidationError{Name: "filename", err: errors.New(`ent: missing required field "InvoiceDocument.filename"`)}
	}
	if v, ok := _c.mutation.Filename(); ok {
		if err := invoicedocument.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "InvoiceDocument.filename": %w`, err)}
		}
	}
	if _, ok := _c.mutation.MimeType(); !ok {
		return &ValidationError{Name: "mime_type", err: errors.New(`ent: missing required field "InvoiceDocument.mime_type"`)}
	}
	if v, ok := _c.mutation.MimeType(); ok {
		if err := invoicedocument.MimeTypeValidator(v); err != nil {
			return &ValidationError{Name: "mime_type", err: fmt.Errorf(`ent: validator failed for field "InvoiceDocument.mime_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ByteSize(); !ok {
		return &ValidationError{Name: "byte_size", err: errors.New(`ent: missing required field "InvoiceDocument.byte_size"`)}
	}
	if v, ok := _c.mutation.ByteSize(); ok {
		if err := invoicedocument.ByteSizeValidator(v); err != nil {
			return &ValidationError{Name: "byte_size", err: fmt.Errorf(`ent: validator failed for field "InvoiceDocument.byte_size": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Content(); !ok {
		return &ValidationError{Name: "content", err: errors.New(`ent: missing required field "InvoiceDocument.content"`)}
	}
	if _, ok := _c.mutation.UploadedAt(); !ok {
		return &ValidationError{Name: "uploaded_at", err: errors.New(`ent: missing required field "InvoiceDocument.uploaded_at"`)}
	}
	return nil
}

func (_c *InvoiceDocumentCreate) sqlSave(ctx context.Context) (*InvoiceDocument, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *InvoiceDocumentCreate) createSpec() (*InvoiceDocument, *sqlgraph.CreateSpec) {
	var (
		_node = &InvoiceDocument{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(invoicedocument.Table, sqlgraph.NewFieldSpec(invoicedocument.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(invoicedocument.FieldUserID, field.TypeUUID, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.Filename(); ok {
		_spec.SetField(invoicedocument.FieldFilename, field.TypeString, value)
		_node.Filename = value
	}
	if value, ok := _c.mutation.MimeType(); ok {
		_spec.SetField(invoicedocument.FieldMimeType, field.TypeString, value)
		_node.MimeType = value
	}
	if value, ok := _c.mutation.ByteSize(); ok {
		_spec.SetField(invoicedocument.FieldByteSize, field.TypeInt, value)
		_node.ByteSize = value
	}
	if value, ok := _c.mutation.Content(); ok {
		_spec.SetField(invoicedocument.FieldContent, field.TypeBytes, value)
		_node.Content = value
	}
	if value, ok := _c.mutation.UploadedAt(); ok {
		_spec.SetField(invoicedocument.FieldUploadedAt, field.TypeTime, value)
		_node.UploadedAt = value
	}
	if nodes := _c.mutation.InvoiceIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// InvoiceDocumentCreateBulk is the builder for creating many InvoiceDocument entities in bulk.
type InvoiceDocumentCreateBulk struct {
	config
	err      error
	builders []*InvoiceDocumentCreate
}

// Save creates the InvoiceDocument entities in the database.
func (_c *InvoiceDocumentCreateBulk) Save(ctx context.Context) ([]*InvoiceDocument, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*InvoiceDocument, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*InvoiceDocumentMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *InvoiceDocumentCreateBulk) SaveX(ctx context.Context) []*InvoiceDocument {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InvoiceDocumentCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InvoiceDocumentCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
