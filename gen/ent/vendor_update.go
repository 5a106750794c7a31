// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/paperpilot/invoicer/gen/ent/invoice"
	"github.com/paperpilot/invoicer/gen/ent/predicate"
	"github.com/paperpilot/invoicer/gen/ent/vendor"
)

// VendorUpdate is the builder for updating Vendor entities.
type VendorUpdate struct {
	config
	hooks    []Hook
	mutation *VendorMutation
}

// Where appends a list predicates to the VendorUpdate builder.
func (_u *VendorUpdate) Where(ps ...predicate.Vendor) *VendorUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *VendorUpdate) SetUserID(v uuid.UUID) *VendorUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *VendorUpdate) SetNillableUserID(v *uuid.UUID) *VendorUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *VendorUpdate) SetName(v string) *VendorUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *VendorUpdate) SetNillableName(v *string) *VendorUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetNormalizedName sets the "normalized_name" field.
func (_u *VendorUpdate) SetNormalizedName(v string) *VendorUpdate {
	_u.mutation.SetNormalizedName(v)
	return _u
}

// SetNillableNormalizedName sets the "normalized_name" field if the given value is not nil.
func (_u *VendorUpdate) SetNillableNormalizedName(v *string) *VendorUpdate {
	if v != nil {
		_u.SetNormalizedName(*v)
	}
	return _u
}

// SetAliases sets the "aliases" field.
func (_u *VendorUpdate) SetAliases(v []string) *VendorUpdate {
	_u.mutation.SetAliases(v)
	return _u
}

// AppendAliases appends value to the "aliases" field.
func (_u *VendorUpdate) AppendAliases(v []string) *VendorUpdate {
	_u.mutation.AppendAliases(v)
	return _u
}

// ClearAliases clears the value of the "aliases" field.
func (_u *VendorUpdate) ClearAliases() *VendorUpdate {
	_u.mutation.ClearAliases()
	return _u
}

// SetAddress sets the "address" field.
func (_u *VendorUpdate) SetAddress(v string) *VendorUpdate {
	_u.mutation.SetAddress(v)
	return _u
}

// SetNillableAddress sets the "address" field if the given value is not nil.
func (_u *VendorUpdate) SetNillableAddress(v *string) *VendorUpdate {
	if v != nil {
		_u.SetAddress(*v)
	}
	return _u
}

// ClearAddress clears the value of the "address" field.
func (_u *VendorUpdate) ClearAddress() *VendorUpdate {
	_u.mutation.ClearAddress()
	return _u
}

// SetEmail sets the "email" field.
func (_u *VendorUpdate) SetEmail(v string) *VendorUpdate {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *VendorUpdate) SetNillableEmail(v *string) *VendorUpdate {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// ClearEmail clears the value of the "email" field.
func (_u *VendorUpdate) ClearEmail() *VendorUpdate {
	_u.mutation.ClearEmail()
	return _u
}

// SetPhone sets the "phone" field.
func (_u *VendorUpdate) SetPhone(v string) *VendorUpdate {
	_u.mutation.SetPhone(v)
	return _u
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_u *VendorUpdate) SetNillablePhone(v *string) *VendorUpdate {
	if v != nil {
		_u.SetPhone(*v)
	}
	return _u
}

// ClearPhone clears the value of the "phone" field.
func (_u *VendorUpdate) ClearPhone() *VendorUpdate {
	_u.mutation.ClearPhone()
	return _u
}

// SetAiCreated sets the "ai_created" field.
func (_u *VendorUpdate) SetAiCreated(v bool) *VendorUpdate {
	_u.mutation.SetAiCreated(v)
	return _u
}

// SetNillableAiCreated sets the "ai_created" field if the given value is not nil.
func (_u *VendorUpdate) SetNillableAiCreated(v *bool) *VendorUpdate {
	if v != nil {
		_u.SetAiCreated(*v)
	}
	return _u
}

// SetConfidenceScore sets the "confidence_score" field.
func (_u *VendorUpdate) SetConfidenceScore(v float32) *VendorUpdate {
	_u.mutation.ResetConfidenceScore()
	_u.mutation.SetConfidenceScore(v)
	return _u
}

// SetNillableConfidenceScore sets the "confidence_score" field if the given value is not nil.
func (_u *VendorUpdate) SetNillableConfidenceScore(v *float32) *VendorUpdate {
	if v != nil {
		_u.SetConfidenceScore(*v)
	}
	return _u
}

// AddConfidenceScore adds value to the "confidence_score" field.
func (_u *VendorUpdate) AddConfidenceScore(v float32) *VendorUpdate {
	_u.mutation.AddConfidenceScore(v)
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *VendorUpdate) SetCreatedAt(v time.Time) *VendorUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *VendorUpdate) SetNillableCreatedAt(v *time.Time) *VendorUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *VendorUpdate) SetUpdatedAt(v time.Time) *VendorUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddInvoiceIDs adds the "invoices" edge to the Invoice entity by IDs.
func (_u *VendorUpdate) AddInvoiceIDs(ids ...uuid.UUID) *VendorUpdate {
	_u.mutation.AddInvoiceIDs(ids...)
	return _u
}

// AddInvoices adds the "invoices" edges to the Invoice entity.
func (_u *VendorUpdate) AddInvoices(v ...*Invoice) *VendorUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddInvoiceIDs(ids...)
}

// Mutation returns the VendorMutation object of the builder.
func (_u *VendorUpdate) Mutation() *VendorMutation {
	return _u.mutation
}

// ClearInvoices clears all "invoices" edges to the Invoice entity.
func (_u *VendorUpdate) ClearInvoices() *VendorUpdate {
	_u.mutation.ClearInvoices()
	return _u
}

// RemoveInvoiceIDs removes the "invoices" edge to Invoice entities by IDs.
func (_u *VendorUpdate) RemoveInvoiceIDs(ids ...uuid.UUID) *VendorUpdate {
	_u.mutation.RemoveInvoiceIDs(ids...)
	return _u
}

// RemoveInvoices removes "invoices" edges to Invoice entities.
func (_u *VendorUpdate) RemoveInvoices(v ...*Invoice) *VendorUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveInvoiceIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *VendorUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *VendorUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *VendorUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *VendorUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *VendorUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := vendor.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *VendorUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := vendor.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Vendor.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.NormalizedName(); ok {
		if err := vendor.NormalizedNameValidator(v); err != nil {
			return &ValidationError{Name: "normalized_name", err: fmt.Errorf(`ent: validator failed for field "Vendor.normalized_name": %w`, err)}
		}
	}
	return nil
}

func (_u *VendorUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(vendor.Table, vendor.Columns, sqlgraph.NewFieldSpec(vendor.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(vendor.FieldUserID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(vendor.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.NormalizedName(); ok {
		_spec.SetField(vendor.FieldNormalizedName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Aliases(); ok {
		_spec.SetField(vendor.FieldAliases, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAliases(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, vendor.FieldAliases, value)
		})
	}
	if _u.mutation.AliasesCleared() {
		_spec.ClearField(vendor.FieldAliases, field.TypeJSON)
	}
	if value, ok := _u.mutation.Address(); ok {
		_spec.SetField(vendor.FieldAddress, field.TypeString, value)
	}
	if _u.mutation.AddressCleared() {
		_spec.ClearField(vendor.FieldAddress, field.TypeString)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(vendor.FieldEmail, field.TypeString, value)
	}
	if _u.mutation.EmailCleared() {
		_spec.ClearField(vendor.FieldEmail, field.TypeString)
	}
	if value, ok := _u.mutation.Phone(); ok {
		_spec.SetField(vendor.FieldPhone, field.TypeString, value)
	}
	if _u.mutation.PhoneCleared() {
		_spec.ClearField(vendor.FieldPhone, field.TypeString)
	}
	if value, ok := _u.mutation.AiCreated(); ok {
		_spec.SetField(vendor.FieldAiCreated, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ConfidenceScore(); ok {
		_spec.SetField(vendor.FieldConfidenceScore, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.AddedConfidenceScore(); ok {
		_spec.AddField(vendor.FieldConfidenceScore, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(vendor.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(vendor.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.InvoicesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   vendor.InvoicesTable,
			Columns: []string{vendor.InvoicesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(invoice.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedInvoicesIDs(); len(nodes) > 0 && !_u.mutation.InvoicesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   vendor.InvoicesTable,
			Columns: []string{vendor.InvoicesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(invoice.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.InvoicesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   vendor.InvoicesTable,
			Columns: []string{vendor.InvoicesColumn},
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
			err = &NotFoundError{vendor.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// VendorUpdateOne is the builder for updating a single Vendor entity.
type VendorUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *VendorMutation
}

// SetUserID sets the "user_id" field.
func (_u *VendorUpdateOne) SetUserID(v uuid.UUID) *VendorUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *VendorUpdateOne) SetNillableUserID(v *uuid.UUID) *VendorUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *VendorUpdateOne) SetName(v string) *VendorUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *VendorUpdateOne) SetNillableName(v *string) *VendorUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetNormalizedName sets the "normalized_name" field.
func (_u *VendorUpdateOne) SetNormalizedName(v string) *VendorUpdateOne {
	_u.mutation.SetNormalizedName(v)
	return _u
}

// SetNillableNormalizedName sets the "normalized_name" field if the given value is not nil.
func (_u *VendorUpdateOne) SetNillableNormalizedName(v *string) *VendorUpdateOne {
	if v != nil {
		_u.SetNormalizedName(*v)
	}
	return _u
}

// SetAliases sets the "aliases" field.
func (_u *VendorUpdateOne) SetAliases(v []string) *VendorUpdateOne {
	_u.mutation.SetAliases(v)
	return _u
}

// AppendAliases appends value to the "aliases" field.
func (_u *VendorUpdateOne) AppendAliases(v []string) *VendorUpdateOne {
	_u.mutation.AppendAliases(v)
	return _u
}

// ClearAliases clears the value of the "aliases" field.
func (_u *VendorUpdateOne) ClearAliases() *VendorUpdateOne {
	_u.mutation.ClearAliases()
	return _u
}

// SetAddress sets the "address" field.
func (_u *VendorUpdateOne) SetAddress(v string) *VendorUpdateOne {
	_u.mutation.SetAddress(v)
	return _u
}

// SetNillableAddress sets the "address" field if the given value is not nil.
func (_u *VendorUpdateOne) SetNillableAddress(v *string) *VendorUpdateOne {
	if v != nil {
		_u.SetAddress(*v)
	}
	return _u
}

// ClearAddress clears the value of the "address" field.
func (_u *VendorUpdateOne) ClearAddress() *VendorUpdateOne {
	_u.mutation.ClearAddress()
	return _u
}

// SetEmail sets the "email" field.
func (_u *VendorUpdateOne) SetEmail(v string) *VendorUpdateOne {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *VendorUpdateOne) SetNillableEmail(v *string) *VendorUpdateOne {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// ClearEmail clears the value of the "email" field.
func (_u *VendorUpdateOne) ClearEmail() *VendorUpdateOne {
	_u.mutation.ClearEmail()
	return _u
}

// SetPhone sets the "phone" field.
func (_u *VendorUpdateOne) SetPhone(v string) *VendorUpdateOne {
	_u.mutation.SetPhone(v)
	return _u
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_u *VendorUpdateOne) SetNillablePhone(v *string) *VendorUpdateOne {
	if v != nil {
		_u.SetPhone(*v)
	}
	return _u
}

// ClearPhone clears the value of the "phone" field.
func (_u *VendorUpdateOne) ClearPhone() *VendorUpdateOne {
	_u.mutation.ClearPhone()
	return _u
}

// SetAiCreated sets the "ai_created" field.
func (_u *VendorUpdateOne) SetAiCreated(v bool) *VendorUpdateOne {
	_u.mutation.SetAiCreated(v)
	return _u
}

// SetNillableAiCreated sets the "ai_created" field if the given value is not nil.
func (_u *VendorUpdateOne) SetNillableAiCreated(v *bool) *VendorUpdateOne {
	if v != nil {
		_u.SetAiCreated(*v)
	}
	return _u
}

// SetConfidenceScore sets the "confidence_score" field.
func (_u *VendorUpdateOne) SetConfidenceScore(v float32) *VendorUpdateOne {
	_u.mutation.ResetConfidenceScore()
	_u.mutation.SetConfidenceScore(v)
	return _u
}

// SetNillableConfidenceScore sets the "confidence_score" field if the given value is not nil.
func (_u *VendorUpdateOne) SetNillableConfidenceScore(v *float32) *VendorUpdateOne {
	if v != nil {
		_u.SetConfidenceScore(*v)
	}
	return _u
}

// AddConfidenceScore adds value to the "confidence_score" field.
func (_u *VendorUpdateOne) AddConfidenceScore(v float32) *VendorUpdateOne {
	_u.mutation.AddConfidenceScore(v)
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *VendorUpdateOne) SetCreatedAt(v time.Time) *VendorUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *VendorUpdateOne) SetNillableCreatedAt(v *time.Time) *VendorUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *VendorUpdateOne) SetUpdatedAt(v time.Time) *VendorUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddInvoiceIDs adds the "invoices" edge to the Invoice entity by IDs.
func (_u *VendorUpdateOne) AddInvoiceIDs(ids ...uuid.UUID) *VendorUpdateOne {
	_u.mutation.AddInvoiceIDs(ids...)
	return _u
}

// AddInvoices adds the "invoices" edges to the Invoice entity.
func (_u *VendorUpdateOne) AddInvoices(v ...*Invoice) *VendorUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddInvoiceIDs(ids...)
}

// Mutation returns the VendorMutation object of the builder.
func (_u *VendorUpdateOne) Mutation() *VendorMutation {
	return _u.mutation
}

// ClearInvoices clears all "invoices" edges to the Invoice entity.
func (_u *VendorUpdateOne) ClearInvoices() *VendorUpdateOne {
	_u.mutation.ClearInvoices()
	return _u
}

// RemoveInvoiceIDs removes the "invoices" edge to Invoice entities by IDs.
func (_u *VendorUpdateOne) RemoveInvoiceIDs(ids ...uuid.UUID) *VendorUpdateOne {
	_u.mutation.RemoveInvoiceIDs(ids...)
	return _u
}

// RemoveInvoices removes "invoices" edges to Invoice entities.
func (_u *VendorUpdateOne) RemoveInvoices(v ...*Invoice) *VendorUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveInvoiceIDs(ids...)
}

// Where appends a list predicates to the VendorUpdate builder.
func (_u *VendorUpdateOne) Where(ps ...predicate.Vendor) *VendorUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *VendorUpdateOne) Select(field string, fields ...string) *VendorUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Vendor entity.
func (_u *VendorUpdateOne) Save(ctx context.Context) (*Vendor, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *VendorUpdateOne) SaveX(ctx context.Context) *Vendor {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *VendorUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *VendorUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *VendorUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := vendor.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *VendorUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := vendor.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Vendor.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.NormalizedName(); ok {
		if err := vendor.NormalizedNameValidator(v); err != nil {
			return &ValidationError{Name: "normalized_name", err: fmt.Errorf(`ent: validator failed for field "Vendor.normalized_name": %w`, err)}
		}
	}
	return nil
}

func (_u *VendorUpdateOne) sqlSave(ctx context.Context) (_node *Vendor, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(vendor.Table, vendor.Columns, sqlgraph.NewFieldSpec(vendor.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Vendor.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, vendor.FieldID)
		for _, f := range fields {
			if !vendor.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != vendor.FieldID {
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
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(vendor.FieldUserID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(vendor.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.NormalizedName(); ok {
		_spec.SetField(vendor.FieldNormalizedName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Aliases(); ok {
		_spec.SetField(vendor.FieldAliases, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAliases(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, vendor.FieldAliases, value)
		})
	}
	if _u.mutation.AliasesCleared() {
		_spec.ClearField(vendor.FieldAliases, field.TypeJSON)
	}
	if value, ok := _u.mutation.Address(); ok {
		_spec.SetField(vendor.FieldAddress, field.TypeString, value)
	}
	if _u.mutation.AddressCleared() {
		_spec.ClearField(vendor.FieldAddress, field.TypeString)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(vendor.FieldEmail, field.TypeString, value)
	}
	if _u.mutation.EmailCleared() {
		_spec.ClearField(vendor.FieldEmail, field.TypeString)
	}
	if value, ok := _u.mutation.Phone(); ok {
		_spec.SetField(vendor.FieldPhone, field.TypeString, value)
	}
	if _u.mutation.PhoneCleared() {
		_spec.ClearField(vendor.FieldPhone, field.TypeString)
	}
	if value, ok := _u.mutation.AiCreated(); ok {
		_spec.SetField(vendor.FieldAiCreated, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ConfidenceScore(); ok {
		_spec.SetField(vendor.FieldConfidenceScore, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.AddedConfidenceScore(); ok {
		_spec.AddField(vendor.FieldConfidenceScore, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(vendor.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(vendor.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.InvoicesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   vendor.InvoicesTable,
			Columns: []string{vendor.InvoicesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(invoice.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedInvoicesIDs(); len(nodes) > 0 && !_u.mutation.InvoicesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   vendor.InvoicesTable,
			Columns: []string{vendor.InvoicesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(invoice.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.InvoicesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   vendor.InvoicesTable,
			Columns: []string{vendor.InvoicesColumn},
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
	_node = &Vendor{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{vendor.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
