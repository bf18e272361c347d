// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/taxfolio/docpipe/gen/ent/predicate"
	"github.com/taxfolio/docpipe/gen/ent/taxclient"
	"github.com/taxfolio/docpipe/gen/ent/taxyear"
)

// TaxClientUpdate is the builder for updating TaxClient entities.
type TaxClientUpdate struct {
	config
	hooks    []Hook
	mutation *TaxClientMutation
}

// Where appends a list predicates to the TaxClientUpdate builder.
func (_u *TaxClientUpdate) Where(ps ...predicate.TaxClient) *TaxClientUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *TaxClientUpdate) SetName(v string) *TaxClientUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *TaxClientUpdate) SetNillableName(v *string) *TaxClientUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetEmail sets the "email" field.
func (_u *TaxClientUpdate) SetEmail(v string) *TaxClientUpdate {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *TaxClientUpdate) SetNillableEmail(v *string) *TaxClientUpdate {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// ClearEmail clears the value of the "email" field.
func (_u *TaxClientUpdate) ClearEmail() *TaxClientUpdate {
	_u.mutation.ClearEmail()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *TaxClientUpdate) SetCreatedAt(v time.Time) *TaxClientUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *TaxClientUpdate) SetNillableCreatedAt(v *time.Time) *TaxClientUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TaxClientUpdate) SetUpdatedAt(v time.Time) *TaxClientUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddTaxYearIDs adds the "tax_years" edge to the TaxYear entity by IDs.
func (_u *TaxClientUpdate) AddTaxYearIDs(ids ...uuid.UUID) *TaxClientUpdate {
	_u.mutation.AddTaxYearIDs(ids...)
	return _u
}

// AddTaxYears adds the "tax_years" edges to the TaxYear entity.
func (_u *TaxClientUpdate) AddTaxYears(v ...*TaxYear) *TaxClientUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTaxYearIDs(ids...)
}

// Mutation returns the TaxClientMutation object of the builder.
func (_u *TaxClientUpdate) Mutation() *TaxClientMutation {
	return _u.mutation
}

// ClearTaxYears clears all "tax_years" edges to the TaxYear entity.
func (_u *TaxClientUpdate) ClearTaxYears() *TaxClientUpdate {
	_u.mutation.ClearTaxYears()
	return _u
}

// RemoveTaxYearIDs removes the "tax_years" edge to TaxYear entities by IDs.
func (_u *TaxClientUpdate) RemoveTaxYearIDs(ids ...uuid.UUID) *TaxClientUpdate {
	_u.mutation.RemoveTaxYearIDs(ids...)
	return _u
}

// RemoveTaxYears removes "tax_years" edges to TaxYear entities.
func (_u *TaxClientUpdate) RemoveTaxYears(v ...*TaxYear) *TaxClientUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTaxYearIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TaxClientUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TaxClientUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TaxClientUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TaxClientUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TaxClientUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := taxclient.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TaxClientUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := taxclient.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "TaxClient.name": %w`, err)}
		}
	}
	return nil
}

func (_u *TaxClientUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(taxclient.Table, taxclient.Columns, sqlgraph.NewFieldSpec(taxclient.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(taxclient.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(taxclient.FieldEmail, field.TypeString, value)
	}
	if _u.mutation.EmailCleared() {
		_spec.ClearField(taxclient.FieldEmail, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(taxclient.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(taxclient.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.TaxYearsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   taxclient.TaxYearsTable,
			Columns: []string{taxclient.TaxYearsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(taxyear.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTaxYearsIDs(); len(nodes) > 0 && !_u.mutation.TaxYearsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   taxclient.TaxYearsTable,
			Columns: []string{taxclient.TaxYearsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(taxyear.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TaxYearsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   taxclient.TaxYearsTable,
			Columns: []string{taxclient.TaxYearsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(taxyear.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{taxclient.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TaxClientUpdateOne is the builder for updating a single TaxClient entity.
type TaxClientUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TaxClientMutation
}

// SetName sets the "name" field.
func (_u *TaxClientUpdateOne) SetName(v string) *TaxClientUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *TaxClientUpdateOne) SetNillableName(v *string) *TaxClientUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetEmail sets the "email" field.
func (_u *TaxClientUpdateOne) SetEmail(v string) *TaxClientUpdateOne {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *TaxClientUpdateOne) SetNillableEmail(v *string) *TaxClientUpdateOne {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// ClearEmail clears the value of the "email" field.
func (_u *TaxClientUpdateOne) ClearEmail() *TaxClientUpdateOne {
	_u.mutation.ClearEmail()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *TaxClientUpdateOne) SetCreatedAt(v time.Time) *TaxClientUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *TaxClientUpdateOne) SetNillableCreatedAt(v *time.Time) *TaxClientUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TaxClientUpdateOne) SetUpdatedAt(v time.Time) *TaxClientUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddTaxYearIDs adds the "tax_years" edge to the TaxYear entity by IDs.
func (_u *TaxClientUpdateOne) AddTaxYearIDs(ids ...uuid.UUID) *TaxClientUpdateOne {
	_u.mutation.AddTaxYearIDs(ids...)
	return _u
}

// AddTaxYears adds the "tax_years" edges to the TaxYear entity.
func (_u *TaxClientUpdateOne) AddTaxYears(v ...*TaxYear) *TaxClientUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTaxYearIDs(ids...)
}

// Mutation returns the TaxClientMutation object of the builder.
func (_u *TaxClientUpdateOne) Mutation() *TaxClientMutation {
	return _u.mutation
}

// ClearTaxYears clears all "tax_years" edges to the TaxYear entity.
func (_u *TaxClientUpdateOne) ClearTaxYears() *TaxClientUpdateOne {
	_u.mutation.ClearTaxYears()
	return _u
}

// RemoveTaxYearIDs removes the "tax_years" edge to TaxYear entities by IDs.
func (_u *TaxClientUpdateOne) RemoveTaxYearIDs(ids ...uuid.UUID) *TaxClientUpdateOne {
	_u.mutation.RemoveTaxYearIDs(ids...)
	return _u
}

// RemoveTaxYears removes "tax_years" edges to TaxYear entities.
func (_u *TaxClientUpdateOne) RemoveTaxYears(v ...*TaxYear) *TaxClientUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTaxYearIDs(ids...)
}

// Where appends a list predicates to the TaxClientUpdate builder.
func (_u *TaxClientUpdateOne) Where(ps ...predicate.TaxClient) *TaxClientUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TaxClientUpdateOne) Select(field string, fields ...string) *TaxClientUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TaxClient entity.
func (_u *TaxClientUpdateOne) Save(ctx context.Context) (*TaxClient, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TaxClientUpdateOne) SaveX(ctx context.Context) *TaxClient {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TaxClientUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TaxClientUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TaxClientUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := taxclient.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TaxClientUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := taxclient.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "TaxClient.name": %w`, err)}
		}
	}
	return nil
}

func (_u *TaxClientUpdateOne) sqlSave(ctx context.Context) (_node *TaxClient, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(taxclient.Table, taxclient.Columns, sqlgraph.NewFieldSpec(taxclient.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TaxClient.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, taxclient.FieldID)
		for _, f := range fields {
			if !taxclient.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != taxclient.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(taxclient.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(taxclient.FieldEmail, field.TypeString, value)
	}
	if _u.mutation.EmailCleared() {
		_spec.ClearField(taxclient.FieldEmail, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(taxclient.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(taxclient.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.TaxYearsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   taxclient.TaxYearsTable,
			Columns: []string{taxclient.TaxYearsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(taxyear.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTaxYearsIDs(); len(nodes) > 0 && !_u.mutation.TaxYearsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   taxclient.TaxYearsTable,
			Columns: []string{taxclient.TaxYearsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(taxyear.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TaxYearsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   taxclient.TaxYearsTable,
			Columns: []string{taxclient.TaxYearsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(taxyear.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &TaxClient{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{taxclient.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
