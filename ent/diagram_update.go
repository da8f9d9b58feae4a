// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/marblesj/wace-student-trainer/ent/diagram"
	"github.com/marblesj/wace-student-trainer/ent/predicate"
)

// DiagramUpdate is the builder for updating Diagram entities.
type DiagramUpdate struct {
	config
	hooks    []Hook
	mutation *DiagramMutation
}

// Where appends a list predicates to the DiagramUpdate builder.
func (_u *DiagramUpdate) Where(ps ...predicate.Diagram) *DiagramUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetFilename sets the "filename" field.
func (_u *DiagramUpdate) SetFilename(v string) *DiagramUpdate {
	_u.mutation.SetFilename(v)
	return _u
}

// SetNillableFilename sets the "filename" field if the given value is not nil.
func (_u *DiagramUpdate) SetNillableFilename(v *string) *DiagramUpdate {
	if v != nil {
		_u.SetFilename(*v)
	}
	return _u
}

// SetDataURL sets the "data_url" field.
func (_u *DiagramUpdate) SetDataURL(v string) *DiagramUpdate {
	_u.mutation.SetDataURL(v)
	return _u
}

// SetNillableDataURL sets the "data_url" field if the given value is not nil.
func (_u *DiagramUpdate) SetNillableDataURL(v *string) *DiagramUpdate {
	if v != nil {
		_u.SetDataURL(*v)
	}
	return _u
}

// SetImportedFrom sets the "imported_from" field.
func (_u *DiagramUpdate) SetImportedFrom(v string) *DiagramUpdate {
	_u.mutation.SetImportedFrom(v)
	return _u
}

// SetNillableImportedFrom sets the "imported_from" field if the given value is not nil.
func (_u *DiagramUpdate) SetNillableImportedFrom(v *string) *DiagramUpdate {
	if v != nil {
		_u.SetImportedFrom(*v)
	}
	return _u
}

// Mutation returns the DiagramMutation object of the builder.
func (_u *DiagramUpdate) Mutation() *DiagramMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DiagramUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DiagramUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DiagramUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DiagramUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DiagramUpdate) check() error {
	if v, ok := _u.mutation.Filename(); ok {
		if err := diagram.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "Diagram.filename": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DataURL(); ok {
		if err := diagram.DataURLValidator(v); err != nil {
			return &ValidationError{Name: "data_url", err: fmt.Errorf(`ent: validator failed for field "Diagram.data_url": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ImportedFrom(); ok {
		if err := diagram.ImportedFromValidator(v); err != nil {
			return &ValidationError{Name: "imported_from", err: fmt.Errorf(`ent: validator failed for field "Diagram.imported_from": %w`, err)}
		}
	}
	return nil
}

func (_u *DiagramUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(diagram.Table, diagram.Columns, sqlgraph.NewFieldSpec(diagram.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Filename(); ok {
		_spec.SetField(diagram.FieldFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.DataURL(); ok {
		_spec.SetField(diagram.FieldDataURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.ImportedFrom(); ok {
		_spec.SetField(diagram.FieldImportedFrom, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{diagram.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DiagramUpdateOne is the builder for updating a single Diagram entity.
type DiagramUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DiagramMutation
}

// SetFilename sets the "filename" field.
func (_u *DiagramUpdateOne) SetFilename(v string) *DiagramUpdateOne {
	_u.mutation.SetFilename(v)
	return _u
}

// SetNillableFilename sets the "filename" field if the given value is not nil.
func (_u *DiagramUpdateOne) SetNillableFilename(v *string) *DiagramUpdateOne {
	if v != nil {
		_u.SetFilename(*v)
	}
	return _u
}

// SetDataURL sets the "data_url" field.
func (_u *DiagramUpdateOne) SetDataURL(v string) *DiagramUpdateOne {
	_u.mutation.SetDataURL(v)
	return _u
}

// SetNillableDataURL sets the "data_url" field if the given value is not nil.
func (_u *DiagramUpdateOne) SetNillableDataURL(v *string) *DiagramUpdateOne {
	if v != nil {
		_u.SetDataURL(*v)
	}
	return _u
}

// SetImportedFrom sets the "imported_from" field.
func (_u *DiagramUpdateOne) SetImportedFrom(v string) *DiagramUpdateOne {
	_u.mutation.SetImportedFrom(v)
	return _u
}

// SetNillableImportedFrom sets the "imported_from" field if the given value is not nil.
func (_u *DiagramUpdateOne) SetNillableImportedFrom(v *string) *DiagramUpdateOne {
	if v != nil {
		_u.SetImportedFrom(*v)
	}
	return _u
}

// Mutation returns the DiagramMutation object of the builder.
func (_u *DiagramUpdateOne) Mutation() *DiagramMutation {
	return _u.mutation
}

// Where appends a list predicates to the DiagramUpdate builder.
func (_u *DiagramUpdateOne) Where(ps ...predicate.Diagram) *DiagramUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DiagramUpdateOne) Select(field string, fields ...string) *DiagramUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Diagram entity.
func (_u *DiagramUpdateOne) Save(ctx context.Context) (*Diagram, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DiagramUpdateOne) SaveX(ctx context.Context) *Diagram {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DiagramUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DiagramUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DiagramUpdateOne) check() error {
	if v, ok := _u.mutation.Filename(); ok {
		if err := diagram.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "Diagram.filename": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DataURL(); ok {
		if err := diagram.DataURLValidator(v); err != nil {
			return &ValidationError{Name: "data_url", err: fmt.Errorf(`ent: validator failed for field "Diagram.data_url": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ImportedFrom(); ok {
		if err := diagram.ImportedFromValidator(v); err != nil {
			return &ValidationError{Name: "imported_from", err: fmt.Errorf(`ent: validator failed for field "Diagram.imported_from": %w`, err)}
		}
	}
	return nil
}

func (_u *DiagramUpdateOne) sqlSave(ctx context.Context) (_node *Diagram, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(diagram.Table, diagram.Columns, sqlgraph.NewFieldSpec(diagram.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Diagram.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, diagram.FieldID)
		for _, f := range fields {
			if !diagram.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != diagram.FieldID {
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
	if value, ok := _u.mutation.Filename(); ok {
		_spec.SetField(diagram.FieldFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.DataURL(); ok {
		_spec.SetField(diagram.FieldDataURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.ImportedFrom(); ok {
		_spec.SetField(diagram.FieldImportedFrom, field.TypeString, value)
	}
	_node = &Diagram{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{diagram.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
