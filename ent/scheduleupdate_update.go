// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/marblesj/wace-student-trainer/ent/predicate"
	"github.com/marblesj/wace-student-trainer/ent/scheduleupdate"
)

// ScheduleUpdateUpdate is the builder for updating ScheduleUpdate entities.
type ScheduleUpdateUpdate struct {
	config
	hooks    []Hook
	mutation *ScheduleUpdateMutation
}

// Where appends a list predicates to the ScheduleUpdateUpdate builder.
func (_u *ScheduleUpdateUpdate) Where(ps ...predicate.ScheduleUpdate) *ScheduleUpdateUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetEnabledProblemTypes sets the "enabled_problem_types" field.
func (_u *ScheduleUpdateUpdate) SetEnabledProblemTypes(v []string) *ScheduleUpdateUpdate {
	_u.mutation.SetEnabledProblemTypes(v)
	return _u
}

// AppendEnabledProblemTypes appends value to the "enabled_problem_types" field.
func (_u *ScheduleUpdateUpdate) AppendEnabledProblemTypes(v []string) *ScheduleUpdateUpdate {
	_u.mutation.AppendEnabledProblemTypes(v)
	return _u
}

// ClearEnabledProblemTypes clears the value of the "enabled_problem_types" field.
func (_u *ScheduleUpdateUpdate) ClearEnabledProblemTypes() *ScheduleUpdateUpdate {
	_u.mutation.ClearEnabledProblemTypes()
	return _u
}

// SetDate sets the "date" field.
func (_u *ScheduleUpdateUpdate) SetDate(v string) *ScheduleUpdateUpdate {
	_u.mutation.SetDate(v)
	return _u
}

// SetNillableDate sets the "date" field if the given value is not nil.
func (_u *ScheduleUpdateUpdate) SetNillableDate(v *string) *ScheduleUpdateUpdate {
	if v != nil {
		_u.SetDate(*v)
	}
	return _u
}

// ClearDate clears the value of the "date" field.
func (_u *ScheduleUpdateUpdate) ClearDate() *ScheduleUpdateUpdate {
	_u.mutation.ClearDate()
	return _u
}

// SetLabel sets the "label" field.
func (_u *ScheduleUpdateUpdate) SetLabel(v string) *ScheduleUpdateUpdate {
	_u.mutation.SetLabel(v)
	return _u
}

// SetNillableLabel sets the "label" field if the given value is not nil.
func (_u *ScheduleUpdateUpdate) SetNillableLabel(v *string) *ScheduleUpdateUpdate {
	if v != nil {
		_u.SetLabel(*v)
	}
	return _u
}

// ClearLabel clears the value of the "label" field.
func (_u *ScheduleUpdateUpdate) ClearLabel() *ScheduleUpdateUpdate {
	_u.mutation.ClearLabel()
	return _u
}

// SetProblemTypes sets the "problem_types" field.
func (_u *ScheduleUpdateUpdate) SetProblemTypes(v []string) *ScheduleUpdateUpdate {
	_u.mutation.SetProblemTypes(v)
	return _u
}

// AppendProblemTypes appends value to the "problem_types" field.
func (_u *ScheduleUpdateUpdate) AppendProblemTypes(v []string) *ScheduleUpdateUpdate {
	_u.mutation.AppendProblemTypes(v)
	return _u
}

// ClearProblemTypes clears the value of the "problem_types" field.
func (_u *ScheduleUpdateUpdate) ClearProblemTypes() *ScheduleUpdateUpdate {
	_u.mutation.ClearProblemTypes()
	return _u
}

// Mutation returns the ScheduleUpdateMutation object of the builder.
func (_u *ScheduleUpdateUpdate) Mutation() *ScheduleUpdateMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ScheduleUpdateUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ScheduleUpdateUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ScheduleUpdateUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ScheduleUpdateUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ScheduleUpdateUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(scheduleupdate.Table, scheduleupdate.Columns, sqlgraph.NewFieldSpec(scheduleupdate.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.EnabledProblemTypes(); ok {
		_spec.SetField(scheduleupdate.FieldEnabledProblemTypes, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedEnabledProblemTypes(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, scheduleupdate.FieldEnabledProblemTypes, value)
		})
	}
	if _u.mutation.EnabledProblemTypesCleared() {
		_spec.ClearField(scheduleupdate.FieldEnabledProblemTypes, field.TypeJSON)
	}
	if value, ok := _u.mutation.Date(); ok {
		_spec.SetField(scheduleupdate.FieldDate, field.TypeString, value)
	}
	if _u.mutation.DateCleared() {
		_spec.ClearField(scheduleupdate.FieldDate, field.TypeString)
	}
	if value, ok := _u.mutation.Label(); ok {
		_spec.SetField(scheduleupdate.FieldLabel, field.TypeString, value)
	}
	if _u.mutation.LabelCleared() {
		_spec.ClearField(scheduleupdate.FieldLabel, field.TypeString)
	}
	if value, ok := _u.mutation.ProblemTypes(); ok {
		_spec.SetField(scheduleupdate.FieldProblemTypes, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedProblemTypes(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, scheduleupdate.FieldProblemTypes, value)
		})
	}
	if _u.mutation.ProblemTypesCleared() {
		_spec.ClearField(scheduleupdate.FieldProblemTypes, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{scheduleupdate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ScheduleUpdateUpdateOne is the builder for updating a single ScheduleUpdate entity.
type ScheduleUpdateUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ScheduleUpdateMutation
}

// SetEnabledProblemTypes sets the "enabled_problem_types" field.
func (_u *ScheduleUpdateUpdateOne) SetEnabledProblemTypes(v []string) *ScheduleUpdateUpdateOne {
	_u.mutation.SetEnabledProblemTypes(v)
	return _u
}

// AppendEnabledProblemTypes appends value to the "enabled_problem_types" field.
func (_u *ScheduleUpdateUpdateOne) AppendEnabledProblemTypes(v []string) *ScheduleUpdateUpdateOne {
	_u.mutation.AppendEnabledProblemTypes(v)
	return _u
}

// ClearEnabledProblemTypes clears the value of the "enabled_problem_types" field.
func (_u *ScheduleUpdateUpdateOne) ClearEnabledProblemTypes() *ScheduleUpdateUpdateOne {
	_u.mutation.ClearEnabledProblemTypes()
	return _u
}

// SetDate sets the "date" field.
func (_u *ScheduleUpdateUpdateOne) SetDate(v string) *ScheduleUpdateUpdateOne {
	_u.mutation.SetDate(v)
	return _u
}

// SetNillableDate sets the "date" field if the given value is not nil.
func (_u *ScheduleUpdateUpdateOne) SetNillableDate(v *string) *ScheduleUpdateUpdateOne {
	if v != nil {
		_u.SetDate(*v)
	}
	return _u
}

// ClearDate clears the value of the "date" field.
func (_u *ScheduleUpdateUpdateOne) ClearDate() *ScheduleUpdateUpdateOne {
	_u.mutation.ClearDate()
	return _u
}

// SetLabel sets the "label" field.
func (_u *ScheduleUpdateUpdateOne) SetLabel(v string) *ScheduleUpdateUpdateOne {
	_u.mutation.SetLabel(v)
	return _u
}

// SetNillableLabel sets the "label" field if the given value is not nil.
func (_u *ScheduleUpdateUpdateOne) SetNillableLabel(v *string) *ScheduleUpdateUpdateOne {
	if v != nil {
		_u.SetLabel(*v)
	}
	return _u
}

// ClearLabel clears the value of the "label" field.
func (_u *ScheduleUpdateUpdateOne) ClearLabel() *ScheduleUpdateUpdateOne {
	_u.mutation.ClearLabel()
	return _u
}

// SetProblemTypes sets the "problem_types" field.
func (_u *ScheduleUpdateUpdateOne) SetProblemTypes(v []string) *ScheduleUpdateUpdateOne {
	_u.mutation.SetProblemTypes(v)
	return _u
}

// AppendProblemTypes appends value to the "problem_types" field.
func (_u *ScheduleUpdateUpdateOne) AppendProblemTypes(v []string) *ScheduleUpdateUpdateOne {
	_u.mutation.AppendProblemTypes(v)
	return _u
}

// ClearProblemTypes clears the value of the "problem_types" field.
func (_u *ScheduleUpdateUpdateOne) ClearProblemTypes() *ScheduleUpdateUpdateOne {
	_u.mutation.ClearProblemTypes()
	return _u
}

// Mutation returns the ScheduleUpdateMutation object of the builder.
func (_u *ScheduleUpdateUpdateOne) Mutation() *ScheduleUpdateMutation {
	return _u.mutation
}

// Where appends a list predicates to the ScheduleUpdateUpdate builder.
func (_u *ScheduleUpdateUpdateOne) Where(ps ...predicate.ScheduleUpdate) *ScheduleUpdateUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ScheduleUpdateUpdateOne) Select(field string, fields ...string) *ScheduleUpdateUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ScheduleUpdate entity.
func (_u *ScheduleUpdateUpdateOne) Save(ctx context.Context) (*ScheduleUpdate, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ScheduleUpdateUpdateOne) SaveX(ctx context.Context) *ScheduleUpdate {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ScheduleUpdateUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ScheduleUpdateUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ScheduleUpdateUpdateOne) sqlSave(ctx context.Context) (_node *ScheduleUpdate, err error) {
	_spec := sqlgraph.NewUpdateSpec(scheduleupdate.Table, scheduleupdate.Columns, sqlgraph.NewFieldSpec(scheduleupdate.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ScheduleUpdate.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, scheduleupdate.FieldID)
		for _, f := range fields {
			if !scheduleupdate.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != scheduleupdate.FieldID {
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
	if value, ok := _u.mutation.EnabledProblemTypes(); ok {
		_spec.SetField(scheduleupdate.FieldEnabledProblemTypes, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedEnabledProblemTypes(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, scheduleupdate.FieldEnabledProblemTypes, value)
		})
	}
	if _u.mutation.EnabledProblemTypesCleared() {
		_spec.ClearField(scheduleupdate.FieldEnabledProblemTypes, field.TypeJSON)
	}
	if value, ok := _u.mutation.Date(); ok {
		_spec.SetField(scheduleupdate.FieldDate, field.TypeString, value)
	}
	if _u.mutation.DateCleared() {
		_spec.ClearField(scheduleupdate.FieldDate, field.TypeString)
	}
	if value, ok := _u.mutation.Label(); ok {
		_spec.SetField(scheduleupdate.FieldLabel, field.TypeString, value)
	}
	if _u.mutation.LabelCleared() {
		_spec.ClearField(scheduleupdate.FieldLabel, field.TypeString)
	}
	if value, ok := _u.mutation.ProblemTypes(); ok {
		_spec.SetField(scheduleupdate.FieldProblemTypes, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedProblemTypes(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, scheduleupdate.FieldProblemTypes, value)
		})
	}
	if _u.mutation.ProblemTypesCleared() {
		_spec.ClearField(scheduleupdate.FieldProblemTypes, field.TypeJSON)
	}
	_node = &ScheduleUpdate{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{scheduleupdate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
