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
	"github.com/marblesj/wace-student-trainer/ent/profile"
)

// ProfileUpdate is the builder for updating Profile entities.
type ProfileUpdate struct {
	config
	hooks    []Hook
	mutation *ProfileMutation
}

// Where appends a list predicates to the ProfileUpdate builder.
func (_u *ProfileUpdate) Where(ps ...predicate.Profile) *ProfileUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetKey sets the "key" field.
func (_u *ProfileUpdate) SetKey(v string) *ProfileUpdate {
	_u.mutation.SetKey(v)
	return _u
}

// SetNillableKey sets the "key" field if the given value is not nil.
func (_u *ProfileUpdate) SetNillableKey(v *string) *ProfileUpdate {
	if v != nil {
		_u.SetKey(*v)
	}
	return _u
}

// SetStudentName sets the "student_name" field.
func (_u *ProfileUpdate) SetStudentName(v string) *ProfileUpdate {
	_u.mutation.SetStudentName(v)
	return _u
}

// SetNillableStudentName sets the "student_name" field if the given value is not nil.
func (_u *ProfileUpdate) SetNillableStudentName(v *string) *ProfileUpdate {
	if v != nil {
		_u.SetStudentName(*v)
	}
	return _u
}

// ClearStudentName clears the value of the "student_name" field.
func (_u *ProfileUpdate) ClearStudentName() *ProfileUpdate {
	_u.mutation.ClearStudentName()
	return _u
}

// SetAheadOfSchedule sets the "ahead_of_schedule" field.
func (_u *ProfileUpdate) SetAheadOfSchedule(v bool) *ProfileUpdate {
	_u.mutation.SetAheadOfSchedule(v)
	return _u
}

// SetNillableAheadOfSchedule sets the "ahead_of_schedule" field if the given value is not nil.
func (_u *ProfileUpdate) SetNillableAheadOfSchedule(v *bool) *ProfileUpdate {
	if v != nil {
		_u.SetAheadOfSchedule(*v)
	}
	return _u
}

// SetUpdatesImported sets the "updates_imported" field.
func (_u *ProfileUpdate) SetUpdatesImported(v []map[string]interface{}) *ProfileUpdate {
	_u.mutation.SetUpdatesImported(v)
	return _u
}

// AppendUpdatesImported appends value to the "updates_imported" field.
func (_u *ProfileUpdate) AppendUpdatesImported(v []map[string]interface{}) *ProfileUpdate {
	_u.mutation.AppendUpdatesImported(v)
	return _u
}

// ClearUpdatesImported clears the value of the "updates_imported" field.
func (_u *ProfileUpdate) ClearUpdatesImported() *ProfileUpdate {
	_u.mutation.ClearUpdatesImported()
	return _u
}

// Mutation returns the ProfileMutation object of the builder.
func (_u *ProfileUpdate) Mutation() *ProfileMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ProfileUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProfileUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ProfileUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProfileUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProfileUpdate) check() error {
	if v, ok := _u.mutation.Key(); ok {
		if err := profile.KeyValidator(v); err != nil {
			return &ValidationError{Name: "key", err: fmt.Errorf(`ent: validator failed for field "Profile.key": %w`, err)}
		}
	}
	return nil
}

func (_u *ProfileUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(profile.Table, profile.Columns, sqlgraph.NewFieldSpec(profile.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Key(); ok {
		_spec.SetField(profile.FieldKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.StudentName(); ok {
		_spec.SetField(profile.FieldStudentName, field.TypeString, value)
	}
	if _u.mutation.StudentNameCleared() {
		_spec.ClearField(profile.FieldStudentName, field.TypeString)
	}
	if value, ok := _u.mutation.AheadOfSchedule(); ok {
		_spec.SetField(profile.FieldAheadOfSchedule, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatesImported(); ok {
		_spec.SetField(profile.FieldUpdatesImported, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedUpdatesImported(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, profile.FieldUpdatesImported, value)
		})
	}
	if _u.mutation.UpdatesImportedCleared() {
		_spec.ClearField(profile.FieldUpdatesImported, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{profile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ProfileUpdateOne is the builder for updating a single Profile entity.
type ProfileUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProfileMutation
}

// SetKey sets the "key" field.
func (_u *ProfileUpdateOne) SetKey(v string) *ProfileUpdateOne {
	_u.mutation.SetKey(v)
	return _u
}

// SetNillableKey sets the "key" field if the given value is not nil.
func (_u *ProfileUpdateOne) SetNillableKey(v *string) *ProfileUpdateOne {
	if v != nil {
		_u.SetKey(*v)
	}
	return _u
}

// SetStudentName sets the "student_name" field.
func (_u *ProfileUpdateOne) SetStudentName(v string) *ProfileUpdateOne {
	_u.mutation.SetStudentName(v)
	return _u
}

// SetNillableStudentName sets the "student_name" field if the given value is not nil.
func (_u *ProfileUpdateOne) SetNillableStudentName(v *string) *ProfileUpdateOne {
	if v != nil {
		_u.SetStudentName(*v)
	}
	return _u
}

// ClearStudentName clears the value of the "student_name" field.
func (_u *ProfileUpdateOne) ClearStudentName() *ProfileUpdateOne {
	_u.mutation.ClearStudentName()
	return _u
}

// SetAheadOfSchedule sets the "ahead_of_schedule" field.
func (_u *ProfileUpdateOne) SetAheadOfSchedule(v bool) *ProfileUpdateOne {
	_u.mutation.SetAheadOfSchedule(v)
	return _u
}

// SetNillableAheadOfSchedule sets the "ahead_of_schedule" field if the given value is not nil.
func (_u *ProfileUpdateOne) SetNillableAheadOfSchedule(v *bool) *ProfileUpdateOne {
	if v != nil {
		_u.SetAheadOfSchedule(*v)
	}
	return _u
}

// SetUpdatesImported sets the "updates_imported" field.
func (_u *ProfileUpdateOne) SetUpdatesImported(v []map[string]interface{}) *ProfileUpdateOne {
	_u.mutation.SetUpdatesImported(v)
	return _u
}

// AppendUpdatesImported appends value to the "updates_imported" field.
func (_u *ProfileUpdateOne) AppendUpdatesImported(v []map[string]interface{}) *ProfileUpdateOne {
	_u.mutation.AppendUpdatesImported(v)
	return _u
}

// ClearUpdatesImported clears the value of the "updates_imported" field.
func (_u *ProfileUpdateOne) ClearUpdatesImported() *ProfileUpdateOne {
	_u.mutation.ClearUpdatesImported()
	return _u
}

// Mutation returns the ProfileMutation object of the builder.
func (_u *ProfileUpdateOne) Mutation() *ProfileMutation {
	return _u.mutation
}

// Where appends a list predicates to the ProfileUpdate builder.
func (_u *ProfileUpdateOne) Where(ps ...predicate.Profile) *ProfileUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ProfileUpdateOne) Select(field string, fields ...string) *ProfileUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Profile entity.
func (_u *ProfileUpdateOne) Save(ctx context.Context) (*Profile, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProfileUpdateOne) SaveX(ctx context.Context) *Profile {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ProfileUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProfileUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProfileUpdateOne) check() error {
	if v, ok := _u.mutation.Key(); ok {
		if err := profile.KeyValidator(v); err != nil {
			return &ValidationError{Name: "key", err: fmt.Errorf(`ent: validator failed for field "Profile.key": %w`, err)}
		}
	}
	return nil
}

func (_u *ProfileUpdateOne) sqlSave(ctx context.Context) (_node *Profile, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(profile.Table, profile.Columns, sqlgraph.NewFieldSpec(profile.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Profile.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, profile.FieldID)
		for _, f := range fields {
			if !profile.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != profile.FieldID {
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
	if value, ok := _u.mutation.Key(); ok {
		_spec.SetField(profile.FieldKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.StudentName(); ok {
		_spec.SetField(profile.FieldStudentName, field.TypeString, value)
	}
	if _u.mutation.StudentNameCleared() {
		_spec.ClearField(profile.FieldStudentName, field.TypeString)
	}
	if value, ok := _u.mutation.AheadOfSchedule(); ok {
		_spec.SetField(profile.FieldAheadOfSchedule, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatesImported(); ok {
		_spec.SetField(profile.FieldUpdatesImported, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedUpdatesImported(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, profile.FieldUpdatesImported, value)
		})
	}
	if _u.mutation.UpdatesImportedCleared() {
		_spec.ClearField(profile.FieldUpdatesImported, field.TypeJSON)
	}
	_node = &Profile{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{profile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
