// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/marblesj/wace-student-trainer/ent/importedquestion"
	"github.com/marblesj/wace-student-trainer/ent/predicate"
)

// ImportedQuestionUpdate is the builder for updating ImportedQuestion entities.
type ImportedQuestionUpdate struct {
	config
	hooks    []Hook
	mutation *ImportedQuestionMutation
}

// Where appends a list predicates to the ImportedQuestionUpdate builder.
func (_u *ImportedQuestionUpdate) Where(ps ...predicate.ImportedQuestion) *ImportedQuestionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetFilename sets the "filename" field.
func (_u *ImportedQuestionUpdate) SetFilename(v string) *ImportedQuestionUpdate {
	_u.mutation.SetFilename(v)
	return _u
}

// SetNillableFilename sets the "filename" field if the given value is not nil.
func (_u *ImportedQuestionUpdate) SetNillableFilename(v *string) *ImportedQuestionUpdate {
	if v != nil {
		_u.SetFilename(*v)
	}
	return _u
}

// SetQuestionData sets the "question_data" field.
func (_u *ImportedQuestionUpdate) SetQuestionData(v map[string]interface{}) *ImportedQuestionUpdate {
	_u.mutation.SetQuestionData(v)
	return _u
}

// SetImportedFrom sets the "imported_from" field.
func (_u *ImportedQuestionUpdate) SetImportedFrom(v string) *ImportedQuestionUpdate {
	_u.mutation.SetImportedFrom(v)
	return _u
}

// SetNillableImportedFrom sets the "imported_from" field if the given value is not nil.
func (_u *ImportedQuestionUpdate) SetNillableImportedFrom(v *string) *ImportedQuestionUpdate {
	if v != nil {
		_u.SetImportedFrom(*v)
	}
	return _u
}

// Mutation returns the ImportedQuestionMutation object of the builder.
func (_u *ImportedQuestionUpdate) Mutation() *ImportedQuestionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ImportedQuestionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ImportedQuestionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ImportedQuestionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ImportedQuestionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ImportedQuestionUpdate) check() error {
	if v, ok := _u.mutation.Filename(); ok {
		if err := importedquestion.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "ImportedQuestion.filename": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ImportedFrom(); ok {
		if err := importedquestion.ImportedFromValidator(v); err != nil {
			return &ValidationError{Name: "imported_from", err: fmt.Errorf(`ent: validator failed for field "ImportedQuestion.imported_from": %w`, err)}
		}
	}
	return nil
}

func (_u *ImportedQuestionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(importedquestion.Table, importedquestion.Columns, sqlgraph.NewFieldSpec(importedquestion.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Filename(); ok {
		_spec.SetField(importedquestion.FieldFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionData(); ok {
		_spec.SetField(importedquestion.FieldQuestionData, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.ImportedFrom(); ok {
		_spec.SetField(importedquestion.FieldImportedFrom, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{importedquestion.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ImportedQuestionUpdateOne is the builder for updating a single ImportedQuestion entity.
type ImportedQuestionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ImportedQuestionMutation
}

// SetFilename sets the "filename" field.
func (_u *ImportedQuestionUpdateOne) SetFilename(v string) *ImportedQuestionUpdateOne {
	_u.mutation.SetFilename(v)
	return _u
}

// SetNillableFilename sets the "filename" field if the given value is not nil.
func (_u *ImportedQuestionUpdateOne) SetNillableFilename(v *string) *ImportedQuestionUpdateOne {
	if v != nil {
		_u.SetFilename(*v)
	}
	return _u
}

// SetQuestionData sets the "question_data" field.
func (_u *ImportedQuestionUpdateOne) SetQuestionData(v map[string]interface{}) *ImportedQuestionUpdateOne {
	_u.mutation.SetQuestionData(v)
	return _u
}

// SetImportedFrom sets the "imported_from" field.
func (_u *ImportedQuestionUpdateOne) SetImportedFrom(v string) *ImportedQuestionUpdateOne {
	_u.mutation.SetImportedFrom(v)
	return _u
}

// SetNillableImportedFrom sets the "imported_from" field if the given value is not nil.
func (_u *ImportedQuestionUpdateOne) SetNillableImportedFrom(v *string) *ImportedQuestionUpdateOne {
	if v != nil {
		_u.SetImportedFrom(*v)
	}
	return _u
}

// Mutation returns the ImportedQuestionMutation object of the builder.
func (_u *ImportedQuestionUpdateOne) Mutation() *ImportedQuestionMutation {
	return _u.mutation
}

// Where appends a list predicates to the ImportedQuestionUpdate builder.
func (_u *ImportedQuestionUpdateOne) Where(ps ...predicate.ImportedQuestion) *ImportedQuestionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ImportedQuestionUpdateOne) Select(field string, fields ...string) *ImportedQuestionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ImportedQuestion entity.
func (_u *ImportedQuestionUpdateOne) Save(ctx context.Context) (*ImportedQuestion, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ImportedQuestionUpdateOne) SaveX(ctx context.Context) *ImportedQuestion {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ImportedQuestionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ImportedQuestionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ImportedQuestionUpdateOne) check() error {
	if v, ok := _u.mutation.Filename(); ok {
		if err := importedquestion.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "ImportedQuestion.filename": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ImportedFrom(); ok {
		if err := importedquestion.ImportedFromValidator(v); err != nil {
			return &ValidationError{Name: "imported_from", err: fmt.Errorf(`ent: validator failed for field "ImportedQuestion.imported_from": %w`, err)}
		}
	}
	return nil
}

func (_u *ImportedQuestionUpdateOne) sqlSave(ctx context.Context) (_node *ImportedQuestion, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(importedquestion.Table, importedquestion.Columns, sqlgraph.NewFieldSpec(importedquestion.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ImportedQuestion.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, importedquestion.FieldID)
		for _, f := range fields {
			if !importedquestion.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != importedquestion.FieldID {
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
		_spec.SetField(importedquestion.FieldFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionData(); ok {
		_spec.SetField(importedquestion.FieldQuestionData, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.ImportedFrom(); ok {
		_spec.SetField(importedquestion.FieldImportedFrom, field.TypeString, value)
	}
	_node = &ImportedQuestion{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{importedquestion.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
