// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/marblesj/wace-student-trainer/ent/importedquestion"
)

// ImportedQuestionCreate is the builder for creating a ImportedQuestion entity.
type ImportedQuestionCreate struct {
	config
	mutation *ImportedQuestionMutation
	hooks    []Hook
}

// SetFilename sets the "filename" field.
func (_c *ImportedQuestionCreate) SetFilename(v string) *ImportedQuestionCreate {
	_c.mutation.SetFilename(v)
	return _c
}

// SetQuestionData sets the "question_data" field.
func (_c *ImportedQuestionCreate) SetQuestionData(v map[string]interface{}) *ImportedQuestionCreate {
	_c.mutation.SetQuestionData(v)
	return _c
}

// SetImportedFrom sets the "imported_from" field.
func (_c *ImportedQuestionCreate) SetImportedFrom(v string) *ImportedQuestionCreate {
	_c.mutation.SetImportedFrom(v)
	return _c
}

// SetImportedAt sets the "imported_at" field.
func (_c *ImportedQuestionCreate) SetImportedAt(v time.Time) *ImportedQuestionCreate {
	_c.mutation.SetImportedAt(v)
	return _c
}

// SetNillableImportedAt sets the "imported_at" field if the given value is not nil.
func (_c *ImportedQuestionCreate) SetNillableImportedAt(v *time.Time) *ImportedQuestionCreate {
	if v != nil {
		_c.SetImportedAt(*v)
	}
	return _c
}

// Mutation returns the ImportedQuestionMutation object of the builder.
func (_c *ImportedQuestionCreate) Mutation() *ImportedQuestionMutation {
	return _c.mutation
}

// Save creates the ImportedQuestion in the database.
func (_c *ImportedQuestionCreate) Save(ctx context.Context) (*ImportedQuestion, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ImportedQuestionCreate) SaveX(ctx context.Context) *ImportedQuestion {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ImportedQuestionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ImportedQuestionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ImportedQuestionCreate) defaults() {
	if _, ok := _c.mutation.ImportedAt(); !ok {
		v := importedquestion.DefaultImportedAt()
		_c.mutation.SetImportedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ImportedQuestionCreate) check() error {
	if _, ok := _c.mutation.Filename(); !ok {
		return &ValidationError{Name: "filename", err: errors.New(`ent: missing required field "ImportedQuestion.filename"`)}
	}
	if v, ok := _c.mutation.Filename(); ok {
		if err := importedquestion.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "ImportedQuestion.filename": %w`, err)}
		}
	}
	if _, ok := _c.mutation.QuestionData(); !ok {
		return &ValidationError{Name: "question_data", err: errors.New(`ent: missing required field "ImportedQuestion.question_data"`)}
	}
	if _, ok := _c.mutation.ImportedFrom(); !ok {
		return &ValidationError{Name: "imported_from", err: errors.New(`ent: missing required field "ImportedQuestion.imported_from"`)}
	}
	if v, ok := _c.mutation.ImportedFrom(); ok {
		if err := importedquestion.ImportedFromValidator(v); err != nil {
			return &ValidationError{Name: "imported_from", err: fmt.Errorf(`ent: validator failed for field "ImportedQuestion.imported_from": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ImportedAt(); !ok {
		return &ValidationError{Name: "imported_at", err: errors.New(`ent: missing required field "ImportedQuestion.imported_at"`)}
	}
	return nil
}

func (_c *ImportedQuestionCreate) sqlSave(ctx context.Context) (*ImportedQuestion, error) {
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
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ImportedQuestionCreate) createSpec() (*ImportedQuestion, *sqlgraph.CreateSpec) {
	var (
		_node = &ImportedQuestion{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(importedquestion.Table, sqlgraph.NewFieldSpec(importedquestion.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Filename(); ok {
		_spec.SetField(importedquestion.FieldFilename, field.TypeString, value)
		_node.Filename = value
	}
	if value, ok := _c.mutation.QuestionData(); ok {
		_spec.SetField(importedquestion.FieldQuestionData, field.TypeJSON, value)
		_node.QuestionData = value
	}
	if value, ok := _c.mutation.ImportedFrom(); ok {
		_spec.SetField(importedquestion.FieldImportedFrom, field.TypeString, value)
		_node.ImportedFrom = value
	}
	if value, ok := _c.mutation.ImportedAt(); ok {
		_spec.SetField(importedquestion.FieldImportedAt, field.TypeTime, value)
		_node.ImportedAt = value
	}
	return _node, _spec
}

// ImportedQuestionCreateBulk is the builder for creating many ImportedQuestion entities in bulk.
type ImportedQuestionCreateBulk struct {
	config
	err      error
	builders []*ImportedQuestionCreate
}

// Save creates the ImportedQuestion entities in the database.
func (_c *ImportedQuestionCreateBulk) Save(ctx context.Context) ([]*ImportedQuestion, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ImportedQuestion, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ImportedQuestionMutation)
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
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
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
func (_c *ImportedQuestionCreateBulk) SaveX(ctx context.Context) []*ImportedQuestion {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ImportedQuestionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ImportedQuestionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
