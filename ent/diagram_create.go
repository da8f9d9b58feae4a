// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/marblesj/wace-student-trainer/ent/diagram"
)

// DiagramCreate is the builder for creating a Diagram entity.
type DiagramCreate struct {
	config
	mutation *DiagramMutation
	hooks    []Hook
}

// SetFilename sets the "filename" field.
func (_c *DiagramCreate) SetFilename(v string) *DiagramCreate {
	_c.mutation.SetFilename(v)
	return _c
}

// SetDataURL sets the "data_url" field.
func (_c *DiagramCreate) SetDataURL(v string) *DiagramCreate {
	_c.mutation.SetDataURL(v)
	return _c
}

// SetImportedFrom sets the "imported_from" field.
func (_c *DiagramCreate) SetImportedFrom(v string) *DiagramCreate {
	_c.mutation.SetImportedFrom(v)
	return _c
}

// Mutation returns the DiagramMutation object of the builder.
func (_c *DiagramCreate) Mutation() *DiagramMutation {
	return _c.mutation
}

// Save creates the Diagram in the database.
func (_c *DiagramCreate) Save(ctx context.Context) (*Diagram, error) {
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DiagramCreate) SaveX(ctx context.Context) *Diagram {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DiagramCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DiagramCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DiagramCreate) check() error {
	if _, ok := _c.mutation.Filename(); !ok {
		return &ValidationError{Name: "filename", err: errors.New(`ent: missing required field "Diagram.filename"`)}
	}
	if v, ok := _c.mutation.Filename(); ok {
		if err := diagram.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "Diagram.filename": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DataURL(); !ok {
		return &ValidationError{Name: "data_url", err: errors.New(`ent: missing required field "Diagram.data_url"`)}
	}
	if v, ok := _c.mutation.DataURL(); ok {
		if err := diagram.DataURLValidator(v); err != nil {
			return &ValidationError{Name: "data_url", err: fmt.Errorf(`ent: validator failed for field "Diagram.data_url": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ImportedFrom(); !ok {
		return &ValidationError{Name: "imported_from", err: errors.New(`ent: missing required field "Diagram.imported_from"`)}
	}
	if v, ok := _c.mutation.ImportedFrom(); ok {
		if err := diagram.ImportedFromValidator(v); err != nil {
			return &ValidationError{Name: "imported_from", err: fmt.Errorf(`ent: validator failed for field "Diagram.imported_from": %w`, err)}
		}
	}
	return nil
}

func (_c *DiagramCreate) sqlSave(ctx context.Context) (*Diagram, error) {
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

func (_c *DiagramCreate) createSpec() (*Diagram, *sqlgraph.CreateSpec) {
	var (
		_node = &Diagram{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(diagram.Table, sqlgraph.NewFieldSpec(diagram.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Filename(); ok {
		_spec.SetField(diagram.FieldFilename, field.TypeString, value)
		_node.Filename = value
	}
	if value, ok := _c.mutation.DataURL(); ok {
		_spec.SetField(diagram.FieldDataURL, field.TypeString, value)
		_node.DataURL = value
	}
	if value, ok := _c.mutation.ImportedFrom(); ok {
		_spec.SetField(diagram.FieldImportedFrom, field.TypeString, value)
		_node.ImportedFrom = value
	}
	return _node, _spec
}

// DiagramCreateBulk is the builder for creating many Diagram entities in bulk.
type DiagramCreateBulk struct {
	config
	err      error
	builders []*DiagramCreate
}

// Save creates the Diagram entities in the database.
func (_c *DiagramCreateBulk) Save(ctx context.Context) ([]*Diagram, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Diagram, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DiagramMutation)
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
func (_c *DiagramCreateBulk) SaveX(ctx context.Context) []*Diagram {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DiagramCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DiagramCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
