// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/marblesj/wace-student-trainer/ent/scheduleupdate"
)

// ScheduleUpdateCreate is the builder for creating a ScheduleUpdate entity.
type ScheduleUpdateCreate struct {
	config
	mutation *ScheduleUpdateMutation
	hooks    []Hook
}

// SetUpdateID sets the "update_id" field.
func (_c *ScheduleUpdateCreate) SetUpdateID(v string) *ScheduleUpdateCreate {
	_c.mutation.SetUpdateID(v)
	return _c
}

// SetEnabledProblemTypes sets the "enabled_problem_types" field.
func (_c *ScheduleUpdateCreate) SetEnabledProblemTypes(v []string) *ScheduleUpdateCreate {
	_c.mutation.SetEnabledProblemTypes(v)
	return _c
}

// SetDate sets the "date" field.
func (_c *ScheduleUpdateCreate) SetDate(v string) *ScheduleUpdateCreate {
	_c.mutation.SetDate(v)
	return _c
}

// SetNillableDate sets the "date" field if the given value is not nil.
func (_c *ScheduleUpdateCreate) SetNillableDate(v *string) *ScheduleUpdateCreate {
	if v != nil {
		_c.SetDate(*v)
	}
	return _c
}

// SetLabel sets the "label" field.
func (_c *ScheduleUpdateCreate) SetLabel(v string) *ScheduleUpdateCreate {
	_c.mutation.SetLabel(v)
	return _c
}

// SetNillableLabel sets the "label" field if the given value is not nil.
func (_c *ScheduleUpdateCreate) SetNillableLabel(v *string) *ScheduleUpdateCreate {
	if v != nil {
		_c.SetLabel(*v)
	}
	return _c
}

// SetProblemTypes sets the "problem_types" field.
func (_c *ScheduleUpdateCreate) SetProblemTypes(v []string) *ScheduleUpdateCreate {
	_c.mutation.SetProblemTypes(v)
	return _c
}

// SetImportedAt sets the "imported_at" field.
func (_c *ScheduleUpdateCreate) SetImportedAt(v time.Time) *ScheduleUpdateCreate {
	_c.mutation.SetImportedAt(v)
	return _c
}

// SetNillableImportedAt sets the "imported_at" field if the given value is not nil.
func (_c *ScheduleUpdateCreate) SetNillableImportedAt(v *time.Time) *ScheduleUpdateCreate {
	if v != nil {
		_c.SetImportedAt(*v)
	}
	return _c
}

// Mutation returns the ScheduleUpdateMutation object of the builder.
func (_c *ScheduleUpdateCreate) Mutation() *ScheduleUpdateMutation {
	return _c.mutation
}

// Save creates the ScheduleUpdate in the database.
func (_c *ScheduleUpdateCreate) Save(ctx context.Context) (*ScheduleUpdate, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ScheduleUpdateCreate) SaveX(ctx context.Context) *ScheduleUpdate {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ScheduleUpdateCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ScheduleUpdateCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ScheduleUpdateCreate) defaults() {
	if _, ok := _c.mutation.ImportedAt(); !ok {
		v := scheduleupdate.DefaultImportedAt()
		_c.mutation.SetImportedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ScheduleUpdateCreate) check() error {
	if _, ok := _c.mutation.UpdateID(); !ok {
		return &ValidationError{Name: "update_id", err: errors.New(`ent: missing required field "ScheduleUpdate.update_id"`)}
	}
	if v, ok := _c.mutation.UpdateID(); ok {
		if err := scheduleupdate.UpdateIDValidator(v); err != nil {
			return &ValidationError{Name: "update_id", err: fmt.Errorf(`ent: validator failed for field "ScheduleUpdate.update_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ImportedAt(); !ok {
		return &ValidationError{Name: "imported_at", err: errors.New(`ent: missing required field "ScheduleUpdate.imported_at"`)}
	}
	return nil
}

func (_c *ScheduleUpdateCreate) sqlSave(ctx context.Context) (*ScheduleUpdate, error) {
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

func (_c *ScheduleUpdateCreate) createSpec() (*ScheduleUpdate, *sqlgraph.CreateSpec) {
	var (
		_node = &ScheduleUpdate{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(scheduleupdate.Table, sqlgraph.NewFieldSpec(scheduleupdate.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.UpdateID(); ok {
		_spec.SetField(scheduleupdate.FieldUpdateID, field.TypeString, value)
		_node.UpdateID = value
	}
	if value, ok := _c.mutation.EnabledProblemTypes(); ok {
		_spec.SetField(scheduleupdate.FieldEnabledProblemTypes, field.TypeJSON, value)
		_node.EnabledProblemTypes = value
	}
	if value, ok := _c.mutation.Date(); ok {
		_spec.SetField(scheduleupdate.FieldDate, field.TypeString, value)
		_node.Date = value
	}
	if value, ok := _c.mutation.Label(); ok {
		_spec.SetField(scheduleupdate.FieldLabel, field.TypeString, value)
		_node.Label = value
	}
	if value, ok := _c.mutation.ProblemTypes(); ok {
		_spec.SetField(scheduleupdate.FieldProblemTypes, field.TypeJSON, value)
		_node.ProblemTypes = value
	}
	if value, ok := _c.mutation.ImportedAt(); ok {
		_spec.SetField(scheduleupdate.FieldImportedAt, field.TypeTime, value)
		_node.ImportedAt = value
	}
	return _node, _spec
}

// ScheduleUpdateCreateBulk is the builder for creating many ScheduleUpdate entities in bulk.
type ScheduleUpdateCreateBulk struct {
	config
	err      error
	builders []*ScheduleUpdateCreate
}

// Save creates the ScheduleUpdate entities in the database.
func (_c *ScheduleUpdateCreateBulk) Save(ctx context.Context) ([]*ScheduleUpdate, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ScheduleUpdate, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ScheduleUpdateMutation)
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
func (_c *ScheduleUpdateCreateBulk) SaveX(ctx context.Context) []*ScheduleUpdate {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ScheduleUpdateCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ScheduleUpdateCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
