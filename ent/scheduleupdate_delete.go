// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/marblesj/wace-student-trainer/ent/predicate"
	"github.com/marblesj/wace-student-trainer/ent/scheduleupdate"
)

// ScheduleUpdateDelete is the builder for deleting a ScheduleUpdate entity.
type ScheduleUpdateDelete struct {
	config
	hooks    []Hook
	mutation *ScheduleUpdateMutation
}

// Where appends a list predicates to the ScheduleUpdateDelete builder.
func (_d *ScheduleUpdateDelete) Where(ps ...predicate.ScheduleUpdate) *ScheduleUpdateDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *ScheduleUpdateDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ScheduleUpdateDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *ScheduleUpdateDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(scheduleupdate.Table, sqlgraph.NewFieldSpec(scheduleupdate.FieldID, field.TypeInt))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// ScheduleUpdateDeleteOne is the builder for deleting a single ScheduleUpdate entity.
type ScheduleUpdateDeleteOne struct {
	_d *ScheduleUpdateDelete
}

// Where appends a list predicates to the ScheduleUpdateDelete builder.
func (_d *ScheduleUpdateDeleteOne) Where(ps ...predicate.ScheduleUpdate) *ScheduleUpdateDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *ScheduleUpdateDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{scheduleupdate.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ScheduleUpdateDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
