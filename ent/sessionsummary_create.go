// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/marblesj/wace-student-trainer/ent/sessionsummary"
)

// SessionSummaryCreate is the builder for creating a SessionSummary entity.
type SessionSummaryCreate struct {
	config
	mutation *SessionSummaryMutation
	hooks    []Hook
}

// SetSessionID sets the "session_id" field.
func (_c *SessionSummaryCreate) SetSessionID(v string) *SessionSummaryCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *SessionSummaryCreate) SetStartedAt(v time.Time) *SessionSummaryCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetEndedAt sets the "ended_at" field.
func (_c *SessionSummaryCreate) SetEndedAt(v time.Time) *SessionSummaryCreate {
	_c.mutation.SetEndedAt(v)
	return _c
}

// SetDurationMinutes sets the "duration_minutes" field.
func (_c *SessionSummaryCreate) SetDurationMinutes(v int) *SessionSummaryCreate {
	_c.mutation.SetDurationMinutes(v)
	return _c
}

// SetTopicFilter sets the "topic_filter" field.
func (_c *SessionSummaryCreate) SetTopicFilter(v string) *SessionSummaryCreate {
	_c.mutation.SetTopicFilter(v)
	return _c
}

// SetNillableTopicFilter sets the "topic_filter" field if the given value is not nil.
func (_c *SessionSummaryCreate) SetNillableTopicFilter(v *string) *SessionSummaryCreate {
	if v != nil {
		_c.SetTopicFilter(*v)
	}
	return _c
}

// SetQuestionsViewed sets the "questions_viewed" field.
func (_c *SessionSummaryCreate) SetQuestionsViewed(v int) *SessionSummaryCreate {
	_c.mutation.SetQuestionsViewed(v)
	return _c
}

// SetSolutionsRevealed sets the "solutions_revealed" field.
func (_c *SessionSummaryCreate) SetSolutionsRevealed(v int) *SessionSummaryCreate {
	_c.mutation.SetSolutionsRevealed(v)
	return _c
}

// Mutation returns the SessionSummaryMutation object of the builder.
func (_c *SessionSummaryCreate) Mutation() *SessionSummaryMutation {
	return _c.mutation
}

// Save creates the SessionSummary in the database.
func (_c *SessionSummaryCreate) Save(ctx context.Context) (*SessionSummary, error) {
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SessionSummaryCreate) SaveX(ctx context.Context) *SessionSummary {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SessionSummaryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SessionSummaryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SessionSummaryCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "SessionSummary.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := sessionsummary.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "SessionSummary.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		return &ValidationError{Name: "started_at", err: errors.New(`ent: missing required field "SessionSummary.started_at"`)}
	}
	if _, ok := _c.mutation.EndedAt(); !ok {
		return &ValidationError{Name: "ended_at", err: errors.New(`ent: missing required field "SessionSummary.ended_at"`)}
	}
	if _, ok := _c.mutation.DurationMinutes(); !ok {
		return &ValidationError{Name: "duration_minutes", err: errors.New(`ent: missing required field "SessionSummary.duration_minutes"`)}
	}
	if _, ok := _c.mutation.QuestionsViewed(); !ok {
		return &ValidationError{Name: "questions_viewed", err: errors.New(`ent: missing required field "SessionSummary.questions_viewed"`)}
	}
	if _, ok := _c.mutation.SolutionsRevealed(); !ok {
		return &ValidationError{Name: "solutions_revealed", err: errors.New(`ent: missing required field "SessionSummary.solutions_revealed"`)}
	}
	return nil
}

func (_c *SessionSummaryCreate) sqlSave(ctx context.Context) (*SessionSummary, error) {
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

func (_c *SessionSummaryCreate) createSpec() (*SessionSummary, *sqlgraph.CreateSpec) {
	var (
		_node = &SessionSummary{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(sessionsummary.Table, sqlgraph.NewFieldSpec(sessionsummary.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(sessionsummary.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(sessionsummary.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = value
	}
	if value, ok := _c.mutation.EndedAt(); ok {
		_spec.SetField(sessionsummary.FieldEndedAt, field.TypeTime, value)
		_node.EndedAt = value
	}
	if value, ok := _c.mutation.DurationMinutes(); ok {
		_spec.SetField(sessionsummary.FieldDurationMinutes, field.TypeInt, value)
		_node.DurationMinutes = value
	}
	if value, ok := _c.mutation.TopicFilter(); ok {
		_spec.SetField(sessionsummary.FieldTopicFilter, field.TypeString, value)
		_node.TopicFilter = value
	}
	if value, ok := _c.mutation.QuestionsViewed(); ok {
		_spec.SetField(sessionsummary.FieldQuestionsViewed, field.TypeInt, value)
		_node.QuestionsViewed = value
	}
	if value, ok := _c.mutation.SolutionsRevealed(); ok {
		_spec.SetField(sessionsummary.FieldSolutionsRevealed, field.TypeInt, value)
		_node.SolutionsRevealed = value
	}
	return _node, _spec
}

// SessionSummaryCreateBulk is the builder for creating many SessionSummary entities in bulk.
type SessionSummaryCreateBulk struct {
	config
	err      error
	builders []*SessionSummaryCreate
}

// Save creates the SessionSummary entities in the database.
func (_c *SessionSummaryCreateBulk) Save(ctx context.Context) ([]*SessionSummary, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SessionSummary, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SessionSummaryMutation)
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
func (_c *SessionSummaryCreateBulk) SaveX(ctx context.Context) []*SessionSummary {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SessionSummaryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SessionSummaryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
