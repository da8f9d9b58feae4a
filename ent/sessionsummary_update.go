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
	"github.com/marblesj/wace-student-trainer/ent/predicate"
	"github.com/marblesj/wace-student-trainer/ent/sessionsummary"
)

// SessionSummaryUpdate is the builder for updating SessionSummary entities.
type SessionSummaryUpdate struct {
	config
	hooks    []Hook
	mutation *SessionSummaryMutation
}

// Where appends a list predicates to the SessionSummaryUpdate builder.
func (_u *SessionSummaryUpdate) Where(ps ...predicate.SessionSummary) *SessionSummaryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *SessionSummaryUpdate) SetSessionID(v string) *SessionSummaryUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *SessionSummaryUpdate) SetNillableSessionID(v *string) *SessionSummaryUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetEndedAt sets the "ended_at" field.
func (_u *SessionSummaryUpdate) SetEndedAt(v time.Time) *SessionSummaryUpdate {
	_u.mutation.SetEndedAt(v)
	return _u
}

// SetNillableEndedAt sets the "ended_at" field if the given value is not nil.
func (_u *SessionSummaryUpdate) SetNillableEndedAt(v *time.Time) *SessionSummaryUpdate {
	if v != nil {
		_u.SetEndedAt(*v)
	}
	return _u
}

// SetDurationMinutes sets the "duration_minutes" field.
func (_u *SessionSummaryUpdate) SetDurationMinutes(v int) *SessionSummaryUpdate {
	_u.mutation.ResetDurationMinutes()
	_u.mutation.SetDurationMinutes(v)
	return _u
}

// SetNillableDurationMinutes sets the "duration_minutes" field if the given value is not nil.
func (_u *SessionSummaryUpdate) SetNillableDurationMinutes(v *int) *SessionSummaryUpdate {
	if v != nil {
		_u.SetDurationMinutes(*v)
	}
	return _u
}

// AddDurationMinutes adds value to the "duration_minutes" field.
func (_u *SessionSummaryUpdate) AddDurationMinutes(v int) *SessionSummaryUpdate {
	_u.mutation.AddDurationMinutes(v)
	return _u
}

// SetTopicFilter sets the "topic_filter" field.
func (_u *SessionSummaryUpdate) SetTopicFilter(v string) *SessionSummaryUpdate {
	_u.mutation.SetTopicFilter(v)
	return _u
}

// SetNillableTopicFilter sets the "topic_filter" field if the given value is not nil.
func (_u *SessionSummaryUpdate) SetNillableTopicFilter(v *string) *SessionSummaryUpdate {
	if v != nil {
		_u.SetTopicFilter(*v)
	}
	return _u
}

// ClearTopicFilter clears the value of the "topic_filter" field.
func (_u *SessionSummaryUpdate) ClearTopicFilter() *SessionSummaryUpdate {
	_u.mutation.ClearTopicFilter()
	return _u
}

// SetQuestionsViewed sets the "questions_viewed" field.
func (_u *SessionSummaryUpdate) SetQuestionsViewed(v int) *SessionSummaryUpdate {
	_u.mutation.ResetQuestionsViewed()
	_u.mutation.SetQuestionsViewed(v)
	return _u
}

// SetNillableQuestionsViewed sets the "questions_viewed" field if the given value is not nil.
func (_u *SessionSummaryUpdate) SetNillableQuestionsViewed(v *int) *SessionSummaryUpdate {
	if v != nil {
		_u.SetQuestionsViewed(*v)
	}
	return _u
}

// AddQuestionsViewed adds value to the "questions_viewed" field.
func (_u *SessionSummaryUpdate) AddQuestionsViewed(v int) *SessionSummaryUpdate {
	_u.mutation.AddQuestionsViewed(v)
	return _u
}

// SetSolutionsRevealed sets the "solutions_revealed" field.
func (_u *SessionSummaryUpdate) SetSolutionsRevealed(v int) *SessionSummaryUpdate {
	_u.mutation.ResetSolutionsRevealed()
	_u.mutation.SetSolutionsRevealed(v)
	return _u
}

// SetNillableSolutionsRevealed sets the "solutions_revealed" field if the given value is not nil.
func (_u *SessionSummaryUpdate) SetNillableSolutionsRevealed(v *int) *SessionSummaryUpdate {
	if v != nil {
		_u.SetSolutionsRevealed(*v)
	}
	return _u
}

// AddSolutionsRevealed adds value to the "solutions_revealed" field.
func (_u *SessionSummaryUpdate) AddSolutionsRevealed(v int) *SessionSummaryUpdate {
	_u.mutation.AddSolutionsRevealed(v)
	return _u
}

// Mutation returns the SessionSummaryMutation object of the builder.
func (_u *SessionSummaryUpdate) Mutation() *SessionSummaryMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SessionSummaryUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionSummaryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SessionSummaryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionSummaryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SessionSummaryUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := sessionsummary.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "SessionSummary.session_id": %w`, err)}
		}
	}
	return nil
}

func (_u *SessionSummaryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sessionsummary.Table, sessionsummary.Columns, sqlgraph.NewFieldSpec(sessionsummary.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(sessionsummary.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.EndedAt(); ok {
		_spec.SetField(sessionsummary.FieldEndedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DurationMinutes(); ok {
		_spec.SetField(sessionsummary.FieldDurationMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationMinutes(); ok {
		_spec.AddField(sessionsummary.FieldDurationMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TopicFilter(); ok {
		_spec.SetField(sessionsummary.FieldTopicFilter, field.TypeString, value)
	}
	if _u.mutation.TopicFilterCleared() {
		_spec.ClearField(sessionsummary.FieldTopicFilter, field.TypeString)
	}
	if value, ok := _u.mutation.QuestionsViewed(); ok {
		_spec.SetField(sessionsummary.FieldQuestionsViewed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionsViewed(); ok {
		_spec.AddField(sessionsummary.FieldQuestionsViewed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SolutionsRevealed(); ok {
		_spec.SetField(sessionsummary.FieldSolutionsRevealed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSolutionsRevealed(); ok {
		_spec.AddField(sessionsummary.FieldSolutionsRevealed, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sessionsummary.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SessionSummaryUpdateOne is the builder for updating a single SessionSummary entity.
type SessionSummaryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SessionSummaryMutation
}

// SetSessionID sets the "session_id" field.
func (_u *SessionSummaryUpdateOne) SetSessionID(v string) *SessionSummaryUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *SessionSummaryUpdateOne) SetNillableSessionID(v *string) *SessionSummaryUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetEndedAt sets the "ended_at" field.
func (_u *SessionSummaryUpdateOne) SetEndedAt(v time.Time) *SessionSummaryUpdateOne {
	_u.mutation.SetEndedAt(v)
	return _u
}

// SetNillableEndedAt sets the "ended_at" field if the given value is not nil.
func (_u *SessionSummaryUpdateOne) SetNillableEndedAt(v *time.Time) *SessionSummaryUpdateOne {
	if v != nil {
		_u.SetEndedAt(*v)
	}
	return _u
}

// SetDurationMinutes sets the "duration_minutes" field.
func (_u *SessionSummaryUpdateOne) SetDurationMinutes(v int) *SessionSummaryUpdateOne {
	_u.mutation.ResetDurationMinutes()
	_u.mutation.SetDurationMinutes(v)
	return _u
}

// SetNillableDurationMinutes sets the "duration_minutes" field if the given value is not nil.
func (_u *SessionSummaryUpdateOne) SetNillableDurationMinutes(v *int) *SessionSummaryUpdateOne {
	if v != nil {
		_u.SetDurationMinutes(*v)
	}
	return _u
}

// AddDurationMinutes adds value to the "duration_minutes" field.
func (_u *SessionSummaryUpdateOne) AddDurationMinutes(v int) *SessionSummaryUpdateOne {
	_u.mutation.AddDurationMinutes(v)
	return _u
}

// SetTopicFilter sets the "topic_filter" field.
func (_u *SessionSummaryUpdateOne) SetTopicFilter(v string) *SessionSummaryUpdateOne {
	_u.mutation.SetTopicFilter(v)
	return _u
}

// SetNillableTopicFilter sets the "topic_filter" field if the given value is not nil.
func (_u *SessionSummaryUpdateOne) SetNillableTopicFilter(v *string) *SessionSummaryUpdateOne {
	if v != nil {
		_u.SetTopicFilter(*v)
	}
	return _u
}

// ClearTopicFilter clears the value of the "topic_filter" field.
func (_u *SessionSummaryUpdateOne) ClearTopicFilter() *SessionSummaryUpdateOne {
	_u.mutation.ClearTopicFilter()
	return _u
}

// SetQuestionsViewed sets the "questions_viewed" field.
func (_u *SessionSummaryUpdateOne) SetQuestionsViewed(v int) *SessionSummaryUpdateOne {
	_u.mutation.ResetQuestionsViewed()
	_u.mutation.SetQuestionsViewed(v)
	return _u
}

// SetNillableQuestionsViewed sets the "questions_viewed" field if the given value is not nil.
func (_u *SessionSummaryUpdateOne) SetNillableQuestionsViewed(v *int) *SessionSummaryUpdateOne {
	if v != nil {
		_u.SetQuestionsViewed(*v)
	}
	return _u
}

// AddQuestionsViewed adds value to the "questions_viewed" field.
func (_u *SessionSummaryUpdateOne) AddQuestionsViewed(v int) *SessionSummaryUpdateOne {
	_u.mutation.AddQuestionsViewed(v)
	return _u
}

// SetSolutionsRevealed sets the "solutions_revealed" field.
func (_u *SessionSummaryUpdateOne) SetSolutionsRevealed(v int) *SessionSummaryUpdateOne {
	_u.mutation.ResetSolutionsRevealed()
	_u.mutation.SetSolutionsRevealed(v)
	return _u
}

// SetNillableSolutionsRevealed sets the "solutions_revealed" field if the given value is not nil.
func (_u *SessionSummaryUpdateOne) SetNillableSolutionsRevealed(v *int) *SessionSummaryUpdateOne {
	if v != nil {
		_u.SetSolutionsRevealed(*v)
	}
	return _u
}

// AddSolutionsRevealed adds value to the "solutions_revealed" field.
func (_u *SessionSummaryUpdateOne) AddSolutionsRevealed(v int) *SessionSummaryUpdateOne {
	_u.mutation.AddSolutionsRevealed(v)
	return _u
}

// Mutation returns the SessionSummaryMutation object of the builder.
func (_u *SessionSummaryUpdateOne) Mutation() *SessionSummaryMutation {
	return _u.mutation
}

// Where appends a list predicates to the SessionSummaryUpdate builder.
func (_u *SessionSummaryUpdateOne) Where(ps ...predicate.SessionSummary) *SessionSummaryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SessionSummaryUpdateOne) Select(field string, fields ...string) *SessionSummaryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SessionSummary entity.
func (_u *SessionSummaryUpdateOne) Save(ctx context.Context) (*SessionSummary, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionSummaryUpdateOne) SaveX(ctx context.Context) *SessionSummary {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SessionSummaryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionSummaryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SessionSummaryUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := sessionsummary.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "SessionSummary.session_id": %w`, err)}
		}
	}
	return nil
}

func (_u *SessionSummaryUpdateOne) sqlSave(ctx context.Context) (_node *SessionSummary, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sessionsummary.Table, sessionsummary.Columns, sqlgraph.NewFieldSpec(sessionsummary.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SessionSummary.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, sessionsummary.FieldID)
		for _, f := range fields {
			if !sessionsummary.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != sessionsummary.FieldID {
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
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(sessionsummary.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.EndedAt(); ok {
		_spec.SetField(sessionsummary.FieldEndedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DurationMinutes(); ok {
		_spec.SetField(sessionsummary.FieldDurationMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationMinutes(); ok {
		_spec.AddField(sessionsummary.FieldDurationMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TopicFilter(); ok {
		_spec.SetField(sessionsummary.FieldTopicFilter, field.TypeString, value)
	}
	if _u.mutation.TopicFilterCleared() {
		_spec.ClearField(sessionsummary.FieldTopicFilter, field.TypeString)
	}
	if value, ok := _u.mutation.QuestionsViewed(); ok {
		_spec.SetField(sessionsummary.FieldQuestionsViewed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionsViewed(); ok {
		_spec.AddField(sessionsummary.FieldQuestionsViewed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SolutionsRevealed(); ok {
		_spec.SetField(sessionsummary.FieldSolutionsRevealed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSolutionsRevealed(); ok {
		_spec.AddField(sessionsummary.FieldSolutionsRevealed, field.TypeInt, value)
	}
	_node = &SessionSummary{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sessionsummary.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
