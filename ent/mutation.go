// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/marblesj/wace-student-trainer/ent/diagram"
	"github.com/marblesj/wace-student-trainer/ent/importedquestion"
	"github.com/marblesj/wace-student-trainer/ent/predicate"
	"github.com/marblesj/wace-student-trainer/ent/profile"
	"github.com/marblesj/wace-student-trainer/ent/scheduleupdate"
	"github.com/marblesj/wace-student-trainer/ent/sessionsummary"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeDiagram          = "Diagram"
	TypeImportedQuestion = "ImportedQuestion"
	TypeProfile          = "Profile"
	TypeScheduleUpdate   = "ScheduleUpdate"
	TypeSessionSummary   = "SessionSummary"
)

// DiagramMutation represents an operation that mutates the Diagram nodes in the graph.
type DiagramMutation struct {
	config
	op            Op
	typ           string
	id            *int
	filename      *string
	data_url      *string
	imported_from *string
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Diagram, error)
	predicates    []predicate.Diagram
}

var _ ent.Mutation = (*DiagramMutation)(nil)

// diagramOption allows management of the mutation configuration using functional options.
type diagramOption func(*DiagramMutation)

// newDiagramMutation creates new mutation for the Diagram entity.
func newDiagramMutation(c config, op Op, opts ...diagramOption) *DiagramMutation {
	m := &DiagramMutation{
		config:        c,
		op:            op,
		typ:           TypeDiagram,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDiagramID sets the ID field of the mutation.
func withDiagramID(id int) diagramOption {
	return func(m *DiagramMutation) {
		var (
			err   error
			once  sync.Once
			value *Diagram
		)
		m.oldValue = func(ctx context.Context) (*Diagram, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Diagram.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDiagram sets the old Diagram of the mutation.
func withDiagram(node *Diagram) diagramOption {
	return func(m *DiagramMutation) {
		m.oldValue = func(context.Context) (*Diagram, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DiagramMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DiagramMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DiagramMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DiagramMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Diagram.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetFilename sets the "filename" field.
func (m *DiagramMutation) SetFilename(s string) {
	m.filename = &s
}

// Filename returns the value of the "filename" field in the mutation.
func (m *DiagramMutation) Filename() (r string, exists bool) {
	v := m.filename
	if v == nil {
		return
	}
	return *v, true
}

// OldFilename returns the old "filename" field's value of the Diagram entity.
// If the Diagram object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DiagramMutation) OldFilename(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFilename is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFilename requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFilename: %w", err)
	}
	return oldValue.Filename, nil
}

// ResetFilename resets all changes to the "filename" field.
func (m *DiagramMutation) ResetFilename() {
	m.filename = nil
}

// SetDataURL sets the "data_url" field.
func (m *DiagramMutation) SetDataURL(s string) {
	m.data_url = &s
}

// DataURL returns the value of the "data_url" field in the mutation.
func (m *DiagramMutation) DataURL() (r string, exists bool) {
	v := m.data_url
	if v == nil {
		return
	}
	return *v, true
}

// OldDataURL returns the old "data_url" field's value of the Diagram entity.
// If the Diagram object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DiagramMutation) OldDataURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDataURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDataURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDataURL: %w", err)
	}
	return oldValue.DataURL, nil
}

// ResetDataURL resets all changes to the "data_url" field.
func (m *DiagramMutation) ResetDataURL() {
	m.data_url = nil
}

// SetImportedFrom sets the "imported_from" field.
func (m *DiagramMutation) SetImportedFrom(s string) {
	m.imported_from = &s
}

// ImportedFrom returns the value of the "imported_from" field in the mutation.
func (m *DiagramMutation) ImportedFrom() (r string, exists bool) {
	v := m.imported_from
	if v == nil {
		return
	}
	return *v, true
}

// OldImportedFrom returns the old "imported_from" field's value of the Diagram entity.
// If the Diagram object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DiagramMutation) OldImportedFrom(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldImportedFrom is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldImportedFrom requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldImportedFrom: %w", err)
	}
	return oldValue.ImportedFrom, nil
}

// ResetImportedFrom resets all changes to the "imported_from" field.
func (m *DiagramMutation) ResetImportedFrom() {
	m.imported_from = nil
}

// Where appends a list predicates to the DiagramMutation builder.
func (m *DiagramMutation) Where(ps ...predicate.Diagram) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DiagramMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DiagramMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Diagram, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DiagramMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DiagramMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Diagram).
func (m *DiagramMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DiagramMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.filename != nil {
		fields = append(fields, diagram.FieldFilename)
	}
	if m.data_url != nil {
		fields = append(fields, diagram.FieldDataURL)
	}
	if m.imported_from != nil {
		fields = append(fields, diagram.FieldImportedFrom)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DiagramMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case diagram.FieldFilename:
		return m.Filename()
	case diagram.FieldDataURL:
		return m.DataURL()
	case diagram.FieldImportedFrom:
		return m.ImportedFrom()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DiagramMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case diagram.FieldFilename:
		return m.OldFilename(ctx)
	case diagram.FieldDataURL:
		return m.OldDataURL(ctx)
	case diagram.FieldImportedFrom:
		return m.OldImportedFrom(ctx)
	}
	return nil, fmt.Errorf("unknown Diagram field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DiagramMutation) SetField(name string, value ent.Value) error {
	switch name {
	case diagram.FieldFilename:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFilename(v)
		return nil
	case diagram.FieldDataURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDataURL(v)
		return nil
	case diagram.FieldImportedFrom:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetImportedFrom(v)
		return nil
	}
	return fmt.Errorf("unknown Diagram field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DiagramMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DiagramMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DiagramMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Diagram numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DiagramMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DiagramMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DiagramMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Diagram nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DiagramMutation) ResetField(name string) error {
	switch name {
	case diagram.FieldFilename:
		m.ResetFilename()
		return nil
	case diagram.FieldDataURL:
		m.ResetDataURL()
		return nil
	case diagram.FieldImportedFrom:
		m.ResetImportedFrom()
		return nil
	}
	return fmt.Errorf("unknown Diagram field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DiagramMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DiagramMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DiagramMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DiagramMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DiagramMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DiagramMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DiagramMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Diagram unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DiagramMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Diagram edge %s", name)
}

// ImportedQuestionMutation represents an operation that mutates the ImportedQuestion nodes in the graph.
type ImportedQuestionMutation struct {
	config
	op            Op
	typ           string
	id            *int
	filename      *string
	question_data *map[string]interface{}
	imported_from *string
	imported_at   *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*ImportedQuestion, error)
	predicates    []predicate.ImportedQuestion
}

var _ ent.Mutation = (*ImportedQuestionMutation)(nil)

// importedquestionOption allows management of the mutation configuration using functional options.
type importedquestionOption func(*ImportedQuestionMutation)

// newImportedQuestionMutation creates new mutation for the ImportedQuestion entity.
func newImportedQuestionMutation(c config, op Op, opts ...importedquestionOption) *ImportedQuestionMutation {
	m := &ImportedQuestionMutation{
		config:        c,
		op:            op,
		typ:           TypeImportedQuestion,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withImportedQuestionID sets the ID field of the mutation.
func withImportedQuestionID(id int) importedquestionOption {
	return func(m *ImportedQuestionMutation) {
		var (
			err   error
			once  sync.Once
			value *ImportedQuestion
		)
		m.oldValue = func(ctx context.Context) (*ImportedQuestion, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ImportedQuestion.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withImportedQuestion sets the old ImportedQuestion of the mutation.
func withImportedQuestion(node *ImportedQuestion) importedquestionOption {
	return func(m *ImportedQuestionMutation) {
		m.oldValue = func(context.Context) (*ImportedQuestion, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ImportedQuestionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ImportedQuestionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ImportedQuestionMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ImportedQuestionMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ImportedQuestion.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetFilename sets the "filename" field.
func (m *ImportedQuestionMutation) SetFilename(s string) {
	m.filename = &s
}

// Filename returns the value of the "filename" field in the mutation.
func (m *ImportedQuestionMutation) Filename() (r string, exists bool) {
	v := m.filename
	if v == nil {
		return
	}
	return *v, true
}

// OldFilename returns the old "filename" field's value of the ImportedQuestion entity.
// If the ImportedQuestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImportedQuestionMutation) OldFilename(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFilename is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFilename requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFilename: %w", err)
	}
	return oldValue.Filename, nil
}

// ResetFilename resets all changes to the "filename" field.
func (m *ImportedQuestionMutation) ResetFilename() {
	m.filename = nil
}

// SetQuestionData sets the "question_data" field.
func (m *ImportedQuestionMutation) SetQuestionData(value map[string]interface{}) {
	m.question_data = &value
}

// QuestionData returns the value of the "question_data" field in the mutation.
func (m *ImportedQuestionMutation) QuestionData() (r map[string]interface{}, exists bool) {
	v := m.question_data
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestionData returns the old "question_data" field's value of the ImportedQuestion entity.
// If the ImportedQuestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImportedQuestionMutation) OldQuestionData(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestionData is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestionData requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestionData: %w", err)
	}
	return oldValue.QuestionData, nil
}

// ResetQuestionData resets all changes to the "question_data" field.
func (m *ImportedQuestionMutation) ResetQuestionData() {
	m.question_data = nil
}

// SetImportedFrom sets the "imported_from" field.
func (m *ImportedQuestionMutation) SetImportedFrom(s string) {
	m.imported_from = &s
}

// ImportedFrom returns the value of the "imported_from" field in the mutation.
func (m *ImportedQuestionMutation) ImportedFrom() (r string, exists bool) {
	v := m.imported_from
	if v == nil {
		return
	}
	return *v, true
}

// OldImportedFrom returns the old "imported_from" field's value of the ImportedQuestion entity.
// If the ImportedQuestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImportedQuestionMutation) OldImportedFrom(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldImportedFrom is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldImportedFrom requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldImportedFrom: %w", err)
	}
	return oldValue.ImportedFrom, nil
}

// ResetImportedFrom resets all changes to the "imported_from" field.
func (m *ImportedQuestionMutation) ResetImportedFrom() {
	m.imported_from = nil
}

// SetImportedAt sets the "imported_at" field.
func (m *ImportedQuestionMutation) SetImportedAt(t time.Time) {
	m.imported_at = &t
}

// ImportedAt returns the value of the "imported_at" field in the mutation.
func (m *ImportedQuestionMutation) ImportedAt() (r time.Time, exists bool) {
	v := m.imported_at
	if v == nil {
		return
	}
	return *v, true
}

// OldImportedAt returns the old "imported_at" field's value of the ImportedQuestion entity.
// If the ImportedQuestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImportedQuestionMutation) OldImportedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldImportedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldImportedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldImportedAt: %w", err)
	}
	return oldValue.ImportedAt, nil
}

// ResetImportedAt resets all changes to the "imported_at" field.
func (m *ImportedQuestionMutation) ResetImportedAt() {
	m.imported_at = nil
}

// Where appends a list predicates to the ImportedQuestionMutation builder.
func (m *ImportedQuestionMutation) Where(ps ...predicate.ImportedQuestion) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ImportedQuestionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ImportedQuestionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ImportedQuestion, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ImportedQuestionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ImportedQuestionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ImportedQuestion).
func (m *ImportedQuestionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ImportedQuestionMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.filename != nil {
		fields = append(fields, importedquestion.FieldFilename)
	}
	if m.question_data != nil {
		fields = append(fields, importedquestion.FieldQuestionData)
	}
	if m.imported_from != nil {
		fields = append(fields, importedquestion.FieldImportedFrom)
	}
	if m.imported_at != nil {
		fields = append(fields, importedquestion.FieldImportedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ImportedQuestionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case importedquestion.FieldFilename:
		return m.Filename()
	case importedquestion.FieldQuestionData:
		return m.QuestionData()
	case importedquestion.FieldImportedFrom:
		return m.ImportedFrom()
	case importedquestion.FieldImportedAt:
		return m.ImportedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ImportedQuestionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case importedquestion.FieldFilename:
		return m.OldFilename(ctx)
	case importedquestion.FieldQuestionData:
		return m.OldQuestionData(ctx)
	case importedquestion.FieldImportedFrom:
		return m.OldImportedFrom(ctx)
	case importedquestion.FieldImportedAt:
		return m.OldImportedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ImportedQuestion field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ImportedQuestionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case importedquestion.FieldFilename:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFilename(v)
		return nil
	case importedquestion.FieldQuestionData:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestionData(v)
		return nil
	case importedquestion.FieldImportedFrom:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetImportedFrom(v)
		return nil
	case importedquestion.FieldImportedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetImportedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ImportedQuestion field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ImportedQuestionMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ImportedQuestionMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ImportedQuestionMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ImportedQuestion numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ImportedQuestionMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ImportedQuestionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ImportedQuestionMutation) ClearField(name string) error {
	return fmt.Errorf("unknown ImportedQuestion nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ImportedQuestionMutation) ResetField(name string) error {
	switch name {
	case importedquestion.FieldFilename:
		m.ResetFilename()
		return nil
	case importedquestion.FieldQuestionData:
		m.ResetQuestionData()
		return nil
	case importedquestion.FieldImportedFrom:
		m.ResetImportedFrom()
		return nil
	case importedquestion.FieldImportedAt:
		m.ResetImportedAt()
		return nil
	}
	return fmt.Errorf("unknown ImportedQuestion field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ImportedQuestionMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ImportedQuestionMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ImportedQuestionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ImportedQuestionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ImportedQuestionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ImportedQuestionMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ImportedQuestionMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ImportedQuestion unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ImportedQuestionMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ImportedQuestion edge %s", name)
}

// ProfileMutation represents an operation that mutates the Profile nodes in the graph.
type ProfileMutation struct {
	config
	op                     Op
	typ                    string
	id                     *int
	key                    *string
	student_name           *string
	ahead_of_schedule      *bool
	updates_imported       *[]map[string]interface{}
	appendupdates_imported []map[string]interface{}
	clearedFields          map[string]struct{}
	done                   bool
	oldValue               func(context.Context) (*Profile, error)
	predicates             []predicate.Profile
}

var _ ent.Mutation = (*ProfileMutation)(nil)

// profileOption allows management of the mutation configuration using functional options.
type profileOption func(*ProfileMutation)

// newProfileMutation creates new mutation for the Profile entity.
func newProfileMutation(c config, op Op, opts ...profileOption) *ProfileMutation {
	m := &ProfileMutation{
		config:        c,
		op:            op,
		typ:           TypeProfile,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withProfileID sets the ID field of the mutation.
func withProfileID(id int) profileOption {
	return func(m *ProfileMutation) {
		var (
			err   error
			once  sync.Once
			value *Profile
		)
		m.oldValue = func(ctx context.Context) (*Profile, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Profile.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withProfile sets the old Profile of the mutation.
func withProfile(node *Profile) profileOption {
	return func(m *ProfileMutation) {
		m.oldValue = func(context.Context) (*Profile, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ProfileMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ProfileMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ProfileMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ProfileMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Profile.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetKey sets the "key" field.
func (m *ProfileMutation) SetKey(s string) {
	m.key = &s
}

// Key returns the value of the "key" field in the mutation.
func (m *ProfileMutation) Key() (r string, exists bool) {
	v := m.key
	if v == nil {
		return
	}
	return *v, true
}

// OldKey returns the old "key" field's value of the Profile entity.
// If the Profile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProfileMutation) OldKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKey: %w", err)
	}
	return oldValue.Key, nil
}

// ResetKey resets all changes to the "key" field.
func (m *ProfileMutation) ResetKey() {
	m.key = nil
}

// SetStudentName sets the "student_name" field.
func (m *ProfileMutation) SetStudentName(s string) {
	m.student_name = &s
}

// StudentName returns the value of the "student_name" field in the mutation.
func (m *ProfileMutation) StudentName() (r string, exists bool) {
	v := m.student_name
	if v == nil {
		return
	}
	return *v, true
}

// OldStudentName returns the old "student_name" field's value of the Profile entity.
// If the Profile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProfileMutation) OldStudentName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStudentName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStudentName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStudentName: %w", err)
	}
	return oldValue.StudentName, nil
}

// ClearStudentName clears the value of the "student_name" field.
func (m *ProfileMutation) ClearStudentName() {
	m.student_name = nil
	m.clearedFields[profile.FieldStudentName] = struct{}{}
}

// StudentNameCleared returns if the "student_name" field was cleared in this mutation.
func (m *ProfileMutation) StudentNameCleared() bool {
	_, ok := m.clearedFields[profile.FieldStudentName]
	return ok
}

// ResetStudentName resets all changes to the "student_name" field.
func (m *ProfileMutation) ResetStudentName() {
	m.student_name = nil
	delete(m.clearedFields, profile.FieldStudentName)
}

// SetAheadOfSchedule sets the "ahead_of_schedule" field.
func (m *ProfileMutation) SetAheadOfSchedule(b bool) {
	m.ahead_of_schedule = &b
}

// AheadOfSchedule returns the value of the "ahead_of_schedule" field in the mutation.
func (m *ProfileMutation) AheadOfSchedule() (r bool, exists bool) {
	v := m.ahead_of_schedule
	if v == nil {
		return
	}
	return *v, true
}

// OldAheadOfSchedule returns the old "ahead_of_schedule" field's value of the Profile entity.
// If the Profile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProfileMutation) OldAheadOfSchedule(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAheadOfSchedule is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAheadOfSchedule requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAheadOfSchedule: %w", err)
	}
	return oldValue.AheadOfSchedule, nil
}

// ResetAheadOfSchedule resets all changes to the "ahead_of_schedule" field.
func (m *ProfileMutation) ResetAheadOfSchedule() {
	m.ahead_of_schedule = nil
}

// SetUpdatesImported sets the "updates_imported" field.
func (m *ProfileMutation) SetUpdatesImported(value []map[string]interface{}) {
	m.updates_imported = &value
	m.appendupdates_imported = nil
}

// UpdatesImported returns the value of the "updates_imported" field in the mutation.
func (m *ProfileMutation) UpdatesImported() (r []map[string]interface{}, exists bool) {
	v := m.updates_imported
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatesImported returns the old "updates_imported" field's value of the Profile entity.
// If the Profile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProfileMutation) OldUpdatesImported(ctx context.Context) (v []map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatesImported is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatesImported requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatesImported: %w", err)
	}
	return oldValue.UpdatesImported, nil
}

// AppendUpdatesImported adds value to the "updates_imported" field.
func (m *ProfileMutation) AppendUpdatesImported(value []map[string]interface{}) {
	m.appendupdates_imported = append(m.appendupdates_imported, value...)
}

// AppendedUpdatesImported returns the list of values that were appended to the "updates_imported" field in this mutation.
func (m *ProfileMutation) AppendedUpdatesImported() ([]map[string]interface{}, bool) {
	if len(m.appendupdates_imported) == 0 {
		return nil, false
	}
	return m.appendupdates_imported, true
}

// ClearUpdatesImported clears the value of the "updates_imported" field.
func (m *ProfileMutation) ClearUpdatesImported() {
	m.updates_imported = nil
	m.appendupdates_imported = nil
	m.clearedFields[profile.FieldUpdatesImported] = struct{}{}
}

// UpdatesImportedCleared returns if the "updates_imported" field was cleared in this mutation.
func (m *ProfileMutation) UpdatesImportedCleared() bool {
	_, ok := m.clearedFields[profile.FieldUpdatesImported]
	return ok
}

// ResetUpdatesImported resets all changes to the "updates_imported" field.
func (m *ProfileMutation) ResetUpdatesImported() {
	m.updates_imported = nil
	m.appendupdates_imported = nil
	delete(m.clearedFields, profile.FieldUpdatesImported)
}

// Where appends a list predicates to the ProfileMutation builder.
func (m *ProfileMutation) Where(ps ...predicate.Profile) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ProfileMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ProfileMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Profile, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ProfileMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ProfileMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Profile).
func (m *ProfileMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ProfileMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.key != nil {
		fields = append(fields, profile.FieldKey)
	}
	if m.student_name != nil {
		fields = append(fields, profile.FieldStudentName)
	}
	if m.ahead_of_schedule != nil {
		fields = append(fields, profile.FieldAheadOfSchedule)
	}
	if m.updates_imported != nil {
		fields = append(fields, profile.FieldUpdatesImported)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ProfileMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case profile.FieldKey:
		return m.Key()
	case profile.FieldStudentName:
		return m.StudentName()
	case profile.FieldAheadOfSchedule:
		return m.AheadOfSchedule()
	case profile.FieldUpdatesImported:
		return m.UpdatesImported()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ProfileMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case profile.FieldKey:
		return m.OldKey(ctx)
	case profile.FieldStudentName:
		return m.OldStudentName(ctx)
	case profile.FieldAheadOfSchedule:
		return m.OldAheadOfSchedule(ctx)
	case profile.FieldUpdatesImported:
		return m.OldUpdatesImported(ctx)
	}
	return nil, fmt.Errorf("unknown Profile field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProfileMutation) SetField(name string, value ent.Value) error {
	switch name {
	case profile.FieldKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKey(v)
		return nil
	case profile.FieldStudentName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStudentName(v)
		return nil
	case profile.FieldAheadOfSchedule:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAheadOfSchedule(v)
		return nil
	case profile.FieldUpdatesImported:
		v, ok := value.([]map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatesImported(v)
		return nil
	}
	return fmt.Errorf("unknown Profile field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ProfileMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ProfileMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProfileMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Profile numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ProfileMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(profile.FieldStudentName) {
		fields = append(fields, profile.FieldStudentName)
	}
	if m.FieldCleared(profile.FieldUpdatesImported) {
		fields = append(fields, profile.FieldUpdatesImported)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ProfileMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ProfileMutation) ClearField(name string) error {
	switch name {
	case profile.FieldStudentName:
		m.ClearStudentName()
		return nil
	case profile.FieldUpdatesImported:
		m.ClearUpdatesImported()
		return nil
	}
	return fmt.Errorf("unknown Profile nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ProfileMutation) ResetField(name string) error {
	switch name {
	case profile.FieldKey:
		m.ResetKey()
		return nil
	case profile.FieldStudentName:
		m.ResetStudentName()
		return nil
	case profile.FieldAheadOfSchedule:
		m.ResetAheadOfSchedule()
		return nil
	case profile.FieldUpdatesImported:
		m.ResetUpdatesImported()
		return nil
	}
	return fmt.Errorf("unknown Profile field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ProfileMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ProfileMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ProfileMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ProfileMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ProfileMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ProfileMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ProfileMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Profile unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ProfileMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Profile edge %s", name)
}

// ScheduleUpdateMutation represents an operation that mutates the ScheduleUpdate nodes in the graph.
type ScheduleUpdateMutation struct {
	config
	op                          Op
	typ                         string
	id                          *int
	update_id                   *string
	enabled_problem_types       *[]string
	appendenabled_problem_types []string
	date                        *string
	label                       *string
	problem_types               *[]string
	appendproblem_types         []string
	imported_at                 *time.Time
	clearedFields               map[string]struct{}
	done                        bool
	oldValue                    func(context.Context) (*ScheduleUpdate, error)
	predicates                  []predicate.ScheduleUpdate
}

var _ ent.Mutation = (*ScheduleUpdateMutation)(nil)

// scheduleupdateOption allows management of the mutation configuration using functional options.
type scheduleupdateOption func(*ScheduleUpdateMutation)

// newScheduleUpdateMutation creates new mutation for the ScheduleUpdate entity.
func newScheduleUpdateMutation(c config, op Op, opts ...scheduleupdateOption) *ScheduleUpdateMutation {
	m := &ScheduleUpdateMutation{
		config:        c,
		op:            op,
		typ:           TypeScheduleUpdate,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withScheduleUpdateID sets the ID field of the mutation.
func withScheduleUpdateID(id int) scheduleupdateOption {
	return func(m *ScheduleUpdateMutation) {
		var (
			err   error
			once  sync.Once
			value *ScheduleUpdate
		)
		m.oldValue = func(ctx context.Context) (*ScheduleUpdate, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ScheduleUpdate.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withScheduleUpdate sets the old ScheduleUpdate of the mutation.
func withScheduleUpdate(node *ScheduleUpdate) scheduleupdateOption {
	return func(m *ScheduleUpdateMutation) {
		m.oldValue = func(context.Context) (*ScheduleUpdate, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ScheduleUpdateMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ScheduleUpdateMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ScheduleUpdateMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ScheduleUpdateMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ScheduleUpdate.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUpdateID sets the "update_id" field.
func (m *ScheduleUpdateMutation) SetUpdateID(s string) {
	m.update_id = &s
}

// UpdateID returns the value of the "update_id" field in the mutation.
func (m *ScheduleUpdateMutation) UpdateID() (r string, exists bool) {
	v := m.update_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdateID returns the old "update_id" field's value of the ScheduleUpdate entity.
// If the ScheduleUpdate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduleUpdateMutation) OldUpdateID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdateID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdateID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdateID: %w", err)
	}
	return oldValue.UpdateID, nil
}

// ResetUpdateID resets all changes to the "update_id" field.
func (m *ScheduleUpdateMutation) ResetUpdateID() {
	m.update_id = nil
}

// SetEnabledProblemTypes sets the "enabled_problem_types" field.
func (m *ScheduleUpdateMutation) SetEnabledProblemTypes(s []string) {
	m.enabled_problem_types = &s
	m.appendenabled_problem_types = nil
}

// EnabledProblemTypes returns the value of the "enabled_problem_types" field in the mutation.
func (m *ScheduleUpdateMutation) EnabledProblemTypes() (r []string, exists bool) {
	v := m.enabled_problem_types
	if v == nil {
		return
	}
	return *v, true
}

// OldEnabledProblemTypes returns the old "enabled_problem_types" field's value of the ScheduleUpdate entity.
// If the ScheduleUpdate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduleUpdateMutation) OldEnabledProblemTypes(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEnabledProblemTypes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEnabledProblemTypes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEnabledProblemTypes: %w", err)
	}
	return oldValue.EnabledProblemTypes, nil
}

// AppendEnabledProblemTypes adds s to the "enabled_problem_types" field.
func (m *ScheduleUpdateMutation) AppendEnabledProblemTypes(s []string) {
	m.appendenabled_problem_types = append(m.appendenabled_problem_types, s...)
}

// AppendedEnabledProblemTypes returns the list of values that were appended to the "enabled_problem_types" field in this mutation.
func (m *ScheduleUpdateMutation) AppendedEnabledProblemTypes() ([]string, bool) {
	if len(m.appendenabled_problem_types) == 0 {
		return nil, false
	}
	return m.appendenabled_problem_types, true
}

// ClearEnabledProblemTypes clears the value of the "enabled_problem_types" field.
func (m *ScheduleUpdateMutation) ClearEnabledProblemTypes() {
	m.enabled_problem_types = nil
	m.appendenabled_problem_types = nil
	m.clearedFields[scheduleupdate.FieldEnabledProblemTypes] = struct{}{}
}

// EnabledProblemTypesCleared returns if the "enabled_problem_types" field was cleared in this mutation.
func (m *ScheduleUpdateMutation) EnabledProblemTypesCleared() bool {
	_, ok := m.clearedFields[scheduleupdate.FieldEnabledProblemTypes]
	return ok
}

// ResetEnabledProblemTypes resets all changes to the "enabled_problem_types" field.
func (m *ScheduleUpdateMutation) ResetEnabledProblemTypes() {
	m.enabled_problem_types = nil
	m.appendenabled_problem_types = nil
	delete(m.clearedFields, scheduleupdate.FieldEnabledProblemTypes)
}

// SetDate sets the "date" field.
func (m *ScheduleUpdateMutation) SetDate(s string) {
	m.date = &s
}

// Date returns the value of the "date" field in the mutation.
func (m *ScheduleUpdateMutation) Date() (r string, exists bool) {
	v := m.date
	if v == nil {
		return
	}
	return *v, true
}

// OldDate returns the old "date" field's value of the ScheduleUpdate entity.
// If the ScheduleUpdate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduleUpdateMutation) OldDate(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDate: %w", err)
	}
	return oldValue.Date, nil
}

// ClearDate clears the value of the "date" field.
func (m *ScheduleUpdateMutation) ClearDate() {
	m.date = nil
	m.clearedFields[scheduleupdate.FieldDate] = struct{}{}
}

// DateCleared returns if the "date" field was cleared in this mutation.
func (m *ScheduleUpdateMutation) DateCleared() bool {
	_, ok := m.clearedFields[scheduleupdate.FieldDate]
	return ok
}

// ResetDate resets all changes to the "date" field.
func (m *ScheduleUpdateMutation) ResetDate() {
	m.date = nil
	delete(m.clearedFields, scheduleupdate.FieldDate)
}

// SetLabel sets the "label" field.
func (m *ScheduleUpdateMutation) SetLabel(s string) {
	m.label = &s
}

// Label returns the value of the "label" field in the mutation.
func (m *ScheduleUpdateMutation) Label() (r string, exists bool) {
	v := m.label
	if v == nil {
		return
	}
	return *v, true
}

// OldLabel returns the old "label" field's value of the ScheduleUpdate entity.
// If the ScheduleUpdate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduleUpdateMutation) OldLabel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLabel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLabel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLabel: %w", err)
	}
	return oldValue.Label, nil
}

// ClearLabel clears the value of the "label" field.
func (m *ScheduleUpdateMutation) ClearLabel() {
	m.label = nil
	m.clearedFields[scheduleupdate.FieldLabel] = struct{}{}
}

// LabelCleared returns if the "label" field was cleared in this mutation.
func (m *ScheduleUpdateMutation) LabelCleared() bool {
	_, ok := m.clearedFields[scheduleupdate.FieldLabel]
	return ok
}

// ResetLabel resets all changes to the "label" field.
func (m *ScheduleUpdateMutation) ResetLabel() {
	m.label = nil
	delete(m.clearedFields, scheduleupdate.FieldLabel)
}

// SetProblemTypes sets the "problem_types" field.
func (m *ScheduleUpdateMutation) SetProblemTypes(s []string) {
	m.problem_types = &s
	m.appendproblem_types = nil
}

// ProblemTypes returns the value of the "problem_types" field in the mutation.
func (m *ScheduleUpdateMutation) ProblemTypes() (r []string, exists bool) {
	v := m.problem_types
	if v == nil {
		return
	}
	return *v, true
}

// OldProblemTypes returns the old "problem_types" field's value of the ScheduleUpdate entity.
// If the ScheduleUpdate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduleUpdateMutation) OldProblemTypes(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProblemTypes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProblemTypes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProblemTypes: %w", err)
	}
	return oldValue.ProblemTypes, nil
}

// AppendProblemTypes adds s to the "problem_types" field.
func (m *ScheduleUpdateMutation) AppendProblemTypes(s []string) {
	m.appendproblem_types = append(m.appendproblem_types, s...)
}

// AppendedProblemTypes returns the list of values that were appended to the "problem_types" field in this mutation.
func (m *ScheduleUpdateMutation) AppendedProblemTypes() ([]string, bool) {
	if len(m.appendproblem_types) == 0 {
		return nil, false
	}
	return m.appendproblem_types, true
}

// ClearProblemTypes clears the value of the "problem_types" field.
func (m *ScheduleUpdateMutation) ClearProblemTypes() {
	m.problem_types = nil
	m.appendproblem_types = nil
	m.clearedFields[scheduleupdate.FieldProblemTypes] = struct{}{}
}

// ProblemTypesCleared returns if the "problem_types" field was cleared in this mutation.
func (m *ScheduleUpdateMutation) ProblemTypesCleared() bool {
	_, ok := m.clearedFields[scheduleupdate.FieldProblemTypes]
	return ok
}

// ResetProblemTypes resets all changes to the "problem_types" field.
func (m *ScheduleUpdateMutation) ResetProblemTypes() {
	m.problem_types = nil
	m.appendproblem_types = nil
	delete(m.clearedFields, scheduleupdate.FieldProblemTypes)
}

// SetImportedAt sets the "imported_at" field.
func (m *ScheduleUpdateMutation) SetImportedAt(t time.Time) {
	m.imported_at = &t
}

// ImportedAt returns the value of the "imported_at" field in the mutation.
func (m *ScheduleUpdateMutation) ImportedAt() (r time.Time, exists bool) {
	v := m.imported_at
	if v == nil {
		return
	}
	return *v, true
}

// OldImportedAt returns the old "imported_at" field's value of the ScheduleUpdate entity.
// If the ScheduleUpdate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduleUpdateMutation) OldImportedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldImportedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldImportedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldImportedAt: %w", err)
	}
	return oldValue.ImportedAt, nil
}

// ResetImportedAt resets all changes to the "imported_at" field.
func (m *ScheduleUpdateMutation) ResetImportedAt() {
	m.imported_at = nil
}

// Where appends a list predicates to the ScheduleUpdateMutation builder.
func (m *ScheduleUpdateMutation) Where(ps ...predicate.ScheduleUpdate) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ScheduleUpdateMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ScheduleUpdateMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ScheduleUpdate, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ScheduleUpdateMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ScheduleUpdateMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ScheduleUpdate).
func (m *ScheduleUpdateMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ScheduleUpdateMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.update_id != nil {
		fields = append(fields, scheduleupdate.FieldUpdateID)
	}
	if m.enabled_problem_types != nil {
		fields = append(fields, scheduleupdate.FieldEnabledProblemTypes)
	}
	if m.date != nil {
		fields = append(fields, scheduleupdate.FieldDate)
	}
	if m.label != nil {
		fields = append(fields, scheduleupdate.FieldLabel)
	}
	if m.problem_types != nil {
		fields = append(fields, scheduleupdate.FieldProblemTypes)
	}
	if m.imported_at != nil {
		fields = append(fields, scheduleupdate.FieldImportedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ScheduleUpdateMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case scheduleupdate.FieldUpdateID:
		return m.UpdateID()
	case scheduleupdate.FieldEnabledProblemTypes:
		return m.EnabledProblemTypes()
	case scheduleupdate.FieldDate:
		return m.Date()
	case scheduleupdate.FieldLabel:
		return m.Label()
	case scheduleupdate.FieldProblemTypes:
		return m.ProblemTypes()
	case scheduleupdate.FieldImportedAt:
		return m.ImportedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ScheduleUpdateMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case scheduleupdate.FieldUpdateID:
		return m.OldUpdateID(ctx)
	case scheduleupdate.FieldEnabledProblemTypes:
		return m.OldEnabledProblemTypes(ctx)
	case scheduleupdate.FieldDate:
		return m.OldDate(ctx)
	case scheduleupdate.FieldLabel:
		return m.OldLabel(ctx)
	case scheduleupdate.FieldProblemTypes:
		return m.OldProblemTypes(ctx)
	case scheduleupdate.FieldImportedAt:
		return m.OldImportedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ScheduleUpdate field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ScheduleUpdateMutation) SetField(name string, value ent.Value) error {
	switch name {
	case scheduleupdate.FieldUpdateID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdateID(v)
		return nil
	case scheduleupdate.FieldEnabledProblemTypes:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEnabledProblemTypes(v)
		return nil
	case scheduleupdate.FieldDate:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDate(v)
		return nil
	case scheduleupdate.FieldLabel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLabel(v)
		return nil
	case scheduleupdate.FieldProblemTypes:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProblemTypes(v)
		return nil
	case scheduleupdate.FieldImportedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetImportedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ScheduleUpdate field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ScheduleUpdateMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ScheduleUpdateMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ScheduleUpdateMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ScheduleUpdate numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ScheduleUpdateMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(scheduleupdate.FieldEnabledProblemTypes) {
		fields = append(fields, scheduleupdate.FieldEnabledProblemTypes)
	}
	if m.FieldCleared(scheduleupdate.FieldDate) {
		fields = append(fields, scheduleupdate.FieldDate)
	}
	if m.FieldCleared(scheduleupdate.FieldLabel) {
		fields = append(fields, scheduleupdate.FieldLabel)
	}
	if m.FieldCleared(scheduleupdate.FieldProblemTypes) {
		fields = append(fields, scheduleupdate.FieldProblemTypes)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ScheduleUpdateMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ScheduleUpdateMutation) ClearField(name string) error {
	switch name {
	case scheduleupdate.FieldEnabledProblemTypes:
		m.ClearEnabledProblemTypes()
		return nil
	case scheduleupdate.FieldDate:
		m.ClearDate()
		return nil
	case scheduleupdate.FieldLabel:
		m.ClearLabel()
		return nil
	case scheduleupdate.FieldProblemTypes:
		m.ClearProblemTypes()
		return nil
	}
	return fmt.Errorf("unknown ScheduleUpdate nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ScheduleUpdateMutation) ResetField(name string) error {
	switch name {
	case scheduleupdate.FieldUpdateID:
		m.ResetUpdateID()
		return nil
	case scheduleupdate.FieldEnabledProblemTypes:
		m.ResetEnabledProblemTypes()
		return nil
	case scheduleupdate.FieldDate:
		m.ResetDate()
		return nil
	case scheduleupdate.FieldLabel:
		m.ResetLabel()
		return nil
	case scheduleupdate.FieldProblemTypes:
		m.ResetProblemTypes()
		return nil
	case scheduleupdate.FieldImportedAt:
		m.ResetImportedAt()
		return nil
	}
	return fmt.Errorf("unknown ScheduleUpdate field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ScheduleUpdateMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ScheduleUpdateMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ScheduleUpdateMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ScheduleUpdateMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ScheduleUpdateMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ScheduleUpdateMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ScheduleUpdateMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ScheduleUpdate unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ScheduleUpdateMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ScheduleUpdate edge %s", name)
}

// SessionSummaryMutation represents an operation that mutates the SessionSummary nodes in the graph.
type SessionSummaryMutation struct {
	config
	op                    Op
	typ                   string
	id                    *int
	session_id            *string
	started_at            *time.Time
	ended_at              *time.Time
	duration_minutes      *int
	addduration_minutes   *int
	topic_filter          *string
	questions_viewed      *int
	addquestions_viewed   *int
	solutions_revealed    *int
	addsolutions_revealed *int
	clearedFields         map[string]struct{}
	done                  bool
	oldValue              func(context.Context) (*SessionSummary, error)
	predicates            []predicate.SessionSummary
}

var _ ent.Mutation = (*SessionSummaryMutation)(nil)

// sessionsummaryOption allows management of the mutation configuration using functional options.
type sessionsummaryOption func(*SessionSummaryMutation)

// newSessionSummaryMutation creates new mutation for the SessionSummary entity.
func newSessionSummaryMutation(c config, op Op, opts ...sessionsummaryOption) *SessionSummaryMutation {
	m := &SessionSummaryMutation{
		config:        c,
		op:            op,
		typ:           TypeSessionSummary,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSessionSummaryID sets the ID field of the mutation.
func withSessionSummaryID(id int) sessionsummaryOption {
	return func(m *SessionSummaryMutation) {
		var (
			err   error
			once  sync.Once
			value *SessionSummary
		)
		m.oldValue = func(ctx context.Context) (*SessionSummary, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SessionSummary.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSessionSummary sets the old SessionSummary of the mutation.
func withSessionSummary(node *SessionSummary) sessionsummaryOption {
	return func(m *SessionSummaryMutation) {
		m.oldValue = func(context.Context) (*SessionSummary, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SessionSummaryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SessionSummaryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SessionSummaryMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SessionSummaryMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SessionSummary.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionID sets the "session_id" field.
func (m *SessionSummaryMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *SessionSummaryMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the SessionSummary entity.
// If the SessionSummary object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionSummaryMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *SessionSummaryMutation) ResetSessionID() {
	m.session_id = nil
}

// SetStartedAt sets the "started_at" field.
func (m *SessionSummaryMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *SessionSummaryMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the SessionSummary entity.
// If the SessionSummary object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionSummaryMutation) OldStartedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *SessionSummaryMutation) ResetStartedAt() {
	m.started_at = nil
}

// SetEndedAt sets the "ended_at" field.
func (m *SessionSummaryMutation) SetEndedAt(t time.Time) {
	m.ended_at = &t
}

// EndedAt returns the value of the "ended_at" field in the mutation.
func (m *SessionSummaryMutation) EndedAt() (r time.Time, exists bool) {
	v := m.ended_at
	if v == nil {
		return
	}
	return *v, true
}

// OldEndedAt returns the old "ended_at" field's value of the SessionSummary entity.
// If the SessionSummary object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionSummaryMutation) OldEndedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEndedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEndedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEndedAt: %w", err)
	}
	return oldValue.EndedAt, nil
}

// ResetEndedAt resets all changes to the "ended_at" field.
func (m *SessionSummaryMutation) ResetEndedAt() {
	m.ended_at = nil
}

// SetDurationMinutes sets the "duration_minutes" field.
func (m *SessionSummaryMutation) SetDurationMinutes(i int) {
	m.duration_minutes = &i
	m.addduration_minutes = nil
}

// DurationMinutes returns the value of the "duration_minutes" field in the mutation.
func (m *SessionSummaryMutation) DurationMinutes() (r int, exists bool) {
	v := m.duration_minutes
	if v == nil {
		return
	}
	return *v, true
}

// OldDurationMinutes returns the old "duration_minutes" field's value of the SessionSummary entity.
// If the SessionSummary object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionSummaryMutation) OldDurationMinutes(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDurationMinutes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDurationMinutes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDurationMinutes: %w", err)
	}
	return oldValue.DurationMinutes, nil
}

// AddDurationMinutes adds i to the "duration_minutes" field.
func (m *SessionSummaryMutation) AddDurationMinutes(i int) {
	if m.addduration_minutes != nil {
		*m.addduration_minutes += i
	} else {
		m.addduration_minutes = &i
	}
}

// AddedDurationMinutes returns the value that was added to the "duration_minutes" field in this mutation.
func (m *SessionSummaryMutation) AddedDurationMinutes() (r int, exists bool) {
	v := m.addduration_minutes
	if v == nil {
		return
	}
	return *v, true
}

// ResetDurationMinutes resets all changes to the "duration_minutes" field.
func (m *SessionSummaryMutation) ResetDurationMinutes() {
	m.duration_minutes = nil
	m.addduration_minutes = nil
}

// SetTopicFilter sets the "topic_filter" field.
func (m *SessionSummaryMutation) SetTopicFilter(s string) {
	m.topic_filter = &s
}

// TopicFilter returns the value of the "topic_filter" field in the mutation.
func (m *SessionSummaryMutation) TopicFilter() (r string, exists bool) {
	v := m.topic_filter
	if v == nil {
		return
	}
	return *v, true
}

// OldTopicFilter returns the old "topic_filter" field's value of the SessionSummary entity.
// If the SessionSummary object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionSummaryMutation) OldTopicFilter(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTopicFilter is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTopicFilter requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTopicFilter: %w", err)
	}
	return oldValue.TopicFilter, nil
}

// ClearTopicFilter clears the value of the "topic_filter" field.
func (m *SessionSummaryMutation) ClearTopicFilter() {
	m.topic_filter = nil
	m.clearedFields[sessionsummary.FieldTopicFilter] = struct{}{}
}

// TopicFilterCleared returns if the "topic_filter" field was cleared in this mutation.
func (m *SessionSummaryMutation) TopicFilterCleared() bool {
	_, ok := m.clearedFields[sessionsummary.FieldTopicFilter]
	return ok
}

// ResetTopicFilter resets all changes to the "topic_filter" field.
func (m *SessionSummaryMutation) ResetTopicFilter() {
	m.topic_filter = nil
	delete(m.clearedFields, sessionsummary.FieldTopicFilter)
}

// SetQuestionsViewed sets the "questions_viewed" field.
func (m *SessionSummaryMutation) SetQuestionsViewed(i int) {
	m.questions_viewed = &i
	m.addquestions_viewed = nil
}

// QuestionsViewed returns the value of the "questions_viewed" field in the mutation.
func (m *SessionSummaryMutation) QuestionsViewed() (r int, exists bool) {
	v := m.questions_viewed
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestionsViewed returns the old "questions_viewed" field's value of the SessionSummary entity.
// If the SessionSummary object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionSummaryMutation) OldQuestionsViewed(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestionsViewed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestionsViewed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestionsViewed: %w", err)
	}
	return oldValue.QuestionsViewed, nil
}

// AddQuestionsViewed adds i to the "questions_viewed" field.
func (m *SessionSummaryMutation) AddQuestionsViewed(i int) {
	if m.addquestions_viewed != nil {
		*m.addquestions_viewed += i
	} else {
		m.addquestions_viewed = &i
	}
}

// AddedQuestionsViewed returns the value that was added to the "questions_viewed" field in this mutation.
func (m *SessionSummaryMutation) AddedQuestionsViewed() (r int, exists bool) {
	v := m.addquestions_viewed
	if v == nil {
		return
	}
	return *v, true
}

// ResetQuestionsViewed resets all changes to the "questions_viewed" field.
func (m *SessionSummaryMutation) ResetQuestionsViewed() {
	m.questions_viewed = nil
	m.addquestions_viewed = nil
}

// SetSolutionsRevealed sets the "solutions_revealed" field.
func (m *SessionSummaryMutation) SetSolutionsRevealed(i int) {
	m.solutions_revealed = &i
	m.addsolutions_revealed = nil
}

// SolutionsRevealed returns the value of the "solutions_revealed" field in the mutation.
func (m *SessionSummaryMutation) SolutionsRevealed() (r int, exists bool) {
	v := m.solutions_revealed
	if v == nil {
		return
	}
	return *v, true
}

// OldSolutionsRevealed returns the old "solutions_revealed" field's value of the SessionSummary entity.
// If the SessionSummary object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionSummaryMutation) OldSolutionsRevealed(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSolutionsRevealed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSolutionsRevealed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSolutionsRevealed: %w", err)
	}
	return oldValue.SolutionsRevealed, nil
}

// AddSolutionsRevealed adds i to the "solutions_revealed" field.
func (m *SessionSummaryMutation) AddSolutionsRevealed(i int) {
	if m.addsolutions_revealed != nil {
		*m.addsolutions_revealed += i
	} else {
		m.addsolutions_revealed = &i
	}
}

// AddedSolutionsRevealed returns the value that was added to the "solutions_revealed" field in this mutation.
func (m *SessionSummaryMutation) AddedSolutionsRevealed() (r int, exists bool) {
	v := m.addsolutions_revealed
	if v == nil {
		return
	}
	return *v, true
}

// ResetSolutionsRevealed resets all changes to the "solutions_revealed" field.
func (m *SessionSummaryMutation) ResetSolutionsRevealed() {
	m.solutions_revealed = nil
	m.addsolutions_revealed = nil
}

// Where appends a list predicates to the SessionSummaryMutation builder.
func (m *SessionSummaryMutation) Where(ps ...predicate.SessionSummary) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SessionSummaryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SessionSummaryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SessionSummary, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SessionSummaryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SessionSummaryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SessionSummary).
func (m *SessionSummaryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SessionSummaryMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.session_id != nil {
		fields = append(fields, sessionsummary.FieldSessionID)
	}
	if m.started_at != nil {
		fields = append(fields, sessionsummary.FieldStartedAt)
	}
	if m.ended_at != nil {
		fields = append(fields, sessionsummary.FieldEndedAt)
	}
	if m.duration_minutes != nil {
		fields = append(fields, sessionsummary.FieldDurationMinutes)
	}
	if m.topic_filter != nil {
		fields = append(fields, sessionsummary.FieldTopicFilter)
	}
	if m.questions_viewed != nil {
		fields = append(fields, sessionsummary.FieldQuestionsViewed)
	}
	if m.solutions_revealed != nil {
		fields = append(fields, sessionsummary.FieldSolutionsRevealed)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SessionSummaryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case sessionsummary.FieldSessionID:
		return m.SessionID()
	case sessionsummary.FieldStartedAt:
		return m.StartedAt()
	case sessionsummary.FieldEndedAt:
		return m.EndedAt()
	case sessionsummary.FieldDurationMinutes:
		return m.DurationMinutes()
	case sessionsummary.FieldTopicFilter:
		return m.TopicFilter()
	case sessionsummary.FieldQuestionsViewed:
		return m.QuestionsViewed()
	case sessionsummary.FieldSolutionsRevealed:
		return m.SolutionsRevealed()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SessionSummaryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case sessionsummary.FieldSessionID:
		return m.OldSessionID(ctx)
	case sessionsummary.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case sessionsummary.FieldEndedAt:
		return m.OldEndedAt(ctx)
	case sessionsummary.FieldDurationMinutes:
		return m.OldDurationMinutes(ctx)
	case sessionsummary.FieldTopicFilter:
		return m.OldTopicFilter(ctx)
	case sessionsummary.FieldQuestionsViewed:
		return m.OldQuestionsViewed(ctx)
	case sessionsummary.FieldSolutionsRevealed:
		return m.OldSolutionsRevealed(ctx)
	}
	return nil, fmt.Errorf("unknown SessionSummary field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SessionSummaryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case sessionsummary.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case sessionsummary.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case sessionsummary.FieldEndedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEndedAt(v)
		return nil
	case sessionsummary.FieldDurationMinutes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDurationMinutes(v)
		return nil
	case sessionsummary.FieldTopicFilter:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTopicFilter(v)
		return nil
	case sessionsummary.FieldQuestionsViewed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestionsViewed(v)
		return nil
	case sessionsummary.FieldSolutionsRevealed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSolutionsRevealed(v)
		return nil
	}
	return fmt.Errorf("unknown SessionSummary field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SessionSummaryMutation) AddedFields() []string {
	var fields []string
	if m.addduration_minutes != nil {
		fields = append(fields, sessionsummary.FieldDurationMinutes)
	}
	if m.addquestions_viewed != nil {
		fields = append(fields, sessionsummary.FieldQuestionsViewed)
	}
	if m.addsolutions_revealed != nil {
		fields = append(fields, sessionsummary.FieldSolutionsRevealed)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SessionSummaryMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case sessionsummary.FieldDurationMinutes:
		return m.AddedDurationMinutes()
	case sessionsummary.FieldQuestionsViewed:
		return m.AddedQuestionsViewed()
	case sessionsummary.FieldSolutionsRevealed:
		return m.AddedSolutionsRevealed()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SessionSummaryMutation) AddField(name string, value ent.Value) error {
	switch name {
	case sessionsummary.FieldDurationMinutes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDurationMinutes(v)
		return nil
	case sessionsummary.FieldQuestionsViewed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddQuestionsViewed(v)
		return nil
	case sessionsummary.FieldSolutionsRevealed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSolutionsRevealed(v)
		return nil
	}
	return fmt.Errorf("unknown SessionSummary numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SessionSummaryMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(sessionsummary.FieldTopicFilter) {
		fields = append(fields, sessionsummary.FieldTopicFilter)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SessionSummaryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SessionSummaryMutation) ClearField(name string) error {
	switch name {
	case sessionsummary.FieldTopicFilter:
		m.ClearTopicFilter()
		return nil
	}
	return fmt.Errorf("unknown SessionSummary nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SessionSummaryMutation) ResetField(name string) error {
	switch name {
	case sessionsummary.FieldSessionID:
		m.ResetSessionID()
		return nil
	case sessionsummary.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case sessionsummary.FieldEndedAt:
		m.ResetEndedAt()
		return nil
	case sessionsummary.FieldDurationMinutes:
		m.ResetDurationMinutes()
		return nil
	case sessionsummary.FieldTopicFilter:
		m.ResetTopicFilter()
		return nil
	case sessionsummary.FieldQuestionsViewed:
		m.ResetQuestionsViewed()
		return nil
	case sessionsummary.FieldSolutionsRevealed:
		m.ResetSolutionsRevealed()
		return nil
	}
	return fmt.Errorf("unknown SessionSummary field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SessionSummaryMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SessionSummaryMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SessionSummaryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SessionSummaryMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SessionSummaryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SessionSummaryMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SessionSummaryMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown SessionSummary unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SessionSummaryMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown SessionSummary edge %s", name)
}
