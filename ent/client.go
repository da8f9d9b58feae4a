// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/marblesj/wace-student-trainer/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/marblesj/wace-student-trainer/ent/diagram"
	"github.com/marblesj/wace-student-trainer/ent/importedquestion"
	"github.com/marblesj/wace-student-trainer/ent/profile"
	"github.com/marblesj/wace-student-trainer/ent/scheduleupdate"
	"github.com/marblesj/wace-student-trainer/ent/sessionsummary"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Diagram is the client for interacting with the Diagram builders.
	Diagram *DiagramClient
	// ImportedQuestion is the client for interacting with the ImportedQuestion builders.
	ImportedQuestion *ImportedQuestionClient
	// Profile is the client for interacting with the Profile builders.
	Profile *ProfileClient
	// ScheduleUpdate is the client for interacting with the ScheduleUpdate builders.
	ScheduleUpdate *ScheduleUpdateClient
	// SessionSummary is the client for interacting with the SessionSummary builders.
	SessionSummary *SessionSummaryClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Diagram = NewDiagramClient(c.config)
	c.ImportedQuestion = NewImportedQuestionClient(c.config)
	c.Profile = NewProfileClient(c.config)
	c.ScheduleUpdate = NewScheduleUpdateClient(c.config)
	c.SessionSummary = NewSessionSummaryClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:              ctx,
		config:           cfg,
		Diagram:          NewDiagramClient(cfg),
		ImportedQuestion: NewImportedQuestionClient(cfg),
		Profile:          NewProfileClient(cfg),
		ScheduleUpdate:   NewScheduleUpdateClient(cfg),
		SessionSummary:   NewSessionSummaryClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:              ctx,
		config:           cfg,
		Diagram:          NewDiagramClient(cfg),
		ImportedQuestion: NewImportedQuestionClient(cfg),
		Profile:          NewProfileClient(cfg),
		ScheduleUpdate:   NewScheduleUpdateClient(cfg),
		SessionSummary:   NewSessionSummaryClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Diagram.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	c.Diagram.Use(hooks...)
	c.ImportedQuestion.Use(hooks...)
	c.Profile.Use(hooks...)
	c.ScheduleUpdate.Use(hooks...)
	c.SessionSummary.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.Diagram.Intercept(interceptors...)
	c.ImportedQuestion.Intercept(interceptors...)
	c.Profile.Intercept(interceptors...)
	c.ScheduleUpdate.Intercept(interceptors...)
	c.SessionSummary.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *DiagramMutation:
		return c.Diagram.mutate(ctx, m)
	case *ImportedQuestionMutation:
		return c.ImportedQuestion.mutate(ctx, m)
	case *ProfileMutation:
		return c.Profile.mutate(ctx, m)
	case *ScheduleUpdateMutation:
		return c.ScheduleUpdate.mutate(ctx, m)
	case *SessionSummaryMutation:
		return c.SessionSummary.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// DiagramClient is a client for the Diagram schema.
type DiagramClient struct {
	config
}

// NewDiagramClient returns a client for the Diagram from the given config.
func NewDiagramClient(c config) *DiagramClient {
	return &DiagramClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `diagram.Hooks(f(g(h())))`.
func (c *DiagramClient) Use(hooks ...Hook) {
	c.hooks.Diagram = append(c.hooks.Diagram, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `diagram.Intercept(f(g(h())))`.
func (c *DiagramClient) Intercept(interceptors ...Interceptor) {
	c.inters.Diagram = append(c.inters.Diagram, interceptors...)
}

// Create returns a builder for creating a Diagram entity.
func (c *DiagramClient) Create() *DiagramCreate {
	mutation := newDiagramMutation(c.config, OpCreate)
	return &DiagramCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Diagram entities.
func (c *DiagramClient) CreateBulk(builders ...*DiagramCreate) *DiagramCreateBulk {
	return &DiagramCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DiagramClient) MapCreateBulk(slice any, setFunc func(*DiagramCreate, int)) *DiagramCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DiagramCreateBulk{err: fmt.Errorf("calling to DiagramClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DiagramCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DiagramCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Diagram.
func (c *DiagramClient) Update() *DiagramUpdate {
	mutation := newDiagramMutation(c.config, OpUpdate)
	return &DiagramUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DiagramClient) UpdateOne(_m *Diagram) *DiagramUpdateOne {
	mutation := newDiagramMutation(c.config, OpUpdateOne, withDiagram(_m))
	return &DiagramUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DiagramClient) UpdateOneID(id int) *DiagramUpdateOne {
	mutation := newDiagramMutation(c.config, OpUpdateOne, withDiagramID(id))
	return &DiagramUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Diagram.
func (c *DiagramClient) Delete() *DiagramDelete {
	mutation := newDiagramMutation(c.config, OpDelete)
	return &DiagramDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DiagramClient) DeleteOne(_m *Diagram) *DiagramDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DiagramClient) DeleteOneID(id int) *DiagramDeleteOne {
	builder := c.Delete().Where(diagram.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DiagramDeleteOne{builder}
}

// Query returns a query builder for Diagram.
func (c *DiagramClient) Query() *DiagramQuery {
	return &DiagramQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDiagram},
		inters: c.Interceptors(),
	}
}

// Get returns a Diagram entity by its id.
func (c *DiagramClient) Get(ctx context.Context, id int) (*Diagram, error) {
	return c.Query().Where(diagram.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DiagramClient) GetX(ctx context.Context, id int) *Diagram {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *DiagramClient) Hooks() []Hook {
	return c.hooks.Diagram
}

// Interceptors returns the client interceptors.
func (c *DiagramClient) Interceptors() []Interceptor {
	return c.inters.Diagram
}

func (c *DiagramClient) mutate(ctx context.Context, m *DiagramMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DiagramCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DiagramUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DiagramUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DiagramDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Diagram mutation op: %q", m.Op())
	}
}

// ImportedQuestionClient is a client for the ImportedQuestion schema.
type ImportedQuestionClient struct {
	config
}

// NewImportedQuestionClient returns a client for the ImportedQuestion from the given config.
func NewImportedQuestionClient(c config) *ImportedQuestionClient {
	return &ImportedQuestionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `importedquestion.Hooks(f(g(h())))`.
func (c *ImportedQuestionClient) Use(hooks ...Hook) {
	c.hooks.ImportedQuestion = append(c.hooks.ImportedQuestion, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `importedquestion.Intercept(f(g(h())))`.
func (c *ImportedQuestionClient) Intercept(interceptors ...Interceptor) {
	c.inters.ImportedQuestion = append(c.inters.ImportedQuestion, interceptors...)
}

// Create returns a builder for creating a ImportedQuestion entity.
func (c *ImportedQuestionClient) Create() *ImportedQuestionCreate {
	mutation := newImportedQuestionMutation(c.config, OpCreate)
	return &ImportedQuestionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ImportedQuestion entities.
func (c *ImportedQuestionClient) CreateBulk(builders ...*ImportedQuestionCreate) *ImportedQuestionCreateBulk {
	return &ImportedQuestionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ImportedQuestionClient) MapCreateBulk(slice any, setFunc func(*ImportedQuestionCreate, int)) *ImportedQuestionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ImportedQuestionCreateBulk{err: fmt.Errorf("calling to ImportedQuestionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ImportedQuestionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ImportedQuestionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ImportedQuestion.
func (c *ImportedQuestionClient) Update() *ImportedQuestionUpdate {
	mutation := newImportedQuestionMutation(c.config, OpUpdate)
	return &ImportedQuestionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ImportedQuestionClient) UpdateOne(_m *ImportedQuestion) *ImportedQuestionUpdateOne {
	mutation := newImportedQuestionMutation(c.config, OpUpdateOne, withImportedQuestion(_m))
	return &ImportedQuestionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ImportedQuestionClient) UpdateOneID(id int) *ImportedQuestionUpdateOne {
	mutation := newImportedQuestionMutation(c.config, OpUpdateOne, withImportedQuestionID(id))
	return &ImportedQuestionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ImportedQuestion.
func (c *ImportedQuestionClient) Delete() *ImportedQuestionDelete {
	mutation := newImportedQuestionMutation(c.config, OpDelete)
	return &ImportedQuestionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ImportedQuestionClient) DeleteOne(_m *ImportedQuestion) *ImportedQuestionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ImportedQuestionClient) DeleteOneID(id int) *ImportedQuestionDeleteOne {
	builder := c.Delete().Where(importedquestion.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ImportedQuestionDeleteOne{builder}
}

// Query returns a query builder for ImportedQuestion.
func (c *ImportedQuestionClient) Query() *ImportedQuestionQuery {
	return &ImportedQuestionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeImportedQuestion},
		inters: c.Interceptors(),
	}
}

// Get returns a ImportedQuestion entity by its id.
func (c *ImportedQuestionClient) Get(ctx context.Context, id int) (*ImportedQuestion, error) {
	return c.Query().Where(importedquestion.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ImportedQuestionClient) GetX(ctx context.Context, id int) *ImportedQuestion {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ImportedQuestionClient) Hooks() []Hook {
	return c.hooks.ImportedQuestion
}

// Interceptors returns the client interceptors.
func (c *ImportedQuestionClient) Interceptors() []Interceptor {
	return c.inters.ImportedQuestion
}

func (c *ImportedQuestionClient) mutate(ctx context.Context, m *ImportedQuestionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ImportedQuestionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ImportedQuestionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ImportedQuestionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ImportedQuestionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ImportedQuestion mutation op: %q", m.Op())
	}
}

// ProfileClient is a client for the Profile schema.
type ProfileClient struct {
	config
}

// NewProfileClient returns a client for the Profile from the given config.
func NewProfileClient(c config) *ProfileClient {
	return &ProfileClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `profile.Hooks(f(g(h())))`.
func (c *ProfileClient) Use(hooks ...Hook) {
	c.hooks.Profile = append(c.hooks.Profile, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `profile.Intercept(f(g(h())))`.
func (c *ProfileClient) Intercept(interceptors ...Interceptor) {
	c.inters.Profile = append(c.inters.Profile, interceptors...)
}

// Create returns a builder for creating a Profile entity.
func (c *ProfileClient) Create() *ProfileCreate {
	mutation := newProfileMutation(c.config, OpCreate)
	return &ProfileCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Profile entities.
func (c *ProfileClient) CreateBulk(builders ...*ProfileCreate) *ProfileCreateBulk {
	return &ProfileCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ProfileClient) MapCreateBulk(slice any, setFunc func(*ProfileCreate, int)) *ProfileCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ProfileCreateBulk{err: fmt.Errorf("calling to ProfileClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ProfileCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ProfileCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Profile.
func (c *ProfileClient) Update() *ProfileUpdate {
	mutation := newProfileMutation(c.config, OpUpdate)
	return &ProfileUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ProfileClient) UpdateOne(_m *Profile) *ProfileUpdateOne {
	mutation := newProfileMutation(c.config, OpUpdateOne, withProfile(_m))
	return &ProfileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ProfileClient) UpdateOneID(id int) *ProfileUpdateOne {
	mutation := newProfileMutation(c.config, OpUpdateOne, withProfileID(id))
	return &ProfileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Profile.
func (c *ProfileClient) Delete() *ProfileDelete {
	mutation := newProfileMutation(c.config, OpDelete)
	return &ProfileDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ProfileClient) DeleteOne(_m *Profile) *ProfileDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ProfileClient) DeleteOneID(id int) *ProfileDeleteOne {
	builder := c.Delete().Where(profile.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ProfileDeleteOne{builder}
}

// Query returns a query builder for Profile.
func (c *ProfileClient) Query() *ProfileQuery {
	return &ProfileQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeProfile},
		inters: c.Interceptors(),
	}
}

// Get returns a Profile entity by its id.
func (c *ProfileClient) Get(ctx context.Context, id int) (*Profile, error) {
	return c.Query().Where(profile.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ProfileClient) GetX(ctx context.Context, id int) *Profile {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ProfileClient) Hooks() []Hook {
	return c.hooks.Profile
}

// Interceptors returns the client interceptors.
func (c *ProfileClient) Interceptors() []Interceptor {
	return c.inters.Profile
}

func (c *ProfileClient) mutate(ctx context.Context, m *ProfileMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ProfileCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ProfileUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ProfileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ProfileDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Profile mutation op: %q", m.Op())
	}
}

// ScheduleUpdateClient is a client for the ScheduleUpdate schema.
type ScheduleUpdateClient struct {
	config
}

// NewScheduleUpdateClient returns a client for the ScheduleUpdate from the given config.
func NewScheduleUpdateClient(c config) *ScheduleUpdateClient {
	return &ScheduleUpdateClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `scheduleupdate.Hooks(f(g(h())))`.
func (c *ScheduleUpdateClient) Use(hooks ...Hook) {
	c.hooks.ScheduleUpdate = append(c.hooks.ScheduleUpdate, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `scheduleupdate.Intercept(f(g(h())))`.
func (c *ScheduleUpdateClient) Intercept(interceptors ...Interceptor) {
	c.inters.ScheduleUpdate = append(c.inters.ScheduleUpdate, interceptors...)
}

// Create returns a builder for creating a ScheduleUpdate entity.
func (c *ScheduleUpdateClient) Create() *ScheduleUpdateCreate {
	mutation := newScheduleUpdateMutation(c.config, OpCreate)
	return &ScheduleUpdateCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ScheduleUpdate entities.
func (c *ScheduleUpdateClient) CreateBulk(builders ...*ScheduleUpdateCreate) *ScheduleUpdateCreateBulk {
	return &ScheduleUpdateCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ScheduleUpdateClient) MapCreateBulk(slice any, setFunc func(*ScheduleUpdateCreate, int)) *ScheduleUpdateCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ScheduleUpdateCreateBulk{err: fmt.Errorf("calling to ScheduleUpdateClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ScheduleUpdateCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ScheduleUpdateCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ScheduleUpdate.
func (c *ScheduleUpdateClient) Update() *ScheduleUpdateUpdate {
	mutation := newScheduleUpdateMutation(c.config, OpUpdate)
	return &ScheduleUpdateUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ScheduleUpdateClient) UpdateOne(_m *ScheduleUpdate) *ScheduleUpdateUpdateOne {
	mutation := newScheduleUpdateMutation(c.config, OpUpdateOne, withScheduleUpdate(_m))
	return &ScheduleUpdateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ScheduleUpdateClient) UpdateOneID(id int) *ScheduleUpdateUpdateOne {
	mutation := newScheduleUpdateMutation(c.config, OpUpdateOne, withScheduleUpdateID(id))
	return &ScheduleUpdateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ScheduleUpdate.
func (c *ScheduleUpdateClient) Delete() *ScheduleUpdateDelete {
	mutation := newScheduleUpdateMutation(c.config, OpDelete)
	return &ScheduleUpdateDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ScheduleUpdateClient) DeleteOne(_m *ScheduleUpdate) *ScheduleUpdateDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ScheduleUpdateClient) DeleteOneID(id int) *ScheduleUpdateDeleteOne {
	builder := c.Delete().Where(scheduleupdate.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ScheduleUpdateDeleteOne{builder}
}

// Query returns a query builder for ScheduleUpdate.
func (c *ScheduleUpdateClient) Query() *ScheduleUpdateQuery {
	return &ScheduleUpdateQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeScheduleUpdate},
		inters: c.Interceptors(),
	}
}

// Get returns a ScheduleUpdate entity by its id.
func (c *ScheduleUpdateClient) Get(ctx context.Context, id int) (*ScheduleUpdate, error) {
	return c.Query().Where(scheduleupdate.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ScheduleUpdateClient) GetX(ctx context.Context, id int) *ScheduleUpdate {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ScheduleUpdateClient) Hooks() []Hook {
	return c.hooks.ScheduleUpdate
}

// Interceptors returns the client interceptors.
func (c *ScheduleUpdateClient) Interceptors() []Interceptor {
	return c.inters.ScheduleUpdate
}

func (c *ScheduleUpdateClient) mutate(ctx context.Context, m *ScheduleUpdateMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ScheduleUpdateCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ScheduleUpdateUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ScheduleUpdateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ScheduleUpdateDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ScheduleUpdate mutation op: %q", m.Op())
	}
}

// SessionSummaryClient is a client for the SessionSummary schema.
type SessionSummaryClient struct {
	config
}

// NewSessionSummaryClient returns a client for the SessionSummary from the given config.
func NewSessionSummaryClient(c config) *SessionSummaryClient {
	return &SessionSummaryClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `sessionsummary.Hooks(f(g(h())))`.
func (c *SessionSummaryClient) Use(hooks ...Hook) {
	c.hooks.SessionSummary = append(c.hooks.SessionSummary, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `sessionsummary.Intercept(f(g(h())))`.
func (c *SessionSummaryClient) Intercept(interceptors ...Interceptor) {
	c.inters.SessionSummary = append(c.inters.SessionSummary, interceptors...)
}

// Create returns a builder for creating a SessionSummary entity.
func (c *SessionSummaryClient) Create() *SessionSummaryCreate {
	mutation := newSessionSummaryMutation(c.config, OpCreate)
	return &SessionSummaryCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SessionSummary entities.
func (c *SessionSummaryClient) CreateBulk(builders ...*SessionSummaryCreate) *SessionSummaryCreateBulk {
	return &SessionSummaryCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SessionSummaryClient) MapCreateBulk(slice any, setFunc func(*SessionSummaryCreate, int)) *SessionSummaryCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SessionSummaryCreateBulk{err: fmt.Errorf("calling to SessionSummaryClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SessionSummaryCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SessionSummaryCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SessionSummary.
func (c *SessionSummaryClient) Update() *SessionSummaryUpdate {
	mutation := newSessionSummaryMutation(c.config, OpUpdate)
	return &SessionSummaryUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SessionSummaryClient) UpdateOne(_m *SessionSummary) *SessionSummaryUpdateOne {
	mutation := newSessionSummaryMutation(c.config, OpUpdateOne, withSessionSummary(_m))
	return &SessionSummaryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SessionSummaryClient) UpdateOneID(id int) *SessionSummaryUpdateOne {
	mutation := newSessionSummaryMutation(c.config, OpUpdateOne, withSessionSummaryID(id))
	return &SessionSummaryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SessionSummary.
func (c *SessionSummaryClient) Delete() *SessionSummaryDelete {
	mutation := newSessionSummaryMutation(c.config, OpDelete)
	return &SessionSummaryDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SessionSummaryClient) DeleteOne(_m *SessionSummary) *SessionSummaryDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SessionSummaryClient) DeleteOneID(id int) *SessionSummaryDeleteOne {
	builder := c.Delete().Where(sessionsummary.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SessionSummaryDeleteOne{builder}
}

// Query returns a query builder for SessionSummary.
func (c *SessionSummaryClient) Query() *SessionSummaryQuery {
	return &SessionSummaryQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSessionSummary},
		inters: c.Interceptors(),
	}
}

// Get returns a SessionSummary entity by its id.
func (c *SessionSummaryClient) Get(ctx context.Context, id int) (*SessionSummary, error) {
	return c.Query().Where(sessionsummary.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SessionSummaryClient) GetX(ctx context.Context, id int) *SessionSummary {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SessionSummaryClient) Hooks() []Hook {
	return c.hooks.SessionSummary
}

// Interceptors returns the client interceptors.
func (c *SessionSummaryClient) Interceptors() []Interceptor {
	return c.inters.SessionSummary
}

func (c *SessionSummaryClient) mutate(ctx context.Context, m *SessionSummaryMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SessionSummaryCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SessionSummaryUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SessionSummaryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SessionSummaryDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SessionSummary mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Diagram, ImportedQuestion, Profile, ScheduleUpdate, SessionSummary []ent.Hook
	}
	inters struct {
		Diagram, ImportedQuestion, Profile, ScheduleUpdate,
		SessionSummary []ent.Interceptor
	}
)
