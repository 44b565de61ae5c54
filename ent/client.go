// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/homewise/homewise/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/homewise/homewise/ent/illustrationevent"
	"github.com/homewise/homewise/ent/llmrequestevent"
	"github.com/homewise/homewise/ent/solveevent"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// IllustrationEvent is the client for interacting with the IllustrationEvent builders.
	IllustrationEvent *IllustrationEventClient
	// LLMRequestEvent is the client for interacting with the LLMRequestEvent builders.
	LLMRequestEvent *LLMRequestEventClient
	// SolveEvent is the client for interacting with the SolveEvent builders.
	SolveEvent *SolveEventClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.IllustrationEvent = NewIllustrationEventClient(c.config)
	c.LLMRequestEvent = NewLLMRequestEventClient(c.config)
	c.SolveEvent = NewSolveEventClient(c.config)
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
		ctx:               ctx,
		config:            cfg,
		IllustrationEvent: NewIllustrationEventClient(cfg),
		LLMRequestEvent:   NewLLMRequestEventClient(cfg),
		SolveEvent:        NewSolveEventClient(cfg),
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
		ctx:               ctx,
		config:            cfg,
		IllustrationEvent: NewIllustrationEventClient(cfg),
		LLMRequestEvent:   NewLLMRequestEventClient(cfg),
		SolveEvent:        NewSolveEventClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		IllustrationEvent.
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
	c.IllustrationEvent.Use(hooks...)
	c.LLMRequestEvent.Use(hooks...)
	c.SolveEvent.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.IllustrationEvent.Intercept(interceptors...)
	c.LLMRequestEvent.Intercept(interceptors...)
	c.SolveEvent.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *IllustrationEventMutation:
		return c.IllustrationEvent.mutate(ctx, m)
	case *LLMRequestEventMutation:
		return c.LLMRequestEvent.mutate(ctx, m)
	case *SolveEventMutation:
		return c.SolveEvent.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// IllustrationEventClient is a client for the IllustrationEvent schema.
type IllustrationEventClient struct {
	config
}

// NewIllustrationEventClient returns a client for the IllustrationEvent from the given config.
func NewIllustrationEventClient(c config) *IllustrationEventClient {
	return &IllustrationEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `illustrationevent.Hooks(f(g(h())))`.
func (c *IllustrationEventClient) Use(hooks ...Hook) {
	c.hooks.IllustrationEvent = append(c.hooks.IllustrationEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `illustrationevent.Intercept(f(g(h())))`.
func (c *IllustrationEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.IllustrationEvent = append(c.inters.IllustrationEvent, interceptors...)
}

// Create returns a builder for creating a IllustrationEvent entity.
func (c *IllustrationEventClient) Create() *IllustrationEventCreate {
	mutation := newIllustrationEventMutation(c.config, OpCreate)
	return &IllustrationEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of IllustrationEvent entities.
func (c *IllustrationEventClient) CreateBulk(builders ...*IllustrationEventCreate) *IllustrationEventCreateBulk {
	return &IllustrationEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *IllustrationEventClient) MapCreateBulk(slice any, setFunc func(*IllustrationEventCreate, int)) *IllustrationEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &IllustrationEventCreateBulk{err: fmt.Errorf("calling to IllustrationEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*IllustrationEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &IllustrationEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for IllustrationEvent.
func (c *IllustrationEventClient) Update() *IllustrationEventUpdate {
	mutation := newIllustrationEventMutation(c.config, OpUpdate)
	return &IllustrationEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *IllustrationEventClient) UpdateOne(_m *IllustrationEvent) *IllustrationEventUpdateOne {
	mutation := newIllustrationEventMutation(c.config, OpUpdateOne, withIllustrationEvent(_m))
	return &IllustrationEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *IllustrationEventClient) UpdateOneID(id int) *IllustrationEventUpdateOne {
	mutation := newIllustrationEventMutation(c.config, OpUpdateOne, withIllustrationEventID(id))
	return &IllustrationEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for IllustrationEvent.
func (c *IllustrationEventClient) Delete() *IllustrationEventDelete {
	mutation := newIllustrationEventMutation(c.config, OpDelete)
	return &IllustrationEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *IllustrationEventClient) DeleteOne(_m *IllustrationEvent) *IllustrationEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *IllustrationEventClient) DeleteOneID(id int) *IllustrationEventDeleteOne {
	builder := c.Delete().Where(illustrationevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &IllustrationEventDeleteOne{builder}
}

// Query returns a query builder for IllustrationEvent.
func (c *IllustrationEventClient) Query() *IllustrationEventQuery {
	return &IllustrationEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeIllustrationEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a IllustrationEvent entity by its id.
func (c *IllustrationEventClient) Get(ctx context.Context, id int) (*IllustrationEvent, error) {
	return c.Query().Where(illustrationevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *IllustrationEventClient) GetX(ctx context.Context, id int) *IllustrationEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *IllustrationEventClient) Hooks() []Hook {
	return c.hooks.IllustrationEvent
}

// Interceptors returns the client interceptors.
func (c *IllustrationEventClient) Interceptors() []Interceptor {
	return c.inters.IllustrationEvent
}

func (c *IllustrationEventClient) mutate(ctx context.Context, m *IllustrationEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&IllustrationEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&IllustrationEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&IllustrationEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&IllustrationEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown IllustrationEvent mutation op: %q", m.Op())
	}
}

// LLMRequestEventClient is a client for the LLMRequestEvent schema.
type LLMRequestEventClient struct {
	config
}

// NewLLMRequestEventClient returns a client for the LLMRequestEvent from the given config.
func NewLLMRequestEventClient(c config) *LLMRequestEventClient {
	return &LLMRequestEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `llmrequestevent.Hooks(f(g(h())))`.
func (c *LLMRequestEventClient) Use(hooks ...Hook) {
	c.hooks.LLMRequestEvent = append(c.hooks.LLMRequestEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `llmrequestevent.Intercept(f(g(h())))`.
func (c *LLMRequestEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.LLMRequestEvent = append(c.inters.LLMRequestEvent, interceptors...)
}

// Create returns a builder for creating a LLMRequestEvent entity.
func (c *LLMRequestEventClient) Create() *LLMRequestEventCreate {
	mutation := newLLMRequestEventMutation(c.config, OpCreate)
	return &LLMRequestEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of LLMRequestEvent entities.
func (c *LLMRequestEventClient) CreateBulk(builders ...*LLMRequestEventCreate) *LLMRequestEventCreateBulk {
	return &LLMRequestEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LLMRequestEventClient) MapCreateBulk(slice any, setFunc func(*LLMRequestEventCreate, int)) *LLMRequestEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LLMRequestEventCreateBulk{err: fmt.Errorf("calling to LLMRequestEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LLMRequestEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LLMRequestEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for LLMRequestEvent.
func (c *LLMRequestEventClient) Update() *LLMRequestEventUpdate {
	mutation := newLLMRequestEventMutation(c.config, OpUpdate)
	return &LLMRequestEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LLMRequestEventClient) UpdateOne(_m *LLMRequestEvent) *LLMRequestEventUpdateOne {
	mutation := newLLMRequestEventMutation(c.config, OpUpdateOne, withLLMRequestEvent(_m))
	return &LLMRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LLMRequestEventClient) UpdateOneID(id int) *LLMRequestEventUpdateOne {
	mutation := newLLMRequestEventMutation(c.config, OpUpdateOne, withLLMRequestEventID(id))
	return &LLMRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for LLMRequestEvent.
func (c *LLMRequestEventClient) Delete() *LLMRequestEventDelete {
	mutation := newLLMRequestEventMutation(c.config, OpDelete)
	return &LLMRequestEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LLMRequestEventClient) DeleteOne(_m *LLMRequestEvent) *LLMRequestEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LLMRequestEventClient) DeleteOneID(id int) *LLMRequestEventDeleteOne {
	builder := c.Delete().Where(llmrequestevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LLMRequestEventDeleteOne{builder}
}

// Query returns a query builder for LLMRequestEvent.
func (c *LLMRequestEventClient) Query() *LLMRequestEventQuery {
	return &LLMRequestEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLLMRequestEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a LLMRequestEvent entity by its id.
func (c *LLMRequestEventClient) Get(ctx context.Context, id int) (*LLMRequestEvent, error) {
	return c.Query().Where(llmrequestevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LLMRequestEventClient) GetX(ctx context.Context, id int) *LLMRequestEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *LLMRequestEventClient) Hooks() []Hook {
	return c.hooks.LLMRequestEvent
}

// Interceptors returns the client interceptors.
func (c *LLMRequestEventClient) Interceptors() []Interceptor {
	return c.inters.LLMRequestEvent
}

func (c *LLMRequestEventClient) mutate(ctx context.Context, m *LLMRequestEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LLMRequestEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LLMRequestEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LLMRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LLMRequestEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown LLMRequestEvent mutation op: %q", m.Op())
	}
}

// SolveEventClient is a client for the SolveEvent schema.
type SolveEventClient struct {
	config
}

// NewSolveEventClient returns a client for the SolveEvent from the given config.
func NewSolveEventClient(c config) *SolveEventClient {
	return &SolveEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `solveevent.Hooks(f(g(h())))`.
func (c *SolveEventClient) Use(hooks ...Hook) {
	c.hooks.SolveEvent = append(c.hooks.SolveEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `solveevent.Intercept(f(g(h())))`.
func (c *SolveEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.SolveEvent = append(c.inters.SolveEvent, interceptors...)
}

// Create returns a builder for creating a SolveEvent entity.
func (c *SolveEventClient) Create() *SolveEventCreate {
	mutation := newSolveEventMutation(c.config, OpCreate)
	return &SolveEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SolveEvent entities.
func (c *SolveEventClient) CreateBulk(builders ...*SolveEventCreate) *SolveEventCreateBulk {
	return &SolveEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SolveEventClient) MapCreateBulk(slice any, setFunc func(*SolveEventCreate, int)) *SolveEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SolveEventCreateBulk{err: fmt.Errorf("calling to SolveEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SolveEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SolveEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SolveEvent.
func (c *SolveEventClient) Update() *SolveEventUpdate {
	mutation := newSolveEventMutation(c.config, OpUpdate)
	return &SolveEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SolveEventClient) UpdateOne(_m *SolveEvent) *SolveEventUpdateOne {
	mutation := newSolveEventMutation(c.config, OpUpdateOne, withSolveEvent(_m))
	return &SolveEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SolveEventClient) UpdateOneID(id int) *SolveEventUpdateOne {
	mutation := newSolveEventMutation(c.config, OpUpdateOne, withSolveEventID(id))
	return &SolveEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SolveEvent.
func (c *SolveEventClient) Delete() *SolveEventDelete {
	mutation := newSolveEventMutation(c.config, OpDelete)
	return &SolveEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SolveEventClient) DeleteOne(_m *SolveEvent) *SolveEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SolveEventClient) DeleteOneID(id int) *SolveEventDeleteOne {
	builder := c.Delete().Where(solveevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SolveEventDeleteOne{builder}
}

// Query returns a query builder for SolveEvent.
func (c *SolveEventClient) Query() *SolveEventQuery {
	return &SolveEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSolveEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a SolveEvent entity by its id.
func (c *SolveEventClient) Get(ctx context.Context, id int) (*SolveEvent, error) {
	return c.Query().Where(solveevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SolveEventClient) GetX(ctx context.Context, id int) *SolveEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SolveEventClient) Hooks() []Hook {
	return c.hooks.SolveEvent
}

// Interceptors returns the client interceptors.
func (c *SolveEventClient) Interceptors() []Interceptor {
	return c.inters.SolveEvent
}

func (c *SolveEventClient) mutate(ctx context.Context, m *SolveEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SolveEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SolveEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SolveEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SolveEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SolveEvent mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		IllustrationEvent, LLMRequestEvent, SolveEvent []ent.Hook
	}
	inters struct {
		IllustrationEvent, LLMRequestEvent, SolveEvent []ent.Interceptor
	}
)
