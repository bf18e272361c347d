// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/google/uuid"
	"github.com/taxfolio/docpipe/gen/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/taxfolio/docpipe/gen/ent/document"
	"github.com/taxfolio/docpipe/gen/ent/taxclient"
	"github.com/taxfolio/docpipe/gen/ent/taxyear"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Document is the client for interacting with the Document builders.
	Document *DocumentClient
	// TaxClient is the client for interacting with the TaxClient builders.
	TaxClient *TaxClientClient
	// TaxYear is the client for interacting with the TaxYear builders.
	TaxYear *TaxYearClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Document = NewDocumentClient(c.config)
	c.TaxClient = NewTaxClientClient(c.config)
	c.TaxYear = NewTaxYearClient(c.config)
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
		ctx:       ctx,
		config:    cfg,
		Document:  NewDocumentClient(cfg),
		TaxClient: NewTaxClientClient(cfg),
		TaxYear:   NewTaxYearClient(cfg),
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
		ctx:       ctx,
		config:    cfg,
		Document:  NewDocumentClient(cfg),
		TaxClient: NewTaxClientClient(cfg),
		TaxYear:   NewTaxYearClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Document.
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
	c.Document.Use(hooks...)
	c.TaxClient.Use(hooks...)
	c.TaxYear.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.Document.Intercept(interceptors...)
	c.TaxClient.Intercept(interceptors...)
	c.TaxYear.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *DocumentMutation:
		return c.Document.mutate(ctx, m)
	case *TaxClientMutation:
		return c.TaxClient.mutate(ctx, m)
	case *TaxYearMutation:
		return c.TaxYear.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// DocumentClient is a client for the Document schema.
type DocumentClient struct {
	config
}

// NewDocumentClient returns a client for the Document from the given config.
func NewDocumentClient(c config) *DocumentClient {
	return &DocumentClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `document.Hooks(f(g(h())))`.
func (c *DocumentClient) Use(hooks ...Hook) {
	c.hooks.Document = append(c.hooks.Document, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `document.Intercept(f(g(h())))`.
func (c *DocumentClient) Intercept(interceptors ...Interceptor) {
	c.inters.Document = append(c.inters.Document, interceptors...)
}

// Create returns a builder for creating a Document entity.
func (c *DocumentClient) Create() *DocumentCreate {
	mutation := newDocumentMutation(c.config, OpCreate)
	return &DocumentCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Document entities.
func (c *DocumentClient) CreateBulk(builders ...*DocumentCreate) *DocumentCreateBulk {
	return &DocumentCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DocumentClient) MapCreateBulk(slice any, setFunc func(*DocumentCreate, int)) *DocumentCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DocumentCreateBulk{err: fmt.Errorf("calling to DocumentClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DocumentCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DocumentCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Document.
func (c *DocumentClient) Update() *DocumentUpdate {
	mutation := newDocumentMutation(c.config, OpUpdate)
	return &DocumentUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DocumentClient) UpdateOne(_m *Document) *DocumentUpdateOne {
	mutation := newDocumentMutation(c.config, OpUpdateOne, withDocument(_m))
	return &DocumentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DocumentClient) UpdateOneID(id uuid.UUID) *DocumentUpdateOne {
	mutation := newDocumentMutation(c.config, OpUpdateOne, withDocumentID(id))
	return &DocumentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Document.
func (c *DocumentClient) Delete() *DocumentDelete {
	mutation := newDocumentMutation(c.config, OpDelete)
	return &DocumentDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DocumentClient) DeleteOne(_m *Document) *DocumentDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DocumentClient) DeleteOneID(id uuid.UUID) *DocumentDeleteOne {
	builder := c.Delete().Where(document.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DocumentDeleteOne{builder}
}

// Query returns a query builder for Document.
func (c *DocumentClient) Query() *DocumentQuery {
	return &DocumentQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDocument},
		inters: c.Interceptors(),
	}
}

// Get returns a Document entity by its id.
func (c *DocumentClient) Get(ctx context.Context, id uuid.UUID) (*Document, error) {
	return c.Query().Where(document.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DocumentClient) GetX(ctx context.Context, id uuid.UUID) *Document {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryTaxYear queries the tax_year edge of a Document.
func (c *DocumentClient) QueryTaxYear(_m *Document) *TaxYearQuery {
	query := (&TaxYearClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(document.Table, document.FieldID, id),
			sqlgraph.To(taxyear.Table, taxyear.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, document.TaxYearTable, document.TaxYearColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *DocumentClient) Hooks() []Hook {
	return c.hooks.Document
}

// Interceptors returns the client interceptors.
func (c *DocumentClient) Interceptors() []Interceptor {
	return c.inters.Document
}

func (c *DocumentClient) mutate(ctx context.Context, m *DocumentMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DocumentCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DocumentUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DocumentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DocumentDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Document mutation op: %q", m.Op())
	}
}

// TaxClientClient is a client for the TaxClient schema.
type TaxClientClient struct {
	config
}

// NewTaxClientClient returns a client for the TaxClient from the given config.
func NewTaxClientClient(c config) *TaxClientClient {
	return &TaxClientClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `taxclient.Hooks(f(g(h())))`.
func (c *TaxClientClient) Use(hooks ...Hook) {
	c.hooks.TaxClient = append(c.hooks.TaxClient, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `taxclient.Intercept(f(g(h())))`.
func (c *TaxClientClient) Intercept(interceptors ...Interceptor) {
	c.inters.TaxClient = append(c.inters.TaxClient, interceptors...)
}

// Create returns a builder for creating a TaxClient entity.
func (c *TaxClientClient) Create() *TaxClientCreate {
	mutation := newTaxClientMutation(c.config, OpCreate)
	return &TaxClientCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of TaxClient entities.
func (c *TaxClientClient) CreateBulk(builders ...*TaxClientCreate) *TaxClientCreateBulk {
	return &TaxClientCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TaxClientClient) MapCreateBulk(slice any, setFunc func(*TaxClientCreate, int)) *TaxClientCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TaxClientCreateBulk{err: fmt.Errorf("calling to TaxClientClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TaxClientCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TaxClientCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for TaxClient.
func (c *TaxClientClient) Update() *TaxClientUpdate {
	mutation := newTaxClientMutation(c.config, OpUpdate)
	return &TaxClientUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TaxClientClient) UpdateOne(_m *TaxClient) *TaxClientUpdateOne {
	mutation := newTaxClientMutation(c.config, OpUpdateOne, withTaxClient(_m))
	return &TaxClientUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TaxClientClient) UpdateOneID(id uuid.UUID) *TaxClientUpdateOne {
	mutation := newTaxClientMutation(c.config, OpUpdateOne, withTaxClientID(id))
	return &TaxClientUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for TaxClient.
func (c *TaxClientClient) Delete() *TaxClientDelete {
	mutation := newTaxClientMutation(c.config, OpDelete)
	return &TaxClientDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TaxClientClient) DeleteOne(_m *TaxClient) *TaxClientDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TaxClientClient) DeleteOneID(id uuid.UUID) *TaxClientDeleteOne {
	builder := c.Delete().Where(taxclient.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TaxClientDeleteOne{builder}
}

// Query returns a query builder for TaxClient.
func (c *TaxClientClient) Query() *TaxClientQuery {
	return &TaxClientQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTaxClient},
		inters: c.Interceptors(),
	}
}

// Get returns a TaxClient entity by its id.
func (c *TaxClientClient) Get(ctx context.Context, id uuid.UUID) (*TaxClient, error) {
	return c.Query().Where(taxclient.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TaxClientClient) GetX(ctx context.Context, id uuid.UUID) *TaxClient {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryTaxYears queries the tax_years edge of a TaxClient.
func (c *TaxClientClient) QueryTaxYears(_m *TaxClient) *TaxYearQuery {
	query := (&TaxYearClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(taxclient.Table, taxclient.FieldID, id),
			sqlgraph.To(taxyear.Table, taxyear.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, taxclient.TaxYearsTable, taxclient.TaxYearsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *TaxClientClient) Hooks() []Hook {
	return c.hooks.TaxClient
}

// Interceptors returns the client interceptors.
func (c *TaxClientClient) Interceptors() []Interceptor {
	return c.inters.TaxClient
}

func (c *TaxClientClient) mutate(ctx context.Context, m *TaxClientMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TaxClientCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TaxClientUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TaxClientUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TaxClientDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown TaxClient mutation op: %q", m.Op())
	}
}

// TaxYearClient is a client for the TaxYear schema.
type TaxYearClient struct {
	config
}

// NewTaxYearClient returns a client for the TaxYear from the given config.
func NewTaxYearClient(c config) *TaxYearClient {
	return &TaxYearClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `taxyear.Hooks(f(g(h())))`.
func (c *TaxYearClient) Use(hooks ...Hook) {
	c.hooks.TaxYear = append(c.hooks.TaxYear, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `taxyear.Intercept(f(g(h())))`.
func (c *TaxYearClient) Intercept(interceptors ...Interceptor) {
	c.inters.TaxYear = append(c.inters.TaxYear, interceptors...)
}

// Create returns a builder for creating a TaxYear entity.
func (c *TaxYearClient) Create() *TaxYearCreate {
	mutation := newTaxYearMutation(c.config, OpCreate)
	return &TaxYearCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of TaxYear entities.
func (c *TaxYearClient) CreateBulk(builders ...*TaxYearCreate) *TaxYearCreateBulk {
	return &TaxYearCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TaxYearClient) MapCreateBulk(slice any, setFunc func(*TaxYearCreate, int)) *TaxYearCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TaxYearCreateBulk{err: fmt.Errorf("calling to TaxYearClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TaxYearCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TaxYearCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for TaxYear.
func (c *TaxYearClient) Update() *TaxYearUpdate {
	mutation := newTaxYearMutation(c.config, OpUpdate)
	return &TaxYearUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TaxYearClient) UpdateOne(_m *TaxYear) *TaxYearUpdateOne {
	mutation := newTaxYearMutation(c.config, OpUpdateOne, withTaxYear(_m))
	return &TaxYearUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TaxYearClient) UpdateOneID(id uuid.UUID) *TaxYearUpdateOne {
	mutation := newTaxYearMutation(c.config, OpUpdateOne, withTaxYearID(id))
	return &TaxYearUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for TaxYear.
func (c *TaxYearClient) Delete() *TaxYearDelete {
	mutation := newTaxYearMutation(c.config, OpDelete)
	return &TaxYearDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TaxYearClient) DeleteOne(_m *TaxYear) *TaxYearDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TaxYearClient) DeleteOneID(id uuid.UUID) *TaxYearDeleteOne {
	builder := c.Delete().Where(taxyear.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TaxYearDeleteOne{builder}
}

// Query returns a query builder for TaxYear.
func (c *TaxYearClient) Query() *TaxYearQuery {
	return &TaxYearQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTaxYear},
		inters: c.Interceptors(),
	}
}

// Get returns a TaxYear entity by its id.
func (c *TaxYearClient) Get(ctx context.Context, id uuid.UUID) (*TaxYear, error) {
	return c.Query().Where(taxyear.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TaxYearClient) GetX(ctx context.Context, id uuid.UUID) *TaxYear {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryClient queries the client edge of a TaxYear.
func (c *TaxYearClient) QueryClient(_m *TaxYear) *TaxClientQuery {
	query := (&TaxClientClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(taxyear.Table, taxyear.FieldID, id),
			sqlgraph.To(taxclient.Table, taxclient.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, taxyear.ClientTable, taxyear.ClientColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryDocuments queries the documents edge of a TaxYear.
func (c *TaxYearClient) QueryDocuments(_m *TaxYear) *DocumentQuery {
	query := (&DocumentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(taxyear.Table, taxyear.FieldID, id),
			sqlgraph.To(document.Table, document.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, taxyear.DocumentsTable, taxyear.DocumentsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *TaxYearClient) Hooks() []Hook {
	return c.hooks.TaxYear
}

// Interceptors returns the client interceptors.
func (c *TaxYearClient) Interceptors() []Interceptor {
	return c.inters.TaxYear
}

func (c *TaxYearClient) mutate(ctx context.Context, m *TaxYearMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TaxYearCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TaxYearUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TaxYearUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TaxYearDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown TaxYear mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Document, TaxClient, TaxYear []ent.Hook
	}
	inters struct {
		Document, TaxClient, TaxYear []ent.Interceptor
	}
)
