// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/google/uuid"
	"github.com/monibridge/core/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/monibridge/core/ent/auditentry"
	"github.com/monibridge/core/ent/ledgertransaction"
	"github.com/monibridge/core/ent/providerconfig"
	"github.com/monibridge/core/ent/virtualaccount"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// AuditEntry is the client for interacting with the AuditEntry builders.
	AuditEntry *AuditEntryClient
	// LedgerTransaction is the client for interacting with the LedgerTransaction builders.
	LedgerTransaction *LedgerTransactionClient
	// ProviderConfig is the client for interacting with the ProviderConfig builders.
	ProviderConfig *ProviderConfigClient
	// VirtualAccount is the client for interacting with the VirtualAccount builders.
	VirtualAccount *VirtualAccountClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.AuditEntry = NewAuditEntryClient(c.config)
	c.LedgerTransaction = NewLedgerTransactionClient(c.config)
	c.ProviderConfig = NewProviderConfigClient(c.config)
	c.VirtualAccount = NewVirtualAccountClient(c.config)
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
		AuditEntry:        NewAuditEntryClient(cfg),
		LedgerTransaction: NewLedgerTransactionClient(cfg),
		ProviderConfig:    NewProviderConfigClient(cfg),
		VirtualAccount:    NewVirtualAccountClient(cfg),
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
		AuditEntry:        NewAuditEntryClient(cfg),
		LedgerTransaction: NewLedgerTransactionClient(cfg),
		ProviderConfig:    NewProviderConfigClient(cfg),
		VirtualAccount:    NewVirtualAccountClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		AuditEntry.
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
	c.AuditEntry.Use(hooks...)
	c.LedgerTransaction.Use(hooks...)
	c.ProviderConfig.Use(hooks...)
	c.VirtualAccount.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.AuditEntry.Intercept(interceptors...)
	c.LedgerTransaction.Intercept(interceptors...)
	c.ProviderConfig.Intercept(interceptors...)
	c.VirtualAccount.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AuditEntryMutation:
		return c.AuditEntry.mutate(ctx, m)
	case *LedgerTransactionMutation:
		return c.LedgerTransaction.mutate(ctx, m)
	case *ProviderConfigMutation:
		return c.ProviderConfig.mutate(ctx, m)
	case *VirtualAccountMutation:
		return c.VirtualAccount.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AuditEntryClient is a client for the AuditEntry schema.
type AuditEntryClient struct {
	config
}

// NewAuditEntryClient returns a client for the AuditEntry from the given config.
func NewAuditEntryClient(c config) *AuditEntryClient {
	return &AuditEntryClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `auditentry.Hooks(f(g(h())))`.
func (c *AuditEntryClient) Use(hooks ...Hook) {
	c.hooks.AuditEntry = append(c.hooks.AuditEntry, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `auditentry.Intercept(f(g(h())))`.
func (c *AuditEntryClient) Intercept(interceptors ...Interceptor) {
	c.inters.AuditEntry = append(c.inters.AuditEntry, interceptors...)
}

// Create returns a builder for creating a AuditEntry entity.
func (c *AuditEntryClient) Create() *AuditEntryCreate {
	mutation := newAuditEntryMutation(c.config, OpCreate)
	return &AuditEntryCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AuditEntry entities.
func (c *AuditEntryClient) CreateBulk(builders ...*AuditEntryCreate) *AuditEntryCreateBulk {
	return &AuditEntryCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AuditEntryClient) MapCreateBulk(slice any, setFunc func(*AuditEntryCreate, int)) *AuditEntryCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AuditEntryCreateBulk{err: fmt.Errorf("calling to AuditEntryClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AuditEntryCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AuditEntryCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AuditEntry.
func (c *AuditEntryClient) Update() *AuditEntryUpdate {
	mutation := newAuditEntryMutation(c.config, OpUpdate)
	return &AuditEntryUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AuditEntryClient) UpdateOne(ae *AuditEntry) *AuditEntryUpdateOne {
	mutation := newAuditEntryMutation(c.config, OpUpdateOne, withAuditEntry(ae))
	return &AuditEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AuditEntryClient) UpdateOneID(id uuid.UUID) *AuditEntryUpdateOne {
	mutation := newAuditEntryMutation(c.config, OpUpdateOne, withAuditEntryID(id))
	return &AuditEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AuditEntry.
func (c *AuditEntryClient) Delete() *AuditEntryDelete {
	mutation := newAuditEntryMutation(c.config, OpDelete)
	return &AuditEntryDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AuditEntryClient) DeleteOne(ae *AuditEntry) *AuditEntryDeleteOne {
	return c.DeleteOneID(ae.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AuditEntryClient) DeleteOneID(id uuid.UUID) *AuditEntryDeleteOne {
	builder := c.Delete().Where(auditentry.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AuditEntryDeleteOne{builder}
}

// Query returns a query builder for AuditEntry.
func (c *AuditEntryClient) Query() *AuditEntryQuery {
	return &AuditEntryQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAuditEntry},
		inters: c.Interceptors(),
	}
}

// Get returns a AuditEntry entity by its id.
func (c *AuditEntryClient) Get(ctx context.Context, id uuid.UUID) (*AuditEntry, error) {
	return c.Query().Where(auditentry.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AuditEntryClient) GetX(ctx context.Context, id uuid.UUID) *AuditEntry {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AuditEntryClient) Hooks() []Hook {
	return c.hooks.AuditEntry
}

// Interceptors returns the client interceptors.
func (c *AuditEntryClient) Interceptors() []Interceptor {
	return c.inters.AuditEntry
}

func (c *AuditEntryClient) mutate(ctx context.Context, m *AuditEntryMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AuditEntryCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AuditEntryUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AuditEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AuditEntryDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AuditEntry mutation op: %q", m.Op())
	}
}

// LedgerTransactionClient is a client for the LedgerTransaction schema.
type LedgerTransactionClient struct {
	config
}

// NewLedgerTransactionClient returns a client for the LedgerTransaction from the given config.
func NewLedgerTransactionClient(c config) *LedgerTransactionClient {
	return &LedgerTransactionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `ledgertransaction.Hooks(f(g(h())))`.
func (c *LedgerTransactionClient) Use(hooks ...Hook) {
	c.hooks.LedgerTransaction = append(c.hooks.LedgerTransaction, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `ledgertransaction.Intercept(f(g(h())))`.
func (c *LedgerTransactionClient) Intercept(interceptors ...Interceptor) {
	c.inters.LedgerTransaction = append(c.inters.LedgerTransaction, interceptors...)
}

// Create returns a builder for creating a LedgerTransaction entity.
func (c *LedgerTransactionClient) Create() *LedgerTransactionCreate {
	mutation := newLedgerTransactionMutation(c.config, OpCreate)
	return &LedgerTransactionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of LedgerTransaction entities.
func (c *LedgerTransactionClient) CreateBulk(builders ...*LedgerTransactionCreate) *LedgerTransactionCreateBulk {
	return &LedgerTransactionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LedgerTransactionClient) MapCreateBulk(slice any, setFunc func(*LedgerTransactionCreate, int)) *LedgerTransactionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LedgerTransactionCreateBulk{err: fmt.Errorf("calling to LedgerTransactionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LedgerTransactionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LedgerTransactionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for LedgerTransaction.
func (c *LedgerTransactionClient) Update() *LedgerTransactionUpdate {
	mutation := newLedgerTransactionMutation(c.config, OpUpdate)
	return &LedgerTransactionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LedgerTransactionClient) UpdateOne(lt *LedgerTransaction) *LedgerTransactionUpdateOne {
	mutation := newLedgerTransactionMutation(c.config, OpUpdateOne, withLedgerTransaction(lt))
	return &LedgerTransactionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LedgerTransactionClient) UpdateOneID(id uuid.UUID) *LedgerTransactionUpdateOne {
	mutation := newLedgerTransactionMutation(c.config, OpUpdateOne, withLedgerTransactionID(id))
	return &LedgerTransactionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for LedgerTransaction.
func (c *LedgerTransactionClient) Delete() *LedgerTransactionDelete {
	mutation := newLedgerTransactionMutation(c.config, OpDelete)
	return &LedgerTransactionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LedgerTransactionClient) DeleteOne(lt *LedgerTransaction) *LedgerTransactionDeleteOne {
	return c.DeleteOneID(lt.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LedgerTransactionClient) DeleteOneID(id uuid.UUID) *LedgerTransactionDeleteOne {
	builder := c.Delete().Where(ledgertransaction.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LedgerTransactionDeleteOne{builder}
}

// Query returns a query builder for LedgerTransaction.
func (c *LedgerTransactionClient) Query() *LedgerTransactionQuery {
	return &LedgerTransactionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLedgerTransaction},
		inters: c.Interceptors(),
	}
}

// Get returns a LedgerTransaction entity by its id.
func (c *LedgerTransactionClient) Get(ctx context.Context, id uuid.UUID) (*LedgerTransaction, error) {
	return c.Query().Where(ledgertransaction.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LedgerTransactionClient) GetX(ctx context.Context, id uuid.UUID) *LedgerTransaction {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryAccount queries the account edge of a LedgerTransaction.
func (c *LedgerTransactionClient) QueryAccount(lt *LedgerTransaction) *VirtualAccountQuery {
	query := (&VirtualAccountClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := lt.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(ledgertransaction.Table, ledgertransaction.FieldID, id),
			sqlgraph.To(virtualaccount.Table, virtualaccount.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ledgertransaction.AccountTable, ledgertransaction.AccountColumn),
		)
		fromV = sqlgraph.Neighbors(lt.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *LedgerTransactionClient) Hooks() []Hook {
	return c.hooks.LedgerTransaction
}

// Interceptors returns the client interceptors.
func (c *LedgerTransactionClient) Interceptors() []Interceptor {
	return c.inters.LedgerTransaction
}

func (c *LedgerTransactionClient) mutate(ctx context.Context, m *LedgerTransactionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LedgerTransactionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LedgerTransactionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LedgerTransactionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LedgerTransactionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown LedgerTransaction mutation op: %q", m.Op())
	}
}

// ProviderConfigClient is a client for the ProviderConfig schema.
type ProviderConfigClient struct {
	config
}

// NewProviderConfigClient returns a client for the ProviderConfig from the given config.
func NewProviderConfigClient(c config) *ProviderConfigClient {
	return &ProviderConfigClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `providerconfig.Hooks(f(g(h())))`.
func (c *ProviderConfigClient) Use(hooks ...Hook) {
	c.hooks.ProviderConfig = append(c.hooks.ProviderConfig, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `providerconfig.Intercept(f(g(h())))`.
func (c *ProviderConfigClient) Intercept(interceptors ...Interceptor) {
	c.inters.ProviderConfig = append(c.inters.ProviderConfig, interceptors...)
}

// Create returns a builder for creating a ProviderConfig entity.
func (c *ProviderConfigClient) Create() *ProviderConfigCreate {
	mutation := newProviderConfigMutation(c.config, OpCreate)
	return &ProviderConfigCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ProviderConfig entities.
func (c *ProviderConfigClient) CreateBulk(builders ...*ProviderConfigCreate) *ProviderConfigCreateBulk {
	return &ProviderConfigCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ProviderConfigClient) MapCreateBulk(slice any, setFunc func(*ProviderConfigCreate, int)) *ProviderConfigCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ProviderConfigCreateBulk{err: fmt.Errorf("calling to ProviderConfigClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ProviderConfigCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ProviderConfigCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ProviderConfig.
func (c *ProviderConfigClient) Update() *ProviderConfigUpdate {
	mutation := newProviderConfigMutation(c.config, OpUpdate)
	return &ProviderConfigUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ProviderConfigClient) UpdateOne(pc *ProviderConfig) *ProviderConfigUpdateOne {
	mutation := newProviderConfigMutation(c.config, OpUpdateOne, withProviderConfig(pc))
	return &ProviderConfigUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ProviderConfigClient) UpdateOneID(id int) *ProviderConfigUpdateOne {
	mutation := newProviderConfigMutation(c.config, OpUpdateOne, withProviderConfigID(id))
	return &ProviderConfigUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ProviderConfig.
func (c *ProviderConfigClient) Delete() *ProviderConfigDelete {
	mutation := newProviderConfigMutation(c.config, OpDelete)
	return &ProviderConfigDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ProviderConfigClient) DeleteOne(pc *ProviderConfig) *ProviderConfigDeleteOne {
	return c.DeleteOneID(pc.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ProviderConfigClient) DeleteOneID(id int) *ProviderConfigDeleteOne {
	builder := c.Delete().Where(providerconfig.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ProviderConfigDeleteOne{builder}
}

// Query returns a query builder for ProviderConfig.
func (c *ProviderConfigClient) Query() *ProviderConfigQuery {
	return &ProviderConfigQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeProviderConfig},
		inters: c.Interceptors(),
	}
}

// Get returns a ProviderConfig entity by its id.
func (c *ProviderConfigClient) Get(ctx context.Context, id int) (*ProviderConfig, error) {
	return c.Query().Where(providerconfig.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ProviderConfigClient) GetX(ctx context.Context, id int) *ProviderConfig {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ProviderConfigClient) Hooks() []Hook {
	return c.hooks.ProviderConfig
}

// Interceptors returns the client interceptors.
func (c *ProviderConfigClient) Interceptors() []Interceptor {
	return c.inters.ProviderConfig
}

func (c *ProviderConfigClient) mutate(ctx context.Context, m *ProviderConfigMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ProviderConfigCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ProviderConfigUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ProviderConfigUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ProviderConfigDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ProviderConfig mutation op: %q", m.Op())
	}
}

// VirtualAccountClient is a client for the VirtualAccount schema.
type VirtualAccountClient struct {
	config
}

// NewVirtualAccountClient returns a client for the VirtualAccount from the given config.
func NewVirtualAccountClient(c config) *VirtualAccountClient {
	return &VirtualAccountClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `virtualaccount.Hooks(f(g(h())))`.
func (c *VirtualAccountClient) Use(hooks ...Hook) {
	c.hooks.VirtualAccount = append(c.hooks.VirtualAccount, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `virtualaccount.Intercept(f(g(h())))`.
func (c *VirtualAccountClient) Intercept(interceptors ...Interceptor) {
	c.inters.VirtualAccount = append(c.inters.VirtualAccount, interceptors...)
}

// Create returns a builder for creating a VirtualAccount entity.
func (c *VirtualAccountClient) Create() *VirtualAccountCreate {
	mutation := newVirtualAccountMutation(c.config, OpCreate)
	return &VirtualAccountCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of VirtualAccount entities.
func (c *VirtualAccountClient) CreateBulk(builders ...*VirtualAccountCreate) *VirtualAccountCreateBulk {
	return &VirtualAccountCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *VirtualAccountClient) MapCreateBulk(slice any, setFunc func(*VirtualAccountCreate, int)) *VirtualAccountCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &VirtualAccountCreateBulk{err: fmt.Errorf("calling to VirtualAccountClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*VirtualAccountCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &VirtualAccountCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for VirtualAccount.
func (c *VirtualAccountClient) Update() *VirtualAccountUpdate {
	mutation := newVirtualAccountMutation(c.config, OpUpdate)
	return &VirtualAccountUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *VirtualAccountClient) UpdateOne(va *VirtualAccount) *VirtualAccountUpdateOne {
	mutation := newVirtualAccountMutation(c.config, OpUpdateOne, withVirtualAccount(va))
	return &VirtualAccountUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *VirtualAccountClient) UpdateOneID(id uuid.UUID) *VirtualAccountUpdateOne {
	mutation := newVirtualAccountMutation(c.config, OpUpdateOne, withVirtualAccountID(id))
	return &VirtualAccountUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for VirtualAccount.
func (c *VirtualAccountClient) Delete() *VirtualAccountDelete {
	mutation := newVirtualAccountMutation(c.config, OpDelete)
	return &VirtualAccountDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *VirtualAccountClient) DeleteOne(va *VirtualAccount) *VirtualAccountDeleteOne {
	return c.DeleteOneID(va.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *VirtualAccountClient) DeleteOneID(id uuid.UUID) *VirtualAccountDeleteOne {
	builder := c.Delete().Where(virtualaccount.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &VirtualAccountDeleteOne{builder}
}

// Query returns a query builder for VirtualAccount.
func (c *VirtualAccountClient) Query() *VirtualAccountQuery {
	return &VirtualAccountQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeVirtualAccount},
		inters: c.Interceptors(),
	}
}

// Get returns a VirtualAccount entity by its id.
func (c *VirtualAccountClient) Get(ctx context.Context, id uuid.UUID) (*VirtualAccount, error) {
	return c.Query().Where(virtualaccount.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *VirtualAccountClient) GetX(ctx context.Context, id uuid.UUID) *VirtualAccount {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryTransactions queries the transactions edge of a VirtualAccount.
func (c *VirtualAccountClient) QueryTransactions(va *VirtualAccount) *LedgerTransactionQuery {
	query := (&LedgerTransactionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := va.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(virtualaccount.Table, virtualaccount.FieldID, id),
			sqlgraph.To(ledgertransaction.Table, ledgertransaction.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, virtualaccount.TransactionsTable, virtualaccount.TransactionsColumn),
		)
		fromV = sqlgraph.Neighbors(va.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *VirtualAccountClient) Hooks() []Hook {
	return c.hooks.VirtualAccount
}

// Interceptors returns the client interceptors.
func (c *VirtualAccountClient) Interceptors() []Interceptor {
	return c.inters.VirtualAccount
}

func (c *VirtualAccountClient) mutate(ctx context.Context, m *VirtualAccountMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&VirtualAccountCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&VirtualAccountUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&VirtualAccountUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&VirtualAccountDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown VirtualAccount mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		AuditEntry, LedgerTransaction, ProviderConfig, VirtualAccount []ent.Hook
	}
	inters struct {
		AuditEntry, LedgerTransaction, ProviderConfig, VirtualAccount []ent.Interceptor
	}
)
