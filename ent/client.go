// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"visitor-pulse-api/ent/migrate"

	"visitor-pulse-api/ent/geocache"
	"visitor-pulse-api/ent/rawevent"
	"visitor-pulse-api/ent/tenant"
	"visitor-pulse-api/ent/upload"
	"visitor-pulse-api/ent/visitorprofile"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// GeoCache is the client for interacting with the GeoCache builders.
	GeoCache *GeoCacheClient
	// RawEvent is the client for interacting with the RawEvent builders.
	RawEvent *RawEventClient
	// Tenant is the client for interacting with the Tenant builders.
	Tenant *TenantClient
	// Upload is the client for interacting with the Upload builders.
	Upload *UploadClient
	// VisitorProfile is the client for interacting with the VisitorProfile builders.
	VisitorProfile *VisitorProfileClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.GeoCache = NewGeoCacheClient(c.config)
	c.RawEvent = NewRawEventClient(c.config)
	c.Tenant = NewTenantClient(c.config)
	c.Upload = NewUploadClient(c.config)
	c.VisitorProfile = NewVisitorProfileClient(c.config)
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
		ctx:            ctx,
		config:         cfg,
		GeoCache:       NewGeoCacheClient(cfg),
		RawEvent:       NewRawEventClient(cfg),
		Tenant:         NewTenantClient(cfg),
		Upload:         NewUploadClient(cfg),
		VisitorProfile: NewVisitorProfileClient(cfg),
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
		ctx:            ctx,
		config:         cfg,
		GeoCache:       NewGeoCacheClient(cfg),
		RawEvent:       NewRawEventClient(cfg),
		Tenant:         NewTenantClient(cfg),
		Upload:         NewUploadClient(cfg),
		VisitorProfile: NewVisitorProfileClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		GeoCache.
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
	c.GeoCache.Use(hooks...)
	c.RawEvent.Use(hooks...)
	c.Tenant.Use(hooks...)
	c.Upload.Use(hooks...)
	c.VisitorProfile.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.GeoCache.Intercept(interceptors...)
	c.RawEvent.Intercept(interceptors...)
	c.Tenant.Intercept(interceptors...)
	c.Upload.Intercept(interceptors...)
	c.VisitorProfile.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *GeoCacheMutation:
		return c.GeoCache.mutate(ctx, m)
	case *RawEventMutation:
		return c.RawEvent.mutate(ctx, m)
	case *TenantMutation:
		return c.Tenant.mutate(ctx, m)
	case *UploadMutation:
		return c.Upload.mutate(ctx, m)
	case *VisitorProfileMutation:
		return c.VisitorProfile.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// GeoCacheClient is a client for the GeoCache schema.
type GeoCacheClient struct {
	config
}

// NewGeoCacheClient returns a client for the GeoCache from the given config.
func NewGeoCacheClient(c config) *GeoCacheClient {
	return &GeoCacheClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `geocache.Hooks(f(g(h())))`.
func (c *GeoCacheClient) Use(hooks ...Hook) {
	c.hooks.GeoCache = append(c.hooks.GeoCache, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `geocache.Intercept(f(g(h())))`.
func (c *GeoCacheClient) Intercept(interceptors ...Interceptor) {
	c.inters.GeoCache = append(c.inters.GeoCache, interceptors...)
}

// Create returns a builder for creating a GeoCache entity.
func (c *GeoCacheClient) Create() *GeoCacheCreate {
	mutation := newGeoCacheMutation(c.config, OpCreate)
	return &GeoCacheCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of GeoCache entities.
func (c *GeoCacheClient) CreateBulk(builders ...*GeoCacheCreate) *GeoCacheCreateBulk {
	return &GeoCacheCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *GeoCacheClient) MapCreateBulk(slice any, setFunc func(*GeoCacheCreate, int)) *GeoCacheCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &GeoCacheCreateBulk{err: fmt.Errorf("calling to GeoCacheClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*GeoCacheCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &GeoCacheCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for GeoCache.
func (c *GeoCacheClient) Update() *GeoCacheUpdate {
	mutation := newGeoCacheMutation(c.config, OpUpdate)
	return &GeoCacheUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *GeoCacheClient) UpdateOne(_m *GeoCache) *GeoCacheUpdateOne {
	mutation := newGeoCacheMutation(c.config, OpUpdateOne, withGeoCache(_m))
	return &GeoCacheUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *GeoCacheClient) UpdateOneID(id uuid.UUID) *GeoCacheUpdateOne {
	mutation := newGeoCacheMutation(c.config, OpUpdateOne, withGeoCacheID(id))
	return &GeoCacheUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for GeoCache.
func (c *GeoCacheClient) Delete() *GeoCacheDelete {
	mutation := newGeoCacheMutation(c.config, OpDelete)
	return &GeoCacheDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *GeoCacheClient) DeleteOne(_m *GeoCache) *GeoCacheDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *GeoCacheClient) DeleteOneID(id uuid.UUID) *GeoCacheDeleteOne {
	builder := c.Delete().Where(geocache.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &GeoCacheDeleteOne{builder}
}

// Query returns a query builder for GeoCache.
func (c *GeoCacheClient) Query() *GeoCacheQuery {
	return &GeoCacheQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeGeoCache},
		inters: c.Interceptors(),
	}
}

// Get returns a GeoCache entity by its id.
func (c *GeoCacheClient) Get(ctx context.Context, id uuid.UUID) (*GeoCache, error) {
	return c.Query().Where(geocache.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *GeoCacheClient) GetX(ctx context.Context, id uuid.UUID) *GeoCache {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *GeoCacheClient) Hooks() []Hook {
	return c.hooks.GeoCache
}

// Interceptors returns the client interceptors.
func (c *GeoCacheClient) Interceptors() []Interceptor {
	return c.inters.GeoCache
}

func (c *GeoCacheClient) mutate(ctx context.Context, m *GeoCacheMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&GeoCacheCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&GeoCacheUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&GeoCacheUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&GeoCacheDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown GeoCache mutation op: %q", m.Op())
	}
}

// RawEventClient is a client for the RawEvent schema.
type RawEventClient struct {
	config
}

// NewRawEventClient returns a client for the RawEvent from the given config.
func NewRawEventClient(c config) *RawEventClient {
	return &RawEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `rawevent.Hooks(f(g(h())))`.
func (c *RawEventClient) Use(hooks ...Hook) {
	c.hooks.RawEvent = append(c.hooks.RawEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `rawevent.Intercept(f(g(h())))`.
func (c *RawEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.RawEvent = append(c.inters.RawEvent, interceptors...)
}

// Create returns a builder for creating a RawEvent entity.
func (c *RawEventClient) Create() *RawEventCreate {
	mutation := newRawEventMutation(c.config, OpCreate)
	return &RawEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of RawEvent entities.
func (c *RawEventClient) CreateBulk(builders ...*RawEventCreate) *RawEventCreateBulk {
	return &RawEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *RawEventClient) MapCreateBulk(slice any, setFunc func(*RawEventCreate, int)) *RawEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &RawEventCreateBulk{err: fmt.Errorf("calling to RawEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*RawEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &RawEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for RawEvent.
func (c *RawEventClient) Update() *RawEventUpdate {
	mutation := newRawEventMutation(c.config, OpUpdate)
	return &RawEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *RawEventClient) UpdateOne(_m *RawEvent) *RawEventUpdateOne {
	mutation := newRawEventMutation(c.config, OpUpdateOne, withRawEvent(_m))
	return &RawEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *RawEventClient) UpdateOneID(id uuid.UUID) *RawEventUpdateOne {
	mutation := newRawEventMutation(c.config, OpUpdateOne, withRawEventID(id))
	return &RawEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for RawEvent.
func (c *RawEventClient) Delete() *RawEventDelete {
	mutation := newRawEventMutation(c.config, OpDelete)
	return &RawEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *RawEventClient) DeleteOne(_m *RawEvent) *RawEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *RawEventClient) DeleteOneID(id uuid.UUID) *RawEventDeleteOne {
	builder := c.Delete().Where(rawevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &RawEventDeleteOne{builder}
}

// Query returns a query builder for RawEvent.
func (c *RawEventClient) Query() *RawEventQuery {
	return &RawEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeRawEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a RawEvent entity by its id.
func (c *RawEventClient) Get(ctx context.Context, id uuid.UUID) (*RawEvent, error) {
	return c.Query().Where(rawevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *RawEventClient) GetX(ctx context.Context, id uuid.UUID) *RawEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *RawEventClient) Hooks() []Hook {
	return c.hooks.RawEvent
}

// Interceptors returns the client interceptors.
func (c *RawEventClient) Interceptors() []Interceptor {
	return c.inters.RawEvent
}

func (c *RawEventClient) mutate(ctx context.Context, m *RawEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&RawEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&RawEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&RawEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&RawEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown RawEvent mutation op: %q", m.Op())
	}
}

// TenantClient is a client for the Tenant schema.
type TenantClient struct {
	config
}

// NewTenantClient returns a client for the Tenant from the given config.
func NewTenantClient(c config) *TenantClient {
	return &TenantClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `tenant.Hooks(f(g(h())))`.
func (c *TenantClient) Use(hooks ...Hook) {
	c.hooks.Tenant = append(c.hooks.Tenant, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `tenant.Intercept(f(g(h())))`.
func (c *TenantClient) Intercept(interceptors ...Interceptor) {
	c.inters.Tenant = append(c.inters.Tenant, interceptors...)
}

// Create returns a builder for creating a Tenant entity.
func (c *TenantClient) Create() *TenantCreate {
	mutation := newTenantMutation(c.config, OpCreate)
	return &TenantCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Tenant entities.
func (c *TenantClient) CreateBulk(builders ...*TenantCreate) *TenantCreateBulk {
	return &TenantCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TenantClient) MapCreateBulk(slice any, setFunc func(*TenantCreate, int)) *TenantCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TenantCreateBulk{err: fmt.Errorf("calling to TenantClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TenantCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TenantCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Tenant.
func (c *TenantClient) Update() *TenantUpdate {
	mutation := newTenantMutation(c.config, OpUpdate)
	return &TenantUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TenantClient) UpdateOne(_m *Tenant) *TenantUpdateOne {
	mutation := newTenantMutation(c.config, OpUpdateOne, withTenant(_m))
	return &TenantUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TenantClient) UpdateOneID(id uuid.UUID) *TenantUpdateOne {
	mutation := newTenantMutation(c.config, OpUpdateOne, withTenantID(id))
	return &TenantUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Tenant.
func (c *TenantClient) Delete() *TenantDelete {
	mutation := newTenantMutation(c.config, OpDelete)
	return &TenantDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TenantClient) DeleteOne(_m *Tenant) *TenantDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TenantClient) DeleteOneID(id uuid.UUID) *TenantDeleteOne {
	builder := c.Delete().Where(tenant.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TenantDeleteOne{builder}
}

// Query returns a query builder for Tenant.
func (c *TenantClient) Query() *TenantQuery {
	return &TenantQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTenant},
		inters: c.Interceptors(),
	}
}

// Get returns a Tenant entity by its id.
func (c *TenantClient) Get(ctx context.Context, id uuid.UUID) (*Tenant, error) {
	return c.Query().Where(tenant.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TenantClient) GetX(ctx context.Context, id uuid.UUID) *Tenant {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryUploads queries the uploads edge of a Tenant.
func (c *TenantClient) QueryUploads(_m *Tenant) *UploadQuery {
	query := (&UploadClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(tenant.Table, tenant.FieldID, id),
			sqlgraph.To(upload.Table, upload.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, tenant.UploadsTable, tenant.UploadsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *TenantClient) Hooks() []Hook {
	return c.hooks.Tenant
}

// Interceptors returns the client interceptors.
func (c *TenantClient) Interceptors() []Interceptor {
	return c.inters.Tenant
}

func (c *TenantClient) mutate(ctx context.Context, m *TenantMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TenantCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TenantUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TenantUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TenantDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Tenant mutation op: %q", m.Op())
	}
}

// UploadClient is a client for the Upload schema.
type UploadClient struct {
	config
}

// NewUploadClient returns a client for the Upload from the given config.
func NewUploadClient(c config) *UploadClient {
	return &UploadClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `upload.Hooks(f(g(h())))`.
func (c *UploadClient) Use(hooks ...Hook) {
	c.hooks.Upload = append(c.hooks.Upload, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `upload.Intercept(f(g(h())))`.
func (c *UploadClient) Intercept(interceptors ...Interceptor) {
	c.inters.Upload = append(c.inters.Upload, interceptors...)
}

// Create returns a builder for creating a Upload entity.
func (c *UploadClient) Create() *UploadCreate {
	mutation := newUploadMutation(c.config, OpCreate)
	return &UploadCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Upload entities.
func (c *UploadClient) CreateBulk(builders ...*UploadCreate) *UploadCreateBulk {
	return &UploadCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *UploadClient) MapCreateBulk(slice any, setFunc func(*UploadCreate, int)) *UploadCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &UploadCreateBulk{err: fmt.Errorf("calling to UploadClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*UploadCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &UploadCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Upload.
func (c *UploadClient) Update() *UploadUpdate {
	mutation := newUploadMutation(c.config, OpUpdate)
	return &UploadUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *UploadClient) UpdateOne(_m *Upload) *UploadUpdateOne {
	mutation := newUploadMutation(c.config, OpUpdateOne, withUpload(_m))
	return &UploadUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *UploadClient) UpdateOneID(id uuid.UUID) *UploadUpdateOne {
	mutation := newUploadMutation(c.config, OpUpdateOne, withUploadID(id))
	return &UploadUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Upload.
func (c *UploadClient) Delete() *UploadDelete {
	mutation := newUploadMutation(c.config, OpDelete)
	return &UploadDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *UploadClient) DeleteOne(_m *Upload) *UploadDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *UploadClient) DeleteOneID(id uuid.UUID) *UploadDeleteOne {
	builder := c.Delete().Where(upload.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &UploadDeleteOne{builder}
}

// Query returns a query builder for Upload.
func (c *UploadClient) Query() *UploadQuery {
	return &UploadQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeUpload},
		inters: c.Interceptors(),
	}
}

// Get returns a Upload entity by its id.
func (c *UploadClient) Get(ctx context.Context, id uuid.UUID) (*Upload, error) {
	return c.Query().Where(upload.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *UploadClient) GetX(ctx context.Context, id uuid.UUID) *Upload {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryTenant queries the tenant edge of a Upload.
func (c *UploadClient) QueryTenant(_m *Upload) *TenantQuery {
	query := (&TenantClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(upload.Table, upload.FieldID, id),
			sqlgraph.To(tenant.Table, tenant.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, upload.TenantTable, upload.TenantColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *UploadClient) Hooks() []Hook {
	return c.hooks.Upload
}

// Interceptors returns the client interceptors.
func (c *UploadClient) Interceptors() []Interceptor {
	return c.inters.Upload
}

func (c *UploadClient) mutate(ctx context.Context, m *UploadMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&UploadCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&UploadUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&UploadUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&UploadDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Upload mutation op: %q", m.Op())
	}
}

// VisitorProfileClient is a client for the VisitorProfile schema.
type VisitorProfileClient struct {
	config
}

// NewVisitorProfileClient returns a client for the VisitorProfile from the given config.
func NewVisitorProfileClient(c config) *VisitorProfileClient {
	return &VisitorProfileClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `visitorprofile.Hooks(f(g(h())))`.
func (c *VisitorProfileClient) Use(hooks ...Hook) {
	c.hooks.VisitorProfile = append(c.hooks.VisitorProfile, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `visitorprofile.Intercept(f(g(h())))`.
func (c *VisitorProfileClient) Intercept(interceptors ...Interceptor) {
	c.inters.VisitorProfile = append(c.inters.VisitorProfile, interceptors...)
}

// Create returns a builder for creating a VisitorProfile entity.
func (c *VisitorProfileClient) Create() *VisitorProfileCreate {
	mutation := newVisitorProfileMutation(c.config, OpCreate)
	return &VisitorProfileCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of VisitorProfile entities.
func (c *VisitorProfileClient) CreateBulk(builders ...*VisitorProfileCreate) *VisitorProfileCreateBulk {
	return &VisitorProfileCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *VisitorProfileClient) MapCreateBulk(slice any, setFunc func(*VisitorProfileCreate, int)) *VisitorProfileCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &VisitorProfileCreateBulk{err: fmt.Errorf("calling to VisitorProfileClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*VisitorProfileCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &VisitorProfileCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for VisitorProfile.
func (c *VisitorProfileClient) Update() *VisitorProfileUpdate {
	mutation := newVisitorProfileMutation(c.config, OpUpdate)
	return &VisitorProfileUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *VisitorProfileClient) UpdateOne(_m *VisitorProfile) *VisitorProfileUpdateOne {
	mutation := newVisitorProfileMutation(c.config, OpUpdateOne, withVisitorProfile(_m))
	return &VisitorProfileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *VisitorProfileClient) UpdateOneID(id uuid.UUID) *VisitorProfileUpdateOne {
	mutation := newVisitorProfileMutation(c.config, OpUpdateOne, withVisitorProfileID(id))
	return &VisitorProfileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for VisitorProfile.
func (c *VisitorProfileClient) Delete() *VisitorProfileDelete {
	mutation := newVisitorProfileMutation(c.config, OpDelete)
	return &VisitorProfileDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *VisitorProfileClient) DeleteOne(_m *VisitorProfile) *VisitorProfileDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *VisitorProfileClient) DeleteOneID(id uuid.UUID) *VisitorProfileDeleteOne {
	builder := c.Delete().Where(visitorprofile.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &VisitorProfileDeleteOne{builder}
}

// Query returns a query builder for VisitorProfile.
func (c *VisitorProfileClient) Query() *VisitorProfileQuery {
	return &VisitorProfileQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeVisitorProfile},
		inters: c.Interceptors(),
	}
}

// Get returns a VisitorProfile entity by its id.
func (c *VisitorProfileClient) Get(ctx context.Context, id uuid.UUID) (*VisitorProfile, error) {
	return c.Query().Where(visitorprofile.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *VisitorProfileClient) GetX(ctx context.Context, id uuid.UUID) *VisitorProfile {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *VisitorProfileClient) Hooks() []Hook {
	return c.hooks.VisitorProfile
}

// Interceptors returns the client interceptors.
func (c *VisitorProfileClient) Interceptors() []Interceptor {
	return c.inters.VisitorProfile
}

func (c *VisitorProfileClient) mutate(ctx context.Context, m *VisitorProfileMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&VisitorProfileCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&VisitorProfileUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&VisitorProfileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&VisitorProfileDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown VisitorProfile mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		GeoCache, RawEvent, Tenant, Upload, VisitorProfile []ent.Hook
	}
	inters struct {
		GeoCache, RawEvent, Tenant, Upload, VisitorProfile []ent.Interceptor
	}
)
