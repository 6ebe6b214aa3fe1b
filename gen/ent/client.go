// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/google/uuid"
	"github.com/hajime-ito/catalog-extractor/gen/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/hajime-ito/catalog-extractor/gen/ent/conversionjob"
	"github.com/hajime-ito/catalog-extractor/gen/ent/extractedrecord"
	"github.com/hajime-ito/catalog-extractor/gen/ent/uploadfile"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// ConversionJob is the client for interacting with the ConversionJob builders.
	ConversionJob *ConversionJobClient
	// ExtractedRecord is the client for interacting with the ExtractedRecord builders.
	ExtractedRecord *ExtractedRecordClient
	// UploadFile is the client for interacting with the UploadFile builders.
	UploadFile *UploadFileClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.ConversionJob = NewConversionJobClient(c.config)
	c.ExtractedRecord = NewExtractedRecordClient(c.config)
	c.UploadFile = NewUploadFileClient(c.config)
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
		ctx:             ctx,
		config:          cfg,
		ConversionJob:   NewConversionJobClient(cfg),
		ExtractedRecord: NewExtractedRecordClient(cfg),
		UploadFile:      NewUploadFileClient(cfg),
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
		ctx:             ctx,
		config:          cfg,
		ConversionJob:   NewConversionJobClient(cfg),
		ExtractedRecord: NewExtractedRecordClient(cfg),
		UploadFile:      NewUploadFileClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		ConversionJob.
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
	c.ConversionJob.Use(hooks...)
	c.ExtractedRecord.Use(hooks...)
	c.UploadFile.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.ConversionJob.Intercept(interceptors...)
	c.ExtractedRecord.Intercept(interceptors...)
	c.UploadFile.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *ConversionJobMutation:
		return c.ConversionJob.mutate(ctx, m)
	case *ExtractedRecordMutation:
		return c.ExtractedRecord.mutate(ctx, m)
	case *UploadFileMutation:
		return c.UploadFile.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// ConversionJobClient is a client for the ConversionJob schema.
type ConversionJobClient struct {
	config
}

// NewConversionJobClient returns a client for the ConversionJob from the given config.
func NewConversionJobClient(c config) *ConversionJobClient {
	return &ConversionJobClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `conversionjob.Hooks(f(g(h())))`.
func (c *ConversionJobClient) Use(hooks ...Hook) {
	c.hooks.ConversionJob = append(c.hooks.ConversionJob, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `conversionjob.Intercept(f(g(h())))`.
func (c *ConversionJobClient) Intercept(interceptors ...Interceptor) {
	c.inters.ConversionJob = append(c.inters.ConversionJob, interceptors...)
}

// Create returns a builder for creating a ConversionJob entity.
func (c *ConversionJobClient) Create() *ConversionJobCreate {
	mutation := newConversionJobMutation(c.config, OpCreate)
	return &ConversionJobCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ConversionJob entities.
func (c *ConversionJobClient) CreateBulk(builders ...*ConversionJobCreate) *ConversionJobCreateBulk {
	return &ConversionJobCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ConversionJobClient) MapCreateBulk(slice any, setFunc func(*ConversionJobCreate, int)) *ConversionJobCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ConversionJobCreateBulk{err: fmt.Errorf("calling to ConversionJobClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ConversionJobCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ConversionJobCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ConversionJob.
func (c *ConversionJobClient) Update() *ConversionJobUpdate {
	mutation := newConversionJobMutation(c.config, OpUpdate)
	return &ConversionJobUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ConversionJobClient) UpdateOne(cj *ConversionJob) *ConversionJobUpdateOne {
	mutation := newConversionJobMutation(c.config, OpUpdateOne, withConversionJob(cj))
	return &ConversionJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ConversionJobClient) UpdateOneID(id uuid.UUID) *ConversionJobUpdateOne {
	mutation := newConversionJobMutation(c.config, OpUpdateOne, withConversionJobID(id))
	return &ConversionJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ConversionJob.
func (c *ConversionJobClient) Delete() *ConversionJobDelete {
	mutation := newConversionJobMutation(c.config, OpDelete)
	return &ConversionJobDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ConversionJobClient) DeleteOne(cj *ConversionJob) *ConversionJobDeleteOne {
	return c.DeleteOneID(cj.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ConversionJobClient) DeleteOneID(id uuid.UUID) *ConversionJobDeleteOne {
	builder := c.Delete().Where(conversionjob.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ConversionJobDeleteOne{builder}
}

// Query returns a query builder for ConversionJob.
func (c *ConversionJobClient) Query() *ConversionJobQuery {
	return &ConversionJobQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeConversionJob},
		inters: c.Interceptors(),
	}
}

// Get returns a ConversionJob entity by its id.
func (c *ConversionJobClient) Get(ctx context.Context, id uuid.UUID) (*ConversionJob, error) {
	return c.Query().Where(conversionjob.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ConversionJobClient) GetX(ctx context.Context, id uuid.UUID) *ConversionJob {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryRecords queries the records edge of a ConversionJob.
func (c *ConversionJobClient) QueryRecords(cj *ConversionJob) *ExtractedRecordQuery {
	query := (&ExtractedRecordClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := cj.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(conversionjob.Table, conversionjob.FieldID, id),
			sqlgraph.To(extractedrecord.Table, extractedrecord.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, conversionjob.RecordsTable, conversionjob.RecordsColumn),
		)
		fromV = sqlgraph.Neighbors(cj.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ConversionJobClient) Hooks() []Hook {
	return c.hooks.ConversionJob
}

// Interceptors returns the client interceptors.
func (c *ConversionJobClient) Interceptors() []Interceptor {
	return c.inters.ConversionJob
}

func (c *ConversionJobClient) mutate(ctx context.Context, m *ConversionJobMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ConversionJobCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ConversionJobUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ConversionJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ConversionJobDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ConversionJob mutation op: %q", m.Op())
	}
}

// ExtractedRecordClient is a client for the ExtractedRecord schema.
type ExtractedRecordClient struct {
	config
}

// NewExtractedRecordClient returns a client for the ExtractedRecord from the given config.
func NewExtractedRecordClient(c config) *ExtractedRecordClient {
	return &ExtractedRecordClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `extractedrecord.Hooks(f(g(h())))`.
func (c *ExtractedRecordClient) Use(hooks ...Hook) {
	c.hooks.ExtractedRecord = append(c.hooks.ExtractedRecord, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `extractedrecord.Intercept(f(g(h())))`.
func (c *ExtractedRecordClient) Intercept(interceptors ...Interceptor) {
	c.inters.ExtractedRecord = append(c.inters.ExtractedRecord, interceptors...)
}

// Create returns a builder for creating a ExtractedRecord entity.
func (c *ExtractedRecordClient) Create() *ExtractedRecordCreate {
	mutation := newExtractedRecordMutation(c.config, OpCreate)
	return &ExtractedRecordCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ExtractedRecord entities.
func (c *ExtractedRecordClient) CreateBulk(builders ...*ExtractedRecordCreate) *ExtractedRecordCreateBulk {
	return &ExtractedRecordCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ExtractedRecordClient) MapCreateBulk(slice any, setFunc func(*ExtractedRecordCreate, int)) *ExtractedRecordCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ExtractedRecordCreateBulk{err: fmt.Errorf("calling to ExtractedRecordClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ExtractedRecordCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ExtractedRecordCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ExtractedRecord.
func (c *ExtractedRecordClient) Update() *ExtractedRecordUpdate {
	mutation := newExtractedRecordMutation(c.config, OpUpdate)
	return &ExtractedRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ExtractedRecordClient) UpdateOne(er *ExtractedRecord) *ExtractedRecordUpdateOne {
	mutation := newExtractedRecordMutation(c.config, OpUpdateOne, withExtractedRecord(er))
	return &ExtractedRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ExtractedRecordClient) UpdateOneID(id uuid.UUID) *ExtractedRecordUpdateOne {
	mutation := newExtractedRecordMutation(c.config, OpUpdateOne, withExtractedRecordID(id))
	return &ExtractedRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ExtractedRecord.
func (c *ExtractedRecordClient) Delete() *ExtractedRecordDelete {
	mutation := newExtractedRecordMutation(c.config, OpDelete)
	return &ExtractedRecordDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ExtractedRecordClient) DeleteOne(er *ExtractedRecord) *ExtractedRecordDeleteOne {
	return c.DeleteOneID(er.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ExtractedRecordClient) DeleteOneID(id uuid.UUID) *ExtractedRecordDeleteOne {
	builder := c.Delete().Where(extractedrecord.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ExtractedRecordDeleteOne{builder}
}

// Query returns a query builder for ExtractedRecord.
func (c *ExtractedRecordClient) Query() *ExtractedRecordQuery {
	return &ExtractedRecordQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeExtractedRecord},
		inters: c.Interceptors(),
	}
}

// Get returns a ExtractedRecord entity by its id.
func (c *ExtractedRecordClient) Get(ctx context.Context, id uuid.UUID) (*ExtractedRecord, error) {
	return c.Query().Where(extractedrecord.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ExtractedRecordClient) GetX(ctx context.Context, id uuid.UUID) *ExtractedRecord {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryJob queries the job edge of a ExtractedRecord.
func (c *ExtractedRecordClient) QueryJob(er *ExtractedRecord) *ConversionJobQuery {
	query := (&ConversionJobClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := er.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(extractedrecord.Table, extractedrecord.FieldID, id),
			sqlgraph.To(conversionjob.Table, conversionjob.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, extractedrecord.JobTable, extractedrecord.JobColumn),
		)
		fromV = sqlgraph.Neighbors(er.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryFile queries the file edge of a ExtractedRecord.
func (c *ExtractedRecordClient) QueryFile(er *ExtractedRecord) *UploadFileQuery {
	query := (&UploadFileClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := er.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(extractedrecord.Table, extractedrecord.FieldID, id),
			sqlgraph.To(uploadfile.Table, uploadfile.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, extractedrecord.FileTable, extractedrecord.FileColumn),
		)
		fromV = sqlgraph.Neighbors(er.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ExtractedRecordClient) Hooks() []Hook {
	return c.hooks.ExtractedRecord
}

// Interceptors returns the client interceptors.
func (c *ExtractedRecordClient) Interceptors() []Interceptor {
	return c.inters.ExtractedRecord
}

func (c *ExtractedRecordClient) mutate(ctx context.Context, m *ExtractedRecordMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ExtractedRecordCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ExtractedRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ExtractedRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ExtractedRecordDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ExtractedRecord mutation op: %q", m.Op())
	}
}

// UploadFileClient is a client for the UploadFile schema.
type UploadFileClient struct {
	config
}

// NewUploadFileClient returns a client for the UploadFile from the given config.
func NewUploadFileClient(c config) *UploadFileClient {
	return &UploadFileClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `uploadfile.Hooks(f(g(h())))`.
func (c *UploadFileClient) Use(hooks ...Hook) {
	c.hooks.UploadFile = append(c.hooks.UploadFile, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `uploadfile.Intercept(f(g(h())))`.
func (c *UploadFileClient) Intercept(interceptors ...Interceptor) {
	c.inters.UploadFile = append(c.inters.UploadFile, interceptors...)
}

// Create returns a builder for creating a UploadFile entity.
func (c *UploadFileClient) Create() *UploadFileCreate {
	mutation := newUploadFileMutation(c.config, OpCreate)
	return &UploadFileCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of UploadFile entities.
func (c *UploadFileClient) CreateBulk(builders ...*UploadFileCreate) *UploadFileCreateBulk {
	return &UploadFileCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *UploadFileClient) MapCreateBulk(slice any, setFunc func(*UploadFileCreate, int)) *UploadFileCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &UploadFileCreateBulk{err: fmt.Errorf("calling to UploadFileClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*UploadFileCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &UploadFileCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for UploadFile.
func (c *UploadFileClient) Update() *UploadFileUpdate {
	mutation := newUploadFileMutation(c.config, OpUpdate)
	return &UploadFileUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *UploadFileClient) UpdateOne(uf *UploadFile) *UploadFileUpdateOne {
	mutation := newUploadFileMutation(c.config, OpUpdateOne, withUploadFile(uf))
	return &UploadFileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *UploadFileClient) UpdateOneID(id uuid.UUID) *UploadFileUpdateOne {
	mutation := newUploadFileMutation(c.config, OpUpdateOne, withUploadFileID(id))
	return &UploadFileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for UploadFile.
func (c *UploadFileClient) Delete() *UploadFileDelete {
	mutation := newUploadFileMutation(c.config, OpDelete)
	return &UploadFileDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *UploadFileClient) DeleteOne(uf *UploadFile) *UploadFileDeleteOne {
	return c.DeleteOneID(uf.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *UploadFileClient) DeleteOneID(id uuid.UUID) *UploadFileDeleteOne {
	builder := c.Delete().Where(uploadfile.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &UploadFileDeleteOne{builder}
}

// Query returns a query builder for UploadFile.
func (c *UploadFileClient) Query() *UploadFileQuery {
	return &UploadFileQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeUploadFile},
		inters: c.Interceptors(),
	}
}

// Get returns a UploadFile entity by its id.
func (c *UploadFileClient) Get(ctx context.Context, id uuid.UUID) (*UploadFile, error) {
	return c.Query().Where(uploadfile.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *UploadFileClient) GetX(ctx context.Context, id uuid.UUID) *UploadFile {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryRecords queries the records edge of a UploadFile.
func (c *UploadFileClient) QueryRecords(uf *UploadFile) *ExtractedRecordQuery {
	query := (&ExtractedRecordClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := uf.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(uploadfile.Table, uploadfile.FieldID, id),
			sqlgraph.To(extractedrecord.Table, extractedrecord.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, uploadfile.RecordsTable, uploadfile.RecordsColumn),
		)
		fromV = sqlgraph.Neighbors(uf.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *UploadFileClient) Hooks() []Hook {
	return c.hooks.UploadFile
}

// Interceptors returns the client interceptors.
func (c *UploadFileClient) Interceptors() []Interceptor {
	return c.inters.UploadFile
}

func (c *UploadFileClient) mutate(ctx context.Context, m *UploadFileMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&UploadFileCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&UploadFileUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&UploadFileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&UploadFileDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown UploadFile mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		ConversionJob, ExtractedRecord, UploadFile []ent.Hook
	}
	inters struct {
		ConversionJob, ExtractedRecord, UploadFile []ent.Interceptor
	}
)
