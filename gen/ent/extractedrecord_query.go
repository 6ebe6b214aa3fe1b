// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/hajime-ito/catalog-extractor/gen/ent/conversionjob"
	"github.com/hajime-ito/catalog-extractor/gen/ent/extractedrecord"
	"github.com/hajime-ito/catalog-extractor/gen/ent/predicate"
	"github.com/hajime-ito/catalog-extractor/gen/ent/uploadfile"
)

// ExtractedRecordQuery is the builder for querying ExtractedRecord entities.
type ExtractedRecordQuery struct {
	config
	ctx        *QueryContext
	order      []extractedrecord.OrderOption
	inters     []Interceptor
	predicates []predicate.ExtractedRecord
	withJob    *ConversionJobQuery
	withFile   *UploadFileQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the ExtractedRecordQuery builder.
func (erq *ExtractedRecordQuery) Where(ps ...predicate.ExtractedRecord) *ExtractedRecordQuery {
	erq.predicates = append(erq.predicates, ps...)
	return erq
}

// Limit the number of records to be returned by this query.
func (erq *ExtractedRecordQuery) Limit(limit int) *ExtractedRecordQuery {
	erq.ctx.Limit = &limit
	return erq
}

// Offset to start from.
func (erq *ExtractedRecordQuery) Offset(offset int) *ExtractedRecordQuery {
	erq.ctx.Offset = &offset
	return erq
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (erq *ExtractedRecordQuery) Unique(unique bool) *ExtractedRecordQuery {
	erq.ctx.Unique = &unique
	return erq
}

// Order specifies how the records should be ordered.
func (erq *ExtractedRecordQuery) Order(o ...extractedrecord.OrderOption) *ExtractedRecordQuery {
	erq.order = append(erq.order, o...)
	return erq
}

// QueryJob chains the current query on the "job" edge.
func (erq *ExtractedRecordQuery) QueryJob() *ConversionJobQuery {
	query := (&ConversionJobClient{config: erq.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := erq.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := erq.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(extractedrecord.Table, extractedrecord.FieldID, selector),
			sqlgraph.To(conversionjob.Table, conversionjob.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, extractedrecord.JobTable, extractedrecord.JobColumn),
		)
		fromU = sqlgraph.SetNeighbors(erq.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryFile chains the current query on the "file" edge.
func (erq *ExtractedRecordQuery) QueryFile() *UploadFileQuery {
	query := (&UploadFileClient{config: erq.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := erq.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := erq.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(extractedrecord.Table, extractedrecord.FieldID, selector),
			sqlgraph.To(uploadfile.Table, uploadfile.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, extractedrecord.FileTable, extractedrecord.FileColumn),
		)
		fromU = sqlgraph.SetNeighbors(erq.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first ExtractedRecord entity from the query.
// Returns a *NotFoundError when no ExtractedRecord was found.
func (erq *ExtractedRecordQuery) First(ctx context.Context) (*ExtractedRecord, error) {
	nodes, err := erq.Limit(1).All(setContextOp(ctx, erq.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{extractedrecord.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (erq *ExtractedRecordQuery) FirstX(ctx context.Context) *ExtractedRecord {
	node, err := erq.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first ExtractedRecord ID from the query.
// Returns a *NotFoundError when no ExtractedRecord ID was found.
func (erq *ExtractedRecordQuery) FirstID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = erq.Limit(1).IDs(setContextOp(ctx, erq.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{extractedrecord.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (erq *ExtractedRecordQuery) FirstIDX(ctx context.Context) uuid.UUID {
	id, err := erq.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single ExtractedRecord entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one ExtractedRecord entity is found.
// Returns a *NotFoundError when no ExtractedRecord entities are found.
func (erq *ExtractedRecordQuery) Only(ctx context.Context) (*ExtractedRecord, error) {
	nodes, err := erq.Limit(2).All(setContextOp(ctx, erq.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{extractedrecord.Label}
	default:
		return nil, &NotSingularError{extractedrecord.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (erq *ExtractedRecordQuery) OnlyX(ctx context.Context) *ExtractedRecord {
	node, err := erq.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only ExtractedRecord ID in the query.
// Returns a *NotSingularError when more than one ExtractedRecord ID is found.
// Returns a *NotFoundError when no entities are found.
func (erq *ExtractedRecordQuery) OnlyID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = erq.Limit(2).IDs(setContextOp(ctx, erq.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{extractedrecord.Label}
	default:
		err = &NotSingularError{extractedrecord.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (erq *ExtractedRecordQuery) OnlyIDX(ctx context.Context) uuid.UUID {
	id, err := erq.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of ExtractedRecords.
func (erq *ExtractedRecordQuery) All(ctx context.Context) ([]*ExtractedRecord, error) {
	ctx = setContextOp(ctx, erq.ctx, ent.OpQueryAll)
	if err := erq.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*ExtractedRecord, *ExtractedRecordQuery]()
	return withInterceptors[[]*ExtractedRecord](ctx, erq, qr, erq.inters)
}

// AllX is like All, but panics if an error occurs.
func (erq *ExtractedRecordQuery) AllX(ctx context.Context) []*ExtractedRecord {
	nodes, err := erq.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of ExtractedRecord IDs.
func (erq *ExtractedRecordQuery) IDs(ctx context.Context) (ids []uuid.UUID, err error) {
	if erq.ctx.Unique == nil && erq.path != nil {
		erq.Unique(true)
	}
	ctx = setContextOp(ctx, erq.ctx, ent.OpQueryIDs)
	if err = erq.Select(extractedrecord.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (erq *ExtractedRecordQuery) IDsX(ctx context.Context) []uuid.UUID {
	ids, err := erq.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (erq *ExtractedRecordQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, erq.ctx, ent.OpQueryCount)
	if err := erq.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, erq, querierCount[*ExtractedRecordQuery](), erq.inters)
}

// CountX is like Count, but panics if an error occurs.
func (erq *ExtractedRecordQuery) CountX(ctx context.Context) int {
	count, err := erq.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (erq *ExtractedRecordQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, erq.ctx, ent.OpQueryExist)
	switch _, err := erq.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (erq *ExtractedRecordQuery) ExistX(ctx context.Context) bool {
	exist, err := erq.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the ExtractedRecordQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (erq *ExtractedRecordQuery) Clone() *ExtractedRecordQuery {
	if erq == nil {
		return nil
	}
	return &ExtractedRecordQuery{
		config:     erq.config,
		ctx:        erq.ctx.Clone(),
		order:      append([]extractedrecord.OrderOption{}, erq.order...),
		inters:     append([]Interceptor{}, erq.inters...),
		predicates: append([]predicate.ExtractedRecord{}, erq.predicates...),
		withJob:    erq.withJob.Clone(),
		withFile:   erq.withFile.Clone(),
		// clone intermediate query.
		sql:  erq.sql.Clone(),
		path: erq.path,
	}
}

// WithJob tells the query-builder to eager-load the nodes that are connected to
// the "job" edge. The optional arguments are used to configure the query builder of the edge.
func (erq *ExtractedRecordQuery) WithJob(opts ...func(*ConversionJobQuery)) *ExtractedRecordQuery {
	query := (&ConversionJobClient{config: erq.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	erq.withJob = query
	return erq
}

// WithFile tells the query-builder to eager-load the nodes that are connected to
// the "file" edge. The optional arguments are used to configure the query builder of the edge.
func (erq *ExtractedRecordQuery) WithFile(opts ...func(*UploadFileQuery)) *ExtractedRecordQuery {
	query := (&UploadFileClient{config: erq.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	erq.withFile = query
	return erq
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		OwnerID uuid.UUID `json:"owner_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.ExtractedRecord.Query().
//		GroupBy(extractedrecord.FieldOwnerID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (erq *ExtractedRecordQuery) GroupBy(field string, fields ...string) *ExtractedRecordGroupBy {
	erq.ctx.Fields = append([]string{field}, fields...)
	grbuild := &ExtractedRecordGroupBy{build: erq}
	grbuild.flds = &erq.ctx.Fields
	grbuild.label = extractedrecord.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		OwnerID uuid.UUID `json:"owner_id,omitempty"`
//	}
//
//	client.ExtractedRecord.Query().
//		Select(extractedrecord.FieldOwnerID).
//		Scan(ctx, &v)
func (erq *ExtractedRecordQuery) Select(fields ...string) *ExtractedRecordSelect {
	erq.ctx.Fields = append(erq.ctx.Fields, fields...)
	sbuild := &ExtractedRecordSelect{ExtractedRecordQuery: erq}
	sbuild.label = extractedrecord.Label
	sbuild.flds, sbuild.scan = &erq.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a ExtractedRecordSelect configured with the given aggregations.
func (erq *ExtractedRecordQuery) Aggregate(fns ...AggregateFunc) *ExtractedRecordSelect {
	return erq.Select().Aggregate(fns...)
}

func (erq *ExtractedRecordQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range erq.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, erq); err != nil {
				return err
			}
		}
	}
	for _, f := range erq.ctx.Fields {
		if !extractedrecord.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if erq.path != nil {
		prev, err := erq.path(ctx)
		if err != nil {
			return err
		}
		erq.sql = prev
	}
	return nil
}

func (erq *ExtractedRecordQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*ExtractedRecord, error) {
	var (
		nodes       = []*ExtractedRecord{}
		_spec       = erq.querySpec()
		loadedTypes = [2]bool{
			erq.withJob != nil,
			erq.withFile != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*ExtractedRecord).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &ExtractedRecord{config: erq.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, erq.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := erq.withJob; query != nil {
		if err := erq.loadJob(ctx, query, nodes, nil,
			func(n *ExtractedRecord, e *ConversionJob) { n.Edges.Job = e }); err != nil {
			return nil, err
		}
	}
	if query := erq.withFile; query != nil {
		if err := erq.loadFile(ctx, query, nodes, nil,
			func(n *ExtractedRecord, e *UploadFile) { n.Edges.File = e }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (erq *ExtractedRecordQuery) loadJob(ctx context.Context, query *ConversionJobQuery, nodes []*ExtractedRecord, init func(*ExtractedRecord), assign func(*ExtractedRecord, *ConversionJob)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*ExtractedRecord)
	for i := range nodes {
		if nodes[i].ConversionJobID == nil {
			continue
		}
		fk := *nodes[i].ConversionJobID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(conversionjob.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "conversion_job_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (erq *ExtractedRecordQuery) loadFile(ctx context.Context, query *UploadFileQuery, nodes []*ExtractedRecord, init func(*ExtractedRecord), assign func(*ExtractedRecord, *UploadFile)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*ExtractedRecord)
	for i := range nodes {
		fk := nodes[i].SourceFileID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(uploadfile.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "source_file_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}

func (erq *ExtractedRecordQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := erq.querySpec()
	_spec.Node.Columns = erq.ctx.Fields
	if len(erq.ctx.Fields) > 0 {
		_spec.Unique = erq.ctx.Unique != nil && *erq.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, erq.driver, _spec)
}

func (erq *ExtractedRecordQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(extractedrecord.Table, extractedrecord.Columns, sqlgraph.NewFieldSpec(extractedrecord.FieldID, field.TypeUUID))
	_spec.From = erq.sql
	if unique := erq.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if erq.path != nil {
		_spec.Unique = true
	}
	if fields := erq.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, extractedrecord.FieldID)
		for i := range fields {
			if fields[i] != extractedrecord.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if erq.withJob != nil {
			_spec.Node.AddColumnOnce(extractedrecord.FieldConversionJobID)
		}
		if erq.withFile != nil {
			_spec.Node.AddColumnOnce(extractedrecord.FieldSourceFileID)
		}
	}
	if ps := erq.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := erq.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := erq.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := erq.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (erq *ExtractedRecordQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(erq.driver.Dialect())
	t1 := builder.Table(extractedrecord.Table)
	columns := erq.ctx.Fields
	if len(columns) == 0 {
		columns = extractedrecord.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if erq.sql != nil {
		selector = erq.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if erq.ctx.Unique != nil && *erq.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range erq.predicates {
		p(selector)
	}
	for _, p := range erq.order {
		p(selector)
	}
	if offset := erq.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := erq.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// ExtractedRecordGroupBy is the group-by builder for ExtractedRecord entities.
type ExtractedRecordGroupBy struct {
	selector
	build *ExtractedRecordQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (ergb *ExtractedRecordGroupBy) Aggregate(fns ...AggregateFunc) *ExtractedRecordGroupBy {
	ergb.fns = append(ergb.fns, fns...)
	return ergb
}

// Scan applies the selector query and scans the result into the given value.
func (ergb *ExtractedRecordGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, ergb.build.ctx, ent.OpQueryGroupBy)
	if err := ergb.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ExtractedRecordQuery, *ExtractedRecordGroupBy](ctx, ergb.build, ergb, ergb.build.inters, v)
}

func (ergb *ExtractedRecordGroupBy) sqlScan(ctx context.Context, root *ExtractedRecordQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(ergb.fns))
	for _, fn := range ergb.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*ergb.flds)+len(ergb.fns))
		for _, f := range *ergb.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*ergb.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := ergb.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// ExtractedRecordSelect is the builder for selecting fields of ExtractedRecord entities.
type ExtractedRecordSelect struct {
	*ExtractedRecordQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (ers *ExtractedRecordSelect) Aggregate(fns ...AggregateFunc) *ExtractedRecordSelect {
	ers.fns = append(ers.fns, fns...)
	return ers
}

// Scan applies the selector query and scans the result into the given value.
func (ers *ExtractedRecordSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, ers.ctx, ent.OpQuerySelect)
	if err := ers.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ExtractedRecordQuery, *ExtractedRecordSelect](ctx, ers.ExtractedRecordQuery, ers, ers.inters, v)
}

func (ers *ExtractedRecordSelect) sqlScan(ctx context.Context, root *ExtractedRecordQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(ers.fns))
	for _, fn := range ers.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*ers.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := ers.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
