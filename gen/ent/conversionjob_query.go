// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"database/sql/driver"
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
)

// ConversionJobQuery is the builder for querying ConversionJob entities.
type ConversionJobQuery struct {
	config
	ctx         *QueryContext
	order       []conversionjob.OrderOption
	inters      []Interceptor
	predicates  []predicate.ConversionJob
	withRecords *ExtractedRecordQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the ConversionJobQuery builder.
func (cjq *ConversionJobQuery) Where(ps ...predicate.ConversionJob) *ConversionJobQuery {
	cjq.predicates = append(cjq.predicates, ps...)
	return cjq
}

// Limit the number of records to be returned by this query.
func (cjq *ConversionJobQuery) Limit(limit int) *ConversionJobQuery {
	cjq.ctx.Limit = &limit
	return cjq
}

// Offset to start from.
func (cjq *ConversionJobQuery) Offset(offset int) *ConversionJobQuery {
	cjq.ctx.Offset = &offset
	return cjq
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (cjq *ConversionJobQuery) Unique(unique bool) *ConversionJobQuery {
	cjq.ctx.Unique = &unique
	return cjq
}

// Order specifies how the records should be ordered.
func (cjq *ConversionJobQuery) Order(o ...conversionjob.OrderOption) *ConversionJobQuery {
	cjq.order = append(cjq.order, o...)
	return cjq
}

// QueryRecords chains the current query on the "records" edge.
func (cjq *ConversionJobQuery) QueryRecords() *ExtractedRecordQuery {
	query := (&ExtractedRecordClient{config: cjq.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := cjq.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := cjq.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(conversionjob.Table, conversionjob.FieldID, selector),
			sqlgraph.To(extractedrecord.Table, extractedrecord.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, conversionjob.RecordsTable, conversionjob.RecordsColumn),
		)
		fromU = sqlgraph.SetNeighbors(cjq.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first ConversionJob entity from the query.
// Returns a *NotFoundError when no ConversionJob was found.
func (cjq *ConversionJobQuery) First(ctx context.Context) (*ConversionJob, error) {
	nodes, err := cjq.Limit(1).All(setContextOp(ctx, cjq.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{conversionjob.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (cjq *ConversionJobQuery) FirstX(ctx context.Context) *ConversionJob {
	node, err := cjq.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first ConversionJob ID from the query.
// Returns a *NotFoundError when no ConversionJob ID was found.
func (cjq *ConversionJobQuery) FirstID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = cjq.Limit(1).IDs(setContextOp(ctx, cjq.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{conversionjob.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (cjq *ConversionJobQuery) FirstIDX(ctx context.Context) uuid.UUID {
	id, err := cjq.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single ConversionJob entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one ConversionJob entity is found.
// Returns a *NotFoundError when no ConversionJob entities are found.
func (cjq *ConversionJobQuery) Only(ctx context.Context) (*ConversionJob, error) {
	nodes, err := cjq.Limit(2).All(setContextOp(ctx, cjq.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{conversionjob.Label}
	default:
		return nil, &NotSingularError{conversionjob.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (cjq *ConversionJobQuery) OnlyX(ctx context.Context) *ConversionJob {
	node, err := cjq.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only ConversionJob ID in the query.
// Returns a *NotSingularError when more than one ConversionJob ID is found.
// Returns a *NotFoundError when no entities are found.
func (cjq *ConversionJobQuery) OnlyID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = cjq.Limit(2).IDs(setContextOp(ctx, cjq.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{conversionjob.Label}
	default:
		err = &NotSingularError{conversionjob.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (cjq *ConversionJobQuery) OnlyIDX(ctx context.Context) uuid.UUID {
	id, err := cjq.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of ConversionJobs.
func (cjq *ConversionJobQuery) All(ctx context.Context) ([]*ConversionJob, error) {
	ctx = setContextOp(ctx, cjq.ctx, ent.OpQueryAll)
	if err := cjq.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*ConversionJob, *ConversionJobQuery]()
	return withInterceptors[[]*ConversionJob](ctx, cjq, qr, cjq.inters)
}

// AllX is like All, but panics if an error occurs.
func (cjq *ConversionJobQuery) AllX(ctx context.Context) []*ConversionJob {
	nodes, err := cjq.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of ConversionJob IDs.
func (cjq *ConversionJobQuery) IDs(ctx context.Context) (ids []uuid.UUID, err error) {
	if cjq.ctx.Unique == nil && cjq.path != nil {
		cjq.Unique(true)
	}
	ctx = setContextOp(ctx, cjq.ctx, ent.OpQueryIDs)
	if err = cjq.Select(conversionjob.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (cjq *ConversionJobQuery) IDsX(ctx context.Context) []uuid.UUID {
	ids, err := cjq.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (cjq *ConversionJobQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, cjq.ctx, ent.OpQueryCount)
	if err := cjq.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, cjq, querierCount[*ConversionJobQuery](), cjq.inters)
}

// CountX is like Count, but panics if an error occurs.
func (cjq *ConversionJobQuery) CountX(ctx context.Context) int {
	count, err := cjq.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (cjq *ConversionJobQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, cjq.ctx, ent.OpQueryExist)
	switch _, err := cjq.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (cjq *ConversionJobQuery) ExistX(ctx context.Context) bool {
	exist, err := cjq.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the ConversionJobQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (cjq *ConversionJobQuery) Clone() *ConversionJobQuery {
	if cjq == nil {
		return nil
	}
	return &ConversionJobQuery{
		config:      cjq.config,
		ctx:         cjq.ctx.Clone(),
		order:       append([]conversionjob.OrderOption{}, cjq.order...),
		inters:      append([]Interceptor{}, cjq.inters...),
		predicates:  append([]predicate.ConversionJob{}, cjq.predicates...),
		withRecords: cjq.withRecords.Clone(),
		// clone intermediate query.
		sql:  cjq.sql.Clone(),
		path: cjq.path,
	}
}

// WithRecords tells the query-builder to eager-load the nodes that are connected to
// the "records" edge. The optional arguments are used to configure the query builder of the edge.
func (cjq *ConversionJobQuery) WithRecords(opts ...func(*ExtractedRecordQuery)) *ConversionJobQuery {
	query := (&ExtractedRecordClient{config: cjq.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	cjq.withRecords = query
	return cjq
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
//	client.ConversionJob.Query().
//		GroupBy(conversionjob.FieldOwnerID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (cjq *ConversionJobQuery) GroupBy(field string, fields ...string) *ConversionJobGroupBy {
	cjq.ctx.Fields = append([]string{field}, fields...)
	grbuild := &ConversionJobGroupBy{build: cjq}
	grbuild.flds = &cjq.ctx.Fields
	grbuild.label = conversionjob.Label
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
//	client.ConversionJob.Query().
//		Select(conversionjob.FieldOwnerID).
//		Scan(ctx, &v)
func (cjq *ConversionJobQuery) Select(fields ...string) *ConversionJobSelect {
	cjq.ctx.Fields = append(cjq.ctx.Fields, fields...)
	sbuild := &ConversionJobSelect{ConversionJobQuery: cjq}
	sbuild.label = conversionjob.Label
	sbuild.flds, sbuild.scan = &cjq.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a ConversionJobSelect configured with the given aggregations.
func (cjq *ConversionJobQuery) Aggregate(fns ...AggregateFunc) *ConversionJobSelect {
	return cjq.Select().Aggregate(fns...)
}

func (cjq *ConversionJobQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range cjq.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, cjq); err != nil {
				return err
			}
		}
	}
	for _, f := range cjq.ctx.Fields {
		if !conversionjob.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if cjq.path != nil {
		prev, err := cjq.path(ctx)
		if err != nil {
			return err
		}
		cjq.sql = prev
	}
	return nil
}

func (cjq *ConversionJobQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*ConversionJob, error) {
	var (
		nodes       = []*ConversionJob{}
		_spec       = cjq.querySpec()
		loadedTypes = [1]bool{
			cjq.withRecords != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*ConversionJob).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &ConversionJob{config: cjq.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, cjq.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := cjq.withRecords; query != nil {
		if err := cjq.loadRecords(ctx, query, nodes,
			func(n *ConversionJob) { n.Edges.Records = []*ExtractedRecord{} },
			func(n *ConversionJob, e *ExtractedRecord) { n.Edges.Records = append(n.Edges.Records, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (cjq *ConversionJobQuery) loadRecords(ctx context.Context, query *ExtractedRecordQuery, nodes []*ConversionJob, init func(*ConversionJob), assign func(*ConversionJob, *ExtractedRecord)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[uuid.UUID]*ConversionJob)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(extractedrecord.FieldConversionJobID)
	}
	query.Where(predicate.ExtractedRecord(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(conversionjob.RecordsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.ConversionJobID
		if fk == nil {
			return fmt.Errorf(`foreign-key "conversion_job_id" is nil for node %v`, n.ID)
		}
		node, ok := nodeids[*fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "conversion_job_id" returned %v for node %v`, *fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (cjq *ConversionJobQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := cjq.querySpec()
	_spec.Node.Columns = cjq.ctx.Fields
	if len(cjq.ctx.Fields) > 0 {
		_spec.Unique = cjq.ctx.Unique != nil && *cjq.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, cjq.driver, _spec)
}

func (cjq *ConversionJobQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(conversionjob.Table, conversionjob.Columns, sqlgraph.NewFieldSpec(conversionjob.FieldID, field.TypeUUID))
	_spec.From = cjq.sql
	if unique := cjq.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if cjq.path != nil {
		_spec.Unique = true
	}
	if fields := cjq.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, conversionjob.FieldID)
		for i := range fields {
			if fields[i] != conversionjob.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
	}
	if ps := cjq.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := cjq.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := cjq.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := cjq.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (cjq *ConversionJobQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(cjq.driver.Dialect())
	t1 := builder.Table(conversionjob.Table)
	columns := cjq.ctx.Fields
	if len(columns) == 0 {
		columns = conversionjob.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if cjq.sql != nil {
		selector = cjq.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if cjq.ctx.Unique != nil && *cjq.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range cjq.predicates {
		p(selector)
	}
	for _, p := range cjq.order {
		p(selector)
	}
	if offset := cjq.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := cjq.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// ConversionJobGroupBy is the group-by builder for ConversionJob entities.
type ConversionJobGroupBy struct {
	selector
	build *ConversionJobQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (cjgb *ConversionJobGroupBy) Aggregate(fns ...AggregateFunc) *ConversionJobGroupBy {
	cjgb.fns = append(cjgb.fns, fns...)
	return cjgb
}

// Scan applies the selector query and scans the result into the given value.
func (cjgb *ConversionJobGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, cjgb.build.ctx, ent.OpQueryGroupBy)
	if err := cjgb.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ConversionJobQuery, *ConversionJobGroupBy](ctx, cjgb.build, cjgb, cjgb.build.inters, v)
}

func (cjgb *ConversionJobGroupBy) sqlScan(ctx context.Context, root *ConversionJobQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(cjgb.fns))
	for _, fn := range cjgb.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*cjgb.flds)+len(cjgb.fns))
		for _, f := range *cjgb.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*cjgb.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := cjgb.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// ConversionJobSelect is the builder for selecting fields of ConversionJob entities.
type ConversionJobSelect struct {
	*ConversionJobQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (cjs *ConversionJobSelect) Aggregate(fns ...AggregateFunc) *ConversionJobSelect {
	cjs.fns = append(cjs.fns, fns...)
	return cjs
}

// Scan applies the selector query and scans the result into the given value.
func (cjs *ConversionJobSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, cjs.ctx, ent.OpQuerySelect)
	if err := cjs.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ConversionJobQuery, *ConversionJobSelect](ctx, cjs.ConversionJobQuery, cjs, cjs.inters, v)
}

func (cjs *ConversionJobSelect) sqlScan(ctx context.Context, root *ConversionJobQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(cjs.fns))
	for _, fn := range cjs.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*cjs.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := cjs.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
