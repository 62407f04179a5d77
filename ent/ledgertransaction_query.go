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
	"github.com/monibridge/core/ent/ledgertransaction"
	"github.com/monibridge/core/ent/predicate"
	"github.com/monibridge/core/ent/virtualaccount"
)

// LedgerTransactionQuery is the builder for querying LedgerTransaction entities.
type LedgerTransactionQuery struct {
	config
	ctx         *QueryContext
	order       []ledgertransaction.OrderOption
	inters      []Interceptor
	predicates  []predicate.LedgerTransaction
	withAccount *VirtualAccountQuery
	withFKs     bool
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the LedgerTransactionQuery builder.
func (ltq *LedgerTransactionQuery) Where(ps ...predicate.LedgerTransaction) *LedgerTransactionQuery {
	ltq.predicates = append(ltq.predicates, ps...)
	return ltq
}

// Limit the number of records to be returned by this query.
func (ltq *LedgerTransactionQuery) Limit(limit int) *LedgerTransactionQuery {
	ltq.ctx.Limit = &limit
	return ltq
}

// Offset to start from.
func (ltq *LedgerTransactionQuery) Offset(offset int) *LedgerTransactionQuery {
	ltq.ctx.Offset = &offset
	return ltq
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (ltq *LedgerTransactionQuery) Unique(unique bool) *LedgerTransactionQuery {
	ltq.ctx.Unique = &unique
	return ltq
}

// Order specifies how the records should be ordered.
func (ltq *LedgerTransactionQuery) Order(o ...ledgertransaction.OrderOption) *LedgerTransactionQuery {
	ltq.order = append(ltq.order, o...)
	return ltq
}

// QueryAccount chains the current query on the "account" edge.
func (ltq *LedgerTransactionQuery) QueryAccount() *VirtualAccountQuery {
	query := (&VirtualAccountClient{config: ltq.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := ltq.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := ltq.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(ledgertransaction.Table, ledgertransaction.FieldID, selector),
			sqlgraph.To(virtualaccount.Table, virtualaccount.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ledgertransaction.AccountTable, ledgertransaction.AccountColumn),
		)
		fromU = sqlgraph.SetNeighbors(ltq.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first LedgerTransaction entity from the query.
// Returns a *NotFoundError when no LedgerTransaction was found.
func (ltq *LedgerTransactionQuery) First(ctx context.Context) (*LedgerTransaction, error) {
	nodes, err := ltq.Limit(1).All(setContextOp(ctx, ltq.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{ledgertransaction.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (ltq *LedgerTransactionQuery) FirstX(ctx context.Context) *LedgerTransaction {
	node, err := ltq.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first LedgerTransaction ID from the query.
// Returns a *NotFoundError when no LedgerTransaction ID was found.
func (ltq *LedgerTransactionQuery) FirstID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = ltq.Limit(1).IDs(setContextOp(ctx, ltq.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{ledgertransaction.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (ltq *LedgerTransactionQuery) FirstIDX(ctx context.Context) uuid.UUID {
	id, err := ltq.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single LedgerTransaction entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one LedgerTransaction entity is found.
// Returns a *NotFoundError when no LedgerTransaction entities are found.
func (ltq *LedgerTransactionQuery) Only(ctx context.Context) (*LedgerTransaction, error) {
	nodes, err := ltq.Limit(2).All(setContextOp(ctx, ltq.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{ledgertransaction.Label}
	default:
		return nil, &NotSingularError{ledgertransaction.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (ltq *LedgerTransactionQuery) OnlyX(ctx context.Context) *LedgerTransaction {
	node, err := ltq.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only LedgerTransaction ID in the query.
// Returns a *NotSingularError when more than one LedgerTransaction ID is found.
// Returns a *NotFoundError when no entities are found.
func (ltq *LedgerTransactionQuery) OnlyID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = ltq.Limit(2).IDs(setContextOp(ctx, ltq.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{ledgertransaction.Label}
	default:
		err = &NotSingularError{ledgertransaction.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (ltq *LedgerTransactionQuery) OnlyIDX(ctx context.Context) uuid.UUID {
	id, err := ltq.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of LedgerTransactions.
func (ltq *LedgerTransactionQuery) All(ctx context.Context) ([]*LedgerTransaction, error) {
	ctx = setContextOp(ctx, ltq.ctx, ent.OpQueryAll)
	if err := ltq.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*LedgerTransaction, *LedgerTransactionQuery]()
	return withInterceptors[[]*LedgerTransaction](ctx, ltq, qr, ltq.inters)
}

// AllX is like All, but panics if an error occurs.
func (ltq *LedgerTransactionQuery) AllX(ctx context.Context) []*LedgerTransaction {
	nodes, err := ltq.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of LedgerTransaction IDs.
func (ltq *LedgerTransactionQuery) IDs(ctx context.Context) (ids []uuid.UUID, err error) {
	if ltq.ctx.Unique == nil && ltq.path != nil {
		ltq.Unique(true)
	}
	ctx = setContextOp(ctx, ltq.ctx, ent.OpQueryIDs)
	if err = ltq.Select(ledgertransaction.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (ltq *LedgerTransactionQuery) IDsX(ctx context.Context) []uuid.UUID {
	ids, err := ltq.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (ltq *LedgerTransactionQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, ltq.ctx, ent.OpQueryCount)
	if err := ltq.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, ltq, querierCount[*LedgerTransactionQuery](), ltq.inters)
}

// CountX is like Count, but panics if an error occurs.
func (ltq *LedgerTransactionQuery) CountX(ctx context.Context) int {
	count, err := ltq.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (ltq *LedgerTransactionQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, ltq.ctx, ent.OpQueryExist)
	switch _, err := ltq.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (ltq *LedgerTransactionQuery) ExistX(ctx context.Context) bool {
	exist, err := ltq.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the LedgerTransactionQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (ltq *LedgerTransactionQuery) Clone() *LedgerTransactionQuery {
	if ltq == nil {
		return nil
	}
	return &LedgerTransactionQuery{
		config:      ltq.config,
		ctx:         ltq.ctx.Clone(),
		order:       append([]ledgertransaction.OrderOption{}, ltq.order...),
		inters:      append([]Interceptor{}, ltq.inters...),
		predicates:  append([]predicate.LedgerTransaction{}, ltq.predicates...),
		withAccount: ltq.withAccount.Clone(),
		// clone intermediate query.
		sql:  ltq.sql.Clone(),
		path: ltq.path,
	}
}

// WithAccount tells the query-builder to eager-load the nodes that are connected to
// the "account" edge. The optional arguments are used to configure the query builder of the edge.
func (ltq *LedgerTransactionQuery) WithAccount(opts ...func(*VirtualAccountQuery)) *LedgerTransactionQuery {
	query := (&VirtualAccountClient{config: ltq.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	ltq.withAccount = query
	return ltq
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		ExternalTxID string `json:"external_tx_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.LedgerTransaction.Query().
//		GroupBy(ledgertransaction.FieldExternalTxID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (ltq *LedgerTransactionQuery) GroupBy(field string, fields ...string) *LedgerTransactionGroupBy {
	ltq.ctx.Fields = append([]string{field}, fields...)
	grbuild := &LedgerTransactionGroupBy{build: ltq}
	grbuild.flds = &ltq.ctx.Fields
	grbuild.label = ledgertransaction.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		ExternalTxID string `json:"external_tx_id,omitempty"`
//	}
//
//	client.LedgerTransaction.Query().
//		Select(ledgertransaction.FieldExternalTxID).
//		Scan(ctx, &v)
func (ltq *LedgerTransactionQuery) Select(fields ...string) *LedgerTransactionSelect {
	ltq.ctx.Fields = append(ltq.ctx.Fields, fields...)
	sbuild := &LedgerTransactionSelect{LedgerTransactionQuery: ltq}
	sbuild.label = ledgertransaction.Label
	sbuild.flds, sbuild.scan = &ltq.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a LedgerTransactionSelect configured with the given aggregations.
func (ltq *LedgerTransactionQuery) Aggregate(fns ...AggregateFunc) *LedgerTransactionSelect {
	return ltq.Select().Aggregate(fns...)
}

func (ltq *LedgerTransactionQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range ltq.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, ltq); err != nil {
				return err
			}
		}
	}
	for _, f := range ltq.ctx.Fields {
		if !ledgertransaction.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if ltq.path != nil {
		prev, err := ltq.path(ctx)
		if err != nil {
			return err
		}
		ltq.sql = prev
	}
	return nil
}

func (ltq *LedgerTransactionQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*LedgerTransaction, error) {
	var (
		nodes       = []*LedgerTransaction{}
		withFKs     = ltq.withFKs
		_spec       = ltq.querySpec()
		loadedTypes = [1]bool{
			ltq.withAccount != nil,
		}
	)
	if ltq.withAccount != nil {
		withFKs = true
	}
	if withFKs {
		_spec.Node.Columns = append(_spec.Node.Columns, ledgertransaction.ForeignKeys...)
	}
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*LedgerTransaction).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &LedgerTransaction{config: ltq.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, ltq.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := ltq.withAccount; query != nil {
		if err := ltq.loadAccount(ctx, query, nodes, nil,
			func(n *LedgerTransaction, e *VirtualAccount) { n.Edges.Account = e }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (ltq *LedgerTransactionQuery) loadAccount(ctx context.Context, query *VirtualAccountQuery, nodes []*LedgerTransaction, init func(*LedgerTransaction), assign func(*LedgerTransaction, *VirtualAccount)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*LedgerTransaction)
	for i := range nodes {
		if nodes[i].virtual_account_transactions == nil {
			continue
		}
		fk := *nodes[i].virtual_account_transactions
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(virtualaccount.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "virtual_account_transactions" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}

func (ltq *LedgerTransactionQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := ltq.querySpec()
	_spec.Node.Columns = ltq.ctx.Fields
	if len(ltq.ctx.Fields) > 0 {
		_spec.Unique = ltq.ctx.Unique != nil && *ltq.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, ltq.driver, _spec)
}

func (ltq *LedgerTransactionQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(ledgertransaction.Table, ledgertransaction.Columns, sqlgraph.NewFieldSpec(ledgertransaction.FieldID, field.TypeUUID))
	_spec.From = ltq.sql
	if unique := ltq.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if ltq.path != nil {
		_spec.Unique = true
	}
	if fields := ltq.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, ledgertransaction.FieldID)
		for i := range fields {
			if fields[i] != ledgertransaction.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
	}
	if ps := ltq.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := ltq.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := ltq.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := ltq.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (ltq *LedgerTransactionQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(ltq.driver.Dialect())
	t1 := builder.Table(ledgertransaction.Table)
	columns := ltq.ctx.Fields
	if len(columns) == 0 {
		columns = ledgertransaction.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if ltq.sql != nil {
		selector = ltq.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if ltq.ctx.Unique != nil && *ltq.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range ltq.predicates {
		p(selector)
	}
	for _, p := range ltq.order {
		p(selector)
	}
	if offset := ltq.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := ltq.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// LedgerTransactionGroupBy is the group-by builder for LedgerTransaction entities.
type LedgerTransactionGroupBy struct {
	selector
	build *LedgerTransactionQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (ltgb *LedgerTransactionGroupBy) Aggregate(fns ...AggregateFunc) *LedgerTransactionGroupBy {
	ltgb.fns = append(ltgb.fns, fns...)
	return ltgb
}

// Scan applies the selector query and scans the result into the given value.
func (ltgb *LedgerTransactionGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, ltgb.build.ctx, ent.OpQueryGroupBy)
	if err := ltgb.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*LedgerTransactionQuery, *LedgerTransactionGroupBy](ctx, ltgb.build, ltgb, ltgb.build.inters, v)
}

func (ltgb *LedgerTransactionGroupBy) sqlScan(ctx context.Context, root *LedgerTransactionQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(ltgb.fns))
	for _, fn := range ltgb.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*ltgb.flds)+len(ltgb.fns))
		for _, f := range *ltgb.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*ltgb.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := ltgb.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// LedgerTransactionSelect is the builder for selecting fields of LedgerTransaction entities.
type LedgerTransactionSelect struct {
	*LedgerTransactionQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (lts *LedgerTransactionSelect) Aggregate(fns ...AggregateFunc) *LedgerTransactionSelect {
	lts.fns = append(lts.fns, fns...)
	return lts
}

// Scan applies the selector query and scans the result into the given value.
func (lts *LedgerTransactionSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, lts.ctx, ent.OpQuerySelect)
	if err := lts.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*LedgerTransactionQuery, *LedgerTransactionSelect](ctx, lts.LedgerTransactionQuery, lts, lts.inters, v)
}

func (lts *LedgerTransactionSelect) sqlScan(ctx context.Context, root *LedgerTransactionQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(lts.fns))
	for _, fn := range lts.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*lts.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := lts.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
