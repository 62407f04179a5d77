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
	"github.com/monibridge/core/ent/ledgertransaction"
	"github.com/monibridge/core/ent/predicate"
	"github.com/monibridge/core/ent/virtualaccount"
)

// VirtualAccountQuery is the builder for querying VirtualAccount entities.
type VirtualAccountQuery struct {
	config
	ctx              *QueryContext
	order            []virtualaccount.OrderOption
	inters           []Interceptor
	predicates       []predicate.VirtualAccount
	withTransactions *LedgerTransactionQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the VirtualAccountQuery builder.
func (vaq *VirtualAccountQuery) Where(ps ...predicate.VirtualAccount) *VirtualAccountQuery {
	vaq.predicates = append(vaq.predicates, ps...)
	return vaq
}

// Limit the number of records to be returned by this query.
func (vaq *VirtualAccountQuery) Limit(limit int) *VirtualAccountQuery {
	vaq.ctx.Limit = &limit
	return vaq
}

// Offset to start from.
func (vaq *VirtualAccountQuery) Offset(offset int) *VirtualAccountQuery {
	vaq.ctx.Offset = &offset
	return vaq
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (vaq *VirtualAccountQuery) Unique(unique bool) *VirtualAccountQuery {
	vaq.ctx.Unique = &unique
	return vaq
}

// Order specifies how the records should be ordered.
func (vaq *VirtualAccountQuery) Order(o ...virtualaccount.OrderOption) *VirtualAccountQuery {
	vaq.order = append(vaq.order, o...)
	return vaq
}

// QueryTransactions chains the current query on the "transactions" edge.
func (vaq *VirtualAccountQuery) QueryTransactions() *LedgerTransactionQuery {
	query := (&LedgerTransactionClient{config: vaq.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := vaq.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := vaq.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(virtualaccount.Table, virtualaccount.FieldID, selector),
			sqlgraph.To(ledgertransaction.Table, ledgertransaction.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, virtualaccount.TransactionsTable, virtualaccount.TransactionsColumn),
		)
		fromU = sqlgraph.SetNeighbors(vaq.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first VirtualAccount entity from the query.
// Returns a *NotFoundError when no VirtualAccount was found.
func (vaq *VirtualAccountQuery) First(ctx context.Context) (*VirtualAccount, error) {
	nodes, err := vaq.Limit(1).All(setContextOp(ctx, vaq.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{virtualaccount.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (vaq *VirtualAccountQuery) FirstX(ctx context.Context) *VirtualAccount {
	node, err := vaq.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first VirtualAccount ID from the query.
// Returns a *NotFoundError when no VirtualAccount ID was found.
func (vaq *VirtualAccountQuery) FirstID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = vaq.Limit(1).IDs(setContextOp(ctx, vaq.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{virtualaccount.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (vaq *VirtualAccountQuery) FirstIDX(ctx context.Context) uuid.UUID {
	id, err := vaq.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single VirtualAccount entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one VirtualAccount entity is found.
// Returns a *NotFoundError when no VirtualAccount entities are found.
func (vaq *VirtualAccountQuery) Only(ctx context.Context) (*VirtualAccount, error) {
	nodes, err := vaq.Limit(2).All(setContextOp(ctx, vaq.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{virtualaccount.Label}
	default:
		return nil, &NotSingularError{virtualaccount.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (vaq *VirtualAccountQuery) OnlyX(ctx context.Context) *VirtualAccount {
	node, err := vaq.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only VirtualAccount ID in the query.
// Returns a *NotSingularError when more than one VirtualAccount ID is found.
// Returns a *NotFoundError when no entities are found.
func (vaq *VirtualAccountQuery) OnlyID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = vaq.Limit(2).IDs(setContextOp(ctx, vaq.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{virtualaccount.Label}
	default:
		err = &NotSingularError{virtualaccount.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (vaq *VirtualAccountQuery) OnlyIDX(ctx context.Context) uuid.UUID {
	id, err := vaq.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of VirtualAccounts.
func (vaq *VirtualAccountQuery) All(ctx context.Context) ([]*VirtualAccount, error) {
	ctx = setContextOp(ctx, vaq.ctx, ent.OpQueryAll)
	if err := vaq.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*VirtualAccount, *VirtualAccountQuery]()
	return withInterceptors[[]*VirtualAccount](ctx, vaq, qr, vaq.inters)
}

// AllX is like All, but panics if an error occurs.
func (vaq *VirtualAccountQuery) AllX(ctx context.Context) []*VirtualAccount {
	nodes, err := vaq.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of VirtualAccount IDs.
func (vaq *VirtualAccountQuery) IDs(ctx context.Context) (ids []uuid.UUID, err error) {
	if vaq.ctx.Unique == nil && vaq.path != nil {
		vaq.Unique(true)
	}
	ctx = setContextOp(ctx, vaq.ctx, ent.OpQueryIDs)
	if err = vaq.Select(virtualaccount.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (vaq *VirtualAccountQuery) IDsX(ctx context.Context) []uuid.UUID {
	ids, err := vaq.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (vaq *VirtualAccountQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, vaq.ctx, ent.OpQueryCount)
	if err := vaq.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, vaq, querierCount[*VirtualAccountQuery](), vaq.inters)
}

// CountX is like Count, but panics if an error occurs.
func (vaq *VirtualAccountQuery) CountX(ctx context.Context) int {
	count, err := vaq.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (vaq *VirtualAccountQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, vaq.ctx, ent.OpQueryExist)
	switch _, err := vaq.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (vaq *VirtualAccountQuery) ExistX(ctx context.Context) bool {
	exist, err := vaq.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the VirtualAccountQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (vaq *VirtualAccountQuery) Clone() *VirtualAccountQuery {
	if vaq == nil {
		return nil
	}
	return &VirtualAccountQuery{
		config:           vaq.config,
		ctx:              vaq.ctx.Clone(),
		order:            append([]virtualaccount.OrderOption{}, vaq.order...),
		inters:           append([]Interceptor{}, vaq.inters...),
		predicates:       append([]predicate.VirtualAccount{}, vaq.predicates...),
		withTransactions: vaq.withTransactions.Clone(),
		// clone intermediate query.
		sql:  vaq.sql.Clone(),
		path: vaq.path,
	}
}

// WithTransactions tells the query-builder to eager-load the nodes that are connected to
// the "transactions" edge. The optional arguments are used to configure the query builder of the edge.
func (vaq *VirtualAccountQuery) WithTransactions(opts ...func(*LedgerTransactionQuery)) *VirtualAccountQuery {
	query := (&LedgerTransactionClient{config: vaq.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	vaq.withTransactions = query
	return vaq
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		CreatedAt time.Time `json:"created_at,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.VirtualAccount.Query().
//		GroupBy(virtualaccount.FieldCreatedAt).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (vaq *VirtualAccountQuery) GroupBy(field string, fields ...string) *VirtualAccountGroupBy {
	vaq.ctx.Fields = append([]string{field}, fields...)
	grbuild := &VirtualAccountGroupBy{build: vaq}
	grbuild.flds = &vaq.ctx.Fields
	grbuild.label = virtualaccount.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		CreatedAt time.Time `json:"created_at,omitempty"`
//	}
//
//	client.VirtualAccount.Query().
//		Select(virtualaccount.FieldCreatedAt).
//		Scan(ctx, &v)
func (vaq *VirtualAccountQuery) Select(fields ...string) *VirtualAccountSelect {
	vaq.ctx.Fields = append(vaq.ctx.Fields, fields...)
	sbuild := &VirtualAccountSelect{VirtualAccountQuery: vaq}
	sbuild.label = virtualaccount.Label
	sbuild.flds, sbuild.scan = &vaq.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a VirtualAccountSelect configured with the given aggregations.
func (vaq *VirtualAccountQuery) Aggregate(fns ...AggregateFunc) *VirtualAccountSelect {
	return vaq.Select().Aggregate(fns...)
}

func (vaq *VirtualAccountQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range vaq.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, vaq); err != nil {
				return err
			}
		}
	}
	for _, f := range vaq.ctx.Fields {
		if !virtualaccount.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if vaq.path != nil {
		prev, err := vaq.path(ctx)
		if err != nil {
			return err
		}
		vaq.sql = prev
	}
	return nil
}

func (vaq *VirtualAccountQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*VirtualAccount, error) {
	var (
		nodes       = []*VirtualAccount{}
		_spec       = vaq.querySpec()
		loadedTypes = [1]bool{
			vaq.withTransactions != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*VirtualAccount).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &VirtualAccount{config: vaq.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, vaq.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := vaq.withTransactions; query != nil {
		if err := vaq.loadTransactions(ctx, query, nodes,
			func(n *VirtualAccount) { n.Edges.Transactions = []*LedgerTransaction{} },
			func(n *VirtualAccount, e *LedgerTransaction) { n.Edges.Transactions = append(n.Edges.Transactions, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (vaq *VirtualAccountQuery) loadTransactions(ctx context.Context, query *LedgerTransactionQuery, nodes []*VirtualAccount, init func(*VirtualAccount), assign func(*VirtualAccount, *LedgerTransaction)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[uuid.UUID]*VirtualAccount)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	query.withFKs = true
	query.Where(predicate.LedgerTransaction(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(virtualaccount.TransactionsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.virtual_account_transactions
		if fk == nil {
			return fmt.Errorf(`foreign-key "virtual_account_transactions" is nil for node %v`, n.ID)
		}
		node, ok := nodeids[*fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "virtual_account_transactions" returned %v for node %v`, *fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (vaq *VirtualAccountQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := vaq.querySpec()
	_spec.Node.Columns = vaq.ctx.Fields
	if len(vaq.ctx.Fields) > 0 {
		_spec.Unique = vaq.ctx.Unique != nil && *vaq.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, vaq.driver, _spec)
}

func (vaq *VirtualAccountQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(virtualaccount.Table, virtualaccount.Columns, sqlgraph.NewFieldSpec(virtualaccount.FieldID, field.TypeUUID))
	_spec.From = vaq.sql
	if unique := vaq.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if vaq.path != nil {
		_spec.Unique = true
	}
	if fields := vaq.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, virtualaccount.FieldID)
		for i := range fields {
			if fields[i] != virtualaccount.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
	}
	if ps := vaq.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := vaq.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := vaq.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := vaq.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (vaq *VirtualAccountQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(vaq.driver.Dialect())
	t1 := builder.Table(virtualaccount.Table)
	columns := vaq.ctx.Fields
	if len(columns) == 0 {
		columns = virtualaccount.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if vaq.sql != nil {
		selector = vaq.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if vaq.ctx.Unique != nil && *vaq.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range vaq.predicates {
		p(selector)
	}
	for _, p := range vaq.order {
		p(selector)
	}
	if offset := vaq.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := vaq.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// VirtualAccountGroupBy is the group-by builder for VirtualAccount entities.
type VirtualAccountGroupBy struct {
	selector
	build *VirtualAccountQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (vagb *VirtualAccountGroupBy) Aggregate(fns ...AggregateFunc) *VirtualAccountGroupBy {
	vagb.fns = append(vagb.fns, fns...)
	return vagb
}

// Scan applies the selector query and scans the result into the given value.
func (vagb *VirtualAccountGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, vagb.build.ctx, ent.OpQueryGroupBy)
	if err := vagb.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*VirtualAccountQuery, *VirtualAccountGroupBy](ctx, vagb.build, vagb, vagb.build.inters, v)
}

func (vagb *VirtualAccountGroupBy) sqlScan(ctx context.Context, root *VirtualAccountQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(vagb.fns))
	for _, fn := range vagb.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*vagb.flds)+len(vagb.fns))
		for _, f := range *vagb.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*vagb.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := vagb.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// VirtualAccountSelect is the builder for selecting fields of VirtualAccount entities.
type VirtualAccountSelect struct {
	*VirtualAccountQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (vas *VirtualAccountSelect) Aggregate(fns ...AggregateFunc) *VirtualAccountSelect {
	vas.fns = append(vas.fns, fns...)
	return vas
}

// Scan applies the selector query and scans the result into the given value.
func (vas *VirtualAccountSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, vas.ctx, ent.OpQuerySelect)
	if err := vas.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*VirtualAccountQuery, *VirtualAccountSelect](ctx, vas.VirtualAccountQuery, vas, vas.inters, v)
}

func (vas *VirtualAccountSelect) sqlScan(ctx context.Context, root *VirtualAccountQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(vas.fns))
	for _, fn := range vas.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*vas.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := vas.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
