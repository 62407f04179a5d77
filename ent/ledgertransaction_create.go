// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/monibridge/core/ent/ledgertransaction"
	"github.com/monibridge/core/ent/virtualaccount"
	"github.com/shopspring/decimal"
)

// LedgerTransactionCreate is the builder for creating a LedgerTransaction entity.
type LedgerTransactionCreate struct {
	config
	mutation *LedgerTransactionMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetExternalTxID sets the "external_tx_id" field.
func (ltc *LedgerTransactionCreate) SetExternalTxID(s string) *LedgerTransactionCreate {
	ltc.mutation.SetExternalTxID(s)
	return ltc
}

// SetType sets the "type" field.
func (ltc *LedgerTransactionCreate) SetType(l ledgertransaction.Type) *LedgerTransactionCreate {
	ltc.mutation.SetType(l)
	return ltc
}

// SetStatus sets the "status" field.
func (ltc *LedgerTransactionCreate) SetStatus(l ledgertransaction.Status) *LedgerTransactionCreate {
	ltc.mutation.SetStatus(l)
	return ltc
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (ltc *LedgerTransactionCreate) SetNillableStatus(l *ledgertransaction.Status) *LedgerTransactionCreate {
	if l != nil {
		ltc.SetStatus(*l)
	}
	return ltc
}

// SetAmount sets the "amount" field.
func (ltc *LedgerTransactionCreate) SetAmount(d decimal.Decimal) *LedgerTransactionCreate {
	ltc.mutation.SetAmount(d)
	return ltc
}

// SetCurrency sets the "currency" field.
func (ltc *LedgerTransactionCreate) SetCurrency(s string) *LedgerTransactionCreate {
	ltc.mutation.SetCurrency(s)
	return ltc
}

// SetReference sets the "reference" field.
func (ltc *LedgerTransactionCreate) SetReference(s string) *LedgerTransactionCreate {
	ltc.mutation.SetReference(s)
	return ltc
}

// SetNillableReference sets the "reference" field if the given value is not nil.
func (ltc *LedgerTransactionCreate) SetNillableReference(s *string) *LedgerTransactionCreate {
	if s != nil {
		ltc.SetReference(*s)
	}
	return ltc
}

// SetCounterpartyName sets the "counterparty_name" field.
func (ltc *LedgerTransactionCreate) SetCounterpartyName(s string) *LedgerTransactionCreate {
	ltc.mutation.SetCounterpartyName(s)
	return ltc
}

// SetNillableCounterpartyName sets the "counterparty_name" field if the given value is not nil.
func (ltc *LedgerTransactionCreate) SetNillableCounterpartyName(s *string) *LedgerTransactionCreate {
	if s != nil {
		ltc.SetCounterpartyName(*s)
	}
	return ltc
}

// SetCounterpartyIban sets the "counterparty_iban" field.
func (ltc *LedgerTransactionCreate) SetCounterpartyIban(s string) *LedgerTransactionCreate {
	ltc.mutation.SetCounterpartyIban(s)
	return ltc
}

// SetNillableCounterpartyIban sets the "counterparty_iban" field if the given value is not nil.
func (ltc *LedgerTransactionCreate) SetNillableCounterpartyIban(s *string) *LedgerTransactionCreate {
	if s != nil {
		ltc.SetCounterpartyIban(*s)
	}
	return ltc
}

// SetOrderRef sets the "order_ref" field.
func (ltc *LedgerTransactionCreate) SetOrderRef(s string) *LedgerTransactionCreate {
	ltc.mutation.SetOrderRef(s)
	return ltc
}

// SetNillableOrderRef sets the "order_ref" field if the given value is not nil.
func (ltc *LedgerTransactionCreate) SetNillableOrderRef(s *string) *LedgerTransactionCreate {
	if s != nil {
		ltc.SetOrderRef(*s)
	}
	return ltc
}

// SetProcessedAt sets the "processed_at" field.
func (ltc *LedgerTransactionCreate) SetProcessedAt(t time.Time) *LedgerTransactionCreate {
	ltc.mutation.SetProcessedAt(t)
	return ltc
}

// SetNillableProcessedAt sets the "processed_at" field if the given value is not nil.
func (ltc *LedgerTransactionCreate) SetNillableProcessedAt(t *time.Time) *LedgerTransactionCreate {
	if t != nil {
		ltc.SetProcessedAt(*t)
	}
	return ltc
}

// SetID sets the "id" field.
func (ltc *LedgerTransactionCreate) SetID(u uuid.UUID) *LedgerTransactionCreate {
	ltc.mutation.SetID(u)
	return ltc
}

// SetNillableID sets the "id" field if the given value is not nil.
func (ltc *LedgerTransactionCreate) SetNillableID(u *uuid.UUID) *LedgerTransactionCreate {
	if u != nil {
		ltc.SetID(*u)
	}
	return ltc
}

// SetAccountID sets the "account" edge to the VirtualAccount entity by ID.
func (ltc *LedgerTransactionCreate) SetAccountID(id uuid.UUID) *LedgerTransactionCreate {
	ltc.mutation.SetAccountID(id)
	return ltc
}

// SetAccount sets the "account" edge to the VirtualAccount entity.
func (ltc *LedgerTransactionCreate) SetAccount(v *VirtualAccount) *LedgerTransactionCreate {
	return ltc.SetAccountID(v.ID)
}

// Mutation returns the LedgerTransactionMutation object of the builder.
func (ltc *LedgerTransactionCreate) Mutation() *LedgerTransactionMutation {
	return ltc.mutation
}

// Save creates the LedgerTransaction in the database.
func (ltc *LedgerTransactionCreate) Save(ctx context.Context) (*LedgerTransaction, error) {
	ltc.defaults()
	return withHooks(ctx, ltc.sqlSave, ltc.mutation, ltc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (ltc *LedgerTransactionCreate) SaveX(ctx context.Context) *LedgerTransaction {
	v, err := ltc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (ltc *LedgerTransactionCreate) Exec(ctx context.Context) error {
	_, err := ltc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (ltc *LedgerTransactionCreate) ExecX(ctx context.Context) {
	if err := ltc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (ltc *LedgerTransactionCreate) defaults() {
	if _, ok := ltc.mutation.Status(); !ok {
		v := ledgertransaction.DefaultStatus
		ltc.mutation.SetStatus(v)
	}
	if _, ok := ltc.mutation.ProcessedAt(); !ok {
		v := ledgertransaction.DefaultProcessedAt()
		ltc.mutation.SetProcessedAt(v)
	}
	if _, ok := ltc.mutation.ID(); !ok {
		v := ledgertransaction.DefaultID()
		ltc.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (ltc *LedgerTransactionCreate) check() error {
	if _, ok := ltc.mutation.ExternalTxID(); !ok {
		return &ValidationError{Name: "external_tx_id", err: errors.New(`ent: missing required field "LedgerTransaction.external_tx_id"`)}
	}
	if _, ok := ltc.mutation.GetType(); !ok {
		return &ValidationError{Name: "type", err: errors.New(`ent: missing required field "LedgerTransaction.type"`)}
	}
	if v, ok := ltc.mutation.GetType(); ok {
		if err := ledgertransaction.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "LedgerTransaction.type": %w`, err)}
		}
	}
	if _, ok := ltc.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "LedgerTransaction.status"`)}
	}
	if v, ok := ltc.mutation.Status(); ok {
		if err := ledgertransaction.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "LedgerTransaction.status": %w`, err)}
		}
	}
	if _, ok := ltc.mutation.Amount(); !ok {
		return &ValidationError{Name: "amount", err: errors.New(`ent: missing required field "LedgerTransaction.amount"`)}
	}
	if _, ok := ltc.mutation.Currency(); !ok {
		return &ValidationError{Name: "currency", err: errors.New(`ent: missing required field "LedgerTransaction.currency"`)}
	}
	if v, ok := ltc.mutation.Currency(); ok {
		if err := ledgertransaction.CurrencyValidator(v); err != nil {
			return &ValidationError{Name: "currency", err: fmt.Errorf(`ent: validator failed for field "LedgerTransaction.currency": %w`, err)}
		}
	}
	if _, ok := ltc.mutation.ProcessedAt(); !ok {
		return &ValidationError{Name: "processed_at", err: errors.New(`ent: missing required field "LedgerTransaction.processed_at"`)}
	}
	if len(ltc.mutation.AccountIDs()) == 0 {
		return &ValidationError{Name: "account", err: errors.New(`ent: missing required edge "LedgerTransaction.account"`)}
	}
	return nil
}

func (ltc *LedgerTransactionCreate) sqlSave(ctx context.Context) (*LedgerTransaction, error) {
	if err := ltc.check(); err != nil {
		return nil, err
	}
	_node, _spec := ltc.createSpec()
	if err := sqlgraph.CreateNode(ctx, ltc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	ltc.mutation.id = &_node.ID
	ltc.mutation.done = true
	return _node, nil
}

func (ltc *LedgerTransactionCreate) createSpec() (*LedgerTransaction, *sqlgraph.CreateSpec) {
	var (
		_node = &LedgerTransaction{config: ltc.config}
		_spec = sqlgraph.NewCreateSpec(ledgertransaction.Table, sqlgraph.NewFieldSpec(ledgertransaction.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = ltc.conflict
	if id, ok := ltc.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := ltc.mutation.ExternalTxID(); ok {
		_spec.SetField(ledgertransaction.FieldExternalTxID, field.TypeString, value)
		_node.ExternalTxID = value
	}
	if value, ok := ltc.mutation.GetType(); ok {
		_spec.SetField(ledgertransaction.FieldType, field.TypeEnum, value)
		_node.Type = value
	}
	if value, ok := ltc.mutation.Status(); ok {
		_spec.SetField(ledgertransaction.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := ltc.mutation.Amount(); ok {
		_spec.SetField(ledgertransaction.FieldAmount, field.TypeFloat64, value)
		_node.Amount = value
	}
	if value, ok := ltc.mutation.Currency(); ok {
		_spec.SetField(ledgertransaction.FieldCurrency, field.TypeString, value)
		_node.Currency = value
	}
	if value, ok := ltc.mutation.Reference(); ok {
		_spec.SetField(ledgertransaction.FieldReference, field.TypeString, value)
		_node.Reference = value
	}
	if value, ok := ltc.mutation.CounterpartyName(); ok {
		_spec.SetField(ledgertransaction.FieldCounterpartyName, field.TypeString, value)
		_node.CounterpartyName = value
	}
	if value, ok := ltc.mutation.CounterpartyIban(); ok {
		_spec.SetField(ledgertransaction.FieldCounterpartyIban, field.TypeString, value)
		_node.CounterpartyIban = value
	}
	if value, ok := ltc.mutation.OrderRef(); ok {
		_spec.SetField(ledgertransaction.FieldOrderRef, field.TypeString, value)
		_node.OrderRef = value
	}
	if value, ok := ltc.mutation.ProcessedAt(); ok {
		_spec.SetField(ledgertransaction.FieldProcessedAt, field.TypeTime, value)
		_node.ProcessedAt = value
	}
	if nodes := ltc.mutation.AccountIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   ledgertransaction.AccountTable,
			Columns: []string{ledgertransaction.AccountColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(virtualaccount.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.virtual_account_transactions = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.LedgerTransaction.Create().
//		SetExternalTxID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.LedgerTransactionUpsert) {
//			SetExternalTxID(v+v).
//		}).
//		Exec(ctx)
func (ltc *LedgerTransactionCreate) OnConflict(opts ...sql.ConflictOption) *LedgerTransactionUpsertOne {
	ltc.conflict = opts
	return &LedgerTransactionUpsertOne{
		create: ltc,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.LedgerTransaction.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (ltc *LedgerTransactionCreate) OnConflictColumns(columns ...string) *LedgerTransactionUpsertOne {
	ltc.conflict = append(ltc.conflict, sql.ConflictColumns(columns...))
	return &LedgerTransactionUpsertOne{
		create: ltc,
	}
}

type (
	// LedgerTransactionUpsertOne is the builder for "upsert"-ing
	//  one LedgerTransaction node.
	LedgerTransactionUpsertOne struct {
		create *LedgerTransactionCreate
	}

	// LedgerTransactionUpsert is the "OnConflict" setter.
	LedgerTransactionUpsert struct {
		*sql.UpdateSet
	}
)

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.LedgerTransaction.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(ledgertransaction.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *LedgerTransactionUpsertOne) UpdateNewValues() *LedgerTransactionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(ledgertransaction.FieldID)
		}
		if _, exists := u.create.mutation.ExternalTxID(); exists {
			s.SetIgnore(ledgertransaction.FieldExternalTxID)
		}
		if _, exists := u.create.mutation.GetType(); exists {
			s.SetIgnore(ledgertransaction.FieldType)
		}
		if _, exists := u.create.mutation.Status(); exists {
			s.SetIgnore(ledgertransaction.FieldStatus)
		}
		if _, exists := u.create.mutation.Amount(); exists {
			s.SetIgnore(ledgertransaction.FieldAmount)
		}
		if _, exists := u.create.mutation.Currency(); exists {
			s.SetIgnore(ledgertransaction.FieldCurrency)
		}
		if _, exists := u.create.mutation.Reference(); exists {
			s.SetIgnore(ledgertransaction.FieldReference)
		}
		if _, exists := u.create.mutation.CounterpartyName(); exists {
			s.SetIgnore(ledgertransaction.FieldCounterpartyName)
		}
		if _, exists := u.create.mutation.CounterpartyIban(); exists {
			s.SetIgnore(ledgertransaction.FieldCounterpartyIban)
		}
		if _, exists := u.create.mutation.OrderRef(); exists {
			s.SetIgnore(ledgertransaction.FieldOrderRef)
		}
		if _, exists := u.create.mutation.ProcessedAt(); exists {
			s.SetIgnore(ledgertransaction.FieldProcessedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.LedgerTransaction.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *LedgerTransactionUpsertOne) Ignore() *LedgerTransactionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *LedgerTransactionUpsertOne) DoNothing() *LedgerTransactionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the LedgerTransactionCreate.OnConflict
// documentation for more info.
func (u *LedgerTransactionUpsertOne) Update(set func(*LedgerTransactionUpsert)) *LedgerTransactionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&LedgerTransactionUpsert{UpdateSet: update})
	}))
	return u
}

// Exec executes the query.
func (u *LedgerTransactionUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for LedgerTransactionCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *LedgerTransactionUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *LedgerTransactionUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: LedgerTransactionUpsertOne.ID is not supported by MySQL driver. Use LedgerTransactionUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *LedgerTransactionUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// LedgerTransactionCreateBulk is the builder for creating many LedgerTransaction entities in bulk.
type LedgerTransactionCreateBulk struct {
	config
	err      error
	builders []*LedgerTransactionCreate
	conflict []sql.ConflictOption
}

// Save creates the LedgerTransaction entities in the database.
func (ltcb *LedgerTransactionCreateBulk) Save(ctx context.Context) ([]*LedgerTransaction, error) {
	if ltcb.err != nil {
		return nil, ltcb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(ltcb.builders))
	nodes := make([]*LedgerTransaction, len(ltcb.builders))
	mutators := make([]Mutator, len(ltcb.builders))
	for i := range ltcb.builders {
		func(i int, root context.Context) {
			builder := ltcb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LedgerTransactionMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, ltcb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = ltcb.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, ltcb.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, ltcb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (ltcb *LedgerTransactionCreateBulk) SaveX(ctx context.Context) []*LedgerTransaction {
	v, err := ltcb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (ltcb *LedgerTransactionCreateBulk) Exec(ctx context.Context) error {
	_, err := ltcb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (ltcb *LedgerTransactionCreateBulk) ExecX(ctx context.Context) {
	if err := ltcb.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.LedgerTransaction.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.LedgerTransactionUpsert) {
//			SetExternalTxID(v+v).
//		}).
//		Exec(ctx)
func (ltcb *LedgerTransactionCreateBulk) OnConflict(opts ...sql.ConflictOption) *LedgerTransactionUpsertBulk {
	ltcb.conflict = opts
	return &LedgerTransactionUpsertBulk{
		create: ltcb,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.LedgerTransaction.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (ltcb *LedgerTransactionCreateBulk) OnConflictColumns(columns ...string) *LedgerTransactionUpsertBulk {
	ltcb.conflict = append(ltcb.conflict, sql.ConflictColumns(columns...))
	return &LedgerTransactionUpsertBulk{
		create: ltcb,
	}
}

// LedgerTransactionUpsertBulk is the builder for "upsert"-ing
// a bulk of LedgerTransaction nodes.
type LedgerTransactionUpsertBulk struct {
	create *LedgerTransactionCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.LedgerTransaction.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(ledgertransaction.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *LedgerTransactionUpsertBulk) UpdateNewValues() *LedgerTransactionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(ledgertransaction.FieldID)
			}
			if _, exists := b.mutation.ExternalTxID(); exists {
				s.SetIgnore(ledgertransaction.FieldExternalTxID)
			}
			if _, exists := b.mutation.GetType(); exists {
				s.SetIgnore(ledgertransaction.FieldType)
			}
			if _, exists := b.mutation.Status(); exists {
				s.SetIgnore(ledgertransaction.FieldStatus)
			}
			if _, exists := b.mutation.Amount(); exists {
				s.SetIgnore(ledgertransaction.FieldAmount)
			}
			if _, exists := b.mutation.Currency(); exists {
				s.SetIgnore(ledgertransaction.FieldCurrency)
			}
			if _, exists := b.mutation.Reference(); exists {
				s.SetIgnore(ledgertransaction.FieldReference)
			}
			if _, exists := b.mutation.CounterpartyName(); exists {
				s.SetIgnore(ledgertransaction.FieldCounterpartyName)
			}
			if _, exists := b.mutation.CounterpartyIban(); exists {
				s.SetIgnore(ledgertransaction.FieldCounterpartyIban)
			}
			if _, exists := b.mutation.OrderRef(); exists {
				s.SetIgnore(ledgertransaction.FieldOrderRef)
			}
			if _, exists := b.mutation.ProcessedAt(); exists {
				s.SetIgnore(ledgertransaction.FieldProcessedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.LedgerTransaction.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *LedgerTransactionUpsertBulk) Ignore() *LedgerTransactionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *LedgerTransactionUpsertBulk) DoNothing() *LedgerTransactionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the LedgerTransactionCreateBulk.OnConflict
// documentation for more info.
func (u *LedgerTransactionUpsertBulk) Update(set func(*LedgerTransactionUpsert)) *LedgerTransactionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&LedgerTransactionUpsert{UpdateSet: update})
	}))
	return u
}

// Exec executes the query.
func (u *LedgerTransactionUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the LedgerTransactionCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for LedgerTransactionCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *LedgerTransactionUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
