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

// VirtualAccountCreate is the builder for creating a VirtualAccount entity.
type VirtualAccountCreate struct {
	config
	mutation *VirtualAccountMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (vac *VirtualAccountCreate) SetCreatedAt(t time.Time) *VirtualAccountCreate {
	vac.mutation.SetCreatedAt(t)
	return vac
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (vac *VirtualAccountCreate) SetNillableCreatedAt(t *time.Time) *VirtualAccountCreate {
	if t != nil {
		vac.SetCreatedAt(*t)
	}
	return vac
}

// SetUpdatedAt sets the "updated_at" field.
func (vac *VirtualAccountCreate) SetUpdatedAt(t time.Time) *VirtualAccountCreate {
	vac.mutation.SetUpdatedAt(t)
	return vac
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (vac *VirtualAccountCreate) SetNillableUpdatedAt(t *time.Time) *VirtualAccountCreate {
	if t != nil {
		vac.SetUpdatedAt(*t)
	}
	return vac
}

// SetUserID sets the "user_id" field.
func (vac *VirtualAccountCreate) SetUserID(u uuid.UUID) *VirtualAccountCreate {
	vac.mutation.SetUserID(u)
	return vac
}

// SetProviderAccountID sets the "provider_account_id" field.
func (vac *VirtualAccountCreate) SetProviderAccountID(s string) *VirtualAccountCreate {
	vac.mutation.SetProviderAccountID(s)
	return vac
}

// SetNillableProviderAccountID sets the "provider_account_id" field if the given value is not nil.
func (vac *VirtualAccountCreate) SetNillableProviderAccountID(s *string) *VirtualAccountCreate {
	if s != nil {
		vac.SetProviderAccountID(*s)
	}
	return vac
}

// SetIban sets the "iban" field.
func (vac *VirtualAccountCreate) SetIban(s string) *VirtualAccountCreate {
	vac.mutation.SetIban(s)
	return vac
}

// SetNillableIban sets the "iban" field if the given value is not nil.
func (vac *VirtualAccountCreate) SetNillableIban(s *string) *VirtualAccountCreate {
	if s != nil {
		vac.SetIban(*s)
	}
	return vac
}

// SetBic sets the "bic" field.
func (vac *VirtualAccountCreate) SetBic(s string) *VirtualAccountCreate {
	vac.mutation.SetBic(s)
	return vac
}

// SetNillableBic sets the "bic" field if the given value is not nil.
func (vac *VirtualAccountCreate) SetNillableBic(s *string) *VirtualAccountCreate {
	if s != nil {
		vac.SetBic(*s)
	}
	return vac
}

// SetBankName sets the "bank_name" field.
func (vac *VirtualAccountCreate) SetBankName(s string) *VirtualAccountCreate {
	vac.mutation.SetBankName(s)
	return vac
}

// SetNillableBankName sets the "bank_name" field if the given value is not nil.
func (vac *VirtualAccountCreate) SetNillableBankName(s *string) *VirtualAccountCreate {
	if s != nil {
		vac.SetBankName(*s)
	}
	return vac
}

// SetCurrency sets the "currency" field.
func (vac *VirtualAccountCreate) SetCurrency(s string) *VirtualAccountCreate {
	vac.mutation.SetCurrency(s)
	return vac
}

// SetBalance sets the "balance" field.
func (vac *VirtualAccountCreate) SetBalance(d decimal.Decimal) *VirtualAccountCreate {
	vac.mutation.SetBalance(d)
	return vac
}

// SetStatus sets the "status" field.
func (vac *VirtualAccountCreate) SetStatus(v virtualaccount.Status) *VirtualAccountCreate {
	vac.mutation.SetStatus(v)
	return vac
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (vac *VirtualAccountCreate) SetNillableStatus(v *virtualaccount.Status) *VirtualAccountCreate {
	if v != nil {
		vac.SetStatus(*v)
	}
	return vac
}

// SetLastBalanceUpdate sets the "last_balance_update" field.
func (vac *VirtualAccountCreate) SetLastBalanceUpdate(t time.Time) *VirtualAccountCreate {
	vac.mutation.SetLastBalanceUpdate(t)
	return vac
}

// SetNillableLastBalanceUpdate sets the "last_balance_update" field if the given value is not nil.
func (vac *VirtualAccountCreate) SetNillableLastBalanceUpdate(t *time.Time) *VirtualAccountCreate {
	if t != nil {
		vac.SetLastBalanceUpdate(*t)
	}
	return vac
}

// SetMetadata sets the "metadata" field.
func (vac *VirtualAccountCreate) SetMetadata(m map[string]interface{}) *VirtualAccountCreate {
	vac.mutation.SetMetadata(m)
	return vac
}

// SetID sets the "id" field.
func (vac *VirtualAccountCreate) SetID(u uuid.UUID) *VirtualAccountCreate {
	vac.mutation.SetID(u)
	return vac
}

// SetNillableID sets the "id" field if the given value is not nil.
func (vac *VirtualAccountCreate) SetNillableID(u *uuid.UUID) *VirtualAccountCreate {
	if u != nil {
		vac.SetID(*u)
	}
	return vac
}

// AddTransactionIDs adds the "transactions" edge to the LedgerTransaction entity by IDs.
func (vac *VirtualAccountCreate) AddTransactionIDs(ids ...uuid.UUID) *VirtualAccountCreate {
	vac.mutation.AddTransactionIDs(ids...)
	return vac
}

// AddTransactions adds the "transactions" edges to the LedgerTransaction entity.
func (vac *VirtualAccountCreate) AddTransactions(l ...*LedgerTransaction) *VirtualAccountCreate {
	ids := make([]uuid.UUID, len(l))
	for i := range l {
		ids[i] = l[i].ID
	}
	return vac.AddTransactionIDs(ids...)
}

// Mutation returns the VirtualAccountMutation object of the builder.
func (vac *VirtualAccountCreate) Mutation() *VirtualAccountMutation {
	return vac.mutation
}

// Save creates the VirtualAccount in the database.
func (vac *VirtualAccountCreate) Save(ctx context.Context) (*VirtualAccount, error) {
	vac.defaults()
	return withHooks(ctx, vac.sqlSave, vac.mutation, vac.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (vac *VirtualAccountCreate) SaveX(ctx context.Context) *VirtualAccount {
	v, err := vac.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (vac *VirtualAccountCreate) Exec(ctx context.Context) error {
	_, err := vac.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (vac *VirtualAccountCreate) ExecX(ctx context.Context) {
	if err := vac.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (vac *VirtualAccountCreate) defaults() {
	if _, ok := vac.mutation.CreatedAt(); !ok {
		v := virtualaccount.DefaultCreatedAt()
		vac.mutation.SetCreatedAt(v)
	}
	if _, ok := vac.mutation.UpdatedAt(); !ok {
		v := virtualaccount.DefaultUpdatedAt()
		vac.mutation.SetUpdatedAt(v)
	}
	if _, ok := vac.mutation.Status(); !ok {
		v := virtualaccount.DefaultStatus
		vac.mutation.SetStatus(v)
	}
	if _, ok := vac.mutation.ID(); !ok {
		v := virtualaccount.DefaultID()
		vac.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (vac *VirtualAccountCreate) check() error {
	if _, ok := vac.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "VirtualAccount.created_at"`)}
	}
	if _, ok := vac.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "VirtualAccount.updated_at"`)}
	}
	if _, ok := vac.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "VirtualAccount.user_id"`)}
	}
	if _, ok := vac.mutation.Currency(); !ok {
		return &ValidationError{Name: "currency", err: errors.New(`ent: missing required field "VirtualAccount.currency"`)}
	}
	if v, ok := vac.mutation.Currency(); ok {
		if err := virtualaccount.CurrencyValidator(v); err != nil {
			return &ValidationError{Name: "currency", err: fmt.Errorf(`ent: validator failed for field "VirtualAccount.currency": %w`, err)}
		}
	}
	if _, ok := vac.mutation.Balance(); !ok {
		return &ValidationError{Name: "balance", err: errors.New(`ent: missing required field "VirtualAccount.balance"`)}
	}
	if _, ok := vac.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "VirtualAccount.status"`)}
	}
	if v, ok := vac.mutation.Status(); ok {
		if err := virtualaccount.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "VirtualAccount.status": %w`, err)}
		}
	}
	return nil
}

func (vac *VirtualAccountCreate) sqlSave(ctx context.Context) (*VirtualAccount, error) {
	if err := vac.check(); err != nil {
		return nil, err
	}
	_node, _spec := vac.createSpec()
	if err := sqlgraph.CreateNode(ctx, vac.driver, _spec); err != nil {
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
	vac.mutation.id = &_node.ID
	vac.mutation.done = true
	return _node, nil
}

func (vac *VirtualAccountCreate) createSpec() (*VirtualAccount, *sqlgraph.CreateSpec) {
	var (
		_node = &VirtualAccount{config: vac.config}
		_spec = sqlgraph.NewCreateSpec(virtualaccount.Table, sqlgraph.NewFieldSpec(virtualaccount.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = vac.conflict
	if id, ok := vac.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := vac.mutation.CreatedAt(); ok {
		_spec.SetField(virtualaccount.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := vac.mutation.UpdatedAt(); ok {
		_spec.SetField(virtualaccount.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := vac.mutation.UserID(); ok {
		_spec.SetField(virtualaccount.FieldUserID, field.TypeUUID, value)
		_node.UserID = value
	}
	if value, ok := vac.mutation.ProviderAccountID(); ok {
		_spec.SetField(virtualaccount.FieldProviderAccountID, field.TypeString, value)
		_node.ProviderAccountID = value
	}
	if value, ok := vac.mutation.Iban(); ok {
		_spec.SetField(virtualaccount.FieldIban, field.TypeString, value)
		_node.Iban = value
	}
	if value, ok := vac.mutation.Bic(); ok {
		_spec.SetField(virtualaccount.FieldBic, field.TypeString, value)
		_node.Bic = value
	}
	if value, ok := vac.mutation.BankName(); ok {
		_spec.SetField(virtualaccount.FieldBankName, field.TypeString, value)
		_node.BankName = value
	}
	if value, ok := vac.mutation.Currency(); ok {
		_spec.SetField(virtualaccount.FieldCurrency, field.TypeString, value)
		_node.Currency = value
	}
	if value, ok := vac.mutation.Balance(); ok {
		_spec.SetField(virtualaccount.FieldBalance, field.TypeFloat64, value)
		_node.Balance = value
	}
	if value, ok := vac.mutation.Status(); ok {
		_spec.SetField(virtualaccount.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := vac.mutation.LastBalanceUpdate(); ok {
		_spec.SetField(virtualaccount.FieldLastBalanceUpdate, field.TypeTime, value)
		_node.LastBalanceUpdate = value
	}
	if value, ok := vac.mutation.Metadata(); ok {
		_spec.SetField(virtualaccount.FieldMetadata, field.TypeJSON, value)
		_node.Metadata = value
	}
	if nodes := vac.mutation.TransactionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   virtualaccount.TransactionsTable,
			Columns: []string{virtualaccount.TransactionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(ledgertransaction.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.VirtualAccount.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.VirtualAccountUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (vac *VirtualAccountCreate) OnConflict(opts ...sql.ConflictOption) *VirtualAccountUpsertOne {
	vac.conflict = opts
	return &VirtualAccountUpsertOne{
		create: vac,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.VirtualAccount.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (vac *VirtualAccountCreate) OnConflictColumns(columns ...string) *VirtualAccountUpsertOne {
	vac.conflict = append(vac.conflict, sql.ConflictColumns(columns...))
	return &VirtualAccountUpsertOne{
		create: vac,
	}
}

type (
	// VirtualAccountUpsertOne is the builder for "upsert"-ing
	//  one VirtualAccount node.
	VirtualAccountUpsertOne struct {
		create *VirtualAccountCreate
	}

	// VirtualAccountUpsert is the "OnConflict" setter.
	VirtualAccountUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *VirtualAccountUpsert) SetUpdatedAt(v time.Time) *VirtualAccountUpsert {
	u.Set(virtualaccount.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *VirtualAccountUpsert) UpdateUpdatedAt() *VirtualAccountUpsert {
	u.SetExcluded(virtualaccount.FieldUpdatedAt)
	return u
}

// SetUserID sets the "user_id" field.
func (u *VirtualAccountUpsert) SetUserID(v uuid.UUID) *VirtualAccountUpsert {
	u.Set(virtualaccount.FieldUserID, v)
	return u
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *VirtualAccountUpsert) UpdateUserID() *VirtualAccountUpsert {
	u.SetExcluded(virtualaccount.FieldUserID)
	return u
}

// SetProviderAccountID sets the "provider_account_id" field.
func (u *VirtualAccountUpsert) SetProviderAccountID(v string) *VirtualAccountUpsert {
	u.Set(virtualaccount.FieldProviderAccountID, v)
	return u
}

// UpdateProviderAccountID sets the "provider_account_id" field to the value that was provided on create.
func (u *VirtualAccountUpsert) UpdateProviderAccountID() *VirtualAccountUpsert {
	u.SetExcluded(virtualaccount.FieldProviderAccountID)
	return u
}

// ClearProviderAccountID clears the value of the "provider_account_id" field.
func (u *VirtualAccountUpsert) ClearProviderAccountID() *VirtualAccountUpsert {
	u.SetNull(virtualaccount.FieldProviderAccountID)
	return u
}

// SetIban sets the "iban" field.
func (u *VirtualAccountUpsert) SetIban(v string) *VirtualAccountUpsert {
	u.Set(virtualaccount.FieldIban, v)
	return u
}

// UpdateIban sets the "iban" field to the value that was provided on create.
func (u *VirtualAccountUpsert) UpdateIban() *VirtualAccountUpsert {
	u.SetExcluded(virtualaccount.FieldIban)
	return u
}

// ClearIban clears the value of the "iban" field.
func (u *VirtualAccountUpsert) ClearIban() *VirtualAccountUpsert {
	u.SetNull(virtualaccount.FieldIban)
	return u
}

// SetBic sets the "bic" field.
func (u *VirtualAccountUpsert) SetBic(v string) *VirtualAccountUpsert {
	u.Set(virtualaccount.FieldBic, v)
	return u
}

// UpdateBic sets the "bic" field to the value that was provided on create.
func (u *VirtualAccountUpsert) UpdateBic() *VirtualAccountUpsert {
	u.SetExcluded(virtualaccount.FieldBic)
	return u
}

// ClearBic clears the value of the "bic" field.
func (u *VirtualAccountUpsert) ClearBic() *VirtualAccountUpsert {
	u.SetNull(virtualaccount.FieldBic)
	return u
}

// SetBankName sets the "bank_name" field.
func (u *VirtualAccountUpsert) SetBankName(v string) *VirtualAccountUpsert {
	u.Set(virtualaccount.FieldBankName, v)
	return u
}

// UpdateBankName sets the "bank_name" field to the value that was provided on create.
func (u *VirtualAccountUpsert) UpdateBankName() *VirtualAccountUpsert {
	u.SetExcluded(virtualaccount.FieldBankName)
	return u
}

// ClearBankName clears the value of the "bank_name" field.
func (u *VirtualAccountUpsert) ClearBankName() *VirtualAccountUpsert {
	u.SetNull(virtualaccount.FieldBankName)
	return u
}

// SetCurrency sets the "currency" field.
func (u *VirtualAccountUpsert) SetCurrency(v string) *VirtualAccountUpsert {
	u.Set(virtualaccount.FieldCurrency, v)
	return u
}

// UpdateCurrency sets the "currency" field to the value that was provided on create.
func (u *VirtualAccountUpsert) UpdateCurrency() *VirtualAccountUpsert {
	u.SetExcluded(virtualaccount.FieldCurrency)
	return u
}

// SetBalance sets the "balance" field.
func (u *VirtualAccountUpsert) SetBalance(v decimal.Decimal) *VirtualAccountUpsert {
	u.Set(virtualaccount.FieldBalance, v)
	return u
}

// UpdateBalance sets the "balance" field to the value that was provided on create.
func (u *VirtualAccountUpsert) UpdateBalance() *VirtualAccountUpsert {
	u.SetExcluded(virtualaccount.FieldBalance)
	return u
}

// AddBalance adds v to the "balance" field.
func (u *VirtualAccountUpsert) AddBalance(v decimal.Decimal) *VirtualAccountUpsert {
	u.Add(virtualaccount.FieldBalance, v)
	return u
}

// SetStatus sets the "status" field.
func (u *VirtualAccountUpsert) SetStatus(v virtualaccount.Status) *VirtualAccountUpsert {
	u.Set(virtualaccount.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *VirtualAccountUpsert) UpdateStatus() *VirtualAccountUpsert {
	u.SetExcluded(virtualaccount.FieldStatus)
	return u
}

// SetLastBalanceUpdate sets the "last_balance_update" field.
func (u *VirtualAccountUpsert) SetLastBalanceUpdate(v time.Time) *VirtualAccountUpsert {
	u.Set(virtualaccount.FieldLastBalanceUpdate, v)
	return u
}

// UpdateLastBalanceUpdate sets the "last_balance_update" field to the value that was provided on create.
func (u *VirtualAccountUpsert) UpdateLastBalanceUpdate() *VirtualAccountUpsert {
	u.SetExcluded(virtualaccount.FieldLastBalanceUpdate)
	return u
}

// ClearLastBalanceUpdate clears the value of the "last_balance_update" field.
func (u *VirtualAccountUpsert) ClearLastBalanceUpdate() *VirtualAccountUpsert {
	u.SetNull(virtualaccount.FieldLastBalanceUpdate)
	return u
}

// SetMetadata sets the "metadata" field.
func (u *VirtualAccountUpsert) SetMetadata(v map[string]interface{}) *VirtualAccountUpsert {
	u.Set(virtualaccount.FieldMetadata, v)
	return u
}

// UpdateMetadata sets the "metadata" field to the value that was provided on create.
func (u *VirtualAccountUpsert) UpdateMetadata() *VirtualAccountUpsert {
	u.SetExcluded(virtualaccount.FieldMetadata)
	return u
}

// ClearMetadata clears the value of the "metadata" field.
func (u *VirtualAccountUpsert) ClearMetadata() *VirtualAccountUpsert {
	u.SetNull(virtualaccount.FieldMetadata)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.VirtualAccount.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(virtualaccount.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *VirtualAccountUpsertOne) UpdateNewValues() *VirtualAccountUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(virtualaccount.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(virtualaccount.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.VirtualAccount.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *VirtualAccountUpsertOne) Ignore() *VirtualAccountUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *VirtualAccountUpsertOne) DoNothing() *VirtualAccountUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the VirtualAccountCreate.OnConflict
// documentation for more info.
func (u *VirtualAccountUpsertOne) Update(set func(*VirtualAccountUpsert)) *VirtualAccountUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&VirtualAccountUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *VirtualAccountUpsertOne) SetUpdatedAt(v time.Time) *VirtualAccountUpsertOne {
	return u.Update(func(s *VirtualAccountUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *VirtualAccountUpsertOne) UpdateUpdatedAt() *VirtualAccountUpsertOne {
	return u.Update(func(s *VirtualAccountUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetUserID sets the "user_id" field.
func (u *VirtualAccountUpsertOne) SetUserID(v uuid.UUID) *VirtualAccountUpsertOne {
	return u.Update(func(s *VirtualAccountUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *VirtualAccountUpsertOne) UpdateUserID() *VirtualAccountUpsertOne {
	return u.Update(func(s *VirtualAccountUpsert) {
		s.UpdateUserID()
	})
}

// SetProviderAccountID sets the "provider_account_id" field.
func (u *VirtualAccountUpsertOne) SetProviderAccountID(v string) *VirtualAccountUpsertOne {
	return u.Update(func(s *VirtualAccountUpsert) {
		s.SetProviderAccountID(v)
	})
}

// UpdateProviderAccountID sets the "provider_account_id" field to the value that was provided on create.
func (u *VirtualAccountUpsertOne) UpdateProviderAccountID() *VirtualAccountUpsertOne {
	return u.Update(func(s *VirtualAccountUpsert) {
		s.UpdateProviderAccountID()
	})
}

// ClearProviderAccountID clears the value of the "provider_account_id" field.
func (u *VirtualAccountUpsertOne) ClearProviderAccountID() *VirtualAccountUpsertOne {
	return u.Update(func(s *VirtualAccountUpsert) {
		s.ClearProviderAccountID()
	})
}

// SetIban sets the "iban" field.
func (u *VirtualAccountUpsertOne) SetIban(v string) *VirtualAccountUpsertOne {
	return u.Update(func(s *VirtualAccountUpsert) {
		s.SetIban(v)
	})
}

// UpdateIban sets the "iban" field to the value that was provided on create.
func (u *VirtualAccountUpsertOne) UpdateIban() *VirtualAccountUpsertOne {
	return u.Update(func(s *VirtualAccountUpsert) {
		s.UpdateIban()
	})
}

// ClearIban clears the value of the "iban" field.
func (u *VirtualAccountUpsertOne) ClearIban() *VirtualAccountUpsertOne {
	return u.Update(func(s *VirtualAccountUpsert) {
		s.ClearIban()
	})
}

// SetBic sets the "bic" field.
func (u *VirtualAccountUpsertOne) SetBic(v string) *VirtualAccountUpsertOne {
	return u.Update(func(s *VirtualAccountUpsert) {
		s.SetBic(v)
	})
}

// UpdateBic sets the "bic" field to the value that was provided on create.
func (u *VirtualAccountUpsertOne) UpdateBic() *VirtualAccountUpsertOne {
	return u.Update(func(s *VirtualAccountUpsert) {
		s.UpdateBic()
	})
}

// ClearBic clears the value of the "bic" field.
func (u *VirtualAccountUpsertOne) ClearBic() *VirtualAccountUpsertOne {
	return u.Update(func(s *VirtualAccountUpsert) {
		s.ClearBic()
	})
}

// SetBankName sets the "bank_name" field.
func (u *VirtualAccountUpsertOne) SetBankName(v string) *VirtualAccountUpsertOne {
	return u.Update(func(s *VirtualAccountUpsert) {
		s.SetBankName(v)
	})
}

// UpdateBankName sets the "bank_name" field to the value that was provided on create.
func (u *VirtualAccountUpsertOne) UpdateBankName() *VirtualAccountUpsertOne {
	return u.Update(func(s *VirtualAccountUpsert) {
		s.UpdateBankName()
	})
}

// ClearBankName clears the value of the "bank_name" field.
func (u *VirtualAccountUpsertOne) ClearBankName() *VirtualAccountUpsertOne {
	return u.Update(func(s *VirtualAccountUpsert) {
		s.ClearBankName()
	})
}

// SetCurrency sets the "currency" field.
func (u *VirtualAccountUpsertOne) SetCurrency(v string) *VirtualAccountUpsertOne {
	return u.Update(func(s *VirtualAccountUpsert) {
		s.SetCurrency(v)
	})
}

// UpdateCurrency sets the "currency" field to the value that was provided on create.
func (u *VirtualAccountUpsertOne) UpdateCurrency() *VirtualAccountUpsertOne {
	return u.Update(func(s *VirtualAccountUpsert) {
		s.UpdateCurrency()
	})
}

// SetBalance sets the "balance" field.
func (u *VirtualAccountUpsertOne) SetBalance(v decimal.Decimal) *VirtualAccountUpsertOne {
	return u.Update(func(s *VirtualAccountUpsert) {
		s.SetBalance(v)
	})
}

// AddBalance adds v to the "balance" field.
func (u *VirtualAccountUpsertOne) AddBalance(v decimal.Decimal) *VirtualAccountUpsertOne {
	return u.Update(func(s *VirtualAccountUpsert) {
		s.AddBalance(v)
	})
}

// UpdateBalance sets the "balance" field to the value that was provided on create.
func (u *VirtualAccountUpsertOne) UpdateBalance() *VirtualAccountUpsertOne {
	return u.Update(func(s *VirtualAccountUpsert) {
		s.UpdateBalance()
	})
}

// SetStatus sets the "status" field.
func (u *VirtualAccountUpsertOne) SetStatus(v virtualaccount.Status) *VirtualAccountUpsertOne {
	return u.Update(func(s *VirtualAccountUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *VirtualAccountUpsertOne) UpdateStatus() *VirtualAccountUpsertOne {
	return u.Update(func(s *VirtualAccountUpsert) {
		s.UpdateStatus()
	})
}

// SetLastBalanceUpdate sets the "last_balance_update" field.
func (u *VirtualAccountUpsertOne) SetLastBalanceUpdate(v time.Time) *VirtualAccountUpsertOne {
	return u.Update(func(s *VirtualAccountUpsert) {
		s.SetLastBalanceUpdate(v)
	})
}

// UpdateLastBalanceUpdate sets the "last_balance_update" field to the value that was provided on create.
func (u *VirtualAccountUpsertOne) UpdateLastBalanceUpdate() *VirtualAccountUpsertOne {
	return u.Update(func(s *VirtualAccountUpsert) {
		s.UpdateLastBalanceUpdate()
	})
}

// ClearLastBalanceUpdate clears the value of the "last_balance_update" field.
func (u *VirtualAccountUpsertOne) ClearLastBalanceUpdate() *VirtualAccountUpsertOne {
	return u.Update(func(s *VirtualAccountUpsert) {
		s.ClearLastBalanceUpdate()
	})
}

// SetMetadata sets the "metadata" field.
func (u *VirtualAccountUpsertOne) SetMetadata(v map[string]interface{}) *VirtualAccountUpsertOne {
	return u.Update(func(s *VirtualAccountUpsert) {
		s.SetMetadata(v)
	})
}

// UpdateMetadata sets the "metadata" field to the value that was provided on create.
func (u *VirtualAccountUpsertOne) UpdateMetadata() *VirtualAccountUpsertOne {
	return u.Update(func(s *VirtualAccountUpsert) {
		s.UpdateMetadata()
	})
}

// ClearMetadata clears the value of the "metadata" field.
func (u *VirtualAccountUpsertOne) ClearMetadata() *VirtualAccountUpsertOne {
	return u.Update(func(s *VirtualAccountUpsert) {
		s.ClearMetadata()
	})
}

// Exec executes the query.
func (u *VirtualAccountUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for VirtualAccountCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *VirtualAccountUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *VirtualAccountUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: VirtualAccountUpsertOne.ID is not supported by MySQL driver. Use VirtualAccountUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *VirtualAccountUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// VirtualAccountCreateBulk is the builder for creating many VirtualAccount entities in bulk.
type VirtualAccountCreateBulk struct {
	config
	err      error
	builders []*VirtualAccountCreate
	conflict []sql.ConflictOption
}

// Save creates the VirtualAccount entities in the database.
func (vacb *VirtualAccountCreateBulk) Save(ctx context.Context) ([]*VirtualAccount, error) {
	if vacb.err != nil {
		return nil, vacb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(vacb.builders))
	nodes := make([]*VirtualAccount, len(vacb.builders))
	mutators := make([]Mutator, len(vacb.builders))
	for i := range vacb.builders {
		func(i int, root context.Context) {
			builder := vacb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*VirtualAccountMutation)
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
					_, err = mutators[i+1].Mutate(root, vacb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = vacb.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, vacb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, vacb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (vacb *VirtualAccountCreateBulk) SaveX(ctx context.Context) []*VirtualAccount {
	v, err := vacb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (vacb *VirtualAccountCreateBulk) Exec(ctx context.Context) error {
	_, err := vacb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (vacb *VirtualAccountCreateBulk) ExecX(ctx context.Context) {
	if err := vacb.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.VirtualAccount.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.VirtualAccountUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (vacb *VirtualAccountCreateBulk) OnConflict(opts ...sql.ConflictOption) *VirtualAccountUpsertBulk {
	vacb.conflict = opts
	return &VirtualAccountUpsertBulk{
		create: vacb,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.VirtualAccount.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (vacb *VirtualAccountCreateBulk) OnConflictColumns(columns ...string) *VirtualAccountUpsertBulk {
	vacb.conflict = append(vacb.conflict, sql.ConflictColumns(columns...))
	return &VirtualAccountUpsertBulk{
		create: vacb,
	}
}

// VirtualAccountUpsertBulk is the builder for "upsert"-ing
// a bulk of VirtualAccount nodes.
type VirtualAccountUpsertBulk struct {
	create *VirtualAccountCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.VirtualAccount.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(virtualaccount.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *VirtualAccountUpsertBulk) UpdateNewValues() *VirtualAccountUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(virtualaccount.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(virtualaccount.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.VirtualAccount.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *VirtualAccountUpsertBulk) Ignore() *VirtualAccountUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *VirtualAccountUpsertBulk) DoNothing() *VirtualAccountUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the VirtualAccountCreateBulk.OnConflict
// documentation for more info.
func (u *VirtualAccountUpsertBulk) Update(set func(*VirtualAccountUpsert)) *VirtualAccountUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&VirtualAccountUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *VirtualAccountUpsertBulk) SetUpdatedAt(v time.Time) *VirtualAccountUpsertBulk {
	return u.Update(func(s *VirtualAccountUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *VirtualAccountUpsertBulk) UpdateUpdatedAt() *VirtualAccountUpsertBulk {
	return u.Update(func(s *VirtualAccountUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetUserID sets the "user_id" field.
func (u *VirtualAccountUpsertBulk) SetUserID(v uuid.UUID) *VirtualAccountUpsertBulk {
	return u.Update(func(s *VirtualAccountUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *VirtualAccountUpsertBulk) UpdateUserID() *VirtualAccountUpsertBulk {
	return u.Update(func(s *VirtualAccountUpsert) {
		s.UpdateUserID()
	})
}

// SetProviderAccountID sets the "provider_account_id" field.
func (u *VirtualAccountUpsertBulk) SetProviderAccountID(v string) *VirtualAccountUpsertBulk {
	return u.Update(func(s *VirtualAccountUpsert) {
		s.SetProviderAccountID(v)
	})
}

// UpdateProviderAccountID sets the "provider_account_id" field to the value that was provided on create.
func (u *VirtualAccountUpsertBulk) UpdateProviderAccountID() *VirtualAccountUpsertBulk {
	return u.Update(func(s *VirtualAccountUpsert) {
		s.UpdateProviderAccountID()
	})
}

// ClearProviderAccountID clears the value of the "provider_account_id" field.
func (u *VirtualAccountUpsertBulk) ClearProviderAccountID() *VirtualAccountUpsertBulk {
	return u.Update(func(s *VirtualAccountUpsert) {
		s.ClearProviderAccountID()
	})
}

// SetIban sets the "iban" field.
func (u *VirtualAccountUpsertBulk) SetIban(v string) *VirtualAccountUpsertBulk {
	return u.Update(func(s *VirtualAccountUpsert) {
		s.SetIban(v)
	})
}

// UpdateIban sets the "iban" field to the value that was provided on create.
func (u *VirtualAccountUpsertBulk) UpdateIban() *VirtualAccountUpsertBulk {
	return u.Update(func(s *VirtualAccountUpsert) {
		s.UpdateIban()
	})
}

// ClearIban clears the value of the "iban" field.
func (u *VirtualAccountUpsertBulk) ClearIban() *VirtualAccountUpsertBulk {
	return u.Update(func(s *VirtualAccountUpsert) {
		s.ClearIban()
	})
}

// SetBic sets the "bic" field.
func (u *VirtualAccountUpsertBulk) SetBic(v string) *VirtualAccountUpsertBulk {
	return u.Update(func(s *VirtualAccountUpsert) {
		s.SetBic(v)
	})
}

// UpdateBic sets the "bic" field to the value that was provided on create.
func (u *VirtualAccountUpsertBulk) UpdateBic() *VirtualAccountUpsertBulk {
	return u.Update(func(s *VirtualAccountUpsert) {
		s.UpdateBic()
	})
}

// ClearBic clears the value of the "bic" field.
func (u *VirtualAccountUpsertBulk) ClearBic() *VirtualAccountUpsertBulk {
	return u.Update(func(s *VirtualAccountUpsert) {
		s.ClearBic()
	})
}

// SetBankName sets the "bank_name" field.
func (u *VirtualAccountUpsertBulk) SetBankName(v string) *VirtualAccountUpsertBulk {
	return u.Update(func(s *VirtualAccountUpsert) {
		s.SetBankName(v)
	})
}

// UpdateBankName sets the "bank_name" field to the value that was provided on create.
func (u *VirtualAccountUpsertBulk) UpdateBankName() *VirtualAccountUpsertBulk {
	return u.Update(func(s *VirtualAccountUpsert) {
		s.UpdateBankName()
	})
}

// ClearBankName clears the value of the "bank_name" field.
func (u *VirtualAccountUpsertBulk) ClearBankName() *VirtualAccountUpsertBulk {
	return u.Update(func(s *VirtualAccountUpsert) {
		s.ClearBankName()
	})
}

// SetCurrency sets the "currency" field.
func (u *VirtualAccountUpsertBulk) SetCurrency(v string) *VirtualAccountUpsertBulk {
	return u.Update(func(s *VirtualAccountUpsert) {
		s.SetCurrency(v)
	})
}

// UpdateCurrency sets the "currency" field to the value that was provided on create.
func (u *VirtualAccountUpsertBulk) UpdateCurrency() *VirtualAccountUpsertBulk {
	return u.Update(func(s *VirtualAccountUpsert) {
		s.UpdateCurrency()
	})
}

// SetBalance sets the "balance" field.
func (u *VirtualAccountUpsertBulk) SetBalance(v decimal.Decimal) *VirtualAccountUpsertBulk {
	return u.Update(func(s *VirtualAccountUpsert) {
		s.SetBalance(v)
	})
}

// AddBalance adds v to the "balance" field.
func (u *VirtualAccountUpsertBulk) AddBalance(v decimal.Decimal) *VirtualAccountUpsertBulk {
	return u.Update(func(s *VirtualAccountUpsert) {
		s.AddBalance(v)
	})
}

// UpdateBalance sets the "balance" field to the value that was provided on create.
func (u *VirtualAccountUpsertBulk) UpdateBalance() *VirtualAccountUpsertBulk {
	return u.Update(func(s *VirtualAccountUpsert) {
		s.UpdateBalance()
	})
}

// SetStatus sets the "status" field.
func (u *VirtualAccountUpsertBulk) SetStatus(v virtualaccount.Status) *VirtualAccountUpsertBulk {
	return u.Update(func(s *VirtualAccountUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *VirtualAccountUpsertBulk) UpdateStatus() *VirtualAccountUpsertBulk {
	return u.Update(func(s *VirtualAccountUpsert) {
		s.UpdateStatus()
	})
}

// SetLastBalanceUpdate sets the "last_balance_update" field.
func (u *VirtualAccountUpsertBulk) SetLastBalanceUpdate(v time.Time) *VirtualAccountUpsertBulk {
	return u.Update(func(s *VirtualAccountUpsert) {
		s.SetLastBalanceUpdate(v)
	})
}

// UpdateLastBalanceUpdate sets the "last_balance_update" field to the value that was provided on create.
func (u *VirtualAccountUpsertBulk) UpdateLastBalanceUpdate() *VirtualAccountUpsertBulk {
	return u.Update(func(s *VirtualAccountUpsert) {
		s.UpdateLastBalanceUpdate()
	})
}

// ClearLastBalanceUpdate clears the value of the "last_balance_update" field.
func (u *VirtualAccountUpsertBulk) ClearLastBalanceUpdate() *VirtualAccountUpsertBulk {
	return u.Update(func(s *VirtualAccountUpsert) {
		s.ClearLastBalanceUpdate()
	})
}

// SetMetadata sets the "metadata" field.
func (u *VirtualAccountUpsertBulk) SetMetadata(v map[string]interface{}) *VirtualAccountUpsertBulk {
	return u.Update(func(s *VirtualAccountUpsert) {
		s.SetMetadata(v)
	})
}

// UpdateMetadata sets the "metadata" field to the value that was provided on create.
func (u *VirtualAccountUpsertBulk) UpdateMetadata() *VirtualAccountUpsertBulk {
	return u.Update(func(s *VirtualAccountUpsert) {
		s.UpdateMetadata()
	})
}

// ClearMetadata clears the value of the "metadata" field.
func (u *VirtualAccountUpsertBulk) ClearMetadata() *VirtualAccountUpsertBulk {
	return u.Update(func(s *VirtualAccountUpsert) {
		s.ClearMetadata()
	})
}

// Exec executes the query.
func (u *VirtualAccountUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the VirtualAccountCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for VirtualAccountCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *VirtualAccountUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
