// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/monibridge/core/ent/ledgertransaction"
	"github.com/monibridge/core/ent/predicate"
	"github.com/monibridge/core/ent/virtualaccount"
	"github.com/shopspring/decimal"
)

// VirtualAccountUpdate is the builder for updating VirtualAccount entities.
type VirtualAccountUpdate struct {
	config
	hooks    []Hook
	mutation *VirtualAccountMutation
}

// Where appends a list predicates to the VirtualAccountUpdate builder.
func (vau *VirtualAccountUpdate) Where(ps ...predicate.VirtualAccount) *VirtualAccountUpdate {
	vau.mutation.Where(ps...)
	return vau
}

// SetUpdatedAt sets the "updated_at" field.
func (vau *VirtualAccountUpdate) SetUpdatedAt(t time.Time) *VirtualAccountUpdate {
	vau.mutation.SetUpdatedAt(t)
	return vau
}

// SetUserID sets the "user_id" field.
func (vau *VirtualAccountUpdate) SetUserID(u uuid.UUID) *VirtualAccountUpdate {
	vau.mutation.SetUserID(u)
	return vau
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (vau *VirtualAccountUpdate) SetNillableUserID(u *uuid.UUID) *VirtualAccountUpdate {
	if u != nil {
		vau.SetUserID(*u)
	}
	return vau
}

// SetProviderAccountID sets the "provider_account_id" field.
func (vau *VirtualAccountUpdate) SetProviderAccountID(s string) *VirtualAccountUpdate {
	vau.mutation.SetProviderAccountID(s)
	return vau
}

// SetNillableProviderAccountID sets the "provider_account_id" field if the given value is not nil.
func (vau *VirtualAccountUpdate) SetNillableProviderAccountID(s *string) *VirtualAccountUpdate {
	if s != nil {
		vau.SetProviderAccountID(*s)
	}
	return vau
}

// ClearProviderAccountID clears the value of the "provider_account_id" field.
func (vau *VirtualAccountUpdate) ClearProviderAccountID() *VirtualAccountUpdate {
	vau.mutation.ClearProviderAccountID()
	return vau
}

// SetIban sets the "iban" field.
func (vau *VirtualAccountUpdate) SetIban(s string) *VirtualAccountUpdate {
	vau.mutation.SetIban(s)
	return vau
}

// SetNillableIban sets the "iban" field if the given value is not nil.
func (vau *VirtualAccountUpdate) SetNillableIban(s *string) *VirtualAccountUpdate {
	if s != nil {
		vau.SetIban(*s)
	}
	return vau
}

// ClearIban clears the value of the "iban" field.
func (vau *VirtualAccountUpdate) ClearIban() *VirtualAccountUpdate {
	vau.mutation.ClearIban()
	return vau
}

// SetBic sets the "bic" field.
func (vau *VirtualAccountUpdate) SetBic(s string) *VirtualAccountUpdate {
	vau.mutation.SetBic(s)
	return vau
}

// SetNillableBic sets the "bic" field if the given value is not nil.
func (vau *VirtualAccountUpdate) SetNillableBic(s *string) *VirtualAccountUpdate {
	if s != nil {
		vau.SetBic(*s)
	}
	return vau
}

// ClearBic clears the value of the "bic" field.
func (vau *VirtualAccountUpdate) ClearBic() *VirtualAccountUpdate {
	vau.mutation.ClearBic()
	return vau
}

// SetBankName sets the "bank_name" field.
func (vau *VirtualAccountUpdate) SetBankName(s string) *VirtualAccountUpdate {
	vau.mutation.SetBankName(s)
	return vau
}

// SetNillableBankName sets the "bank_name" field if the given value is not nil.
func (vau *VirtualAccountUpdate) SetNillableBankName(s *string) *VirtualAccountUpdate {
	if s != nil {
		vau.SetBankName(*s)
	}
	return vau
}

// ClearBankName clears the value of the "bank_name" field.
func (vau *VirtualAccountUpdate) ClearBankName() *VirtualAccountUpdate {
	vau.mutation.ClearBankName()
	return vau
}

// SetCurrency sets the "currency" field.
func (vau *VirtualAccountUpdate) SetCurrency(s string) *VirtualAccountUpdate {
	vau.mutation.SetCurrency(s)
	return vau
}

// SetNillableCurrency sets the "currency" field if the given value is not nil.
func (vau *VirtualAccountUpdate) SetNillableCurrency(s *string) *VirtualAccountUpdate {
	if s != nil {
		vau.SetCurrency(*s)
	}
	return vau
}

// SetBalance sets the "balance" field.
func (vau *VirtualAccountUpdate) SetBalance(d decimal.Decimal) *VirtualAccountUpdate {
	vau.mutation.ResetBalance()
	vau.mutation.SetBalance(d)
	return vau
}

// SetNillableBalance sets the "balance" field if the given value is not nil.
func (vau *VirtualAccountUpdate) SetNillableBalance(d *decimal.Decimal) *VirtualAccountUpdate {
	if d != nil {
		vau.SetBalance(*d)
	}
	return vau
}

// AddBalance adds d to the "balance" field.
func (vau *VirtualAccountUpdate) AddBalance(d decimal.Decimal) *VirtualAccountUpdate {
	vau.mutation.AddBalance(d)
	return vau
}

// SetStatus sets the "status" field.
func (vau *VirtualAccountUpdate) SetStatus(v virtualaccount.Status) *VirtualAccountUpdate {
	vau.mutation.SetStatus(v)
	return vau
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (vau *VirtualAccountUpdate) SetNillableStatus(v *virtualaccount.Status) *VirtualAccountUpdate {
	if v != nil {
		vau.SetStatus(*v)
	}
	return vau
}

// SetLastBalanceUpdate sets the "last_balance_update" field.
func (vau *VirtualAccountUpdate) SetLastBalanceUpdate(t time.Time) *VirtualAccountUpdate {
	vau.mutation.SetLastBalanceUpdate(t)
	return vau
}

// SetNillableLastBalanceUpdate sets the "last_balance_update" field if the given value is not nil.
func (vau *VirtualAccountUpdate) SetNillableLastBalanceUpdate(t *time.Time) *VirtualAccountUpdate {
	if t != nil {
		vau.SetLastBalanceUpdate(*t)
	}
	return vau
}

// ClearLastBalanceUpdate clears the value of the "last_balance_update" field.
func (vau *VirtualAccountUpdate) ClearLastBalanceUpdate() *VirtualAccountUpdate {
	vau.mutation.ClearLastBalanceUpdate()
	return vau
}

// SetMetadata sets the "metadata" field.
func (vau *VirtualAccountUpdate) SetMetadata(m map[string]interface{}) *VirtualAccountUpdate {
	vau.mutation.SetMetadata(m)
	return vau
}

// ClearMetadata clears the value of the "metadata" field.
func (vau *VirtualAccountUpdate) ClearMetadata() *VirtualAccountUpdate {
	vau.mutation.ClearMetadata()
	return vau
}

// AddTransactionIDs adds the "transactions" edge to the LedgerTransaction entity by IDs.
func (vau *VirtualAccountUpdate) AddTransactionIDs(ids ...uuid.UUID) *VirtualAccountUpdate {
	vau.mutation.AddTransactionIDs(ids...)
	return vau
}

// AddTransactions adds the "transactions" edges to the LedgerTransaction entity.
func (vau *VirtualAccountUpdate) AddTransactions(l ...*LedgerTransaction) *VirtualAccountUpdate {
	ids := make([]uuid.UUID, len(l))
	for i := range l {
		ids[i] = l[i].ID
	}
	return vau.AddTransactionIDs(ids...)
}

// Mutation returns the VirtualAccountMutation object of the builder.
func (vau *VirtualAccountUpdate) Mutation() *VirtualAccountMutation {
	return vau.mutation
}

// ClearTransactions clears all "transactions" edges to the LedgerTransaction entity.
func (vau *VirtualAccountUpdate) ClearTransactions() *VirtualAccountUpdate {
	vau.mutation.ClearTransactions()
	return vau
}

// RemoveTransactionIDs removes the "transactions" edge to LedgerTransaction entities by IDs.
func (vau *VirtualAccountUpdate) RemoveTransactionIDs(ids ...uuid.UUID) *VirtualAccountUpdate {
	vau.mutation.RemoveTransactionIDs(ids...)
	return vau
}

// RemoveTransactions removes "transactions" edges to LedgerTransaction entities.
func (vau *VirtualAccountUpdate) RemoveTransactions(l ...*LedgerTransaction) *VirtualAccountUpdate {
	ids := make([]uuid.UUID, len(l))
	for i := range l {
		ids[i] = l[i].ID
	}
	return vau.RemoveTransactionIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (vau *VirtualAccountUpdate) Save(ctx context.Context) (int, error) {
	vau.defaults()
	return withHooks(ctx, vau.sqlSave, vau.mutation, vau.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (vau *VirtualAccountUpdate) SaveX(ctx context.Context) int {
	affected, err := vau.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (vau *VirtualAccountUpdate) Exec(ctx context.Context) error {
	_, err := vau.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (vau *VirtualAccountUpdate) ExecX(ctx context.Context) {
	if err := vau.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (vau *VirtualAccountUpdate) defaults() {
	if _, ok := vau.mutation.UpdatedAt(); !ok {
		v := virtualaccount.UpdateDefaultUpdatedAt()
		vau.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (vau *VirtualAccountUpdate) check() error {
	if v, ok := vau.mutation.Currency(); ok {
		if err := virtualaccount.CurrencyValidator(v); err != nil {
			return &ValidationError{Name: "currency", err: fmt.Errorf(`ent: validator failed for field "VirtualAccount.currency": %w`, err)}
		}
	}
	if v, ok := vau.mutation.Status(); ok {
		if err := virtualaccount.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "VirtualAccount.status": %w`, err)}
		}
	}
	return nil
}

func (vau *VirtualAccountUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := vau.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(virtualaccount.Table, virtualaccount.Columns, sqlgraph.NewFieldSpec(virtualaccount.FieldID, field.TypeUUID))
	if ps := vau.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := vau.mutation.UpdatedAt(); ok {
		_spec.SetField(virtualaccount.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := vau.mutation.UserID(); ok {
		_spec.SetField(virtualaccount.FieldUserID, field.TypeUUID, value)
	}
	if value, ok := vau.mutation.ProviderAccountID(); ok {
		_spec.SetField(virtualaccount.FieldProviderAccountID, field.TypeString, value)
	}
	if vau.mutation.ProviderAccountIDCleared() {
		_spec.ClearField(virtualaccount.FieldProviderAccountID, field.TypeString)
	}
	if value, ok := vau.mutation.Iban(); ok {
		_spec.SetField(virtualaccount.FieldIban, field.TypeString, value)
	}
	if vau.mutation.IbanCleared() {
		_spec.ClearField(virtualaccount.FieldIban, field.TypeString)
	}
	if value, ok := vau.mutation.Bic(); ok {
		_spec.SetField(virtualaccount.FieldBic, field.TypeString, value)
	}
	if vau.mutation.BicCleared() {
		_spec.ClearField(virtualaccount.FieldBic, field.TypeString)
	}
	if value, ok := vau.mutation.BankName(); ok {
		_spec.SetField(virtualaccount.FieldBankName, field.TypeString, value)
	}
	if vau.mutation.BankNameCleared() {
		_spec.ClearField(virtualaccount.FieldBankName, field.TypeString)
	}
	if value, ok := vau.mutation.Currency(); ok {
		_spec.SetField(virtualaccount.FieldCurrency, field.TypeString, value)
	}
	if value, ok := vau.mutation.Balance(); ok {
		_spec.SetField(virtualaccount.FieldBalance, field.TypeFloat64, value)
	}
	if value, ok := vau.mutation.AddedBalance(); ok {
		_spec.AddField(virtualaccount.FieldBalance, field.TypeFloat64, value)
	}
	if value, ok := vau.mutation.Status(); ok {
		_spec.SetField(virtualaccount.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := vau.mutation.LastBalanceUpdate(); ok {
		_spec.SetField(virtualaccount.FieldLastBalanceUpdate, field.TypeTime, value)
	}
	if vau.mutation.LastBalanceUpdateCleared() {
		_spec.ClearField(virtualaccount.FieldLastBalanceUpdate, field.TypeTime)
	}
	if value, ok := vau.mutation.Metadata(); ok {
		_spec.SetField(virtualaccount.FieldMetadata, field.TypeJSON, value)
	}
	if vau.mutation.MetadataCleared() {
		_spec.ClearField(virtualaccount.FieldMetadata, field.TypeJSON)
	}
	if vau.mutation.TransactionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := vau.mutation.RemovedTransactionsIDs(); len(nodes) > 0 && !vau.mutation.TransactionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := vau.mutation.TransactionsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, vau.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{virtualaccount.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	vau.mutation.done = true
	return n, nil
}

// VirtualAccountUpdateOne is the builder for updating a single VirtualAccount entity.
type VirtualAccountUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *VirtualAccountMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (vauo *VirtualAccountUpdateOne) SetUpdatedAt(t time.Time) *VirtualAccountUpdateOne {
	vauo.mutation.SetUpdatedAt(t)
	return vauo
}

// SetUserID sets the "user_id" field.
func (vauo *VirtualAccountUpdateOne) SetUserID(u uuid.UUID) *VirtualAccountUpdateOne {
	vauo.mutation.SetUserID(u)
	return vauo
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (vauo *VirtualAccountUpdateOne) SetNillableUserID(u *uuid.UUID) *VirtualAccountUpdateOne {
	if u != nil {
		vauo.SetUserID(*u)
	}
	return vauo
}

// SetProviderAccountID sets the "provider_account_id" field.
func (vauo *VirtualAccountUpdateOne) SetProviderAccountID(s string) *VirtualAccountUpdateOne {
	vauo.mutation.SetProviderAccountID(s)
	return vauo
}

// SetNillableProviderAccountID sets the "provider_account_id" field if the given value is not nil.
func (vauo *VirtualAccountUpdateOne) SetNillableProviderAccountID(s *string) *VirtualAccountUpdateOne {
	if s != nil {
		vauo.SetProviderAccountID(*s)
	}
	return vauo
}

// ClearProviderAccountID clears the value of the "provider_account_id" field.
func (vauo *VirtualAccountUpdateOne) ClearProviderAccountID() *VirtualAccountUpdateOne {
	vauo.mutation.ClearProviderAccountID()
	return vauo
}

// SetIban sets the "iban" field.
func (vauo *VirtualAccountUpdateOne) SetIban(s string) *VirtualAccountUpdateOne {
	vauo.mutation.SetIban(s)
	return vauo
}

// SetNillableIban sets the "iban" field if the given value is not nil.
func (vauo *VirtualAccountUpdateOne) SetNillableIban(s *string) *VirtualAccountUpdateOne {
	if s != nil {
		vauo.SetIban(*s)
	}
	return vauo
}

// ClearIban clears the value of the "iban" field.
func (vauo *VirtualAccountUpdateOne) ClearIban() *VirtualAccountUpdateOne {
	vauo.mutation.ClearIban()
	return vauo
}

// SetBic sets the "bic" field.
func (vauo *VirtualAccountUpdateOne) SetBic(s string) *VirtualAccountUpdateOne {
	vauo.mutation.SetBic(s)
	return vauo
}

// SetNillableBic sets the "bic" field if the given value is not nil.
func (vauo *VirtualAccountUpdateOne) SetNillableBic(s *string) *VirtualAccountUpdateOne {
	if s != nil {
		vauo.SetBic(*s)
	}
	return vauo
}

// ClearBic clears the value of the "bic" field.
func (vauo *VirtualAccountUpdateOne) ClearBic() *VirtualAccountUpdateOne {
	vauo.mutation.ClearBic()
	return vauo
}

// SetBankName sets the "bank_name" field.
func (vauo *VirtualAccountUpdateOne) SetBankName(s string) *VirtualAccountUpdateOne {
	vauo.mutation.SetBankName(s)
	return vauo
}

// SetNillableBankName sets the "bank_name" field if the given value is not nil.
func (vauo *VirtualAccountUpdateOne) SetNillableBankName(s *string) *VirtualAccountUpdateOne {
	if s != nil {
		vauo.SetBankName(*s)
	}
	return vauo
}

// ClearBankName clears the value of the "bank_name" field.
func (vauo *VirtualAccountUpdateOne) ClearBankName() *VirtualAccountUpdateOne {
	vauo.mutation.ClearBankName()
	return vauo
}

// SetCurrency sets the "currency" field.
func (vauo *VirtualAccountUpdateOne) SetCurrency(s string) *VirtualAccountUpdateOne {
	vauo.mutation.SetCurrency(s)
	return vauo
}

// SetNillableCurrency sets the "currency" field if the given value is not nil.
func (vauo *VirtualAccountUpdateOne) SetNillableCurrency(s *string) *VirtualAccountUpdateOne {
	if s != nil {
		vauo.SetCurrency(*s)
	}
	return vauo
}

// SetBalance sets the "balance" field.
func (vauo *VirtualAccountUpdateOne) SetBalance(d decimal.Decimal) *VirtualAccountUpdateOne {
	vauo.mutation.ResetBalance()
	vauo.mutation.SetBalance(d)
	return vauo
}

// SetNillableBalance sets the "balance" field if the given value is not nil.
func (vauo *VirtualAccountUpdateOne) SetNillableBalance(d *decimal.Decimal) *VirtualAccountUpdateOne {
	if d != nil {
		vauo.SetBalance(*d)
	}
	return vauo
}

// AddBalance adds d to the "balance" field.
func (vauo *VirtualAccountUpdateOne) AddBalance(d decimal.Decimal) *VirtualAccountUpdateOne {
	vauo.mutation.AddBalance(d)
	return vauo
}

// SetStatus sets the "status" field.
func (vauo *VirtualAccountUpdateOne) SetStatus(v virtualaccount.Status) *VirtualAccountUpdateOne {
	vauo.mutation.SetStatus(v)
	return vauo
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (vauo *VirtualAccountUpdateOne) SetNillableStatus(v *virtualaccount.Status) *VirtualAccountUpdateOne {
	if v != nil {
		vauo.SetStatus(*v)
	}
	return vauo
}

// SetLastBalanceUpdate sets the "last_balance_update" field.
func (vauo *VirtualAccountUpdateOne) SetLastBalanceUpdate(t time.Time) *VirtualAccountUpdateOne {
	vauo.mutation.SetLastBalanceUpdate(t)
	return vauo
}

// SetNillableLastBalanceUpdate sets the "last_balance_update" field if the given value is not nil.
func (vauo *VirtualAccountUpdateOne) SetNillableLastBalanceUpdate(t *time.Time) *VirtualAccountUpdateOne {
	if t != nil {
		vauo.SetLastBalanceUpdate(*t)
	}
	return vauo
}

// ClearLastBalanceUpdate clears the value of the "last_balance_update" field.
func (vauo *VirtualAccountUpdateOne) ClearLastBalanceUpdate() *VirtualAccountUpdateOne {
	vauo.mutation.ClearLastBalanceUpdate()
	return vauo
}

// SetMetadata sets the "metadata" field.
func (vauo *VirtualAccountUpdateOne) SetMetadata(m map[string]interface{}) *VirtualAccountUpdateOne {
	vauo.mutation.SetMetadata(m)
	return vauo
}

// ClearMetadata clears the value of the "metadata" field.
func (vauo *VirtualAccountUpdateOne) ClearMetadata() *VirtualAccountUpdateOne {
	vauo.mutation.ClearMetadata()
	return vauo
}

// AddTransactionIDs adds the "transactions" edge to the LedgerTransaction entity by IDs.
func (vauo *VirtualAccountUpdateOne) AddTransactionIDs(ids ...uuid.UUID) *VirtualAccountUpdateOne {
	vauo.mutation.AddTransactionIDs(ids...)
	return vauo
}

// AddTransactions adds the "transactions" edges to the LedgerTransaction entity.
func (vauo *VirtualAccountUpdateOne) AddTransactions(l ...*LedgerTransaction) *VirtualAccountUpdateOne {
	ids := make([]uuid.UUID, len(l))
	for i := range l {
		ids[i] = l[i].ID
	}
	return vauo.AddTransactionIDs(ids...)
}

// Mutation returns the VirtualAccountMutation object of the builder.
func (vauo *VirtualAccountUpdateOne) Mutation() *VirtualAccountMutation {
	return vauo.mutation
}

// ClearTransactions clears all "transactions" edges to the LedgerTransaction entity.
func (vauo *VirtualAccountUpdateOne) ClearTransactions() *VirtualAccountUpdateOne {
	vauo.mutation.ClearTransactions()
	return vauo
}

// RemoveTransactionIDs removes the "transactions" edge to LedgerTransaction entities by IDs.
func (vauo *VirtualAccountUpdateOne) RemoveTransactionIDs(ids ...uuid.UUID) *VirtualAccountUpdateOne {
	vauo.mutation.RemoveTransactionIDs(ids...)
	return vauo
}

// RemoveTransactions removes "transactions" edges to LedgerTransaction entities.
func (vauo *VirtualAccountUpdateOne) RemoveTransactions(l ...*LedgerTransaction) *VirtualAccountUpdateOne {
	ids := make([]uuid.UUID, len(l))
	for i := range l {
		ids[i] = l[i].ID
	}
	return vauo.RemoveTransactionIDs(ids...)
}

// Where appends a list predicates to the VirtualAccountUpdate builder.
func (vauo *VirtualAccountUpdateOne) Where(ps ...predicate.VirtualAccount) *VirtualAccountUpdateOne {
	vauo.mutation.Where(ps...)
	return vauo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (vauo *VirtualAccountUpdateOne) Select(field string, fields ...string) *VirtualAccountUpdateOne {
	vauo.fields = append([]string{field}, fields...)
	return vauo
}

// Save executes the query and returns the updated VirtualAccount entity.
func (vauo *VirtualAccountUpdateOne) Save(ctx context.Context) (*VirtualAccount, error) {
	vauo.defaults()
	return withHooks(ctx, vauo.sqlSave, vauo.mutation, vauo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (vauo *VirtualAccountUpdateOne) SaveX(ctx context.Context) *VirtualAccount {
	node, err := vauo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (vauo *VirtualAccountUpdateOne) Exec(ctx context.Context) error {
	_, err := vauo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (vauo *VirtualAccountUpdateOne) ExecX(ctx context.Context) {
	if err := vauo.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (vauo *VirtualAccountUpdateOne) defaults() {
	if _, ok := vauo.mutation.UpdatedAt(); !ok {
		v := virtualaccount.UpdateDefaultUpdatedAt()
		vauo.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (vauo *VirtualAccountUpdateOne) check() error {
	if v, ok := vauo.mutation.Currency(); ok {
		if err := virtualaccount.CurrencyValidator(v); err != nil {
			return &ValidationError{Name: "currency", err: fmt.Errorf(`ent: validator failed for field "VirtualAccount.currency": %w`, err)}
		}
	}
	if v, ok := vauo.mutation.Status(); ok {
		if err := virtualaccount.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "VirtualAccount.status": %w`, err)}
		}
	}
	return nil
}

func (vauo *VirtualAccountUpdateOne) sqlSave(ctx context.Context) (_node *VirtualAccount, err error) {
	if err := vauo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(virtualaccount.Table, virtualaccount.Columns, sqlgraph.NewFieldSpec(virtualaccount.FieldID, field.TypeUUID))
	id, ok := vauo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "VirtualAccount.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := vauo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, virtualaccount.FieldID)
		for _, f := range fields {
			if !virtualaccount.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != virtualaccount.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := vauo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := vauo.mutation.UpdatedAt(); ok {
		_spec.SetField(virtualaccount.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := vauo.mutation.UserID(); ok {
		_spec.SetField(virtualaccount.FieldUserID, field.TypeUUID, value)
	}
	if value, ok := vauo.mutation.ProviderAccountID(); ok {
		_spec.SetField(virtualaccount.FieldProviderAccountID, field.TypeString, value)
	}
	if vauo.mutation.ProviderAccountIDCleared() {
		_spec.ClearField(virtualaccount.FieldProviderAccountID, field.TypeString)
	}
	if value, ok := vauo.mutation.Iban(); ok {
		_spec.SetField(virtualaccount.FieldIban, field.TypeString, value)
	}
	if vauo.mutation.IbanCleared() {
		_spec.ClearField(virtualaccount.FieldIban, field.TypeString)
	}
	if value, ok := vauo.mutation.Bic(); ok {
		_spec.SetField(virtualaccount.FieldBic, field.TypeString, value)
	}
	if vauo.mutation.BicCleared() {
		_spec.ClearField(virtualaccount.FieldBic, field.TypeString)
	}
	if value, ok := vauo.mutation.BankName(); ok {
		_spec.SetField(virtualaccount.FieldBankName, field.TypeString, value)
	}
	if vauo.mutation.BankNameCleared() {
		_spec.ClearField(virtualaccount.FieldBankName, field.TypeString)
	}
	if value, ok := vauo.mutation.Currency(); ok {
		_spec.SetField(virtualaccount.FieldCurrency, field.TypeString, value)
	}
	if value, ok := vauo.mutation.Balance(); ok {
		_spec.SetField(virtualaccount.FieldBalance, field.TypeFloat64, value)
	}
	if value, ok := vauo.mutation.AddedBalance(); ok {
		_spec.AddField(virtualaccount.FieldBalance, field.TypeFloat64, value)
	}
	if value, ok := vauo.mutation.Status(); ok {
		_spec.SetField(virtualaccount.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := vauo.mutation.LastBalanceUpdate(); ok {
		_spec.SetField(virtualaccount.FieldLastBalanceUpdate, field.TypeTime, value)
	}
	if vauo.mutation.LastBalanceUpdateCleared() {
		_spec.ClearField(virtualaccount.FieldLastBalanceUpdate, field.TypeTime)
	}
	if value, ok := vauo.mutation.Metadata(); ok {
		_spec.SetField(virtualaccount.FieldMetadata, field.TypeJSON, value)
	}
	if vauo.mutation.MetadataCleared() {
		_spec.ClearField(virtualaccount.FieldMetadata, field.TypeJSON)
	}
	if vauo.mutation.TransactionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := vauo.mutation.RemovedTransactionsIDs(); len(nodes) > 0 && !vauo.mutation.TransactionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := vauo.mutation.TransactionsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &VirtualAccount{config: vauo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, vauo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{virtualaccount.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	vauo.mutation.done = true
	return _node, nil
}
