// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/monibridge/core/ent/ledgertransaction"
	"github.com/monibridge/core/ent/predicate"
)

// LedgerTransactionUpdate is the builder for updating LedgerTransaction entities.
type LedgerTransactionUpdate struct {
	config
	hooks    []Hook
	mutation *LedgerTransactionMutation
}

// Where appends a list predicates to the LedgerTransactionUpdate builder.
func (ltu *LedgerTransactionUpdate) Where(ps ...predicate.LedgerTransaction) *LedgerTransactionUpdate {
	ltu.mutation.Where(ps...)
	return ltu
}

// Mutation returns the LedgerTransactionMutation object of the builder.
func (ltu *LedgerTransactionUpdate) Mutation() *LedgerTransactionMutation {
	return ltu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (ltu *LedgerTransactionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, ltu.sqlSave, ltu.mutation, ltu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (ltu *LedgerTransactionUpdate) SaveX(ctx context.Context) int {
	affected, err := ltu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (ltu *LedgerTransactionUpdate) Exec(ctx context.Context) error {
	_, err := ltu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (ltu *LedgerTransactionUpdate) ExecX(ctx context.Context) {
	if err := ltu.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (ltu *LedgerTransactionUpdate) check() error {
	if ltu.mutation.AccountCleared() && len(ltu.mutation.AccountIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "LedgerTransaction.account"`)
	}
	return nil
}

func (ltu *LedgerTransactionUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := ltu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(ledgertransaction.Table, ledgertransaction.Columns, sqlgraph.NewFieldSpec(ledgertransaction.FieldID, field.TypeUUID))
	if ps := ltu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if ltu.mutation.ReferenceCleared() {
		_spec.ClearField(ledgertransaction.FieldReference, field.TypeString)
	}
	if ltu.mutation.CounterpartyNameCleared() {
		_spec.ClearField(ledgertransaction.FieldCounterpartyName, field.TypeString)
	}
	if ltu.mutation.CounterpartyIbanCleared() {
		_spec.ClearField(ledgertransaction.FieldCounterpartyIban, field.TypeString)
	}
	if ltu.mutation.OrderRefCleared() {
		_spec.ClearField(ledgertransaction.FieldOrderRef, field.TypeString)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, ltu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{ledgertransaction.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	ltu.mutation.done = true
	return n, nil
}

// LedgerTransactionUpdateOne is the builder for updating a single LedgerTransaction entity.
type LedgerTransactionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LedgerTransactionMutation
}

// Mutation returns the LedgerTransactionMutation object of the builder.
func (ltuo *LedgerTransactionUpdateOne) Mutation() *LedgerTransactionMutation {
	return ltuo.mutation
}

// Where appends a list predicates to the LedgerTransactionUpdate builder.
func (ltuo *LedgerTransactionUpdateOne) Where(ps ...predicate.LedgerTransaction) *LedgerTransactionUpdateOne {
	ltuo.mutation.Where(ps...)
	return ltuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (ltuo *LedgerTransactionUpdateOne) Select(field string, fields ...string) *LedgerTransactionUpdateOne {
	ltuo.fields = append([]string{field}, fields...)
	return ltuo
}

// Save executes the query and returns the updated LedgerTransaction entity.
func (ltuo *LedgerTransactionUpdateOne) Save(ctx context.Context) (*LedgerTransaction, error) {
	return withHooks(ctx, ltuo.sqlSave, ltuo.mutation, ltuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (ltuo *LedgerTransactionUpdateOne) SaveX(ctx context.Context) *LedgerTransaction {
	node, err := ltuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (ltuo *LedgerTransactionUpdateOne) Exec(ctx context.Context) error {
	_, err := ltuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (ltuo *LedgerTransactionUpdateOne) ExecX(ctx context.Context) {
	if err := ltuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (ltuo *LedgerTransactionUpdateOne) check() error {
	if ltuo.mutation.AccountCleared() && len(ltuo.mutation.AccountIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "LedgerTransaction.account"`)
	}
	return nil
}

func (ltuo *LedgerTransactionUpdateOne) sqlSave(ctx context.Context) (_node *LedgerTransaction, err error) {
	if err := ltuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(ledgertransaction.Table, ledgertransaction.Columns, sqlgraph.NewFieldSpec(ledgertransaction.FieldID, field.TypeUUID))
	id, ok := ltuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "LedgerTransaction.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := ltuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, ledgertransaction.FieldID)
		for _, f := range fields {
			if !ledgertransaction.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != ledgertransaction.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := ltuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if ltuo.mutation.ReferenceCleared() {
		_spec.ClearField(ledgertransaction.FieldReference, field.TypeString)
	}
	if ltuo.mutation.CounterpartyNameCleared() {
		_spec.ClearField(ledgertransaction.FieldCounterpartyName, field.TypeString)
	}
	if ltuo.mutation.CounterpartyIbanCleared() {
		_spec.ClearField(ledgertransaction.FieldCounterpartyIban, field.TypeString)
	}
	if ltuo.mutation.OrderRefCleared() {
		_spec.ClearField(ledgertransaction.FieldOrderRef, field.TypeString)
	}
	_node = &LedgerTransaction{config: ltuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, ltuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{ledgertransaction.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	ltuo.mutation.done = true
	return _node, nil
}
