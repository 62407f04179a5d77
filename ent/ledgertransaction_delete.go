// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/monibridge/core/ent/ledgertransaction"
	"github.com/monibridge/core/ent/predicate"
)

// LedgerTransactionDelete is the builder for deleting a LedgerTransaction entity.
type LedgerTransactionDelete struct {
	config
	hooks    []Hook
	mutation *LedgerTransactionMutation
}

// Where appends a list predicates to the LedgerTransactionDelete builder.
func (ltd *LedgerTransactionDelete) Where(ps ...predicate.LedgerTransaction) *LedgerTransactionDelete {
	ltd.mutation.Where(ps...)
	return ltd
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (ltd *LedgerTransactionDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, ltd.sqlExec, ltd.mutation, ltd.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (ltd *LedgerTransactionDelete) ExecX(ctx context.Context) int {
	n, err := ltd.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (ltd *LedgerTransactionDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(ledgertransaction.Table, sqlgraph.NewFieldSpec(ledgertransaction.FieldID, field.TypeUUID))
	if ps := ltd.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, ltd.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	ltd.mutation.done = true
	return affected, err
}

// LedgerTransactionDeleteOne is the builder for deleting a single LedgerTransaction entity.
type LedgerTransactionDeleteOne struct {
	ltd *LedgerTransactionDelete
}

// Where appends a list predicates to the LedgerTransactionDelete builder.
func (ltdo *LedgerTransactionDeleteOne) Where(ps ...predicate.LedgerTransaction) *LedgerTransactionDeleteOne {
	ltdo.ltd.mutation.Where(ps...)
	return ltdo
}

// Exec executes the deletion query.
func (ltdo *LedgerTransactionDeleteOne) Exec(ctx context.Context) error {
	n, err := ltdo.ltd.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{ledgertransaction.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (ltdo *LedgerTransactionDeleteOne) ExecX(ctx context.Context) {
	if err := ltdo.Exec(ctx); err != nil {
		panic(err)
	}
}
