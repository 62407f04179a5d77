// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/monibridge/core/ent/predicate"
	"github.com/monibridge/core/ent/virtualaccount"
)

// VirtualAccountDelete is the builder for deleting a VirtualAccount entity.
type VirtualAccountDelete struct {
	config
	hooks    []Hook
	mutation *VirtualAccountMutation
}

// Where appends a list predicates to the VirtualAccountDelete builder.
func (vad *VirtualAccountDelete) Where(ps ...predicate.VirtualAccount) *VirtualAccountDelete {
	vad.mutation.Where(ps...)
	return vad
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (vad *VirtualAccountDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, vad.sqlExec, vad.mutation, vad.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (vad *VirtualAccountDelete) ExecX(ctx context.Context) int {
	n, err := vad.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (vad *VirtualAccountDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(virtualaccount.Table, sqlgraph.NewFieldSpec(virtualaccount.FieldID, field.TypeUUID))
	if ps := vad.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, vad.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	vad.mutation.done = true
	return affected, err
}

// VirtualAccountDeleteOne is the builder for deleting a single VirtualAccount entity.
type VirtualAccountDeleteOne struct {
	vad *VirtualAccountDelete
}

// Where appends a list predicates to the VirtualAccountDelete builder.
func (vado *VirtualAccountDeleteOne) Where(ps ...predicate.VirtualAccount) *VirtualAccountDeleteOne {
	vado.vad.mutation.Where(ps...)
	return vado
}

// Exec executes the deletion query.
func (vado *VirtualAccountDeleteOne) Exec(ctx context.Context) error {
	n, err := vado.vad.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{virtualaccount.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (vado *VirtualAccountDeleteOne) ExecX(ctx context.Context) {
	if err := vado.Exec(ctx); err != nil {
		panic(err)
	}
}
