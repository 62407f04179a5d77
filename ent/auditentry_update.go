// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/monibridge/core/ent/auditentry"
	"github.com/monibridge/core/ent/predicate"
)

// AuditEntryUpdate is the builder for updating AuditEntry entities.
type AuditEntryUpdate struct {
	config
	hooks    []Hook
	mutation *AuditEntryMutation
}

// Where appends a list predicates to the AuditEntryUpdate builder.
func (aeu *AuditEntryUpdate) Where(ps ...predicate.AuditEntry) *AuditEntryUpdate {
	aeu.mutation.Where(ps...)
	return aeu
}

// Mutation returns the AuditEntryMutation object of the builder.
func (aeu *AuditEntryUpdate) Mutation() *AuditEntryMutation {
	return aeu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (aeu *AuditEntryUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, aeu.sqlSave, aeu.mutation, aeu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (aeu *AuditEntryUpdate) SaveX(ctx context.Context) int {
	affected, err := aeu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (aeu *AuditEntryUpdate) Exec(ctx context.Context) error {
	_, err := aeu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (aeu *AuditEntryUpdate) ExecX(ctx context.Context) {
	if err := aeu.Exec(ctx); err != nil {
		panic(err)
	}
}

func (aeu *AuditEntryUpdate) sqlSave(ctx context.Context) (n int, err error) {
	_spec := sqlgraph.NewUpdateSpec(auditentry.Table, auditentry.Columns, sqlgraph.NewFieldSpec(auditentry.FieldID, field.TypeUUID))
	if ps := aeu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if aeu.mutation.AccountIDCleared() {
		_spec.ClearField(auditentry.FieldAccountID, field.TypeUUID)
	}
	if aeu.mutation.UserIDCleared() {
		_spec.ClearField(auditentry.FieldUserID, field.TypeUUID)
	}
	if aeu.mutation.AdminRefCleared() {
		_spec.ClearField(auditentry.FieldAdminRef, field.TypeString)
	}
	if aeu.mutation.BeforeCleared() {
		_spec.ClearField(auditentry.FieldBefore, field.TypeJSON)
	}
	if aeu.mutation.AfterCleared() {
		_spec.ClearField(auditentry.FieldAfter, field.TypeJSON)
	}
	if aeu.mutation.ReasonCleared() {
		_spec.ClearField(auditentry.FieldReason, field.TypeString)
	}
	if aeu.mutation.MetadataCleared() {
		_spec.ClearField(auditentry.FieldMetadata, field.TypeJSON)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, aeu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{auditentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	aeu.mutation.done = true
	return n, nil
}

// AuditEntryUpdateOne is the builder for updating a single AuditEntry entity.
type AuditEntryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AuditEntryMutation
}

// Mutation returns the AuditEntryMutation object of the builder.
func (aeuo *AuditEntryUpdateOne) Mutation() *AuditEntryMutation {
	return aeuo.mutation
}

// Where appends a list predicates to the AuditEntryUpdate builder.
func (aeuo *AuditEntryUpdateOne) Where(ps ...predicate.AuditEntry) *AuditEntryUpdateOne {
	aeuo.mutation.Where(ps...)
	return aeuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (aeuo *AuditEntryUpdateOne) Select(field string, fields ...string) *AuditEntryUpdateOne {
	aeuo.fields = append([]string{field}, fields...)
	return aeuo
}

// Save executes the query and returns the updated AuditEntry entity.
func (aeuo *AuditEntryUpdateOne) Save(ctx context.Context) (*AuditEntry, error) {
	return withHooks(ctx, aeuo.sqlSave, aeuo.mutation, aeuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (aeuo *AuditEntryUpdateOne) SaveX(ctx context.Context) *AuditEntry {
	node, err := aeuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (aeuo *AuditEntryUpdateOne) Exec(ctx context.Context) error {
	_, err := aeuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (aeuo *AuditEntryUpdateOne) ExecX(ctx context.Context) {
	if err := aeuo.Exec(ctx); err != nil {
		panic(err)
	}
}

func (aeuo *AuditEntryUpdateOne) sqlSave(ctx context.Context) (_node *AuditEntry, err error) {
	_spec := sqlgraph.NewUpdateSpec(auditentry.Table, auditentry.Columns, sqlgraph.NewFieldSpec(auditentry.FieldID, field.TypeUUID))
	id, ok := aeuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AuditEntry.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := aeuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, auditentry.FieldID)
		for _, f := range fields {
			if !auditentry.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != auditentry.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := aeuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if aeuo.mutation.AccountIDCleared() {
		_spec.ClearField(auditentry.FieldAccountID, field.TypeUUID)
	}
	if aeuo.mutation.UserIDCleared() {
		_spec.ClearField(auditentry.FieldUserID, field.TypeUUID)
	}
	if aeuo.mutation.AdminRefCleared() {
		_spec.ClearField(auditentry.FieldAdminRef, field.TypeString)
	}
	if aeuo.mutation.BeforeCleared() {
		_spec.ClearField(auditentry.FieldBefore, field.TypeJSON)
	}
	if aeuo.mutation.AfterCleared() {
		_spec.ClearField(auditentry.FieldAfter, field.TypeJSON)
	}
	if aeuo.mutation.ReasonCleared() {
		_spec.ClearField(auditentry.FieldReason, field.TypeString)
	}
	if aeuo.mutation.MetadataCleared() {
		_spec.ClearField(auditentry.FieldMetadata, field.TypeJSON)
	}
	_node = &AuditEntry{config: aeuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, aeuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{auditentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	aeuo.mutation.done = true
	return _node, nil
}
