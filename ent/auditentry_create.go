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
	"github.com/monibridge/core/ent/auditentry"
)

// AuditEntryCreate is the builder for creating a AuditEntry entity.
type AuditEntryCreate struct {
	config
	mutation *AuditEntryMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCategory sets the "category" field.
func (aec *AuditEntryCreate) SetCategory(s string) *AuditEntryCreate {
	aec.mutation.SetCategory(s)
	return aec
}

// SetSeverity sets the "severity" field.
func (aec *AuditEntryCreate) SetSeverity(a auditentry.Severity) *AuditEntryCreate {
	aec.mutation.SetSeverity(a)
	return aec
}

// SetNillableSeverity sets the "severity" field if the given value is not nil.
func (aec *AuditEntryCreate) SetNillableSeverity(a *auditentry.Severity) *AuditEntryCreate {
	if a != nil {
		aec.SetSeverity(*a)
	}
	return aec
}

// SetAccountID sets the "account_id" field.
func (aec *AuditEntryCreate) SetAccountID(u uuid.UUID) *AuditEntryCreate {
	aec.mutation.SetAccountID(u)
	return aec
}

// SetNillableAccountID sets the "account_id" field if the given value is not nil.
func (aec *AuditEntryCreate) SetNillableAccountID(u *uuid.UUID) *AuditEntryCreate {
	if u != nil {
		aec.SetAccountID(*u)
	}
	return aec
}

// SetUserID sets the "user_id" field.
func (aec *AuditEntryCreate) SetUserID(u uuid.UUID) *AuditEntryCreate {
	aec.mutation.SetUserID(u)
	return aec
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (aec *AuditEntryCreate) SetNillableUserID(u *uuid.UUID) *AuditEntryCreate {
	if u != nil {
		aec.SetUserID(*u)
	}
	return aec
}

// SetAdminRef sets the "admin_ref" field.
func (aec *AuditEntryCreate) SetAdminRef(s string) *AuditEntryCreate {
	aec.mutation.SetAdminRef(s)
	return aec
}

// SetNillableAdminRef sets the "admin_ref" field if the given value is not nil.
func (aec *AuditEntryCreate) SetNillableAdminRef(s *string) *AuditEntryCreate {
	if s != nil {
		aec.SetAdminRef(*s)
	}
	return aec
}

// SetBefore sets the "before" field.
func (aec *AuditEntryCreate) SetBefore(m map[string]interface{}) *AuditEntryCreate {
	aec.mutation.SetBefore(m)
	return aec
}

// SetAfter sets the "after" field.
func (aec *AuditEntryCreate) SetAfter(m map[string]interface{}) *AuditEntryCreate {
	aec.mutation.SetAfter(m)
	return aec
}

// SetReason sets the "reason" field.
func (aec *AuditEntryCreate) SetReason(s string) *AuditEntryCreate {
	aec.mutation.SetReason(s)
	return aec
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (aec *AuditEntryCreate) SetNillableReason(s *string) *AuditEntryCreate {
	if s != nil {
		aec.SetReason(*s)
	}
	return aec
}

// SetMetadata sets the "metadata" field.
func (aec *AuditEntryCreate) SetMetadata(m map[string]interface{}) *AuditEntryCreate {
	aec.mutation.SetMetadata(m)
	return aec
}

// SetCreatedAt sets the "created_at" field.
func (aec *AuditEntryCreate) SetCreatedAt(t time.Time) *AuditEntryCreate {
	aec.mutation.SetCreatedAt(t)
	return aec
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (aec *AuditEntryCreate) SetNillableCreatedAt(t *time.Time) *AuditEntryCreate {
	if t != nil {
		aec.SetCreatedAt(*t)
	}
	return aec
}

// SetID sets the "id" field.
func (aec *AuditEntryCreate) SetID(u uuid.UUID) *AuditEntryCreate {
	aec.mutation.SetID(u)
	return aec
}

// SetNillableID sets the "id" field if the given value is not nil.
func (aec *AuditEntryCreate) SetNillableID(u *uuid.UUID) *AuditEntryCreate {
	if u != nil {
		aec.SetID(*u)
	}
	return aec
}

// Mutation returns the AuditEntryMutation object of the builder.
func (aec *AuditEntryCreate) Mutation() *AuditEntryMutation {
	return aec.mutation
}

// Save creates the AuditEntry in the database.
func (aec *AuditEntryCreate) Save(ctx context.Context) (*AuditEntry, error) {
	aec.defaults()
	return withHooks(ctx, aec.sqlSave, aec.mutation, aec.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (aec *AuditEntryCreate) SaveX(ctx context.Context) *AuditEntry {
	v, err := aec.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (aec *AuditEntryCreate) Exec(ctx context.Context) error {
	_, err := aec.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (aec *AuditEntryCreate) ExecX(ctx context.Context) {
	if err := aec.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (aec *AuditEntryCreate) defaults() {
	if _, ok := aec.mutation.Severity(); !ok {
		v := auditentry.DefaultSeverity
		aec.mutation.SetSeverity(v)
	}
	if _, ok := aec.mutation.CreatedAt(); !ok {
		v := auditentry.DefaultCreatedAt()
		aec.mutation.SetCreatedAt(v)
	}
	if _, ok := aec.mutation.ID(); !ok {
		v := auditentry.DefaultID()
		aec.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (aec *AuditEntryCreate) check() error {
	if _, ok := aec.mutation.Category(); !ok {
		return &ValidationError{Name: "category", err: errors.New(`ent: missing required field "AuditEntry.category"`)}
	}
	if _, ok := aec.mutation.Severity(); !ok {
		return &ValidationError{Name: "severity", err: errors.New(`ent: missing required field "AuditEntry.severity"`)}
	}
	if v, ok := aec.mutation.Severity(); ok {
		if err := auditentry.SeverityValidator(v); err != nil {
			return &ValidationError{Name: "severity", err: fmt.Errorf(`ent: validator failed for field "AuditEntry.severity": %w`, err)}
		}
	}
	if _, ok := aec.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "AuditEntry.created_at"`)}
	}
	return nil
}

func (aec *AuditEntryCreate) sqlSave(ctx context.Context) (*AuditEntry, error) {
	if err := aec.check(); err != nil {
		return nil, err
	}
	_node, _spec := aec.createSpec()
	if err := sqlgraph.CreateNode(ctx, aec.driver, _spec); err != nil {
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
	aec.mutation.id = &_node.ID
	aec.mutation.done = true
	return _node, nil
}

func (aec *AuditEntryCreate) createSpec() (*AuditEntry, *sqlgraph.CreateSpec) {
	var (
		_node = &AuditEntry{config: aec.config}
		_spec = sqlgraph.NewCreateSpec(auditentry.Table, sqlgraph.NewFieldSpec(auditentry.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = aec.conflict
	if id, ok := aec.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := aec.mutation.Category(); ok {
		_spec.SetField(auditentry.FieldCategory, field.TypeString, value)
		_node.Category = value
	}
	if value, ok := aec.mutation.Severity(); ok {
		_spec.SetField(auditentry.FieldSeverity, field.TypeEnum, value)
		_node.Severity = value
	}
	if value, ok := aec.mutation.AccountID(); ok {
		_spec.SetField(auditentry.FieldAccountID, field.TypeUUID, value)
		_node.AccountID = value
	}
	if value, ok := aec.mutation.UserID(); ok {
		_spec.SetField(auditentry.FieldUserID, field.TypeUUID, value)
		_node.UserID = value
	}
	if value, ok := aec.mutation.AdminRef(); ok {
		_spec.SetField(auditentry.FieldAdminRef, field.TypeString, value)
		_node.AdminRef = value
	}
	if value, ok := aec.mutation.Before(); ok {
		_spec.SetField(auditentry.FieldBefore, field.TypeJSON, value)
		_node.Before = value
	}
	if value, ok := aec.mutation.After(); ok {
		_spec.SetField(auditentry.FieldAfter, field.TypeJSON, value)
		_node.After = value
	}
	if value, ok := aec.mutation.Reason(); ok {
		_spec.SetField(auditentry.FieldReason, field.TypeString, value)
		_node.Reason = value
	}
	if value, ok := aec.mutation.Metadata(); ok {
		_spec.SetField(auditentry.FieldMetadata, field.TypeJSON, value)
		_node.Metadata = value
	}
	if value, ok := aec.mutation.CreatedAt(); ok {
		_spec.SetField(auditentry.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.AuditEntry.Create().
//		SetCategory(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AuditEntryUpsert) {
//			SetCategory(v+v).
//		}).
//		Exec(ctx)
func (aec *AuditEntryCreate) OnConflict(opts ...sql.ConflictOption) *AuditEntryUpsertOne {
	aec.conflict = opts
	return &AuditEntryUpsertOne{
		create: aec,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.AuditEntry.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (aec *AuditEntryCreate) OnConflictColumns(columns ...string) *AuditEntryUpsertOne {
	aec.conflict = append(aec.conflict, sql.ConflictColumns(columns...))
	return &AuditEntryUpsertOne{
		create: aec,
	}
}

type (
	// AuditEntryUpsertOne is the builder for "upsert"-ing
	//  one AuditEntry node.
	AuditEntryUpsertOne struct {
		create *AuditEntryCreate
	}

	// AuditEntryUpsert is the "OnConflict" setter.
	AuditEntryUpsert struct {
		*sql.UpdateSet
	}
)

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.AuditEntry.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(auditentry.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *AuditEntryUpsertOne) UpdateNewValues() *AuditEntryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(auditentry.FieldID)
		}
		if _, exists := u.create.mutation.Category(); exists {
			s.SetIgnore(auditentry.FieldCategory)
		}
		if _, exists := u.create.mutation.Severity(); exists {
			s.SetIgnore(auditentry.FieldSeverity)
		}
		if _, exists := u.create.mutation.AccountID(); exists {
			s.SetIgnore(auditentry.FieldAccountID)
		}
		if _, exists := u.create.mutation.UserID(); exists {
			s.SetIgnore(auditentry.FieldUserID)
		}
		if _, exists := u.create.mutation.AdminRef(); exists {
			s.SetIgnore(auditentry.FieldAdminRef)
		}
		if _, exists := u.create.mutation.Before(); exists {
			s.SetIgnore(auditentry.FieldBefore)
		}
		if _, exists := u.create.mutation.After(); exists {
			s.SetIgnore(auditentry.FieldAfter)
		}
		if _, exists := u.create.mutation.Reason(); exists {
			s.SetIgnore(auditentry.FieldReason)
		}
		if _, exists := u.create.mutation.Metadata(); exists {
			s.SetIgnore(auditentry.FieldMetadata)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(auditentry.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.AuditEntry.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *AuditEntryUpsertOne) Ignore() *AuditEntryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AuditEntryUpsertOne) DoNothing() *AuditEntryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AuditEntryCreate.OnConflict
// documentation for more info.
func (u *AuditEntryUpsertOne) Update(set func(*AuditEntryUpsert)) *AuditEntryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AuditEntryUpsert{UpdateSet: update})
	}))
	return u
}

// Exec executes the query.
func (u *AuditEntryUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AuditEntryCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AuditEntryUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *AuditEntryUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: AuditEntryUpsertOne.ID is not supported by MySQL driver. Use AuditEntryUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *AuditEntryUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// AuditEntryCreateBulk is the builder for creating many AuditEntry entities in bulk.
type AuditEntryCreateBulk struct {
	config
	err      error
	builders []*AuditEntryCreate
	conflict []sql.ConflictOption
}

// Save creates the AuditEntry entities in the database.
func (aecb *AuditEntryCreateBulk) Save(ctx context.Context) ([]*AuditEntry, error) {
	if aecb.err != nil {
		return nil, aecb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(aecb.builders))
	nodes := make([]*AuditEntry, len(aecb.builders))
	mutators := make([]Mutator, len(aecb.builders))
	for i := range aecb.builders {
		func(i int, root context.Context) {
			builder := aecb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AuditEntryMutation)
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
					_, err = mutators[i+1].Mutate(root, aecb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = aecb.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, aecb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, aecb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (aecb *AuditEntryCreateBulk) SaveX(ctx context.Context) []*AuditEntry {
	v, err := aecb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (aecb *AuditEntryCreateBulk) Exec(ctx context.Context) error {
	_, err := aecb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (aecb *AuditEntryCreateBulk) ExecX(ctx context.Context) {
	if err := aecb.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.AuditEntry.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AuditEntryUpsert) {
//			SetCategory(v+v).
//		}).
//		Exec(ctx)
func (aecb *AuditEntryCreateBulk) OnConflict(opts ...sql.ConflictOption) *AuditEntryUpsertBulk {
	aecb.conflict = opts
	return &AuditEntryUpsertBulk{
		create: aecb,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.AuditEntry.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (aecb *AuditEntryCreateBulk) OnConflictColumns(columns ...string) *AuditEntryUpsertBulk {
	aecb.conflict = append(aecb.conflict, sql.ConflictColumns(columns...))
	return &AuditEntryUpsertBulk{
		create: aecb,
	}
}

// AuditEntryUpsertBulk is the builder for "upsert"-ing
// a bulk of AuditEntry nodes.
type AuditEntryUpsertBulk struct {
	create *AuditEntryCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.AuditEntry.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(auditentry.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *AuditEntryUpsertBulk) UpdateNewValues() *AuditEntryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(auditentry.FieldID)
			}
			if _, exists := b.mutation.Category(); exists {
				s.SetIgnore(auditentry.FieldCategory)
			}
			if _, exists := b.mutation.Severity(); exists {
				s.SetIgnore(auditentry.FieldSeverity)
			}
			if _, exists := b.mutation.AccountID(); exists {
				s.SetIgnore(auditentry.FieldAccountID)
			}
			if _, exists := b.mutation.UserID(); exists {
				s.SetIgnore(auditentry.FieldUserID)
			}
			if _, exists := b.mutation.AdminRef(); exists {
				s.SetIgnore(auditentry.FieldAdminRef)
			}
			if _, exists := b.mutation.Before(); exists {
				s.SetIgnore(auditentry.FieldBefore)
			}
			if _, exists := b.mutation.After(); exists {
				s.SetIgnore(auditentry.FieldAfter)
			}
			if _, exists := b.mutation.Reason(); exists {
				s.SetIgnore(auditentry.FieldReason)
			}
			if _, exists := b.mutation.Metadata(); exists {
				s.SetIgnore(auditentry.FieldMetadata)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(auditentry.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.AuditEntry.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *AuditEntryUpsertBulk) Ignore() *AuditEntryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AuditEntryUpsertBulk) DoNothing() *AuditEntryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AuditEntryCreateBulk.OnConflict
// documentation for more info.
func (u *AuditEntryUpsertBulk) Update(set func(*AuditEntryUpsert)) *AuditEntryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AuditEntryUpsert{UpdateSet: update})
	}))
	return u
}

// Exec executes the query.
func (u *AuditEntryUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the AuditEntryCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AuditEntryCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AuditEntryUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
