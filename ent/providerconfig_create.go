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
	"github.com/monibridge/core/ent/providerconfig"
)

// ProviderConfigCreate is the builder for creating a ProviderConfig entity.
type ProviderConfigCreate struct {
	config
	mutation *ProviderConfigMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (pcc *ProviderConfigCreate) SetCreatedAt(t time.Time) *ProviderConfigCreate {
	pcc.mutation.SetCreatedAt(t)
	return pcc
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (pcc *ProviderConfigCreate) SetNillableCreatedAt(t *time.Time) *ProviderConfigCreate {
	if t != nil {
		pcc.SetCreatedAt(*t)
	}
	return pcc
}

// SetUpdatedAt sets the "updated_at" field.
func (pcc *ProviderConfigCreate) SetUpdatedAt(t time.Time) *ProviderConfigCreate {
	pcc.mutation.SetUpdatedAt(t)
	return pcc
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (pcc *ProviderConfigCreate) SetNillableUpdatedAt(t *time.Time) *ProviderConfigCreate {
	if t != nil {
		pcc.SetUpdatedAt(*t)
	}
	return pcc
}

// SetIdentifier sets the "identifier" field.
func (pcc *ProviderConfigCreate) SetIdentifier(s string) *ProviderConfigCreate {
	pcc.mutation.SetIdentifier(s)
	return pcc
}

// SetCategory sets the "category" field.
func (pcc *ProviderConfigCreate) SetCategory(pr providerconfig.Category) *ProviderConfigCreate {
	pcc.mutation.SetCategory(pr)
	return pcc
}

// SetEnabled sets the "enabled" field.
func (pcc *ProviderConfigCreate) SetEnabled(b bool) *ProviderConfigCreate {
	pcc.mutation.SetEnabled(b)
	return pcc
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (pcc *ProviderConfigCreate) SetNillableEnabled(b *bool) *ProviderConfigCreate {
	if b != nil {
		pcc.SetEnabled(*b)
	}
	return pcc
}

// SetStatus sets the "status" field.
func (pcc *ProviderConfigCreate) SetStatus(pr providerconfig.Status) *ProviderConfigCreate {
	pcc.mutation.SetStatus(pr)
	return pcc
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (pcc *ProviderConfigCreate) SetNillableStatus(pr *providerconfig.Status) *ProviderConfigCreate {
	if pr != nil {
		pcc.SetStatus(*pr)
	}
	return pcc
}

// SetCredential sets the "credential" field.
func (pcc *ProviderConfigCreate) SetCredential(s string) *ProviderConfigCreate {
	pcc.mutation.SetCredential(s)
	return pcc
}

// SetNillableCredential sets the "credential" field if the given value is not nil.
func (pcc *ProviderConfigCreate) SetNillableCredential(s *string) *ProviderConfigCreate {
	if s != nil {
		pcc.SetCredential(*s)
	}
	return pcc
}

// SetEndpointURL sets the "endpoint_url" field.
func (pcc *ProviderConfigCreate) SetEndpointURL(s string) *ProviderConfigCreate {
	pcc.mutation.SetEndpointURL(s)
	return pcc
}

// SetNillableEndpointURL sets the "endpoint_url" field if the given value is not nil.
func (pcc *ProviderConfigCreate) SetNillableEndpointURL(s *string) *ProviderConfigCreate {
	if s != nil {
		pcc.SetEndpointURL(*s)
	}
	return pcc
}

// SetSettings sets the "settings" field.
func (pcc *ProviderConfigCreate) SetSettings(m map[string]interface{}) *ProviderConfigCreate {
	pcc.mutation.SetSettings(m)
	return pcc
}

// SetLastTestedAt sets the "last_tested_at" field.
func (pcc *ProviderConfigCreate) SetLastTestedAt(t time.Time) *ProviderConfigCreate {
	pcc.mutation.SetLastTestedAt(t)
	return pcc
}

// SetNillableLastTestedAt sets the "last_tested_at" field if the given value is not nil.
func (pcc *ProviderConfigCreate) SetNillableLastTestedAt(t *time.Time) *ProviderConfigCreate {
	if t != nil {
		pcc.SetLastTestedAt(*t)
	}
	return pcc
}

// Mutation returns the ProviderConfigMutation object of the builder.
func (pcc *ProviderConfigCreate) Mutation() *ProviderConfigMutation {
	return pcc.mutation
}

// Save creates the ProviderConfig in the database.
func (pcc *ProviderConfigCreate) Save(ctx context.Context) (*ProviderConfig, error) {
	pcc.defaults()
	return withHooks(ctx, pcc.sqlSave, pcc.mutation, pcc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (pcc *ProviderConfigCreate) SaveX(ctx context.Context) *ProviderConfig {
	v, err := pcc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (pcc *ProviderConfigCreate) Exec(ctx context.Context) error {
	_, err := pcc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (pcc *ProviderConfigCreate) ExecX(ctx context.Context) {
	if err := pcc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (pcc *ProviderConfigCreate) defaults() {
	if _, ok := pcc.mutation.CreatedAt(); !ok {
		v := providerconfig.DefaultCreatedAt()
		pcc.mutation.SetCreatedAt(v)
	}
	if _, ok := pcc.mutation.UpdatedAt(); !ok {
		v := providerconfig.DefaultUpdatedAt()
		pcc.mutation.SetUpdatedAt(v)
	}
	if _, ok := pcc.mutation.Enabled(); !ok {
		v := providerconfig.DefaultEnabled
		pcc.mutation.SetEnabled(v)
	}
	if _, ok := pcc.mutation.Status(); !ok {
		v := providerconfig.DefaultStatus
		pcc.mutation.SetStatus(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (pcc *ProviderConfigCreate) check() error {
	if _, ok := pcc.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ProviderConfig.created_at"`)}
	}
	if _, ok := pcc.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ProviderConfig.updated_at"`)}
	}
	if _, ok := pcc.mutation.Identifier(); !ok {
		return &ValidationError{Name: "identifier", err: errors.New(`ent: missing required field "ProviderConfig.identifier"`)}
	}
	if _, ok := pcc.mutation.Category(); !ok {
		return &ValidationError{Name: "category", err: errors.New(`ent: missing required field "ProviderConfig.category"`)}
	}
	if v, ok := pcc.mutation.Category(); ok {
		if err := providerconfig.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "ProviderConfig.category": %w`, err)}
		}
	}
	if _, ok := pcc.mutation.Enabled(); !ok {
		return &ValidationError{Name: "enabled", err: errors.New(`ent: missing required field "ProviderConfig.enabled"`)}
	}
	if _, ok := pcc.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "ProviderConfig.status"`)}
	}
	if v, ok := pcc.mutation.Status(); ok {
		if err := providerconfig.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ProviderConfig.status": %w`, err)}
		}
	}
	return nil
}

func (pcc *ProviderConfigCreate) sqlSave(ctx context.Context) (*ProviderConfig, error) {
	if err := pcc.check(); err != nil {
		return nil, err
	}
	_node, _spec := pcc.createSpec()
	if err := sqlgraph.CreateNode(ctx, pcc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	pcc.mutation.id = &_node.ID
	pcc.mutation.done = true
	return _node, nil
}

func (pcc *ProviderConfigCreate) createSpec() (*ProviderConfig, *sqlgraph.CreateSpec) {
	var (
		_node = &ProviderConfig{config: pcc.config}
		_spec = sqlgraph.NewCreateSpec(providerconfig.Table, sqlgraph.NewFieldSpec(providerconfig.FieldID, field.TypeInt))
	)
	_spec.OnConflict = pcc.conflict
	if value, ok := pcc.mutation.CreatedAt(); ok {
		_spec.SetField(providerconfig.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := pcc.mutation.UpdatedAt(); ok {
		_spec.SetField(providerconfig.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := pcc.mutation.Identifier(); ok {
		_spec.SetField(providerconfig.FieldIdentifier, field.TypeString, value)
		_node.Identifier = value
	}
	if value, ok := pcc.mutation.Category(); ok {
		_spec.SetField(providerconfig.FieldCategory, field.TypeEnum, value)
		_node.Category = value
	}
	if value, ok := pcc.mutation.Enabled(); ok {
		_spec.SetField(providerconfig.FieldEnabled, field.TypeBool, value)
		_node.Enabled = value
	}
	if value, ok := pcc.mutation.Status(); ok {
		_spec.SetField(providerconfig.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := pcc.mutation.Credential(); ok {
		_spec.SetField(providerconfig.FieldCredential, field.TypeString, value)
		_node.Credential = value
	}
	if value, ok := pcc.mutation.EndpointURL(); ok {
		_spec.SetField(providerconfig.FieldEndpointURL, field.TypeString, value)
		_node.EndpointURL = value
	}
	if value, ok := pcc.mutation.Settings(); ok {
		_spec.SetField(providerconfig.FieldSettings, field.TypeJSON, value)
		_node.Settings = value
	}
	if value, ok := pcc.mutation.LastTestedAt(); ok {
		_spec.SetField(providerconfig.FieldLastTestedAt, field.TypeTime, value)
		_node.LastTestedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ProviderConfig.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ProviderConfigUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (pcc *ProviderConfigCreate) OnConflict(opts ...sql.ConflictOption) *ProviderConfigUpsertOne {
	pcc.conflict = opts
	return &ProviderConfigUpsertOne{
		create: pcc,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ProviderConfig.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (pcc *ProviderConfigCreate) OnConflictColumns(columns ...string) *ProviderConfigUpsertOne {
	pcc.conflict = append(pcc.conflict, sql.ConflictColumns(columns...))
	return &ProviderConfigUpsertOne{
		create: pcc,
	}
}

type (
	// ProviderConfigUpsertOne is the builder for "upsert"-ing
	//  one ProviderConfig node.
	ProviderConfigUpsertOne struct {
		create *ProviderConfigCreate
	}

	// ProviderConfigUpsert is the "OnConflict" setter.
	ProviderConfigUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *ProviderConfigUpsert) SetUpdatedAt(v time.Time) *ProviderConfigUpsert {
	u.Set(providerconfig.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ProviderConfigUpsert) UpdateUpdatedAt() *ProviderConfigUpsert {
	u.SetExcluded(providerconfig.FieldUpdatedAt)
	return u
}

// SetEnabled sets the "enabled" field.
func (u *ProviderConfigUpsert) SetEnabled(v bool) *ProviderConfigUpsert {
	u.Set(providerconfig.FieldEnabled, v)
	return u
}

// UpdateEnabled sets the "enabled" field to the value that was provided on create.
func (u *ProviderConfigUpsert) UpdateEnabled() *ProviderConfigUpsert {
	u.SetExcluded(providerconfig.FieldEnabled)
	return u
}

// SetStatus sets the "status" field.
func (u *ProviderConfigUpsert) SetStatus(v providerconfig.Status) *ProviderConfigUpsert {
	u.Set(providerconfig.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ProviderConfigUpsert) UpdateStatus() *ProviderConfigUpsert {
	u.SetExcluded(providerconfig.FieldStatus)
	return u
}

// SetCredential sets the "credential" field.
func (u *ProviderConfigUpsert) SetCredential(v string) *ProviderConfigUpsert {
	u.Set(providerconfig.FieldCredential, v)
	return u
}

// UpdateCredential sets the "credential" field to the value that was provided on create.
func (u *ProviderConfigUpsert) UpdateCredential() *ProviderConfigUpsert {
	u.SetExcluded(providerconfig.FieldCredential)
	return u
}

// ClearCredential clears the value of the "credential" field.
func (u *ProviderConfigUpsert) ClearCredential() *ProviderConfigUpsert {
	u.SetNull(providerconfig.FieldCredential)
	return u
}

// SetEndpointURL sets the "endpoint_url" field.
func (u *ProviderConfigUpsert) SetEndpointURL(v string) *ProviderConfigUpsert {
	u.Set(providerconfig.FieldEndpointURL, v)
	return u
}

// UpdateEndpointURL sets the "endpoint_url" field to the value that was provided on create.
func (u *ProviderConfigUpsert) UpdateEndpointURL() *ProviderConfigUpsert {
	u.SetExcluded(providerconfig.FieldEndpointURL)
	return u
}

// ClearEndpointURL clears the value of the "endpoint_url" field.
func (u *ProviderConfigUpsert) ClearEndpointURL() *ProviderConfigUpsert {
	u.SetNull(providerconfig.FieldEndpointURL)
	return u
}

// SetSettings sets the "settings" field.
func (u *ProviderConfigUpsert) SetSettings(v map[string]interface{}) *ProviderConfigUpsert {
	u.Set(providerconfig.FieldSettings, v)
	return u
}

// UpdateSettings sets the "settings" field to the value that was provided on create.
func (u *ProviderConfigUpsert) UpdateSettings() *ProviderConfigUpsert {
	u.SetExcluded(providerconfig.FieldSettings)
	return u
}

// ClearSettings clears the value of the "settings" field.
func (u *ProviderConfigUpsert) ClearSettings() *ProviderConfigUpsert {
	u.SetNull(providerconfig.FieldSettings)
	return u
}

// SetLastTestedAt sets the "last_tested_at" field.
func (u *ProviderConfigUpsert) SetLastTestedAt(v time.Time) *ProviderConfigUpsert {
	u.Set(providerconfig.FieldLastTestedAt, v)
	return u
}

// UpdateLastTestedAt sets the "last_tested_at" field to the value that was provided on create.
func (u *ProviderConfigUpsert) UpdateLastTestedAt() *ProviderConfigUpsert {
	u.SetExcluded(providerconfig.FieldLastTestedAt)
	return u
}

// ClearLastTestedAt clears the value of the "last_tested_at" field.
func (u *ProviderConfigUpsert) ClearLastTestedAt() *ProviderConfigUpsert {
	u.SetNull(providerconfig.FieldLastTestedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.ProviderConfig.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *ProviderConfigUpsertOne) UpdateNewValues() *ProviderConfigUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(providerconfig.FieldCreatedAt)
		}
		if _, exists := u.create.mutation.Identifier(); exists {
			s.SetIgnore(providerconfig.FieldIdentifier)
		}
		if _, exists := u.create.mutation.Category(); exists {
			s.SetIgnore(providerconfig.FieldCategory)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ProviderConfig.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ProviderConfigUpsertOne) Ignore() *ProviderConfigUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ProviderConfigUpsertOne) DoNothing() *ProviderConfigUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ProviderConfigCreate.OnConflict
// documentation for more info.
func (u *ProviderConfigUpsertOne) Update(set func(*ProviderConfigUpsert)) *ProviderConfigUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ProviderConfigUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ProviderConfigUpsertOne) SetUpdatedAt(v time.Time) *ProviderConfigUpsertOne {
	return u.Update(func(s *ProviderConfigUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ProviderConfigUpsertOne) UpdateUpdatedAt() *ProviderConfigUpsertOne {
	return u.Update(func(s *ProviderConfigUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetEnabled sets the "enabled" field.
func (u *ProviderConfigUpsertOne) SetEnabled(v bool) *ProviderConfigUpsertOne {
	return u.Update(func(s *ProviderConfigUpsert) {
		s.SetEnabled(v)
	})
}

// UpdateEnabled sets the "enabled" field to the value that was provided on create.
func (u *ProviderConfigUpsertOne) UpdateEnabled() *ProviderConfigUpsertOne {
	return u.Update(func(s *ProviderConfigUpsert) {
		s.UpdateEnabled()
	})
}

// SetStatus sets the "status" field.
func (u *ProviderConfigUpsertOne) SetStatus(v providerconfig.Status) *ProviderConfigUpsertOne {
	return u.Update(func(s *ProviderConfigUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ProviderConfigUpsertOne) UpdateStatus() *ProviderConfigUpsertOne {
	return u.Update(func(s *ProviderConfigUpsert) {
		s.UpdateStatus()
	})
}

// SetCredential sets the "credential" field.
func (u *ProviderConfigUpsertOne) SetCredential(v string) *ProviderConfigUpsertOne {
	return u.Update(func(s *ProviderConfigUpsert) {
		s.SetCredential(v)
	})
}

// UpdateCredential sets the "credential" field to the value that was provided on create.
func (u *ProviderConfigUpsertOne) UpdateCredential() *ProviderConfigUpsertOne {
	return u.Update(func(s *ProviderConfigUpsert) {
		s.UpdateCredential()
	})
}

// ClearCredential clears the value of the "credential" field.
func (u *ProviderConfigUpsertOne) ClearCredential() *ProviderConfigUpsertOne {
	return u.Update(func(s *ProviderConfigUpsert) {
		s.ClearCredential()
	})
}

// SetEndpointURL sets the "endpoint_url" field.
func (u *ProviderConfigUpsertOne) SetEndpointURL(v string) *ProviderConfigUpsertOne {
	return u.Update(func(s *ProviderConfigUpsert) {
		s.SetEndpointURL(v)
	})
}

// UpdateEndpointURL sets the "endpoint_url" field to the value that was provided on create.
func (u *ProviderConfigUpsertOne) UpdateEndpointURL() *ProviderConfigUpsertOne {
	return u.Update(func(s *ProviderConfigUpsert) {
		s.UpdateEndpointURL()
	})
}

// ClearEndpointURL clears the value of the "endpoint_url" field.
func (u *ProviderConfigUpsertOne) ClearEndpointURL() *ProviderConfigUpsertOne {
	return u.Update(func(s *ProviderConfigUpsert) {
		s.ClearEndpointURL()
	})
}

// SetSettings sets the "settings" field.
func (u *ProviderConfigUpsertOne) SetSettings(v map[string]interface{}) *ProviderConfigUpsertOne {
	return u.Update(func(s *ProviderConfigUpsert) {
		s.SetSettings(v)
	})
}

// UpdateSettings sets the "settings" field to the value that was provided on create.
func (u *ProviderConfigUpsertOne) UpdateSettings() *ProviderConfigUpsertOne {
	return u.Update(func(s *ProviderConfigUpsert) {
		s.UpdateSettings()
	})
}

// ClearSettings clears the value of the "settings" field.
func (u *ProviderConfigUpsertOne) ClearSettings() *ProviderConfigUpsertOne {
	return u.Update(func(s *ProviderConfigUpsert) {
		s.ClearSettings()
	})
}

// SetLastTestedAt sets the "last_tested_at" field.
func (u *ProviderConfigUpsertOne) SetLastTestedAt(v time.Time) *ProviderConfigUpsertOne {
	return u.Update(func(s *ProviderConfigUpsert) {
		s.SetLastTestedAt(v)
	})
}

// UpdateLastTestedAt sets the "last_tested_at" field to the value that was provided on create.
func (u *ProviderConfigUpsertOne) UpdateLastTestedAt() *ProviderConfigUpsertOne {
	return u.Update(func(s *ProviderConfigUpsert) {
		s.UpdateLastTestedAt()
	})
}

// ClearLastTestedAt clears the value of the "last_tested_at" field.
func (u *ProviderConfigUpsertOne) ClearLastTestedAt() *ProviderConfigUpsertOne {
	return u.Update(func(s *ProviderConfigUpsert) {
		s.ClearLastTestedAt()
	})
}

// Exec executes the query.
func (u *ProviderConfigUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ProviderConfigCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ProviderConfigUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ProviderConfigUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ProviderConfigUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ProviderConfigCreateBulk is the builder for creating many ProviderConfig entities in bulk.
type ProviderConfigCreateBulk struct {
	config
	err      error
	builders []*ProviderConfigCreate
	conflict []sql.ConflictOption
}

// Save creates the ProviderConfig entities in the database.
func (pccb *ProviderConfigCreateBulk) Save(ctx context.Context) ([]*ProviderConfig, error) {
	if pccb.err != nil {
		return nil, pccb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(pccb.builders))
	nodes := make([]*ProviderConfig, len(pccb.builders))
	mutators := make([]Mutator, len(pccb.builders))
	for i := range pccb.builders {
		func(i int, root context.Context) {
			builder := pccb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ProviderConfigMutation)
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
					_, err = mutators[i+1].Mutate(root, pccb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = pccb.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, pccb.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
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
		if _, err := mutators[0].Mutate(ctx, pccb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (pccb *ProviderConfigCreateBulk) SaveX(ctx context.Context) []*ProviderConfig {
	v, err := pccb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (pccb *ProviderConfigCreateBulk) Exec(ctx context.Context) error {
	_, err := pccb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (pccb *ProviderConfigCreateBulk) ExecX(ctx context.Context) {
	if err := pccb.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ProviderConfig.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ProviderConfigUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (pccb *ProviderConfigCreateBulk) OnConflict(opts ...sql.ConflictOption) *ProviderConfigUpsertBulk {
	pccb.conflict = opts
	return &ProviderConfigUpsertBulk{
		create: pccb,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ProviderConfig.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (pccb *ProviderConfigCreateBulk) OnConflictColumns(columns ...string) *ProviderConfigUpsertBulk {
	pccb.conflict = append(pccb.conflict, sql.ConflictColumns(columns...))
	return &ProviderConfigUpsertBulk{
		create: pccb,
	}
}

// ProviderConfigUpsertBulk is the builder for "upsert"-ing
// a bulk of ProviderConfig nodes.
type ProviderConfigUpsertBulk struct {
	create *ProviderConfigCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.ProviderConfig.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *ProviderConfigUpsertBulk) UpdateNewValues() *ProviderConfigUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(providerconfig.FieldCreatedAt)
			}
			if _, exists := b.mutation.Identifier(); exists {
				s.SetIgnore(providerconfig.FieldIdentifier)
			}
			if _, exists := b.mutation.Category(); exists {
				s.SetIgnore(providerconfig.FieldCategory)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ProviderConfig.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ProviderConfigUpsertBulk) Ignore() *ProviderConfigUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ProviderConfigUpsertBulk) DoNothing() *ProviderConfigUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ProviderConfigCreateBulk.OnConflict
// documentation for more info.
func (u *ProviderConfigUpsertBulk) Update(set func(*ProviderConfigUpsert)) *ProviderConfigUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ProviderConfigUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ProviderConfigUpsertBulk) SetUpdatedAt(v time.Time) *ProviderConfigUpsertBulk {
	return u.Update(func(s *ProviderConfigUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ProviderConfigUpsertBulk) UpdateUpdatedAt() *ProviderConfigUpsertBulk {
	return u.Update(func(s *ProviderConfigUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetEnabled sets the "enabled" field.
func (u *ProviderConfigUpsertBulk) SetEnabled(v bool) *ProviderConfigUpsertBulk {
	return u.Update(func(s *ProviderConfigUpsert) {
		s.SetEnabled(v)
	})
}

// UpdateEnabled sets the "enabled" field to the value that was provided on create.
func (u *ProviderConfigUpsertBulk) UpdateEnabled() *ProviderConfigUpsertBulk {
	return u.Update(func(s *ProviderConfigUpsert) {
		s.UpdateEnabled()
	})
}

// SetStatus sets the "status" field.
func (u *ProviderConfigUpsertBulk) SetStatus(v providerconfig.Status) *ProviderConfigUpsertBulk {
	return u.Update(func(s *ProviderConfigUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ProviderConfigUpsertBulk) UpdateStatus() *ProviderConfigUpsertBulk {
	return u.Update(func(s *ProviderConfigUpsert) {
		s.UpdateStatus()
	})
}

// SetCredential sets the "credential" field.
func (u *ProviderConfigUpsertBulk) SetCredential(v string) *ProviderConfigUpsertBulk {
	return u.Update(func(s *ProviderConfigUpsert) {
		s.SetCredential(v)
	})
}

// UpdateCredential sets the "credential" field to the value that was provided on create.
func (u *ProviderConfigUpsertBulk) UpdateCredential() *ProviderConfigUpsertBulk {
	return u.Update(func(s *ProviderConfigUpsert) {
		s.UpdateCredential()
	})
}

// ClearCredential clears the value of the "credential" field.
func (u *ProviderConfigUpsertBulk) ClearCredential() *ProviderConfigUpsertBulk {
	return u.Update(func(s *ProviderConfigUpsert) {
		s.ClearCredential()
	})
}

// SetEndpointURL sets the "endpoint_url" field.
func (u *ProviderConfigUpsertBulk) SetEndpointURL(v string) *ProviderConfigUpsertBulk {
	return u.Update(func(s *ProviderConfigUpsert) {
		s.SetEndpointURL(v)
	})
}

// UpdateEndpointURL sets the "endpoint_url" field to the value that was provided on create.
func (u *ProviderConfigUpsertBulk) UpdateEndpointURL() *ProviderConfigUpsertBulk {
	return u.Update(func(s *ProviderConfigUpsert) {
		s.UpdateEndpointURL()
	})
}

// ClearEndpointURL clears the value of the "endpoint_url" field.
func (u *ProviderConfigUpsertBulk) ClearEndpointURL() *ProviderConfigUpsertBulk {
	return u.Update(func(s *ProviderConfigUpsert) {
		s.ClearEndpointURL()
	})
}

// SetSettings sets the "settings" field.
func (u *ProviderConfigUpsertBulk) SetSettings(v map[string]interface{}) *ProviderConfigUpsertBulk {
	return u.Update(func(s *ProviderConfigUpsert) {
		s.SetSettings(v)
	})
}

// UpdateSettings sets the "settings" field to the value that was provided on create.
func (u *ProviderConfigUpsertBulk) UpdateSettings() *ProviderConfigUpsertBulk {
	return u.Update(func(s *ProviderConfigUpsert) {
		s.UpdateSettings()
	})
}

// ClearSettings clears the value of the "settings" field.
func (u *ProviderConfigUpsertBulk) ClearSettings() *ProviderConfigUpsertBulk {
	return u.Update(func(s *ProviderConfigUpsert) {
		s.ClearSettings()
	})
}

// SetLastTestedAt sets the "last_tested_at" field.
func (u *ProviderConfigUpsertBulk) SetLastTestedAt(v time.Time) *ProviderConfigUpsertBulk {
	return u.Update(func(s *ProviderConfigUpsert) {
		s.SetLastTestedAt(v)
	})
}

// UpdateLastTestedAt sets the "last_tested_at" field to the value that was provided on create.
func (u *ProviderConfigUpsertBulk) UpdateLastTestedAt() *ProviderConfigUpsertBulk {
	return u.Update(func(s *ProviderConfigUpsert) {
		s.UpdateLastTestedAt()
	})
}

// ClearLastTestedAt clears the value of the "last_tested_at" field.
func (u *ProviderConfigUpsertBulk) ClearLastTestedAt() *ProviderConfigUpsertBulk {
	return u.Update(func(s *ProviderConfigUpsert) {
		s.ClearLastTestedAt()
	})
}

// Exec executes the query.
func (u *ProviderConfigUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ProviderConfigCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ProviderConfigCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ProviderConfigUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
