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
	"github.com/monibridge/core/ent/predicate"
	"github.com/monibridge/core/ent/providerconfig"
)

// ProviderConfigUpdate is the builder for updating ProviderConfig entities.
type ProviderConfigUpdate struct {
	config
	hooks    []Hook
	mutation *ProviderConfigMutation
}

// Where appends a list predicates to the ProviderConfigUpdate builder.
func (pcu *ProviderConfigUpdate) Where(ps ...predicate.ProviderConfig) *ProviderConfigUpdate {
	pcu.mutation.Where(ps...)
	return pcu
}

// SetUpdatedAt sets the "updated_at" field.
func (pcu *ProviderConfigUpdate) SetUpdatedAt(t time.Time) *ProviderConfigUpdate {
	pcu.mutation.SetUpdatedAt(t)
	return pcu
}

// SetEnabled sets the "enabled" field.
func (pcu *ProviderConfigUpdate) SetEnabled(b bool) *ProviderConfigUpdate {
	pcu.mutation.SetEnabled(b)
	return pcu
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (pcu *ProviderConfigUpdate) SetNillableEnabled(b *bool) *ProviderConfigUpdate {
	if b != nil {
		pcu.SetEnabled(*b)
	}
	return pcu
}

// SetStatus sets the "status" field.
func (pcu *ProviderConfigUpdate) SetStatus(pr providerconfig.Status) *ProviderConfigUpdate {
	pcu.mutation.SetStatus(pr)
	return pcu
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (pcu *ProviderConfigUpdate) SetNillableStatus(pr *providerconfig.Status) *ProviderConfigUpdate {
	if pr != nil {
		pcu.SetStatus(*pr)
	}
	return pcu
}

// SetCredential sets the "credential" field.
func (pcu *ProviderConfigUpdate) SetCredential(s string) *ProviderConfigUpdate {
	pcu.mutation.SetCredential(s)
	return pcu
}

// SetNillableCredential sets the "credential" field if the given value is not nil.
func (pcu *ProviderConfigUpdate) SetNillableCredential(s *string) *ProviderConfigUpdate {
	if s != nil {
		pcu.SetCredential(*s)
	}
	return pcu
}

// ClearCredential clears the value of the "credential" field.
func (pcu *ProviderConfigUpdate) ClearCredential() *ProviderConfigUpdate {
	pcu.mutation.ClearCredential()
	return pcu
}

// SetEndpointURL sets the "endpoint_url" field.
func (pcu *ProviderConfigUpdate) SetEndpointURL(s string) *ProviderConfigUpdate {
	pcu.mutation.SetEndpointURL(s)
	return pcu
}

// SetNillableEndpointURL sets the "endpoint_url" field if the given value is not nil.
func (pcu *ProviderConfigUpdate) SetNillableEndpointURL(s *string) *ProviderConfigUpdate {
	if s != nil {
		pcu.SetEndpointURL(*s)
	}
	return pcu
}

// ClearEndpointURL clears the value of the "endpoint_url" field.
func (pcu *ProviderConfigUpdate) ClearEndpointURL() *ProviderConfigUpdate {
	pcu.mutation.ClearEndpointURL()
	return pcu
}

// SetSettings sets the "settings" field.
func (pcu *ProviderConfigUpdate) SetSettings(m map[string]interface{}) *ProviderConfigUpdate {
	pcu.mutation.SetSettings(m)
	return pcu
}

// ClearSettings clears the value of the "settings" field.
func (pcu *ProviderConfigUpdate) ClearSettings() *ProviderConfigUpdate {
	pcu.mutation.ClearSettings()
	return pcu
}

// SetLastTestedAt sets the "last_tested_at" field.
func (pcu *ProviderConfigUpdate) SetLastTestedAt(t time.Time) *ProviderConfigUpdate {
	pcu.mutation.SetLastTestedAt(t)
	return pcu
}

// SetNillableLastTestedAt sets the "last_tested_at" field if the given value is not nil.
func (pcu *ProviderConfigUpdate) SetNillableLastTestedAt(t *time.Time) *ProviderConfigUpdate {
	if t != nil {
		pcu.SetLastTestedAt(*t)
	}
	return pcu
}

// ClearLastTestedAt clears the value of the "last_tested_at" field.
func (pcu *ProviderConfigUpdate) ClearLastTestedAt() *ProviderConfigUpdate {
	pcu.mutation.ClearLastTestedAt()
	return pcu
}

// Mutation returns the ProviderConfigMutation object of the builder.
func (pcu *ProviderConfigUpdate) Mutation() *ProviderConfigMutation {
	return pcu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (pcu *ProviderConfigUpdate) Save(ctx context.Context) (int, error) {
	pcu.defaults()
	return withHooks(ctx, pcu.sqlSave, pcu.mutation, pcu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (pcu *ProviderConfigUpdate) SaveX(ctx context.Context) int {
	affected, err := pcu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (pcu *ProviderConfigUpdate) Exec(ctx context.Context) error {
	_, err := pcu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (pcu *ProviderConfigUpdate) ExecX(ctx context.Context) {
	if err := pcu.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (pcu *ProviderConfigUpdate) defaults() {
	if _, ok := pcu.mutation.UpdatedAt(); !ok {
		v := providerconfig.UpdateDefaultUpdatedAt()
		pcu.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (pcu *ProviderConfigUpdate) check() error {
	if v, ok := pcu.mutation.Status(); ok {
		if err := providerconfig.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ProviderConfig.status": %w`, err)}
		}
	}
	return nil
}

func (pcu *ProviderConfigUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := pcu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(providerconfig.Table, providerconfig.Columns, sqlgraph.NewFieldSpec(providerconfig.FieldID, field.TypeInt))
	if ps := pcu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := pcu.mutation.UpdatedAt(); ok {
		_spec.SetField(providerconfig.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := pcu.mutation.Enabled(); ok {
		_spec.SetField(providerconfig.FieldEnabled, field.TypeBool, value)
	}
	if value, ok := pcu.mutation.Status(); ok {
		_spec.SetField(providerconfig.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := pcu.mutation.Credential(); ok {
		_spec.SetField(providerconfig.FieldCredential, field.TypeString, value)
	}
	if pcu.mutation.CredentialCleared() {
		_spec.ClearField(providerconfig.FieldCredential, field.TypeString)
	}
	if value, ok := pcu.mutation.EndpointURL(); ok {
		_spec.SetField(providerconfig.FieldEndpointURL, field.TypeString, value)
	}
	if pcu.mutation.EndpointURLCleared() {
		_spec.ClearField(providerconfig.FieldEndpointURL, field.TypeString)
	}
	if value, ok := pcu.mutation.Settings(); ok {
		_spec.SetField(providerconfig.FieldSettings, field.TypeJSON, value)
	}
	if pcu.mutation.SettingsCleared() {
		_spec.ClearField(providerconfig.FieldSettings, field.TypeJSON)
	}
	if value, ok := pcu.mutation.LastTestedAt(); ok {
		_spec.SetField(providerconfig.FieldLastTestedAt, field.TypeTime, value)
	}
	if pcu.mutation.LastTestedAtCleared() {
		_spec.ClearField(providerconfig.FieldLastTestedAt, field.TypeTime)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, pcu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{providerconfig.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	pcu.mutation.done = true
	return n, nil
}

// ProviderConfigUpdateOne is the builder for updating a single ProviderConfig entity.
type ProviderConfigUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProviderConfigMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (pcuo *ProviderConfigUpdateOne) SetUpdatedAt(t time.Time) *ProviderConfigUpdateOne {
	pcuo.mutation.SetUpdatedAt(t)
	return pcuo
}

// SetEnabled sets the "enabled" field.
func (pcuo *ProviderConfigUpdateOne) SetEnabled(b bool) *ProviderConfigUpdateOne {
	pcuo.mutation.SetEnabled(b)
	return pcuo
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (pcuo *ProviderConfigUpdateOne) SetNillableEnabled(b *bool) *ProviderConfigUpdateOne {
	if b != nil {
		pcuo.SetEnabled(*b)
	}
	return pcuo
}

// SetStatus sets the "status" field.
func (pcuo *ProviderConfigUpdateOne) SetStatus(pr providerconfig.Status) *ProviderConfigUpdateOne {
	pcuo.mutation.SetStatus(pr)
	return pcuo
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (pcuo *ProviderConfigUpdateOne) SetNillableStatus(pr *providerconfig.Status) *ProviderConfigUpdateOne {
	if pr != nil {
		pcuo.SetStatus(*pr)
	}
	return pcuo
}

// SetCredential sets the "credential" field.
func (pcuo *ProviderConfigUpdateOne) SetCredential(s string) *ProviderConfigUpdateOne {
	pcuo.mutation.SetCredential(s)
	return pcuo
}

// SetNillableCredential sets the "credential" field if the given value is not nil.
func (pcuo *ProviderConfigUpdateOne) SetNillableCredential(s *string) *ProviderConfigUpdateOne {
	if s != nil {
		pcuo.SetCredential(*s)
	}
	return pcuo
}

// ClearCredential clears the value of the "credential" field.
func (pcuo *ProviderConfigUpdateOne) ClearCredential() *ProviderConfigUpdateOne {
	pcuo.mutation.ClearCredential()
	return pcuo
}

// SetEndpointURL sets the "endpoint_url" field.
func (pcuo *ProviderConfigUpdateOne) SetEndpointURL(s string) *ProviderConfigUpdateOne {
	pcuo.mutation.SetEndpointURL(s)
	return pcuo
}

// SetNillableEndpointURL sets the "endpoint_url" field if the given value is not nil.
func (pcuo *ProviderConfigUpdateOne) SetNillableEndpointURL(s *string) *ProviderConfigUpdateOne {
	if s != nil {
		pcuo.SetEndpointURL(*s)
	}
	return pcuo
}

// ClearEndpointURL clears the value of the "endpoint_url" field.
func (pcuo *ProviderConfigUpdateOne) ClearEndpointURL() *ProviderConfigUpdateOne {
	pcuo.mutation.ClearEndpointURL()
	return pcuo
}

// SetSettings sets the "settings" field.
func (pcuo *ProviderConfigUpdateOne) SetSettings(m map[string]interface{}) *ProviderConfigUpdateOne {
	pcuo.mutation.SetSettings(m)
	return pcuo
}

// ClearSettings clears the value of the "settings" field.
func (pcuo *ProviderConfigUpdateOne) ClearSettings() *ProviderConfigUpdateOne {
	pcuo.mutation.ClearSettings()
	return pcuo
}

// SetLastTestedAt sets the "last_tested_at" field.
func (pcuo *ProviderConfigUpdateOne) SetLastTestedAt(t time.Time) *ProviderConfigUpdateOne {
	pcuo.mutation.SetLastTestedAt(t)
	return pcuo
}

// SetNillableLastTestedAt sets the "last_tested_at" field if the given value is not nil.
func (pcuo *ProviderConfigUpdateOne) SetNillableLastTestedAt(t *time.Time) *ProviderConfigUpdateOne {
	if t != nil {
		pcuo.SetLastTestedAt(*t)
	}
	return pcuo
}

// ClearLastTestedAt clears the value of the "last_tested_at" field.
func (pcuo *ProviderConfigUpdateOne) ClearLastTestedAt() *ProviderConfigUpdateOne {
	pcuo.mutation.ClearLastTestedAt()
	return pcuo
}

// Mutation returns the ProviderConfigMutation object of the builder.
func (pcuo *ProviderConfigUpdateOne) Mutation() *ProviderConfigMutation {
	return pcuo.mutation
}

// Where appends a list predicates to the ProviderConfigUpdate builder.
func (pcuo *ProviderConfigUpdateOne) Where(ps ...predicate.ProviderConfig) *ProviderConfigUpdateOne {
	pcuo.mutation.Where(ps...)
	return pcuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (pcuo *ProviderConfigUpdateOne) Select(field string, fields ...string) *ProviderConfigUpdateOne {
	pcuo.fields = append([]string{field}, fields...)
	return pcuo
}

// Save executes the query and returns the updated ProviderConfig entity.
func (pcuo *ProviderConfigUpdateOne) Save(ctx context.Context) (*ProviderConfig, error) {
	pcuo.defaults()
	return withHooks(ctx, pcuo.sqlSave, pcuo.mutation, pcuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (pcuo *ProviderConfigUpdateOne) SaveX(ctx context.Context) *ProviderConfig {
	node, err := pcuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (pcuo *ProviderConfigUpdateOne) Exec(ctx context.Context) error {
	_, err := pcuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (pcuo *ProviderConfigUpdateOne) ExecX(ctx context.Context) {
	if err := pcuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (pcuo *ProviderConfigUpdateOne) defaults() {
	if _, ok := pcuo.mutation.UpdatedAt(); !ok {
		v := providerconfig.UpdateDefaultUpdatedAt()
		pcuo.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (pcuo *ProviderConfigUpdateOne) check() error {
	if v, ok := pcuo.mutation.Status(); ok {
		if err := providerconfig.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ProviderConfig.status": %w`, err)}
		}
	}
	return nil
}

func (pcuo *ProviderConfigUpdateOne) sqlSave(ctx context.Context) (_node *ProviderConfig, err error) {
	if err := pcuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(providerconfig.Table, providerconfig.Columns, sqlgraph.NewFieldSpec(providerconfig.FieldID, field.TypeInt))
	id, ok := pcuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ProviderConfig.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := pcuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, providerconfig.FieldID)
		for _, f := range fields {
			if !providerconfig.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != providerconfig.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := pcuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := pcuo.mutation.UpdatedAt(); ok {
		_spec.SetField(providerconfig.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := pcuo.mutation.Enabled(); ok {
		_spec.SetField(providerconfig.FieldEnabled, field.TypeBool, value)
	}
	if value, ok := pcuo.mutation.Status(); ok {
		_spec.SetField(providerconfig.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := pcuo.mutation.Credential(); ok {
		_spec.SetField(providerconfig.FieldCredential, field.TypeString, value)
	}
	if pcuo.mutation.CredentialCleared() {
		_spec.ClearField(providerconfig.FieldCredential, field.TypeString)
	}
	if value, ok := pcuo.mutation.EndpointURL(); ok {
		_spec.SetField(providerconfig.FieldEndpointURL, field.TypeString, value)
	}
	if pcuo.mutation.EndpointURLCleared() {
		_spec.ClearField(providerconfig.FieldEndpointURL, field.TypeString)
	}
	if value, ok := pcuo.mutation.Settings(); ok {
		_spec.SetField(providerconfig.FieldSettings, field.TypeJSON, value)
	}
	if pcuo.mutation.SettingsCleared() {
		_spec.ClearField(providerconfig.FieldSettings, field.TypeJSON)
	}
	if value, ok := pcuo.mutation.LastTestedAt(); ok {
		_spec.SetField(providerconfig.FieldLastTestedAt, field.TypeTime, value)
	}
	if pcuo.mutation.LastTestedAtCleared() {
		_spec.ClearField(providerconfig.FieldLastTestedAt, field.TypeTime)
	}
	_node = &ProviderConfig{config: pcuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, pcuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{providerconfig.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	pcuo.mutation.done = true
	return _node, nil
}
