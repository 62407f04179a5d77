// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/monibridge/core/ent/auditentry"
	"github.com/monibridge/core/ent/ledgertransaction"
	"github.com/monibridge/core/ent/predicate"
	"github.com/monibridge/core/ent/providerconfig"
	"github.com/monibridge/core/ent/virtualaccount"
	"github.com/shopspring/decimal"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAuditEntry        = "AuditEntry"
	TypeLedgerTransaction = "LedgerTransaction"
	TypeProviderConfig    = "ProviderConfig"
	TypeVirtualAccount    = "VirtualAccount"
)

// AuditEntryMutation represents an operation that mutates the AuditEntry nodes in the graph.
type AuditEntryMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	category      *string
	severity      *auditentry.Severity
	account_id    *uuid.UUID
	user_id       *uuid.UUID
	admin_ref     *string
	before        *map[string]interface{}
	after         *map[string]interface{}
	reason        *string
	metadata      *map[string]interface{}
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*AuditEntry, error)
	predicates    []predicate.AuditEntry
}

var _ ent.Mutation = (*AuditEntryMutation)(nil)

// auditentryOption allows management of the mutation configuration using functional options.
type auditentryOption func(*AuditEntryMutation)

// newAuditEntryMutation creates new mutation for the AuditEntry entity.
func newAuditEntryMutation(c config, op Op, opts ...auditentryOption) *AuditEntryMutation {
	m := &AuditEntryMutation{
		config:        c,
		op:            op,
		typ:           TypeAuditEntry,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAuditEntryID sets the ID field of the mutation.
func withAuditEntryID(id uuid.UUID) auditentryOption {
	return func(m *AuditEntryMutation) {
		var (
			err   error
			once  sync.Once
			value *AuditEntry
		)
		m.oldValue = func(ctx context.Context) (*AuditEntry, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AuditEntry.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAuditEntry sets the old AuditEntry of the mutation.
func withAuditEntry(node *AuditEntry) auditentryOption {
	return func(m *AuditEntryMutation) {
		m.oldValue = func(context.Context) (*AuditEntry, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AuditEntryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AuditEntryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AuditEntry entities.
func (m *AuditEntryMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AuditEntryMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AuditEntryMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AuditEntry.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCategory sets the "category" field.
func (m *AuditEntryMutation) SetCategory(s string) {
	m.category = &s
}

// Category returns the value of the "category" field in the mutation.
func (m *AuditEntryMutation) Category() (r string, exists bool) {
	v := m.category
	if v == nil {
		return
	}
	return *v, true
}

// OldCategory returns the old "category" field's value of the AuditEntry entity.
// If the AuditEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditEntryMutation) OldCategory(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCategory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCategory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCategory: %w", err)
	}
	return oldValue.Category, nil
}

// ResetCategory resets all changes to the "category" field.
func (m *AuditEntryMutation) ResetCategory() {
	m.category = nil
}

// SetSeverity sets the "severity" field.
func (m *AuditEntryMutation) SetSeverity(a auditentry.Severity) {
	m.severity = &a
}

// Severity returns the value of the "severity" field in the mutation.
func (m *AuditEntryMutation) Severity() (r auditentry.Severity, exists bool) {
	v := m.severity
	if v == nil {
		return
	}
	return *v, true
}

// OldSeverity returns the old "severity" field's value of the AuditEntry entity.
// If the AuditEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditEntryMutation) OldSeverity(ctx context.Context) (v auditentry.Severity, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSeverity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSeverity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSeverity: %w", err)
	}
	return oldValue.Severity, nil
}

// ResetSeverity resets all changes to the "severity" field.
func (m *AuditEntryMutation) ResetSeverity() {
	m.severity = nil
}

// SetAccountID sets the "account_id" field.
func (m *AuditEntryMutation) SetAccountID(u uuid.UUID) {
	m.account_id = &u
}

// AccountID returns the value of the "account_id" field in the mutation.
func (m *AuditEntryMutation) AccountID() (r uuid.UUID, exists bool) {
	v := m.account_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAccountID returns the old "account_id" field's value of the AuditEntry entity.
// If the AuditEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditEntryMutation) OldAccountID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAccountID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAccountID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAccountID: %w", err)
	}
	return oldValue.AccountID, nil
}

// ClearAccountID clears the value of the "account_id" field.
func (m *AuditEntryMutation) ClearAccountID() {
	m.account_id = nil
	m.clearedFields[auditentry.FieldAccountID] = struct{}{}
}

// AccountIDCleared returns if the "account_id" field was cleared in this mutation.
func (m *AuditEntryMutation) AccountIDCleared() bool {
	_, ok := m.clearedFields[auditentry.FieldAccountID]
	return ok
}

// ResetAccountID resets all changes to the "account_id" field.
func (m *AuditEntryMutation) ResetAccountID() {
	m.account_id = nil
	delete(m.clearedFields, auditentry.FieldAccountID)
}

// SetUserID sets the "user_id" field.
func (m *AuditEntryMutation) SetUserID(u uuid.UUID) {
	m.user_id = &u
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *AuditEntryMutation) UserID() (r uuid.UUID, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the AuditEntry entity.
// If the AuditEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditEntryMutation) OldUserID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ClearUserID clears the value of the "user_id" field.
func (m *AuditEntryMutation) ClearUserID() {
	m.user_id = nil
	m.clearedFields[auditentry.FieldUserID] = struct{}{}
}

// UserIDCleared returns if the "user_id" field was cleared in this mutation.
func (m *AuditEntryMutation) UserIDCleared() bool {
	_, ok := m.clearedFields[auditentry.FieldUserID]
	return ok
}

// ResetUserID resets all changes to the "user_id" field.
func (m *AuditEntryMutation) ResetUserID() {
	m.user_id = nil
	delete(m.clearedFields, auditentry.FieldUserID)
}

// SetAdminRef sets the "admin_ref" field.
func (m *AuditEntryMutation) SetAdminRef(s string) {
	m.admin_ref = &s
}

// AdminRef returns the value of the "admin_ref" field in the mutation.
func (m *AuditEntryMutation) AdminRef() (r string, exists bool) {
	v := m.admin_ref
	if v == nil {
		return
	}
	return *v, true
}

// OldAdminRef returns the old "admin_ref" field's value of the AuditEntry entity.
// If the AuditEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditEntryMutation) OldAdminRef(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAdminRef is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAdminRef requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAdminRef: %w", err)
	}
	return oldValue.AdminRef, nil
}

// ClearAdminRef clears the value of the "admin_ref" field.
func (m *AuditEntryMutation) ClearAdminRef() {
	m.admin_ref = nil
	m.clearedFields[auditentry.FieldAdminRef] = struct{}{}
}

// AdminRefCleared returns if the "admin_ref" field was cleared in this mutation.
func (m *AuditEntryMutation) AdminRefCleared() bool {
	_, ok := m.clearedFields[auditentry.FieldAdminRef]
	return ok
}

// ResetAdminRef resets all changes to the "admin_ref" field.
func (m *AuditEntryMutation) ResetAdminRef() {
	m.admin_ref = nil
	delete(m.clearedFields, auditentry.FieldAdminRef)
}

// SetBefore sets the "before" field.
func (m *AuditEntryMutation) SetBefore(value map[string]interface{}) {
	m.before = &value
}

// Before returns the value of the "before" field in the mutation.
func (m *AuditEntryMutation) Before() (r map[string]interface{}, exists bool) {
	v := m.before
	if v == nil {
		return
	}
	return *v, true
}

// OldBefore returns the old "before" field's value of the AuditEntry entity.
// If the AuditEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditEntryMutation) OldBefore(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBefore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBefore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBefore: %w", err)
	}
	return oldValue.Before, nil
}

// ClearBefore clears the value of the "before" field.
func (m *AuditEntryMutation) ClearBefore() {
	m.before = nil
	m.clearedFields[auditentry.FieldBefore] = struct{}{}
}

// BeforeCleared returns if the "before" field was cleared in this mutation.
func (m *AuditEntryMutation) BeforeCleared() bool {
	_, ok := m.clearedFields[auditentry.FieldBefore]
	return ok
}

// ResetBefore resets all changes to the "before" field.
func (m *AuditEntryMutation) ResetBefore() {
	m.before = nil
	delete(m.clearedFields, auditentry.FieldBefore)
}

// SetAfter sets the "after" field.
func (m *AuditEntryMutation) SetAfter(value map[string]interface{}) {
	m.after = &value
}

// After returns the value of the "after" field in the mutation.
func (m *AuditEntryMutation) After() (r map[string]interface{}, exists bool) {
	v := m.after
	if v == nil {
		return
	}
	return *v, true
}

// OldAfter returns the old "after" field's value of the AuditEntry entity.
// If the AuditEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditEntryMutation) OldAfter(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAfter is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAfter requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAfter: %w", err)
	}
	return oldValue.After, nil
}

// ClearAfter clears the value of the "after" field.
func (m *AuditEntryMutation) ClearAfter() {
	m.after = nil
	m.clearedFields[auditentry.FieldAfter] = struct{}{}
}

// AfterCleared returns if the "after" field was cleared in this mutation.
func (m *AuditEntryMutation) AfterCleared() bool {
	_, ok := m.clearedFields[auditentry.FieldAfter]
	return ok
}

// ResetAfter resets all changes to the "after" field.
func (m *AuditEntryMutation) ResetAfter() {
	m.after = nil
	delete(m.clearedFields, auditentry.FieldAfter)
}

// SetReason sets the "reason" field.
func (m *AuditEntryMutation) SetReason(s string) {
	m.reason = &s
}

// Reason returns the value of the "reason" field in the mutation.
func (m *AuditEntryMutation) Reason() (r string, exists bool) {
	v := m.reason
	if v == nil {
		return
	}
	return *v, true
}

// OldReason returns the old "reason" field's value of the AuditEntry entity.
// If the AuditEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditEntryMutation) OldReason(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReason: %w", err)
	}
	return oldValue.Reason, nil
}

// ClearReason clears the value of the "reason" field.
func (m *AuditEntryMutation) ClearReason() {
	m.reason = nil
	m.clearedFields[auditentry.FieldReason] = struct{}{}
}

// ReasonCleared returns if the "reason" field was cleared in this mutation.
func (m *AuditEntryMutation) ReasonCleared() bool {
	_, ok := m.clearedFields[auditentry.FieldReason]
	return ok
}

// ResetReason resets all changes to the "reason" field.
func (m *AuditEntryMutation) ResetReason() {
	m.reason = nil
	delete(m.clearedFields, auditentry.FieldReason)
}

// SetMetadata sets the "metadata" field.
func (m *AuditEntryMutation) SetMetadata(value map[string]interface{}) {
	m.metadata = &value
}

// Metadata returns the value of the "metadata" field in the mutation.
func (m *AuditEntryMutation) Metadata() (r map[string]interface{}, exists bool) {
	v := m.metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadata returns the old "metadata" field's value of the AuditEntry entity.
// If the AuditEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditEntryMutation) OldMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadata: %w", err)
	}
	return oldValue.Metadata, nil
}

// ClearMetadata clears the value of the "metadata" field.
func (m *AuditEntryMutation) ClearMetadata() {
	m.metadata = nil
	m.clearedFields[auditentry.FieldMetadata] = struct{}{}
}

// MetadataCleared returns if the "metadata" field was cleared in this mutation.
func (m *AuditEntryMutation) MetadataCleared() bool {
	_, ok := m.clearedFields[auditentry.FieldMetadata]
	return ok
}

// ResetMetadata resets all changes to the "metadata" field.
func (m *AuditEntryMutation) ResetMetadata() {
	m.metadata = nil
	delete(m.clearedFields, auditentry.FieldMetadata)
}

// SetCreatedAt sets the "created_at" field.
func (m *AuditEntryMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AuditEntryMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AuditEntry entity.
// If the AuditEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditEntryMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AuditEntryMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the AuditEntryMutation builder.
func (m *AuditEntryMutation) Where(ps ...predicate.AuditEntry) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AuditEntryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AuditEntryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AuditEntry, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AuditEntryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AuditEntryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AuditEntry).
func (m *AuditEntryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AuditEntryMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.category != nil {
		fields = append(fields, auditentry.FieldCategory)
	}
	if m.severity != nil {
		fields = append(fields, auditentry.FieldSeverity)
	}
	if m.account_id != nil {
		fields = append(fields, auditentry.FieldAccountID)
	}
	if m.user_id != nil {
		fields = append(fields, auditentry.FieldUserID)
	}
	if m.admin_ref != nil {
		fields = append(fields, auditentry.FieldAdminRef)
	}
	if m.before != nil {
		fields = append(fields, auditentry.FieldBefore)
	}
	if m.after != nil {
		fields = append(fields, auditentry.FieldAfter)
	}
	if m.reason != nil {
		fields = append(fields, auditentry.FieldReason)
	}
	if m.metadata != nil {
		fields = append(fields, auditentry.FieldMetadata)
	}
	if m.created_at != nil {
		fields = append(fields, auditentry.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AuditEntryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case auditentry.FieldCategory:
		return m.Category()
	case auditentry.FieldSeverity:
		return m.Severity()
	case auditentry.FieldAccountID:
		return m.AccountID()
	case auditentry.FieldUserID:
		return m.UserID()
	case auditentry.FieldAdminRef:
		return m.AdminRef()
	case auditentry.FieldBefore:
		return m.Before()
	case auditentry.FieldAfter:
		return m.After()
	case auditentry.FieldReason:
		return m.Reason()
	case auditentry.FieldMetadata:
		return m.Metadata()
	case auditentry.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AuditEntryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case auditentry.FieldCategory:
		return m.OldCategory(ctx)
	case auditentry.FieldSeverity:
		return m.OldSeverity(ctx)
	case auditentry.FieldAccountID:
		return m.OldAccountID(ctx)
	case auditentry.FieldUserID:
		return m.OldUserID(ctx)
	case auditentry.FieldAdminRef:
		return m.OldAdminRef(ctx)
	case auditentry.FieldBefore:
		return m.OldBefore(ctx)
	case auditentry.FieldAfter:
		return m.OldAfter(ctx)
	case auditentry.FieldReason:
		return m.OldReason(ctx)
	case auditentry.FieldMetadata:
		return m.OldMetadata(ctx)
	case auditentry.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown AuditEntry field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AuditEntryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case auditentry.FieldCategory:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCategory(v)
		return nil
	case auditentry.FieldSeverity:
		v, ok := value.(auditentry.Severity)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSeverity(v)
		return nil
	case auditentry.FieldAccountID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAccountID(v)
		return nil
	case auditentry.FieldUserID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case auditentry.FieldAdminRef:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAdminRef(v)
		return nil
	case auditentry.FieldBefore:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBefore(v)
		return nil
	case auditentry.FieldAfter:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAfter(v)
		return nil
	case auditentry.FieldReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReason(v)
		return nil
	case auditentry.FieldMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadata(v)
		return nil
	case auditentry.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown AuditEntry field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AuditEntryMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AuditEntryMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AuditEntryMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown AuditEntry numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AuditEntryMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(auditentry.FieldAccountID) {
		fields = append(fields, auditentry.FieldAccountID)
	}
	if m.FieldCleared(auditentry.FieldUserID) {
		fields = append(fields, auditentry.FieldUserID)
	}
	if m.FieldCleared(auditentry.FieldAdminRef) {
		fields = append(fields, auditentry.FieldAdminRef)
	}
	if m.FieldCleared(auditentry.FieldBefore) {
		fields = append(fields, auditentry.FieldBefore)
	}
	if m.FieldCleared(auditentry.FieldAfter) {
		fields = append(fields, auditentry.FieldAfter)
	}
	if m.FieldCleared(auditentry.FieldReason) {
		fields = append(fields, auditentry.FieldReason)
	}
	if m.FieldCleared(auditentry.FieldMetadata) {
		fields = append(fields, auditentry.FieldMetadata)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AuditEntryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AuditEntryMutation) ClearField(name string) error {
	switch name {
	case auditentry.FieldAccountID:
		m.ClearAccountID()
		return nil
	case auditentry.FieldUserID:
		m.ClearUserID()
		return nil
	case auditentry.FieldAdminRef:
		m.ClearAdminRef()
		return nil
	case auditentry.FieldBefore:
		m.ClearBefore()
		return nil
	case auditentry.FieldAfter:
		m.ClearAfter()
		return nil
	case auditentry.FieldReason:
		m.ClearReason()
		return nil
	case auditentry.FieldMetadata:
		m.ClearMetadata()
		return nil
	}
	return fmt.Errorf("unknown AuditEntry nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AuditEntryMutation) ResetField(name string) error {
	switch name {
	case auditentry.FieldCategory:
		m.ResetCategory()
		return nil
	case auditentry.FieldSeverity:
		m.ResetSeverity()
		return nil
	case auditentry.FieldAccountID:
		m.ResetAccountID()
		return nil
	case auditentry.FieldUserID:
		m.ResetUserID()
		return nil
	case auditentry.FieldAdminRef:
		m.ResetAdminRef()
		return nil
	case auditentry.FieldBefore:
		m.ResetBefore()
		return nil
	case auditentry.FieldAfter:
		m.ResetAfter()
		return nil
	case auditentry.FieldReason:
		m.ResetReason()
		return nil
	case auditentry.FieldMetadata:
		m.ResetMetadata()
		return nil
	case auditentry.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown AuditEntry field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AuditEntryMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AuditEntryMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AuditEntryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AuditEntryMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AuditEntryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AuditEntryMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AuditEntryMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown AuditEntry unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AuditEntryMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown AuditEntry edge %s", name)
}

// LedgerTransactionMutation represents an operation that mutates the LedgerTransaction nodes in the graph.
type LedgerTransactionMutation struct {
	config
	op                Op
	typ               string
	id                *uuid.UUID
	external_tx_id    *string
	_type             *ledgertransaction.Type
	status            *ledgertransaction.Status
	amount            *decimal.Decimal
	addamount         *decimal.Decimal
	currency          *string
	reference         *string
	counterparty_name *string
	counterparty_iban *string
	order_ref         *string
	processed_at      *time.Time
	clearedFields     map[string]struct{}
	account           *uuid.UUID
	clearedaccount    bool
	done              bool
	oldValue          func(context.Context) (*LedgerTransaction, error)
	predicates        []predicate.LedgerTransaction
}

var _ ent.Mutation = (*LedgerTransactionMutation)(nil)

// ledgertransactionOption allows management of the mutation configuration using functional options.
type ledgertransactionOption func(*LedgerTransactionMutation)

// newLedgerTransactionMutation creates new mutation for the LedgerTransaction entity.
func newLedgerTransactionMutation(c config, op Op, opts ...ledgertransactionOption) *LedgerTransactionMutation {
	m := &LedgerTransactionMutation{
		config:        c,
		op:            op,
		typ:           TypeLedgerTransaction,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLedgerTransactionID sets the ID field of the mutation.
func withLedgerTransactionID(id uuid.UUID) ledgertransactionOption {
	return func(m *LedgerTransactionMutation) {
		var (
			err   error
			once  sync.Once
			value *LedgerTransaction
		)
		m.oldValue = func(ctx context.Context) (*LedgerTransaction, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().LedgerTransaction.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLedgerTransaction sets the old LedgerTransaction of the mutation.
func withLedgerTransaction(node *LedgerTransaction) ledgertransactionOption {
	return func(m *LedgerTransactionMutation) {
		m.oldValue = func(context.Context) (*LedgerTransaction, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LedgerTransactionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LedgerTransactionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of LedgerTransaction entities.
func (m *LedgerTransactionMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LedgerTransactionMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LedgerTransactionMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().LedgerTransaction.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetExternalTxID sets the "external_tx_id" field.
func (m *LedgerTransactionMutation) SetExternalTxID(s string) {
	m.external_tx_id = &s
}

// ExternalTxID returns the value of the "external_tx_id" field in the mutation.
func (m *LedgerTransactionMutation) ExternalTxID() (r string, exists bool) {
	v := m.external_tx_id
	if v == nil {
		return
	}
	return *v, true
}

// OldExternalTxID returns the old "external_tx_id" field's value of the LedgerTransaction entity.
// If the LedgerTransaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LedgerTransactionMutation) OldExternalTxID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExternalTxID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExternalTxID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExternalTxID: %w", err)
	}
	return oldValue.ExternalTxID, nil
}

// ResetExternalTxID resets all changes to the "external_tx_id" field.
func (m *LedgerTransactionMutation) ResetExternalTxID() {
	m.external_tx_id = nil
}

// SetType sets the "type" field.
func (m *LedgerTransactionMutation) SetType(l ledgertransaction.Type) {
	m._type = &l
}

// GetType returns the value of the "type" field in the mutation.
func (m *LedgerTransactionMutation) GetType() (r ledgertransaction.Type, exists bool) {
	v := m._type
	if v == nil {
		return
	}
	return *v, true
}

// OldType returns the old "type" field's value of the LedgerTransaction entity.
// If the LedgerTransaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LedgerTransactionMutation) OldType(ctx context.Context) (v ledgertransaction.Type, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldType: %w", err)
	}
	return oldValue.Type, nil
}

// ResetType resets all changes to the "type" field.
func (m *LedgerTransactionMutation) ResetType() {
	m._type = nil
}

// SetStatus sets the "status" field.
func (m *LedgerTransactionMutation) SetStatus(l ledgertransaction.Status) {
	m.status = &l
}

// Status returns the value of the "status" field in the mutation.
func (m *LedgerTransactionMutation) Status() (r ledgertransaction.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the LedgerTransaction entity.
// If the LedgerTransaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LedgerTransactionMutation) OldStatus(ctx context.Context) (v ledgertransaction.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *LedgerTransactionMutation) ResetStatus() {
	m.status = nil
}

// SetAmount sets the "amount" field.
func (m *LedgerTransactionMutation) SetAmount(d decimal.Decimal) {
	m.amount = &d
	m.addamount = nil
}

// Amount returns the value of the "amount" field in the mutation.
func (m *LedgerTransactionMutation) Amount() (r decimal.Decimal, exists bool) {
	v := m.amount
	if v == nil {
		return
	}
	return *v, true
}

// OldAmount returns the old "amount" field's value of the LedgerTransaction entity.
// If the LedgerTransaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LedgerTransactionMutation) OldAmount(ctx context.Context) (v decimal.Decimal, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAmount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAmount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAmount: %w", err)
	}
	return oldValue.Amount, nil
}

// AddAmount adds d to the "amount" field.
func (m *LedgerTransactionMutation) AddAmount(d decimal.Decimal) {
	if m.addamount != nil {
		*m.addamount = m.addamount.Add(d)
	} else {
		m.addamount = &d
	}
}

// AddedAmount returns the value that was added to the "amount" field in this mutation.
func (m *LedgerTransactionMutation) AddedAmount() (r decimal.Decimal, exists bool) {
	v := m.addamount
	if v == nil {
		return
	}
	return *v, true
}

// ResetAmount resets all changes to the "amount" field.
func (m *LedgerTransactionMutation) ResetAmount() {
	m.amount = nil
	m.addamount = nil
}

// SetCurrency sets the "currency" field.
func (m *LedgerTransactionMutation) SetCurrency(s string) {
	m.currency = &s
}

// Currency returns the value of the "currency" field in the mutation.
func (m *LedgerTransactionMutation) Currency() (r string, exists bool) {
	v := m.currency
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrency returns the old "currency" field's value of the LedgerTransaction entity.
// If the LedgerTransaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LedgerTransactionMutation) OldCurrency(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrency is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrency requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrency: %w", err)
	}
	return oldValue.Currency, nil
}

// ResetCurrency resets all changes to the "currency" field.
func (m *LedgerTransactionMutation) ResetCurrency() {
	m.currency = nil
}

// SetReference sets the "reference" field.
func (m *LedgerTransactionMutation) SetReference(s string) {
	m.reference = &s
}

// Reference returns the value of the "reference" field in the mutation.
func (m *LedgerTransactionMutation) Reference() (r string, exists bool) {
	v := m.reference
	if v == nil {
		return
	}
	return *v, true
}

// OldReference returns the old "reference" field's value of the LedgerTransaction entity.
// If the LedgerTransaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LedgerTransactionMutation) OldReference(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReference is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReference requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReference: %w", err)
	}
	return oldValue.Reference, nil
}

// ClearReference clears the value of the "reference" field.
func (m *LedgerTransactionMutation) ClearReference() {
	m.reference = nil
	m.clearedFields[ledgertransaction.FieldReference] = struct{}{}
}

// ReferenceCleared returns if the "reference" field was cleared in this mutation.
func (m *LedgerTransactionMutation) ReferenceCleared() bool {
	_, ok := m.clearedFields[ledgertransaction.FieldReference]
	return ok
}

// ResetReference resets all changes to the "reference" field.
func (m *LedgerTransactionMutation) ResetReference() {
	m.reference = nil
	delete(m.clearedFields, ledgertransaction.FieldReference)
}

// SetCounterpartyName sets the "counterparty_name" field.
func (m *LedgerTransactionMutation) SetCounterpartyName(s string) {
	m.counterparty_name = &s
}

// CounterpartyName returns the value of the "counterparty_name" field in the mutation.
func (m *LedgerTransactionMutation) CounterpartyName() (r string, exists bool) {
	v := m.counterparty_name
	if v == nil {
		return
	}
	return *v, true
}

// OldCounterpartyName returns the old "counterparty_name" field's value of the LedgerTransaction entity.
// If the LedgerTransaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LedgerTransactionMutation) OldCounterpartyName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCounterpartyName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCounterpartyName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCounterpartyName: %w", err)
	}
	return oldValue.CounterpartyName, nil
}

// ClearCounterpartyName clears the value of the "counterparty_name" field.
func (m *LedgerTransactionMutation) ClearCounterpartyName() {
	m.counterparty_name = nil
	m.clearedFields[ledgertransaction.FieldCounterpartyName] = struct{}{}
}

// CounterpartyNameCleared returns if the "counterparty_name" field was cleared in this mutation.
func (m *LedgerTransactionMutation) CounterpartyNameCleared() bool {
	_, ok := m.clearedFields[ledgertransaction.FieldCounterpartyName]
	return ok
}

// ResetCounterpartyName resets all changes to the "counterparty_name" field.
func (m *LedgerTransactionMutation) ResetCounterpartyName() {
	m.counterparty_name = nil
	delete(m.clearedFields, ledgertransaction.FieldCounterpartyName)
}

// SetCounterpartyIban sets the "counterparty_iban" field.
func (m *LedgerTransactionMutation) SetCounterpartyIban(s string) {
	m.counterparty_iban = &s
}

// CounterpartyIban returns the value of the "counterparty_iban" field in the mutation.
func (m *LedgerTransactionMutation) CounterpartyIban() (r string, exists bool) {
	v := m.counterparty_iban
	if v == nil {
		return
	}
	return *v, true
}

// OldCounterpartyIban returns the old "counterparty_iban" field's value of the LedgerTransaction entity.
// If the LedgerTransaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LedgerTransactionMutation) OldCounterpartyIban(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCounterpartyIban is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCounterpartyIban requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCounterpartyIban: %w", err)
	}
	return oldValue.CounterpartyIban, nil
}

// ClearCounterpartyIban clears the value of the "counterparty_iban" field.
func (m *LedgerTransactionMutation) ClearCounterpartyIban() {
	m.counterparty_iban = nil
	m.clearedFields[ledgertransaction.FieldCounterpartyIban] = struct{}{}
}

// CounterpartyIbanCleared returns if the "counterparty_iban" field was cleared in this mutation.
func (m *LedgerTransactionMutation) CounterpartyIbanCleared() bool {
	_, ok := m.clearedFields[ledgertransaction.FieldCounterpartyIban]
	return ok
}

// ResetCounterpartyIban resets all changes to the "counterparty_iban" field.
func (m *LedgerTransactionMutation) ResetCounterpartyIban() {
	m.counterparty_iban = nil
	delete(m.clearedFields, ledgertransaction.FieldCounterpartyIban)
}

// SetOrderRef sets the "order_ref" field.
func (m *LedgerTransactionMutation) SetOrderRef(s string) {
	m.order_ref = &s
}

// OrderRef returns the value of the "order_ref" field in the mutation.
func (m *LedgerTransactionMutation) OrderRef() (r string, exists bool) {
	v := m.order_ref
	if v == nil {
		return
	}
	return *v, true
}

// OldOrderRef returns the old "order_ref" field's value of the LedgerTransaction entity.
// If the LedgerTransaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LedgerTransactionMutation) OldOrderRef(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOrderRef is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOrderRef requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOrderRef: %w", err)
	}
	return oldValue.OrderRef, nil
}

// ClearOrderRef clears the value of the "order_ref" field.
func (m *LedgerTransactionMutation) ClearOrderRef() {
	m.order_ref = nil
	m.clearedFields[ledgertransaction.FieldOrderRef] = struct{}{}
}

// OrderRefCleared returns if the "order_ref" field was cleared in this mutation.
func (m *LedgerTransactionMutation) OrderRefCleared() bool {
	_, ok := m.clearedFields[ledgertransaction.FieldOrderRef]
	return ok
}

// ResetOrderRef resets all changes to the "order_ref" field.
func (m *LedgerTransactionMutation) ResetOrderRef() {
	m.order_ref = nil
	delete(m.clearedFields, ledgertransaction.FieldOrderRef)
}

// SetProcessedAt sets the "processed_at" field.
func (m *LedgerTransactionMutation) SetProcessedAt(t time.Time) {
	m.processed_at = &t
}

// ProcessedAt returns the value of the "processed_at" field in the mutation.
func (m *LedgerTransactionMutation) ProcessedAt() (r time.Time, exists bool) {
	v := m.processed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldProcessedAt returns the old "processed_at" field's value of the LedgerTransaction entity.
// If the LedgerTransaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LedgerTransactionMutation) OldProcessedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProcessedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProcessedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProcessedAt: %w", err)
	}
	return oldValue.ProcessedAt, nil
}

// ResetProcessedAt resets all changes to the "processed_at" field.
func (m *LedgerTransactionMutation) ResetProcessedAt() {
	m.processed_at = nil
}

// SetAccountID sets the "account" edge to the VirtualAccount entity by id.
func (m *LedgerTransactionMutation) SetAccountID(id uuid.UUID) {
	m.account = &id
}

// ClearAccount clears the "account" edge to the VirtualAccount entity.
func (m *LedgerTransactionMutation) ClearAccount() {
	m.clearedaccount = true
}

// AccountCleared reports if the "account" edge to the VirtualAccount entity was cleared.
func (m *LedgerTransactionMutation) AccountCleared() bool {
	return m.clearedaccount
}

// AccountID returns the "account" edge ID in the mutation.
func (m *LedgerTransactionMutation) AccountID() (id uuid.UUID, exists bool) {
	if m.account != nil {
		return *m.account, true
	}
	return
}

// AccountIDs returns the "account" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// AccountID instead. It exists only for internal usage by the builders.
func (m *LedgerTransactionMutation) AccountIDs() (ids []uuid.UUID) {
	if id := m.account; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetAccount resets all changes to the "account" edge.
func (m *LedgerTransactionMutation) ResetAccount() {
	m.account = nil
	m.clearedaccount = false
}

// Where appends a list predicates to the LedgerTransactionMutation builder.
func (m *LedgerTransactionMutation) Where(ps ...predicate.LedgerTransaction) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LedgerTransactionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LedgerTransactionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.LedgerTransaction, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LedgerTransactionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LedgerTransactionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (LedgerTransaction).
func (m *LedgerTransactionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LedgerTransactionMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.external_tx_id != nil {
		fields = append(fields, ledgertransaction.FieldExternalTxID)
	}
	if m._type != nil {
		fields = append(fields, ledgertransaction.FieldType)
	}
	if m.status != nil {
		fields = append(fields, ledgertransaction.FieldStatus)
	}
	if m.amount != nil {
		fields = append(fields, ledgertransaction.FieldAmount)
	}
	if m.currency != nil {
		fields = append(fields, ledgertransaction.FieldCurrency)
	}
	if m.reference != nil {
		fields = append(fields, ledgertransaction.FieldReference)
	}
	if m.counterparty_name != nil {
		fields = append(fields, ledgertransaction.FieldCounterpartyName)
	}
	if m.counterparty_iban != nil {
		fields = append(fields, ledgertransaction.FieldCounterpartyIban)
	}
	if m.order_ref != nil {
		fields = append(fields, ledgertransaction.FieldOrderRef)
	}
	if m.processed_at != nil {
		fields = append(fields, ledgertransaction.FieldProcessedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LedgerTransactionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case ledgertransaction.FieldExternalTxID:
		return m.ExternalTxID()
	case ledgertransaction.FieldType:
		return m.GetType()
	case ledgertransaction.FieldStatus:
		return m.Status()
	case ledgertransaction.FieldAmount:
		return m.Amount()
	case ledgertransaction.FieldCurrency:
		return m.Currency()
	case ledgertransaction.FieldReference:
		return m.Reference()
	case ledgertransaction.FieldCounterpartyName:
		return m.CounterpartyName()
	case ledgertransaction.FieldCounterpartyIban:
		return m.CounterpartyIban()
	case ledgertransaction.FieldOrderRef:
		return m.OrderRef()
	case ledgertransaction.FieldProcessedAt:
		return m.ProcessedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LedgerTransactionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case ledgertransaction.FieldExternalTxID:
		return m.OldExternalTxID(ctx)
	case ledgertransaction.FieldType:
		return m.OldType(ctx)
	case ledgertransaction.FieldStatus:
		return m.OldStatus(ctx)
	case ledgertransaction.FieldAmount:
		return m.OldAmount(ctx)
	case ledgertransaction.FieldCurrency:
		return m.OldCurrency(ctx)
	case ledgertransaction.FieldReference:
		return m.OldReference(ctx)
	case ledgertransaction.FieldCounterpartyName:
		return m.OldCounterpartyName(ctx)
	case ledgertransaction.FieldCounterpartyIban:
		return m.OldCounterpartyIban(ctx)
	case ledgertransaction.FieldOrderRef:
		return m.OldOrderRef(ctx)
	case ledgertransaction.FieldProcessedAt:
		return m.OldProcessedAt(ctx)
	}
	return nil, fmt.Errorf("unknown LedgerTransaction field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LedgerTransactionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case ledgertransaction.FieldExternalTxID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExternalTxID(v)
		return nil
	case ledgertransaction.FieldType:
		v, ok := value.(ledgertransaction.Type)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetType(v)
		return nil
	case ledgertransaction.FieldStatus:
		v, ok := value.(ledgertransaction.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case ledgertransaction.FieldAmount:
		v, ok := value.(decimal.Decimal)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAmount(v)
		return nil
	case ledgertransaction.FieldCurrency:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrency(v)
		return nil
	case ledgertransaction.FieldReference:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReference(v)
		return nil
	case ledgertransaction.FieldCounterpartyName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCounterpartyName(v)
		return nil
	case ledgertransaction.FieldCounterpartyIban:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCounterpartyIban(v)
		return nil
	case ledgertransaction.FieldOrderRef:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOrderRef(v)
		return nil
	case ledgertransaction.FieldProcessedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProcessedAt(v)
		return nil
	}
	return fmt.Errorf("unknown LedgerTransaction field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LedgerTransactionMutation) AddedFields() []string {
	var fields []string
	if m.addamount != nil {
		fields = append(fields, ledgertransaction.FieldAmount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LedgerTransactionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case ledgertransaction.FieldAmount:
		return m.AddedAmount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LedgerTransactionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case ledgertransaction.FieldAmount:
		v, ok := value.(decimal.Decimal)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAmount(v)
		return nil
	}
	return fmt.Errorf("unknown LedgerTransaction numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LedgerTransactionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(ledgertransaction.FieldReference) {
		fields = append(fields, ledgertransaction.FieldReference)
	}
	if m.FieldCleared(ledgertransaction.FieldCounterpartyName) {
		fields = append(fields, ledgertransaction.FieldCounterpartyName)
	}
	if m.FieldCleared(ledgertransaction.FieldCounterpartyIban) {
		fields = append(fields, ledgertransaction.FieldCounterpartyIban)
	}
	if m.FieldCleared(ledgertransaction.FieldOrderRef) {
		fields = append(fields, ledgertransaction.FieldOrderRef)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LedgerTransactionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LedgerTransactionMutation) ClearField(name string) error {
	switch name {
	case ledgertransaction.FieldReference:
		m.ClearReference()
		return nil
	case ledgertransaction.FieldCounterpartyName:
		m.ClearCounterpartyName()
		return nil
	case ledgertransaction.FieldCounterpartyIban:
		m.ClearCounterpartyIban()
		return nil
	case ledgertransaction.FieldOrderRef:
		m.ClearOrderRef()
		return nil
	}
	return fmt.Errorf("unknown LedgerTransaction nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LedgerTransactionMutation) ResetField(name string) error {
	switch name {
	case ledgertransaction.FieldExternalTxID:
		m.ResetExternalTxID()
		return nil
	case ledgertransaction.FieldType:
		m.ResetType()
		return nil
	case ledgertransaction.FieldStatus:
		m.ResetStatus()
		return nil
	case ledgertransaction.FieldAmount:
		m.ResetAmount()
		return nil
	case ledgertransaction.FieldCurrency:
		m.ResetCurrency()
		return nil
	case ledgertransaction.FieldReference:
		m.ResetReference()
		return nil
	case ledgertransaction.FieldCounterpartyName:
		m.ResetCounterpartyName()
		return nil
	case ledgertransaction.FieldCounterpartyIban:
		m.ResetCounterpartyIban()
		return nil
	case ledgertransaction.FieldOrderRef:
		m.ResetOrderRef()
		return nil
	case ledgertransaction.FieldProcessedAt:
		m.ResetProcessedAt()
		return nil
	}
	return fmt.Errorf("unknown LedgerTransaction field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LedgerTransactionMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.account != nil {
		edges = append(edges, ledgertransaction.EdgeAccount)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LedgerTransactionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case ledgertransaction.EdgeAccount:
		if id := m.account; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LedgerTransactionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LedgerTransactionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LedgerTransactionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedaccount {
		edges = append(edges, ledgertransaction.EdgeAccount)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LedgerTransactionMutation) EdgeCleared(name string) bool {
	switch name {
	case ledgertransaction.EdgeAccount:
		return m.clearedaccount
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LedgerTransactionMutation) ClearEdge(name string) error {
	switch name {
	case ledgertransaction.EdgeAccount:
		m.ClearAccount()
		return nil
	}
	return fmt.Errorf("unknown LedgerTransaction unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LedgerTransactionMutation) ResetEdge(name string) error {
	switch name {
	case ledgertransaction.EdgeAccount:
		m.ResetAccount()
		return nil
	}
	return fmt.Errorf("unknown LedgerTransaction edge %s", name)
}

// ProviderConfigMutation represents an operation that mutates the ProviderConfig nodes in the graph.
type ProviderConfigMutation struct {
	config
	op             Op
	typ            string
	id             *int
	created_at     *time.Time
	updated_at     *time.Time
	identifier     *string
	category       *providerconfig.Category
	enabled        *bool
	status         *providerconfig.Status
	credential     *string
	endpoint_url   *string
	settings       *map[string]interface{}
	last_tested_at *time.Time
	clearedFields  map[string]struct{}
	done           bool
	oldValue       func(context.Context) (*ProviderConfig, error)
	predicates     []predicate.ProviderConfig
}

var _ ent.Mutation = (*ProviderConfigMutation)(nil)

// providerconfigOption allows management of the mutation configuration using functional options.
type providerconfigOption func(*ProviderConfigMutation)

// newProviderConfigMutation creates new mutation for the ProviderConfig entity.
func newProviderConfigMutation(c config, op Op, opts ...providerconfigOption) *ProviderConfigMutation {
	m := &ProviderConfigMutation{
		config:        c,
		op:            op,
		typ:           TypeProviderConfig,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withProviderConfigID sets the ID field of the mutation.
func withProviderConfigID(id int) providerconfigOption {
	return func(m *ProviderConfigMutation) {
		var (
			err   error
			once  sync.Once
			value *ProviderConfig
		)
		m.oldValue = func(ctx context.Context) (*ProviderConfig, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ProviderConfig.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withProviderConfig sets the old ProviderConfig of the mutation.
func withProviderConfig(node *ProviderConfig) providerconfigOption {
	return func(m *ProviderConfigMutation) {
		m.oldValue = func(context.Context) (*ProviderConfig, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ProviderConfigMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ProviderConfigMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ProviderConfigMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ProviderConfigMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ProviderConfig.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *ProviderConfigMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ProviderConfigMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ProviderConfig entity.
// If the ProviderConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProviderConfigMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ProviderConfigMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ProviderConfigMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ProviderConfigMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the ProviderConfig entity.
// If the ProviderConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProviderConfigMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ProviderConfigMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetIdentifier sets the "identifier" field.
func (m *ProviderConfigMutation) SetIdentifier(s string) {
	m.identifier = &s
}

// Identifier returns the value of the "identifier" field in the mutation.
func (m *ProviderConfigMutation) Identifier() (r string, exists bool) {
	v := m.identifier
	if v == nil {
		return
	}
	return *v, true
}

// OldIdentifier returns the old "identifier" field's value of the ProviderConfig entity.
// If the ProviderConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProviderConfigMutation) OldIdentifier(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIdentifier is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIdentifier requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIdentifier: %w", err)
	}
	return oldValue.Identifier, nil
}

// ResetIdentifier resets all changes to the "identifier" field.
func (m *ProviderConfigMutation) ResetIdentifier() {
	m.identifier = nil
}

// SetCategory sets the "category" field.
func (m *ProviderConfigMutation) SetCategory(pr providerconfig.Category) {
	m.category = &pr
}

// Category returns the value of the "category" field in the mutation.
func (m *ProviderConfigMutation) Category() (r providerconfig.Category, exists bool) {
	v := m.category
	if v == nil {
		return
	}
	return *v, true
}

// OldCategory returns the old "category" field's value of the ProviderConfig entity.
// If the ProviderConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProviderConfigMutation) OldCategory(ctx context.Context) (v providerconfig.Category, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCategory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCategory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCategory: %w", err)
	}
	return oldValue.Category, nil
}

// ResetCategory resets all changes to the "category" field.
func (m *ProviderConfigMutation) ResetCategory() {
	m.category = nil
}

// SetEnabled sets the "enabled" field.
func (m *ProviderConfigMutation) SetEnabled(b bool) {
	m.enabled = &b
}

// Enabled returns the value of the "enabled" field in the mutation.
func (m *ProviderConfigMutation) Enabled() (r bool, exists bool) {
	v := m.enabled
	if v == nil {
		return
	}
	return *v, true
}

// OldEnabled returns the old "enabled" field's value of the ProviderConfig entity.
// If the ProviderConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProviderConfigMutation) OldEnabled(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEnabled is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEnabled requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEnabled: %w", err)
	}
	return oldValue.Enabled, nil
}

// ResetEnabled resets all changes to the "enabled" field.
func (m *ProviderConfigMutation) ResetEnabled() {
	m.enabled = nil
}

// SetStatus sets the "status" field.
func (m *ProviderConfigMutation) SetStatus(pr providerconfig.Status) {
	m.status = &pr
}

// Status returns the value of the "status" field in the mutation.
func (m *ProviderConfigMutation) Status() (r providerconfig.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the ProviderConfig entity.
// If the ProviderConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProviderConfigMutation) OldStatus(ctx context.Context) (v providerconfig.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ProviderConfigMutation) ResetStatus() {
	m.status = nil
}

// SetCredential sets the "credential" field.
func (m *ProviderConfigMutation) SetCredential(s string) {
	m.credential = &s
}

// Credential returns the value of the "credential" field in the mutation.
func (m *ProviderConfigMutation) Credential() (r string, exists bool) {
	v := m.credential
	if v == nil {
		return
	}
	return *v, true
}

// OldCredential returns the old "credential" field's value of the ProviderConfig entity.
// If the ProviderConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProviderConfigMutation) OldCredential(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCredential is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCredential requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCredential: %w", err)
	}
	return oldValue.Credential, nil
}

// ClearCredential clears the value of the "credential" field.
func (m *ProviderConfigMutation) ClearCredential() {
	m.credential = nil
	m.clearedFields[providerconfig.FieldCredential] = struct{}{}
}

// CredentialCleared returns if the "credential" field was cleared in this mutation.
func (m *ProviderConfigMutation) CredentialCleared() bool {
	_, ok := m.clearedFields[providerconfig.FieldCredential]
	return ok
}

// ResetCredential resets all changes to the "credential" field.
func (m *ProviderConfigMutation) ResetCredential() {
	m.credential = nil
	delete(m.clearedFields, providerconfig.FieldCredential)
}

// SetEndpointURL sets the "endpoint_url" field.
func (m *ProviderConfigMutation) SetEndpointURL(s string) {
	m.endpoint_url = &s
}

// EndpointURL returns the value of the "endpoint_url" field in the mutation.
func (m *ProviderConfigMutation) EndpointURL() (r string, exists bool) {
	v := m.endpoint_url
	if v == nil {
		return
	}
	return *v, true
}

// OldEndpointURL returns the old "endpoint_url" field's value of the ProviderConfig entity.
// If the ProviderConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProviderConfigMutation) OldEndpointURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEndpointURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEndpointURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEndpointURL: %w", err)
	}
	return oldValue.EndpointURL, nil
}

// ClearEndpointURL clears the value of the "endpoint_url" field.
func (m *ProviderConfigMutation) ClearEndpointURL() {
	m.endpoint_url = nil
	m.clearedFields[providerconfig.FieldEndpointURL] = struct{}{}
}

// EndpointURLCleared returns if the "endpoint_url" field was cleared in this mutation.
func (m *ProviderConfigMutation) EndpointURLCleared() bool {
	_, ok := m.clearedFields[providerconfig.FieldEndpointURL]
	return ok
}

// ResetEndpointURL resets all changes to the "endpoint_url" field.
func (m *ProviderConfigMutation) ResetEndpointURL() {
	m.endpoint_url = nil
	delete(m.clearedFields, providerconfig.FieldEndpointURL)
}

// SetSettings sets the "settings" field.
func (m *ProviderConfigMutation) SetSettings(value map[string]interface{}) {
	m.settings = &value
}

// Settings returns the value of the "settings" field in the mutation.
func (m *ProviderConfigMutation) Settings() (r map[string]interface{}, exists bool) {
	v := m.settings
	if v == nil {
		return
	}
	return *v, true
}

// OldSettings returns the old "settings" field's value of the ProviderConfig entity.
// If the ProviderConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProviderConfigMutation) OldSettings(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSettings is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSettings requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSettings: %w", err)
	}
	return oldValue.Settings, nil
}

// ClearSettings clears the value of the "settings" field.
func (m *ProviderConfigMutation) ClearSettings() {
	m.settings = nil
	m.clearedFields[providerconfig.FieldSettings] = struct{}{}
}

// SettingsCleared returns if the "settings" field was cleared in this mutation.
func (m *ProviderConfigMutation) SettingsCleared() bool {
	_, ok := m.clearedFields[providerconfig.FieldSettings]
	return ok
}

// ResetSettings resets all changes to the "settings" field.
func (m *ProviderConfigMutation) ResetSettings() {
	m.settings = nil
	delete(m.clearedFields, providerconfig.FieldSettings)
}

// SetLastTestedAt sets the "last_tested_at" field.
func (m *ProviderConfigMutation) SetLastTestedAt(t time.Time) {
	m.last_tested_at = &t
}

// LastTestedAt returns the value of the "last_tested_at" field in the mutation.
func (m *ProviderConfigMutation) LastTestedAt() (r time.Time, exists bool) {
	v := m.last_tested_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastTestedAt returns the old "last_tested_at" field's value of the ProviderConfig entity.
// If the ProviderConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProviderConfigMutation) OldLastTestedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastTestedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastTestedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastTestedAt: %w", err)
	}
	return oldValue.LastTestedAt, nil
}

// ClearLastTestedAt clears the value of the "last_tested_at" field.
func (m *ProviderConfigMutation) ClearLastTestedAt() {
	m.last_tested_at = nil
	m.clearedFields[providerconfig.FieldLastTestedAt] = struct{}{}
}

// LastTestedAtCleared returns if the "last_tested_at" field was cleared in this mutation.
func (m *ProviderConfigMutation) LastTestedAtCleared() bool {
	_, ok := m.clearedFields[providerconfig.FieldLastTestedAt]
	return ok
}

// ResetLastTestedAt resets all changes to the "last_tested_at" field.
func (m *ProviderConfigMutation) ResetLastTestedAt() {
	m.last_tested_at = nil
	delete(m.clearedFields, providerconfig.FieldLastTestedAt)
}

// Where appends a list predicates to the ProviderConfigMutation builder.
func (m *ProviderConfigMutation) Where(ps ...predicate.ProviderConfig) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ProviderConfigMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ProviderConfigMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ProviderConfig, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ProviderConfigMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ProviderConfigMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ProviderConfig).
func (m *ProviderConfigMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ProviderConfigMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.created_at != nil {
		fields = append(fields, providerconfig.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, providerconfig.FieldUpdatedAt)
	}
	if m.identifier != nil {
		fields = append(fields, providerconfig.FieldIdentifier)
	}
	if m.category != nil {
		fields = append(fields, providerconfig.FieldCategory)
	}
	if m.enabled != nil {
		fields = append(fields, providerconfig.FieldEnabled)
	}
	if m.status != nil {
		fields = append(fields, providerconfig.FieldStatus)
	}
	if m.credential != nil {
		fields = append(fields, providerconfig.FieldCredential)
	}
	if m.endpoint_url != nil {
		fields = append(fields, providerconfig.FieldEndpointURL)
	}
	if m.settings != nil {
		fields = append(fields, providerconfig.FieldSettings)
	}
	if m.last_tested_at != nil {
		fields = append(fields, providerconfig.FieldLastTestedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ProviderConfigMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case providerconfig.FieldCreatedAt:
		return m.CreatedAt()
	case providerconfig.FieldUpdatedAt:
		return m.UpdatedAt()
	case providerconfig.FieldIdentifier:
		return m.Identifier()
	case providerconfig.FieldCategory:
		return m.Category()
	case providerconfig.FieldEnabled:
		return m.Enabled()
	case providerconfig.FieldStatus:
		return m.Status()
	case providerconfig.FieldCredential:
		return m.Credential()
	case providerconfig.FieldEndpointURL:
		return m.EndpointURL()
	case providerconfig.FieldSettings:
		return m.Settings()
	case providerconfig.FieldLastTestedAt:
		return m.LastTestedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ProviderConfigMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case providerconfig.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case providerconfig.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case providerconfig.FieldIdentifier:
		return m.OldIdentifier(ctx)
	case providerconfig.FieldCategory:
		return m.OldCategory(ctx)
	case providerconfig.FieldEnabled:
		return m.OldEnabled(ctx)
	case providerconfig.FieldStatus:
		return m.OldStatus(ctx)
	case providerconfig.FieldCredential:
		return m.OldCredential(ctx)
	case providerconfig.FieldEndpointURL:
		return m.OldEndpointURL(ctx)
	case providerconfig.FieldSettings:
		return m.OldSettings(ctx)
	case providerconfig.FieldLastTestedAt:
		return m.OldLastTestedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ProviderConfig field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProviderConfigMutation) SetField(name string, value ent.Value) error {
	switch name {
	case providerconfig.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case providerconfig.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case providerconfig.FieldIdentifier:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIdentifier(v)
		return nil
	case providerconfig.FieldCategory:
		v, ok := value.(providerconfig.Category)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCategory(v)
		return nil
	case providerconfig.FieldEnabled:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEnabled(v)
		return nil
	case providerconfig.FieldStatus:
		v, ok := value.(providerconfig.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case providerconfig.FieldCredential:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCredential(v)
		return nil
	case providerconfig.FieldEndpointURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEndpointURL(v)
		return nil
	case providerconfig.FieldSettings:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSettings(v)
		return nil
	case providerconfig.FieldLastTestedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastTestedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ProviderConfig field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ProviderConfigMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ProviderConfigMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProviderConfigMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ProviderConfig numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ProviderConfigMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(providerconfig.FieldCredential) {
		fields = append(fields, providerconfig.FieldCredential)
	}
	if m.FieldCleared(providerconfig.FieldEndpointURL) {
		fields = append(fields, providerconfig.FieldEndpointURL)
	}
	if m.FieldCleared(providerconfig.FieldSettings) {
		fields = append(fields, providerconfig.FieldSettings)
	}
	if m.FieldCleared(providerconfig.FieldLastTestedAt) {
		fields = append(fields, providerconfig.FieldLastTestedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ProviderConfigMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ProviderConfigMutation) ClearField(name string) error {
	switch name {
	case providerconfig.FieldCredential:
		m.ClearCredential()
		return nil
	case providerconfig.FieldEndpointURL:
		m.ClearEndpointURL()
		return nil
	case providerconfig.FieldSettings:
		m.ClearSettings()
		return nil
	case providerconfig.FieldLastTestedAt:
		m.ClearLastTestedAt()
		return nil
	}
	return fmt.Errorf("unknown ProviderConfig nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ProviderConfigMutation) ResetField(name string) error {
	switch name {
	case providerconfig.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case providerconfig.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case providerconfig.FieldIdentifier:
		m.ResetIdentifier()
		return nil
	case providerconfig.FieldCategory:
		m.ResetCategory()
		return nil
	case providerconfig.FieldEnabled:
		m.ResetEnabled()
		return nil
	case providerconfig.FieldStatus:
		m.ResetStatus()
		return nil
	case providerconfig.FieldCredential:
		m.ResetCredential()
		return nil
	case providerconfig.FieldEndpointURL:
		m.ResetEndpointURL()
		return nil
	case providerconfig.FieldSettings:
		m.ResetSettings()
		return nil
	case providerconfig.FieldLastTestedAt:
		m.ResetLastTestedAt()
		return nil
	}
	return fmt.Errorf("unknown ProviderConfig field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ProviderConfigMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ProviderConfigMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ProviderConfigMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ProviderConfigMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ProviderConfigMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ProviderConfigMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ProviderConfigMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ProviderConfig unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ProviderConfigMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ProviderConfig edge %s", name)
}

// VirtualAccountMutation represents an operation that mutates the VirtualAccount nodes in the graph.
type VirtualAccountMutation struct {
	config
	op                  Op
	typ                 string
	id                  *uuid.UUID
	created_at          *time.Time
	updated_at          *time.Time
	user_id             *uuid.UUID
	provider_account_id *string
	iban                *string
	bic                 *string
	bank_name           *string
	currency            *string
	balance             *decimal.Decimal
	addbalance          *decimal.Decimal
	status              *virtualaccount.Status
	last_balance_update *time.Time
	metadata            *map[string]interface{}
	clearedFields       map[string]struct{}
	transactions        map[uuid.UUID]struct{}
	removedtransactions map[uuid.UUID]struct{}
	clearedtransactions bool
	done                bool
	oldValue            func(context.Context) (*VirtualAccount, error)
	predicates          []predicate.VirtualAccount
}

var _ ent.Mutation = (*VirtualAccountMutation)(nil)

// virtualaccountOption allows management of the mutation configuration using functional options.
type virtualaccountOption func(*VirtualAccountMutation)

// newVirtualAccountMutation creates new mutation for the VirtualAccount entity.
func newVirtualAccountMutation(c config, op Op, opts ...virtualaccountOption) *VirtualAccountMutation {
	m := &VirtualAccountMutation{
		config:        c,
		op:            op,
		typ:           TypeVirtualAccount,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withVirtualAccountID sets the ID field of the mutation.
func withVirtualAccountID(id uuid.UUID) virtualaccountOption {
	return func(m *VirtualAccountMutation) {
		var (
			err   error
			once  sync.Once
			value *VirtualAccount
		)
		m.oldValue = func(ctx context.Context) (*VirtualAccount, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().VirtualAccount.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withVirtualAccount sets the old VirtualAccount of the mutation.
func withVirtualAccount(node *VirtualAccount) virtualaccountOption {
	return func(m *VirtualAccountMutation) {
		m.oldValue = func(context.Context) (*VirtualAccount, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m VirtualAccountMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m VirtualAccountMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of VirtualAccount entities.
func (m *VirtualAccountMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *VirtualAccountMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *VirtualAccountMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().VirtualAccount.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *VirtualAccountMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *VirtualAccountMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the VirtualAccount entity.
// If the VirtualAccount object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VirtualAccountMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *VirtualAccountMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *VirtualAccountMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *VirtualAccountMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the VirtualAccount entity.
// If the VirtualAccount object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VirtualAccountMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *VirtualAccountMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetUserID sets the "user_id" field.
func (m *VirtualAccountMutation) SetUserID(u uuid.UUID) {
	m.user_id = &u
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *VirtualAccountMutation) UserID() (r uuid.UUID, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the VirtualAccount entity.
// If the VirtualAccount object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VirtualAccountMutation) OldUserID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *VirtualAccountMutation) ResetUserID() {
	m.user_id = nil
}

// SetProviderAccountID sets the "provider_account_id" field.
func (m *VirtualAccountMutation) SetProviderAccountID(s string) {
	m.provider_account_id = &s
}

// ProviderAccountID returns the value of the "provider_account_id" field in the mutation.
func (m *VirtualAccountMutation) ProviderAccountID() (r string, exists bool) {
	v := m.provider_account_id
	if v == nil {
		return
	}
	return *v, true
}

// OldProviderAccountID returns the old "provider_account_id" field's value of the VirtualAccount entity.
// If the VirtualAccount object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VirtualAccountMutation) OldProviderAccountID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProviderAccountID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProviderAccountID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProviderAccountID: %w", err)
	}
	return oldValue.ProviderAccountID, nil
}

// ClearProviderAccountID clears the value of the "provider_account_id" field.
func (m *VirtualAccountMutation) ClearProviderAccountID() {
	m.provider_account_id = nil
	m.clearedFields[virtualaccount.FieldProviderAccountID] = struct{}{}
}

// ProviderAccountIDCleared returns if the "provider_account_id" field was cleared in this mutation.
func (m *VirtualAccountMutation) ProviderAccountIDCleared() bool {
	_, ok := m.clearedFields[virtualaccount.FieldProviderAccountID]
	return ok
}

// ResetProviderAccountID resets all changes to the "provider_account_id" field.
func (m *VirtualAccountMutation) ResetProviderAccountID() {
	m.provider_account_id = nil
	delete(m.clearedFields, virtualaccount.FieldProviderAccountID)
}

// SetIban sets the "iban" field.
func (m *VirtualAccountMutation) SetIban(s string) {
	m.iban = &s
}

// Iban returns the value of the "iban" field in the mutation.
func (m *VirtualAccountMutation) Iban() (r string, exists bool) {
	v := m.iban
	if v == nil {
		return
	}
	return *v, true
}

// OldIban returns the old "iban" field's value of the VirtualAccount entity.
// If the VirtualAccount object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VirtualAccountMutation) OldIban(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIban is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIban requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIban: %w", err)
	}
	return oldValue.Iban, nil
}

// ClearIban clears the value of the "iban" field.
func (m *VirtualAccountMutation) ClearIban() {
	m.iban = nil
	m.clearedFields[virtualaccount.FieldIban] = struct{}{}
}

// IbanCleared returns if the "iban" field was cleared in this mutation.
func (m *VirtualAccountMutation) IbanCleared() bool {
	_, ok := m.clearedFields[virtualaccount.FieldIban]
	return ok
}

// ResetIban resets all changes to the "iban" field.
func (m *VirtualAccountMutation) ResetIban() {
	m.iban = nil
	delete(m.clearedFields, virtualaccount.FieldIban)
}

// SetBic sets the "bic" field.
func (m *VirtualAccountMutation) SetBic(s string) {
	m.bic = &s
}

// Bic returns the value of the "bic" field in the mutation.
func (m *VirtualAccountMutation) Bic() (r string, exists bool) {
	v := m.bic
	if v == nil {
		return
	}
	return *v, true
}

// OldBic returns the old "bic" field's value of the VirtualAccount entity.
// If the VirtualAccount object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VirtualAccountMutation) OldBic(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBic is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBic requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBic: %w", err)
	}
	return oldValue.Bic, nil
}

// ClearBic clears the value of the "bic" field.
func (m *VirtualAccountMutation) ClearBic() {
	m.bic = nil
	m.clearedFields[virtualaccount.FieldBic] = struct{}{}
}

// BicCleared returns if the "bic" field was cleared in this mutation.
func (m *VirtualAccountMutation) BicCleared() bool {
	_, ok := m.clearedFields[virtualaccount.FieldBic]
	return ok
}

// ResetBic resets all changes to the "bic" field.
func (m *VirtualAccountMutation) ResetBic() {
	m.bic = nil
	delete(m.clearedFields, virtualaccount.FieldBic)
}

// SetBankName sets the "bank_name" field.
func (m *VirtualAccountMutation) SetBankName(s string) {
	m.bank_name = &s
}

// BankName returns the value of the "bank_name" field in the mutation.
func (m *VirtualAccountMutation) BankName() (r string, exists bool) {
	v := m.bank_name
	if v == nil {
		return
	}
	return *v, true
}

// OldBankName returns the old "bank_name" field's value of the VirtualAccount entity.
// If the VirtualAccount object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VirtualAccountMutation) OldBankName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBankName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBankName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBankName: %w", err)
	}
	return oldValue.BankName, nil
}

// ClearBankName clears the value of the "bank_name" field.
func (m *VirtualAccountMutation) ClearBankName() {
	m.bank_name = nil
	m.clearedFields[virtualaccount.FieldBankName] = struct{}{}
}

// BankNameCleared returns if the "bank_name" field was cleared in this mutation.
func (m *VirtualAccountMutation) BankNameCleared() bool {
	_, ok := m.clearedFields[virtualaccount.FieldBankName]
	return ok
}

// ResetBankName resets all changes to the "bank_name" field.
func (m *VirtualAccountMutation) ResetBankName() {
	m.bank_name = nil
	delete(m.clearedFields, virtualaccount.FieldBankName)
}

// SetCurrency sets the "currency" field.
func (m *VirtualAccountMutation) SetCurrency(s string) {
	m.currency = &s
}

// Currency returns the value of the "currency" field in the mutation.
func (m *VirtualAccountMutation) Currency() (r string, exists bool) {
	v := m.currency
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrency returns the old "currency" field's value of the VirtualAccount entity.
// If the VirtualAccount object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VirtualAccountMutation) OldCurrency(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrency is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrency requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrency: %w", err)
	}
	return oldValue.Currency, nil
}

// ResetCurrency resets all changes to the "currency" field.
func (m *VirtualAccountMutation) ResetCurrency() {
	m.currency = nil
}

// SetBalance sets the "balance" field.
func (m *VirtualAccountMutation) SetBalance(d decimal.Decimal) {
	m.balance = &d
	m.addbalance = nil
}

// Balance returns the value of the "balance" field in the mutation.
func (m *VirtualAccountMutation) Balance() (r decimal.Decimal, exists bool) {
	v := m.balance
	if v == nil {
		return
	}
	return *v, true
}

// OldBalance returns the old "balance" field's value of the VirtualAccount entity.
// If the VirtualAccount object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VirtualAccountMutation) OldBalance(ctx context.Context) (v decimal.Decimal, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBalance is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBalance requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBalance: %w", err)
	}
	return oldValue.Balance, nil
}

// AddBalance adds d to the "balance" field.
func (m *VirtualAccountMutation) AddBalance(d decimal.Decimal) {
	if m.addbalance != nil {
		*m.addbalance = m.addbalance.Add(d)
	} else {
		m.addbalance = &d
	}
}

// AddedBalance returns the value that was added to the "balance" field in this mutation.
func (m *VirtualAccountMutation) AddedBalance() (r decimal.Decimal, exists bool) {
	v := m.addbalance
	if v == nil {
		return
	}
	return *v, true
}

// ResetBalance resets all changes to the "balance" field.
func (m *VirtualAccountMutation) ResetBalance() {
	m.balance = nil
	m.addbalance = nil
}

// SetStatus sets the "status" field.
func (m *VirtualAccountMutation) SetStatus(v virtualaccount.Status) {
	m.status = &v
}

// Status returns the value of the "status" field in the mutation.
func (m *VirtualAccountMutation) Status() (r virtualaccount.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the VirtualAccount entity.
// If the VirtualAccount object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VirtualAccountMutation) OldStatus(ctx context.Context) (v virtualaccount.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *VirtualAccountMutation) ResetStatus() {
	m.status = nil
}

// SetLastBalanceUpdate sets the "last_balance_update" field.
func (m *VirtualAccountMutation) SetLastBalanceUpdate(t time.Time) {
	m.last_balance_update = &t
}

// LastBalanceUpdate returns the value of the "last_balance_update" field in the mutation.
func (m *VirtualAccountMutation) LastBalanceUpdate() (r time.Time, exists bool) {
	v := m.last_balance_update
	if v == nil {
		return
	}
	return *v, true
}

// OldLastBalanceUpdate returns the old "last_balance_update" field's value of the VirtualAccount entity.
// If the VirtualAccount object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VirtualAccountMutation) OldLastBalanceUpdate(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastBalanceUpdate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastBalanceUpdate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastBalanceUpdate: %w", err)
	}
	return oldValue.LastBalanceUpdate, nil
}

// ClearLastBalanceUpdate clears the value of the "last_balance_update" field.
func (m *VirtualAccountMutation) ClearLastBalanceUpdate() {
	m.last_balance_update = nil
	m.clearedFields[virtualaccount.FieldLastBalanceUpdate] = struct{}{}
}

// LastBalanceUpdateCleared returns if the "last_balance_update" field was cleared in this mutation.
func (m *VirtualAccountMutation) LastBalanceUpdateCleared() bool {
	_, ok := m.clearedFields[virtualaccount.FieldLastBalanceUpdate]
	return ok
}

// ResetLastBalanceUpdate resets all changes to the "last_balance_update" field.
func (m *VirtualAccountMutation) ResetLastBalanceUpdate() {
	m.last_balance_update = nil
	delete(m.clearedFields, virtualaccount.FieldLastBalanceUpdate)
}

// SetMetadata sets the "metadata" field.
func (m *VirtualAccountMutation) SetMetadata(value map[string]interface{}) {
	m.metadata = &value
}

// Metadata returns the value of the "metadata" field in the mutation.
func (m *VirtualAccountMutation) Metadata() (r map[string]interface{}, exists bool) {
	v := m.metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadata returns the old "metadata" field's value of the VirtualAccount entity.
// If the VirtualAccount object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VirtualAccountMutation) OldMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadata: %w", err)
	}
	return oldValue.Metadata, nil
}

// ClearMetadata clears the value of the "metadata" field.
func (m *VirtualAccountMutation) ClearMetadata() {
	m.metadata = nil
	m.clearedFields[virtualaccount.FieldMetadata] = struct{}{}
}

// MetadataCleared returns if the "metadata" field was cleared in this mutation.
func (m *VirtualAccountMutation) MetadataCleared() bool {
	_, ok := m.clearedFields[virtualaccount.FieldMetadata]
	return ok
}

// ResetMetadata resets all changes to the "metadata" field.
func (m *VirtualAccountMutation) ResetMetadata() {
	m.metadata = nil
	delete(m.clearedFields, virtualaccount.FieldMetadata)
}

// AddTransactionIDs adds the "transactions" edge to the LedgerTransaction entity by ids.
func (m *VirtualAccountMutation) AddTransactionIDs(ids ...uuid.UUID) {
	if m.transactions == nil {
		m.transactions = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.transactions[ids[i]] = struct{}{}
	}
}

// ClearTransactions clears the "transactions" edge to the LedgerTransaction entity.
func (m *VirtualAccountMutation) ClearTransactions() {
	m.clearedtransactions = true
}

// TransactionsCleared reports if the "transactions" edge to the LedgerTransaction entity was cleared.
func (m *VirtualAccountMutation) TransactionsCleared() bool {
	return m.clearedtransactions
}

// RemoveTransactionIDs removes the "transactions" edge to the LedgerTransaction entity by IDs.
func (m *VirtualAccountMutation) RemoveTransactionIDs(ids ...uuid.UUID) {
	if m.removedtransactions == nil {
		m.removedtransactions = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.transactions, ids[i])
		m.removedtransactions[ids[i]] = struct{}{}
	}
}

// RemovedTransactions returns the removed IDs of the "transactions" edge to the LedgerTransaction entity.
func (m *VirtualAccountMutation) RemovedTransactionsIDs() (ids []uuid.UUID) {
	for id := range m.removedtransactions {
		ids = append(ids, id)
	}
	return
}

// TransactionsIDs returns the "transactions" edge IDs in the mutation.
func (m *VirtualAccountMutation) TransactionsIDs() (ids []uuid.UUID) {
	for id := range m.transactions {
		ids = append(ids, id)
	}
	return
}

// ResetTransactions resets all changes to the "transactions" edge.
func (m *VirtualAccountMutation) ResetTransactions() {
	m.transactions = nil
	m.clearedtransactions = false
	m.removedtransactions = nil
}

// Where appends a list predicates to the VirtualAccountMutation builder.
func (m *VirtualAccountMutation) Where(ps ...predicate.VirtualAccount) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the VirtualAccountMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *VirtualAccountMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.VirtualAccount, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *VirtualAccountMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *VirtualAccountMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (VirtualAccount).
func (m *VirtualAccountMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *VirtualAccountMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.created_at != nil {
		fields = append(fields, virtualaccount.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, virtualaccount.FieldUpdatedAt)
	}
	if m.user_id != nil {
		fields = append(fields, virtualaccount.FieldUserID)
	}
	if m.provider_account_id != nil {
		fields = append(fields, virtualaccount.FieldProviderAccountID)
	}
	if m.iban != nil {
		fields = append(fields, virtualaccount.FieldIban)
	}
	if m.bic != nil {
		fields = append(fields, virtualaccount.FieldBic)
	}
	if m.bank_name != nil {
		fields = append(fields, virtualaccount.FieldBankName)
	}
	if m.currency != nil {
		fields = append(fields, virtualaccount.FieldCurrency)
	}
	if m.balance != nil {
		fields = append(fields, virtualaccount.FieldBalance)
	}
	if m.status != nil {
		fields = append(fields, virtualaccount.FieldStatus)
	}
	if m.last_balance_update != nil {
		fields = append(fields, virtualaccount.FieldLastBalanceUpdate)
	}
	if m.metadata != nil {
		fields = append(fields, virtualaccount.FieldMetadata)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *VirtualAccountMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case virtualaccount.FieldCreatedAt:
		return m.CreatedAt()
	case virtualaccount.FieldUpdatedAt:
		return m.UpdatedAt()
	case virtualaccount.FieldUserID:
		return m.UserID()
	case virtualaccount.FieldProviderAccountID:
		return m.ProviderAccountID()
	case virtualaccount.FieldIban:
		return m.Iban()
	case virtualaccount.FieldBic:
		return m.Bic()
	case virtualaccount.FieldBankName:
		return m.BankName()
	case virtualaccount.FieldCurrency:
		return m.Currency()
	case virtualaccount.FieldBalance:
		return m.Balance()
	case virtualaccount.FieldStatus:
		return m.Status()
	case virtualaccount.FieldLastBalanceUpdate:
		return m.LastBalanceUpdate()
	case virtualaccount.FieldMetadata:
		return m.Metadata()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *VirtualAccountMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case virtualaccount.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case virtualaccount.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case virtualaccount.FieldUserID:
		return m.OldUserID(ctx)
	case virtualaccount.FieldProviderAccountID:
		return m.OldProviderAccountID(ctx)
	case virtualaccount.FieldIban:
		return m.OldIban(ctx)
	case virtualaccount.FieldBic:
		return m.OldBic(ctx)
	case virtualaccount.FieldBankName:
		return m.OldBankName(ctx)
	case virtualaccount.FieldCurrency:
		return m.OldCurrency(ctx)
	case virtualaccount.FieldBalance:
		return m.OldBalance(ctx)
	case virtualaccount.FieldStatus:
		return m.OldStatus(ctx)
	case virtualaccount.FieldLastBalanceUpdate:
		return m.OldLastBalanceUpdate(ctx)
	case virtualaccount.FieldMetadata:
		return m.OldMetadata(ctx)
	}
	return nil, fmt.Errorf("unknown VirtualAccount field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *VirtualAccountMutation) SetField(name string, value ent.Value) error {
	switch name {
	case virtualaccount.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case virtualaccount.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case virtualaccount.FieldUserID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case virtualaccount.FieldProviderAccountID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProviderAccountID(v)
		return nil
	case virtualaccount.FieldIban:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIban(v)
		return nil
	case virtualaccount.FieldBic:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBic(v)
		return nil
	case virtualaccount.FieldBankName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBankName(v)
		return nil
	case virtualaccount.FieldCurrency:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrency(v)
		return nil
	case virtualaccount.FieldBalance:
		v, ok := value.(decimal.Decimal)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBalance(v)
		return nil
	case virtualaccount.FieldStatus:
		v, ok := value.(virtualaccount.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case virtualaccount.FieldLastBalanceUpdate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastBalanceUpdate(v)
		return nil
	case virtualaccount.FieldMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadata(v)
		return nil
	}
	return fmt.Errorf("unknown VirtualAccount field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *VirtualAccountMutation) AddedFields() []string {
	var fields []string
	if m.addbalance != nil {
		fields = append(fields, virtualaccount.FieldBalance)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *VirtualAccountMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case virtualaccount.FieldBalance:
		return m.AddedBalance()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *VirtualAccountMutation) AddField(name string, value ent.Value) error {
	switch name {
	case virtualaccount.FieldBalance:
		v, ok := value.(decimal.Decimal)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddBalance(v)
		return nil
	}
	return fmt.Errorf("unknown VirtualAccount numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *VirtualAccountMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(virtualaccount.FieldProviderAccountID) {
		fields = append(fields, virtualaccount.FieldProviderAccountID)
	}
	if m.FieldCleared(virtualaccount.FieldIban) {
		fields = append(fields, virtualaccount.FieldIban)
	}
	if m.FieldCleared(virtualaccount.FieldBic) {
		fields = append(fields, virtualaccount.FieldBic)
	}
	if m.FieldCleared(virtualaccount.FieldBankName) {
		fields = append(fields, virtualaccount.FieldBankName)
	}
	if m.FieldCleared(virtualaccount.FieldLastBalanceUpdate) {
		fields = append(fields, virtualaccount.FieldLastBalanceUpdate)
	}
	if m.FieldCleared(virtualaccount.FieldMetadata) {
		fields = append(fields, virtualaccount.FieldMetadata)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *VirtualAccountMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *VirtualAccountMutation) ClearField(name string) error {
	switch name {
	case virtualaccount.FieldProviderAccountID:
		m.ClearProviderAccountID()
		return nil
	case virtualaccount.FieldIban:
		m.ClearIban()
		return nil
	case virtualaccount.FieldBic:
		m.ClearBic()
		return nil
	case virtualaccount.FieldBankName:
		m.ClearBankName()
		return nil
	case virtualaccount.FieldLastBalanceUpdate:
		m.ClearLastBalanceUpdate()
		return nil
	case virtualaccount.FieldMetadata:
		m.ClearMetadata()
		return nil
	}
	return fmt.Errorf("unknown VirtualAccount nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *VirtualAccountMutation) ResetField(name string) error {
	switch name {
	case virtualaccount.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case virtualaccount.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case virtualaccount.FieldUserID:
		m.ResetUserID()
		return nil
	case virtualaccount.FieldProviderAccountID:
		m.ResetProviderAccountID()
		return nil
	case virtualaccount.FieldIban:
		m.ResetIban()
		return nil
	case virtualaccount.FieldBic:
		m.ResetBic()
		return nil
	case virtualaccount.FieldBankName:
		m.ResetBankName()
		return nil
	case virtualaccount.FieldCurrency:
		m.ResetCurrency()
		return nil
	case virtualaccount.FieldBalance:
		m.ResetBalance()
		return nil
	case virtualaccount.FieldStatus:
		m.ResetStatus()
		return nil
	case virtualaccount.FieldLastBalanceUpdate:
		m.ResetLastBalanceUpdate()
		return nil
	case virtualaccount.FieldMetadata:
		m.ResetMetadata()
		return nil
	}
	return fmt.Errorf("unknown VirtualAccount field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *VirtualAccountMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.transactions != nil {
		edges = append(edges, virtualaccount.EdgeTransactions)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *VirtualAccountMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case virtualaccount.EdgeTransactions:
		ids := make([]ent.Value, 0, len(m.transactions))
		for id := range m.transactions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *VirtualAccountMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedtransactions != nil {
		edges = append(edges, virtualaccount.EdgeTransactions)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *VirtualAccountMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case virtualaccount.EdgeTransactions:
		ids := make([]ent.Value, 0, len(m.removedtransactions))
		for id := range m.removedtransactions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *VirtualAccountMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedtransactions {
		edges = append(edges, virtualaccount.EdgeTransactions)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *VirtualAccountMutation) EdgeCleared(name string) bool {
	switch name {
	case virtualaccount.EdgeTransactions:
		return m.clearedtransactions
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *VirtualAccountMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown VirtualAccount unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *VirtualAccountMutation) ResetEdge(name string) error {
	switch name {
	case virtualaccount.EdgeTransactions:
		m.ResetTransactions()
		return nil
	}
	return fmt.Errorf("unknown VirtualAccount edge %s", name)
}
