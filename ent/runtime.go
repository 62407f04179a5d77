// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/monibridge/core/ent/auditentry"
	"github.com/monibridge/core/ent/ledgertransaction"
	"github.com/monibridge/core/ent/providerconfig"
	"github.com/monibridge/core/ent/schema"
	"github.com/monibridge/core/ent/virtualaccount"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	auditentryFields := schema.AuditEntry{}.Fields()
	_ = auditentryFields
	// auditentryDescCreatedAt is the schema descriptor for created_at field.
	auditentryDescCreatedAt := auditentryFields[10].Descriptor()
	// auditentry.DefaultCreatedAt holds the default value on creation for the created_at field.
	auditentry.DefaultCreatedAt = auditentryDescCreatedAt.Default.(func() time.Time)
	// auditentryDescID is the schema descriptor for id field.
	auditentryDescID := auditentryFields[0].Descriptor()
	// auditentry.DefaultID holds the default value on creation for the id field.
	auditentry.DefaultID = auditentryDescID.Default.(func() uuid.UUID)
	ledgertransactionFields := schema.LedgerTransaction{}.Fields()
	_ = ledgertransactionFields
	// ledgertransactionDescCurrency is the schema descriptor for currency field.
	ledgertransactionDescCurrency := ledgertransactionFields[5].Descriptor()
	// ledgertransaction.CurrencyValidator is a validator for the "currency" field. It is called by the builders before save.
	ledgertransaction.CurrencyValidator = ledgertransactionDescCurrency.Validators[0].(func(string) error)
	// ledgertransactionDescProcessedAt is the schema descriptor for processed_at field.
	ledgertransactionDescProcessedAt := ledgertransactionFields[10].Descriptor()
	// ledgertransaction.DefaultProcessedAt holds the default value on creation for the processed_at field.
	ledgertransaction.DefaultProcessedAt = ledgertransactionDescProcessedAt.Default.(func() time.Time)
	// ledgertransactionDescID is the schema descriptor for id field.
	ledgertransactionDescID := ledgertransactionFields[0].Descriptor()
	// ledgertransaction.DefaultID holds the default value on creation for the id field.
	ledgertransaction.DefaultID = ledgertransactionDescID.Default.(func() uuid.UUID)
	providerconfigMixin := schema.ProviderConfig{}.Mixin()
	providerconfigMixinFields0 := providerconfigMixin[0].Fields()
	_ = providerconfigMixinFields0
	providerconfigFields := schema.ProviderConfig{}.Fields()
	_ = providerconfigFields
	// providerconfigDescCreatedAt is the schema descriptor for created_at field.
	providerconfigDescCreatedAt := providerconfigMixinFields0[0].Descriptor()
	// providerconfig.DefaultCreatedAt holds the default value on creation for the created_at field.
	providerconfig.DefaultCreatedAt = providerconfigDescCreatedAt.Default.(func() time.Time)
	// providerconfigDescUpdatedAt is the schema descriptor for updated_at field.
	providerconfigDescUpdatedAt := providerconfigMixinFields0[1].Descriptor()
	// providerconfig.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	providerconfig.DefaultUpdatedAt = providerconfigDescUpdatedAt.Default.(func() time.Time)
	// providerconfig.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	providerconfig.UpdateDefaultUpdatedAt = providerconfigDescUpdatedAt.UpdateDefault.(func() time.Time)
	// providerconfigDescEnabled is the schema descriptor for enabled field.
	providerconfigDescEnabled := providerconfigFields[2].Descriptor()
	// providerconfig.DefaultEnabled holds the default value on creation for the enabled field.
	providerconfig.DefaultEnabled = providerconfigDescEnabled.Default.(bool)
	virtualaccountMixin := schema.VirtualAccount{}.Mixin()
	virtualaccountMixinFields0 := virtualaccountMixin[0].Fields()
	_ = virtualaccountMixinFields0
	virtualaccountFields := schema.VirtualAccount{}.Fields()
	_ = virtualaccountFields
	// virtualaccountDescCreatedAt is the schema descriptor for created_at field.
	virtualaccountDescCreatedAt := virtualaccountMixinFields0[0].Descriptor()
	// virtualaccount.DefaultCreatedAt holds the default value on creation for the created_at field.
	virtualaccount.DefaultCreatedAt = virtualaccountDescCreatedAt.Default.(func() time.Time)
	// virtualaccountDescUpdatedAt is the schema descriptor for updated_at field.
	virtualaccountDescUpdatedAt := virtualaccountMixinFields0[1].Descriptor()
	// virtualaccount.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	virtualaccount.DefaultUpdatedAt = virtualaccountDescUpdatedAt.Default.(func() time.Time)
	// virtualaccount.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	virtualaccount.UpdateDefaultUpdatedAt = virtualaccountDescUpdatedAt.UpdateDefault.(func() time.Time)
	// virtualaccountDescCurrency is the schema descriptor for currency field.
	virtualaccountDescCurrency := virtualaccountFields[6].Descriptor()
	// virtualaccount.CurrencyValidator is a validator for the "currency" field. It is called by the builders before save.
	virtualaccount.CurrencyValidator = virtualaccountDescCurrency.Validators[0].(func(string) error)
	// virtualaccountDescID is the schema descriptor for id field.
	virtualaccountDescID := virtualaccountFields[0].Descriptor()
	// virtualaccount.DefaultID holds the default value on creation for the id field.
	virtualaccount.DefaultID = virtualaccountDescID.Default.(func() uuid.UUID)
}
