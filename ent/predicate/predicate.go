// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AuditEntry is the predicate function for auditentry builders.
type AuditEntry func(*sql.Selector)

// LedgerTransaction is the predicate function for ledgertransaction builders.
type LedgerTransaction func(*sql.Selector)

// ProviderConfig is the predicate function for providerconfig builders.
type ProviderConfig func(*sql.Selector)

// VirtualAccount is the predicate function for virtualaccount builders.
type VirtualAccount func(*sql.Selector)
