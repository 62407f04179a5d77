// Code generated by ent, DO NOT EDIT.

package ledgertransaction

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the ledgertransaction type in the database.
	Label = "ledger_transaction"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldExternalTxID holds the string denoting the external_tx_id field in the database.
	FieldExternalTxID = "external_tx_id"
	// FieldType holds the string denoting the type field in the database.
	FieldType = "type"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldAmount holds the string denoting the amount field in the database.
	FieldAmount = "amount"
	// FieldCurrency holds the string denoting the currency field in the database.
	FieldCurrency = "currency"
	// FieldReference holds the string denoting the reference field in the database.
	FieldReference = "reference"
	// FieldCounterpartyName holds the string denoting the counterparty_name field in the database.
	FieldCounterpartyName = "counterparty_name"
	// FieldCounterpartyIban holds the string denoting the counterparty_iban field in the database.
	FieldCounterpartyIban = "counterparty_iban"
	// FieldOrderRef holds the string denoting the order_ref field in the database.
	FieldOrderRef = "order_ref"
	// FieldProcessedAt holds the string denoting the processed_at field in the database.
	FieldProcessedAt = "processed_at"
	// EdgeAccount holds the string denoting the account edge name in mutations.
	EdgeAccount = "account"
	// Table holds the table name of the ledgertransaction in the database.
	Table = "ledger_transactions"
	// AccountTable is the table that holds the account relation/edge.
	AccountTable = "ledger_transactions"
	// AccountInverseTable is the table name for the VirtualAccount entity.
	// It exists in this package in order to avoid circular dependency with the "virtualaccount" package.
	AccountInverseTable = "virtual_accounts"
	// AccountColumn is the table column denoting the account relation/edge.
	AccountColumn = "virtual_account_transactions"
)

// Columns holds all SQL columns for ledgertransaction fields.
var Columns = []string{
	FieldID,
	FieldExternalTxID,
	FieldType,
	FieldStatus,
	FieldAmount,
	FieldCurrency,
	FieldReference,
	FieldCounterpartyName,
	FieldCounterpartyIban,
	FieldOrderRef,
	FieldProcessedAt,
}

// ForeignKeys holds the SQL foreign-keys that are owned by the "ledger_transactions"
// table and are not defined as standalone fields in the schema.
var ForeignKeys = []string{
	"virtual_account_transactions",
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	for i := range ForeignKeys {
		if column == ForeignKeys[i] {
			return true
		}
	}
	return false
}

var (
	// CurrencyValidator is a validator for the "currency" field. It is called by the builders before save.
	CurrencyValidator func(string) error
	// DefaultProcessedAt holds the default value on creation for the "processed_at" field.
	DefaultProcessedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// Type defines the type for the "type" enum field.
type Type string

// Type values.
const (
	TypeCredit Type = "credit"
	TypeDebit  Type = "debit"
)

func (_type Type) String() string {
	return string(_type)
}

// TypeValidator is a validator for the "type" field enum values. It is called by the builders before save.
func TypeValidator(_type Type) error {
	switch _type {
	case TypeCredit, TypeDebit:
		return nil
	default:
		return fmt.Errorf("ledgertransaction: invalid enum value for type field: %q", _type)
	}
}

// Status defines the type for the "status" enum field.
type Status string

// StatusCompleted is the default value of the Status enum.
const DefaultStatus = StatusCompleted

// Status values.
const (
	StatusCompleted Status = "completed"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusCompleted:
		return nil
	default:
		return fmt.Errorf("ledgertransaction: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the LedgerTransaction queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByExternalTxID orders the results by the external_tx_id field.
func ByExternalTxID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExternalTxID, opts...).ToFunc()
}

// ByType orders the results by the type field.
func ByType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldType, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByAmount orders the results by the amount field.
func ByAmount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAmount, opts...).ToFunc()
}

// ByCurrency orders the results by the currency field.
func ByCurrency(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCurrency, opts...).ToFunc()
}

// ByReference orders the results by the reference field.
func ByReference(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReference, opts...).ToFunc()
}

// ByCounterpartyName orders the results by the counterparty_name field.
func ByCounterpartyName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCounterpartyName, opts...).ToFunc()
}

// ByCounterpartyIban orders the results by the counterparty_iban field.
func ByCounterpartyIban(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCounterpartyIban, opts...).ToFunc()
}

// ByOrderRef orders the results by the order_ref field.
func ByOrderRef(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOrderRef, opts...).ToFunc()
}

// ByProcessedAt orders the results by the processed_at field.
func ByProcessedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProcessedAt, opts...).ToFunc()
}

// ByAccountField orders the results by account field.
func ByAccountField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAccountStep(), sql.OrderByField(field, opts...))
	}
}
func newAccountStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AccountInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, AccountTable, AccountColumn),
	)
}
