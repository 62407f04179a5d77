// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/monibridge/core/ent/ledgertransaction"
	"github.com/monibridge/core/ent/virtualaccount"
	"github.com/shopspring/decimal"
)

// LedgerTransaction is the model entity for the LedgerTransaction schema.
type LedgerTransaction struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// ExternalTxID holds the value of the "external_tx_id" field.
	ExternalTxID string `json:"external_tx_id,omitempty"`
	// Type holds the value of the "type" field.
	Type ledgertransaction.Type `json:"type,omitempty"`
	// Status holds the value of the "status" field.
	Status ledgertransaction.Status `json:"status,omitempty"`
	// Amount holds the value of the "amount" field.
	Amount decimal.Decimal `json:"amount,omitempty"`
	// Currency holds the value of the "currency" field.
	Currency string `json:"currency,omitempty"`
	// Reference holds the value of the "reference" field.
	Reference string `json:"reference,omitempty"`
	// CounterpartyName holds the value of the "counterparty_name" field.
	CounterpartyName string `json:"counterparty_name,omitempty"`
	// CounterpartyIban holds the value of the "counterparty_iban" field.
	CounterpartyIban string `json:"counterparty_iban,omitempty"`
	// OrderRef holds the value of the "order_ref" field.
	OrderRef string `json:"order_ref,omitempty"`
	// ProcessedAt holds the value of the "processed_at" field.
	ProcessedAt time.Time `json:"processed_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the LedgerTransactionQuery when eager-loading is set.
	Edges                        LedgerTransactionEdges `json:"edges"`
	virtual_account_transactions *uuid.UUID
	selectValues                 sql.SelectValues
}

// LedgerTransactionEdges holds the relations/edges for other nodes in the graph.
type LedgerTransactionEdges struct {
	// Account holds the value of the account edge.
	Account *VirtualAccount `json:"account,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// AccountOrErr returns the Account value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e LedgerTransactionEdges) AccountOrErr() (*VirtualAccount, error) {
	if e.Account != nil {
		return e.Account, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: virtualaccount.Label}
	}
	return nil, &NotLoadedError{edge: "account"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*LedgerTransaction) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case ledgertransaction.FieldAmount:
			values[i] = new(decimal.Decimal)
		case ledgertransaction.FieldExternalTxID, ledgertransaction.FieldType, ledgertransaction.FieldStatus, ledgertransaction.FieldCurrency, ledgertransaction.FieldReference, ledgertransaction.FieldCounterpartyName, ledgertransaction.FieldCounterpartyIban, ledgertransaction.FieldOrderRef:
			values[i] = new(sql.NullString)
		case ledgertransaction.FieldProcessedAt:
			values[i] = new(sql.NullTime)
		case ledgertransaction.FieldID:
			values[i] = new(uuid.UUID)
		case ledgertransaction.ForeignKeys[0]: // virtual_account_transactions
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the LedgerTransaction fields.
func (lt *LedgerTransaction) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case ledgertransaction.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				lt.ID = *value
			}
		case ledgertransaction.FieldExternalTxID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field external_tx_id", values[i])
			} else if value.Valid {
				lt.ExternalTxID = value.String
			}
		case ledgertransaction.FieldType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field type", values[i])
			} else if value.Valid {
				lt.Type = ledgertransaction.Type(value.String)
			}
		case ledgertransaction.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				lt.Status = ledgertransaction.Status(value.String)
			}
		case ledgertransaction.FieldAmount:
			if value, ok := values[i].(*decimal.Decimal); !ok {
				return fmt.Errorf("unexpected type %T for field amount", values[i])
			} else if value != nil {
				lt.Amount = *value
			}
		case ledgertransaction.FieldCurrency:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field currency", values[i])
			} else if value.Valid {
				lt.Currency = value.String
			}
		case ledgertransaction.FieldReference:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field reference", values[i])
			} else if value.Valid {
				lt.Reference = value.String
			}
		case ledgertransaction.FieldCounterpartyName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field counterparty_name", values[i])
			} else if value.Valid {
				lt.CounterpartyName = value.String
			}
		case ledgertransaction.FieldCounterpartyIban:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field counterparty_iban", values[i])
			} else if value.Valid {
				lt.CounterpartyIban = value.String
			}
		case ledgertransaction.FieldOrderRef:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field order_ref", values[i])
			} else if value.Valid {
				lt.OrderRef = value.String
			}
		case ledgertransaction.FieldProcessedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field processed_at", values[i])
			} else if value.Valid {
				lt.ProcessedAt = value.Time
			}
		case ledgertransaction.ForeignKeys[0]:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field virtual_account_transactions", values[i])
			} else if value.Valid {
				lt.virtual_account_transactions = new(uuid.UUID)
				*lt.virtual_account_transactions = *value.S.(*uuid.UUID)
			}
		default:
			lt.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the LedgerTransaction.
// This includes values selected through modifiers, order, etc.
func (lt *LedgerTransaction) Value(name string) (ent.Value, error) {
	return lt.selectValues.Get(name)
}

// QueryAccount queries the "account" edge of the LedgerTransaction entity.
func (lt *LedgerTransaction) QueryAccount() *VirtualAccountQuery {
	return NewLedgerTransactionClient(lt.config).QueryAccount(lt)
}

// Update returns a builder for updating this LedgerTransaction.
// Note that you need to call LedgerTransaction.Unwrap() before calling this method if this LedgerTransaction
// was returned from a transaction, and the transaction was committed or rolled back.
func (lt *LedgerTransaction) Update() *LedgerTransactionUpdateOne {
	return NewLedgerTransactionClient(lt.config).UpdateOne(lt)
}

// Unwrap unwraps the LedgerTransaction entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (lt *LedgerTransaction) Unwrap() *LedgerTransaction {
	_tx, ok := lt.config.driver.(*txDriver)
	if !ok {
		panic("ent: LedgerTransaction is not a transactional entity")
	}
	lt.config.driver = _tx.drv
	return lt
}

// String implements the fmt.Stringer.
func (lt *LedgerTransaction) String() string {
	var builder strings.Builder
	builder.WriteString("LedgerTransaction(")
	builder.WriteString(fmt.Sprintf("id=%v, ", lt.ID))
	builder.WriteString("external_tx_id=")
	builder.WriteString(lt.ExternalTxID)
	builder.WriteString(", ")
	builder.WriteString("type=")
	builder.WriteString(fmt.Sprintf("%v", lt.Type))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", lt.Status))
	builder.WriteString(", ")
	builder.WriteString("amount=")
	builder.WriteString(fmt.Sprintf("%v", lt.Amount))
	builder.WriteString(", ")
	builder.WriteString("currency=")
	builder.WriteString(lt.Currency)
	builder.WriteString(", ")
	builder.WriteString("reference=")
	builder.WriteString(lt.Reference)
	builder.WriteString(", ")
	builder.WriteString("counterparty_name=")
	builder.WriteString(lt.CounterpartyName)
	builder.WriteString(", ")
	builder.WriteString("counterparty_iban=")
	builder.WriteString(lt.CounterpartyIban)
	builder.WriteString(", ")
	builder.WriteString("order_ref=")
	builder.WriteString(lt.OrderRef)
	builder.WriteString(", ")
	builder.WriteString("processed_at=")
	builder.WriteString(lt.ProcessedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// LedgerTransactions is a parsable slice of LedgerTransaction.
type LedgerTransactions []*LedgerTransaction
