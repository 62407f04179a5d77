// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/monibridge/core/ent/virtualaccount"
	"github.com/shopspring/decimal"
)

// VirtualAccount is the model entity for the VirtualAccount schema.
type VirtualAccount struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID uuid.UUID `json:"user_id,omitempty"`
	// ProviderAccountID holds the value of the "provider_account_id" field.
	ProviderAccountID string `json:"provider_account_id,omitempty"`
	// Iban holds the value of the "iban" field.
	Iban string `json:"iban,omitempty"`
	// Bic holds the value of the "bic" field.
	Bic string `json:"bic,omitempty"`
	// BankName holds the value of the "bank_name" field.
	BankName string `json:"bank_name,omitempty"`
	// Currency holds the value of the "currency" field.
	Currency string `json:"currency,omitempty"`
	// Balance holds the value of the "balance" field.
	Balance decimal.Decimal `json:"balance,omitempty"`
	// Status holds the value of the "status" field.
	Status virtualaccount.Status `json:"status,omitempty"`
	// LastBalanceUpdate holds the value of the "last_balance_update" field.
	LastBalanceUpdate time.Time `json:"last_balance_update,omitempty"`
	// Metadata holds the value of the "metadata" field.
	Metadata map[string]interface{} `json:"metadata,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the VirtualAccountQuery when eager-loading is set.
	Edges        VirtualAccountEdges `json:"edges"`
	selectValues sql.SelectValues
}

// VirtualAccountEdges holds the relations/edges for other nodes in the graph.
type VirtualAccountEdges struct {
	// Transactions holds the value of the transactions edge.
	Transactions []*LedgerTransaction `json:"transactions,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// TransactionsOrErr returns the Transactions value or an error if the edge
// was not loaded in eager-loading.
func (e VirtualAccountEdges) TransactionsOrErr() ([]*LedgerTransaction, error) {
	if e.loadedTypes[0] {
		return e.Transactions, nil
	}
	return nil, &NotLoadedError{edge: "transactions"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*VirtualAccount) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case virtualaccount.FieldMetadata:
			values[i] = new([]byte)
		case virtualaccount.FieldBalance:
			values[i] = new(decimal.Decimal)
		case virtualaccount.FieldProviderAccountID, virtualaccount.FieldIban, virtualaccount.FieldBic, virtualaccount.FieldBankName, virtualaccount.FieldCurrency, virtualaccount.FieldStatus:
			values[i] = new(sql.NullString)
		case virtualaccount.FieldCreatedAt, virtualaccount.FieldUpdatedAt, virtualaccount.FieldLastBalanceUpdate:
			values[i] = new(sql.NullTime)
		case virtualaccount.FieldID, virtualaccount.FieldUserID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the VirtualAccount fields.
func (va *VirtualAccount) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case virtualaccount.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				va.ID = *value
			}
		case virtualaccount.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				va.CreatedAt = value.Time
			}
		case virtualaccount.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				va.UpdatedAt = value.Time
			}
		case virtualaccount.FieldUserID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value != nil {
				va.UserID = *value
			}
		case virtualaccount.FieldProviderAccountID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field provider_account_id", values[i])
			} else if value.Valid {
				va.ProviderAccountID = value.String
			}
		case virtualaccount.FieldIban:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field iban", values[i])
			} else if value.Valid {
				va.Iban = value.String
			}
		case virtualaccount.FieldBic:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field bic", values[i])
			} else if value.Valid {
				va.Bic = value.String
			}
		case virtualaccount.FieldBankName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field bank_name", values[i])
			} else if value.Valid {
				va.BankName = value.String
			}
		case virtualaccount.FieldCurrency:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field currency", values[i])
			} else if value.Valid {
				va.Currency = value.String
			}
		case virtualaccount.FieldBalance:
			if value, ok := values[i].(*decimal.Decimal); !ok {
				return fmt.Errorf("unexpected type %T for field balance", values[i])
			} else if value != nil {
				va.Balance = *value
			}
		case virtualaccount.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				va.Status = virtualaccount.Status(value.String)
			}
		case virtualaccount.FieldLastBalanceUpdate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_balance_update", values[i])
			} else if value.Valid {
				va.LastBalanceUpdate = value.Time
			}
		case virtualaccount.FieldMetadata:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field metadata", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &va.Metadata); err != nil {
					return fmt.Errorf("unmarshal field metadata: %w", err)
				}
			}
		default:
			va.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the VirtualAccount.
// This includes values selected through modifiers, order, etc.
func (va *VirtualAccount) Value(name string) (ent.Value, error) {
	return va.selectValues.Get(name)
}

// QueryTransactions queries the "transactions" edge of the VirtualAccount entity.
func (va *VirtualAccount) QueryTransactions() *LedgerTransactionQuery {
	return NewVirtualAccountClient(va.config).QueryTransactions(va)
}

// Update returns a builder for updating this VirtualAccount.
// Note that you need to call VirtualAccount.Unwrap() before calling this method if this VirtualAccount
// was returned from a transaction, and the transaction was committed or rolled back.
func (va *VirtualAccount) Update() *VirtualAccountUpdateOne {
	return NewVirtualAccountClient(va.config).UpdateOne(va)
}

// Unwrap unwraps the VirtualAccount entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (va *VirtualAccount) Unwrap() *VirtualAccount {
	_tx, ok := va.config.driver.(*txDriver)
	if !ok {
		panic("ent: VirtualAccount is not a transactional entity")
	}
	va.config.driver = _tx.drv
	return va
}

// String implements the fmt.Stringer.
func (va *VirtualAccount) String() string {
	var builder strings.Builder
	builder.WriteString("VirtualAccount(")
	builder.WriteString(fmt.Sprintf("id=%v, ", va.ID))
	builder.WriteString("created_at=")
	builder.WriteString(va.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(va.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("user_id=")
	builder.WriteString(fmt.Sprintf("%v", va.UserID))
	builder.WriteString(", ")
	builder.WriteString("provider_account_id=")
	builder.WriteString(va.ProviderAccountID)
	builder.WriteString(", ")
	builder.WriteString("iban=")
	builder.WriteString(va.Iban)
	builder.WriteString(", ")
	builder.WriteString("bic=")
	builder.WriteString(va.Bic)
	builder.WriteString(", ")
	builder.WriteString("bank_name=")
	builder.WriteString(va.BankName)
	builder.WriteString(", ")
	builder.WriteString("currency=")
	builder.WriteString(va.Currency)
	builder.WriteString(", ")
	builder.WriteString("balance=")
	builder.WriteString(fmt.Sprintf("%v", va.Balance))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", va.Status))
	builder.WriteString(", ")
	builder.WriteString("last_balance_update=")
	builder.WriteString(va.LastBalanceUpdate.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("metadata=")
	builder.WriteString(fmt.Sprintf("%v", va.Metadata))
	builder.WriteByte(')')
	return builder.String()
}

// VirtualAccounts is a parsable slice of VirtualAccount.
type VirtualAccounts []*VirtualAccount
