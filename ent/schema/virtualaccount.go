package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// VirtualAccount holds the schema definition for the VirtualAccount entity.
// It is the locally-tracked share of the banking provider's pooled account
// for one customer. The balance column is owned exclusively by the ledger
// service; the banking adapter only supplies external facts (IBAN, status).
type VirtualAccount struct {
	ent.Schema
}

// Mixin of the VirtualAccount.
func (VirtualAccount) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the VirtualAccount.
func (VirtualAccount) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New),
		field.UUID("user_id", uuid.UUID{}),
		field.String("provider_account_id").
			Optional(),
		field.String("iban").
			Optional(),
		field.String("bic").
			Optional(),
		field.String("bank_name").
			Optional(),
		field.String("currency").
			MaxLen(10),
		field.Float("balance").
			GoType(decimal.Decimal{}),
		field.Enum("status").
			Values("pending", "active", "suspended", "closed", "failed").
			Default("pending"),
		field.Time("last_balance_update").
			Optional(),
		// Holds the correlation_id used to locate the account inside the
		// provider's system before it has a provider-assigned identifier.
		field.JSON("metadata", map[string]interface{}{}).
			Optional(),
	}
}

// Edges of the VirtualAccount.
func (VirtualAccount) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("transactions", LedgerTransaction.Type),
	}
}
