package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LedgerTransaction holds the schema definition for the LedgerTransaction entity.
// One row per balance-affecting event. Rows are write-once: created inside the
// same atomic unit that mutates VirtualAccount.balance, never updated or deleted.
type LedgerTransaction struct {
	ent.Schema
}

// Fields of the LedgerTransaction.
func (LedgerTransaction) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable(),
		// Idempotency key. Re-applying an event with the same id is a no-op.
		field.String("external_tx_id").
			Unique().
			Immutable(),
		field.Enum("type").
			Values("credit", "debit").
			Immutable(),
		field.Enum("status").
			Values("completed").
			Default("completed").
			Immutable(),
		field.Float("amount").
			GoType(decimal.Decimal{}).
			Immutable(),
		field.String("currency").
			MaxLen(10).
			Immutable(),
		field.String("reference").
			Optional().
			Immutable(),
		field.String("counterparty_name").
			Optional().
			Immutable(),
		field.String("counterparty_iban").
			Optional().
			Immutable(),
		field.String("order_ref").
			Optional().
			Immutable(),
		field.Time("processed_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the LedgerTransaction.
func (LedgerTransaction) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("account", VirtualAccount.Type).
			Ref("transactions").
			Unique().
			Required().
			Immutable(),
	}
}
