package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// AuditEntry holds the schema definition for the AuditEntry entity.
// Append-only: entries are never mutated or deleted. Corrections are
// expressed as new entries.
type AuditEntry struct {
	ent.Schema
}

// Fields of the AuditEntry.
func (AuditEntry) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable(),
		field.String("category").
			Immutable(),
		field.Enum("severity").
			Values("info", "warning", "error", "critical").
			Default("info").
			Immutable(),
		field.UUID("account_id", uuid.UUID{}).
			Optional().
			Immutable(),
		field.UUID("user_id", uuid.UUID{}).
			Optional().
			Immutable(),
		field.String("admin_ref").
			Optional().
			Immutable(),
		field.JSON("before", map[string]interface{}{}).
			Optional().
			Immutable(),
		field.JSON("after", map[string]interface{}{}).
			Optional().
			Immutable(),
		field.String("reason").
			Optional().
			Immutable(),
		field.JSON("metadata", map[string]interface{}{}).
			Optional().
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the AuditEntry.
func (AuditEntry) Edges() []ent.Edge {
	return nil
}
