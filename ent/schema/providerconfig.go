package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// ProviderConfig holds the schema definition for the ProviderConfig entity.
// One row per provider identifier. Rows are never deleted, only disabled.
type ProviderConfig struct {
	ent.Schema
}

// Mixin of the ProviderConfig.
func (ProviderConfig) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the ProviderConfig.
func (ProviderConfig) Fields() []ent.Field {
	return []ent.Field{
		field.String("identifier").
			Unique().
			Immutable(),
		field.Enum("category").
			Values("banking", "kyc", "rates", "email", "blockchain").
			Immutable(),
		field.Bool("enabled").
			Default(false),
		field.Enum("status").
			Values("inactive", "active", "error").
			Default("inactive"),
		// Encrypted credential envelope produced by the secret store.
		field.String("credential").
			Optional().
			Sensitive(),
		field.String("endpoint_url").
			Optional(),
		field.JSON("settings", map[string]interface{}{}).
			Optional(),
		field.Time("last_tested_at").
			Optional(),
	}
}

// Edges of the ProviderConfig.
func (ProviderConfig) Edges() []ent.Edge {
	return nil
}
