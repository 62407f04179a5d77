// Code generated by ent, DO NOT EDIT.

package providerconfig

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/monibridge/core/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ProviderConfig {
	return predicate.ProviderConfig(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ProviderConfig {
	return predicate.ProviderConfig(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ProviderConfig {
	return predicate.ProviderConfig(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ProviderConfig {
	return predicate.ProviderConfig(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ProviderConfig {
	return predicate.ProviderConfig(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ProviderConfig {
	return predicate.ProviderConfig(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ProviderConfig {
	return predicate.ProviderConfig(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ProviderConfig {
	return predicate.ProviderConfig(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ProviderConfig {
	return predicate.ProviderConfig(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ProviderConfig {
	return predicate.ProviderConfig(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.ProviderConfig {
	return predicate.ProviderConfig(sql.FieldEQ(FieldUpdatedAt, v))
}

// Identifier applies equality check predicate on the "identifier" field. It's identical to IdentifierEQ.
func Identifier(v string) predicate.ProviderConfig {
	return predicate.ProviderConfig(sql.FieldEQ(FieldIdentifier, v))
}

// Enabled applies equality check predicate on the "enabled" field. It's identical to EnabledEQ.
func Enabled(v bool) predicate.ProviderConfig {
	return predicate.ProviderConfig(sql.FieldEQ(FieldEnabled, v))
}

// Credential applies equality check predicate on the "credential" field. It's identical to CredentialEQ.
func Credential(v string) predicate.ProviderConfig {
	return predicate.ProviderConfig(sql.FieldEQ(FieldCredential, v))
}

// EndpointURL applies equality check predicate on the "endpoint_url" field. It's identical to EndpointURLEQ.
func EndpointURL(v string) predicate.ProviderConfig {
	return predicate.ProviderConfig(sql.FieldEQ(FieldEndpointURL, v))
}

// LastTestedAt applies equality check predicate on the "last_tested_at" field. It's identical to LastTestedAtEQ.
func LastTestedAt(v time.Time) predicate.ProviderConfig {
	return predicate.ProviderConfig(sql.FieldEQ(FieldLastTestedAt, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ProviderConfig {
	return predicate.ProviderConfig(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ProviderConfig {
	return predicate.ProviderConfig(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ProviderConfig {
	return predicate.ProviderConfig(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ProviderConfig {
	return predicate.ProviderConfig(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ProviderConfig {
	return predicate.ProviderConfig(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ProviderConfig {
	return predicate.ProviderConfig(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ProviderConfig {
	return predicate.ProviderConfig(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ProviderConfig {
	return predicate.ProviderConfig(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.ProviderConfig {
	return predicate.ProviderConfig(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.ProviderConfig {
	return predicate.ProviderConfig(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.ProviderConfig {
	return predicate.ProviderConfig(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.ProviderConfig {
	return predicate.ProviderConfig(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.ProviderConfig {
	return predicate.ProviderConfig(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.ProviderConfig {
	return predicate.ProviderConfig(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.ProviderConfig {
	return predicate.ProviderConfig(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.ProviderConfig {
	return predicate.ProviderConfig(sql.FieldLTE(FieldUpdatedAt, v))
}

// IdentifierEQ applies the EQ predicate on the "identifier" field.
func IdentifierEQ(v string) predicate.ProviderConfig {
	return predicate.ProviderConfig(sql.FieldEQ(FieldIdentifier, v))
}

// IdentifierNEQ applies the NEQ predicate on the "identifier" field.
func IdentifierNEQ(v string) predicate.ProviderConfig {
	return predicate.ProviderConfig(sql.FieldNEQ(FieldIdentifier, v))
}

// IdentifierIn applies the In predicate on the "identifier" field.
func IdentifierIn(vs ...string) predicate.ProviderConfig {
	return predicate.ProviderConfig(sql.FieldIn(FieldIdentifier, vs...))
}

// IdentifierNotIn applies the NotIn predicate on the "identifier" field.
func IdentifierNotIn(vs ...string) predicate.ProviderConfig {
	return predicate.ProviderConfig(sql.FieldNotIn(FieldIdentifier, vs...))
}

// IdentifierGT applies the GT predicate on the "identifier" field.
func IdentifierGT(v string) predicate.ProviderConfig {
	return predicate.ProviderConfig(sql.FieldGT(FieldIdentifier, v))
}

// IdentifierGTE applies the GTE predicate on the "identifier" field.
func IdentifierGTE(v string) predicate.ProviderConfig {
	return predicate.ProviderConfig(sql.FieldGTE(FieldIdentifier, v))
}

// IdentifierLT applies the LT predicate on the "identifier" field.
func IdentifierLT(v string) predicate.ProviderConfig {
	return predicate.ProviderConfig(sql.FieldLT(FieldIdentifier, v))
}

// IdentifierLTE applies the LTE predicate on the "identifier" field.
func IdentifierLTE(v string) predicate.ProviderConfig {
	return predicate.ProviderConfig(sql.FieldLTE(FieldIdentifier, v))
}

// IdentifierContains applies the Contains predicate on the "identifier" field.
func IdentifierContains(v string) predicate.ProviderConfig {
	return predicate.ProviderConfig(sql.FieldContains(FieldIdentifier, v))
}

// IdentifierHasPrefix applies the HasPrefix predicate on the "identifier" field.
func IdentifierHasPrefix(v string) predicate.ProviderConfig {
	return predicate.ProviderConfig(sql.FieldHasPrefix(FieldIdentifier, v))
}

// IdentifierHasSuffix applies the HasSuffix predicate on the "identifier" field.
func IdentifierHasSuffix(v string) predicate.ProviderConfig {
	return predicate.ProviderConfig(sql.FieldHasSuffix(FieldIdentifier, v))
}

// IdentifierEqualFold applies the EqualFold predicate on the "identifier" field.
func IdentifierEqualFold(v string) predicate.ProviderConfig {
	return predicate.ProviderConfig(sql.FieldEqualFold(FieldIdentifier, v))
}

// IdentifierContainsFold applies the ContainsFold predicate on the "identifier" field.
func IdentifierContainsFold(v string) predicate.ProviderConfig {
	return predicate.ProviderConfig(sql.FieldContainsFold(FieldIdentifier, v))
}

// CategoryEQ applies the EQ predicate on the "category" field.
func CategoryEQ(v Category) predicate.ProviderConfig {
	return predicate.ProviderConfig(sql.FieldEQ(FieldCategory, v))
}

// CategoryNEQ applies the NEQ predicate on the "category" field.
func CategoryNEQ(v Category) predicate.ProviderConfig {
	return predicate.ProviderConfig(sql.FieldNEQ(FieldCategory, v))
}

// CategoryIn applies the In predicate on the "category" field.
func CategoryIn(vs ...Category) predicate.ProviderConfig {
	return predicate.ProviderConfig(sql.FieldIn(FieldCategory, vs...))
}

// CategoryNotIn applies the NotIn predicate on the "category" field.
func CategoryNotIn(vs ...Category) predicate.ProviderConfig {
	return predicate.ProviderConfig(sql.FieldNotIn(FieldCategory, vs...))
}

// EnabledEQ applies the EQ predicate on the "enabled" field.
func EnabledEQ(v bool) predicate.ProviderConfig {
	return predicate.ProviderConfig(sql.FieldEQ(FieldEnabled, v))
}

// EnabledNEQ applies the NEQ predicate on the "enabled" field.
func EnabledNEQ(v bool) predicate.ProviderConfig {
	return predicate.ProviderConfig(sql.FieldNEQ(FieldEnabled, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.ProviderConfig {
	return predicate.ProviderConfig(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.ProviderConfig {
	return predicate.ProviderConfig(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.ProviderConfig {
	return predicate.ProviderConfig(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.ProviderConfig {
	return predicate.ProviderConfig(sql.FieldNotIn(FieldStatus, vs...))
}

// CredentialEQ applies the EQ predicate on the "credential" field.
func CredentialEQ(v string) predicate.ProviderConfig {
	return predicate.ProviderConfig(sql.FieldEQ(FieldCredential, v))
}

// CredentialNEQ applies the NEQ predicate on the "credential" field.
func CredentialNEQ(v string) predicate.ProviderConfig {
	return predicate.ProviderConfig(sql.FieldNEQ(FieldCredential, v))
}

// CredentialIn applies the In predicate on the "credential" field.
func CredentialIn(vs ...string) predicate.ProviderConfig {
	return predicate.ProviderConfig(sql.FieldIn(FieldCredential, vs...))
}

// CredentialNotIn applies the NotIn predicate on the "credential" field.
func CredentialNotIn(vs ...string) predicate.ProviderConfig {
	return predicate.ProviderConfig(sql.FieldNotIn(FieldCredential, vs...))
}

// CredentialGT applies the GT predicate on the "credential" field.
func CredentialGT(v string) predicate.ProviderConfig {
	return predicate.ProviderConfig(sql.FieldGT(FieldCredential, v))
}

// CredentialGTE applies the GTE predicate on the "credential" field.
func CredentialGTE(v string) predicate.ProviderConfig {
	return predicate.ProviderConfig(sql.FieldGTE(FieldCredential, v))
}

// CredentialLT applies the LT predicate on the "credential" field.
func CredentialLT(v string) predicate.ProviderConfig {
	return predicate.ProviderConfig(sql.FieldLT(FieldCredential, v))
}

// CredentialLTE applies the LTE predicate on the "credential" field.
func CredentialLTE(v string) predicate.ProviderConfig {
	return predicate.ProviderConfig(sql.FieldLTE(FieldCredential, v))
}

// CredentialContains applies the Contains predicate on the "credential" field.
func CredentialContains(v string) predicate.ProviderConfig {
	return predicate.ProviderConfig(sql.FieldContains(FieldCredential, v))
}

// CredentialHasPrefix applies the HasPrefix predicate on the "credential" field.
func CredentialHasPrefix(v string) predicate.ProviderConfig {
	return predicate.ProviderConfig(sql.FieldHasPrefix(FieldCredential, v))
}

// CredentialHasSuffix applies the HasSuffix predicate on the "credential" field.
func CredentialHasSuffix(v string) predicate.ProviderConfig {
	return predicate.ProviderConfig(sql.FieldHasSuffix(FieldCredential, v))
}

// CredentialIsNil applies the IsNil predicate on the "credential" field.
func CredentialIsNil() predicate.ProviderConfig {
	return predicate.ProviderConfig(sql.FieldIsNull(FieldCredential))
}

// CredentialNotNil applies the NotNil predicate on the "credential" field.
func CredentialNotNil() predicate.ProviderConfig {
	return predicate.ProviderConfig(sql.FieldNotNull(FieldCredential))
}

// CredentialEqualFold applies the EqualFold predicate on the "credential" field.
func CredentialEqualFold(v string) predicate.ProviderConfig {
	return predicate.ProviderConfig(sql.FieldEqualFold(FieldCredential, v))
}

// CredentialContainsFold applies the ContainsFold predicate on the "credential" field.
func CredentialContainsFold(v string) predicate.ProviderConfig {
	return predicate.ProviderConfig(sql.FieldContainsFold(FieldCredential, v))
}

// EndpointURLEQ applies the EQ predicate on the "endpoint_url" field.
func EndpointURLEQ(v string) predicate.ProviderConfig {
	return predicate.ProviderConfig(sql.FieldEQ(FieldEndpointURL, v))
}

// EndpointURLNEQ applies the NEQ predicate on the "endpoint_url" field.
func EndpointURLNEQ(v string) predicate.ProviderConfig {
	return predicate.ProviderConfig(sql.FieldNEQ(FieldEndpointURL, v))
}

// EndpointURLIn applies the In predicate on the "endpoint_url" field.
func EndpointURLIn(vs ...string) predicate.ProviderConfig {
	return predicate.ProviderConfig(sql.FieldIn(FieldEndpointURL, vs...))
}

// EndpointURLNotIn applies the NotIn predicate on the "endpoint_url" field.
func EndpointURLNotIn(vs ...string) predicate.ProviderConfig {
	return predicate.ProviderConfig(sql.FieldNotIn(FieldEndpointURL, vs...))
}

// EndpointURLGT applies the GT predicate on the "endpoint_url" field.
func EndpointURLGT(v string) predicate.ProviderConfig {
	return predicate.ProviderConfig(sql.FieldGT(FieldEndpointURL, v))
}

// EndpointURLGTE applies the GTE predicate on the "endpoint_url" field.
func EndpointURLGTE(v string) predicate.ProviderConfig {
	return predicate.ProviderConfig(sql.FieldGTE(FieldEndpointURL, v))
}

// EndpointURLLT applies the LT predicate on the "endpoint_url" field.
func EndpointURLLT(v string) predicate.ProviderConfig {
	return predicate.ProviderConfig(sql.FieldLT(FieldEndpointURL, v))
}

// EndpointURLLTE applies the LTE predicate on the "endpoint_url" field.
func EndpointURLLTE(v string) predicate.ProviderConfig {
	return predicate.ProviderConfig(sql.FieldLTE(FieldEndpointURL, v))
}

// EndpointURLContains applies the Contains predicate on the "endpoint_url" field.
func EndpointURLContains(v string) predicate.ProviderConfig {
	return predicate.ProviderConfig(sql.FieldContains(FieldEndpointURL, v))
}

// EndpointURLHasPrefix applies the HasPrefix predicate on the "endpoint_url" field.
func EndpointURLHasPrefix(v string) predicate.ProviderConfig {
	return predicate.ProviderConfig(sql.FieldHasPrefix(FieldEndpointURL, v))
}

// EndpointURLHasSuffix applies the HasSuffix predicate on the "endpoint_url" field.
func EndpointURLHasSuffix(v string) predicate.ProviderConfig {
	return predicate.ProviderConfig(sql.FieldHasSuffix(FieldEndpointURL, v))
}

// EndpointURLIsNil applies the IsNil predicate on the "endpoint_url" field.
func EndpointURLIsNil() predicate.ProviderConfig {
	return predicate.ProviderConfig(sql.FieldIsNull(FieldEndpointURL))
}

// EndpointURLNotNil applies the NotNil predicate on the "endpoint_url" field.
func EndpointURLNotNil() predicate.ProviderConfig {
	return predicate.ProviderConfig(sql.FieldNotNull(FieldEndpointURL))
}

// EndpointURLEqualFold applies the EqualFold predicate on the "endpoint_url" field.
func EndpointURLEqualFold(v string) predicate.ProviderConfig {
	return predicate.ProviderConfig(sql.FieldEqualFold(FieldEndpointURL, v))
}

// EndpointURLContainsFold applies the ContainsFold predicate on the "endpoint_url" field.
func EndpointURLContainsFold(v string) predicate.ProviderConfig {
	return predicate.ProviderConfig(sql.FieldContainsFold(FieldEndpointURL, v))
}

// SettingsIsNil applies the IsNil predicate on the "settings" field.
func SettingsIsNil() predicate.ProviderConfig {
	return predicate.ProviderConfig(sql.FieldIsNull(FieldSettings))
}

// SettingsNotNil applies the NotNil predicate on the "settings" field.
func SettingsNotNil() predicate.ProviderConfig {
	return predicate.ProviderConfig(sql.FieldNotNull(FieldSettings))
}

// LastTestedAtEQ applies the EQ predicate on the "last_tested_at" field.
func LastTestedAtEQ(v time.Time) predicate.ProviderConfig {
	return predicate.ProviderConfig(sql.FieldEQ(FieldLastTestedAt, v))
}

// LastTestedAtNEQ applies the NEQ predicate on the "last_tested_at" field.
func LastTestedAtNEQ(v time.Time) predicate.ProviderConfig {
	return predicate.ProviderConfig(sql.FieldNEQ(FieldLastTestedAt, v))
}

// LastTestedAtIn applies the In predicate on the "last_tested_at" field.
func LastTestedAtIn(vs ...time.Time) predicate.ProviderConfig {
	return predicate.ProviderConfig(sql.FieldIn(FieldLastTestedAt, vs...))
}

// LastTestedAtNotIn applies the NotIn predicate on the "last_tested_at" field.
func LastTestedAtNotIn(vs ...time.Time) predicate.ProviderConfig {
	return predicate.ProviderConfig(sql.FieldNotIn(FieldLastTestedAt, vs...))
}

// LastTestedAtGT applies the GT predicate on the "last_tested_at" field.
func LastTestedAtGT(v time.Time) predicate.ProviderConfig {
	return predicate.ProviderConfig(sql.FieldGT(FieldLastTestedAt, v))
}

// LastTestedAtGTE applies the GTE predicate on the "last_tested_at" field.
func LastTestedAtGTE(v time.Time) predicate.ProviderConfig {
	return predicate.ProviderConfig(sql.FieldGTE(FieldLastTestedAt, v))
}

// LastTestedAtLT applies the LT predicate on the "last_tested_at" field.
func LastTestedAtLT(v time.Time) predicate.ProviderConfig {
	return predicate.ProviderConfig(sql.FieldLT(FieldLastTestedAt, v))
}

// LastTestedAtLTE applies the LTE predicate on the "last_tested_at" field.
func LastTestedAtLTE(v time.Time) predicate.ProviderConfig {
	return predicate.ProviderConfig(sql.FieldLTE(FieldLastTestedAt, v))
}

// LastTestedAtIsNil applies the IsNil predicate on the "last_tested_at" field.
func LastTestedAtIsNil() predicate.ProviderConfig {
	return predicate.ProviderConfig(sql.FieldIsNull(FieldLastTestedAt))
}

// LastTestedAtNotNil applies the NotNil predicate on the "last_tested_at" field.
func LastTestedAtNotNil() predicate.ProviderConfig {
	return predicate.ProviderConfig(sql.FieldNotNull(FieldLastTestedAt))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ProviderConfig) predicate.ProviderConfig {
	return predicate.ProviderConfig(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ProviderConfig) predicate.ProviderConfig {
	return predicate.ProviderConfig(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ProviderConfig) predicate.ProviderConfig {
	return predicate.ProviderConfig(sql.NotPredicates(p))
}
