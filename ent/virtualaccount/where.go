// Code generated by ent, DO NOT EDIT.

package virtualaccount

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/monibridge/core/ent/predicate"
	"github.com/shopspring/decimal"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.VirtualAccount {
	return predicate.VirtualAccount(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.VirtualAccount {
	return predicate.VirtualAccount(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.VirtualAccount {
	return predicate.VirtualAccount(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.VirtualAccount {
	return predicate.VirtualAccount(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.VirtualAccount {
	return predicate.VirtualAccount(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.VirtualAccount {
	return predicate.VirtualAccount(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.VirtualAccount {
	return predicate.VirtualAccount(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.VirtualAccount {
	return predicate.VirtualAccount(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.VirtualAccount {
	return predicate.VirtualAccount(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.VirtualAccount {
	return predicate.VirtualAccount(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.VirtualAccount {
	return predicate.VirtualAccount(sql.FieldEQ(FieldUpdatedAt, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v uuid.UUID) predicate.VirtualAccount {
	return predicate.VirtualAccount(sql.FieldEQ(FieldUserID, v))
}

// ProviderAccountID applies equality check predicate on the "provider_account_id" field. It's identical to ProviderAccountIDEQ.
func ProviderAccountID(v string) predicate.VirtualAccount {
	return predicate.VirtualAccount(sql.FieldEQ(FieldProviderAccountID, v))
}

// Iban applies equality check predicate on the "iban" field. It's identical to IbanEQ.
func Iban(v string) predicate.VirtualAccount {
	return predicate.VirtualAccount(sql.FieldEQ(FieldIban, v))
}

// Bic applies equality check predicate on the "bic" field. It's identical to BicEQ.
func Bic(v string) predicate.VirtualAccount {
	return predicate.VirtualAccount(sql.FieldEQ(FieldBic, v))
}

// BankName applies equality check predicate on the "bank_name" field. It's identical to BankNameEQ.
func BankName(v string) predicate.VirtualAccount {
	return predicate.VirtualAccount(sql.FieldEQ(FieldBankName, v))
}

// Currency applies equality check predicate on the "currency" field. It's identical to CurrencyEQ.
func Currency(v string) predicate.VirtualAccount {
	return predicate.VirtualAccount(sql.FieldEQ(FieldCurrency, v))
}

// Balance applies equality check predicate on the "balance" field. It's identical to BalanceEQ.
func Balance(v decimal.Decimal) predicate.VirtualAccount {
	return predicate.VirtualAccount(sql.FieldEQ(FieldBalance, v))
}

// LastBalanceUpdate applies equality check predicate on the "last_balance_update" field. It's identical to LastBalanceUpdateEQ.
func LastBalanceUpdate(v time.Time) predicate.VirtualAccount {
	return predicate.VirtualAccount(sql.FieldEQ(FieldLastBalanceUpdate, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.VirtualAccount {
	return predicate.VirtualAccount(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.VirtualAccount {
	return predicate.VirtualAccount(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.VirtualAccount {
	return predicate.VirtualAccount(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.VirtualAccount {
	return predicate.VirtualAccount(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.VirtualAccount {
	return predicate.VirtualAccount(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.VirtualAccount {
	return predicate.VirtualAccount(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.VirtualAccount {
	return predicate.VirtualAccount(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.VirtualAccount {
	return predicate.VirtualAccount(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.VirtualAccount {
	return predicate.VirtualAccount(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.VirtualAccount {
	return predicate.VirtualAccount(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.VirtualAccount {
	return predicate.VirtualAccount(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.VirtualAccount {
	return predicate.VirtualAccount(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.VirtualAccount {
	return predicate.VirtualAccount(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.VirtualAccount {
	return predicate.VirtualAccount(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.VirtualAccount {
	return predicate.VirtualAccount(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.VirtualAccount {
	return predicate.VirtualAccount(sql.FieldLTE(FieldUpdatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v uuid.UUID) predicate.VirtualAccount {
	return predicate.VirtualAccount(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v uuid.UUID) predicate.VirtualAccount {
	return predicate.VirtualAccount(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...uuid.UUID) predicate.VirtualAccount {
	return predicate.VirtualAccount(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...uuid.UUID) predicate.VirtualAccount {
	return predicate.VirtualAccount(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v uuid.UUID) predicate.VirtualAccount {
	return predicate.VirtualAccount(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v uuid.UUID) predicate.VirtualAccount {
	return predicate.VirtualAccount(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v uuid.UUID) predicate.VirtualAccount {
	return predicate.VirtualAccount(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v uuid.UUID) predicate.VirtualAccount {
	return predicate.VirtualAccount(sql.FieldLTE(FieldUserID, v))
}

// ProviderAccountIDEQ applies the EQ predicate on the "provider_account_id" field.
func ProviderAccountIDEQ(v string) predicate.VirtualAccount {
	return predicate.VirtualAccount(sql.FieldEQ(FieldProviderAccountID, v))
}

// ProviderAccountIDNEQ applies the NEQ predicate on the "provider_account_id" field.
func ProviderAccountIDNEQ(v string) predicate.VirtualAccount {
	return predicate.VirtualAccount(sql.FieldNEQ(FieldProviderAccountID, v))
}

// ProviderAccountIDIn applies the In predicate on the "provider_account_id" field.
func ProviderAccountIDIn(vs ...string) predicate.VirtualAccount {
	return predicate.VirtualAccount(sql.FieldIn(FieldProviderAccountID, vs...))
}

// ProviderAccountIDNotIn applies the NotIn predicate on the "provider_account_id" field.
func ProviderAccountIDNotIn(vs ...string) predicate.VirtualAccount {
	return predicate.VirtualAccount(sql.FieldNotIn(FieldProviderAccountID, vs...))
}

// ProviderAccountIDGT applies the GT predicate on the "provider_account_id" field.
func ProviderAccountIDGT(v string) predicate.VirtualAccount {
	return predicate.VirtualAccount(sql.FieldGT(FieldProviderAccountID, v))
}

// ProviderAccountIDGTE applies the GTE predicate on the "provider_account_id" field.
func ProviderAccountIDGTE(v string) predicate.VirtualAccount {
	return predicate.VirtualAccount(sql.FieldGTE(FieldProviderAccountID, v))
}

// ProviderAccountIDLT applies the LT predicate on the "provider_account_id" field.
func ProviderAccountIDLT(v string) predicate.VirtualAccount {
	return predicate.VirtualAccount(sql.FieldLT(FieldProviderAccountID, v))
}

// ProviderAccountIDLTE applies the LTE predicate on the "provider_account_id" field.
func ProviderAccountIDLTE(v string) predicate.VirtualAccount {
	return predicate.VirtualAccount(sql.FieldLTE(FieldProviderAccountID, v))
}

// ProviderAccountIDContains applies the Contains predicate on the "provider_account_id" field.
func ProviderAccountIDContains(v string) predicate.VirtualAccount {
	return predicate.VirtualAccount(sql.FieldContains(FieldProviderAccountID, v))
}

// ProviderAccountIDHasPrefix applies the HasPrefix predicate on the "provider_account_id" field.
func ProviderAccountIDHasPrefix(v string) predicate.VirtualAccount {
	return predicate.VirtualAccount(sql.FieldHasPrefix(FieldProviderAccountID, v))
}

// ProviderAccountIDHasSuffix applies the HasSuffix predicate on the "provider_account_id" field.
func ProviderAccountIDHasSuffix(v string) predicate.VirtualAccount {
	return predicate.VirtualAccount(sql.FieldHasSuffix(FieldProviderAccountID, v))
}

// ProviderAccountIDIsNil applies the IsNil predicate on the "provider_account_id" field.
func ProviderAccountIDIsNil() predicate.VirtualAccount {
	return predicate.VirtualAccount(sql.FieldIsNull(FieldProviderAccountID))
}

// ProviderAccountIDNotNil applies the NotNil predicate on the "provider_account_id" field.
func ProviderAccountIDNotNil() predicate.VirtualAccount {
	return predicate.VirtualAccount(sql.FieldNotNull(FieldProviderAccountID))
}

// ProviderAccountIDEqualFold applies the EqualFold predicate on the "provider_account_id" field.
func ProviderAccountIDEqualFold(v string) predicate.VirtualAccount {
	return predicate.VirtualAccount(sql.FieldEqualFold(FieldProviderAccountID, v))
}

// ProviderAccountIDContainsFold applies the ContainsFold predicate on the "provider_account_id" field.
func ProviderAccountIDContainsFold(v string) predicate.VirtualAccount {
	return predicate.VirtualAccount(sql.FieldContainsFold(FieldProviderAccountID, v))
}

// IbanEQ applies the EQ predicate on the "iban" field.
func IbanEQ(v string) predicate.VirtualAccount {
	return predicate.VirtualAccount(sql.FieldEQ(FieldIban, v))
}

// IbanNEQ applies the NEQ predicate on the "iban" field.
func IbanNEQ(v string) predicate.VirtualAccount {
	return predicate.VirtualAccount(sql.FieldNEQ(FieldIban, v))
}

// IbanIn applies the In predicate on the "iban" field.
func IbanIn(vs ...string) predicate.VirtualAccount {
	return predicate.VirtualAccount(sql.FieldIn(FieldIban, vs...))
}

// IbanNotIn applies the NotIn predicate on the "iban" field.
func IbanNotIn(vs ...string) predicate.VirtualAccount {
	return predicate.VirtualAccount(sql.FieldNotIn(FieldIban, vs...))
}

// IbanGT applies the GT predicate on the "iban" field.
func IbanGT(v string) predicate.VirtualAccount {
	return predicate.VirtualAccount(sql.FieldGT(FieldIban, v))
}

// IbanGTE applies the GTE predicate on the "iban" field.
func IbanGTE(v string) predicate.VirtualAccount {
	return predicate.VirtualAccount(sql.FieldGTE(FieldIban, v))
}

// IbanLT applies the LT predicate on the "iban" field.
func IbanLT(v string) predicate.VirtualAccount {
	return predicate.VirtualAccount(sql.FieldLT(FieldIban, v))
}

// IbanLTE applies the LTE predicate on the "iban" field.
func IbanLTE(v string) predicate.VirtualAccount {
	return predicate.VirtualAccount(sql.FieldLTE(FieldIban, v))
}

// IbanContains applies the Contains predicate on the "iban" field.
func IbanContains(v string) predicate.VirtualAccount {
	return predicate.VirtualAccount(sql.FieldContains(FieldIban, v))
}

// IbanHasPrefix applies the HasPrefix predicate on the "iban" field.
func IbanHasPrefix(v string) predicate.VirtualAccount {
	return predicate.VirtualAccount(sql.FieldHasPrefix(FieldIban, v))
}

// IbanHasSuffix applies the HasSuffix predicate on the "iban" field.
func IbanHasSuffix(v string) predicate.VirtualAccount {
	return predicate.VirtualAccount(sql.FieldHasSuffix(FieldIban, v))
}

// IbanIsNil applies the IsNil predicate on the "iban" field.
func IbanIsNil() predicate.VirtualAccount {
	return predicate.VirtualAccount(sql.FieldIsNull(FieldIban))
}

// IbanNotNil applies the NotNil predicate on the "iban" field.
func IbanNotNil() predicate.VirtualAccount {
	return predicate.VirtualAccount(sql.FieldNotNull(FieldIban))
}

// IbanEqualFold applies the EqualFold predicate on the "iban" field.
func IbanEqualFold(v string) predicate.VirtualAccount {
	return predicate.VirtualAccount(sql.FieldEqualFold(FieldIban, v))
}

// IbanContainsFold applies the ContainsFold predicate on the "iban" field.
func IbanContainsFold(v string) predicate.VirtualAccount {
	return predicate.VirtualAccount(sql.FieldContainsFold(FieldIban, v))
}

// BicEQ applies the EQ predicate on the "bic" field.
func BicEQ(v string) predicate.VirtualAccount {
	return predicate.VirtualAccount(sql.FieldEQ(FieldBic, v))
}

// BicNEQ applies the NEQ predicate on the "bic" field.
func BicNEQ(v string) predicate.VirtualAccount {
	return predicate.VirtualAccount(sql.FieldNEQ(FieldBic, v))
}

// BicIn applies the In predicate on the "bic" field.
func BicIn(vs ...string) predicate.VirtualAccount {
	return predicate.VirtualAccount(sql.FieldIn(FieldBic, vs...))
}

// BicNotIn applies the NotIn predicate on the "bic" field.
func BicNotIn(vs ...string) predicate.VirtualAccount {
	return predicate.VirtualAccount(sql.FieldNotIn(FieldBic, vs...))
}

// BicGT applies the GT predicate on the "bic" field.
func BicGT(v string) predicate.VirtualAccount {
	return predicate.VirtualAccount(sql.FieldGT(FieldBic, v))
}

// BicGTE applies the GTE predicate on the "bic" field.
func BicGTE(v string) predicate.VirtualAccount {
	return predicate.VirtualAccount(sql.FieldGTE(FieldBic, v))
}

// BicLT applies the LT predicate on the "bic" field.
func BicLT(v string) predicate.VirtualAccount {
	return predicate.VirtualAccount(sql.FieldLT(FieldBic, v))
}

// BicLTE applies the LTE predicate on the "bic" field.
func BicLTE(v string) predicate.VirtualAccount {
	return predicate.VirtualAccount(sql.FieldLTE(FieldBic, v))
}

// BicContains applies the Contains predicate on the "bic" field.
func BicContains(v string) predicate.VirtualAccount {
	return predicate.VirtualAccount(sql.FieldContains(FieldBic, v))
}

// BicHasPrefix applies the HasPrefix predicate on the "bic" field.
func BicHasPrefix(v string) predicate.VirtualAccount {
	return predicate.VirtualAccount(sql.FieldHasPrefix(FieldBic, v))
}

// BicHasSuffix applies the HasSuffix predicate on the "bic" field.
func BicHasSuffix(v string) predicate.VirtualAccount {
	return predicate.VirtualAccount(sql.FieldHasSuffix(FieldBic, v))
}

// BicIsNil applies the IsNil predicate on the "bic" field.
func BicIsNil() predicate.VirtualAccount {
	return predicate.VirtualAccount(sql.FieldIsNull(FieldBic))
}

// BicNotNil applies the NotNil predicate on the "bic" field.
func BicNotNil() predicate.VirtualAccount {
	return predicate.VirtualAccount(sql.FieldNotNull(FieldBic))
}

// BicEqualFold applies the EqualFold predicate on the "bic" field.
func BicEqualFold(v string) predicate.VirtualAccount {
	return predicate.VirtualAccount(sql.FieldEqualFold(FieldBic, v))
}

// BicContainsFold applies the ContainsFold predicate on the "bic" field.
func BicContainsFold(v string) predicate.VirtualAccount {
	return predicate.VirtualAccount(sql.FieldContainsFold(FieldBic, v))
}

// BankNameEQ applies the EQ predicate on the "bank_name" field.
func BankNameEQ(v string) predicate.VirtualAccount {
	return predicate.VirtualAccount(sql.FieldEQ(FieldBankName, v))
}

// BankNameNEQ applies the NEQ predicate on the "bank_name" field.
func BankNameNEQ(v string) predicate.VirtualAccount {
	return predicate.VirtualAccount(sql.FieldNEQ(FieldBankName, v))
}

// BankNameIn applies the In predicate on the "bank_name" field.
func BankNameIn(vs ...string) predicate.VirtualAccount {
	return predicate.VirtualAccount(sql.FieldIn(FieldBankName, vs...))
}

// BankNameNotIn applies the NotIn predicate on the "bank_name" field.
func BankNameNotIn(vs ...string) predicate.VirtualAccount {
	return predicate.VirtualAccount(sql.FieldNotIn(FieldBankName, vs...))
}

// BankNameGT applies the GT predicate on the "bank_name" field.
func BankNameGT(v string) predicate.VirtualAccount {
	return predicate.VirtualAccount(sql.FieldGT(FieldBankName, v))
}

// BankNameGTE applies the GTE predicate on the "bank_name" field.
func BankNameGTE(v string) predicate.VirtualAccount {
	return predicate.VirtualAccount(sql.FieldGTE(FieldBankName, v))
}

// BankNameLT applies the LT predicate on the "bank_name" field.
func BankNameLT(v string) predicate.VirtualAccount {
	return predicate.VirtualAccount(sql.FieldLT(FieldBankName, v))
}

// BankNameLTE applies the LTE predicate on the "bank_name" field.
func BankNameLTE(v string) predicate.VirtualAccount {
	return predicate.VirtualAccount(sql.FieldLTE(FieldBankName, v))
}

// BankNameContains applies the Contains predicate on the "bank_name" field.
func BankNameContains(v string) predicate.VirtualAccount {
	return predicate.VirtualAccount(sql.FieldContains(FieldBankName, v))
}

// BankNameHasPrefix applies the HasPrefix predicate on the "bank_name" field.
func BankNameHasPrefix(v string) predicate.VirtualAccount {
	return predicate.VirtualAccount(sql.FieldHasPrefix(FieldBankName, v))
}

// BankNameHasSuffix applies the HasSuffix predicate on the "bank_name" field.
func BankNameHasSuffix(v string) predicate.VirtualAccount {
	return predicate.VirtualAccount(sql.FieldHasSuffix(FieldBankName, v))
}

// BankNameIsNil applies the IsNil predicate on the "bank_name" field.
func BankNameIsNil() predicate.VirtualAccount {
	return predicate.VirtualAccount(sql.FieldIsNull(FieldBankName))
}

// BankNameNotNil applies the NotNil predicate on the "bank_name" field.
func BankNameNotNil() predicate.VirtualAccount {
	return predicate.VirtualAccount(sql.FieldNotNull(FieldBankName))
}

// BankNameEqualFold applies the EqualFold predicate on the "bank_name" field.
func BankNameEqualFold(v string) predicate.VirtualAccount {
	return predicate.VirtualAccount(sql.FieldEqualFold(FieldBankName, v))
}

// BankNameContainsFold applies the ContainsFold predicate on the "bank_name" field.
func BankNameContainsFold(v string) predicate.VirtualAccount {
	return predicate.VirtualAccount(sql.FieldContainsFold(FieldBankName, v))
}

// CurrencyEQ applies the EQ predicate on the "currency" field.
func CurrencyEQ(v string) predicate.VirtualAccount {
	return predicate.VirtualAccount(sql.FieldEQ(FieldCurrency, v))
}

// CurrencyNEQ applies the NEQ predicate on the "currency" field.
func CurrencyNEQ(v string) predicate.VirtualAccount {
	return predicate.VirtualAccount(sql.FieldNEQ(FieldCurrency, v))
}

// CurrencyIn applies the In predicate on the "currency" field.
func CurrencyIn(vs ...string) predicate.VirtualAccount {
	return predicate.VirtualAccount(sql.FieldIn(FieldCurrency, vs...))
}

// CurrencyNotIn applies the NotIn predicate on the "currency" field.
func CurrencyNotIn(vs ...string) predicate.VirtualAccount {
	return predicate.VirtualAccount(sql.FieldNotIn(FieldCurrency, vs...))
}

// CurrencyGT applies the GT predicate on the "currency" field.
func CurrencyGT(v string) predicate.VirtualAccount {
	return predicate.VirtualAccount(sql.FieldGT(FieldCurrency, v))
}

// CurrencyGTE applies the GTE predicate on the "currency" field.
func CurrencyGTE(v string) predicate.VirtualAccount {
	return predicate.VirtualAccount(sql.FieldGTE(FieldCurrency, v))
}

// CurrencyLT applies the LT predicate on the "currency" field.
func CurrencyLT(v string) predicate.VirtualAccount {
	return predicate.VirtualAccount(sql.FieldLT(FieldCurrency, v))
}

// CurrencyLTE applies the LTE predicate on the "currency" field.
func CurrencyLTE(v string) predicate.VirtualAccount {
	return predicate.VirtualAccount(sql.FieldLTE(FieldCurrency, v))
}

// CurrencyContains applies the Contains predicate on the "currency" field.
func CurrencyContains(v string) predicate.VirtualAccount {
	return predicate.VirtualAccount(sql.FieldContains(FieldCurrency, v))
}

// CurrencyHasPrefix applies the HasPrefix predicate on the "currency" field.
func CurrencyHasPrefix(v string) predicate.VirtualAccount {
	return predicate.VirtualAccount(sql.FieldHasPrefix(FieldCurrency, v))
}

// CurrencyHasSuffix applies the HasSuffix predicate on the "currency" field.
func CurrencyHasSuffix(v string) predicate.VirtualAccount {
	return predicate.VirtualAccount(sql.FieldHasSuffix(FieldCurrency, v))
}

// CurrencyEqualFold applies the EqualFold predicate on the "currency" field.
func CurrencyEqualFold(v string) predicate.VirtualAccount {
	return predicate.VirtualAccount(sql.FieldEqualFold(FieldCurrency, v))
}

// CurrencyContainsFold applies the ContainsFold predicate on the "currency" field.
func CurrencyContainsFold(v string) predicate.VirtualAccount {
	return predicate.VirtualAccount(sql.FieldContainsFold(FieldCurrency, v))
}

// BalanceEQ applies the EQ predicate on the "balance" field.
func BalanceEQ(v decimal.Decimal) predicate.VirtualAccount {
	return predicate.VirtualAccount(sql.FieldEQ(FieldBalance, v))
}

// BalanceNEQ applies the NEQ predicate on the "balance" field.
func BalanceNEQ(v decimal.Decimal) predicate.VirtualAccount {
	return predicate.VirtualAccount(sql.FieldNEQ(FieldBalance, v))
}

// BalanceIn applies the In predicate on the "balance" field.
func BalanceIn(vs ...decimal.Decimal) predicate.VirtualAccount {
	return predicate.VirtualAccount(sql.FieldIn(FieldBalance, vs...))
}

// BalanceNotIn applies the NotIn predicate on the "balance" field.
func BalanceNotIn(vs ...decimal.Decimal) predicate.VirtualAccount {
	return predicate.VirtualAccount(sql.FieldNotIn(FieldBalance, vs...))
}

// BalanceGT applies the GT predicate on the "balance" field.
func BalanceGT(v decimal.Decimal) predicate.VirtualAccount {
	return predicate.VirtualAccount(sql.FieldGT(FieldBalance, v))
}

// BalanceGTE applies the GTE predicate on the "balance" field.
func BalanceGTE(v decimal.Decimal) predicate.VirtualAccount {
	return predicate.VirtualAccount(sql.FieldGTE(FieldBalance, v))
}

// BalanceLT applies the LT predicate on the "balance" field.
func BalanceLT(v decimal.Decimal) predicate.VirtualAccount {
	return predicate.VirtualAccount(sql.FieldLT(FieldBalance, v))
}

// BalanceLTE applies the LTE predicate on the "balance" field.
func BalanceLTE(v decimal.Decimal) predicate.VirtualAccount {
	return predicate.VirtualAccount(sql.FieldLTE(FieldBalance, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.VirtualAccount {
	return predicate.VirtualAccount(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.VirtualAccount {
	return predicate.VirtualAccount(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.VirtualAccount {
	return predicate.VirtualAccount(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.VirtualAccount {
	return predicate.VirtualAccount(sql.FieldNotIn(FieldStatus, vs...))
}

// LastBalanceUpdateEQ applies the EQ predicate on the "last_balance_update" field.
func LastBalanceUpdateEQ(v time.Time) predicate.VirtualAccount {
	return predicate.VirtualAccount(sql.FieldEQ(FieldLastBalanceUpdate, v))
}

// LastBalanceUpdateNEQ applies the NEQ predicate on the "last_balance_update" field.
func LastBalanceUpdateNEQ(v time.Time) predicate.VirtualAccount {
	return predicate.VirtualAccount(sql.FieldNEQ(FieldLastBalanceUpdate, v))
}

// LastBalanceUpdateIn applies the In predicate on the "last_balance_update" field.
func LastBalanceUpdateIn(vs ...time.Time) predicate.VirtualAccount {
	return predicate.VirtualAccount(sql.FieldIn(FieldLastBalanceUpdate, vs...))
}

// LastBalanceUpdateNotIn applies the NotIn predicate on the "last_balance_update" field.
func LastBalanceUpdateNotIn(vs ...time.Time) predicate.VirtualAccount {
	return predicate.VirtualAccount(sql.FieldNotIn(FieldLastBalanceUpdate, vs...))
}

// LastBalanceUpdateGT applies the GT predicate on the "last_balance_update" field.
func LastBalanceUpdateGT(v time.Time) predicate.VirtualAccount {
	return predicate.VirtualAccount(sql.FieldGT(FieldLastBalanceUpdate, v))
}

// LastBalanceUpdateGTE applies the GTE predicate on the "last_balance_update" field.
func LastBalanceUpdateGTE(v time.Time) predicate.VirtualAccount {
	return predicate.VirtualAccount(sql.FieldGTE(FieldLastBalanceUpdate, v))
}

// LastBalanceUpdateLT applies the LT predicate on the "last_balance_update" field.
func LastBalanceUpdateLT(v time.Time) predicate.VirtualAccount {
	return predicate.VirtualAccount(sql.FieldLT(FieldLastBalanceUpdate, v))
}

// LastBalanceUpdateLTE applies the LTE predicate on the "last_balance_update" field.
func LastBalanceUpdateLTE(v time.Time) predicate.VirtualAccount {
	return predicate.VirtualAccount(sql.FieldLTE(FieldLastBalanceUpdate, v))
}

// LastBalanceUpdateIsNil applies the IsNil predicate on the "last_balance_update" field.
func LastBalanceUpdateIsNil() predicate.VirtualAccount {
	return predicate.VirtualAccount(sql.FieldIsNull(FieldLastBalanceUpdate))
}

// LastBalanceUpdateNotNil applies the NotNil predicate on the "last_balance_update" field.
func LastBalanceUpdateNotNil() predicate.VirtualAccount {
	return predicate.VirtualAccount(sql.FieldNotNull(FieldLastBalanceUpdate))
}

// MetadataIsNil applies the IsNil predicate on the "metadata" field.
func MetadataIsNil() predicate.VirtualAccount {
	return predicate.VirtualAccount(sql.FieldIsNull(FieldMetadata))
}

// MetadataNotNil applies the NotNil predicate on the "metadata" field.
func MetadataNotNil() predicate.VirtualAccount {
	return predicate.VirtualAccount(sql.FieldNotNull(FieldMetadata))
}

// HasTransactions applies the HasEdge predicate on the "transactions" edge.
func HasTransactions() predicate.VirtualAccount {
	return predicate.VirtualAccount(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, TransactionsTable, TransactionsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTransactionsWith applies the HasEdge predicate on the "transactions" edge with a given conditions (other predicates).
func HasTransactionsWith(preds ...predicate.LedgerTransaction) predicate.VirtualAccount {
	return predicate.VirtualAccount(func(s *sql.Selector) {
		step := newTransactionsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.VirtualAccount) predicate.VirtualAccount {
	return predicate.VirtualAccount(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.VirtualAccount) predicate.VirtualAccount {
	return predicate.VirtualAccount(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.VirtualAccount) predicate.VirtualAccount {
	return predicate.VirtualAccount(sql.NotPredicates(p))
}
