// Code generated by ent, DO NOT EDIT.

package ledgertransaction

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/monibridge/core/ent/predicate"
	"github.com/shopspring/decimal"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.LedgerTransaction {
	return predicate.LedgerTransaction(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.LedgerTransaction {
	return predicate.LedgerTransaction(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.LedgerTransaction {
	return predicate.LedgerTransaction(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.LedgerTransaction {
	return predicate.LedgerTransaction(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.LedgerTransaction {
	return predicate.LedgerTransaction(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.LedgerTransaction {
	return predicate.LedgerTransaction(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.LedgerTransaction {
	return predicate.LedgerTransaction(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.LedgerTransaction {
	return predicate.LedgerTransaction(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.LedgerTransaction {
	return predicate.LedgerTransaction(sql.FieldLTE(FieldID, id))
}

// ExternalTxID applies equality check predicate on the "external_tx_id" field. It's identical to ExternalTxIDEQ.
func ExternalTxID(v string) predicate.LedgerTransaction {
	return predicate.LedgerTransaction(sql.FieldEQ(FieldExternalTxID, v))
}

// Amount applies equality check predicate on the "amount" field. It's identical to AmountEQ.
func Amount(v decimal.Decimal) predicate.LedgerTransaction {
	return predicate.LedgerTransaction(sql.FieldEQ(FieldAmount, v))
}

// Currency applies equality check predicate on the "currency" field. It's identical to CurrencyEQ.
func Currency(v string) predicate.LedgerTransaction {
	return predicate.LedgerTransaction(sql.FieldEQ(FieldCurrency, v))
}

// Reference applies equality check predicate on the "reference" field. It's identical to ReferenceEQ.
func Reference(v string) predicate.LedgerTransaction {
	return predicate.LedgerTransaction(sql.FieldEQ(FieldReference, v))
}

// CounterpartyName applies equality check predicate on the "counterparty_name" field. It's identical to CounterpartyNameEQ.
func CounterpartyName(v string) predicate.LedgerTransaction {
	return predicate.LedgerTransaction(sql.FieldEQ(FieldCounterpartyName, v))
}

// CounterpartyIban applies equality check predicate on the "counterparty_iban" field. It's identical to CounterpartyIbanEQ.
func CounterpartyIban(v string) predicate.LedgerTransaction {
	return predicate.LedgerTransaction(sql.FieldEQ(FieldCounterpartyIban, v))
}

// OrderRef applies equality check predicate on the "order_ref" field. It's identical to OrderRefEQ.
func OrderRef(v string) predicate.LedgerTransaction {
	return predicate.LedgerTransaction(sql.FieldEQ(FieldOrderRef, v))
}

// ProcessedAt applies equality check predicate on the "processed_at" field. It's identical to ProcessedAtEQ.
func ProcessedAt(v time.Time) predicate.LedgerTransaction {
	return predicate.LedgerTransaction(sql.FieldEQ(FieldProcessedAt, v))
}

// ExternalTxIDEQ applies the EQ predicate on the "external_tx_id" field.
func ExternalTxIDEQ(v string) predicate.LedgerTransaction {
	return predicate.LedgerTransaction(sql.FieldEQ(FieldExternalTxID, v))
}

// ExternalTxIDNEQ applies the NEQ predicate on the "external_tx_id" field.
func ExternalTxIDNEQ(v string) predicate.LedgerTransaction {
	return predicate.LedgerTransaction(sql.FieldNEQ(FieldExternalTxID, v))
}

// ExternalTxIDIn applies the In predicate on the "external_tx_id" field.
func ExternalTxIDIn(vs ...string) predicate.LedgerTransaction {
	return predicate.LedgerTransaction(sql.FieldIn(FieldExternalTxID, vs...))
}

// ExternalTxIDNotIn applies the NotIn predicate on the "external_tx_id" field.
func ExternalTxIDNotIn(vs ...string) predicate.LedgerTransaction {
	return predicate.LedgerTransaction(sql.FieldNotIn(FieldExternalTxID, vs...))
}

// ExternalTxIDGT applies the GT predicate on the "external_tx_id" field.
func ExternalTxIDGT(v string) predicate.LedgerTransaction {
	return predicate.LedgerTransaction(sql.FieldGT(FieldExternalTxID, v))
}

// ExternalTxIDGTE applies the GTE predicate on the "external_tx_id" field.
func ExternalTxIDGTE(v string) predicate.LedgerTransaction {
	return predicate.LedgerTransaction(sql.FieldGTE(FieldExternalTxID, v))
}

// ExternalTxIDLT applies the LT predicate on the "external_tx_id" field.
func ExternalTxIDLT(v string) predicate.LedgerTransaction {
	return predicate.LedgerTransaction(sql.FieldLT(FieldExternalTxID, v))
}

// ExternalTxIDLTE applies the LTE predicate on the "external_tx_id" field.
func ExternalTxIDLTE(v string) predicate.LedgerTransaction {
	return predicate.LedgerTransaction(sql.FieldLTE(FieldExternalTxID, v))
}

// ExternalTxIDContains applies the Contains predicate on the "external_tx_id" field.
func ExternalTxIDContains(v string) predicate.LedgerTransaction {
	return predicate.LedgerTransaction(sql.FieldContains(FieldExternalTxID, v))
}

// ExternalTxIDHasPrefix applies the HasPrefix predicate on the "external_tx_id" field.
func ExternalTxIDHasPrefix(v string) predicate.LedgerTransaction {
	return predicate.LedgerTransaction(sql.FieldHasPrefix(FieldExternalTxID, v))
}

// ExternalTxIDHasSuffix applies the HasSuffix predicate on the "external_tx_id" field.
func ExternalTxIDHasSuffix(v string) predicate.LedgerTransaction {
	return predicate.LedgerTransaction(sql.FieldHasSuffix(FieldExternalTxID, v))
}

// ExternalTxIDEqualFold applies the EqualFold predicate on the "external_tx_id" field.
func ExternalTxIDEqualFold(v string) predicate.LedgerTransaction {
	return predicate.LedgerTransaction(sql.FieldEqualFold(FieldExternalTxID, v))
}

// ExternalTxIDContainsFold applies the ContainsFold predicate on the "external_tx_id" field.
func ExternalTxIDContainsFold(v string) predicate.LedgerTransaction {
	return predicate.LedgerTransaction(sql.FieldContainsFold(FieldExternalTxID, v))
}

// TypeEQ applies the EQ predicate on the "type" field.
func TypeEQ(v Type) predicate.LedgerTransaction {
	return predicate.LedgerTransaction(sql.FieldEQ(FieldType, v))
}

// TypeNEQ applies the NEQ predicate on the "type" field.
func TypeNEQ(v Type) predicate.LedgerTransaction {
	return predicate.LedgerTransaction(sql.FieldNEQ(FieldType, v))
}

// TypeIn applies the In predicate on the "type" field.
func TypeIn(vs ...Type) predicate.LedgerTransaction {
	return predicate.LedgerTransaction(sql.FieldIn(FieldType, vs...))
}

// TypeNotIn applies the NotIn predicate on the "type" field.
func TypeNotIn(vs ...Type) predicate.LedgerTransaction {
	return predicate.LedgerTransaction(sql.FieldNotIn(FieldType, vs...))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.LedgerTransaction {
	return predicate.LedgerTransaction(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.LedgerTransaction {
	return predicate.LedgerTransaction(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.LedgerTransaction {
	return predicate.LedgerTransaction(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.LedgerTransaction {
	return predicate.LedgerTransaction(sql.FieldNotIn(FieldStatus, vs...))
}

// AmountEQ applies the EQ predicate on the "amount" field.
func AmountEQ(v decimal.Decimal) predicate.LedgerTransaction {
	return predicate.LedgerTransaction(sql.FieldEQ(FieldAmount, v))
}

// AmountNEQ applies the NEQ predicate on the "amount" field.
func AmountNEQ(v decimal.Decimal) predicate.LedgerTransaction {
	return predicate.LedgerTransaction(sql.FieldNEQ(FieldAmount, v))
}

// AmountIn applies the In predicate on the "amount" field.
func AmountIn(vs ...decimal.Decimal) predicate.LedgerTransaction {
	return predicate.LedgerTransaction(sql.FieldIn(FieldAmount, vs...))
}

// AmountNotIn applies the NotIn predicate on the "amount" field.
func AmountNotIn(vs ...decimal.Decimal) predicate.LedgerTransaction {
	return predicate.LedgerTransaction(sql.FieldNotIn(FieldAmount, vs...))
}

// AmountGT applies the GT predicate on the "amount" field.
func AmountGT(v decimal.Decimal) predicate.LedgerTransaction {
	return predicate.LedgerTransaction(sql.FieldGT(FieldAmount, v))
}

// AmountGTE applies the GTE predicate on the "amount" field.
func AmountGTE(v decimal.Decimal) predicate.LedgerTransaction {
	return predicate.LedgerTransaction(sql.FieldGTE(FieldAmount, v))
}

// AmountLT applies the LT predicate on the "amount" field.
func AmountLT(v decimal.Decimal) predicate.LedgerTransaction {
	return predicate.LedgerTransaction(sql.FieldLT(FieldAmount, v))
}

// AmountLTE applies the LTE predicate on the "amount" field.
func AmountLTE(v decimal.Decimal) predicate.LedgerTransaction {
	return predicate.LedgerTransaction(sql.FieldLTE(FieldAmount, v))
}

// CurrencyEQ applies the EQ predicate on the "currency" field.
func CurrencyEQ(v string) predicate.LedgerTransaction {
	return predicate.LedgerTransaction(sql.FieldEQ(FieldCurrency, v))
}

// CurrencyNEQ applies the NEQ predicate on the "currency" field.
func CurrencyNEQ(v string) predicate.LedgerTransaction {
	return predicate.LedgerTransaction(sql.FieldNEQ(FieldCurrency, v))
}

// CurrencyIn applies the In predicate on the "currency" field.
func CurrencyIn(vs ...string) predicate.LedgerTransaction {
	return predicate.LedgerTransaction(sql.FieldIn(FieldCurrency, vs...))
}

// CurrencyNotIn applies the NotIn predicate on the "currency" field.
func CurrencyNotIn(vs ...string) predicate.LedgerTransaction {
	return predicate.LedgerTransaction(sql.FieldNotIn(FieldCurrency, vs...))
}

// CurrencyGT applies the GT predicate on the "currency" field.
func CurrencyGT(v string) predicate.LedgerTransaction {
	return predicate.LedgerTransaction(sql.FieldGT(FieldCurrency, v))
}

// CurrencyGTE applies the GTE predicate on the "currency" field.
func CurrencyGTE(v string) predicate.LedgerTransaction {
	return predicate.LedgerTransaction(sql.FieldGTE(FieldCurrency, v))
}

// CurrencyLT applies the LT predicate on the "currency" field.
func CurrencyLT(v string) predicate.LedgerTransaction {
	return predicate.LedgerTransaction(sql.FieldLT(FieldCurrency, v))
}

// CurrencyLTE applies the LTE predicate on the "currency" field.
func CurrencyLTE(v string) predicate.LedgerTransaction {
	return predicate.LedgerTransaction(sql.FieldLTE(FieldCurrency, v))
}

// CurrencyContains applies the Contains predicate on the "currency" field.
func CurrencyContains(v string) predicate.LedgerTransaction {
	return predicate.LedgerTransaction(sql.FieldContains(FieldCurrency, v))
}

// CurrencyHasPrefix applies the HasPrefix predicate on the "currency" field.
func CurrencyHasPrefix(v string) predicate.LedgerTransaction {
	return predicate.LedgerTransaction(sql.FieldHasPrefix(FieldCurrency, v))
}

// CurrencyHasSuffix applies the HasSuffix predicate on the "currency" field.
func CurrencyHasSuffix(v string) predicate.LedgerTransaction {
	return predicate.LedgerTransaction(sql.FieldHasSuffix(FieldCurrency, v))
}

// CurrencyEqualFold applies the EqualFold predicate on the "currency" field.
func CurrencyEqualFold(v string) predicate.LedgerTransaction {
	return predicate.LedgerTransaction(sql.FieldEqualFold(FieldCurrency, v))
}

// CurrencyContainsFold applies the ContainsFold predicate on the "currency" field.
func CurrencyContainsFold(v string) predicate.LedgerTransaction {
	return predicate.LedgerTransaction(sql.FieldContainsFold(FieldCurrency, v))
}

// ReferenceEQ applies the EQ predicate on the "reference" field.
func ReferenceEQ(v string) predicate.LedgerTransaction {
	return predicate.LedgerTransaction(sql.FieldEQ(FieldReference, v))
}

// ReferenceNEQ applies the NEQ predicate on the "reference" field.
func ReferenceNEQ(v string) predicate.LedgerTransaction {
	return predicate.LedgerTransaction(sql.FieldNEQ(FieldReference, v))
}

// ReferenceIn applies the In predicate on the "reference" field.
func ReferenceIn(vs ...string) predicate.LedgerTransaction {
	return predicate.LedgerTransaction(sql.FieldIn(FieldReference, vs...))
}

// ReferenceNotIn applies the NotIn predicate on the "reference" field.
func ReferenceNotIn(vs ...string) predicate.LedgerTransaction {
	return predicate.LedgerTransaction(sql.FieldNotIn(FieldReference, vs...))
}

// ReferenceGT applies the GT predicate on the "reference" field.
func ReferenceGT(v string) predicate.LedgerTransaction {
	return predicate.LedgerTransaction(sql.FieldGT(FieldReference, v))
}

// ReferenceGTE applies the GTE predicate on the "reference" field.
func ReferenceGTE(v string) predicate.LedgerTransaction {
	return predicate.LedgerTransaction(sql.FieldGTE(FieldReference, v))
}

// ReferenceLT applies the LT predicate on the "reference" field.
func ReferenceLT(v string) predicate.LedgerTransaction {
	return predicate.LedgerTransaction(sql.FieldLT(FieldReference, v))
}

// ReferenceLTE applies the LTE predicate on the "reference" field.
func ReferenceLTE(v string) predicate.LedgerTransaction {
	return predicate.LedgerTransaction(sql.FieldLTE(FieldReference, v))
}

// ReferenceContains applies the Contains predicate on the "reference" field.
func ReferenceContains(v string) predicate.LedgerTransaction {
	return predicate.LedgerTransaction(sql.FieldContains(FieldReference, v))
}

// ReferenceHasPrefix applies the HasPrefix predicate on the "reference" field.
func ReferenceHasPrefix(v string) predicate.LedgerTransaction {
	return predicate.LedgerTransaction(sql.FieldHasPrefix(FieldReference, v))
}

// ReferenceHasSuffix applies the HasSuffix predicate on the "reference" field.
func ReferenceHasSuffix(v string) predicate.LedgerTransaction {
	return predicate.LedgerTransaction(sql.FieldHasSuffix(FieldReference, v))
}

// ReferenceIsNil applies the IsNil predicate on the "reference" field.
func ReferenceIsNil() predicate.LedgerTransaction {
	return predicate.LedgerTransaction(sql.FieldIsNull(FieldReference))
}

// ReferenceNotNil applies the NotNil predicate on the "reference" field.
func ReferenceNotNil() predicate.LedgerTransaction {
	return predicate.LedgerTransaction(sql.FieldNotNull(FieldReference))
}

// ReferenceEqualFold applies the EqualFold predicate on the "reference" field.
func ReferenceEqualFold(v string) predicate.LedgerTransaction {
	return predicate.LedgerTransaction(sql.FieldEqualFold(FieldReference, v))
}

// ReferenceContainsFold applies the ContainsFold predicate on the "reference" field.
func ReferenceContainsFold(v string) predicate.LedgerTransaction {
	return predicate.LedgerTransaction(sql.FieldContainsFold(FieldReference, v))
}

// CounterpartyNameEQ applies the EQ predicate on the "counterparty_name" field.
func CounterpartyNameEQ(v string) predicate.LedgerTransaction {
	return predicate.LedgerTransaction(sql.FieldEQ(FieldCounterpartyName, v))
}

// CounterpartyNameNEQ applies the NEQ predicate on the "counterparty_name" field.
func CounterpartyNameNEQ(v string) predicate.LedgerTransaction {
	return predicate.LedgerTransaction(sql.FieldNEQ(FieldCounterpartyName, v))
}

// CounterpartyNameIn applies the In predicate on the "counterparty_name" field.
func CounterpartyNameIn(vs ...string) predicate.LedgerTransaction {
	return predicate.LedgerTransaction(sql.FieldIn(FieldCounterpartyName, vs...))
}

// CounterpartyNameNotIn applies the NotIn predicate on the "counterparty_name" field.
func CounterpartyNameNotIn(vs ...string) predicate.LedgerTransaction {
	return predicate.LedgerTransaction(sql.FieldNotIn(FieldCounterpartyName, vs...))
}

// CounterpartyNameGT applies the GT predicate on the "counterparty_name" field.
func CounterpartyNameGT(v string) predicate.LedgerTransaction {
	return predicate.LedgerTransaction(sql.FieldGT(FieldCounterpartyName, v))
}

// CounterpartyNameGTE applies the GTE predicate on the "counterparty_name" field.
func CounterpartyNameGTE(v string) predicate.LedgerTransaction {
	return predicate.LedgerTransaction(sql.FieldGTE(FieldCounterpartyName, v))
}

// CounterpartyNameLT applies the LT predicate on the "counterparty_name" field.
func CounterpartyNameLT(v string) predicate.LedgerTransaction {
	return predicate.LedgerTransaction(sql.FieldLT(FieldCounterpartyName, v))
}

// CounterpartyNameLTE applies the LTE predicate on the "counterparty_name" field.
func CounterpartyNameLTE(v string) predicate.LedgerTransaction {
	return predicate.LedgerTransaction(sql.FieldLTE(FieldCounterpartyName, v))
}

// CounterpartyNameContains applies the Contains predicate on the "counterparty_name" field.
func CounterpartyNameContains(v string) predicate.LedgerTransaction {
	return predicate.LedgerTransaction(sql.FieldContains(FieldCounterpartyName, v))
}

// CounterpartyNameHasPrefix applies the HasPrefix predicate on the "counterparty_name" field.
func CounterpartyNameHasPrefix(v string) predicate.LedgerTransaction {
	return predicate.LedgerTransaction(sql.FieldHasPrefix(FieldCounterpartyName, v))
}

// CounterpartyNameHasSuffix applies the HasSuffix predicate on the "counterparty_name" field.
func CounterpartyNameHasSuffix(v string) predicate.LedgerTransaction {
	return predicate.LedgerTransaction(sql.FieldHasSuffix(FieldCounterpartyName, v))
}

// CounterpartyNameIsNil applies the IsNil predicate on the "counterparty_name" field.
func CounterpartyNameIsNil() predicate.LedgerTransaction {
	return predicate.LedgerTransaction(sql.FieldIsNull(FieldCounterpartyName))
}

// CounterpartyNameNotNil applies the NotNil predicate on the "counterparty_name" field.
func CounterpartyNameNotNil() predicate.LedgerTransaction {
	return predicate.LedgerTransaction(sql.FieldNotNull(FieldCounterpartyName))
}

// CounterpartyNameEqualFold applies the EqualFold predicate on the "counterparty_name" field.
func CounterpartyNameEqualFold(v string) predicate.LedgerTransaction {
	return predicate.LedgerTransaction(sql.FieldEqualFold(FieldCounterpartyName, v))
}

// CounterpartyNameContainsFold applies the ContainsFold predicate on the "counterparty_name" field.
func CounterpartyNameContainsFold(v string) predicate.LedgerTransaction {
	return predicate.LedgerTransaction(sql.FieldContainsFold(FieldCounterpartyName, v))
}

// CounterpartyIbanEQ applies the EQ predicate on the "counterparty_iban" field.
func CounterpartyIbanEQ(v string) predicate.LedgerTransaction {
	return predicate.LedgerTransaction(sql.FieldEQ(FieldCounterpartyIban, v))
}

// CounterpartyIbanNEQ applies the NEQ predicate on the "counterparty_iban" field.
func CounterpartyIbanNEQ(v string) predicate.LedgerTransaction {
	return predicate.LedgerTransaction(sql.FieldNEQ(FieldCounterpartyIban, v))
}

// CounterpartyIbanIn applies the In predicate on the "counterparty_iban" field.
func CounterpartyIbanIn(vs ...string) predicate.LedgerTransaction {
	return predicate.LedgerTransaction(sql.FieldIn(FieldCounterpartyIban, vs...))
}

// CounterpartyIbanNotIn applies the NotIn predicate on the "counterparty_iban" field.
func CounterpartyIbanNotIn(vs ...string) predicate.LedgerTransaction {
	return predicate.LedgerTransaction(sql.FieldNotIn(FieldCounterpartyIban, vs...))
}

// CounterpartyIbanGT applies the GT predicate on the "counterparty_iban" field.
func CounterpartyIbanGT(v string) predicate.LedgerTransaction {
	return predicate.LedgerTransaction(sql.FieldGT(FieldCounterpartyIban, v))
}

// CounterpartyIbanGTE applies the GTE predicate on the "counterparty_iban" field.
func CounterpartyIbanGTE(v string) predicate.LedgerTransaction {
	return predicate.LedgerTransaction(sql.FieldGTE(FieldCounterpartyIban, v))
}

// CounterpartyIbanLT applies the LT predicate on the "counterparty_iban" field.
func CounterpartyIbanLT(v string) predicate.LedgerTransaction {
	return predicate.LedgerTransaction(sql.FieldLT(FieldCounterpartyIban, v))
}

// CounterpartyIbanLTE applies the LTE predicate on the "counterparty_iban" field.
func CounterpartyIbanLTE(v string) predicate.LedgerTransaction {
	return predicate.LedgerTransaction(sql.FieldLTE(FieldCounterpartyIban, v))
}

// CounterpartyIbanContains applies the Contains predicate on the "counterparty_iban" field.
func CounterpartyIbanContains(v string) predicate.LedgerTransaction {
	return predicate.LedgerTransaction(sql.FieldContains(FieldCounterpartyIban, v))
}

// CounterpartyIbanHasPrefix applies the HasPrefix predicate on the "counterparty_iban" field.
func CounterpartyIbanHasPrefix(v string) predicate.LedgerTransaction {
	return predicate.LedgerTransaction(sql.FieldHasPrefix(FieldCounterpartyIban, v))
}

// CounterpartyIbanHasSuffix applies the HasSuffix predicate on the "counterparty_iban" field.
func CounterpartyIbanHasSuffix(v string) predicate.LedgerTransaction {
	return predicate.LedgerTransaction(sql.FieldHasSuffix(FieldCounterpartyIban, v))
}

// CounterpartyIbanIsNil applies the IsNil predicate on the "counterparty_iban" field.
func CounterpartyIbanIsNil() predicate.LedgerTransaction {
	return predicate.LedgerTransaction(sql.FieldIsNull(FieldCounterpartyIban))
}

// CounterpartyIbanNotNil applies the NotNil predicate on the "counterparty_iban" field.
func CounterpartyIbanNotNil() predicate.LedgerTransaction {
	return predicate.LedgerTransaction(sql.FieldNotNull(FieldCounterpartyIban))
}

// CounterpartyIbanEqualFold applies the EqualFold predicate on the "counterparty_iban" field.
func CounterpartyIbanEqualFold(v string) predicate.LedgerTransaction {
	return predicate.LedgerTransaction(sql.FieldEqualFold(FieldCounterpartyIban, v))
}

// CounterpartyIbanContainsFold applies the ContainsFold predicate on the "counterparty_iban" field.
func CounterpartyIbanContainsFold(v string) predicate.LedgerTransaction {
	return predicate.LedgerTransaction(sql.FieldContainsFold(FieldCounterpartyIban, v))
}

// OrderRefEQ applies the EQ predicate on the "order_ref" field.
func OrderRefEQ(v string) predicate.LedgerTransaction {
	return predicate.LedgerTransaction(sql.FieldEQ(FieldOrderRef, v))
}

// OrderRefNEQ applies the NEQ predicate on the "order_ref" field.
func OrderRefNEQ(v string) predicate.LedgerTransaction {
	return predicate.LedgerTransaction(sql.FieldNEQ(FieldOrderRef, v))
}

// OrderRefIn applies the In predicate on the "order_ref" field.
func OrderRefIn(vs ...string) predicate.LedgerTransaction {
	return predicate.LedgerTransaction(sql.FieldIn(FieldOrderRef, vs...))
}

// OrderRefNotIn applies the NotIn predicate on the "order_ref" field.
func OrderRefNotIn(vs ...string) predicate.LedgerTransaction {
	return predicate.LedgerTransaction(sql.FieldNotIn(FieldOrderRef, vs...))
}

// OrderRefGT applies the GT predicate on the "order_ref" field.
func OrderRefGT(v string) predicate.LedgerTransaction {
	return predicate.LedgerTransaction(sql.FieldGT(FieldOrderRef, v))
}

// OrderRefGTE applies the GTE predicate on the "order_ref" field.
func OrderRefGTE(v string) predicate.LedgerTransaction {
	return predicate.LedgerTransaction(sql.FieldGTE(FieldOrderRef, v))
}

// OrderRefLT applies the LT predicate on the "order_ref" field.
func OrderRefLT(v string) predicate.LedgerTransaction {
	return predicate.LedgerTransaction(sql.FieldLT(FieldOrderRef, v))
}

// OrderRefLTE applies the LTE predicate on the "order_ref" field.
func OrderRefLTE(v string) predicate.LedgerTransaction {
	return predicate.LedgerTransaction(sql.FieldLTE(FieldOrderRef, v))
}

// OrderRefContains applies the Contains predicate on the "order_ref" field.
func OrderRefContains(v string) predicate.LedgerTransaction {
	return predicate.LedgerTransaction(sql.FieldContains(FieldOrderRef, v))
}

// OrderRefHasPrefix applies the HasPrefix predicate on the "order_ref" field.
func OrderRefHasPrefix(v string) predicate.LedgerTransaction {
	return predicate.LedgerTransaction(sql.FieldHasPrefix(FieldOrderRef, v))
}

// OrderRefHasSuffix applies the HasSuffix predicate on the "order_ref" field.
func OrderRefHasSuffix(v string) predicate.LedgerTransaction {
	return predicate.LedgerTransaction(sql.FieldHasSuffix(FieldOrderRef, v))
}

// OrderRefIsNil applies the IsNil predicate on the "order_ref" field.
func OrderRefIsNil() predicate.LedgerTransaction {
	return predicate.LedgerTransaction(sql.FieldIsNull(FieldOrderRef))
}

// OrderRefNotNil applies the NotNil predicate on the "order_ref" field.
func OrderRefNotNil() predicate.LedgerTransaction {
	return predicate.LedgerTransaction(sql.FieldNotNull(FieldOrderRef))
}

// OrderRefEqualFold applies the EqualFold predicate on the "order_ref" field.
func OrderRefEqualFold(v string) predicate.LedgerTransaction {
	return predicate.LedgerTransaction(sql.FieldEqualFold(FieldOrderRef, v))
}

// OrderRefContainsFold applies the ContainsFold predicate on the "order_ref" field.
func OrderRefContainsFold(v string) predicate.LedgerTransaction {
	return predicate.LedgerTransaction(sql.FieldContainsFold(FieldOrderRef, v))
}

// ProcessedAtEQ applies the EQ predicate on the "processed_at" field.
func ProcessedAtEQ(v time.Time) predicate.LedgerTransaction {
	return predicate.LedgerTransaction(sql.FieldEQ(FieldProcessedAt, v))
}

// ProcessedAtNEQ applies the NEQ predicate on the "processed_at" field.
func ProcessedAtNEQ(v time.Time) predicate.LedgerTransaction {
	return predicate.LedgerTransaction(sql.FieldNEQ(FieldProcessedAt, v))
}

// ProcessedAtIn applies the In predicate on the "processed_at" field.
func ProcessedAtIn(vs ...time.Time) predicate.LedgerTransaction {
	return predicate.LedgerTransaction(sql.FieldIn(FieldProcessedAt, vs...))
}

// ProcessedAtNotIn applies the NotIn predicate on the "processed_at" field.
func ProcessedAtNotIn(vs ...time.Time) predicate.LedgerTransaction {
	return predicate.LedgerTransaction(sql.FieldNotIn(FieldProcessedAt, vs...))
}

// ProcessedAtGT applies the GT predicate on the "processed_at" field.
func ProcessedAtGT(v time.Time) predicate.LedgerTransaction {
	return predicate.LedgerTransaction(sql.FieldGT(FieldProcessedAt, v))
}

// ProcessedAtGTE applies the GTE predicate on the "processed_at" field.
func ProcessedAtGTE(v time.Time) predicate.LedgerTransaction {
	return predicate.LedgerTransaction(sql.FieldGTE(FieldProcessedAt, v))
}

// ProcessedAtLT applies the LT predicate on the "processed_at" field.
func ProcessedAtLT(v time.Time) predicate.LedgerTransaction {
	return predicate.LedgerTransaction(sql.FieldLT(FieldProcessedAt, v))
}

// ProcessedAtLTE applies the LTE predicate on the "processed_at" field.
func ProcessedAtLTE(v time.Time) predicate.LedgerTransaction {
	return predicate.LedgerTransaction(sql.FieldLTE(FieldProcessedAt, v))
}

// HasAccount applies the HasEdge predicate on the "account" edge.
func HasAccount() predicate.LedgerTransaction {
	return predicate.LedgerTransaction(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, AccountTable, AccountColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAccountWith applies the HasEdge predicate on the "account" edge with a given conditions (other predicates).
func HasAccountWith(preds ...predicate.VirtualAccount) predicate.LedgerTransaction {
	return predicate.LedgerTransaction(func(s *sql.Selector) {
		step := newAccountStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.LedgerTransaction) predicate.LedgerTransaction {
	return predicate.LedgerTransaction(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.LedgerTransaction) predicate.LedgerTransaction {
	return predicate.LedgerTransaction(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.LedgerTransaction) predicate.LedgerTransaction {
	return predicate.LedgerTransaction(sql.NotPredicates(p))
}
