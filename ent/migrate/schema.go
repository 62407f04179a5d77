// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AuditEntriesColumns holds the columns for the "audit_entries" table.
	AuditEntriesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "category", Type: field.TypeString},
		{Name: "severity", Type: field.TypeEnum, Enums: []string{"info", "warning", "error", "critical"}, Default: "info"},
		{Name: "account_id", Type: field.TypeUUID, Nullable: true},
		{Name: "user_id", Type: field.TypeUUID, Nullable: true},
		{Name: "admin_ref", Type: field.TypeString, Nullable: true},
		{Name: "before", Type: field.TypeJSON, Nullable: true},
		{Name: "after", Type: field.TypeJSON, Nullable: true},
		{Name: "reason", Type: field.TypeString, Nullable: true},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// AuditEntriesTable holds the schema information for the "audit_entries" table.
	AuditEntriesTable = &schema.Table{
		Name:       "audit_entries",
		Columns:    AuditEntriesColumns,
		PrimaryKey: []*schema.Column{AuditEntriesColumns[0]},
	}
	// LedgerTransactionsColumns holds the columns for the "ledger_transactions" table.
	LedgerTransactionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "external_tx_id", Type: field.TypeString, Unique: true},
		{Name: "type", Type: field.TypeEnum, Enums: []string{"credit", "debit"}},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"completed"}, Default: "completed"},
		{Name: "amount", Type: field.TypeFloat64},
		{Name: "currency", Type: field.TypeString, Size: 10},
		{Name: "reference", Type: field.TypeString, Nullable: true},
		{Name: "counterparty_name", Type: field.TypeString, Nullable: true},
		{Name: "counterparty_iban", Type: field.TypeString, Nullable: true},
		{Name: "order_ref", Type: field.TypeString, Nullable: true},
		{Name: "processed_at", Type: field.TypeTime},
		{Name: "virtual_account_transactions", Type: field.TypeUUID},
	}
	// LedgerTransactionsTable holds the schema information for the "ledger_transactions" table.
	LedgerTransactionsTable = &schema.Table{
		Name:       "ledger_transactions",
		Columns:    LedgerTransactionsColumns,
		PrimaryKey: []*schema.Column{LedgerTransactionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "ledger_transactions_virtual_accounts_transactions",
				Columns:    []*schema.Column{LedgerTransactionsColumns[11]},
				RefColumns: []*schema.Column{VirtualAccountsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
	}
	// ProviderConfigsColumns holds the columns for the "provider_configs" table.
	ProviderConfigsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "identifier", Type: field.TypeString, Unique: true},
		{Name: "category", Type: field.TypeEnum, Enums: []string{"banking", "kyc", "rates", "email", "blockchain"}},
		{Name: "enabled", Type: field.TypeBool, Default: false},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"inactive", "active", "error"}, Default: "inactive"},
		{Name: "credential", Type: field.TypeString, Nullable: true},
		{Name: "endpoint_url", Type: field.TypeString, Nullable: true},
		{Name: "settings", Type: field.TypeJSON, Nullable: true},
		{Name: "last_tested_at", Type: field.TypeTime, Nullable: true},
	}
	// ProviderConfigsTable holds the schema information for the "provider_configs" table.
	ProviderConfigsTable = &schema.Table{
		Name:       "provider_configs",
		Columns:    ProviderConfigsColumns,
		PrimaryKey: []*schema.Column{ProviderConfigsColumns[0]},
	}
	// VirtualAccountsColumns holds the columns for the "virtual_accounts" table.
	VirtualAccountsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeUUID},
		{Name: "provider_account_id", Type: field.TypeString, Nullable: true},
		{Name: "iban", Type: field.TypeString, Nullable: true},
		{Name: "bic", Type: field.TypeString, Nullable: true},
		{Name: "bank_name", Type: field.TypeString, Nullable: true},
		{Name: "currency", Type: field.TypeString, Size: 10},
		{Name: "balance", Type: field.TypeFloat64},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "active", "suspended", "closed", "failed"}, Default: "pending"},
		{Name: "last_balance_update", Type: field.TypeTime, Nullable: true},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
	}
	// VirtualAccountsTable holds the schema information for the "virtual_accounts" table.
	VirtualAccountsTable = &schema.Table{
		Name:       "virtual_accounts",
		Columns:    VirtualAccountsColumns,
		PrimaryKey: []*schema.Column{VirtualAccountsColumns[0]},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AuditEntriesTable,
		LedgerTransactionsTable,
		ProviderConfigsTable,
		VirtualAccountsTable,
	}
)

func init() {
	LedgerTransactionsTable.ForeignKeys[0].RefTable = VirtualAccountsTable
}
