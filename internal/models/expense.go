package models

import "time"

// Expense is a cost entry, optionally attached to a project. Recording an
// expense appends a FinancialLog row.
type Expense struct {
	ID          int       `json:"id"`
	ProjectID   *int      `json:"project_id,omitempty"`
	Category    string    `json:"category"`
	Amount      string    `json:"amount"`
	Description string    `json:"description"`
	SpentAt     time.Time `json:"spent_at"`
	CreatedBy   int       `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
}

type FinancialEntryType string

const (
	EntryTypeExpense FinancialEntryType = "expense"
	EntryTypeIncome  FinancialEntryType = "income"
)

// FinancialLog is an append-only ledger row. Entries are written as side
// effects (expense recorded, invoice paid) and are never edited.
type FinancialLog struct {
	ID          int                `json:"id"`
	EntryType   FinancialEntryType `json:"entry_type"`
	Amount      string             `json:"amount"`
	Description string             `json:"description"`
	ProjectID   *int               `json:"project_id,omitempty"`
	ExpenseID   *int               `json:"expense_id,omitempty"`
	InvoiceID   *int               `json:"invoice_id,omitempty"`
	CreatedAt   time.Time          `json:"created_at"`
}
