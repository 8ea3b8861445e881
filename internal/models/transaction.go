package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	TransactionTypeIncome  = "income"
	TransactionTypeExpense = "expense"

	RecurringPeriodWeekly    = "WEEKLY"
	RecurringPeriodMonthly   = "MONTHLY"
	RecurringPeriodQuarterly = "QUARTERLY"
	RecurringPeriodYearly    = "YEARLY"
)

// DateFormat is the layout used for day-granularity dates in IDs and API payloads.
const DateFormat = "2006-01-02"

var (
	ErrInvalidTransactionType = errors.New("invalid transaction type")
	ErrInvalidRecurringPeriod = errors.New("invalid recurring period")
	ErrNegativeAmount         = errors.New("transaction amount must not be negative")
)

// Transaction represents a single income or expense entry. A transaction
// flagged as recurring acts as a template from which dated occurrences are
// expanded; occurrences are derived values and are never persisted.
type Transaction struct {
	ID               string          `gorm:"type:varchar(64);primary_key" json:"id"`
	UserID           uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	Type             string          `gorm:"type:varchar(10);not null" json:"type"`
	Amount           decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	Category         string          `gorm:"type:varchar(50);not null;index" json:"category"`
	Description      string          `gorm:"type:text" json:"description"`
	Date             time.Time       `gorm:"not null;index" json:"date"`
	Recurring        bool            `gorm:"not null;default:false" json:"recurring"`
	RecurringPeriod  string          `gorm:"type:varchar(12)" json:"recurring_period,omitempty"`
	RecurringEndDate *time.Time      `json:"recurring_end_date,omitempty"`
	Metadata         JSONBMap        `gorm:"type:jsonb" json:"metadata,omitempty"`
	CreatedAt        time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt        time.Time       `gorm:"not null" json:"updated_at"`

	// Occurrence fields, populated only on expanded recurring instances.
	IsRecurringInstance bool   `gorm:"-" json:"is_recurring_instance"`
	ParentRecurringID   string `gorm:"-" json:"parent_recurring_id,omitempty"`
}

// BeforeCreate hook for Transaction
func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}

	now := time.Now()
	if t.CreatedAt.IsZero() {
		t.CreatedAt = now
	}
	if t.UpdatedAt.IsZero() {
		t.UpdatedAt = now
	}

	return t.Validate()
}

// BeforeUpdate hook for Transaction
func (t *Transaction) BeforeUpdate(tx *gorm.DB) error {
	t.UpdatedAt = time.Now()
	return t.Validate()
}

// Validate validates the transaction fields
func (t *Transaction) Validate() error {
	if t.UserID == uuid.Nil {
		return errors.New("user ID is required")
	}

	if !IsValidTransactionType(t.Type) {
		return ErrInvalidTransactionType
	}

	if t.Amount.IsNegative() {
		return ErrNegativeAmount
	}

	if t.Category == "" {
		return errors.New("transaction category is required")
	}

	if t.Date.IsZero() {
		return errors.New("transaction date is required")
	}

	// A recurring flag without a period is tolerated: such records are
	// treated as non-recurring when expanded.
	if t.RecurringPeriod != "" && !IsValidRecurringPeriod(t.RecurringPeriod) {
		return ErrInvalidRecurringPeriod
	}

	return nil
}

// IsExpandable reports whether the transaction is a usable recurring template.
func (t *Transaction) IsExpandable() bool {
	return t.Recurring && IsValidRecurringPeriod(t.RecurringPeriod) && !t.IsRecurringInstance
}

// IsIncome returns true for income entries
func (t *Transaction) IsIncome() bool {
	return t.Type == TransactionTypeIncome
}

// IsExpense returns true for expense entries
func (t *Transaction) IsExpense() bool {
	return t.Type == TransactionTypeExpense
}

// SafeAmount returns the amount, treating a negative or unset value as zero.
// Malformed records must degrade to zero instead of corrupting totals.
func (t *Transaction) SafeAmount() decimal.Decimal {
	if t.Amount.IsNegative() {
		return decimal.Zero
	}
	return t.Amount
}

// OccurrenceID builds the deterministic identifier of the occurrence of this
// template on the given date.
func (t *Transaction) OccurrenceID(date time.Time) string {
	return fmt.Sprintf("%s_%s", t.ID, date.Format(DateFormat))
}

// MaterializeOccurrence copies the template into a dated occurrence. The
// template itself is never mutated.
func (t *Transaction) MaterializeOccurrence(date time.Time) Transaction {
	occurrence := *t
	occurrence.ID = t.OccurrenceID(date)
	occurrence.Date = date
	occurrence.IsRecurringInstance = true
	occurrence.ParentRecurringID = t.ID
	return occurrence
}

// TableName returns the table name for Transaction
func (t *Transaction) TableName() string {
	return "transactions"
}

// IsValidTransactionType checks if the transaction type is valid
func IsValidTransactionType(transactionType string) bool {
	switch transactionType {
	case TransactionTypeIncome, TransactionTypeExpense:
		return true
	default:
		return false
	}
}

// IsValidRecurringPeriod checks if the recurring period is one of the
// supported calendar periods
func IsValidRecurringPeriod(period string) bool {
	switch period {
	case RecurringPeriodWeekly, RecurringPeriodMonthly, RecurringPeriodQuarterly, RecurringPeriodYearly:
		return true
	default:
		return false
	}
}
