package dto

import (
	"time"

	"github.com/google/uuid"
)

// TransactionFilters contains filtering options for transaction queries
type TransactionFilters struct {
	StartDate *time.Time `query:"startDate"`
	EndDate   *time.Time `query:"endDate"`
	Type      string     `query:"type"`
	Category  string     `query:"category"`
	Expand    bool       `query:"expand"`
}

// CreateTransactionRequest represents the payload for recording a transaction
type CreateTransactionRequest struct {
	UserID           uuid.UUID              `json:"userId" validate:"required"`
	Type             string                 `json:"type" validate:"required,transaction_type"`
	Amount           float64                `json:"amount" validate:"required,gt=0"`
	Category         string                 `json:"category" validate:"required"`
	Description      string                 `json:"description,omitempty"`
	Date             time.Time              `json:"date" validate:"required"`
	Recurring        bool                   `json:"recurring"`
	RecurringPeriod  string                 `json:"recurringPeriod,omitempty" validate:"recurring_period"`
	RecurringEndDate *time.Time             `json:"recurringEndDate,omitempty"`
	Metadata         map[string]interface{} `json:"metadata,omitempty"`
}

// UpdateTransactionRequest represents the payload for updating a transaction
type UpdateTransactionRequest struct {
	Amount           *float64   `json:"amount,omitempty" validate:"omitempty,gt=0"`
	Category         *string    `json:"category,omitempty"`
	Description      *string    `json:"description,omitempty"`
	Date             *time.Time `json:"date,omitempty"`
	Recurring        *bool      `json:"recurring,omitempty"`
	RecurringPeriod  *string    `json:"recurringPeriod,omitempty" validate:"omitempty,recurring_period"`
	RecurringEndDate *time.Time `json:"recurringEndDate,omitempty"`
}

// TransactionResponse represents a transaction in API responses
type TransactionResponse struct {
	ID                  string     `json:"id"`
	UserID              uuid.UUID  `json:"userId"`
	Type                string     `json:"type"`
	Amount              string     `json:"amount"`
	Category            string     `json:"category"`
	Description         string     `json:"description,omitempty"`
	Date                time.Time  `json:"date"`
	Recurring           bool       `json:"recurring"`
	RecurringPeriod     string     `json:"recurringPeriod,omitempty"`
	RecurringEndDate    *time.Time `json:"recurringEndDate,omitempty"`
	IsRecurringInstance bool       `json:"isRecurringInstance,omitempty"`
	ParentRecurringID   string     `json:"parentRecurringId,omitempty"`
	CreatedAt           time.Time  `json:"createdAt"`
}

// ListTransactionsResponse represents the response for listing transactions
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Total        int                   `json:"total"`
}
