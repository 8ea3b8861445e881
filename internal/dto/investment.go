package dto

import (
	"time"

	"github.com/google/uuid"
)

// CreateInvestmentRequest represents the payload for recording an investment
type CreateInvestmentRequest struct {
	UserID       uuid.UUID              `json:"userId" validate:"required"`
	Type         string                 `json:"type" validate:"required,asset_type"`
	Name         string                 `json:"name" validate:"required"`
	Symbol       string                 `json:"symbol,omitempty"`
	Amount       float64                `json:"amount" validate:"required,gt=0"`
	PurchaseDate time.Time              `json:"purchaseDate" validate:"required"`
	Data         map[string]interface{} `json:"data,omitempty"`
}

// UpdateInvestmentRequest represents the payload for updating an investment
type UpdateInvestmentRequest struct {
	Name   *string                `json:"name,omitempty"`
	Symbol *string                `json:"symbol,omitempty"`
	Amount *float64               `json:"amount,omitempty" validate:"omitempty,gt=0"`
	Data   map[string]interface{} `json:"data,omitempty"`
}

// AddLotRequest represents the payload for recording a purchase lot
type AddLotRequest struct {
	Quantity     float64   `json:"quantity" validate:"required,gt=0"`
	PricePerUnit float64   `json:"pricePerUnit" validate:"required,gt=0"`
	TotalAmount  float64   `json:"totalAmount,omitempty" validate:"omitempty,gt=0"`
	Date         time.Time `json:"date" validate:"required"`
}

// InvestmentResponse represents an investment in API responses
type InvestmentResponse struct {
	ID           string                 `json:"id"`
	UserID       uuid.UUID              `json:"userId"`
	Type         string                 `json:"type"`
	Name         string                 `json:"name"`
	Symbol       string                 `json:"symbol,omitempty"`
	Amount       string                 `json:"amount"`
	PurchaseDate time.Time              `json:"purchaseDate"`
	Data         map[string]interface{} `json:"data,omitempty"`
	Lots         []LotResponse          `json:"lots,omitempty"`
	CreatedAt    time.Time              `json:"createdAt"`
}

// LotResponse represents a purchase lot in API responses
type LotResponse struct {
	ID           uuid.UUID `json:"id"`
	Quantity     string    `json:"quantity"`
	PricePerUnit string    `json:"pricePerUnit"`
	TotalAmount  string    `json:"totalAmount"`
	Date         time.Time `json:"date"`
}

// ValuationResponse represents a single holding valuation in API responses
type ValuationResponse struct {
	InvestmentID  string `json:"investmentId"`
	Type          string `json:"type"`
	TotalInvested string `json:"totalInvested"`
	CurrentValue  string `json:"currentValue"`
	Gain          string `json:"gain"`
	GainPercent   string `json:"gainPercent"`
	Units         string `json:"units,omitempty"`
	ExtraInfo     string `json:"extraInfo,omitempty"`
}

// PortfolioResponse represents the aggregated portfolio valuation
type PortfolioResponse struct {
	TotalInvested string              `json:"totalInvested"`
	CurrentValue  string              `json:"currentValue"`
	TotalGain     string              `json:"totalGain"`
	GainPercent   string              `json:"gainPercent"`
	Holdings      []ValuationResponse `json:"holdings"`
	GeneratedAt   time.Time           `json:"generatedAt"`
}
