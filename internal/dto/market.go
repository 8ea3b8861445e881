package dto

import "time"

// UpsertQuoteRequest represents the payload for publishing a market quote
type UpsertQuoteRequest struct {
	Symbol        string  `json:"symbol" validate:"required"`
	Price         float64 `json:"price" validate:"required,gt=0"`
	Change        float64 `json:"change,omitempty"`
	ChangePercent float64 `json:"changePercent,omitempty"`
}

// QuoteResponse represents a market quote in API responses
type QuoteResponse struct {
	Symbol        string    `json:"symbol"`
	Price         string    `json:"price"`
	Change        string    `json:"change"`
	ChangePercent string    `json:"changePercent"`
	AsOf          time.Time `json:"asOf"`
}

// ListQuotesResponse represents the response for listing tracked symbols
type ListQuotesResponse struct {
	Quotes []QuoteResponse `json:"quotes"`
	Total  int             `json:"total"`
}
