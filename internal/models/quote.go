package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Quote is an already-resolved market price for a symbol. The core never
// fetches quotes itself; they arrive through the injected price lookup
// collaborator.
type Quote struct {
	Symbol        string          `json:"symbol"`
	Price         decimal.Decimal `json:"price"`
	Change        decimal.Decimal `json:"change"`
	ChangePercent decimal.Decimal `json:"change_percent"`
	AsOf          time.Time       `json:"as_of"`
}
