package market

import (
	"time"

	"homeledger/internal/models"

	"github.com/shopspring/decimal"
)

// SeedDefaultQuotes loads a small set of reference prices so a fresh
// development instance can value common holdings without any manual
// quote entry. Prices are placeholders, not live data.
func SeedDefaultQuotes(store *StaticQuoteStore) {
	now := time.Now().UTC()

	defaults := []models.Quote{
		{Symbol: "THYAO", Price: decimal.NewFromFloat(285.50), AsOf: now},
		{Symbol: "GARAN", Price: decimal.NewFromFloat(112.30), AsOf: now},
		{Symbol: "ASELS", Price: decimal.NewFromFloat(74.85), AsOf: now},
		{Symbol: "XAU", Price: decimal.NewFromFloat(2450.00), AsOf: now},
		{Symbol: "XAG", Price: decimal.NewFromFloat(31.20), AsOf: now},
		{Symbol: "USD", Price: decimal.NewFromFloat(34.15), AsOf: now},
		{Symbol: "EUR", Price: decimal.NewFromFloat(36.80), AsOf: now},
		{Symbol: "BTC", Price: decimal.NewFromFloat(97500.00), AsOf: now},
		{Symbol: "ETH", Price: decimal.NewFromFloat(3420.00), AsOf: now},
	}

	for _, quote := range defaults {
		store.Set(quote)
	}
}
