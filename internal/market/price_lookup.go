// Package market supplies already-resolved price data to the valuation
// engine. The engine never fetches or awaits anything itself: a lookup either
// answers synchronously or reports the price as unavailable, in which case
// valuations fall back to purchase price with zero gain.
package market

import (
	"sort"
	"strings"
	"sync"
	"time"

	"homeledger/internal/models"
)

// PriceLookup resolves the current quote for a symbol. ok is false when no
// price is known; callers must treat that as "use purchase price".
type PriceLookup interface {
	Quote(symbol string) (models.Quote, bool)
}

// StaticQuoteStore is an in-memory PriceLookup fed by manual price updates.
// It is safe for concurrent use.
type StaticQuoteStore struct {
	mu     sync.RWMutex
	quotes map[string]models.Quote
}

// NewStaticQuoteStore creates an empty quote store
func NewStaticQuoteStore() *StaticQuoteStore {
	return &StaticQuoteStore{
		quotes: make(map[string]models.Quote),
	}
}

// Quote implements PriceLookup
func (s *StaticQuoteStore) Quote(symbol string) (models.Quote, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	quote, ok := s.quotes[normalizeSymbol(symbol)]
	if !ok || !quote.Price.IsPositive() {
		return models.Quote{}, false
	}
	return quote, true
}

// Set upserts a quote. A non-positive price removes the symbol instead, so a
// broken feed cannot poison valuations with zero prices.
func (s *StaticQuoteStore) Set(quote models.Quote) {
	symbol := normalizeSymbol(quote.Symbol)
	if symbol == "" {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !quote.Price.IsPositive() {
		delete(s.quotes, symbol)
		return
	}

	quote.Symbol = symbol
	if quote.AsOf.IsZero() {
		quote.AsOf = time.Now()
	}
	s.quotes[symbol] = quote
}

// Remove deletes a symbol's quote
func (s *StaticQuoteStore) Remove(symbol string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.quotes, normalizeSymbol(symbol))
}

// Symbols returns the known symbols in sorted order
func (s *StaticQuoteStore) Symbols() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	symbols := make([]string, 0, len(s.quotes))
	for symbol := range s.quotes {
		symbols = append(symbols, symbol)
	}
	sort.Strings(symbols)
	return symbols
}

func normalizeSymbol(symbol string) string {
	return strings.ToUpper(strings.TrimSpace(symbol))
}
