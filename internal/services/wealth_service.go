package services

import (
	"time"

	"homeledger/internal/models"

	"github.com/shopspring/decimal"
)

type wealthService struct {
	cashflow  CashflowServiceInterface
	valuation ValuationServiceInterface
	now       func() time.Time
}

// NewWealthService creates a new WealthServiceInterface instance
func NewWealthService(cashflow CashflowServiceInterface, valuation ValuationServiceInterface) WealthServiceInterface {
	return &wealthService{
		cashflow:  cashflow,
		valuation: valuation,
		now:       time.Now,
	}
}

// Compose derives the dashboard wealth figures from the full transaction
// history and the current portfolio. This is the single authoritative
// implementation: every view reporting available cash or total wealth calls
// it, so two screens can never disagree on the formula.
//
// Available cash is all-time income minus all-time expenses minus the nominal
// invested total, floored at zero so an over-invested state never renders as
// negative cash.
func (s *wealthService) Compose(transactions []models.Transaction, investments []models.Investment) models.WealthSummary {
	allTime := s.cashflow.Aggregate(transactions, models.CashflowFilters{})

	totalInvestmentCost := decimal.Zero
	for i := range investments {
		totalInvestmentCost = totalInvestmentCost.Add(investments[i].Amount)
	}

	portfolio := s.valuation.PortfolioSummary(investments)

	availableCash := allTime.TotalIncome.Sub(allTime.TotalExpense).Sub(totalInvestmentCost)
	if availableCash.IsNegative() {
		availableCash = decimal.Zero
	}

	return models.WealthSummary{
		AvailableCash:        availableCash,
		TotalInvestmentValue: portfolio.CurrentValue,
		TotalInvestmentCost:  totalInvestmentCost,
		TotalWealth:          availableCash.Add(portfolio.CurrentValue),
		AllTimeIncome:        allTime.TotalIncome,
		AllTimeExpenses:      allTime.TotalExpense,
		GeneratedAt:          s.now(),
	}
}
