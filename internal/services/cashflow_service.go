package services

import (
	"sort"
	"time"

	"homeledger/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

type cashflowService struct {
	recurrence RecurrenceServiceInterface
	metrics    MetricsRecorderInterface
}

// NewCashflowService creates a new CashflowServiceInterface instance
func NewCashflowService(recurrence RecurrenceServiceInterface, metrics MetricsRecorderInterface) CashflowServiceInterface {
	return &cashflowService{
		recurrence: recurrence,
		metrics:    metrics,
	}
}

// Aggregate sums the given transactions under the supplied filters. When the
// filters carry a window, recurring templates are expanded into it first so
// an occurrence inside the window counts even though only its template is
// stored. Malformed amounts contribute zero instead of failing the call.
func (s *cashflowService) Aggregate(transactions []models.Transaction, filters models.CashflowFilters) models.CashflowSummary {
	scoped := s.scope(transactions, filters)

	summary := models.CashflowSummary{
		TotalIncome:  decimal.Zero,
		TotalExpense: decimal.Zero,
	}

	incomeByCategory := make(map[string]*models.CategoryTotal)
	expenseByCategory := make(map[string]*models.CategoryTotal)

	for i := range scoped {
		txn := &scoped[i]
		amount := txn.SafeAmount()

		switch txn.Type {
		case models.TransactionTypeIncome:
			summary.TotalIncome = summary.TotalIncome.Add(amount)
			accumulateCategory(incomeByCategory, txn.Category, amount)
		case models.TransactionTypeExpense:
			summary.TotalExpense = summary.TotalExpense.Add(amount)
			accumulateCategory(expenseByCategory, txn.Category, amount)
		}
	}

	summary.NetCashFlow = summary.TotalIncome.Sub(summary.TotalExpense)
	summary.IncomeByCategory = sortedCategoryTotals(incomeByCategory)
	summary.ExpenseByCategory = sortedCategoryTotals(expenseByCategory)

	if s.metrics != nil {
		s.metrics.IncrementCounter("cashflow_aggregations", map[string]string{"scope": "window"})
	}

	return summary
}

// MonthlyBreakdown produces exactly twelve entries for the given year, one
// per calendar month, re-running recurrence expansion on each month boundary
// so a recurring transaction shows up in every month it recurs into.
func (s *cashflowService) MonthlyBreakdown(transactions []models.Transaction, year int, userID *uuid.UUID) []models.MonthlyFlow {
	flows := make([]models.MonthlyFlow, 0, 12)

	for month := time.January; month <= time.December; month++ {
		start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
		end := start.AddDate(0, 1, 0).Add(-time.Nanosecond)

		summary := s.Aggregate(transactions, models.CashflowFilters{
			Start:  &start,
			End:    &end,
			UserID: userID,
		})

		flows = append(flows, models.MonthlyFlow{
			Month:    month,
			Income:   summary.TotalIncome,
			Expenses: summary.TotalExpense,
			NetFlow:  summary.NetCashFlow,
		})
	}

	return flows
}

// SavingsRate is the saved share of income as a percentage, zero when there
// is no income.
func (s *cashflowService) SavingsRate(income, expenses decimal.Decimal) decimal.Decimal {
	if !income.IsPositive() {
		return decimal.Zero
	}
	return income.Sub(expenses).Div(income).Mul(hundred)
}

// scope expands recurring templates into the filter window and applies the
// user and category filters. Without a window no expansion happens: only the
// literal records are aggregated.
func (s *cashflowService) scope(transactions []models.Transaction, filters models.CashflowFilters) []models.Transaction {
	scoped := transactions
	if filters.Start != nil && filters.End != nil {
		scoped = s.recurrence.ExpandWindow(transactions, *filters.Start, *filters.End)
	}

	result := make([]models.Transaction, 0, len(scoped))
	for i := range scoped {
		txn := &scoped[i]

		if filters.UserID != nil && txn.UserID != *filters.UserID {
			continue
		}
		if filters.Category != "" && txn.Category != filters.Category {
			continue
		}
		if filters.Start != nil && txn.Date.Before(*filters.Start) {
			continue
		}
		if filters.End != nil && txn.Date.After(*filters.End) {
			continue
		}

		result = append(result, *txn)
	}

	return result
}

func accumulateCategory(byCategory map[string]*models.CategoryTotal, category string, amount decimal.Decimal) {
	if category == "" {
		category = models.CategoryOther
	}

	entry, exists := byCategory[category]
	if !exists {
		entry = &models.CategoryTotal{Category: category, Total: decimal.Zero}
		byCategory[category] = entry
	}

	entry.Total = entry.Total.Add(amount)
	entry.Count++
}

func sortedCategoryTotals(byCategory map[string]*models.CategoryTotal) []models.CategoryTotal {
	totals := make([]models.CategoryTotal, 0, len(byCategory))
	for _, entry := range byCategory {
		totals = append(totals, *entry)
	}

	sort.Slice(totals, func(i, j int) bool {
		if totals[i].Total.Equal(totals[j].Total) {
			return totals[i].Category < totals[j].Category
		}
		return totals[i].Total.GreaterThan(totals[j].Total)
	})

	return totals
}
