package services

import (
	"time"

	"homeledger/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RecurrenceServiceInterface expands recurring transaction templates into
// dated occurrences. All methods are pure functions of their inputs.
type RecurrenceServiceInterface interface {
	// Expand materializes the occurrences of one template inside the window
	Expand(template *models.Transaction, windowStart, windowEnd time.Time) []models.Transaction

	// ExpandWindow flattens a record set into the window: literal records
	// plus every expanded occurrence
	ExpandWindow(transactions []models.Transaction, windowStart, windowEnd time.Time) []models.Transaction

	// NextOccurrence returns the first occurrence strictly after the given date
	NextOccurrence(template *models.Transaction, after time.Time) (time.Time, bool)
}

// CashflowServiceInterface aggregates transactions into totals, category
// breakdowns and monthly series
type CashflowServiceInterface interface {
	Aggregate(transactions []models.Transaction, filters models.CashflowFilters) models.CashflowSummary

	// MonthlyBreakdown returns exactly twelve entries, January through December
	MonthlyBreakdown(transactions []models.Transaction, year int, userID *uuid.UUID) []models.MonthlyFlow

	SavingsRate(income, expenses decimal.Decimal) decimal.Decimal
}

// ValuationServiceInterface marks investments to market
type ValuationServiceInterface interface {
	// Calculate values a single investment by its asset type's formula
	Calculate(investment *models.Investment) models.Valuation

	// PortfolioSummary values a set of holdings, isolating per-holding failures
	PortfolioSummary(investments []models.Investment) models.PortfolioSummary
}

// WealthServiceInterface composes cash flow and portfolio value into the
// dashboard figures. It is the single authority for these formulas.
type WealthServiceInterface interface {
	Compose(transactions []models.Transaction, investments []models.Investment) models.WealthSummary
}

// GoalServiceInterface manages savings goals and their planning views
type GoalServiceInterface interface {
	CreateGoal(goal *models.Goal) error
	GetGoal(goalID uuid.UUID) (*models.Goal, error)
	GetUserGoals(userID uuid.UUID) ([]models.Goal, error)
	Contribute(goalID uuid.UUID, amount decimal.Decimal) (*models.Goal, error)
	SetCompleted(goalID uuid.UUID, completed bool) (*models.Goal, error)
	Plan(goal *models.Goal) models.GoalPlan
}

// SampleDataGeneratorInterface generates realistic household finance fixtures
type SampleDataGeneratorInterface interface {
	GenerateTransactions(userID uuid.UUID, start, end time.Time) []*models.Transaction
	GenerateInvestments(userID uuid.UUID, count int) []*models.Investment
	GenerateGoals(userID uuid.UUID, count int) []*models.Goal
}

// MetricsRecorderInterface records operational metrics
type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}
