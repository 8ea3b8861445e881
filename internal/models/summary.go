package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CashflowFilters narrow an aggregation to a window, a user, or a category.
// Nil fields mean "no filter".
type CashflowFilters struct {
	Start    *time.Time
	End      *time.Time
	UserID   *uuid.UUID
	Category string
}

// CategoryTotal is one row of a category breakdown
type CategoryTotal struct {
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
	Count    int             `json:"count"`
}

// MonthlyFlow is the cash flow of a single calendar month
type MonthlyFlow struct {
	Month    time.Month      `json:"month"`
	Income   decimal.Decimal `json:"income"`
	Expenses decimal.Decimal `json:"expenses"`
	NetFlow  decimal.Decimal `json:"net_flow"`
}

// CashflowSummary aggregates transactions over a window
type CashflowSummary struct {
	TotalIncome       decimal.Decimal `json:"total_income"`
	TotalExpense      decimal.Decimal `json:"total_expense"`
	NetCashFlow       decimal.Decimal `json:"net_cash_flow"`
	IncomeByCategory  []CategoryTotal `json:"income_by_category"`
	ExpenseByCategory []CategoryTotal `json:"expense_by_category"`
}

// Valuation is the mark-to-market view of a single investment
type Valuation struct {
	InvestmentID  string          `json:"investment_id"`
	Type          AssetType       `json:"type"`
	TotalInvested decimal.Decimal `json:"total_invested"`
	CurrentValue  decimal.Decimal `json:"current_value"`
	Gain          decimal.Decimal `json:"gain"`
	GainPercent   decimal.Decimal `json:"gain_percent"`
	Units         string          `json:"units"`
	ExtraInfo     string          `json:"extra_info,omitempty"`
}

// PortfolioSummary sums valuations across a set of holdings
type PortfolioSummary struct {
	TotalInvested decimal.Decimal `json:"total_invested"`
	CurrentValue  decimal.Decimal `json:"current_value"`
	TotalGain     decimal.Decimal `json:"total_gain"`
	GainPercent   decimal.Decimal `json:"gain_percent"`
	Holdings      []Valuation     `json:"holdings"`
	GeneratedAt   time.Time       `json:"generated_at"`
}

// WealthSummary is the dashboard composition of cash flow and portfolio
// value. Every view reporting these figures goes through this one shape.
type WealthSummary struct {
	AvailableCash        decimal.Decimal `json:"available_cash"`
	TotalInvestmentValue decimal.Decimal `json:"total_investment_value"`
	TotalInvestmentCost  decimal.Decimal `json:"total_investment_cost"`
	TotalWealth          decimal.Decimal `json:"total_wealth"`
	AllTimeIncome        decimal.Decimal `json:"all_time_income"`
	AllTimeExpenses      decimal.Decimal `json:"all_time_expenses"`
	GeneratedAt          time.Time       `json:"generated_at"`
}

// GoalPlan is the derived planning view of a goal
type GoalPlan struct {
	GoalID                 uuid.UUID       `json:"goal_id"`
	ProgressPercent        decimal.Decimal `json:"progress_percent"`
	Remaining              decimal.Decimal `json:"remaining"`
	MonthsToTarget         int             `json:"months_to_target"`
	RequiredMonthlySavings decimal.Decimal `json:"required_monthly_savings"`
	OnTrack                bool            `json:"on_track"`
}
