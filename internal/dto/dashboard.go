package dto

import "time"

// CashflowFilters contains filtering options for cashflow summaries
type CashflowFilters struct {
	StartDate *time.Time `query:"startDate"`
	EndDate   *time.Time `query:"endDate"`
	Category  string     `query:"category"`
}

// CategoryTotalResponse represents a per-category total in API responses
type CategoryTotalResponse struct {
	Category string `json:"category"`
	Total    string `json:"total"`
	Count    int    `json:"count"`
}

// CashflowSummaryResponse represents an aggregated cashflow summary
type CashflowSummaryResponse struct {
	TotalIncome       string                  `json:"totalIncome"`
	TotalExpense      string                  `json:"totalExpense"`
	NetCashFlow       string                  `json:"netCashFlow"`
	IncomeByCategory  []CategoryTotalResponse `json:"incomeByCategory"`
	ExpenseByCategory []CategoryTotalResponse `json:"expenseByCategory"`
}

// MonthlyFlowResponse represents a single month in the yearly breakdown
type MonthlyFlowResponse struct {
	Month    int    `json:"month"`
	Income   string `json:"income"`
	Expenses string `json:"expenses"`
	NetFlow  string `json:"netFlow"`
}

// WealthSummaryResponse represents the combined cash and investment position
type WealthSummaryResponse struct {
	AvailableCash        string    `json:"availableCash"`
	TotalInvestmentValue string    `json:"totalInvestmentValue"`
	TotalInvestmentCost  string    `json:"totalInvestmentCost"`
	TotalWealth          string    `json:"totalWealth"`
	AllTimeIncome        string    `json:"allTimeIncome"`
	AllTimeExpenses      string    `json:"allTimeExpenses"`
	GeneratedAt          time.Time `json:"generatedAt"`
}
