package handlers

import (
	"net/http"
	"time"

	"homeledger/internal/dto"
	"homeledger/internal/errors"
	"homeledger/internal/models"
	"homeledger/internal/repositories"
	"homeledger/internal/services"

	"github.com/labstack/echo/v4"
)

// DashboardHandler serves the aggregated cashflow and wealth views
type DashboardHandler struct {
	transactionRepo repositories.TransactionRepositoryInterface
	investmentRepo  repositories.InvestmentRepositoryInterface
	cashflowService services.CashflowServiceInterface
	wealthService   services.WealthServiceInterface
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(
	transactionRepo repositories.TransactionRepositoryInterface,
	investmentRepo repositories.InvestmentRepositoryInterface,
	cashflowService services.CashflowServiceInterface,
	wealthService services.WealthServiceInterface,
) *DashboardHandler {
	return &DashboardHandler{
		transactionRepo: transactionRepo,
		investmentRepo:  investmentRepo,
		cashflowService: cashflowService,
		wealthService:   wealthService,
	}
}

// GetCashflowSummary aggregates a user's transactions into totals and category breakdowns
// @Summary Cashflow summary
// @Description Aggregate income, expenses, net flow and per-category totals over an optional window
// @Tags Dashboard
// @Produce json
// @Param userId path string true "User ID (UUID)"
// @Param startDate query string false "Window start (YYYY-MM-DD)"
// @Param endDate query string false "Window end (YYYY-MM-DD)"
// @Param category query string false "Filter by category"
// @Success 200 {object} SuccessResponse{data=dto.CashflowSummaryResponse} "Cashflow summary"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_003 - Invalid user ID or date format"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /users/{userId}/dashboard/cashflow [get]
func (h *DashboardHandler) GetCashflowSummary(c echo.Context) error {
	userID, err := parseUserIDParam(c)
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid user ID"))
	}

	startDate, err := parseDateParam(c, "startDate")
	if err != nil {
		return SendError(c, errors.ValidationInvalidDate, errors.WithDetails(err.Error()))
	}
	endDate, err := parseDateParam(c, "endDate")
	if err != nil {
		return SendError(c, errors.ValidationInvalidDate, errors.WithDetails(err.Error()))
	}

	transactions, err := h.transactionRepo.GetByUserID(userID)
	if err != nil {
		return SendSystemError(c, err)
	}

	summary := h.cashflowService.Aggregate(transactions, models.CashflowFilters{
		Start:    startDate,
		End:      endDate,
		UserID:   &userID,
		Category: c.QueryParam("category"),
	})

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: toCashflowSummaryResponse(summary),
	})
}

// GetMonthlyBreakdown returns the per-month income and expense series for a year
// @Summary Monthly breakdown
// @Description Return twelve monthly income/expense/net entries for the given year, expanding recurring templates
// @Tags Dashboard
// @Produce json
// @Param userId path string true "User ID (UUID)"
// @Param year query int false "Calendar year" default(current year)
// @Success 200 {object} SuccessResponse{data=[]dto.MonthlyFlowResponse} "Monthly series"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_003 - Invalid user ID"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /users/{userId}/dashboard/monthly [get]
func (h *DashboardHandler) GetMonthlyBreakdown(c echo.Context) error {
	userID, err := parseUserIDParam(c)
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid user ID"))
	}

	year := getIntParam(c, "year", time.Now().UTC().Year())

	transactions, err := h.transactionRepo.GetByUserID(userID)
	if err != nil {
		return SendSystemError(c, err)
	}

	months := h.cashflowService.MonthlyBreakdown(transactions, year, &userID)

	responses := make([]dto.MonthlyFlowResponse, 0, len(months))
	for _, m := range months {
		responses = append(responses, dto.MonthlyFlowResponse{
			Month:    int(m.Month),
			Income:   m.Income.String(),
			Expenses: m.Expenses.String(),
			NetFlow:  m.NetFlow.String(),
		})
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: responses,
	})
}

// GetWealthSummary composes the cash and investment position of a user
// @Summary Wealth summary
// @Description Compose available cash, portfolio value and total wealth from all of a user's records
// @Tags Dashboard
// @Produce json
// @Param userId path string true "User ID (UUID)"
// @Success 200 {object} SuccessResponse{data=dto.WealthSummaryResponse} "Wealth summary"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_003 - Invalid user ID"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /users/{userId}/dashboard/wealth [get]
func (h *DashboardHandler) GetWealthSummary(c echo.Context) error {
	userID, err := parseUserIDParam(c)
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid user ID"))
	}

	transactions, err := h.transactionRepo.GetByUserID(userID)
	if err != nil {
		return SendSystemError(c, err)
	}

	investments, err := h.investmentRepo.GetByUserID(userID)
	if err != nil {
		return SendSystemError(c, err)
	}

	summary := h.wealthService.Compose(transactions, investments)

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: dto.WealthSummaryResponse{
			AvailableCash:        summary.AvailableCash.String(),
			TotalInvestmentValue: summary.TotalInvestmentValue.String(),
			TotalInvestmentCost:  summary.TotalInvestmentCost.String(),
			TotalWealth:          summary.TotalWealth.String(),
			AllTimeIncome:        summary.AllTimeIncome.String(),
			AllTimeExpenses:      summary.AllTimeExpenses.String(),
			GeneratedAt:          summary.GeneratedAt,
		},
	})
}

// GetSavingsRate returns the share of income kept as savings
// @Summary Savings rate
// @Description Compute the savings rate from all-time income and expenses
// @Tags Dashboard
// @Produce json
// @Param userId path string true "User ID (UUID)"
// @Success 200 {object} SuccessResponse{data=object{savingsRate=string}} "Savings rate percentage"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_003 - Invalid user ID"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /users/{userId}/dashboard/savings-rate [get]
func (h *DashboardHandler) GetSavingsRate(c echo.Context) error {
	userID, err := parseUserIDParam(c)
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid user ID"))
	}

	transactions, err := h.transactionRepo.GetByUserID(userID)
	if err != nil {
		return SendSystemError(c, err)
	}

	summary := h.cashflowService.Aggregate(transactions, models.CashflowFilters{UserID: &userID})
	rate := h.cashflowService.SavingsRate(summary.TotalIncome, summary.TotalExpense)

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: map[string]string{
			"savingsRate": rate.String(),
		},
	})
}

func toCashflowSummaryResponse(summary models.CashflowSummary) dto.CashflowSummaryResponse {
	return dto.CashflowSummaryResponse{
		TotalIncome:       summary.TotalIncome.String(),
		TotalExpense:      summary.TotalExpense.String(),
		NetCashFlow:       summary.NetCashFlow.String(),
		IncomeByCategory:  toCategoryTotals(summary.IncomeByCategory),
		ExpenseByCategory: toCategoryTotals(summary.ExpenseByCategory),
	}
}

func toCategoryTotals(totals []models.CategoryTotal) []dto.CategoryTotalResponse {
	responses := make([]dto.CategoryTotalResponse, 0, len(totals))
	for _, t := range totals {
		responses = append(responses, dto.CategoryTotalResponse{
			Category: t.Category,
			Total:    t.Total.String(),
			Count:    t.Count,
		})
	}
	return responses
}
