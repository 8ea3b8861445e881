package services

import (
	"testing"
	"time"

	"homeledger/internal/models"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type CashflowServiceTestSuite struct {
	suite.Suite
	service *cashflowService
	userID  uuid.UUID
}

func TestCashflowServiceSuite(t *testing.T) {
	suite.Run(t, new(CashflowServiceTestSuite))
}

func (s *CashflowServiceTestSuite) SetupTest() {
	s.service = NewCashflowService(NewRecurrenceService(), nil).(*cashflowService)
	s.userID = uuid.New()
}

func (s *CashflowServiceTestSuite) newTransaction(txnType, category string, amount float64, on time.Time) models.Transaction {
	return models.Transaction{
		ID:          uuid.New().String(),
		UserID:      s.userID,
		Type:        txnType,
		Amount:      decimal.NewFromFloat(amount),
		Category:    category,
		Description: gofakeit.Sentence(4),
		Date:        on,
	}
}

// Aggregation Tests

func (s *CashflowServiceTestSuite) TestAggregate_Totals() {
	transactions := []models.Transaction{
		s.newTransaction(models.TransactionTypeIncome, models.CategorySalary, 5000, date(2024, time.March, 1)),
		s.newTransaction(models.TransactionTypeIncome, models.CategoryFreelance, 800, date(2024, time.March, 12)),
		s.newTransaction(models.TransactionTypeExpense, models.CategoryHousing, 1500, date(2024, time.March, 5)),
		s.newTransaction(models.TransactionTypeExpense, models.CategoryGroceries, 640.50, date(2024, time.March, 20)),
	}

	summary := s.service.Aggregate(transactions, models.CashflowFilters{})

	s.True(summary.TotalIncome.Equal(decimal.NewFromInt(5800)), "income: %s", summary.TotalIncome)
	s.True(summary.TotalExpense.Equal(decimal.NewFromFloat(2140.50)), "expense: %s", summary.TotalExpense)
	s.True(summary.NetCashFlow.Equal(decimal.NewFromFloat(3659.50)), "net: %s", summary.NetCashFlow)
}

func (s *CashflowServiceTestSuite) TestAggregate_NetEqualsIncomeMinusExpense() {
	transactions := make([]models.Transaction, 0, 40)
	for n := 0; n < 20; n++ {
		transactions = append(transactions,
			s.newTransaction(models.TransactionTypeIncome, models.CategorySalary, gofakeit.Float64Range(10, 5000), date(2024, time.January, n%28+1)),
			s.newTransaction(models.TransactionTypeExpense, models.CategoryOther, gofakeit.Float64Range(10, 2000), date(2024, time.January, n%28+1)),
		)
	}

	summary := s.service.Aggregate(transactions, models.CashflowFilters{})

	s.True(summary.NetCashFlow.Equal(summary.TotalIncome.Sub(summary.TotalExpense)))
}

func (s *CashflowServiceTestSuite) TestAggregate_CategoryBreakdown() {
	transactions := []models.Transaction{
		s.newTransaction(models.TransactionTypeExpense, models.CategoryGroceries, 100, date(2024, time.March, 1)),
		s.newTransaction(models.TransactionTypeExpense, models.CategoryGroceries, 150, date(2024, time.March, 8)),
		s.newTransaction(models.TransactionTypeExpense, models.CategoryDining, 60, date(2024, time.March, 9)),
		s.newTransaction(models.TransactionTypeIncome, models.CategorySalary, 4000, date(2024, time.March, 1)),
	}

	summary := s.service.Aggregate(transactions, models.CashflowFilters{})

	s.Require().Len(summary.ExpenseByCategory, 2)
	s.Equal(models.CategoryGroceries, summary.ExpenseByCategory[0].Category, "largest total sorts first")
	s.True(summary.ExpenseByCategory[0].Total.Equal(decimal.NewFromInt(250)))
	s.Equal(2, summary.ExpenseByCategory[0].Count)
	s.Equal(models.CategoryDining, summary.ExpenseByCategory[1].Category)

	s.Require().Len(summary.IncomeByCategory, 1)
	s.Equal(models.CategorySalary, summary.IncomeByCategory[0].Category)
}

func (s *CashflowServiceTestSuite) TestAggregate_UncategorizedFallsBackToOther() {
	txn := s.newTransaction(models.TransactionTypeExpense, "", 42, date(2024, time.March, 1))

	summary := s.service.Aggregate([]models.Transaction{txn}, models.CashflowFilters{})

	s.Require().Len(summary.ExpenseByCategory, 1)
	s.Equal(models.CategoryOther, summary.ExpenseByCategory[0].Category)
}

func (s *CashflowServiceTestSuite) TestAggregate_MalformedAmountContributesZero() {
	bad := s.newTransaction(models.TransactionTypeExpense, models.CategoryOther, 0, date(2024, time.March, 1))
	bad.Amount = decimal.NewFromInt(-500)
	good := s.newTransaction(models.TransactionTypeExpense, models.CategoryOther, 100, date(2024, time.March, 2))

	summary := s.service.Aggregate([]models.Transaction{bad, good}, models.CashflowFilters{})

	s.True(summary.TotalExpense.Equal(decimal.NewFromInt(100)))
}

func (s *CashflowServiceTestSuite) TestAggregate_EmptyInput() {
	summary := s.service.Aggregate(nil, models.CashflowFilters{})

	s.True(summary.TotalIncome.IsZero())
	s.True(summary.TotalExpense.IsZero())
	s.True(summary.NetCashFlow.IsZero())
	s.Empty(summary.IncomeByCategory)
	s.Empty(summary.ExpenseByCategory)
}

// Filter Tests

func (s *CashflowServiceTestSuite) TestAggregate_FiltersByUser() {
	mine := s.newTransaction(models.TransactionTypeIncome, models.CategorySalary, 1000, date(2024, time.March, 1))
	theirs := s.newTransaction(models.TransactionTypeIncome, models.CategorySalary, 9000, date(2024, time.March, 1))
	theirs.UserID = uuid.New()

	summary := s.service.Aggregate([]models.Transaction{mine, theirs}, models.CashflowFilters{UserID: &s.userID})

	s.True(summary.TotalIncome.Equal(decimal.NewFromInt(1000)))
}

func (s *CashflowServiceTestSuite) TestAggregate_FiltersByCategory() {
	transactions := []models.Transaction{
		s.newTransaction(models.TransactionTypeExpense, models.CategoryGroceries, 100, date(2024, time.March, 1)),
		s.newTransaction(models.TransactionTypeExpense, models.CategoryDining, 60, date(2024, time.March, 2)),
	}

	summary := s.service.Aggregate(transactions, models.CashflowFilters{Category: models.CategoryDining})

	s.True(summary.TotalExpense.Equal(decimal.NewFromInt(60)))
}

func (s *CashflowServiceTestSuite) TestAggregate_WindowExpandsRecurringTemplates() {
	// The stored record is a January template; aggregating March must count
	// its expanded March occurrence even though no March row exists.
	salary := s.newTransaction(models.TransactionTypeIncome, models.CategorySalary, 3000, date(2024, time.January, 1))
	salary.Recurring = true
	salary.RecurringPeriod = models.RecurringPeriodMonthly

	start := date(2024, time.March, 1)
	end := date(2024, time.March, 31)
	summary := s.service.Aggregate([]models.Transaction{salary}, models.CashflowFilters{Start: &start, End: &end})

	s.True(summary.TotalIncome.Equal(decimal.NewFromInt(3000)))
}

func (s *CashflowServiceTestSuite) TestAggregate_NoWindowNoExpansion() {
	salary := s.newTransaction(models.TransactionTypeIncome, models.CategorySalary, 3000, date(2024, time.January, 1))
	salary.Recurring = true
	salary.RecurringPeriod = models.RecurringPeriodMonthly

	summary := s.service.Aggregate([]models.Transaction{salary}, models.CashflowFilters{})

	s.True(summary.TotalIncome.Equal(decimal.NewFromInt(3000)), "only the literal record counts without a window")
}

// Monthly Breakdown Tests

func (s *CashflowServiceTestSuite) TestMonthlyBreakdown_TwelveEntries() {
	flows := s.service.MonthlyBreakdown(nil, 2024, nil)

	s.Require().Len(flows, 12)
	s.Equal(time.January, flows[0].Month)
	s.Equal(time.December, flows[11].Month)
	for _, flow := range flows {
		s.True(flow.Income.IsZero())
		s.True(flow.Expenses.IsZero())
	}
}

func (s *CashflowServiceTestSuite) TestMonthlyBreakdown_RecurringAppearsEveryMonth() {
	rent := s.newTransaction(models.TransactionTypeExpense, models.CategoryHousing, 1200, date(2024, time.January, 5))
	rent.Recurring = true
	rent.RecurringPeriod = models.RecurringPeriodMonthly

	flows := s.service.MonthlyBreakdown([]models.Transaction{rent}, 2024, &s.userID)

	s.Require().Len(flows, 12)
	for _, flow := range flows {
		s.True(flow.Expenses.Equal(decimal.NewFromInt(1200)), "month %s: %s", flow.Month, flow.Expenses)
		s.True(flow.NetFlow.Equal(decimal.NewFromInt(-1200)))
	}
}

func (s *CashflowServiceTestSuite) TestMonthlyBreakdown_OneOffLandsInItsMonth() {
	txn := s.newTransaction(models.TransactionTypeIncome, models.CategoryFreelance, 500, date(2024, time.July, 14))

	flows := s.service.MonthlyBreakdown([]models.Transaction{txn}, 2024, nil)

	for _, flow := range flows {
		if flow.Month == time.July {
			s.True(flow.Income.Equal(decimal.NewFromInt(500)))
		} else {
			s.True(flow.Income.IsZero(), "month %s should be empty", flow.Month)
		}
	}
}

// Savings Rate Tests

func (s *CashflowServiceTestSuite) TestSavingsRate() {
	rate := s.service.SavingsRate(decimal.NewFromInt(10000), decimal.NewFromInt(4000))
	s.True(rate.Equal(decimal.NewFromInt(60)), "rate: %s", rate)
}

func (s *CashflowServiceTestSuite) TestSavingsRate_NoIncome() {
	s.True(s.service.SavingsRate(decimal.Zero, decimal.NewFromInt(500)).IsZero())
	s.True(s.service.SavingsRate(decimal.NewFromInt(-100), decimal.Zero).IsZero())
}

func (s *CashflowServiceTestSuite) TestSavingsRate_OverspendingIsNegative() {
	rate := s.service.SavingsRate(decimal.NewFromInt(1000), decimal.NewFromInt(1500))
	s.True(rate.Equal(decimal.NewFromInt(-50)), "rate: %s", rate)
}
