package models

import (
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// TransactionTestSuite is the test suite for the Transaction model
type TransactionTestSuite struct {
	suite.Suite
	db *gorm.DB
}

// SetupTest runs before each test
func (s *TransactionTestSuite) SetupTest() {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(s.T(), err)

	err = db.AutoMigrate(&Transaction{})
	require.NoError(s.T(), err)

	s.db = db
}

// TearDownTest runs after each test
func (s *TransactionTestSuite) TearDownTest() {
	sqlDB, err := s.db.DB()
	if err == nil {
		sqlDB.Close()
	}
}

// TestTransactionTestSuite runs the test suite
func TestTransactionTestSuite(t *testing.T) {
	suite.Run(t, new(TransactionTestSuite))
}

func (s *TransactionTestSuite) validTransaction() *Transaction {
	return &Transaction{
		UserID:      uuid.New(),
		Type:        TransactionTypeExpense,
		Amount:      decimal.NewFromFloat(120.50),
		Category:    CategoryGroceries,
		Description: gofakeit.Sentence(5),
		Date:        time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC),
	}
}

func (s *TransactionTestSuite) TestBeforeCreate_GeneratesIDAndTimestamps() {
	txn := s.validTransaction()

	err := s.db.Create(txn).Error
	s.Require().NoError(err)

	s.NotEmpty(txn.ID)
	s.False(txn.CreatedAt.IsZero())
	s.False(txn.UpdatedAt.IsZero())
}

func (s *TransactionTestSuite) TestBeforeCreate_KeepsExplicitID() {
	txn := s.validTransaction()
	txn.ID = "txn-fixed-id"

	err := s.db.Create(txn).Error
	s.Require().NoError(err)
	s.Equal("txn-fixed-id", txn.ID)
}

func (s *TransactionTestSuite) TestBeforeCreate_RejectsInvalid() {
	txn := s.validTransaction()
	txn.Type = "transfer"

	err := s.db.Create(txn).Error
	s.ErrorIs(err, ErrInvalidTransactionType)
}

func (s *TransactionTestSuite) TestValidate() {
	testCases := []struct {
		name    string
		mutate  func(*Transaction)
		wantErr error
	}{
		{"valid", func(t *Transaction) {}, nil},
		{"invalid type", func(t *Transaction) { t.Type = "refund" }, ErrInvalidTransactionType},
		{"negative amount", func(t *Transaction) { t.Amount = decimal.NewFromInt(-10) }, ErrNegativeAmount},
		{"invalid period", func(t *Transaction) { t.RecurringPeriod = "DAILY" }, ErrInvalidRecurringPeriod},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			txn := s.validTransaction()
			tc.mutate(txn)

			err := txn.Validate()
			if tc.wantErr == nil {
				s.NoError(err)
			} else {
				s.ErrorIs(err, tc.wantErr)
			}
		})
	}
}

func (s *TransactionTestSuite) TestValidate_MissingFields() {
	txn := s.validTransaction()
	txn.UserID = uuid.Nil
	s.Error(txn.Validate())

	txn = s.validTransaction()
	txn.Category = ""
	s.Error(txn.Validate())

	txn = s.validTransaction()
	txn.Date = time.Time{}
	s.Error(txn.Validate())
}

func (s *TransactionTestSuite) TestValidate_RecurringWithoutPeriodTolerated() {
	txn := s.validTransaction()
	txn.Recurring = true

	s.NoError(txn.Validate())
	s.False(txn.IsExpandable(), "recurring flag without a period never expands")
}

func (s *TransactionTestSuite) TestIsExpandable() {
	txn := s.validTransaction()
	txn.Recurring = true
	txn.RecurringPeriod = RecurringPeriodMonthly
	s.True(txn.IsExpandable())

	occurrence := txn.MaterializeOccurrence(txn.Date.AddDate(0, 1, 0))
	s.False(occurrence.IsExpandable(), "occurrences never re-expand")
}

func (s *TransactionTestSuite) TestSafeAmount() {
	txn := s.validTransaction()
	s.True(txn.SafeAmount().Equal(txn.Amount))

	txn.Amount = decimal.NewFromInt(-100)
	s.True(txn.SafeAmount().IsZero())
}

func (s *TransactionTestSuite) TestOccurrenceID() {
	txn := s.validTransaction()
	txn.ID = "template-1"

	id := txn.OccurrenceID(time.Date(2024, time.April, 15, 10, 30, 0, 0, time.UTC))
	s.Equal("template-1_2024-04-15", id)
}

func (s *TransactionTestSuite) TestMaterializeOccurrence() {
	txn := s.validTransaction()
	txn.ID = "template-1"
	txn.Recurring = true
	txn.RecurringPeriod = RecurringPeriodMonthly

	occurrenceDate := time.Date(2024, time.April, 15, 0, 0, 0, 0, time.UTC)
	occurrence := txn.MaterializeOccurrence(occurrenceDate)

	s.Equal("template-1_2024-04-15", occurrence.ID)
	s.Equal(occurrenceDate, occurrence.Date)
	s.True(occurrence.IsRecurringInstance)
	s.Equal("template-1", occurrence.ParentRecurringID)
	s.True(occurrence.Amount.Equal(txn.Amount))

	s.False(txn.IsRecurringInstance, "template is untouched")
	s.Equal(time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC), txn.Date)
}

func (s *TransactionTestSuite) TestTypeHelpers() {
	income := s.validTransaction()
	income.Type = TransactionTypeIncome
	s.True(income.IsIncome())
	s.False(income.IsExpense())

	expense := s.validTransaction()
	s.True(expense.IsExpense())
	s.False(expense.IsIncome())
}

func TestIsValidTransactionType(t *testing.T) {
	require.True(t, IsValidTransactionType(TransactionTypeIncome))
	require.True(t, IsValidTransactionType(TransactionTypeExpense))
	require.False(t, IsValidTransactionType("transfer"))
	require.False(t, IsValidTransactionType(""))
	require.False(t, IsValidTransactionType("Income"), "types are case sensitive")
}

func TestIsValidRecurringPeriod(t *testing.T) {
	for _, period := range []string{RecurringPeriodWeekly, RecurringPeriodMonthly, RecurringPeriodQuarterly, RecurringPeriodYearly} {
		require.True(t, IsValidRecurringPeriod(period))
	}
	require.False(t, IsValidRecurringPeriod("DAILY"))
	require.False(t, IsValidRecurringPeriod("monthly"), "periods are upper case")
	require.False(t, IsValidRecurringPeriod(""))
}
