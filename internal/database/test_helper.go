package database

import (
	"fmt"
	"testing"
	"time"

	"homeledger/internal/config"
	"homeledger/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func SetupTestDB(t *testing.T) *DB {
	t.Helper()

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), gormConfig)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	testDB := &DB{
		DB: db,
		config: &config.DatabaseConfig{
			MaxConnections: 1,
			MaxIdleConns:   1,
		},
	}

	if err := testDB.AutoMigrate(); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return testDB
}

func CreateTestTransaction(t *testing.T, db *DB, userID uuid.UUID, txType string, amount decimal.Decimal) *models.Transaction {
	t.Helper()

	transaction := &models.Transaction{
		UserID:   userID,
		Type:     txType,
		Amount:   amount,
		Category: models.CategoryOther,
		Date:     time.Now().UTC(),
	}

	if err := db.Create(transaction).Error; err != nil {
		t.Fatalf("failed to create test transaction: %v", err)
	}

	return transaction
}

func CreateTestInvestment(t *testing.T, db *DB, userID uuid.UUID, assetType models.AssetType, amount decimal.Decimal) *models.Investment {
	t.Helper()

	investment := &models.Investment{
		UserID:       userID,
		Type:         assetType,
		Name:         "Test Holding",
		Amount:       amount,
		PurchaseDate: time.Now().UTC(),
		Data:         models.JSONBMap{},
	}

	if err := db.Create(investment).Error; err != nil {
		t.Fatalf("failed to create test investment: %v", err)
	}

	return investment
}

func CreateTestGoal(t *testing.T, db *DB, userID uuid.UUID, target decimal.Decimal) *models.Goal {
	t.Helper()

	goal := &models.Goal{
		UserID:       userID,
		Title:        "Test Goal",
		TargetAmount: target,
		TargetDate:   time.Now().UTC().AddDate(1, 0, 0),
	}

	if err := db.Create(goal).Error; err != nil {
		t.Fatalf("failed to create test goal: %v", err)
	}

	return goal
}

type TestDB struct {
	*DB
	t *testing.T
}

func NewTestDB(t *testing.T) *TestDB {
	t.Helper()

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), gormConfig)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	testDB := &DB{
		DB: db,
		config: &config.DatabaseConfig{
			MaxConnections: 1,
			MaxIdleConns:   1,
		},
	}

	if err := testDB.AutoMigrate(); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return &TestDB{
		DB: testDB,
		t:  t,
	}
}

func (tdb *TestDB) Cleanup() {
	tdb.t.Helper()

	tables := []string{
		"investment_lots",
		"investments",
		"goals",
		"transactions",
	}

	for _, table := range tables {
		if err := tdb.DB.Exec(fmt.Sprintf("DELETE FROM %s", table)).Error; err != nil {
			tdb.t.Logf("failed to cleanup table %s: %v", table, err)
		}
	}
}

func CleanupTestDB(t *testing.T, db *DB) {
	t.Helper()

	tables := []string{
		"investment_lots",
		"investments",
		"goals",
		"transactions",
	}

	for _, table := range tables {
		if err := db.Exec(fmt.Sprintf("DELETE FROM %s", table)).Error; err != nil {
			t.Logf("failed to cleanup table %s: %v", table, err)
		}
	}
}
