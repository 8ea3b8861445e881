package repositories

import (
	"time"

	"homeledger/internal/models"

	"github.com/google/uuid"
)

// TransactionRepositoryInterface defines transaction persistence operations.
// Only literal records and recurring templates are stored; expanded
// occurrences are derived values and never round-trip through here.
type TransactionRepositoryInterface interface {
	Create(transaction *models.Transaction) error
	GetByID(id string) (*models.Transaction, error)
	GetByUserID(userID uuid.UUID) ([]models.Transaction, error)
	GetAll() ([]models.Transaction, error)
	GetByDateRange(userID uuid.UUID, start, end time.Time) ([]models.Transaction, error)
	GetRecurringTemplates(userID uuid.UUID) ([]models.Transaction, error)
	Update(transaction *models.Transaction) error
	Delete(id string) error
}

// InvestmentRepositoryInterface defines investment persistence operations
type InvestmentRepositoryInterface interface {
	Create(investment *models.Investment) error
	GetByID(id string) (*models.Investment, error)
	GetByUserID(userID uuid.UUID) ([]models.Investment, error)
	Update(investment *models.Investment) error
	Delete(id string) error
	AddLot(lot *models.InvestmentLot) error
	GetLots(investmentID string) ([]models.InvestmentLot, error)
}

// GoalRepositoryInterface defines goal persistence operations
type GoalRepositoryInterface interface {
	Create(goal *models.Goal) error
	GetByID(id uuid.UUID) (*models.Goal, error)
	GetByUserID(userID uuid.UUID) ([]models.Goal, error)
	Update(goal *models.Goal) error
}
