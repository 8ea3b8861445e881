package repositories

import (
	"errors"
	"fmt"

	"homeledger/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrInvestmentNotFound = errors.New("investment not found")
)

// investmentRepository implements InvestmentRepositoryInterface
type investmentRepository struct {
	db *gorm.DB
}

// NewInvestmentRepository creates a new investment repository
func NewInvestmentRepository(db *gorm.DB) InvestmentRepositoryInterface {
	return &investmentRepository{
		db: db,
	}
}

// Create creates a new investment
func (r *investmentRepository) Create(investment *models.Investment) error {
	if err := r.db.Create(investment).Error; err != nil {
		return fmt.Errorf("failed to create investment: %w", err)
	}
	return nil
}

// GetByID retrieves an investment with its lots
func (r *investmentRepository) GetByID(id string) (*models.Investment, error) {
	var investment models.Investment
	if err := r.db.Preload("Lots").Where("id = ?", id).First(&investment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvestmentNotFound
		}
		return nil, fmt.Errorf("failed to get investment: %w", err)
	}
	return &investment, nil
}

// GetByUserID retrieves all investments of a user with their lots
func (r *investmentRepository) GetByUserID(userID uuid.UUID) ([]models.Investment, error) {
	var investments []models.Investment
	if err := r.db.Preload("Lots").
		Where("user_id = ?", userID).
		Order("purchase_date ASC").
		Find(&investments).Error; err != nil {
		return nil, fmt.Errorf("failed to get investments: %w", err)
	}
	return investments, nil
}

// Update updates an existing investment
func (r *investmentRepository) Update(investment *models.Investment) error {
	result := r.db.Save(investment)
	if result.Error != nil {
		return fmt.Errorf("failed to update investment: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrInvestmentNotFound
	}
	return nil
}

// Delete removes an investment and its lots
func (r *investmentRepository) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("investment_id = ?", id).Delete(&models.InvestmentLot{}).Error; err != nil {
			return fmt.Errorf("failed to delete investment lots: %w", err)
		}
		result := tx.Where("id = ?", id).Delete(&models.Investment{})
		if result.Error != nil {
			return fmt.Errorf("failed to delete investment: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrInvestmentNotFound
		}
		return nil
	})
}

// AddLot records a purchase lot against an existing investment
func (r *investmentRepository) AddLot(lot *models.InvestmentLot) error {
	var count int64
	if err := r.db.Model(&models.Investment{}).Where("id = ?", lot.InvestmentID).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check investment: %w", err)
	}
	if count == 0 {
		return ErrInvestmentNotFound
	}
	if err := r.db.Create(lot).Error; err != nil {
		return fmt.Errorf("failed to add investment lot: %w", err)
	}
	return nil
}

// GetLots retrieves the purchase lots of an investment, oldest first
func (r *investmentRepository) GetLots(investmentID string) ([]models.InvestmentLot, error) {
	var lots []models.InvestmentLot
	if err := r.db.Where("investment_id = ?", investmentID).
		Order("date ASC").
		Find(&lots).Error; err != nil {
		return nil, fmt.Errorf("failed to get investment lots: %w", err)
	}
	return lots, nil
}
