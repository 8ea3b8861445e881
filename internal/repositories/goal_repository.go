package repositories

import (
	"errors"
	"fmt"

	"homeledger/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrGoalNotFound = errors.New("goal not found")
)

// goalRepository implements GoalRepositoryInterface
type goalRepository struct {
	db *gorm.DB
}

// NewGoalRepository creates a new goal repository
func NewGoalRepository(db *gorm.DB) GoalRepositoryInterface {
	return &goalRepository{
		db: db,
	}
}

// Create creates a new savings goal
func (r *goalRepository) Create(goal *models.Goal) error {
	if err := r.db.Create(goal).Error; err != nil {
		return fmt.Errorf("failed to create goal: %w", err)
	}
	return nil
}

// GetByID retrieves a goal by ID
func (r *goalRepository) GetByID(id uuid.UUID) (*models.Goal, error) {
	var goal models.Goal
	if err := r.db.Where("id = ?", id).First(&goal).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGoalNotFound
		}
		return nil, fmt.Errorf("failed to get goal: %w", err)
	}
	return &goal, nil
}

// GetByUserID retrieves all goals of a user, nearest target date first
func (r *goalRepository) GetByUserID(userID uuid.UUID) ([]models.Goal, error) {
	var goals []models.Goal
	if err := r.db.Where("user_id = ?", userID).
		Order("target_date ASC").
		Find(&goals).Error; err != nil {
		return nil, fmt.Errorf("failed to get goals: %w", err)
	}
	return goals, nil
}

// Update updates an existing goal
func (r *goalRepository) Update(goal *models.Goal) error {
	result := r.db.Save(goal)
	if result.Error != nil {
		return fmt.Errorf("failed to update goal: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrGoalNotFound
	}
	return nil
}
