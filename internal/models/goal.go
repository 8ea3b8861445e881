package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrInvalidTargetAmount = errors.New("goal target amount must be positive")
)

// Goal represents a savings goal. Goals are created, updated through progress
// contributions or completion toggles, and are never deleted automatically.
type Goal struct {
	ID            uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	UserID        uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	Title         string          `gorm:"type:varchar(120);not null" json:"title"`
	TargetAmount  decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"target_amount"`
	CurrentAmount decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"current_amount"`
	TargetDate    time.Time       `gorm:"not null" json:"target_date"`
	Category      string          `gorm:"type:varchar(50)" json:"category,omitempty"`
	IsCompleted   bool            `gorm:"not null;default:false" json:"is_completed"`
	CreatedAt     time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt     time.Time       `gorm:"not null" json:"updated_at"`
}

// BeforeCreate hook for Goal
func (g *Goal) BeforeCreate(tx *gorm.DB) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}

	now := time.Now()
	if g.CreatedAt.IsZero() {
		g.CreatedAt = now
	}
	if g.UpdatedAt.IsZero() {
		g.UpdatedAt = now
	}

	return g.Validate()
}

// BeforeUpdate hook for Goal
func (g *Goal) BeforeUpdate(tx *gorm.DB) error {
	g.UpdatedAt = time.Now()
	return g.Validate()
}

// Validate validates the goal fields
func (g *Goal) Validate() error {
	if g.UserID == uuid.Nil {
		return errors.New("user ID is required")
	}

	if g.Title == "" {
		return errors.New("goal title is required")
	}

	if !g.TargetAmount.IsPositive() {
		return ErrInvalidTargetAmount
	}

	if g.CurrentAmount.IsNegative() {
		return errors.New("goal current amount must not be negative")
	}

	return nil
}

// Remaining returns the amount still needed to reach the target, never negative
func (g *Goal) Remaining() decimal.Decimal {
	remaining := g.TargetAmount.Sub(g.CurrentAmount)
	if remaining.IsNegative() {
		return decimal.Zero
	}
	return remaining
}

// ProgressPercent returns progress toward the target capped at 100
func (g *Goal) ProgressPercent() decimal.Decimal {
	if !g.TargetAmount.IsPositive() {
		return decimal.Zero
	}
	percent := g.CurrentAmount.Div(g.TargetAmount).Mul(decimal.NewFromInt(100))
	hundred := decimal.NewFromInt(100)
	if percent.GreaterThan(hundred) {
		return hundred
	}
	return percent
}

// IsReached reports whether the saved amount covers the target
func (g *Goal) IsReached() bool {
	return g.CurrentAmount.GreaterThanOrEqual(g.TargetAmount)
}

// TableName returns the table name for Goal
func (g *Goal) TableName() string {
	return "goals"
}
