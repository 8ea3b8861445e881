package dto

import (
	"time"

	"github.com/google/uuid"
)

// CreateGoalRequest represents the payload for creating a savings goal
type CreateGoalRequest struct {
	UserID       uuid.UUID `json:"userId" validate:"required"`
	Title        string    `json:"title" validate:"required"`
	TargetAmount float64   `json:"targetAmount" validate:"required,gt=0"`
	TargetDate   time.Time `json:"targetDate" validate:"required"`
	Category     string    `json:"category,omitempty"`
}

// ContributeRequest represents the payload for contributing toward a goal
type ContributeRequest struct {
	Amount float64 `json:"amount" validate:"required,gt=0"`
}

// GoalResponse represents a savings goal in API responses
type GoalResponse struct {
	ID              uuid.UUID `json:"id"`
	UserID          uuid.UUID `json:"userId"`
	Title           string    `json:"title"`
	TargetAmount    string    `json:"targetAmount"`
	CurrentAmount   string    `json:"currentAmount"`
	TargetDate      time.Time `json:"targetDate"`
	Category        string    `json:"category,omitempty"`
	IsCompleted     bool      `json:"isCompleted"`
	ProgressPercent string    `json:"progressPercent"`
	Remaining       string    `json:"remaining"`
	CreatedAt       time.Time `json:"createdAt"`
}

// GoalPlanResponse represents a goal savings plan in API responses
type GoalPlanResponse struct {
	GoalID                 uuid.UUID `json:"goalId"`
	ProgressPercent        string    `json:"progressPercent"`
	Remaining              string    `json:"remaining"`
	MonthsToTarget         int       `json:"monthsToTarget"`
	RequiredMonthlySavings string    `json:"requiredMonthlySavings"`
	OnTrack                bool      `json:"onTrack"`
}
