package services

import (
	"errors"
	"log/slog"
	"time"

	"homeledger/internal/models"
	"homeledger/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrGoalNotFound           = errors.New("goal not found")
	ErrInvalidContribution    = errors.New("contribution amount must be positive")
	ErrGoalAlreadyCompleted   = errors.New("goal is already completed")
	ErrGoalTargetDateRequired = errors.New("goal target date is required")
)

type goalService struct {
	goalRepo repositories.GoalRepositoryInterface
	now      func() time.Time
}

// NewGoalService creates a new GoalServiceInterface instance
func NewGoalService(goalRepo repositories.GoalRepositoryInterface) GoalServiceInterface {
	return &goalService{
		goalRepo: goalRepo,
		now:      time.Now,
	}
}

func (s *goalService) CreateGoal(goal *models.Goal) error {
	if goal.TargetDate.IsZero() {
		return ErrGoalTargetDateRequired
	}
	if err := goal.Validate(); err != nil {
		return err
	}

	if err := s.goalRepo.Create(goal); err != nil {
		return err
	}

	slog.Info("goal created",
		"goal_id", goal.ID,
		"user_id", goal.UserID,
		"target_amount", goal.TargetAmount)

	return nil
}

func (s *goalService) GetGoal(goalID uuid.UUID) (*models.Goal, error) {
	goal, err := s.goalRepo.GetByID(goalID)
	if err != nil {
		if errors.Is(err, repositories.ErrGoalNotFound) {
			return nil, ErrGoalNotFound
		}
		return nil, err
	}
	return goal, nil
}

func (s *goalService) GetUserGoals(userID uuid.UUID) ([]models.Goal, error) {
	return s.goalRepo.GetByUserID(userID)
}

// Contribute records progress toward a goal and completes it automatically
// once the saved amount covers the target.
func (s *goalService) Contribute(goalID uuid.UUID, amount decimal.Decimal) (*models.Goal, error) {
	if !amount.IsPositive() {
		slog.Warn("rejected goal contribution", "goal_id", goalID, "amount", amount)
		return nil, ErrInvalidContribution
	}

	goal, err := s.GetGoal(goalID)
	if err != nil {
		return nil, err
	}

	if goal.IsCompleted {
		return nil, ErrGoalAlreadyCompleted
	}

	goal.CurrentAmount = goal.CurrentAmount.Add(amount)
	if goal.IsReached() {
		goal.IsCompleted = true
	}

	if err := s.goalRepo.Update(goal); err != nil {
		return nil, err
	}

	slog.Info("goal contribution recorded",
		"goal_id", goal.ID,
		"amount", amount,
		"current_amount", goal.CurrentAmount,
		"completed", goal.IsCompleted)

	return goal, nil
}

// SetCompleted toggles completion without touching the saved amount
func (s *goalService) SetCompleted(goalID uuid.UUID, completed bool) (*models.Goal, error) {
	goal, err := s.GetGoal(goalID)
	if err != nil {
		return nil, err
	}

	goal.IsCompleted = completed
	if err := s.goalRepo.Update(goal); err != nil {
		return nil, err
	}

	return goal, nil
}

// Plan derives the planning view of a goal: remaining amount, months left to
// the target date, and the monthly contribution required to land on it. A
// goal is on track when its progress is at least the share of the schedule
// already elapsed.
func (s *goalService) Plan(goal *models.Goal) models.GoalPlan {
	plan := models.GoalPlan{
		GoalID:          goal.ID,
		ProgressPercent: goal.ProgressPercent(),
		Remaining:       goal.Remaining(),
	}

	now := s.now()
	plan.MonthsToTarget = monthsBetween(now, goal.TargetDate)

	if plan.Remaining.IsZero() {
		plan.OnTrack = true
		return plan
	}

	if plan.MonthsToTarget > 0 {
		plan.RequiredMonthlySavings = plan.Remaining.Div(decimal.NewFromInt(int64(plan.MonthsToTarget)))
	} else {
		// Target date passed with an open balance: the whole remainder is due.
		plan.RequiredMonthlySavings = plan.Remaining
	}

	total := goal.TargetDate.Sub(goal.CreatedAt)
	elapsed := now.Sub(goal.CreatedAt)
	if total > 0 && elapsed > 0 {
		expected := decimal.NewFromFloat(float64(elapsed) / float64(total)).Mul(hundred)
		plan.OnTrack = plan.ProgressPercent.GreaterThanOrEqual(expected)
	} else {
		plan.OnTrack = elapsed <= 0
	}

	return plan
}

// monthsBetween counts whole calendar months from now to the target,
// rounding partial months up, never negative
func monthsBetween(from, to time.Time) int {
	if !to.After(from) {
		return 0
	}

	months := (to.Year()-from.Year())*12 + int(to.Month()) - int(from.Month())
	if to.Day() > from.Day() {
		months++
	}
	if months < 1 {
		months = 1
	}
	return months
}
