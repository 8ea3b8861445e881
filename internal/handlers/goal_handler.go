package handlers

import (
	"net/http"

	"homeledger/internal/dto"
	"homeledger/internal/errors"
	"homeledger/internal/models"
	"homeledger/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// GoalHandler handles savings goal HTTP requests
type GoalHandler struct {
	goalService services.GoalServiceInterface
}

// NewGoalHandler creates a new goal handler
func NewGoalHandler(goalService services.GoalServiceInterface) *GoalHandler {
	return &GoalHandler{goalService: goalService}
}

// CreateGoal creates a new savings goal
// @Summary Create goal
// @Description Create a new savings goal with a target amount and optional deadline
// @Tags Goals
// @Accept json
// @Produce json
// @Param request body dto.CreateGoalRequest true "Goal details"
// @Success 201 {object} SuccessResponse{data=dto.GoalResponse} "Goal created"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request payload"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /goals [post]
func (h *GoalHandler) CreateGoal(c echo.Context) error {
	var req dto.CreateGoalRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request payload"))
	}

	if err := c.Validate(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	goal := &models.Goal{
		UserID:       req.UserID,
		Title:        req.Title,
		TargetAmount: decimal.NewFromFloat(req.TargetAmount),
		TargetDate:   req.TargetDate,
		Category:     req.Category,
	}

	if err := h.goalService.CreateGoal(goal); err != nil {
		if err == services.ErrGoalTargetDateRequired {
			return SendError(c, errors.GoalTargetDateRequired)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusCreated, SuccessResponse{
		Data:    toGoalResponse(goal),
		Message: "Goal created successfully",
	})
}

// GetGoal retrieves a single goal by ID
// @Summary Get goal
// @Description Retrieve a savings goal with its progress
// @Tags Goals
// @Produce json
// @Param id path string true "Goal ID (UUID)"
// @Success 200 {object} SuccessResponse{data=dto.GoalResponse} "Goal details"
// @Failure 404 {object} errors.ErrorResponse "GOAL_001 - Goal not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /goals/{id} [get]
func (h *GoalHandler) GetGoal(c echo.Context) error {
	goalID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid goal ID"))
	}

	goal, err := h.goalService.GetGoal(goalID)
	if err != nil {
		if err == services.ErrGoalNotFound {
			return SendError(c, errors.GoalNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: toGoalResponse(goal),
	})
}

// ListGoals retrieves all goals of a user
// @Summary List goals
// @Description Retrieve all savings goals of a user
// @Tags Goals
// @Produce json
// @Param userId path string true "User ID (UUID)"
// @Success 200 {object} SuccessResponse{data=[]dto.GoalResponse} "Goal list"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_003 - Invalid user ID"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /users/{userId}/goals [get]
func (h *GoalHandler) ListGoals(c echo.Context) error {
	userID, err := parseUserIDParam(c)
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid user ID"))
	}

	goals, err := h.goalService.GetUserGoals(userID)
	if err != nil {
		return SendSystemError(c, err)
	}

	responses := make([]dto.GoalResponse, 0, len(goals))
	for i := range goals {
		responses = append(responses, toGoalResponse(&goals[i]))
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: responses,
	})
}

// Contribute records a contribution toward a goal
// @Summary Contribute to goal
// @Description Record a savings contribution toward a goal, completing it when the target is reached
// @Tags Goals
// @Accept json
// @Produce json
// @Param id path string true "Goal ID (UUID)"
// @Param request body dto.ContributeRequest true "Contribution amount"
// @Success 200 {object} SuccessResponse{data=dto.GoalResponse} "Contribution recorded"
// @Failure 404 {object} errors.ErrorResponse "GOAL_001 - Goal not found"
// @Failure 409 {object} errors.ErrorResponse "GOAL_003 - Goal already completed"
// @Failure 422 {object} errors.ErrorResponse "GOAL_002 - Invalid contribution amount"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /goals/{id}/contributions [post]
func (h *GoalHandler) Contribute(c echo.Context) error {
	goalID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid goal ID"))
	}

	var req dto.ContributeRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request payload"))
	}

	if err := c.Validate(&req); err != nil {
		return SendError(c, errors.GoalInvalidContribution)
	}

	goal, err := h.goalService.Contribute(goalID, decimal.NewFromFloat(req.Amount))
	if err != nil {
		switch err {
		case services.ErrGoalNotFound:
			return SendError(c, errors.GoalNotFound)
		case services.ErrInvalidContribution:
			return SendError(c, errors.GoalInvalidContribution)
		case services.ErrGoalAlreadyCompleted:
			return SendError(c, errors.GoalAlreadyCompleted)
		default:
			return SendSystemError(c, err)
		}
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data:    toGoalResponse(goal),
		Message: "Contribution recorded successfully",
	})
}

// GetPlan computes the savings plan for a goal
// @Summary Get goal plan
// @Description Compute the remaining amount, months to target and required monthly savings for a goal
// @Tags Goals
// @Produce json
// @Param id path string true "Goal ID (UUID)"
// @Success 200 {object} SuccessResponse{data=dto.GoalPlanResponse} "Goal plan"
// @Failure 404 {object} errors.ErrorResponse "GOAL_001 - Goal not found"
// @Failure 422 {object} errors.ErrorResponse "GOAL_004 - Goal target date is required"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /goals/{id}/plan [get]
func (h *GoalHandler) GetPlan(c echo.Context) error {
	goalID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid goal ID"))
	}

	goal, err := h.goalService.GetGoal(goalID)
	if err != nil {
		if err == services.ErrGoalNotFound {
			return SendError(c, errors.GoalNotFound)
		}
		return SendSystemError(c, err)
	}

	plan := h.goalService.Plan(goal)

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: dto.GoalPlanResponse{
			GoalID:                 plan.GoalID,
			ProgressPercent:        plan.ProgressPercent.String(),
			Remaining:              plan.Remaining.String(),
			MonthsToTarget:         plan.MonthsToTarget,
			RequiredMonthlySavings: plan.RequiredMonthlySavings.String(),
			OnTrack:                plan.OnTrack,
		},
	})
}

// Complete marks a goal as completed
// @Summary Complete goal
// @Description Mark a savings goal as completed
// @Tags Goals
// @Produce json
// @Param id path string true "Goal ID (UUID)"
// @Success 200 {object} SuccessResponse{data=dto.GoalResponse} "Goal completed"
// @Failure 404 {object} errors.ErrorResponse "GOAL_001 - Goal not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /goals/{id}/complete [put]
func (h *GoalHandler) Complete(c echo.Context) error {
	goalID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid goal ID"))
	}

	goal, err := h.goalService.SetCompleted(goalID, true)
	if err != nil {
		if err == services.ErrGoalNotFound {
			return SendError(c, errors.GoalNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data:    toGoalResponse(goal),
		Message: "Goal completed successfully",
	})
}

func toGoalResponse(g *models.Goal) dto.GoalResponse {
	return dto.GoalResponse{
		ID:              g.ID,
		UserID:          g.UserID,
		Title:           g.Title,
		TargetAmount:    g.TargetAmount.String(),
		CurrentAmount:   g.CurrentAmount.String(),
		TargetDate:      g.TargetDate,
		Category:        g.Category,
		IsCompleted:     g.IsCompleted,
		ProgressPercent: g.ProgressPercent().String(),
		Remaining:       g.Remaining().String(),
		CreatedAt:       g.CreatedAt,
	}
}
