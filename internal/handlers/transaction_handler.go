package handlers

import (
	"net/http"
	"strings"

	"homeledger/internal/dto"
	"homeledger/internal/errors"
	"homeledger/internal/models"
	"homeledger/internal/repositories"
	"homeledger/internal/services"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// TransactionHandler handles transaction-related HTTP requests
type TransactionHandler struct {
	transactionRepo   repositories.TransactionRepositoryInterface
	recurrenceService services.RecurrenceServiceInterface
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(
	transactionRepo repositories.TransactionRepositoryInterface,
	recurrenceService services.RecurrenceServiceInterface,
) *TransactionHandler {
	return &TransactionHandler{
		transactionRepo:   transactionRepo,
		recurrenceService: recurrenceService,
	}
}

// CreateTransaction records a new income or expense transaction
// @Summary Create transaction
// @Description Record a new income or expense, optionally as a recurring template
// @Tags Transactions
// @Accept json
// @Produce json
// @Param request body dto.CreateTransactionRequest true "Transaction details"
// @Success 201 {object} SuccessResponse{data=dto.TransactionResponse} "Transaction created"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request payload"
// @Failure 422 {object} errors.ErrorResponse "TRANSACTION_003 - Invalid transaction type"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /transactions [post]
func (h *TransactionHandler) CreateTransaction(c echo.Context) error {
	var req dto.CreateTransactionRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request payload"))
	}

	if err := c.Validate(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	// Request validation is case-insensitive, storage is not.
	transaction := &models.Transaction{
		UserID:           req.UserID,
		Type:             strings.ToLower(req.Type),
		Amount:           decimal.NewFromFloat(req.Amount),
		Category:         req.Category,
		Description:      req.Description,
		Date:             req.Date,
		Recurring:        req.Recurring,
		RecurringPeriod:  strings.ToUpper(req.RecurringPeriod),
		RecurringEndDate: req.RecurringEndDate,
		Metadata:         models.JSONBMap(req.Metadata),
	}

	if err := transaction.Validate(); err != nil {
		switch err {
		case models.ErrInvalidTransactionType:
			return SendError(c, errors.TransactionInvalidType)
		case models.ErrInvalidRecurringPeriod:
			return SendError(c, errors.TransactionInvalidPeriod)
		default:
			return SendError(c, errors.TransactionValidationFailed, errors.WithDetails(err.Error()))
		}
	}

	if err := h.transactionRepo.Create(transaction); err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusCreated, SuccessResponse{
		Data:    toTransactionResponse(transaction),
		Message: "Transaction created successfully",
	})
}

// GetTransaction retrieves a single transaction by ID
// @Summary Get transaction
// @Description Retrieve a transaction by its ID
// @Tags Transactions
// @Produce json
// @Param id path string true "Transaction ID"
// @Success 200 {object} SuccessResponse{data=dto.TransactionResponse} "Transaction details"
// @Failure 404 {object} errors.ErrorResponse "TRANSACTION_001 - Transaction not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /transactions/{id} [get]
func (h *TransactionHandler) GetTransaction(c echo.Context) error {
	transaction, err := h.transactionRepo.GetByID(c.Param("id"))
	if err != nil {
		if err == repositories.ErrTransactionNotFound {
			return SendError(c, errors.TransactionNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: toTransactionResponse(transaction),
	})
}

// ListTransactions retrieves a user's transactions with optional filtering and expansion
// @Summary List transactions
// @Description Retrieve a user's transactions, optionally expanding recurring templates into dated occurrences
// @Tags Transactions
// @Produce json
// @Param userId path string true "User ID (UUID)"
// @Param startDate query string false "Window start (YYYY-MM-DD)"
// @Param endDate query string false "Window end (YYYY-MM-DD)"
// @Param type query string false "Filter by transaction type" Enums(income, expense)
// @Param category query string false "Filter by category"
// @Param expand query bool false "Expand recurring templates into occurrences (requires startDate and endDate)"
// @Success 200 {object} SuccessResponse{data=dto.ListTransactionsResponse} "Transaction list"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_003 - Invalid user ID or date format"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /users/{userId}/transactions [get]
func (h *TransactionHandler) ListTransactions(c echo.Context) error {
	userID, err := parseUserIDParam(c)
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid user ID"))
	}

	startDate, err := parseDateParam(c, "startDate")
	if err != nil {
		return SendError(c, errors.ValidationInvalidDate, errors.WithDetails(err.Error()))
	}
	endDate, err := parseDateParam(c, "endDate")
	if err != nil {
		return SendError(c, errors.ValidationInvalidDate, errors.WithDetails(err.Error()))
	}

	var transactions []models.Transaction
	if getBoolParam(c, "expand") && startDate != nil && endDate != nil {
		records, err := h.transactionRepo.GetByDateRange(userID, *startDate, *endDate)
		if err != nil {
			return SendSystemError(c, err)
		}
		transactions = h.recurrenceService.ExpandWindow(records, *startDate, *endDate)
	} else {
		transactions, err = h.transactionRepo.GetByUserID(userID)
		if err != nil {
			return SendSystemError(c, err)
		}
	}

	txType := c.QueryParam("type")
	category := c.QueryParam("category")

	responses := make([]dto.TransactionResponse, 0, len(transactions))
	for i := range transactions {
		t := &transactions[i]
		if txType != "" && t.Type != txType {
			continue
		}
		if category != "" && t.Category != category {
			continue
		}
		if startDate != nil && t.Date.Before(*startDate) {
			continue
		}
		if endDate != nil && t.Date.After(*endDate) {
			continue
		}
		responses = append(responses, toTransactionResponse(t))
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: dto.ListTransactionsResponse{
			Transactions: responses,
			Total:        len(responses),
		},
	})
}

// UpdateTransaction updates an existing transaction
// @Summary Update transaction
// @Description Update the fields of an existing transaction
// @Tags Transactions
// @Accept json
// @Produce json
// @Param id path string true "Transaction ID"
// @Param request body dto.UpdateTransactionRequest true "Fields to update"
// @Success 200 {object} SuccessResponse{data=dto.TransactionResponse} "Transaction updated"
// @Failure 404 {object} errors.ErrorResponse "TRANSACTION_001 - Transaction not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /transactions/{id} [put]
func (h *TransactionHandler) UpdateTransaction(c echo.Context) error {
	transaction, err := h.transactionRepo.GetByID(c.Param("id"))
	if err != nil {
		if err == repositories.ErrTransactionNotFound {
			return SendError(c, errors.TransactionNotFound)
		}
		return SendSystemError(c, err)
	}

	var req dto.UpdateTransactionRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request payload"))
	}

	if err := c.Validate(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	if req.Amount != nil {
		transaction.Amount = decimal.NewFromFloat(*req.Amount)
	}
	if req.Category != nil {
		transaction.Category = *req.Category
	}
	if req.Description != nil {
		transaction.Description = *req.Description
	}
	if req.Date != nil {
		transaction.Date = *req.Date
	}
	if req.Recurring != nil {
		transaction.Recurring = *req.Recurring
	}
	if req.RecurringPeriod != nil {
		transaction.RecurringPeriod = strings.ToUpper(*req.RecurringPeriod)
	}
	if req.RecurringEndDate != nil {
		transaction.RecurringEndDate = req.RecurringEndDate
	}

	if err := transaction.Validate(); err != nil {
		return SendError(c, errors.TransactionValidationFailed, errors.WithDetails(err.Error()))
	}

	if err := h.transactionRepo.Update(transaction); err != nil {
		if err == repositories.ErrTransactionNotFound {
			return SendError(c, errors.TransactionNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data:    toTransactionResponse(transaction),
		Message: "Transaction updated successfully",
	})
}

// DeleteTransaction removes a transaction
// @Summary Delete transaction
// @Description Remove a transaction from the ledger
// @Tags Transactions
// @Produce json
// @Param id path string true "Transaction ID"
// @Success 200 {object} SuccessResponse "Transaction deleted"
// @Failure 404 {object} errors.ErrorResponse "TRANSACTION_001 - Transaction not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /transactions/{id} [delete]
func (h *TransactionHandler) DeleteTransaction(c echo.Context) error {
	if err := h.transactionRepo.Delete(c.Param("id")); err != nil {
		if err == repositories.ErrTransactionNotFound {
			return SendError(c, errors.TransactionNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Message: "Transaction deleted successfully",
	})
}

func toTransactionResponse(t *models.Transaction) dto.TransactionResponse {
	return dto.TransactionResponse{
		ID:                  t.ID,
		UserID:              t.UserID,
		Type:                t.Type,
		Amount:              t.Amount.String(),
		Category:            t.Category,
		Description:         t.Description,
		Date:                t.Date,
		Recurring:           t.Recurring,
		RecurringPeriod:     t.RecurringPeriod,
		RecurringEndDate:    t.RecurringEndDate,
		IsRecurringInstance: t.IsRecurringInstance,
		ParentRecurringID:   t.ParentRecurringID,
		CreatedAt:           t.CreatedAt,
	}
}
