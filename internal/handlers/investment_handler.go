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

// InvestmentHandler handles investment-related HTTP requests
type InvestmentHandler struct {
	investmentRepo   repositories.InvestmentRepositoryInterface
	valuationService services.ValuationServiceInterface
}

// NewInvestmentHandler creates a new investment handler
func NewInvestmentHandler(
	investmentRepo repositories.InvestmentRepositoryInterface,
	valuationService services.ValuationServiceInterface,
) *InvestmentHandler {
	return &InvestmentHandler{
		investmentRepo:   investmentRepo,
		valuationService: valuationService,
	}
}

// CreateInvestment records a new investment holding
// @Summary Create investment
// @Description Record a new investment holding with type-specific attributes
// @Tags Investments
// @Accept json
// @Produce json
// @Param request body dto.CreateInvestmentRequest true "Investment details"
// @Success 201 {object} SuccessResponse{data=dto.InvestmentResponse} "Investment created"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request payload"
// @Failure 422 {object} errors.ErrorResponse "INVESTMENT_002 - Invalid asset type"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /investments [post]
func (h *InvestmentHandler) CreateInvestment(c echo.Context) error {
	var req dto.CreateInvestmentRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request payload"))
	}

	if err := c.Validate(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	investment := &models.Investment{
		UserID:       req.UserID,
		Type:         models.AssetType(strings.ToLower(req.Type)),
		Name:         req.Name,
		Symbol:       req.Symbol,
		Amount:       decimal.NewFromFloat(req.Amount),
		PurchaseDate: req.PurchaseDate,
		Data:         models.JSONBMap(req.Data),
	}

	if err := investment.Validate(); err != nil {
		if err == models.ErrInvalidAssetType {
			return SendError(c, errors.InvestmentInvalidType)
		}
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	if err := h.investmentRepo.Create(investment); err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusCreated, SuccessResponse{
		Data:    toInvestmentResponse(investment),
		Message: "Investment created successfully",
	})
}

// GetInvestment retrieves a single investment with its lots
// @Summary Get investment
// @Description Retrieve an investment and its purchase lots by ID
// @Tags Investments
// @Produce json
// @Param id path string true "Investment ID"
// @Success 200 {object} SuccessResponse{data=dto.InvestmentResponse} "Investment details"
// @Failure 404 {object} errors.ErrorResponse "INVESTMENT_001 - Investment not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /investments/{id} [get]
func (h *InvestmentHandler) GetInvestment(c echo.Context) error {
	investment, err := h.investmentRepo.GetByID(c.Param("id"))
	if err != nil {
		if err == repositories.ErrInvestmentNotFound {
			return SendError(c, errors.InvestmentNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: toInvestmentResponse(investment),
	})
}

// ListInvestments retrieves all investments of a user
// @Summary List investments
// @Description Retrieve all investment holdings of a user
// @Tags Investments
// @Produce json
// @Param userId path string true "User ID (UUID)"
// @Success 200 {object} SuccessResponse{data=[]dto.InvestmentResponse} "Investment list"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_003 - Invalid user ID"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /users/{userId}/investments [get]
func (h *InvestmentHandler) ListInvestments(c echo.Context) error {
	userID, err := parseUserIDParam(c)
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid user ID"))
	}

	investments, err := h.investmentRepo.GetByUserID(userID)
	if err != nil {
		return SendSystemError(c, err)
	}

	responses := make([]dto.InvestmentResponse, 0, len(investments))
	for i := range investments {
		responses = append(responses, toInvestmentResponse(&investments[i]))
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: responses,
	})
}

// UpdateInvestment updates an existing investment
// @Summary Update investment
// @Description Update the fields of an existing investment
// @Tags Investments
// @Accept json
// @Produce json
// @Param id path string true "Investment ID"
// @Param request body dto.UpdateInvestmentRequest true "Fields to update"
// @Success 200 {object} SuccessResponse{data=dto.InvestmentResponse} "Investment updated"
// @Failure 404 {object} errors.ErrorResponse "INVESTMENT_001 - Investment not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /investments/{id} [put]
func (h *InvestmentHandler) UpdateInvestment(c echo.Context) error {
	investment, err := h.investmentRepo.GetByID(c.Param("id"))
	if err != nil {
		if err == repositories.ErrInvestmentNotFound {
			return SendError(c, errors.InvestmentNotFound)
		}
		return SendSystemError(c, err)
	}

	var req dto.UpdateInvestmentRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request payload"))
	}

	if err := c.Validate(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	if req.Name != nil {
		investment.Name = *req.Name
	}
	if req.Symbol != nil {
		investment.Symbol = *req.Symbol
	}
	if req.Amount != nil {
		investment.Amount = decimal.NewFromFloat(*req.Amount)
	}
	if req.Data != nil {
		if investment.Data == nil {
			investment.Data = models.JSONBMap{}
		}
		for key, value := range req.Data {
			investment.Data[key] = value
		}
	}

	if err := h.investmentRepo.Update(investment); err != nil {
		if err == repositories.ErrInvestmentNotFound {
			return SendError(c, errors.InvestmentNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data:    toInvestmentResponse(investment),
		Message: "Investment updated successfully",
	})
}

// DeleteInvestment removes an investment and its lots
// @Summary Delete investment
// @Description Remove an investment holding and its purchase lots
// @Tags Investments
// @Produce json
// @Param id path string true "Investment ID"
// @Success 200 {object} SuccessResponse "Investment deleted"
// @Failure 404 {object} errors.ErrorResponse "INVESTMENT_001 - Investment not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /investments/{id} [delete]
func (h *InvestmentHandler) DeleteInvestment(c echo.Context) error {
	if err := h.investmentRepo.Delete(c.Param("id")); err != nil {
		if err == repositories.ErrInvestmentNotFound {
			return SendError(c, errors.InvestmentNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Message: "Investment deleted successfully",
	})
}

// AddLot records a purchase lot against an investment
// @Summary Add purchase lot
// @Description Record an additional purchase lot for a cost-averaged investment
// @Tags Investments
// @Accept json
// @Produce json
// @Param id path string true "Investment ID"
// @Param request body dto.AddLotRequest true "Lot details"
// @Success 201 {object} SuccessResponse{data=dto.LotResponse} "Lot recorded"
// @Failure 404 {object} errors.ErrorResponse "INVESTMENT_001 - Investment not found"
// @Failure 422 {object} errors.ErrorResponse "INVESTMENT_004 - Invalid purchase lot"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /investments/{id}/lots [post]
func (h *InvestmentHandler) AddLot(c echo.Context) error {
	var req dto.AddLotRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request payload"))
	}

	if err := c.Validate(&req); err != nil {
		return SendError(c, errors.InvestmentInvalidLot, errors.WithDetails(err.Error()))
	}

	quantity := decimal.NewFromFloat(req.Quantity)
	pricePerUnit := decimal.NewFromFloat(req.PricePerUnit)
	totalAmount := decimal.NewFromFloat(req.TotalAmount)
	if totalAmount.IsZero() {
		totalAmount = quantity.Mul(pricePerUnit)
	}

	lot := &models.InvestmentLot{
		InvestmentID: c.Param("id"),
		Quantity:     quantity,
		PricePerUnit: pricePerUnit,
		TotalAmount:  totalAmount,
		Date:         req.Date,
	}

	if err := h.investmentRepo.AddLot(lot); err != nil {
		if err == repositories.ErrInvestmentNotFound {
			return SendError(c, errors.InvestmentNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusCreated, SuccessResponse{
		Data:    toLotResponse(lot),
		Message: "Purchase lot recorded successfully",
	})
}

// GetValuation computes the current valuation of an investment
// @Summary Get investment valuation
// @Description Compute the current value, gain and gain percentage of an investment
// @Tags Investments
// @Produce json
// @Param id path string true "Investment ID"
// @Success 200 {object} SuccessResponse{data=dto.ValuationResponse} "Valuation result"
// @Failure 404 {object} errors.ErrorResponse "INVESTMENT_001 - Investment not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /investments/{id}/valuation [get]
func (h *InvestmentHandler) GetValuation(c echo.Context) error {
	investment, err := h.investmentRepo.GetByID(c.Param("id"))
	if err != nil {
		if err == repositories.ErrInvestmentNotFound {
			return SendError(c, errors.InvestmentNotFound)
		}
		return SendSystemError(c, err)
	}

	valuation := h.valuationService.Calculate(investment)

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: toValuationResponse(valuation),
	})
}

// GetPortfolio computes the aggregated portfolio valuation of a user
// @Summary Get portfolio summary
// @Description Compute the aggregated valuation of all of a user's holdings
// @Tags Investments
// @Produce json
// @Param userId path string true "User ID (UUID)"
// @Success 200 {object} SuccessResponse{data=dto.PortfolioResponse} "Portfolio summary"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_003 - Invalid user ID"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /users/{userId}/portfolio [get]
func (h *InvestmentHandler) GetPortfolio(c echo.Context) error {
	userID, err := parseUserIDParam(c)
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid user ID"))
	}

	investments, err := h.investmentRepo.GetByUserID(userID)
	if err != nil {
		return SendSystemError(c, err)
	}

	portfolio := h.valuationService.PortfolioSummary(investments)

	holdings := make([]dto.ValuationResponse, 0, len(portfolio.Holdings))
	for _, holding := range portfolio.Holdings {
		holdings = append(holdings, toValuationResponse(holding))
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: dto.PortfolioResponse{
			TotalInvested: portfolio.TotalInvested.String(),
			CurrentValue:  portfolio.CurrentValue.String(),
			TotalGain:     portfolio.TotalGain.String(),
			GainPercent:   portfolio.GainPercent.String(),
			Holdings:      holdings,
			GeneratedAt:   portfolio.GeneratedAt,
		},
	})
}

func toInvestmentResponse(inv *models.Investment) dto.InvestmentResponse {
	lots := make([]dto.LotResponse, 0, len(inv.Lots))
	for i := range inv.Lots {
		lots = append(lots, toLotResponse(&inv.Lots[i]))
	}

	return dto.InvestmentResponse{
		ID:           inv.ID,
		UserID:       inv.UserID,
		Type:         string(inv.Type),
		Name:         inv.Name,
		Symbol:       inv.Symbol,
		Amount:       inv.Amount.String(),
		PurchaseDate: inv.PurchaseDate,
		Data:         inv.Data,
		Lots:         lots,
		CreatedAt:    inv.CreatedAt,
	}
}

func toLotResponse(lot *models.InvestmentLot) dto.LotResponse {
	return dto.LotResponse{
		ID:           lot.ID,
		Quantity:     lot.Quantity.String(),
		PricePerUnit: lot.PricePerUnit.String(),
		TotalAmount:  lot.TotalAmount.String(),
		Date:         lot.Date,
	}
}

func toValuationResponse(v models.Valuation) dto.ValuationResponse {
	return dto.ValuationResponse{
		InvestmentID:  v.InvestmentID,
		Type:          string(v.Type),
		TotalInvested: v.TotalInvested.String(),
		CurrentValue:  v.CurrentValue.String(),
		Gain:          v.Gain.String(),
		GainPercent:   v.GainPercent.String(),
		Units:         v.Units,
		ExtraInfo:     v.ExtraInfo,
	}
}
