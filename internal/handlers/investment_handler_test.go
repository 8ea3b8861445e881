package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"homeledger/internal/models"
	"homeledger/internal/repositories"
	"homeledger/internal/repositories/repository_mocks"
	"homeledger/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type InvestmentHandlerTestSuite struct {
	suite.Suite
	handler              *InvestmentHandler
	echo                 *echo.Echo
	userID               uuid.UUID
	ctrl                 *gomock.Controller
	mockInvestmentRepo   *repository_mocks.MockInvestmentRepositoryInterface
	mockValuationService *service_mocks.MockValuationServiceInterface
}

func TestInvestmentHandlerSuite(t *testing.T) {
	suite.Run(t, new(InvestmentHandlerTestSuite))
}

func (s *InvestmentHandlerTestSuite) SetupTest() {
	s.echo = echo.New()
	s.echo.Validator = NewValidator()
	s.userID = uuid.New()
	s.ctrl = gomock.NewController(s.T())
	s.mockInvestmentRepo = repository_mocks.NewMockInvestmentRepositoryInterface(s.ctrl)
	s.mockValuationService = service_mocks.NewMockValuationServiceInterface(s.ctrl)
	s.handler = NewInvestmentHandler(s.mockInvestmentRepo, s.mockValuationService)
}

func (s *InvestmentHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *InvestmentHandlerTestSuite) newJSONContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return s.echo.NewContext(req, rec), rec
}

func (s *InvestmentHandlerTestSuite) testInvestment() *models.Investment {
	return &models.Investment{
		ID:           "inv-1",
		UserID:       s.userID,
		Type:         models.AssetTypeStock,
		Name:         "Turkish Airlines",
		Symbol:       "THYAO",
		Amount:       decimal.NewFromFloat(2850),
		PurchaseDate: time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC),
		Data: models.JSONBMap{
			"quantity":       float64(10),
			"purchase_price": float64(285),
		},
	}
}

// Create Tests

func (s *InvestmentHandlerTestSuite) TestCreateInvestment_Success() {
	body := fmt.Sprintf(`{
		"userId": %q,
		"type": "stock",
		"name": "Turkish Airlines",
		"symbol": "THYAO",
		"amount": 2850,
		"purchaseDate": "2024-01-10T00:00:00Z",
		"data": {"quantity": 10, "purchase_price": 285}
	}`, s.userID)

	s.mockInvestmentRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(inv *models.Investment) error {
			s.Equal(models.AssetTypeStock, inv.Type)
			s.Equal("THYAO", inv.Symbol)
			inv.ID = "inv-1"
			return nil
		})

	c, rec := s.newJSONContext(http.MethodPost, "/api/v1/investments", body)

	s.NoError(s.handler.CreateInvestment(c))
	s.Equal(http.StatusCreated, rec.Code)

	var response SuccessResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal("Investment created successfully", response.Message)

	data := response.Data.(map[string]interface{})
	s.Equal("inv-1", data["id"])
	s.Equal("stock", data["type"])
	s.Equal("2850", data["amount"])
}

func (s *InvestmentHandlerTestSuite) TestCreateInvestment_UppercaseTypeNormalized() {
	body := fmt.Sprintf(`{
		"userId": %q,
		"type": "GOLD",
		"name": "Wedding gold",
		"amount": 15000,
		"purchaseDate": "2024-02-01T00:00:00Z"
	}`, s.userID)

	s.mockInvestmentRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(inv *models.Investment) error {
			s.Equal(models.AssetTypeGold, inv.Type)
			return nil
		})

	c, rec := s.newJSONContext(http.MethodPost, "/api/v1/investments", body)

	s.NoError(s.handler.CreateInvestment(c))
	s.Equal(http.StatusCreated, rec.Code)
}

func (s *InvestmentHandlerTestSuite) TestCreateInvestment_InvalidAssetType() {
	body := fmt.Sprintf(`{
		"userId": %q,
		"type": "tulips",
		"name": "Tulip bulbs",
		"amount": 500,
		"purchaseDate": "2024-02-01T00:00:00Z"
	}`, s.userID)

	c, rec := s.newJSONContext(http.MethodPost, "/api/v1/investments", body)

	s.NoError(s.handler.CreateInvestment(c))
	s.Equal(http.StatusBadRequest, rec.Code)

	var response ErrorResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal("VALIDATION_001", response.Error.Code)
}

// Get Tests

func (s *InvestmentHandlerTestSuite) TestGetInvestment_Success() {
	investment := s.testInvestment()
	investment.Lots = []models.InvestmentLot{
		{
			ID:           uuid.New(),
			InvestmentID: investment.ID,
			Quantity:     decimal.NewFromFloat(10),
			PricePerUnit: decimal.NewFromFloat(285),
			TotalAmount:  decimal.NewFromFloat(2850),
			Date:         investment.PurchaseDate,
		},
	}

	s.mockInvestmentRepo.EXPECT().
		GetByID("inv-1").
		Return(investment, nil)

	c, rec := s.newJSONContext(http.MethodGet, "/api/v1/investments/inv-1", "")
	c.SetParamNames("id")
	c.SetParamValues("inv-1")

	s.NoError(s.handler.GetInvestment(c))
	s.Equal(http.StatusOK, rec.Code)

	var response SuccessResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))

	data := response.Data.(map[string]interface{})
	s.Equal("inv-1", data["id"])
	s.Len(data["lots"].([]interface{}), 1)
}

func (s *InvestmentHandlerTestSuite) TestGetInvestment_NotFound() {
	s.mockInvestmentRepo.EXPECT().
		GetByID("missing").
		Return(nil, repositories.ErrInvestmentNotFound)

	c, rec := s.newJSONContext(http.MethodGet, "/api/v1/investments/missing", "")
	c.SetParamNames("id")
	c.SetParamValues("missing")

	s.NoError(s.handler.GetInvestment(c))
	s.Equal(http.StatusNotFound, rec.Code)

	var response ErrorResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal("INVESTMENT_001", response.Error.Code)
}

// List Tests

func (s *InvestmentHandlerTestSuite) TestListInvestments_Success() {
	s.mockInvestmentRepo.EXPECT().
		GetByUserID(s.userID).
		Return([]models.Investment{*s.testInvestment()}, nil)

	c, rec := s.newJSONContext(http.MethodGet, fmt.Sprintf("/api/v1/users/%s/investments", s.userID), "")
	c.SetParamNames("userId")
	c.SetParamValues(s.userID.String())

	s.NoError(s.handler.ListInvestments(c))
	s.Equal(http.StatusOK, rec.Code)

	var response SuccessResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Len(response.Data.([]interface{}), 1)
}

func (s *InvestmentHandlerTestSuite) TestListInvestments_InvalidUserID() {
	c, rec := s.newJSONContext(http.MethodGet, "/api/v1/users/bogus/investments", "")
	c.SetParamNames("userId")
	c.SetParamValues("bogus")

	s.NoError(s.handler.ListInvestments(c))
	s.Equal(http.StatusBadRequest, rec.Code)
}

// Update Tests

func (s *InvestmentHandlerTestSuite) TestUpdateInvestment_Success() {
	investment := s.testInvestment()

	s.mockInvestmentRepo.EXPECT().
		GetByID("inv-1").
		Return(investment, nil)

	s.mockInvestmentRepo.EXPECT().
		Update(gomock.Any()).
		DoAndReturn(func(inv *models.Investment) error {
			s.Equal("THY", inv.Symbol)
			s.Equal(float64(320), inv.Data["current_price"])
			s.Equal(float64(10), inv.Data["quantity"])
			return nil
		})

	c, rec := s.newJSONContext(http.MethodPut, "/api/v1/investments/inv-1", `{"symbol": "THY", "data": {"current_price": 320}}`)
	c.SetParamNames("id")
	c.SetParamValues("inv-1")

	s.NoError(s.handler.UpdateInvestment(c))
	s.Equal(http.StatusOK, rec.Code)

	var response SuccessResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal("Investment updated successfully", response.Message)
}

func (s *InvestmentHandlerTestSuite) TestUpdateInvestment_NotFound() {
	s.mockInvestmentRepo.EXPECT().
		GetByID("missing").
		Return(nil, repositories.ErrInvestmentNotFound)

	c, rec := s.newJSONContext(http.MethodPut, "/api/v1/investments/missing", `{"name": "Renamed"}`)
	c.SetParamNames("id")
	c.SetParamValues("missing")

	s.NoError(s.handler.UpdateInvestment(c))
	s.Equal(http.StatusNotFound, rec.Code)
}

// Delete Tests

func (s *InvestmentHandlerTestSuite) TestDeleteInvestment_Success() {
	s.mockInvestmentRepo.EXPECT().
		Delete("inv-1").
		Return(nil)

	c, rec := s.newJSONContext(http.MethodDelete, "/api/v1/investments/inv-1", "")
	c.SetParamNames("id")
	c.SetParamValues("inv-1")

	s.NoError(s.handler.DeleteInvestment(c))
	s.Equal(http.StatusOK, rec.Code)
}

func (s *InvestmentHandlerTestSuite) TestDeleteInvestment_NotFound() {
	s.mockInvestmentRepo.EXPECT().
		Delete("missing").
		Return(repositories.ErrInvestmentNotFound)

	c, rec := s.newJSONContext(http.MethodDelete, "/api/v1/investments/missing", "")
	c.SetParamNames("id")
	c.SetParamValues("missing")

	s.NoError(s.handler.DeleteInvestment(c))
	s.Equal(http.StatusNotFound, rec.Code)
}

// Lot Tests

func (s *InvestmentHandlerTestSuite) TestAddLot_Success() {
	s.mockInvestmentRepo.EXPECT().
		AddLot(gomock.Any()).
		DoAndReturn(func(lot *models.InvestmentLot) error {
			s.Equal("inv-1", lot.InvestmentID)
			s.True(lot.Quantity.Equal(decimal.NewFromFloat(5)))
			s.True(lot.PricePerUnit.Equal(decimal.NewFromFloat(300)))
			// TotalAmount derived from quantity * price when omitted
			s.True(lot.TotalAmount.Equal(decimal.NewFromFloat(1500)))
			lot.ID = uuid.New()
			return nil
		})

	body := `{"quantity": 5, "pricePerUnit": 300, "date": "2024-03-01T00:00:00Z"}`
	c, rec := s.newJSONContext(http.MethodPost, "/api/v1/investments/inv-1/lots", body)
	c.SetParamNames("id")
	c.SetParamValues("inv-1")

	s.NoError(s.handler.AddLot(c))
	s.Equal(http.StatusCreated, rec.Code)

	var response SuccessResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal("Purchase lot recorded successfully", response.Message)

	data := response.Data.(map[string]interface{})
	s.Equal("1500", data["totalAmount"])
}

func (s *InvestmentHandlerTestSuite) TestAddLot_ExplicitTotalAmount() {
	s.mockInvestmentRepo.EXPECT().
		AddLot(gomock.Any()).
		DoAndReturn(func(lot *models.InvestmentLot) error {
			s.True(lot.TotalAmount.Equal(decimal.NewFromFloat(1450)))
			return nil
		})

	body := `{"quantity": 5, "pricePerUnit": 300, "totalAmount": 1450, "date": "2024-03-01T00:00:00Z"}`
	c, rec := s.newJSONContext(http.MethodPost, "/api/v1/investments/inv-1/lots", body)
	c.SetParamNames("id")
	c.SetParamValues("inv-1")

	s.NoError(s.handler.AddLot(c))
	s.Equal(http.StatusCreated, rec.Code)
}

func (s *InvestmentHandlerTestSuite) TestAddLot_InvalidLot() {
	body := `{"quantity": 0, "pricePerUnit": 300, "date": "2024-03-01T00:00:00Z"}`
	c, rec := s.newJSONContext(http.MethodPost, "/api/v1/investments/inv-1/lots", body)
	c.SetParamNames("id")
	c.SetParamValues("inv-1")

	s.NoError(s.handler.AddLot(c))
	s.Equal(http.StatusUnprocessableEntity, rec.Code)

	var response ErrorResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal("INVESTMENT_004", response.Error.Code)
}

func (s *InvestmentHandlerTestSuite) TestAddLot_OrphanInvestment() {
	s.mockInvestmentRepo.EXPECT().
		AddLot(gomock.Any()).
		Return(repositories.ErrInvestmentNotFound)

	body := `{"quantity": 5, "pricePerUnit": 300, "date": "2024-03-01T00:00:00Z"}`
	c, rec := s.newJSONContext(http.MethodPost, "/api/v1/investments/missing/lots", body)
	c.SetParamNames("id")
	c.SetParamValues("missing")

	s.NoError(s.handler.AddLot(c))
	s.Equal(http.StatusNotFound, rec.Code)
}

// Valuation Tests

func (s *InvestmentHandlerTestSuite) TestGetValuation_Success() {
	investment := s.testInvestment()

	s.mockInvestmentRepo.EXPECT().
		GetByID("inv-1").
		Return(investment, nil)

	s.mockValuationService.EXPECT().
		Calculate(investment).
		Return(models.Valuation{
			InvestmentID:  "inv-1",
			Type:          models.AssetTypeStock,
			TotalInvested: decimal.NewFromFloat(2850),
			CurrentValue:  decimal.NewFromFloat(3200),
			Gain:          decimal.NewFromFloat(350),
			GainPercent:   decimal.NewFromFloat(12.28),
			Units:         "lot",
		})

	c, rec := s.newJSONContext(http.MethodGet, "/api/v1/investments/inv-1/valuation", "")
	c.SetParamNames("id")
	c.SetParamValues("inv-1")

	s.NoError(s.handler.GetValuation(c))
	s.Equal(http.StatusOK, rec.Code)

	var response SuccessResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))

	data := response.Data.(map[string]interface{})
	s.Equal("inv-1", data["investmentId"])
	s.Equal("3200", data["currentValue"])
	s.Equal("350", data["gain"])
	s.Equal("lot", data["units"])
}

func (s *InvestmentHandlerTestSuite) TestGetValuation_NotFound() {
	s.mockInvestmentRepo.EXPECT().
		GetByID("missing").
		Return(nil, repositories.ErrInvestmentNotFound)

	c, rec := s.newJSONContext(http.MethodGet, "/api/v1/investments/missing/valuation", "")
	c.SetParamNames("id")
	c.SetParamValues("missing")

	s.NoError(s.handler.GetValuation(c))
	s.Equal(http.StatusNotFound, rec.Code)
}

// Portfolio Tests

func (s *InvestmentHandlerTestSuite) TestGetPortfolio_Success() {
	investments := []models.Investment{*s.testInvestment()}
	generatedAt := time.Date(2024, time.July, 1, 12, 0, 0, 0, time.UTC)

	s.mockInvestmentRepo.EXPECT().
		GetByUserID(s.userID).
		Return(investments, nil)

	s.mockValuationService.EXPECT().
		PortfolioSummary(investments).
		Return(models.PortfolioSummary{
			TotalInvested: decimal.NewFromFloat(2850),
			CurrentValue:  decimal.NewFromFloat(3200),
			TotalGain:     decimal.NewFromFloat(350),
			GainPercent:   decimal.NewFromFloat(12.28),
			Holdings: []models.Valuation{
				{
					InvestmentID:  "inv-1",
					Type:          models.AssetTypeStock,
					TotalInvested: decimal.NewFromFloat(2850),
					CurrentValue:  decimal.NewFromFloat(3200),
					Gain:          decimal.NewFromFloat(350),
					GainPercent:   decimal.NewFromFloat(12.28),
					Units:         "lot",
				},
			},
			GeneratedAt: generatedAt,
		})

	c, rec := s.newJSONContext(http.MethodGet, fmt.Sprintf("/api/v1/users/%s/portfolio", s.userID), "")
	c.SetParamNames("userId")
	c.SetParamValues(s.userID.String())

	s.NoError(s.handler.GetPortfolio(c))
	s.Equal(http.StatusOK, rec.Code)

	var response SuccessResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))

	data := response.Data.(map[string]interface{})
	s.Equal("2850", data["totalInvested"])
	s.Equal("3200", data["currentValue"])
	s.Equal("350", data["totalGain"])
	s.Len(data["holdings"].([]interface{}), 1)
}

func (s *InvestmentHandlerTestSuite) TestGetPortfolio_Empty() {
	s.mockInvestmentRepo.EXPECT().
		GetByUserID(s.userID).
		Return([]models.Investment{}, nil)

	s.mockValuationService.EXPECT().
		PortfolioSummary([]models.Investment{}).
		Return(models.PortfolioSummary{
			TotalInvested: decimal.Zero,
			CurrentValue:  decimal.Zero,
			TotalGain:     decimal.Zero,
			GainPercent:   decimal.Zero,
			Holdings:      []models.Valuation{},
		})

	c, rec := s.newJSONContext(http.MethodGet, fmt.Sprintf("/api/v1/users/%s/portfolio", s.userID), "")
	c.SetParamNames("userId")
	c.SetParamValues(s.userID.String())

	s.NoError(s.handler.GetPortfolio(c))
	s.Equal(http.StatusOK, rec.Code)

	var response SuccessResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	data := response.Data.(map[string]interface{})
	s.Equal("0", data["totalInvested"])
	s.Len(data["holdings"].([]interface{}), 0)
}
