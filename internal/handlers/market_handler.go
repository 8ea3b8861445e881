package handlers

import (
	"net/http"
	"time"

	"homeledger/internal/dto"
	"homeledger/internal/errors"
	"homeledger/internal/market"
	"homeledger/internal/models"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// MarketHandler manages the in-memory market quote store
type MarketHandler struct {
	quotes *market.StaticQuoteStore
}

// NewMarketHandler creates a new market handler
func NewMarketHandler(quotes *market.StaticQuoteStore) *MarketHandler {
	return &MarketHandler{quotes: quotes}
}

// UpsertQuote publishes or updates a market quote
// @Summary Upsert quote
// @Description Publish a market quote that valuations will resolve against
// @Tags Market
// @Accept json
// @Produce json
// @Param request body dto.UpsertQuoteRequest true "Quote details"
// @Success 200 {object} SuccessResponse{data=dto.QuoteResponse} "Quote stored"
// @Failure 400 {object} errors.ErrorResponse "MARKET_002 - Quote price must be positive"
// @Router /market/quotes [put]
func (h *MarketHandler) UpsertQuote(c echo.Context) error {
	var req dto.UpsertQuoteRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request payload"))
	}

	if err := c.Validate(&req); err != nil {
		return SendError(c, errors.MarketInvalidPrice)
	}

	quote := models.Quote{
		Symbol:        req.Symbol,
		Price:         decimal.NewFromFloat(req.Price),
		Change:        decimal.NewFromFloat(req.Change),
		ChangePercent: decimal.NewFromFloat(req.ChangePercent),
		AsOf:          time.Now().UTC(),
	}

	h.quotes.Set(quote)

	return c.JSON(http.StatusOK, SuccessResponse{
		Data:    toQuoteResponse(quote),
		Message: "Quote stored successfully",
	})
}

// GetQuote retrieves the quote of a symbol
// @Summary Get quote
// @Description Retrieve the stored quote for a symbol
// @Tags Market
// @Produce json
// @Param symbol path string true "Symbol"
// @Success 200 {object} SuccessResponse{data=dto.QuoteResponse} "Quote"
// @Failure 404 {object} errors.ErrorResponse "MARKET_001 - No quote available for this symbol"
// @Router /market/quotes/{symbol} [get]
func (h *MarketHandler) GetQuote(c echo.Context) error {
	quote, ok := h.quotes.Quote(c.Param("symbol"))
	if !ok {
		return SendError(c, errors.MarketQuoteNotFound)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: toQuoteResponse(quote),
	})
}

// ListQuotes lists all tracked symbols and their quotes
// @Summary List quotes
// @Description List every stored market quote
// @Tags Market
// @Produce json
// @Success 200 {object} SuccessResponse{data=dto.ListQuotesResponse} "Quote list"
// @Router /market/quotes [get]
func (h *MarketHandler) ListQuotes(c echo.Context) error {
	symbols := h.quotes.Symbols()

	quotes := make([]dto.QuoteResponse, 0, len(symbols))
	for _, symbol := range symbols {
		if quote, ok := h.quotes.Quote(symbol); ok {
			quotes = append(quotes, toQuoteResponse(quote))
		}
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: dto.ListQuotesResponse{
			Quotes: quotes,
			Total:  len(quotes),
		},
	})
}

// RemoveQuote removes the quote of a symbol
// @Summary Remove quote
// @Description Remove the stored quote for a symbol
// @Tags Market
// @Produce json
// @Param symbol path string true "Symbol"
// @Success 200 {object} SuccessResponse "Quote removed"
// @Router /market/quotes/{symbol} [delete]
func (h *MarketHandler) RemoveQuote(c echo.Context) error {
	h.quotes.Remove(c.Param("symbol"))

	return c.JSON(http.StatusOK, SuccessResponse{
		Message: "Quote removed successfully",
	})
}

func toQuoteResponse(q models.Quote) dto.QuoteResponse {
	return dto.QuoteResponse{
		Symbol:        q.Symbol,
		Price:         q.Price.String(),
		Change:        q.Change.String(),
		ChangePercent: q.ChangePercent.String(),
		AsOf:          q.AsOf,
	}
}
