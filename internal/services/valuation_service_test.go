package services

import (
	"testing"
	"time"

	"homeledger/internal/market"
	"homeledger/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type ValuationServiceTestSuite struct {
	suite.Suite
	service *valuationService
	quotes  *market.StaticQuoteStore
	now     time.Time
}

func TestValuationServiceSuite(t *testing.T) {
	suite.Run(t, new(ValuationServiceTestSuite))
}

func (s *ValuationServiceTestSuite) SetupTest() {
	s.quotes = market.NewStaticQuoteStore()
	s.now = date(2024, time.July, 15)

	service := NewValuationService(s.quotes, nil).(*valuationService)
	service.now = func() time.Time { return s.now }
	s.service = service
}

func (s *ValuationServiceTestSuite) newInvestment(assetType models.AssetType, data models.JSONBMap) *models.Investment {
	return &models.Investment{
		ID:           uuid.New().String(),
		UserID:       uuid.New(),
		Type:         assetType,
		Name:         "Holding",
		PurchaseDate: date(2024, time.January, 1),
		Data:         data,
	}
}

// Stock Valuation Tests

func (s *ValuationServiceTestSuite) TestCalculate_StockWithQuote() {
	s.quotes.Set(models.Quote{Symbol: "THYAO", Price: decimal.NewFromInt(120)})

	investment := s.newInvestment(models.AssetTypeStock, models.JSONBMap{
		models.DataKeyLotCount:      10.0,
		models.DataKeyPurchasePrice: 100.0,
	})
	investment.Symbol = "THYAO"

	valuation := s.service.Calculate(investment)

	s.True(valuation.TotalInvested.Equal(decimal.NewFromInt(1000)), "invested: %s", valuation.TotalInvested)
	s.True(valuation.CurrentValue.Equal(decimal.NewFromInt(1200)), "value: %s", valuation.CurrentValue)
	s.True(valuation.Gain.Equal(decimal.NewFromInt(200)))
	s.True(valuation.GainPercent.Equal(decimal.NewFromInt(20)))
	s.Equal("lot", valuation.Units)
}

func (s *ValuationServiceTestSuite) TestCalculate_StockWithoutQuoteValuedAtCost() {
	investment := s.newInvestment(models.AssetTypeStock, models.JSONBMap{
		models.DataKeyLotCount:      10.0,
		models.DataKeyPurchasePrice: 100.0,
	})
	investment.Symbol = "UNPRICED"

	valuation := s.service.Calculate(investment)

	s.True(valuation.TotalInvested.Equal(decimal.NewFromInt(1000)))
	s.True(valuation.CurrentValue.Equal(decimal.NewFromInt(1000)), "no live price means no paper gain")
	s.True(valuation.Gain.IsZero())
	s.True(valuation.GainPercent.IsZero())
}

func (s *ValuationServiceTestSuite) TestCalculate_ManualCurrentPriceBeatsQuote() {
	s.quotes.Set(models.Quote{Symbol: "THYAO", Price: decimal.NewFromInt(120)})

	investment := s.newInvestment(models.AssetTypeStock, models.JSONBMap{
		models.DataKeyLotCount:      10.0,
		models.DataKeyPurchasePrice: 100.0,
		models.DataKeyCurrentPrice:  130.0,
	})
	investment.Symbol = "THYAO"

	valuation := s.service.Calculate(investment)

	s.True(valuation.CurrentValue.Equal(decimal.NewFromInt(1300)))
}

// DCA Lot Tests

func (s *ValuationServiceTestSuite) TestCalculate_LotsOverrideSingleEntryFields() {
	investment := s.newInvestment(models.AssetTypeCrypto, models.JSONBMap{
		models.DataKeyQuantity:      1.0,
		models.DataKeyPurchasePrice: 999.0,
		models.DataKeyCurrentPrice:  180.0,
	})
	investment.Lots = []models.InvestmentLot{
		{Quantity: decimal.NewFromInt(5), PricePerUnit: decimal.NewFromInt(100)},
		{Quantity: decimal.NewFromInt(5), PricePerUnit: decimal.NewFromInt(200)},
	}

	valuation := s.service.Calculate(investment)

	s.True(valuation.TotalInvested.Equal(decimal.NewFromInt(1500)), "invested from lots: %s", valuation.TotalInvested)
	s.True(valuation.CurrentValue.Equal(decimal.NewFromInt(1800)), "10 units at the manual price of 180")
	s.Contains(valuation.ExtraInfo, "2 lots")
	s.Contains(valuation.ExtraInfo, "150.0000")
}

func (s *ValuationServiceTestSuite) TestCalculate_LotTotalAmountWins() {
	investment := s.newInvestment(models.AssetTypeFund, models.JSONBMap{
		models.DataKeyCurrentPrice: 10.0,
	})
	investment.Lots = []models.InvestmentLot{
		{Quantity: decimal.NewFromInt(100), PricePerUnit: decimal.NewFromInt(9), TotalAmount: decimal.NewFromInt(950)},
	}

	valuation := s.service.Calculate(investment)

	s.True(valuation.TotalInvested.Equal(decimal.NewFromInt(950)), "explicit lot total beats quantity times price")
	s.True(valuation.CurrentValue.Equal(decimal.NewFromInt(1000)))
}

// Gold and Forex Tests

func (s *ValuationServiceTestSuite) TestCalculate_GoldByWeight() {
	investment := s.newInvestment(models.AssetTypeGold, models.JSONBMap{
		models.DataKeyWeight:        50.0,
		models.DataKeyPurchasePrice: 60.0,
		models.DataKeyCurrentPrice:  75.0,
	})

	valuation := s.service.Calculate(investment)

	s.True(valuation.TotalInvested.Equal(decimal.NewFromInt(3000)))
	s.True(valuation.CurrentValue.Equal(decimal.NewFromInt(3750)))
	s.Equal("gram", valuation.Units)
}

func (s *ValuationServiceTestSuite) TestCalculate_ForexUsesCurrencyCodeAsUnit() {
	investment := s.newInvestment(models.AssetTypeForex, models.JSONBMap{
		models.DataKeyQuantity:      1000.0,
		models.DataKeyPurchasePrice: 32.0,
		models.DataKeyCurrentPrice:  34.0,
		models.DataKeyCurrencyCode:  "USD",
	})

	valuation := s.service.Calculate(investment)

	s.Equal("USD", valuation.Units)
	s.True(valuation.Gain.Equal(decimal.NewFromInt(2000)))
}

// Real Estate Tests

func (s *ValuationServiceTestSuite) TestCalculate_RealEstateWithAppraisal() {
	investment := s.newInvestment(models.AssetTypeRealEstate, models.JSONBMap{
		models.DataKeyPurchasePrice: 250000.0,
		models.DataKeyCurrentValue:  310000.0,
	})

	valuation := s.service.Calculate(investment)

	s.True(valuation.TotalInvested.Equal(decimal.NewFromInt(250000)))
	s.True(valuation.CurrentValue.Equal(decimal.NewFromInt(310000)))
	s.True(valuation.Gain.Equal(decimal.NewFromInt(60000)))
}

func (s *ValuationServiceTestSuite) TestCalculate_RealEstateWithoutAppraisalHasZeroGain() {
	investment := s.newInvestment(models.AssetTypeRealEstate, models.JSONBMap{
		models.DataKeyPurchasePrice: 250000.0,
	})

	valuation := s.service.Calculate(investment)

	s.True(valuation.CurrentValue.Equal(decimal.NewFromInt(250000)))
	s.True(valuation.Gain.IsZero())
}

// Term Deposit Tests

func (s *ValuationServiceTestSuite) TestCalculate_DepositSimpleInterestMidTerm() {
	// 10000 at 12% simple for a 12-month term, 6 months elapsed: 10600.
	investment := s.newInvestment(models.AssetTypeDeposit, models.JSONBMap{
		models.DataKeyPrincipal:    10000.0,
		models.DataKeyAnnualRate:   12.0,
		models.DataKeyStartDate:    "2024-01-01",
		models.DataKeyEndDate:      "2025-01-01",
		models.DataKeyInterestType: models.InterestTypeSimple,
	})

	valuation := s.service.Calculate(investment)

	s.True(valuation.TotalInvested.Equal(decimal.NewFromInt(10000)))
	s.True(valuation.CurrentValue.Equal(decimal.NewFromInt(10600)), "value: %s", valuation.CurrentValue)
	s.Contains(valuation.ExtraInfo, "6/12 months elapsed")
	s.Contains(valuation.ExtraInfo, "11200.00")
}

func (s *ValuationServiceTestSuite) TestCalculate_DepositCompoundInterest() {
	investment := s.newInvestment(models.AssetTypeDeposit, models.JSONBMap{
		models.DataKeyPrincipal:    10000.0,
		models.DataKeyAnnualRate:   12.0,
		models.DataKeyStartDate:    "2024-01-01",
		models.DataKeyEndDate:      "2025-01-01",
		models.DataKeyInterestType: models.InterestTypeCompound,
	})

	valuation := s.service.Calculate(investment)

	// 10000 at 1% per month compounded over the elapsed six months.
	expected := decimal.NewFromInt(10000).Mul(
		decimal.NewFromFloat(1.01).Pow(decimal.NewFromInt(6)))
	s.True(valuation.CurrentValue.Sub(expected).Abs().LessThan(decimal.NewFromFloat(0.01)),
		"value %s, expected about %s", valuation.CurrentValue, expected)
}

func (s *ValuationServiceTestSuite) TestCalculate_DepositMaturedClampsToTerm() {
	s.now = date(2026, time.June, 1)

	investment := s.newInvestment(models.AssetTypeDeposit, models.JSONBMap{
		models.DataKeyPrincipal:    10000.0,
		models.DataKeyAnnualRate:   12.0,
		models.DataKeyStartDate:    "2024-01-01",
		models.DataKeyEndDate:      "2025-01-01",
		models.DataKeyInterestType: models.InterestTypeSimple,
	})

	valuation := s.service.Calculate(investment)

	s.True(valuation.CurrentValue.Equal(decimal.NewFromInt(11200)), "a matured deposit accrues no further")
}

func (s *ValuationServiceTestSuite) TestCalculate_DepositBeforeStartIsPrincipal() {
	s.now = date(2023, time.June, 1)

	investment := s.newInvestment(models.AssetTypeDeposit, models.JSONBMap{
		models.DataKeyPrincipal:    10000.0,
		models.DataKeyAnnualRate:   12.0,
		models.DataKeyStartDate:    "2024-01-01",
		models.DataKeyEndDate:      "2025-01-01",
		models.DataKeyInterestType: models.InterestTypeSimple,
	})

	valuation := s.service.Calculate(investment)

	s.True(valuation.CurrentValue.Equal(decimal.NewFromInt(10000)))
}

// Robustness Tests

func (s *ValuationServiceTestSuite) TestCalculate_MalformedDataCoercesToZero() {
	investment := s.newInvestment(models.AssetTypeStock, models.JSONBMap{
		models.DataKeyLotCount:      "not a number",
		models.DataKeyPurchasePrice: nil,
	})

	valuation := s.service.Calculate(investment)

	s.True(valuation.TotalInvested.IsZero())
	s.True(valuation.CurrentValue.IsZero())
	s.True(valuation.GainPercent.IsZero())
}

func (s *ValuationServiceTestSuite) TestCalculate_NilInvestment() {
	valuation := s.service.Calculate(nil)
	s.Equal(models.Valuation{}, valuation)
}

func (s *ValuationServiceTestSuite) TestCalculate_RecomputesOnEveryCall() {
	s.quotes.Set(models.Quote{Symbol: "VOO", Price: decimal.NewFromInt(100)})

	investment := s.newInvestment(models.AssetTypeStock, models.JSONBMap{
		models.DataKeyLotCount:      5.0,
		models.DataKeyPurchasePrice: 90.0,
	})
	investment.Symbol = "VOO"

	first := s.service.Calculate(investment)
	s.True(first.CurrentValue.Equal(decimal.NewFromInt(500)))

	s.quotes.Set(models.Quote{Symbol: "VOO", Price: decimal.NewFromInt(110)})

	second := s.service.Calculate(investment)
	s.True(second.CurrentValue.Equal(decimal.NewFromInt(550)), "a price update must show up immediately")
}

// Portfolio Tests

func (s *ValuationServiceTestSuite) TestPortfolioSummary() {
	s.quotes.Set(models.Quote{Symbol: "THYAO", Price: decimal.NewFromInt(120)})

	stock := s.newInvestment(models.AssetTypeStock, models.JSONBMap{
		models.DataKeyLotCount:      10.0,
		models.DataKeyPurchasePrice: 100.0,
	})
	stock.Symbol = "THYAO"

	gold := s.newInvestment(models.AssetTypeGold, models.JSONBMap{
		models.DataKeyWeight:        10.0,
		models.DataKeyPurchasePrice: 60.0,
		models.DataKeyCurrentPrice:  70.0,
	})

	summary := s.service.PortfolioSummary([]models.Investment{*stock, *gold})

	s.Require().Len(summary.Holdings, 2)
	s.True(summary.TotalInvested.Equal(decimal.NewFromInt(1600)))
	s.True(summary.CurrentValue.Equal(decimal.NewFromInt(1900)))
	s.True(summary.TotalGain.Equal(decimal.NewFromInt(300)))
	s.Equal(s.now, summary.GeneratedAt)
}

func (s *ValuationServiceTestSuite) TestPortfolioSummary_Empty() {
	summary := s.service.PortfolioSummary(nil)

	s.Empty(summary.Holdings)
	s.True(summary.TotalInvested.IsZero())
	s.True(summary.CurrentValue.IsZero())
	s.True(summary.GainPercent.IsZero())
}

func (s *ValuationServiceTestSuite) TestPortfolioSummary_UnknownTypeDegradesToCost() {
	broken := s.newInvestment(models.AssetType("antique"), models.JSONBMap{})
	broken.Amount = decimal.NewFromInt(500)

	healthy := s.newInvestment(models.AssetTypeGold, models.JSONBMap{
		models.DataKeyWeight:        10.0,
		models.DataKeyPurchasePrice: 60.0,
	})

	summary := s.service.PortfolioSummary([]models.Investment{*broken, *healthy})

	s.Require().Len(summary.Holdings, 2)
	s.True(summary.Holdings[0].CurrentValue.Equal(decimal.NewFromInt(500)), "unknown type valued at cost")
	s.True(summary.Holdings[0].Gain.IsZero())
	s.True(summary.TotalInvested.Equal(decimal.NewFromInt(1100)))
}
