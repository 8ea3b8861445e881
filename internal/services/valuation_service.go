package services

import (
	"fmt"
	"log/slog"
	"math"
	"time"

	"homeledger/internal/market"
	"homeledger/internal/models"

	"github.com/shopspring/decimal"
)

// averageDaysPerMonth converts day counts into deposit term months
const averageDaysPerMonth = 30.44

type valuationService struct {
	prices  market.PriceLookup
	metrics MetricsRecorderInterface
	now     func() time.Time
}

// NewValuationService creates a new ValuationServiceInterface instance
func NewValuationService(prices market.PriceLookup, metrics MetricsRecorderInterface) ValuationServiceInterface {
	return &valuationService{
		prices:  prices,
		metrics: metrics,
		now:     time.Now,
	}
}

// Calculate marks a single investment to market. The formula is selected by
// asset type; every numeric input coerces to zero when malformed, and a
// position with no resolvable current price is valued at cost (zero gain).
// Current value is always recomputed from the price lookup on each call:
// caching it would silently freeze gain tracking across price updates.
func (s *valuationService) Calculate(investment *models.Investment) models.Valuation {
	if investment == nil {
		return models.Valuation{}
	}

	valuation := models.Valuation{
		InvestmentID: investment.ID,
		Type:         investment.Type,
		Units:        investment.Type.UnitLabel(),
	}

	switch investment.Type {
	case models.AssetTypeStock:
		s.valueUnitPosition(investment, investment.Data.DecimalField(models.DataKeyLotCount), &valuation)
	case models.AssetTypeGold:
		s.valueUnitPosition(investment, investment.Data.DecimalField(models.DataKeyWeight), &valuation)
	case models.AssetTypeCrypto, models.AssetTypeFund, models.AssetTypeBond, models.AssetTypeCommodity:
		s.valueUnitPosition(investment, investment.Data.DecimalField(models.DataKeyQuantity), &valuation)
	case models.AssetTypeForex:
		s.valueUnitPosition(investment, investment.Data.DecimalField(models.DataKeyQuantity), &valuation)
		if code := investment.Data.StringField(models.DataKeyCurrencyCode); code != "" {
			valuation.Units = code
		}
	case models.AssetTypeRealEstate:
		s.valueRealEstate(investment, &valuation)
	case models.AssetTypeDeposit:
		s.valueTermDeposit(investment, &valuation)
	default:
		// Unknown type: value at cost so the rest of the portfolio
		// aggregation proceeds unaffected.
		valuation.TotalInvested = investment.Amount
		valuation.CurrentValue = investment.Amount
		valuation.ExtraInfo = "unsupported asset type, valued at cost"
	}

	valuation.Gain = valuation.CurrentValue.Sub(valuation.TotalInvested)
	valuation.GainPercent = gainPercent(valuation.Gain, valuation.TotalInvested)

	if s.metrics != nil {
		s.metrics.IncrementCounter("valuations_calculated", map[string]string{"asset_type": string(investment.Type)})
	}

	return valuation
}

// PortfolioSummary values every holding and sums the results. A failure in
// one holding degrades that holding to cost instead of aborting the batch.
func (s *valuationService) PortfolioSummary(investments []models.Investment) models.PortfolioSummary {
	summary := models.PortfolioSummary{
		TotalInvested: decimal.Zero,
		CurrentValue:  decimal.Zero,
		Holdings:      make([]models.Valuation, 0, len(investments)),
		GeneratedAt:   s.now(),
	}

	for i := range investments {
		valuation := s.safeCalculate(&investments[i])
		summary.Holdings = append(summary.Holdings, valuation)
		summary.TotalInvested = summary.TotalInvested.Add(valuation.TotalInvested)
		summary.CurrentValue = summary.CurrentValue.Add(valuation.CurrentValue)
	}

	summary.TotalGain = summary.CurrentValue.Sub(summary.TotalInvested)
	summary.GainPercent = gainPercent(summary.TotalGain, summary.TotalInvested)

	return summary
}

// safeCalculate isolates a panicking valuation to the offending holding
func (s *valuationService) safeCalculate(investment *models.Investment) (valuation models.Valuation) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("valuation failed, holding valued at cost",
				"investment_id", investment.ID,
				"asset_type", investment.Type,
				"panic", fmt.Sprintf("%v", r))

			valuation = models.Valuation{
				InvestmentID:  investment.ID,
				Type:          investment.Type,
				Units:         investment.Type.UnitLabel(),
				TotalInvested: investment.Amount,
				CurrentValue:  investment.Amount,
				Gain:          decimal.Zero,
				GainPercent:   decimal.Zero,
				ExtraInfo:     "valuation failed, valued at cost",
			}
		}
	}()

	return s.Calculate(investment)
}

// valueUnitPosition covers every quantity×price asset class. A DCA position
// derives quantity, invested total and average cost from its lot list; the
// single-entry fields apply otherwise.
func (s *valuationService) valueUnitPosition(investment *models.Investment, quantity decimal.Decimal, valuation *models.Valuation) {
	purchasePrice := investment.Data.DecimalField(models.DataKeyPurchasePrice)

	if investment.HasLots() {
		lotQuantity, lotInvested := investment.LotTotals()
		quantity = lotQuantity
		valuation.TotalInvested = lotInvested
		purchasePrice = investment.AverageCost()
		valuation.ExtraInfo = fmt.Sprintf("%d lots, average cost %s", len(investment.Lots), purchasePrice.StringFixed(4))
	} else {
		valuation.TotalInvested = quantity.Mul(purchasePrice)
	}

	currentPrice, live := s.resolvePrice(investment, purchasePrice)
	valuation.CurrentValue = quantity.Mul(currentPrice)
	if !live {
		// No current price available: position is valued at cost.
		valuation.CurrentValue = valuation.TotalInvested
	}
}

// valueRealEstate values a single-unit asset: current appraisal when entered,
// purchase price otherwise
func (s *valuationService) valueRealEstate(investment *models.Investment, valuation *models.Valuation) {
	purchasePrice := investment.Data.DecimalField(models.DataKeyPurchasePrice)
	if !purchasePrice.IsPositive() {
		purchasePrice = investment.Amount
	}

	valuation.TotalInvested = purchasePrice
	valuation.CurrentValue = purchasePrice

	if currentValue := investment.Data.DecimalField(models.DataKeyCurrentValue); currentValue.IsPositive() {
		valuation.CurrentValue = currentValue
	}
}

// valueTermDeposit accrues simple or monthly-compound interest. Term and
// elapsed months are derived from day counts at 30.44 days per month, with
// elapsed clamped between zero (before start) and the full term (matured).
func (s *valuationService) valueTermDeposit(investment *models.Investment, valuation *models.Valuation) {
	principal := investment.Data.DecimalField(models.DataKeyPrincipal)
	if !principal.IsPositive() {
		principal = investment.Amount
	}

	rate := investment.Data.DecimalField(models.DataKeyAnnualRate)

	start := investment.Data.TimeField(models.DataKeyStartDate)
	if start.IsZero() {
		start = investment.PurchaseDate
	}
	end := investment.Data.TimeField(models.DataKeyEndDate)

	termMonths := 0
	if end.After(start) {
		termMonths = int(math.Round(end.Sub(start).Hours() / 24 / averageDaysPerMonth))
	}

	elapsedMonths := 0
	if now := s.now(); now.After(start) {
		elapsedMonths = int(math.Floor(now.Sub(start).Hours() / 24 / averageDaysPerMonth))
	}
	if elapsedMonths > termMonths {
		elapsedMonths = termMonths
	}
	if elapsedMonths < 0 {
		elapsedMonths = 0
	}

	valuation.TotalInvested = principal
	valuation.CurrentValue = depositValue(principal, rate, elapsedMonths, investment.Data.StringField(models.DataKeyInterestType))

	maturityValue := depositValue(principal, rate, termMonths, investment.Data.StringField(models.DataKeyInterestType))
	valuation.ExtraInfo = fmt.Sprintf("%d/%d months elapsed, maturity value %s",
		elapsedMonths, termMonths, maturityValue.StringFixed(2))
}

// depositValue evaluates the accrual formula after the given number of months
func depositValue(principal, annualRate decimal.Decimal, months int, interestType string) decimal.Decimal {
	if months <= 0 {
		return principal
	}

	twelveHundred := decimal.NewFromInt(1200)

	if interestType == models.InterestTypeCompound {
		monthlyRate := annualRate.Div(twelveHundred)
		factor := decimal.NewFromInt(1).Add(monthlyRate).Pow(decimal.NewFromInt(int64(months)))
		return principal.Mul(factor)
	}

	monthlyInterest := principal.Mul(annualRate).Div(twelveHundred)
	return principal.Add(monthlyInterest.Mul(decimal.NewFromInt(int64(months))))
}

// resolvePrice picks the current unit price: a manually entered current price
// wins, then a live quote, then the purchase price. The boolean is false on
// the purchase-price fallback, which forces the position's gain to zero.
func (s *valuationService) resolvePrice(investment *models.Investment, purchasePrice decimal.Decimal) (decimal.Decimal, bool) {
	if manual := investment.Data.DecimalField(models.DataKeyCurrentPrice); manual.IsPositive() {
		return manual, true
	}

	if s.prices != nil && investment.Symbol != "" {
		if quote, ok := s.prices.Quote(investment.Symbol); ok {
			return quote.Price, true
		}
	}

	return purchasePrice, false
}

func gainPercent(gain, invested decimal.Decimal) decimal.Decimal {
	if !invested.IsPositive() {
		return decimal.Zero
	}
	return gain.Div(invested).Mul(hundred)
}
