package services

import (
	"math/rand"
	"time"

	"homeledger/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type sampleDataGenerator struct {
	rng *rand.Rand
}

type expenseProfile struct {
	category    string
	description string
	minAmount   float64
	maxAmount   float64
	perMonth    int
}

// NewSampleDataGenerator creates a generator of realistic household data for
// development seeding and tests
func NewSampleDataGenerator() SampleDataGeneratorInterface {
	source := rand.NewSource(time.Now().UnixNano())
	return &sampleDataGenerator{
		rng: rand.New(source),
	}
}

// NewSeededSampleDataGenerator creates a deterministic generator for tests
func NewSeededSampleDataGenerator(seed int64) SampleDataGeneratorInterface {
	return &sampleDataGenerator{
		rng: rand.New(rand.NewSource(seed)),
	}
}

var expenseProfiles = []expenseProfile{
	{models.CategoryGroceries, "Weekly grocery run", 40, 180, 5},
	{models.CategoryDining, "Dinner out", 15, 90, 4},
	{models.CategoryTransport, "Fuel and transit", 20, 80, 4},
	{models.CategoryEntertainment, "Streaming and outings", 10, 60, 2},
	{models.CategoryShopping, "Household shopping", 20, 250, 2},
	{models.CategoryHealthcare, "Pharmacy", 10, 70, 1},
}

// GenerateTransactions produces a household history between start and end:
// a monthly salary template, a monthly rent template, a utilities template
// and a spread of one-off expenses.
func (g *sampleDataGenerator) GenerateTransactions(userID uuid.UUID, start, end time.Time) []*models.Transaction {
	if end.Before(start) {
		return nil
	}

	transactions := make([]*models.Transaction, 0, 64)

	salary := g.newTransaction(userID, models.TransactionTypeIncome, models.CategorySalary,
		"Monthly salary", g.amountBetween(3200, 5800), start)
	salary.Recurring = true
	salary.RecurringPeriod = models.RecurringPeriodMonthly
	transactions = append(transactions, salary)

	rent := g.newTransaction(userID, models.TransactionTypeExpense, models.CategoryHousing,
		"Rent", g.amountBetween(900, 1800), start)
	rent.Recurring = true
	rent.RecurringPeriod = models.RecurringPeriodMonthly
	transactions = append(transactions, rent)

	utilities := g.newTransaction(userID, models.TransactionTypeExpense, models.CategoryUtilities,
		"Utilities", g.amountBetween(80, 220), start.AddDate(0, 0, 5))
	utilities.Recurring = true
	utilities.RecurringPeriod = models.RecurringPeriodMonthly
	transactions = append(transactions, utilities)

	months := int(end.Sub(start).Hours()/24/30) + 1
	for m := 0; m < months; m++ {
		monthStart := start.AddDate(0, m, 0)

		for _, profile := range expenseProfiles {
			for n := 0; n < profile.perMonth; n++ {
				day := g.rng.Intn(28)
				date := monthStart.AddDate(0, 0, day)
				if date.After(end) {
					continue
				}

				transactions = append(transactions, g.newTransaction(
					userID,
					models.TransactionTypeExpense,
					profile.category,
					profile.description,
					g.amountBetween(profile.minAmount, profile.maxAmount),
					date,
				))
			}
		}

		// Occasional side income.
		if g.rng.Intn(3) == 0 {
			date := monthStart.AddDate(0, 0, g.rng.Intn(28))
			if !date.After(end) {
				transactions = append(transactions, g.newTransaction(
					userID,
					models.TransactionTypeIncome,
					models.CategoryFreelance,
					"Freelance project",
					g.amountBetween(150, 900),
					date,
				))
			}
		}
	}

	return transactions
}

// GenerateInvestments produces a mixed portfolio across asset types
func (g *sampleDataGenerator) GenerateInvestments(userID uuid.UUID, count int) []*models.Investment {
	investments := make([]*models.Investment, 0, count)

	for n := 0; n < count; n++ {
		assetType := models.AllAssetTypes[g.rng.Intn(len(models.AllAssetTypes))]
		purchaseDate := time.Now().AddDate(0, -(g.rng.Intn(24) + 1), 0)

		investment := &models.Investment{
			ID:           uuid.New().String(),
			UserID:       userID,
			Type:         assetType,
			Name:         sampleHoldingName(assetType),
			PurchaseDate: purchaseDate,
			Data:         models.JSONBMap{},
		}

		switch assetType {
		case models.AssetTypeRealEstate:
			price := g.amountBetween(80000, 450000)
			investment.Amount = price
			investment.Data[models.DataKeyPurchasePrice] = price.InexactFloat64()
		case models.AssetTypeDeposit:
			principal := g.amountBetween(5000, 50000)
			investment.Amount = principal
			investment.Data[models.DataKeyPrincipal] = principal.InexactFloat64()
			investment.Data[models.DataKeyAnnualRate] = float64(g.rng.Intn(30) + 5)
			investment.Data[models.DataKeyStartDate] = purchaseDate.Format(models.DateFormat)
			investment.Data[models.DataKeyEndDate] = purchaseDate.AddDate(1, 0, 0).Format(models.DateFormat)
			investment.Data[models.DataKeyInterestType] = models.InterestTypeSimple
		case models.AssetTypeGold:
			weight := float64(g.rng.Intn(200) + 10)
			price := g.amountBetween(50, 90)
			investment.Amount = price.Mul(decimal.NewFromFloat(weight))
			investment.Data[models.DataKeyWeight] = weight
			investment.Data[models.DataKeyPurchasePrice] = price.InexactFloat64()
		case models.AssetTypeStock:
			lots := float64(g.rng.Intn(50) + 1)
			price := g.amountBetween(20, 400)
			investment.Amount = price.Mul(decimal.NewFromFloat(lots))
			investment.Symbol = sampleStockSymbols[g.rng.Intn(len(sampleStockSymbols))]
			investment.Data[models.DataKeyLotCount] = lots
			investment.Data[models.DataKeyPurchasePrice] = price.InexactFloat64()
		default:
			quantity := float64(g.rng.Intn(100) + 1)
			price := g.amountBetween(5, 500)
			investment.Amount = price.Mul(decimal.NewFromFloat(quantity))
			investment.Data[models.DataKeyQuantity] = quantity
			investment.Data[models.DataKeyPurchasePrice] = price.InexactFloat64()
		}

		investments = append(investments, investment)
	}

	return investments
}

// GenerateGoals produces savings goals with partial progress
func (g *sampleDataGenerator) GenerateGoals(userID uuid.UUID, count int) []*models.Goal {
	titles := []string{"Emergency fund", "Vacation", "New car", "Home down payment", "Education fund"}

	goals := make([]*models.Goal, 0, count)
	for n := 0; n < count; n++ {
		target := g.amountBetween(1000, 40000)
		progress := target.Mul(decimal.NewFromFloat(g.rng.Float64() * 0.8)).Round(2)

		goals = append(goals, &models.Goal{
			ID:            uuid.New(),
			UserID:        userID,
			Title:         titles[n%len(titles)],
			TargetAmount:  target,
			CurrentAmount: progress,
			TargetDate:    time.Now().AddDate(0, g.rng.Intn(36)+3, 0),
			Category:      models.CategoryOther,
		})
	}

	return goals
}

func (g *sampleDataGenerator) newTransaction(userID uuid.UUID, txnType, category, description string, amount decimal.Decimal, date time.Time) *models.Transaction {
	return &models.Transaction{
		ID:          uuid.New().String(),
		UserID:      userID,
		Type:        txnType,
		Amount:      amount,
		Category:    category,
		Description: description,
		Date:        date,
	}
}

func (g *sampleDataGenerator) amountBetween(min, max float64) decimal.Decimal {
	value := min + g.rng.Float64()*(max-min)
	return decimal.NewFromFloat(value).Round(2)
}

var sampleStockSymbols = []string{"VOO", "VTI", "AAPL", "MSFT", "ASML", "SAP"}

func sampleHoldingName(assetType models.AssetType) string {
	switch assetType {
	case models.AssetTypeStock:
		return "Index fund position"
	case models.AssetTypeCrypto:
		return "Crypto position"
	case models.AssetTypeGold:
		return "Gold bars"
	case models.AssetTypeFund:
		return "Mutual fund"
	case models.AssetTypeBond:
		return "Government bond"
	case models.AssetTypeRealEstate:
		return "Rental apartment"
	case models.AssetTypeCommodity:
		return "Commodity position"
	case models.AssetTypeForex:
		return "Foreign currency"
	case models.AssetTypeDeposit:
		return "Term deposit"
	default:
		return "Holding"
	}
}
