package models

import (
	"encoding/json"
	"errors"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Data keys recognised by the valuation engine. Which keys apply depends on
// the asset type; missing or malformed values coerce to zero.
const (
	DataKeyLotCount      = "lot_count"
	DataKeyQuantity      = "quantity"
	DataKeyWeight        = "weight"
	DataKeyPurchasePrice = "purchase_price"
	DataKeyCurrentPrice  = "current_price"
	DataKeyCurrentValue  = "current_value"
	DataKeyCurrencyCode  = "currency_code"
	DataKeyPrincipal     = "principal"
	DataKeyAnnualRate    = "annual_rate"
	DataKeyStartDate     = "start_date"
	DataKeyEndDate       = "end_date"
	DataKeyInterestType  = "interest_type"
)

const (
	InterestTypeSimple   = "simple"
	InterestTypeCompound = "compound"
)

var (
	ErrInvalidAssetType = errors.New("invalid asset type")
)

// Investment represents a single portfolio holding. Amount is the nominal
// invested sum; type-specific inputs (lot counts, unit prices, deposit terms)
// live in Data. A holding built up over multiple purchases carries Lots, and
// the lot list then takes precedence over the single-entry fields.
type Investment struct {
	ID           string          `gorm:"type:varchar(64);primary_key" json:"id"`
	UserID       uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	Type         AssetType       `gorm:"type:varchar(20);not null" json:"type"`
	Name         string          `gorm:"type:varchar(120);not null" json:"name"`
	Symbol       string          `gorm:"type:varchar(20);index" json:"symbol,omitempty"`
	Amount       decimal.Decimal `gorm:"type:decimal(18,4);not null" json:"amount"`
	PurchaseDate time.Time       `gorm:"not null" json:"purchase_date"`
	Data         JSONBMap        `gorm:"type:jsonb" json:"data,omitempty"`
	CreatedAt    time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt    time.Time       `gorm:"not null" json:"updated_at"`

	Lots []InvestmentLot `gorm:"foreignKey:InvestmentID" json:"lots,omitempty"`
}

// InvestmentLot is a single purchase within a DCA position
type InvestmentLot struct {
	ID           uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	InvestmentID string          `gorm:"type:varchar(64);not null;index" json:"investment_id"`
	Quantity     decimal.Decimal `gorm:"type:decimal(18,8);not null" json:"quantity"`
	PricePerUnit decimal.Decimal `gorm:"type:decimal(18,4);not null" json:"price_per_unit"`
	TotalAmount  decimal.Decimal `gorm:"type:decimal(18,4);not null" json:"total_amount"`
	Date         time.Time       `gorm:"not null" json:"date"`
	CreatedAt    time.Time       `gorm:"not null" json:"created_at"`
}

// BeforeCreate hook for Investment
func (i *Investment) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.New().String()
	}

	now := time.Now()
	if i.CreatedAt.IsZero() {
		i.CreatedAt = now
	}
	if i.UpdatedAt.IsZero() {
		i.UpdatedAt = now
	}

	return i.Validate()
}

// BeforeUpdate hook for Investment
func (i *Investment) BeforeUpdate(tx *gorm.DB) error {
	i.UpdatedAt = time.Now()
	return i.Validate()
}

// BeforeCreate hook for InvestmentLot
func (l *InvestmentLot) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	if l.CreatedAt.IsZero() {
		l.CreatedAt = time.Now()
	}
	return nil
}

// Validate validates the investment fields
func (i *Investment) Validate() error {
	if i.UserID == uuid.Nil {
		return errors.New("user ID is required")
	}

	if !i.Type.IsValid() {
		return ErrInvalidAssetType
	}

	if i.Name == "" {
		return errors.New("investment name is required")
	}

	if i.Amount.IsNegative() {
		return errors.New("invested amount must not be negative")
	}

	return nil
}

// HasLots reports whether this is a DCA position with an explicit lot list
func (i *Investment) HasLots() bool {
	return len(i.Lots) > 0
}

// LotTotals derives total quantity and total invested from the lot list. A
// lot's TotalAmount wins over quantity×price when both are present.
func (i *Investment) LotTotals() (quantity, invested decimal.Decimal) {
	for _, lot := range i.Lots {
		quantity = quantity.Add(lot.Quantity)
		if lot.TotalAmount.IsPositive() {
			invested = invested.Add(lot.TotalAmount)
		} else {
			invested = invested.Add(lot.Quantity.Mul(lot.PricePerUnit))
		}
	}
	return quantity, invested
}

// AverageCost is the quantity-weighted average purchase price of a DCA
// position, zero when there is no quantity.
func (i *Investment) AverageCost() decimal.Decimal {
	quantity, invested := i.LotTotals()
	if !quantity.IsPositive() {
		return decimal.Zero
	}
	return invested.Div(quantity)
}

// TableName returns the table name for Investment
func (i *Investment) TableName() string {
	return "investments"
}

// TableName returns the table name for InvestmentLot
func (l *InvestmentLot) TableName() string {
	return "investment_lots"
}

// DecimalField coerces a Data value to a decimal. Missing keys, NaN, infinite
// floats and unparseable strings all coerce to zero rather than erroring, so
// one malformed record cannot take down a portfolio aggregation.
func (m JSONBMap) DecimalField(key string) decimal.Decimal {
	if m == nil {
		return decimal.Zero
	}

	switch v := m[key].(type) {
	case decimal.Decimal:
		return v
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return decimal.Zero
		}
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int64:
		return decimal.NewFromInt(v)
	case json.Number:
		d, err := decimal.NewFromString(v.String())
		if err != nil {
			return decimal.Zero
		}
		return d
	case string:
		d, err := decimal.NewFromString(strings.TrimSpace(v))
		if err != nil {
			return decimal.Zero
		}
		return d
	default:
		return decimal.Zero
	}
}

// StringField coerces a Data value to a string, empty when absent
func (m JSONBMap) StringField(key string) string {
	if m == nil {
		return ""
	}
	if s, ok := m[key].(string); ok {
		return s
	}
	return ""
}

// TimeField coerces a Data value to a time. Accepts time.Time values and
// ISO dates or RFC3339 strings; anything else is the zero time.
func (m JSONBMap) TimeField(key string) time.Time {
	if m == nil {
		return time.Time{}
	}

	switch v := m[key].(type) {
	case time.Time:
		return v
	case string:
		if t, err := time.Parse(time.RFC3339, v); err == nil {
			return t
		}
		if t, err := time.Parse(DateFormat, v); err == nil {
			return t
		}
		return time.Time{}
	default:
		return time.Time{}
	}
}
