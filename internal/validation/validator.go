package validation

import (
	"reflect"
	"regexp"
	"strings"

	"homeledger/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

// singleton instance of the validator
var instance *Validator

// GetValidator returns the singleton validator instance
func GetValidator() *Validator {
	if instance == nil {
		instance = NewValidator()
	}
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("transaction_type", validateTransactionType)
	_ = v.RegisterValidation("recurring_period", validateRecurringPeriod)
	_ = v.RegisterValidation("asset_type", validateAssetType)
	_ = v.RegisterValidation("positive_amount", validatePositiveAmount)
	_ = v.RegisterValidation("user_id", validateUserID)
	_ = v.RegisterValidation("iso_date", validateISODate)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// Custom validation functions

// validateTransactionType validates that transaction type is income or expense
func validateTransactionType(fl validator.FieldLevel) bool {
	return models.IsValidTransactionType(strings.ToLower(fl.Field().String()))
}

// validateRecurringPeriod validates that a recurring period is one of the allowed values
func validateRecurringPeriod(fl validator.FieldLevel) bool {
	period := strings.ToUpper(fl.Field().String())
	if period == "" {
		return true
	}
	return models.IsValidRecurringPeriod(period)
}

// validateAssetType validates that an asset type is one of the allowed types
func validateAssetType(fl validator.FieldLevel) bool {
	return models.AssetType(strings.ToLower(fl.Field().String())).IsValid()
}

// validatePositiveAmount validates that an amount is greater than 0
func validatePositiveAmount(fl validator.FieldLevel) bool {
	if d, ok := fl.Field().Interface().(decimal.Decimal); ok {
		return d.IsPositive()
	}
	switch fl.Field().Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return fl.Field().Int() > 0
	case reflect.Float32, reflect.Float64:
		return fl.Field().Float() > 0
	default:
		return false
	}
}

// validateUserID validates that a user ID is a valid UUID
func validateUserID(fl validator.FieldLevel) bool {
	userID := fl.Field().String()
	if userID == "" {
		return false
	}

	// UUID v4 format validation
	matched, _ := regexp.MatchString(`^[0-9a-f]{8}-[0-9a-f]{4}-4[0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$`, userID)
	return matched
}

// validateISODate validates that a date string is in YYYY-MM-DD format
func validateISODate(fl validator.FieldLevel) bool {
	date := fl.Field().String()
	if date == "" {
		return true
	}

	matched, _ := regexp.MatchString(`^\d{4}-\d{2}-\d{2}$`, date)
	return matched
}
