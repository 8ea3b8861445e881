package models

// Expense and income categories used by the tracker. The set is advisory:
// free-form categories are accepted, these constants back the defaults
// offered by clients and the sample data generator.
const (
	CategorySalary        = "SALARY"
	CategoryFreelance     = "FREELANCE"
	CategoryInterest      = "INTEREST"
	CategoryRental        = "RENTAL"
	CategoryOtherIncome   = "OTHER_INCOME"
	CategoryHousing       = "HOUSING"
	CategoryGroceries     = "GROCERIES"
	CategoryDining        = "DINING"
	CategoryTransport     = "TRANSPORT"
	CategoryUtilities     = "UTILITIES"
	CategoryHealthcare    = "HEALTHCARE"
	CategoryEducation     = "EDUCATION"
	CategoryEntertainment = "ENTERTAINMENT"
	CategoryShopping      = "SHOPPING"
	CategoryInsurance     = "INSURANCE"
	CategoryTravel        = "TRAVEL"
	CategoryOther         = "OTHER"
)

// DefaultIncomeCategories lists the built-in income categories
var DefaultIncomeCategories = []string{
	CategorySalary,
	CategoryFreelance,
	CategoryInterest,
	CategoryRental,
	CategoryOtherIncome,
}

// DefaultExpenseCategories lists the built-in expense categories
var DefaultExpenseCategories = []string{
	CategoryHousing,
	CategoryGroceries,
	CategoryDining,
	CategoryTransport,
	CategoryUtilities,
	CategoryHealthcare,
	CategoryEducation,
	CategoryEntertainment,
	CategoryShopping,
	CategoryInsurance,
	CategoryTravel,
	CategoryOther,
}
