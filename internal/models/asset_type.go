package models

// AssetType identifies the valuation formula applied to an investment. The
// set is closed: the valuation engine dispatches on it exhaustively, so a new
// asset class is a compile-time decision rather than a stringly-typed lookup.
type AssetType string

const (
	AssetTypeStock      AssetType = "stock"
	AssetTypeCrypto     AssetType = "crypto"
	AssetTypeGold       AssetType = "gold"
	AssetTypeFund       AssetType = "fund"
	AssetTypeBond       AssetType = "bond"
	AssetTypeRealEstate AssetType = "real_estate"
	AssetTypeCommodity  AssetType = "commodity"
	AssetTypeForex      AssetType = "forex"
	AssetTypeDeposit    AssetType = "deposit"
)

// AllAssetTypes lists every supported asset type
var AllAssetTypes = []AssetType{
	AssetTypeStock,
	AssetTypeCrypto,
	AssetTypeGold,
	AssetTypeFund,
	AssetTypeBond,
	AssetTypeRealEstate,
	AssetTypeCommodity,
	AssetTypeForex,
	AssetTypeDeposit,
}

// IsValid checks if the asset type is one of the supported types
func (a AssetType) IsValid() bool {
	switch a {
	case AssetTypeStock, AssetTypeCrypto, AssetTypeGold, AssetTypeFund,
		AssetTypeBond, AssetTypeRealEstate, AssetTypeCommodity,
		AssetTypeForex, AssetTypeDeposit:
		return true
	default:
		return false
	}
}

// UnitLabel returns the unit in which positions of this type are counted
func (a AssetType) UnitLabel() string {
	switch a {
	case AssetTypeStock:
		return "lot"
	case AssetTypeCrypto:
		return "unit"
	case AssetTypeGold:
		return "gram"
	case AssetTypeFund:
		return "share"
	case AssetTypeBond:
		return "nominal"
	case AssetTypeRealEstate:
		return "property"
	case AssetTypeCommodity:
		return "unit"
	case AssetTypeForex:
		return "unit"
	case AssetTypeDeposit:
		return "deposit"
	default:
		return "unit"
	}
}
