package services

import (
	"net/url"
	"strings"

	"github.com/shopspring/decimal"

	"storefront/models"
)

const (
	QueryCategory = "category"
	QueryPrice    = "price"
	QuerySearch   = "search"

	// maxPriceLiteral bounds each side of a price range in characters.
	maxPriceLiteral = 20
)

// ParseFilterQuery reads filter fields from navigation query parameters.
// Missing, repeated, empty or malformed parameters leave their field unset.
func ParseFilterQuery(query url.Values) models.FilterPatch {
	var patch models.FilterPatch

	if category, ok := singleValue(query, QueryCategory); ok {
		patch.Category = &category
	}
	if raw, ok := singleValue(query, QueryPrice); ok {
		if r, ok := parsePriceRange(raw); ok {
			patch.PriceRange = &r
		}
	}
	if search, ok := singleValue(query, QuerySearch); ok {
		patch.SearchQuery = &search
	}
	return patch
}

// ToFilterQuery renders filters as query parameters, leaving out every
// field that holds its default value.
func ToFilterQuery(filters models.FilterState) url.Values {
	query := url.Values{}
	if filters.Category != models.AllCategories {
		query.Set(QueryCategory, filters.Category)
	}
	if !filters.PriceRange.IsDefault() {
		query.Set(QueryPrice, FormatPriceRange(filters.PriceRange))
	}
	if filters.SearchQuery != "" {
		query.Set(QuerySearch, filters.SearchQuery)
	}
	return query
}

// FilterLocation is the shareable location for filters under path.
func FilterLocation(path string, filters models.FilterState) string {
	encoded := ToFilterQuery(filters).Encode()
	if encoded == "" {
		return path
	}
	return path + "?" + encoded
}

func FormatPriceRange(r models.PriceRange) string {
	return r.Min().String() + "-" + r.Max().String()
}

func parsePriceRange(raw string) (models.PriceRange, bool) {
	minRaw, maxRaw, found := strings.Cut(raw, "-")
	if !found || minRaw == "" || maxRaw == "" {
		return models.PriceRange{}, false
	}
	if !plainDecimal(minRaw) || !plainDecimal(maxRaw) {
		return models.PriceRange{}, false
	}
	lo, err := decimal.NewFromString(minRaw)
	if err != nil {
		return models.PriceRange{}, false
	}
	hi, err := decimal.NewFromString(maxRaw)
	if err != nil {
		return models.PriceRange{}, false
	}
	return models.PriceRange{lo, hi}, true
}

func singleValue(query url.Values, key string) (string, bool) {
	values, ok := query[key]
	if !ok || len(values) != 1 || values[0] == "" {
		return "", false
	}
	return values[0], true
}

// plainDecimal accepts digits with an optional fractional part. Exponents
// are rejected: comparing against 1e99999999 allocates a number that size.
func plainDecimal(raw string) bool {
	if len(raw) > maxPriceLiteral {
		return false
	}
	intPart, fracPart, hasDot := strings.Cut(raw, ".")
	if !allDigits(intPart) {
		return false
	}
	return !hasDot || allDigits(fracPart)
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
