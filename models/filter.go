package models

import "github.com/shopspring/decimal"

// PriceRange is an inclusive [min, max] bound. Inverted ranges are kept as-is.
type PriceRange [2]decimal.Decimal

var (
	DefaultMinPrice = decimal.Zero
	DefaultMaxPrice = decimal.NewFromInt(1000)
)

func DefaultPriceRange() PriceRange {
	return PriceRange{DefaultMinPrice, DefaultMaxPrice}
}

func (r PriceRange) Min() decimal.Decimal { return r[0] }
func (r PriceRange) Max() decimal.Decimal { return r[1] }

func (r PriceRange) Equal(other PriceRange) bool {
	return r[0].Equal(other[0]) && r[1].Equal(other[1])
}

func (r PriceRange) IsDefault() bool {
	return r.Equal(DefaultPriceRange())
}

type FilterState struct {
	Category    string     `json:"category"`
	PriceRange  PriceRange `json:"price_range"`
	SearchQuery string     `json:"search_query"`
}

func DefaultFilterState() FilterState {
	return FilterState{
		Category:    AllCategories,
		PriceRange:  DefaultPriceRange(),
		SearchQuery: "",
	}
}

// FilterPatch carries the fields read from a query. Nil fields were absent
// or malformed and leave the target untouched.
type FilterPatch struct {
	Category    *string
	PriceRange  *PriceRange
	SearchQuery *string
}

func (p FilterPatch) IsEmpty() bool {
	return p.Category == nil && p.PriceRange == nil && p.SearchQuery == nil
}

func (p FilterPatch) Apply(base FilterState) FilterState {
	if p.Category != nil {
		base.Category = *p.Category
	}
	if p.PriceRange != nil {
		base.PriceRange = *p.PriceRange
	}
	if p.SearchQuery != nil {
		base.SearchQuery = *p.SearchQuery
	}
	return base
}
