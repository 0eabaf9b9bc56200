package models

import "github.com/shopspring/decimal"

type CartItem struct {
	Product
	Quantity int `json:"quantity"`
}

func (i CartItem) Subtotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// CartSnapshot is a point-in-time copy of the cart with its derived totals.
// Version increases by one on every mutating store call.
type CartSnapshot struct {
	Items      []CartItem      `json:"items"`
	TotalItems int             `json:"total_items"`
	TotalPrice decimal.Decimal `json:"total_price"`
	Version    uint64          `json:"version"`
}

type CartSummary struct {
	TotalItems int             `json:"total_items"`
	TotalPrice decimal.Decimal `json:"total_price"`
}
