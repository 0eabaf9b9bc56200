package models

import (
	"math"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID          string          `json:"id" validate:"required"`
	Title       string          `json:"title" validate:"required"`
	Price       decimal.Decimal `json:"price" validate:"gte=0"`
	Image       string          `json:"image"`
	Category    string          `json:"category" validate:"required"`
	Description string          `json:"description"`
	Rating      *float64        `json:"rating,omitempty" validate:"omitempty,gte=0,lte=5"`
}

// Clone returns a copy that shares no memory with p.
func (p Product) Clone() Product {
	if p.Rating != nil {
		rating := *p.Rating
		p.Rating = &rating
	}
	return p
}

// StarRating is the five-star breakdown of a rating, as shown on the
// product page.
type StarRating struct {
	Full  int `json:"full"`
	Half  int `json:"half"`
	Empty int `json:"empty"`
}

// Stars returns nil for products without a rating or with a zero rating.
func (p Product) Stars() *StarRating {
	if p.Rating == nil || *p.Rating == 0 {
		return nil
	}
	r := *p.Rating
	stars := &StarRating{Full: int(math.Floor(r)), Empty: 5 - int(math.Ceil(r))}
	if math.Mod(r, 1) != 0 {
		stars.Half = 1
	}
	return stars
}

type ProductDetail struct {
	Product
	Stars        *StarRating `json:"stars,omitempty"`
	CartQuantity int         `json:"cart_quantity"`
}
