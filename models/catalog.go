package models

import (
	"reflect"

	"github.com/go-faster/errors"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrDuplicateProduct = errors.New("duplicate product id")
	ErrInvalidProduct   = errors.New("invalid product")
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
	return v
}

// Catalog is the read-only, ordered product list supplied at startup.
type Catalog struct {
	version  string
	products []Product
	index    map[string]int
}

func NewCatalog(products []Product) (*Catalog, error) {
	c := &Catalog{
		version:  uuid.NewString(),
		products: make([]Product, 0, len(products)),
		index:    make(map[string]int, len(products)),
	}
	for _, p := range products {
		if err := validate.Struct(p); err != nil {
			return nil, errors.Wrapf(ErrInvalidProduct, "product %q: %v", p.ID, err)
		}
		if _, exists := c.index[p.ID]; exists {
			return nil, errors.Wrapf(ErrDuplicateProduct, "product %q", p.ID)
		}
		c.index[p.ID] = len(c.products)
		c.products = append(c.products, p.Clone())
	}
	return c, nil
}

// Version identifies this catalog instance; it changes on every load.
func (c *Catalog) Version() string { return c.version }

func (c *Catalog) Len() int { return len(c.products) }

func (c *Catalog) Products() []Product {
	out := make([]Product, len(c.products))
	for i, p := range c.products {
		out[i] = p.Clone()
	}
	return out
}

func (c *Catalog) Find(id string) (Product, bool) {
	i, ok := c.index[id]
	if !ok {
		return Product{}, false
	}
	return c.products[i].Clone(), true
}

// Categories lists distinct categories in order of first appearance.
func (c *Catalog) Categories() []string {
	seen := make(map[string]struct{})
	out := []string{}
	for _, p := range c.products {
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		out = append(out, p.Category)
	}
	return out
}
