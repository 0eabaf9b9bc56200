package repositories

import (
	"context"

	"github.com/go-faster/errors"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"storefront/models"
)

// CatalogSource supplies the product list once at startup.
type CatalogSource interface {
	LoadProducts(ctx context.Context) ([]models.Product, error)
}

type ProductRepository struct {
	db *pgxpool.Pool
}

func NewProductRepository(db *pgxpool.Pool) *ProductRepository {
	return &ProductRepository{db: db}
}

func (r *ProductRepository) LoadProducts(ctx context.Context) ([]models.Product, error) {
	query := `SELECT id, title, price::text, COALESCE(image, ''), category, COALESCE(description, ''), rating::float8
	          FROM products ORDER BY position, id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, errors.Wrap(err, "query products")
	}
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() {
		var (
			p     models.Product
			price string
		)
		if err := rows.Scan(&p.ID, &p.Title, &price, &p.Image, &p.Category, &p.Description, &p.Rating); err != nil {
			return nil, errors.Wrap(err, "scan product")
		}
		p.Price, err = decimal.NewFromString(price)
		if err != nil {
			return nil, errors.Wrapf(err, "product %q price", p.ID)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "iterate products")
	}
	return products, nil
}
