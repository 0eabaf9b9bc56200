package services

import (
	"context"
	"encoding/json"

	"github.com/go-faster/errors"
	"go.uber.org/zap"

	"storefront/models"
)

var ErrProductNotFound = errors.New("product not found")

// ListingCache memoizes encoded product listings. Implementations report
// failures as misses; the catalog is always the source of truth.
type ListingCache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte)
}

type ProductService struct {
	catalog *models.Catalog
	cache   ListingCache
	logger  *zap.Logger
}

// NewProductService builds the read side over catalog. cache may be nil.
func NewProductService(catalog *models.Catalog, cache ListingCache, logger *zap.Logger) *ProductService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ProductService{
		catalog: catalog,
		cache:   cache,
		logger:  logger.Named("products"),
	}
}

func (s *ProductService) Catalog() *models.Catalog {
	return s.catalog
}

func (s *ProductService) ListProducts(ctx context.Context, filters models.FilterState) ([]models.Product, error) {
	if s.cache == nil {
		return FilterProducts(s.catalog.Products(), filters), nil
	}

	key := s.listingCacheKey(filters)
	if cached, ok := s.cache.Get(ctx, key); ok {
		var products []models.Product
		if err := json.Unmarshal(cached, &products); err == nil {
			return products, nil
		}
		s.logger.Warn("discarding undecodable cached listing", zap.String("key", key))
	}

	products := FilterProducts(s.catalog.Products(), filters)
	encoded, err := json.Marshal(products)
	if err != nil {
		return nil, errors.Wrap(err, "encode listing")
	}
	s.cache.Set(ctx, key, encoded)
	return products, nil
}

func (s *ProductService) GetProduct(id string) (models.Product, error) {
	p, ok := s.catalog.Find(id)
	if !ok {
		return models.Product{}, errors.Wrapf(ErrProductNotFound, "id %q", id)
	}
	return p, nil
}

// Categories lists the category filter choices, starting with "All".
func (s *ProductService) Categories() []string {
	return append([]string{models.AllCategories}, s.catalog.Categories()...)
}

// listingCacheKey derives the key from the canonical query so equal filter
// states share one entry. The catalog version keeps reloaded catalogs apart.
func (s *ProductService) listingCacheKey(filters models.FilterState) string {
	return "storefront:products:" + s.catalog.Version() + ":" + ToFilterQuery(filters).Encode()
}
