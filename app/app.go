package app

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/go-faster/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"storefront/config"
	_ "storefront/docs"
	"storefront/libs"
	"storefront/middleware"
	"storefront/models"
	"storefront/repositories"
	"storefront/routes"
	"storefront/services"
)

// App holds the storefront's long-lived components. Build it once at
// startup and Close it on shutdown.
type App struct {
	Config   *config.Config
	Logger   *zap.Logger
	Catalog  *models.Catalog
	Products *services.ProductService
	Cart     *services.CartStore
	Router   *gin.Engine

	redis     *redis.Client
	publisher *libs.CartEventPublisher
	closers   []func()
}

func New(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*App, error) {
	a := &App{Config: cfg, Logger: logger}

	catalog, err := LoadCatalog(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}
	a.Catalog = catalog
	logger.Info("catalog loaded",
		zap.String("source", cfg.CatalogSource),
		zap.Int("products", catalog.Len()),
		zap.String("version", catalog.Version()),
	)

	var cache services.ListingCache
	if a.redis = config.ConnectRedis(ctx, cfg, logger); a.redis != nil {
		cache = libs.NewRedisListingCache(a.redis, cfg.CacheTTL, logger)
	}
	a.Products = services.NewProductService(catalog, cache, logger)

	a.Cart = services.NewCartStore(logger)
	if len(cfg.KafkaBrokers) > 0 {
		writer := libs.NewKafkaWriter(cfg.KafkaBrokers, cfg.KafkaCartTopic)
		a.publisher = libs.NewCartEventPublisher(writer, logger)
		a.closers = append(a.closers, a.Cart.Subscribe(a.publisher.Listen))
		logger.Info("publishing cart events", zap.Strings("brokers", cfg.KafkaBrokers), zap.String("topic", cfg.KafkaCartTopic))
	}

	a.Router = NewRouter(cfg, logger, a.Products, a.Cart)
	return a, nil
}

// NewRouter wires middleware and routes over already-built services.
func NewRouter(cfg *config.Config, logger *zap.Logger, products *services.ProductService, cart *services.CartStore) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.CORSMiddleware(cfg.OriginURL))
	routes.SetupRoutes(router, products, cart)
	return router
}

// LoadCatalog reads the configured catalog source once. The catalog is
// immutable afterwards, so any database connection is released before return.
func LoadCatalog(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*models.Catalog, error) {
	var source repositories.CatalogSource
	switch cfg.CatalogSource {
	case config.CatalogSourceFixture:
		source = repositories.NewFixtureRepository()
	case config.CatalogSourcePostgres:
		if cfg.DBMigrate {
			if err := config.RunMigrations(cfg, logger); err != nil {
				return nil, err
			}
		}
		db, err := config.ConnectDB(ctx, cfg, logger)
		if err != nil {
			return nil, err
		}
		defer db.Close()
		source = repositories.NewProductRepository(db)
	default:
		return nil, errors.Errorf("unknown catalog source %q", cfg.CatalogSource)
	}

	products, err := source.LoadProducts(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "load catalog")
	}
	return models.NewCatalog(products)
}

func (a *App) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
	a.closers = nil
	if a.publisher != nil {
		if err := a.publisher.Close(); err != nil {
			a.Logger.Warn("close cart event publisher", zap.Error(err))
		}
		a.publisher = nil
	}
	if a.redis != nil {
		_ = a.redis.Close()
		a.redis = nil
	}
}
