package api

import (
	"context"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"storefront/app"
	"storefront/config"
)

var (
	router  http.Handler
	initErr error
	once    sync.Once
)

func initApp() {
	once.Do(func() {
		gin.SetMode(gin.ReleaseMode)

		cfg := config.LoadConfig()
		logger, err := config.NewLogger(cfg)
		if err != nil {
			logger = zap.NewNop()
		}

		application, err := app.New(context.Background(), cfg, logger)
		if err != nil {
			initErr = err
			logger.Error("failed to initialize storefront", zap.Error(err))
			return
		}
		router = application.Router
	})
}

// Handler is the serverless entry point. The cart lives as long as the
// function instance does.
func Handler(w http.ResponseWriter, r *http.Request) {
	initApp()
	if initErr != nil {
		http.Error(w, "storefront unavailable", http.StatusServiceUnavailable)
		return
	}
	router.ServeHTTP(w, r)
}
