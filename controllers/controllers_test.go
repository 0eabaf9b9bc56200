package controllers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"storefront/models"
	"storefront/repositories"
	"storefront/routes"
	"storefront/services"
)

type testServer struct {
	router  *gin.Engine
	cart    *services.CartStore
	catalog *models.Catalog
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	products, err := repositories.NewFixtureRepository().LoadProducts(context.Background())
	require.NoError(t, err)
	catalog, err := models.NewCatalog(products)
	require.NoError(t, err)

	cart := services.NewCartStore(nil)
	router := gin.New()
	routes.SetupRoutes(router, services.NewProductService(catalog, nil, nil), cart)
	return &testServer{router: router, cart: cart, catalog: catalog}
}

func (s *testServer) do(t *testing.T, method, target string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

// envelope decodes a models.Response whose data is of type T.
type envelope[T any] struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    T      `json:"data"`
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func requireStatus(t *testing.T, w *httptest.ResponseRecorder, status int) {
	t.Helper()
	require.Equal(t, status, w.Code, w.Body.String())
}
