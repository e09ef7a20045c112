package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/franciscosanchezn/pizzeria-api/internal/metrics"
	"github.com/franciscosanchezn/pizzeria-api/internal/models"
	"github.com/franciscosanchezn/pizzeria-api/internal/notification"
	"github.com/franciscosanchezn/pizzeria-api/internal/services"
	"github.com/franciscosanchezn/pizzeria-api/internal/testutil"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const testJWTSecret = "test-jwt-secret-key-32-characters"

func newTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testutil.NewTestDB(t)
	testutil.SeedMenu(t, db)

	registry := prometheus.NewRegistry()
	router := setupRouter(routerDeps{
		db:             db,
		jwtSecret:      testJWTSecret,
		metrics:        metrics.NewWithRegisterer(registry),
		metricsHandler: promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		notifier:       notification.NewLogGateway(),
	})
	return router, db
}

func registerClient(t *testing.T, db *gorm.DB, id, secret, role string) {
	t.Helper()
	user := &models.User{Email: id + "@pizzeria.local", Name: id, Role: role}
	require.NoError(t, db.Create(user).Error)
	hashed, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.MinCost)
	require.NoError(t, err)
	require.NoError(t, db.Create(&models.OAuthClient{ID: id, Secret: string(hashed), UserID: user.ID}).Error)
}

func fetchToken(t *testing.T, router *gin.Engine, id, secret string) string {
	t.Helper()
	form := url.Values{"grant_type": {"client_credentials"}, "client_id": {id}, "client_secret": {secret}}
	req := httptest.NewRequest(http.MethodPost, "/oauth/token", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	token, ok := body["access_token"].(string)
	require.True(t, ok)
	return token
}

func call(router *gin.Engine, method, path, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCatalogRequiresToken(t *testing.T) {
	router, _ := newTestRouter(t)

	w := call(router, http.MethodGet, "/api/pizzas", "", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestUserCanReadButNotWrite(t *testing.T) {
	router, db := newTestRouter(t)
	registerClient(t, db, "storefront", "storefront-secret", models.RoleUser)
	token := fetchToken(t, router, "storefront", "storefront-secret")

	w := call(router, http.MethodGet, "/api/pizzas/available-page?sortBy=name", token, "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = call(router, http.MethodDelete, "/api/pizzas/1", token, "")
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = call(router, http.MethodPut, "/api/pizzas/price", token, `{"pizza_id":1,"new_price":"1.00"}`)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAdminPriceUpdate(t *testing.T) {
	router, db := newTestRouter(t)
	registerClient(t, db, "menu-admin", "admin-secret", models.RoleAdmin)
	token := fetchToken(t, router, "menu-admin", "admin-secret")

	w := call(router, http.MethodPut, "/api/pizzas/price", token, `{"pizza_id":2,"new_price":"11.50"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, true, response["price_persisted"])
	assert.Equal(t, string(services.NotificationSent), response["notification"])
	assert.NotContains(t, response, "code")

	w = call(router, http.MethodGet, "/api/pizzas/name/pepperoni", token, "")
	require.Equal(t, http.StatusOK, w.Code)
	var pizza models.Pizza
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &pizza))
	assert.True(t, decimal.RequireFromString("11.50").Equal(pizza.Price), "got %s", pizza.Price)
}

func TestAmbientRoutes(t *testing.T) {
	router, _ := newTestRouter(t)

	w := call(router, http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"database":"up"`)

	call(router, http.MethodGet, "/api/pizzas", "", "")

	w = call(router, http.MethodGet, "/metrics", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "pizzeria_http_requests_total")
}
