package router_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"campusvisit/config"
	"campusvisit/infras/jwt"
	otelMocks "campusvisit/infras/otel/mocks"
	sessionService "campusvisit/internal/domains/session/service"
	"campusvisit/permissions"
	"campusvisit/shared/cache"
	"campusvisit/shared/constant"
	"campusvisit/transport/http/middleware"
	"campusvisit/transport/http/router"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

func setup() http.Handler {
	cfg := &config.Config{}
	cfg.Session.CookieName = "portal_session"
	cfg.Session.TTLMinutes = 30

	store := cache.NewMemoryCache()
	ot := otelMocks.NewOtel()
	policy := permissions.Get()

	sessions := sessionService.New(store, jwt.New(), cfg, ot)

	r := router.New(
		router.DomainHandlers{},
		middleware.NewAppMiddleware(ot, cfg, store),
		middleware.NewAccessMiddleware(sessions, policy, ot, cfg),
		policy,
	)

	mux := chi.NewRouter()
	r.SetupRoutes(mux)

	return mux
}

func TestRoutes(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		code     int
		location string
	}{
		{name: "root sends anonymous users to login", path: "/", code: http.StatusSeeOther, location: constant.PathLogin},
		{name: "unknown path sends anonymous users to login", path: "/nope", code: http.StatusSeeOther, location: constant.PathLogin},
		{name: "protected page", path: "/staff/calendar", code: http.StatusSeeOther, location: constant.PathLogin},
		{name: "stylesheet", path: "/static/app.css", code: http.StatusOK},
		{name: "health probe", path: "/healthz", code: http.StatusOK},
	}

	mux := setup()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, tt.code, rec.Code)
			assert.Equal(t, tt.location, rec.Header().Get("Location"))
		})
	}
}

func TestAPIDocs(t *testing.T) {
	mux := setup()

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/docs/doc.json", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "/api/available-times/{date}")
	assert.Contains(t, rec.Body.String(), "/api/nav")
}
