package schools_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"campusvisit/config"
	"campusvisit/infras/backend"
	backendMocks "campusvisit/infras/backend/mocks"
	otelMocks "campusvisit/infras/otel/mocks"
	"campusvisit/internal/domains/schools/service"
	sessionModel "campusvisit/internal/domains/session/model"
	"campusvisit/internal/handlers/schools"
	"campusvisit/shared/cache"
	"campusvisit/shared/constant"
	"campusvisit/shared/failure"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func setup(t *testing.T) (http.Handler, *backendMocks.MockSchools) {
	t.Helper()

	ctrl := gomock.NewController(t)
	client := backendMocks.NewMockSchools(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 60

	handler := schools.New(service.New(client, cache.NewMemoryCache(), cfg, otelMocks.NewOtel()), otelMocks.NewOtel())

	router := chi.NewRouter()
	handler.Router(router)

	return router, client
}

func admin() *sessionModel.Session {
	return &sessionModel.Session{ID: gofakeit.UUID(), Role: constant.RoleAdmin, Token: "token", Name: gofakeit.Name()}
}

func do(router http.Handler, sess *sessionModel.Session, method, target string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
	if form != nil {
		req.Header.Set(constant.RequestHeaderContentType, constant.ContentTypeFormURLEncoded)
	}

	req = req.WithContext(sessionModel.NewContext(req.Context(), sess))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	return rec
}

func TestCreate(t *testing.T) {
	tests := []struct {
		name  string
		form  url.Values
		mock  func(client *backendMocks.MockSchools)
		toast sessionModel.Toast
	}{
		{
			name:  "missing city",
			form:  url.Values{"name": {"Fen Lisesi"}},
			mock:  func(_ *backendMocks.MockSchools) {},
			toast: sessionModel.Toast{Level: constant.ToastError, Message: "Both name and city are required!"},
		},
		{
			name: "created",
			form: url.Values{"name": {"Fen Lisesi"}, "city": {"Ankara"}},
			mock: func(client *backendMocks.MockSchools) {
				client.EXPECT().CreateSchool(gomock.Any(), "Fen Lisesi", "Ankara").Return(backend.School{ID: 1, Name: "Fen Lisesi", City: "Ankara"}, nil)
			},
			toast: sessionModel.Toast{Level: constant.ToastSuccess, Message: "School created successfully!"},
		},
		{
			name: "backend failure",
			form: url.Values{"name": {"Fen Lisesi"}, "city": {"Ankara"}},
			mock: func(client *backendMocks.MockSchools) {
				client.EXPECT().CreateSchool(gomock.Any(), gomock.Any(), gomock.Any()).Return(backend.School{}, failure.InternalError(errors.New("boom")))
			},
			toast: sessionModel.Toast{Level: constant.ToastError, Message: "Failed to create school. Please try again."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, client := setup(t)
			tt.mock(client)

			sess := admin()
			rec := do(router, sess, http.MethodPost, "/staff/schools", tt.form)

			assert.Equal(t, http.StatusSeeOther, rec.Code)
			assert.Equal(t, "/staff/schools", rec.Header().Get("Location"))
			require.Len(t, sess.Toasts, 1)
			assert.Equal(t, tt.toast, sess.Toasts[0])
		})
	}
}

func TestToggleAndList(t *testing.T) {
	router, client := setup(t)

	client.EXPECT().ListSchools(gomock.Any()).Return([]backend.School{
		{ID: 1, Name: "Ata Lisesi", City: "Ankara"},
		{ID: 2, Name: "Ege Koleji", City: "Izmir"},
	}, nil).Times(1)

	sess := admin()

	rec := do(router, sess, http.MethodPost, "/staff/schools/toggle", url.Values{"city": {"Izmir"}})
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.True(t, sess.ExpandedCities["Izmir"])

	rec = do(router, sess, http.MethodGet, "/staff/schools", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, "Ege Koleji")
	assert.NotContains(t, body, "Ata Lisesi")
}

func TestDelete_InvalidID(t *testing.T) {
	router, _ := setup(t)

	sess := admin()
	rec := do(router, sess, http.MethodPost, "/staff/schools/abc/delete", url.Values{})

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	require.Len(t, sess.Toasts, 1)
	assert.Equal(t, constant.ToastError, sess.Toasts[0].Level)
}
