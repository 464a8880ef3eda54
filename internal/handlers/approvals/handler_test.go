package approvals_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"campusvisit/config"
	"campusvisit/infras/backend"
	backendMocks "campusvisit/infras/backend/mocks"
	otelMocks "campusvisit/infras/otel/mocks"
	"campusvisit/internal/domains/approvals/service"
	sessionModel "campusvisit/internal/domains/session/model"
	"campusvisit/internal/handlers/approvals"
	"campusvisit/shared/cache"
	"campusvisit/shared/constant"
	"campusvisit/shared/failure"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func setup(t *testing.T) (http.Handler, *backendMocks.MockAppointments) {
	t.Helper()

	ctrl := gomock.NewController(t)
	client := backendMocks.NewMockAppointments(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 60

	handler := approvals.New(service.New(client, cache.NewMemoryCache(), cfg, otelMocks.NewOtel()), otelMocks.NewOtel())

	router := chi.NewRouter()
	handler.Router(router)

	return router, client
}

func post(router http.Handler, sess *sessionModel.Session, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, target, nil)
	req = req.WithContext(sessionModel.NewContext(req.Context(), sess))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	return rec
}

func TestTransition(t *testing.T) {
	tests := []struct {
		name     string
		role     string
		target   string
		mock     func(client *backendMocks.MockAppointments)
		location string
		toast    sessionModel.Toast
	}{
		{
			name:     "unknown action",
			role:     constant.RoleAdmin,
			target:   "/staff/pending-approvals/7/delete",
			mock:     func(_ *backendMocks.MockAppointments) {},
			location: "/staff/pending-approvals",
			toast:    sessionModel.Toast{Level: constant.ToastError, Message: "Unknown action."},
		},
		{
			name:   "admin approves",
			role:   constant.RoleAdmin,
			target: "/staff/pending-approvals/7/approve",
			mock: func(client *backendMocks.MockAppointments) {
				client.EXPECT().Approve(gomock.Any(), int64(7)).Return(backend.Appointment{ID: 7, Status: constant.StatusApproved}, nil)
			},
			location: "/staff/pending-approvals?patched=1",
			toast:    sessionModel.Toast{Level: constant.ToastSuccess, Message: "Appointment approved!"},
		},
		{
			name:     "guide cannot reject",
			role:     constant.RoleGuide,
			target:   "/staff/pending-approvals/7/reject",
			mock:     func(_ *backendMocks.MockAppointments) {},
			location: "/staff/pending-approvals?patched=1",
			toast:    sessionModel.Toast{Level: constant.ToastError, Message: failure.ForbiddenError.Message},
		},
		{
			name:     "admin cannot accept",
			role:     constant.RoleAdmin,
			target:   "/staff/pending-approvals/7/accept",
			mock:     func(_ *backendMocks.MockAppointments) {},
			location: "/staff/pending-approvals?patched=1",
			toast:    sessionModel.Toast{Level: constant.ToastError, Message: failure.ForbiddenError.Message},
		},
		{
			name:   "admin reset",
			role:   constant.RoleAdmin,
			target: "/staff/pending-approvals/7/reset",
			mock: func(client *backendMocks.MockAppointments) {
				client.EXPECT().UnassignGuide(gomock.Any(), int64(7), constant.StatusCreated).Return(backend.Appointment{ID: 7, Status: constant.StatusCreated}, nil)
			},
			location: "/staff/pending-approvals?patched=1",
			toast:    sessionModel.Toast{Level: constant.ToastInfo, Message: "Appointment status reset successfully."},
		},
		{
			name:   "backend refuses",
			role:   constant.RoleGuide,
			target: "/staff/pending-approvals/7/accept",
			mock: func(client *backendMocks.MockAppointments) {
				client.EXPECT().AssignGuide(gomock.Any(), int64(7)).Return(backend.Appointment{}, failure.Conflict("taken"))
			},
			location: "/staff/pending-approvals?patched=1",
			toast:    sessionModel.Toast{Level: constant.ToastError, Message: "Failed to assign guide. Please try again."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, client := setup(t)
			tt.mock(client)

			sess := &sessionModel.Session{ID: gofakeit.UUID(), Role: tt.role, Token: "token"}
			rec := post(router, sess, tt.target)

			assert.Equal(t, http.StatusSeeOther, rec.Code)
			assert.Equal(t, tt.location, rec.Header().Get("Location"))
			require.Len(t, sess.Toasts, 1)
			assert.Equal(t, tt.toast, sess.Toasts[0])
		})
	}
}

func TestTransition_ExpiredTokenEndsSession(t *testing.T) {
	router, client := setup(t)

	client.EXPECT().Approve(gomock.Any(), int64(3)).Return(backend.Appointment{}, failure.Unauthorized("expired"))

	sess := &sessionModel.Session{ID: gofakeit.UUID(), Role: constant.RoleAdmin, Token: "token"}
	rec := post(router, sess, "/staff/pending-approvals/3/approve")

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, constant.PathLogin, rec.Header().Get("Location"))
	assert.False(t, sess.LoggedIn())
	require.Len(t, sess.Toasts, 1)
	assert.Equal(t, constant.ToastWarning, sess.Toasts[0].Level)
}
