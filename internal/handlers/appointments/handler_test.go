package appointments_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"campusvisit/infras/backend"
	backendMocks "campusvisit/infras/backend/mocks"
	otelMocks "campusvisit/infras/otel/mocks"
	"campusvisit/internal/domains/appointments/service"
	sessionModel "campusvisit/internal/domains/session/model"
	"campusvisit/internal/handlers/appointments"
	"campusvisit/shared/constant"
	"campusvisit/shared/failure"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type mocks struct {
	appointments  *backendMocks.MockAppointments
	notifications *backendMocks.MockNotifications
}

func setup(t *testing.T) (http.Handler, mocks) {
	t.Helper()

	ctrl := gomock.NewController(t)
	m := mocks{
		appointments:  backendMocks.NewMockAppointments(ctrl),
		notifications: backendMocks.NewMockNotifications(ctrl),
	}

	handler := appointments.New(service.New(m.appointments, m.notifications, otelMocks.NewOtel()), otelMocks.NewOtel())

	router := chi.NewRouter()
	handler.Router(router)

	return router, m
}

func serve(router http.Handler, sess *sessionModel.Session, method, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	req = req.WithContext(sessionModel.NewContext(req.Context(), sess))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	return rec
}

func session(role string) *sessionModel.Session {
	return &sessionModel.Session{ID: gofakeit.UUID(), Role: role, Token: "token", Name: gofakeit.Name()}
}

func TestMine_PaginatesRows(t *testing.T) {
	router, m := setup(t)

	list := make([]backend.Appointment, 0, 12)
	for index := range 12 {
		list = append(list, backend.Appointment{
			ID:     int64(index + 1),
			Date:   "2026-11-02",
			Time:   "10:00:00",
			City:   "City" + string(rune('A'+index)),
			Status: constant.StatusCreated,
		})
	}

	m.appointments.EXPECT().ListMyAppointments(gomock.Any()).Return(list, nil)

	rec := serve(router, session(constant.RoleVisitor), http.MethodGet, "/visitor/my-appointments?page=2&limit=10")

	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, "CityK")
	assert.Contains(t, body, "CityL")
	assert.NotContains(t, body, "CityA<")
}

func TestMine_ExpiredToken(t *testing.T) {
	router, m := setup(t)

	m.appointments.EXPECT().ListMyAppointments(gomock.Any()).Return(nil, failure.Unauthorized("expired"))

	sess := session(constant.RoleVisitor)
	rec := serve(router, sess, http.MethodGet, "/visitor/my-appointments")

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, constant.PathLogin, rec.Header().Get("Location"))
	assert.False(t, sess.LoggedIn())
}

func TestCancel(t *testing.T) {
	router, m := setup(t)

	m.appointments.EXPECT().UpdateStatus(gomock.Any(), int64(5), constant.StatusCanceled).Return(backend.Appointment{ID: 5, Status: constant.StatusCanceled}, nil)

	sess := session(constant.RoleVisitor)
	rec := serve(router, sess, http.MethodPost, "/visitor/my-appointments/5/cancel")

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/visitor/my-appointments", rec.Header().Get("Location"))
	require.Len(t, sess.Toasts, 1)
	assert.Equal(t, sessionModel.Toast{Level: constant.ToastSuccess, Message: "Appointment canceled successfully."}, sess.Toasts[0])
}

func TestDashboard_Admin(t *testing.T) {
	router, m := setup(t)

	m.appointments.EXPECT().ListAdminAppointments(gomock.Any()).Return([]backend.Appointment{
		{ID: 1, Date: "2026-11-02", Time: "10:00:00", City: "Ankara", Status: constant.StatusCreated},
	}, nil)
	m.notifications.EXPECT().ListNotifications(gomock.Any()).Return([]backend.Notification{{ID: 1}}, nil)

	rec := serve(router, session(constant.RoleAdmin), http.MethodGet, "/staff/home")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Ankara")
}
