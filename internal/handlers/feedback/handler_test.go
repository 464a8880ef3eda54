package feedback_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"campusvisit/infras/backend"
	backendMocks "campusvisit/infras/backend/mocks"
	otelMocks "campusvisit/infras/otel/mocks"
	"campusvisit/internal/domains/feedback/service"
	sessionModel "campusvisit/internal/domains/session/model"
	"campusvisit/internal/handlers/feedback"
	"campusvisit/shared/constant"
	"campusvisit/shared/failure"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type mocks struct {
	feedbacks    *backendMocks.MockFeedbacks
	appointments *backendMocks.MockAppointments
}

func setup(t *testing.T) (http.Handler, mocks) {
	t.Helper()

	ctrl := gomock.NewController(t)
	m := mocks{
		feedbacks:    backendMocks.NewMockFeedbacks(ctrl),
		appointments: backendMocks.NewMockAppointments(ctrl),
	}

	handler := feedback.New(service.New(m.feedbacks, m.appointments, otelMocks.NewOtel()), otelMocks.NewOtel())

	router := chi.NewRouter()
	handler.Router(router)

	return router, m
}

func serve(router http.Handler, sess *sessionModel.Session, method, target string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
	if form != nil {
		req.Header.Set(constant.RequestHeaderContentType, constant.ContentTypeFormURLEncoded)
	}

	req = req.WithContext(sessionModel.NewContext(req.Context(), sess))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	return rec
}

func visitor() *sessionModel.Session {
	return &sessionModel.Session{ID: gofakeit.UUID(), Role: constant.RoleVisitor, Token: "token"}
}

func TestForm(t *testing.T) {
	router, _ := setup(t)

	rec := serve(router, visitor(), http.MethodGet, "/visitor/feedback/12", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `action="/visitor/feedback/12"`)
}

func TestSubmit(t *testing.T) {
	tests := []struct {
		name     string
		form     url.Values
		mock     func(m mocks)
		location string
		level    string
	}{
		{
			name:     "rating out of range",
			form:     url.Values{"rating": {"9"}},
			mock:     func(_ mocks) {},
			location: "/visitor/feedback/12",
			level:    constant.ToastError,
		},
		{
			name: "submitted",
			form: url.Values{"rating": {"5"}, "comment": {"Great tour"}},
			mock: func(m mocks) {
				m.feedbacks.EXPECT().SubmitFeedback(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ any, req backend.FeedbackCreate) (backend.Feedback, error) {
						assert.Equal(t, 5, req.Rating)
						assert.Equal(t, int64(12), *req.AppointmentID)

						return backend.Feedback{ID: 1, Rating: 5}, nil
					})
			},
			location: constant.PathVisitorHome,
			level:    constant.ToastSuccess,
		},
		{
			name: "backend failure",
			form: url.Values{"rating": {"3"}},
			mock: func(m mocks) {
				m.feedbacks.EXPECT().SubmitFeedback(gomock.Any(), gomock.Any()).Return(backend.Feedback{}, failure.InternalError(errors.New("down")))
			},
			location: "/visitor/feedback/12",
			level:    constant.ToastError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, m := setup(t)
			tt.mock(m)

			sess := visitor()
			rec := serve(router, sess, http.MethodPost, "/visitor/feedback/12", tt.form)

			assert.Equal(t, http.StatusSeeOther, rec.Code)
			assert.Equal(t, tt.location, rec.Header().Get("Location"))
			require.Len(t, sess.Toasts, 1)
			assert.Equal(t, tt.level, sess.Toasts[0].Level)
		})
	}
}

func TestList_RendersSchoolNames(t *testing.T) {
	router, m := setup(t)

	appointmentID := int64(4)

	m.feedbacks.EXPECT().ListFeedback(gomock.Any()).Return([]backend.Feedback{
		{ID: 1, Rating: 4, Comment: "Nice", AppointmentID: &appointmentID},
		{ID: 2, Rating: 2, Comment: "Meh"},
	}, nil)
	m.appointments.EXPECT().SchoolName(gomock.Any(), appointmentID).Return("Ata Lisesi", nil)

	sess := &sessionModel.Session{ID: gofakeit.UUID(), Role: constant.RoleAdmin, Token: "token"}
	rec := serve(router, sess, http.MethodGet, "/staff/feedback-list", nil)

	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, "Ata Lisesi")
	assert.Contains(t, body, "No Appointment")
}
