package service_test

import (
	"context"
	"net/http"
	"testing"

	"campusvisit/config"
	"campusvisit/infras/backend"
	backendMocks "campusvisit/infras/backend/mocks"
	otelMocks "campusvisit/infras/otel/mocks"
	"campusvisit/internal/domains/booking/model"
	"campusvisit/internal/domains/booking/model/dto"
	"campusvisit/internal/domains/booking/service"
	sessionModel "campusvisit/internal/domains/session/model"
	"campusvisit/shared/constant"
	"campusvisit/shared/failure"
	"campusvisit/shared/timezone"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func setup(t *testing.T) (service.Booking, *backendMocks.MockAppointments) {
	t.Helper()

	ctrl := gomock.NewController(t)
	appointments := backendMocks.NewMockAppointments(ctrl)

	cfg := &config.Config{}
	cfg.Booking.MinVisitors = 1
	cfg.Booking.LookaheadDays = 120

	return service.New(appointments, cfg, otelMocks.NewOtel()), appointments
}

// nextWeekday is a weekday at least a week ahead, so it is always bookable.
func nextWeekday() string {
	day, _ := model.FirstBookableDay(timezone.Today().AddDate(0, 0, 7), 120)

	return timezone.FormatDate(day)
}

func nextSaturday() string {
	day := timezone.Today().AddDate(0, 0, 7)
	for day.Weekday() != 6 {
		day = day.AddDate(0, 0, 1)
	}

	return timezone.FormatDate(day)
}

func TestDraft_StartsOnFirstBookableDay(t *testing.T) {
	svc, _ := setup(t)
	sess := &sessionModel.Session{}

	wizard := svc.Draft(sess)

	first, err := model.FirstBookableDay(timezone.Today(), 120)
	require.NoError(t, err)
	assert.Equal(t, model.StepDate, wizard.Step)
	assert.Equal(t, timezone.FormatDate(first), wizard.Date)
	assert.Same(t, wizard, svc.Draft(sess))
}

func TestSelectDate_WeekendIsMovedWithWarning(t *testing.T) {
	svc, _ := setup(t)
	sess := &sessionModel.Session{}

	require.NoError(t, svc.SelectDate(context.Background(), sess, dto.DateRequest{Date: nextSaturday()}))

	saturday, err := timezone.ParseDate(nextSaturday())
	require.NoError(t, err)

	assert.Equal(t, timezone.FormatDate(saturday.AddDate(0, 0, 2)), sess.Booking.Date)
	assert.Equal(t, model.StepTime, sess.Booking.Step)
	require.Len(t, sess.Toasts, 1)
	assert.Equal(t, constant.ToastWarning, sess.Toasts[0].Level)
	assert.Equal(t, model.WeekendWarning, sess.Toasts[0].Message)
}

func TestSelectDate_RejectsPastDate(t *testing.T) {
	svc, _ := setup(t)
	sess := &sessionModel.Session{}

	err := svc.SelectDate(context.Background(), sess, dto.DateRequest{Date: timezone.FormatDate(timezone.Today().AddDate(0, 0, -3))})

	assert.ErrorIs(t, err, model.ErrDateTooEarly)
	assert.Equal(t, model.StepDate, sess.Booking.Step)
}

func TestSelectTime_DisabledSlotIsRejected(t *testing.T) {
	svc, appointments := setup(t)
	date := nextWeekday()
	sess := &sessionModel.Session{Booking: &model.Wizard{Step: model.StepTime, Date: date}}

	appointments.EXPECT().AvailableTimes(gomock.Any(), date).Return([]string{"10:00:00"}, nil)

	err := svc.SelectTime(context.Background(), sess, dto.TimeRequest{Time: "1:00 PM"})

	assert.ErrorIs(t, err, model.ErrTimeUnavailable)
	assert.Empty(t, sess.Booking.Time)
	assert.Equal(t, model.StepTime, sess.Booking.Step)
}

func TestSlots_BackendFailureDisablesAll(t *testing.T) {
	svc, appointments := setup(t)
	date := nextWeekday()
	sess := &sessionModel.Session{Booking: &model.Wizard{Step: model.StepTime, Date: date}}

	appointments.EXPECT().AvailableTimes(gomock.Any(), date).Return(nil, failure.New(http.StatusBadGateway, "down"))

	slots, err := svc.Slots(context.Background(), sess)

	assert.Error(t, err)
	require.Len(t, slots, 3)
	for _, slot := range slots {
		assert.False(t, slot.Available)
	}
}

func TestBookingJourney(t *testing.T) {
	svc, appointments := setup(t)
	ctx := context.Background()
	date := nextWeekday()
	sess := &sessionModel.Session{Role: constant.RoleVisitor, Token: "tok"}

	appointments.EXPECT().AvailableTimes(gomock.Any(), date).Return([]string{"10:00:00", "13:00:00"}, nil).Times(2)
	appointments.EXPECT().CreateAppointment(gomock.Any(), backend.CreateAppointmentRequest{
		Date:           date,
		Time:           "13:00:00",
		VisitorsNumber: 6,
		Note:           "Grade 11 class",
	}).Return(backend.Appointment{ID: 41, Status: constant.StatusCreated}, nil)

	require.NoError(t, svc.SelectDate(ctx, sess, dto.DateRequest{Date: date}))

	slots, err := svc.Slots(ctx, sess)
	require.NoError(t, err)
	assert.True(t, slots[1].Available)
	assert.False(t, slots[2].Available)

	require.NoError(t, svc.SelectTime(ctx, sess, dto.TimeRequest{Time: "1:00 PM"}))
	assert.Equal(t, "1:00 PM", sess.Booking.TimeLabel())

	assert.ErrorIs(t, svc.SetDetails(ctx, sess, dto.DetailsRequest{}), model.ErrTooFewVisitors)
	require.NoError(t, svc.SetDetails(ctx, sess, dto.DetailsRequest{Visitors: 6, Note: "Grade 11 class"}))
	assert.Equal(t, model.StepConfirm, sess.Booking.Step)

	created, err := svc.Submit(ctx, sess)

	require.NoError(t, err)
	assert.Equal(t, int64(41), created.ID)
	assert.Nil(t, sess.Booking)
	require.Len(t, sess.Toasts, 1)
	assert.Equal(t, constant.ToastSuccess, sess.Toasts[0].Level)
}

func TestSubmit_FailureKeepsDraft(t *testing.T) {
	svc, appointments := setup(t)
	draft := &model.Wizard{Step: model.StepConfirm, Date: nextWeekday(), Time: "10:00:00", Visitors: 2}
	sess := &sessionModel.Session{Booking: draft}

	appointments.EXPECT().CreateAppointment(gomock.Any(), gomock.Any()).
		Return(backend.Appointment{}, failure.New(http.StatusBadRequest, "Time slot unavailable"))

	_, err := svc.Submit(context.Background(), sess)

	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	assert.Equal(t, "An error occurred while creating the appointment.", err.Error())
	assert.Same(t, draft, sess.Booking)
	assert.Empty(t, sess.Toasts)
}

func TestBackAndEdit(t *testing.T) {
	svc, _ := setup(t)
	sess := &sessionModel.Session{Booking: &model.Wizard{Step: model.StepConfirm, Date: nextWeekday(), Time: "10:00:00", Visitors: 2}}

	svc.Back(sess)
	assert.Equal(t, model.StepDetails, sess.Booking.Step)

	svc.Edit(sess)
	assert.Equal(t, model.StepDate, sess.Booking.Step)
	assert.Equal(t, 2, sess.Booking.Visitors)
}

func TestAvailableTimes_TracesFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	appointments := backendMocks.NewMockAppointments(ctrl)
	tracer := otelMocks.NewOtel()

	svc := service.New(appointments, &config.Config{}, tracer)

	appointments.EXPECT().AvailableTimes(gomock.Any(), "2026-11-02").Return(nil, failure.New(http.StatusBadGateway, "down"))

	_, err := svc.AvailableTimes(context.Background(), "2026-11-02")
	require.Error(t, err)

	traced := tracer.TracedErrors()
	require.Len(t, traced, 1)
	assert.ErrorContains(t, traced[0], "failed to fetch available times")
}
