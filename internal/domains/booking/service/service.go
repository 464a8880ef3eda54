package service

import (
	"context"
	"fmt"

	"campusvisit/config"
	"campusvisit/infras/backend"
	"campusvisit/infras/otel"
	"campusvisit/internal/domains/booking/model"
	"campusvisit/internal/domains/booking/model/dto"
	sessionModel "campusvisit/internal/domains/session/model"
	"campusvisit/shared/constant"
	"campusvisit/shared/failure"
	"campusvisit/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	msgCreated      = "Appointment successfully created!"
	msgCreateFailed = "An error occurred while creating the appointment."
)

type Booking interface {
	Draft(sess *sessionModel.Session) *model.Wizard
	SelectDate(ctx context.Context, sess *sessionModel.Session, req dto.DateRequest) error
	Slots(ctx context.Context, sess *sessionModel.Session) ([]model.TimeSlot, error)
	AvailableTimes(ctx context.Context, date string) ([]string, error)
	SelectTime(ctx context.Context, sess *sessionModel.Session, req dto.TimeRequest) error
	SetDetails(ctx context.Context, sess *sessionModel.Session, req dto.DetailsRequest) error
	Back(sess *sessionModel.Session)
	Edit(sess *sessionModel.Session)
	Submit(ctx context.Context, sess *sessionModel.Session) (backend.Appointment, error)
}

type serviceImpl struct {
	appointments backend.Appointments
	cfg          *config.Config
	otel         otel.Otel
}

func New(appointments backend.Appointments, cfg *config.Config, otel otel.Otel) Booking {
	return &serviceImpl{
		appointments: appointments,
		cfg:          cfg,
		otel:         otel,
	}
}

// Draft returns the session's wizard, starting one when there is none.
func (s *serviceImpl) Draft(sess *sessionModel.Session) *model.Wizard {
	if sess.Booking == nil {
		wizard := model.NewWizard(timezone.Today(), s.cfg.Booking.LookaheadDays)
		sess.Booking = &wizard
	}

	return sess.Booking
}

func (s *serviceImpl) SelectDate(ctx context.Context, sess *sessionModel.Session, req dto.DateRequest) (err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SelectDate")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	wizard := s.Draft(sess)

	picked, err := timezone.ParseDate(req.Date)
	if err != nil {
		return failure.BadRequestFromString("Please select a valid date.")
	}

	day, moved, err := model.CorrectDate(picked, timezone.Today(), s.cfg.Booking.LookaheadDays)
	if err != nil {
		return err
	}

	if moved {
		sess.Warn(model.WeekendWarning)
	}

	wizard.SetDate(timezone.FormatDate(day))

	return wizard.Next(s.cfg.Booking.MinVisitors)
}

func (s *serviceImpl) AvailableTimes(ctx context.Context, date string) (res []string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AvailableTimes")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if _, err = timezone.ParseDate(date); err != nil {
		return nil, failure.BadRequestFromString("invalid date: " + date)
	}

	res, err = s.appointments.AvailableTimes(ctx, date)
	if err != nil {
		log.Error().Err(err).Str("date", date).Msg("failed to fetch available times")

		return nil, fmt.Errorf("failed to fetch available times: %w", err)
	}

	return res, nil
}

// Slots lists the candidate times for the draft date. When availability cannot be
// fetched every candidate is shown disabled.
func (s *serviceImpl) Slots(ctx context.Context, sess *sessionModel.Session) ([]model.TimeSlot, error) {
	wizard := s.Draft(sess)

	available, err := s.AvailableTimes(ctx, wizard.Date)
	if err != nil {
		return model.Slots(nil, wizard.Time), err
	}

	return model.Slots(available, wizard.Time), nil
}

func (s *serviceImpl) SelectTime(ctx context.Context, sess *sessionModel.Session, req dto.TimeRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SelectTime")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	wizard := s.Draft(sess)

	available, err := s.AvailableTimes(ctx, wizard.Date)
	if err != nil {
		return err
	}

	value, err := model.ChooseTime(req.Time, available)
	if err != nil {
		return err
	}

	wizard.Time = value

	return wizard.Next(s.cfg.Booking.MinVisitors)
}

func (s *serviceImpl) SetDetails(_ context.Context, sess *sessionModel.Session, req dto.DetailsRequest) error {
	wizard := s.Draft(sess)

	wizard.Visitors = req.Visitors
	wizard.Note = req.Note

	return wizard.Next(s.cfg.Booking.MinVisitors)
}

func (s *serviceImpl) Back(sess *sessionModel.Session) {
	s.Draft(sess).Back()
}

func (s *serviceImpl) Edit(sess *sessionModel.Session) {
	s.Draft(sess).Edit()
}

// Submit creates the appointment. Success clears the draft; failure keeps it for another try.
func (s *serviceImpl) Submit(ctx context.Context, sess *sessionModel.Session) (res backend.Appointment, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Submit")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	wizard := s.Draft(sess)

	if err = wizard.Ready(s.cfg.Booking.MinVisitors); err != nil {
		return res, err
	}

	res, err = s.appointments.CreateAppointment(ctx, backend.CreateAppointmentRequest{
		Date:           wizard.Date,
		Time:           wizard.Time,
		VisitorsNumber: wizard.Visitors,
		Note:           wizard.Note,
	})
	if err != nil {
		log.Error().Err(err).Str("date", wizard.Date).Str("time", wizard.Time).Msg("failed to create appointment")

		return res, failure.New(failure.GetCode(err), msgCreateFailed)
	}

	sess.Booking = nil
	sess.Success(msgCreated)

	scope.SetAttribute("appointment.id", res.ID)

	return res, nil
}
