package service

import (
	"context"
	"fmt"

	"campusvisit/infras/backend"
	"campusvisit/infras/otel"
	"campusvisit/internal/domains/appointments/model"
	"campusvisit/shared/constant"
	"campusvisit/shared/failure"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

type Appointments interface {
	Mine(ctx context.Context) ([]model.VisitorRow, error)
	Cancel(ctx context.Context, id int64) error
	Guide(ctx context.Context) (model.GuideLists, error)
	Calendar(ctx context.Context) ([]model.Day, error)
	Dashboard(ctx context.Context, role string) (model.Dashboard, error)
	Stats(ctx context.Context) (model.Stats, error)
}

type serviceImpl struct {
	appointments  backend.Appointments
	notifications backend.Notifications
	otel          otel.Otel
}

func New(appointments backend.Appointments, notifications backend.Notifications, otel otel.Otel) Appointments {
	return &serviceImpl{
		appointments:  appointments,
		notifications: notifications,
		otel:          otel,
	}
}

func (s *serviceImpl) Mine(ctx context.Context) (res []model.VisitorRow, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Mine")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	appointments, err := s.appointments.ListMyAppointments(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to list visitor appointments")

		return nil, failure.New(failure.GetCode(err), "Failed to load your appointments. Please try again.")
	}

	return model.VisitorRows(appointments), nil
}

func (s *serviceImpl) Cancel(ctx context.Context, id int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Cancel")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if _, err = s.appointments.UpdateStatus(ctx, id, constant.StatusCanceled); err != nil {
		log.Error().Err(err).Int64("appointment", id).Msg("failed to cancel appointment")

		return failure.New(failure.GetCode(err), "Failed to cancel the appointment. Please try again.")
	}

	return nil
}

func (s *serviceImpl) Guide(ctx context.Context) (res model.GuideLists, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Guide")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	appointments, err := s.appointments.ListAssignedToGuide(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to list guide appointments")

		return res, failure.New(failure.GetCode(err), "Failed to load appointments. Please try again.")
	}

	return model.SplitGuide(appointments), nil
}

func (s *serviceImpl) Calendar(ctx context.Context) (res []model.Day, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Calendar")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	appointments, err := s.appointments.ListAssignedToGuide(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to list calendar appointments")

		return nil, failure.New(failure.GetCode(err), "Failed to load the calendar. Please try again.")
	}

	return model.Calendar(appointments), nil
}

// Dashboard loads the role's queue, the guide's own assignments and the unread count concurrently.
// A failed notification count degrades to zero rather than failing the page.
func (s *serviceImpl) Dashboard(ctx context.Context, role string) (res model.Dashboard, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Dashboard")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if role != constant.RoleAdmin && role != constant.RoleGuide {
		return res, failure.ForbiddenError
	}

	var (
		queue  []backend.Appointment
		mine   []backend.Appointment
		unread int
	)

	group, gctx := errgroup.WithContext(ctx)

	group.Go(func() error {
		var err error

		if role == constant.RoleAdmin {
			queue, err = s.appointments.ListAdminAppointments(gctx)
		} else {
			queue, err = s.appointments.ListAvailableForGuides(gctx)
		}

		return err
	})

	if role == constant.RoleGuide {
		group.Go(func() error {
			var err error
			mine, err = s.appointments.ListAssignedToGuide(gctx)

			return err
		})
	}

	group.Go(func() error {
		notifications, err := s.notifications.ListNotifications(gctx)
		if err != nil {
			log.Warn().Err(err).Msg("failed to count unread notifications")

			return nil
		}

		for _, notification := range notifications {
			if !notification.IsRead {
				unread++
			}
		}

		return nil
	})

	if err = group.Wait(); err != nil {
		log.Error().Err(err).Str("role", role).Msg("failed to load dashboard")

		return res, fmt.Errorf("failed to load dashboard: %w", err)
	}

	return model.NewDashboard(role, queue, mine, unread), nil
}

func (s *serviceImpl) Stats(ctx context.Context) (res model.Stats, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Stats")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	appointments, err := s.appointments.ListAdminAppointments(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to load statistics")

		return res, failure.New(failure.GetCode(err), "Failed to load statistics. Please try again.")
	}

	return model.NewStats(appointments), nil
}
