package service

import (
	"context"
	"fmt"
	"sync"

	"campusvisit/infras/backend"
	"campusvisit/infras/otel"
	"campusvisit/internal/domains/feedback/model"
	"campusvisit/internal/domains/feedback/model/dto"
	"campusvisit/shared/constant"
	"campusvisit/shared/failure"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

const lookupLimit = 8

type Feedback interface {
	Submit(ctx context.Context, appointmentID int64, req dto.SubmitFeedbackRequest) (backend.Feedback, error)
	List(ctx context.Context) ([]model.Entry, error)
}

type serviceImpl struct {
	feedbacks    backend.Feedbacks
	appointments backend.Appointments
	otel         otel.Otel
}

func New(feedbacks backend.Feedbacks, appointments backend.Appointments, otel otel.Otel) Feedback {
	return &serviceImpl{
		feedbacks:    feedbacks,
		appointments: appointments,
		otel:         otel,
	}
}

func (s *serviceImpl) Submit(ctx context.Context, appointmentID int64, req dto.SubmitFeedbackRequest) (res backend.Feedback, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".FeedbackSubmit")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	res, err = s.feedbacks.SubmitFeedback(ctx, backend.FeedbackCreate{
		Rating:        req.Rating,
		Comment:       req.Comment,
		AppointmentID: &appointmentID,
	})
	if err != nil {
		log.Error().Err(err).Int64("appointment", appointmentID).Msg("failed to submit feedback")

		return res, failure.New(failure.GetCode(err), "Failed to submit feedback. Please try again.")
	}

	return res, nil
}

// List returns every feedback with the school of its appointment. Lookups run
// concurrently and are all awaited; one failing lookup only marks its own rows.
func (s *serviceImpl) List(ctx context.Context) (res []model.Entry, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".FeedbackList")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	feedbacks, err := s.feedbacks.ListFeedback(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to list feedback")

		return nil, fmt.Errorf("failed to list feedback: %w", err)
	}

	names := make(map[int64]string)

	var mu sync.Mutex

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(lookupLimit)

	for _, feedback := range feedbacks {
		if feedback.AppointmentID == nil {
			continue
		}

		id := *feedback.AppointmentID

		mu.Lock()
		_, seen := names[id]
		if !seen {
			names[id] = model.UnknownSchool
		}
		mu.Unlock()

		if seen {
			continue
		}

		group.Go(func() error {
			name, err := s.appointments.SchoolName(groupCtx, id)
			if err != nil {
				log.Warn().Err(err).Int64("appointment", id).Msg("failed to look up school name")

				return nil
			}

			mu.Lock()
			names[id] = name
			mu.Unlock()

			return nil
		})
	}

	_ = group.Wait()

	res = make([]model.Entry, 0, len(feedbacks))

	for _, feedback := range feedbacks {
		entry := model.Entry{Feedback: feedback, SchoolName: model.NoAppointment}
		if feedback.AppointmentID != nil {
			entry.SchoolName = names[*feedback.AppointmentID]
		}

		res = append(res, entry)
	}

	return res, nil
}
