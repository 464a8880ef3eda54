package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"campusvisit/config"
	"campusvisit/infras/backend"
	"campusvisit/infras/otel"
	"campusvisit/internal/domains/approvals/model"
	"campusvisit/shared/cache"
	"campusvisit/shared/constant"
	"campusvisit/shared/failure"

	"github.com/rs/zerolog/log"
)

const cacheApprovals = "approvals"

type Approvals interface {
	List(ctx context.Context, viewer, role string) (model.Board, error)
	Snapshot(ctx context.Context, viewer, role string) (model.Board, error)
	Transition(ctx context.Context, viewer, role string, id int64, action model.Action) (backend.Appointment, error)
}

type serviceImpl struct {
	appointments backend.Appointments
	cache        cache.Cache
	cfg          *config.Config
	otel         otel.Otel

	mu       sync.Mutex
	inFlight map[int64]struct{}
}

func New(appointments backend.Appointments, cache cache.Cache, cfg *config.Config, otel otel.Otel) Approvals {
	return &serviceImpl{
		appointments: appointments,
		cache:        cache,
		cfg:          cfg,
		otel:         otel,
		inFlight:     make(map[int64]struct{}),
	}
}

func key(viewer string) string {
	return cache.BuildCacheKey(cacheApprovals, viewer)
}

func (s *serviceImpl) acquire(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, busy := s.inFlight[id]; busy {
		return false
	}

	s.inFlight[id] = struct{}{}

	return true
}

func (s *serviceImpl) release(id int64) {
	s.mu.Lock()
	delete(s.inFlight, id)
	s.mu.Unlock()
}

func (s *serviceImpl) busy(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.inFlight[id]

	return ok
}

// List fetches the role's queue from the backend and remembers it for the viewer.
func (s *serviceImpl) List(ctx context.Context, viewer, role string) (res model.Board, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ApprovalsList")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	var appointments []backend.Appointment

	switch role {
	case constant.RoleAdmin:
		appointments, err = s.appointments.ListAdminAppointments(ctx)
	case constant.RoleGuide:
		appointments, err = s.appointments.ListAvailableForGuides(ctx)
	default:
		return res, failure.ForbiddenError
	}

	if err != nil {
		log.Error().Err(err).Str("role", role).Msg("failed to fetch approvals")

		return res, fmt.Errorf("failed to fetch approvals: %w", err)
	}

	if err := s.cache.Save(ctx, key(viewer), appointments, s.cfg.Cache.TTL); err != nil {
		log.Warn().Err(err).Msg("failed to remember approvals")
	}

	return model.NewBoard(appointments, role, s.busy), nil
}

// Snapshot renders the remembered list, patched by earlier transitions, without asking the backend.
func (s *serviceImpl) Snapshot(ctx context.Context, viewer, role string) (model.Board, error) {
	var appointments []backend.Appointment

	err := s.cache.Get(ctx, key(viewer), &appointments)
	if err != nil {
		if !errors.Is(err, cache.Nil) {
			log.Warn().Err(err).Msg("failed to read remembered approvals")
		}

		return s.List(ctx, viewer, role)
	}

	return model.NewBoard(appointments, role, s.busy), nil
}

// Transition runs one action on one row. A row already being processed is refused;
// the remembered list is patched only after the backend succeeded.
func (s *serviceImpl) Transition(ctx context.Context, viewer, role string, id int64, action model.Action) (res backend.Appointment, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ApprovalsTransition")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttributes(map[string]any{"appointment.id": id, "approvals.action": string(action)})

	if !action.Permitted(role) {
		return res, failure.ForbiddenError
	}

	var remembered []backend.Appointment
	if s.cache.Get(ctx, key(viewer), &remembered) == nil {
		if row, ok := model.Find(remembered, id); ok && !action.Allowed(role, row.Status) {
			return res, failure.Conflict(action.Stale())
		}
	}

	if !s.acquire(id) {
		return res, failure.InFlightError
	}
	defer s.release(id)

	switch action {
	case model.ActionApprove:
		res, err = s.appointments.Approve(ctx, id)
	case model.ActionReject:
		res, err = s.appointments.Reject(ctx, id)
	case model.ActionAccept:
		res, err = s.appointments.AssignGuide(ctx, id)
	case model.ActionReset:
		res, err = s.appointments.UnassignGuide(ctx, id, constant.StatusCreated)
	default:
		return res, failure.BadRequestFromString("unknown action")
	}

	if err != nil {
		log.Error().Err(err).Int64("appointment", id).Str("action", string(action)).Msg("approval transition failed")

		return res, failure.New(failure.GetCode(err), action.Failure())
	}

	s.patch(ctx, viewer, id, action.Outcome())

	return res, nil
}

func (s *serviceImpl) patch(ctx context.Context, viewer string, id int64, status string) {
	var appointments []backend.Appointment

	if err := s.cache.Get(ctx, key(viewer), &appointments); err != nil {
		return
	}

	if !model.Patch(appointments, id, status) {
		return
	}

	if err := s.cache.Save(ctx, key(viewer), appointments, s.cfg.Cache.TTL); err != nil {
		log.Warn().Err(err).Msg("failed to patch remembered approvals")
	}
}
