package service

import (
	"context"

	"campusvisit/infras/backend"
	"campusvisit/infras/otel"
	"campusvisit/internal/domains/notifications/model"
	"campusvisit/internal/domains/notifications/model/dto"
	"campusvisit/shared/constant"
	"campusvisit/shared/failure"

	"github.com/rs/zerolog/log"
)

type Notifications interface {
	Inbox(ctx context.Context, kind string, isRead *bool) (model.Inbox, error)
	MarkRead(ctx context.Context, id int64) error
	MarkAllRead(ctx context.Context) error
	NotifyGuides(ctx context.Context, req dto.NotifyGuidesRequest) error
}

type serviceImpl struct {
	notifications backend.Notifications
	otel          otel.Otel
}

func New(notifications backend.Notifications, otel otel.Otel) Notifications {
	return &serviceImpl{
		notifications: notifications,
		otel:          otel,
	}
}

// Inbox lists the user's notifications; a type or read filter switches to the backend's filter endpoint.
func (s *serviceImpl) Inbox(ctx context.Context, kind string, isRead *bool) (res model.Inbox, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Inbox")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	var notifications []backend.Notification

	if kind == "" && isRead == nil {
		notifications, err = s.notifications.ListNotifications(ctx)
	} else {
		notifications, err = s.notifications.FilterNotifications(ctx, kind, isRead)
	}

	if err != nil {
		log.Error().Err(err).Msg("failed to load notifications")

		return res, failure.New(failure.GetCode(err), "Failed to load notifications. Please try again.")
	}

	return model.Split(notifications), nil
}

func (s *serviceImpl) MarkRead(ctx context.Context, id int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".MarkRead")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.notifications.MarkNotificationRead(ctx, id); err != nil {
		log.Error().Err(err).Int64("notification", id).Msg("failed to mark notification as read")

		return failure.New(failure.GetCode(err), "Failed to mark notification as read. Please try again.")
	}

	return nil
}

func (s *serviceImpl) MarkAllRead(ctx context.Context) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".MarkAllRead")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.notifications.MarkAllNotificationsRead(ctx); err != nil {
		log.Error().Err(err).Msg("failed to mark all notifications as read")

		return failure.New(failure.GetCode(err), "Failed to mark notifications as read. Please try again.")
	}

	return nil
}

func (s *serviceImpl) NotifyGuides(ctx context.Context, req dto.NotifyGuidesRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".NotifyGuides")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.notifications.SendCustomNotification(ctx, req.Message, req.Type); err != nil {
		log.Error().Err(err).Str("type", req.Type).Msg("failed to notify guides")

		return failure.New(failure.GetCode(err), "Failed to send notification. Please try again.")
	}

	return nil
}
