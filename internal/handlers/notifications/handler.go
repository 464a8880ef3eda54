package notifications

import (
	"net/http"

	"campusvisit/infras/otel"
	"campusvisit/internal/domains/notifications/model"
	"campusvisit/internal/domains/notifications/model/dto"
	"campusvisit/internal/domains/notifications/service"
	sessionModel "campusvisit/internal/domains/session/model"
	"campusvisit/shared"
	"campusvisit/shared/constant"
	"campusvisit/shared/failure"
	"campusvisit/shared/validator"
	"campusvisit/transport/http/response"

	"github.com/go-chi/chi/v5"
)

const (
	pathNotifications = "/staff/notifications"
	pathNotify        = "/staff/notify"
	msgMarkedRead     = "Notification marked as read."
	msgAllRead        = "All notifications marked as read."
	msgSent           = "Notification sent to all guides."
	msgNotifyInvalid  = "Both title and message are required."
)

type Handler struct {
	service service.Notifications
	otel    otel.Otel
}

func New(service service.Notifications, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Route(pathNotifications, func(r chi.Router) {
		r.Get("/", handler.Inbox)
		r.Post("/read-all", handler.MarkAllRead)
		r.Post("/{"+constant.RequestParamID+"}/read", handler.MarkRead)
	})

	r.Get(pathNotify, handler.NotifyPage)
	r.Post(pathNotify, handler.Notify)
}

type inboxPage struct {
	Inbox  model.Inbox
	Type   string
	IsRead string
}

func (handler *Handler) Inbox(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Inbox")
	defer scope.End()

	page := inboxPage{
		Type:   r.URL.Query().Get("type"),
		IsRead: r.URL.Query().Get("is_read"),
	}

	inbox, err := handler.service.Inbox(ctx, page.Type, shared.ConvertStringToBool(page.IsRead))
	if err != nil {
		scope.TraceError(err)

		if response.WithExpiredSession(w, r, err) {
			return
		}

		sessionModel.FromContext(ctx).Error(err.Error())
	}

	page.Inbox = inbox

	response.WithPage(w, r, "staff/notifications", "Notifications", page)
}

func (handler *Handler) MarkRead(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".MarkRead")
	defer scope.End()

	id, err := shared.ParseID(chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		response.WithFailure(w, r, err, pathNotifications)

		return
	}

	if err := handler.service.MarkRead(ctx, id); err != nil {
		scope.TraceError(err)
		response.WithFailure(w, r, err, pathNotifications)

		return
	}

	sessionModel.FromContext(ctx).Success(msgMarkedRead)

	response.WithRedirect(w, r, pathNotifications)
}

func (handler *Handler) MarkAllRead(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".MarkAllRead")
	defer scope.End()

	if err := handler.service.MarkAllRead(ctx); err != nil {
		scope.TraceError(err)
		response.WithFailure(w, r, err, pathNotifications)

		return
	}

	sessionModel.FromContext(ctx).Success(msgAllRead)

	response.WithRedirect(w, r, pathNotifications)
}

func (handler *Handler) NotifyPage(w http.ResponseWriter, r *http.Request) {
	response.WithPage(w, r, "staff/notify", "Notify Guides", nil)
}

func (handler *Handler) Notify(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Notify")
	defer scope.End()

	req := dto.NotifyGuidesRequest{}
	req.FromRequest(r)

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		response.WithFailure(w, r, failure.BadRequestFromString(msgNotifyInvalid), pathNotify)

		return
	}

	if err := handler.service.NotifyGuides(ctx, req); err != nil {
		scope.TraceError(err)
		response.WithFailure(w, r, err, pathNotify)

		return
	}

	sessionModel.FromContext(ctx).Success(msgSent)

	response.WithRedirect(w, r, pathNotify)
}
