package recovery

import (
	"net/http"

	"campusvisit/infras/otel"
	"campusvisit/internal/domains/recovery/model"
	"campusvisit/internal/domains/recovery/model/dto"
	"campusvisit/internal/domains/recovery/service"
	sessionModel "campusvisit/internal/domains/session/model"
	"campusvisit/shared/constant"
	"campusvisit/shared/timezone"
	"campusvisit/shared/validator"
	"campusvisit/transport/http/response"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	service service.Recovery
	otel    otel.Otel
}

func New(service service.Recovery, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Route(constant.PathRecover, func(r chi.Router) {
		r.Get("/", handler.Page)
		r.Post("/email", handler.SendCode)
		r.Post("/resend", handler.Resend)
		r.Post("/otp", handler.VerifyCode)
		r.Post("/reset", handler.ResetPassword)
		r.Post("/restart", handler.Restart)
	})
}

type recoverPage struct {
	Flow      model.Flow
	Remaining int
	Countdown string
}

func (handler *Handler) Page(w http.ResponseWriter, r *http.Request) {
	flow := handler.service.Flow(sessionModel.FromContext(r.Context()))
	now := timezone.Now()

	response.WithPage(w, r, "auth/recover", "Recover password", recoverPage{
		Flow:      *flow,
		Remaining: flow.Remaining(now),
		Countdown: flow.CountdownLabel(now),
	})
}

func (handler *Handler) SendCode(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SendCode")
	defer scope.End()

	req := dto.EmailRequest{}
	req.FromRequest(r)

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		response.WithFailure(w, r, err, constant.PathRecover)

		return
	}

	if err := handler.service.SendCode(ctx, sessionModel.FromContext(ctx), req); err != nil {
		scope.TraceError(err)
		response.WithFailure(w, r, err, constant.PathRecover)

		return
	}

	response.WithRedirect(w, r, constant.PathRecover)
}

func (handler *Handler) Resend(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Resend")
	defer scope.End()

	if err := handler.service.Resend(ctx, sessionModel.FromContext(ctx)); err != nil {
		scope.TraceError(err)
		response.WithFailure(w, r, err, constant.PathRecover)

		return
	}

	response.WithRedirect(w, r, constant.PathRecover)
}

func (handler *Handler) VerifyCode(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".VerifyCode")
	defer scope.End()

	req := dto.OTPRequest{}
	req.FromRequest(r)

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		response.WithFailure(w, r, err, constant.PathRecover)

		return
	}

	if err := handler.service.VerifyCode(ctx, sessionModel.FromContext(ctx), req); err != nil {
		scope.TraceError(err)
		response.WithFailure(w, r, err, constant.PathRecover)

		return
	}

	response.WithRedirect(w, r, constant.PathRecover)
}

// ResetPassword finishes the flow and sends the user to the login screen.
func (handler *Handler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ResetPassword")
	defer scope.End()

	req := dto.ResetRequest{}
	req.FromRequest(r)

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		response.WithFailure(w, r, err, constant.PathRecover)

		return
	}

	if err := handler.service.ResetPassword(ctx, sessionModel.FromContext(ctx), req); err != nil {
		scope.TraceError(err)
		response.WithFailure(w, r, err, constant.PathRecover)

		return
	}

	response.WithRedirect(w, r, constant.PathLogin)
}

func (handler *Handler) Restart(w http.ResponseWriter, r *http.Request) {
	handler.service.Restart(sessionModel.FromContext(r.Context()))

	response.WithRedirect(w, r, constant.PathRecover)
}
