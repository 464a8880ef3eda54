package appointments

import (
	"net/http"

	"campusvisit/infras/otel"
	"campusvisit/internal/domains/appointments/model"
	"campusvisit/internal/domains/appointments/service"
	sessionModel "campusvisit/internal/domains/session/model"
	"campusvisit/shared"
	"campusvisit/shared/constant"
	gDto "campusvisit/shared/dto"
	"campusvisit/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const (
	pathMyAppointments = "/visitor/my-appointments"
	msgCanceled        = "Appointment canceled successfully."
)

type Handler struct {
	service service.Appointments
	otel    otel.Otel
}

func New(service service.Appointments, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Get(constant.PathVisitorHome, handler.VisitorHome)
	r.Get("/visitor/about", handler.About)
	r.Get(pathMyAppointments, handler.Mine)
	r.Post(pathMyAppointments+"/{"+constant.RequestParamID+"}/cancel", handler.Cancel)

	r.Get(constant.PathStaffHome, handler.Dashboard)
	r.Get("/staff/appointments", handler.Guide)
	r.Get("/staff/calendar", handler.Calendar)
	r.Get("/staff/analytics", handler.Stats)
}

type myAppointmentsPage struct {
	Rows []model.VisitorRow
	Meta gDto.Metadata
}

func (handler *Handler) VisitorHome(w http.ResponseWriter, r *http.Request) {
	response.WithPage(w, r, "visitor/home", "Home", nil)
}

func (handler *Handler) About(w http.ResponseWriter, r *http.Request) {
	response.WithPage(w, r, "visitor/about", "About", nil)
}

func (handler *Handler) Mine(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Mine")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	rows, err := handler.service.Mine(ctx)
	if err != nil {
		scope.TraceError(err)

		if response.WithExpiredSession(w, r, err) {
			return
		}

		log.Error().Err(err).Msg("failed to load visitor appointments")
		sessionModel.FromContext(ctx).Error(err.Error())
	}

	page := myAppointmentsPage{}
	page.Rows, page.Meta = gDto.Paginate(rows, queryParams)

	response.WithPage(w, r, "visitor/appointments", "My Appointments", page)
}

func (handler *Handler) Cancel(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Cancel")
	defer scope.End()

	id, err := shared.ParseID(chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		response.WithFailure(w, r, err, pathMyAppointments)

		return
	}

	if err := handler.service.Cancel(ctx, id); err != nil {
		scope.TraceError(err)
		response.WithFailure(w, r, err, pathMyAppointments)

		return
	}

	sessionModel.FromContext(ctx).Success(msgCanceled)

	response.WithRedirect(w, r, pathMyAppointments)
}

func (handler *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Dashboard")
	defer scope.End()

	sess := sessionModel.FromContext(ctx)

	board, err := handler.service.Dashboard(ctx, sess.Role)
	if err != nil {
		scope.TraceError(err)

		if response.WithExpiredSession(w, r, err) {
			return
		}

		log.Error().Err(err).Msg("failed to load dashboard")
		sess.Error("Failed to load appointments. Please try again.")

		board = model.Dashboard{Role: sess.Role}
	}

	response.WithPage(w, r, "staff/home", "Dashboard", board)
}

func (handler *Handler) Guide(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Guide")
	defer scope.End()

	lists, err := handler.service.Guide(ctx)
	if err != nil {
		scope.TraceError(err)

		if response.WithExpiredSession(w, r, err) {
			return
		}

		sessionModel.FromContext(ctx).Error(err.Error())
	}

	response.WithPage(w, r, "staff/appointments", "Appointments", lists)
}

func (handler *Handler) Calendar(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Calendar")
	defer scope.End()

	days, err := handler.service.Calendar(ctx)
	if err != nil {
		scope.TraceError(err)

		if response.WithExpiredSession(w, r, err) {
			return
		}

		sessionModel.FromContext(ctx).Error(err.Error())
	}

	response.WithPage(w, r, "staff/calendar", "Calendar", days)
}

func (handler *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Stats")
	defer scope.End()

	stats, err := handler.service.Stats(ctx)
	if err != nil {
		scope.TraceError(err)

		if response.WithExpiredSession(w, r, err) {
			return
		}

		sessionModel.FromContext(ctx).Error(err.Error())
	}

	response.WithPage(w, r, "staff/analytics", "Statistics", stats)
}
