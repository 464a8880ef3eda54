package booking

import (
	"net/http"

	"campusvisit/config"
	"campusvisit/infras/otel"
	"campusvisit/internal/domains/booking/model"
	"campusvisit/internal/domains/booking/model/dto"
	"campusvisit/internal/domains/booking/service"
	sessionModel "campusvisit/internal/domains/session/model"
	"campusvisit/shared/constant"
	"campusvisit/shared/timezone"
	"campusvisit/shared/validator"
	"campusvisit/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const pathBooking = "/visitor/appointment"

type Handler struct {
	service service.Booking
	cfg     *config.Config
	otel    otel.Otel
}

func New(service service.Booking, cfg *config.Config, otel otel.Otel) Handler {
	return Handler{
		service: service,
		cfg:     cfg,
		otel:    otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Route(pathBooking, func(r chi.Router) {
		r.Get("/", handler.Page)
		r.Post("/date", handler.SelectDate)
		r.Post("/time", handler.SelectTime)
		r.Post("/details", handler.SetDetails)
		r.Post("/back", handler.Back)
		r.Post("/edit", handler.Edit)
		r.Post("/submit", handler.Submit)
	})
}

func (handler *Handler) APIRouter(r chi.Router) {
	r.Get("/api/available-times/{"+constant.RequestParamDate+"}", handler.AvailableTimes)
}

type bookingPage struct {
	Wizard      model.Wizard
	Step        int
	Slots       []model.TimeSlot
	MinDate     string
	MaxDate     string
	MinVisitors int
}

func (handler *Handler) Page(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".BookingPage")
	defer scope.End()

	sess := sessionModel.FromContext(ctx)
	wizard := handler.service.Draft(sess)
	today := timezone.Today()

	page := bookingPage{
		Wizard:      *wizard,
		Step:        int(wizard.Step),
		MaxDate:     timezone.FormatDate(today.AddDate(0, 0, handler.cfg.Booking.LookaheadDays)),
		MinVisitors: handler.cfg.Booking.MinVisitors,
	}

	if first, err := model.FirstBookableDay(today, handler.cfg.Booking.LookaheadDays); err == nil {
		page.MinDate = timezone.FormatDate(first)
	}

	if wizard.Step == model.StepTime {
		slots, err := handler.service.Slots(ctx, sess)
		if err != nil {
			scope.TraceError(err)
			log.Error().Err(err).Msg("failed to load time slots")
			sess.Error("Failed to load available times. Please try again.")
		}

		page.Slots = slots
	}

	response.WithPage(w, r, "visitor/book", "Book a Tour", page)
}

func (handler *Handler) SelectDate(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SelectDate")
	defer scope.End()

	req := dto.DateRequest{}
	req.FromRequest(r)

	if req.Date == "" {
		response.WithFailure(w, r, model.ErrDateRequired, pathBooking)

		return
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		response.WithFailure(w, r, err, pathBooking)

		return
	}

	if err := handler.service.SelectDate(ctx, sessionModel.FromContext(ctx), req); err != nil {
		scope.TraceError(err)
		response.WithFailure(w, r, err, pathBooking)

		return
	}

	response.WithRedirect(w, r, pathBooking)
}

func (handler *Handler) SelectTime(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SelectTime")
	defer scope.End()

	req := dto.TimeRequest{}
	req.FromRequest(r)

	if req.Time == "" {
		response.WithFailure(w, r, model.ErrTimeRequired, pathBooking)

		return
	}

	if err := handler.service.SelectTime(ctx, sessionModel.FromContext(ctx), req); err != nil {
		scope.TraceError(err)
		response.WithFailure(w, r, err, pathBooking)

		return
	}

	response.WithRedirect(w, r, pathBooking)
}

func (handler *Handler) SetDetails(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SetDetails")
	defer scope.End()

	req := dto.DetailsRequest{}
	req.FromRequest(r)

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		response.WithFailure(w, r, err, pathBooking)

		return
	}

	if err := handler.service.SetDetails(ctx, sessionModel.FromContext(ctx), req); err != nil {
		scope.TraceError(err)
		response.WithFailure(w, r, err, pathBooking)

		return
	}

	response.WithRedirect(w, r, pathBooking)
}

func (handler *Handler) Back(w http.ResponseWriter, r *http.Request) {
	handler.service.Back(sessionModel.FromContext(r.Context()))

	response.WithRedirect(w, r, pathBooking)
}

func (handler *Handler) Edit(w http.ResponseWriter, r *http.Request) {
	handler.service.Edit(sessionModel.FromContext(r.Context()))

	response.WithRedirect(w, r, pathBooking)
}

// Submit creates the appointment; on success the visitor lands on their home page.
func (handler *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Submit")
	defer scope.End()

	appointment, err := handler.service.Submit(ctx, sessionModel.FromContext(ctx))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to submit booking")

		response.WithFailure(w, r, err, pathBooking)

		return
	}

	scope.SetAttribute("appointment.id", appointment.ID)

	response.WithRedirect(w, r, constant.PathVisitorHome)
}

// AvailableTimes lists the open start times of one date for the date picker.
// @Summary List bookable start times
// @Description Returns the fixed tour slots of a date, each marked available when the backend still offers it.
// @Tags Booking
// @Produce json
// @Param date path string true "Date in YYYY-MM-DD"
// @Success 200 {object} response.Data[[]model.TimeSlot]
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Message
// @Failure 500 {object} response.Error
// @Router /api/available-times/{date} [get]
func (handler *Handler) AvailableTimes(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AvailableTimes")
	defer scope.End()

	if !sessionModel.FromContext(ctx).LoggedIn() {
		response.WithMessage(w, http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))

		return
	}

	date := chi.URLParam(r, constant.RequestParamDate)

	times, err := handler.service.AvailableTimes(ctx, date)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("date", date).Msg("failed to fetch available times")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, model.Slots(times, ""))
}
