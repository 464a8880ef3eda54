package feedback

import (
	"net/http"
	"strconv"

	"campusvisit/infras/otel"
	"campusvisit/internal/domains/feedback/model"
	"campusvisit/internal/domains/feedback/model/dto"
	"campusvisit/internal/domains/feedback/service"
	sessionModel "campusvisit/internal/domains/session/model"
	"campusvisit/shared"
	"campusvisit/shared/constant"
	gDto "campusvisit/shared/dto"
	"campusvisit/shared/validator"
	"campusvisit/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const (
	pathFeedback     = "/visitor/feedback"
	pathFeedbackList = "/staff/feedback-list"
	msgThanks        = "Thank you for your feedback!"
	msgListError     = "Failed to load feedback. Please try again."
)

var ratings = []int{1, 2, 3, 4, 5}

type Handler struct {
	service service.Feedback
	otel    otel.Otel
}

func New(service service.Feedback, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Get(pathFeedback+"/{"+constant.RequestParamAppointmentID+"}", handler.Form)
	r.Post(pathFeedback+"/{"+constant.RequestParamAppointmentID+"}", handler.Submit)
	r.Get(pathFeedbackList, handler.List)
}

type formPage struct {
	AppointmentID int64
	Ratings       []int
}

type listPage struct {
	Entries []model.Entry
	Meta    gDto.Metadata
}

func (handler *Handler) Form(w http.ResponseWriter, r *http.Request) {
	id, err := shared.ParseID(chi.URLParam(r, constant.RequestParamAppointmentID))
	if err != nil {
		response.WithFailure(w, r, err, constant.PathVisitorHome)

		return
	}

	response.WithPage(w, r, "visitor/feedback", "Feedback", formPage{AppointmentID: id, Ratings: ratings})
}

func (handler *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SubmitFeedback")
	defer scope.End()

	id, err := shared.ParseID(chi.URLParam(r, constant.RequestParamAppointmentID))
	if err != nil {
		scope.TraceError(err)
		response.WithFailure(w, r, err, constant.PathVisitorHome)

		return
	}

	back := pathFeedback + "/" + strconv.FormatInt(id, 10)

	req := dto.SubmitFeedbackRequest{}
	req.FromRequest(r)

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		response.WithFailure(w, r, err, back)

		return
	}

	if _, err := handler.service.Submit(ctx, id, req); err != nil {
		scope.TraceError(err)
		response.WithFailure(w, r, err, back)

		return
	}

	sessionModel.FromContext(ctx).Success(msgThanks)

	response.WithRedirect(w, r, constant.PathVisitorHome)
}

func (handler *Handler) List(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".FeedbackList")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	entries, err := handler.service.List(ctx)
	if err != nil {
		scope.TraceError(err)

		if response.WithExpiredSession(w, r, err) {
			return
		}

		log.Error().Err(err).Msg("failed to load feedback list")
		sessionModel.FromContext(ctx).Error(msgListError)
	}

	page := listPage{}
	page.Entries, page.Meta = gDto.Paginate(entries, queryParams)

	response.WithPage(w, r, "staff/feedback_list", "Feedback", page)
}
