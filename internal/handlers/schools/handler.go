package schools

import (
	"net/http"
	"strings"

	"campusvisit/infras/otel"
	"campusvisit/internal/domains/schools/model"
	"campusvisit/internal/domains/schools/model/dto"
	"campusvisit/internal/domains/schools/service"
	sessionModel "campusvisit/internal/domains/session/model"
	"campusvisit/shared"
	"campusvisit/shared/constant"
	"campusvisit/shared/failure"
	"campusvisit/shared/validator"
	"campusvisit/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const (
	pathSchools     = "/staff/schools"
	msgRequired     = "Both name and city are required!"
	msgCreated      = "School created successfully!"
	msgUpdated      = "School updated successfully!"
	msgDeleted      = "School deleted successfully!"
	msgSchoolsError = "Failed to load schools. Please try again later."
)

type Handler struct {
	service service.Schools
	otel    otel.Otel
}

func New(service service.Schools, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Route(pathSchools, func(r chi.Router) {
		r.Get("/", handler.List)
		r.Post("/", handler.Create)
		r.Post("/toggle", handler.Toggle)
		r.Post("/{"+constant.RequestParamID+"}", handler.Update)
		r.Post("/{"+constant.RequestParamID+"}/delete", handler.Delete)
	})
}

type schoolsPage struct {
	Groups []model.CityGroup
}

func (handler *Handler) List(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Schools")
	defer scope.End()

	sess := sessionModel.FromContext(ctx)

	groups, err := handler.service.Grouped(ctx, sess.ExpandedCities)
	if err != nil {
		scope.TraceError(err)

		if response.WithExpiredSession(w, r, err) {
			return
		}

		log.Error().Err(err).Msg("failed to load schools")
		sess.Error(msgSchoolsError)
	}

	response.WithPage(w, r, "staff/schools", "Schools", schoolsPage{Groups: groups})
}

func (handler *Handler) Create(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateSchool")
	defer scope.End()

	req := dto.CreateSchoolRequest{}
	req.FromRequest(r)

	if req.Name == "" || req.City == "" {
		response.WithFailure(w, r, failure.BadRequestFromString(msgRequired), pathSchools)

		return
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		response.WithFailure(w, r, err, pathSchools)

		return
	}

	if _, err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		response.WithFailure(w, r, err, pathSchools)

		return
	}

	sessionModel.FromContext(ctx).Success(msgCreated)

	response.WithRedirect(w, r, pathSchools)
}

func (handler *Handler) Update(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateSchool")
	defer scope.End()

	id, err := shared.ParseID(chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		response.WithFailure(w, r, err, pathSchools)

		return
	}

	req := dto.UpdateSchoolRequest{}
	req.FromRequest(r)

	if req.Name == "" || req.City == "" {
		response.WithFailure(w, r, failure.BadRequestFromString(msgRequired), pathSchools)

		return
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		response.WithFailure(w, r, err, pathSchools)

		return
	}

	if _, err := handler.service.Update(ctx, id, req); err != nil {
		scope.TraceError(err)
		response.WithFailure(w, r, err, pathSchools)

		return
	}

	sessionModel.FromContext(ctx).Success(msgUpdated)

	response.WithRedirect(w, r, pathSchools)
}

func (handler *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteSchool")
	defer scope.End()

	id, err := shared.ParseID(chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		response.WithFailure(w, r, err, pathSchools)

		return
	}

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		response.WithFailure(w, r, err, pathSchools)

		return
	}

	sessionModel.FromContext(ctx).Success(msgDeleted)

	response.WithRedirect(w, r, pathSchools)
}

// Toggle flips a city's expanded state; it lives in the session so it survives reloads.
func (handler *Handler) Toggle(w http.ResponseWriter, r *http.Request) {
	city := strings.TrimSpace(r.PostFormValue(constant.RequestParamCity))
	if city != "" {
		sessionModel.FromContext(r.Context()).ToggleCity(city)
	}

	response.WithRedirect(w, r, pathSchools)
}
