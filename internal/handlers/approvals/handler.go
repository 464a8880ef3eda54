package approvals

import (
	"net/http"

	"campusvisit/infras/otel"
	"campusvisit/internal/domains/approvals/model"
	"campusvisit/internal/domains/approvals/service"
	sessionModel "campusvisit/internal/domains/session/model"
	"campusvisit/shared"
	"campusvisit/shared/constant"
	"campusvisit/shared/failure"
	"campusvisit/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const (
	pathApprovals   = "/staff/pending-approvals"
	requestAction   = "action"
	msgUnknownEntry = "Unknown action."
)

type Handler struct {
	service service.Approvals
	otel    otel.Otel
}

func New(service service.Approvals, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Route(pathApprovals, func(r chi.Router) {
		r.Get("/", handler.List)
		r.Post("/{"+constant.RequestParamID+"}/{"+requestAction+"}", handler.Transition)
	})
}

type approvalsPage struct {
	Board model.Board
}

// List renders the role's queue. After a transition the redirect carries ?patched=1
// and the remembered list is shown instead of refetching.
func (handler *Handler) List(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Approvals")
	defer scope.End()

	sess := sessionModel.FromContext(ctx)

	var (
		board model.Board
		err   error
	)

	if r.URL.Query().Get("patched") != "" {
		board, err = handler.service.Snapshot(ctx, sess.ID, sess.Role)
	} else {
		board, err = handler.service.List(ctx, sess.ID, sess.Role)
	}

	if err != nil {
		scope.TraceError(err)

		if response.WithExpiredSession(w, r, err) {
			return
		}

		log.Error().Err(err).Msg("failed to load approvals")
		sess.Error("Failed to load appointments. Please try again.")
	}

	response.WithPage(w, r, "staff/approvals", "Pending Approvals", approvalsPage{Board: board})
}

func (handler *Handler) Transition(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Transition")
	defer scope.End()

	sess := sessionModel.FromContext(ctx)

	id, err := shared.ParseID(chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		response.WithFailure(w, r, err, pathApprovals)

		return
	}

	action, ok := model.ParseAction(chi.URLParam(r, requestAction))
	if !ok {
		response.WithFailure(w, r, failure.BadRequestFromString(msgUnknownEntry), pathApprovals)

		return
	}

	if _, err := handler.service.Transition(ctx, sess.ID, sess.Role, id, action); err != nil {
		scope.TraceError(err)
		response.WithFailure(w, r, err, pathApprovals+"?patched=1")

		return
	}

	if action == model.ActionReset {
		sess.Info(action.Success(sess.Role))
	} else {
		sess.Success(action.Success(sess.Role))
	}

	response.WithRedirect(w, r, pathApprovals+"?patched=1")
}
