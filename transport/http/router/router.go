package router

import (
	"net/http"

	_ "campusvisit/docs"
	sessionModel "campusvisit/internal/domains/session/model"
	"campusvisit/internal/handlers/account"
	"campusvisit/internal/handlers/appointments"
	"campusvisit/internal/handlers/approvals"
	"campusvisit/internal/handlers/booking"
	"campusvisit/internal/handlers/feedback"
	"campusvisit/internal/handlers/health"
	"campusvisit/internal/handlers/notifications"
	"campusvisit/internal/handlers/recovery"
	"campusvisit/internal/handlers/schools"
	"campusvisit/permissions"
	"campusvisit/transport/http/middleware"
	"campusvisit/transport/http/response"
	"campusvisit/transport/http/view"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger"
)

const pathDocs = "/api/docs"

type DomainHandlers struct {
	Account       account.Handler
	Recovery      recovery.Handler
	Booking       booking.Handler
	Appointments  appointments.Handler
	Approvals     approvals.Handler
	Notifications notifications.Handler
	Schools       schools.Handler
	Feedback      feedback.Handler
	Health        health.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	App            middleware.AppMiddleware
	Access         middleware.Access
	Policy         *permissions.Policy
}

// SetupRoutes mounts every screen on router. Sessions load before CSRF and the guard,
// so both can read and toast into the session.
func (r *Router) SetupRoutes(router chi.Router) {
	router.Use(r.App.RequestID)
	router.Use(r.App.Logger)
	router.Use(r.App.Tracing)
	router.Use(r.App.RateLimit())

	router.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(view.Static()))))
	r.DomainHandlers.Health.Router(router)
	router.Get(pathDocs+"/*", httpSwagger.Handler(httpSwagger.URL(pathDocs+"/doc.json")))

	router.Group(func(pages chi.Router) {
		pages.Use(r.Access.Session)
		pages.Use(r.Access.CSRF())
		pages.Use(r.Access.Guard)

		pages.Group(func(api chi.Router) {
			api.Use(r.App.CORS())

			r.DomainHandlers.Account.APIRouter(api)
			r.DomainHandlers.Booking.APIRouter(api)
		})

		r.DomainHandlers.Account.Router(pages)
		r.DomainHandlers.Recovery.Router(pages)
		r.DomainHandlers.Booking.Router(pages)
		r.DomainHandlers.Appointments.Router(pages)
		r.DomainHandlers.Approvals.Router(pages)
		r.DomainHandlers.Notifications.Router(pages)
		r.DomainHandlers.Schools.Router(pages)
		r.DomainHandlers.Feedback.Router(pages)

		pages.Get("/", r.home)
	})

	router.NotFound(chi.Chain(r.Access.Session).HandlerFunc(r.home).ServeHTTP)
}

// home sends a logged-in user to their role's landing page and everyone else to login.
func (r *Router) home(w http.ResponseWriter, req *http.Request) {
	sess := sessionModel.FromContext(req.Context())

	response.WithRedirect(w, req, r.Policy.Home(sess.Role))
}

func New(domainHandlers DomainHandlers, app middleware.AppMiddleware, access middleware.Access, policy *permissions.Policy) Router {
	return Router{
		DomainHandlers: domainHandlers,
		App:            app,
		Access:         access,
		Policy:         policy,
	}
}
