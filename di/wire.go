//go:build wireinject
// +build wireinject

package di

import (
	"campusvisit/config"
	"campusvisit/infras/backend"
	"campusvisit/infras/jwt"
	"campusvisit/infras/otel"
	"campusvisit/infras/redis"
	"campusvisit/permissions"
	"campusvisit/shared/cache"
	"campusvisit/transport/http"
	"campusvisit/transport/http/middleware"
	"campusvisit/transport/http/router"

	accountService "campusvisit/internal/domains/account/service"
	appointmentsService "campusvisit/internal/domains/appointments/service"
	approvalsService "campusvisit/internal/domains/approvals/service"
	bookingService "campusvisit/internal/domains/booking/service"
	feedbackService "campusvisit/internal/domains/feedback/service"
	notificationsService "campusvisit/internal/domains/notifications/service"
	recoveryService "campusvisit/internal/domains/recovery/service"
	schoolsService "campusvisit/internal/domains/schools/service"
	sessionService "campusvisit/internal/domains/session/service"

	accountHandler "campusvisit/internal/handlers/account"
	appointmentsHandler "campusvisit/internal/handlers/appointments"
	approvalsHandler "campusvisit/internal/handlers/approvals"
	bookingHandler "campusvisit/internal/handlers/booking"
	feedbackHandler "campusvisit/internal/handlers/feedback"
	healthHandler "campusvisit/internal/handlers/health"
	notificationsHandler "campusvisit/internal/handlers/notifications"
	recoveryHandler "campusvisit/internal/handlers/recovery"
	schoolsHandler "campusvisit/internal/handlers/schools"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	otel.New,
	redis.New,
	jwt.New,
	backend.New,
)

var backendAPI = wire.NewSet(
	wire.Bind(new(backend.Auth), new(*backend.Client)),
	wire.Bind(new(backend.Appointments), new(*backend.Client)),
	wire.Bind(new(backend.Notifications), new(*backend.Client)),
	wire.Bind(new(backend.Schools), new(*backend.Client)),
	wire.Bind(new(backend.Feedbacks), new(*backend.Client)),
	wire.Bind(new(backend.Contact), new(*backend.Client)),
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAccessMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.New,
)

var domains = wire.NewSet(
	sessionService.New,
	accountService.New,
	recoveryService.New,
	bookingService.New,
	appointmentsService.New,
	approvalsService.New,
	notificationsService.New,
	schoolsService.New,
	feedbackService.New,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	accountHandler.New,
	recoveryHandler.New,
	bookingHandler.New,
	appointmentsHandler.New,
	approvalsHandler.New,
	notificationsHandler.New,
	schoolsHandler.New,
	feedbackHandler.New,
	healthHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		backendAPI,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
