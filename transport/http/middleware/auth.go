package middleware

import (
	"crypto/rand"
	"crypto/sha256"
	"net/http"
	"sync"

	"campusvisit/config"
	"campusvisit/infras/backend"
	"campusvisit/infras/otel"
	sessionModel "campusvisit/internal/domains/session/model"
	sessionService "campusvisit/internal/domains/session/service"
	"campusvisit/permissions"
	"campusvisit/shared/constant"
	"campusvisit/transport/http/response"

	"github.com/google/uuid"
	"github.com/gorilla/csrf"
	"github.com/rs/zerolog/log"
)

const msgFormExpired = "Your form has expired. Please try again."

// Access loads the browser session and applies the role policy to page routes.
type Access interface {
	Session(next http.Handler) http.Handler
	Guard(next http.Handler) http.Handler
	CSRF() func(http.Handler) http.Handler
}

type accessImpl struct {
	sessions sessionService.Session
	policy   *permissions.Policy
	otel     otel.Otel
	cfg      *config.Config
}

func NewAccessMiddleware(sessions sessionService.Session, policy *permissions.Policy, otel otel.Otel, cfg *config.Config) Access {
	return &accessImpl{
		sessions: sessions,
		policy:   policy,
		otel:     otel,
		cfg:      cfg,
	}
}

// sessionWriter persists the session and sets its cookie right before the first byte goes out,
// so a redirect never reaches the browser ahead of the state it depends on.
type sessionWriter struct {
	http.ResponseWriter
	once   sync.Once
	commit func()
}

func (s *sessionWriter) WriteHeader(code int) {
	s.once.Do(s.commit)
	s.ResponseWriter.WriteHeader(code)
}

func (s *sessionWriter) Write(body []byte) (int, error) {
	s.once.Do(s.commit)

	return s.ResponseWriter.Write(body) //nolint:wrapcheck
}

func (s *sessionWriter) Unwrap() http.ResponseWriter {
	return s.ResponseWriter
}

func (m *accessImpl) Session(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx, scope := m.otel.NewScope(request.Context(), constant.OtelSessionScopeName, "session.middleware")

		var id string
		if cookie, err := request.Cookie(m.cfg.Session.CookieName); err == nil {
			id = cookie.Value
		}

		sess, err := m.sessions.Load(ctx, id)
		if err != nil {
			scope.TraceError(err)
			log.Error().Err(err).Msg("session store unavailable, continuing logged out")

			sess = &sessionModel.Session{ID: uuid.NewString()}
		}

		scope.SetAttribute("session.role", sess.Role)
		scope.End()

		ctx = sessionModel.NewContext(request.Context(), sess)
		ctx = backend.WithToken(ctx, sess.Token)

		sw := &sessionWriter{ResponseWriter: writer}
		sw.commit = func() {
			current := sessionModel.FromContext(ctx)

			if err := m.sessions.Save(ctx, current); err != nil {
				log.Error().Err(err).Str("session", current.ID).Msg("failed to persist session")
			}

			http.SetCookie(writer, &http.Cookie{
				Name:     m.cfg.Session.CookieName,
				Value:    current.ID,
				Path:     "/",
				MaxAge:   m.cfg.Session.TTLMinutes * constant.MinutesToSeconds,
				HttpOnly: true,
				Secure:   m.cfg.Session.Secure,
				SameSite: http.SameSiteLaxMode,
			})
		}

		next.ServeHTTP(sw, request.WithContext(ctx))

		sw.once.Do(sw.commit)
	})
}

// Guard applies the role policy to protected groups: no role goes to login, a foreign
// group or a restricted screen goes to the role's home.
func (m *accessImpl) Guard(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		group, protected := m.policy.GroupFor(request.URL.Path)
		if !protected {
			next.ServeHTTP(writer, request)

			return
		}

		_, scope := m.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, "guard.middleware")
		defer scope.End()

		sess := sessionModel.FromContext(request.Context())
		role := ""

		if sess.LoggedIn() {
			role = sess.Role
		}

		scope.SetAttributes(map[string]any{
			"middleware.type": "guard",
			"http.path":       request.URL.Path,
			"user_role":       role,
			"allowed_roles":   group.Roles,
		})

		switch m.policy.Guard(group.Roles, role) {
		case permissions.RedirectLogin:
			scope.SetAttribute("reason", "no_role")
			response.WithRedirect(writer, request, m.policy.Login)

			return
		case permissions.RedirectHome:
			scope.SetAttribute("reason", "role_not_allowed")
			response.WithRedirect(writer, request, m.policy.Home(role))

			return
		}

		if !m.policy.Allowed(role, request.URL.Path) {
			scope.SetAttribute("reason", "restricted")
			response.WithRedirect(writer, request, m.policy.Home(role))

			return
		}

		next.ServeHTTP(writer, request)
	})
}

// CSRF protects every form post. A rejected post comes back as an error toast on the previous page.
func (m *accessImpl) CSRF() func(http.Handler) http.Handler {
	settings := m.cfg.App.CSRF
	if !settings.Enable {
		return func(next http.Handler) http.Handler {
			return next
		}
	}

	protect := csrf.Protect(m.csrfKey(),
		csrf.Secure(settings.Secure),
		csrf.Path("/"),
		csrf.SameSite(csrf.SameSiteLaxMode),
		csrf.ErrorHandler(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			log.Warn().Err(csrf.FailureReason(request)).Str("path", request.URL.Path).Msg("csrf check failed")

			sessionModel.FromContext(request.Context()).Error(msgFormExpired)

			back := request.URL.Path
			if referer, err := request.URL.Parse(request.Referer()); err == nil && referer.Path != "" {
				back = referer.Path
			}

			response.WithRedirect(writer, request, back)
		})),
	)

	return func(next http.Handler) http.Handler {
		protected := protect(next)

		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			if !settings.Secure {
				request = csrf.PlaintextHTTPRequest(request)
			}

			protected.ServeHTTP(writer, request)
		})
	}
}

// csrfKey stretches the configured secret to the 32 bytes gorilla/csrf wants.
// Without one, tokens only survive until the next restart.
func (m *accessImpl) csrfKey() []byte {
	if m.cfg.App.CSRF.Key != "" {
		key := sha256.Sum256([]byte(m.cfg.App.CSRF.Key))

		return key[:]
	}

	log.Warn().Msg("No CSRF key configured, generating an ephemeral one")

	key := make([]byte, sha256.Size)
	if _, err := rand.Read(key); err != nil {
		log.Fatal().Err(err).Msg("Failed to generate CSRF key")
	}

	return key
}
