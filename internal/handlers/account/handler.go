package account

import (
	"net/http"

	"campusvisit/infras/backend"
	"campusvisit/infras/otel"
	"campusvisit/internal/domains/account/model/dto"
	"campusvisit/internal/domains/account/service"
	schoolsService "campusvisit/internal/domains/schools/service"
	sessionModel "campusvisit/internal/domains/session/model"
	"campusvisit/permissions"
	"campusvisit/shared/constant"
	"campusvisit/shared/validator"
	"campusvisit/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const (
	modeRegister    = "register"
	pathRegister    = constant.PathLogin + "?mode=" + modeRegister
	pathContact     = "/visitor/contact"
	pathProfile     = "/visitor/my-profile"
	pathSettings    = "/staff/settings"
	pathAddStaff    = "/staff/add-staff"
	msgSchoolsError = "Failed to load schools. Please try again later."
)

type Handler struct {
	service service.Account
	schools schoolsService.Schools
	policy  *permissions.Policy
	otel    otel.Otel
}

func New(service service.Account, schools schoolsService.Schools, policy *permissions.Policy, otel otel.Otel) Handler {
	return Handler{
		service: service,
		schools: schools,
		policy:  policy,
		otel:    otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Get(constant.PathLogin, handler.LoginPage)
	r.Post(constant.PathLogin+"/login", handler.Login)
	r.Post(constant.PathLogin+"/register", handler.Register)
	r.Post("/logout", handler.Logout)

	r.Get(pathContact, handler.ContactPage)
	r.Post(pathContact, handler.Contact)
	r.Get(pathProfile, handler.ProfilePage)
	r.Post(pathProfile, handler.UpdateProfile)
	r.Get(pathSettings, handler.ProfilePage)
	r.Post(pathSettings, handler.UpdateProfile)
	r.Get(pathAddStaff, handler.AddUserPage)
	r.Post(pathAddStaff, handler.AddUser)
}

func (handler *Handler) APIRouter(r chi.Router) {
	r.Get("/api/nav", handler.Nav)
}

type authPage struct {
	Mode    string
	Email   string
	Schools []backend.School
}

type profilePage struct {
	Name  string
	Email string
}

type addUserPage struct {
	Schools []backend.School
}

func (handler *Handler) schoolOptions(r *http.Request) []backend.School {
	schools, err := handler.schools.GetAll(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("failed to load school options")
		sessionModel.FromContext(r.Context()).Error(msgSchoolsError)

		return []backend.School{}
	}

	return schools
}

// LoginPage shows login, or registration with ?mode=register. Logged-in users go home.
func (handler *Handler) LoginPage(w http.ResponseWriter, r *http.Request) {
	_, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".LoginPage")
	defer scope.End()

	sess := sessionModel.FromContext(r.Context())
	if sess.LoggedIn() {
		response.WithRedirect(w, r, handler.policy.Home(sess.Role))

		return
	}

	page := authPage{Mode: r.URL.Query().Get("mode")}
	title := "Log in"

	if page.Mode == modeRegister {
		page.Schools = handler.schoolOptions(r)
		title = "Register"
	}

	response.WithPage(w, r, "auth/login", title, page)
}

func (handler *Handler) Login(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Login")
	defer scope.End()

	req := dto.LoginRequest{}
	req.FromRequest(r)

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		response.WithFailure(w, r, err, constant.PathLogin)

		return
	}

	sess, redirect, err := handler.service.Login(ctx, sessionModel.FromContext(ctx), req)
	if err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("failed to log in")

		response.WithFailure(w, r, err, constant.PathLogin)

		return
	}

	sessionModel.Replace(ctx, sess)

	scope.AddEvent("User logged in as " + sess.Role)

	response.WithRedirect(w, r, redirect)
}

func (handler *Handler) Register(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Register")
	defer scope.End()

	req := dto.RegisterRequest{}
	req.FromRequest(r)

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		response.WithFailure(w, r, err, pathRegister)

		return
	}

	if err := handler.service.Register(ctx, sessionModel.FromContext(ctx), req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to register")

		response.WithFailure(w, r, err, pathRegister)

		return
	}

	response.WithRedirect(w, r, constant.PathLogin)
}

func (handler *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Logout")
	defer scope.End()

	sess, err := handler.service.Logout(ctx, sessionModel.FromContext(ctx))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to log out")

		response.WithFailure(w, r, err, constant.PathLogin)

		return
	}

	sessionModel.Replace(ctx, sess)

	response.WithRedirect(w, r, constant.PathLogin)
}

func (handler *Handler) ContactPage(w http.ResponseWriter, r *http.Request) {
	sess := sessionModel.FromContext(r.Context())

	response.WithPage(w, r, "visitor/contact", "Contact", profilePage{Name: sess.Name, Email: sess.Email})
}

func (handler *Handler) Contact(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Contact")
	defer scope.End()

	req := dto.ContactRequest{}
	req.FromRequest(r)

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		response.WithFailure(w, r, err, pathContact)

		return
	}

	if err := handler.service.Contact(ctx, sessionModel.FromContext(ctx), req); err != nil {
		scope.TraceError(err)
		response.WithFailure(w, r, err, pathContact)

		return
	}

	response.WithRedirect(w, r, pathContact)
}

// ProfilePage serves both the visitor profile and the staff settings screen.
func (handler *Handler) ProfilePage(w http.ResponseWriter, r *http.Request) {
	sess := sessionModel.FromContext(r.Context())
	page := profilePage{Name: sess.Name, Email: sess.Email}

	if sess.IsStaff() {
		response.WithPage(w, r, "staff/settings", "Settings", page)

		return
	}

	response.WithPage(w, r, "visitor/profile", "My Profile", page)
}

func (handler *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateProfile")
	defer scope.End()

	back := r.URL.Path

	req := dto.ProfileRequest{}
	req.FromRequest(r)

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		response.WithFailure(w, r, err, back)

		return
	}

	if err := handler.service.UpdateProfile(ctx, sessionModel.FromContext(ctx), req); err != nil {
		scope.TraceError(err)
		response.WithFailure(w, r, err, back)

		return
	}

	response.WithRedirect(w, r, back)
}

func (handler *Handler) AddUserPage(w http.ResponseWriter, r *http.Request) {
	response.WithPage(w, r, "staff/add_staff", "Add User", addUserPage{Schools: handler.schoolOptions(r)})
}

func (handler *Handler) AddUser(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AddUser")
	defer scope.End()

	req := dto.AddUserRequest{}
	req.FromRequest(r)

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		response.WithFailure(w, r, err, pathAddStaff)

		return
	}

	if err := handler.service.AddUser(ctx, sessionModel.FromContext(ctx), req); err != nil {
		scope.TraceError(err)
		response.WithFailure(w, r, err, pathAddStaff)

		return
	}

	scope.AddEvent("Account created with role " + req.Role)

	response.WithRedirect(w, r, pathAddStaff)
}

// Nav returns the filtered navigation of the current session as JSON.
// @Summary Navigation of the current session
// @Description Empty when logged out; otherwise the role's entries minus its restricted ones.
// @Tags Account
// @Produce json
// @Success 200 {object} response.Data[[]permissions.NavItem]
// @Router /api/nav [get]
func (handler *Handler) Nav(w http.ResponseWriter, r *http.Request) {
	sess := sessionModel.FromContext(r.Context())
	if !sess.LoggedIn() {
		response.WithJSON(w, http.StatusOK, []permissions.NavItem{})

		return
	}

	response.WithJSON(w, http.StatusOK, handler.policy.NavFor(sess.Role))
}
