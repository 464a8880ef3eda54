package response

import (
	"bytes"
	"encoding/json"
	"net/http"

	sessionModel "campusvisit/internal/domains/session/model"
	"campusvisit/permissions"
	"campusvisit/shared/constant"
	"campusvisit/shared/failure"
	"campusvisit/shared/logger"
	"campusvisit/shared/timezone"
	"campusvisit/transport/http/view"

	"github.com/gorilla/csrf"
)

const msgSessionExpired = "Your session has expired. Please log in again."

type Data[T any] struct {
	Data *T `json:"data,omitempty"`
}

type Error struct {
	Error *string `json:"error,omitempty"`
}

type Message struct {
	Message *string `json:"message,omitempty"`
}

// WithMessage sends a response with a simple text message
func WithMessage(writer http.ResponseWriter, code int, message string) {
	response(writer, code, Message{Message: &message})
}

// WithJSON sends a response containing a JSON object
func WithJSON(writer http.ResponseWriter, code int, jsonPayload any) {
	response(writer, code, Data[any]{Data: &jsonPayload})
}

// WithError sends a response with an error message
func WithError(writer http.ResponseWriter, err error) {
	code := failure.GetCode(err)
	errMsg := err.Error()

	response(writer, code, Error{Error: &errMsg})
}

// WithRequestLimitExceeded sends a default response for when the request limit is exceeded
func WithRequestLimitExceeded(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusTooManyRequests, constant.ResponseErrorRequestLimitExceeded)
}

// WithPreparingShutdown sends a default response for when the server is preparing to shut down
func WithPreparingShutdown(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusServiceUnavailable, constant.ResponseErrorPrepareShutdown)
}

// WithPage renders a screen inside its layout. Pending toasts are drained into the page,
// and the body is buffered so a template error never leaves half a page behind.
func WithPage(writer http.ResponseWriter, request *http.Request, name, title string, data any) {
	sess := sessionModel.FromContext(request.Context())

	page := view.Page{
		Title:     title,
		Path:      request.URL.Path,
		Role:      sess.Role,
		Name:      sess.Name,
		Email:     sess.Email,
		Toasts:    sess.DrainToasts(),
		CSRFToken: csrf.Token(request),
		Year:      timezone.Now().Year(),
		Data:      data,
	}

	if sess.LoggedIn() {
		page.Nav = permissions.Get().NavFor(sess.Role)
	}

	var body bytes.Buffer

	if err := view.Render(&body, name, page); err != nil {
		logger.ErrorWithStack(err)

		sess.Toasts = append(page.Toasts, sess.Toasts...)

		http.Error(writer, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)

		return
	}

	writer.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeHTML)
	writer.WriteHeader(http.StatusOK)

	if _, err := writer.Write(body.Bytes()); err != nil {
		logger.ErrorWithStack(err)
	}
}

// WithRedirect answers a form post or guard decision with 303 See Other.
func WithRedirect(writer http.ResponseWriter, request *http.Request, path string) {
	http.Redirect(writer, request, path, http.StatusSeeOther)
}

// WithFailure turns an error into a toast and redirects to back. A rejected token on a
// logged-in session ends the session and sends the user to the login screen instead.
func WithFailure(writer http.ResponseWriter, request *http.Request, err error, back string) {
	if WithExpiredSession(writer, request, err) {
		return
	}

	sessionModel.FromContext(request.Context()).Error(err.Error())

	WithRedirect(writer, request, back)
}

// WithExpiredSession ends a logged-in session whose token the backend rejected and
// redirects to login. It reports whether it answered the request.
func WithExpiredSession(writer http.ResponseWriter, request *http.Request, err error) bool {
	sess := sessionModel.FromContext(request.Context())

	if !failure.Is(err, http.StatusUnauthorized) || !sess.LoggedIn() {
		return false
	}

	sess.Clear()
	sess.Warn(msgSessionExpired)

	WithRedirect(writer, request, constant.PathLogin)

	return true
}

func response(writer http.ResponseWriter, code int, payload any) {
	response, err := json.Marshal(payload)
	if err != nil {
		logger.ErrorWithStack(err)

		return
	}

	writer.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	writer.WriteHeader(code)
	_, err = writer.Write(response)

	if err != nil {
		logger.ErrorWithStack(err)
	}
}
