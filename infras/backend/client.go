package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"campusvisit/config"
	"campusvisit/infras/otel"
	"campusvisit/shared/constant"
	"campusvisit/shared/failure"

	"github.com/rs/zerolog/log"
)

// API is everything the portal asks of the scheduling backend.
type API interface {
	Auth
	Appointments
	Notifications
	Schools
	Feedbacks
	Contact
}

// Client is the REST wrapper around the scheduling backend.
type Client struct {
	baseURL string
	http    *http.Client
	otel    otel.Otel
}

func New(cfg *config.Config, ot otel.Otel) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.Backend.BaseURL, "/"),
		http:    &http.Client{Timeout: time.Duration(cfg.Backend.TimeoutSeconds) * time.Second},
		otel:    ot,
	}
}

var _ API = (*Client)(nil)

// WithToken stores the session's bearer token for every backend call made with ctx.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, constant.ContextKeyToken, token)
}

// TokenFrom returns the bearer token carried by ctx, if any.
func TokenFrom(ctx context.Context) string {
	token, _ := ctx.Value(constant.ContextKeyToken).(string)

	return token
}

type errorBody struct {
	Detail json.RawMessage `json:"detail"`
}

func (c *Client) sendJSON(ctx context.Context, method, path string, in, out any) (int, error) {
	var body io.Reader

	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return 0, failure.InternalError(fmt.Errorf("encode %s %s: %w", method, path, err))
		}

		body = bytes.NewReader(raw)
	}

	return c.do(ctx, method, path, body, constant.ContentTypeJSON, out)
}

func (c *Client) sendForm(ctx context.Context, path string, form url.Values, out any) (int, error) {
	return c.do(ctx, http.MethodPost, path, strings.NewReader(form.Encode()), constant.ContentTypeFormURLEncoded, out)
}

func (c *Client) do(ctx context.Context, method, path string, body io.Reader, contentType string, out any) (code int, err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelExternalScopeName, "backend "+method+" "+path)
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return 0, failure.InternalError(fmt.Errorf("build %s %s: %w", method, path, err))
	}

	req.Header.Set(constant.RequestHeaderAccept, constant.ContentTypeJSON)

	if body != nil {
		req.Header.Set(constant.RequestHeaderContentType, contentType)
	}

	if token := TokenFrom(ctx); token != "" {
		req.Header.Set(constant.RequestHeaderAuthorization, "Bearer "+token)
	}

	if requestID, ok := ctx.Value(constant.ContextKeyRequestID).(string); ok && requestID != "" {
		req.Header.Set(constant.RequestHeaderRequestID, requestID)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		log.Error().Err(err).Str("method", method).Str("path", path).Msg("backend request failed")

		return 0, failure.New(http.StatusBadGateway, "The scheduling service is unreachable. Please try again.")
	}
	defer resp.Body.Close()

	scope.SetAttribute("http.status_code", resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, failure.InternalError(fmt.Errorf("read %s %s: %w", method, path, err))
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		msg := detail(raw, resp.StatusCode)

		log.Warn().Int("status", resp.StatusCode).Str("method", method).Str("path", path).Str("detail", msg).Msg("backend rejected request")

		return resp.StatusCode, failure.New(resp.StatusCode, msg)
	}

	if out != nil && len(bytes.TrimSpace(raw)) > 0 {
		if err := json.Unmarshal(raw, out); err != nil {
			return resp.StatusCode, failure.InternalError(fmt.Errorf("decode %s %s: %w", method, path, err))
		}
	}

	return resp.StatusCode, nil
}

// detail extracts the backend's human message; validation errors carry a list instead of a string.
func detail(raw []byte, code int) string {
	var body errorBody
	if err := json.Unmarshal(raw, &body); err == nil && len(body.Detail) > 0 {
		var msg string
		if err := json.Unmarshal(body.Detail, &msg); err == nil && msg != "" {
			return msg
		}

		var items []struct {
			Msg string `json:"msg"`
		}
		if err := json.Unmarshal(body.Detail, &items); err == nil && len(items) > 0 && items[0].Msg != "" {
			return items[0].Msg
		}
	}

	return http.StatusText(code)
}

func idPath(format string, id int64) string {
	return fmt.Sprintf(format, id)
}
