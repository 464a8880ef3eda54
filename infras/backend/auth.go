package backend

//go:generate go run go.uber.org/mock/mockgen -source=./auth.go -destination=./mocks/auth_mock.go -package=mocks

import (
	"context"
	"net/http"
	"net/url"
)

type Auth interface {
	Login(ctx context.Context, email, password string) (LoginResult, error)
	Register(ctx context.Context, req RegisterRequest) error
	SendOTP(ctx context.Context, email string) (int, error)
	VerifyOTP(ctx context.Context, email, otp string) (int, error)
	ResetPassword(ctx context.Context, email, newPassword string) (int, error)
	UpdateUser(ctx context.Context, req UpdateUserRequest) (UpdateUserResult, error)
}

// Login uses the backend's OAuth2 password form.
func (c *Client) Login(ctx context.Context, email, password string) (LoginResult, error) {
	form := url.Values{}
	form.Set("grant_type", "password")
	form.Set("username", email)
	form.Set("password", password)
	form.Set("scope", "")
	form.Set("client_id", "")
	form.Set("client_secret", "")

	var res LoginResult
	_, err := c.sendForm(ctx, "/auth/login", form, &res)

	return res, err
}

func (c *Client) Register(ctx context.Context, req RegisterRequest) error {
	_, err := c.sendJSON(ctx, http.MethodPost, "/auth/register", req, nil)

	return err
}

func (c *Client) SendOTP(ctx context.Context, email string) (int, error) {
	return c.sendJSON(ctx, http.MethodPost, "/auth/send_otp", map[string]string{"email": email}, nil)
}

func (c *Client) VerifyOTP(ctx context.Context, email, otp string) (int, error) {
	return c.sendJSON(ctx, http.MethodPost, "/auth/verify_otp", map[string]string{"email": email, "otp": otp}, nil)
}

func (c *Client) ResetPassword(ctx context.Context, email, newPassword string) (int, error) {
	body := map[string]string{"user_email": email, "new_password": newPassword}

	return c.sendJSON(ctx, http.MethodPatch, "/auth/reset_password", body, nil)
}

func (c *Client) UpdateUser(ctx context.Context, req UpdateUserRequest) (UpdateUserResult, error) {
	var res UpdateUserResult
	_, err := c.sendJSON(ctx, http.MethodPatch, "/auth/update_user", req, &res)

	return res, err
}
