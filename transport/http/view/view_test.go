package view_test

import (
	"bytes"
	"testing"

	sessionModel "campusvisit/internal/domains/session/model"
	"campusvisit/shared/constant"
	"campusvisit/transport/http/view"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_AllPages(t *testing.T) {
	pages, err := view.Parse()
	require.NoError(t, err)

	for _, name := range []string{
		"auth/login",
		"auth/recover",
		"visitor/home",
		"visitor/book",
		"visitor/appointments",
		"visitor/feedback",
		"staff/home",
		"staff/approvals",
		"staff/notifications",
		"staff/schools",
		"staff/feedback_list",
	} {
		assert.Contains(t, pages, name)
	}
}

func TestRender(t *testing.T) {
	tests := []struct {
		name    string
		page    string
		data    view.Page
		want    []string
		wantErr bool
	}{
		{
			name: "layout carries toasts and csrf",
			page: "auth/login",
			data: view.Page{
				Title:     "Log in",
				CSRFToken: "token-123",
				Toasts:    []sessionModel.Toast{{Level: constant.ToastError, Message: "Wrong password"}},
				Data: struct {
					Mode    string
					Email   string
					Schools []string
				}{Email: "ada@example.com"},
			},
			want: []string{"toast-error", "Wrong password", "token-123", "ada@example.com"},
		},
		{
			name: "visitor layout",
			page: "visitor/about",
			data: view.Page{Title: "About", Role: constant.RoleVisitor},
			want: []string{"About"},
		},
		{
			name:    "unknown page",
			page:    "staff/missing",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var body bytes.Buffer

			err := view.Render(&body, tt.page, tt.data)
			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)

			for _, want := range tt.want {
				assert.Contains(t, body.String(), want)
			}
		})
	}
}

func TestStatic(t *testing.T) {
	file, err := view.Static().Open("app.css")
	require.NoError(t, err)

	assert.NoError(t, file.Close())
}
