package backend

//go:generate go run go.uber.org/mock/mockgen -source=./contact.go -destination=./mocks/contact_mock.go -package=mocks

import (
	"context"
	"net/http"
)

type Contact interface {
	SendContact(ctx context.Context, msg ContactMessage) error
}

func (c *Client) SendContact(ctx context.Context, msg ContactMessage) error {
	_, err := c.sendJSON(ctx, http.MethodPost, "/contact", msg, nil)

	return err
}
