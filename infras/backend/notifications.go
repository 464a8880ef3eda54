package backend

//go:generate go run go.uber.org/mock/mockgen -source=./notifications.go -destination=./mocks/notifications_mock.go -package=mocks

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

type Notifications interface {
	ListNotifications(ctx context.Context) ([]Notification, error)
	FilterNotifications(ctx context.Context, kind string, isRead *bool) ([]Notification, error)
	MarkNotificationRead(ctx context.Context, id int64) error
	MarkAllNotificationsRead(ctx context.Context) error
	CreateNotification(ctx context.Context, req NotificationCreate) (Notification, error)
	DeleteNotification(ctx context.Context, id int64) error
	SendCustomNotification(ctx context.Context, message, kind string) error
	NotifyAdmins(ctx context.Context, req Broadcast) error
	NotifyGuides(ctx context.Context, req Broadcast) error
}

func (c *Client) ListNotifications(ctx context.Context) ([]Notification, error) {
	var res []Notification
	_, err := c.sendJSON(ctx, http.MethodGet, "/notifications/hi", nil, &res)

	return res, err
}

func (c *Client) FilterNotifications(ctx context.Context, kind string, isRead *bool) ([]Notification, error) {
	query := url.Values{}
	if kind != "" {
		query.Set("type", kind)
	}

	if isRead != nil {
		query.Set("is_read", strconv.FormatBool(*isRead))
	}

	path := "/notifications/filter"
	if len(query) > 0 {
		path += "?" + query.Encode()
	}

	var res []Notification
	_, err := c.sendJSON(ctx, http.MethodGet, path, nil, &res)

	return res, err
}

func (c *Client) MarkNotificationRead(ctx context.Context, id int64) error {
	_, err := c.sendJSON(ctx, http.MethodPut, idPath("/notifications/%d/read", id), nil, nil)

	return err
}

func (c *Client) MarkAllNotificationsRead(ctx context.Context) error {
	_, err := c.sendJSON(ctx, http.MethodPut, "/notifications/read-all", nil, nil)

	return err
}

func (c *Client) CreateNotification(ctx context.Context, req NotificationCreate) (Notification, error) {
	var res Notification
	_, err := c.sendJSON(ctx, http.MethodPost, "/notifications", req, &res)

	return res, err
}

func (c *Client) DeleteNotification(ctx context.Context, id int64) error {
	_, err := c.sendJSON(ctx, http.MethodDelete, idPath("/notifications/%d", id), nil, nil)

	return err
}

func (c *Client) SendCustomNotification(ctx context.Context, message, kind string) error {
	_, err := c.sendJSON(ctx, http.MethodPost, "/notifications/custom-guide-notification", Broadcast{Message: message, Type: kind}, nil)

	return err
}

func (c *Client) NotifyAdmins(ctx context.Context, req Broadcast) error {
	_, err := c.sendJSON(ctx, http.MethodPost, "/notifications/notify-admins", req, nil)

	return err
}

func (c *Client) NotifyGuides(ctx context.Context, req Broadcast) error {
	_, err := c.sendJSON(ctx, http.MethodPost, "/notifications/notify-guides", req, nil)

	return err
}
