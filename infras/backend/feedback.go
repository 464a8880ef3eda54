package backend

//go:generate go run go.uber.org/mock/mockgen -source=./feedback.go -destination=./mocks/feedback_mock.go -package=mocks

import (
	"context"
	"net/http"
)

type Feedbacks interface {
	SubmitFeedback(ctx context.Context, req FeedbackCreate) (Feedback, error)
	ListFeedback(ctx context.Context) ([]Feedback, error)
}

func (c *Client) SubmitFeedback(ctx context.Context, req FeedbackCreate) (Feedback, error) {
	var res Feedback
	_, err := c.sendJSON(ctx, http.MethodPost, "/feedback/submit", req, &res)

	return res, err
}

func (c *Client) ListFeedback(ctx context.Context) ([]Feedback, error) {
	var res []Feedback
	_, err := c.sendJSON(ctx, http.MethodGet, "/feedback/list", nil, &res)

	return res, err
}
