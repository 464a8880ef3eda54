package backend

//go:generate go run go.uber.org/mock/mockgen -source=./schools.go -destination=./mocks/schools_mock.go -package=mocks

import (
	"context"
	"net/http"
)

type Schools interface {
	ListSchools(ctx context.Context) ([]School, error)
	GetSchool(ctx context.Context, id int64) (School, error)
	CreateSchool(ctx context.Context, name, city string) (School, error)
	UpdateSchool(ctx context.Context, id int64, in SchoolInput) (School, error)
	DeleteSchool(ctx context.Context, id int64) error
}

func (c *Client) ListSchools(ctx context.Context) ([]School, error) {
	var res []School
	_, err := c.sendJSON(ctx, http.MethodGet, "/schools/schools", nil, &res)

	return res, err
}

func (c *Client) GetSchool(ctx context.Context, id int64) (School, error) {
	var res School
	_, err := c.sendJSON(ctx, http.MethodGet, idPath("/schools/schools/%d", id), nil, &res)

	return res, err
}

func (c *Client) CreateSchool(ctx context.Context, name, city string) (School, error) {
	var res School
	_, err := c.sendJSON(ctx, http.MethodPost, "/schools/schools", SchoolInput{Name: name, City: city}, &res)

	return res, err
}

func (c *Client) UpdateSchool(ctx context.Context, id int64, in SchoolInput) (School, error) {
	var res School
	_, err := c.sendJSON(ctx, http.MethodPut, idPath("/schools/schools/%d", id), in, &res)

	return res, err
}

func (c *Client) DeleteSchool(ctx context.Context, id int64) error {
	_, err := c.sendJSON(ctx, http.MethodDelete, idPath("/schools/schools/%d", id), nil, nil)

	return err
}
