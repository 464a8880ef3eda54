package backend

//go:generate go run go.uber.org/mock/mockgen -source=./appointments.go -destination=./mocks/appointments_mock.go -package=mocks

import (
	"context"
	"net/http"
	"net/url"

	"campusvisit/shared/failure"
)

type Appointments interface {
	CreateAppointment(ctx context.Context, req CreateAppointmentRequest) (Appointment, error)
	GetAppointment(ctx context.Context, id int64) (Appointment, error)
	DeleteAppointment(ctx context.Context, id int64) error
	ListMyAppointments(ctx context.Context) ([]Appointment, error)
	ListAdminAppointments(ctx context.Context) ([]Appointment, error)
	ListAvailableForGuides(ctx context.Context) ([]Appointment, error)
	ListAssignedToGuide(ctx context.Context) ([]Appointment, error)
	ListByStatus(ctx context.Context, status string) ([]Appointment, error)
	UpdateStatus(ctx context.Context, id int64, status string) (Appointment, error)
	UpdateDetails(ctx context.Context, id int64, updates map[string]any) (Appointment, error)
	Approve(ctx context.Context, id int64) (Appointment, error)
	Reject(ctx context.Context, id int64) (Appointment, error)
	AssignGuide(ctx context.Context, id int64) (Appointment, error)
	UnassignGuide(ctx context.Context, id int64, status string) (Appointment, error)
	AvailableTimes(ctx context.Context, date string) ([]string, error)
	SchoolName(ctx context.Context, appointmentID int64) (string, error)
}

func (c *Client) CreateAppointment(ctx context.Context, req CreateAppointmentRequest) (Appointment, error) {
	var res Appointment
	_, err := c.sendJSON(ctx, http.MethodPost, "/create-appointment", req, &res)

	return res, err
}

func (c *Client) GetAppointment(ctx context.Context, id int64) (Appointment, error) {
	var res Appointment
	_, err := c.sendJSON(ctx, http.MethodGet, idPath("/appointments/%d", id), nil, &res)

	return res, err
}

func (c *Client) DeleteAppointment(ctx context.Context, id int64) error {
	_, err := c.sendJSON(ctx, http.MethodDelete, idPath("/appointments/%d", id), nil, nil)

	return err
}

func (c *Client) ListMyAppointments(ctx context.Context) ([]Appointment, error) {
	return c.listAppointments(ctx, "/user/appointments")
}

func (c *Client) ListAdminAppointments(ctx context.Context) ([]Appointment, error) {
	return c.listAppointments(ctx, "/admin/appointments")
}

func (c *Client) ListAvailableForGuides(ctx context.Context) ([]Appointment, error) {
	return c.listAppointments(ctx, "/guides/available-appointments")
}

func (c *Client) ListAssignedToGuide(ctx context.Context) ([]Appointment, error) {
	return c.listAppointments(ctx, "/guide/appointments")
}

func (c *Client) ListByStatus(ctx context.Context, status string) ([]Appointment, error) {
	return c.listAppointments(ctx, "/appointments/status/"+url.PathEscape(status))
}

// listAppointments treats the backend's "nothing found" 404 as an empty list.
func (c *Client) listAppointments(ctx context.Context, path string) ([]Appointment, error) {
	var res []Appointment

	_, err := c.sendJSON(ctx, http.MethodGet, path, nil, &res)
	if failure.Is(err, http.StatusNotFound) {
		return []Appointment{}, nil
	}

	return res, err
}

func (c *Client) UpdateStatus(ctx context.Context, id int64, status string) (Appointment, error) {
	var res Appointment
	_, err := c.sendJSON(ctx, http.MethodPut, idPath("/appointments/%d/status", id), StatusUpdate{Status: status}, &res)

	return res, err
}

func (c *Client) UpdateDetails(ctx context.Context, id int64, updates map[string]any) (Appointment, error) {
	var res Appointment
	_, err := c.sendJSON(ctx, http.MethodPut, idPath("/appointments/%d", id), updates, &res)

	return res, err
}

func (c *Client) Approve(ctx context.Context, id int64) (Appointment, error) {
	return c.transition(ctx, idPath("/appointments/%d/approve", id), nil)
}

func (c *Client) Reject(ctx context.Context, id int64) (Appointment, error) {
	return c.transition(ctx, idPath("/appointments/%d/reject", id), nil)
}

func (c *Client) AssignGuide(ctx context.Context, id int64) (Appointment, error) {
	return c.transition(ctx, idPath("/appointments/%d/assign-guide", id), nil)
}

func (c *Client) UnassignGuide(ctx context.Context, id int64, status string) (Appointment, error) {
	return c.transition(ctx, idPath("/appointments/%d/unassign-guide", id), StatusUpdate{Status: status})
}

func (c *Client) transition(ctx context.Context, path string, body any) (Appointment, error) {
	var res Appointment
	_, err := c.sendJSON(ctx, http.MethodPut, path, body, &res)

	return res, err
}

func (c *Client) AvailableTimes(ctx context.Context, date string) ([]string, error) {
	var res []string
	_, err := c.sendJSON(ctx, http.MethodGet, "/appointments/available-times/"+url.PathEscape(date), nil, &res)

	return res, err
}

func (c *Client) SchoolName(ctx context.Context, appointmentID int64) (string, error) {
	var res struct {
		SchoolName string `json:"school_name"`
	}

	if _, err := c.sendJSON(ctx, http.MethodGet, idPath("/appointment/%d/school", appointmentID), nil, &res); err != nil {
		return "", err
	}

	if res.SchoolName == "" {
		return "", failure.NotFound("School name not found in the response.")
	}

	return res.SchoolName, nil
}
