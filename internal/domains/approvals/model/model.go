package model

import (
	"campusvisit/infras/backend"
	"campusvisit/shared/constant"
)

type Action string

const (
	ActionApprove Action = "approve"
	ActionReject  Action = "reject"
	ActionReset   Action = "reset"
	ActionAccept  Action = "accept"
)

// Outcome is the status a row takes once the backend accepted the action.
func (a Action) Outcome() string {
	switch a {
	case ActionApprove:
		return constant.StatusApproved
	case ActionReject:
		return constant.StatusRejected
	case ActionAccept:
		return constant.StatusAccepted
	default:
		return constant.StatusCreated
	}
}

func (a Action) Success(role string) string {
	switch a {
	case ActionApprove:
		return "Appointment approved!"
	case ActionReject:
		if role == constant.RoleGuide {
			return "Appointment declined!"
		}

		return "Appointment rejected!"
	case ActionAccept:
		return "Appointment accepted!"
	default:
		return "Appointment status reset successfully."
	}
}

// Stale is shown when the row's status no longer offers the action.
func (a Action) Stale() string {
	return "This appointment has changed since the list was loaded. Please refresh the list."
}

func (a Action) Failure() string {
	switch a {
	case ActionApprove:
		return "Failed to approve appointment. Please try again."
	case ActionReject:
		return "Failed to reject appointment. Please try again."
	case ActionAccept:
		return "Failed to assign guide. Please try again."
	default:
		return "Failed to reset appointment. Please try again."
	}
}

// Permitted reports whether role may trigger the action at all.
func (a Action) Permitted(role string) bool {
	switch a {
	case ActionApprove, ActionReject, ActionReset:
		return role == constant.RoleAdmin
	case ActionAccept:
		return role == constant.RoleGuide
	default:
		return false
	}
}

// Allowed reports whether role may trigger the action on a row in status.
func (a Action) Allowed(role, status string) bool {
	if !a.Permitted(role) {
		return false
	}

	switch a {
	case ActionApprove, ActionReject:
		return status == constant.StatusCreated
	case ActionReset:
		return status != constant.StatusCreated
	default:
		return status == constant.StatusApproved
	}
}

// Find returns the row with id, if present.
func Find(appointments []backend.Appointment, id int64) (backend.Appointment, bool) {
	for _, appointment := range appointments {
		if appointment.ID == id {
			return appointment, true
		}
	}

	return backend.Appointment{}, false
}

func ParseAction(raw string) (Action, bool) {
	switch action := Action(raw); action {
	case ActionApprove, ActionReject, ActionReset, ActionAccept:
		return action, true
	default:
		return "", false
	}
}

type Row struct {
	backend.Appointment
	InFlight bool
	Actions  []Action
}

func (r Row) GuideAssigned() bool {
	return r.GuideID != nil
}

type Board struct {
	Rows       []Row
	Pending    int
	Unassigned int
}

// NewBoard builds the rows with the actions role can take and counts pending and unassigned rows.
func NewBoard(appointments []backend.Appointment, role string, inFlight func(int64) bool) Board {
	board := Board{Rows: make([]Row, 0, len(appointments))}

	for _, appointment := range appointments {
		row := Row{Appointment: appointment, InFlight: inFlight(appointment.ID)}

		for _, action := range []Action{ActionApprove, ActionReject, ActionAccept, ActionReset} {
			if action.Allowed(role, appointment.Status) {
				row.Actions = append(row.Actions, action)
			}
		}

		switch appointment.Status {
		case constant.StatusCreated:
			board.Pending++
		case constant.StatusApproved:
			board.Unassigned++
		}

		board.Rows = append(board.Rows, row)
	}

	return board
}

// Patch sets the status of one appointment in place and reports whether it was found.
func Patch(appointments []backend.Appointment, id int64, status string) bool {
	for index := range appointments {
		if appointments[index].ID == id {
			appointments[index].Status = status

			return true
		}
	}

	return false
}
