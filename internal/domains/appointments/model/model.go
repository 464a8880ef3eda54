package model

import (
	"sort"
	"time"

	"campusvisit/infras/backend"
	"campusvisit/shared/constant"
)

const (
	CategoryConfirmed = "confirmed"
	CategoryPending   = "pending"
	CategoryCompleted = "completed"
	CategoryCancelled = "cancelled"
)

// ActionableLimit caps the short list on the staff dashboard.
const ActionableLimit = 5

// Category groups a backend status into what the visitor sees.
func Category(status string) string {
	switch status {
	case constant.StatusApproved, constant.StatusAccepted:
		return CategoryConfirmed
	case constant.StatusCreated, constant.StatusPendingAdmin:
		return CategoryPending
	case constant.StatusCompleted:
		return CategoryCompleted
	default:
		return CategoryCancelled
	}
}

type VisitorRow struct {
	backend.Appointment
	Category string
}

func (v VisitorRow) CanCancel() bool {
	return v.Category == CategoryPending || v.Category == CategoryConfirmed
}

func (v VisitorRow) CanReview() bool {
	return v.Category == CategoryCompleted
}

func (v VisitorRow) DisplayDate() string {
	return displayDate(v.Date)
}

func VisitorRows(appointments []backend.Appointment) []VisitorRow {
	rows := make([]VisitorRow, 0, len(appointments))

	for _, appointment := range appointments {
		rows = append(rows, VisitorRow{Appointment: appointment, Category: Category(appointment.Status)})
	}

	return rows
}

// Cancel marks one row cancelled in place and reports whether it was found.
func Cancel(rows []VisitorRow, id int64) bool {
	for index := range rows {
		if rows[index].ID == id {
			rows[index].Status = constant.StatusCanceled
			rows[index].Category = CategoryCancelled

			return true
		}
	}

	return false
}

type GuideLists struct {
	Upcoming []backend.Appointment
	Past     []backend.Appointment
}

// SplitGuide sorts a guide's assignments into accepted ones ahead and finished ones behind.
// Anything else is not shown.
func SplitGuide(appointments []backend.Appointment) GuideLists {
	lists := GuideLists{Upcoming: []backend.Appointment{}, Past: []backend.Appointment{}}

	for _, appointment := range appointments {
		switch appointment.Status {
		case constant.StatusAccepted:
			lists.Upcoming = append(lists.Upcoming, appointment)
		case constant.StatusCompleted, constant.StatusCanceled:
			lists.Past = append(lists.Past, appointment)
		}
	}

	return lists
}

type Day struct {
	Date         string
	Label        string
	Appointments []backend.Appointment
}

// Calendar groups appointments by date, earliest first, each day ordered by time.
func Calendar(appointments []backend.Appointment) []Day {
	byDate := make(map[string][]backend.Appointment)

	for _, appointment := range appointments {
		byDate[appointment.Date] = append(byDate[appointment.Date], appointment)
	}

	days := make([]Day, 0, len(byDate))

	for date, list := range byDate {
		sort.SliceStable(list, func(i, j int) bool { return list[i].Time < list[j].Time })
		days = append(days, Day{Date: date, Label: displayDate(date), Appointments: list})
	}

	sort.Slice(days, func(i, j int) bool { return days[i].Date < days[j].Date })

	return days
}

type Dashboard struct {
	Role       string
	Pending    int
	Unassigned int
	Mine       int
	Unread     int
	Actionable []backend.Appointment
}

// NewDashboard counts the role's work. queue is the admin list for admins
// and the open list for guides; mine is only used for guides.
func NewDashboard(role string, queue, mine []backend.Appointment, unread int) Dashboard {
	board := Dashboard{Role: role, Unread: unread, Actionable: []backend.Appointment{}}

	for _, appointment := range queue {
		actionable := false

		switch {
		case role == constant.RoleAdmin && Category(appointment.Status) == CategoryPending:
			board.Pending++
			actionable = true
		case role == constant.RoleGuide && appointment.Status == constant.StatusApproved && appointment.GuideID == nil:
			board.Unassigned++
			actionable = true
		}

		if actionable && len(board.Actionable) < ActionableLimit {
			board.Actionable = append(board.Actionable, appointment)
		}
	}

	if role == constant.RoleGuide {
		board.Mine = len(mine)
	}

	return board
}

type StatusCount struct {
	Status string
	Count  int
}

var statusOrder = []string{
	constant.StatusCreated,
	constant.StatusPendingAdmin,
	constant.StatusApproved,
	constant.StatusAccepted,
	constant.StatusCompleted,
	constant.StatusCanceled,
	constant.StatusRejected,
}

type Stats struct {
	Total  int
	Counts []StatusCount
}

// NewStats counts appointments per status. Known statuses come first in
// lifecycle order, unknown ones follow alphabetically.
func NewStats(appointments []backend.Appointment) Stats {
	counts := make(map[string]int)

	for _, appointment := range appointments {
		counts[appointment.Status]++
	}

	stats := Stats{Total: len(appointments), Counts: make([]StatusCount, 0, len(counts))}

	for _, status := range statusOrder {
		stats.Counts = append(stats.Counts, StatusCount{Status: status, Count: counts[status]})
		delete(counts, status)
	}

	extra := make([]string, 0, len(counts))
	for status := range counts {
		extra = append(extra, status)
	}

	sort.Strings(extra)

	for _, status := range extra {
		stats.Counts = append(stats.Counts, StatusCount{Status: status, Count: counts[status]})
	}

	return stats
}

func displayDate(raw string) string {
	date, err := time.Parse(constant.DateFormat, raw)
	if err != nil {
		return raw
	}

	return date.Format(constant.DisplayDate)
}
