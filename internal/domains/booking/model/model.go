package model

import (
	"fmt"
	"slices"
	"time"

	"campusvisit/shared/constant"
	"campusvisit/shared/failure"
)

type Step int

const (
	StepDate Step = iota + 1
	StepTime
	StepDetails
	StepConfirm
)

var (
	ErrDateRequired     = failure.BadRequestFromString("Please select a date before proceeding.")
	ErrTimeRequired     = failure.BadRequestFromString("Please select a time before proceeding.")
	ErrTooFewVisitors   = failure.BadRequestFromString("Number of visitors must be greater than zero.")
	ErrDateTooEarly     = failure.BadRequestFromString("Please choose a date from the first available weekday onwards.")
	ErrTimeUnavailable  = failure.BadRequestFromString("This time is not available for the selected date.")
	ErrUnknownTimeSlot  = failure.BadRequestFromString("Please choose one of the offered times.")
	ErrNoWeekdayInRange = failure.BadRequestFromString("No weekday is available in the booking window.")
)

// WeekendWarning is shown when a weekend pick is moved to a weekday.
const WeekendWarning = "Weekends are not available. Please choose a weekday."

// TimeSlot is one of the fixed tour start times.
type TimeSlot struct {
	Label     string `json:"label"`
	Value     string `json:"value"`
	Available bool   `json:"available"`
	Selected  bool   `json:"selected"`
}

var candidates = []string{"10:00:00", "13:00:00", "15:00:00"}

// Wizard is the in-progress booking kept on the visitor's session.
// Time holds the 24-hour HH:MM:SS form the backend expects.
type Wizard struct {
	Step     Step   `json:"step"`
	Date     string `json:"date"`
	Time     string `json:"time"`
	Visitors int    `json:"visitors_number"`
	Note     string `json:"note"`
}

// NewWizard starts at the date step with the first bookable day preselected.
func NewWizard(today time.Time, horizon int) Wizard {
	wizard := Wizard{Step: StepDate}

	if first, err := FirstBookableDay(today, horizon); err == nil {
		wizard.Date = first.Format(constant.DateFormat)
	}

	return wizard
}

func IsWeekend(day time.Time) bool {
	return day.Weekday() == time.Saturday || day.Weekday() == time.Sunday
}

// FirstBookableDay is today when it is a weekday, otherwise the next weekday within horizon days.
func FirstBookableDay(today time.Time, horizon int) (time.Time, error) {
	day := today

	for counter := 0; IsWeekend(day); counter++ {
		if counter >= horizon {
			return time.Time{}, ErrNoWeekdayInRange
		}

		day = day.AddDate(0, 0, 1)
	}

	return day, nil
}

// CorrectDate moves a weekend pick to the next weekday after it. The second
// return value reports whether the date was moved.
func CorrectDate(picked, today time.Time, horizon int) (time.Time, bool, error) {
	first, err := FirstBookableDay(today, horizon)
	if err != nil {
		return time.Time{}, false, err
	}

	if picked.Before(first) {
		return time.Time{}, false, ErrDateTooEarly
	}

	if !IsWeekend(picked) {
		return picked, false, nil
	}

	limit := today.AddDate(0, 0, horizon)
	day := picked

	for IsWeekend(day) {
		day = day.AddDate(0, 0, 1)
		if day.After(limit) {
			return time.Time{}, false, ErrNoWeekdayInRange
		}
	}

	return day, true, nil
}

// Slots lists the fixed candidates; only those present in available can be chosen.
func Slots(available []string, selected string) []TimeSlot {
	slots := make([]TimeSlot, 0, len(candidates))

	for _, value := range candidates {
		slots = append(slots, TimeSlot{
			Label:     Label12h(value),
			Value:     value,
			Available: slices.Contains(available, value),
			Selected:  value == selected,
		})
	}

	return slots
}

// ChooseTime accepts a candidate time in either 12-hour or 24-hour form.
func ChooseTime(choice string, available []string) (string, error) {
	value, err := To24h(choice)
	if err != nil || !slices.Contains(candidates, value) {
		return "", ErrUnknownTimeSlot
	}

	if !slices.Contains(available, value) {
		return "", ErrTimeUnavailable
	}

	return value, nil
}

// To24h converts "1:00 PM" to "13:00:00"; values already in 24-hour form pass through.
func To24h(value string) (string, error) {
	if parsed, err := time.Parse(constant.TimeFormat, value); err == nil {
		return parsed.Format(constant.TimeFormat), nil
	}

	parsed, err := time.Parse(constant.TimeFormat12h, value)
	if err != nil {
		return "", err
	}

	return parsed.Format(constant.TimeFormat), nil
}

// Label12h converts "13:00:00" to "1:00 PM"; unparseable values are returned as is.
func Label12h(value string) string {
	parsed, err := time.Parse(constant.TimeFormat, value)
	if err != nil {
		return value
	}

	return parsed.Format(constant.TimeFormat12h)
}

// Validate checks the fields required to leave the current step.
func (w Wizard) Validate(minVisitors int) error {
	switch w.Step {
	case StepDate:
		if w.Date == "" {
			return ErrDateRequired
		}
	case StepTime:
		if w.Time == "" {
			return ErrTimeRequired
		}
	case StepDetails:
		if w.Visitors < minVisitors || w.Visitors <= 0 {
			if minVisitors > 1 {
				return failure.BadRequestFromString(fmt.Sprintf("Number of visitors must be at least %d.", minVisitors))
			}

			return ErrTooFewVisitors
		}
	}

	return nil
}

// Next advances one step when the current one validates; the last step is terminal.
func (w *Wizard) Next(minVisitors int) error {
	if err := w.Validate(minVisitors); err != nil {
		return err
	}

	if w.Step < StepConfirm {
		w.Step++
	}

	return nil
}

func (w *Wizard) Back() {
	if w.Step > StepDate {
		w.Step--
	}
}

// Edit returns to the first step keeping everything entered so far.
func (w *Wizard) Edit() {
	w.Step = StepDate
}

// SetDate clears a previously chosen time, since availability is per date.
func (w *Wizard) SetDate(date string) {
	if date != w.Date {
		w.Time = ""
	}

	w.Date = date
}

func (w Wizard) Ready(minVisitors int) error {
	for step := StepDate; step < StepConfirm; step++ {
		check := w
		check.Step = step

		if err := check.Validate(minVisitors); err != nil {
			return err
		}
	}

	return nil
}

func (w Wizard) TimeLabel() string {
	return Label12h(w.Time)
}

