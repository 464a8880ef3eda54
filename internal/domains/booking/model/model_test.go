package model_test

import (
	"testing"
	"time"

	"campusvisit/internal/domains/booking/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(value string) time.Time {
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}

	return parsed
}

func TestFirstBookableDay(t *testing.T) {
	tests := []struct {
		name     string
		today    string
		expected string
	}{
		{name: "weekday is itself", today: "2025-03-05", expected: "2025-03-05"},
		{name: "saturday moves to monday", today: "2025-03-08", expected: "2025-03-10"},
		{name: "sunday moves to monday", today: "2025-03-09", expected: "2025-03-10"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			first, err := model.FirstBookableDay(day(tt.today), 120)

			require.NoError(t, err)
			assert.Equal(t, tt.expected, first.Format("2006-01-02"))
		})
	}
}

func TestFirstBookableDay_Horizon(t *testing.T) {
	_, err := model.FirstBookableDay(day("2025-03-08"), 1)

	assert.ErrorIs(t, err, model.ErrNoWeekdayInRange)
}

func TestCorrectDate(t *testing.T) {
	today := day("2025-03-05")

	tests := []struct {
		name     string
		picked   string
		expected string
		moved    bool
		err      error
	}{
		{name: "weekday kept", picked: "2025-03-07", expected: "2025-03-07"},
		{name: "saturday moved to following monday", picked: "2025-03-15", expected: "2025-03-17", moved: true},
		{name: "sunday moved to following monday", picked: "2025-03-16", expected: "2025-03-17", moved: true},
		{name: "past date rejected", picked: "2025-03-04", err: model.ErrDateTooEarly},
		{name: "weekend beyond horizon rejected", picked: "2025-07-05", err: model.ErrNoWeekdayInRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			corrected, moved, err := model.CorrectDate(day(tt.picked), today, 120)

			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.moved, moved)
			assert.Equal(t, tt.expected, corrected.Format("2006-01-02"))
		})
	}
}

func TestTimeConversions(t *testing.T) {
	tests := []struct {
		label string
		value string
	}{
		{label: "10:00 AM", value: "10:00:00"},
		{label: "1:00 PM", value: "13:00:00"},
		{label: "3:00 PM", value: "15:00:00"},
		{label: "12:00 AM", value: "00:00:00"},
		{label: "12:00 PM", value: "12:00:00"},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			value, err := model.To24h(tt.label)

			require.NoError(t, err)
			assert.Equal(t, tt.value, value)
			assert.Equal(t, tt.label, model.Label12h(tt.value))
		})
	}

	_, err := model.To24h("noon")
	assert.Error(t, err)
	assert.Equal(t, "soon", model.Label12h("soon"))
}

func TestSlots(t *testing.T) {
	slots := model.Slots([]string{"13:00:00", "16:00:00"}, "13:00:00")

	require.Len(t, slots, 3)
	assert.Equal(t, model.TimeSlot{Label: "10:00 AM", Value: "10:00:00"}, slots[0])
	assert.Equal(t, model.TimeSlot{Label: "1:00 PM", Value: "13:00:00", Available: true, Selected: true}, slots[1])
	assert.False(t, slots[2].Available)
}

func TestChooseTime(t *testing.T) {
	available := []string{"10:00:00", "15:00:00"}

	value, err := model.ChooseTime("3:00 PM", available)
	require.NoError(t, err)
	assert.Equal(t, "15:00:00", value)

	_, err = model.ChooseTime("1:00 PM", available)
	assert.ErrorIs(t, err, model.ErrTimeUnavailable)

	_, err = model.ChooseTime("11:00 AM", []string{"11:00:00"})
	assert.ErrorIs(t, err, model.ErrUnknownTimeSlot)
}

func TestWizard_Steps(t *testing.T) {
	wizard := model.Wizard{Step: model.StepDate}

	assert.ErrorIs(t, wizard.Next(1), model.ErrDateRequired)
	assert.Equal(t, model.StepDate, wizard.Step)

	wizard.Back()
	assert.Equal(t, model.StepDate, wizard.Step)

	wizard.SetDate("2025-03-10")
	require.NoError(t, wizard.Next(1))
	assert.Equal(t, model.StepTime, wizard.Step)

	assert.ErrorIs(t, wizard.Next(1), model.ErrTimeRequired)

	wizard.Time = "10:00:00"
	require.NoError(t, wizard.Next(1))
	assert.Equal(t, model.StepDetails, wizard.Step)

	assert.ErrorIs(t, wizard.Next(1), model.ErrTooFewVisitors)

	wizard.Visitors = 3
	assert.EqualError(t, wizard.Next(5), "Number of visitors must be at least 5.")

	require.NoError(t, wizard.Next(1))
	assert.Equal(t, model.StepConfirm, wizard.Step)

	require.NoError(t, wizard.Next(1))
	assert.Equal(t, model.StepConfirm, wizard.Step)

	wizard.Edit()
	assert.Equal(t, model.StepDate, wizard.Step)
	assert.Equal(t, "10:00:00", wizard.Time)
	assert.Equal(t, 3, wizard.Visitors)
}

func TestWizard_SetDateClearsTime(t *testing.T) {
	wizard := model.Wizard{Date: "2025-03-10", Time: "10:00:00"}

	wizard.SetDate("2025-03-10")
	assert.Equal(t, "10:00:00", wizard.Time)

	wizard.SetDate("2025-03-11")
	assert.Empty(t, wizard.Time)
}

func TestWizard_Ready(t *testing.T) {
	wizard := model.Wizard{Step: model.StepConfirm, Date: "2025-03-10", Time: "10:00:00"}

	assert.ErrorIs(t, wizard.Ready(1), model.ErrTooFewVisitors)

	wizard.Visitors = 6
	assert.NoError(t, wizard.Ready(1))
}
