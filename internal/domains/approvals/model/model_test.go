package model_test

import (
	"testing"

	"campusvisit/infras/backend"
	"campusvisit/internal/domains/approvals/model"
	"campusvisit/shared/constant"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func none(int64) bool { return false }

func TestNewBoard_Admin(t *testing.T) {
	board := model.NewBoard([]backend.Appointment{
		{ID: 1, Status: constant.StatusCreated},
		{ID: 2, Status: constant.StatusApproved},
		{ID: 3, Status: constant.StatusCreated},
		{ID: 4, Status: constant.StatusRejected},
	}, constant.RoleAdmin, func(id int64) bool { return id == 3 })

	assert.Equal(t, 2, board.Pending)
	assert.Equal(t, 1, board.Unassigned)
	require.Len(t, board.Rows, 4)
	assert.Equal(t, []model.Action{model.ActionApprove, model.ActionReject}, board.Rows[0].Actions)
	assert.Equal(t, []model.Action{model.ActionReset}, board.Rows[1].Actions)
	assert.True(t, board.Rows[2].InFlight)
	assert.False(t, board.Rows[0].InFlight)
}

func TestNewBoard_Guide(t *testing.T) {
	guide := int64(9)
	board := model.NewBoard([]backend.Appointment{
		{ID: 1, Status: constant.StatusApproved},
		{ID: 2, Status: constant.StatusAccepted, GuideID: &guide},
	}, constant.RoleGuide, none)

	assert.Equal(t, []model.Action{model.ActionAccept}, board.Rows[0].Actions)
	assert.Empty(t, board.Rows[1].Actions)
	assert.True(t, board.Rows[1].GuideAssigned())
	assert.Equal(t, 0, board.Pending)
}

func TestAction(t *testing.T) {
	tests := []struct {
		action  model.Action
		outcome string
	}{
		{action: model.ActionApprove, outcome: constant.StatusApproved},
		{action: model.ActionReject, outcome: constant.StatusRejected},
		{action: model.ActionAccept, outcome: constant.StatusAccepted},
		{action: model.ActionReset, outcome: constant.StatusCreated},
	}

	for _, tt := range tests {
		t.Run(string(tt.action), func(t *testing.T) {
			parsed, ok := model.ParseAction(string(tt.action))

			assert.True(t, ok)
			assert.Equal(t, tt.action, parsed)
			assert.Equal(t, tt.outcome, tt.action.Outcome())
			assert.NotEmpty(t, tt.action.Failure())
		})
	}

	_, ok := model.ParseAction("delete")
	assert.False(t, ok)

	assert.Equal(t, "Appointment declined!", model.ActionReject.Success(constant.RoleGuide))
	assert.Equal(t, "Appointment rejected!", model.ActionReject.Success(constant.RoleAdmin))
}

func TestPatch(t *testing.T) {
	appointments := []backend.Appointment{{ID: 1, Status: constant.StatusCreated}, {ID: 2, Status: constant.StatusCreated}}

	assert.True(t, model.Patch(appointments, 2, constant.StatusApproved))
	assert.Equal(t, constant.StatusCreated, appointments[0].Status)
	assert.Equal(t, constant.StatusApproved, appointments[1].Status)
	assert.False(t, model.Patch(appointments, 5, constant.StatusApproved))
}
