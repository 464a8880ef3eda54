package model_test

import (
	"net/http"
	"testing"
	"time"

	"campusvisit/internal/domains/recovery/model"
	"campusvisit/shared/failure"

	"github.com/stretchr/testify/assert"
)

func TestFlow_Countdown(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	flow := model.NewFlow()

	assert.Equal(t, 0, flow.Remaining(now))

	flow.CodeSent("ana@school.edu", now, 5*time.Minute)

	assert.Equal(t, model.StageOTP, flow.Stage)
	assert.Equal(t, 300, flow.Remaining(now))
	assert.Equal(t, "5:00", flow.CountdownLabel(now))
	assert.Equal(t, "0:59", flow.CountdownLabel(now.Add(4*time.Minute+time.Second)))
	assert.Equal(t, 0, flow.Remaining(now.Add(6*time.Minute)))

	flow.Verified()
	assert.Equal(t, 0, flow.Remaining(now))

	flow.Finish()
	assert.Equal(t, model.StageDone, flow.Stage)
}

func TestSendOutcome(t *testing.T) {
	assert.NoError(t, model.SendOutcome(http.StatusOK, "a@b.c"))
	assert.EqualError(t, model.SendOutcome(http.StatusNotFound, "a@b.c"), "User with email a@b.c is not registered")
	assert.EqualError(t, model.SendOutcome(http.StatusInternalServerError, "a@b.c"), "Something went wrong. Please try again.")
}

func TestVerifyOutcome(t *testing.T) {
	tests := []struct {
		code     int
		expected string
	}{
		{code: http.StatusBadRequest, expected: "OTP is expired or invalid"},
		{code: http.StatusNotFound, expected: "OTP not found"},
		{code: http.StatusTeapot, expected: "Something went wrong. Please try again."},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.code), func(t *testing.T) {
			assert.EqualError(t, model.VerifyOutcome(tt.code), tt.expected)
		})
	}

	assert.NoError(t, model.VerifyOutcome(http.StatusOK))
}

func TestResetOutcome(t *testing.T) {
	assert.NoError(t, model.ResetOutcome(http.StatusAccepted))

	err := model.ResetOutcome(http.StatusOK)
	assert.Equal(t, http.StatusOK, failure.GetCode(err))
}
