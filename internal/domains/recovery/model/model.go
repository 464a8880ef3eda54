package model

import (
	"fmt"
	"net/http"
	"time"

	"campusvisit/shared/failure"
)

type Stage string

const (
	StageEmail    Stage = "email"
	StageOTP      Stage = "otp"
	StagePassword Stage = "password"
	StageDone     Stage = "done"
)

const genericError = "Something went wrong. Please try again."

var (
	ErrOTPExpired      = failure.BadRequestFromString("OTP is expired or invalid")
	ErrOTPNotFound     = failure.NotFound("OTP not found")
	ErrCountdownEnded  = failure.BadRequestFromString("The code has expired. Please request a new one.")
	ErrWrongStage      = failure.Conflict("Please start the recovery from the beginning.")
	ErrResendThrottled = failure.New(http.StatusTooManyRequests, "Please wait before requesting another code.")
)

// Flow is the password-recovery progress of one browser session.
type Flow struct {
	Stage    Stage     `json:"stage"`
	Email    string    `json:"email"`
	Deadline time.Time `json:"deadline"`
}

func NewFlow() Flow {
	return Flow{Stage: StageEmail}
}

// CodeSent moves to the OTP stage and restarts the countdown.
func (f *Flow) CodeSent(email string, now time.Time, window time.Duration) {
	f.Stage = StageOTP
	f.Email = email
	f.Deadline = now.Add(window)
}

func (f *Flow) Verified() {
	f.Stage = StagePassword
}

func (f *Flow) Finish() {
	f.Stage = StageDone
	f.Deadline = time.Time{}
}

// Remaining is the whole seconds left on the countdown, never negative.
func (f Flow) Remaining(now time.Time) int {
	if f.Stage != StageOTP || !now.Before(f.Deadline) {
		return 0
	}

	return int(f.Deadline.Sub(now).Round(time.Second) / time.Second)
}

func (f Flow) CountdownLabel(now time.Time) string {
	left := f.Remaining(now)

	return fmt.Sprintf("%d:%02d", left/60, left%60)
}

// SendOutcome maps the send-OTP status code to the error shown to the user.
func SendOutcome(code int, email string) error {
	switch code {
	case http.StatusOK:
		return nil
	case http.StatusNotFound:
		return failure.NotFound(fmt.Sprintf("User with email %s is not registered", email))
	default:
		return failure.New(code, genericError)
	}
}

// VerifyOutcome maps the verify-OTP status code.
func VerifyOutcome(code int) error {
	switch code {
	case http.StatusOK:
		return nil
	case http.StatusBadRequest:
		return ErrOTPExpired
	case http.StatusNotFound:
		return ErrOTPNotFound
	default:
		return failure.New(code, genericError)
	}
}

// ResetOutcome maps the reset-password status code; the backend answers 202 on success.
func ResetOutcome(code int) error {
	if code == http.StatusAccepted {
		return nil
	}

	return failure.New(code, genericError)
}
