package service_test

import (
	"context"
	"net/http"
	"strings"
	"testing"
	"time"

	"campusvisit/config"
	backendMocks "campusvisit/infras/backend/mocks"
	otelMocks "campusvisit/infras/otel/mocks"
	"campusvisit/internal/domains/recovery/model"
	"campusvisit/internal/domains/recovery/model/dto"
	"campusvisit/internal/domains/recovery/service"
	sessionModel "campusvisit/internal/domains/session/model"
	"campusvisit/shared/failure"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func setup(t *testing.T) (service.Recovery, *backendMocks.MockAuth) {
	t.Helper()

	ctrl := gomock.NewController(t)
	auth := backendMocks.NewMockAuth(ctrl)

	cfg := &config.Config{}
	cfg.Booking.OTPWindowSeconds = 300
	cfg.Booking.OTPResendPerMin = 2

	return service.New(auth, cfg, otelMocks.NewOtel()), auth
}

func TestRecoveryJourney(t *testing.T) {
	svc, auth := setup(t)
	ctx := context.Background()
	sess := &sessionModel.Session{}
	email := strings.ToLower(gofakeit.Email())

	auth.EXPECT().SendOTP(gomock.Any(), email).Return(http.StatusOK, nil)
	auth.EXPECT().VerifyOTP(gomock.Any(), email, "123456").Return(http.StatusOK, nil)
	auth.EXPECT().ResetPassword(gomock.Any(), email, "secret1").Return(http.StatusAccepted, nil)

	require.NoError(t, svc.SendCode(ctx, sess, dto.EmailRequest{Email: email}))
	assert.Equal(t, model.StageOTP, sess.Recovery.Stage)
	assert.Greater(t, sess.Recovery.Remaining(time.Now()), 290)

	require.NoError(t, svc.VerifyCode(ctx, sess, dto.OTPRequest{OTP: "123456"}))
	assert.Equal(t, model.StagePassword, sess.Recovery.Stage)

	require.NoError(t, svc.ResetPassword(ctx, sess, dto.ResetRequest{Password: "secret1", ConfirmPassword: "secret1"}))
	assert.Equal(t, model.StageDone, sess.Recovery.Stage)
	assert.Len(t, sess.Toasts, 3)

	assert.Equal(t, model.StageEmail, svc.Flow(sess).Stage)
}

func TestSendCode_UnknownUser(t *testing.T) {
	svc, auth := setup(t)
	sess := &sessionModel.Session{}

	auth.EXPECT().SendOTP(gomock.Any(), "ghost@school.edu").
		Return(http.StatusNotFound, failure.New(http.StatusNotFound, "User not found"))

	err := svc.SendCode(context.Background(), sess, dto.EmailRequest{Email: "ghost@school.edu"})

	assert.EqualError(t, err, "User with email ghost@school.edu is not registered")
	assert.Equal(t, model.StageEmail, sess.Recovery.Stage)
}

func TestResend_IsThrottled(t *testing.T) {
	svc, auth := setup(t)
	ctx := context.Background()
	sess := &sessionModel.Session{}

	auth.EXPECT().SendOTP(gomock.Any(), "ana@school.edu").Return(http.StatusOK, nil).Times(1)

	require.NoError(t, svc.SendCode(ctx, sess, dto.EmailRequest{Email: "Ana@School.edu"}))

	err := svc.Resend(ctx, sess)

	assert.Equal(t, http.StatusTooManyRequests, failure.GetCode(err))
	assert.Equal(t, model.StageOTP, sess.Recovery.Stage)
}

func TestVerifyCode_Failures(t *testing.T) {
	tests := []struct {
		name     string
		code     int
		expected error
	}{
		{name: "expired or invalid", code: http.StatusBadRequest, expected: model.ErrOTPExpired},
		{name: "not found", code: http.StatusNotFound, expected: model.ErrOTPNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, auth := setup(t)
			flow := model.NewFlow()
			flow.CodeSent("ana@school.edu", time.Now(), time.Minute)
			sess := &sessionModel.Session{Recovery: &flow}

			auth.EXPECT().VerifyOTP(gomock.Any(), "ana@school.edu", "000000").Return(tt.code, failure.New(tt.code, "x"))

			err := svc.VerifyCode(context.Background(), sess, dto.OTPRequest{OTP: "000000"})

			assert.ErrorIs(t, err, tt.expected)
			assert.Equal(t, model.StageOTP, sess.Recovery.Stage)
		})
	}
}

func TestVerifyCode_CountdownEnded(t *testing.T) {
	svc, _ := setup(t)
	flow := model.NewFlow()
	flow.CodeSent("ana@school.edu", time.Now().Add(-10*time.Minute), 5*time.Minute)
	sess := &sessionModel.Session{Recovery: &flow}

	err := svc.VerifyCode(context.Background(), sess, dto.OTPRequest{OTP: "123456"})

	assert.ErrorIs(t, err, model.ErrCountdownEnded)
}

func TestResetPassword_WrongStage(t *testing.T) {
	svc, _ := setup(t)

	err := svc.ResetPassword(context.Background(), &sessionModel.Session{}, dto.ResetRequest{Password: "secret1", ConfirmPassword: "secret1"})

	assert.ErrorIs(t, err, model.ErrWrongStage)
}

func TestResetPassword_BackendRefuses(t *testing.T) {
	svc, auth := setup(t)
	flow := model.Flow{Stage: model.StagePassword, Email: "ana@school.edu"}
	sess := &sessionModel.Session{Recovery: &flow}

	auth.EXPECT().ResetPassword(gomock.Any(), "ana@school.edu", "secret1").Return(http.StatusOK, nil)

	err := svc.ResetPassword(context.Background(), sess, dto.ResetRequest{Password: "secret1", ConfirmPassword: "secret1"})

	assert.EqualError(t, err, "Something went wrong. Please try again.")
	assert.Equal(t, model.StagePassword, sess.Recovery.Stage)
}
