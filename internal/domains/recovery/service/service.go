package service

import (
	"context"
	"strings"
	"sync"
	"time"

	"campusvisit/config"
	"campusvisit/infras/backend"
	"campusvisit/infras/otel"
	"campusvisit/internal/domains/recovery/model"
	"campusvisit/internal/domains/recovery/model/dto"
	sessionModel "campusvisit/internal/domains/session/model"
	"campusvisit/shared/constant"
	"campusvisit/shared/timezone"

	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"
)

const (
	msgVerified = "OTP verified. Please reset your password."
	msgReset    = "Password reset successful. Redirecting to login..."
	msgCodeSent = "A verification code has been sent to your email."

	limiterIdle = 10 * time.Minute
)

type Recovery interface {
	Flow(sess *sessionModel.Session) *model.Flow
	SendCode(ctx context.Context, sess *sessionModel.Session, req dto.EmailRequest) error
	Resend(ctx context.Context, sess *sessionModel.Session) error
	VerifyCode(ctx context.Context, sess *sessionModel.Session, req dto.OTPRequest) error
	ResetPassword(ctx context.Context, sess *sessionModel.Session, req dto.ResetRequest) error
	Restart(sess *sessionModel.Session)
}

type sender struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

type serviceImpl struct {
	auth backend.Auth
	cfg  *config.Config
	otel otel.Otel

	mu      sync.Mutex
	senders map[string]*sender
}

func New(auth backend.Auth, cfg *config.Config, otel otel.Otel) Recovery {
	return &serviceImpl{
		auth:    auth,
		cfg:     cfg,
		otel:    otel,
		senders: make(map[string]*sender),
	}
}

func (s *serviceImpl) Flow(sess *sessionModel.Session) *model.Flow {
	if sess.Recovery == nil || sess.Recovery.Stage == model.StageDone {
		flow := model.NewFlow()
		sess.Recovery = &flow
	}

	return sess.Recovery
}

func (s *serviceImpl) Restart(sess *sessionModel.Session) {
	sess.Recovery = nil
}

// allow throttles code requests per address. Idle limiters are dropped on the way.
func (s *serviceImpl) allow(email string, now time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for address, entry := range s.senders {
		if now.Sub(entry.lastSeen) > limiterIdle {
			delete(s.senders, address)
		}
	}

	entry, ok := s.senders[email]
	if !ok {
		entry = &sender{limiter: rate.NewLimiter(rate.Limit(s.cfg.Booking.OTPResendPerMin/60), 1)}
		s.senders[email] = entry
	}

	entry.lastSeen = now

	return entry.limiter.AllowN(now, 1)
}

func (s *serviceImpl) SendCode(ctx context.Context, sess *sessionModel.Session, req dto.EmailRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SendCode")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	flow := s.Flow(sess)
	email := strings.ToLower(req.Email)
	now := timezone.Now()

	if !s.allow(email, now) {
		return model.ErrResendThrottled
	}

	code, err := s.auth.SendOTP(ctx, email)
	if code == 0 && err != nil {
		return err
	}

	if err = model.SendOutcome(code, req.Email); err != nil {
		log.Warn().Int("status", code).Msg("send otp rejected")

		return err
	}

	flow.CodeSent(email, now, time.Duration(s.cfg.Booking.OTPWindowSeconds)*time.Second)
	sess.Info(msgCodeSent)

	return nil
}

// Resend requests a new code for the address already in the flow.
func (s *serviceImpl) Resend(ctx context.Context, sess *sessionModel.Session) error {
	flow := s.Flow(sess)
	if flow.Stage != model.StageOTP || flow.Email == "" {
		return model.ErrWrongStage
	}

	return s.SendCode(ctx, sess, dto.EmailRequest{Email: flow.Email})
}

func (s *serviceImpl) VerifyCode(ctx context.Context, sess *sessionModel.Session, req dto.OTPRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".VerifyCode")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	flow := s.Flow(sess)
	if flow.Stage != model.StageOTP {
		return model.ErrWrongStage
	}

	if flow.Remaining(timezone.Now()) == 0 {
		return model.ErrCountdownEnded
	}

	code, err := s.auth.VerifyOTP(ctx, flow.Email, req.OTP)
	if code == 0 && err != nil {
		return err
	}

	if err = model.VerifyOutcome(code); err != nil {
		return err
	}

	flow.Verified()
	sess.Success(msgVerified)

	return nil
}

func (s *serviceImpl) ResetPassword(ctx context.Context, sess *sessionModel.Session, req dto.ResetRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ResetPassword")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	flow := s.Flow(sess)
	if flow.Stage != model.StagePassword {
		return model.ErrWrongStage
	}

	code, err := s.auth.ResetPassword(ctx, flow.Email, req.Password)
	if code == 0 && err != nil {
		return err
	}

	if err = model.ResetOutcome(code); err != nil {
		return err
	}

	flow.Finish()
	sess.Success(msgReset)

	return nil
}
