package service

import (
	"context"
	"errors"
	"fmt"

	"campusvisit/config"
	"campusvisit/infras/backend"
	"campusvisit/infras/jwt"
	"campusvisit/infras/otel"
	"campusvisit/internal/domains/session/model"
	"campusvisit/shared/cache"
	"campusvisit/shared/constant"
	"campusvisit/shared/failure"
	"campusvisit/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const cacheSession = "session"

const msgSessionExpired = "Your session has expired. Please log in again."

type Session interface {
	Load(ctx context.Context, id string) (*model.Session, error)
	Start(ctx context.Context, current *model.Session, login backend.LoginResult) (*model.Session, error)
	Save(ctx context.Context, sess *model.Session) error
	End(ctx context.Context, sess *model.Session) (*model.Session, error)
}

type serviceImpl struct {
	cache  cache.Cache
	tokens jwt.Inspector
	cfg    *config.Config
	otel   otel.Otel
}

func New(cache cache.Cache, tokens jwt.Inspector, cfg *config.Config, otel otel.Otel) Session {
	return &serviceImpl{
		cache:  cache,
		tokens: tokens,
		cfg:    cfg,
		otel:   otel,
	}
}

func key(id string) string {
	return cache.BuildCacheKey(cacheSession, id)
}

func anonymous() *model.Session {
	return &model.Session{ID: uuid.NewString()}
}

// Load returns the stored session, or a fresh logged-out one when the id is unknown.
// A session whose token has expired is cleared and comes back logged out.
func (s *serviceImpl) Load(ctx context.Context, id string) (res *model.Session, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelSessionScopeName, constant.OtelSessionScopeName+".Load")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if id == "" {
		return anonymous(), nil
	}

	res = &model.Session{}

	err = s.cache.Get(ctx, key(id), res)
	if errors.Is(err, cache.Nil) {
		return anonymous(), nil
	}

	if err != nil {
		log.Error().Err(err).Str("session", id).Msg("failed to load session")

		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	res.ID = id

	if res.LoggedIn() && res.Expired(timezone.Now()) {
		log.Info().Str("session", id).Str("role", res.Role).Msg("session token expired")

		res.Clear()
		res.Warn(msgSessionExpired)

		if err = s.Save(ctx, res); err != nil {
			return nil, err
		}
	}

	return res, nil
}

// Start logs the user in under a new session id, carrying over pending toasts.
func (s *serviceImpl) Start(ctx context.Context, current *model.Session, login backend.LoginResult) (res *model.Session, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelSessionScopeName, constant.OtelSessionScopeName+".Start")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if login.AccessToken == "" {
		return nil, failure.Unauthorized("Login failed: no access token received.")
	}

	expiry, err := s.tokens.ExpiresAt(login.AccessToken, timezone.Now())

	switch {
	case errors.Is(err, jwt.ErrExpiredToken):
		return nil, failure.Unauthorized(msgSessionExpired)
	case err != nil:
		log.Warn().Err(err).Msg("access token is not a readable JWT, session expiry follows the cookie only")
	}

	res = anonymous()
	res.Role = login.Role
	res.Name = login.Name
	res.Email = login.Email
	res.Token = login.AccessToken
	res.ExpiresAt = expiry

	if current != nil {
		res.Toasts = current.Toasts

		if current.ID != "" {
			if err = s.cache.Delete(ctx, key(current.ID)); err != nil {
				log.Warn().Err(err).Str("session", current.ID).Msg("failed to drop previous session")
			}
		}
	}

	if err = s.Save(ctx, res); err != nil {
		return nil, err
	}

	scope.SetAttribute("session.role", res.Role)

	return res, nil
}

func (s *serviceImpl) Save(ctx context.Context, sess *model.Session) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelSessionScopeName, constant.OtelSessionScopeName+".Save")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if sess == nil || sess.ID == "" {
		return failure.InternalError(errors.New("session without id"))
	}

	if err = s.cache.Save(ctx, key(sess.ID), sess, s.cfg.Session.TTLMinutes*constant.MinutesToSeconds); err != nil {
		log.Error().Err(err).Str("session", sess.ID).Msg("failed to save session")

		return fmt.Errorf("failed to save session: %w", err)
	}

	return nil
}

// End logs out: the stored session is dropped and a fresh logged-out one is returned.
func (s *serviceImpl) End(ctx context.Context, sess *model.Session) (res *model.Session, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelSessionScopeName, constant.OtelSessionScopeName+".End")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if sess != nil && sess.ID != "" {
		if err = s.cache.Delete(ctx, key(sess.ID)); err != nil {
			log.Error().Err(err).Str("session", sess.ID).Msg("failed to delete session")

			return nil, fmt.Errorf("failed to delete session: %w", err)
		}
	}

	res = anonymous()

	if err = s.Save(ctx, res); err != nil {
		return nil, err
	}

	return res, nil
}
