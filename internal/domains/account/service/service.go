package service

import (
	"context"
	"fmt"

	"campusvisit/infras/backend"
	"campusvisit/infras/otel"
	"campusvisit/internal/domains/account/model/dto"
	sessionModel "campusvisit/internal/domains/session/model"
	sessionService "campusvisit/internal/domains/session/service"
	"campusvisit/permissions"
	"campusvisit/shared/constant"
	"campusvisit/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	msgInvalidRole     = "Login failed. Invalid role returned."
	msgSchoolRequired  = "Please select a school for Visitor accounts."
	msgRegisterFailed  = "Failed to create your account. Please try again later."
	msgAddUserFailed   = "Failed to create the account. Please try again later."
	msgProfileFailed   = "Failed to update account. Please try again."
	msgContactFailed   = "Failed to send your message. Please try again."
	msgProfileUpdated  = "Account information updated successfully!"
	msgContactSent     = "Message sent. Thanks for your question!"
	msgRegistered      = "Welcome! Your account has been created."
	msgLoggedOut       = "You have been logged out."
	msgLoginFailedFmt  = "Error during login: %s"
	msgAccountAddedFmt = "Account for \"%s\" created successfully as a \"%s\"."
)

type Account interface {
	Login(ctx context.Context, sess *sessionModel.Session, req dto.LoginRequest) (*sessionModel.Session, string, error)
	Register(ctx context.Context, sess *sessionModel.Session, req dto.RegisterRequest) error
	Logout(ctx context.Context, sess *sessionModel.Session) (*sessionModel.Session, error)
	AddUser(ctx context.Context, sess *sessionModel.Session, req dto.AddUserRequest) error
	UpdateProfile(ctx context.Context, sess *sessionModel.Session, req dto.ProfileRequest) error
	Contact(ctx context.Context, sess *sessionModel.Session, req dto.ContactRequest) error
}

type serviceImpl struct {
	auth     backend.Auth
	contact  backend.Contact
	sessions sessionService.Session
	policy   *permissions.Policy
	otel     otel.Otel
}

func New(auth backend.Auth, contact backend.Contact, sessions sessionService.Session, policy *permissions.Policy, otel otel.Otel) Account {
	return &serviceImpl{
		auth:     auth,
		contact:  contact,
		sessions: sessions,
		policy:   policy,
		otel:     otel,
	}
}

// Login exchanges credentials for a token, starts a fresh session and returns the role's landing path.
func (s *serviceImpl) Login(ctx context.Context, sess *sessionModel.Session, req dto.LoginRequest) (res *sessionModel.Session, redirect string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Login")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	result, err := s.auth.Login(ctx, req.Email, req.Password)
	if err != nil {
		log.Warn().Err(err).Str("email", req.Email).Msg("login rejected")

		return nil, "", failure.New(failure.GetCode(err), fmt.Sprintf(msgLoginFailedFmt, err.Error()))
	}

	switch result.Role {
	case constant.RoleVisitor, constant.RoleAdmin, constant.RoleGuide:
	default:
		log.Warn().Str("role", result.Role).Msg("login returned an unknown role")

		return nil, "", failure.Unauthorized(msgInvalidRole)
	}

	res, err = s.sessions.Start(ctx, sess, result)
	if err != nil {
		return nil, "", err
	}

	return res, s.policy.Home(res.Role), nil
}

func (s *serviceImpl) Register(ctx context.Context, sess *sessionModel.Session, req dto.RegisterRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Register")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.auth.Register(ctx, req.ToBackend()); err != nil {
		log.Error().Err(err).Str("email", req.Email).Msg("failed to register visitor")

		return failure.New(failure.GetCode(err), msgRegisterFailed)
	}

	sess.Success(msgRegistered)

	return nil
}

func (s *serviceImpl) Logout(ctx context.Context, sess *sessionModel.Session) (res *sessionModel.Session, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Logout")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	res, err = s.sessions.End(ctx, sess)
	if err != nil {
		return nil, err
	}

	res.Info(msgLoggedOut)

	return res, nil
}

func (s *serviceImpl) AddUser(ctx context.Context, sess *sessionModel.Session, req dto.AddUserRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AddUser")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if req.Role == constant.RoleVisitor && req.SchoolID <= 0 {
		return failure.BadRequestFromString(msgSchoolRequired)
	}

	if err = s.auth.Register(ctx, req.ToBackend()); err != nil {
		log.Error().Err(err).Str("role", req.Role).Msg("failed to add user")

		return failure.New(failure.GetCode(err), msgAddUserFailed)
	}

	sess.Success(fmt.Sprintf(msgAccountAddedFmt, req.Name, req.Role))

	return nil
}

// UpdateProfile saves the account fields and mirrors name and email into the session.
func (s *serviceImpl) UpdateProfile(ctx context.Context, sess *sessionModel.Session, req dto.ProfileRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateProfile")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	result, err := s.auth.UpdateUser(ctx, req.ToBackend())
	if err != nil {
		log.Error().Err(err).Msg("failed to update account")

		return failure.New(failure.GetCode(err), msgProfileFailed)
	}

	sess.Name = req.Name
	sess.Email = req.Email

	if name, ok := result.UpdatedUser["name"].(string); ok && name != "" {
		sess.Name = name
	}

	if email, ok := result.UpdatedUser["user_email"].(string); ok && email != "" {
		sess.Email = email
	}

	sess.Success(msgProfileUpdated)

	return nil
}

func (s *serviceImpl) Contact(ctx context.Context, sess *sessionModel.Session, req dto.ContactRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Contact")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.contact.SendContact(ctx, req.ToBackend()); err != nil {
		log.Error().Err(err).Msg("failed to send contact message")

		return failure.New(failure.GetCode(err), msgContactFailed)
	}

	sess.Success(msgContactSent)

	return nil
}
