package dto

import (
	"net/http"
	"strings"

	"campusvisit/infras/backend"
	"campusvisit/shared/constant"

	"github.com/spf13/cast"
)

type LoginRequest struct {
	Email    string `form:"email"    validate:"required,email"`
	Password string `form:"password" validate:"required"`
}

func (l *LoginRequest) FromRequest(r *http.Request) {
	l.Email = strings.TrimSpace(r.PostFormValue("email"))
	l.Password = r.PostFormValue("password")
}

type RegisterRequest struct {
	Name     string `form:"name"      validate:"required,max=100"`
	Email    string `form:"email"     validate:"required,email"`
	Password string `form:"password"  validate:"required,min=6"`
	SchoolID int64  `form:"school_id" validate:"required,gt=0"`
}

func (r *RegisterRequest) FromRequest(req *http.Request) {
	r.Name = strings.TrimSpace(req.PostFormValue("name"))
	r.Email = strings.TrimSpace(req.PostFormValue("email"))
	r.Password = req.PostFormValue("password")
	r.SchoolID = cast.ToInt64(req.PostFormValue("school_id"))
}

func (r *RegisterRequest) ToBackend() backend.RegisterRequest {
	schoolID := r.SchoolID

	return backend.RegisterRequest{
		Email:    r.Email,
		Role:     constant.RoleVisitor,
		Name:     r.Name,
		SchoolID: &schoolID,
		Password: r.Password,
	}
}

// AddUserRequest is the staff form; SchoolID is only meaningful for visitor accounts.
type AddUserRequest struct {
	Name     string `form:"name"      validate:"required,max=100"`
	Email    string `form:"email"     validate:"required,email"`
	Password string `form:"password"  validate:"required,min=6"`
	Role     string `form:"role"      validate:"required,role"`
	SchoolID int64  `form:"school_id" validate:"omitempty,gt=0"`
}

func (a *AddUserRequest) FromRequest(r *http.Request) {
	a.Name = strings.TrimSpace(r.PostFormValue("name"))
	a.Email = strings.TrimSpace(r.PostFormValue("email"))
	a.Password = r.PostFormValue("password")
	a.Role = strings.TrimSpace(r.PostFormValue("role"))
	a.SchoolID = cast.ToInt64(r.PostFormValue("school_id"))
}

func (a *AddUserRequest) ToBackend() backend.RegisterRequest {
	req := backend.RegisterRequest{
		Email:    a.Email,
		Role:     a.Role,
		Name:     a.Name,
		Password: a.Password,
	}

	if a.Role == constant.RoleVisitor {
		schoolID := a.SchoolID
		req.SchoolID = &schoolID
	}

	return req
}

type ProfileRequest struct {
	Name     string `form:"name"     validate:"required,max=100"`
	Email    string `form:"email"    validate:"required,email"`
	Password string `form:"password" validate:"omitempty,min=6"`
}

func (p *ProfileRequest) FromRequest(r *http.Request) {
	p.Name = strings.TrimSpace(r.PostFormValue("name"))
	p.Email = strings.TrimSpace(r.PostFormValue("email"))
	p.Password = r.PostFormValue("password")
}

func (p *ProfileRequest) ToBackend() backend.UpdateUserRequest {
	return backend.UpdateUserRequest{
		Name:     p.Name,
		Email:    p.Email,
		Password: p.Password,
	}
}

type ContactRequest struct {
	Name    string `form:"name"    validate:"required,max=100"`
	Email   string `form:"email"   validate:"required,email"`
	Message string `form:"message" validate:"required,max=2000"`
}

func (c *ContactRequest) FromRequest(r *http.Request) {
	c.Name = strings.TrimSpace(r.PostFormValue("name"))
	c.Email = strings.TrimSpace(r.PostFormValue("email"))
	c.Message = strings.TrimSpace(r.PostFormValue("message"))
}

func (c *ContactRequest) ToBackend() backend.ContactMessage {
	return backend.ContactMessage{
		SenderName:  c.Name,
		SenderEmail: c.Email,
		Message:     c.Message,
	}
}
