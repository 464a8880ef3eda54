package dto

import (
	"net/http"
	"strings"
)

type EmailRequest struct {
	Email string `form:"email" validate:"required,email"`
}

func (e *EmailRequest) FromRequest(r *http.Request) {
	e.Email = strings.TrimSpace(r.PostFormValue("email"))
}

type OTPRequest struct {
	OTP string `form:"otp" validate:"required,otp"`
}

func (o *OTPRequest) FromRequest(r *http.Request) {
	o.OTP = strings.TrimSpace(r.PostFormValue("otp"))
}

type ResetRequest struct {
	Password        string `form:"new_password"     validate:"required,min=6"`
	ConfirmPassword string `form:"confirm_password" validate:"required,eqfield=Password"`
}

func (p *ResetRequest) FromRequest(r *http.Request) {
	p.Password = r.PostFormValue("new_password")
	p.ConfirmPassword = r.PostFormValue("confirm_password")
}
