package dto

import (
	"net/http"
	"strings"
)

type CreateSchoolRequest struct {
	Name string `form:"name" validate:"required,max=200"`
	City string `form:"city" validate:"required,max=100"`
}

func (c *CreateSchoolRequest) FromRequest(r *http.Request) {
	c.Name = strings.TrimSpace(r.PostFormValue("name"))
	c.City = strings.TrimSpace(r.PostFormValue("city"))
}

type UpdateSchoolRequest struct {
	Name string `form:"name" json:"name,omitempty" validate:"omitempty,max=200"`
	City string `form:"city" json:"city,omitempty" validate:"omitempty,max=100"`
}

func (u *UpdateSchoolRequest) FromRequest(r *http.Request) {
	u.Name = strings.TrimSpace(r.PostFormValue("name"))
	u.City = strings.TrimSpace(r.PostFormValue("city"))
}
