package dto

import (
	"net/http"
	"strings"
)

type NotifyGuidesRequest struct {
	Type    string `form:"notification_type" validate:"required,max=100"`
	Message string `form:"message"           validate:"required,max=2000"`
}

func (n *NotifyGuidesRequest) FromRequest(r *http.Request) {
	n.Type = strings.TrimSpace(r.PostFormValue("notification_type"))
	n.Message = strings.TrimSpace(r.PostFormValue("message"))
}
