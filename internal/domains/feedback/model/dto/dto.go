package dto

import (
	"net/http"
	"strings"

	"github.com/spf13/cast"
)

type SubmitFeedbackRequest struct {
	Rating  int    `form:"rating"  validate:"required,min=1,max=5"`
	Comment string `form:"comment" validate:"omitempty,max=1000"`
}

func (s *SubmitFeedbackRequest) FromRequest(r *http.Request) {
	s.Rating = cast.ToInt(strings.TrimSpace(r.PostFormValue("rating")))
	s.Comment = strings.TrimSpace(r.PostFormValue("comment"))
}
