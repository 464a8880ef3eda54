package dto

import (
	"net/http"
	"strings"

	"github.com/spf13/cast"
)

type DateRequest struct {
	Date string `form:"date" validate:"required,datetime=2006-01-02"`
}

func (d *DateRequest) FromRequest(r *http.Request) {
	d.Date = strings.TrimSpace(r.PostFormValue("date"))
}

type TimeRequest struct {
	Time string `form:"time" validate:"required"`
}

func (t *TimeRequest) FromRequest(r *http.Request) {
	t.Time = strings.TrimSpace(r.PostFormValue("time"))
}

type DetailsRequest struct {
	Visitors int    `form:"visitors_number" validate:"gte=0"`
	Note     string `form:"note"            validate:"omitempty,max=500"`
}

// FromRequest treats a missing or non-numeric count as zero so the step validation reports it.
func (d *DetailsRequest) FromRequest(r *http.Request) {
	d.Visitors = cast.ToInt(strings.TrimSpace(r.PostFormValue("visitors_number")))
	d.Note = strings.TrimSpace(r.PostFormValue("note"))
}
