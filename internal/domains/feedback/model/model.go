package model

import "campusvisit/infras/backend"

const (
	UnknownSchool = "Unknown School"
	NoAppointment = "No Appointment"
)

type Entry struct {
	backend.Feedback
	SchoolName string
}

// Stars renders the rating as filled and empty stars out of five.
func (e Entry) Stars() string {
	stars := make([]rune, 0, 5)

	for index := 1; index <= 5; index++ {
		if index <= e.Rating {
			stars = append(stars, '★')
		} else {
			stars = append(stars, '☆')
		}
	}

	return string(stars)
}
