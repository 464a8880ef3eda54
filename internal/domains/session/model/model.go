package model

import (
	"time"

	bookingModel "campusvisit/internal/domains/booking/model"
	recoveryModel "campusvisit/internal/domains/recovery/model"
	"campusvisit/shared/constant"
)

type Toast struct {
	Level   string `json:"level"`
	Message string `json:"message"`
}

// Session is the per-browser state kept server side. A session without a role is logged out.
type Session struct {
	ID             string               `json:"id"`
	Role           string               `json:"role,omitempty"`
	Name           string               `json:"name,omitempty"`
	Email          string               `json:"email,omitempty"`
	Token          string               `json:"token,omitempty"`
	ExpiresAt      time.Time            `json:"expires_at"`
	Toasts         []Toast              `json:"toasts,omitempty"`
	Booking        *bookingModel.Wizard `json:"booking,omitempty"`
	Recovery       *recoveryModel.Flow  `json:"recovery,omitempty"`
	ExpandedCities map[string]bool      `json:"expanded_cities,omitempty"`
}

func (s *Session) LoggedIn() bool {
	return s != nil && s.Role != "" && s.Token != ""
}

func (s *Session) IsStaff() bool {
	return s != nil && (s.Role == constant.RoleAdmin || s.Role == constant.RoleGuide)
}

func (s *Session) AddToast(level, message string) {
	s.Toasts = append(s.Toasts, Toast{Level: level, Message: message})
}

func (s *Session) Success(message string) { s.AddToast(constant.ToastSuccess, message) }

func (s *Session) Info(message string) { s.AddToast(constant.ToastInfo, message) }

func (s *Session) Warn(message string) { s.AddToast(constant.ToastWarning, message) }

func (s *Session) Error(message string) { s.AddToast(constant.ToastError, message) }

// DrainToasts returns the queued toasts and empties the queue.
func (s *Session) DrainToasts() []Toast {
	toasts := s.Toasts
	s.Toasts = nil

	return toasts
}

// ToggleCity flips the expand flag of a city group and returns the new state.
func (s *Session) ToggleCity(city string) bool {
	if s.ExpandedCities == nil {
		s.ExpandedCities = make(map[string]bool)
	}

	s.ExpandedCities[city] = !s.ExpandedCities[city]

	return s.ExpandedCities[city]
}

// Expired reports whether the bearer token is past its exp claim. Tokens without one never expire here.
func (s *Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && !now.Before(s.ExpiresAt)
}

// Clear drops identity and per-user drafts but keeps the id and pending toasts.
func (s *Session) Clear() {
	s.Role = ""
	s.Name = ""
	s.Email = ""
	s.Token = ""
	s.ExpiresAt = time.Time{}
	s.Booking = nil
	s.Recovery = nil
	s.ExpandedCities = nil
}
