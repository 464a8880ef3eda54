package backend

// Appointment is the backend's appointment row as the portal reads it.
type Appointment struct {
	ID             int64  `json:"id"`
	UserID         int64  `json:"user_id"`
	GuideID        *int64 `json:"guide_id,omitempty"`
	Date           string `json:"date"`
	Time           string `json:"time"`
	City           string `json:"city"`
	VisitorsNumber int    `json:"visitors_number"`
	Note           string `json:"note"`
	Status         string `json:"status"`
	SchoolName     string `json:"school_name,omitempty"`
	CreatedAt      string `json:"created_at,omitempty"`
}

type CreateAppointmentRequest struct {
	Date           string `json:"date"`
	Time           string `json:"time"`
	VisitorsNumber int    `json:"visitors_number"`
	Note           string `json:"note,omitempty"`
}

type StatusUpdate struct {
	Status string `json:"status"`
}

type LoginResult struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	Role        string `json:"role"`
	Name        string `json:"name"`
	Email       string `json:"user_email"`
}

type RegisterRequest struct {
	Email    string `json:"user_email"`
	Role     string `json:"role"`
	Name     string `json:"name"`
	SchoolID *int64 `json:"school_id,omitempty"`
	Password string `json:"password"`
}

type UpdateUserRequest struct {
	Name     string `json:"name,omitempty"`
	Email    string `json:"user_email,omitempty"`
	Password string `json:"password,omitempty"`
}

type UpdateUserResult struct {
	Message     string         `json:"message"`
	UpdatedUser map[string]any `json:"updated_user"`
}

type Notification struct {
	ID            int64  `json:"id"`
	RecipientID   int64  `json:"recipient_id"`
	AppointmentID *int64 `json:"appointment_id,omitempty"`
	Message       string `json:"message"`
	Type          string `json:"type"`
	IsRead        bool   `json:"is_read"`
	CreatedAt     string `json:"created_at"`
}

type NotificationCreate struct {
	RecipientID   int64  `json:"recipient_id"`
	AppointmentID *int64 `json:"appointment_id,omitempty"`
	Message       string `json:"message"`
	Type          string `json:"type"`
}

// Broadcast is the body of the notify-admins, notify-guides and custom notification calls.
type Broadcast struct {
	AppointmentID *int64 `json:"appointment_id,omitempty"`
	Message       string `json:"message"`
	Type          string `json:"notification_type"`
}

type School struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	City string `json:"city"`
}

type SchoolInput struct {
	Name string `json:"name,omitempty"`
	City string `json:"city,omitempty"`
}

type Feedback struct {
	ID            int64  `json:"id"`
	UserID        int64  `json:"user_id"`
	AppointmentID *int64 `json:"appointment_id,omitempty"`
	Rating        int    `json:"rating"`
	Comment       string `json:"comment"`
	CreatedAt     string `json:"created_at"`
}

type FeedbackCreate struct {
	Rating        int    `json:"rating"`
	Comment       string `json:"comment"`
	AppointmentID *int64 `json:"appointment_id,omitempty"`
}

type ContactMessage struct {
	SenderName  string `json:"sender_name"`
	SenderEmail string `json:"sender_email"`
	Message     string `json:"message"`
}
