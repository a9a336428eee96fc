package usecase

// RegisterContactInput is the body of POST /register, shaped after the GHL
// contact payload that triggers registrations.
type RegisterContactInput struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type RegisterContactOutput struct {
	Message       string `json:"message"`
	UserID        int    `json:"user_id"`
	LiveRoomURL   string `json:"live_room_url"`
	ReplayRoomURL string `json:"replay_room_url"`
	ThankYouURL   string `json:"thank_you_url"`
}

// registrationNotification is what gets forwarded to the GHL webhook after a
// successful WebinarJam registration: the per-user room URLs GHL stores on
// the contact for follow-up emails.
type registrationNotification struct {
	Email         string `json:"email"`
	UserID        int    `json:"user_id"`
	LiveRoomURL   string `json:"live_room_url"`
	ReplayRoomURL string `json:"replay_room_url"`
	ThankYouURL   string `json:"thank_you_url"`
}

// FollowupPayload is one registrant's post-webinar record for GHL. Empty
// fields are dropped from the JSON, matching what the automation on the GHL
// side expects.
type FollowupPayload struct {
	WebinarID       string `json:"webinar_id,omitempty"`
	ScheduleID      string `json:"schedule_id,omitempty"`
	FirstName       string `json:"first_name,omitempty"`
	LastName        string `json:"last_name,omitempty"`
	Email           string `json:"email"`
	Phone           string `json:"phone,omitempty"`
	Tag             string `json:"tag"`
	Purchased       int    `json:"purchased"`
	HotLead         int    `json:"hot_lead"`
	TimeLive        string `json:"time_live,omitempty"`
	AttendedLiveAPI string `json:"attended_live_api_value,omitempty"`
}
