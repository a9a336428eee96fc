package webinarjam

import (
	"strconv"
	"strings"
)

// FlexInt tolerates the WebinarJam API returning counters either as JSON
// numbers or as quoted strings (it does both, depending on the endpoint).
type FlexInt int

func (f *FlexInt) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		*f = 0
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return err
	}
	*f = FlexInt(n)
	return nil
}

// RegisteredUser is the useful part of a successful /register response.
type RegisteredUser struct {
	UserID        FlexInt `json:"user_id"`
	LiveRoomURL   string  `json:"live_room_url"`
	ReplayRoomURL string  `json:"replay_room_url"`
	ThankYouURL   string  `json:"thank_you_url"`
}

type registerResponse struct {
	Status string         `json:"status"`
	Error  string         `json:"error"`
	User   RegisteredUser `json:"user"`
}

// Registrant mirrors one entry of the /registrants listing.
// attended_live and purchased_live come back as "Yes"/"No" strings,
// time_live as "HH:MM:SS".
type Registrant struct {
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	Email         string `json:"email"`
	PhoneNumber   string `json:"phone_number"`
	Phone         string `json:"phone"`
	AttendedLive  string `json:"attended_live"`
	TimeLive      string `json:"time_live"`
	PurchasedLive string `json:"purchased_live"`
}

// BestPhone prefers phone_number but falls back to phone; the API has used
// both field names over time.
func (r *Registrant) BestPhone() string {
	if r.PhoneNumber != "" {
		return r.PhoneNumber
	}
	return r.Phone
}

// RegistrantsPage is one page of the paginated registrants listing.
type RegistrantsPage struct {
	CurrentPage FlexInt      `json:"current_page"`
	TotalPages  FlexInt      `json:"total_pages"`
	Data        []Registrant `json:"data"`
}

// PageInfo returns the current and total page counters as plain ints.
func (p *RegistrantsPage) PageInfo() (current, total int) {
	return int(p.CurrentPage), int(p.TotalPages)
}

type registrantsResponse struct {
	Status      string          `json:"status"`
	Message     string          `json:"message"`
	Error       string          `json:"error"`
	Registrants RegistrantsPage `json:"registrants"`
}
