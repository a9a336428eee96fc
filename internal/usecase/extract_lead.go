package usecase

import (
	"strings"

	"github.com/StevenCC12/masterclass-webinar-api-integration-main/internal/entity"
)

// Query string keys planted by the WebinarJam thank-you page.
const (
	ParamEmail            = "wj_lead_email"
	ParamFirstName        = "wj_lead_first_name"
	ParamLastName         = "wj_lead_last_name"
	ParamPhoneCountryCode = "wj_lead_phone_country_code"
	ParamPhoneNumber      = "wj_lead_phone_number"
)

// LeadExtractor turns the thank-you page query parameters into a Lead.
// Tags and Source are fixed per deployment (could vary by campaign later).
type LeadExtractor struct {
	Tags   []string
	Source string
}

func NewLeadExtractor(tags []string, source string) *LeadExtractor {
	return &LeadExtractor{Tags: tags, Source: source}
}

// Extract builds the lead record from the raw query parameters.
// / Returns ok=false when the email parameter is absent: that is the gate for
// everything downstream and its absence is a no-op, not an error.
// Pure transformation, no side effects.
func (e *LeadExtractor) Extract(params map[string]string) (*entity.Lead, bool) {
	email := strings.TrimSpace(params[ParamEmail])
	if email == "" {
		return nil, false
	}

	firstName, lastName := deriveName(params[ParamFirstName], params[ParamLastName])

	dialCode := strings.TrimSpace(params[ParamPhoneCountryCode])
	number := strings.TrimSpace(params[ParamPhoneNumber])

	phone := ""
	switch {
	case dialCode != "" && number != "":
		phone = dialCode + number
	case number != "":
		phone = number
	}

	country := ""
	if dialCode != "" {
		country = entity.CountryFromDialCode(dialCode)
	}

	tags := make([]string, len(e.Tags))
	copy(tags, e.Tags)

	return &entity.Lead{
		Email:     email,
		FirstName: firstName,
		LastName:  lastName,
		Phone:     phone,
		Country:   country,
		Tags:      tags,
		Source:    e.Source,
	}, true
}

// deriveName applies the name heuristic: an explicit last name wins verbatim;
// otherwise the first-name field is treated as a full name and split on
// whitespace (first token / rest).
func deriveName(firstParam, lastParam string) (string, string) {
	first := strings.TrimSpace(firstParam)
	last := strings.TrimSpace(lastParam)

	if last != "" {
		return first, last
	}
	if first == "" {
		return "", ""
	}

	parts := strings.Fields(first)
	return parts[0], strings.Join(parts[1:], " ")
}

// SplitFullName is the same first-token/rest heuristic used when only a full
// name is available (registration requests, CSV backfill rows).
func SplitFullName(fullName string) (string, string) {
	parts := strings.Fields(fullName)
	if len(parts) == 0 {
		return "", ""
	}
	return parts[0], strings.Join(parts[1:], " ")
}
