package usecase

import "strings"

// Consumer mailbox providers seen across past registrant exports. The
// Swedish variants matter: a large share of the audience registers with
// local Hotmail/Live addresses.
var personalEmailDomains = map[string]bool{
	"gmail.com":      true,
	"hotmail.com":    true,
	"yahoo.com":      true,
	"outlook.com":    true,
	"live.com":       true,
	"icloud.com":     true,
	"aol.com":        true,
	"protonmail.com": true,
	"yandex.com":     true,
	"zoho.com":       true,
	"mail.com":       true,
	"me.com":         true,
	"hotmail.co.uk":  true,
	"live.se":        true,
	"hotmail.se":     true,
	"yahoo.se":       true,
}

// IsPersonalEmail reports whether the address belongs to a consumer mailbox
// provider rather than a company domain.
func IsPersonalEmail(email string) bool {
	at := strings.LastIndex(email, "@")
	if at < 0 || at == len(email)-1 {
		return false
	}
	return personalEmailDomains[strings.ToLower(email[at+1:])]
}
