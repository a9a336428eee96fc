package entity

// Lead is the contact record delivered to the GHL inbound webhook.
// It is built once by the extractor and never mutated afterwards; leads are
// not persisted, the record only lives for the duration of one delivery.
type Lead struct {
	Email     string   `json:"email"`
	FirstName string   `json:"firstName"`
	LastName  string   `json:"lastName"`
	Phone     string   `json:"phone"`
	Country   string   `json:"country"`
	Tags      []string `json:"tags"`
	Source    string   `json:"source"`
}
