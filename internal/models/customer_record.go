package models

import "time"

// CustomerRecord is a user row hydrated with its roles and attributes.
// It is the read-only input to the response projector.
type CustomerRecord struct {
	ID          uint64
	Email       string
	Login       string
	Nicename    string
	DisplayName string
	Registered  time.Time
	Roles       []string
	Attributes  map[string]string
}

// Attr returns the attribute value for key, or an empty string when absent.
func (r *CustomerRecord) Attr(key string) string {
	if r == nil || r.Attributes == nil {
		return ""
	}
	return r.Attributes[key]
}

// AttrBool coerces a stored attribute the way the store writes flags:
// an absent value, "" and "0" are false, anything else is true.
func (r *CustomerRecord) AttrBool(key string) bool {
	v := r.Attr(key)
	return v != "" && v != "0"
}

// PrimaryRole returns the first assigned role, or def when the user has none.
func (r *CustomerRecord) PrimaryRole(def string) string {
	if r == nil || len(r.Roles) == 0 {
		return def
	}
	return r.Roles[0]
}
