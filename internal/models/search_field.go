package models

import "strings"

// SearchField is a logical customer field that free-text search can target
type SearchField string

const (
	SearchFieldEmail     SearchField = "email"
	SearchFieldFirstName SearchField = "first_name"
	SearchFieldLastName  SearchField = "last_name"
	SearchFieldCompany   SearchField = "company"
	SearchFieldUsername  SearchField = "username"
)

// StorageKind says where the value behind a SearchField lives
type StorageKind int

const (
	// StorageColumn is a column on the users table
	StorageColumn StorageKind = iota
	// StorageAttribute is a row in the usermeta table
	StorageAttribute
)

// FieldStorage maps a SearchField to its backing location
type FieldStorage struct {
	Kind         StorageKind
	Columns      []string
	AttributeKey string
}

// DefaultSearchFields is the canonical, complete set of search fields
var DefaultSearchFields = []SearchField{
	SearchFieldEmail,
	SearchFieldFirstName,
	SearchFieldLastName,
	SearchFieldCompany,
	SearchFieldUsername,
}

var searchFieldStorage = map[SearchField]FieldStorage{
	SearchFieldEmail:     {Kind: StorageColumn, Columns: []string{"user_email"}},
	SearchFieldUsername:  {Kind: StorageColumn, Columns: []string{"user_login", "user_nicename"}},
	SearchFieldFirstName: {Kind: StorageAttribute, AttributeKey: "first_name"},
	SearchFieldLastName:  {Kind: StorageAttribute, AttributeKey: "last_name"},
	SearchFieldCompany:   {Kind: StorageAttribute, AttributeKey: "billing_company"},
}

// IsValid reports whether f belongs to the closed set of search fields
func (f SearchField) IsValid() bool {
	_, ok := searchFieldStorage[f]
	return ok
}

// Storage returns the backing location of f. The second value is false for unknown fields.
func (f SearchField) Storage() (FieldStorage, bool) {
	s, ok := searchFieldStorage[f]
	return s, ok
}

// ParseSearchFields splits a comma-separated list and resolves it.
func ParseSearchFields(raw string) []SearchField {
	if strings.TrimSpace(raw) == "" {
		return ResolveSearchFields(nil)
	}

	parts := strings.Split(raw, ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return ResolveSearchFields(parts)
}

// ResolveSearchFields intersects requested with the valid set, keeping the
// requested order and dropping duplicates. Unknown values are dropped silently.
// When nothing valid remains the full default set is returned.
func ResolveSearchFields(requested []string) []SearchField {
	seen := make(map[SearchField]bool, len(requested))
	fields := make([]SearchField, 0, len(requested))

	for _, r := range requested {
		f := SearchField(r)
		if !f.IsValid() || seen[f] {
			continue
		}
		seen[f] = true
		fields = append(fields, f)
	}

	if len(fields) == 0 {
		out := make([]SearchField, len(DefaultSearchFields))
		copy(out, DefaultSearchFields)
		return out
	}

	return fields
}
