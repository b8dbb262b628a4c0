package models

import "encoding/json"

// BillingAddress is the flattened billing attribute group
type BillingAddress struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Company   string `json:"company"`
	Address1  string `json:"address_1"`
	Address2  string `json:"address_2"`
	City      string `json:"city"`
	State     string `json:"state"`
	Postcode  string `json:"postcode"`
	Country   string `json:"country"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

// ShippingAddress is the flattened shipping attribute group. It has no email.
type ShippingAddress struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Company   string `json:"company"`
	Address1  string `json:"address_1"`
	Address2  string `json:"address_2"`
	City      string `json:"city"`
	State     string `json:"state"`
	Postcode  string `json:"postcode"`
	Country   string `json:"country"`
	Phone     string `json:"phone"`
}

// MetaData is an extension entry of a customer
type MetaData struct {
	ID    uint64 `json:"id"`
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Link is a hypermedia reference
type Link struct {
	Href string `json:"href"`
}

// Links are the hypermedia links attached to a customer
type Links struct {
	Self       []Link `json:"self"`
	Collection []Link `json:"collection"`
}

// CustomerView is the public representation of a customer
type CustomerView struct {
	ID               uint64          `json:"id"`
	DateCreated      string          `json:"date_created"`
	DateCreatedGMT   string          `json:"date_created_gmt"`
	DateModified     *string         `json:"date_modified"`
	DateModifiedGMT  *string         `json:"date_modified_gmt"`
	Email            string          `json:"email"`
	FirstName        string          `json:"first_name"`
	LastName         string          `json:"last_name"`
	Role             string          `json:"role"`
	Username         string          `json:"username"`
	Billing          BillingAddress  `json:"billing"`
	Shipping         ShippingAddress `json:"shipping"`
	IsPayingCustomer bool            `json:"is_paying_customer"`
	AvatarURL        string          `json:"avatar_url"`
	MetaData         []MetaData      `json:"meta_data"`
	Links            Links           `json:"_links"`

	omit []string
}

// WithOmitted returns a copy of v that leaves the named top-level fields out of its JSON form.
func (v CustomerView) WithOmitted(fields ...string) CustomerView {
	if len(fields) == 0 {
		return v
	}
	v.omit = append(append([]string(nil), v.omit...), fields...)
	return v
}

// Omitted returns the top-level fields left out of the JSON form
func (v CustomerView) Omitted() []string {
	return append([]string(nil), v.omit...)
}

func (v CustomerView) MarshalJSON() ([]byte, error) {
	type view CustomerView

	data, err := json.Marshal(view(v))
	if err != nil || len(v.omit) == 0 {
		return data, err
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, err
	}
	for _, name := range v.omit {
		delete(fields, name)
	}

	return json.Marshal(fields)
}
