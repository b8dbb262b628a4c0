package models

import (
	"sort"
	"strings"
)

// Request contexts
const (
	ContextView = "view"
	ContextEdit = "edit"
)

// Collection parameter defaults and bounds
const (
	DefaultPage    = 1
	DefaultPerPage = 10
	MaxPerPage     = 100

	DefaultOrderBy = OrderByRegistered
	DefaultOrder   = OrderDesc
)

// SchemaProperty describes one field of the public customer representation
type SchemaProperty struct {
	Description string   `json:"description"`
	Type        string   `json:"type"`
	Format      string   `json:"format,omitempty"`
	Context     []string `json:"context"`
	ReadOnly    bool     `json:"readonly,omitempty"`
}

// AllowedIn reports whether the property is returned in the given request context
func (p SchemaProperty) AllowedIn(context string) bool {
	for _, c := range p.Context {
		if c == context {
			return true
		}
	}
	return false
}

// ItemSchema is a JSON-schema style description of a resource
type ItemSchema struct {
	Schema     string                    `json:"$schema"`
	Title      string                    `json:"title"`
	Type       string                    `json:"type"`
	Properties map[string]SchemaProperty `json:"properties"`
}

// HiddenIn lists, in name order, the declared properties not returned in context.
// Fields the schema does not declare are always returned.
func (s ItemSchema) HiddenIn(context string) []string {
	var hidden []string
	for name, prop := range s.Properties {
		if !prop.AllowedIn(context) {
			hidden = append(hidden, name)
		}
	}
	sort.Strings(hidden)
	return hidden
}

// ParamSchema describes one query parameter of a route
type ParamSchema struct {
	Name        string      `json:"-"`
	Description string      `json:"description"`
	Type        string      `json:"type"`
	Format      string      `json:"format,omitempty"`
	Default     interface{} `json:"default,omitempty"`
	Enum        []string    `json:"enum,omitempty"`
	Minimum     *int        `json:"minimum,omitempty"`
	Maximum     *int        `json:"maximum,omitempty"`
}

var viewEdit = []string{ContextView, ContextEdit}

// CustomerItemSchema returns the schema of the public customer representation
func CustomerItemSchema() ItemSchema {
	return ItemSchema{
		Schema: "http://json-schema.org/draft-04/schema#",
		Title:  "customer",
		Type:   "object",
		Properties: map[string]SchemaProperty{
			"id":                 {Description: "Unique identifier for the resource.", Type: "integer", Context: viewEdit, ReadOnly: true},
			"date_created":       {Description: "The date the customer was created, in the site's timezone.", Type: "string", Format: "date-time", Context: viewEdit, ReadOnly: true},
			"date_created_gmt":   {Description: "The date the customer was created, as GMT.", Type: "string", Format: "date-time", Context: viewEdit, ReadOnly: true},
			"date_modified":      {Description: "The date the customer was last modified, in the site's timezone.", Type: "string", Format: "date-time", Context: viewEdit, ReadOnly: true},
			"date_modified_gmt":  {Description: "The date the customer was last modified, as GMT.", Type: "string", Format: "date-time", Context: viewEdit, ReadOnly: true},
			"email":              {Description: "The email address for the customer.", Type: "string", Format: "email", Context: viewEdit},
			"first_name":         {Description: "Customer first name.", Type: "string", Context: viewEdit},
			"last_name":          {Description: "Customer last name.", Type: "string", Context: viewEdit},
			"role":               {Description: "Customer role.", Type: "string", Context: viewEdit, ReadOnly: true},
			"username":           {Description: "Customer login name.", Type: "string", Context: viewEdit, ReadOnly: true},
			"billing":            {Description: "List of billing address data.", Type: "object", Context: viewEdit},
			"shipping":           {Description: "List of shipping address data.", Type: "object", Context: viewEdit},
			"is_paying_customer": {Description: "Is the customer a paying customer?", Type: "boolean", Context: viewEdit, ReadOnly: true},
			"avatar_url":         {Description: "Avatar URL.", Type: "string", Context: viewEdit, ReadOnly: true},
			"meta_data":          {Description: "Meta data.", Type: "array", Context: viewEdit},
		},
	}
}

func intPtr(v int) *int { return &v }

// CustomerCollectionParams describes the query parameters of the customer collection.
// knownRoles are the role names the role parameter accepts besides "all".
func CustomerCollectionParams(knownRoles []string) []ParamSchema {
	roles := append([]string{RoleAll}, knownRoles...)

	fields := make([]string, len(DefaultSearchFields))
	for i, f := range DefaultSearchFields {
		fields[i] = string(f)
	}

	return []ParamSchema{
		{Name: "context", Description: "Scope under which the request is made; determines fields present in response.", Type: "string", Default: ContextView, Enum: []string{ContextView, ContextEdit}},
		{Name: "page", Description: "Current page of the collection.", Type: "integer", Default: DefaultPage, Minimum: intPtr(1)},
		{Name: "per_page", Description: "Maximum number of items to be returned in result set.", Type: "integer", Default: DefaultPerPage, Minimum: intPtr(1), Maximum: intPtr(MaxPerPage)},
		{Name: "search", Description: "Limit results to those matching a string.", Type: "string"},
		{Name: "_searchFields", Description: "Comma-separated list of fields to search in. Valid values: " + strings.Join(fields, ", ") + ".", Type: "string"},
		{Name: "email", Description: "Limit results to those matching a specific email.", Type: "string", Format: "email"},
		{Name: "role", Description: "Limit results to those matching a specific role.", Type: "string", Enum: roles},
		{Name: "orderby", Description: "Sort collection by attribute.", Type: "string", Default: DefaultOrderBy, Enum: []string{OrderByID, OrderByInclude, OrderByName, OrderByRegistered, OrderByEmail}},
		{Name: "order", Description: "Order sort attribute ascending or descending.", Type: "string", Default: DefaultOrder, Enum: []string{OrderAsc, OrderDesc}},
	}
}
