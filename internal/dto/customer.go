package dto

import (
	"strings"

	"micron-manager/internal/models"
)

// ListCustomersRequest represents the query parameters of the customer collection
type ListCustomersRequest struct {
	Context      string `query:"context" json:"context" validate:"oneof=view edit"`
	Page         int    `query:"page" json:"page" validate:"min=1"`
	PerPage      int    `query:"per_page" json:"per_page" validate:"min=1,max=100"`
	Search       string `query:"search" json:"search"`
	SearchFields string `query:"_searchFields" json:"_searchFields"`
	Email        string `query:"email" json:"email" validate:"omitempty,email"`
	Role         string `query:"role" json:"role" validate:"omitempty,customer_role"`
	OrderBy      string `query:"orderby" json:"orderby" validate:"oneof=id include name registered email"`
	Order        string `query:"order" json:"order" validate:"oneof=asc desc"`
}

// NewListCustomersRequest returns a request holding the parameter defaults.
// Binding overwrites only the parameters present in the query string.
func NewListCustomersRequest() ListCustomersRequest {
	return ListCustomersRequest{
		Context: models.ContextView,
		Page:    models.DefaultPage,
		PerPage: models.DefaultPerPage,
		OrderBy: models.DefaultOrderBy,
		Order:   models.DefaultOrder,
	}
}

// Sanitize trims free-text parameters before validation
func (r *ListCustomersRequest) Sanitize() {
	r.Search = strings.TrimSpace(r.Search)
	r.Email = strings.TrimSpace(r.Email)
	r.Role = strings.TrimSpace(r.Role)
}

// ToListParams converts a validated request to listing parameters.
// role=all means no specific role was requested.
func (r ListCustomersRequest) ToListParams() models.ListParams {
	role := r.Role
	if role == models.RoleAll {
		role = ""
	}

	return models.ListParams{
		Context:      r.Context,
		Page:         r.Page,
		PerPage:      r.PerPage,
		Search:       r.Search,
		SearchFields: splitSearchFields(r.SearchFields),
		Email:        r.Email,
		Role:         role,
		OrderBy:      r.OrderBy,
		Order:        r.Order,
	}
}

func splitSearchFields(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	fields := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			fields = append(fields, p)
		}
	}
	return fields
}
