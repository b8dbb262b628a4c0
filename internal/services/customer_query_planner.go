package services

import (
	"strings"

	"micron-manager/internal/models"
)

// DefaultListRoles are the roles listed when the request names none
var DefaultListRoles = []string{models.RoleCustomer, models.RoleSubscriber}

// BuildPlan turns list parameters into a store-independent query plan.
// It has no side effects.
func BuildPlan(params models.ListParams) models.QueryPlan {
	page := params.Page
	if page < 1 {
		page = models.DefaultPage
	}

	perPage := params.PerPage
	if perPage < 1 {
		perPage = models.DefaultPerPage
	}
	if perPage > models.MaxPerPage {
		perPage = models.MaxPerPage
	}

	plan := models.QueryPlan{
		Roles:    planRoles(params.Role),
		OrderBy:  params.OrderBy,
		Order:    params.Order,
		Page:     page,
		PageSize: perPage,
		Offset:   (page - 1) * perPage,
		Limit:    perPage,
	}

	if plan.OrderBy == "" {
		plan.OrderBy = models.DefaultOrderBy
	}
	if plan.Order == "" {
		plan.Order = models.DefaultOrder
	}

	if term := strings.TrimSpace(params.Search); term != "" {
		plan.Search = buildSearchClause(term, params.SearchFields)
	}

	if email := strings.TrimSpace(params.Email); email != "" {
		plan.EmailEquals = email
	}

	return plan
}

func planRoles(role string) []string {
	if role == "" || role == models.RoleAll {
		return append([]string(nil), DefaultListRoles...)
	}
	return []string{role}
}

// buildSearchClause partitions the resolved fields by storage kind. The
// resulting clause always carries at least one column or attribute key
// because field resolution never returns an empty set.
func buildSearchClause(term string, requested []string) *models.SearchClause {
	fields := models.ResolveSearchFields(requested)

	clause := &models.SearchClause{
		Term:   term,
		Fields: fields,
	}

	seenColumns := make(map[string]bool)
	for _, field := range fields {
		storage, ok := field.Storage()
		if !ok {
			continue
		}

		switch storage.Kind {
		case models.StorageColumn:
			for _, column := range storage.Columns {
				if seenColumns[column] {
					continue
				}
				seenColumns[column] = true
				clause.Columns = append(clause.Columns, column)
			}
		case models.StorageAttribute:
			clause.AttributeKeys = append(clause.AttributeKeys, storage.AttributeKey)
		}
	}

	return clause
}
