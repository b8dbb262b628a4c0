package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchClause_Predicate_Mixed(t *testing.T) {
	clause := &SearchClause{
		Term:          "acme",
		Columns:       []string{"user_email"},
		AttributeKeys: []string{"billing_company"},
	}

	pred, ok := clause.Predicate().(Or)
	require.True(t, ok)
	require.Len(t, pred, 2)
	assert.Equal(t, ColumnContains{Columns: []string{"user_email"}, Term: "acme"}, pred[0])
	assert.Equal(t, AttributeContains{Key: "billing_company", Term: "acme"}, pred[1])
}

func TestSearchClause_Predicate_AttributesOnly(t *testing.T) {
	clause := &SearchClause{
		Term:          "ann",
		AttributeKeys: []string{"first_name", "last_name"},
	}

	pred, ok := clause.Predicate().(Or)
	require.True(t, ok)
	assert.Equal(t, Or{
		AttributeContains{Key: "first_name", Term: "ann"},
		AttributeContains{Key: "last_name", Term: "ann"},
	}, pred)
	assert.False(t, clause.HasColumns())
	assert.True(t, clause.HasAttributes())
}

func TestSearchClause_NilPredicate(t *testing.T) {
	var clause *SearchClause
	assert.Nil(t, clause.Predicate())
	assert.False(t, clause.HasColumns())
	assert.False(t, clause.HasAttributes())
}

func TestQueryPlan_Where(t *testing.T) {
	plan := QueryPlan{
		Roles:       []string{RoleCustomer, RoleSubscriber},
		EmailEquals: "a@b.co",
		Search: &SearchClause{
			Term:    "x",
			Columns: []string{"user_email"},
		},
	}

	where, ok := plan.Where().(And)
	require.True(t, ok)
	require.Len(t, where, 3)
	assert.Equal(t, RoleIn{Roles: []string{RoleCustomer, RoleSubscriber}}, where[0])
	assert.Equal(t, Or{ColumnContains{Columns: []string{"user_email"}, Term: "x"}}, where[1])
	assert.Equal(t, ColumnEquals{Column: ColumnUserEmail, Value: "a@b.co"}, where[2])
}

func TestQueryPlan_Where_RolesOnly(t *testing.T) {
	where := QueryPlan{Roles: []string{RoleCustomer}}.Where()
	assert.Equal(t, And{RoleIn{Roles: []string{RoleCustomer}}}, where)
}

func TestCustomerView_MarshalJSON(t *testing.T) {
	view := CustomerView{
		ID:       3,
		Email:    "a@b.co",
		MetaData: []MetaData{},
		Links: Links{
			Self:       []Link{{Href: "http://x/customers/3"}},
			Collection: []Link{{Href: "http://x/customers"}},
		},
	}

	data, err := json.Marshal(view)
	require.NoError(t, err)

	var fields map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &fields))
	assert.Contains(t, fields, "email")
	assert.Contains(t, fields, "_links")
	assert.Nil(t, fields["date_modified"])
	assert.Equal(t, []interface{}{}, fields["meta_data"])

	hidden := view.WithOmitted("email", "avatar_url")
	data, err = json.Marshal(hidden)
	require.NoError(t, err)

	fields = map[string]interface{}{}
	require.NoError(t, json.Unmarshal(data, &fields))
	assert.NotContains(t, fields, "email")
	assert.NotContains(t, fields, "avatar_url")
	assert.Contains(t, fields, "id")

	assert.Empty(t, view.Omitted(), "original view must stay untouched")
	assert.Equal(t, []string{"email", "avatar_url"}, hidden.Omitted())
}

func TestItemSchema_HiddenIn(t *testing.T) {
	schema := CustomerItemSchema()
	assert.Empty(t, schema.HiddenIn(ContextView))
	assert.Empty(t, schema.HiddenIn(ContextEdit))

	schema.Properties["password_hint"] = SchemaProperty{Type: "string", Context: []string{ContextEdit}}
	assert.Equal(t, []string{"password_hint"}, schema.HiddenIn(ContextView))
	assert.Empty(t, schema.HiddenIn(ContextEdit))
}

func TestCustomerCollectionParams(t *testing.T) {
	params := CustomerCollectionParams([]string{RoleCustomer, RoleSubscriber})

	byName := make(map[string]ParamSchema, len(params))
	for _, p := range params {
		byName[p.Name] = p
	}

	require.Contains(t, byName, "role")
	assert.Equal(t, []string{RoleAll, RoleCustomer, RoleSubscriber}, byName["role"].Enum)
	assert.Equal(t, MaxPerPage, *byName["per_page"].Maximum)
	assert.Equal(t, DefaultOrderBy, byName["orderby"].Default)
	assert.Contains(t, byName["_searchFields"].Description, "email, first_name, last_name, company, username")
}
