package models

// Order directions
const (
	OrderAsc  = "asc"
	OrderDesc = "desc"
)

// Sortable attributes accepted by the orderby parameter
const (
	OrderByID         = "id"
	OrderByInclude    = "include"
	OrderByName       = "name"
	OrderByRegistered = "registered"
	OrderByEmail      = "email"
)

// Column names of the users table referenced by filters
const (
	ColumnUserEmail = "user_email"
)

// Predicate is a node of a filter expression tree. Store adapters compile
// the tree into their native query language.
type Predicate interface {
	predicate()
}

// And matches when every child matches. An empty And matches everything.
type And []Predicate

// Or matches when any child matches. An empty Or matches nothing.
type Or []Predicate

// ColumnContains matches when any of the columns contains Term as a
// case-insensitive substring.
type ColumnContains struct {
	Columns []string
	Term    string
}

// ColumnEquals matches when the column equals Value, ignoring case.
type ColumnEquals struct {
	Column string
	Value  string
}

// AttributeContains matches when the user has attribute Key whose value
// contains Term as a case-insensitive substring.
type AttributeContains struct {
	Key  string
	Term string
}

// RoleIn matches when the user holds at least one of the roles.
type RoleIn struct {
	Roles []string
}

func (And) predicate()               {}
func (Or) predicate()                {}
func (ColumnContains) predicate()    {}
func (ColumnEquals) predicate()      {}
func (AttributeContains) predicate() {}
func (RoleIn) predicate()            {}

// SearchClause is a free-text search over column-backed and attribute-backed fields.
// A clause built by the planner always has at least one column or attribute key.
type SearchClause struct {
	Term          string
	Fields        []SearchField
	Columns       []string
	AttributeKeys []string
}

// HasColumns reports whether the clause searches users table columns
func (s *SearchClause) HasColumns() bool {
	return s != nil && len(s.Columns) > 0
}

// HasAttributes reports whether the clause searches attributes
func (s *SearchClause) HasAttributes() bool {
	return s != nil && len(s.AttributeKeys) > 0
}

// Predicate returns the disjunction of the column search and every attribute
// search. A record matches when either its columns or any of its attributes match.
func (s *SearchClause) Predicate() Predicate {
	if s == nil {
		return nil
	}

	branches := make(Or, 0, 1+len(s.AttributeKeys))
	if s.HasColumns() {
		branches = append(branches, ColumnContains{Columns: s.Columns, Term: s.Term})
	}
	for _, key := range s.AttributeKeys {
		branches = append(branches, AttributeContains{Key: key, Term: s.Term})
	}

	return branches
}

// QueryPlan is the store-independent description of one customer listing query
type QueryPlan struct {
	Roles       []string
	OrderBy     string
	Order       string
	Page        int
	PageSize    int
	Offset      int
	Limit       int
	Search      *SearchClause
	EmailEquals string
}

// Where builds the filter of the plan: role membership AND the search clause
// AND the exact email match, skipping the parts that are not set.
func (p QueryPlan) Where() Predicate {
	where := And{RoleIn{Roles: p.Roles}}

	if p.Search != nil {
		where = append(where, p.Search.Predicate())
	}

	if p.EmailEquals != "" {
		where = append(where, ColumnEquals{Column: ColumnUserEmail, Value: p.EmailEquals})
	}

	return where
}
