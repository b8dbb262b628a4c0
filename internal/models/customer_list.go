package models

// ListParams are the validated query parameters of a customer listing request.
// An empty Role means no role was requested.
type ListParams struct {
	Context      string
	Page         int
	PerPage      int
	Search       string
	SearchFields []string
	Email        string
	Role         string
	OrderBy      string
	Order        string
}

// PageEnvelope carries the pagination metadata of a listing response
type PageEnvelope struct {
	TotalCount int64
	TotalPages int64
}

// CustomerPage is one page of projected customers with its pagination metadata
type CustomerPage struct {
	Customers []CustomerView
	Envelope  PageEnvelope
}
