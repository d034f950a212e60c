package domain

// SharkAttackFilter narrows a listing. Set fields combine with AND.
// Name, Country and Type match case-insensitively as substrings.
type SharkAttackFilter struct {
	Name           string
	Country        string
	Type           string
	OrganizationID string
	Year           *int
	Active         *bool
}

// Pagination is offset based: the listing skips Page*Count records.
type Pagination struct {
	Page                  int
	Count                 int
	QueryTotalResultCount bool
}

// Sort orders a listing by a single field.
type Sort struct {
	Field string
	Asc   bool
}

const (
	DefaultPageCount = 10
	MaxPageCount     = 200
)
