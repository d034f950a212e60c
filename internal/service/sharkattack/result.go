package sharkattack

import "github.com/heartmarshall/facts-mng/internal/domain"

// ListResult holds one listing page and, when requested, the total match count.
type ListResult struct {
	Listing               []domain.SharkAttack `json:"listing"`
	QueryTotalResultCount *int64               `json:"queryTotalResultCount,omitempty"`
}

// ImportError describes one feed record that could not be imported.
type ImportError struct {
	ID    string `json:"id"`
	Error string `json:"error"`
}

// ImportResult is the outcome of an import run.
type ImportResult struct {
	domain.CommandResult
	Imported int           `json:"imported"`
	Total    int           `json:"total"`
	Errors   []ImportError `json:"errors"`
}
