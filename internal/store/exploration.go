package store

import (
	"errors"
	"fmt"
)

// Sort orders accepted by the exploration protocol.
const (
	SortAscending  = 1
	SortDescending = -1
)

// Exploration protocol validation errors.
var (
	ErrInvalidPage      = errors.New("page must be a positive integer")
	ErrInvalidLimit     = errors.New("limit must be a positive integer")
	ErrInvalidSortOrder = errors.New("sort order must be 1 (ascending) or -1 (descending)")
	ErrInvalidSortField = errors.New("sort field is not sortable")
)

// Sort names the field to sort by and the direction to sort in.
type Sort struct {
	By    string `json:"by"`
	Order int    `json:"order"`
}

// PaginationRequest defines the requested page window and ordering.
// Page and Limit together define a contiguous window over the sorted
// matches: [(Page-1)*Limit, (Page-1)*Limit + Limit).
type PaginationRequest struct {
	Page  int  `json:"page"`
	Limit int  `json:"limit"`
	Sort  Sort `json:"sort"`
}

// Validate re-guards the protocol invariants. The transport layer validates
// request shapes before they reach a store, but exploration is also called
// from code paths that never cross the API boundary.
func (p PaginationRequest) Validate() error {
	if p.Page < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidPage, p.Page)
	}
	if p.Limit < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidLimit, p.Limit)
	}
	if p.Sort.Order != SortAscending && p.Sort.Order != SortDescending {
		return fmt.Errorf("%w: got %d", ErrInvalidSortOrder, p.Sort.Order)
	}
	return nil
}

// Offset returns the number of sorted matches preceding the requested window.
func (p PaginationRequest) Offset() int {
	return (p.Page - 1) * p.Limit
}

// PageCount returns ceil(total/Limit), or 0 when there are no matches.
func (p PaginationRequest) PageCount(total int) int {
	if total <= 0 {
		return 0
	}
	return (total + p.Limit - 1) / p.Limit
}

// PaginationResult echoes the request window plus the total page count.
type PaginationResult struct {
	Page      int  `json:"page"`
	Limit     int  `json:"limit"`
	Sort      Sort `json:"sort"`
	PageCount int  `json:"pageCount"`
}

// ExplorationRequest is the uniform listing request: an optional free-text
// query (absent or empty means "match all") plus the page window.
type ExplorationRequest struct {
	Query      string            `json:"query,omitempty"`
	Pagination PaginationRequest `json:"pagination"`
}

// Exploration echoes the request alongside the resolved pagination metadata.
type Exploration struct {
	Query      string           `json:"query,omitempty"`
	Pagination PaginationResult `json:"pagination"`
}

// ExplorationResult carries one page window of matches (len(Data) <= Limit)
// plus the exploration metadata.
type ExplorationResult[T Entity] struct {
	Data        []T         `json:"data"`
	Exploration Exploration `json:"exploration"`
}

// NewExplorationResult assembles a result from a request, the total match
// count, and one page window of data.
func NewExplorationResult[T Entity](req ExplorationRequest, total int, data []T) *ExplorationResult[T] {
	if data == nil {
		data = []T{}
	}
	return &ExplorationResult[T]{
		Data: data,
		Exploration: Exploration{
			Query: req.Query,
			Pagination: PaginationResult{
				Page:      req.Pagination.Page,
				Limit:     req.Pagination.Limit,
				Sort:      req.Pagination.Sort,
				PageCount: req.Pagination.PageCount(total),
			},
		},
	}
}
