package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validPagination() PaginationRequest {
	return PaginationRequest{
		Page:  1,
		Limit: 10,
		Sort:  Sort{By: "name", Order: SortAscending},
	}
}

func TestPaginationRequestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*PaginationRequest)
		wantErr error
	}{
		{"valid ascending", func(p *PaginationRequest) {}, nil},
		{"valid descending", func(p *PaginationRequest) { p.Sort.Order = SortDescending }, nil},
		{"zero page", func(p *PaginationRequest) { p.Page = 0 }, ErrInvalidPage},
		{"negative page", func(p *PaginationRequest) { p.Page = -3 }, ErrInvalidPage},
		{"zero limit", func(p *PaginationRequest) { p.Limit = 0 }, ErrInvalidLimit},
		{"negative limit", func(p *PaginationRequest) { p.Limit = -1 }, ErrInvalidLimit},
		{"zero sort order", func(p *PaginationRequest) { p.Sort.Order = 0 }, ErrInvalidSortOrder},
		{"out of range sort order", func(p *PaginationRequest) { p.Sort.Order = 2 }, ErrInvalidSortOrder},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc := tc
			t.Parallel()
			p := validPagination()
			tc.mutate(&p)
			err := p.Validate()
			if tc.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tc.wantErr)
			}
		})
	}
}

func TestPaginationRequestOffset(t *testing.T) {
	t.Parallel()

	tests := []struct {
		page, limit, want int
	}{
		{1, 10, 0},
		{2, 10, 10},
		{3, 7, 14},
		{5, 1, 4},
	}
	for _, tc := range tests {
		p := PaginationRequest{Page: tc.page, Limit: tc.limit}
		assert.Equal(t, tc.want, p.Offset(), "page=%d limit=%d", tc.page, tc.limit)
	}
}

func TestPaginationRequestPageCount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		limit int
		total int
		want  int
	}{
		{"no matches", 10, 0, 0},
		{"negative total", 10, -1, 0},
		{"exact multiple", 10, 20, 2},
		{"partial last page", 10, 21, 3},
		{"single item", 10, 1, 1},
		{"limit of one", 1, 5, 5},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc := tc
			t.Parallel()
			p := PaginationRequest{Page: 1, Limit: tc.limit}
			assert.Equal(t, tc.want, p.PageCount(tc.total))
		})
	}
}

func TestNewExplorationResult(t *testing.T) {
	t.Parallel()

	req := ExplorationRequest{
		Query: "stand",
		Pagination: PaginationRequest{
			Page:  2,
			Limit: 5,
			Sort:  Sort{By: "name", Order: SortDescending},
		},
	}

	t.Run("echoes the request and computes the page count", func(t *testing.T) {
		t.Parallel()
		result := NewExplorationResult[stubEntity](req, 12, []stubEntity{{}, {}})
		require.NotNil(t, result)

		assert.Len(t, result.Data, 2)
		assert.Equal(t, "stand", result.Exploration.Query)
		assert.Equal(t, 2, result.Exploration.Pagination.Page)
		assert.Equal(t, 5, result.Exploration.Pagination.Limit)
		assert.Equal(t, Sort{By: "name", Order: SortDescending}, result.Exploration.Pagination.Sort)
		assert.Equal(t, 3, result.Exploration.Pagination.PageCount)
	})

	t.Run("page past the last window keeps the true page count", func(t *testing.T) {
		t.Parallel()
		past := req
		past.Pagination.Page = 9
		result := NewExplorationResult[stubEntity](past, 12, nil)

		assert.NotNil(t, result.Data)
		assert.Empty(t, result.Data)
		assert.Equal(t, 3, result.Exploration.Pagination.PageCount)
	})

	t.Run("nil data serializes as an empty slice", func(t *testing.T) {
		t.Parallel()
		result := NewExplorationResult[stubEntity](req, 0, nil)
		assert.NotNil(t, result.Data)
		assert.Equal(t, 0, result.Exploration.Pagination.PageCount)
	})
}
