package dto_test

import (
	"net/http"
	"net/url"
	"testing"

	"campusvisit/shared/constant"
	"campusvisit/shared/dto"

	"github.com/stretchr/testify/assert"
)

func TestQueryParams_FromRequest(t *testing.T) {
	tests := []struct {
		name           string
		queryParams    map[string]string
		defaultRequest bool
		expected       dto.QueryParams
	}{
		{
			name:        "with all valid parameters",
			queryParams: map[string]string{"page": "2", "limit": "20", "sort_dir": "asc"},
			expected:    dto.QueryParams{Page: 2, Limit: 20, SortDir: dto.SortDirAsc},
		},
		{
			name:           "with default request enabled and no parameters",
			queryParams:    map[string]string{},
			defaultRequest: true,
			expected: dto.QueryParams{
				Page:    constant.DefaultValuePage,
				Limit:   constant.DefaultValueLimit,
				SortDir: constant.DefaultValueSortDir,
			},
		},
		{
			name:        "with default request disabled and no parameters",
			queryParams: map[string]string{},
			expected:    dto.QueryParams{},
		},
		{
			name:           "with invalid page and negative limit",
			queryParams:    map[string]string{"page": "invalid", "limit": "-3", "sort_dir": "sideways"},
			defaultRequest: true,
			expected: dto.QueryParams{
				Page:    constant.DefaultValuePage,
				Limit:   constant.DefaultValueLimit,
				SortDir: constant.DefaultValueSortDir,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values := url.Values{}
			for key, value := range tt.queryParams {
				values.Set(key, value)
			}

			req := &http.Request{URL: &url.URL{RawQuery: values.Encode()}}

			var q dto.QueryParams
			q.FromRequest(req, tt.defaultRequest)

			assert.Equal(t, tt.expected, q)
		})
	}
}

func TestPaginate(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7}

	tests := []struct {
		name     string
		q        dto.QueryParams
		expected []int
		meta     dto.Metadata
	}{
		{
			name:     "first page",
			q:        dto.QueryParams{Page: 1, Limit: 3},
			expected: []int{1, 2, 3},
			meta:     dto.Metadata{Page: 1, Limit: 3, Total: 7, TotalPage: 3},
		},
		{
			name:     "last partial page",
			q:        dto.QueryParams{Page: 3, Limit: 3},
			expected: []int{7},
			meta:     dto.Metadata{Page: 3, Limit: 3, Total: 7, TotalPage: 3},
		},
		{
			name:     "page past the end is clamped",
			q:        dto.QueryParams{Page: 9, Limit: 3},
			expected: []int{7},
			meta:     dto.Metadata{Page: 3, Limit: 3, Total: 7, TotalPage: 3},
		},
		{
			name:     "no limit returns everything",
			q:        dto.QueryParams{},
			expected: items,
			meta:     dto.Metadata{Page: 1, Total: 7, TotalPage: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, meta := dto.Paginate(items, tt.q)

			assert.Equal(t, tt.expected, page)
			assert.Equal(t, tt.meta, meta)
		})
	}
}

func TestMetadata_Links(t *testing.T) {
	meta := dto.Metadata{Page: 2, TotalPage: 3}

	assert.True(t, meta.HasPrev())
	assert.True(t, meta.HasNext())
	assert.False(t, dto.Metadata{Page: 1, TotalPage: 1}.HasNext())
}
