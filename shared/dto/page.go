package dto

import "campusvisit/shared"

// Metadata describes one page of an in-memory list.
type Metadata struct {
	Page      int `json:"page"`
	Limit     int `json:"limit"`
	Total     int `json:"total"`
	TotalPage int `json:"total_page"`
}

// HasPrev and HasNext drive the pager links in templates.
func (m Metadata) HasPrev() bool { return m.Page > 1 }

func (m Metadata) HasNext() bool { return m.Page < m.TotalPage }

// Paginate slices items according to q. The backend returns full lists, so paging is local.
func Paginate[T any](items []T, q QueryParams) ([]T, Metadata) {
	meta := Metadata{
		Page:      q.Page,
		Limit:     q.Limit,
		Total:     len(items),
		TotalPage: shared.CalculateTotalPage(len(items), q.Limit),
	}

	if q.Limit <= 0 {
		meta.Page = 1

		return items, meta
	}

	if meta.Page < 1 {
		meta.Page = 1
	}

	if meta.Page > meta.TotalPage {
		meta.Page = meta.TotalPage
	}

	start := (meta.Page - 1) * q.Limit
	if start >= len(items) {
		return []T{}, meta
	}

	end := min(start+q.Limit, len(items))

	return items[start:end], meta
}
