package params

// PageRequest is the paging envelope every list screen sends: 1-based page
// number, page size, and the screen's filter values keyed by field name.
// Filters are validated and allow-listed before they reach a repository.
type PageRequest struct {
	Current   int                    `json:"current"`
	PageSize  int                    `json:"pageSize"`
	Filters   map[string]interface{} `json:"filters,omitempty"`
	SortField string                 `json:"sortField,omitempty"`
	SortOrder string                 `json:"sortOrder,omitempty"`
}

// Normalize clamps paging values to sane bounds.
func (p *PageRequest) Normalize() {
	if p.Current < 1 {
		p.Current = 1
	}
	if p.PageSize <= 0 {
		p.PageSize = 20
	}
	if p.PageSize > 100 {
		p.PageSize = 100
	}
}

func (p *PageRequest) Offset() int {
	return (p.Current - 1) * p.PageSize
}

// PageResponse carries one page of rows plus the total row count the
// pagination controls need.
type PageResponse struct {
	Data       interface{} `json:"data"`
	Total      int64       `json:"total"`
	Current    int         `json:"current"`
	PageSize   int         `json:"pageSize"`
	TotalPages int         `json:"totalPages"`
}
