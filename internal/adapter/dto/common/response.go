package common

// ListRequest represents the shared query parameters of list endpoints
type ListRequest struct {
	Search    string `query:"search" validate:"omitempty,max=200"`
	Tag       string `query:"tag" validate:"omitempty,max=64"`
	Page      int    `query:"page" validate:"omitempty,min=1"`
	PageSize  int    `query:"page_size" validate:"omitempty,min=1,max=100"`
	SortBy    string `query:"sort_by" validate:"omitempty,oneof=created_at updated_at published_at title author rating"`
	SortOrder string `query:"sort_order" validate:"omitempty,oneof=asc desc"`
}

// Normalize fills in the default page and page size
func (r *ListRequest) Normalize() {
	if r.Page < 1 {
		r.Page = 1
	}
	if r.PageSize < 1 {
		r.PageSize = 20
	}
}

// Offset returns the number of rows to skip
func (r *ListRequest) Offset() int {
	return (r.Page - 1) * r.PageSize
}

// PaginationResponse represents pagination metadata
type PaginationResponse struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	TotalPages int   `json:"total_pages"`
	TotalItems int64 `json:"total_items"`
}

// ListResponse represents a paginated list response
type ListResponse struct {
	Data       interface{}         `json:"data"`
	Pagination *PaginationResponse `json:"pagination,omitempty"`
}

// HealthResponse represents the health check payload
type HealthResponse struct {
	Status      string `json:"status"`
	Environment string `json:"environment"`
}
