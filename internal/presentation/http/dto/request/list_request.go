package request

// ListRequest holds the query parameters every listing accepts
type ListRequest struct {
	Search    string `form:"search"`
	SortBy    string `form:"sort_by"`
	SortOrder string `form:"sort_order" binding:"omitempty,oneof=asc desc"`
	Page      int    `form:"page" binding:"omitempty,min=1"`
	PerPage   int    `form:"per_page" binding:"omitempty,min=1,max=100"`
}

// PeriodRequest bounds a listing by day
type PeriodRequest struct {
	From string `form:"from"`
	To   string `form:"to"`
}
