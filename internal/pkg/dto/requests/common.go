package requests

// ListQuery carries the filter and paging options of every list screen.
type ListQuery struct {
	Q        string
	Active   *bool
	Page     int
	PageSize int
}
