package utils

import (
	"clinic-portal-service/internal/pkg/dto/requests"
	"net/http"
	"strconv"
	"strings"
)

const (
	defaultPageSize = 20
	maxPageSize     = 200
)

// BuildListQuery reads q, active, page and page_size. Page 0 means "no paging".
func BuildListQuery(r *http.Request) *requests.ListQuery {
	query := r.URL.Query()
	listQuery := &requests.ListQuery{
		Q: strings.TrimSpace(query.Get("q")),
	}

	if active, err := strconv.ParseBool(query.Get("active")); err == nil {
		listQuery.Active = &active
	}

	page, err := strconv.Atoi(query.Get("page"))
	if err != nil || page <= 0 {
		return listQuery
	}
	listQuery.Page = page

	pageSize, err := strconv.Atoi(query.Get("page_size"))
	if err != nil || pageSize <= 0 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	listQuery.PageSize = pageSize
	return listQuery
}
