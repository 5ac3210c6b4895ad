package dto

import (
	"net/http"
	"strconv"
	"strings"
	"tripdesk/shared/constant"
)

const (
	SortDirAsc  = "ASC"
	SortDirDesc = "DESC"
)

type QueryParams struct {
	Page    int    `json:"page"     validate:"omitempty,min=1"`
	Limit   int    `json:"limit"    validate:"omitempty,min=1"`
	SortBy  string `json:"sort_by"  validate:"omitempty"`
	SortDir string `json:"sort_dir" validate:"omitempty,oneof=ASC DESC"`
}

// FromRequest reads page, limit, sort_by and sort_dir from the query string. Missing or malformed
// values fall back to the list defaults (newest first, ten per page) and limit is capped.
func (q *QueryParams) FromRequest(r *http.Request) {
	values := r.URL.Query()

	q.Page = positiveInt(values.Get(constant.RequestParamPage), constant.DefaultValuePage)
	q.Limit = min(positiveInt(values.Get(constant.RequestParamLimit), constant.DefaultValueLimit), constant.MaxValueLimit)

	q.SortBy = values.Get(constant.RequestParamSortBy)
	if q.SortBy == "" {
		q.SortBy = constant.DefaultValueSortBy
	}

	switch dir := strings.ToUpper(values.Get(constant.RequestParamSortDir)); dir {
	case SortDirAsc, SortDirDesc:
		q.SortDir = dir
	default:
		q.SortDir = constant.DefaultValueSortDir
	}
}

// Offset is the number of rows skipped before the current page. Zero when paging is off.
func (q QueryParams) Offset() int {
	if q.Page <= 1 || q.Limit <= 0 {
		return 0
	}

	return (q.Page - 1) * q.Limit
}

func positiveInt(raw string, fallback int) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return fallback
	}

	return n
}
