package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 100
)

// ParsePagination reads page/limit query parameters with the API defaults.
func ParsePagination(c *gin.Context) (page int, limit int, err error) {
	page, err = strconv.Atoi(c.DefaultQuery("page", strconv.Itoa(defaultPage)))
	if err != nil || page < 1 {
		return 0, 0, ErrInvalidPage
	}
	limit, err = strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultLimit)))
	if err != nil || limit < 1 || limit > maxLimit {
		return 0, 0, ErrInvalidPageSize
	}
	return page, limit, nil
}

type PagedResult struct {
	Items interface{} `json:"items"`
	Page  int         `json:"page"`
	Limit int         `json:"limit"`
	Total int64       `json:"total"`
	Pages int64       `json:"pages"`
}

func NewPagedResult(items interface{}, page, limit int, total int64) PagedResult {
	pages := total / int64(limit)
	if total%int64(limit) != 0 {
		pages++
	}
	return PagedResult{
		Items: items,
		Page:  page,
		Limit: limit,
		Total: total,
		Pages: pages,
	}
}
