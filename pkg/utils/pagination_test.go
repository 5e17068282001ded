package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func paginationContext(query string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/?"+query, nil)
	return c
}

func TestParsePaginationDefaults(t *testing.T) {
	page, limit, err := ParsePagination(paginationContext(""))
	require.NoError(t, err)
	assert.Equal(t, 1, page)
	assert.Equal(t, 10, limit)
}

func TestParsePaginationExplicitValues(t *testing.T) {
	page, limit, err := ParsePagination(paginationContext("page=3&limit=25"))
	require.NoError(t, err)
	assert.Equal(t, 3, page)
	assert.Equal(t, 25, limit)
}

func TestParsePaginationBadPage(t *testing.T) {
	_, _, err := ParsePagination(paginationContext("page=0"))
	assert.ErrorIs(t, err, ErrInvalidPage)

	_, _, err = ParsePagination(paginationContext("page=abc"))
	assert.ErrorIs(t, err, ErrInvalidPage)
}

func TestParsePaginationBadLimit(t *testing.T) {
	_, _, err := ParsePagination(paginationContext("limit=0"))
	assert.ErrorIs(t, err, ErrInvalidPageSize)

	_, _, err = ParsePagination(paginationContext("limit=101"))
	assert.ErrorIs(t, err, ErrInvalidPageSize)
}

func TestNewPagedResultPageCount(t *testing.T) {
	assert.Equal(t, int64(0), NewPagedResult(nil, 1, 10, 0).Pages)
	assert.Equal(t, int64(1), NewPagedResult(nil, 1, 10, 10).Pages)
	assert.Equal(t, int64(2), NewPagedResult(nil, 1, 10, 11).Pages)
	assert.Equal(t, int64(3), NewPagedResult(nil, 2, 10, 25).Pages)
}
