package handler

import (
	"errors"
	"net/http"
	"strconv"

	"internhub/internal/service"
	"internhub/pkg/pagination"

	"github.com/gin-gonic/gin"
)

// serviceError maps service sentinel errors onto HTTP statuses.
func serviceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrApplicationNotFound),
		errors.Is(err, service.ErrInternshipNotFound),
		errors.Is(err, service.ErrResumeNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrAlreadyApplied),
		errors.Is(err, service.ErrResumeRequired),
		errors.Is(err, service.ErrResumeExists),
		errors.Is(err, service.ErrEmailExists),
		errors.Is(err, service.ErrPhoneExists):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrInvalidStatus),
		errors.Is(err, service.ErrInvalidRole):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrInvalidCreds):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

// paginationParams reads page/limit or an explicit interval=offset,end pair
// from the query string.
func paginationParams(c *gin.Context) pagination.Params {
	p := pagination.Params{}
	p.Page, _ = strconv.Atoi(c.DefaultQuery("page", "0"))
	p.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", "0"))
	if iv := c.QueryArray("interval"); len(iv) == 2 {
		start, err1 := strconv.Atoi(iv[0])
		end, err2 := strconv.Atoi(iv[1])
		if err1 == nil && err2 == nil {
			p.Interval = []int{start, end}
		}
	}
	return p
}

func paramUint(c *gin.Context, name string) uint {
	v, _ := strconv.ParseUint(c.Param(name), 10, 64)
	return uint(v)
}

func queryUint(c *gin.Context, name string) uint {
	v, _ := strconv.ParseUint(c.Query(name), 10, 64)
	return uint(v)
}
