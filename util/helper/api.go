package helper_util

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

func GetPaginationParams(c *gin.Context) (page int64, limit int64, err error) {
	page, err = strconv.ParseInt(c.DefaultQuery("page", "1"), 10, 64)
	if err != nil {
		return 0, 0, err
	}
	limit, err = strconv.ParseInt(c.DefaultQuery("limit", "10"), 10, 64)
	if err != nil {
		return 0, 0, err
	}
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}
	return page, limit, nil
}
