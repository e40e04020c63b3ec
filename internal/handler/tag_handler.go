package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetTags 返回已发布条目的去重标签列表，用于筛选控件。
// 读路径在存储不可用时退化为空列表。
func (a *API) GetTags(c *gin.Context) {
	tags, err := a.tags.List()
	if err != nil {
		a.logger.Error().Err(err).Msg("tag listing unavailable, serving empty result")
		tags = []string{}
	}
	c.JSON(http.StatusOK, gin.H{"tags": tags})
}
