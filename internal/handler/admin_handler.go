package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Dashboard 返回后台面板的统计数据
func (a *API) Dashboard(c *gin.Context) {
	counts, err := a.entries.Counts()
	if err != nil {
		a.logger.Error().Err(err).Msg("failed to compute dashboard counts")
		respondError(c, http.StatusInternalServerError, "failed to compute dashboard counts")
		return
	}

	tagCount, err := a.tags.Count()
	if err != nil {
		a.logger.Error().Err(err).Msg("failed to count tags")
		respondError(c, http.StatusInternalServerError, "failed to count tags")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"entryCount":     counts.Total,
		"publishedCount": counts.Published,
		"draftCount":     counts.Drafts,
		"tagCount":       tagCount,
	})
}
