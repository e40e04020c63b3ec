package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aijournal/internal/service"
)

// ListPosts 公开的衍生长文列表
func (a *API) ListPosts(c *gin.Context) {
	posts := a.posts.ListPublished()
	c.JSON(http.StatusOK, gin.H{"posts": posts})
}

// GetPostBySlug 返回单篇长文及渲染后的正文
func (a *API) GetPostBySlug(c *gin.Context) {
	post, err := a.posts.GetBySlug(c.Param("slug"))
	if err != nil {
		if errors.Is(err, service.ErrPostNotFound) {
			respondError(c, http.StatusNotFound, "post not found")
			return
		}
		a.logger.Error().Err(err).Msg("failed to fetch post")
		respondError(c, http.StatusInternalServerError, "failed to fetch post")
		return
	}

	html, err := service.RenderMarkdown(post.Content)
	if err != nil {
		a.logger.Error().Err(err).Uint("postID", post.ID).Msg("failed to render post content")
		html = ""
	}

	c.JSON(http.StatusOK, gin.H{"post": post, "html": html})
}
