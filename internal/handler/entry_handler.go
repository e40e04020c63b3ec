package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/aijournal/internal/service"
)

type entryPayload struct {
	Title     string     `json:"title"`
	Content   string     `json:"content"`
	Tags      []string   `json:"tags"`
	Published bool       `json:"published"`
	Date      *time.Time `json:"date"`
}

// ListEntries 公共条目列表，支持搜索、标签、排序与分页
func (a *API) ListEntries(c *gin.Context) {
	result := a.entries.ListPublished(a.parseEntryFilter(c))
	c.JSON(http.StatusOK, result)
}

// GetEntryBySlug 返回单篇已发布条目及渲染后的正文
func (a *API) GetEntryBySlug(c *gin.Context) {
	entry, err := a.entries.GetPublishedBySlug(c.Param("slug"))
	if err != nil {
		if errors.Is(err, service.ErrEntryNotFound) {
			respondError(c, http.StatusNotFound, "entry not found")
			return
		}
		a.logger.Error().Err(err).Msg("failed to fetch entry")
		respondError(c, http.StatusInternalServerError, "failed to fetch entry")
		return
	}

	html, err := service.RenderMarkdown(entry.Content)
	if err != nil {
		a.logger.Error().Err(err).Uint("entryID", entry.ID).Msg("failed to render entry content")
		html = ""
	}

	c.JSON(http.StatusOK, gin.H{"entry": entry, "html": html})
}

// AdminListEntries 后台条目列表，包含草稿并支持状态过滤
func (a *API) AdminListEntries(c *gin.Context) {
	filter := a.parseEntryFilter(c)
	filter.Status = c.Query("status")

	result, err := a.entries.List(filter)
	if err != nil {
		a.logger.Error().Err(err).Msg("failed to fetch entries")
		respondError(c, http.StatusInternalServerError, "failed to fetch entries")
		return
	}

	c.JSON(http.StatusOK, result)
}

// AdminGetEntry 获取单篇条目（含草稿）
func (a *API) AdminGetEntry(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	entry, err := a.entries.Get(id)
	if err != nil {
		a.respondEntryError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"entry": entry})
}

// CreateEntry 创建新条目
func (a *API) CreateEntry(c *gin.Context) {
	user, ok := a.requireAdmin(c)
	if !ok {
		return
	}

	var payload entryPayload
	if !bindJSON(c, &payload, "invalid entry payload") {
		return
	}

	entry, err := a.entries.Create(service.EntryInput{
		Title:     payload.Title,
		Content:   payload.Content,
		Tags:      payload.Tags,
		Published: payload.Published,
		Date:      payload.Date,
		AuthorID:  user.ID,
	})
	if err != nil {
		a.respondEntryError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"entry": entry})
}

// UpdateEntry 更新条目
func (a *API) UpdateEntry(c *gin.Context) {
	if _, ok := a.requireAdmin(c); !ok {
		return
	}

	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	var payload entryPayload
	if !bindJSON(c, &payload, "invalid entry payload") {
		return
	}

	entry, err := a.entries.Update(id, service.EntryInput{
		Title:     payload.Title,
		Content:   payload.Content,
		Tags:      payload.Tags,
		Published: payload.Published,
		Date:      payload.Date,
	})
	if err != nil {
		a.respondEntryError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"entry": entry})
}

// DeleteEntry 删除条目
func (a *API) DeleteEntry(c *gin.Context) {
	if _, ok := a.requireAdmin(c); !ok {
		return
	}

	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := a.entries.Delete(id); err != nil {
		a.respondEntryError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (a *API) parseEntryFilter(c *gin.Context) service.EntryFilter {
	return service.EntryFilter{
		Search:  c.Query("search"),
		Tags:    parseTagsQuery(c.Query("tags")),
		Sort:    c.Query("sort"),
		Page:    parsePositiveIntQuery(c, "page", 1),
		PerPage: parsePositiveIntQuery(c, "perPage", 0),
	}
}

func (a *API) respondEntryError(c *gin.Context, err error) {
	var ve *service.ValidationError
	switch {
	case errors.As(err, &ve):
		respondError(c, http.StatusBadRequest, ve.Error())
	case errors.Is(err, service.ErrEntryNotFound):
		respondError(c, http.StatusNotFound, "entry not found")
	default:
		a.logger.Error().Err(err).Msg("entry operation failed")
		respondError(c, http.StatusInternalServerError, "entry operation failed")
	}
}
