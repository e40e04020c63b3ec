package service

import (
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/aijournal/internal/db"
)

var ErrEntryNotFound = errors.New("entry not found")

// Sort modes accepted by EntryFilter.
const (
	SortNewest = "newest"
	SortOldest = "oldest"
	SortTitle  = "title"
)

// Status filters for the admin listing.
const (
	StatusPublished = "published"
	StatusDraft     = "draft"
)

const defaultPerPage = 10

// ValidationError reports a missing or malformed input field by name.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return e.Field + " is required"
}

// EntryService wraps journal entry related database operations.
type EntryService struct {
	db     *gorm.DB
	logger zerolog.Logger
}

// EntryFilter describes filters for listing entries.
type EntryFilter struct {
	Search  string
	Tags    []string
	Sort    string
	Status  string
	Page    int
	PerPage int
}

// EntryListResult aggregates paginated list data and counters.
type EntryListResult struct {
	Entries    []db.Entry `json:"entries"`
	Total      int64      `json:"total"`
	TotalPages int        `json:"totalPages"`
	Page       int        `json:"page"`
	PerPage    int        `json:"perPage"`
}

// EntryCounts 汇总后台面板需要的条目统计
type EntryCounts struct {
	Total     int64 `json:"total"`
	Published int64 `json:"published"`
	Drafts    int64 `json:"drafts"`
}

// EntryInput represents fields accepted when creating or updating an entry.
type EntryInput struct {
	Title     string
	Content   string
	Tags      []string
	Published bool
	Date      *time.Time
	AuthorID  uint
}

// NewEntryService creates an EntryService instance.
func NewEntryService(gdb *gorm.DB) *EntryService {
	return &EntryService{
		db:     gdb,
		logger: log.With().Str("service", "entries").Logger(),
	}
}

// List provides paginated entries matching the filter. The count query and
// the windowed fetch share the same predicate so the metadata stays
// consistent with the page contents.
func (s *EntryService) List(filter EntryFilter) (*EntryListResult, error) {
	result := &EntryListResult{Page: filter.Page, PerPage: filter.PerPage}
	if result.Page <= 0 {
		result.Page = 1
	}
	if result.PerPage <= 0 {
		result.PerPage = defaultPerPage
	}

	countQuery := s.applyFilters(s.db.Model(&db.Entry{}), filter)
	if err := countQuery.Count(&result.Total).Error; err != nil {
		return nil, err
	}

	offset := (result.Page - 1) * result.PerPage

	entries := []db.Entry{}
	dataQuery := s.applyFilters(s.db.Model(&db.Entry{}).Preload("Author"), filter)
	if err := dataQuery.
		Order(orderClause(filter.Sort)).
		Limit(result.PerPage).
		Offset(offset).
		Find(&entries).Error; err != nil {
		return nil, err
	}

	result.TotalPages = int((result.Total + int64(result.PerPage) - 1) / int64(result.PerPage))
	result.Entries = entries
	return result, nil
}

// ListPublished returns published entries matching the filter. When the
// store is unavailable the public page degrades to an empty listing instead
// of failing; the cause is logged for operators.
func (s *EntryService) ListPublished(filter EntryFilter) *EntryListResult {
	filter.Status = StatusPublished
	result, err := s.List(filter)
	if err != nil {
		s.logger.Error().Err(err).Msg("entry listing unavailable, serving empty result")
		return &EntryListResult{Entries: []db.Entry{}}
	}
	return result
}

// Get fetches an entry by id regardless of publication state.
func (s *EntryService) Get(id uint) (*db.Entry, error) {
	var entry db.Entry
	if err := s.db.Preload("Author").Preload("Post").First(&entry, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEntryNotFound
		}
		return nil, err
	}
	return &entry, nil
}

// GetPublishedBySlug fetches a published entry by slug.
func (s *EntryService) GetPublishedBySlug(slugValue string) (*db.Entry, error) {
	var entry db.Entry
	if err := s.db.Preload("Author").Preload("Post").
		Where("slug = ? AND published = ?", slugValue, true).
		First(&entry).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEntryNotFound
		}
		return nil, err
	}
	return &entry, nil
}

// Create persists a new entry with a slug derived from the title.
func (s *EntryService) Create(input EntryInput) (*db.Entry, error) {
	title, content, tags, err := normalizeInput(input)
	if err != nil {
		return nil, err
	}

	slugValue, err := s.uniqueSlug(title, 0)
	if err != nil {
		return nil, err
	}

	date := time.Now()
	if input.Date != nil && !input.Date.IsZero() {
		date = *input.Date
	}

	entry := db.Entry{
		Title:     title,
		Slug:      slugValue,
		Content:   content,
		Date:      date,
		Tags:      datatypes.NewJSONSlice(tags),
		Published: input.Published,
		AuthorID:  input.AuthorID,
	}

	if err := s.db.Create(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

// Update applies updates to an existing entry. The slug is recomputed only
// when the title actually changed, excluding the entry itself from the
// collision check.
func (s *EntryService) Update(id uint, input EntryInput) (*db.Entry, error) {
	// validation short-circuits before any store interaction
	title, content, tags, err := normalizeInput(input)
	if err != nil {
		return nil, err
	}

	var existing db.Entry
	if err := s.db.First(&existing, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEntryNotFound
		}
		return nil, err
	}

	if title != existing.Title {
		slugValue, err := s.uniqueSlug(title, existing.ID)
		if err != nil {
			return nil, err
		}
		existing.Slug = slugValue
	}

	existing.Title = title
	existing.Content = content
	existing.Tags = datatypes.NewJSONSlice(tags)
	existing.Published = input.Published
	if input.Date != nil && !input.Date.IsZero() {
		existing.Date = *input.Date
	}

	if err := s.db.Save(&existing).Error; err != nil {
		return nil, err
	}
	return &existing, nil
}

// Delete permanently removes an entry. A derived blog post survives but
// loses its entry reference.
func (s *EntryService) Delete(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&db.BlogPost{}).
			Where("entry_id = ?", id).
			Update("entry_id", nil).Error; err != nil {
			return err
		}

		result := tx.Delete(&db.Entry{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrEntryNotFound
		}
		return nil
	})
}

// Counts returns entry totals for the admin dashboard.
func (s *EntryService) Counts() (*EntryCounts, error) {
	counts := &EntryCounts{}
	if err := s.db.Model(&db.Entry{}).Count(&counts.Total).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&db.Entry{}).Where("published = ?", true).Count(&counts.Published).Error; err != nil {
		return nil, err
	}
	counts.Drafts = counts.Total - counts.Published
	return counts, nil
}

// uniqueSlug derives a slug from the title and checks it against the store.
// On collision the millisecond epoch is appended; the unique index on the
// slug column backstops the theoretical same-millisecond race.
func (s *EntryService) uniqueSlug(title string, excludeID uint) (string, error) {
	base := Slugify(title)

	query := s.db.Model(&db.Entry{}).Where("slug = ?", base)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return "", err
	}
	if count == 0 {
		return base, nil
	}
	return disambiguateSlug(base), nil
}

func (s *EntryService) applyFilters(query *gorm.DB, filter EntryFilter) *gorm.DB {
	if search := strings.TrimSpace(filter.Search); search != "" {
		pattern := "%" + search + "%"
		query = query.Where("(entries.title LIKE ? OR entries.content LIKE ?)", pattern, pattern)
	}

	switch filter.Status {
	case StatusPublished:
		query = query.Where("entries.published = ?", true)
	case StatusDraft:
		query = query.Where("entries.published = ?", false)
	}

	if tags := normalizeTags(filter.Tags); len(tags) > 0 {
		query = query.Where(
			"EXISTS (SELECT 1 FROM json_each(entries.tags) WHERE json_each.value IN ?)",
			tags,
		)
	}

	return query
}

func orderClause(sort string) string {
	switch sort {
	case SortOldest:
		return "entries.date asc, entries.id asc"
	case SortTitle:
		return "entries.title COLLATE NOCASE asc, entries.id asc"
	default:
		return "entries.date desc, entries.id desc"
	}
}

func normalizeInput(input EntryInput) (string, string, []string, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return "", "", nil, &ValidationError{Field: "title"}
	}

	content := strings.TrimSpace(input.Content)
	if content == "" {
		return "", "", nil, &ValidationError{Field: "content"}
	}

	tags := normalizeTags(input.Tags)
	if len(tags) == 0 {
		return "", "", nil, &ValidationError{Field: "tags"}
	}

	return title, content, tags, nil
}

// normalizeTags trims whitespace and drops empties and duplicates while
// keeping first-seen order.
func normalizeTags(raw []string) []string {
	seen := make(map[string]struct{}, len(raw))
	tags := make([]string, 0, len(raw))
	for _, tag := range raw {
		trimmed := strings.TrimSpace(tag)
		if trimmed == "" {
			continue
		}
		if _, ok := seen[trimmed]; ok {
			continue
		}
		seen[trimmed] = struct{}{}
		tags = append(tags, trimmed)
	}
	return tags
}
