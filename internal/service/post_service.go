package service

import (
	"errors"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/aijournal/internal/db"
)

var ErrPostNotFound = errors.New("blog post not found")

// PostService wraps derived blog post operations. Posts are long-form
// writeups grown out of journal entries; each entry links to at most one.
type PostService struct {
	db     *gorm.DB
	logger zerolog.Logger
}

// NewPostService creates a PostService instance.
func NewPostService(gdb *gorm.DB) *PostService {
	return &PostService{
		db:     gdb,
		logger: log.With().Str("service", "posts").Logger(),
	}
}

// ListPublished returns published posts newest-first. Like the entry
// listing, store failure degrades to an empty list and is logged.
func (s *PostService) ListPublished() []db.BlogPost {
	posts := []db.BlogPost{}
	if err := s.db.Preload("Author").Preload("Entry").
		Where("published = ?", true).
		Order("publish_date desc, id desc").
		Find(&posts).Error; err != nil {
		s.logger.Error().Err(err).Msg("post listing unavailable, serving empty result")
		return []db.BlogPost{}
	}
	return posts
}

// GetBySlug fetches a published post by slug with its source entry attached.
func (s *PostService) GetBySlug(slugValue string) (*db.BlogPost, error) {
	var post db.BlogPost
	if err := s.db.Preload("Author").Preload("Entry").
		Where("slug = ? AND published = ?", slugValue, true).
		First(&post).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	return &post, nil
}
