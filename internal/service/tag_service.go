package service

import (
	"gorm.io/gorm"
)

// TagService derives tag data from stored entries. Tags live as JSON arrays
// on the entries themselves, so aggregation walks them with json_each.
type TagService struct {
	db *gorm.DB
}

// NewTagService creates a TagService instance.
func NewTagService(gdb *gorm.DB) *TagService {
	return &TagService{db: gdb}
}

// List returns the distinct tags across published entries, sorted
// lexicographically. Recomputed on every call.
func (s *TagService) List() ([]string, error) {
	tags := []string{}
	if err := s.db.Raw(
		`SELECT DISTINCT json_each.value
		 FROM entries, json_each(entries.tags)
		 WHERE entries.published = ?
		 ORDER BY json_each.value ASC`,
		true,
	).Scan(&tags).Error; err != nil {
		return nil, err
	}
	return tags, nil
}

// Count 返回已发布条目中不同标签的数量
func (s *TagService) Count() (int64, error) {
	var count int64
	if err := s.db.Raw(
		`SELECT COUNT(DISTINCT json_each.value)
		 FROM entries, json_each(entries.tags)
		 WHERE entries.published = ?`,
		true,
	).Scan(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
