package db

import "time"

// BlogPost 是由日志条目衍生的长文，每个条目至多对应一篇。
type BlogPost struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
	Title       string    `gorm:"not null" json:"title"`
	Slug        string    `gorm:"uniqueIndex;not null" json:"slug"`
	Summary     string    `json:"summary"`
	Content     string    `gorm:"not null" json:"content"`
	PublishDate time.Time `gorm:"index" json:"publishDate"`
	Published   bool      `gorm:"index" json:"published"`
	AuthorID    uint      `json:"authorId"`
	Author      *User     `json:"author,omitempty"`
	EntryID     *uint     `gorm:"uniqueIndex" json:"entryId,omitempty"`
	Entry       *Entry    `json:"entry,omitempty"`
}
