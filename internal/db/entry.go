package db

import (
	"time"

	"gorm.io/datatypes"
)

// Entry 定义了日志条目模型。
// Date 是作者填写的逻辑日期，与记录创建时间无关。
// Tags 以 JSON 数组存储，保留录入顺序。
type Entry struct {
	ID        uint                        `gorm:"primarykey" json:"id"`
	CreatedAt time.Time                   `json:"createdAt"`
	UpdatedAt time.Time                   `json:"updatedAt"`
	Title     string                      `gorm:"not null" json:"title"`
	Slug      string                      `gorm:"uniqueIndex;not null" json:"slug"`
	Content   string                      `gorm:"not null" json:"content"`
	Date      time.Time                   `gorm:"index" json:"date"`
	Tags      datatypes.JSONSlice[string] `json:"tags"`
	Published bool                        `gorm:"index" json:"published"`
	AuthorID  uint                        `json:"authorId"`
	Author    *User                       `json:"author,omitempty"`
	Post      *BlogPost                   `gorm:"foreignKey:EntryID" json:"post,omitempty"`
}
