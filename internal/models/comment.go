package models

import (
	"time"
)

// 评论审核状态
const (
	CommentStateVisible = "VISIBLE"
	CommentStateRemoved = "REMOVED"
)

type Comment struct {
	ID               uint       `gorm:"primaryKey" json:"id"`
	PostID           uint       `gorm:"not null;index" json:"post_id"`
	Post             Post       `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	UserID           uint       `gorm:"not null;index" json:"user_id"`
	User             User       `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user"`
	ParentID         *uint      `gorm:"index" json:"parent_id"` // Nullable for top-level comments
	Parent           *Comment   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`
	Content          string     `gorm:"type:text;not null" json:"content"`
	ContentHTML      string     `gorm:"type:text" json:"content_html"` // 已渲染并清洗的 HTML
	Upvotes          int        `gorm:"default:0" json:"upvotes"`
	Downvotes        int        `gorm:"default:0" json:"downvotes"`
	Level            int        `gorm:"default:1" json:"level"`
	DescendantCount  int        `gorm:"default:0" json:"descendant_count"`
	IsPinned         bool       `gorm:"default:false" json:"is_pinned"`
	DistinguishLevel int        `gorm:"default:0" json:"distinguish_level"`
	StateMod         string     `gorm:"size:20;default:'VISIBLE';index" json:"state_mod"`
	UserDeletedAt    *time.Time `json:"user_deleted_at"` // 用户删除后保留节点，内容显示占位符
	EditedAt         *time.Time `json:"edited_at"`
	CreatedAt        time.Time  `gorm:"index" json:"created_at"`
}
