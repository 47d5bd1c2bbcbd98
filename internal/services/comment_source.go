package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"discuss/internal/commenttree"
	"discuss/internal/models"

	"gorm.io/gorm"
)

var ErrCommentNotFound = commenttree.ErrCommentNotFound

// CommentSource 基于 gorm 的评论数据来源，只读
type CommentSource struct {
	db  *gorm.DB
	now func() time.Time
}

func NewCommentSource(db *gorm.DB) *CommentSource {
	return &CommentSource{db: db, now: time.Now}
}

var _ commenttree.Source = (*CommentSource)(nil)

// visible 帖子下审核可见的评论
func (s *CommentSource) visible(ctx context.Context, submissionID int64) *gorm.DB {
	return s.db.WithContext(ctx).
		Model(&models.Comment{}).
		Where("post_id = ? AND state_mod = ?", submissionID, models.CommentStateVisible)
}

func (s *CommentSource) ListBySubmission(ctx context.Context, submissionID int64) ([]commenttree.Record, error) {
	var comments []models.Comment
	err := s.visible(ctx, submissionID).
		Preload("User").
		Order("created_at ASC").
		Find(&comments).Error
	if err != nil {
		return nil, fmt.Errorf("list comments of post %d: %w", submissionID, err)
	}
	return toRecords(comments), nil
}

// ListSince 拉取 since 之后（含同一秒）创建的评论
// 同一秒内的评论可能重复返回，合并时按 ID 去重
func (s *CommentSource) ListSince(ctx context.Context, submissionID, since int64) ([]commenttree.Record, int64, error) {
	var comments []models.Comment
	err := s.visible(ctx, submissionID).
		Where("created_at >= ?", time.Unix(since, 0).UTC()).
		Preload("User").
		Order("created_at ASC").
		Find(&comments).Error
	if err != nil {
		return nil, 0, fmt.Errorf("list comments of post %d since %d: %w", submissionID, since, err)
	}
	records := toRecords(comments)
	return records, commenttree.Watermark(records, s.now().Unix()), nil
}

func (s *CommentSource) CountBySubmission(ctx context.Context, submissionID int64) (int, error) {
	var count int64
	if err := s.visible(ctx, submissionID).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count comments of post %d: %w", submissionID, err)
	}
	return int(count), nil
}

func (s *CommentSource) Get(ctx context.Context, commentID int64) (commenttree.Record, error) {
	var comment models.Comment
	err := s.db.WithContext(ctx).
		Preload("User").
		Where("id = ? AND state_mod = ?", commentID, models.CommentStateVisible).
		First(&comment).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return commenttree.Record{}, fmt.Errorf("%w: %d", ErrCommentNotFound, commentID)
	}
	if err != nil {
		return commenttree.Record{}, fmt.Errorf("get comment %d: %w", commentID, err)
	}
	return toRecord(comment), nil
}

func toRecords(comments []models.Comment) []commenttree.Record {
	records := make([]commenttree.Record, len(comments))
	for i, c := range comments {
		records[i] = toRecord(c)
	}
	return records
}

// toRecord 数据库行转换为扁平评论：得分 = 赞 - 踩
func toRecord(c models.Comment) commenttree.Record {
	r := commenttree.Record{
		ID:                 int64(c.ID),
		ParentSubmissionID: int64(c.PostID),
		CreatedUTC:         c.CreatedAt.Unix(),
		Upvotes:            c.Upvotes,
		Downvotes:          c.Downvotes,
		Score:              c.Upvotes - c.Downvotes,
		Level:              c.Level,
		DescendantCount:    c.DescendantCount,
		IsDeleted:          c.UserDeletedAt != nil,
		AuthorID:           int64(c.UserID),
		AuthorName:         c.User.Username,
		Body:               c.Content,
		BodyHTML:           c.ContentHTML,
		IsPinned:           c.IsPinned,
		DistinguishLevel:   c.DistinguishLevel,
	}
	if c.ParentID != nil {
		parent := int64(*c.ParentID)
		r.ParentCommentID = &parent
	}
	if c.EditedAt != nil {
		r.EditedUTC = c.EditedAt.Unix()
	}
	if r.IsDeleted {
		r.Body = commenttree.DeletedPlaceholder
		r.BodyHTML = commenttree.DeletedPlaceholder
	}
	return r
}
