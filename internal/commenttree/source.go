package commenttree

import (
	"context"
	"errors"
)

// ErrCommentNotFound 数据源中不存在（或不可见）的评论
var ErrCommentNotFound = errors.New("comment not found")

// Source 评论数据来源（持久层），负责过滤可见性并预先计算得分
type Source interface {
	// ListBySubmission 返回帖子下全部可见评论
	ListBySubmission(ctx context.Context, submissionID int64) ([]Record, error)
	// ListSince 返回创建时间晚于 since 的评论以及新的水位
	ListSince(ctx context.Context, submissionID, since int64) ([]Record, int64, error)
	// CountBySubmission 返回帖子的评论总数
	CountBySubmission(ctx context.Context, submissionID int64) (int, error)
	// Get 按 ID 返回单条评论
	Get(ctx context.Context, commentID int64) (Record, error)
}
