// Package commenttree 评论树构建、排序、分页与客户端缓存
package commenttree

// DeletedPlaceholder 已删除评论的展示内容
const DeletedPlaceholder = "[deleted]"

// Record 单条评论的扁平表示，一次拉取内不可变
type Record struct {
	ID                 int64  `json:"id"`
	ParentCommentID    *int64 `json:"parent_comment_id"` // nil 表示顶层评论
	ParentSubmissionID int64  `json:"parent_submission_id"`
	CreatedUTC         int64  `json:"created_utc"`
	EditedUTC          int64  `json:"edited_utc"`
	Upvotes            int    `json:"upvotes"`
	Downvotes          int    `json:"downvotes"`
	Score              int    `json:"score"`
	Level              int    `json:"level"`            // 创建时的深度，仅供参考
	DescendantCount    int    `json:"descendant_count"` // 外部维护
	IsDeleted          bool   `json:"is_deleted"`
	AuthorID           int64  `json:"author_id"`
	AuthorName         string `json:"author_name"`
	Body               string `json:"body"`
	BodyHTML           string `json:"body_html"`
	IsPinned           bool   `json:"is_pinned"`
	DistinguishLevel   int    `json:"distinguish_level"`
}

// IsRoot 是否声明为顶层评论
func (r Record) IsRoot() bool {
	return r.ParentCommentID == nil
}

// DisplayBody 返回用于展示的内容，已删除的评论显示占位符
func (r Record) DisplayBody() string {
	if r.IsDeleted {
		return DeletedPlaceholder
	}
	if r.BodyHTML != "" {
		return r.BodyHTML
	}
	return r.Body
}
