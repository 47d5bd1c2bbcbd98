package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"discuss/internal/commenttree"
	"discuss/internal/metrics"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	store       *commenttree.Store
	source      commenttree.Source
	pageSize    int
	defaultSort commenttree.SortMode
	now         func() time.Time
}

func NewCommentHandler(store *commenttree.Store, source commenttree.Source, pageSize int, defaultSort commenttree.SortMode) *CommentHandler {
	return &CommentHandler{
		store:       store,
		source:      source,
		pageSize:    pageSize,
		defaultSort: defaultSort,
		now:         time.Now,
	}
}

// load 从数据源整体加载帖子评论并初始化缓存
func (h *CommentHandler) load(ctx context.Context, postID int64) (*commenttree.SubmissionState, error) {
	records, err := h.source.ListBySubmission(ctx, postID)
	if err != nil {
		return nil, err
	}
	count, err := h.source.CountBySubmission(ctx, postID)
	if err != nil {
		return nil, err
	}

	h.store.InitSubmission(postID, records, count, commenttree.Watermark(records, h.now().Unix()))
	metrics.SubmissionsLoaded.Inc()

	state, ok := h.store.Snapshot(postID)
	if !ok {
		// 容量极小时可能刚写入就被淘汰
		return nil, errors.New("comment store evicted submission")
	}
	return state, nil
}

// state 返回缓存快照，未缓存或要求刷新时重新加载
func (h *CommentHandler) state(c *gin.Context, postID int64) (*commenttree.SubmissionState, bool) {
	if c.Query("refresh") != "1" {
		if state, ok := h.store.Snapshot(postID); ok {
			return state, true
		}
	}
	state, err := h.load(c.Request.Context(), postID)
	if err != nil {
		log.Printf("加载帖子 %d 评论失败: %v", postID, err)
		RenderError(c, http.StatusInternalServerError, "加载评论失败")
		return nil, false
	}
	return state, true
}

func (h *CommentHandler) sortAndLimit(c *gin.Context) (commenttree.SortMode, int, bool) {
	sort := h.defaultSort
	if s := c.Query("sort"); s != "" {
		var err error
		if sort, err = commenttree.ParseSortMode(s); err != nil {
			RenderError(c, http.StatusBadRequest, err.Error())
			return 0, 0, false
		}
	}
	limit, ok := queryInt(c, "limit", int64(h.pageSize))
	if !ok {
		return 0, 0, false
	}
	return sort, int(limit), true
}

// List 帖子评论区：按排序构建评论树，返回先序前 limit 条
// GET /p/:id/comments?sort=top&limit=50
func (h *CommentHandler) List(c *gin.Context) {
	postID, ok := paramID(c, "id")
	if !ok {
		return
	}
	sort, limit, ok := h.sortAndLimit(c)
	if !ok {
		return
	}
	state, ok := h.state(c, postID)
	if !ok {
		return
	}

	forest := state.Forest(sort)
	metrics.CommentPages.WithLabelValues(sort.String()).Inc()
	page := commenttree.Paginate(forest.Roots, limit)

	c.JSON(http.StatusOK, gin.H{
		"comments":        page.Comments,
		"visible":         page.Visible,
		"total":           page.Total,
		"remaining":       page.Remaining,
		"comment_count":   state.CommentCount(),
		"last_fetched_at": state.LastFetchedAt(),
		"sort":            sort,
		"limit":           limit,
		"page_size":       h.pageSize,
	})
}

// Since 增量拉取新评论并合并进缓存
// 客户端应将可见条数增加 new_count，让新评论保持在窗口内
// GET /p/:id/comments/since?since=1700000000
func (h *CommentHandler) Since(c *gin.Context) {
	postID, ok := paramID(c, "id")
	if !ok {
		return
	}

	state, ok := h.store.Snapshot(postID)
	if !ok {
		// 未缓存（从未加载或已被淘汰）时先整体加载，缓存中不能只有增量
		var err error
		if state, err = h.load(c.Request.Context(), postID); err != nil {
			log.Printf("加载帖子 %d 评论失败: %v", postID, err)
			RenderError(c, http.StatusInternalServerError, "拉取评论失败")
			return
		}
	}
	since, ok := queryInt(c, "since", state.LastFetchedAt())
	if !ok {
		return
	}

	records, watermark, err := h.source.ListSince(c.Request.Context(), postID, since)
	if err != nil {
		log.Printf("增量拉取帖子 %d 评论失败: %v", postID, err)
		RenderError(c, http.StatusInternalServerError, "拉取评论失败")
		return
	}

	newCount := h.store.MergeComments(postID, records, watermark)
	metrics.CommentsMerged.Add(float64(newCount))

	if state, ok = h.store.Snapshot(postID); !ok {
		RenderError(c, http.StatusInternalServerError, "拉取评论失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"comments":        records,
		"new_count":       newCount,
		"comment_count":   state.CommentCount(),
		"last_fetched_at": state.LastFetchedAt(),
	})
}

// Thread 单条评论及其全部回复（永久链接）
// GET /c/:id?sort=top&limit=50
func (h *CommentHandler) Thread(c *gin.Context) {
	commentID, ok := paramID(c, "id")
	if !ok {
		return
	}
	sort, limit, ok := h.sortAndLimit(c)
	if !ok {
		return
	}

	record, err := h.source.Get(c.Request.Context(), commentID)
	if errors.Is(err, commenttree.ErrCommentNotFound) {
		RenderError(c, http.StatusNotFound, "评论不存在")
		return
	}
	if err != nil {
		log.Printf("查询评论 %d 失败: %v", commentID, err)
		RenderError(c, http.StatusInternalServerError, "查询评论失败")
		return
	}

	postID := record.ParentSubmissionID
	state, ok := h.state(c, postID)
	if !ok {
		return
	}
	node, found := state.Forest(sort).Thread(commentID)
	if !found {
		// 缓存早于该评论，补进缓存后重试；水位不前进，否则会跳过中间的新评论
		h.store.MergeComments(postID, []commenttree.Record{record}, state.LastFetchedAt())
		if state, ok = h.store.Snapshot(postID); ok {
			node, found = state.Forest(sort).Thread(commentID)
		}
	}
	if !found {
		RenderError(c, http.StatusNotFound, "评论不存在")
		return
	}
	metrics.CommentPages.WithLabelValues(sort.String()).Inc()

	page := commenttree.Paginate([]*commenttree.Node{node}, limit)
	c.JSON(http.StatusOK, gin.H{
		"submission_id": postID,
		"comments":      page.Comments,
		"visible":       page.Visible,
		"total":         page.Total,
		"remaining":     page.Remaining,
		"sort":          sort,
	})
}
