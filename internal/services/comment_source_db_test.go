package services

import (
	"context"
	"testing"
	"time"

	"discuss/internal/commenttree"
	"discuss/internal/db"
	"discuss/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	conn, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// 内存库每个连接都是独立的数据库
	sqlDB, err := conn.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.Migrate(conn))
	return conn
}

func at(sec int64) time.Time {
	return time.Unix(sec, 0).UTC()
}

// seedComments 帖子 3 下：10 <- 11，12 已被移除，13 已被用户删除，14；帖子 4 下：20
func seedComments(t *testing.T, conn *gorm.DB) {
	t.Helper()
	require.NoError(t, conn.Create(&[]models.User{
		{ID: 1, Username: "alice"},
		{ID: 2, Username: "bob"},
	}).Error)
	require.NoError(t, conn.Create(&[]models.Post{
		{ID: 3, Pid: "p3", UserID: 1, Title: "first"},
		{ID: 4, Pid: "p4", UserID: 2, Title: "second"},
	}).Error)

	parent := uint(10)
	deletedAt := at(1100)
	comments := []models.Comment{
		{ID: 10, PostID: 3, UserID: 1, Content: "root", Upvotes: 5, Downvotes: 1, StateMod: models.CommentStateVisible, CreatedAt: at(1000)},
		{ID: 11, PostID: 3, UserID: 2, ParentID: &parent, Content: "reply", StateMod: models.CommentStateVisible, CreatedAt: at(1010)},
		{ID: 12, PostID: 3, UserID: 2, Content: "spam", StateMod: models.CommentStateRemoved, CreatedAt: at(1020)},
		{ID: 13, PostID: 3, UserID: 1, Content: "oops", UserDeletedAt: &deletedAt, StateMod: models.CommentStateVisible, CreatedAt: at(1030)},
		{ID: 14, PostID: 3, UserID: 2, Content: "late", StateMod: models.CommentStateVisible, CreatedAt: at(1040)},
		{ID: 20, PostID: 4, UserID: 1, Content: "elsewhere", StateMod: models.CommentStateVisible, CreatedAt: at(1030)},
	}
	require.NoError(t, conn.Create(&comments).Error)
}

func recordIDs(records []commenttree.Record) []int64 {
	out := make([]int64, 0, len(records))
	for _, r := range records {
		out = append(out, r.ID)
	}
	return out
}

func newSeededSource(t *testing.T) *CommentSource {
	conn := newTestDB(t)
	seedComments(t, conn)
	s := NewCommentSource(conn)
	s.now = func() time.Time { return time.Unix(9000, 0) }
	return s
}

func TestCommentSource_ListBySubmission(t *testing.T) {
	s := newSeededSource(t)

	records, err := s.ListBySubmission(context.Background(), 3)

	require.NoError(t, err)
	assert.Equal(t, []int64{10, 11, 13, 14}, recordIDs(records))
	assert.Equal(t, 4, records[0].Score)
	assert.Equal(t, "alice", records[0].AuthorName)
	require.NotNil(t, records[1].ParentCommentID)
	assert.Equal(t, int64(10), *records[1].ParentCommentID)
	assert.Equal(t, "bob", records[1].AuthorName)
	assert.True(t, records[2].IsDeleted)
	assert.Equal(t, commenttree.DeletedPlaceholder, records[2].Body)
	assert.Equal(t, int64(1040), records[3].CreatedUTC)
}

func TestCommentSource_ListSinceIncludesBoundary(t *testing.T) {
	s := newSeededSource(t)

	records, watermark, err := s.ListSince(context.Background(), 3, 1030)

	require.NoError(t, err)
	assert.Equal(t, []int64{13, 14}, recordIDs(records))
	assert.Equal(t, int64(1040), watermark)
}

func TestCommentSource_ListSinceNothingNew(t *testing.T) {
	s := newSeededSource(t)

	records, watermark, err := s.ListSince(context.Background(), 3, 5000)

	require.NoError(t, err)
	assert.Empty(t, records)
	assert.Equal(t, int64(9000), watermark)
}

func TestCommentSource_CountBySubmission(t *testing.T) {
	s := newSeededSource(t)

	count, err := s.CountBySubmission(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, 4, count)

	count, err = s.CountBySubmission(context.Background(), 99)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestCommentSource_Get(t *testing.T) {
	s := newSeededSource(t)

	r, err := s.Get(context.Background(), 11)
	require.NoError(t, err)
	assert.Equal(t, int64(3), r.ParentSubmissionID)
	assert.Equal(t, "reply", r.Body)

	for _, id := range []int64{12, 999} {
		_, err := s.Get(context.Background(), id)
		assert.ErrorIs(t, err, ErrCommentNotFound, "id %d", id)
		assert.ErrorIs(t, err, commenttree.ErrCommentNotFound, "id %d", id)
	}
}
