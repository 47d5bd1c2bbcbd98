package commenttree

import (
	"maps"
	"slices"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultStoreCapacity 默认最多缓存的帖子数
const DefaultStoreCapacity = 500

// Observer 帖子评论状态变化后的回调
type Observer func(submissionID int64)

// SubmissionState 单个帖子的评论缓存快照
//
// 每次 InitSubmission/MergeComments 都会生成新的快照，旧快照不会被修改，
// 读取方持有的快照始终是一致的（byID 与 allIDs 键集合相同）。
type SubmissionState struct {
	byID          map[int64]Record
	allIDs        []int64 // 首次出现的顺序，不是展示顺序
	lastFetchedAt int64
	commentCount  int
	version       uint64

	mu      sync.Mutex
	forests map[SortMode]*Forest
}

func (s *SubmissionState) LastFetchedAt() int64 { return s.lastFetchedAt }
func (s *SubmissionState) CommentCount() int    { return s.commentCount }
func (s *SubmissionState) Version() uint64      { return s.version }
func (s *SubmissionState) Len() int             { return len(s.allIDs) }

// IDs 按首次出现顺序返回评论 ID
func (s *SubmissionState) IDs() []int64 {
	return slices.Clone(s.allIDs)
}

// Get 按 ID 查找评论
func (s *SubmissionState) Get(id int64) (Record, bool) {
	r, ok := s.byID[id]
	return r, ok
}

// Records 按首次出现顺序返回扁平评论
func (s *SubmissionState) Records() []Record {
	out := make([]Record, 0, len(s.allIDs))
	for _, id := range s.allIDs {
		out = append(out, s.byID[id])
	}
	return out
}

// Forest 返回该快照在某种排序下的森林，同一快照多次调用返回同一个森林
func (s *SubmissionState) Forest(sort SortMode) *Forest {
	s.mu.Lock()
	defer s.mu.Unlock()

	if f, ok := s.forests[sort]; ok {
		return f
	}
	f := BuildForest(s.Records(), sort)
	if s.forests == nil {
		s.forests = make(map[SortMode]*Forest)
	}
	s.forests[sort] = f
	return f
}

// Store 按帖子缓存扁平评论，支持整体初始化与增量合并
//
// 所有修改都在同一把锁内完成，调用方不会看到更新了一半的状态。
type Store struct {
	mu          sync.Mutex
	submissions *lru.Cache[int64, *SubmissionState]
	version     uint64

	observerMu   sync.Mutex
	observers    map[int]Observer
	nextObserver int
}

// NewStore 创建评论缓存，capacity <= 0 时使用默认容量
func NewStore(capacity int) (*Store, error) {
	if capacity <= 0 {
		capacity = DefaultStoreCapacity
	}
	cache, err := lru.New[int64, *SubmissionState](capacity)
	if err != nil {
		return nil, err
	}
	return &Store{
		submissions: cache,
		observers:   make(map[int]Observer),
	}, nil
}

// InitSubmission 用 records 整体替换该帖子的缓存（页面首次加载/刷新）
//
// 相同参数调用多次结果相同。重复 ID 保留最后一条的值、第一次出现的位置。
func (s *Store) InitSubmission(submissionID int64, records []Record, commentCount int, fetchedAt int64) {
	byID := make(map[int64]Record, len(records))
	allIDs := make([]int64, 0, len(records))
	for _, r := range records {
		if _, ok := byID[r.ID]; !ok {
			allIDs = append(allIDs, r.ID)
		}
		byID[r.ID] = r
	}

	s.mu.Lock()
	s.version++
	s.submissions.Add(submissionID, &SubmissionState{
		byID:          byID,
		allIDs:        allIDs,
		lastFetchedAt: fetchedAt,
		commentCount:  commentCount,
		version:       s.version,
	})
	s.mu.Unlock()

	s.notify(submissionID)
}

// MergeComments 合并新拉取到的评论，返回新增的评论数
//
// 已存在的 ID 会用新值覆盖（编辑、得分变化），但不计入新增。
// lastFetchedAt 只会前进，commentCount 只增加新增的数量。
func (s *Store) MergeComments(submissionID int64, records []Record, fetchedAt int64) int {
	s.mu.Lock()

	cur, ok := s.submissions.Get(submissionID)
	var (
		byID          map[int64]Record
		allIDs        []int64
		lastFetchedAt int64
		commentCount  int
	)
	if ok {
		byID = maps.Clone(cur.byID)
		allIDs = slices.Clone(cur.allIDs)
		lastFetchedAt = cur.lastFetchedAt
		commentCount = cur.commentCount
	} else {
		byID = make(map[int64]Record, len(records))
	}

	newCount := 0
	for _, r := range records {
		if _, exists := byID[r.ID]; !exists {
			newCount++
			allIDs = append(allIDs, r.ID)
		}
		byID[r.ID] = r
	}

	s.version++
	s.submissions.Add(submissionID, &SubmissionState{
		byID:          byID,
		allIDs:        allIDs,
		lastFetchedAt: max(lastFetchedAt, fetchedAt),
		commentCount:  commentCount + newCount,
		version:       s.version,
	})
	s.mu.Unlock()

	s.notify(submissionID)
	return newCount
}

// Snapshot 返回该帖子当前的缓存快照
func (s *Store) Snapshot(submissionID int64) (*SubmissionState, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.submissions.Get(submissionID)
}

// Forest 返回该帖子当前快照的森林；未初始化时返回 false
func (s *Store) Forest(submissionID int64, sort SortMode) (*Forest, bool) {
	state, ok := s.Snapshot(submissionID)
	if !ok {
		return nil, false
	}
	return state.Forest(sort), true
}

// Len 当前缓存的帖子数
func (s *Store) Len() int {
	return s.submissions.Len()
}

// Subscribe 注册状态变化回调，返回取消函数
func (s *Store) Subscribe(fn Observer) (unsubscribe func()) {
	s.observerMu.Lock()
	id := s.nextObserver
	s.nextObserver++
	s.observers[id] = fn
	s.observerMu.Unlock()

	return func() {
		s.observerMu.Lock()
		delete(s.observers, id)
		s.observerMu.Unlock()
	}
}

func (s *Store) notify(submissionID int64) {
	s.observerMu.Lock()
	fns := make([]Observer, 0, len(s.observers))
	for _, fn := range s.observers {
		fns = append(fns, fn)
	}
	s.observerMu.Unlock()

	for _, fn := range fns {
		fn(submissionID)
	}
}

// Watermark 取增量拉取结果中最大的创建时间，结果为空时返回 now
func Watermark(records []Record, now int64) int64 {
	var latest int64
	for _, r := range records {
		latest = max(latest, r.CreatedUTC)
	}
	if latest == 0 {
		return now
	}
	return latest
}
