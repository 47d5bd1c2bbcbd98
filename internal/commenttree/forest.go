package commenttree

// Node 树形评论：扁平记录 + 按排序排列的回复
//
// 节点只在构建森林时创建，之后不再原地修改，
// 因此指针相等即可判断子树是否变化。
type Node struct {
	Record
	Replies []*Node `json:"replies"`
}

// Forest 一个帖子下的评论森林
type Forest struct {
	Roots []*Node
	ByID  map[int64]*Node
	Sort  SortMode
}

// 遍历父链时的节点状态
const (
	unvisited = iota
	visiting
	visited
)

// BuildForest 将扁平评论组装为森林并按 sort 递归排序
//
// 父评论不在集合中的评论提升为根（孤儿提升）。
// 重复 ID：值取最后一条，位置取第一次出现的位置。
// 父链成环时，从输入顺序遍历首先重复访问到的节点被提升为根，
// 保证每条记录在森林中恰好出现一次。
func BuildForest(records []Record, sort SortMode) *Forest {
	byID := make(map[int64]*Node, len(records))
	order := make([]int64, 0, len(records))

	for _, r := range records {
		if n, ok := byID[r.ID]; ok {
			n.Record = r
			continue
		}
		byID[r.ID] = &Node{Record: r, Replies: []*Node{}}
		order = append(order, r.ID)
	}

	cut := findCycleBreaks(order, byID)

	roots := make([]*Node, 0)
	for _, id := range order {
		n := byID[id]
		if n.ParentCommentID == nil || cut[id] {
			roots = append(roots, n)
			continue
		}
		parent, ok := byID[*n.ParentCommentID]
		if !ok {
			// 父评论已删除/隐藏/尚未拉取
			roots = append(roots, n)
			continue
		}
		parent.Replies = append(parent.Replies, n)
	}

	sortNodes(roots, sort)

	return &Forest{Roots: roots, ByID: byID, Sort: sort}
}

// findCycleBreaks 找出父链成环时需要断开的节点，O(n)
func findCycleBreaks(order []int64, byID map[int64]*Node) map[int64]bool {
	var cut map[int64]bool
	state := make(map[int64]int, len(order))

	parentOf := func(id int64) (int64, bool) {
		p := byID[id].ParentCommentID
		if p == nil {
			return 0, false
		}
		if _, ok := byID[*p]; !ok {
			return 0, false
		}
		return *p, true
	}

	var path []int64
	for _, id := range order {
		path = path[:0]
		cur := id
		for {
			s := state[cur]
			if s == visited {
				break
			}
			if s == visiting {
				if cut == nil {
					cut = make(map[int64]bool)
				}
				cut[cur] = true
				break
			}
			state[cur] = visiting
			path = append(path, cur)
			p, ok := parentOf(cur)
			if !ok {
				break
			}
			cur = p
		}
		for _, v := range path {
			state[v] = visited
		}
	}
	return cut
}

// Len 森林中的节点总数
func (f *Forest) Len() int {
	return len(f.ByID)
}

// Thread 返回以某条评论为根的子树（评论永久链接页）
func (f *Forest) Thread(id int64) (*Node, bool) {
	n, ok := f.ByID[id]
	return n, ok
}

// BuildTree 仅返回根节点列表
func BuildTree(records []Record, sort SortMode) []*Node {
	return BuildForest(records, sort).Roots
}
