package commenttree

// Window 可见窗口：先序遍历的前 limit 个节点
type Window struct {
	VisibleIDs map[int64]struct{}
	TotalCount int
}

// Contains 该评论是否在窗口内
func (w Window) Contains(id int64) bool {
	_, ok := w.VisibleIDs[id]
	return ok
}

// Visible 窗口内的节点数
func (w Window) Visible() int {
	return len(w.VisibleIDs)
}

// Remaining 窗口之外还剩多少条评论
func (w Window) Remaining() int {
	return w.TotalCount - len(w.VisibleIDs)
}

// SelectVisible 先序深度优先遍历，选取前 limit 个节点
//
// 达到 limit 后继续遍历以得到准确的 TotalCount。
// 加载更多时优先展开已可见评论的回复，而不是后面的顶层评论。
func SelectVisible(roots []*Node, limit int) Window {
	w := Window{VisibleIDs: make(map[int64]struct{})}

	var walk func(nodes []*Node)
	walk = func(nodes []*Node) {
		for _, n := range nodes {
			w.TotalCount++
			if len(w.VisibleIDs) < limit {
				w.VisibleIDs[n.ID] = struct{}{}
			}
			walk(n.Replies)
		}
	}
	walk(roots)

	return w
}
