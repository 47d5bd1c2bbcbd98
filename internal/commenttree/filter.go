package commenttree

// FilterForest 只保留窗口内的节点，未改变的子树原样复用
//
// 不在 visible 中的节点连同其整棵子树一起丢弃。
// 若某层过滤结果与原列表逐个指针相同，则返回原切片和原节点，
// 上层可以直接用指针比较判断是否需要重新渲染。
func FilterForest(roots []*Node, visible map[int64]struct{}) []*Node {
	out, _ := filterNodes(roots, visible)
	return out
}

// filterNodes 返回过滤后的列表以及是否发生变化；未变化时返回 nodes 本身
func filterNodes(nodes []*Node, visible map[int64]struct{}) ([]*Node, bool) {
	var out []*Node
	changed := false

	for i, n := range nodes {
		kept := filterNode(n, visible)
		if kept == n && !changed {
			continue
		}
		if !changed {
			changed = true
			out = make([]*Node, 0, len(nodes))
			out = append(out, nodes[:i]...)
		}
		if kept != nil {
			out = append(out, kept)
		}
	}

	if !changed {
		return nodes, false
	}
	return out, true
}

// filterNode 不可见时返回 nil；子树未变化时返回 n 本身
func filterNode(n *Node, visible map[int64]struct{}) *Node {
	if _, ok := visible[n.ID]; !ok {
		return nil
	}
	replies, changed := filterNodes(n.Replies, visible)
	if !changed {
		return n
	}
	return &Node{Record: n.Record, Replies: replies}
}
