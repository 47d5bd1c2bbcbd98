package commenttree

// Page 一次渲染所需的评论子集
type Page struct {
	Comments  []*Node `json:"comments"`
	Visible   int     `json:"visible"`
	Total     int     `json:"total"`
	Remaining int     `json:"remaining"`
}

// Paginate 选取可见窗口并过滤森林
func Paginate(roots []*Node, limit int) Page {
	w := SelectVisible(roots, limit)
	return Page{
		Comments:  FilterForest(roots, w.VisibleIDs),
		Visible:   w.Visible(),
		Total:     w.TotalCount,
		Remaining: w.Remaining(),
	}
}

// HasMore 是否还有未展示的评论
func (p Page) HasMore() bool {
	return p.Remaining > 0
}
