package commenttree

func ptr(id int64) *int64 { return &id }

func rec(id int64, parent *int64) Record {
	return Record{ID: id, ParentCommentID: parent, ParentSubmissionID: 1}
}

func voted(id int64, up, down int) Record {
	r := rec(id, nil)
	r.Upvotes = up
	r.Downvotes = down
	r.Score = up - down
	return r
}

func ids(nodes []*Node) []int64 {
	out := make([]int64, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, n.ID)
	}
	return out
}

// preorder 先序展开整个森林
func preorder(nodes []*Node) []int64 {
	var out []int64
	var walk func([]*Node)
	walk = func(ns []*Node) {
		for _, n := range ns {
			out = append(out, n.ID)
			walk(n.Replies)
		}
	}
	walk(nodes)
	return out
}

// fiveByThree 5 条顶层评论，每条 3 条回复，共 20 个节点
// 顶层 ID 为 100,200,...；回复 ID 为 顶层+1..+3
func fiveByThree() []Record {
	var records []Record
	for i := int64(1); i <= 5; i++ {
		root := rec(i*100, nil)
		root.CreatedUTC = i * 100
		records = append(records, root)
		for j := int64(1); j <= 3; j++ {
			reply := rec(i*100+j, ptr(i*100))
			reply.CreatedUTC = i*100 + j
			records = append(records, reply)
		}
	}
	return records
}
