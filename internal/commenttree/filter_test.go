package commenttree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func allVisible(f *Forest) map[int64]struct{} {
	out := make(map[int64]struct{}, f.Len())
	for id := range f.ByID {
		out[id] = struct{}{}
	}
	return out
}

func TestFilterForest_FullSetReturnsSameGraph(t *testing.T) {
	f := BuildForest(fiveByThree(), SortOld)

	out := FilterForest(f.Roots, allVisible(f))

	require.Len(t, out, len(f.Roots))
	assert.Same(t, &f.Roots[0], &out[0], "root slice must be reused")
	for i := range out {
		assert.Same(t, f.Roots[i], out[i])
	}
}

func TestFilterForest_PrunesAndShares(t *testing.T) {
	f := BuildForest(fiveByThree(), SortOld)
	w := SelectVisible(f.Roots, 6) // 100,101,102,103,200,201

	out := FilterForest(f.Roots, w.VisibleIDs)

	require.Equal(t, []int64{100, 200}, ids(out))
	// 第一棵子树完全可见，原样复用
	assert.Same(t, f.ByID[100], out[0])
	// 第二棵子树被裁剪，生成新节点，但保留的叶子仍复用
	assert.NotSame(t, f.ByID[200], out[1])
	assert.Equal(t, []int64{201}, ids(out[1].Replies))
	assert.Same(t, f.ByID[201], out[1].Replies[0])
	// 原森林不被修改
	assert.Len(t, f.ByID[200].Replies, 3)
}

func TestFilterForest_HiddenParentDropsVisibleChildren(t *testing.T) {
	f := BuildForest([]Record{rec(1, nil), rec(2, ptr(1)), rec(3, nil)}, SortOld)

	out := FilterForest(f.Roots, map[int64]struct{}{2: {}, 3: {}})

	assert.Equal(t, []int64{3}, preorder(out))
}

func TestFilterForest_EmptyVisible(t *testing.T) {
	f := BuildForest(fiveByThree(), SortOld)

	out := FilterForest(f.Roots, nil)

	assert.Empty(t, out)
}

func TestFilterForest_RepeatedFilterIsStable(t *testing.T) {
	f := BuildForest(fiveByThree(), SortOld)
	w := SelectVisible(f.Roots, 10)

	a := FilterForest(f.Roots, w.VisibleIDs)
	b := FilterForest(f.Roots, w.VisibleIDs)

	// 完全可见的子树两次都是同一个指针
	assert.Same(t, a[0], b[0])
	assert.Same(t, a[1], b[1])
}

func TestPaginate(t *testing.T) {
	roots := BuildTree(fiveByThree(), SortOld)

	p := Paginate(roots, 5)

	assert.Equal(t, 5, p.Visible)
	assert.Equal(t, 20, p.Total)
	assert.Equal(t, 15, p.Remaining)
	assert.True(t, p.HasMore())
	assert.Equal(t, []int64{100, 101, 102, 103, 200}, preorder(p.Comments))

	p = Paginate(roots, 50)
	assert.False(t, p.HasMore())
	assert.Equal(t, 20, p.Visible)
}
