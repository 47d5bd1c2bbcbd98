package commenttree

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelectVisible_PreorderPrefix(t *testing.T) {
	roots := BuildTree(fiveByThree(), SortOld)

	w := SelectVisible(roots, 4)

	assert.Equal(t, 20, w.TotalCount)
	assert.Equal(t, 4, w.Visible())
	for _, id := range []int64{100, 101, 102, 103} {
		assert.True(t, w.Contains(id), "id %d", id)
	}
	assert.False(t, w.Contains(200))
	assert.Equal(t, 16, w.Remaining())
}

func TestSelectVisible_FirstReplyBeforeSecondRoot(t *testing.T) {
	roots := BuildTree(fiveByThree(), SortOld)

	w := SelectVisible(roots, 2)

	assert.True(t, w.Contains(101))
	assert.False(t, w.Contains(200))
}

func TestSelectVisible_LimitLargerThanForest(t *testing.T) {
	roots := BuildTree(fiveByThree(), SortOld)

	w := SelectVisible(roots, 1000)

	assert.Equal(t, 20, w.TotalCount)
	assert.Equal(t, 20, w.Visible())
	assert.Equal(t, 0, w.Remaining())
}

func TestSelectVisible_NonPositiveLimit(t *testing.T) {
	roots := BuildTree(fiveByThree(), SortOld)

	for _, limit := range []int{0, -3} {
		w := SelectVisible(roots, limit)
		assert.Empty(t, w.VisibleIDs)
		assert.Equal(t, 20, w.TotalCount)
	}
}

func TestSelectVisible_Empty(t *testing.T) {
	w := SelectVisible(nil, 10)

	assert.Empty(t, w.VisibleIDs)
	assert.Equal(t, 0, w.TotalCount)
}
