package commenttree

import (
	"cmp"
	"errors"
	"fmt"
	"math"
	"slices"
)

// SortMode 评论排序方式
type SortMode int

const (
	SortTop SortMode = iota // 默认：按得分
	SortNew
	SortOld
	SortControversial
)

// ErrUnknownSort 无法识别的排序参数
var ErrUnknownSort = errors.New("unknown comment sort")

var sortNames = [...]string{
	SortTop:           "top",
	SortNew:           "new",
	SortOld:           "old",
	SortControversial: "controversial",
}

// SortModes 返回所有排序方式（界面展示顺序）
func SortModes() []SortMode {
	return []SortMode{SortTop, SortNew, SortOld, SortControversial}
}

func (m SortMode) String() string {
	if m < 0 || int(m) >= len(sortNames) {
		return fmt.Sprintf("SortMode(%d)", int(m))
	}
	return sortNames[m]
}

// ParseSortMode 解析排序参数，空字符串视为默认排序
func ParseSortMode(s string) (SortMode, error) {
	if s == "" {
		return SortTop, nil
	}
	for i, name := range sortNames {
		if name == s {
			return SortMode(i), nil
		}
	}
	return SortTop, fmt.Errorf("%w: %q", ErrUnknownSort, s)
}

func (m SortMode) MarshalText() ([]byte, error) {
	if m < 0 || int(m) >= len(sortNames) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownSort, int(m))
	}
	return []byte(sortNames[m]), nil
}

func (m *SortMode) UnmarshalText(text []byte) error {
	mode, err := ParseSortMode(string(text))
	if err != nil {
		return err
	}
	*m = mode
	return nil
}

// Controversy 争议度：票数越多、赞踩越接近，值越大
// total * (1 - |up-down| / total)，无人投票时为 0
func Controversy(up, down int) float64 {
	total := up + down
	if total == 0 {
		return 0
	}
	t := float64(total)
	return t * (1 - math.Abs(float64(up-down))/t)
}

// Compare 同级评论的比较函数，返回负数表示 a 排在 b 前面
func Compare(a, b *Node, mode SortMode) int {
	switch mode {
	case SortNew:
		return cmp.Compare(b.CreatedUTC, a.CreatedUTC)
	case SortOld:
		return cmp.Compare(a.CreatedUTC, b.CreatedUTC)
	case SortControversial:
		return cmp.Compare(Controversy(b.Upvotes, b.Downvotes), Controversy(a.Upvotes, a.Downvotes))
	default:
		return cmp.Compare(b.Score, a.Score)
	}
}

// sortNodes 递归排序每一层回复；稳定排序，相同键保持输入顺序
func sortNodes(nodes []*Node, mode SortMode) {
	slices.SortStableFunc(nodes, func(a, b *Node) int {
		return Compare(a, b, mode)
	})
	for _, n := range nodes {
		if len(n.Replies) > 0 {
			sortNodes(n.Replies, mode)
		}
	}
}
