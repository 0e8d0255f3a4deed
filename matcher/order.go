package matcher

import (
	"sort"

	"github.com/CodMac/go-treesitter-class-finder/model"
)

// Less 先按 SimpleName 升序，再按完整限定名升序
func Less(a, b string) bool {
	sa, sb := model.SimpleName(a), model.SimpleName(b)
	if sa != sb {
		return sa < sb
	}
	return a < b
}

// Sort 对限定名原地排序
func Sort(names []string) {
	sort.Slice(names, func(i, j int) bool {
		return Less(names[i], names[j])
	})
}

// sorted 把匹配集合转为有序切片
func sorted(set map[string]struct{}) []string {
	result := make([]string, 0, len(set))
	for name := range set {
		result = append(result, name)
	}
	Sort(result)
	return result
}
