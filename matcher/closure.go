package matcher

import (
	"unicode"

	"github.com/CodMac/go-treesitter-class-finder/index"
)

// isLowerOrDigit 判断字符能否在驼峰跳跃中被略过
func isLowerOrDigit(r rune) bool {
	return unicode.IsLower(r) || unicode.IsDigit(r)
}

func anyRune(rune) bool { return true }

// closure 从 from 出发，沿 follow 允许的边做显式栈遍历，对每个到达的节点调用 visit。
// pos 是触发该闭包的模式位置：同一位置的闭包共享已访问集合，
// 已经展开过的节点其整棵可达子图必然也已展开，可直接跳过。
func (s *search) closure(pos int, from *index.Node, follow func(rune) bool, visit func(*index.Node)) {
	stack := []*index.Node{from}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		key := state{pos: pos, node: n}
		if _, ok := s.closed[key]; ok {
			continue
		}
		s.closed[key] = struct{}{}

		visit(n)
		n.Children(func(r rune, child *index.Node) bool {
			if follow(r) {
				stack = append(stack, child)
			}
			return true
		})
	}
}

// lowerClosure 收集：经过零条或多条小写字母/数字边，再经过一条标签恰为 to 的边所能到达的节点
func (s *search) lowerClosure(pos int, from *index.Node, to rune, emit func(*index.Node)) {
	s.closure(pos, from, isLowerOrDigit, func(n *index.Node) {
		if next, ok := n.Child(to); ok {
			emit(next)
		}
	})
}

// wildcardClosure 收集：经过任意条任意边，再经过一条标签属于 to 的边所能到达的节点
func (s *search) wildcardClosure(pos int, from *index.Node, to []rune, emit func(*index.Node)) {
	s.closure(pos, from, anyRune, func(n *index.Node) {
		for _, r := range to {
			if next, ok := n.Child(r); ok {
				emit(next)
			}
		}
	})
}

// terminalClosure 收集 from 子树中 (含自身) 的全部终止节点
func (s *search) terminalClosure(pos int, from *index.Node, emit func(*index.Node)) {
	s.closure(pos, from, anyRune, func(n *index.Node) {
		if n.Terminal() {
			emit(n)
		}
	})
}
