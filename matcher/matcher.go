// Package matcher 在 NameIndex 上按缩写模式查找限定名。
//
// 模式由字母、数字与 '*' 组成，隐式地在首尾各补一个 '*'，因此任何搜索都是子串式的：
//
//   - 小写字母或数字按字面匹配下一个字符；
//   - 大写字母匹配某个驼峰段的首字母，可以先略过任意个小写字母/数字 ("FB" 匹配 "FooBar")；
//   - 模式不含大写字母时进入大小写不敏感模式，每个字母同时按字面 (小写) 与驼峰 (大写) 两种方式尝试；
//   - '*' 匹配任意长度的任意字符。
//
// 匹配过程是对 (模式位置, 前缀树节点) 状态的非确定性自动机模拟，
// 使用工作队列和已访问集合保证每个状态只展开一次。
package matcher

import (
	"unicode"

	"github.com/CodMac/go-treesitter-class-finder/index"
)

const wildcard = '*'

// Matcher 对只读的 NameIndex 执行搜索，可被多个 goroutine 并发使用
type Matcher struct {
	index *index.NameIndex
}

// New 创建 Matcher
func New(idx *index.NameIndex) *Matcher {
	return &Matcher{index: idx}
}

// Search 返回匹配 pattern 的限定名，按 (SimpleName, QualifiedName) 升序排列
func (m *Matcher) Search(pattern string) ([]string, error) {
	set, err := m.Match(pattern)
	if err != nil {
		return nil, err
	}
	return sorted(set), nil
}

// Match 返回匹配 pattern 的限定名集合 (无序)
func (m *Matcher) Match(pattern string) (map[string]struct{}, error) {
	augmented, err := augment(pattern)
	if err != nil {
		return nil, err
	}

	s := &search{
		pattern:     augmented,
		insensitive: isInsensitive(pattern),
		index:       m.index,
		visited:     make(map[state]struct{}),
		closed:      make(map[state]struct{}),
		result:      make(map[string]struct{}),
	}
	s.run()
	return s.result, nil
}

// augment 校验模式并在首尾补 '*'；连续的 '*' 合并为一个
func augment(pattern string) ([]rune, error) {
	result := []rune{wildcard}
	position := 0
	for _, r := range pattern {
		if r != wildcard && !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return nil, unrecognizedSymbol(r, position)
		}
		position++
		if r == wildcard && result[len(result)-1] == wildcard {
			continue
		}
		result = append(result, r)
	}
	if result[len(result)-1] != wildcard {
		result = append(result, wildcard)
	}
	return result, nil
}

// isInsensitive 模式中没有大写字母时大小写不敏感
func isInsensitive(pattern string) bool {
	for _, r := range pattern {
		if unicode.IsUpper(r) {
			return false
		}
	}
	return true
}

// state 表示自动机的一个状态：已匹配到模式位置 pos，当前位于前缀树节点 node
type state struct {
	pos  int
	node *index.Node
}

// search 保存单次搜索的全部可变状态，不在搜索之间共享
type search struct {
	pattern     []rune
	insensitive bool
	index       *index.NameIndex

	queue   []state
	visited map[state]struct{}
	closed  map[state]struct{}
	result  map[string]struct{}
}

func (s *search) run() {
	s.push(0, s.index.Root())
	for len(s.queue) > 0 {
		current := s.queue[len(s.queue)-1]
		s.queue = s.queue[:len(s.queue)-1]
		s.step(current)
	}
}

func (s *search) push(pos int, node *index.Node) {
	key := state{pos: pos, node: node}
	if _, ok := s.visited[key]; ok {
		return
	}
	s.visited[key] = struct{}{}
	s.queue = append(s.queue, key)
}

func (s *search) step(st state) {
	c := s.pattern[st.pos]
	switch {
	case c == wildcard:
		s.matchWildcard(st)
	case s.insensitive && unicode.IsLetter(c):
		s.matchLiteral(st, unicode.ToLower(c))
		s.matchHump(st, unicode.ToUpper(c))
	case unicode.IsUpper(c):
		s.matchHump(st, c)
	default:
		s.matchLiteral(st, c)
	}
}

func (s *search) matchLiteral(st state, c rune) {
	if next, ok := st.node.Child(c); ok {
		s.push(st.pos+1, next)
	}
}

func (s *search) matchHump(st state, c rune) {
	s.lowerClosure(st.pos, st.node, c, func(next *index.Node) {
		s.push(st.pos+1, next)
	})
}

func (s *search) matchWildcard(st state) {
	p := st.pos + 1
	if p == len(s.pattern) {
		s.terminalClosure(st.pos, st.node, func(n *index.Node) {
			s.index.EachQualifiedName(n.Prefix(), s.add)
		})
		return
	}

	// augment 保证 '*' 之后一定是字母或数字
	after := s.pattern[p]
	targets := []rune{after}
	if s.insensitive && unicode.IsLetter(after) {
		lower, upper := unicode.ToLower(after), unicode.ToUpper(after)
		targets = targets[:0]
		targets = append(targets, lower)
		if upper != lower {
			targets = append(targets, upper)
		}
	}
	s.wildcardClosure(st.pos, st.node, targets, func(next *index.Node) {
		s.push(p+1, next)
	})
}

func (s *search) add(qualifiedName string) {
	s.result[qualifiedName] = struct{}{}
}
