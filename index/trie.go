package index

// Node 是前缀树中的一个节点，对应某个 SimpleName 的一个前缀。
// 节点只被父节点持有，整体是一棵树。
type Node struct {
	children map[rune]*Node
	terminal bool
	prefix   string // 从根到当前节点的前缀，仅作为查找 names 的键
}

func newNode(prefix string) *Node {
	return &Node{prefix: prefix}
}

// Child 返回标签为 r 的子节点
func (n *Node) Child(r rune) (*Node, bool) {
	child, ok := n.children[r]
	return child, ok
}

// Children 遍历所有出边, fn 返回 false 时停止
func (n *Node) Children(fn func(r rune, child *Node) bool) {
	for r, child := range n.children {
		if !fn(r, child) {
			return
		}
	}
}

// Terminal 表示是否有 SimpleName 恰好在此结束
func (n *Node) Terminal() bool { return n.terminal }

// Prefix 返回从根到当前节点的字符串
func (n *Node) Prefix() string { return n.prefix }

// by 返回标签为 r 的子节点，不存在时创建
func (n *Node) by(r rune) *Node {
	if child, ok := n.children[r]; ok {
		return child
	}
	if n.children == nil {
		n.children = make(map[rune]*Node)
	}
	child := newNode(n.prefix + string(r))
	n.children[r] = child
	return child
}
