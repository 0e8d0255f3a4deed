// Package index 维护按 SimpleName 组织的前缀树以及 SimpleName 到限定名集合的映射。
// 每个限定名附带一个 CodeElement，记录来源 (路径、声明种类、位置)。
//
// NameIndex 构建完成后视为只读：开始搜索后不应再调用 AddName / AddElement，
// 此时任意数量的并发搜索都无需加锁。
package index

import (
	"sort"

	"github.com/CodMac/go-treesitter-class-finder/model"
)

// NameIndex 持有前缀树根节点与 SimpleName -> QualifiedName 集合
type NameIndex struct {
	root  *Node
	names map[string]map[string]*model.CodeElement
	count int
}

// New 创建空索引
func New() *NameIndex {
	return &NameIndex{
		root:  newNode(""),
		names: make(map[string]map[string]*model.CodeElement),
	}
}

// NewWithNames 用给定的限定名构建索引
func NewWithNames(qualifiedNames ...string) *NameIndex {
	idx := New()
	for _, name := range qualifiedNames {
		idx.AddName(name)
	}
	return idx
}

// AddName 登记一个只有名字、没有来源信息的限定名
func (x *NameIndex) AddName(qualifiedName string) {
	x.AddElement(&model.CodeElement{
		Name:          model.SimpleName(qualifiedName),
		QualifiedName: qualifiedName,
	})
}

// AddElement 登记一个限定名及其元素。前缀树与映射总是同步修改；
// 同一限定名重复添加时保留第一次登记的元素。
func (x *NameIndex) AddElement(elem *model.CodeElement) {
	qualifiedName := elem.QualifiedName
	simple := model.SimpleName(qualifiedName)
	set, ok := x.names[simple]
	if !ok {
		set = make(map[string]*model.CodeElement)
		x.names[simple] = set
	}
	if _, ok := set[qualifiedName]; !ok {
		set[qualifiedName] = elem
		x.count++
	}

	current := x.root
	for _, r := range simple {
		current = current.by(r)
	}
	current.terminal = true
}

// Root 返回前缀树根节点
func (x *NameIndex) Root() *Node { return x.root }

// Len 返回不同限定名的数量
func (x *NameIndex) Len() int { return x.count }

// QualifiedNames 返回共享该 SimpleName 的全部限定名 (已排序的副本)
func (x *NameIndex) QualifiedNames(simpleName string) []string {
	set := x.names[simpleName]
	if len(set) == 0 {
		return nil
	}
	result := make([]string, 0, len(set))
	for name := range set {
		result = append(result, name)
	}
	sort.Strings(result)
	return result
}

// EachQualifiedName 对 SimpleName 下的每个限定名调用 fn, 不分配中间切片
func (x *NameIndex) EachQualifiedName(simpleName string, fn func(qualifiedName string)) {
	for name := range x.names[simpleName] {
		fn(name)
	}
}

// Element 返回限定名登记时的元素，不存在时返回 nil
func (x *NameIndex) Element(qualifiedName string) *model.CodeElement {
	return x.names[model.SimpleName(qualifiedName)][qualifiedName]
}

// SimpleNames 返回所有 SimpleName (已排序)
func (x *NameIndex) SimpleNames() []string {
	result := make([]string, 0, len(x.names))
	for simple := range x.names {
		result = append(result, simple)
	}
	sort.Strings(result)
	return result
}
