package index

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CodMac/go-treesitter-class-finder/model"
)

// terminalPrefixes 收集前缀树中所有终止节点的前缀
func terminalPrefixes(root *Node) []string {
	var result []string
	stack := []*Node{root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if n.Terminal() {
			result = append(result, n.Prefix())
		}
		n.Children(func(_ rune, child *Node) bool {
			stack = append(stack, child)
			return true
		})
	}
	sort.Strings(result)
	return result
}

func TestNameIndex_AddName(t *testing.T) {
	idx := NewWithNames("ru.ifmo.rain.FooBar", "ru.FeeBoo", "FooBar", "pack.name.SomeFoolBars")

	assert.Equal(t, 4, idx.Len())
	assert.Equal(t, []string{"FeeBoo", "FooBar", "SomeFoolBars"}, idx.SimpleNames())
	assert.Equal(t, []string{"FooBar", "ru.ifmo.rain.FooBar"}, idx.QualifiedNames("FooBar"))
	assert.Nil(t, idx.QualifiedNames("Missing"))

	// 终止节点与映射的键一一对应
	assert.Equal(t, idx.SimpleNames(), terminalPrefixes(idx.Root()))
}

func TestNameIndex_Idempotent(t *testing.T) {
	idx := NewWithNames("a.FooBar", "FooBar")
	before := terminalPrefixes(idx.Root())

	idx.AddName("a.FooBar")
	idx.AddName("FooBar")

	assert.Equal(t, 2, idx.Len())
	assert.Equal(t, before, terminalPrefixes(idx.Root()))
	assert.Equal(t, []string{"FooBar", "a.FooBar"}, idx.QualifiedNames("FooBar"))
}

func TestNameIndex_PrefixNodes(t *testing.T) {
	idx := NewWithNames("Foo", "FooBar")

	n := idx.Root()
	for _, r := range "Foo" {
		var ok bool
		n, ok = n.Child(r)
		require.True(t, ok)
	}
	assert.True(t, n.Terminal())
	assert.Equal(t, "Foo", n.Prefix())

	b, ok := n.Child('B')
	require.True(t, ok)
	assert.False(t, b.Terminal())
	assert.Equal(t, "FooB", b.Prefix())
}

func TestNameIndex_EmptyName(t *testing.T) {
	idx := New()
	assert.False(t, idx.Root().Terminal())

	idx.AddName("pkg.")
	assert.True(t, idx.Root().Terminal())
	assert.Equal(t, []string{"pkg."}, idx.QualifiedNames(""))
}

func TestNameIndex_Unicode(t *testing.T) {
	idx := NewWithNames("Ёлка", "ЁжикВТумане")
	n, ok := idx.Root().Child('Ё')
	require.True(t, ok)
	assert.Equal(t, "Ё", n.Prefix())
	assert.Equal(t, []string{"ЁжикВТумане", "Ёлка"}, terminalPrefixes(idx.Root()))
}

func TestNameIndex_AddElement(t *testing.T) {
	idx := New()
	elem := &model.CodeElement{
		Kind:          model.Class,
		Name:          "User",
		QualifiedName: "com.example.User",
		Path:          "com/example/User.java",
		Location:      &model.Location{FilePath: "com/example/User.java", StartLine: 3, EndLine: 5},
	}
	idx.AddElement(elem)
	idx.AddName("com.example.User")
	idx.AddName("User")

	assert.Equal(t, 2, idx.Len())
	assert.Same(t, elem, idx.Element("com.example.User"))
	assert.Equal(t, &model.CodeElement{Name: "User", QualifiedName: "User"}, idx.Element("User"))
	assert.Nil(t, idx.Element("org.User"))
	assert.Nil(t, idx.Element("Missing"))
}
