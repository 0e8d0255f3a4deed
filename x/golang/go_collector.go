package golang

import (
	"path"
	"strings"

	"github.com/CodMac/go-treesitter-class-finder/collector"
	"github.com/CodMac/go-treesitter-class-finder/model"
	sitter "github.com/tree-sitter/go-tree-sitter"
)

// Collector 收集 Go 源文件中的顶层类型声明
type Collector struct{}

func NewGoCollector() *Collector {
	return &Collector{}
}

// CollectDefinitions 顶层 type 声明以包目录 (相对扫描根目录, '/' 换成 '.') 为前缀；
// 位于根目录的文件使用 package 子句中的包名。
func (c *Collector) CollectDefinitions(rootNode *sitter.Node, fCtx *model.FileContext) error {
	var declarations []*sitter.Node
	for i := uint(0); i < rootNode.NamedChildCount(); i++ {
		child := rootNode.NamedChild(i)
		switch child.Kind() {
		case "package_clause":
			for j := uint(0); j < child.NamedChildCount(); j++ {
				if sub := child.NamedChild(j); sub.Kind() == "package_identifier" {
					fCtx.PackageName = collector.NodeText(sub, fCtx.SourceBytes)
				}
			}
		case "type_declaration":
			declarations = append(declarations, child)
		}
	}

	prefix := c.packageQualifier(fCtx)
	for _, decl := range declarations {
		for i := uint(0); i < decl.NamedChildCount(); i++ {
			spec := decl.NamedChild(i)
			if spec.Kind() != "type_spec" && spec.Kind() != "type_alias" {
				continue
			}
			nameNode := spec.ChildByFieldName("name")
			if nameNode == nil {
				continue
			}
			name := collector.NodeText(nameNode, fCtx.SourceBytes)
			fCtx.AddDefinition(&model.CodeElement{
				Kind:          c.specKind(spec),
				Name:          name,
				QualifiedName: model.BuildQualifiedName(prefix, name),
				Path:          fCtx.RelPath,
				Location:      collector.NodeLocation(spec, fCtx.RelPath),
			})
		}
	}
	return nil
}

func (c *Collector) packageQualifier(fCtx *model.FileContext) string {
	dir := path.Dir(fCtx.RelPath)
	if dir == "." || dir == "/" || dir == "" {
		return fCtx.PackageName
	}
	return strings.ReplaceAll(strings.Trim(dir, "/"), "/", ".")
}

func (c *Collector) specKind(spec *sitter.Node) model.ElementKind {
	if spec.Kind() == "type_alias" {
		return model.Type
	}
	typeNode := spec.ChildByFieldName("type")
	if typeNode == nil {
		return model.Type
	}
	switch typeNode.Kind() {
	case "struct_type":
		return model.Struct
	case "interface_type":
		return model.Interface
	}
	return model.Type
}
