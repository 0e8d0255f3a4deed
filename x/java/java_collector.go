package java

import (
	"github.com/CodMac/go-treesitter-class-finder/collector"
	"github.com/CodMac/go-treesitter-class-finder/model"
	sitter "github.com/tree-sitter/go-tree-sitter"
)

type Collector struct{}

func NewJavaCollector() *Collector {
	return &Collector{}
}

func (c *Collector) CollectDefinitions(rootNode *sitter.Node, fCtx *model.FileContext) error {
	// 1. 处理包声明
	c.processPackageDeclaration(rootNode, fCtx)

	// 2. 递归收集类型定义，嵌套类型以外层类型的 QN 为前缀
	c.collectDefinitionsRecursive(rootNode, fCtx, fCtx.PackageName)
	return nil
}

func (c *Collector) processPackageDeclaration(rootNode *sitter.Node, fCtx *model.FileContext) {
	for i := uint(0); i < rootNode.NamedChildCount(); i++ {
		child := rootNode.NamedChild(i)
		if child == nil || child.Kind() != "package_declaration" {
			continue
		}
		for j := uint(0); j < child.NamedChildCount(); j++ {
			sub := child.NamedChild(j)
			if sub.Kind() == "scoped_identifier" || sub.Kind() == "identifier" {
				fCtx.PackageName = collector.NodeText(sub, fCtx.SourceBytes)
				return
			}
		}
	}
}

func (c *Collector) collectDefinitionsRecursive(node *sitter.Node, fCtx *model.FileContext, currentQNPrefix string) {
	if kind, ok := c.declarationKind(node); ok {
		// 匿名类没有 name 字段，不产生定义
		if nameNode := node.ChildByFieldName("name"); nameNode != nil {
			name := collector.NodeText(nameNode, fCtx.SourceBytes)
			elem := &model.CodeElement{
				Kind:          kind,
				Name:          name,
				QualifiedName: model.BuildQualifiedName(currentQNPrefix, name),
				Path:          fCtx.RelPath,
				Location:      collector.NodeLocation(node, fCtx.RelPath),
			}
			fCtx.AddDefinition(elem)
			currentQNPrefix = elem.QualifiedName
		}
	}

	cursor := node.Walk()
	defer cursor.Close()

	if cursor.GotoFirstChild() {
		for {
			c.collectDefinitionsRecursive(cursor.Node(), fCtx, currentQNPrefix)
			if !cursor.GotoNextSibling() {
				break
			}
		}
	}
}

func (c *Collector) declarationKind(node *sitter.Node) (model.ElementKind, bool) {
	switch node.Kind() {
	case "class_declaration":
		return model.Class, true
	case "record_declaration":
		return model.Record, true
	case "interface_declaration":
		return model.Interface, true
	case "enum_declaration":
		return model.Enum, true
	case "annotation_type_declaration":
		return model.KAnnotation, true
	}
	return "", false
}
