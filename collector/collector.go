package collector

import (
	"github.com/pkg/errors"
	sitter "github.com/tree-sitter/go-tree-sitter"

	"github.com/CodMac/go-treesitter-class-finder/model"
)

// Collector 用于收集文件中声明的类型。
type Collector interface {
	// CollectDefinitions 负责遍历 AST，把包名和类型声明写入 fCtx。
	CollectDefinitions(rootNode *sitter.Node, fCtx *model.FileContext) error
}

var collectorMap = make(map[model.Language]Collector)

// RegisterCollector 注册一个语言与其对应的 Collector
func RegisterCollector(lang model.Language, collector Collector) {
	collectorMap[lang] = collector
}

// GetCollector 根据语言类型获取对应的 Collector 实例。
func GetCollector(lang model.Language) (Collector, error) {
	collector, ok := collectorMap[lang]
	if !ok {
		return nil, errors.Errorf("no collector registered for language: %v", lang)
	}

	return collector, nil
}

// NodeText 返回节点对应的源码文本
func NodeText(n *sitter.Node, sourceBytes []byte) string {
	if n == nil {
		return ""
	}
	return n.Utf8Text(sourceBytes)
}

// NodeLocation 返回节点在源码中的位置 (行号从 1 开始)
func NodeLocation(n *sitter.Node, filePath string) *model.Location {
	if n == nil {
		return nil
	}
	return &model.Location{
		FilePath:    filePath,
		StartLine:   int(n.StartPosition().Row) + 1,
		EndLine:     int(n.EndPosition().Row) + 1,
		StartColumn: int(n.StartPosition().Column),
		EndColumn:   int(n.EndPosition().Column),
	}
}
