package golang

import (
	"github.com/CodMac/go-treesitter-class-finder/collector"
	"github.com/CodMac/go-treesitter-class-finder/model"
	"github.com/CodMac/go-treesitter-class-finder/noisefilter"
	sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_go "github.com/tree-sitter/tree-sitter-go/bindings/go"
)

func init() {
	// 注册 Tree-sitter Go 语言对象
	model.RegisterLanguage(model.LangGo, sitter.NewLanguage(tree_sitter_go.Language()))
	// 注册 Collector
	collector.RegisterCollector(model.LangGo, NewGoCollector())
	// 注册 NoiseFilter(噪音过滤)
	noisefilter.RegisterNoiseFilter(model.LangGo, NewGoNoiseFilter())
}
