package parser

import (
	"github.com/pkg/errors"
	sitter "github.com/tree-sitter/go-tree-sitter"

	"github.com/CodMac/go-treesitter-class-finder/model"
)

// Parser 定义了所有语言解析器的通用能力
type Parser interface {
	// Parse 使用相应的 Tree-sitter 语言库解析源码，返回语法树。调用方负责关闭语法树。
	Parse(sourceBytes []byte) (*sitter.Tree, error)
	Close()
}

// TreeSitterParser 是 Parser 的具体实现。它不是并发安全的，每个 worker 应持有自己的实例。
type TreeSitterParser struct {
	Language model.Language // 当前解析器针对的语言
	tsParser *sitter.Parser
}

// NewParser 创建一个新的 TreeSitterParser 实例
func NewParser(lang model.Language) (*TreeSitterParser, error) {
	tsLang, err := model.GetLanguage(lang)
	if err != nil {
		return nil, err
	}

	tsParser := sitter.NewParser()
	if err := tsParser.SetLanguage(tsLang); err != nil {
		tsParser.Close()
		return nil, errors.Wrapf(err, "failed to set language %v", lang)
	}

	return &TreeSitterParser{
		Language: lang,
		tsParser: tsParser,
	}, nil
}

// Parse 实现了 Parser 接口
func (p *TreeSitterParser) Parse(sourceBytes []byte) (*sitter.Tree, error) {
	tree := p.tsParser.Parse(sourceBytes, nil)
	if tree == nil {
		return nil, errors.Errorf("tree-sitter failed to parse %v source", p.Language)
	}
	return tree, nil
}

// Close 释放 Tree-sitter 内部资源
func (p *TreeSitterParser) Close() {
	if p.tsParser != nil {
		p.tsParser.Close()
	}
}
