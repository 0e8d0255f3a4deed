// Package finder 把名字索引与模式匹配组合成一次构建、多次查询的入口。
package finder

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"
	"github.com/viant/afs"

	"github.com/CodMac/go-treesitter-class-finder/config"
	"github.com/CodMac/go-treesitter-class-finder/index"
	"github.com/CodMac/go-treesitter-class-finder/logging"
	"github.com/CodMac/go-treesitter-class-finder/matcher"
	"github.com/CodMac/go-treesitter-class-finder/model"
	"github.com/CodMac/go-treesitter-class-finder/source"
)

// Finder 持有构建完成的索引, 构建后只读, 可并发查询
type Finder struct {
	index   *index.NameIndex
	matcher *matcher.Matcher
	logger  *slog.Logger
}

// New 按 kind 从 root 构建索引。构建失败时不返回任何部分结果。
func New(ctx context.Context, kind source.Kind, root string, cfg *config.Config, logger *slog.Logger) (*Finder, error) {
	if cfg == nil {
		cfg = config.Default()
	} else {
		cfg.Init()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	src, err := source.New(kind, root, cfg, afs.New(), logger)
	if err != nil {
		return nil, err
	}
	return Build(ctx, src, logger)
}

// Build 从任意 Source 构建索引
func Build(ctx context.Context, src source.Source, logger *slog.Logger) (*Finder, error) {
	if logger == nil {
		logger = logging.Discard()
	}
	idx := index.New()
	if err := src.Load(ctx, idx.AddElement); err != nil {
		return nil, errors.WithMessage(err, "failed to build index")
	}
	logger.Debug("index built", "names", idx.Len())
	return newFinder(idx, logger), nil
}

// NewWithNames 从内存中的限定名集合构建
func NewWithNames(qualifiedNames ...string) *Finder {
	return newFinder(index.NewWithNames(qualifiedNames...), logging.Discard())
}

func newFinder(idx *index.NameIndex, logger *slog.Logger) *Finder {
	return &Finder{index: idx, matcher: matcher.New(idx), logger: logger}
}

// Search 返回匹配 pattern 的全部限定名, 按 (简单名, 限定名) 排序
func (f *Finder) Search(pattern string) ([]string, error) {
	result, err := f.matcher.Search(pattern)
	if err != nil {
		return nil, err
	}
	f.logger.Debug("search", "pattern", pattern, "matches", len(result))
	return result, nil
}

// SearchElements 与 Search 顺序相同, 返回登记时的元素 (含来源路径、种类、位置)
func (f *Finder) SearchElements(pattern string) ([]*model.CodeElement, error) {
	names, err := f.Search(pattern)
	if err != nil {
		return nil, err
	}
	result := make([]*model.CodeElement, 0, len(names))
	for _, qn := range names {
		result = append(result, f.index.Element(qn))
	}
	return result, nil
}

func (f *Finder) Index() *index.NameIndex { return f.index }
