// Package source 提供构建名字索引的几种数据来源:
// 目录扫描、限定名列表文件、以及 tree-sitter 解析的源码树。
package source

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"
	"github.com/viant/afs"
	"github.com/viant/afs/file"
	"github.com/viant/afs/url"

	"github.com/CodMac/go-treesitter-class-finder/config"
	"github.com/CodMac/go-treesitter-class-finder/logging"
	"github.com/CodMac/go-treesitter-class-finder/model"
	"github.com/CodMac/go-treesitter-class-finder/noisefilter"
)

// Kind 索引的构建方式
type Kind string

const (
	Directory Kind = "directory" // -r: 目录下每个匹配后缀的文件是一个限定名
	List      Kind = "list"      // -f: 每行一个限定名
	Sources   Kind = "sources"   // -s: 解析源码, 收集声明的类型
)

var ErrInvalidMode = errors.New("invalid construction mode")

// Source 把发现的每个元素交给 add; 目录与列表来源只填充名字与路径
type Source interface {
	Load(ctx context.Context, add func(elem *model.CodeElement)) error
}

// New 根据构建方式创建 Source; root 可以是本地路径或任意 afs URL
func New(kind Kind, root string, cfg *config.Config, fs afs.Service, logger *slog.Logger) (Source, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if fs == nil {
		fs = afs.New()
	}
	if logger == nil {
		logger = logging.Discard()
	}
	rootURL := url.Normalize(root, file.Scheme)

	var src Source
	switch kind {
	case Directory:
		src = &directory{fs: fs, rootURL: rootURL, extension: cfg.Extension, skipHidden: cfg.SkipHidden}
	case List:
		src = &list{fs: fs, URL: rootURL}
	case Sources:
		src = &sources{fs: fs, rootURL: rootURL, cfg: cfg, logger: logger}
	default:
		return nil, errors.Wrapf(ErrInvalidMode, "%q, expected %v, %v or %v", kind, Directory, List, Sources)
	}
	if cfg.SkipNoise {
		src = WithNoiseFilter(src, noisefilter.GetNoiseFilter(cfg.Language))
	}
	return src, nil
}

// Names 返回一个内存中的限定名集合
func Names(qualifiedNames ...string) Source {
	return names(qualifiedNames)
}

type names []string

func (n names) Load(ctx context.Context, add func(elem *model.CodeElement)) error {
	for _, qn := range n {
		add(&model.CodeElement{Name: model.SimpleName(qn), QualifiedName: qn})
	}
	return nil
}

// WithNoiseFilter 丢弃过滤器判定为噪音的限定名
func WithNoiseFilter(src Source, filter noisefilter.NoiseFilter) Source {
	return &filtered{Source: src, filter: filter}
}

type filtered struct {
	Source
	filter noisefilter.NoiseFilter
}

func (f *filtered) Load(ctx context.Context, add func(elem *model.CodeElement)) error {
	return f.Source.Load(ctx, func(elem *model.CodeElement) {
		if f.filter.IsNoise(elem.QualifiedName) {
			return
		}
		add(elem)
	})
}
