package source

import (
	"context"
	"log/slog"

	"github.com/viant/afs"

	"github.com/CodMac/go-treesitter-class-finder/config"
	"github.com/CodMac/go-treesitter-class-finder/model"
	"github.com/CodMac/go-treesitter-class-finder/processor"
)

// sources 用 tree-sitter 解析目录下的源码, 每个声明的类型连同种类和位置进入索引
type sources struct {
	fs      afs.Service
	rootURL string
	cfg     *config.Config
	logger  *slog.Logger
}

func (s *sources) Load(ctx context.Context, add func(elem *model.CodeElement)) error {
	entries, err := listFiles(ctx, s.fs, s.rootURL, s.cfg.Language.Extension(), s.cfg.SkipHidden)
	if err != nil {
		return err
	}
	files := make([]processor.SourceFile, 0, len(entries))
	for _, entry := range entries {
		files = append(files, processor.SourceFile{URL: entry.URL, RelPath: entry.RelPath})
	}
	s.logger.Debug("parsing sources", "root", s.rootURL, "files", len(files))

	proc := processor.NewFileProcessor(s.cfg.Language, s.cfg.Workers, s.fs, s.logger)
	contexts, err := proc.ProcessFiles(ctx, files)
	if err != nil {
		return err
	}
	for _, fc := range contexts {
		for _, def := range fc.Definitions {
			add(def)
		}
	}
	return nil
}
