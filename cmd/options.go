package cmd

import (
	"github.com/CodMac/go-treesitter-class-finder/config"
	"github.com/CodMac/go-treesitter-class-finder/model"
	"github.com/CodMac/go-treesitter-class-finder/source"
)

// Options 命令行参数, 由 github.com/jessevdk/go-flags 解析。
// 位置参数: <root> <pattern>
type Options struct {
	Recursive bool `short:"r" description:"index every file with the configured extension under <root>"`
	File      bool `short:"f" description:"read newline-delimited qualified names from <root>"`
	Sources   bool `short:"s" description:"parse sources under <root> with tree-sitter and index declared types"`

	Config     string `short:"c" long:"config" description:"configuration YAML path or URL"`
	Language   string `short:"l" long:"lang" description:"source language (java, go)"`
	Extension  string `short:"e" long:"ext" description:"file extension matched by -r"`
	Workers    int    `short:"w" long:"workers" description:"number of parser workers used by -s"`
	Format     string `short:"o" long:"format" description:"output format (text, jsonl)"`
	SkipNoise  bool   `long:"skip-noise" description:"drop names the language noise filter rejects"`
	SkipHidden bool   `long:"skip-hidden" description:"ignore files under directories whose name starts with '.'"`
	LogLevel   string `long:"log-level" description:"log level (debug, info, warn, error)"`
}

// modes 返回选中的构建方式数量
func (o *Options) modes() int {
	count := 0
	for _, set := range []bool{o.Recursive, o.File, o.Sources} {
		if set {
			count++
		}
	}
	return count
}

// Kind 只有恰好选中一种方式时才返回有效值
func (o *Options) Kind() source.Kind {
	if o.modes() != 1 {
		return ""
	}
	switch {
	case o.Recursive:
		return source.Directory
	case o.File:
		return source.List
	}
	return source.Sources
}

// Apply 用命令行参数覆盖配置
func (o *Options) Apply(cfg *config.Config) {
	if o.Language != "" {
		cfg.Language = model.Language(o.Language)
		if o.Extension == "" {
			cfg.Extension = cfg.Language.Extension()
		}
	}
	if o.Extension != "" {
		cfg.Extension = o.Extension
	}
	if o.Workers > 0 {
		cfg.Workers = o.Workers
	}
	if o.Format != "" {
		cfg.Format = o.Format
	}
	if o.SkipNoise {
		cfg.SkipNoise = true
	}
	if o.SkipHidden {
		cfg.SkipHidden = true
	}
	if o.LogLevel != "" {
		cfg.LogLevel = o.LogLevel
	}
}
