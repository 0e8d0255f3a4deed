package config

import (
	"context"
	"runtime"

	"github.com/pkg/errors"
	"github.com/viant/afs"
	"gopkg.in/yaml.v3"

	"github.com/CodMac/go-treesitter-class-finder/logging"
	"github.com/CodMac/go-treesitter-class-finder/model"
)

const (
	FormatText  = "text"
	FormatJSONL = "jsonl"
)

// Config 控制索引构建与结果输出
type Config struct {
	Language   model.Language `yaml:"language,omitempty"`   // 源码语言, 决定默认后缀和 tree-sitter 语法
	Extension  string         `yaml:"extension,omitempty"`  // 目录扫描时匹配的文件后缀, 为空时取语言默认值
	Workers    int            `yaml:"workers,omitempty"`    // 解析源码的并发协程数量
	Format     string         `yaml:"format,omitempty"`     // 输出格式: text | jsonl
	LogLevel   string         `yaml:"logLevel,omitempty"`   // debug | info | warn | error
	SkipHidden bool           `yaml:"skipHidden,omitempty"` // 忽略以 '.' 开头的目录
	SkipNoise  bool           `yaml:"skipNoise,omitempty"`  // 丢弃语言噪音过滤器判定的名字
}

// Default 返回默认配置
func Default() *Config {
	c := &Config{}
	c.Init()
	return c
}

// Load 通过 afs 读取 YAML 配置 (本地路径或任意 afs URL)，未设置的字段取默认值
func Load(ctx context.Context, fs afs.Service, URL string) (*Config, error) {
	data, err := fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read config %v", URL)
	}
	c := &Config{}
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, errors.Wrapf(err, "failed to parse config %v", URL)
	}
	c.Init()
	return c, nil
}

// Init 填充默认值
func (c *Config) Init() {
	if c.Language == "" {
		c.Language = model.LangJava
	}
	if c.Extension == "" {
		c.Extension = c.Language.Extension()
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
	if c.Format == "" {
		c.Format = FormatText
	}
	if c.LogLevel == "" {
		c.LogLevel = "warn"
	}
}

// Validate 检查配置是否可用
func (c *Config) Validate() error {
	if !c.Language.IsValid() {
		return errors.Errorf("unsupported language: %v", c.Language)
	}
	switch c.Format {
	case FormatText, FormatJSONL:
	default:
		return errors.Errorf("unsupported output format: %v", c.Format)
	}
	if c.Workers <= 0 {
		return errors.Errorf("invalid workers: %v", c.Workers)
	}
	if !logging.IsLevel(c.LogLevel) {
		return errors.Errorf("unsupported log level: %v", c.LogLevel)
	}
	return nil
}
