package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/jessevdk/go-flags"
	"github.com/viant/afs"

	"github.com/CodMac/go-treesitter-class-finder/config"
	"github.com/CodMac/go-treesitter-class-finder/finder"
	"github.com/CodMac/go-treesitter-class-finder/logging"
	"github.com/CodMac/go-treesitter-class-finder/output"

	// 导入所有语言的实现，以触发其 init() 函数注册 Language / Collector / NoiseFilter
	_ "github.com/CodMac/go-treesitter-class-finder/x/golang"
	_ "github.com/CodMac/go-treesitter-class-finder/x/java"
)

const usage = "Expected <mode> <root> <pattern>, mode is one of -r, -f or -s"

// Run 是 CLI 入口, 返回进程退出码。与 main 分开以便测试。
func Run(args []string, stdout, stderr io.Writer) int {
	opts := &Options{}
	parser := flags.NewParser(opts, flags.HelpFlag|flags.PassDoubleDash)
	parser.Usage = "[OPTIONS] -r|-f|-s <root> <pattern>"
	rest, err := parser.ParseArgs(args)
	if err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			fmt.Fprintln(stdout, err.Error())
			return 0
		}
		fmt.Fprintln(stderr, err.Error())
		return 1
	}
	if opts.modes() == 0 || len(rest) != 2 {
		fmt.Fprintln(stderr, usage)
		return 2
	}

	if err := run(context.Background(), opts, rest[0], rest[1], stdout, stderr); err != nil {
		fmt.Fprintln(stderr, err.Error())
		fmt.Fprintf(stderr, "%+v\n", err)
		return 1
	}
	return 0
}

func run(ctx context.Context, opts *Options, root, pattern string, stdout, stderr io.Writer) error {
	cfg := config.Default()
	if opts.Config != "" {
		var err error
		if cfg, err = config.Load(ctx, afs.New(), opts.Config); err != nil {
			return err
		}
	}
	opts.Apply(cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := logging.New(cfg.LogLevel, stderr)
	writer, err := output.NewWriter(cfg.Format, stdout)
	if err != nil {
		return err
	}

	f, err := finder.New(ctx, opts.Kind(), root, cfg, logger)
	if err != nil {
		return err
	}
	matches, err := f.SearchElements(pattern)
	if err != nil {
		return err
	}
	return writer.Write(matches)
}
