package processor

import (
	"context"
	"log/slog"
	"sort"
	"sync"

	"github.com/pkg/errors"
	"github.com/viant/afs"

	"github.com/CodMac/go-treesitter-class-finder/collector"
	"github.com/CodMac/go-treesitter-class-finder/logging"
	"github.com/CodMac/go-treesitter-class-finder/model"
	"github.com/CodMac/go-treesitter-class-finder/parser"
)

// SourceFile 是待解析的一个源文件
type SourceFile struct {
	URL     string
	RelPath string // 相对扫描根目录, 以 '/' 分隔
}

// FileProcessor 负责并发解析文件列表，并聚合每个文件声明的类型。
type FileProcessor struct {
	Language model.Language
	Workers  int // 并发协程数量
	fs       afs.Service
	logger   *slog.Logger
}

// NewFileProcessor 创建 FileProcessor 实例
func NewFileProcessor(lang model.Language, workers int, fs afs.Service, logger *slog.Logger) *FileProcessor {
	if workers <= 0 {
		workers = 4 // 默认并发数
	}
	if fs == nil {
		fs = afs.New()
	}
	if logger == nil {
		logger = logging.Discard()
	}
	return &FileProcessor{
		Language: lang,
		Workers:  workers,
		fs:       fs,
		logger:   logger,
	}
}

// ProcessFiles 解析全部文件。读取失败或收集失败会中止处理并返回错误；
// tree-sitter 无法解析的文件只记录警告并跳过。结果按文件 URL 排序。
func (fp *FileProcessor) ProcessFiles(ctx context.Context, files []SourceFile) ([]*model.FileContext, error) {
	if len(files) == 0 {
		return nil, nil
	}
	if _, err := model.GetLanguage(fp.Language); err != nil {
		return nil, errors.WithStack(err)
	}
	coll, err := collector.GetCollector(fp.Language)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	parent := ctx
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	filesChan := make(chan SourceFile)
	resultsChan := make(chan *model.FileContext, len(files))
	errChan := make(chan error, fp.Workers)
	var wg sync.WaitGroup

	for i := 0; i < fp.Workers; i++ {
		wg.Add(1)
		go fp.worker(ctx, cancel, &wg, coll, filesChan, resultsChan, errChan)
	}

	go func() {
		defer close(filesChan)
		for _, file := range files {
			select {
			case filesChan <- file:
			case <-ctx.Done():
				return
			}
		}
	}()

	go func() {
		wg.Wait()
		close(resultsChan)
		close(errChan)
	}()

	var contexts []*model.FileContext
	for fc := range resultsChan {
		contexts = append(contexts, fc)
	}
	if err := <-errChan; err != nil {
		return nil, err
	}
	if err := parent.Err(); err != nil {
		return nil, errors.WithStack(err)
	}

	sort.Slice(contexts, func(i, j int) bool {
		return contexts[i].FilePath < contexts[j].FilePath
	})
	return contexts, nil
}

// worker 每个 worker 持有自己的 parser
func (fp *FileProcessor) worker(ctx context.Context, cancel context.CancelFunc, wg *sync.WaitGroup, coll collector.Collector, filesChan <-chan SourceFile, resultsChan chan<- *model.FileContext, errChan chan<- error) {
	defer wg.Done()

	p, err := parser.NewParser(fp.Language)
	if err != nil {
		errChan <- errors.WithStack(err)
		cancel()
		return
	}
	defer p.Close()

	for file := range filesChan {
		fc, err := fp.processFile(ctx, p, coll, file)
		if err != nil {
			errChan <- err
			cancel()
			return
		}
		if fc != nil {
			resultsChan <- fc
		}
	}
}

func (fp *FileProcessor) processFile(ctx context.Context, p parser.Parser, coll collector.Collector, file SourceFile) (*model.FileContext, error) {
	sourceBytes, err := fp.fs.DownloadWithURL(ctx, file.URL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %v", file.URL)
	}

	tree, err := p.Parse(sourceBytes)
	if err != nil {
		fp.logger.Warn("skipping unparsable file", "url", file.URL, "error", err.Error())
		return nil, nil
	}
	defer tree.Close()

	rootNode := tree.RootNode()
	if rootNode.HasError() {
		fp.logger.Debug("syntax errors in file", "url", file.URL)
	}

	fc := model.NewFileContext(file.URL, file.RelPath, sourceBytes)
	if err := coll.CollectDefinitions(rootNode, fc); err != nil {
		return nil, errors.Wrapf(err, "failed to collect definitions in %v", file.URL)
	}
	return fc, nil
}
