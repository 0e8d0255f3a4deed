package source

import (
	"bufio"
	"bytes"
	"context"
	"strings"

	"github.com/pkg/errors"
	"github.com/viant/afs"

	"github.com/CodMac/go-treesitter-class-finder/model"
)

// list 读取每行一个限定名的文本文件, 忽略空行
type list struct {
	fs  afs.Service
	URL string
}

func (l *list) Load(ctx context.Context, add func(elem *model.CodeElement)) error {
	data, err := l.fs.DownloadWithURL(ctx, l.URL)
	if err != nil {
		return errors.Wrapf(err, "failed to read %v", l.URL)
	}
	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		add(&model.CodeElement{Name: model.SimpleName(line), QualifiedName: line})
	}
	if err := scanner.Err(); err != nil {
		return errors.Wrapf(err, "failed to scan %v", l.URL)
	}
	return nil
}
