package output

import (
	"bufio"
	"io"

	"github.com/pkg/errors"

	"github.com/CodMac/go-treesitter-class-finder/config"
	"github.com/CodMac/go-treesitter-class-finder/model"
)

// Writer 把有序的搜索结果写到输出流
type Writer interface {
	Write(elements []*model.CodeElement) error
}

// TextWriter 每行输出一个限定名
type TextWriter struct {
	w io.Writer
}

func NewTextWriter(w io.Writer) *TextWriter {
	return &TextWriter{w: w}
}

func (w *TextWriter) Write(elements []*model.CodeElement) error {
	buffered := bufio.NewWriter(w.w)
	for _, elem := range elements {
		if _, err := buffered.WriteString(elem.QualifiedName + "\n"); err != nil {
			return err
		}
	}
	return buffered.Flush()
}

// NewWriter 根据输出格式创建 Writer
func NewWriter(format string, w io.Writer) (Writer, error) {
	switch format {
	case config.FormatText, "":
		return NewTextWriter(w), nil
	case config.FormatJSONL:
		return NewJSONLWriter(w), nil
	}
	return nil, errors.Errorf("unsupported output format: %v", format)
}
