package output

import (
	"io"

	"github.com/francoispqt/gojay"

	"github.com/CodMac/go-treesitter-class-finder/model"
)

// Match 是 JSONL 输出中的一行; 只有源码解析得到的元素才带 Kind 与 Location
type Match struct {
	Name          string
	QualifiedName string
	Kind          string
	Path          string
	Location      *Location
}

// NewMatch 从索引元素构造输出行
func NewMatch(elem *model.CodeElement) *Match {
	m := &Match{
		Name:          elem.Name,
		QualifiedName: elem.QualifiedName,
		Kind:          string(elem.Kind),
		Path:          elem.Path,
	}
	if m.Name == "" {
		m.Name = model.SimpleName(elem.QualifiedName)
	}
	if elem.Location != nil {
		m.Location = (*Location)(elem.Location)
	}
	return m
}

// MarshalJSONObject 实现 gojay.MarshalerJSONObject
func (m *Match) MarshalJSONObject(enc *gojay.Encoder) {
	enc.StringKey("Name", m.Name)
	enc.StringKey("QualifiedName", m.QualifiedName)
	enc.StringKeyOmitEmpty("Kind", m.Kind)
	enc.StringKeyOmitEmpty("Path", m.Path)
	enc.ObjectKeyOmitEmpty("Location", m.Location)
}

// IsNil 实现 gojay.MarshalerJSONObject
func (m *Match) IsNil() bool { return m == nil }

// Location 是 model.Location 的 gojay 编码形式
type Location model.Location

func (l *Location) MarshalJSONObject(enc *gojay.Encoder) {
	enc.IntKey("StartLine", l.StartLine)
	enc.IntKey("EndLine", l.EndLine)
	enc.IntKey("StartColumn", l.StartColumn)
	enc.IntKey("EndColumn", l.EndColumn)
}

func (l *Location) IsNil() bool { return l == nil }

// JSONLWriter 每行输出一个 JSON 对象
type JSONLWriter struct {
	w io.Writer
}

func NewJSONLWriter(w io.Writer) *JSONLWriter {
	return &JSONLWriter{w: w}
}

// Write 按给定顺序输出每个元素
func (w *JSONLWriter) Write(elements []*model.CodeElement) error {
	for _, elem := range elements {
		data, err := gojay.MarshalJSONObject(NewMatch(elem))
		if err != nil {
			return err
		}
		if _, err = w.w.Write(append(data, '\n')); err != nil {
			return err
		}
	}
	return nil
}
