package model

// FileContext 存储了单个源文件的解析结果
type FileContext struct {
	FilePath    string // 文件 URL
	RelPath     string // 相对扫描根目录的路径, 以 '/' 分隔
	PackageName string
	SourceBytes []byte

	// 文件内声明的所有类型, 按出现顺序
	Definitions []*CodeElement
}

// NewFileContext 初始化文件上下文
func NewFileContext(filePath, relPath string, sourceBytes []byte) *FileContext {
	return &FileContext{
		FilePath:    filePath,
		RelPath:     relPath,
		SourceBytes: sourceBytes,
	}
}

// AddDefinition 记录一个类型声明
func (fc *FileContext) AddDefinition(elem *CodeElement) {
	fc.Definitions = append(fc.Definitions, elem)
}

// QualifiedNames 返回文件内所有声明的限定名
func (fc *FileContext) QualifiedNames() []string {
	result := make([]string, 0, len(fc.Definitions))
	for _, def := range fc.Definitions {
		result = append(result, def.QualifiedName)
	}
	return result
}
