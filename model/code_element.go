package model

import "strings"

// --- 代码元素类型 (Code Element Kinds) ---

// ElementKind 是表示类型声明种类的字符串常量
type ElementKind string

const (
	Class       ElementKind = "CLASS"      // 对应类 (Java)
	Interface   ElementKind = "INTERFACE"  // 对应接口 (Java, Go)
	Enum        ElementKind = "ENUM"       // 对应枚举 (Java)
	Record      ElementKind = "RECORD"     // 对应记录类 (Java 16+)
	KAnnotation ElementKind = "ANNOTATION" // 对应注解类型定义 (Java)
	Struct      ElementKind = "STRUCT"     // 对应结构体 (Go)
	Type        ElementKind = "TYPE"       // 对应其余自定义类型或别名 (Go)
)

// Location 描述了代码元素在源码中的位置
type Location struct {
	FilePath    string `json:"FilePath"`
	StartLine   int    `json:"StartLine"`
	EndLine     int    `json:"EndLine"`
	StartColumn int    `json:"StartColumn"`
	EndColumn   int    `json:"EndColumn"`
}

// CodeElement 描述了源码中声明的一个类型
type CodeElement struct {
	Kind          ElementKind `json:"Kind"`               // Kind: 声明种类 (e.g., CLASS, STRUCT)
	Name          string      `json:"Name"`               // Name: 短名称, 即 SimpleName (e.g., "FooBar")
	QualifiedName string      `json:"QualifiedName"`      // QualifiedName: 完整限定名称 (e.g., "ru.ifmo.rain.FooBar")
	Path          string      `json:"Path"`               // Path: 所在文件相对根目录的路径
	Location      *Location   `json:"Location,omitempty"` // Location: 声明位置
}

// SimpleName 返回限定名最后一个 '.' 之后的部分；没有 '.' 时返回整个字符串。
func SimpleName(qualifiedName string) string {
	if p := strings.LastIndexByte(qualifiedName, '.'); p != -1 {
		return qualifiedName[p+1:]
	}
	return qualifiedName
}

// BuildQualifiedName 用 '.' 连接父级限定名与短名称
func BuildQualifiedName(parentQN, name string) string {
	if parentQN == "" || parentQN == "." {
		return name
	}
	return parentQN + "." + name
}
