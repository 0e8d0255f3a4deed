package java

import "github.com/CodMac/go-treesitter-class-finder/model"

type NoiseFilter struct{}

func NewJavaNoiseFilter() *NoiseFilter {
	return &NoiseFilter{}
}

// IsNoise package-info / module-info 只是元数据文件，不是类
func (f *NoiseFilter) IsNoise(qn string) bool {
	switch model.SimpleName(qn) {
	case "package-info", "module-info":
		return true
	}
	return false
}
