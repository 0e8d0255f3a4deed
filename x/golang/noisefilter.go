package golang

import (
	"strings"

	"github.com/CodMac/go-treesitter-class-finder/model"
)

type NoiseFilter struct{}

func NewGoNoiseFilter() *NoiseFilter {
	return &NoiseFilter{}
}

// IsNoise 测试文件以及 testdata、vendor 目录下的名字
func (f *NoiseFilter) IsNoise(qn string) bool {
	if strings.HasSuffix(model.SimpleName(qn), "_test") {
		return true
	}
	for _, segment := range strings.Split(qn, ".") {
		if segment == "testdata" || segment == "vendor" {
			return true
		}
	}
	return false
}
