package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSimpleName(t *testing.T) {
	var testCases = []struct {
		qualified string
		expected  string
	}{
		{"FooBar", "FooBar"},
		{"ru.ifmo.rain.FooBar", "FooBar"},
		{"in.FooBar.middle", "middle"},
		{"trailing.", ""},
		{"", ""},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, SimpleName(tc.qualified), tc.qualified)
	}
}

func TestBuildQualifiedName(t *testing.T) {
	assert.Equal(t, "Outer", BuildQualifiedName("", "Outer"))
	assert.Equal(t, "Outer", BuildQualifiedName(".", "Outer"))
	assert.Equal(t, "com.example.Outer.Inner", BuildQualifiedName("com.example.Outer", "Inner"))
}

func TestLanguage_Extension(t *testing.T) {
	assert.Equal(t, ".java", LangJava.Extension())
	assert.Equal(t, ".go", LangGo.Extension())
	assert.False(t, Language("python").IsValid())
}
