package finder_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CodMac/go-treesitter-class-finder/config"
	"github.com/CodMac/go-treesitter-class-finder/finder"
	"github.com/CodMac/go-treesitter-class-finder/matcher"
	"github.com/CodMac/go-treesitter-class-finder/model"
	"github.com/CodMac/go-treesitter-class-finder/source"
	_ "github.com/CodMac/go-treesitter-class-finder/x/java"
)

func TestNew_Directory(t *testing.T) {
	root := t.TempDir()
	for _, relPath := range []string{"FooBar.java", "depth1/FooBar.java", "depth1/depth22/SameFooBar.java", "YetAnotherFoolBar.java"} {
		location := filepath.Join(root, filepath.FromSlash(relPath))
		require.NoError(t, os.MkdirAll(filepath.Dir(location), 0755))
		require.NoError(t, os.WriteFile(location, nil, 0644))
	}

	f, err := finder.New(context.Background(), source.Directory, root, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 4, f.Index().Len())

	var testCases = []struct {
		pattern string
		expect  []string
	}{
		{pattern: "SFB", expect: []string{"depth1.depth22.SameFooBar"}},
		{pattern: "FoBa", expect: []string{"FooBar", "depth1.FooBar", "depth1.depth22.SameFooBar", "YetAnotherFoolBar"}},
		{pattern: "fb", expect: []string{"FooBar", "depth1.FooBar", "depth1.depth22.SameFooBar", "YetAnotherFoolBar"}},
		{pattern: "YAFB", expect: []string{"YetAnotherFoolBar"}},
		{pattern: "Qux", expect: []string{}},
	}
	for _, testCase := range testCases {
		actual, err := f.Search(testCase.pattern)
		require.NoError(t, err, testCase.pattern)
		assert.ElementsMatch(t, testCase.expect, actual, testCase.pattern)
	}
}

func TestNew_Errors(t *testing.T) {
	_, err := finder.New(context.Background(), source.Directory, filepath.Join(t.TempDir(), "missing"), nil, nil)
	assert.Error(t, err)

	_, err = finder.New(context.Background(), source.Kind(""), t.TempDir(), nil, nil)
	assert.ErrorIs(t, err, source.ErrInvalidMode)

	_, err = finder.New(context.Background(), source.Directory, t.TempDir(), &config.Config{Format: "xml"}, nil)
	assert.Error(t, err)
}

func TestFinder_Search(t *testing.T) {
	f := finder.NewWithNames("ru.ifmo.rain.FooBar", "FooBar", "a.b.FooBarBaz", "Foo.Bar")
	actual, err := f.Search("FoBa")
	require.NoError(t, err)
	assert.Equal(t, []string{"FooBar", "ru.ifmo.rain.FooBar", "a.b.FooBarBaz"}, actual)

	_, err = f.Search("Foo.Bar")
	assert.ErrorIs(t, err, matcher.ErrUnrecognizedSymbol)
}

func TestFinder_SearchElements(t *testing.T) {
	root := t.TempDir()
	location := filepath.Join(root, "com", "example", "User.java")
	require.NoError(t, os.MkdirAll(filepath.Dir(location), 0755))
	require.NoError(t, os.WriteFile(location, []byte("package com.example;\n\npublic record UserId(String value) {}\n"), 0644))

	f, err := finder.New(context.Background(), source.Sources, root, nil, nil)
	require.NoError(t, err)

	elements, err := f.SearchElements("UI")
	require.NoError(t, err)
	require.Len(t, elements, 1)
	assert.Equal(t, "com.example.UserId", elements[0].QualifiedName)
	assert.Equal(t, model.Record, elements[0].Kind)
	assert.Equal(t, "com/example/User.java", elements[0].Path)
	require.NotNil(t, elements[0].Location)
	assert.Equal(t, 3, elements[0].Location.StartLine)

	names, err := finder.NewWithNames("a.UserId", "UserId").SearchElements("UI")
	require.NoError(t, err)
	assert.Equal(t, []*model.CodeElement{
		{Name: "UserId", QualifiedName: "UserId"},
		{Name: "UserId", QualifiedName: "a.UserId"},
	}, names)

	_, err = f.SearchElements("U?")
	assert.ErrorIs(t, err, matcher.ErrUnrecognizedSymbol)
}
