package config

import (
	"context"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/afs"
	"github.com/viant/afs/file"

	"github.com/CodMac/go-treesitter-class-finder/model"
)

func TestDefault(t *testing.T) {
	c := Default()
	assert.Equal(t, model.LangJava, c.Language)
	assert.Equal(t, ".java", c.Extension)
	assert.Equal(t, runtime.NumCPU(), c.Workers)
	assert.Equal(t, FormatText, c.Format)
	assert.False(t, c.SkipHidden)
	assert.False(t, c.SkipNoise)
	assert.NoError(t, c.Validate())
}

func TestLoad(t *testing.T) {
	var useCases = []struct {
		description string
		URL         string
		content     string
		expect      func(t *testing.T, c *Config)
		hasError    bool
	}{
		{
			description: "go language derives extension",
			URL:         "mem://localhost/config/case001/finder.yaml",
			content:     "language: go\nworkers: 3\nformat: jsonl\nskipHidden: true\nskipNoise: true\nlogLevel: debug\n",
			expect: func(t *testing.T, c *Config) {
				assert.Equal(t, model.LangGo, c.Language)
				assert.Equal(t, ".go", c.Extension)
				assert.Equal(t, 3, c.Workers)
				assert.Equal(t, FormatJSONL, c.Format)
				assert.True(t, c.SkipHidden)
				assert.True(t, c.SkipNoise)
				assert.Equal(t, "debug", c.LogLevel)
			},
		},
		{
			description: "explicit extension wins",
			URL:         "mem://localhost/config/case002/finder.yaml",
			content:     "extension: .kt\n",
			expect: func(t *testing.T, c *Config) {
				assert.Equal(t, model.LangJava, c.Language)
				assert.Equal(t, ".kt", c.Extension)
			},
		},
		{
			description: "malformed yaml",
			URL:         "mem://localhost/config/case003/finder.yaml",
			content:     "workers: [1, 2\n",
			hasError:    true,
		},
		{
			description: "missing file",
			URL:         "mem://localhost/config/case004/missing.yaml",
			hasError:    true,
		},
	}

	ctx := context.Background()
	fs := afs.New()
	for _, useCase := range useCases {
		if useCase.content != "" {
			require.NoError(t, fs.Upload(ctx, useCase.URL, file.DefaultFileOsMode, strings.NewReader(useCase.content)), useCase.description)
		}
		c, err := Load(ctx, fs, useCase.URL)
		if useCase.hasError {
			assert.Error(t, err, useCase.description)
			continue
		}
		require.NoError(t, err, useCase.description)
		useCase.expect(t, c)
	}
}

func TestConfig_Validate(t *testing.T) {
	c := Default()
	c.Format = "xml"
	assert.Error(t, c.Validate())

	c = Default()
	c.Language = "python"
	assert.Error(t, c.Validate())

	c = Default()
	c.Workers = -1
	assert.Error(t, c.Validate())

	for _, level := range []string{"debug", "INFO", "warn", "Warning", "error"} {
		c = Default()
		c.LogLevel = level
		assert.NoError(t, c.Validate(), level)
	}

	c = Default()
	c.LogLevel = "verbose"
	err := c.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported log level: verbose")
}
