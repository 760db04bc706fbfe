package site

import (
	"path/filepath"
	"strings"
	"testing"

	goerrors "github.com/goliatone/go-errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractTitle(t *testing.T) {
	tests := []struct {
		name     string
		markdown string
		want     string
	}{
		{name: "h1", markdown: "# Hello", want: "Hello"},
		{name: "surrounding space", markdown: "#   Hello  ", want: "Hello"},
		{name: "first heading wins", markdown: "intro\n## Sub\n# Main", want: "Sub"},
		{name: "bare marker", markdown: "#", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractTitle(tt.markdown)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractTitleMissing(t *testing.T) {
	_, err := ExtractTitle("no heading here\n  # indented")
	require.ErrorIs(t, err, ErrNoTitle)
}

func TestApplyTemplate(t *testing.T) {
	template := "<title>{{ Title }}</title>\n<body>{{ Content }}</body>\n<p>{{ Title }}</p>"
	got := ApplyTemplate(template, "Home", "<div>hi</div>", "/")
	assert.Equal(t, "<title>Home</title>\n<body><div>hi</div></body>\n<p>Home</p>", got)
}

func TestApplyTemplateBasePath(t *testing.T) {
	template := `<link href="/index.css"><a href="https://x/">x</a>{{ Content }}`
	content := `<img src="/images/a.png" alt="a"></img>`

	for _, base := range []string{"/repo", "/repo/", "repo"} {
		got := ApplyTemplate(template, "", content, base)
		assert.Equal(t, `<link href="/repo/index.css"><a href="https://x/">x</a><img src="/repo/images/a.png" alt="a"></img>`, got, base)
	}
}

func TestNormalizeBasePath(t *testing.T) {
	assert.Equal(t, "/", normalizeBasePath("/"))
	assert.Equal(t, "/", normalizeBasePath(""))
	assert.Equal(t, "/docs/", normalizeBasePath("docs"))
	assert.Equal(t, "/docs/", normalizeBasePath("/docs/"))
}

func TestConfigDefaults(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "content", cfg.ContentDir)
	assert.Equal(t, "static", cfg.StaticDir)
	assert.Equal(t, "public", cfg.OutputDir)
	assert.Equal(t, "template.html", cfg.TemplatePath)
	assert.Equal(t, "/", cfg.BasePath)
	assert.Equal(t, EngineBuiltin, cfg.Engine)
	require.NoError(t, cfg.Validate())
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{name: "output is cwd", mutate: func(c *Config) { c.OutputDir = "." }, field: "outputDir"},
		{name: "output is root", mutate: func(c *Config) { c.OutputDir = "/" }, field: "outputDir"},
		{name: "output is content", mutate: func(c *Config) { c.OutputDir = "content/" }, field: "outputDir"},
		{name: "output is static", mutate: func(c *Config) { c.OutputDir = "./static" }, field: "outputDir"},
		{name: "output escapes working dir", mutate: func(c *Config) { c.OutputDir = "../public" }, field: "outputDir"},
		{name: "output is parent dir", mutate: func(c *Config) { c.OutputDir = "site/../.." }, field: "outputDir"},
		{name: "output contains content", mutate: func(c *Config) {
			c.OutputDir = "site"
			c.ContentDir = "site/content"
		}, field: "outputDir"},
		{name: "output inside content", mutate: func(c *Config) { c.OutputDir = "content/public" }, field: "outputDir"},
		{name: "output contains static", mutate: func(c *Config) {
			c.OutputDir = "assets"
			c.StaticDir = "assets/static"
		}, field: "outputDir"},
		{name: "output inside static", mutate: func(c *Config) { c.OutputDir = "static/public" }, field: "outputDir"},
		{name: "output contains template", mutate: func(c *Config) {
			c.OutputDir = "theme"
			c.TemplatePath = "theme/template.html"
		}, field: "outputDir"},
		{name: "absolute output matches relative content", mutate: func(c *Config) {
			abs, err := filepath.Abs("content")
			if err == nil {
				c.OutputDir = abs
			}
		}, field: "outputDir"},
		{name: "relative base path", mutate: func(c *Config) { c.BasePath = "blog" }, field: "basePath"},
		{name: "unknown engine", mutate: func(c *Config) { c.Engine = Engine("pandoc") }, field: "engine"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.field)

			_, err = New(cfg)
			require.Error(t, err)
			assert.True(t, goerrors.IsCategory(err, goerrors.CategoryValidation), "got %v", err)
		})
	}
}

func TestConfigValidateAcceptsSiblingOutput(t *testing.T) {
	for _, out := range []string{"public", "content-public", "build/site", "static2"} {
		cfg := DefaultConfig()
		cfg.OutputDir = out
		assert.NoError(t, cfg.Validate(), out)
	}
}

func TestNewRenderer(t *testing.T) {
	r, err := NewRenderer(Config{Engine: EngineBuiltin})
	require.NoError(t, err)
	out, err := r.Render("**hi**")
	require.NoError(t, err)
	assert.Equal(t, "<div><p><b>hi</b></p></div>", out)

	r, err = NewRenderer(Config{Engine: EngineGoldmark})
	require.NoError(t, err)
	out, err = r.Render("**hi**")
	require.NoError(t, err)
	assert.Equal(t, "<p><strong>hi</strong></p>\n", out)

	_, err = NewRenderer(Config{Engine: "nope"})
	require.Error(t, err)
}

func TestParseFrontMatter(t *testing.T) {
	meta, body, err := parseFrontMatter([]byte("---\ntitle: Custom\ndraft: true\n---\n# Heading\n"))
	require.NoError(t, err)
	assert.Equal(t, "Custom", meta.Title)
	assert.True(t, meta.Draft)
	assert.Equal(t, "# Heading", strings.TrimSpace(string(body)))

	meta, body, err = parseFrontMatter([]byte("# Plain\n\nbody"))
	require.NoError(t, err)
	assert.Equal(t, pageMeta{}, meta)
	assert.Equal(t, "# Plain\n\nbody", strings.TrimSpace(string(body)))
}
