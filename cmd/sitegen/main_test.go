package main

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	glog "github.com/goliatone/go-logger/glog"
	"github.com/rgonek/sitegen/commonmark"
	"github.com/rgonek/sitegen/site"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngineConfig(t *testing.T) {
	t.Run("builtin", func(t *testing.T) {
		engine, cfg, err := engineConfig(engineBuiltin)
		require.NoError(t, err)
		assert.Equal(t, site.EngineBuiltin, engine)
		assert.Equal(t, commonmark.Config{}, cfg)
	})

	t.Run("empty defaults to builtin", func(t *testing.T) {
		engine, _, err := engineConfig("")
		require.NoError(t, err)
		assert.Equal(t, site.EngineBuiltin, engine)
	})

	t.Run("commonmark", func(t *testing.T) {
		engine, cfg, err := engineConfig(" CommonMark ")
		require.NoError(t, err)
		assert.Equal(t, site.EngineGoldmark, engine)
		assert.Equal(t, commonmark.FlavorCommonMark, cfg.Flavor)
		assert.False(t, cfg.HeadingIDs)
	})

	t.Run("gfm", func(t *testing.T) {
		for _, name := range []string{engineGFM, engineGoldmark} {
			engine, cfg, err := engineConfig(name)
			require.NoError(t, err)
			assert.Equal(t, site.EngineGoldmark, engine)
			assert.Equal(t, commonmark.FlavorGFM, cfg.Flavor)
			assert.True(t, cfg.HeadingIDs)
		}
	})

	t.Run("unknown", func(t *testing.T) {
		_, _, err := engineConfig("pandoc")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "allowed: builtin, commonmark, gfm")
	})
}

func TestResolveConfigDefaults(t *testing.T) {
	opts, positional, err := parseOptions(nil, io.Discard)
	require.NoError(t, err)

	cfg, err := resolveConfig(opts, positional)
	require.NoError(t, err)
	assert.Equal(t, site.DefaultConfig(), cfg)
}

func TestResolveConfigLayers(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "sitegen.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte(`contentDir: docs
outputDir: dist
basePath: /from-file/
engine: goldmark
goldmark:
  flavor: commonmark
  hardWraps: true
`), 0o644))

	opts, positional, err := parseOptions([]string{"-config", configPath, "-out", "build"}, io.Discard)
	require.NoError(t, err)

	cfg, err := resolveConfig(opts, positional)
	require.NoError(t, err)
	assert.Equal(t, "docs", cfg.ContentDir)
	assert.Equal(t, "static", cfg.StaticDir)
	assert.Equal(t, "build", cfg.OutputDir)
	assert.Equal(t, "/from-file/", cfg.BasePath)
	assert.Equal(t, site.EngineGoldmark, cfg.Engine)
	assert.Equal(t, commonmark.FlavorCommonMark, cfg.Goldmark.Flavor)
	assert.True(t, cfg.Goldmark.HardWraps)
}

func TestResolveConfigEngineFlagOverridesFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "sitegen.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("engine: goldmark\ngoldmark:\n  flavor: commonmark\n"), 0o644))

	opts, positional, err := parseOptions([]string{"-config", configPath, "-engine", "gfm"}, io.Discard)
	require.NoError(t, err)

	cfg, err := resolveConfig(opts, positional)
	require.NoError(t, err)
	assert.Equal(t, commonmark.FlavorGFM, cfg.Goldmark.Flavor)
	assert.True(t, cfg.Goldmark.HeadingIDs)
}

func TestResolveConfigPositionalBasePath(t *testing.T) {
	opts, positional, err := parseOptions([]string{"-base", "/flag/", "/repo/"}, io.Discard)
	require.NoError(t, err)

	cfg, err := resolveConfig(opts, positional)
	require.NoError(t, err)
	assert.Equal(t, "/repo/", cfg.BasePath)

	_, err = resolveConfig(opts, []string{"/a/", "/b/"})
	require.Error(t, err)
}

func TestResolveConfigErrors(t *testing.T) {
	opts, _, err := parseOptions([]string{"-config", filepath.Join(t.TempDir(), "missing.yaml")}, io.Discard)
	require.NoError(t, err)
	_, err = resolveConfig(opts, nil)
	require.Error(t, err)

	badPath := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(badPath, []byte("contentDir: [oops"), 0o644))
	opts, _, err = parseOptions([]string{"-config", badPath}, io.Discard)
	require.NoError(t, err)
	_, err = resolveConfig(opts, nil)
	require.Error(t, err)
}

func writeSite(t *testing.T) string {
	t.Helper()

	root := t.TempDir()
	files := map[string]string{
		"template.html":    "<html><head><title>{{ Title }}</title></head><body>{{ Content }}</body></html>",
		"content/index.md": "# Home\n\nHello **there**",
		"static/site.css":  "body {}",
	}
	for name, body := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	}
	return root
}

func siteArgs(root string, extra ...string) []string {
	args := []string{
		"-content", filepath.Join(root, "content"),
		"-static", filepath.Join(root, "static"),
		"-out", filepath.Join(root, "public"),
		"-template", filepath.Join(root, "template.html"),
		"-log-level", "error",
	}
	return append(args, extra...)
}

func TestRunBuildsSite(t *testing.T) {
	root := writeSite(t)
	var stdout, stderr bytes.Buffer

	code := run(context.Background(), siteArgs(root), &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())

	assert.Contains(t, stdout.String(), "Built 1 pages")
	assert.Contains(t, stdout.String(), "copied 1 assets")

	html, err := os.ReadFile(filepath.Join(root, "public", "index.html"))
	require.NoError(t, err)
	assert.Equal(t, "<html><head><title>Home</title></head><body><div><h1>Home</h1><p>Hello <b>there</b></p></div></body></html>", string(html))
	assert.FileExists(t, filepath.Join(root, "public", "site.css"))
}

func TestRunFailures(t *testing.T) {
	tests := []struct {
		name  string
		setup func(t *testing.T, root string)
		args  []string
		want  string
	}{
		{
			name: "missing title",
			setup: func(t *testing.T, root string) {
				require.NoError(t, os.WriteFile(filepath.Join(root, "content", "bad.md"), []byte("no title"), 0o644))
			},
			want: "Error building site",
		},
		{
			name: "unknown engine",
			args: []string{"-engine", "pandoc"},
			want: "Invalid config",
		},
		{
			name: "unknown log format",
			args: []string{"-log-format", "xml"},
			want: "Invalid logging options",
		},
		{
			name: "relative base path",
			args: []string{"repo"},
			want: "Invalid config",
		},
		{
			name: "unknown flag",
			args: []string{"-nope"},
			want: "flag provided but not defined",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := writeSite(t)
			if tt.setup != nil {
				tt.setup(t, root)
			}
			var stdout, stderr bytes.Buffer

			code := run(context.Background(), siteArgs(root, tt.args...), &stdout, &stderr)
			assert.Equal(t, 1, code)
			assert.Contains(t, stderr.String(), tt.want)
		})
	}
}

func TestRunDump(t *testing.T) {
	path := filepath.Join(t.TempDir(), "page.md")
	require.NoError(t, os.WriteFile(path, []byte("#Oops\n\n- [docs](/docs)"), 0o644))
	var stdout, stderr bytes.Buffer

	code := run(context.Background(), []string{"-dump", path}, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())

	assert.Contains(t, stdout.String(), "h0")
	assert.Contains(t, stdout.String(), "href")
	assert.Contains(t, stdout.String(), "/docs")
	assert.Contains(t, stderr.String(), "heading_level_zero")
}

func TestRunDumpUnbalanced(t *testing.T) {
	path := filepath.Join(t.TempDir(), "page.md")
	require.NoError(t, os.WriteFile(path, []byte("**oops"), 0o644))
	var stdout, stderr bytes.Buffer

	code := run(context.Background(), []string{"-dump", path}, &stdout, &stderr)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "Error compiling file")
}

func TestNewLogger(t *testing.T) {
	logger, err := newLogger("debug", "json")
	require.NoError(t, err)
	require.NotNil(t, logger)
	logger.WithContext(context.Background()).Debug("logger.initialised")

	_, err = newLogger("loud", "console")
	require.Error(t, err)

	_, err = newLogger("info", "xml")
	require.Error(t, err)
}

func TestAdapterDelegatesToUnderlyingLogger(t *testing.T) {
	stub := &stubLogger{}
	adapted := wrap(stub)

	adapted.Trace("trace", "key", "value")
	adapted.Debug("debug")
	adapted.Info("info")
	adapted.Warn("warn")
	adapted.Error("error")
	adapted.Fatal("fatal")

	ctx := context.WithValue(context.Background(), struct{}{}, "value")
	adapted.WithContext(ctx)

	assert.Equal(t, []string{"trace", "debug", "info", "warn", "error", "fatal"}, stub.calls)
	require.Len(t, stub.contexts, 1)
	assert.Equal(t, ctx, stub.contexts[0])
}

type stubLogger struct {
	calls    []string
	contexts []context.Context
}

var _ glog.Logger = (*stubLogger)(nil)

func (s *stubLogger) Trace(string, ...any) { s.calls = append(s.calls, "trace") }
func (s *stubLogger) Debug(string, ...any) { s.calls = append(s.calls, "debug") }
func (s *stubLogger) Info(string, ...any)  { s.calls = append(s.calls, "info") }
func (s *stubLogger) Warn(string, ...any)  { s.calls = append(s.calls, "warn") }
func (s *stubLogger) Error(string, ...any) { s.calls = append(s.calls, "error") }
func (s *stubLogger) Fatal(string, ...any) { s.calls = append(s.calls, "fatal") }

func (s *stubLogger) WithContext(ctx context.Context) glog.Logger {
	s.contexts = append(s.contexts, ctx)
	return s
}
