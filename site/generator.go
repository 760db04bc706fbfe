// Package site builds a static site: it copies static assets into the output
// directory and renders every markdown page under the content directory
// through an HTML template.
package site

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

// Stats summarizes the work done by a build.
type Stats struct {
	Pages         int   `json:"pages"`
	Drafts        int   `json:"drafts"`
	Assets        int   `json:"assets"`
	AssetFailures int   `json:"assetFailures"`
	Bytes         int64 `json:"bytes"`
}

func (s Stats) add(other Stats) Stats {
	s.Pages += other.Pages
	s.Drafts += other.Drafts
	s.Assets += other.Assets
	s.AssetFailures += other.AssetFailures
	s.Bytes += other.Bytes
	return s
}

// Page describes one processed markdown file.
type Page struct {
	Source string
	Output string
	Title  string
	Draft  bool
	Bytes  int
}

// Generator renders a content tree into an output directory.
type Generator struct {
	config   Config
	renderer Renderer
	logger   Logger
}

// Option customizes a Generator.
type Option func(*Generator)

// WithLogger sets the logger used for progress and per-file failures.
func WithLogger(logger Logger) Option {
	return func(g *Generator) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// WithRenderer overrides the renderer selected by Config.Engine.
func WithRenderer(renderer Renderer) Option {
	return func(g *Generator) {
		if renderer != nil {
			g.renderer = renderer
		}
	}
}

// New creates a Generator with the given config.
func New(config Config, opts ...Option) (*Generator, error) {
	cfg := config.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, wrapConfigError(err)
	}

	g := &Generator{
		config: cfg,
		logger: NoOp(),
	}
	for _, opt := range opts {
		opt(g)
	}

	if g.renderer == nil {
		renderer, err := NewRenderer(cfg)
		if err != nil {
			return nil, wrapConfigError(err)
		}
		g.renderer = renderer
	}

	return g, nil
}

// Config returns the effective configuration.
func (g *Generator) Config() Config {
	return g.config
}

// Build copies static assets and then generates every page.
func (g *Generator) Build(ctx context.Context) (Stats, error) {
	start := time.Now()

	stats, err := g.CopyStatic(ctx)
	if err != nil {
		return stats, err
	}

	pages, err := g.GeneratePages(ctx)
	stats = stats.add(pages)
	if err != nil {
		return stats, err
	}

	g.logger.WithContext(ctx).Info("site built",
		"pages", stats.Pages,
		"drafts", stats.Drafts,
		"assets", stats.Assets,
		"asset_failures", stats.AssetFailures,
		"size", humanize.Bytes(uint64(stats.Bytes)),
		"elapsed", time.Since(start).Round(time.Millisecond),
	)
	return stats, nil
}

// CopyStatic recreates the output directory and copies the static tree into
// it. Entries that fail to copy are logged and counted; they do not stop the
// copy.
func (g *Generator) CopyStatic(ctx context.Context) (Stats, error) {
	log := g.logger.WithContext(ctx)

	var stats Stats
	if err := checkContext(ctx); err != nil {
		return stats, err
	}

	out := g.config.OutputDir
	if err := os.RemoveAll(out); err != nil {
		return stats, wrapStaticError(err, "remove output directory")
	}
	if err := os.MkdirAll(out, 0o755); err != nil {
		return stats, wrapStaticError(err, "create output directory")
	}

	src := g.config.StaticDir
	info, err := os.Stat(src)
	if errors.Is(err, fs.ErrNotExist) {
		log.Warn("static directory not found, nothing to copy", "dir", src)
		return stats, nil
	}
	if err != nil {
		return stats, wrapStaticError(err, "read static directory")
	}
	if !info.IsDir() {
		return stats, wrapStaticError(fmt.Errorf("%s is not a directory", src), "read static directory")
	}

	err = filepath.WalkDir(src, func(path string, d fs.DirEntry, walkErr error) error {
		if err := checkContext(ctx); err != nil {
			return err
		}
		if walkErr != nil {
			log.Error("failed to read static entry", "path", path, "error", walkErr)
			stats.AssetFailures++
			return nil
		}

		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		dest := filepath.Join(out, rel)

		if d.IsDir() {
			if err := os.MkdirAll(dest, 0o755); err != nil {
				log.Error("failed to create directory", "path", dest, "error", err)
				stats.AssetFailures++
				return fs.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			log.Debug("skipping irregular static entry", "path", path)
			return nil
		}

		n, err := copyFile(path, dest)
		if err != nil {
			log.Error("failed to copy static file", "from", path, "to", dest, "error", err)
			stats.AssetFailures++
			return nil
		}

		log.Debug("copied static file", "from", path, "to", dest, "size", humanize.Bytes(uint64(n)))
		stats.Assets++
		stats.Bytes += n
		return nil
	})
	if err != nil {
		return stats, wrapStaticError(err, "copy static files")
	}

	return stats, nil
}

// GeneratePages renders every .md file under the content directory into the
// matching .html path under the output directory. Draft pages are skipped.
func (g *Generator) GeneratePages(ctx context.Context) (Stats, error) {
	var stats Stats

	template, err := g.readTemplate()
	if err != nil {
		return stats, err
	}

	root := g.config.ContentDir
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if err := checkContext(ctx); err != nil {
			return err
		}
		if walkErr != nil {
			return wrapPageError(walkErr, path)
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return wrapPageError(err, path)
		}
		dest := filepath.Join(g.config.OutputDir, rel)

		if d.IsDir() {
			if err := os.MkdirAll(dest, 0o755); err != nil {
				return wrapPageError(err, path)
			}
			return nil
		}
		if filepath.Ext(path) != ".md" {
			return nil
		}

		page, err := g.generate(ctx, template, path, strings.TrimSuffix(dest, ".md")+".html")
		if err != nil {
			return err
		}
		if page.Draft {
			stats.Drafts++
			return nil
		}
		stats.Pages++
		stats.Bytes += int64(page.Bytes)
		return nil
	})
	if err != nil {
		return stats, err
	}

	return stats, nil
}

// GeneratePage renders the markdown file at from into dest using the
// configured template.
func (g *Generator) GeneratePage(ctx context.Context, from, dest string) (Page, error) {
	if err := checkContext(ctx); err != nil {
		return Page{}, err
	}

	template, err := g.readTemplate()
	if err != nil {
		return Page{}, err
	}
	return g.generate(ctx, template, from, dest)
}

func (g *Generator) generate(ctx context.Context, template, from, dest string) (Page, error) {
	log := g.logger.WithContext(ctx)

	source, err := os.ReadFile(from)
	if err != nil {
		return Page{}, wrapPageError(err, from)
	}

	meta, body, err := parseFrontMatter(source)
	if err != nil {
		return Page{}, wrapPageError(err, from)
	}

	page := Page{Source: from, Output: dest, Draft: meta.Draft}
	if meta.Draft {
		log.Info("skipping draft", "page", from)
		return page, nil
	}

	content, err := g.renderer.Render(string(body))
	if err != nil {
		return Page{}, wrapPageError(&renderError{err: err}, from)
	}

	title := meta.Title
	if title == "" {
		title, err = ExtractTitle(string(body))
		if err != nil {
			return Page{}, wrapPageError(err, from)
		}
	}
	page.Title = title

	html := ApplyTemplate(template, title, content, g.config.BasePath)
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return Page{}, wrapPageError(err, from)
	}
	if err := os.WriteFile(dest, []byte(html), 0o644); err != nil {
		return Page{}, wrapPageError(err, from)
	}
	page.Bytes = len(html)

	log.Info("generated page", "from", from, "to", dest, "title", title, "size", humanize.Bytes(uint64(page.Bytes)))
	return page, nil
}

func (g *Generator) readTemplate() (string, error) {
	data, err := os.ReadFile(g.config.TemplatePath)
	if err != nil {
		return "", wrapTemplateError(err, g.config.TemplatePath)
	}
	return string(data), nil
}

func copyFile(src, dst string) (n int64, err error) {
	in, err := os.Open(src)
	if err != nil {
		return 0, err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return 0, err
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	return io.Copy(out, in)
}
