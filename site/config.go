package site

import (
	"path/filepath"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/rgonek/sitegen/commonmark"
)

// Engine selects the markdown renderer used for page bodies.
type Engine string

const (
	EngineBuiltin  Engine = "builtin"
	EngineGoldmark Engine = "goldmark"
)

// Config configures a site build.
type Config struct {
	ContentDir   string            `json:"contentDir,omitempty" yaml:"contentDir,omitempty"`
	StaticDir    string            `json:"staticDir,omitempty" yaml:"staticDir,omitempty"`
	OutputDir    string            `json:"outputDir,omitempty" yaml:"outputDir,omitempty"`
	TemplatePath string            `json:"templatePath,omitempty" yaml:"templatePath,omitempty"`
	BasePath     string            `json:"basePath,omitempty" yaml:"basePath,omitempty"`
	Engine       Engine            `json:"engine,omitempty" yaml:"engine,omitempty"`
	Goldmark     commonmark.Config `json:"goldmark,omitempty" yaml:"goldmark,omitempty"`
}

// DefaultConfig returns the configuration used when nothing is overridden.
func DefaultConfig() Config {
	return Config{}.applyDefaults()
}

func (c Config) applyDefaults() Config {
	if c.ContentDir == "" {
		c.ContentDir = "content"
	}
	if c.StaticDir == "" {
		c.StaticDir = "static"
	}
	if c.OutputDir == "" {
		c.OutputDir = "public"
	}
	if c.TemplatePath == "" {
		c.TemplatePath = "template.html"
	}
	if c.BasePath == "" {
		c.BasePath = "/"
	}
	if c.Engine == "" {
		c.Engine = EngineBuiltin
	}
	return c
}

// Validate checks that config values are valid.
func (c Config) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.ContentDir, validation.Required),
		validation.Field(&c.StaticDir, validation.Required),
		validation.Field(&c.OutputDir, validation.Required, validation.By(c.safeOutputDir)),
		validation.Field(&c.TemplatePath, validation.Required),
		validation.Field(&c.BasePath, validation.Required, validation.By(absolutePath)),
		validation.Field(&c.Engine, validation.Required, validation.In(EngineBuiltin, EngineGoldmark)),
	)
}

// safeOutputDir rejects output directories that CopyStatic must never remove
// and that GeneratePages must never walk into.
func (c Config) safeOutputDir(value any) error {
	dir, _ := value.(string)
	if dir == "" {
		return nil
	}

	clean := filepath.Clean(dir)
	if clean == "." || clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return validation.NewError("site.config.output_dir_unsafe", "must be below the working directory")
	}

	out, err := filepath.Abs(clean)
	if err != nil {
		return validation.NewError("site.config.output_dir_invalid", err.Error())
	}
	if out == filepath.Dir(out) {
		return validation.NewError("site.config.output_dir_unsafe", "must not be the filesystem root")
	}

	sources := []struct {
		name string
		path string
	}{
		{name: "content directory", path: c.ContentDir},
		{name: "static directory", path: c.StaticDir},
		{name: "template", path: c.TemplatePath},
	}
	for _, src := range sources {
		if src.path == "" {
			continue
		}
		abs, err := filepath.Abs(src.path)
		if err != nil {
			return validation.NewError("site.config.output_dir_invalid", err.Error())
		}
		if within(out, abs) {
			return validation.NewError("site.config.output_dir_unsafe", "must not contain the "+src.name)
		}
		if src.name != "template" && within(abs, out) {
			return validation.NewError("site.config.output_dir_unsafe", "must not be inside the "+src.name)
		}
	}
	return nil
}

// within reports whether path equals dir or lies below it. Both must be
// absolute and clean.
func within(dir, path string) bool {
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

func absolutePath(value any) error {
	path, _ := value.(string)
	if path != "" && !strings.HasPrefix(path, "/") {
		return validation.NewError("site.config.base_path_relative", "must start with /")
	}
	return nil
}
