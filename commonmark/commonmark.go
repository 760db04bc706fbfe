// Package commonmark renders markdown to HTML with goldmark. It is the
// standards-compliant alternative to the markdown package's block compiler.
package commonmark

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

// Converter converts markdown to an HTML fragment.
type Converter struct {
	config Config
	md     goldmark.Markdown
}

// New creates a new Converter with the given config.
func New(config Config) (*Converter, error) {
	cfg := config.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var opts []goldmark.Option
	if cfg.Flavor == FlavorGFM {
		opts = append(opts, goldmark.WithExtensions(extension.GFM))
	}
	if cfg.HeadingIDs {
		opts = append(opts, goldmark.WithParserOptions(parser.WithAutoHeadingID()))
	}

	var rendererOpts []goldmark.Option
	if cfg.HardWraps {
		rendererOpts = append(rendererOpts, goldmark.WithRendererOptions(html.WithHardWraps()))
	}
	if cfg.Unsafe {
		rendererOpts = append(rendererOpts, goldmark.WithRendererOptions(html.WithUnsafe()))
	}

	return &Converter{
		config: cfg,
		md:     goldmark.New(append(opts, rendererOpts...)...),
	}, nil
}

// Config returns the effective configuration.
func (c *Converter) Config() Config {
	return c.config
}

// Convert renders markdown to HTML.
func (c *Converter) Convert(markdown string) (string, error) {
	var buf bytes.Buffer
	if err := c.md.Convert([]byte(markdown), &buf); err != nil {
		return "", fmt.Errorf("failed to render markdown: %w", err)
	}
	return buf.String(), nil
}

// Render implements the page renderer contract.
func (c *Converter) Render(markdown string) (string, error) {
	return c.Convert(markdown)
}
