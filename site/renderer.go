package site

import (
	"fmt"

	"github.com/rgonek/sitegen/commonmark"
	"github.com/rgonek/sitegen/markdown"
)

// Renderer turns a markdown page body into an HTML fragment.
type Renderer interface {
	Render(markdown string) (string, error)
}

// BuiltinRenderer renders with the block compiler in package markdown.
type BuiltinRenderer struct{}

// Render implements Renderer.
func (BuiltinRenderer) Render(document string) (string, error) {
	return markdown.Render(document)
}

// NewRenderer returns the renderer selected by cfg.Engine.
func NewRenderer(cfg Config) (Renderer, error) {
	switch cfg.Engine {
	case EngineBuiltin, "":
		return BuiltinRenderer{}, nil
	case EngineGoldmark:
		conv, err := commonmark.New(cfg.Goldmark)
		if err != nil {
			return nil, fmt.Errorf("goldmark engine: %w", err)
		}
		return conv, nil
	default:
		return nil, fmt.Errorf("unknown engine %q", cfg.Engine)
	}
}
