package site

import (
	"bytes"

	"github.com/adrg/frontmatter"
)

// pageMeta is the optional front matter block at the top of a page.
type pageMeta struct {
	Title string `yaml:"title" json:"title" toml:"title"`
	Draft bool   `yaml:"draft" json:"draft" toml:"draft"`
}

// parseFrontMatter splits source into its front matter and markdown body.
// Sources without front matter are returned unchanged.
func parseFrontMatter(source []byte) (pageMeta, []byte, error) {
	var meta pageMeta
	body, err := frontmatter.Parse(bytes.NewReader(source), &meta)
	if err != nil {
		return pageMeta{}, nil, &frontMatterError{err: err}
	}
	return meta, body, nil
}
