package site

import "strings"

const (
	titlePlaceholder   = "{{ Title }}"
	contentPlaceholder = "{{ Content }}"
)

// ApplyTemplate substitutes the title and content placeholders line by line,
// then points root-relative href and src attributes at basePath.
func ApplyTemplate(template, title, content, basePath string) string {
	lines := strings.Split(template, "\n")
	for i, line := range lines {
		line = strings.ReplaceAll(line, titlePlaceholder, title)
		lines[i] = strings.ReplaceAll(line, contentPlaceholder, content)
	}
	page := strings.Join(lines, "\n")

	base := normalizeBasePath(basePath)
	if base == "/" {
		return page
	}
	page = strings.ReplaceAll(page, `href="/`, `href="`+base)
	return strings.ReplaceAll(page, `src="/`, `src="`+base)
}

// normalizeBasePath makes path start and end with a slash.
func normalizeBasePath(path string) string {
	path = strings.TrimSpace(path)
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	if !strings.HasSuffix(path, "/") {
		path += "/"
	}
	return path
}
