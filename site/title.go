package site

import (
	"errors"
	"strings"
)

// ErrNoTitle is returned when a document has no heading line.
var ErrNoTitle = errors.New("no title found")

// ExtractTitle returns the text of the first line starting with '#', without
// its two-byte marker prefix.
func ExtractTitle(markdown string) (string, error) {
	for _, line := range strings.Split(markdown, "\n") {
		if !strings.HasPrefix(line, "#") {
			continue
		}
		if len(line) < 2 {
			return "", nil
		}
		return strings.TrimSpace(line[2:]), nil
	}
	return "", ErrNoTitle
}
