// Package block segments a markdown document into blocks and classifies
// each block's structural type.
package block

import (
	"strconv"
	"strings"
)

// Type is the structural classification of a block.
type Type string

const (
	TypeParagraph     Type = "paragraph"
	TypeHeading       Type = "heading"
	TypeCode          Type = "code"
	TypeQuote         Type = "quote"
	TypeUnorderedList Type = "unordered_list"
	TypeOrderedList   Type = "ordered_list"
)

const (
	codeFence       = "```"
	maxHeadingLevel = 6
)

// Segment splits document on blank lines and returns the trimmed, non-empty
// blocks in document order.
func Segment(document string) []string {
	document = strings.ReplaceAll(document, "\r\n", "\n")

	var blocks []string
	for _, chunk := range strings.Split(document, "\n\n") {
		chunk = strings.TrimSpace(chunk)
		if chunk == "" {
			continue
		}
		blocks = append(blocks, chunk)
	}
	return blocks
}

// Classify returns the type of block. The first matching rule wins:
// heading, fenced code, quote, unordered list, ordered list, paragraph.
func Classify(block string) Type {
	if block == "" {
		return TypeParagraph
	}

	lines := strings.Split(block, "\n")
	switch {
	case block[0] == '#':
		return TypeHeading
	case len(block) >= 2*len(codeFence) && strings.HasPrefix(block, codeFence) && strings.HasSuffix(block, codeFence):
		return TypeCode
	case allHavePrefix(lines, ">"):
		return TypeQuote
	case allHavePrefix(lines, "-"):
		return TypeUnorderedList
	case isOrderedList(lines):
		return TypeOrderedList
	default:
		return TypeParagraph
	}
}

// HeadingLevel counts the leading '#' characters of block. It returns 0 when
// the run is not followed by a space, runs to the end of the block, or is
// longer than six.
func HeadingLevel(block string) int {
	count := 0
	for count < len(block) && block[count] == '#' {
		count++
	}

	if count == 0 || count > maxHeadingLevel || count >= len(block) || block[count] != ' ' {
		return 0
	}
	return count
}

// OrderedPrefix returns the marker expected at the start of line index i of
// an ordered list.
func OrderedPrefix(i int) string {
	return strconv.Itoa(i+1) + "."
}

func allHavePrefix(lines []string, prefix string) bool {
	for _, line := range lines {
		if !strings.HasPrefix(line, prefix) {
			return false
		}
	}
	return true
}

func isOrderedList(lines []string) bool {
	if len(lines) == 0 {
		return false
	}
	for i, line := range lines {
		if !strings.HasPrefix(line, OrderedPrefix(i)) {
			return false
		}
	}
	return true
}
