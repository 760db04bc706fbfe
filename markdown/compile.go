// Package markdown compiles a markdown document into an HTML node tree rooted
// at a div, one child per block.
package markdown

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rgonek/sitegen/block"
	"github.com/rgonek/sitegen/htmlnode"
	"github.com/rgonek/sitegen/inline"
)

// Errors surfaced by Compile and Render.
var (
	ErrUnbalancedDelimiter = inline.ErrUnbalancedDelimiter
	ErrUnknownKind         = inline.ErrUnknownKind
	ErrMissingValue        = htmlnode.ErrMissingValue
)

type state struct {
	index    int
	kind     block.Type
	warnings []Warning
}

// Compile converts document into a div containing one node per block.
func Compile(document string) (*htmlnode.Parent, error) {
	result, err := Convert(document)
	if err != nil {
		return nil, err
	}
	return result.Root, nil
}

// Convert is Compile with the warnings collected along the way.
func Convert(document string) (Result, error) {
	s := &state{}

	children := []htmlnode.Node{}
	for i, b := range block.Segment(document) {
		s.index = i
		s.kind = block.Classify(b)

		node, err := s.convertBlock(b)
		if err != nil {
			return Result{}, fmt.Errorf("block %d (%s): %w", i+1, s.kind, err)
		}
		children = append(children, node)
	}

	root, err := htmlnode.NewParent("div", children)
	if err != nil {
		return Result{}, err
	}

	return Result{
		Root:     root,
		Warnings: s.warnings,
	}, nil
}

// Render compiles document and serializes the resulting tree.
func Render(document string) (string, error) {
	root, err := Compile(document)
	if err != nil {
		return "", err
	}
	return root.HTML()
}

func (s *state) convertBlock(b string) (htmlnode.Node, error) {
	switch s.kind {
	case block.TypeParagraph:
		return s.convertParagraph(b)
	case block.TypeHeading:
		return s.convertHeading(b)
	case block.TypeCode:
		return s.convertCode(b)
	case block.TypeQuote:
		return s.convertQuote(b)
	case block.TypeUnorderedList:
		return s.convertList(b, "ul")
	case block.TypeOrderedList:
		return s.convertList(b, "ol")
	default:
		return nil, fmt.Errorf("unknown block type %q", s.kind)
	}
}

func (s *state) convertParagraph(b string) (htmlnode.Node, error) {
	text := strings.Join(strings.Fields(b), " ")
	children, err := inline.Children(text)
	if err != nil {
		return nil, err
	}
	return htmlnode.NewParent("p", children)
}

func (s *state) convertHeading(b string) (htmlnode.Node, error) {
	level := block.HeadingLevel(b)
	if level == 0 {
		s.addWarning(WarningHeadingLevelZero, "heading marker is not followed by a space, rendering as h0")
	}

	tag := "h" + strconv.Itoa(level)
	content := ""
	if level+1 < len(b) {
		content = strings.TrimSpace(b[level+1:])
	}

	if !inline.HasFormatting(content) {
		return htmlnode.Element(tag, content), nil
	}

	children, err := inline.Children(content)
	if err != nil {
		return nil, err
	}
	return htmlnode.NewParent(tag, children)
}

func (s *state) convertCode(b string) (htmlnode.Node, error) {
	lines := strings.Split(b, "\n")
	content := "\n"
	if len(lines) > 2 {
		content = strings.Join(lines[1:len(lines)-1], "\n") + "\n"
	}
	return htmlnode.NewParent("pre", []htmlnode.Node{htmlnode.Element("code", content)})
}

func (s *state) convertQuote(b string) (htmlnode.Node, error) {
	children, err := inline.Children(b)
	if err != nil {
		return nil, err
	}
	return htmlnode.NewParent("blockquote", children)
}

func (s *state) convertList(b, tag string) (htmlnode.Node, error) {
	items := []htmlnode.Node{}
	for _, line := range strings.Split(b, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		content, ok := stripListMarker(line)
		if !ok {
			s.addWarning(WarningDroppedListItem, fmt.Sprintf("no list marker in %q", line))
			continue
		}
		if content == "" {
			s.addWarning(WarningDroppedListItem, fmt.Sprintf("empty list item %q", line))
			continue
		}

		children, err := inline.Children(content)
		if err != nil {
			return nil, err
		}
		item, err := htmlnode.NewParent("li", children)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return htmlnode.NewParent(tag, items)
}

// stripListMarker removes a leading "-", "+", "*" or "N." marker from line
// and returns the trimmed remainder.
func stripListMarker(line string) (string, bool) {
	switch line[0] {
	case '-', '+', '*':
		return strings.TrimSpace(line[1:]), true
	}

	digits := 0
	for digits < len(line) && line[digits] >= '0' && line[digits] <= '9' {
		digits++
	}
	if digits == 0 || digits >= len(line) || line[digits] != '.' {
		return "", false
	}
	return strings.TrimSpace(line[digits+1:]), true
}

func (s *state) addWarning(warnType WarningType, message string) {
	s.warnings = append(s.warnings, Warning{
		Type:      warnType,
		Block:     s.index,
		BlockType: string(s.kind),
		Message:   message,
	})
}
