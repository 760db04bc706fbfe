// Package inline splits block text into typed spans (plain, bold, italic,
// code, link, image). Each pass only rewrites plain spans, so spans typed by
// an earlier pass are never split again.
package inline

import (
	"fmt"
	"regexp"
	"strings"
)

// Tokenize runs the full inline pipeline over text: images, links, quote
// folding, then the bold, italic and code delimiters.
func Tokenize(text string) ([]Span, error) {
	if text == "" {
		return []Span{Plain("")}, nil
	}

	spans := []Span{Plain(text)}
	spans = SplitImages(spans)
	spans = SplitLinks(spans)
	spans = FoldQuotes(spans)

	var err error
	for _, pass := range delimiterPasses {
		spans, err = SplitDelimiter(spans, pass.delimiter, pass.kind)
		if err != nil {
			return nil, err
		}
	}

	return spans, nil
}

var delimiterPasses = []struct {
	delimiter string
	kind      Kind
}{
	{delimiter: "**", kind: KindBold},
	{delimiter: "_", kind: KindItalic},
	{delimiter: "`", kind: KindCode},
}

// SplitImages extracts ![alt](url) syntax from plain spans.
func SplitImages(spans []Span) []Span {
	return splitPattern(spans, imageRe, Image)
}

// SplitLinks extracts [text](url) syntax from plain spans.
func SplitLinks(spans []Span) []Span {
	return splitPattern(spans, linkRe, Link)
}

func splitPattern(spans []Span, re *regexp.Regexp, build func(text, url string) Span) []Span {
	out := make([]Span, 0, len(spans))
	for _, span := range spans {
		if span.Kind != KindPlain {
			out = append(out, span)
			continue
		}

		matches := findMatches(re, span.Text)
		if len(matches) == 0 {
			out = append(out, span)
			continue
		}

		cursor := 0
		for _, m := range matches {
			if before := span.Text[cursor:m.start]; before != "" {
				out = append(out, Plain(before))
			}
			out = append(out, build(m.text, m.url))
			cursor = m.end
		}
		if rest := span.Text[cursor:]; rest != "" {
			out = append(out, Plain(rest))
		}
	}
	return out
}

// FoldQuotes strips leading '>' markers from quoted lines of plain spans.
// Quoted lines are joined with a space into one span, which comes before a
// span holding the remaining lines.
func FoldQuotes(spans []Span) []Span {
	out := make([]Span, 0, len(spans))
	for _, span := range spans {
		if span.Kind != KindPlain {
			out = append(out, span)
			continue
		}

		var quoted, other []string
		for _, line := range strings.Split(span.Text, "\n") {
			if strings.HasPrefix(line, ">") {
				quoted = append(quoted, strings.TrimSpace(strings.TrimLeft(line, "> ")))
				continue
			}
			other = append(other, line)
		}

		if len(quoted) > 0 {
			out = append(out, Plain(strings.Join(quoted, " ")))
		}
		if len(other) > 0 {
			out = append(out, Plain(strings.Join(other, "\n")))
		}
	}
	return out
}

// SplitDelimiter splits plain spans on delimiter, typing every enclosed
// segment as kind. Empty enclosed segments are kept; empty plain segments
// are dropped. An odd number of delimiters fails with ErrUnbalancedDelimiter.
func SplitDelimiter(spans []Span, delimiter string, kind Kind) ([]Span, error) {
	out := make([]Span, 0, len(spans))
	for _, span := range spans {
		if span.Kind != KindPlain {
			out = append(out, span)
			continue
		}

		parts := strings.Split(span.Text, delimiter)
		if len(parts) == 1 {
			out = append(out, span)
			continue
		}
		if len(parts)%2 == 0 {
			return nil, fmt.Errorf("%w %q in %q", ErrUnbalancedDelimiter, delimiter, span.Text)
		}

		for i, part := range parts {
			if i%2 == 1 {
				out = append(out, Span{Kind: kind, Text: part})
				continue
			}
			if part != "" {
				out = append(out, Plain(part))
			}
		}
	}
	return out, nil
}
