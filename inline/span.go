package inline

import (
	"errors"
	"fmt"

	"github.com/rgonek/sitegen/htmlnode"
)

var (
	// ErrUnbalancedDelimiter is returned when a plain span holds an unmatched delimiter.
	ErrUnbalancedDelimiter = errors.New("unbalanced delimiter")
	// ErrUnknownKind is returned when a span kind has no HTML mapping.
	ErrUnknownKind = errors.New("unknown span kind")
)

// Kind identifies the formatting of a span.
type Kind string

const (
	KindPlain  Kind = "plain"
	KindBold   Kind = "bold"
	KindItalic Kind = "italic"
	KindCode   Kind = "code"
	KindLink   Kind = "link"
	KindImage  Kind = "image"
)

// Span is a contiguous run of inline content. URL is only set for links and
// images.
type Span struct {
	Kind Kind
	Text string
	URL  string
}

// Plain returns an unformatted span.
func Plain(text string) Span { return Span{Kind: KindPlain, Text: text} }

// Bold returns a bold span.
func Bold(text string) Span { return Span{Kind: KindBold, Text: text} }

// Italic returns an italic span.
func Italic(text string) Span { return Span{Kind: KindItalic, Text: text} }

// Code returns an inline code span.
func Code(text string) Span { return Span{Kind: KindCode, Text: text} }

// Link returns a link span.
func Link(text, url string) Span { return Span{Kind: KindLink, Text: text, URL: url} }

// Image returns an image span; text is the alt text.
func Image(alt, url string) Span { return Span{Kind: KindImage, Text: alt, URL: url} }

func (s Span) String() string {
	if s.URL != "" {
		return fmt.Sprintf("Span(%s, %q, %s)", s.Kind, s.Text, s.URL)
	}
	return fmt.Sprintf("Span(%s, %q)", s.Kind, s.Text)
}

// ToHTMLNode maps a span onto a leaf node.
func ToHTMLNode(span Span) (htmlnode.Node, error) {
	switch span.Kind {
	case KindPlain:
		return htmlnode.Text(span.Text), nil
	case KindBold:
		return htmlnode.Element("b", span.Text), nil
	case KindItalic:
		return htmlnode.Element("i", span.Text), nil
	case KindCode:
		return htmlnode.Element("code", span.Text), nil
	case KindLink:
		return htmlnode.Element("a", span.Text, htmlnode.Attr("href", span.URL)), nil
	case KindImage:
		return htmlnode.Element("img", "",
			htmlnode.Attr("src", span.URL),
			htmlnode.Attr("alt", span.Text),
		), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, span.Kind)
	}
}

// ToHTMLNodes maps every span in order.
func ToHTMLNodes(spans []Span) ([]htmlnode.Node, error) {
	nodes := make([]htmlnode.Node, 0, len(spans))
	for _, span := range spans {
		node, err := ToHTMLNode(span)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, node)
	}
	return nodes, nil
}

// Children tokenizes text and maps the spans onto leaf nodes.
func Children(text string) ([]htmlnode.Node, error) {
	spans, err := Tokenize(text)
	if err != nil {
		return nil, err
	}
	return ToHTMLNodes(spans)
}
