// Package htmlnode models the HTML element tree produced by the markdown
// compiler. A Node is either a Leaf (optional tag plus text value) or a
// Parent (tag plus ordered children); no other variants exist.
package htmlnode

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidTag is returned when a Parent is built without a tag.
	ErrInvalidTag = errors.New("parent node requires a tag")
	// ErrInvalidChildren is returned when a Parent is built with a nil children slice.
	ErrInvalidChildren = errors.New("parent node requires a children slice")
	// ErrNullChild is returned when a Parent receives a nil child.
	ErrNullChild = errors.New("parent node cannot have a nil child")
	// ErrLeafHasChildren is returned when a Leaf is built with children.
	ErrLeafHasChildren = errors.New("leaf node cannot have children")
	// ErrMissingValue is returned when a tagged Leaf without a value is serialized.
	ErrMissingValue = errors.New("leaf node requires a value")
)

// Node is an element of the HTML tree. Implementations are *Leaf and *Parent.
type Node interface {
	// HTML serializes the node and its descendants.
	HTML() (string, error)
	// Equal reports whether other has the same tag, value, children and attributes.
	Equal(other Node) bool
	fmt.Stringer

	sealed()
}

// Leaf is a node without children. An empty tag means the value is emitted
// verbatim with no surrounding element.
type Leaf struct {
	tag      string
	value    string
	hasValue bool
	attrs    *Attributes
}

// LeafOption configures NewLeaf.
type LeafOption func(*leafOptions)

type leafOptions struct {
	value    string
	hasValue bool
	attrs    []Attribute
	children []Node
}

// WithValue sets the text value of a leaf.
func WithValue(value string) LeafOption {
	return func(o *leafOptions) {
		o.value = value
		o.hasValue = true
	}
}

// WithAttrs appends attributes to a leaf, in order.
func WithAttrs(attrs ...Attribute) LeafOption {
	return func(o *leafOptions) {
		o.attrs = append(o.attrs, attrs...)
	}
}

// WithChildren records children for a leaf, which NewLeaf rejects when any
// are given.
func WithChildren(children ...Node) LeafOption {
	return func(o *leafOptions) {
		o.children = append(o.children, children...)
	}
}

// NewLeaf builds a leaf node. Leaves built without WithValue fail to
// serialize unless tag is empty.
func NewLeaf(tag string, opts ...LeafOption) (*Leaf, error) {
	var o leafOptions
	for _, opt := range opts {
		opt(&o)
	}

	if len(o.children) > 0 {
		return nil, fmt.Errorf("%w: <%s> given %d children", ErrLeafHasChildren, tag, len(o.children))
	}

	leaf := &Leaf{
		tag:      tag,
		value:    o.value,
		hasValue: o.hasValue,
	}
	if len(o.attrs) > 0 {
		leaf.attrs = NewAttributes(o.attrs...)
	}

	return leaf, nil
}

// Text returns an untagged leaf whose value is emitted verbatim.
func Text(value string) *Leaf {
	return &Leaf{value: value, hasValue: true}
}

// Element returns a tagged leaf carrying value.
func Element(tag, value string, attrs ...Attribute) *Leaf {
	leaf := &Leaf{tag: tag, value: value, hasValue: true}
	if len(attrs) > 0 {
		leaf.attrs = NewAttributes(attrs...)
	}
	return leaf
}

// Tag returns the element name, or "" for raw text.
func (l *Leaf) Tag() string { return l.tag }

// Value returns the text value and whether one was set.
func (l *Leaf) Value() (string, bool) { return l.value, l.hasValue }

// Attrs returns the leaf attributes, which may be nil.
func (l *Leaf) Attrs() *Attributes { return l.attrs }

// HTML implements Node.
func (l *Leaf) HTML() (string, error) {
	if l.tag == "" {
		return l.value, nil
	}
	if !l.hasValue {
		return "", fmt.Errorf("%w: <%s>", ErrMissingValue, l.tag)
	}
	return openTag(l.tag, l.attrs) + l.value + closeTag(l.tag), nil
}

// Equal implements Node.
func (l *Leaf) Equal(other Node) bool {
	o, ok := other.(*Leaf)
	if !ok || l == nil || o == nil {
		return ok && l == nil && o == nil
	}
	return l.tag == o.tag &&
		l.hasValue == o.hasValue &&
		l.value == o.value &&
		l.attrs.Equal(o.attrs)
}

func (l *Leaf) String() string {
	value := "<none>"
	if l.hasValue {
		value = fmt.Sprintf("%q", l.value)
	}
	return fmt.Sprintf("Leaf(%s, %s, {%s})", displayTag(l.tag), value, l.attrs.HTML())
}

func (*Leaf) sealed() {}

// Parent is a tagged node whose content comes only from its children.
type Parent struct {
	tag      string
	children []Node
	attrs    *Attributes
}

// NewParent builds a parent node. children may be empty but not nil, and may
// not contain nil entries.
func NewParent(tag string, children []Node, attrs ...Attribute) (*Parent, error) {
	if tag == "" {
		return nil, ErrInvalidTag
	}
	if children == nil {
		return nil, fmt.Errorf("%w: <%s>", ErrInvalidChildren, tag)
	}
	for i, child := range children {
		if isNil(child) {
			return nil, fmt.Errorf("%w: <%s> child %d", ErrNullChild, tag, i)
		}
	}

	parent := &Parent{
		tag:      tag,
		children: append(make([]Node, 0, len(children)), children...),
	}
	if len(attrs) > 0 {
		parent.attrs = NewAttributes(attrs...)
	}

	return parent, nil
}

// Tag returns the element name.
func (p *Parent) Tag() string { return p.tag }

// Children returns the ordered children. The slice must not be modified.
func (p *Parent) Children() []Node { return p.children }

// Attrs returns the parent attributes, which may be nil.
func (p *Parent) Attrs() *Attributes { return p.attrs }

// Append adds child after the existing children.
func (p *Parent) Append(child Node) error {
	if isNil(child) {
		return fmt.Errorf("%w: <%s> child %d", ErrNullChild, p.tag, len(p.children))
	}
	p.children = append(p.children, child)
	return nil
}

// HTML implements Node.
func (p *Parent) HTML() (string, error) {
	var sb strings.Builder
	sb.WriteString(openTag(p.tag, p.attrs))
	for _, child := range p.children {
		html, err := child.HTML()
		if err != nil {
			return "", err
		}
		sb.WriteString(html)
	}
	sb.WriteString(closeTag(p.tag))
	return sb.String(), nil
}

// Equal implements Node.
func (p *Parent) Equal(other Node) bool {
	o, ok := other.(*Parent)
	if !ok || p == nil || o == nil {
		return ok && p == nil && o == nil
	}
	if p.tag != o.tag || len(p.children) != len(o.children) || !p.attrs.Equal(o.attrs) {
		return false
	}
	for i := range p.children {
		if !p.children[i].Equal(o.children[i]) {
			return false
		}
	}
	return true
}

func (p *Parent) String() string {
	children := make([]string, 0, len(p.children))
	for _, child := range p.children {
		children = append(children, child.String())
	}
	return fmt.Sprintf("Parent(%s, [%s], {%s})", p.tag, strings.Join(children, ", "), p.attrs.HTML())
}

func (*Parent) sealed() {}

func openTag(tag string, attrs *Attributes) string {
	if rendered := attrs.HTML(); rendered != "" {
		return "<" + tag + " " + rendered + ">"
	}
	return "<" + tag + ">"
}

func closeTag(tag string) string {
	return "</" + tag + ">"
}

func displayTag(tag string) string {
	if tag == "" {
		return "<text>"
	}
	return tag
}

func isNil(node Node) bool {
	switch typed := node.(type) {
	case nil:
		return true
	case *Leaf:
		return typed == nil
	case *Parent:
		return typed == nil
	default:
		return false
	}
}
