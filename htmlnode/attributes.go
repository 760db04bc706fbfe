package htmlnode

import (
	"strings"

	"github.com/emirpasic/gods/maps/linkedhashmap"
)

// Attribute is a single name/value pair rendered on an element.
type Attribute struct {
	Name  string
	Value string
}

// Attr is shorthand for building an Attribute.
func Attr(name, value string) Attribute {
	return Attribute{Name: name, Value: value}
}

// Attributes is an ordered mapping of attribute names to values. Names keep
// the position of their first insertion. The zero value is ready to use. A
// nil *Attributes reads as empty, but Set needs a non-nil receiver.
type Attributes struct {
	entries *linkedhashmap.Map
}

// NewAttributes builds an ordered attribute set from the given pairs.
func NewAttributes(attrs ...Attribute) *Attributes {
	a := &Attributes{entries: linkedhashmap.New()}
	for _, attr := range attrs {
		a.Set(attr.Name, attr.Value)
	}
	return a
}

// Set stores value under name, keeping the original position of name when
// it is already present. It panics on a nil receiver.
func (a *Attributes) Set(name, value string) {
	if a.entries == nil {
		a.entries = linkedhashmap.New()
	}
	a.entries.Put(name, value)
}

// Get returns the value stored for name.
func (a *Attributes) Get(name string) (string, bool) {
	if a == nil || a.entries == nil {
		return "", false
	}
	value, ok := a.entries.Get(name)
	if !ok {
		return "", false
	}
	return value.(string), true
}

// Len returns the number of attributes.
func (a *Attributes) Len() int {
	if a == nil || a.entries == nil {
		return 0
	}
	return a.entries.Size()
}

// List returns the attributes in insertion order.
func (a *Attributes) List() []Attribute {
	if a.Len() == 0 {
		return nil
	}

	list := make([]Attribute, 0, a.entries.Size())
	it := a.entries.Iterator()
	for it.Next() {
		list = append(list, Attribute{
			Name:  it.Key().(string),
			Value: it.Value().(string),
		})
	}
	return list
}

// HTML renders the attributes as name="value" pairs separated by single
// spaces. An empty set renders as "".
func (a *Attributes) HTML() string {
	list := a.List()
	if len(list) == 0 {
		return ""
	}

	parts := make([]string, 0, len(list))
	for _, attr := range list {
		parts = append(parts, attr.Name+`="`+attr.Value+`"`)
	}
	return strings.Join(parts, " ")
}

// Equal reports whether both sets hold the same names and values. Order is
// not compared.
func (a *Attributes) Equal(other *Attributes) bool {
	if a.Len() != other.Len() {
		return false
	}
	for _, attr := range a.List() {
		value, ok := other.Get(attr.Name)
		if !ok || value != attr.Value {
			return false
		}
	}
	return true
}
