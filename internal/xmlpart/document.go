package xmlpart

import (
	"bytes"
	"encoding/xml"
	"errors"
	"io"
	"slices"
	"strings"

	"github.com/sheetstrike/sheetstrike-cli/internal/core/domain"
)

// Element is an element located in the source bytes.
type Element struct {
	// Name carries the literal prefix in Space.
	Name xml.Name

	// Attr lists attributes in source order, values unescaped.
	Attr []xml.Attr

	// Start is the offset of the opening '<'.
	Start int

	// StartEnd is the offset just past the start tag.
	StartEnd int

	// CloseStart is the offset of the end tag, equal to End when self-closing.
	CloseStart int

	// End is the offset just past the element.
	End int

	// SelfClosing is set for <name/> elements.
	SelfClosing bool
}

// QName returns the name as written in the source, prefix included.
func (e Element) QName() string {
	if e.Name.Space == "" {
		return e.Name.Local
	}
	return e.Name.Space + ":" + e.Name.Local
}

// AttrValue returns the value of an attribute by literal prefix and local name.
func (e Element) AttrValue(prefix, local string) (string, bool) {
	for _, a := range e.Attr {
		if a.Name.Space == prefix && a.Name.Local == local {
			return a.Value, true
		}
	}
	return "", false
}

// Document is a parsed part: its root element and the root's children.
type Document struct {
	path     string
	src      []byte
	root     Element
	children []Element
}

// Parse tokenises src. Failures are *domain.PartError values naming path.
func Parse(path string, src []byte) (*Document, error) {
	d := xml.NewDecoder(bytes.NewReader(src))
	// Offsets count source bytes, so labels other than UTF-8 pass through untouched.
	d.CharsetReader = func(_ string, input io.Reader) (io.Reader, error) {
		return input, nil
	}

	doc := &Document{path: path, src: src}
	var (
		child      Element
		depth      int
		rootSeen   bool
		rootClosed bool
	)

	for {
		off := int(d.InputOffset())
		tok, err := d.RawToken()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, &domain.PartError{Path: path, Reason: "unparseable XML: " + err.Error()}
		}
		end := int(d.InputOffset())

		switch t := tok.(type) {
		case xml.StartElement:
			el := Element{Name: t.Name, Attr: slices.Clone(t.Attr), Start: off, StartEnd: end}
			switch depth {
			case 0:
				if rootSeen {
					return nil, &domain.PartError{Path: path, Reason: "more than one root element"}
				}
				rootSeen = true
				doc.root = el
			case 1:
				child = el
			}
			depth++

		case xml.EndElement:
			depth--
			if depth < 0 {
				return nil, &domain.PartError{Path: path, Reason: "unexpected end tag </" + t.Name.Local + ">"}
			}
			switch depth {
			case 0:
				doc.root.CloseStart = off
				doc.root.End = end
				doc.root.SelfClosing = off == end
				rootClosed = true
			case 1:
				child.CloseStart = off
				child.End = end
				child.SelfClosing = off == end
				doc.children = append(doc.children, child)
			}
		}
	}

	if !rootSeen {
		return nil, &domain.PartError{Path: path, Reason: "no root element"}
	}
	if !rootClosed {
		return nil, &domain.PartError{Path: path, Reason: "no closing root tag </" + doc.root.QName() + ">"}
	}
	return doc, nil
}

// Path returns the part path the document was parsed from.
func (d *Document) Path() string {
	return d.path
}

// Bytes returns the source bytes.
func (d *Document) Bytes() []byte {
	return d.src
}

// Root returns the root element.
func (d *Document) Root() Element {
	return d.root
}

// Children returns the root's direct children in source order.
func (d *Document) Children() []Element {
	return slices.Clone(d.children)
}

// ChildrenNamed returns the direct children with the given local name,
// whatever their prefix.
func (d *Document) ChildrenNamed(local string) []Element {
	var out []Element
	for _, c := range d.children {
		if c.Name.Local == local {
			out = append(out, c)
		}
	}
	return out
}

// HasChild reports whether a direct child with the local name exists.
func (d *Document) HasChild(local string) bool {
	return len(d.ChildrenNamed(local)) > 0
}

// FirstChildOf returns the first direct child whose local name is in locals.
func (d *Document) FirstChildOf(locals ...string) (Element, bool) {
	for _, c := range d.children {
		if slices.Contains(locals, c.Name.Local) {
			return c, true
		}
	}
	return Element{}, false
}

// PrefixFor returns the prefix the root binds to uri. The default namespace
// is reported as "".
func (d *Document) PrefixFor(uri string) (string, bool) {
	for _, a := range d.root.Attr {
		if a.Value != uri {
			continue
		}
		if a.Name.Space == "xmlns" {
			return a.Name.Local, true
		}
		if a.Name.Space == "" && a.Name.Local == "xmlns" {
			return "", true
		}
	}
	return "", false
}

// DeclaresPrefix reports whether the root declares xmlns:prefix.
func (d *Document) DeclaresPrefix(prefix string) bool {
	_, ok := d.root.AttrValue("xmlns", prefix)
	return ok
}

// Prefixed qualifies local with the root element's prefix, so inserted
// children share the root's namespace.
func (d *Document) Prefixed(local string) string {
	if d.root.Name.Space == "" {
		return local
	}
	return d.root.Name.Space + ":" + local
}

// EscapeAttr escapes s for use inside a double-quoted attribute value.
func EscapeAttr(s string) string {
	var b strings.Builder
	_ = xml.EscapeText(&b, []byte(s))
	return b.String()
}
