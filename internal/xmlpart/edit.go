package xmlpart

import (
	"bytes"
	"sort"
	"strings"

	"github.com/sheetstrike/sheetstrike-cli/internal/core/domain"
)

type splice struct {
	at      int
	replace int
	text    string
}

// Editor accumulates splices against a Document. Nothing is written until
// Bytes is called, and the Document itself is never modified.
type Editor struct {
	doc      *Document
	splices  []splice
	appended []string
}

// Edit starts a new set of edits.
func (d *Document) Edit() *Editor {
	return &Editor{doc: d}
}

// DeclareNamespace adds xmlns:prefix="uri" to the root start tag.
func (e *Editor) DeclareNamespace(prefix, uri string) {
	root := e.doc.root
	e.splices = append(e.splices, splice{
		at:   root.Start + 1 + len(root.QName()),
		text: ` xmlns:` + prefix + `="` + EscapeAttr(uri) + `"`,
	})
}

// InsertBefore inserts fragment immediately before el.
func (e *Editor) InsertBefore(el Element, fragment string) {
	e.splices = append(e.splices, splice{at: el.Start, text: fragment})
}

// AppendChild inserts fragment immediately before the closing root tag,
// expanding a self-closing root when needed.
func (e *Editor) AppendChild(fragment string) {
	e.appended = append(e.appended, fragment)
}

// Changed reports whether any edit was recorded.
func (e *Editor) Changed() bool {
	return len(e.splices) > 0 || len(e.appended) > 0
}

// Bytes applies every recorded edit and returns the new part content.
func (e *Editor) Bytes() ([]byte, error) {
	splices := append([]splice(nil), e.splices...)

	if len(e.appended) > 0 {
		root := e.doc.root
		content := strings.Join(e.appended, "")
		if root.SelfClosing {
			tagEnd := e.doc.src[root.StartEnd-2 : root.StartEnd]
			if !bytes.Equal(tagEnd, []byte("/>")) {
				return nil, &domain.PartError{Path: e.doc.path, Reason: "cannot expand self-closing root tag"}
			}
			splices = append(splices, splice{
				at:      root.StartEnd - 2,
				replace: 2,
				text:    ">" + content + "</" + root.QName() + ">",
			})
		} else {
			splices = append(splices, splice{at: root.CloseStart, text: content})
		}
	}

	sort.SliceStable(splices, func(i, j int) bool {
		return splices[i].at < splices[j].at
	})

	src := e.doc.src
	var out bytes.Buffer
	out.Grow(len(src) + 256)
	pos := 0
	for _, s := range splices {
		if s.at < pos || s.at+s.replace > len(src) {
			return nil, &domain.PartError{Path: e.doc.path, Reason: "overlapping edits"}
		}
		out.Write(src[pos:s.at])
		out.WriteString(s.text)
		pos = s.at + s.replace
	}
	out.Write(src[pos:])
	return out.Bytes(), nil
}
