package render

import (
	"bytes"
	"html/template"

	"github.com/go-faster/errors"
)

// RootID is the id of the element every fragment is attached to.
const RootID = "app"

const (
	TagNav     = "nav"
	TagSection = "section"
	TagDiv     = "div"
)

// Fragment is a self-contained piece of markup ready to be attached to a Root.
type Fragment struct {
	ID    string
	Tag   string
	Class string
	Body  template.HTML
}

// IsSection reports whether the fragment is one of the page sections.
func (f Fragment) IsSection() bool {
	return f.Tag == TagSection
}

// HTML renders the fragment including its wrapping element.
func (f Fragment) HTML() (template.HTML, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, "fragment", f); err != nil {
		return "", errors.Wrapf(err, "render fragment %q", f.ID)
	}
	return template.HTML(buf.String()), nil
}

// Root is the owned rendering target. A Root belongs to a single page view.
type Root struct {
	ID       string
	children []Fragment
}

func NewRoot() *Root {
	return &Root{ID: RootID}
}

// Clear removes all attached fragments.
func (r *Root) Clear() {
	r.children = nil
}

// Append attaches f after the existing children.
func (r *Root) Append(f Fragment) {
	r.children = append(r.children, f)
}

// Replace swaps the whole content of the root for f.
func (r *Root) Replace(f Fragment) {
	r.children = []Fragment{f}
}

// Children returns a copy of the attached fragments in attach order.
func (r *Root) Children() []Fragment {
	out := make([]Fragment, len(r.children))
	copy(out, r.children)
	return out
}

// Sections returns only the section fragments.
func (r *Root) Sections() []Fragment {
	var out []Fragment
	for _, child := range r.children {
		if child.IsSection() {
			out = append(out, child)
		}
	}
	return out
}

// HTML renders the children of the root, without the root element itself.
func (r *Root) HTML() (template.HTML, error) {
	var buf bytes.Buffer
	for _, child := range r.children {
		markup, err := child.HTML()
		if err != nil {
			return "", err
		}
		buf.WriteString(string(markup))
	}
	return template.HTML(buf.String()), nil
}
