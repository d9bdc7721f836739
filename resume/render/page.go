// Package render builds the résumé page: section fragments, the page view
// state machine and the post-render wiring.
package render

import (
	"bytes"
	"context"
	"html/template"
	"io"
	"time"

	"github.com/go-faster/errors"

	"resume-page/internal/shared/metrics"
	"resume-page/internal/shared/telemetry"
	"resume-page/resume/model"
)

// DefaultAssetBase is where app.js and styles.css are served from.
const DefaultAssetBase = "/static"

// ErrAlreadyRun is returned when a page view is run more than once.
var ErrAlreadyRun = errors.New("page view already run")

// DocumentLoader performs the single blocking read of a page view.
type DocumentLoader interface {
	Load(ctx context.Context) (*model.Document, error)
	Location() string
}

type Options struct {
	// AccordionExclusive lets only one experience panel be open at a time.
	AccordionExclusive bool
	// DataLocation overrides the location shown in the error view.
	DataLocation string
	// AssetBase is the URL prefix of app.js and styles.css.
	AssetBase string
}

// Renderer holds the parsed templates and rendering options. It is safe for
// concurrent use; every request gets its own PageView.
type Renderer struct {
	tmpl *template.Template
	opts Options
}

func NewRenderer(opts Options) *Renderer {
	if opts.AssetBase == "" {
		opts.AssetBase = DefaultAssetBase
	}
	return &Renderer{tmpl: templates, opts: opts}
}

func (r *Renderer) Options() Options {
	return r.opts
}

// Sections builds every fragment of a loaded document in page order,
// navigation first.
func (r *Renderer) Sections(doc *model.Document) []Fragment {
	return []Fragment{
		BuildNavigation(doc.Header),
		BuildHeader(doc.Header, ProfileToggle{}),
		BuildAbout(doc.Summary),
		BuildSkills(doc.Skills),
		BuildExperience(doc.Experience, r.opts.AccordionExclusive),
		BuildEducation(doc.Education),
		BuildProjects(doc.Projects),
		BuildContact(doc.Header),
	}
}

// Assemble clears root and attaches every fragment of doc.
func (r *Renderer) Assemble(root *Root, doc *model.Document) {
	root.Clear()
	for _, f := range r.Sections(doc) {
		root.Append(f)
	}
}

// NewPageView starts a page view in the Idle state.
func (r *Renderer) NewPageView() *PageView {
	return &PageView{renderer: r, root: NewRoot(), state: StateIdle}
}

type State int

const (
	StateIdle State = iota
	StateLoading
	StateRendered
	StateError
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateRendered:
		return "rendered"
	case StateError:
		return "error"
	default:
		return "unknown"
	}
}

// PageView is the render context of a single page load.
type PageView struct {
	renderer *Renderer
	root     *Root
	state    State
	doc      *model.Document
	err      error
	location string
	wiring   Wiring
}

func (v *PageView) State() State     { return v.state }
func (v *PageView) Root() *Root      { return v.root }
func (v *PageView) Err() error       { return v.err }
func (v *PageView) Wiring() Wiring   { return v.wiring }
func (v *PageView) Location() string { return v.location }

// Document returns the loaded document, or nil unless the view rendered.
func (v *PageView) Document() *model.Document { return v.doc }

// Run loads the document once and renders it. A load failure is not returned:
// it moves the view to StateError with the error view attached. Run returns
// an error only when called twice or when the attached markup cannot be wired.
func (v *PageView) Run(ctx context.Context, loader DocumentLoader) error {
	if v.state != StateIdle {
		return ErrAlreadyRun
	}
	v.state = StateLoading
	v.location = loader.Location()
	if v.renderer.opts.DataLocation != "" {
		v.location = v.renderer.opts.DataLocation
	}

	doc, err := loader.Load(ctx)
	if err == nil && doc == nil {
		err = errors.New("loader returned no document")
	}
	if err != nil {
		v.fail(err)
		return nil
	}

	start := time.Now()
	v.renderer.Assemble(v.root, doc)
	wiring, err := Wire(v.root)
	if err != nil {
		v.fail(err)
		return errors.Wrap(err, "wire page")
	}
	metrics.ObserveRender(time.Since(start))

	if len(wiring.DuplicateIDs) > 0 || len(wiring.DanglingAnchors) > 0 {
		telemetry.Warn("page.wiring_issues", map[string]any{
			"duplicate_ids":    wiring.DuplicateIDs,
			"dangling_anchors": wiring.DanglingAnchors,
		})
	}

	v.doc = doc
	v.wiring = wiring
	v.state = StateRendered
	metrics.ObservePageView(metrics.OutcomeRendered)
	return nil
}

func (v *PageView) fail(err error) {
	v.err = err
	v.root.Replace(BuildErrorView(err, v.location))
	v.state = StateError
	metrics.ObservePageView(metrics.OutcomeError)
}

type layoutData struct {
	Title     string
	RootID    string
	Content   template.HTML
	Rendered  bool
	Wiring    Wiring
	AssetBase string
}

// WriteHTML writes the complete page for the current state.
func (v *PageView) WriteHTML(w io.Writer) error {
	if v.state != StateRendered && v.state != StateError {
		return errors.Errorf("page view not finished: %s", v.state)
	}
	content, err := v.root.HTML()
	if err != nil {
		return err
	}

	data := layoutData{
		Title:     "Resume",
		RootID:    v.root.ID,
		Content:   content,
		Rendered:  v.state == StateRendered,
		Wiring:    v.wiring,
		AssetBase: v.renderer.opts.AssetBase,
	}
	if v.doc != nil && v.doc.Header.Name != "" {
		data.Title = v.doc.Header.Name + " | Resume"
	}

	var buf bytes.Buffer
	if err := v.renderer.tmpl.ExecuteTemplate(&buf, "layout", data); err != nil {
		return errors.Wrap(err, "execute layout")
	}
	_, err = buf.WriteTo(w)
	return err
}
