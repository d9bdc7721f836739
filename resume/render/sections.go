package render

import (
	"bytes"
	"embed"
	"html/template"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-faster/errors"

	"resume-page/resume/model"
)

//go:embed templates/*.gohtml
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.gohtml"))

// Section ids in page order.
const (
	SectionHome       = "home"
	SectionAbout      = "about"
	SectionSkills     = "skills"
	SectionExperience = "experience"
	SectionEducation  = "education"
	SectionProjects   = "projects"
	SectionContact    = "contact"
)

// SectionIDs lists every section id in the order the sections are attached.
var SectionIDs = []string{
	SectionHome,
	SectionAbout,
	SectionSkills,
	SectionExperience,
	SectionEducation,
	SectionProjects,
	SectionContact,
}

const experienceAccordionID = "experienceAccordion"

// NavLink is an in-page navigation anchor.
type NavLink struct {
	Target string
	Label  string
}

// NavTargets are the navigation anchors, independent of document content.
var NavTargets = []NavLink{
	{Target: SectionHome, Label: "Home"},
	{Target: SectionAbout, Label: "About"},
	{Target: SectionSkills, Label: "Skills"},
	{Target: SectionExperience, Label: "Experience"},
	{Target: SectionEducation, Label: "Education"},
	{Target: SectionProjects, Label: "Projects"},
	{Target: SectionContact, Label: "Contact"},
}

type NavigationView struct {
	Brand string
	Links []NavLink
}

func NewNavigationView(h model.Header) NavigationView {
	links := make([]NavLink, len(NavTargets))
	copy(links, NavTargets)
	return NavigationView{Brand: h.Name, Links: links}
}

func BuildNavigation(h model.Header) Fragment {
	return Fragment{
		Tag:   TagNav,
		Class: navbarClass,
		Body:  execute("navigation", NewNavigationView(h)),
	}
}

// ContactLinks derives every contact href from a single Contact so that the
// header and the contact section always agree.
type ContactLinks struct {
	Email     string
	Mailto    template.URL
	Phone     string
	Tel       template.URL
	LinkedIn  string
	Portfolio string
}

func NewContactLinks(c model.Contact) ContactLinks {
	return ContactLinks{
		Email:     c.Email,
		Mailto:    mailtoHref(c.Email),
		Phone:     c.Phone,
		Tel:       telHref(c.Phone),
		LinkedIn:  c.LinkedIn,
		Portfolio: c.Portfolio,
	}
}

func mailtoHref(email string) template.URL {
	email = strings.TrimSpace(email)
	if email == "" {
		return ""
	}
	return template.URL("mailto:" + url.PathEscape(email))
}

// telHref keeps a leading plus and the digits of phone.
func telHref(phone string) template.URL {
	var b strings.Builder
	for i, r := range strings.TrimSpace(phone) {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '+' && i == 0:
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return ""
	}
	return template.URL("tel:" + b.String())
}

type HeaderView struct {
	Name         string
	Title        string
	ProfileImage string
	ImageClasses string
	Flipped      bool
	Links        ContactLinks
}

func NewHeaderView(h model.Header, t ProfileToggle) HeaderView {
	return HeaderView{
		Name:         h.Name,
		Title:        h.Title,
		ProfileImage: h.ProfileImage,
		ImageClasses: t.Classes(),
		Flipped:      t.Flipped(),
		Links:        NewContactLinks(h.Contact),
	}
}

func BuildHeader(h model.Header, t ProfileToggle) Fragment {
	return Fragment{
		ID:    SectionHome,
		Tag:   TagSection,
		Class: SectionClass[SectionHome],
		Body:  execute("header", NewHeaderView(h, t)),
	}
}

func BuildAbout(summary string) Fragment {
	return Fragment{
		ID:    SectionAbout,
		Tag:   TagSection,
		Class: SectionClass[SectionAbout],
		Body:  execute("about", struct{ Summary string }{summary}),
	}
}

func BuildSkills(groups model.Skills) Fragment {
	return Fragment{
		ID:    SectionSkills,
		Tag:   TagSection,
		Class: SectionClass[SectionSkills],
		Body:  execute("skills", struct{ Groups model.Skills }{groups}),
	}
}

// Panel is one experience accordion entry.
type Panel struct {
	Index            int
	CollapseID       string
	Title            string
	Company          string
	Period           string
	Responsibilities []string
	Expanded         bool
}

type ExperienceView struct {
	AccordionID string
	Exclusive   bool
	Panels      []Panel
}

// NewExperienceView expands the first job and collapses the rest.
func NewExperienceView(jobs []model.Job, exclusive bool) ExperienceView {
	view := ExperienceView{
		AccordionID: experienceAccordionID,
		Exclusive:   exclusive,
		Panels:      make([]Panel, 0, len(jobs)),
	}
	for i, job := range jobs {
		view.Panels = append(view.Panels, Panel{
			Index:            i,
			CollapseID:       collapseID(i),
			Title:            job.Title,
			Company:          job.Company,
			Period:           job.Period,
			Responsibilities: job.Responsibilities,
			Expanded:         i == 0,
		})
	}
	return view
}

// ExpandedCount returns how many panels start expanded.
func (v ExperienceView) ExpandedCount() int {
	n := 0
	for _, p := range v.Panels {
		if p.Expanded {
			n++
		}
	}
	return n
}

func BuildExperience(jobs []model.Job, exclusive bool) Fragment {
	return Fragment{
		ID:    SectionExperience,
		Tag:   TagSection,
		Class: SectionClass[SectionExperience],
		Body:  execute("experience", NewExperienceView(jobs, exclusive)),
	}
}

func BuildEducation(entries []model.Education) Fragment {
	return Fragment{
		ID:    SectionEducation,
		Tag:   TagSection,
		Class: SectionClass[SectionEducation],
		Body:  execute("education", struct{ Entries []model.Education }{entries}),
	}
}

func BuildProjects(projects []model.Project) Fragment {
	return Fragment{
		ID:    SectionProjects,
		Tag:   TagSection,
		Class: SectionClass[SectionProjects],
		Body:  execute("projects", struct{ Projects []model.Project }{projects}),
	}
}

func BuildContact(h model.Header) Fragment {
	return Fragment{
		ID:    SectionContact,
		Tag:   TagSection,
		Class: SectionClass[SectionContact],
		Body:  execute("contact", struct{ Links ContactLinks }{NewContactLinks(h.Contact)}),
	}
}

// ErrorView describes the single fragment shown when the document could not
// be loaded.
type ErrorView struct {
	Location string
	Detail   string
	Status   int
}

func NewErrorView(err error, location string) ErrorView {
	view := ErrorView{Location: location}
	if err == nil {
		return view
	}
	view.Detail = err.Error()
	var detailed interface{ Detail() string }
	if errors.As(err, &detailed) {
		view.Detail = detailed.Detail()
	}
	var status interface{ Status() int }
	if errors.As(err, &status) {
		view.Status = status.Status()
	}
	return view
}

func BuildErrorView(err error, location string) Fragment {
	return Fragment{
		Tag:   TagDiv,
		Class: errorViewClass,
		Body:  execute("error", NewErrorView(err, location)),
	}
}

func collapseID(i int) string {
	return "collapse" + strconv.Itoa(i)
}

// execute runs a section template. The templates and their view models are
// fixed at compile time, so a failure here is a programming error.
func execute(name string, data any) template.HTML {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		panic(errors.Wrapf(err, "execute template %q", name))
	}
	return template.HTML(buf.String())
}
