package render

import (
	"strings"
	"testing"

	"golang.org/x/net/html"

	"resume-page/resume/model"
)

func sampleDocument() *model.Document {
	doc := &model.Document{
		Header: model.Header{
			Name:         "Ada Lovelace",
			Title:        "Analyst",
			ProfileImage: "images/ada.jpg",
			Contact: model.Contact{
				Email:     "ada@example.com",
				Phone:     "+44 (20) 7946-0000",
				LinkedIn:  "https://www.linkedin.com/in/ada",
				Portfolio: "https://ada.example.com",
			},
		},
		Summary: "Wrote the first program.",
		Skills: model.Skills{
			{Category: "Programming", Skills: []string{"Notes", "Loops"}},
			{Category: "Engines", Skills: []string{"Difference"}},
		},
		Experience: []model.Job{
			{Title: "Translator", Company: "Menabrea", Period: "1842-1843", Responsibilities: []string{"Translate"}},
			{Title: "Annotator", Company: "Babbage", Period: "1843", Responsibilities: []string{"Note G"}},
			{Title: "Correspondent", Company: "De Morgan", Period: "1840"},
		},
		Education: []model.Education{
			{School: "Home", Program: "Mathematics", Period: "1830s", Status: "Completed"},
		},
		Projects: []model.Project{
			{Name: "Note G", Description: "Algorithm", Technologies: []string{"Punch cards"}},
		},
	}
	doc.Normalize()
	return doc
}

func parseHTML(t *testing.T, markup string) *html.Node {
	t.Helper()
	node, err := html.Parse(strings.NewReader(markup))
	if err != nil {
		t.Fatalf("parse html: %v", err)
	}
	return node
}

func findAll(n *html.Node, match func(*html.Node) bool) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && match(n) {
			out = append(out, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return out
}

func attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

func hasClass(class string) func(*html.Node) bool {
	return func(n *html.Node) bool {
		v, _ := attr(n, "class")
		for _, c := range strings.Fields(v) {
			if c == class {
				return true
			}
		}
		return false
	}
}

func withID(id string) func(*html.Node) bool {
	return func(n *html.Node) bool {
		v, ok := attr(n, "id")
		return ok && v == id
	}
}

func text(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}

func fragmentDOM(t *testing.T, f Fragment) *html.Node {
	t.Helper()
	markup, err := f.HTML()
	if err != nil {
		t.Fatalf("render fragment: %v", err)
	}
	return parseHTML(t, string(markup))
}

func anchorHrefs(n *html.Node) []string {
	var out []string
	for _, a := range findAll(n, func(n *html.Node) bool { return n.Data == "a" }) {
		if href, ok := attr(a, "href"); ok {
			out = append(out, href)
		}
	}
	return out
}

func assertContains(t *testing.T, haystack, needle string) {
	t.Helper()
	if !strings.Contains(haystack, needle) {
		t.Fatalf("expected output to contain %q", needle)
	}
}

func assertNotContains(t *testing.T, haystack, needle string) {
	t.Helper()
	if strings.Contains(haystack, needle) {
		t.Fatalf("expected output to not contain %q", needle)
	}
}
