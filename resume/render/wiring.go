package render

import (
	"io"
	"strings"

	"github.com/go-faster/errors"
	"golang.org/x/net/html"
)

// SmoothScroll lists the in-page anchors that scroll to their target.
type SmoothScroll struct {
	Anchors  []string `json:"anchors"`
	Behavior string   `json:"behavior"`
	Block    string   `json:"block"`
}

// Keyboard describes keyboard activation of the profile picture.
type Keyboard struct {
	Selector       string   `json:"selector"`
	Keys           []string `json:"keys"`
	ToggleClass    string   `json:"toggleClass"`
	PreventDefault bool     `json:"preventDefault"`
}

// Wiring is the post-render behaviour attached to the page by app.js.
type Wiring struct {
	SmoothScroll SmoothScroll `json:"smoothScroll"`
	Keyboard     Keyboard     `json:"keyboard"`

	DuplicateIDs    []string `json:"-"`
	DanglingAnchors []string `json:"-"`
}

// Wire inspects the markup attached to root and describes the behaviour to
// attach: only anchors whose target exists scroll smoothly.
func Wire(root *Root) (Wiring, error) {
	markup, err := root.HTML()
	if err != nil {
		return Wiring{}, errors.Wrap(err, "render root")
	}

	idx, err := indexMarkup(string(markup))
	if err != nil {
		return Wiring{}, err
	}

	w := Wiring{
		SmoothScroll: SmoothScroll{Anchors: []string{}, Behavior: "smooth", Block: "start"},
		Keyboard: Keyboard{
			Selector:       "." + profilePicClass,
			Keys:           append([]string(nil), ActivationKeys...),
			ToggleClass:    flippedClass,
			PreventDefault: true,
		},
	}
	for _, target := range idx.anchors {
		if idx.idCount[target] == 0 {
			w.DanglingAnchors = append(w.DanglingAnchors, target)
			continue
		}
		w.SmoothScroll.Anchors = append(w.SmoothScroll.Anchors, target)
	}
	for _, id := range idx.ids {
		if idx.idCount[id] > 1 {
			w.DuplicateIDs = append(w.DuplicateIDs, id)
		}
	}
	return w, nil
}

type markupIndex struct {
	ids     []string
	idCount map[string]int
	anchors []string
}

// indexMarkup collects element ids and distinct in-page anchor targets in
// document order.
func indexMarkup(markup string) (markupIndex, error) {
	idx := markupIndex{idCount: map[string]int{}}
	seenAnchor := map[string]bool{}

	z := html.NewTokenizer(strings.NewReader(markup))
	for {
		switch z.Next() {
		case html.ErrorToken:
			if err := z.Err(); !errors.Is(err, io.EOF) {
				return markupIndex{}, errors.Wrap(err, "tokenize markup")
			}
			return idx, nil
		case html.StartTagToken, html.SelfClosingTagToken:
			tok := z.Token()
			for _, attr := range tok.Attr {
				switch attr.Key {
				case "id":
					if idx.idCount[attr.Val] == 0 {
						idx.ids = append(idx.ids, attr.Val)
					}
					idx.idCount[attr.Val]++
				case "href":
					if tok.Data != "a" || len(attr.Val) < 2 || attr.Val[0] != '#' {
						continue
					}
					target := attr.Val[1:]
					if !seenAnchor[target] {
						seenAnchor[target] = true
						idx.anchors = append(idx.anchors, target)
					}
				}
			}
		}
	}
}
