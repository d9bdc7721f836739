package render

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWireAssembledPage(t *testing.T) {
	root := NewRoot()
	NewRenderer(Options{AccordionExclusive: true}).Assemble(root, sampleDocument())

	w, err := Wire(root)
	require.NoError(t, err)
	require.Equal(t, SectionIDs, w.SmoothScroll.Anchors)
	require.Equal(t, "smooth", w.SmoothScroll.Behavior)
	require.Equal(t, "start", w.SmoothScroll.Block)
	require.Empty(t, w.DanglingAnchors)
	require.Empty(t, w.DuplicateIDs)

	require.Equal(t, ".profile-pic", w.Keyboard.Selector)
	require.Equal(t, []string{"Enter", " "}, w.Keyboard.Keys)
	require.Equal(t, "flipped", w.Keyboard.ToggleClass)
	require.True(t, w.Keyboard.PreventDefault)
}

func TestWireReportsDanglingAndDuplicates(t *testing.T) {
	root := NewRoot()
	root.Append(Fragment{Tag: TagDiv, Class: "links", Body: `<a href="#one">1</a><a href="#missing">?</a><a href="#one">again</a><a href="#">top</a>`})
	root.Append(Fragment{ID: "one", Tag: TagSection, Body: `<p id="dup">a</p>`})
	root.Append(Fragment{ID: "two", Tag: TagSection, Body: `<p id="dup">b</p>`})

	w, err := Wire(root)
	require.NoError(t, err)
	require.Equal(t, []string{"one"}, w.SmoothScroll.Anchors)
	require.Equal(t, []string{"missing"}, w.DanglingAnchors)
	require.Equal(t, []string{"dup"}, w.DuplicateIDs)
}

func TestWireEmptyRoot(t *testing.T) {
	w, err := Wire(NewRoot())
	require.NoError(t, err)
	require.NotNil(t, w.SmoothScroll.Anchors)
	require.Empty(t, w.SmoothScroll.Anchors)
}

func TestRootOperations(t *testing.T) {
	root := NewRoot()
	require.Equal(t, RootID, root.ID)

	root.Append(Fragment{ID: "a", Tag: TagSection})
	root.Append(Fragment{Tag: TagNav})
	require.Len(t, root.Children(), 2)
	require.Len(t, root.Sections(), 1)

	children := root.Children()
	children[0].ID = "mutated"
	require.Equal(t, "a", root.Children()[0].ID)

	root.Replace(Fragment{Tag: TagDiv, Class: "only"})
	require.Len(t, root.Children(), 1)
	require.Empty(t, root.Sections())

	root.Clear()
	require.Empty(t, root.Children())
}
