package cssel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chain applies appends in sequence, failing the test on the first error.
func chain(t *testing.T, steps ...func(Selector) (Selector, error)) Selector {
	t.Helper()
	var sel Selector
	for _, step := range steps {
		next, err := step(sel)
		require.NoError(t, err)
		sel = next
	}
	return sel
}

func element(name string) func(Selector) (Selector, error) {
	return func(s Selector) (Selector, error) { return s.Element(name) }
}

func id(name string) func(Selector) (Selector, error) {
	return func(s Selector) (Selector, error) { return s.ID(name) }
}

func class(name string) func(Selector) (Selector, error) {
	return func(s Selector) (Selector, error) { return s.Class(name) }
}

func attr(spec string) func(Selector) (Selector, error) {
	return func(s Selector) (Selector, error) { return s.Attr(spec) }
}

func pseudoClass(name string) func(Selector) (Selector, error) {
	return func(s Selector) (Selector, error) { return s.PseudoClass(name) }
}

func pseudoElement(name string) func(Selector) (Selector, error) {
	return func(s Selector) (Selector, error) { return s.PseudoElement(name) }
}

func TestSelectorRendering(t *testing.T) {
	tests := []struct {
		name  string
		steps []func(Selector) (Selector, error)
		want  string
	}{
		{
			name:  "id with stacked classes",
			steps: []func(Selector) (Selector, error){id("main"), class("container"), class("editable")},
			want:  "#main.container.editable",
		},
		{
			name:  "element attr pseudo-class",
			steps: []func(Selector) (Selector, error){element("a"), attr(`href$=".png"`), pseudoClass("focus")},
			want:  `a[href$=".png"]:focus`,
		},
		{
			name:  "all six kinds in order",
			steps: []func(Selector) (Selector, error){element("input"), id("search"), class("wide"), attr("type=text"), pseudoClass("focus"), pseudoElement("placeholder")},
			want:  "input#search.wide[type=text]:focus::placeholder",
		},
		{
			name:  "pseudo-classes stack",
			steps: []func(Selector) (Selector, error){element("li"), pseudoClass("first-child"), pseudoClass("hover")},
			want:  "li:first-child:hover",
		},
		{
			name:  "attrs stack",
			steps: []func(Selector) (Selector, error){attr("disabled"), attr(`data-id="7"`)},
			want:  `[disabled][data-id="7"]`,
		},
		{
			name:  "empty selector renders empty",
			steps: nil,
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sel := chain(t, tt.steps...)
			assert.Equal(t, tt.want, sel.String())
			// Render is idempotent
			assert.Equal(t, tt.want, sel.String())
		})
	}
}

func TestSelectorDuplicateParts(t *testing.T) {
	tests := []struct {
		name  string
		setup []func(Selector) (Selector, error)
		step  func(Selector) (Selector, error)
	}{
		{
			name:  "second element",
			setup: []func(Selector) (Selector, error){element("div")},
			step:  element("span"),
		},
		{
			name:  "second id",
			setup: []func(Selector) (Selector, error){id("main")},
			step:  id("other"),
		},
		{
			name:  "second pseudo-element",
			setup: []func(Selector) (Selector, error){element("p"), pseudoElement("before")},
			step:  pseudoElement("after"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sel := chain(t, tt.setup...)
			_, err := tt.step(sel)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrDuplicatePart)
		})
	}
}

func TestSelectorOrdering(t *testing.T) {
	tests := []struct {
		name    string
		setup   []func(Selector) (Selector, error)
		step    func(Selector) (Selector, error)
		wantErr bool
	}{
		{
			name:    "id after class",
			setup:   []func(Selector) (Selector, error){class("container")},
			step:    id("main"),
			wantErr: true,
		},
		{
			name:    "element after id",
			setup:   []func(Selector) (Selector, error){id("main")},
			step:    element("div"),
			wantErr: true,
		},
		{
			name:    "class after pseudo-class",
			setup:   []func(Selector) (Selector, error){element("a"), pseudoClass("hover")},
			step:    class("active"),
			wantErr: true,
		},
		{
			name:    "attr after pseudo-element",
			setup:   []func(Selector) (Selector, error){pseudoElement("before")},
			step:    attr("disabled"),
			wantErr: true,
		},
		{
			name:    "class after class",
			setup:   []func(Selector) (Selector, error){class("one")},
			step:    class("two"),
			wantErr: false,
		},
		{
			name:    "pseudo-class after attr",
			setup:   []func(Selector) (Selector, error){attr("checked")},
			step:    pseudoClass("focus"),
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sel := chain(t, tt.setup...)
			_, err := tt.step(sel)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrOrderViolation)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestSelectorImmutability(t *testing.T) {
	base := chain(t, element("div"), id("main"))
	baseText := base.String()

	// Two independent derivatives of the same base
	left, err := base.Class("left")
	require.NoError(t, err)
	right, err := base.Class("right")
	require.NoError(t, err)

	assert.Equal(t, "div#main.left", left.String())
	assert.Equal(t, "div#main.right", right.String())
	assert.Equal(t, baseText, base.String(), "base must not change")
	assert.Equal(t, 2, base.Len())

	// A failed append leaves the base untouched
	_, err = base.Element("span")
	require.Error(t, err)
	assert.Equal(t, baseText, base.String())

	// Flags carry into derivatives: element is still used up
	_, err = left.Element("span")
	assert.ErrorIs(t, err, ErrDuplicatePart)
}

func TestCombine(t *testing.T) {
	div := chain(t, element("div"), id("main"), class("container"), class("draggable"))
	table := chain(t, element("table"), id("data"))
	tr := chain(t, element("tr"), pseudoClass("nth-of-type(even)"))
	td := chain(t, element("td"), pseudoClass("nth-of-type(even)"))

	// Nested descendant combinator produces a triple space: the " "
	// combinator plus the single surrounding spaces.
	inner := Combine(tr, " ", td)
	assert.Equal(t, "tr:nth-of-type(even)   td:nth-of-type(even)", inner.String())

	combined := Combine(div, "+", Combine(table, "~", inner))
	assert.Equal(t,
		"div#main.container.draggable + table#data ~ tr:nth-of-type(even)   td:nth-of-type(even)",
		combined.String())
}

func TestCombineVerbatimCombinator(t *testing.T) {
	a := chain(t, element("a"))
	b := chain(t, element("b"))

	// Any combinator string is embedded verbatim
	assert.Equal(t, "a >> b", Combine(a, ">>", b).String())
	assert.Equal(t, "a  b", Combine(a, "", b).String())
}

func TestCombinedSelectorsAreRenderOnly(t *testing.T) {
	a := chain(t, element("a"), pseudoElement("before"))
	b := chain(t, element("b"))
	combined := Combine(a, "+", b)

	// Kind and duplicate tracking is dropped on combined values.
	assert.Equal(t, Specificity{}, combined.Specificity())
}

func TestPartKindString(t *testing.T) {
	assert.Equal(t, "element", KindElement.String())
	assert.Equal(t, "pseudo-element", KindPseudoElement.String())
	assert.Equal(t, "PartKind(9)", PartKind(9).String())
}
