package cssel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSpecificity(t *testing.T) {
	tests := []struct {
		name  string
		steps []func(Selector) (Selector, error)
		want  Specificity
	}{
		{
			name:  "element only",
			steps: []func(Selector) (Selector, error){element("div")},
			want:  Specificity{0, 0, 1},
		},
		{
			name:  "id and classes",
			steps: []func(Selector) (Selector, error){id("main"), class("a"), class("b")},
			want:  Specificity{1, 2, 0},
		},
		{
			name:  "attr and pseudo-class count as B",
			steps: []func(Selector) (Selector, error){element("a"), attr("href"), pseudoClass("hover")},
			want:  Specificity{0, 2, 1},
		},
		{
			name:  "pseudo-element counts as C",
			steps: []func(Selector) (Selector, error){element("p"), pseudoElement("first-line")},
			want:  Specificity{0, 0, 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sel := chain(t, tt.steps...)
			assert.Equal(t, tt.want, sel.Specificity())
		})
	}
}

func TestSpecificityLess(t *testing.T) {
	assert.True(t, Specificity{0, 1, 0}.Less(Specificity{1, 0, 0}))
	assert.True(t, Specificity{0, 0, 9}.Less(Specificity{0, 1, 0}))
	assert.False(t, Specificity{1, 0, 0}.Less(Specificity{0, 9, 9}))
	assert.False(t, Specificity{1, 1, 1}.Less(Specificity{1, 1, 1}))
}
