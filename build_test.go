package cssel

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildManifest(t *testing.T) {
	tests := []struct {
		name     string
		manifest Manifest
		want     []BuiltSelector
		wantErr  string
	}{
		{
			name: "single selector",
			manifest: Manifest{
				Selectors: []SelectorSpec{
					{Name: "main", Parts: []PartSpec{
						{Kind: "id", Value: "main"},
						{Kind: "class", Value: "container"},
						{Kind: "class", Value: "editable"},
					}},
				},
			},
			want: []BuiltSelector{
				{Name: "main", Selector: "#main.container.editable"},
			},
		},
		{
			name: "combination",
			manifest: Manifest{
				Selectors: []SelectorSpec{
					{Name: "left", Parts: []PartSpec{{Kind: "element", Value: "div"}}},
					{Name: "right", Parts: []PartSpec{{Kind: "element", Value: "span"}}},
				},
				Combine: []CombineSpec{
					{Name: "both", Left: "left", Combinator: "+", Right: "right"},
				},
			},
			want: []BuiltSelector{
				{Name: "left", Selector: "div"},
				{Name: "right", Selector: "span"},
				{Name: "both", Selector: "div + span"},
			},
		},
		{
			name: "empty combinator means descendant",
			manifest: Manifest{
				Selectors: []SelectorSpec{
					{Name: "a", Parts: []PartSpec{{Kind: "element", Value: "ul"}}},
					{Name: "b", Parts: []PartSpec{{Kind: "element", Value: "li"}}},
				},
				Combine: []CombineSpec{
					{Name: "nested", Left: "a", Right: "b"},
				},
			},
			want: []BuiltSelector{
				{Name: "a", Selector: "ul"},
				{Name: "b", Selector: "li"},
				{Name: "nested", Selector: "ul   li"},
			},
		},
		{
			name: "combination of combination",
			manifest: Manifest{
				Selectors: []SelectorSpec{
					{Name: "a", Parts: []PartSpec{{Kind: "element", Value: "div"}}},
					{Name: "b", Parts: []PartSpec{{Kind: "element", Value: "table"}}},
					{Name: "c", Parts: []PartSpec{{Kind: "element", Value: "tr"}}},
				},
				Combine: []CombineSpec{
					{Name: "bc", Left: "b", Combinator: "~", Right: "c"},
					{Name: "abc", Left: "a", Combinator: "+", Right: "bc"},
				},
			},
			want: []BuiltSelector{
				{Name: "a", Selector: "div"},
				{Name: "b", Selector: "table"},
				{Name: "c", Selector: "tr"},
				{Name: "bc", Selector: "table ~ tr"},
				{Name: "abc", Selector: "div + table ~ tr"},
			},
		},
		{
			name: "order violation carries selector name",
			manifest: Manifest{
				Selectors: []SelectorSpec{
					{Name: "broken", Parts: []PartSpec{
						{Kind: "class", Value: "box"},
						{Kind: "id", Value: "late"},
					}},
				},
			},
			wantErr: `selector "broken"`,
		},
		{
			name: "unknown kind",
			manifest: Manifest{
				Selectors: []SelectorSpec{
					{Name: "x", Parts: []PartSpec{{Kind: "universal", Value: "*"}}},
				},
			},
			wantErr: `unknown part kind "universal"`,
		},
		{
			name: "duplicate name",
			manifest: Manifest{
				Selectors: []SelectorSpec{
					{Name: "x", Parts: []PartSpec{{Kind: "element", Value: "a"}}},
					{Name: "x", Parts: []PartSpec{{Kind: "element", Value: "b"}}},
				},
			},
			wantErr: `declared twice`,
		},
		{
			name: "combination references unknown selector",
			manifest: Manifest{
				Selectors: []SelectorSpec{
					{Name: "a", Parts: []PartSpec{{Kind: "element", Value: "div"}}},
				},
				Combine: []CombineSpec{
					{Name: "broken", Left: "a", Combinator: "+", Right: "missing"},
				},
			},
			wantErr: `unknown selector "missing"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := BuildManifest(tt.manifest)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, result.Selectors)
		})
	}
}

func TestBuildFromFile(t *testing.T) {
	dir := t.TempDir()
	manifestPath := filepath.Join(dir, "selectors.yaml")
	manifestContent := `
selectors:
  - name: toolbar
    parts:
      - kind: element
        value: div
      - kind: id
        value: main
      - kind: class
        value: container
      - kind: class
        value: draggable
  - name: grid
    parts:
      - kind: element
        value: table
      - kind: id
        value: data
combine:
  - name: layout
    left: toolbar
    combinator: "+"
    right: grid
`
	require.NoError(t, os.WriteFile(manifestPath, []byte(manifestContent), 0644))

	result, err := Build(BuildConfig{ManifestPath: manifestPath})
	require.NoError(t, err)

	require.Len(t, result.Selectors, 3)
	assert.Equal(t, "div#main.container.draggable", result.Selectors[0].Selector)
	assert.Equal(t, "table#data", result.Selectors[1].Selector)
	assert.Equal(t, "div#main.container.draggable + table#data", result.Selectors[2].Selector)
}

func TestBuildMissingManifest(t *testing.T) {
	_, err := Build(BuildConfig{ManifestPath: "/nonexistent/selectors.yaml"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read manifest")
}

func TestBuildEmptySelectorWarns(t *testing.T) {
	result, err := BuildManifest(Manifest{
		Selectors: []SelectorSpec{{Name: "empty"}},
	})
	require.NoError(t, err)
	require.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0], `"empty" has no parts`)
}
