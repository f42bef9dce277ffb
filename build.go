package cssel

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// BuildConfig holds builder configuration
type BuildConfig struct {
	ManifestPath string // Path to the YAML selector manifest
	Verbose      bool   // Enable debug logging
}

// Manifest declares named selectors as ordered part lists, plus
// combinations over previously declared names.
type Manifest struct {
	Selectors []SelectorSpec `yaml:"selectors"`
	Combine   []CombineSpec  `yaml:"combine"`
}

// SelectorSpec declares one named selector
type SelectorSpec struct {
	Name  string     `yaml:"name"`
	Parts []PartSpec `yaml:"parts"`
}

// PartSpec declares one selector part
type PartSpec struct {
	Kind  string `yaml:"kind"`  // element|id|class|attr|pseudo-class|pseudo-element
	Value string `yaml:"value"` // raw part value, no prefix
}

// CombineSpec joins two previously declared selectors. An empty
// combinator means descendant (" ").
type CombineSpec struct {
	Name       string `yaml:"name"`
	Left       string `yaml:"left"`
	Combinator string `yaml:"combinator"`
	Right      string `yaml:"right"`
}

// BuiltSelector is one rendered manifest entry
type BuiltSelector struct {
	Name     string
	Selector string
}

// BuildResult contains build output in declaration order
type BuildResult struct {
	Selectors []BuiltSelector
	Warnings  []string
}

// Build is the main entry point: it reads a YAML manifest and assembles
// every declared selector through the validated append operations.
func Build(config BuildConfig) (*BuildResult, error) {
	// #nosec G304 - path comes from trusted configuration
	content, err := os.ReadFile(config.ManifestPath)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}

	var manifest Manifest
	if err := yaml.Unmarshal(content, &manifest); err != nil {
		return nil, fmt.Errorf("parse manifest %s: %w", config.ManifestPath, err)
	}

	if config.Verbose {
		fmt.Printf("Loaded %d selectors and %d combinations from %s\n",
			len(manifest.Selectors), len(manifest.Combine), config.ManifestPath)
	}

	return BuildManifest(manifest)
}

// BuildManifest assembles a parsed manifest. Selector names must be
// unique; combine entries may reference any earlier selector or combine.
func BuildManifest(manifest Manifest) (*BuildResult, error) {
	result := &BuildResult{}
	byName := make(map[string]Selector, len(manifest.Selectors))

	for _, spec := range manifest.Selectors {
		if spec.Name == "" {
			return nil, fmt.Errorf("selector with no name")
		}
		if _, exists := byName[spec.Name]; exists {
			return nil, fmt.Errorf("selector %q declared twice", spec.Name)
		}
		if len(spec.Parts) == 0 {
			result.Warnings = append(result.Warnings, fmt.Sprintf("selector %q has no parts", spec.Name))
		}

		var sel Selector
		for _, part := range spec.Parts {
			next, err := appendPart(sel, part)
			if err != nil {
				return nil, fmt.Errorf("selector %q: %w", spec.Name, err)
			}
			sel = next
		}

		byName[spec.Name] = sel
		result.Selectors = append(result.Selectors, BuiltSelector{
			Name:     spec.Name,
			Selector: sel.String(),
		})
	}

	for _, spec := range manifest.Combine {
		if spec.Name == "" {
			return nil, fmt.Errorf("combination with no name")
		}
		if _, exists := byName[spec.Name]; exists {
			return nil, fmt.Errorf("selector %q declared twice", spec.Name)
		}

		left, ok := byName[spec.Left]
		if !ok {
			return nil, fmt.Errorf("combination %q: unknown selector %q", spec.Name, spec.Left)
		}
		right, ok := byName[spec.Right]
		if !ok {
			return nil, fmt.Errorf("combination %q: unknown selector %q", spec.Name, spec.Right)
		}

		combinator := spec.Combinator
		if combinator == "" {
			combinator = " "
		}

		combined := Combine(left, combinator, right)
		byName[spec.Name] = combined
		result.Selectors = append(result.Selectors, BuiltSelector{
			Name:     spec.Name,
			Selector: combined.String(),
		})
	}

	return result, nil
}

// appendPart dispatches one manifest part to its append operation.
func appendPart(sel Selector, part PartSpec) (Selector, error) {
	switch part.Kind {
	case "element":
		return sel.Element(part.Value)
	case "id":
		return sel.ID(part.Value)
	case "class":
		return sel.Class(part.Value)
	case "attr":
		return sel.Attr(part.Value)
	case "pseudo-class":
		return sel.PseudoClass(part.Value)
	case "pseudo-element":
		return sel.PseudoElement(part.Value)
	}
	return Selector{}, fmt.Errorf("unknown part kind %q", part.Kind)
}
