package cssel

// Specificity is the CSS specificity as defined in
// https://www.w3.org/TR/selectors/#specificity-rules
// with the convention Specificity = [A, B, C]:
// A counts id parts, B counts class/attribute/pseudo-class parts,
// C counts element and pseudo-element parts.
type Specificity [3]int

// Specificity computes the specificity of the selector from its recorded
// part kinds. Combined selectors carry no kind tracking and report zero.
func (s Selector) Specificity() Specificity {
	var spec Specificity
	for _, k := range s.kinds {
		switch k {
		case KindID:
			spec[0]++
		case KindClass, KindAttr, KindPseudoClass:
			spec[1]++
		case KindElement, KindPseudoElement:
			spec[2]++
		}
	}
	return spec
}

// Less reports whether s sorts strictly before other.
func (s Specificity) Less(other Specificity) bool {
	for i := range s {
		if s[i] < other[i] {
			return true
		}
		if s[i] > other[i] {
			return false
		}
	}
	return false
}
