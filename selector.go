package cssel

import (
	"errors"
	"fmt"
	"strings"
)

// Selector part errors. Append operations wrap these with context, so
// callers should test them with errors.Is.
var (
	// ErrDuplicatePart is returned when a singleton part (element,
	// pseudo-element) or an id is added a second time.
	ErrDuplicatePart = errors.New("duplicate selector part")
	// ErrOrderViolation is returned when a part would break the fixed
	// element < id < class < attr < pseudo-class < pseudo-element order.
	ErrOrderViolation = errors.New("selector part out of order")
	// ErrSyntax is returned by Parse for input it cannot tokenize into
	// the fixed part vocabulary.
	ErrSyntax = errors.New("invalid selector syntax")
)

// PartKind categorizes a selector part. The declaration order is the
// precedence order used for validation.
type PartKind int

// Part kinds in precedence order
const (
	KindElement PartKind = iota
	KindID
	KindClass
	KindAttr
	KindPseudoClass
	KindPseudoElement
)

func (k PartKind) String() string {
	switch k {
	case KindElement:
		return "element"
	case KindID:
		return "id"
	case KindClass:
		return "class"
	case KindAttr:
		return "attr"
	case KindPseudoClass:
		return "pseudo-class"
	case KindPseudoElement:
		return "pseudo-element"
	}
	return fmt.Sprintf("PartKind(%d)", int(k))
}

// Selector is an immutable CSS selector under construction. The zero
// value is an empty selector. Every append operation returns a fresh
// value and leaves the receiver untouched, so a Selector may be shared
// and extended from multiple call sites without interference.
type Selector struct {
	fragments []string
	kinds     []PartKind

	usedElement       bool
	usedPseudoElement bool
}

// push copies the receiver and appends one fragment. Slices are copied
// rather than re-sliced so derivatives never share a backing array.
func (s Selector) push(kind PartKind, fragment string) Selector {
	next := Selector{
		fragments:         make([]string, len(s.fragments), len(s.fragments)+1),
		kinds:             make([]PartKind, len(s.kinds), len(s.kinds)+1),
		usedElement:       s.usedElement,
		usedPseudoElement: s.usedPseudoElement,
	}
	copy(next.fragments, s.fragments)
	copy(next.kinds, s.kinds)
	next.fragments = append(next.fragments, fragment)
	next.kinds = append(next.kinds, kind)
	return next
}

// checkOrder rejects a part whose kind precedes any kind already present.
// Equal kinds always pass, so repeatable parts (classes, attributes,
// pseudo-classes) can stack.
func (s Selector) checkOrder(kind PartKind) error {
	for _, k := range s.kinds {
		if k > kind {
			return fmt.Errorf("%s part after %s part: %w", kind, k, ErrOrderViolation)
		}
	}
	return nil
}

// hasKind reports whether a part of the given kind has been appended.
func (s Selector) hasKind(kind PartKind) bool {
	for _, k := range s.kinds {
		if k == kind {
			return true
		}
	}
	return false
}

// Element appends a type selector (e.g. "div"). At most one element is
// allowed per selector.
func (s Selector) Element(name string) (Selector, error) {
	if s.usedElement {
		return Selector{}, fmt.Errorf("element %q: %w", name, ErrDuplicatePart)
	}
	if err := s.checkOrder(KindElement); err != nil {
		return Selector{}, err
	}
	next := s.push(KindElement, name)
	next.usedElement = true
	return next, nil
}

// ID appends an id selector rendered as "#name". At most one id is
// allowed per selector.
func (s Selector) ID(name string) (Selector, error) {
	if s.hasKind(KindID) {
		return Selector{}, fmt.Errorf("id %q: %w", name, ErrDuplicatePart)
	}
	if err := s.checkOrder(KindID); err != nil {
		return Selector{}, err
	}
	return s.push(KindID, "#"+name), nil
}

// Class appends a class selector rendered as ".name". Classes may repeat.
func (s Selector) Class(name string) (Selector, error) {
	if err := s.checkOrder(KindClass); err != nil {
		return Selector{}, err
	}
	return s.push(KindClass, "."+name), nil
}

// Attr appends an attribute selector rendered as "[spec]". The spec body
// (e.g. `href$=".png"`) is embedded verbatim and not validated further.
func (s Selector) Attr(spec string) (Selector, error) {
	if err := s.checkOrder(KindAttr); err != nil {
		return Selector{}, err
	}
	return s.push(KindAttr, "["+spec+"]"), nil
}

// PseudoClass appends a pseudo-class selector rendered as ":name".
// Pseudo-classes may repeat.
func (s Selector) PseudoClass(name string) (Selector, error) {
	if err := s.checkOrder(KindPseudoClass); err != nil {
		return Selector{}, err
	}
	return s.push(KindPseudoClass, ":"+name), nil
}

// PseudoElement appends a pseudo-element selector rendered as "::name".
// At most one pseudo-element is allowed per selector.
func (s Selector) PseudoElement(name string) (Selector, error) {
	if s.usedPseudoElement {
		return Selector{}, fmt.Errorf("pseudo-element %q: %w", name, ErrDuplicatePart)
	}
	if err := s.checkOrder(KindPseudoElement); err != nil {
		return Selector{}, err
	}
	next := s.push(KindPseudoElement, "::"+name)
	next.usedPseudoElement = true
	return next, nil
}

// Combine joins two selectors with a combinator, rendered with a single
// space on each side (a descendant combinator " " therefore renders as
// three spaces). The combinator string is embedded verbatim; no
// validation is applied. Combined selectors are render-only: part kind
// and duplicate tracking is dropped, so appending to the result is not
// supported behavior.
func Combine(left Selector, combinator string, right Selector) Selector {
	fragments := make([]string, 0, len(left.fragments)+len(right.fragments)+1)
	fragments = append(fragments, left.fragments...)
	fragments = append(fragments, " "+combinator+" ")
	fragments = append(fragments, right.fragments...)
	return Selector{fragments: fragments}
}

// Len returns the number of fragments accumulated so far.
func (s Selector) Len() int {
	return len(s.fragments)
}

// String renders the selector by concatenating its fragments. All
// separators are already embedded in the fragments themselves.
func (s Selector) String() string {
	return strings.Join(s.fragments, "")
}
