package ssml

// Structural nesting rules that hold for every flavor. Anything a flavor may
// additionally restrict lives in the capability tables; anything rejected
// here is never valid and fails at construction time.

// leafKinds have no child-accepting API at all.
var leafKinds = map[ElementKind]bool{
	KindText:  true,
	KindRaw:   true,
	KindBreak: true,
	KindMark:  true,
}

// inlineOnly lists container kinds whose content must stay below the
// paragraph/sentence level.
var inlineOnly = map[ElementKind]bool{
	KindEmphasis: true,
	KindSentence: true,
}

// childAllowed reports whether child may structurally nest inside parent,
// regardless of flavor.
func childAllowed(parent, child ElementKind) bool {
	if child == KindSpeak {
		return false
	}
	if leafKinds[parent] {
		return false
	}
	switch parent {
	case KindSayAs:
		return child == KindText
	case KindParagraph:
		return child != KindParagraph
	default:
		if inlineOnly[parent] {
			return child != KindParagraph && child != KindSentence
		}
		return true
	}
}

// checkChildren verifies every child against the structural table for parent.
func checkChildren(parent ElementKind, children []Element) error {
	for _, c := range children {
		if !childAllowed(parent, c.Kind()) {
			return &ShapeError{Parent: parent, Child: c.Kind()}
		}
	}
	return nil
}
