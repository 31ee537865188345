package ssml

// Walk visits every element of the document in document order, depth first.
// fn receives each element and its path; returning false skips the element's
// children.
func Walk(doc *Document, fn func(el Element, path Path) bool) {
	walkChildren(doc.Children(), nil, fn)
}

func walkChildren(els []Element, path Path, fn func(Element, Path) bool) {
	for i, el := range els {
		p := path.child(i)
		if fn(el, p) {
			walkChildren(el.Children(), p, fn)
		}
	}
}
