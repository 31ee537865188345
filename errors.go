package ssml

import "fmt"

// ShapeError reports an attempt to nest an element inside a parent that can
// never contain it, in any flavor. It is raised at construction time.
type ShapeError struct {
	// Parent is the element kind the child was being placed into.
	Parent ElementKind
	// Child is the rejected child kind.
	Child ElementKind
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("%s cannot contain %s", e.Parent, e.Child)
}

// UnsupportedElementError reports an element the selected flavor does not
// accept, either anywhere or in its current position.
type UnsupportedElementError struct {
	// Flavor is the flavor the document was validated against.
	Flavor Flavor
	// Kind is the unsupported element kind.
	Kind ElementKind
	// Parent is the kind of the element's parent.
	Parent ElementKind
	// Path locates the offending node.
	Path Path
}

func (e *UnsupportedElementError) Error() string {
	return fmt.Sprintf("%s does not support %s inside %s (at %s)", e.Flavor, e.Kind, e.Parent, e.Path)
}

// UnsupportedAttributeError reports an attribute the selected flavor does not
// accept on the element carrying it.
type UnsupportedAttributeError struct {
	// Flavor is the flavor the document was validated against.
	Flavor Flavor
	// Kind is the element kind carrying the attribute.
	Kind ElementKind
	// Attr is the unsupported attribute's wire name.
	Attr string
	// Path locates the offending node.
	Path Path
}

func (e *UnsupportedAttributeError) Error() string {
	return fmt.Sprintf("%s does not support %s on %s (at %s)", e.Flavor, e.Attr, e.Kind, e.Path)
}

// AttributeOutOfRangeError reports an attribute value outside the domain the
// selected flavor accepts.
type AttributeOutOfRangeError struct {
	// Flavor is the flavor the document was validated against.
	Flavor Flavor
	// Kind is the element kind carrying the attribute.
	Kind ElementKind
	// Attr is the attribute's wire name.
	Attr string
	// Value is the rejected value, rendered as attribute text.
	Value string
	// Domain describes the accepted domain.
	Domain string
	// Path locates the offending node.
	Path Path
}

func (e *AttributeOutOfRangeError) Error() string {
	return fmt.Sprintf("%s on %s is %q, %s accepts %s (at %s)",
		e.Attr, e.Kind, e.Value, e.Flavor, e.Domain, e.Path)
}

// SerializeError wraps a validation error encountered while serializing with
// implicit validation.
type SerializeError struct {
	Err error
}

func (e *SerializeError) Error() string {
	return "serialize: " + e.Err.Error()
}

func (e *SerializeError) Unwrap() error { return e.Err }
