// Package schema provides the shared building blocks for schema definition:
// the Annotation interface attached to fields and indexes, and the Merger
// interface for combining annotations of the same kind.
//
// The concrete builders live in the subpackages:
//
//   - [field]: field builders for model attributes
//   - [index]: index builders for backend indexes
//   - [mixin]: reusable schema components
package schema

// Annotation is used to attach arbitrary metadata to schema objects.
// Backend adapters and code generators look annotations up by name.
type Annotation interface {
	// Name describes the annotation name.
	Name() string
}

// Merger wraps the single Merge function that allows two annotations
// of the same kind to be combined into one.
type Merger interface {
	Merge(Annotation) Annotation
}
