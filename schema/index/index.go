// Package index provides the builder for backend index definitions:
// one or more columns combined into a single, optionally unique, index.
//
//	index.Fields("name")
//	index.Fields("first", "last").Unique()
//	index.Fields("mail").Unique().StorageKey("idx_unique_mail")
package index

import "github.com/acanthe/acanthe/schema"

// A Descriptor for index configuration.
type Descriptor struct {
	Unique      bool                // whether the index is unique
	Fields      []string            // the column names of the index
	StorageKey  string              // the index name in the backend
	Annotations []schema.Annotation // index annotations
}

// Builder for indexes on one or more columns.
type Builder struct {
	desc *Descriptor
}

// Fields creates an index over the given columns.
func Fields(fields ...string) *Builder {
	return &Builder{desc: &Descriptor{Fields: fields}}
}

// Unique sets the index to be a unique index.
func (b *Builder) Unique() *Builder {
	b.desc.Unique = true
	return b
}

// StorageKey sets the name of the index in the backend.
func (b *Builder) StorageKey(key string) *Builder {
	b.desc.StorageKey = key
	return b
}

// Annotations adds schema annotations to the index.
func (b *Builder) Annotations(annotations ...schema.Annotation) *Builder {
	b.desc.Annotations = append(b.desc.Annotations, annotations...)
	return b
}

// Descriptor implements the acanthe.Index interface.
func (b *Builder) Descriptor() *Descriptor {
	return b.desc
}
