// Package acanthe provides the interfaces for defining declarative model
// schemas: fields, indexes, and reusable mixins.
//
// A model schema embeds acanthe.Schema and declares its attributes with the
// builders from schema/field and schema/index:
//
//	type User struct{ acanthe.Schema }
//
//	func (User) Fields() []acanthe.Field {
//	    return []acanthe.Field{
//	        field.String("login").Identifier(),
//	        field.Email("mail").Unique(),
//	        field.Enum("status").Values("active", "suspended"),
//	    }
//	}
//
//	func (User) Indexes() []acanthe.Index {
//	    return []acanthe.Index{
//	        index.Fields("mail").Unique(),
//	    }
//	}
//
// The persistence engine walks the declared descriptors to build backend
// schemas (SQL, LDAP) and calls Descriptor.Check before writing values.
package acanthe

import (
	"github.com/acanthe/acanthe/schema"
	"github.com/acanthe/acanthe/schema/field"
	"github.com/acanthe/acanthe/schema/index"
)

// Interface is the interface that all model schemas implement.
// Embedding Schema provides default implementations for all methods.
type Interface interface {
	// Fields returns the fields of the schema.
	Fields() []Field
	// Indexes returns the indexes of the schema.
	Indexes() []Index
	// Mixin returns the mixed-in schemas.
	Mixin() []Mixin
	// Annotations returns the schema annotations.
	Annotations() []schema.Annotation
}

// Field is the interface implemented by all field builders in schema/field.
type Field interface {
	Descriptor() *field.Descriptor
}

// Index is the interface implemented by the index builder in schema/index.
type Index interface {
	Descriptor() *index.Descriptor
}

// Mixin is a reusable set of fields and indexes that can be embedded
// in multiple schema definitions.
type Mixin interface {
	// Fields returns the fields contributed by the mixin.
	Fields() []Field
	// Indexes returns the indexes contributed by the mixin.
	Indexes() []Index
	// Annotations returns the annotations contributed by the mixin.
	Annotations() []schema.Annotation
}

// Schema is the default implementation of Interface. It should be embedded
// in all model schema definitions.
type Schema struct{}

// Fields of the schema.
func (Schema) Fields() []Field { return nil }

// Indexes of the schema.
func (Schema) Indexes() []Index { return nil }

// Mixin of the schema.
func (Schema) Mixin() []Mixin { return nil }

// Annotations of the schema.
func (Schema) Annotations() []schema.Annotation { return nil }

var _ Interface = (*Schema)(nil)
