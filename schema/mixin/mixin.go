// Package mixin provides reusable sets of fields and indexes that can be
// embedded in multiple schema definitions.
//
// To create a custom mixin, embed Schema and override the methods you
// need:
//
//	type AuditMixin struct {
//	    mixin.Schema
//	}
//
//	func (AuditMixin) Fields() []acanthe.Field {
//	    return []acanthe.Field{
//	        field.DateTime("created_at").Default(time.Now).NoCopy(),
//	        field.String("created_by").Optional(),
//	    }
//	}
//
// Using mixins:
//
//	func (User) Mixin() []acanthe.Mixin {
//	    return []acanthe.Mixin{
//	        mixin.Time{},       // created_at, updated_at
//	        mixin.SoftDelete{}, // deleted_at
//	    }
//	}
package mixin

import (
	"time"

	"github.com/acanthe/acanthe"
	"github.com/acanthe/acanthe/schema"
	"github.com/acanthe/acanthe/schema/field"
)

// Schema is the default implementation of the acanthe.Mixin interface.
// It should be embedded in all custom mixin definitions.
type Schema struct{}

// Fields returns the fields of the mixin.
func (Schema) Fields() []acanthe.Field { return nil }

// Indexes returns the indexes of the mixin.
func (Schema) Indexes() []acanthe.Index { return nil }

// Annotations returns the annotations of the mixin.
func (Schema) Annotations() []schema.Annotation { return nil }

var _ acanthe.Mixin = (*Schema)(nil)

// Time adds created_at and updated_at timestamp fields to a schema.
// Both are excluded from record duplication; created_at is set once on
// creation.
type Time struct {
	Schema
}

// Fields returns the time tracking fields.
func (Time) Fields() []acanthe.Field {
	return append(CreateTime{}.Fields(), UpdateTime{}.Fields()...)
}

// CreateTime adds only a created_at timestamp field to a schema.
type CreateTime struct {
	Schema
}

// Fields returns the created_at field.
func (CreateTime) Fields() []acanthe.Field {
	return []acanthe.Field{
		field.DateTime("created_at").
			Default(time.Now).
			NoCopy().
			Help("Timestamp of record creation"),
	}
}

// UpdateTime adds only an updated_at timestamp field to a schema.
type UpdateTime struct {
	Schema
}

// Fields returns the updated_at field.
func (UpdateTime) Fields() []acanthe.Field {
	return []acanthe.Field{
		field.DateTime("updated_at").
			Default(time.Now).
			NoCopy().
			Help("Timestamp of last record update"),
	}
}

// SoftDelete adds a deleted_at field for soft deletion support. A set
// value marks the record as deleted while it remains in the backend.
type SoftDelete struct {
	Schema
}

// Fields returns the soft delete field.
func (SoftDelete) Fields() []acanthe.Field {
	return []acanthe.Field{
		field.DateTime("deleted_at").
			Optional().
			NoCopy().
			Help("Timestamp of soft deletion, unset for live records"),
	}
}

// TimeSoftDelete combines the Time and SoftDelete mixins.
type TimeSoftDelete struct {
	Schema
}

// Fields returns all timestamp and soft delete fields.
func (TimeSoftDelete) Fields() []acanthe.Field {
	return append(Time{}.Fields(), SoftDelete{}.Fields()...)
}

// AnnotateFields wraps a mixin and adds annotations to all its fields.
func AnnotateFields(m acanthe.Mixin, annotations ...schema.Annotation) acanthe.Mixin {
	return fieldAnnotator{Mixin: m, annotations: annotations}
}

type fieldAnnotator struct {
	acanthe.Mixin
	annotations []schema.Annotation
}

func (a fieldAnnotator) Fields() []acanthe.Field {
	fields := a.Mixin.Fields()
	for i := range fields {
		desc := fields[i].Descriptor()
		desc.Annotations = append(desc.Annotations, a.annotations...)
	}
	return fields
}
