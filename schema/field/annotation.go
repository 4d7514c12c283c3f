package field

import "github.com/acanthe/acanthe/schema"

// Annotation is a builtin schema annotation for configuring the fields'
// behavior in consuming layers.
type Annotation struct {
	// StructTag allows overriding the struct-tag of generated entity
	// fields, keyed by field name. For example:
	//
	//	field.Annotation{
	//		StructTag: map[string]string{
	//			"mail": `json:"email,omitempty"`,
	//		},
	//	}
	//
	StructTag map[string]string
}

// Name describes the annotation name.
func (Annotation) Name() string {
	return "Fields"
}

// Merge implements the schema.Merger interface.
func (a Annotation) Merge(other schema.Annotation) schema.Annotation {
	var ant Annotation
	switch other := other.(type) {
	case Annotation:
		ant = other
	case *Annotation:
		if other != nil {
			ant = *other
		}
	default:
		return a
	}
	for name, tag := range ant.StructTag {
		if a.StructTag == nil {
			a.StructTag = make(map[string]string)
		}
		a.StructTag[name] = tag
	}
	return a
}

var _ schema.Merger = (*Annotation)(nil)
