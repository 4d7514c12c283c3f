package field

import (
	"github.com/acanthe/acanthe/schema"

	"github.com/google/uuid"
)

// UUID returns a new UUID field with the given storage name. It is the
// usual choice for generated record identifiers:
//
//	field.UUID("id").Identifier().Default(uuid.New)
func UUID(name string) *uuidBuilder {
	d := newDescriptor(name, TypeUUID)
	d.check = checkUUID
	return &uuidBuilder{desc: d}
}

// uuidBuilder is the builder for UUID fields.
type uuidBuilder struct {
	desc *Descriptor
}

// Label sets the form label of the field.
func (b *uuidBuilder) Label(l string) *uuidBuilder {
	b.desc.Label = l
	return b
}

// Help sets the tooltip displayed to the user.
func (b *uuidBuilder) Help(h string) *uuidBuilder {
	b.desc.Help = h
	return b
}

// Default sets a function that generates the value on create.
func (b *uuidBuilder) Default(fn func() uuid.UUID) *uuidBuilder {
	b.desc.Default = fn
	return b
}

// Identifier marks the field as the record identifier.
func (b *uuidBuilder) Identifier() *uuidBuilder {
	b.desc.Identifier = true
	return b
}

// Optional marks a value for this field as not required on create.
func (b *uuidBuilder) Optional() *uuidBuilder {
	b.desc.Optional = true
	return b
}

// NoCopy excludes the field value when a record is duplicated.
func (b *uuidBuilder) NoCopy() *uuidBuilder {
	b.desc.NoCopy = true
	return b
}

// Unique makes the field value unique in the backend.
func (b *uuidBuilder) Unique() *uuidBuilder {
	b.desc.Unique = true
	return b
}

// Index creates a single-column index on the field in the backend.
func (b *uuidBuilder) Index() *uuidBuilder {
	b.desc.Index = true
	return b
}

// ReadACL restricts read access to the given subjects.
func (b *uuidBuilder) ReadACL(subjects ...string) *uuidBuilder {
	b.desc.ReadACL = subjects
	return b
}

// WriteACL restricts write access to the given subjects.
func (b *uuidBuilder) WriteACL(subjects ...string) *uuidBuilder {
	b.desc.WriteACL = subjects
	return b
}

// BackendType overrides the storage type per backend.
func (b *uuidBuilder) BackendType(types map[string]string) *uuidBuilder {
	b.desc.BackendType = types
	return b
}

// Annotations adds schema annotations to the field.
func (b *uuidBuilder) Annotations(annotations ...schema.Annotation) *uuidBuilder {
	b.desc.Annotations = append(b.desc.Annotations, annotations...)
	return b
}

// Descriptor implements the acanthe.Field interface.
func (b *uuidBuilder) Descriptor() *Descriptor {
	return b.desc.done()
}

// checkUUID validates that the input is a uuid.UUID or an RFC 4122 string.
func checkUUID(d *Descriptor, v any) error {
	switch val := v.(type) {
	case uuid.UUID:
		return nil
	case string:
		if _, err := uuid.Parse(val); err != nil {
			return invalidf(d, "invalid uuid: %v", err)
		}
		return nil
	}
	return invalidf(d, "invalid uuid: %v", v)
}
