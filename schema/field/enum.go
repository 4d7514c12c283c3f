package field

import (
	"github.com/acanthe/acanthe/schema"
)

// Enum returns a new enum field with the given storage name. The allowed
// values must be declared with Values or NamedValues; an enum without
// values is a configuration error.
func Enum(name string) *enumBuilder {
	d := newDescriptor(name, TypeEnum)
	d.check = checkEnum
	return &enumBuilder{desc: d}
}

// Set returns a new set field with the given storage name: a list of
// strings, each of which must belong to the declared allowed values.
func Set(name string) *enumBuilder {
	d := newDescriptor(name, TypeSet)
	d.check = checkSet
	return &enumBuilder{desc: d}
}

// enumBuilder is the builder for enum and set fields.
type enumBuilder struct {
	desc *Descriptor
}

// Values adds the given values to the allowed values of the field.
func (b *enumBuilder) Values(values ...string) *enumBuilder {
	for _, v := range values {
		b.desc.Enums = append(b.desc.Enums, EnumValue{V: v})
	}
	return b
}

// NamedValues adds the given name/value pairs to the allowed values of the
// field. An odd number of arguments is a configuration error.
func (b *enumBuilder) NamedValues(nv ...string) *enumBuilder {
	if len(nv)%2 != 0 {
		b.desc.Err = misusef(b.desc, "NamedValues expects name/value pairs")
		return b
	}
	for i := 0; i < len(nv); i += 2 {
		b.desc.Enums = append(b.desc.Enums, EnumValue{N: nv[i], V: nv[i+1]})
	}
	return b
}

// Label sets the form label of the field.
func (b *enumBuilder) Label(l string) *enumBuilder {
	b.desc.Label = l
	return b
}

// Help sets the tooltip displayed to the user.
func (b *enumBuilder) Help(h string) *enumBuilder {
	b.desc.Help = h
	return b
}

// Default sets the default value on create.
func (b *enumBuilder) Default(v string) *enumBuilder {
	b.desc.Default = v
	return b
}

// Optional marks a value for this field as not required on create.
func (b *enumBuilder) Optional() *enumBuilder {
	b.desc.Optional = true
	return b
}

// NoCopy excludes the field value when a record is duplicated.
func (b *enumBuilder) NoCopy() *enumBuilder {
	b.desc.NoCopy = true
	return b
}

// Unique makes the field value unique in the backend.
func (b *enumBuilder) Unique() *enumBuilder {
	b.desc.Unique = true
	return b
}

// Compute sets a function computing the field value at read time.
func (b *enumBuilder) Compute(fn any) *enumBuilder {
	b.desc.Computed = true
	b.desc.Compute = fn
	return b
}

// Index creates a single-column index on the field in the backend.
func (b *enumBuilder) Index() *enumBuilder {
	b.desc.Index = true
	return b
}

// ReadACL restricts read access to the given subjects.
func (b *enumBuilder) ReadACL(subjects ...string) *enumBuilder {
	b.desc.ReadACL = subjects
	return b
}

// WriteACL restricts write access to the given subjects.
func (b *enumBuilder) WriteACL(subjects ...string) *enumBuilder {
	b.desc.WriteACL = subjects
	return b
}

// BackendType overrides the storage type per backend.
func (b *enumBuilder) BackendType(types map[string]string) *enumBuilder {
	b.desc.BackendType = types
	return b
}

// Annotations adds schema annotations to the field.
func (b *enumBuilder) Annotations(annotations ...schema.Annotation) *enumBuilder {
	b.desc.Annotations = append(b.desc.Annotations, annotations...)
	return b
}

// Descriptor implements the acanthe.Field interface.
func (b *enumBuilder) Descriptor() *Descriptor {
	d := b.desc
	if len(d.Enums) == 0 && d.Err == nil {
		d.Err = misusef(d, "missing values")
	}
	return d.done()
}

// allowed reports if v is one of the declared values.
func (d *Descriptor) allowed(v string) bool {
	for i := range d.Enums {
		if d.Enums[i].V == v {
			return true
		}
	}
	return false
}

// checkEnum validates that the input is a scalar string belonging to the
// declared values. List input is rejected outright; non-string scalars are
// a validation error.
func checkEnum(d *Descriptor, v any) error {
	switch val := v.(type) {
	case []string, []any:
		return invalidf(d, "list is not a valid enum value")
	case string:
		if !d.allowed(val) {
			return invalidf(d, "%q is not an allowed value", val)
		}
		return nil
	}
	return invalidf(d, "invalid enum value: %v", v)
}

// checkSet validates that every element of the input list belongs to the
// declared values. Non-list input is rejected outright.
func checkSet(d *Descriptor, v any) error {
	vals, ok := v.([]string)
	if !ok {
		return invalidf(d, "invalid set: %v", v)
	}
	for _, val := range vals {
		if !d.allowed(val) {
			return invalidf(d, "%q is not an allowed value", val)
		}
	}
	return nil
}
