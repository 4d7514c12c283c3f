package field

import (
	"regexp"

	"github.com/acanthe/acanthe/schema"
)

// List returns a new string-list field with the given storage name. Every
// element is screened against cross-site scripting patterns unless a custom
// accept pattern is supplied with Match. Non-list input is rejected.
func List(name string) *listBuilder {
	d := newDescriptor(name, TypeList)
	d.deny = patternXSS
	d.check = checkList
	return &listBuilder{desc: d}
}

// listBuilder is the builder for string-list fields.
type listBuilder struct {
	desc *Descriptor
}

// Match replaces the element validation pattern: every element must match
// the given pattern. This disables the default XSS screening.
func (b *listBuilder) Match(re *regexp.Regexp) *listBuilder {
	b.desc.pattern = re
	b.desc.deny = nil
	return b
}

// Label sets the form label of the field.
func (b *listBuilder) Label(l string) *listBuilder {
	b.desc.Label = l
	return b
}

// Help sets the tooltip displayed to the user.
func (b *listBuilder) Help(h string) *listBuilder {
	b.desc.Help = h
	return b
}

// Default sets the default value on create.
func (b *listBuilder) Default(vs []string) *listBuilder {
	b.desc.Default = vs
	return b
}

// Optional marks a value for this field as not required on create.
func (b *listBuilder) Optional() *listBuilder {
	b.desc.Optional = true
	return b
}

// NoCopy excludes the field value when a record is duplicated.
func (b *listBuilder) NoCopy() *listBuilder {
	b.desc.NoCopy = true
	return b
}

// Compute sets a function computing the field value at read time.
func (b *listBuilder) Compute(fn any) *listBuilder {
	b.desc.Computed = true
	b.desc.Compute = fn
	return b
}

// Validate adds a validation function applied by Check to the whole list.
func (b *listBuilder) Validate(fn func([]string) error) *listBuilder {
	b.desc.Validators = append(b.desc.Validators, fn)
	return b
}

// Sensitive excludes the field value from logs and dumps.
func (b *listBuilder) Sensitive() *listBuilder {
	b.desc.Sensitive = true
	return b
}

// ReadACL restricts read access to the given subjects.
func (b *listBuilder) ReadACL(subjects ...string) *listBuilder {
	b.desc.ReadACL = subjects
	return b
}

// WriteACL restricts write access to the given subjects.
func (b *listBuilder) WriteACL(subjects ...string) *listBuilder {
	b.desc.WriteACL = subjects
	return b
}

// BackendType overrides the storage type per backend.
func (b *listBuilder) BackendType(types map[string]string) *listBuilder {
	b.desc.BackendType = types
	return b
}

// Annotations adds schema annotations to the field.
func (b *listBuilder) Annotations(annotations ...schema.Annotation) *listBuilder {
	b.desc.Annotations = append(b.desc.Annotations, annotations...)
	return b
}

// Descriptor implements the acanthe.Field interface.
func (b *listBuilder) Descriptor() *Descriptor {
	return b.desc.done()
}

// checkList validates string-list input: the value must be a []string and
// every element must satisfy the field's pattern.
func checkList(d *Descriptor, v any) error {
	vals, ok := v.([]string)
	if !ok {
		return invalidf(d, "invalid list: %v", v)
	}
	for _, val := range vals {
		if err := checkPattern(d, val); err != nil {
			return err
		}
	}
	return runValidators(d, vals)
}
