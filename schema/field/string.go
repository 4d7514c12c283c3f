package field

import (
	"regexp"

	"github.com/acanthe/acanthe/schema"
)

// String returns a new string field with the given storage name. Input is
// screened against cross-site scripting patterns unless a custom accept
// pattern is supplied with Match.
func String(name string) *stringBuilder {
	d := newDescriptor(name, TypeString)
	d.deny = patternXSS
	d.check = checkString
	return &stringBuilder{desc: d}
}

// Email returns a new email address field. Input must be a syntactically
// valid address; the stored length defaults to 255.
func Email(name string) *stringBuilder {
	d := newDescriptor(name, TypeEmail)
	d.pattern = patternEmail
	d.Size = 255
	d.check = checkString
	return &stringBuilder{desc: d}
}

// URL returns a new URL field. Input must be an absolute http or https URL;
// the stored length defaults to 2048.
func URL(name string) *stringBuilder {
	d := newDescriptor(name, TypeURL)
	d.pattern = patternURL
	d.Size = 2048
	d.check = checkString
	return &stringBuilder{desc: d}
}

// Phone returns a new phone number field. The stored length defaults to 20.
func Phone(name string) *stringBuilder {
	d := newDescriptor(name, TypePhone)
	d.pattern = patternPhone
	d.Size = 20
	d.check = checkString
	return &stringBuilder{desc: d}
}

// Color returns a new HTML color field accepting hex and rgb() notations.
// The stored length defaults to 15.
func Color(name string) *stringBuilder {
	d := newDescriptor(name, TypeColor)
	d.pattern = patternColor
	d.Size = 15
	d.check = checkString
	return &stringBuilder{desc: d}
}

// stringBuilder is the builder for string-based fields.
type stringBuilder struct {
	desc *Descriptor
}

// Match replaces the field's validation pattern: input must match the given
// pattern. For String fields this disables the default XSS screening.
func (b *stringBuilder) Match(re *regexp.Regexp) *stringBuilder {
	b.desc.pattern = re
	b.desc.deny = nil
	return b
}

// MaxLen sets the maximum stored length of the field.
func (b *stringBuilder) MaxLen(i int64) *stringBuilder {
	b.desc.Size = i
	return b
}

// Label sets the form label of the field. If not set, the humanized storage
// name is used.
func (b *stringBuilder) Label(l string) *stringBuilder {
	b.desc.Label = l
	return b
}

// Help sets the tooltip displayed to the user.
func (b *stringBuilder) Help(h string) *stringBuilder {
	b.desc.Help = h
	return b
}

// Default sets the default value on create.
func (b *stringBuilder) Default(s string) *stringBuilder {
	b.desc.Default = s
	return b
}

// DefaultFunc sets a function that computes the default value on create.
func (b *stringBuilder) DefaultFunc(fn func() string) *stringBuilder {
	b.desc.Default = fn
	return b
}

// Identifier marks the field as the record identifier. Identifier fields
// are always required and never carry a default.
func (b *stringBuilder) Identifier() *stringBuilder {
	b.desc.Identifier = true
	return b
}

// Optional marks a value for this field as not required on create.
func (b *stringBuilder) Optional() *stringBuilder {
	b.desc.Optional = true
	return b
}

// NoCopy excludes the field value when a record is duplicated.
func (b *stringBuilder) NoCopy() *stringBuilder {
	b.desc.NoCopy = true
	return b
}

// Unique makes the field value unique in the backend.
func (b *stringBuilder) Unique() *stringBuilder {
	b.desc.Unique = true
	return b
}

// Sensitive excludes the field value from logs and dumps.
func (b *stringBuilder) Sensitive() *stringBuilder {
	b.desc.Sensitive = true
	return b
}

// Compute sets a function computing the field value at read time.
// Computed fields are not stored in the backend.
func (b *stringBuilder) Compute(fn any) *stringBuilder {
	b.desc.Computed = true
	b.desc.Compute = fn
	return b
}

// Validate adds a validation function applied by Check after the built-in
// syntax checks.
func (b *stringBuilder) Validate(fn func(string) error) *stringBuilder {
	b.desc.Validators = append(b.desc.Validators, fn)
	return b
}

// Index creates a single-column index on the field in the backend.
func (b *stringBuilder) Index() *stringBuilder {
	b.desc.Index = true
	return b
}

// ReadACL restricts read access to the given subjects.
func (b *stringBuilder) ReadACL(subjects ...string) *stringBuilder {
	b.desc.ReadACL = subjects
	return b
}

// WriteACL restricts write access to the given subjects.
func (b *stringBuilder) WriteACL(subjects ...string) *stringBuilder {
	b.desc.WriteACL = subjects
	return b
}

// BackendType overrides the storage type per backend. For example:
//
//	field.String("body").BackendType(map[string]string{
//		backend.Postgres: "text",
//		backend.LDAP:     "caseIgnoreString",
//	})
func (b *stringBuilder) BackendType(types map[string]string) *stringBuilder {
	b.desc.BackendType = types
	return b
}

// Annotations adds schema annotations to the field.
func (b *stringBuilder) Annotations(annotations ...schema.Annotation) *stringBuilder {
	b.desc.Annotations = append(b.desc.Annotations, annotations...)
	return b
}

// Descriptor implements the acanthe.Field interface.
func (b *stringBuilder) Descriptor() *Descriptor {
	return b.desc.done()
}

// checkString validates string-based field input: the value must be a
// string and satisfy the field's pattern.
func checkString(d *Descriptor, v any) error {
	s, ok := v.(string)
	if !ok {
		return invalidf(d, "invalid string: %v", v)
	}
	if err := checkPattern(d, s); err != nil {
		return err
	}
	return runValidators(d, s)
}
