package field

import (
	"strings"
	"time"

	"github.com/acanthe/acanthe/schema"
)

// Date returns a new date field with the given storage name. String input
// must be an RFC 3339 full-date like "2016-01-02".
func Date(name string) *timeBuilder {
	d := newDescriptor(name, TypeDate)
	d.pattern = patternDate
	d.check = checkTemporal
	return &timeBuilder{desc: d}
}

// DateTime returns a new datetime field with the given storage name. String
// input must be an RFC 3339 timestamp like "2016-01-02T15:04:05Z".
func DateTime(name string) *timeBuilder {
	d := newDescriptor(name, TypeDateTime)
	d.pattern = patternDateTime
	d.check = checkTemporal
	return &timeBuilder{desc: d}
}

// Time returns a new time-of-day field with the given storage name. String
// input must be an RFC 3339 partial-time like "15:04:05".
func Time(name string) *timeBuilder {
	d := newDescriptor(name, TypeTime)
	d.pattern = patternTime
	d.check = checkTemporal
	return &timeBuilder{desc: d}
}

// timeBuilder is the builder for date and time fields.
type timeBuilder struct {
	desc *Descriptor
}

// Label sets the form label of the field.
func (b *timeBuilder) Label(l string) *timeBuilder {
	b.desc.Label = l
	return b
}

// Help sets the tooltip displayed to the user.
func (b *timeBuilder) Help(h string) *timeBuilder {
	b.desc.Help = h
	return b
}

// Default sets a function that computes the default value on create.
// For example:
//
//	field.DateTime("created_at").Default(time.Now)
func (b *timeBuilder) Default(fn func() time.Time) *timeBuilder {
	b.desc.Default = fn
	return b
}

// Identifier marks the field as the record identifier.
func (b *timeBuilder) Identifier() *timeBuilder {
	b.desc.Identifier = true
	return b
}

// Optional marks a value for this field as not required on create.
func (b *timeBuilder) Optional() *timeBuilder {
	b.desc.Optional = true
	return b
}

// NoCopy excludes the field value when a record is duplicated.
func (b *timeBuilder) NoCopy() *timeBuilder {
	b.desc.NoCopy = true
	return b
}

// Unique makes the field value unique in the backend.
func (b *timeBuilder) Unique() *timeBuilder {
	b.desc.Unique = true
	return b
}

// Compute sets a function computing the field value at read time.
func (b *timeBuilder) Compute(fn any) *timeBuilder {
	b.desc.Computed = true
	b.desc.Compute = fn
	return b
}

// Validate adds a validation function applied by Check. String input is
// parsed into a time.Time before the validators run.
func (b *timeBuilder) Validate(fn func(time.Time) error) *timeBuilder {
	b.desc.Validators = append(b.desc.Validators, fn)
	return b
}

// Index creates a single-column index on the field in the backend.
func (b *timeBuilder) Index() *timeBuilder {
	b.desc.Index = true
	return b
}

// ReadACL restricts read access to the given subjects.
func (b *timeBuilder) ReadACL(subjects ...string) *timeBuilder {
	b.desc.ReadACL = subjects
	return b
}

// WriteACL restricts write access to the given subjects.
func (b *timeBuilder) WriteACL(subjects ...string) *timeBuilder {
	b.desc.WriteACL = subjects
	return b
}

// BackendType overrides the storage type per backend.
func (b *timeBuilder) BackendType(types map[string]string) *timeBuilder {
	b.desc.BackendType = types
	return b
}

// Annotations adds schema annotations to the field.
func (b *timeBuilder) Annotations(annotations ...schema.Annotation) *timeBuilder {
	b.desc.Annotations = append(b.desc.Annotations, annotations...)
	return b
}

// Descriptor implements the acanthe.Field interface.
func (b *timeBuilder) Descriptor() *Descriptor {
	return b.desc.done()
}

// temporalLayouts are the parse layouts per field type, tried in order.
// Fractional seconds are handled by time.Parse without a layout marker.
var temporalLayouts = map[Type][]string{
	TypeDate: {"2006-01-02"},
	TypeTime: {"15:04:05Z07:00", "15:04:05"},
	TypeDateTime: {
		"2006-01-02T15:04:05Z07:00",
		"2006-01-02T15:04:05",
		"2006-01-02 15:04:05Z07:00",
		"2006-01-02 15:04:05",
	},
}

// checkTemporal validates date and time input. time.Time values are
// accepted directly; strings must match the field's RFC 3339 pattern and
// parse to a valid calendar value. User validators run on the parsed time
// either way.
func checkTemporal(d *Descriptor, v any) error {
	switch val := v.(type) {
	case time.Time:
		return runValidators(d, val)
	case string:
		if err := checkPattern(d, val); err != nil {
			return err
		}
		t, err := parseTemporal(d.Type, val)
		if err != nil {
			return invalidf(d, "invalid %s: %v", d.Type, err)
		}
		return runValidators(d, t)
	}
	return invalidf(d, "invalid %s: %v", d.Type, v)
}

// parseTemporal parses a pattern-matched string into a time.Time. The
// patterns allow the lowercase t and z of RFC 3339, which time.Parse does
// not, so the input is uppercased first.
func parseTemporal(typ Type, s string) (t time.Time, err error) {
	s = strings.ToUpper(s)
	for _, layout := range temporalLayouts[typ] {
		if t, err = time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, err
}
