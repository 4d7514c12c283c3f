package field

import (
	"errors"
	"reflect"

	"github.com/acanthe/acanthe/schema"
)

// Bool returns a new boolean field with the given storage name.
func Bool(name string) *boolBuilder {
	d := newDescriptor(name, TypeBool)
	d.check = checkBool
	return &boolBuilder{desc: d}
}

// boolBuilder is the builder for boolean fields.
type boolBuilder struct {
	desc *Descriptor
}

// Label sets the form label of the field.
func (b *boolBuilder) Label(l string) *boolBuilder {
	b.desc.Label = l
	return b
}

// Help sets the tooltip displayed to the user.
func (b *boolBuilder) Help(h string) *boolBuilder {
	b.desc.Help = h
	return b
}

// Default sets the default value on create.
func (b *boolBuilder) Default(v bool) *boolBuilder {
	b.desc.Default = v
	return b
}

// Optional marks a value for this field as not required on create.
func (b *boolBuilder) Optional() *boolBuilder {
	b.desc.Optional = true
	return b
}

// NoCopy excludes the field value when a record is duplicated.
func (b *boolBuilder) NoCopy() *boolBuilder {
	b.desc.NoCopy = true
	return b
}

// Compute sets a function computing the field value at read time.
func (b *boolBuilder) Compute(fn any) *boolBuilder {
	b.desc.Computed = true
	b.desc.Compute = fn
	return b
}

// Validate adds a validation function applied by Check.
func (b *boolBuilder) Validate(fn func(bool) error) *boolBuilder {
	b.desc.Validators = append(b.desc.Validators, fn)
	return b
}

// Index creates a single-column index on the field in the backend.
func (b *boolBuilder) Index() *boolBuilder {
	b.desc.Index = true
	return b
}

// ReadACL restricts read access to the given subjects.
func (b *boolBuilder) ReadACL(subjects ...string) *boolBuilder {
	b.desc.ReadACL = subjects
	return b
}

// WriteACL restricts write access to the given subjects.
func (b *boolBuilder) WriteACL(subjects ...string) *boolBuilder {
	b.desc.WriteACL = subjects
	return b
}

// BackendType overrides the storage type per backend.
func (b *boolBuilder) BackendType(types map[string]string) *boolBuilder {
	b.desc.BackendType = types
	return b
}

// Annotations adds schema annotations to the field.
func (b *boolBuilder) Annotations(annotations ...schema.Annotation) *boolBuilder {
	b.desc.Annotations = append(b.desc.Annotations, annotations...)
	return b
}

// Descriptor implements the acanthe.Field interface.
func (b *boolBuilder) Descriptor() *Descriptor {
	return b.desc.done()
}

// Int returns a new integer field with the given storage name.
func Int(name string) *intBuilder {
	d := newDescriptor(name, TypeInt)
	d.check = checkInt
	return &intBuilder{desc: d}
}

// intBuilder is the builder for integer fields.
type intBuilder struct {
	desc *Descriptor
}

// Size sets the digit count used by SQL backends.
func (b *intBuilder) Size(i int64) *intBuilder {
	b.desc.Size = i
	return b
}

// Zerofill pads the stored value with zeros in SQL backends.
func (b *intBuilder) Zerofill() *intBuilder {
	b.desc.Zerofill = true
	return b
}

// Unsigned stores the value as an unsigned integer in SQL backends.
func (b *intBuilder) Unsigned() *intBuilder {
	b.desc.Unsigned = true
	return b
}

// Min adds a validator rejecting values below i.
func (b *intBuilder) Min(i int) *intBuilder {
	return b.Validate(func(v int) error {
		if v < i {
			return errors.New("value out of range")
		}
		return nil
	})
}

// Max adds a validator rejecting values above i.
func (b *intBuilder) Max(i int) *intBuilder {
	return b.Validate(func(v int) error {
		if v > i {
			return errors.New("value out of range")
		}
		return nil
	})
}

// Range adds a validator keeping values within [i, j].
func (b *intBuilder) Range(i, j int) *intBuilder {
	return b.Validate(func(v int) error {
		if v < i || v > j {
			return errors.New("value out of range")
		}
		return nil
	})
}

// Positive adds a validator rejecting values below 1.
func (b *intBuilder) Positive() *intBuilder {
	return b.Min(1)
}

// NonNegative adds a validator rejecting negative values.
func (b *intBuilder) NonNegative() *intBuilder {
	return b.Min(0)
}

// Label sets the form label of the field.
func (b *intBuilder) Label(l string) *intBuilder {
	b.desc.Label = l
	return b
}

// Help sets the tooltip displayed to the user.
func (b *intBuilder) Help(h string) *intBuilder {
	b.desc.Help = h
	return b
}

// Default sets the default value on create.
func (b *intBuilder) Default(i int) *intBuilder {
	b.desc.Default = i
	return b
}

// DefaultFunc sets a function that computes the default value on create.
func (b *intBuilder) DefaultFunc(fn func() int) *intBuilder {
	b.desc.Default = fn
	return b
}

// Identifier marks the field as the record identifier.
func (b *intBuilder) Identifier() *intBuilder {
	b.desc.Identifier = true
	return b
}

// Optional marks a value for this field as not required on create.
func (b *intBuilder) Optional() *intBuilder {
	b.desc.Optional = true
	return b
}

// NoCopy excludes the field value when a record is duplicated.
func (b *intBuilder) NoCopy() *intBuilder {
	b.desc.NoCopy = true
	return b
}

// Unique makes the field value unique in the backend.
func (b *intBuilder) Unique() *intBuilder {
	b.desc.Unique = true
	return b
}

// Compute sets a function computing the field value at read time.
func (b *intBuilder) Compute(fn any) *intBuilder {
	b.desc.Computed = true
	b.desc.Compute = fn
	return b
}

// Validate adds a validation function applied by Check.
func (b *intBuilder) Validate(fn func(int) error) *intBuilder {
	b.desc.Validators = append(b.desc.Validators, fn)
	return b
}

// Index creates a single-column index on the field in the backend.
func (b *intBuilder) Index() *intBuilder {
	b.desc.Index = true
	return b
}

// ReadACL restricts read access to the given subjects.
func (b *intBuilder) ReadACL(subjects ...string) *intBuilder {
	b.desc.ReadACL = subjects
	return b
}

// WriteACL restricts write access to the given subjects.
func (b *intBuilder) WriteACL(subjects ...string) *intBuilder {
	b.desc.WriteACL = subjects
	return b
}

// BackendType overrides the storage type per backend.
func (b *intBuilder) BackendType(types map[string]string) *intBuilder {
	b.desc.BackendType = types
	return b
}

// Annotations adds schema annotations to the field.
func (b *intBuilder) Annotations(annotations ...schema.Annotation) *intBuilder {
	b.desc.Annotations = append(b.desc.Annotations, annotations...)
	return b
}

// Descriptor implements the acanthe.Field interface.
func (b *intBuilder) Descriptor() *Descriptor {
	return b.desc.done()
}

// Decimal returns a new decimal field with the given storage name.
// It defaults to 10 digits with 5 decimal digits of precision.
func Decimal(name string) *decimalBuilder {
	d := newDescriptor(name, TypeDecimal)
	d.Size = 10
	d.Precision = 5
	d.check = checkDecimal
	return &decimalBuilder{desc: d}
}

// Currency returns a new currency field with the given storage name.
// It defaults to 10 digits with 2 decimal digits of precision.
func Currency(name string) *decimalBuilder {
	d := newDescriptor(name, TypeCurrency)
	d.Size = 10
	d.Precision = 2
	d.check = checkDecimal
	return &decimalBuilder{desc: d}
}

// decimalBuilder is the builder for fixed-precision numeric fields.
type decimalBuilder struct {
	desc *Descriptor
}

// Size sets the total digit count.
func (b *decimalBuilder) Size(i int64) *decimalBuilder {
	b.desc.Size = i
	return b
}

// Precision sets the number of decimal digits.
func (b *decimalBuilder) Precision(i int) *decimalBuilder {
	b.desc.Precision = i
	return b
}

// Min adds a validator rejecting values below f.
func (b *decimalBuilder) Min(f float64) *decimalBuilder {
	return b.Validate(func(v float64) error {
		if v < f {
			return errors.New("value out of range")
		}
		return nil
	})
}

// Max adds a validator rejecting values above f.
func (b *decimalBuilder) Max(f float64) *decimalBuilder {
	return b.Validate(func(v float64) error {
		if v > f {
			return errors.New("value out of range")
		}
		return nil
	})
}

// Range adds a validator keeping values within [f, g].
func (b *decimalBuilder) Range(f, g float64) *decimalBuilder {
	return b.Validate(func(v float64) error {
		if v < f || v > g {
			return errors.New("value out of range")
		}
		return nil
	})
}

// Positive adds a validator rejecting values at or below zero.
func (b *decimalBuilder) Positive() *decimalBuilder {
	return b.Validate(func(v float64) error {
		if v <= 0 {
			return errors.New("value out of range")
		}
		return nil
	})
}

// Label sets the form label of the field.
func (b *decimalBuilder) Label(l string) *decimalBuilder {
	b.desc.Label = l
	return b
}

// Help sets the tooltip displayed to the user.
func (b *decimalBuilder) Help(h string) *decimalBuilder {
	b.desc.Help = h
	return b
}

// Default sets the default value on create.
func (b *decimalBuilder) Default(f float64) *decimalBuilder {
	b.desc.Default = f
	return b
}

// Optional marks a value for this field as not required on create.
func (b *decimalBuilder) Optional() *decimalBuilder {
	b.desc.Optional = true
	return b
}

// NoCopy excludes the field value when a record is duplicated.
func (b *decimalBuilder) NoCopy() *decimalBuilder {
	b.desc.NoCopy = true
	return b
}

// Unique makes the field value unique in the backend.
func (b *decimalBuilder) Unique() *decimalBuilder {
	b.desc.Unique = true
	return b
}

// Compute sets a function computing the field value at read time.
func (b *decimalBuilder) Compute(fn any) *decimalBuilder {
	b.desc.Computed = true
	b.desc.Compute = fn
	return b
}

// Validate adds a validation function applied by Check.
func (b *decimalBuilder) Validate(fn func(float64) error) *decimalBuilder {
	b.desc.Validators = append(b.desc.Validators, fn)
	return b
}

// Index creates a single-column index on the field in the backend.
func (b *decimalBuilder) Index() *decimalBuilder {
	b.desc.Index = true
	return b
}

// ReadACL restricts read access to the given subjects.
func (b *decimalBuilder) ReadACL(subjects ...string) *decimalBuilder {
	b.desc.ReadACL = subjects
	return b
}

// WriteACL restricts write access to the given subjects.
func (b *decimalBuilder) WriteACL(subjects ...string) *decimalBuilder {
	b.desc.WriteACL = subjects
	return b
}

// BackendType overrides the storage type per backend.
func (b *decimalBuilder) BackendType(types map[string]string) *decimalBuilder {
	b.desc.BackendType = types
	return b
}

// Annotations adds schema annotations to the field.
func (b *decimalBuilder) Annotations(annotations ...schema.Annotation) *decimalBuilder {
	b.desc.Annotations = append(b.desc.Annotations, annotations...)
	return b
}

// Descriptor implements the acanthe.Field interface.
func (b *decimalBuilder) Descriptor() *Descriptor {
	return b.desc.done()
}

// checkBool validates that the input is a boolean.
func checkBool(d *Descriptor, v any) error {
	val, ok := v.(bool)
	if !ok {
		return invalidf(d, "invalid boolean: %v", v)
	}
	return runValidators(d, val)
}

// checkInt validates that the input is an integer of any width.
func checkInt(d *Descriptor, v any) error {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return runValidators(d, int(rv.Int()))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return runValidators(d, int(rv.Uint()))
	}
	return invalidf(d, "invalid integer: %v", v)
}

// checkDecimal validates that the input is numeric. Integers are accepted
// and widened to float64 before user validation.
func checkDecimal(d *Descriptor, v any) error {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		return runValidators(d, rv.Float())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return runValidators(d, float64(rv.Int()))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return runValidators(d, float64(rv.Uint()))
	}
	return invalidf(d, "invalid %s: %v", d.Type, v)
}
