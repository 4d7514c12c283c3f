package field

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/acanthe/acanthe/schema"

	"github.com/go-openapi/inflect"
)

// A Type represents the semantic type of a field, independent of the
// backend it is persisted to.
type Type uint8

// List of field types.
const (
	TypeInvalid Type = iota
	TypeBool
	TypeInt
	TypeDecimal
	TypeCurrency
	TypeString
	TypeEmail
	TypeURL
	TypePhone
	TypeColor
	TypeDate
	TypeDateTime
	TypeTime
	TypeEnum
	TypeSet
	TypeList
	TypeBinary
	TypeImage
	TypeUUID
	endTypes
)

var typeNames = [...]string{
	TypeInvalid:  "invalid",
	TypeBool:     "bool",
	TypeInt:      "int",
	TypeDecimal:  "decimal",
	TypeCurrency: "currency",
	TypeString:   "string",
	TypeEmail:    "email",
	TypeURL:      "url",
	TypePhone:    "phone",
	TypeColor:    "color",
	TypeDate:     "date",
	TypeDateTime: "datetime",
	TypeTime:     "time",
	TypeEnum:     "enum",
	TypeSet:      "set",
	TypeList:     "list",
	TypeBinary:   "binary",
	TypeImage:    "image",
	TypeUUID:     "uuid",
}

// String returns the name of the type.
func (t Type) String() string {
	if t < endTypes {
		return typeNames[t]
	}
	return "type" + strconv.Itoa(int(t))
}

// Valid reports if the given type is a valid field type.
func (t Type) Valid() bool {
	return t > TypeInvalid && t < endTypes
}

// Numeric reports if the given type is a numeric type.
func (t Type) Numeric() bool {
	return t == TypeInt || t == TypeDecimal || t == TypeCurrency
}

// MarshalJSON encodes the type as its name.
func (t Type) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(t.String())), nil
}

// UnmarshalJSON decodes the type from its name.
func (t *Type) UnmarshalJSON(b []byte) error {
	name, err := strconv.Unquote(string(b))
	if err != nil {
		return err
	}
	for i := range typeNames {
		if typeNames[i] == name {
			*t = Type(i)
			return nil
		}
	}
	return fmt.Errorf("unknown field type %q", name)
}

// EnumValue holds one allowed value of an enum or set field. N is the
// optional display name, V the stored value.
type EnumValue struct {
	N string `json:"name,omitempty"`
	V string `json:"value"`
}

// A Descriptor for field configuration. It is created by one of the
// builders in this package, configured once at model-declaration time and
// read-only thereafter. Invalid configuration is recorded in Err and
// reported when the schema is loaded.
type Descriptor struct {
	Name        string              // storage name of the field
	Type        Type                // semantic field type
	Label       string              // form label, defaults to the humanized name
	Help        string              // tooltip displayed to the user
	Default     any                 // default value on create
	Identifier  bool                // field is the record identifier
	Optional    bool                // value not required on create
	NoCopy      bool                // skip the value when a record is duplicated
	Unique      bool                // unique constraint in backend
	Computed    bool                // value computed at read time, never stored
	Compute     any                 // compute function
	Index       bool                // field is indexed in backend
	ReadACL     []string            // access control for reads, defaults to ["*"]
	WriteACL    []string            // access control for writes, defaults to ["*"]
	BackendType map[string]string   // per-backend type override
	Sensitive   bool                // exclude the value from logs and dumps
	Size        int64               // max length or total digit count
	Precision   int                 // decimal digits for numeric types
	Enums       []EnumValue         // allowed values for enum and set fields
	MimeTypes   []string            // allowed mime types for binary fields
	OutMimeType string              // output mime type for image fields
	OutExt      string              // output file extension for image fields
	Zerofill    bool                // SQL zerofill for int fields
	Unsigned    bool                // SQL unsigned for int fields
	Validators  []any               // user validation functions
	Annotations []schema.Annotation // schema annotations
	Err         error               // configuration error

	pattern *regexp.Regexp // accept pattern: input must match
	deny    *regexp.Regexp // deny pattern: input must not match
	check   func(*Descriptor, any) error
}

func newDescriptor(name string, t Type) *Descriptor {
	return &Descriptor{
		Name:     name,
		Type:     t,
		ReadACL:  []string{"*"},
		WriteACL: []string{"*"},
	}
}

// done applies the declaration-time invariants shared by all builders.
// Identifier fields are always required and never carry a default.
func (d *Descriptor) done() *Descriptor {
	if d.Label == "" {
		d.Label = inflect.Humanize(d.Name)
	}
	if d.Identifier {
		d.Optional = false
		d.Default = nil
	}
	return d
}

// Check validates a field value before it is persisted. It returns a
// ValidationError if the value is rejected and the descriptor's
// configuration error if the field was misdeclared.
func (d *Descriptor) Check(v any) error {
	if d.Err != nil {
		return d.Err
	}
	if d.check != nil {
		if err := d.check(d, v); err != nil {
			return err
		}
	}
	return nil
}

// Pattern returns the accept pattern of the field, or nil.
func (d *Descriptor) Pattern() *regexp.Regexp {
	return d.pattern
}

// checkPattern matches s against the field's accept or deny pattern.
func checkPattern(d *Descriptor, s string) error {
	switch {
	case d.pattern != nil && !d.pattern.MatchString(s):
		return invalidf(d, "%q does not match %s", s, d.pattern)
	case d.pattern == nil && d.deny != nil && d.deny.MatchString(s):
		return invalidf(d, "%q contains forbidden characters", s)
	}
	return nil
}

// runValidators applies the user validation functions to a typed value.
// A validator of the wrong type is a declaration error, not an input error.
func runValidators[T any](d *Descriptor, v T) error {
	for _, fn := range d.Validators {
		validate, ok := fn.(func(T) error)
		if !ok {
			return misusef(d, "validator %T does not accept %T", fn, v)
		}
		if err := validate(v); err != nil {
			return NewValidationError(d.Name, err)
		}
	}
	return nil
}
