// Package load converts declared schemas into serializable snapshot
// records. The persistence engine consumes these records to build backend
// schemas, and caches them between runs in a compact binary form.
package load

import (
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/acanthe/acanthe"
	"github.com/acanthe/acanthe/schema"
	"github.com/acanthe/acanthe/schema/field"
	"github.com/acanthe/acanthe/schema/index"

	"github.com/vmihailenco/msgpack/v5"
)

// Schema represents an acanthe.Interface that was loaded from a declared
// model schema.
type Schema struct {
	Name        string         `json:"name,omitempty"`
	Fields      []*Field       `json:"fields,omitempty"`
	Indexes     []*Index       `json:"indexes,omitempty"`
	Annotations map[string]any `json:"annotations,omitempty"`
}

// Field represents one field.Descriptor in serializable form. Function
// values (defaults, compute and validation functions) are reduced to their
// presence and count.
type Field struct {
	Name         string            `json:"name,omitempty"`
	Type         field.Type        `json:"type,omitempty"`
	Label        string            `json:"label,omitempty"`
	Help         string            `json:"help,omitempty"`
	Size         int64             `json:"size,omitempty"`
	Precision    int               `json:"precision,omitempty"`
	Enums        []field.EnumValue      `json:"enums,omitempty"`
	Identifier   bool              `json:"identifier,omitempty"`
	Optional     bool              `json:"optional,omitempty"`
	NoCopy       bool              `json:"no_copy,omitempty"`
	Unique       bool              `json:"unique,omitempty"`
	Computed     bool              `json:"computed,omitempty"`
	Index        bool              `json:"index,omitempty"`
	ReadACL      []string          `json:"read_acl,omitempty"`
	WriteACL     []string          `json:"write_acl,omitempty"`
	BackendType  map[string]string `json:"backend_type,omitempty"`
	Sensitive    bool              `json:"sensitive,omitempty"`
	MimeTypes    []string          `json:"mime_types,omitempty"`
	OutMimeType  string            `json:"out_mime_type,omitempty"`
	OutExt       string            `json:"out_ext,omitempty"`
	Zerofill     bool              `json:"zerofill,omitempty"`
	Unsigned     bool              `json:"unsigned,omitempty"`
	Default      bool              `json:"default,omitempty"`
	DefaultValue any               `json:"default_value,omitempty"`
	DefaultKind  reflect.Kind      `json:"default_kind,omitempty"`
	Validators   int               `json:"validators,omitempty"`
	Annotations  map[string]any    `json:"annotations,omitempty"`
}

// Index represents one index.Descriptor in serializable form.
type Index struct {
	Unique      bool           `json:"unique,omitempty"`
	Fields      []string       `json:"fields,omitempty"`
	StorageKey  string         `json:"storage_key,omitempty"`
	Annotations map[string]any `json:"annotations,omitempty"`
}

// NewField creates a loaded field from a field descriptor. It returns the
// descriptor's configuration error if the field was misdeclared, making
// schema loading the point where declaration errors surface.
func NewField(fd *field.Descriptor) (*Field, error) {
	if fd.Err != nil {
		return nil, fd.Err
	}
	nf := &Field{
		Name:        fd.Name,
		Type:        fd.Type,
		Label:       fd.Label,
		Help:        fd.Help,
		Size:        fd.Size,
		Precision:   fd.Precision,
		Enums:       fd.Enums,
		Identifier:  fd.Identifier,
		Optional:    fd.Optional,
		NoCopy:      fd.NoCopy,
		Unique:      fd.Unique,
		Computed:    fd.Computed,
		Index:       fd.Index,
		ReadACL:     fd.ReadACL,
		WriteACL:    fd.WriteACL,
		BackendType: fd.BackendType,
		Sensitive:   fd.Sensitive,
		MimeTypes:   fd.MimeTypes,
		OutMimeType: fd.OutMimeType,
		OutExt:      fd.OutExt,
		Zerofill:    fd.Zerofill,
		Unsigned:    fd.Unsigned,
		Validators:  len(fd.Validators),
	}
	if fd.Default != nil {
		nf.Default = true
		nf.DefaultKind = reflect.TypeOf(fd.Default).Kind()
		if nf.DefaultKind != reflect.Func {
			nf.DefaultValue = fd.Default
		}
	}
	for _, at := range fd.Annotations {
		nf.Annotations = addAnnotation(nf.Annotations, at)
	}
	return nf, nil
}

// NewIndex creates a loaded index from an index descriptor.
func NewIndex(id *index.Descriptor) *Index {
	ni := &Index{
		Unique:     id.Unique,
		Fields:     id.Fields,
		StorageKey: id.StorageKey,
	}
	for _, at := range id.Annotations {
		ni.Annotations = addAnnotation(ni.Annotations, at)
	}
	return ni
}

// NewSchema creates a loaded schema from a declared model schema. Mixed-in
// fields and indexes precede the schema's own, in declaration order.
func NewSchema(s acanthe.Interface) (*Schema, error) {
	ns := &Schema{Name: schemaName(s)}
	var fields []acanthe.Field
	var indexes []acanthe.Index
	for _, mx := range s.Mixin() {
		fields = append(fields, mx.Fields()...)
		indexes = append(indexes, mx.Indexes()...)
		for _, at := range mx.Annotations() {
			ns.Annotations = addAnnotation(ns.Annotations, at)
		}
	}
	fields = append(fields, s.Fields()...)
	indexes = append(indexes, s.Indexes()...)
	for _, f := range fields {
		nf, err := NewField(f.Descriptor())
		if err != nil {
			return nil, fmt.Errorf("schema %q: %w", ns.Name, err)
		}
		ns.Fields = append(ns.Fields, nf)
	}
	for _, idx := range indexes {
		ns.Indexes = append(ns.Indexes, NewIndex(idx.Descriptor()))
	}
	for _, at := range s.Annotations() {
		ns.Annotations = addAnnotation(ns.Annotations, at)
	}
	return ns, nil
}

// MarshalBinary encodes the schema in the compact form used for snapshot
// caching.
func (s *Schema) MarshalBinary() ([]byte, error) {
	type alias Schema
	return msgpack.Marshal((*alias)(s))
}

// UnmarshalBinary decodes a snapshot produced by MarshalBinary.
func (s *Schema) UnmarshalBinary(b []byte) error {
	type alias Schema
	return msgpack.Unmarshal(b, (*alias)(s))
}

// String returns the JSON form of the schema, for inspection and tooling.
func (s *Schema) String() string {
	b, err := json.Marshal(s)
	if err != nil {
		return fmt.Sprintf("{Name: %s}", s.Name)
	}
	return string(b)
}

// addAnnotation merges an annotation into the name-keyed map, combining
// annotations of the same kind through the schema.Merger interface.
func addAnnotation(m map[string]any, at schema.Annotation) map[string]any {
	if m == nil {
		m = make(map[string]any)
	}
	name := at.Name()
	if curr, ok := m[name].(schema.Merger); ok {
		m[name] = curr.Merge(at)
		return m
	}
	m[name] = at
	return m
}

// schemaName derives the schema name from its Go type.
func schemaName(s acanthe.Interface) string {
	t := reflect.TypeOf(s)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}
