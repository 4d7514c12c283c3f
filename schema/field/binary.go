package field

import (
	"bytes"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"slices"

	"github.com/acanthe/acanthe/mimetype"
	"github.com/acanthe/acanthe/schema"
)

// FileInfo describes an uploaded file to be checked against a binary field.
type FileInfo struct {
	MimeType  string // mime type of the file
	Extension string // file extension without the leading dot
}

// Binary returns a new binary field with the given storage name. The
// allowed mime types default to the open formats of the mimetype registry;
// declaring a mime type unknown to the registry is a configuration error.
func Binary(name string) *binaryBuilder {
	d := newDescriptor(name, TypeBinary)
	d.MimeTypes = mimetype.OpenFormat
	d.check = checkBinary
	return &binaryBuilder{desc: d}
}

// binaryBuilder is the builder for binary fields.
type binaryBuilder struct {
	desc *Descriptor
}

// MimeTypes replaces the allowed mime types of the field.
func (b *binaryBuilder) MimeTypes(types ...string) *binaryBuilder {
	b.desc.MimeTypes = types
	return b
}

// Label sets the form label of the field.
func (b *binaryBuilder) Label(l string) *binaryBuilder {
	b.desc.Label = l
	return b
}

// Help sets the tooltip displayed to the user.
func (b *binaryBuilder) Help(h string) *binaryBuilder {
	b.desc.Help = h
	return b
}

// Optional marks a value for this field as not required on create.
func (b *binaryBuilder) Optional() *binaryBuilder {
	b.desc.Optional = true
	return b
}

// NoCopy excludes the field value when a record is duplicated.
func (b *binaryBuilder) NoCopy() *binaryBuilder {
	b.desc.NoCopy = true
	return b
}

// Sensitive excludes the field value from logs and dumps.
func (b *binaryBuilder) Sensitive() *binaryBuilder {
	b.desc.Sensitive = true
	return b
}

// ReadACL restricts read access to the given subjects.
func (b *binaryBuilder) ReadACL(subjects ...string) *binaryBuilder {
	b.desc.ReadACL = subjects
	return b
}

// WriteACL restricts write access to the given subjects.
func (b *binaryBuilder) WriteACL(subjects ...string) *binaryBuilder {
	b.desc.WriteACL = subjects
	return b
}

// BackendType overrides the storage type per backend.
func (b *binaryBuilder) BackendType(types map[string]string) *binaryBuilder {
	b.desc.BackendType = types
	return b
}

// Annotations adds schema annotations to the field.
func (b *binaryBuilder) Annotations(annotations ...schema.Annotation) *binaryBuilder {
	b.desc.Annotations = append(b.desc.Annotations, annotations...)
	return b
}

// Descriptor implements the acanthe.Field interface.
func (b *binaryBuilder) Descriptor() *Descriptor {
	d := b.desc
	if d.Err == nil && !mimetype.Known(d.MimeTypes...) {
		d.Err = misusef(d, "unknown mime type in %v", d.MimeTypes)
	}
	return d.done()
}

// Image returns a new image field with the given storage name. The allowed
// mime types default to the image formats of the mimetype registry, and
// stored images are converted to the configured output format, image/png
// unless changed with Output.
func Image(name string) *imageBuilder {
	d := newDescriptor(name, TypeImage)
	d.MimeTypes = mimetype.Image
	d.OutMimeType = "image/png"
	d.OutExt = "png"
	d.check = checkBinary
	return &imageBuilder{desc: d}
}

// imageBuilder is the builder for image fields.
type imageBuilder struct {
	desc *Descriptor
}

// MimeTypes replaces the allowed input mime types of the field.
func (b *imageBuilder) MimeTypes(types ...string) *imageBuilder {
	b.desc.MimeTypes = types
	return b
}

// Output sets the mime type and file extension images are converted to.
// The mime type must be one of the allowed input types and match the
// extension, otherwise the field is misconfigured.
func (b *imageBuilder) Output(mimeType, extension string) *imageBuilder {
	b.desc.OutMimeType = mimeType
	b.desc.OutExt = extension
	return b
}

// Label sets the form label of the field.
func (b *imageBuilder) Label(l string) *imageBuilder {
	b.desc.Label = l
	return b
}

// Help sets the tooltip displayed to the user.
func (b *imageBuilder) Help(h string) *imageBuilder {
	b.desc.Help = h
	return b
}

// Optional marks a value for this field as not required on create.
func (b *imageBuilder) Optional() *imageBuilder {
	b.desc.Optional = true
	return b
}

// NoCopy excludes the field value when a record is duplicated.
func (b *imageBuilder) NoCopy() *imageBuilder {
	b.desc.NoCopy = true
	return b
}

// ReadACL restricts read access to the given subjects.
func (b *imageBuilder) ReadACL(subjects ...string) *imageBuilder {
	b.desc.ReadACL = subjects
	return b
}

// WriteACL restricts write access to the given subjects.
func (b *imageBuilder) WriteACL(subjects ...string) *imageBuilder {
	b.desc.WriteACL = subjects
	return b
}

// BackendType overrides the storage type per backend.
func (b *imageBuilder) BackendType(types map[string]string) *imageBuilder {
	b.desc.BackendType = types
	return b
}

// Annotations adds schema annotations to the field.
func (b *imageBuilder) Annotations(annotations ...schema.Annotation) *imageBuilder {
	b.desc.Annotations = append(b.desc.Annotations, annotations...)
	return b
}

// Descriptor implements the acanthe.Field interface.
func (b *imageBuilder) Descriptor() *Descriptor {
	d := b.desc
	switch {
	case d.Err != nil:
	case !mimetype.Known(d.MimeTypes...):
		d.Err = misusef(d, "unknown mime type in %v", d.MimeTypes)
	case !slices.Contains(d.MimeTypes, d.OutMimeType):
		d.Err = misusef(d, "output mime type %s not in %v", d.OutMimeType, d.MimeTypes)
	case !mimetype.MatchExtension(d.OutMimeType, d.OutExt):
		d.Err = misusef(d, "mime type and extension mismatch: %s - %s", d.OutMimeType, d.OutExt)
	}
	return d.done()
}

// checkBinary validates uploaded file metadata: the mime type must be
// allowed and match the file extension.
func checkBinary(d *Descriptor, v any) error {
	fi, ok := v.(FileInfo)
	if !ok {
		return invalidf(d, "invalid binary value: %v", v)
	}
	if !slices.Contains(d.MimeTypes, fi.MimeType) {
		return invalidf(d, "invalid mime type: %s", fi.MimeType)
	}
	if !mimetype.MatchExtension(fi.MimeType, fi.Extension) {
		return invalidf(d, "mime type and extension mismatch: %s - %s", fi.MimeType, fi.Extension)
	}
	return nil
}

// Convert re-encodes an image stream to the field's output format.
// PNG, JPEG and GIF outputs are supported; for any other output extension
// the stream is returned unchanged.
func (d *Descriptor) Convert(r io.Reader) (io.Reader, error) {
	var encode func(io.Writer, image.Image) error
	switch d.OutExt {
	case "png":
		encode = png.Encode
	case "jpg", "jpeg", "jpe":
		encode = func(w io.Writer, m image.Image) error {
			return jpeg.Encode(w, m, nil)
		}
	case "gif":
		encode = func(w io.Writer, m image.Image) error {
			return gif.Encode(w, m, nil)
		}
	default:
		return r, nil
	}
	m, _, err := image.Decode(r)
	if err != nil {
		return nil, invalidf(d, "decoding image: %v", err)
	}
	buf := &bytes.Buffer{}
	if err := encode(buf, m); err != nil {
		return nil, invalidf(d, "encoding image: %v", err)
	}
	return buf, nil
}
