package field_test

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"io"
	"testing"

	"github.com/acanthe/acanthe/mimetype"
	"github.com/acanthe/acanthe/schema/field"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBinary(t *testing.T) {
	fd := field.Binary("attachment").Descriptor()
	require.NoError(t, fd.Err)
	assert.Equal(t, field.TypeBinary, fd.Type)
	assert.Equal(t, mimetype.OpenFormat, fd.MimeTypes)

	fd = field.Binary("report").MimeTypes("application/pdf").Descriptor()
	require.NoError(t, fd.Err)
	assert.Equal(t, []string{"application/pdf"}, fd.MimeTypes)
}

func TestBinary_ConfigErrors(t *testing.T) {
	fd := field.Binary("blob").MimeTypes("application/x-made-up").Descriptor()
	require.Error(t, fd.Err)
	assert.True(t, field.IsConfigError(fd.Err))

	fd = field.Binary("blob").MimeTypes().Descriptor()
	assert.True(t, field.IsConfigError(fd.Err))
}

func TestBinary_Check(t *testing.T) {
	fd := field.Binary("report").MimeTypes("application/pdf", "text/plain").Descriptor()
	require.NoError(t, fd.Err)

	assert.NoError(t, fd.Check(field.FileInfo{MimeType: "application/pdf", Extension: "pdf"}))
	assert.NoError(t, fd.Check(field.FileInfo{MimeType: "text/plain", Extension: "txt"}))

	// Disallowed mime type.
	err := fd.Check(field.FileInfo{MimeType: "image/png", Extension: "png"})
	require.Error(t, err)
	assert.True(t, field.IsValidationError(err))

	// Allowed mime type with the wrong extension.
	err = fd.Check(field.FileInfo{MimeType: "application/pdf", Extension: "txt"})
	require.Error(t, err)
	assert.True(t, field.IsValidationError(err))

	// Anything but file metadata is rejected.
	assert.Error(t, fd.Check("document.pdf"))
}

func TestImage(t *testing.T) {
	fd := field.Image("avatar").Descriptor()
	require.NoError(t, fd.Err)
	assert.Equal(t, field.TypeImage, fd.Type)
	assert.Equal(t, mimetype.Image, fd.MimeTypes)
	assert.Equal(t, "image/png", fd.OutMimeType)
	assert.Equal(t, "png", fd.OutExt)

	fd = field.Image("photo").Output("image/jpeg", "jpg").Descriptor()
	require.NoError(t, fd.Err)
	assert.Equal(t, "image/jpeg", fd.OutMimeType)
	assert.Equal(t, "jpg", fd.OutExt)
}

func TestImage_ConfigErrors(t *testing.T) {
	// Output mime type and extension must match.
	fd := field.Image("avatar").Output("image/png", "jpg").Descriptor()
	require.Error(t, fd.Err)
	assert.True(t, field.IsConfigError(fd.Err))

	// Output mime type must be one of the allowed input types.
	fd = field.Image("avatar").
		MimeTypes("image/png").
		Output("image/jpeg", "jpg").
		Descriptor()
	assert.True(t, field.IsConfigError(fd.Err))

	// Unknown mime type in the allow-list.
	fd = field.Image("avatar").MimeTypes("image/x-made-up").Descriptor()
	assert.True(t, field.IsConfigError(fd.Err))
}

// testJPEG encodes a small solid-color image as JPEG.
func testJPEG(t *testing.T) []byte {
	t.Helper()
	m := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for x := 0; x < 8; x++ {
		for y := 0; y < 8; y++ {
			m.Set(x, y, color.RGBA{R: 200, G: 100, B: 50, A: 255})
		}
	}
	buf := &bytes.Buffer{}
	require.NoError(t, jpeg.Encode(buf, m, nil))
	return buf.Bytes()
}

func TestImage_Convert(t *testing.T) {
	fd := field.Image("avatar").Descriptor()
	require.NoError(t, fd.Err)

	out, err := fd.Convert(bytes.NewReader(testJPEG(t)))
	require.NoError(t, err)
	m, err := png.Decode(out)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 8, 8), m.Bounds())
}

func TestImage_ConvertPassThrough(t *testing.T) {
	// An output extension outside the supported codecs leaves the
	// stream untouched.
	fd := field.Image("diagram").
		MimeTypes("image/png", "image/svg+xml").
		Output("image/svg+xml", "svg").
		Descriptor()
	require.NoError(t, fd.Err)

	in := bytes.NewReader([]byte("<svg/>"))
	out, err := fd.Convert(in)
	require.NoError(t, err)
	b, err := io.ReadAll(out)
	require.NoError(t, err)
	assert.Equal(t, []byte("<svg/>"), b)
}

func TestImage_ConvertBadStream(t *testing.T) {
	fd := field.Image("avatar").Descriptor()
	_, err := fd.Convert(bytes.NewReader([]byte("not an image")))
	require.Error(t, err)
	assert.True(t, field.IsValidationError(err))
}
