package mimetype_test

import (
	"testing"

	"github.com/acanthe/acanthe/mimetype"

	"github.com/stretchr/testify/assert"
)

func TestKnown(t *testing.T) {
	assert.True(t, mimetype.Known("application/pdf"))
	assert.True(t, mimetype.Known("image/png", "image/jpeg", "image/gif"))
	assert.False(t, mimetype.Known("application/x-made-up"))
	assert.False(t, mimetype.Known("image/png", "application/x-made-up"))
	assert.False(t, mimetype.Known())
}

func TestKnown_Groups(t *testing.T) {
	// The shipped allow-lists are themselves registered.
	assert.True(t, mimetype.Known(mimetype.OpenFormat...))
	assert.True(t, mimetype.Known(mimetype.Image...))
}

func TestMatchExtension(t *testing.T) {
	assert.True(t, mimetype.MatchExtension("application/pdf", "pdf"))
	assert.True(t, mimetype.MatchExtension("image/jpeg", "jpg"))
	assert.True(t, mimetype.MatchExtension("image/jpeg", "jpeg"))
	assert.False(t, mimetype.MatchExtension("image/jpeg", "png"))
	assert.False(t, mimetype.MatchExtension("application/x-made-up", "bin"))
}

func TestExtensionsOf(t *testing.T) {
	exts := mimetype.ExtensionsOf("image/jpeg")
	assert.Equal(t, []string{"jpg", "jpeg", "jpe"}, exts)
	assert.Nil(t, mimetype.ExtensionsOf("application/x-made-up"))

	// Mutating the returned slice must not affect the registry.
	exts[0] = "tampered"
	assert.True(t, mimetype.MatchExtension("image/jpeg", "jpg"))
}
