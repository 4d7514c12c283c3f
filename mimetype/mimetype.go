// Package mimetype is the registry of mime types supported by binary
// fields. It maps each supported type to its file extensions and groups
// the types into the allow-lists binary and image fields default to.
package mimetype

import "slices"

// extensions maps every supported mime type to its file extensions,
// without the leading dot.
var extensions = map[string][]string{
	"application/pdf":  {"pdf"},
	"application/zip":  {"zip"},
	"application/json": {"json"},
	"application/xml":  {"xml"},
	"application/vnd.oasis.opendocument.text":         {"odt"},
	"application/vnd.oasis.opendocument.spreadsheet":  {"ods"},
	"application/vnd.oasis.opendocument.presentation": {"odp"},
	"application/vnd.oasis.opendocument.graphics":     {"odg"},
	"text/plain": {"txt", "text"},
	"text/csv":   {"csv"},
	"image/png":  {"png"},
	"image/jpeg": {"jpg", "jpeg", "jpe"},
	"image/gif":  {"gif"},
	"image/svg+xml": {"svg"},
	"audio/ogg":     {"ogg", "oga"},
	"video/ogg":     {"ogv"},
	"video/webm":    {"webm"},
}

// OpenFormat lists the open document formats, the default allow-list of
// binary fields.
var OpenFormat = []string{
	"application/pdf",
	"application/vnd.oasis.opendocument.text",
	"application/vnd.oasis.opendocument.spreadsheet",
	"application/vnd.oasis.opendocument.presentation",
	"application/vnd.oasis.opendocument.graphics",
	"text/plain",
	"text/csv",
	"image/png",
	"image/jpeg",
	"image/gif",
	"image/svg+xml",
	"audio/ogg",
	"video/ogg",
	"video/webm",
}

// Image lists the raster image formats, the default allow-list of image
// fields.
var Image = []string{
	"image/png",
	"image/jpeg",
	"image/gif",
}

// Known reports whether every given mime type is in the registry.
func Known(types ...string) bool {
	if len(types) == 0 {
		return false
	}
	for _, t := range types {
		if _, ok := extensions[t]; !ok {
			return false
		}
	}
	return true
}

// MatchExtension reports whether ext is a registered extension of the
// given mime type.
func MatchExtension(mimeType, ext string) bool {
	return slices.Contains(extensions[mimeType], ext)
}

// ExtensionsOf returns the registered extensions of the given mime type,
// or nil if the type is unknown.
func ExtensionsOf(mimeType string) []string {
	return slices.Clone(extensions[mimeType])
}
