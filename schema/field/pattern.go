package field

import "regexp"

// Fixed syntax patterns for the built-in field types. Date, time and
// datetime follow RFC 3339; the email pattern is the WHATWG HTML5 input
// pattern; the color pattern accepts hex and rgb() notations.
var (
	patternDate     = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	patternTime     = regexp.MustCompile(`^\d{2}:\d{2}:\d{2}(?:\.\d+)?(?:Z|[+-]\d{2}:\d{2})?$`)
	patternDateTime = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}[Tt ]\d{2}:\d{2}:\d{2}(?:\.\d+)?(?:[Zz]|[+-]\d{2}:\d{2})?$`)
	patternColor    = regexp.MustCompile(`^(?:#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6}|[0-9a-fA-F]{8})|rgb\(\s*\d{1,3}\s*,\s*\d{1,3}\s*,\s*\d{1,3}\s*\))$`)
	patternEmail    = regexp.MustCompile("^[a-zA-Z0-9.!#$%&'*+/=?^_`{|}~-]+@[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?(?:\\.[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)*$")
	patternPhone    = regexp.MustCompile(`^\+?[0-9(][0-9 .\-()/]{1,18}[0-9]$`)
	patternURL      = regexp.MustCompile(`^https?://[^\s/$.?#][^\s]*$`)

	// patternXSS is a deny pattern: string and list fields reject any
	// input it matches unless a custom accept pattern is supplied.
	patternXSS = regexp.MustCompile(`(?i)[<>]|javascript:|&#`)
)
