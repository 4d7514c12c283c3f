// Package field provides fluent builders for defining model fields in
// Acanthe schemas.
//
// Each builder captures the semantic type of one model attribute, its
// validation rule and the metadata the persistence engine needs to build
// backend schemas:
//
//	field.String("name")
//	field.Email("mail").Unique()
//	field.Int("age").Range(0, 150)
//	field.Currency("price")
//	field.Enum("status").Values("active", "suspended")
//	field.Binary("attachment")
//	field.UUID("id").Identifier().Default(uuid.New)
//
// # Validation
//
// The persistence engine calls Descriptor.Check before writing a value.
// Each field type enforces one rule class:
//
//   - pattern fields (Email, URL, Phone, Color, Date, DateTime, Time)
//     accept exactly the strings matching their fixed pattern
//   - String and List screen input against XSS-risk patterns by default;
//     Match supplies a custom accept pattern instead
//   - Bool, Int, Decimal and Currency check the runtime type of the input
//   - Enum and Set check membership of the declared values
//   - Binary and Image check the mime type and extension of uploaded files
//
// Check failures are ValidationErrors: bad client input, a 400-class
// condition for HTTP callers. Misdeclared fields (an Enum without values,
// an unknown mime type) are ConfigErrors recorded on Descriptor.Err: a
// schema-author bug, a 500-class condition.
//
// # Metadata
//
// All builders share the declarative options of the base field:
//
//	field.String("login").
//	    Identifier().          // record identifier, always required
//	    Label("Login").        // form label, defaults to humanized name
//	    Help("Unix login"),    // tooltip
//	field.String("password").
//	    Sensitive().           // never logged
//	    WriteACL("admin"),     // restricted write access
//	field.Phone("mobile").
//	    Optional().            // not required on create
//	    NoCopy(),              // skipped on record duplication
//
// Identifier fields are always required and never carry a default,
// regardless of the other options.
//
// # Backend types
//
// A field's storage type is derived from its semantic type by each backend
// adapter, and can be overridden per backend:
//
//	field.String("body").BackendType(map[string]string{
//	    backend.Postgres: "text",
//	    backend.LDAP:     "caseIgnoreString",
//	})
package field
