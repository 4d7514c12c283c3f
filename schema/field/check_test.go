package field_test

import (
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/acanthe/acanthe/schema/field"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckPatternFields(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		fd      *field.Descriptor
		valid   []string
		invalid []string
	}{
		{
			name:    "email",
			fd:      field.Email("mail").Descriptor(),
			valid:   []string{"user@example.com", "a.b+c@sub.example.org"},
			invalid: []string{"user@", "@example.com", "no-at-sign", "user @example.com"},
		},
		{
			name:    "url",
			fd:      field.URL("homepage").Descriptor(),
			valid:   []string{"https://example.com/path?q=1", "http://example.com"},
			invalid: []string{"ftp://example.com", "example.com", "https://"},
		},
		{
			name:    "phone",
			fd:      field.Phone("mobile").Descriptor(),
			valid:   []string{"+33 1 23 45 67 89", "0123456789", "(01) 23-45-67"},
			invalid: []string{"call me", "+", "1"},
		},
		{
			name:    "color",
			fd:      field.Color("theme").Descriptor(),
			valid:   []string{"#fff", "#a0b1c2", "rgb(255, 0, 0)"},
			invalid: []string{"red", "#ff", "rgb(255)"},
		},
		{
			name:    "date",
			fd:      field.Date("birthday").Descriptor(),
			valid:   []string{"2016-01-02"},
			invalid: []string{"2016-1-2", "02/01/2016", "2016-01-02T10:00:00Z"},
		},
		{
			name:    "time",
			fd:      field.Time("opens_at").Descriptor(),
			valid:   []string{"15:04:05", "15:04:05.999", "15:04:05Z", "15:04:05+02:00"},
			invalid: []string{"15:04", "3pm"},
		},
		{
			name:    "datetime",
			fd:      field.DateTime("created_at").Descriptor(),
			valid:   []string{"2016-01-02T15:04:05Z", "2016-01-02 15:04:05+02:00"},
			invalid: []string{"2016-01-02", "15:04:05"},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			for _, s := range tt.valid {
				assert.NoError(t, tt.fd.Check(s), s)
			}
			for _, s := range tt.invalid {
				err := tt.fd.Check(s)
				require.Error(t, err, s)
				assert.True(t, field.IsValidationError(err), s)
			}
		})
	}
}

func TestCheckString_XSS(t *testing.T) {
	fd := field.String("comment").Descriptor()
	assert.NoError(t, fd.Check("a perfectly ordinary comment"))
	for _, s := range []string{
		"<script>alert(1)</script>",
		"a > b",
		"javascript:alert(1)",
		"&#x3C;img&#x3E;",
	} {
		err := fd.Check(s)
		require.Error(t, err, s)
		assert.True(t, field.IsValidationError(err), s)
	}

	// A custom pattern replaces the XSS screening entirely.
	fd = field.String("slug").Match(regexp.MustCompile(`^[a-z-]+$`)).Descriptor()
	assert.NoError(t, fd.Check("my-slug"))
	assert.Error(t, fd.Check("My Slug"))

	// Non-string input is rejected before any pattern is consulted.
	assert.Error(t, fd.Check(42))
}

func TestCheckString_Validators(t *testing.T) {
	fd := field.String("name").
		Validate(func(s string) error {
			if len(s) < 2 {
				return errors.New("too short")
			}
			return nil
		}).
		Descriptor()
	assert.NoError(t, fd.Check("bob"))
	err := fd.Check("b")
	require.Error(t, err)
	assert.True(t, field.IsValidationError(err))
	assert.ErrorContains(t, err, "too short")
}

func TestCheckBool(t *testing.T) {
	fd := field.Bool("active").Descriptor()
	assert.NoError(t, fd.Check(true))
	assert.NoError(t, fd.Check(false))
	for _, v := range []any{1, "true", nil, 0.0} {
		err := fd.Check(v)
		require.Error(t, err)
		assert.True(t, field.IsValidationError(err))
	}
}

func TestCheckInt(t *testing.T) {
	fd := field.Int("age").Descriptor()
	assert.NoError(t, fd.Check(42))
	assert.NoError(t, fd.Check(int8(7)))
	assert.NoError(t, fd.Check(int64(1<<40)))
	assert.NoError(t, fd.Check(uint16(9)))
	for _, v := range []any{"42", 4.2, true, nil} {
		assert.Error(t, fd.Check(v))
	}

	fd = field.Int("rating").Range(1, 5).Descriptor()
	assert.NoError(t, fd.Check(3))
	assert.Error(t, fd.Check(0))
	assert.Error(t, fd.Check(6))
}

func TestCheckDecimal(t *testing.T) {
	for _, fd := range []*field.Descriptor{
		field.Decimal("weight").Descriptor(),
		field.Currency("price").Descriptor(),
	} {
		assert.NoError(t, fd.Check(3.14))
		assert.NoError(t, fd.Check(float32(1.5)))
		assert.NoError(t, fd.Check(3))
		assert.Error(t, fd.Check("3.14"))
		assert.Error(t, fd.Check(true))
	}

	fd := field.Currency("price").Positive().Descriptor()
	assert.NoError(t, fd.Check(9.99))
	assert.Error(t, fd.Check(0.0))
	assert.Error(t, fd.Check(-1.0))
}

func TestCheckTemporal(t *testing.T) {
	fd := field.DateTime("created_at").Descriptor()
	assert.NoError(t, fd.Check(time.Now()))
	assert.NoError(t, fd.Check("2016-01-02T15:04:05Z"))
	assert.Error(t, fd.Check("yesterday"))
	assert.Error(t, fd.Check(42))

	epoch := time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)
	fd = field.Date("birthday").
		Validate(func(v time.Time) error {
			if v.After(time.Now()) {
				return errors.New("date in the future")
			}
			return nil
		}).
		Descriptor()
	assert.NoError(t, fd.Check(epoch))
	assert.Error(t, fd.Check(time.Now().Add(24*time.Hour)))

	// String input runs the same validators as time.Time input.
	assert.NoError(t, fd.Check("2000-01-01"))
	err := fd.Check("2999-01-01")
	require.Error(t, err)
	assert.True(t, field.IsValidationError(err))
	assert.ErrorContains(t, err, "date in the future")

	// A well-shaped string must still be a real calendar value.
	assert.Error(t, fd.Check("2016-13-41"))
}

func TestCheckTemporal_StringParsing(t *testing.T) {
	fd := field.DateTime("created_at").
		Validate(func(v time.Time) error {
			if v.Year() < 2000 {
				return errors.New("too old")
			}
			return nil
		}).
		Descriptor()
	for _, s := range []string{
		"2016-01-02T15:04:05Z",
		"2016-01-02t15:04:05z",
		"2016-01-02 15:04:05+02:00",
		"2016-01-02T15:04:05.999Z",
	} {
		assert.NoError(t, fd.Check(s), s)
	}
	err := fd.Check("1999-12-31T23:59:59Z")
	require.Error(t, err)
	assert.ErrorContains(t, err, "too old")

	fd = field.Time("opens_at").
		Validate(func(v time.Time) error {
			if v.Hour() < 8 {
				return errors.New("before opening hours")
			}
			return nil
		}).
		Descriptor()
	assert.NoError(t, fd.Check("09:30:00"))
	assert.Error(t, fd.Check("06:00:00"))
}

func TestCheckEnum(t *testing.T) {
	fd := field.Enum("role").Values("user", "admin").Descriptor()
	assert.NoError(t, fd.Check("user"))
	assert.NoError(t, fd.Check("admin"))

	err := fd.Check("root")
	require.Error(t, err)
	assert.True(t, field.IsValidationError(err))

	// Lists and non-string scalars are invalid enum input.
	assert.Error(t, fd.Check([]string{"user"}))
	assert.Error(t, fd.Check([]any{"user"}))
	assert.Error(t, fd.Check(3))
}

func TestCheckSet(t *testing.T) {
	fd := field.Set("roles").Values("user", "admin", "audit").Descriptor()
	assert.NoError(t, fd.Check([]string{}))
	assert.NoError(t, fd.Check([]string{"user"}))
	assert.NoError(t, fd.Check([]string{"admin", "audit"}))

	err := fd.Check([]string{"admin", "root"})
	require.Error(t, err)
	assert.True(t, field.IsValidationError(err))

	// Non-list input is rejected outright.
	assert.Error(t, fd.Check("user"))
	assert.Error(t, fd.Check(nil))
}

func TestCheckList(t *testing.T) {
	fd := field.List("tags").Descriptor()
	assert.NoError(t, fd.Check([]string{"go", "orm"}))
	assert.Error(t, fd.Check("go"))
	assert.Error(t, fd.Check([]string{"fine", "<script>bad</script>"}))

	fd = field.List("codes").Match(regexp.MustCompile(`^[A-Z]{3}$`)).Descriptor()
	assert.NoError(t, fd.Check([]string{"EUR", "USD"}))
	assert.Error(t, fd.Check([]string{"EUR", "usd"}))
}

func TestCheckUUID(t *testing.T) {
	fd := field.UUID("id").Descriptor()
	assert.NoError(t, fd.Check(uuid.New()))
	assert.NoError(t, fd.Check(uuid.New().String()))
	assert.Error(t, fd.Check("not-a-uuid"))
	assert.Error(t, fd.Check(42))
}

func TestCheck_ValidatorMismatch(t *testing.T) {
	// A validator of the wrong type is a declaration bug, not bad input.
	fd := field.String("name").
		Validate(func(s string) error { return nil }).
		Descriptor()
	fd.Validators = append(fd.Validators, func(int) error { return nil })
	err := fd.Check("bob")
	require.Error(t, err)
	assert.True(t, field.IsConfigError(err))
}
