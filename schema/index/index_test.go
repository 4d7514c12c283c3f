package index_test

import (
	"testing"

	"github.com/acanthe/acanthe/schema"
	"github.com/acanthe/acanthe/schema/index"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testAnnotation is a test annotation type.
type testAnnotation struct {
	Label string
}

func (testAnnotation) Name() string { return "TestAnnotation" }

func TestIndexFields(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		build    func() *index.Descriptor
		validate func(t *testing.T, desc *index.Descriptor)
	}{
		{
			name: "single_field",
			build: func() *index.Descriptor {
				return index.Fields("name").Descriptor()
			},
			validate: func(t *testing.T, desc *index.Descriptor) {
				assert.Equal(t, []string{"name"}, desc.Fields)
				assert.False(t, desc.Unique)
				assert.Empty(t, desc.StorageKey)
			},
		},
		{
			name: "composite",
			build: func() *index.Descriptor {
				return index.Fields("first", "last").Descriptor()
			},
			validate: func(t *testing.T, desc *index.Descriptor) {
				assert.Equal(t, []string{"first", "last"}, desc.Fields)
			},
		},
		{
			name: "unique",
			build: func() *index.Descriptor {
				return index.Fields("mail").Unique().Descriptor()
			},
			validate: func(t *testing.T, desc *index.Descriptor) {
				assert.Equal(t, []string{"mail"}, desc.Fields)
				assert.True(t, desc.Unique)
			},
		},
		{
			name: "with_storage_key",
			build: func() *index.Descriptor {
				return index.Fields("first", "last").
					Unique().
					StorageKey("idx_person_name").
					Descriptor()
			},
			validate: func(t *testing.T, desc *index.Descriptor) {
				assert.True(t, desc.Unique)
				assert.Equal(t, "idx_person_name", desc.StorageKey)
			},
		},
		{
			name: "empty",
			build: func() *index.Descriptor {
				return index.Fields().Descriptor()
			},
			validate: func(t *testing.T, desc *index.Descriptor) {
				assert.Empty(t, desc.Fields)
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			tt.validate(t, tt.build())
		})
	}
}

func TestIndexAnnotations(t *testing.T) {
	t.Parallel()

	desc := index.Fields("name").
		Annotations(testAnnotation{Label: "first"}).
		Annotations(testAnnotation{Label: "second"}).
		Descriptor()
	require.Len(t, desc.Annotations, 2)
	assert.Equal(t, "first", desc.Annotations[0].(testAnnotation).Label)
	assert.Equal(t, "second", desc.Annotations[1].(testAnnotation).Label)

	var _ []schema.Annotation = desc.Annotations
}
