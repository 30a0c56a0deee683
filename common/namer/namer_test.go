package namer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResourceName(t *testing.T) {
	for _, tt := range []struct {
		name     string
		prefix   string
		parts    []string
		expected string
	}{
		{
			name:     "no prefix",
			parts:    []string{"webapp", "image"},
			expected: "webapp-image",
		},
		{
			name:     "with prefix",
			prefix:   "docker",
			parts:    []string{"compose-run", "webapp"},
			expected: "docker-compose-run-webapp",
		},
		{
			name:     "single part",
			prefix:   "aws",
			parts:    []string{"instance"},
			expected: "aws-instance",
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			n := NewNamer(nil, tt.prefix)
			assert.Equal(t, tt.expected, n.ResourceName(tt.parts...))
		})
	}
}

func TestResourceNamePanicsWithoutParts(t *testing.T) {
	n := NewNamer(nil, "docker")
	assert.Panics(t, func() { n.ResourceName() })
}

func TestWithPrefix(t *testing.T) {
	root := NewNamer(nil, "")
	assert.Equal(t, "docker-run", root.WithPrefix("docker").ResourceName("run"))

	aws := NewNamer(nil, "aws")
	assert.Equal(t, "aws-docker-run", aws.WithPrefix("docker").ResourceName("run"))
}
