package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseImageReference(t *testing.T) {
	for _, tt := range []struct {
		imageRef      string
		expectedPath  string
		expectedTag   string
	}{
		{imageRef: "inventreats/webapp:1.2.3", expectedPath: "inventreats/webapp", expectedTag: "1.2.3"},
		{imageRef: "inventreats/webapp", expectedPath: "inventreats/webapp", expectedTag: "latest"},
		{imageRef: "docker.elastic.co/elasticsearch/elasticsearch:7.17.9", expectedPath: "docker.elastic.co/elasticsearch/elasticsearch", expectedTag: "7.17.9"},
	} {
		t.Run(tt.imageRef, func(t *testing.T) {
			imagePath, tag := ParseImageReference(tt.imageRef)
			assert.Equal(t, tt.expectedPath, imagePath)
			assert.Equal(t, tt.expectedTag, tag)
		})
	}
}

func TestBuildDockerImagePath(t *testing.T) {
	assert.Equal(t, "postgres:15-alpine", BuildDockerImagePath("postgres", "15-alpine"))
}
