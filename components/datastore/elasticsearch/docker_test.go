package elasticsearch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComposeService(t *testing.T) {
	service := ComposeService("7.17.9")

	assert.Equal(t, "docker.elastic.co/elasticsearch/elasticsearch:7.17.9", service.Image)
	assert.Empty(t, service.Ports)
	assert.Equal(t, []string{"9200"}, service.Expose)
	assert.Equal(t, "single-node", service.Environment["discovery.type"])

	require.NotNil(t, service.Healthcheck)
	// Elasticsearch takes a while to bootstrap, the healthcheck must not kill it early
	assert.NotEmpty(t, service.Healthcheck.StartPeriod)
}

func TestNewComposeManifest(t *testing.T) {
	t.Run("supported version", func(t *testing.T) {
		manifest, err := NewComposeManifest("7.17.9")
		require.NoError(t, err)
		require.Contains(t, manifest.Services, ServiceName)
		assert.Contains(t, manifest.Volumes, "elasticsearch-data")
	})

	t.Run("unsupported version", func(t *testing.T) {
		_, err := NewComposeManifest("6.8.23")
		assert.ErrorContains(t, err, "not supported")
	})

	t.Run("invalid version", func(t *testing.T) {
		_, err := NewComposeManifest("not-a-version")
		assert.Error(t, err)
	})
}
