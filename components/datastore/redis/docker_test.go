package redis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComposeService(t *testing.T) {
	service := ComposeService("7-alpine")

	assert.Equal(t, "redis:7-alpine", service.Image)
	assert.Empty(t, service.Ports)
	assert.Equal(t, []string{"6379"}, service.Expose)

	require.NotNil(t, service.Healthcheck)
	assert.Equal(t, []string{"CMD", "redis-cli", "ping"}, service.Healthcheck.Test)
}

func TestNewComposeManifest(t *testing.T) {
	manifest, err := NewComposeManifest("7-alpine")
	require.NoError(t, err)
	require.Contains(t, manifest.Services, ServiceName)
}
