package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComposeService(t *testing.T) {
	service := ComposeService("15-alpine")

	assert.Equal(t, "postgres:15-alpine", service.Image)
	// The database is stack-internal, the port must never be published
	assert.Empty(t, service.Ports)
	assert.Equal(t, []string{"5432"}, service.Expose)

	// Credentials are passed through the compose context environment
	assert.Equal(t, "${POSTGRES_PASSWORD}", service.Environment["POSTGRES_PASSWORD"])
	assert.Equal(t, "${POSTGRES_USER}", service.Environment["POSTGRES_USER"])
	assert.Equal(t, "${POSTGRES_DB}", service.Environment["POSTGRES_DB"])

	require.NotNil(t, service.Healthcheck)
	assert.Contains(t, service.Healthcheck.Test[1], "pg_isready")
}

func TestNewComposeManifest(t *testing.T) {
	manifest, err := NewComposeManifest("15-alpine")
	require.NoError(t, err)

	require.Contains(t, manifest.Services, ServiceName)
	assert.Contains(t, manifest.Volumes, "postgres-data")
	assert.Contains(t, manifest.Services[ServiceName].Volumes, "postgres-data:/var/lib/postgresql/data")
}
