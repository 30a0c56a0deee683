package webapp

import (
	"testing"

	"github.com/inventreats/infra-definitions/components/docker"
	"github.com/pulumi/pulumi/sdk/v3/go/pulumi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestComposeService(t *testing.T) {
	params := testParams()
	service := ComposeService(params)

	assert.Equal(t, "inventreats/webapp:latest", service.Image)
	// The webapp is the only service published to the host
	assert.Equal(t, []string{"8000:8000"}, service.Ports)

	// The informational CMD of the image is overridden to actually serve
	assert.Equal(t, []string{"/venv/bin/uwsgi"}, service.Command)

	for _, dependency := range []string{"postgres", "redis", "elasticsearch"} {
		require.Contains(t, service.DependsOn, dependency)
		assert.Equal(t, "service_healthy", service.DependsOn[dependency].Condition)
		assert.Contains(t, service.Links, dependency)
	}

	// Settings come from the compose context environment, never the manifest
	assert.Equal(t, "${DATABASE_URL}", service.Environment["DATABASE_URL"])
	assert.Equal(t, "${DJANGO_SECRET_KEY}", service.Environment["DJANGO_SECRET_KEY"])
	assert.Equal(t, "${CACHE_URL}", service.Environment["CACHE_URL"])
	assert.Equal(t, "${SEARCH_URL}", service.Environment["SEARCH_URL"])

	assert.Contains(t, service.Volumes, "media-root:/app/media")
	assert.NotContains(t, service.Volumes, "${WEBAPP_ENV_FILE}:/app/.env:ro")
}

func TestComposeServiceWithEnvFile(t *testing.T) {
	params := testParams()
	params.EnvFileHostPath = pulumi.String("/home/ubuntu/webapp.env")

	service := ComposeService(params)
	assert.Contains(t, service.Volumes, "${WEBAPP_ENV_FILE}:/app/.env:ro")
}

func TestNewComposeManifest(t *testing.T) {
	t.Run("default", func(t *testing.T) {
		manifest, err := NewComposeManifest(testParams())
		require.NoError(t, err)

		require.Contains(t, manifest.Services, ServiceName)
		assert.Contains(t, manifest.Volumes, "media-root")
	})

	t.Run("with manifest override", func(t *testing.T) {
		params := testParams()
		params.ManifestOverride = `
services:
    webapp:
        restart: always
`

		manifest, err := DockerComposeManifest(params)
		require.NoError(t, err)

		var parsed struct {
			Services map[string]map[string]any `yaml:"services"`
		}
		require.NoError(t, yaml.Unmarshal([]byte(manifest.Content.(pulumi.String)), &parsed))

		require.Contains(t, parsed.Services, ServiceName)
		assert.Equal(t, "always", parsed.Services[ServiceName]["restart"])
		// Raw override merges over the generated manifest, it does not replace it
		assert.Equal(t, "inventreats/webapp:latest", parsed.Services[ServiceName]["image"])
	})

	t.Run("with service override", func(t *testing.T) {
		params := testParams()
		params.ServiceOverride = &docker.ComposeManifestService{
			User: "1000:2000",
		}

		manifest, err := NewComposeManifest(params)
		require.NoError(t, err)

		service := manifest.Services[ServiceName]
		assert.Equal(t, "1000:2000", service.User)
		// Override does not discard the base definition
		assert.Equal(t, []string{"8000:8000"}, service.Ports)
	})
}
