package docker

import (
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestToYAML(t *testing.T) {
	manifest := ComposeManifest{
		Version: "3.9",
		Services: map[string]ComposeManifestService{
			"app": {
				Image:         "app:latest",
				ContainerName: "app",
				Expose:        []string{"9000"},
				Environment: map[string]any{
					"APP_SECRET": "${APP_SECRET}",
				},
				DependsOn: map[string]ServiceDependency{
					"db": {Condition: "service_healthy"},
				},
			},
		},
		Volumes: map[string]any{
			"app-data": nil,
		},
	}

	out, err := manifest.ToYAML()
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(out), &decoded))
	assert.ElementsMatch(t, []string{"version", "services", "volumes"}, lo.Keys(decoded))

	services := decoded["services"].(map[string]any)
	app := services["app"].(map[string]any)
	assert.Equal(t, "app:latest", app["image"])
	// The manifest must reference the secret, never contain its value
	env := app["environment"].(map[string]any)
	assert.Equal(t, "${APP_SECRET}", env["APP_SECRET"])

	dependsOn := app["depends_on"].(map[string]any)
	db := dependsOn["db"].(map[string]any)
	assert.Equal(t, "service_healthy", db["condition"])

	// Unset optional fields must not leak into the manifest
	assert.NotContains(t, app, "ports")
	assert.NotContains(t, app, "healthcheck")
}

func TestMergeService(t *testing.T) {
	base := ComposeManifestService{
		Image:   "app:latest",
		Restart: "unless-stopped",
		Ports:   []string{"8000:8000"},
	}

	merged, err := MergeService(base, ComposeManifestService{
		Image: "app:v2",
		User:  "1000:2000",
	})
	require.NoError(t, err)

	assert.Equal(t, "app:v2", merged.Image)
	assert.Equal(t, "1000:2000", merged.User)
	// Fields not present in the override are kept
	assert.Equal(t, "unless-stopped", merged.Restart)
	assert.Equal(t, []string{"8000:8000"}, merged.Ports)
}
