package postgres

import (
	"github.com/inventreats/infra-definitions/common/config"
	"github.com/inventreats/infra-definitions/common/utils"
	"github.com/inventreats/infra-definitions/components/docker"

	"github.com/pulumi/pulumi/sdk/v3/go/pulumi"
)

const ServiceName = "postgres"

// ComposeService returns the postgres service definition. The database port is
// exposed on the stack network only, never published to the host. Credentials
// are taken from the compose context environment so secrets never land in the
// manifest file itself.
func ComposeService(version string) docker.ComposeManifestService {
	return docker.ComposeManifestService{
		Image:         utils.BuildDockerImagePath("postgres", version),
		ContainerName: ServiceName,
		Restart:       "unless-stopped",
		Expose:        []string{"5432"},
		Volumes:       []string{"postgres-data:/var/lib/postgresql/data"},
		Environment: map[string]any{
			"POSTGRES_DB":       "${POSTGRES_DB}",
			"POSTGRES_USER":     "${POSTGRES_USER}",
			"POSTGRES_PASSWORD": "${POSTGRES_PASSWORD}",
		},
		Healthcheck: &docker.Healthcheck{
			Test:     []string{"CMD-SHELL", "pg_isready -U ${POSTGRES_USER} -d ${POSTGRES_DB}"},
			Interval: "5s",
			Timeout:  "5s",
			Retries:  10,
		},
	}
}

func NewComposeManifest(version string) (docker.ComposeManifest, error) {
	return docker.ComposeManifest{
		Version: "3.9",
		Services: map[string]docker.ComposeManifestService{
			ServiceName: ComposeService(version),
		},
		Volumes: map[string]any{
			"postgres-data": nil,
		},
	}, nil
}

func DockerComposeManifest(e *config.CommonEnvironment) (docker.ComposeInlineManifest, error) {
	manifest, err := NewComposeManifest(e.PostgresVersion())
	if err != nil {
		return docker.ComposeInlineManifest{}, err
	}

	content, err := manifest.ToYAML()
	if err != nil {
		return docker.ComposeInlineManifest{}, err
	}

	return docker.ComposeInlineManifest{
		Name:    ServiceName,
		Content: pulumi.String(content),
	}, nil
}
