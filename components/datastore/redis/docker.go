package redis

import (
	"github.com/inventreats/infra-definitions/common/config"
	"github.com/inventreats/infra-definitions/common/utils"
	"github.com/inventreats/infra-definitions/components/docker"

	"github.com/pulumi/pulumi/sdk/v3/go/pulumi"
)

const ServiceName = "redis"

func ComposeService(version string) docker.ComposeManifestService {
	return docker.ComposeManifestService{
		Image:         utils.BuildDockerImagePath("redis", version),
		ContainerName: ServiceName,
		Restart:       "unless-stopped",
		Expose:        []string{"6379"},
		Healthcheck: &docker.Healthcheck{
			Test:     []string{"CMD", "redis-cli", "ping"},
			Interval: "5s",
			Timeout:  "3s",
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
	}, nil
}

func DockerComposeManifest(e *config.CommonEnvironment) (docker.ComposeInlineManifest, error) {
	manifest, err := NewComposeManifest(e.RedisVersion())
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
