package elasticsearch

import (
	"fmt"

	"github.com/Masterminds/semver"
	"github.com/inventreats/infra-definitions/common/config"
	"github.com/inventreats/infra-definitions/common/utils"
	"github.com/inventreats/infra-definitions/components/docker"

	"github.com/pulumi/pulumi/sdk/v3/go/pulumi"
)

const ServiceName = "elasticsearch"

// Single-node discovery is only available from 7.x.
var minSupportedVersion = semver.MustParse("7.0.0")

func ComposeService(version string) docker.ComposeManifestService {
	return docker.ComposeManifestService{
		Image:         utils.BuildDockerImagePath("docker.elastic.co/elasticsearch/elasticsearch", version),
		ContainerName: ServiceName,
		Restart:       "unless-stopped",
		Expose:        []string{"9200"},
		Volumes:       []string{"elasticsearch-data:/usr/share/elasticsearch/data"},
		Environment: map[string]any{
			"discovery.type":         "single-node",
			"xpack.security.enabled": "false",
			"ES_JAVA_OPTS":           "-Xms512m -Xmx512m",
		},
		Healthcheck: &docker.Healthcheck{
			Test:        []string{"CMD-SHELL", "curl -fs http://localhost:9200/_cluster/health || exit 1"},
			Interval:    "10s",
			Timeout:     "5s",
			Retries:     20,
			StartPeriod: "30s",
		},
	}
}

func NewComposeManifest(version string) (docker.ComposeManifest, error) {
	esVersion, err := semver.NewVersion(version)
	if err != nil {
		return docker.ComposeManifest{}, fmt.Errorf("invalid elasticsearch version %s: %w", version, err)
	}
	if esVersion.LessThan(minSupportedVersion) {
		return docker.ComposeManifest{}, fmt.Errorf("elasticsearch version %s is not supported, minimum is %s", version, minSupportedVersion)
	}

	return docker.ComposeManifest{
		Version: "3.9",
		Services: map[string]docker.ComposeManifestService{
			ServiceName: ComposeService(version),
		},
		Volumes: map[string]any{
			"elasticsearch-data": nil,
		},
	}, nil
}

func DockerComposeManifest(e *config.CommonEnvironment) (docker.ComposeInlineManifest, error) {
	manifest, err := NewComposeManifest(e.ElasticsearchVersion())
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
