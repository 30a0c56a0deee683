package webapp

import (
	"github.com/inventreats/infra-definitions/common/utils"
	"github.com/inventreats/infra-definitions/components/datastore/elasticsearch"
	"github.com/inventreats/infra-definitions/components/datastore/postgres"
	"github.com/inventreats/infra-definitions/components/datastore/redis"
	"github.com/inventreats/infra-definitions/components/docker"

	"github.com/pulumi/pulumi/sdk/v3/go/pulumi"
)

const ServiceName = "webapp"

// ComposeService returns the webapp service definition. The service publishes
// the uWSGI HTTP port to the host and is the only service of the stack that
// does. The baked-in CMD only prints the uWSGI configuration, so the compose
// command overrides it to actually serve.
func ComposeService(params *Params) docker.ComposeManifestService {
	service := docker.ComposeManifestService{
		Image:         params.FullImagePath,
		ContainerName: ServiceName,
		Restart:       "unless-stopped",
		Command:       []string{"/venv/bin/uwsgi"},
		Ports:         []string{"8000:8000"},
		Volumes:       []string{params.MediaVolume + ":/app/media"},
		Links: []string{
			postgres.ServiceName,
			redis.ServiceName,
			elasticsearch.ServiceName,
		},
		DependsOn: map[string]docker.ServiceDependency{
			postgres.ServiceName:      {Condition: "service_healthy"},
			redis.ServiceName:         {Condition: "service_healthy"},
			elasticsearch.ServiceName: {Condition: "service_healthy"},
		},
		Environment: map[string]any{
			"DATABASE_URL":      "${DATABASE_URL}",
			"DJANGO_SECRET_KEY": "${DJANGO_SECRET_KEY}",
			"CACHE_URL":         "${CACHE_URL}",
			"SEARCH_URL":        "${SEARCH_URL}",
		},
	}

	if params.EnvFileHostPath != nil {
		service.Volumes = append(service.Volumes, "${WEBAPP_ENV_FILE}:/app/.env:ro")
	}

	return service
}

func NewComposeManifest(params *Params) (docker.ComposeManifest, error) {
	service := ComposeService(params)

	if params.ServiceOverride != nil {
		merged, err := docker.MergeService(service, *params.ServiceOverride)
		if err != nil {
			return docker.ComposeManifest{}, err
		}
		service = merged
	}

	return docker.ComposeManifest{
		Version: "3.9",
		Services: map[string]docker.ComposeManifestService{
			ServiceName: service,
		},
		Volumes: map[string]any{
			params.MediaVolume: nil,
		},
	}, nil
}

func DockerComposeManifest(params *Params) (docker.ComposeInlineManifest, error) {
	manifest, err := NewComposeManifest(params)
	if err != nil {
		return docker.ComposeInlineManifest{}, err
	}

	content, err := manifest.ToYAML()
	if err != nil {
		return docker.ComposeInlineManifest{}, err
	}

	if params.ManifestOverride != "" {
		content, err = utils.MergeYAMLString(content, params.ManifestOverride)
		if err != nil {
			return docker.ComposeInlineManifest{}, err
		}
	}

	return docker.ComposeInlineManifest{
		Name:    ServiceName,
		Content: pulumi.String(content),
	}, nil
}
