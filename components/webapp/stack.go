package webapp

import (
	"github.com/inventreats/infra-definitions/common/config"
	"github.com/inventreats/infra-definitions/common/utils"
	"github.com/inventreats/infra-definitions/components"
	"github.com/inventreats/infra-definitions/components/datastore/elasticsearch"
	"github.com/inventreats/infra-definitions/components/datastore/postgres"
	"github.com/inventreats/infra-definitions/components/datastore/redis"
	"github.com/inventreats/infra-definitions/components/docker"

	"github.com/pulumi/pulumi/sdk/v3/go/pulumi"
)

const djangoSecretKeyLength = 50

type StackOutput struct {
	components.JSONImporter

	URL string `json:"url"`
}

// Stack is the deployed webapp with its datastores, running as a single
// docker compose project.
type Stack struct {
	pulumi.ResourceState
	components.Component

	URL pulumi.StringOutput `pulumi:"url"`
}

func (s *Stack) Export(ctx *pulumi.Context, out *StackOutput) error {
	return components.Export(ctx, s, out)
}

// NewDockerStack deploys the webapp, postgres, redis and elasticsearch
// services on the docker host managed by the given manager. Secrets travel
// through the compose process environment, the manifests written to the host
// only carry `${VAR}` references.
func NewDockerStack(e config.CommonEnvironment, manager *docker.Manager, options ...Option) (*Stack, error) {
	return components.NewComponent(e, "webapp-stack", func(comp *Stack) error {
		params, err := NewParams(&e, options...)
		if err != nil {
			return err
		}

		secretKey, err := djangoSecretKey(&e)
		if err != nil {
			return err
		}

		manifests := make([]docker.ComposeInlineManifest, 0, 4+len(params.ExtraComposeManifests))

		postgresManifest, err := postgres.DockerComposeManifest(&e)
		if err != nil {
			return err
		}
		manifests = append(manifests, postgresManifest)

		redisManifest, err := redis.DockerComposeManifest(&e)
		if err != nil {
			return err
		}
		manifests = append(manifests, redisManifest)

		elasticsearchManifest, err := elasticsearch.DockerComposeManifest(&e)
		if err != nil {
			return err
		}
		manifests = append(manifests, elasticsearchManifest)

		webappManifest, err := DockerComposeManifest(params)
		if err != nil {
			return err
		}
		manifests = append(manifests, webappManifest)
		manifests = append(manifests, params.ExtraComposeManifests...)

		envVars := pulumi.StringMap{
			"POSTGRES_DB":       pulumi.String(e.PostgresDB()),
			"POSTGRES_USER":     pulumi.String(e.PostgresUser()),
			"POSTGRES_PASSWORD": e.PostgresPassword(),
			"DATABASE_URL":      e.DatabaseURL(),
			"DJANGO_SECRET_KEY": secretKey,
			"CACHE_URL":         pulumi.String(e.CacheURL()),
			"SEARCH_URL":        pulumi.String(e.SearchURL()),
		}
		if params.EnvFileHostPath != nil {
			envVars["WEBAPP_ENV_FILE"] = params.EnvFileHostPath
		}

		composeCmd, err := manager.ComposeStrUp("webapp", manifests, envVars, utils.MergeOptions[pulumi.ResourceOption](params.PulumiDependsOn, pulumi.Parent(comp))...)
		if err != nil {
			return err
		}

		// Operator-provided compose file deployed once the stack is up, so it
		// can attach services to the stack network.
		if extraComposeFile := e.WebappExtraComposeFilePath(); extraComposeFile != "" {
			_, err := manager.ComposeFileUp(extraComposeFile, envVars, utils.MergeOptions[pulumi.ResourceOption](params.PulumiDependsOn, pulumi.Parent(comp), utils.PulumiDependsOn(composeCmd))...)
			if err != nil {
				return err
			}
		}

		comp.URL = waitForReady(&e, params.Hostname, composeCmd)
		return nil
	})
}

// djangoSecretKey returns the configured secret key or generates a random one
// for the stack lifetime when none is configured.
func djangoSecretKey(e *config.CommonEnvironment) (pulumi.StringInput, error) {
	if e.HasDjangoSecretKey() {
		return e.DjangoSecretKey(), nil
	}

	provider, err := e.RandomProvider()
	if err != nil {
		return nil, err
	}

	generator, err := utils.NewRandomGenerator(e.Ctx, "webapp", utils.WithProvider(provider))
	if err != nil {
		return nil, err
	}

	secretKey, err := generator.RandomString("django-secret-key", djangoSecretKeyLength, true)
	if err != nil {
		return nil, err
	}

	return pulumi.ToSecret(secretKey.Result).(pulumi.StringOutput), nil
}
