package docker

import (
	"github.com/inventreats/infra-definitions/common/config"
	"github.com/inventreats/infra-definitions/common/namer"

	pulumidocker "github.com/pulumi/pulumi-docker/sdk/v4/go/docker"
)

// Environment is a local deployment environment, using the docker daemon of
// the machine running the deployment.
type Environment struct {
	*config.CommonEnvironment

	Namer namer.Namer
}

func NewEnvironment(e *config.CommonEnvironment) (Environment, error) {
	env := Environment{
		CommonEnvironment: e,
		Namer:             e.CommonNamer.WithPrefix("local-docker"),
	}

	dockerProvider, err := pulumidocker.NewProvider(e.Ctx, "docker-provider", &pulumidocker.ProviderArgs{})
	if err != nil {
		return env, err
	}
	e.RegisterProvider(config.ProviderDocker, dockerProvider)

	return env, nil
}
