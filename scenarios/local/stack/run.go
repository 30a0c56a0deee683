package stack

import (
	"github.com/inventreats/infra-definitions/common/config"
	"github.com/inventreats/infra-definitions/common/utils"
	"github.com/inventreats/infra-definitions/components/command"
	"github.com/inventreats/infra-definitions/components/docker"
	"github.com/inventreats/infra-definitions/components/webapp"
	localdocker "github.com/inventreats/infra-definitions/resources/local/docker"

	"github.com/pulumi/pulumi/sdk/v3/go/pulumi"
)

// Run deploys the full stack on the local docker daemon, building the webapp
// image first when a build context is configured.
func Run(ctx *pulumi.Context) error {
	commonEnv, err := config.NewCommonEnvironment(ctx)
	if err != nil {
		return err
	}

	_, err = localdocker.NewEnvironment(&commonEnv)
	if err != nil {
		return err
	}

	options := []webapp.Option{}

	if commonEnv.WebappBuildContext() != "" {
		params, err := webapp.NewParams(&commonEnv)
		if err != nil {
			return err
		}

		image, err := webapp.BuildImage(&commonEnv, params)
		if err != nil {
			return err
		}
		options = append(options, webapp.WithPulumiDependsOn(utils.PulumiDependsOn(image)))
	}

	if !commonEnv.WebappDeploy() {
		return nil
	}

	if envFile := commonEnv.WebappEnvFile(); envFile != "" {
		options = append(options, webapp.WithEnvFileHostPath(pulumi.String(envFile)))
	}

	runner := command.NewLocalRunner(&commonEnv, command.LocalRunnerArgs{
		OSCommand: command.NewUnixOSCommand(),
	})
	manager := docker.NewLocalManager(&commonEnv, runner)

	stack, err := webapp.NewDockerStack(commonEnv, manager, options...)
	if err != nil {
		return err
	}

	return stack.Export(ctx, nil)
}
