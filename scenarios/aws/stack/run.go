package stack

import (
	"fmt"

	"github.com/inventreats/infra-definitions/common/config"
	"github.com/inventreats/infra-definitions/common/utils"
	"github.com/inventreats/infra-definitions/components/docker"
	"github.com/inventreats/infra-definitions/components/webapp"
	"github.com/inventreats/infra-definitions/resources/aws"

	"github.com/pulumi/pulumi/sdk/v3/go/pulumi"
)

// Run deploys the full stack on a fresh EC2 instance. The webapp image is not
// built in this scenario, a pullable image must be configured.
func Run(ctx *pulumi.Context) error {
	commonEnv, err := config.NewCommonEnvironment(ctx)
	if err != nil {
		return err
	}

	if commonEnv.WebappFullImagePath() == "" {
		return fmt.Errorf("%s:%s is required for remote deployments", config.WebappConfigNamespace, config.WebappFullImagePathParamName)
	}

	awsEnv, err := aws.NewEnvironment(&commonEnv)
	if err != nil {
		return err
	}

	vm, err := aws.NewVM(awsEnv, "webapp-host")
	if err != nil {
		return err
	}
	if err := vm.Export(ctx, nil); err != nil {
		return err
	}

	manager, _, err := docker.NewManager(&commonEnv, vm)
	if err != nil {
		return err
	}

	options := []webapp.Option{
		webapp.WithHostname(vm.Address),
	}

	if envFile := commonEnv.WebappEnvFile(); envFile != "" {
		remoteEnvFile := fmt.Sprintf("/home/%s/webapp.env", awsEnv.SSHUser())
		copyCmd, err := vm.OS.FileManager().CopyFile("env-file", pulumi.String(envFile), pulumi.String(remoteEnvFile))
		if err != nil {
			return err
		}
		options = append(options,
			webapp.WithEnvFileHostPath(pulumi.String(remoteEnvFile)),
			webapp.WithPulumiDependsOn(utils.PulumiDependsOn(copyCmd)),
		)
	}

	stack, err := webapp.NewDockerStack(commonEnv, manager, options...)
	if err != nil {
		return err
	}

	return stack.Export(ctx, nil)
}
