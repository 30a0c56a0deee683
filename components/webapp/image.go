package webapp

import (
	"fmt"

	"github.com/inventreats/infra-definitions/common/config"
	"github.com/inventreats/infra-definitions/common/utils"

	pulumidocker "github.com/pulumi/pulumi-docker/sdk/v4/go/docker"
	"github.com/pulumi/pulumi/sdk/v3/go/pulumi"
)

// BuildImage renders the Dockerfile and entrypoint into the configured build
// context and builds the webapp image with the local docker daemon. The image
// is not pushed, it is consumed directly by the compose stack.
func BuildImage(e *config.CommonEnvironment, params *Params, opts ...pulumi.ResourceOption) (*pulumidocker.Image, error) {
	contextPath := e.WebappBuildContext()
	if contextPath == "" {
		return nil, fmt.Errorf("%s:%s is required to build the webapp image", config.WebappConfigNamespace, config.WebappBuildContextParamName)
	}

	if err := WriteBuildContext(contextPath, params); err != nil {
		return nil, err
	}

	return pulumidocker.NewImage(e.Ctx, e.CommonNamer.ResourceName("webapp-image"), &pulumidocker.ImageArgs{
		ImageName: pulumi.String(params.FullImagePath),
		SkipPush:  pulumi.Bool(true),
		Build: &pulumidocker.DockerBuildArgs{
			Context:    pulumi.String(contextPath),
			Dockerfile: pulumi.String(contextPath + "/Dockerfile"),
		},
	}, utils.MergeOptions(opts, e.WithProviders(config.ProviderDocker))...)
}
