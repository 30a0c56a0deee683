package aws

import (
	"github.com/inventreats/infra-definitions/common/config"
	"github.com/inventreats/infra-definitions/common/namer"
	"github.com/inventreats/infra-definitions/components/os"

	awsprovider "github.com/pulumi/pulumi-aws/sdk/v6/go/aws"
	"github.com/pulumi/pulumi-tls/sdk/v4/go/tls"
	"github.com/pulumi/pulumi/sdk/v3/go/pulumi"
)

const (
	awsRegionParamName       = "aws/region"
	awsInstanceTypeParamName = "aws/instanceType"
	awsAMIParamName          = "aws/ami"
	awsOSDescriptorParamName = "aws/osDescriptor"
	awsArchParamName         = "aws/arch"
	awsSSHUserParamName      = "aws/sshUser"
	awsAllowedCIDRParamName  = "aws/allowedCidr"

	defaultRegion       = "us-east-1"
	defaultInstanceType = "t3.medium"
	defaultSSHUser      = "ubuntu"
	defaultAllowedCIDR  = "0.0.0.0/0"
)

// Environment is an AWS deployment environment, running the stack on an EC2
// instance.
type Environment struct {
	*config.CommonEnvironment

	Namer namer.Namer

	awsProvider *awsprovider.Provider
}

func NewEnvironment(e *config.CommonEnvironment) (Environment, error) {
	env := Environment{
		CommonEnvironment: e,
		Namer:             e.CommonNamer.WithPrefix("aws"),
	}

	awsProvider, err := awsprovider.NewProvider(e.Ctx, "aws-provider", &awsprovider.ProviderArgs{
		Region: pulumi.String(env.Region()),
	})
	if err != nil {
		return env, err
	}
	env.awsProvider = awsProvider
	e.RegisterProvider(config.ProviderAWS, awsProvider)

	tlsProvider, err := tls.NewProvider(e.Ctx, "tls-provider", &tls.ProviderArgs{})
	if err != nil {
		return env, err
	}
	e.RegisterProvider(config.ProviderTLS, tlsProvider)

	return env, nil
}

func (e *Environment) Region() string {
	return e.GetStringWithDefault(e.InfraConfig, awsRegionParamName, defaultRegion)
}

func (e *Environment) InstanceType() string {
	return e.GetStringWithDefault(e.InfraConfig, awsInstanceTypeParamName, defaultInstanceType)
}

// AMI returns the configured AMI id, empty means lookup the latest image
// matching the OS descriptor.
func (e *Environment) AMI() string {
	return e.InfraConfig.Get(awsAMIParamName)
}

// OSDescriptor is the OS the instance runs, `<flavor>:<version>(:<arch>)`.
// The architecture can also be overridden separately.
func (e *Environment) OSDescriptor() os.Descriptor {
	desc := os.UbuntuDefault
	if descStr := e.InfraConfig.Get(awsOSDescriptorParamName); descStr != "" {
		desc = os.NewDescriptorFromString(descStr)
	}
	if archStr := e.InfraConfig.Get(awsArchParamName); archStr != "" {
		desc = desc.WithArch(os.NewArchitectureFromString(archStr))
	}
	return desc
}

func (e *Environment) SSHUser() string {
	return e.GetStringWithDefault(e.InfraConfig, awsSSHUserParamName, defaultSSHUser)
}

// AllowedCIDR is the source range allowed to reach SSH and the webapp port.
func (e *Environment) AllowedCIDR() string {
	return e.GetStringWithDefault(e.InfraConfig, awsAllowedCIDRParamName, defaultAllowedCIDR)
}
