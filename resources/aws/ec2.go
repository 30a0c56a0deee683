package aws

import (
	"fmt"

	"github.com/inventreats/infra-definitions/common/config"
	"github.com/inventreats/infra-definitions/common/utils"
	"github.com/inventreats/infra-definitions/components"
	"github.com/inventreats/infra-definitions/components/command"
	"github.com/inventreats/infra-definitions/components/os"
	remoteComp "github.com/inventreats/infra-definitions/components/remote"

	"github.com/pulumi/pulumi-aws/sdk/v6/go/aws/ec2"
	"github.com/pulumi/pulumi-tls/sdk/v4/go/tls"
	"github.com/pulumi/pulumi/sdk/v3/go/pulumi"
)

const (
	ubuntuAMIOwner       = "099720109477"
	ubuntuAMINamePattern = "ubuntu/images/hvm-ssd/ubuntu-*-%s-%s-server-*"

	sshPort    = 22
	webappPort = 8000
)

// NewVM creates an EC2 instance reachable over SSH with a keypair generated
// for the stack, and initializes a remote Host on it.
func NewVM(env Environment, name string, opts ...pulumi.ResourceOption) (*remoteComp.Host, error) {
	return components.NewComponent(*env.CommonEnvironment, name, func(host *remoteComp.Host) error {
		opts = utils.MergeOptions[pulumi.ResourceOption](opts, pulumi.Parent(host))
		awsOpts := utils.MergeOptions(opts, env.WithProviders(config.ProviderAWS))
		osDesc := env.OSDescriptor()

		privateKey, err := tls.NewPrivateKey(env.Ctx, env.Namer.ResourceName(name, "ssh-key"), &tls.PrivateKeyArgs{
			Algorithm: pulumi.String("RSA"),
			RsaBits:   pulumi.Int(4096),
		}, utils.MergeOptions(opts, env.WithProviders(config.ProviderTLS))...)
		if err != nil {
			return err
		}

		keyPair, err := ec2.NewKeyPair(env.Ctx, env.Namer.ResourceName(name, "keypair"), &ec2.KeyPairArgs{
			KeyName:   env.Namer.DisplayNameWithMaxLen(255, pulumi.String(name), pulumi.String("keypair")).ToStringOutput(),
			PublicKey: privateKey.PublicKeyOpenssh,
		}, awsOpts...)
		if err != nil {
			return err
		}

		securityGroup, err := ec2.NewSecurityGroup(env.Ctx, env.Namer.ResourceName(name, "security-group"), &ec2.SecurityGroupArgs{
			Ingress: ec2.SecurityGroupIngressArray{
				ec2.SecurityGroupIngressArgs{
					Protocol:   pulumi.String("tcp"),
					FromPort:   pulumi.Int(sshPort),
					ToPort:     pulumi.Int(sshPort),
					CidrBlocks: pulumi.StringArray{pulumi.String(env.AllowedCIDR())},
				},
				ec2.SecurityGroupIngressArgs{
					Protocol:   pulumi.String("tcp"),
					FromPort:   pulumi.Int(webappPort),
					ToPort:     pulumi.Int(webappPort),
					CidrBlocks: pulumi.StringArray{pulumi.String(env.AllowedCIDR())},
				},
			},
			Egress: ec2.SecurityGroupEgressArray{
				ec2.SecurityGroupEgressArgs{
					Protocol:   pulumi.String("-1"),
					FromPort:   pulumi.Int(0),
					ToPort:     pulumi.Int(0),
					CidrBlocks: pulumi.StringArray{pulumi.String("0.0.0.0/0")},
				},
			},
		}, awsOpts...)
		if err != nil {
			return err
		}

		amiID := env.AMI()
		if amiID == "" {
			// Automatic lookup only covers canonical Ubuntu images, other
			// flavors need an explicit AMI id.
			if osDesc.Flavor != os.Ubuntu {
				return fmt.Errorf("no AMI lookup for this OS flavor, set stackinfra:%s", "aws/ami")
			}

			ami, err := ec2.LookupAmi(env.Ctx, &ec2.LookupAmiArgs{
				MostRecent: pulumi.BoolRef(true),
				Owners:     []string{ubuntuAMIOwner},
				Filters: []ec2.GetAmiFilter{
					{
						Name:   "name",
						Values: []string{fmt.Sprintf(ubuntuAMINamePattern, osDesc.Version, amiArchitecture(osDesc.Architecture))},
					},
					{
						Name:   "virtualization-type",
						Values: []string{"hvm"},
					},
				},
			}, pulumi.Provider(env.awsProvider))
			if err != nil {
				return err
			}
			amiID = ami.Id
		}

		instance, err := ec2.NewInstance(env.Ctx, env.Namer.ResourceName(name, "instance"), &ec2.InstanceArgs{
			Ami:                      pulumi.String(amiID),
			InstanceType:             pulumi.String(env.InstanceType()),
			KeyName:                  keyPair.KeyName,
			VpcSecurityGroupIds:      pulumi.StringArray{securityGroup.ID()},
			AssociatePublicIpAddress: pulumi.Bool(true),
			Tags: pulumi.StringMap{
				"Name": env.Namer.DisplayName(pulumi.String(name)).ToStringOutput(),
			},
		}, awsOpts...)
		if err != nil {
			return err
		}

		conn, err := remoteComp.NewConnection(instance.PublicIp, env.SSHUser(), remoteComp.WithPrivateKey(privateKey.PrivateKeyOpenssh))
		if err != nil {
			return err
		}

		return remoteComp.InitHost(env.CommonEnvironment, conn.ToConnectionOutput(), osDesc, env.SSHUser(), command.WaitForCloudInit, host)
	}, opts...)
}

// amiArchitecture maps an OS architecture to the token canonical uses in AMI
// names.
func amiArchitecture(arch os.Architecture) string {
	if arch == os.ARM64Arch {
		return "arm64"
	}
	return "amd64"
}
