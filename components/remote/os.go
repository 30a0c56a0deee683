package remote

import (
	"github.com/inventreats/infra-definitions/common/config"
	"github.com/inventreats/infra-definitions/components/command"
	"github.com/inventreats/infra-definitions/components/os"

	"github.com/pulumi/pulumi-command/sdk/go/command/remote"
	"github.com/pulumi/pulumi/sdk/v3/go/pulumi"
)

// InitHost initializes all fields of a Host component with the given connection and OS descriptor.
func InitHost(e *config.CommonEnvironment, conn remote.ConnectionOutput, osDesc os.Descriptor, osUser string, readyFunc command.ReadyFunc, host *Host) error {
	runner, err := command.NewRemoteRunner(e, command.RemoteRunnerArgs{
		ParentResource: host,
		ConnectionName: host.Name(),
		Connection:     conn,
		ReadyFunc:      readyFunc,
		OSCommand:      command.NewUnixOSCommand(),
	})
	if err != nil {
		return err
	}

	// Fill the exported fields component
	host.Address = conn.Host()
	host.Username = pulumi.String(osUser).ToStringOutput()
	host.Architecture = pulumi.String(osDesc.Architecture).ToStringOutput()
	host.OSFlavor = pulumi.Int(osDesc.Flavor).ToIntOutput()
	host.OSVersion = pulumi.String(osDesc.Version).ToStringOutput()

	// Set the OS for internal usage
	host.OS = os.NewOS(e, osDesc, runner)

	return nil
}
