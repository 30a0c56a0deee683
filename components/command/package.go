package command

import (
	"fmt"

	"github.com/inventreats/infra-definitions/common/namer"
	"github.com/inventreats/infra-definitions/common/utils"
	"github.com/pulumi/pulumi/sdk/v3/go/pulumi"
)

type PackageManager interface {
	Ensure(packageRef string, checkBinary string, opts ...pulumi.ResourceOption) (Command, error)
}

type GenericPackageManager struct {
	namer           namer.Namer
	updateDBCommand Command
	runner          Runner
	opts            []pulumi.ResourceOption
	installCmd      string
	updateCmd       string
	env             pulumi.StringMap
}

func NewGenericPackageManager(
	runner Runner,
	name string,
	installCmd string,
	updateCmd string,
	env pulumi.StringMap,
) *GenericPackageManager {
	packageManager := &GenericPackageManager{
		namer:      namer.NewNamer(runner.Environment().Ctx, name),
		runner:     runner,
		installCmd: installCmd,
		updateCmd:  updateCmd,
		env:        env,
	}

	return packageManager
}

func NewAptManager(runner Runner) *GenericPackageManager {
	return NewGenericPackageManager(
		runner,
		"apt",
		"apt-get install -y",
		"apt-get update",
		pulumi.StringMap{
			"DEBIAN_FRONTEND": pulumi.String("noninteractive"),
		},
	)
}

func (m *GenericPackageManager) Ensure(packageRef string, checkBinary string, opts ...pulumi.ResourceOption) (Command, error) {
	pulumiOpts := append(opts, m.opts...)
	if m.updateCmd != "" {
		updateDB, err := m.updateDB(pulumiOpts)
		if err != nil {
			return nil, err
		}

		pulumiOpts = append(pulumiOpts, utils.PulumiDependsOn(updateDB))
	}

	var cmdStr string
	if checkBinary != "" {
		cmdStr = fmt.Sprintf("bash -c 'command -v %s || %s %s'", checkBinary, m.installCmd, packageRef)
	} else {
		cmdStr = fmt.Sprintf("%s %s", m.installCmd, packageRef)
	}

	cmd, err := m.runner.Command(
		m.namer.ResourceName("install-"+packageRef, utils.StrHash(cmdStr)),
		&Args{
			Create:      pulumi.String(cmdStr),
			Environment: m.env,
			Sudo:        true,
		}, pulumiOpts...)
	if err != nil {
		return nil, err
	}

	// Make sure the package manager isn't running in parallel
	m.opts = append(m.opts, utils.PulumiDependsOn(cmd))
	return cmd, nil
}

func (m *GenericPackageManager) updateDB(opts []pulumi.ResourceOption) (Command, error) {
	if m.updateDBCommand != nil {
		return m.updateDBCommand, nil
	}

	c, err := m.runner.Command(
		m.namer.ResourceName("update"),
		&Args{
			Create:      pulumi.String(m.updateCmd),
			Environment: m.env,
			Sudo:        true,
		}, opts...)
	if err == nil {
		m.updateDBCommand = c
	}

	return c, err
}
