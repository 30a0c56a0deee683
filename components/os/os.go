package os

import (
	"github.com/inventreats/infra-definitions/common/config"
	"github.com/inventreats/infra-definitions/components/command"
)

// OS is the high-level interface for an OS INSIDE Pulumi code
type OS interface {
	Descriptor() Descriptor

	Runner() command.Runner
	FileManager() *command.FileManager
	PackageManager() command.PackageManager
}

// os is a generic implementation of OS interface
type os struct {
	descriptor     Descriptor
	runner         command.Runner
	fileManager    *command.FileManager
	packageManager command.PackageManager
}

func (o os) Descriptor() Descriptor {
	return o.descriptor
}

func (o os) Runner() command.Runner {
	return o.runner
}

func (o os) FileManager() *command.FileManager {
	return o.fileManager
}

func (o os) PackageManager() command.PackageManager {
	return o.packageManager
}

func NewOS(
	e *config.CommonEnvironment,
	descriptor Descriptor,
	runner command.Runner,
) OS {
	switch descriptor.Family() {
	case LinuxFamily:
		return newLinuxOS(descriptor, runner)
	default:
		panic("unsupported OS family")
	}
}

func newLinuxOS(descriptor Descriptor, runner command.Runner) OS {
	return os{
		descriptor:     descriptor,
		runner:         runner,
		fileManager:    command.NewFileManager(runner),
		packageManager: command.NewAptManager(runner),
	}
}
