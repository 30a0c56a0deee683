package os

import (
	"fmt"
	"strings"
)

const osDescriptorSep = ":"

type Family int

const (
	LinuxFamily Family = iota
)

type Flavor int

const (
	Ubuntu Flavor = iota
	Debian
	AmazonLinux
)

func NewFlavorFromString(flavorStr string) Flavor {
	switch strings.ToLower(flavorStr) {
	case "ubuntu":
		return Ubuntu
	case "debian":
		return Debian
	case "amazonlinux":
		return AmazonLinux
	default:
		panic(fmt.Sprintf("unknown OS flavor, was: %s", flavorStr))
	}
}

func (f Flavor) Type() Family {
	switch f {
	case Ubuntu, Debian, AmazonLinux:
		return LinuxFamily
	default:
		panic("unknown OS flavor")
	}
}

type Architecture string

const (
	AMD64Arch Architecture = "x86_64"
	ARM64Arch Architecture = "arm64"
)

func NewArchitectureFromString(archStr string) Architecture {
	switch strings.ToLower(archStr) {
	case "x86_64", "amd64":
		return AMD64Arch
	case "arm64", "aarch64":
		return ARM64Arch
	default:
		panic(fmt.Sprintf("unknown architecture, was: %s", archStr))
	}
}

// Descriptor provides definition of an OS
type Descriptor struct {
	family       Family
	Flavor       Flavor
	Version      string
	Architecture Architecture
}

var (
	Ubuntu2204    = NewDescriptor(Ubuntu, "22.04")
	UbuntuDefault = Ubuntu2204
)

// String format is <flavor>:<version>(:<arch>)
func NewDescriptorFromString(descStr string) Descriptor {
	parts := strings.Split(descStr, osDescriptorSep)
	if len(parts) == 2 {
		return NewDescriptor(NewFlavorFromString(parts[0]), parts[1])
	} else if len(parts) == 3 {
		return NewDescriptorWithArch(NewFlavorFromString(parts[0]), parts[1], NewArchitectureFromString(parts[2]))
	} else {
		panic(fmt.Sprintf("invalid OS descriptor string, was: %s", descStr))
	}
}

func NewDescriptor(f Flavor, version string) Descriptor {
	return NewDescriptorWithArch(f, version, AMD64Arch)
}

func NewDescriptorWithArch(f Flavor, version string, arch Architecture) Descriptor {
	return Descriptor{
		family:       f.Type(),
		Flavor:       f,
		Version:      version,
		Architecture: arch,
	}
}

func (d Descriptor) Family() Family {
	return d.family
}

func (d Descriptor) WithArch(a Architecture) Descriptor {
	d.Architecture = a
	return d
}
