package os

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewDescriptorFromString(t *testing.T) {
	tests := []struct {
		descStr  string
		expected Descriptor
	}{
		{"ubuntu:22.04", NewDescriptor(Ubuntu, "22.04")},
		{"ubuntu:24.04:arm64", NewDescriptorWithArch(Ubuntu, "24.04", ARM64Arch)},
		{"debian:12:aarch64", NewDescriptorWithArch(Debian, "12", ARM64Arch)},
		{"amazonlinux:2023:amd64", NewDescriptorWithArch(AmazonLinux, "2023", AMD64Arch)},
	}

	for _, tt := range tests {
		t.Run(tt.descStr, func(t *testing.T) {
			assert.Equal(t, tt.expected, NewDescriptorFromString(tt.descStr))
		})
	}
}

func TestNewDescriptorFromStringInvalid(t *testing.T) {
	assert.Panics(t, func() { NewDescriptorFromString("ubuntu") })
	assert.Panics(t, func() { NewDescriptorFromString("windows:2022") })
	assert.Panics(t, func() { NewDescriptorFromString("ubuntu:22.04:sparc") })
}

func TestNewArchitectureFromString(t *testing.T) {
	assert.Equal(t, AMD64Arch, NewArchitectureFromString("x86_64"))
	assert.Equal(t, AMD64Arch, NewArchitectureFromString("amd64"))
	assert.Equal(t, ARM64Arch, NewArchitectureFromString("arm64"))
	assert.Equal(t, ARM64Arch, NewArchitectureFromString("aarch64"))
	assert.Panics(t, func() { NewArchitectureFromString("sparc") })
}

func TestWithArch(t *testing.T) {
	desc := Ubuntu2204.WithArch(ARM64Arch)

	assert.Equal(t, ARM64Arch, desc.Architecture)
	assert.Equal(t, Ubuntu2204.Version, desc.Version)
	// value receiver, the original descriptor is untouched
	assert.Equal(t, AMD64Arch, Ubuntu2204.Architecture)
}
