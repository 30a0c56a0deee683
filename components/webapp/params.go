package webapp

import (
	"github.com/inventreats/infra-definitions/common"
	"github.com/inventreats/infra-definitions/common/config"
	"github.com/inventreats/infra-definitions/common/utils"
	"github.com/inventreats/infra-definitions/components/docker"
	"github.com/pulumi/pulumi/sdk/v3/go/pulumi"
)

const (
	defaultUID = 1000
	defaultGID = 2000

	defaultPythonVersion = "3.11-slim-bookworm"
	defaultMediaVolume   = "media-root"
)

// Params defines the parameters for the webapp image and its compose service.
// The Params configuration uses the [Functional options pattern].
//
// The available options are:
//   - [WithFullImagePath]
//   - [WithWorkers]
//   - [WithThreads]
//   - [WithRunAs]
//   - [WithPythonVersion]
//   - [WithMediaVolume]
//   - [WithEnvFileHostPath]
//   - [WithHostname]
//   - [WithServiceOverride]
//   - [WithManifestOverride]
//   - [WithExtraComposeManifest]
//   - [WithPulumiDependsOn]
//
// [Functional options pattern]: https://dave.cheney.net/2014/10/17/functional-options-for-friendly-apis
type Params struct {
	// FullImagePath is the webapp image to run, repository:tag.
	FullImagePath string
	// Workers is the number of uWSGI worker processes baked into the image.
	Workers int
	// Threads is the number of threads per uWSGI worker.
	Threads int
	// UID/GID is the non-root runtime user the media directory belongs to.
	UID int
	GID int
	// PythonVersion is the base image tag used by the Dockerfile.
	PythonVersion string
	// RuntimePackages are the shared libraries kept in the final image.
	RuntimePackages []string
	// BuildPackages are installed for the dependency build and purged afterwards.
	BuildPackages []string
	// MediaVolume is the named volume mounted at the media directory.
	MediaVolume string
	// EnvFileHostPath is an optional env file mounted read-only into the container.
	EnvFileHostPath pulumi.StringInput
	// Hostname is where the published webapp port is expected to be reachable.
	Hostname pulumi.StringInput
	// ServiceOverride overlays typed compose service fields on the webapp service.
	ServiceOverride *docker.ComposeManifestService
	// ManifestOverride is raw YAML merged over the generated webapp manifest,
	// for compose fields the typed model does not carry.
	ManifestOverride string
	// ExtraComposeManifests is a list of extra docker compose manifests deployed beside the stack.
	ExtraComposeManifests []docker.ComposeInlineManifest
	// PulumiDependsOn is a list of resources to depend on.
	PulumiDependsOn []pulumi.ResourceOption
}

type Option = func(*Params) error

func NewParams(e *config.CommonEnvironment, options ...Option) (*Params, error) {
	params := &Params{
		Workers:         e.WebappWorkers(),
		Threads:         e.WebappThreads(),
		UID:             defaultUID,
		GID:             defaultGID,
		PythonVersion:   defaultPythonVersion,
		MediaVolume:     defaultMediaVolume,
		RuntimePackages: e.WebappRuntimePackages(),
		BuildPackages:   e.WebappBuildPackages(),
		Hostname:        pulumi.String("localhost"),
	}

	if fullImagePath := e.WebappFullImagePath(); fullImagePath != "" {
		params.FullImagePath = fullImagePath
	} else {
		params.FullImagePath = utils.BuildDockerImagePath(e.WebappImageRepository(), e.WebappVersion())
	}

	return common.ApplyOption(params, options)
}

func WithFullImagePath(fullImagePath string) func(*Params) error {
	return func(p *Params) error {
		p.FullImagePath = fullImagePath
		return nil
	}
}

func WithWorkers(workers int) func(*Params) error {
	return func(p *Params) error {
		p.Workers = workers
		return nil
	}
}

func WithThreads(threads int) func(*Params) error {
	return func(p *Params) error {
		p.Threads = threads
		return nil
	}
}

func WithRunAs(uid, gid int) func(*Params) error {
	return func(p *Params) error {
		p.UID = uid
		p.GID = gid
		return nil
	}
}

func WithPythonVersion(version string) func(*Params) error {
	return func(p *Params) error {
		p.PythonVersion = version
		return nil
	}
}

func WithMediaVolume(volumeName string) func(*Params) error {
	return func(p *Params) error {
		p.MediaVolume = volumeName
		return nil
	}
}

func WithEnvFileHostPath(path pulumi.StringInput) func(*Params) error {
	return func(p *Params) error {
		p.EnvFileHostPath = path
		return nil
	}
}

func WithHostname(hostname pulumi.StringInput) func(*Params) error {
	return func(p *Params) error {
		p.Hostname = hostname
		return nil
	}
}

func WithServiceOverride(override docker.ComposeManifestService) func(*Params) error {
	return func(p *Params) error {
		p.ServiceOverride = &override
		return nil
	}
}

func WithManifestOverride(overrideYAML string) func(*Params) error {
	return func(p *Params) error {
		p.ManifestOverride = overrideYAML
		return nil
	}
}

func WithExtraComposeManifest(name string, content pulumi.StringInput) func(*Params) error {
	return func(p *Params) error {
		p.ExtraComposeManifests = append(p.ExtraComposeManifests, docker.ComposeInlineManifest{
			Name:    name,
			Content: content,
		})
		return nil
	}
}

func WithPulumiDependsOn(resources ...pulumi.ResourceOption) func(*Params) error {
	return func(p *Params) error {
		p.PulumiDependsOn = resources
		return nil
	}
}
