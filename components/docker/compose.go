package docker

import (
	"dario.cat/mergo"
	"github.com/pulumi/pulumi/sdk/v3/go/pulumi"
	"gopkg.in/yaml.v3"
)

type ComposeInlineManifest struct {
	Name    string
	Content pulumi.StringInput
}

type ComposeManifest struct {
	Version  string                            `yaml:"version,omitempty"`
	Services map[string]ComposeManifestService `yaml:"services"`
	Volumes  map[string]any                    `yaml:"volumes,omitempty"`
}

type ComposeManifestService struct {
	Image         string                       `yaml:"image"`
	ContainerName string                       `yaml:"container_name,omitempty"`
	Restart       string                       `yaml:"restart,omitempty"`
	User          string                       `yaml:"user,omitempty"`
	Command       []string                     `yaml:"command,omitempty"`
	Ports         []string                     `yaml:"ports,omitempty"`
	Expose        []string                     `yaml:"expose,omitempty"`
	Volumes       []string                     `yaml:"volumes,omitempty"`
	EnvFile       []string                     `yaml:"env_file,omitempty"`
	Links         []string                     `yaml:"links,omitempty"`
	Environment   map[string]any               `yaml:"environment,omitempty"`
	DependsOn     map[string]ServiceDependency `yaml:"depends_on,omitempty"`
	Healthcheck   *Healthcheck                 `yaml:"healthcheck,omitempty"`
}

type ServiceDependency struct {
	Condition string `yaml:"condition"`
}

type Healthcheck struct {
	Test        []string `yaml:"test"`
	Interval    string   `yaml:"interval,omitempty"`
	Timeout     string   `yaml:"timeout,omitempty"`
	Retries     int      `yaml:"retries,omitempty"`
	StartPeriod string   `yaml:"start_period,omitempty"`
}

func (m ComposeManifest) ToYAML() (string, error) {
	out, err := yaml.Marshal(m)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// MergeService overlays non-zero fields of `override` on top of `base`.
func MergeService(base ComposeManifestService, override ComposeManifestService) (ComposeManifestService, error) {
	merged := base
	if err := mergo.Merge(&merged, override, mergo.WithOverride); err != nil {
		return ComposeManifestService{}, err
	}
	return merged, nil
}
