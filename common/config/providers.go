package config

import (
	"fmt"

	"github.com/pulumi/pulumi/sdk/v3/go/pulumi"
)

type ProviderID string

const (
	ProviderCommand ProviderID = "command"
	ProviderRandom  ProviderID = "random"
	ProviderDocker  ProviderID = "docker"
	ProviderAWS     ProviderID = "aws"
	ProviderTLS     ProviderID = "tls"
)

func (e *CommonEnvironment) RegisterProvider(id ProviderID, provider pulumi.ProviderResource) {
	e.providerRegistry[id] = provider
}

// WithProviders returns a resource option binding previously registered
// providers. It panics on unknown providers as this is a programming error.
func (e *CommonEnvironment) WithProviders(ids ...ProviderID) pulumi.ResourceOption {
	providers := make([]pulumi.ProviderResource, 0, len(ids))
	for _, id := range ids {
		provider, found := e.providerRegistry[id]
		if !found {
			panic(fmt.Sprintf("provider %s is not registered in this environment", id))
		}
		providers = append(providers, provider)
	}

	return pulumi.Providers(providers...)
}
