package remote

import (
	"github.com/inventreats/infra-definitions/components"
	"github.com/inventreats/infra-definitions/components/os"

	"github.com/pulumi/pulumi/sdk/v3/go/pulumi"
)

// HostOutput is the type that is used to import the Host component
type HostOutput struct {
	components.JSONImporter

	Address      string `json:"address"`
	Username     string `json:"username"`
	OSFlavor     int    `json:"osFlavor"`
	OSVersion    string `json:"osVersion"`
	Architecture string `json:"architecture"`
}

// Host represents a remote host (for instance, a VM)
type Host struct {
	pulumi.ResourceState
	components.Component

	OS os.OS

	Address      pulumi.StringOutput `pulumi:"address"`
	Username     pulumi.StringOutput `pulumi:"username"`
	OSFlavor     pulumi.IntOutput    `pulumi:"osFlavor"`
	OSVersion    pulumi.StringOutput `pulumi:"osVersion"`
	Architecture pulumi.StringOutput `pulumi:"architecture"`
}

func (h *Host) Export(ctx *pulumi.Context, out *HostOutput) error {
	return components.Export(ctx, h, out)
}
