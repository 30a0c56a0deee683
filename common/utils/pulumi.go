package utils

import (
	"github.com/pulumi/pulumi/sdk/v3/go/pulumi"
)

func PulumiDependsOn(resources ...pulumi.Resource) pulumi.ResourceOption {
	return pulumi.DependsOn(resources)
}

// MergeOptions returns a new slice, it does not modify any of its inputs.
func MergeOptions[T any](current []T, opts ...T) []T {
	merged := make([]T, 0, len(current)+len(opts))
	merged = append(merged, current...)
	merged = append(merged, opts...)
	return merged
}
