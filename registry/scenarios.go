package registry

import (
	"sort"

	awsstack "github.com/inventreats/infra-definitions/scenarios/aws/stack"
	localstack "github.com/inventreats/infra-definitions/scenarios/local/stack"

	"github.com/pulumi/pulumi/sdk/v3/go/pulumi"
	"golang.org/x/exp/maps"
)

// Scenarios returns all the deployable scenarios, keyed by name.
func Scenarios() map[string]pulumi.RunFunc {
	return map[string]pulumi.RunFunc{
		"local/stack": localstack.Run,
		"aws/stack":   awsstack.Run,
	}
}

func List() []string {
	names := maps.Keys(Scenarios())
	sort.Strings(names)
	return names
}
