package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/inventreats/infra-definitions/registry"

	"github.com/pulumi/pulumi/sdk/v3/go/pulumi"
	"github.com/pulumi/pulumi/sdk/v3/go/pulumi/config"
)

const (
	scenarioEnvVarName = "PULUMI_SCENARIO"
	scenarioParamName  = "scenario"

	// dummy scenario, used to verify the program runs without deploying anything
	dummyScenario = "dummy"
)

func main() {
	pulumi.Run(func(ctx *pulumi.Context) error {
		scenarioName := os.Getenv(scenarioEnvVarName)
		rootConfig := config.New(ctx, "")
		if s := rootConfig.Get(scenarioParamName); s != "" {
			scenarioName = s
		}

		if scenarioName == dummyScenario {
			return nil
		}

		run, found := registry.Scenarios()[scenarioName]
		if !found {
			return fmt.Errorf("impossible to run unknown scenario: %s, known scenarios: %s", scenarioName, strings.Join(registry.List(), ", "))
		}

		return run(ctx)
	})
}
