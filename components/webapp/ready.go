package webapp

import (
	"fmt"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/inventreats/infra-definitions/common/config"
	"github.com/inventreats/infra-definitions/components/command"

	"github.com/pulumi/pulumi/sdk/v3/go/pulumi"
)

const (
	readyInterval   = 2 * time.Second
	readyMaxRetries = 150
	readyTimeout    = 10 * time.Second
)

// readyClient carries its own timeout so a port that accepts connections but
// never answers cannot stall the retry loop.
var readyClient = &http.Client{Timeout: readyTimeout}

// probeWebapp considers any HTTP answer below 500 as ready; application-level
// statuses (redirects to login, 404 on the root path) still prove uWSGI serves.
func probeWebapp(client *http.Client, url string) error {
	resp, err := client.Get(url)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusInternalServerError {
		return fmt.Errorf("webapp returned status %d", resp.StatusCode)
	}
	return nil
}

// waitForReady probes the webapp HTTP endpoint once the compose stack is up
// and resolves to the stack URL. Compose `--wait` already blocks on container
// health, this additionally covers initial migrations which run before uWSGI
// starts serving. The probe is skipped on previews.
func waitForReady(e *config.CommonEnvironment, hostname pulumi.StringInput, composeCmd command.Command) pulumi.StringOutput {
	isDryRun := e.Ctx.DryRun()

	return pulumi.All(hostname.ToStringOutput(), composeCmd.StdoutOutput()).ApplyT(func(args []any) (string, error) {
		url := fmt.Sprintf("http://%s:8000", args[0].(string))
		if isDryRun {
			return url, nil
		}

		err := backoff.Retry(func() error {
			return probeWebapp(readyClient, url)
		}, backoff.WithMaxRetries(backoff.NewConstantBackOff(readyInterval), readyMaxRetries))

		return url, err
	}).(pulumi.StringOutput)
}
