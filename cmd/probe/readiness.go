package probe

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github/chapool/go-faucet/internal/config"
	"github/chapool/go-faucet/internal/util"
)

const probeTimeout = 5 * time.Second

func newReadiness() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "readiness",
		Short: "Runs a readiness probe against a running server",
		Long: `Issues GET /-/ready on the configured listen address.
Exits non-zero if the server does not respond with 200.`,
		Run: func(cmd *cobra.Command, _ []string) {
			verbose, err := cmd.Flags().GetBool(verboseFlag)
			if err != nil {
				verbose = false
			}

			runProbe("/-/ready", verbose)
		},
	}

	cmd.Flags().BoolP(verboseFlag, "v", false, "Print the probe response body")

	return cmd
}

func runProbe(path string, verbose bool) {
	cfg := config.DefaultServiceConfigFromEnv()

	url := fmt.Sprintf("http://%s%s", util.GetMgmtListenAddress(cfg.Echo.ListenHost, cfg.Echo.ListenPort), path)

	client := &http.Client{Timeout: probeTimeout}

	res, err := client.Get(url)
	if err != nil {
		log.Fatal().Err(err).Str("url", url).Msg("Probe request failed")
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		log.Fatal().Err(err).Str("url", url).Msg("Failed to read probe response")
	}

	if verbose {
		fmt.Println(string(body))
	}

	if res.StatusCode != http.StatusOK {
		log.Error().Int("status", res.StatusCode).Str("url", url).Msg("Probe failed")
		os.Exit(1)
	}
}
