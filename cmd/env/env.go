package env

import (
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github/chapool/go-faucet/internal/config"
)

func New() *cobra.Command {
	return &cobra.Command{
		Use:   "env",
		Short: "Prints the effective server config",
		Long: `Prints the currently applicable server environment.
Evaluates ENV variables (and .env.local) against their defaults.`,
		Run: func(_ *cobra.Command, _ []string) {
			printServiceEnv()
		},
	}
}

func printServiceEnv() {
	cfg := config.DefaultServiceConfigFromEnv()

	c, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to marshal service config")
	}

	fmt.Println(string(c))
}
