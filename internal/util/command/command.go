package command

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github/chapool/go-faucet/internal/api"
	"github/chapool/go-faucet/internal/api/router"
	"github/chapool/go-faucet/internal/config"
)

const shutdownTimeout = 10 * time.Second

// NewSubcommandGroup returns a command that only groups its subcommands and
// prints usage when called directly.
func NewSubcommandGroup(use string, subcommands ...*cobra.Command) *cobra.Command {
	cmd := &cobra.Command{
		Use: use,
		Run: func(cmd *cobra.Command, _ []string) {
			if err := cmd.Help(); err != nil {
				log.Error().Err(err).Msg("Failed to print help")
			}
		},
	}

	cmd.AddCommand(subcommands...)

	return cmd
}

// WithServer initializes a full server from the given config, runs the
// closure against it and shuts the server down again. Meant for one-shot
// commands and tests that need initialized components without a listening
// socket.
func WithServer(ctx context.Context, cfg config.Server, closure func(ctx context.Context, s *api.Server) error) error {
	s, err := api.InitNewServer(cfg)
	if err != nil {
		return err
	}

	router.Init(s)

	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if errs := s.Shutdown(shutdownCtx); len(errs) > 0 {
			log.Error().Errs("errs", errs).Msg("Failed to gracefully shut down server")
		}
	}()

	return closure(ctx, s)
}
