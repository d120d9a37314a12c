package server

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github/chapool/go-faucet/internal/api"
	"github/chapool/go-faucet/internal/api/router"
	"github/chapool/go-faucet/internal/config"
)

const (
	rpcURLFlag           = "rpc-url"
	privateKeyFlag       = "private-key"
	tokensPerRequestFlag = "tokens-per-request"
	hostFlag             = "host"
	portFlag             = "port"
	gasPriceGweiFlag     = "gas-price-gwei"
	gasLimitFlag         = "gas-limit"

	shutdownTimeout = 30 * time.Second
)

func New() *cobra.Command {
	defaults := config.DefaultServiceConfigFromEnv()

	cmd := &cobra.Command{
		Use:   "server",
		Short: "Starts the faucet server",
		Long: `Starts the faucet HTTP server.
Flags override their ENV counterparts.`,
		Run: func(cmd *cobra.Command, _ []string) {
			runServer()
		},
	}

	cmd.Flags().String(rpcURLFlag, defaults.Faucet.RPCURL, "RPC URL of the target node (comma-separated for failover)")
	cmd.Flags().String(privateKeyFlag, defaults.Faucet.PrivateKey, "Hex private key of the operator wallet (optional 0x prefix)")
	cmd.Flags().String(tokensPerRequestFlag, defaults.Faucet.TokensPerRequest, "Amount of tokens to send per request (in wei)")
	cmd.Flags().String(hostFlag, defaults.Echo.ListenHost, "Server host to bind to")
	cmd.Flags().Int(portFlag, defaults.Echo.ListenPort, "Server port to listen on")
	cmd.Flags().Uint64(gasPriceGweiFlag, defaults.Faucet.GasPriceGwei, "Gas price in gwei")
	cmd.Flags().Uint64(gasLimitFlag, defaults.Faucet.GasLimit, "Gas limit for dispense transactions")

	if err := viper.BindPFlags(cmd.Flags()); err != nil {
		log.Fatal().Err(err).Msg("Failed to bind server flags")
	}

	return cmd
}

func runServer() {
	cfg := config.DefaultServiceConfigFromEnv()

	// flags win over ENV, their defaults are the ENV values
	cfg.Faucet.RPCURL = viper.GetString(rpcURLFlag)
	cfg.Faucet.PrivateKey = viper.GetString(privateKeyFlag)
	cfg.Faucet.TokensPerRequest = viper.GetString(tokensPerRequestFlag)
	cfg.Echo.ListenHost = viper.GetString(hostFlag)
	cfg.Echo.ListenPort = viper.GetInt(portFlag)
	cfg.Faucet.GasPriceGwei = viper.GetUint64(gasPriceGweiFlag)
	cfg.Faucet.GasLimit = viper.GetUint64(gasLimitFlag)

	initLogger(cfg)

	// startup is fail-fast: any configuration problem aborts the process,
	// per-request errors later on never do
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("Invalid server configuration")
	}

	s, err := api.InitNewServer(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize server components")
	}

	router.Init(s)

	go func() {
		if err := s.Start(); err != nil {
			if errors.Is(err, http.ErrServerClosed) {
				log.Info().Msg("Server closed")
			} else {
				log.Fatal().Err(err).Msg("Failed to start server")
			}
		}
	}()

	log.Info().
		Str("address", cfg.Echo.ListenAddress()).
		Str("operator", s.Signer.Address().Hex()).
		Msg("Faucet server started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if errs := s.Shutdown(ctx); len(errs) > 0 {
		log.Fatal().Errs("errs", errs).Msg("Failed to gracefully shut down server")
	}
}

func initLogger(cfg config.Server) {
	zerolog.SetGlobalLevel(cfg.Logger.Level)

	if cfg.Logger.PrettyPrintConsole {
		log.Logger = log.Output(zerolog.NewConsoleWriter(func(w *zerolog.ConsoleWriter) {
			w.TimeFormat = time.RFC3339
		}))
	}
}
