package config

import (
	"net"
	"strconv"
	"sync"

	"github.com/kat-co/vala"
	"github.com/rs/zerolog"
	"github.com/subosito/gotenv"
	"github/chapool/go-faucet/internal/util"
)

type EchoServer struct {
	Debug                          bool
	ListenHost                     string
	ListenPort                     int
	HideInternalServerErrorDetails bool
	EnableCORSMiddleware           bool
	EnableLoggerMiddleware         bool
	EnableRecoverMiddleware        bool
	EnableRequestIDMiddleware      bool
	EnableTrailingSlashMiddleware  bool
}

// ListenAddress returns the host:port echo binds to.
func (e EchoServer) ListenAddress() string {
	return net.JoinHostPort(e.ListenHost, strconv.Itoa(e.ListenPort))
}

type LoggerServer struct {
	Level              zerolog.Level
	RequestLevel       zerolog.Level
	LogRequestBody     bool
	PrettyPrintConsole bool
}

// FaucetServer holds the dispense parameters. They are immutable after
// startup; the raw strings are parsed and validated by the faucet package.
type FaucetServer struct {
	RPCURL           string
	PrivateKey       string
	TokensPerRequest string
	GasPriceGwei     uint64
	GasLimit         uint64
}

type Server struct {
	Echo   EchoServer
	Logger LoggerServer
	Faucet FaucetServer
}

var dotEnvOnce sync.Once

// DefaultServiceConfigFromEnv returns the server config as parsed from environment variables
// and their respective defaults as defined below.
// We don't expect that ENV_VARs change while we are running our application or our tests
// (and it would be a bad thing to do anyways with parallel testing).
func DefaultServiceConfigFromEnv() Server {
	// optional local overrides, missing file is fine
	dotEnvOnce.Do(func() {
		_ = gotenv.Load(".env.local")
	})

	return Server{
		Echo: EchoServer{
			Debug:                          util.GetEnvAsBool("SERVER_ECHO_DEBUG", false),
			ListenHost:                     util.GetEnv("SERVER_ECHO_LISTEN_HOST", "127.0.0.1"),
			ListenPort:                     util.GetEnvAsInt("SERVER_ECHO_LISTEN_PORT", 5556),
			HideInternalServerErrorDetails: util.GetEnvAsBool("SERVER_ECHO_HIDE_INTERNAL_SERVER_ERROR_DETAILS", false),
			EnableCORSMiddleware:           util.GetEnvAsBool("SERVER_ECHO_ENABLE_CORS_MIDDLEWARE", true),
			EnableLoggerMiddleware:         util.GetEnvAsBool("SERVER_ECHO_ENABLE_LOGGER_MIDDLEWARE", true),
			EnableRecoverMiddleware:        util.GetEnvAsBool("SERVER_ECHO_ENABLE_RECOVER_MIDDLEWARE", true),
			EnableRequestIDMiddleware:      util.GetEnvAsBool("SERVER_ECHO_ENABLE_REQUEST_ID_MIDDLEWARE", true),
			EnableTrailingSlashMiddleware:  util.GetEnvAsBool("SERVER_ECHO_ENABLE_TRAILING_SLASH_MIDDLEWARE", true),
		},
		Logger: LoggerServer{
			Level:              util.LogLevelFromString(util.GetEnv("SERVER_LOGGER_LEVEL", "info")),
			RequestLevel:       util.LogLevelFromString(util.GetEnv("SERVER_LOGGER_REQUEST_LEVEL", "debug")),
			LogRequestBody:     util.GetEnvAsBool("SERVER_LOGGER_LOG_REQUEST_BODY", false),
			PrettyPrintConsole: util.GetEnvAsBool("SERVER_LOGGER_PRETTY_PRINT_CONSOLE", false),
		},
		Faucet: FaucetServer{
			RPCURL:           util.GetEnv("FAUCET_RPC_URL", "http://localhost:8545"),
			PrivateKey:       util.GetEnv("FAUCET_PRIVATE_KEY", ""),
			TokensPerRequest: util.GetEnv("FAUCET_TOKENS_PER_REQUEST", "1000000000000000000"),
			GasPriceGwei:     util.GetEnvAsUint64("FAUCET_GAS_PRICE_GWEI", 1),
			GasLimit:         util.GetEnvAsUint64("FAUCET_GAS_LIMIT", 21000),
		},
	}
}

// Validate performs the cheap startup checks. Deep validation (key decoding,
// amount parsing) happens while the faucet components are constructed.
func (s Server) Validate() error {
	return vala.BeginValidation().Validate(
		vala.StringNotEmpty(s.Faucet.RPCURL, "FAUCET_RPC_URL"),
		vala.StringNotEmpty(s.Faucet.PrivateKey, "FAUCET_PRIVATE_KEY"),
		vala.StringNotEmpty(s.Faucet.TokensPerRequest, "FAUCET_TOKENS_PER_REQUEST"),
		vala.GreaterThan(int(s.Faucet.GasLimit), 0, "FAUCET_GAS_LIMIT"),
		vala.GreaterThan(s.Echo.ListenPort, 0, "SERVER_ECHO_LISTEN_PORT"),
	).Check()
}
