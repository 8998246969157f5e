package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/joho/godotenv"
)

var errEnvVarNotFound error = errors.New("environment variable not found")
var errInvalidEnvVar error = errors.New("invalid environment variable")

const (
	apiPortEnvKey        = "API_PORT"
	ethNodeEnvKey        = "ETH_NODE_URL"
	dbConnEnvKey         = "DB_CONNECTION_URL"
	jwtSecretEnvKey      = "JWT_SECRET"
	redisURLEnvKey       = "REDIS_URL"
	factoryEnvKey        = "TOKEN_FACTORY_ADDRESS"
	traderEnvKey         = "TOKEN_TRADER_ADDRESS"
	wethEnvKey           = "WETH_ADDRESS"
	marketDataEnvKey     = "MARKET_DATA_URL"
	marketChainEnvKey    = "MARKET_CHAIN"
	syncIntervalEnvKey   = "SYNC_INTERVAL"
	placeholdersEnvKey   = "SYNC_PLACEHOLDERS"
	gatewayURLEnvKey     = "PINATA_GATEWAY_URL"
	pinataJWTEnvKey      = "PINATA_JWT"
	pinataAPIURLEnvKey   = "PINATA_API_URL"
	privateKeyEnvKey     = "PRIVATE_KEY"
	sentryDSNEnvKey      = "SENTRY_DSN"
	environmentEnvKey    = "ENVIRONMENT"
	apiURLEnvKey         = "API_URL"
	defaultMarketDataURL = "https://api.dexscreener.com/latest/dex/tokens"
	defaultMarketChain   = "ethereum"
	defaultSyncInterval  = 5 * time.Minute
	defaultGatewayURL    = "https://gateway.pinata.cloud"
	defaultPinataAPIURL  = "https://api.pinata.cloud/pinning"
	defaultEnvironment   = "development"
	defaultAPIURL        = "http://localhost:8080"
)

// Contracts holds the addresses of the deployed factory, trader and wrapped native token.
type Contracts struct {
	Factory common.Address
	Trader  common.Address
	WETH    common.Address
}

// Market configures the market-data aggregator.
type Market struct {
	URL          string
	Chain        string
	Placeholders bool
}

type App struct {
	Port            string
	NodeURL         string
	DBConnectionURL string
	JWTSecret       string
	RedisURL        string
	GatewayURL      string
	SentryDSN       string
	Environment     string
	SyncInterval    time.Duration
	Contracts       Contracts
	Market          Market
}

type Trader struct {
	NodeURL         string
	DBConnectionURL string
	PrivateKey      string
	RedisURL        string
	PinataJWT       string
	PinataAPIURL    string
	GatewayURL      string
	Contracts       Contracts
	Market          Market
}

// Login configures the auth command, which signs in to a running API.
type Login struct {
	APIURL     string
	PrivateKey string
}

// LoadDotEnv loads variables from the given files (".env" when none are given).
// Missing files are ignored; variables already set in the environment win.
func LoadDotEnv(filenames ...string) error {
	err := godotenv.Load(filenames...)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load dotenv: %w", err)
	}
	return nil
}

func NewApp() (App, error) {
	port, err := lookup(apiPortEnvKey)
	if err != nil {
		return App{}, err
	}

	nodeURL, err := lookup(ethNodeEnvKey)
	if err != nil {
		return App{}, err
	}

	dbConn, err := lookup(dbConnEnvKey)
	if err != nil {
		return App{}, err
	}

	jwtSecret, err := lookup(jwtSecretEnvKey)
	if err != nil {
		return App{}, err
	}

	redisURL, err := lookup(redisURLEnvKey)
	if err != nil {
		return App{}, err
	}

	contracts, err := newContracts()
	if err != nil {
		return App{}, err
	}

	market, err := newMarket()
	if err != nil {
		return App{}, err
	}

	interval := defaultSyncInterval
	if raw, ok := os.LookupEnv(syncIntervalEnvKey); ok {
		interval, err = time.ParseDuration(raw)
		if err != nil || interval <= 0 {
			return App{}, fmt.Errorf("%w: %s=%q", errInvalidEnvVar, syncIntervalEnvKey, raw)
		}
	}

	return App{
		Port:            port,
		NodeURL:         nodeURL,
		DBConnectionURL: dbConn,
		JWTSecret:       jwtSecret,
		RedisURL:        redisURL,
		GatewayURL:      lookupOr(gatewayURLEnvKey, defaultGatewayURL),
		SentryDSN:       lookupOr(sentryDSNEnvKey, ""),
		Environment:     lookupOr(environmentEnvKey, defaultEnvironment),
		SyncInterval:    interval,
		Contracts:       contracts,
		Market:          market,
	}, nil
}

func NewTrader() (Trader, error) {
	nodeURL, err := lookup(ethNodeEnvKey)
	if err != nil {
		return Trader{}, err
	}

	dbConn, err := lookup(dbConnEnvKey)
	if err != nil {
		return Trader{}, err
	}

	privateKey, err := lookup(privateKeyEnvKey)
	if err != nil {
		return Trader{}, err
	}

	contracts, err := newContracts()
	if err != nil {
		return Trader{}, err
	}

	market, err := newMarket()
	if err != nil {
		return Trader{}, err
	}

	return Trader{
		NodeURL:         nodeURL,
		DBConnectionURL: dbConn,
		PrivateKey:      privateKey,
		RedisURL:        lookupOr(redisURLEnvKey, ""),
		PinataJWT:       lookupOr(pinataJWTEnvKey, ""),
		PinataAPIURL:    lookupOr(pinataAPIURLEnvKey, defaultPinataAPIURL),
		GatewayURL:      lookupOr(gatewayURLEnvKey, defaultGatewayURL),
		Contracts:       contracts,
		Market:          market,
	}, nil
}

func NewLogin() (Login, error) {
	privateKey, err := lookup(privateKeyEnvKey)
	if err != nil {
		return Login{}, err
	}

	return Login{
		APIURL:     lookupOr(apiURLEnvKey, defaultAPIURL),
		PrivateKey: privateKey,
	}, nil
}

func newContracts() (Contracts, error) {
	factory, err := lookupAddress(factoryEnvKey)
	if err != nil {
		return Contracts{}, err
	}

	trader, err := lookupAddress(traderEnvKey)
	if err != nil {
		return Contracts{}, err
	}

	weth, err := lookupAddress(wethEnvKey)
	if err != nil {
		return Contracts{}, err
	}

	return Contracts{
		Factory: factory,
		Trader:  trader,
		WETH:    weth,
	}, nil
}

func newMarket() (Market, error) {
	placeholders := true
	if raw, ok := os.LookupEnv(placeholdersEnvKey); ok {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return Market{}, fmt.Errorf("%w: %s=%q", errInvalidEnvVar, placeholdersEnvKey, raw)
		}
		placeholders = v
	}

	return Market{
		URL:          lookupOr(marketDataEnvKey, defaultMarketDataURL),
		Chain:        lookupOr(marketChainEnvKey, defaultMarketChain),
		Placeholders: placeholders,
	}, nil
}

func lookup(key string) (string, error) {
	value, ok := os.LookupEnv(key)
	if !ok {
		return "", fmt.Errorf("%w: %s", errEnvVarNotFound, key)
	}
	return value, nil
}

func lookupOr(key, fallback string) string {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback
	}
	return value
}

func lookupAddress(key string) (common.Address, error) {
	value, err := lookup(key)
	if err != nil {
		return common.Address{}, err
	}
	if !common.IsHexAddress(value) {
		return common.Address{}, fmt.Errorf("%w: %s=%q", errInvalidEnvVar, key, value)
	}
	return common.HexToAddress(value), nil
}
