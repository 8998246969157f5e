package config_test

import (
	"os"
	"path/filepath"
	"time"

	"moonpump/internal/config"

	"github.com/ethereum/go-ethereum/common"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var allKeys = []string{
	"API_PORT", "ETH_NODE_URL", "DB_CONNECTION_URL", "JWT_SECRET", "REDIS_URL",
	"TOKEN_FACTORY_ADDRESS", "TOKEN_TRADER_ADDRESS", "WETH_ADDRESS",
	"MARKET_DATA_URL", "MARKET_CHAIN", "SYNC_INTERVAL", "SYNC_PLACEHOLDERS",
	"PINATA_GATEWAY_URL", "PINATA_JWT", "PINATA_API_URL", "PRIVATE_KEY", "SENTRY_DSN", "ENVIRONMENT",
	"API_URL",
}

func clearEnv() {
	for _, key := range allKeys {
		if old, ok := os.LookupEnv(key); ok {
			DeferCleanup(os.Setenv, key, old)
		} else {
			DeferCleanup(os.Unsetenv, key)
		}
		Expect(os.Unsetenv(key)).To(Succeed())
	}
}

func setEnv(values map[string]string) {
	for k, v := range values {
		Expect(os.Setenv(k, v)).To(Succeed())
	}
}

var _ = Describe("Config", func() {
	const (
		factory = "0x1111111111111111111111111111111111111111"
		trader  = "0x2222222222222222222222222222222222222222"
		weth    = "0xC02aaA39b223FE8D0A0e5C4F27eAD9083C756Cc2"
	)

	BeforeEach(func() {
		clearEnv()
	})

	Describe("NewApp", func() {
		var (
			app config.App
			err error
		)

		BeforeEach(func() {
			setEnv(map[string]string{
				"API_PORT":              "8080",
				"ETH_NODE_URL":          "wss://node.example",
				"DB_CONNECTION_URL":     "postgres://localhost/moonpump",
				"JWT_SECRET":            "secret",
				"REDIS_URL":             "redis://localhost:6379/0",
				"TOKEN_FACTORY_ADDRESS": factory,
				"TOKEN_TRADER_ADDRESS":  trader,
				"WETH_ADDRESS":          weth,
			})
		})

		JustBeforeEach(func() {
			app, err = config.NewApp()
		})

		When("only required variables are set", func() {
			It("should apply defaults", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(app.Port).To(Equal("8080"))
				Expect(app.Contracts.Factory).To(Equal(common.HexToAddress(factory)))
				Expect(app.Contracts.WETH).To(Equal(common.HexToAddress(weth)))
				Expect(app.SyncInterval).To(Equal(5 * time.Minute))
				Expect(app.Market.URL).To(Equal("https://api.dexscreener.com/latest/dex/tokens"))
				Expect(app.Market.Chain).To(Equal("ethereum"))
				Expect(app.Market.Placeholders).To(BeTrue())
				Expect(app.SentryDSN).To(BeEmpty())
			})
		})

		When("optional variables are set", func() {
			BeforeEach(func() {
				setEnv(map[string]string{
					"SYNC_INTERVAL":     "30s",
					"SYNC_PLACEHOLDERS": "false",
					"MARKET_CHAIN":      "base",
				})
			})

			It("should use them", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(app.SyncInterval).To(Equal(30 * time.Second))
				Expect(app.Market.Placeholders).To(BeFalse())
				Expect(app.Market.Chain).To(Equal("base"))
			})
		})

		When("a required variable is missing", func() {
			BeforeEach(func() {
				Expect(os.Unsetenv("JWT_SECRET")).To(Succeed())
			})

			It("should name the variable", func() {
				Expect(err).To(MatchError("environment variable not found: JWT_SECRET"))
			})
		})

		When("a contract address is malformed", func() {
			BeforeEach(func() {
				setEnv(map[string]string{"TOKEN_TRADER_ADDRESS": "0x1234"})
			})

			It("should return an error", func() {
				Expect(err).To(MatchError(ContainSubstring("TOKEN_TRADER_ADDRESS")))
			})
		})

		When("the sync interval cannot be parsed", func() {
			BeforeEach(func() {
				setEnv(map[string]string{"SYNC_INTERVAL": "often"})
			})

			It("should return an error", func() {
				Expect(err).To(MatchError(ContainSubstring("SYNC_INTERVAL")))
			})
		})
	})

	Describe("NewTrader", func() {
		It("should require a private key", func() {
			setEnv(map[string]string{
				"ETH_NODE_URL":          "wss://node.example",
				"DB_CONNECTION_URL":     "postgres://localhost/moonpump",
				"TOKEN_FACTORY_ADDRESS": factory,
				"TOKEN_TRADER_ADDRESS":  trader,
				"WETH_ADDRESS":          weth,
			})

			_, err := config.NewTrader()
			Expect(err).To(MatchError("environment variable not found: PRIVATE_KEY"))

			setEnv(map[string]string{"PRIVATE_KEY": "0xabc"})
			cfg, err := config.NewTrader()
			Expect(err).NotTo(HaveOccurred())
			Expect(cfg.PinataAPIURL).To(Equal("https://api.pinata.cloud/pinning"))
			Expect(cfg.RedisURL).To(BeEmpty())
		})
	})

	Describe("NewLogin", func() {
		It("should require a private key and default the API URL", func() {
			_, err := config.NewLogin()
			Expect(err).To(MatchError("environment variable not found: PRIVATE_KEY"))

			setEnv(map[string]string{"PRIVATE_KEY": "0xabc"})
			cfg, err := config.NewLogin()
			Expect(err).NotTo(HaveOccurred())
			Expect(cfg.APIURL).To(Equal("http://localhost:8080"))

			setEnv(map[string]string{"API_URL": "https://api.moonpump.example"})
			cfg, err = config.NewLogin()
			Expect(err).NotTo(HaveOccurred())
			Expect(cfg.APIURL).To(Equal("https://api.moonpump.example"))
		})
	})

	Describe("LoadDotEnv", func() {
		It("should ignore a missing file", func() {
			Expect(config.LoadDotEnv(filepath.Join(GinkgoT().TempDir(), "missing.env"))).To(Succeed())
		})

		It("should load variables from the file", func() {
			path := filepath.Join(GinkgoT().TempDir(), "test.env")
			Expect(os.WriteFile(path, []byte("MARKET_CHAIN=arbitrum\n"), 0o600)).To(Succeed())

			Expect(config.LoadDotEnv(path)).To(Succeed())
			Expect(os.Getenv("MARKET_CHAIN")).To(Equal("arbitrum"))
		})
	})
})
