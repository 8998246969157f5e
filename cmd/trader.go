package cmd

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"math/big"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"moonpump/internal/cache"
	"moonpump/internal/config"
	"moonpump/internal/core"
	"moonpump/internal/db"
	"moonpump/internal/ethereum"
	"moonpump/internal/httpclient"
	"moonpump/internal/market"
	"moonpump/internal/metadata"
	"moonpump/internal/repository"
	"moonpump/internal/settlement"
	"moonpump/internal/trade"
	"moonpump/pkg/log"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// trader bundles what every trading command needs.
type trader struct {
	logs     *zap.SugaredLogger
	config   config.Trader
	eth      *ethereum.EthService
	repo     *repository.Repository
	wallet   *ethereum.KeyWallet
	prices   *market.PriceFeed
	recorder *settlement.Recorder
	closers  []func()
}

func newTrader(autoApprove bool) (*trader, error) {
	logger := log.NewZapLogger("moonpump-trader", zapcore.InfoLevel)

	config, err := config.NewTrader()
	if err != nil {
		return nil, err
	}

	t := &trader{logs: logger, config: config}

	client, err := ethclient.Dial(config.NodeURL)
	if err != nil {
		return nil, fmt.Errorf("dial eth node: %w", err)
	}
	t.closers = append(t.closers, client.Close)

	t.eth = ethereum.NewEthService(logger, client, ethereum.Contracts{
		Factory: config.Contracts.Factory,
		Trader:  config.Contracts.Trader,
	})

	var confirmer ethereum.Confirmer
	if !autoApprove {
		confirmer = newPromptConfirmer(os.Stdin, os.Stderr)
	}
	t.wallet, err = ethereum.NewKeyWallet(config.PrivateKey, confirmer)
	if err != nil {
		t.close()
		return nil, err
	}

	dbConn, err := db.NewPostgresDB(config.DBConnectionURL)
	if err != nil {
		t.close()
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	t.repo = repository.NewRepository(dbConn)
	if err := t.repo.MigrateTables(); err != nil {
		t.close()
		return nil, err
	}

	// The price cache is optional for trader commands.
	var priceCache market.PriceCache
	if config.RedisURL != "" {
		redisClient, err := cache.NewRedisClient(logger, config.RedisURL)
		if err != nil {
			logger.Warnw("price cache disabled", "error", err)
		} else {
			priceCache = redisClient
			t.closers = append(t.closers, func() { _ = redisClient.Close() })
		}
	}

	httpClient := httpclient.New(logger, httpTimeout, httpclient.DefaultRetryPolicy())
	dexScreener := market.NewDexScreener(logger, httpClient, config.Market.URL, config.Market.Chain)
	t.prices = market.NewPriceFeed(logger, dexScreener, priceCache, config.Contracts.WETH)
	t.recorder = settlement.NewRecorder(logger, t.repo, t.prices)

	return t, nil
}

func (t *trader) close() {
	for i := len(t.closers) - 1; i >= 0; i-- {
		t.closers[i]()
	}
	_ = t.logs.Sync()
}

func (t *trader) executor() *trade.Executor {
	probe := trade.NewTrialProbe(t.eth)
	balances := trade.NewBalanceTracker(t.logs, t.eth, probe, t.config.Contracts.WETH)
	permits := trade.NewPermitSigner(t.logs, t.eth)

	return trade.NewExecutor(t.logs, balances, permits, t.eth, t.recorder, t.config.Contracts.Trader).
		WithObserver(trade.ObserverFunc(func(attempt trade.Attempt) {
			t.logs.Infow("trade state changed",
				"side", attempt.Side,
				"token", attempt.Token.Hex(),
				"state", attempt.State,
				"tx", attempt.TxHash.Hex())
		}))
}

func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
}

func parseAddress(name, value string) (common.Address, error) {
	if !common.IsHexAddress(value) {
		return common.Address{}, fmt.Errorf("%s: invalid address %q", name, value)
	}
	return common.HexToAddress(value), nil
}

func quote(args []string) error {
	fs := flag.NewFlagSet("quote", flag.ContinueOnError)
	tokenIn := fs.String("in", "", "input token address (defaults to WETH)")
	tokenOut := fs.String("out", "", "output token address (defaults to WETH)")
	amount := fs.String("amount", "", "input amount in whole units")
	watch := fs.Bool("watch", false, "read amounts from stdin and quote the latest one after a pause")
	if err := fs.Parse(args); err != nil {
		return err
	}

	t, err := newTrader(true)
	if err != nil {
		return err
	}
	defer t.close()

	in, out := t.config.Contracts.WETH, t.config.Contracts.WETH
	if *tokenIn != "" {
		if in, err = parseAddress("in", *tokenIn); err != nil {
			return err
		}
	}
	if *tokenOut != "" {
		if out, err = parseAddress("out", *tokenOut); err != nil {
			return err
		}
	}

	ctx, cancel := signalContext()
	defer cancel()

	gateway := trade.NewQuoteGateway(t.logs, t.eth)
	if !*watch {
		amountOut, err := gateway.GetQuote(ctx, in, out, *amount)
		if err != nil {
			return err
		}
		fmt.Println(amountOut.String())
		return nil
	}

	return watchQuotes(ctx, trade.NewDebouncer(gateway, trade.DefaultDebounce), in, out, os.Stdin)
}

// watchQuotes quotes amounts typed on r, one per line, printing only the result of the last
// amount typed within the debounce window.
func watchQuotes(ctx context.Context, debouncer *trade.Debouncer, in, out common.Address, r io.Reader) error {
	defer debouncer.Stop()

	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			lines <- strings.TrimSpace(scanner.Text())
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case line, ok := <-lines:
			if !ok {
				return nil
			}
			if line != "" {
				debouncer.Request(ctx, in, out, line)
			}
		case result := <-debouncer.Results():
			if result.Err != nil {
				fmt.Printf("%s -> 0 (%s)\n", result.AmountIn, result.Err)
				continue
			}
			fmt.Printf("%s -> %s\n", result.AmountIn, result.AmountOut)
		}
	}
}

func tradeCommand(side string, args []string) error {
	fs := flag.NewFlagSet(side, flag.ContinueOnError)
	token := fs.String("token", "", "token address")
	amount := fs.String("amount", "", "amount to spend, in ETH for buys and tokens for sells")
	slippage := fs.Int64("slippage", trade.DefaultSlippageBps, "slippage tolerance in basis points")
	yes := fs.Bool("yes", false, "approve every wallet prompt")
	if err := fs.Parse(args); err != nil {
		return err
	}

	tokenAddress, err := parseAddress("token", *token)
	if err != nil {
		return err
	}

	t, err := newTrader(*yes)
	if err != nil {
		return err
	}
	defer t.close()

	ctx, cancel := signalContext()
	defer cancel()

	req := trade.TradeRequest{
		Side:        trade.Side(side),
		Token:       tokenAddress,
		Amount:      *amount,
		SlippageBps: big.NewInt(*slippage),
	}
	if req.Side == trade.Sell {
		if symbol, err := t.eth.TokenSymbol(ctx, tokenAddress); err == nil {
			req.Symbol = symbol
		}
	}

	result, err := t.executor().Execute(ctx, t.wallet, req)
	if err != nil {
		return err
	}

	fmt.Printf("%s confirmed: %s\n", side, result.TxHash.Hex())
	if result.SettlementErr != nil {
		fmt.Printf("warning: trade not recorded: %s\n", result.SettlementErr)
		return nil
	}
	fmt.Printf("recorded %s worth %s USD\n", result.Settlement.Type, result.Settlement.ValueUSD.StringFixed(2))
	return nil
}

func collectFees(args []string) error {
	fs := flag.NewFlagSet("collect-fees", flag.ContinueOnError)
	token := fs.String("token", "", "token address")
	yes := fs.Bool("yes", false, "approve every wallet prompt")
	if err := fs.Parse(args); err != nil {
		return err
	}

	t, err := newTrader(*yes)
	if err != nil {
		return err
	}
	defer t.close()

	ctx, cancel := signalContext()
	defer cancel()

	result, err := trade.NewFeeCollector(t.logs, t.eth, t.recorder).Collect(ctx, t.wallet, *token)
	if err != nil {
		return err
	}

	fmt.Printf("fees collected: %s ETH, %s tokens (tx %s)\n",
		trade.FormatUnits(result.EthFees, trade.NativeDecimals),
		trade.FormatUnits(result.TokenFees, trade.NativeDecimals),
		result.TxHash.Hex())
	fmt.Printf("recorded reward worth %s USD\n", result.Settlement.ValueUSD.StringFixed(2))
	return nil
}

func launch(args []string) error {
	fs := flag.NewFlagSet("launch", flag.ContinueOnError)
	name := fs.String("name", "", "token name")
	symbol := fs.String("symbol", "", "token symbol")
	description := fs.String("description", "", "token description")
	image := fs.String("image", "", "path to the token image")
	website := fs.String("website", "", "project website")
	twitter := fs.String("twitter", "", "twitter handle or url")
	telegram := fs.String("telegram", "", "telegram url")
	initialBuy := fs.String("initial-buy", "", "ETH spent buying the new token at launch")
	yes := fs.Bool("yes", false, "approve every wallet prompt")
	if err := fs.Parse(args); err != nil {
		return err
	}

	req := trade.LaunchRequest{
		Name:        *name,
		Symbol:      *symbol,
		Description: *description,
		Website:     *website,
		Twitter:     *twitter,
		Telegram:    *telegram,
		InitialBuy:  *initialBuy,
	}
	if *image != "" {
		data, err := os.ReadFile(*image)
		if err != nil {
			return fmt.Errorf("read image: %w", err)
		}
		req.Image = data
		req.ImageName = filepath.Base(*image)
	}

	t, err := newTrader(*yes)
	if err != nil {
		return err
	}
	defer t.close()

	if t.config.PinataJWT == "" {
		return metadata.ErrMissingJWT
	}

	ctx, cancel := signalContext()
	defer cancel()

	httpClient := httpclient.New(t.logs, httpTimeout, httpclient.DefaultRetryPolicy())
	uploader := metadata.NewClient(t.logs, httpClient, t.config.PinataJWT, t.config.PinataAPIURL, t.config.GatewayURL)

	created, err := trade.NewLauncher(t.logs, uploader, t.eth).Launch(ctx, t.wallet, req)
	if err != nil {
		return err
	}
	fmt.Printf("token %s created, pool %s (tx %s)\n", created.Token.Hex(), created.Pool.Hex(), created.TxHash.Hex())

	// The watcher of a running server registers the token as well; whichever is first wins.
	tokenURI, err := t.eth.TokenURIFromTx(ctx, created.TxHash)
	if err != nil {
		t.logs.Warnw("token not registered", "token", created.Token.Hex(), "error", err)
		return nil
	}
	err = t.repo.SaveToken(ctx, repository.Token{
		Address:   created.Token.Hex(),
		Creator:   created.Creator.Hex(),
		TokenURI:  tokenURI,
		TVL:       core.InitialTokenValue,
		MarketCap: core.InitialTokenValue,
		CreatedAt: core.TimeNow().UTC(),
	})
	if err != nil && !errors.Is(err, repository.ErrDuplicateToken) {
		t.logs.Warnw("token not registered", "token", created.Token.Hex(), "error", err)
	}
	return nil
}
