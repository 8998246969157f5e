package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"moonpump/internal/config"
	"moonpump/internal/core"
	"moonpump/internal/ethereum"
	"moonpump/internal/http/payload"
	"moonpump/internal/httpclient"
	"moonpump/pkg/log"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"go.uber.org/zap/zapcore"
)

var errEmptySession error = errors.New("API returned an empty session token")

type personalSigner interface {
	Address() common.Address
	SignPersonal(ctx context.Context, message []byte) ([]byte, error)
}

// auth signs the login message with the configured key and prints the
// session token to pass as AUTH_TOKEN.
func auth(args []string) error {
	fs := flag.NewFlagSet("auth", flag.ContinueOnError)
	apiURL := fs.String("api", "", "API base url (defaults to API_URL)")
	yes := fs.Bool("yes", false, "approve the signature prompt")
	if err := fs.Parse(args); err != nil {
		return err
	}

	config, err := config.NewLogin()
	if err != nil {
		return err
	}
	if *apiURL != "" {
		config.APIURL = *apiURL
	}

	var confirmer ethereum.Confirmer
	if !*yes {
		confirmer = newPromptConfirmer(os.Stdin, os.Stderr)
	}
	wallet, err := ethereum.NewKeyWallet(config.PrivateKey, confirmer)
	if err != nil {
		return err
	}

	logger := log.NewZapLogger("moonpump-auth", zapcore.WarnLevel)
	defer func() { _ = logger.Sync() }()

	ctx, cancel := signalContext()
	defer cancel()

	httpClient := httpclient.New(logger, httpTimeout, httpclient.DefaultRetryPolicy())
	token, err := requestSession(ctx, httpClient, config.APIURL, wallet, time.Now())
	if err != nil {
		return err
	}

	fmt.Println(token)
	return nil
}

func requestSession(ctx context.Context, client *httpclient.Client, apiURL string, signer personalSigner, now time.Time) (string, error) {
	address := signer.Address().Hex()
	issuedAt := now.Unix()

	sig, err := signer.SignPersonal(ctx, []byte(core.LoginMessage(address, issuedAt)))
	if err != nil {
		return "", fmt.Errorf("sign login message: %w", err)
	}

	body, err := json.Marshal(payload.AuthRequest{
		Address:   address,
		IssuedAt:  issuedAt,
		Signature: hexutil.Encode(sig),
	})
	if err != nil {
		return "", fmt.Errorf("encode login request: %w", err)
	}

	url := strings.TrimSuffix(apiURL, "/") + "/api/auth"
	raw, err := client.Do(ctx, func(ctx context.Context) (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", "application/json")
		return req, nil
	})
	if err != nil {
		return "", fmt.Errorf("log in: %w", err)
	}

	var session struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(raw, &session); err != nil {
		return "", fmt.Errorf("decode login response: %w", err)
	}
	if session.Token == "" {
		return "", errEmptySession
	}
	return session.Token, nil
}
