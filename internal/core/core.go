package core

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"moonpump/internal/ethereum"
	"moonpump/internal/metadata"
	"moonpump/internal/repository"
	tokenIssuer "moonpump/pkg/jwt"

	"github.com/alitto/pond/v2"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"go.uber.org/zap"
)

const metadataWorkers = 8

var ErrTokenNotFound error = errors.New("token not found")
var ErrTokenExists error = errors.New("token already exists")
var ErrTransactionExists error = errors.New("transaction already recorded")
var ErrInvalidSignature error = errors.New("invalid signature")
var ErrLoginExpired error = errors.New("login message expired")
var ErrUnauthorized error = errors.New("unauthorized")
var ErrForbidden error = errors.New("address does not match session")

var TimeNow = time.Now

// MoonPump serves the token registry, trade history and dashboard figures.
type MoonPump struct {
	logs      *zap.SugaredLogger
	repo      Repository
	jwtIssuer JWTIssuer
	metadata  MetadataFetcher
	pool      pond.ResultPool[*metadata.TokenMetadata]
}

func NewMoonPump(logger *zap.SugaredLogger, repo Repository, jwt JWTIssuer, meta MetadataFetcher) *MoonPump {
	return &MoonPump{
		logs:      logger,
		repo:      repo,
		jwtIssuer: jwt,
		metadata:  meta,
		pool:      pond.NewResultPool[*metadata.TokenMetadata](metadataWorkers),
	}
}

// Close waits for in-flight metadata fetches.
func (m *MoonPump) Close() {
	m.pool.StopAndWait()
}

// Authenticate verifies a personal signature over the login message and issues a session token
// whose subject is the signing address.
func (m *MoonPump) Authenticate(ctx context.Context, msg AuthMessage) (string, error) {
	issued := time.Unix(msg.IssuedAt, 0)
	if skew := TimeNow().Sub(issued).Abs(); skew > LoginMaxSkew {
		return "", ErrLoginExpired
	}

	signature, err := hexutil.Decode(msg.Signature)
	if err != nil {
		return "", fmt.Errorf("decode signature: %v: %w", err, ErrInvalidSignature)
	}

	signer, err := ethereum.RecoverPersonalSigner([]byte(LoginMessage(msg.Address, msg.IssuedAt)), signature)
	if err != nil {
		return "", fmt.Errorf("recover signer: %v: %w", err, ErrInvalidSignature)
	}

	if signer != common.HexToAddress(msg.Address) {
		m.logs.Warnw("login signature does not match address", "address", msg.Address, "signer", signer.Hex())
		return "", ErrInvalidSignature
	}

	token := m.jwtIssuer.Generate(tokenIssuer.SessionInfo{
		Address:    signer.Hex(),
		Expiration: SessionDuration,
	})
	signed, err := m.jwtIssuer.Sign(token)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}

	m.logs.Infow("session issued", "address", strings.ToLower(signer.Hex()))
	return signed, nil
}

// CreateToken registers a token on behalf of its creator; the session must belong to the creator.
func (m *MoonPump) CreateToken(ctx context.Context, session string, token NewToken) (TokenRecord, error) {
	if err := m.authorize(session, token.Creator); err != nil {
		return TokenRecord{}, err
	}

	record := repository.Token{
		Address:   token.Address,
		Creator:   token.Creator,
		TokenURI:  token.TokenURI,
		TVL:       InitialTokenValue,
		MarketCap: InitialTokenValue,
		CreatedAt: TimeNow().UTC(),
	}

	if err := m.repo.SaveToken(ctx, record); err != nil {
		if errors.Is(err, repository.ErrDuplicateToken) {
			return TokenRecord{}, ErrTokenExists
		}
		return TokenRecord{}, fmt.Errorf("save token: %w", err)
	}

	m.logs.Infow("token created", "token", token.Address, "creator", token.Creator)
	return toTokenRecord(record), nil
}

// ListTokens returns all tokens newest first, each with its off-chain metadata. A token whose
// metadata cannot be fetched is returned with nil metadata.
func (m *MoonPump) ListTokens(ctx context.Context) ([]TokenRecord, error) {
	tokens, err := m.repo.ListTokens(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tokens: %w", err)
	}

	group := m.pool.NewGroup()
	for _, token := range tokens {
		uri := token.TokenURI
		group.Submit(func() *metadata.TokenMetadata {
			return m.fetchMetadata(ctx, uri)
		})
	}

	metas, err := group.Wait()
	if err != nil {
		return nil, fmt.Errorf("fetch token metadata: %w", err)
	}

	records := make([]TokenRecord, len(tokens))
	for i, token := range tokens {
		records[i] = toTokenRecord(token)
		records[i].Metadata = metas[i]
	}

	m.logs.Infow("tokens listed", "count", len(records))
	return records, nil
}

func (m *MoonPump) GetToken(ctx context.Context, address string) (TokenRecord, error) {
	token, err := m.repo.GetToken(ctx, address)
	if err != nil {
		if errors.Is(err, repository.ErrTokenNotFound) {
			return TokenRecord{}, ErrTokenNotFound
		}
		return TokenRecord{}, fmt.Errorf("get token: %w", err)
	}

	record := toTokenRecord(token)
	record.Metadata = m.fetchMetadata(ctx, token.TokenURI)
	return record, nil
}

// SaveTransaction records a trade reported by a client; the session must belong to the trader.
func (m *MoonPump) SaveTransaction(ctx context.Context, session string, tx NewTransaction) (TransactionRecord, error) {
	if err := m.authorize(session, tx.UserAddress); err != nil {
		return TransactionRecord{}, err
	}

	record := repository.Transaction{
		TokenAddress: tx.TokenAddress,
		UserAddress:  tx.UserAddress,
		Type:         repository.TransactionType(tx.Type),
		Amount:       tx.Amount,
		ValueUSD:     tx.ValueUSD,
		TxHash:       tx.TxHash,
		CreatedAt:    TimeNow().UTC(),
	}

	if err := m.repo.SaveTransaction(ctx, record); err != nil {
		if errors.Is(err, repository.ErrDuplicateTransaction) {
			return TransactionRecord{}, ErrTransactionExists
		}
		return TransactionRecord{}, fmt.Errorf("save transaction: %w", err)
	}

	m.logs.Infow("transaction saved", "tx", tx.TxHash, "type", tx.Type, "token", tx.TokenAddress)
	return toTransactionRecord(record), nil
}

// ListTransactions returns one page of a token's trades. page starts at 1.
func (m *MoonPump) ListTransactions(ctx context.Context, tokenAddress string, page int) (TransactionPage, error) {
	if page < 1 {
		page = 1
	}

	transactions, total, err := m.repo.ListTransactions(ctx, tokenAddress, page, TransactionsPageSize)
	if err != nil {
		return TransactionPage{}, fmt.Errorf("list transactions: %w", err)
	}

	records := make([]TransactionRecord, len(transactions))
	for i, tx := range transactions {
		records[i] = toTransactionRecord(tx)
	}

	return TransactionPage{
		Transactions: records,
		Total:        total,
		Page:         page,
		TotalPages:   (total + TransactionsPageSize - 1) / TransactionsPageSize,
	}, nil
}

// Stats returns the dashboard aggregates; volume covers the last 24 hours.
func (m *MoonPump) Stats(ctx context.Context) (Stats, error) {
	stats, err := m.repo.Stats(ctx, TimeNow().Add(-24*time.Hour))
	if err != nil {
		return Stats{}, fmt.Errorf("get stats: %w", err)
	}

	return Stats{
		TotalMarketCap:  stats.TotalMarketCap,
		Tokens:          stats.Tokens,
		TVL:             stats.TVL,
		Volume24h:       stats.Volume24h,
		CreatorsRewards: stats.CreatorsRewards,
	}, nil
}

func (m *MoonPump) authorize(session, address string) error {
	if session == "" {
		return ErrUnauthorized
	}

	subject, err := m.jwtIssuer.Subject(session)
	if err != nil {
		return fmt.Errorf("validate jwt token: %v: %w", err, ErrUnauthorized)
	}

	if !strings.EqualFold(subject, address) {
		return ErrForbidden
	}
	return nil
}

func (m *MoonPump) fetchMetadata(ctx context.Context, uri string) *metadata.TokenMetadata {
	if uri == "" {
		return nil
	}
	meta, err := m.metadata.Fetch(ctx, uri)
	if err != nil {
		m.logs.Warnw("failed to fetch token metadata", "uri", uri, "error", err)
		return nil
	}
	return meta
}

func toTokenRecord(token repository.Token) TokenRecord {
	return TokenRecord{
		Address:   strings.ToLower(token.Address),
		Creator:   strings.ToLower(token.Creator),
		TokenURI:  token.TokenURI,
		TVL:       token.TVL,
		MarketCap: token.MarketCap,
		CreatedAt: token.CreatedAt,
	}
}

func toTransactionRecord(tx repository.Transaction) TransactionRecord {
	return TransactionRecord{
		TokenAddress: strings.ToLower(tx.TokenAddress),
		UserAddress:  strings.ToLower(tx.UserAddress),
		Type:         string(tx.Type),
		Amount:       tx.Amount,
		ValueUSD:     tx.ValueUSD,
		TxHash:       tx.TxHash,
		CreatedAt:    tx.CreatedAt,
	}
}
