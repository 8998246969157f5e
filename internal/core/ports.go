package core

import (
	"context"
	"time"

	"moonpump/internal/ethereum"
	"moonpump/internal/metadata"
	"moonpump/internal/repository"
	tokenIssuer "moonpump/pkg/jwt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/golang-jwt/jwt"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Repository . Repository
type Repository interface {
	SaveToken(ctx context.Context, token repository.Token) error
	GetToken(ctx context.Context, address string) (repository.Token, error)
	ListTokens(ctx context.Context) ([]repository.Token, error)
	SaveTransaction(ctx context.Context, tx repository.Transaction) error
	ListTransactions(ctx context.Context, tokenAddress string, page, pageSize int) ([]repository.Transaction, int64, error)
	Stats(ctx context.Context, since time.Time) (repository.Stats, error)
}

//counterfeiter:generate -o fake -fake-name JWTIssuer . JWTIssuer
type JWTIssuer interface {
	Generate(data tokenIssuer.SessionInfo) *jwt.Token
	Sign(token *jwt.Token) (string, error)
	Subject(token string) (string, error)
}

//counterfeiter:generate -o fake -fake-name MetadataFetcher . MetadataFetcher
type MetadataFetcher interface {
	Fetch(ctx context.Context, uri string) (*metadata.TokenMetadata, error)
}

//counterfeiter:generate -o fake -fake-name TokenEvents . TokenEvents
type TokenEvents interface {
	WatchTokenCreated(ctx context.Context, sink chan<- ethereum.TokenCreated) error
	TokenURIFromTx(ctx context.Context, hash common.Hash) (string, error)
}

//counterfeiter:generate -o fake -fake-name TokenSaver . TokenSaver
type TokenSaver interface {
	SaveToken(ctx context.Context, token repository.Token) error
}
