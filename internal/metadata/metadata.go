package metadata

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"path/filepath"
	"strings"

	"moonpump/internal/httpclient"

	"github.com/gabriel-vasile/mimetype"
	"go.uber.org/zap"
)

var ErrNotImage error = errors.New("file is not an image")
var ErrMissingJWT error = errors.New("metadata gateway JWT is not configured")

// TokenMetadata is the JSON document a token's URI points to.
type TokenMetadata struct {
	Name        string `json:"name"`
	Symbol      string `json:"symbol"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Website     string `json:"website"`
	Twitter     string `json:"twitter"`
	Telegram    string `json:"telegram"`
}

type pinResponse struct {
	IpfsHash  string `json:"IpfsHash"`
	PinSize   int64  `json:"PinSize"`
	Timestamp string `json:"Timestamp"`
}

// Client pins images and metadata documents to Pinata and reads them back
// through the public gateway.
type Client struct {
	logs       *zap.SugaredLogger
	http       *httpclient.Client
	jwt        string
	apiURL     string
	gatewayURL string
}

func NewClient(logger *zap.SugaredLogger, httpClient *httpclient.Client, jwt, apiURL, gatewayURL string) *Client {
	return &Client{
		logs:       logger,
		http:       httpClient,
		jwt:        jwt,
		apiURL:     strings.TrimRight(apiURL, "/"),
		gatewayURL: strings.TrimRight(gatewayURL, "/"),
	}
}

func (c *Client) UploadImage(ctx context.Context, filename string, data []byte) (string, error) {
	if c.jwt == "" {
		return "", ErrMissingJWT
	}

	mtype := mimetype.Detect(data)
	if !strings.HasPrefix(mtype.String(), "image/") {
		return "", fmt.Errorf("%s detected as %s: %w", filename, mtype.String(), ErrNotImage)
	}

	if filename == "" {
		filename = "image" + mtype.Extension()
	}

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename=%q`, filepath.Base(filename)))
	header.Set("Content-Type", mtype.String())
	part, err := writer.CreatePart(header)
	if err != nil {
		return "", fmt.Errorf("create multipart part: %w", err)
	}
	if _, err := part.Write(data); err != nil {
		return "", fmt.Errorf("write multipart part: %w", err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("close multipart writer: %w", err)
	}

	hash, err := c.pin(ctx, "/pinFileToIPFS", writer.FormDataContentType(), body.Bytes())
	if err != nil {
		return "", fmt.Errorf("pin image: %w", err)
	}

	c.logs.Infow("image pinned", "filename", filename, "mime", mtype.String(), "hash", hash)
	return c.gatewayLink(hash), nil
}

func (c *Client) UploadMetadata(ctx context.Context, meta TokenMetadata) (string, error) {
	if c.jwt == "" {
		return "", ErrMissingJWT
	}

	payload, err := json.Marshal(meta)
	if err != nil {
		return "", fmt.Errorf("marshal metadata: %w", err)
	}

	hash, err := c.pin(ctx, "/pinJSONToIPFS", "application/json", payload)
	if err != nil {
		return "", fmt.Errorf("pin metadata: %w", err)
	}

	c.logs.Infow("metadata pinned", "symbol", meta.Symbol, "hash", hash)
	return c.gatewayLink(hash), nil
}

// Fetch downloads the metadata document at uri. ipfs:// URIs are resolved through the gateway.
func (c *Client) Fetch(ctx context.Context, uri string) (*TokenMetadata, error) {
	if uri == "" {
		return nil, errors.New("empty token uri")
	}
	if hash, ok := strings.CutPrefix(uri, "ipfs://"); ok {
		uri = c.gatewayLink(hash)
	}

	var meta TokenMetadata
	if err := c.http.GetJSON(ctx, uri, &meta); err != nil {
		return nil, fmt.Errorf("fetch metadata %s: %w", uri, err)
	}
	return &meta, nil
}

func (c *Client) pin(ctx context.Context, path, contentType string, payload []byte) (string, error) {
	respBody, err := c.http.Do(ctx, func(ctx context.Context) (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL+path, bytes.NewReader(payload))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", contentType)
		req.Header.Set("Authorization", "Bearer "+c.jwt)
		return req, nil
	})
	if err != nil {
		return "", err
	}

	var resp pinResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return "", fmt.Errorf("decode pin response: %w", err)
	}
	if resp.IpfsHash == "" {
		return "", errors.New("pin response without hash")
	}
	return resp.IpfsHash, nil
}

func (c *Client) gatewayLink(hash string) string {
	return c.gatewayURL + "/ipfs/" + hash
}
