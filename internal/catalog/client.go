package catalog

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/comicgate/comicgate/internal/config"
	"github.com/comicgate/comicgate/internal/logger"
	"github.com/comicgate/comicgate/models"
	"github.com/go-resty/resty/v2"
)

// Client issues signed read-only queries to the upstream content catalog.
//
// Every call computes a fresh timestamp and signature, so concurrent
// searches never share signing state. Calls are bounded by the configured
// request timeout; transport-level failures may be retried a bounded number
// of times, HTTP error statuses never are.
type Client struct {
	client *resty.Client
	signer *Signer
	logger *logger.Logger
}

// NewClient constructs a catalog Client from the given configuration.
func NewClient(cfg config.Catalog, log *logger.Logger) *Client {
	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.RequestTimeout)

	if cfg.RetryCount > 0 {
		cli.SetRetryCount(cfg.RetryCount).
			AddRetryCondition(func(resp *resty.Response, err error) bool {
				// retry transport failures only, never an HTTP status
				return err != nil
			})
	}

	return &Client{
		client: cli,
		signer: NewSigner(cfg.PublicKey, cfg.PrivateKey),
		logger: log,
	}
}

// FetchCharacters queries the catalog for characters whose name starts with
// namePrefix and returns the raw result entities untouched.
//
// A nil error with an empty slice means the upstream answered successfully
// with zero matches; [ErrUpstream] means the call itself failed.
func (c *Client) FetchCharacters(ctx context.Context, namePrefix string) ([]models.RawEntity, error) {
	return c.fetch(ctx, "/characters", "nameStartsWith", namePrefix)
}

// FetchComics queries the catalog for comics whose title starts with
// titlePrefix. Same contract as [Client.FetchCharacters].
func (c *Client) FetchComics(ctx context.Context, titlePrefix string) ([]models.RawEntity, error) {
	return c.fetch(ctx, "/comics", "titleStartsWith", titlePrefix)
}

// fetch performs one signed GET against the given catalog path. The search
// term goes through resty's query-param encoding, which percent-encodes it
// while preserving its original case.
func (c *Client) fetch(ctx context.Context, path, filterParam, term string) ([]models.RawEntity, error) {
	log := logger.FromContext(ctx)

	ts, hash := c.signer.AuthParams()

	var payload models.CatalogPayload
	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParam(filterParam, term).
		SetQueryParam("ts", ts).
		SetQueryParam("apikey", c.signer.PublicKey()).
		SetQueryParam("hash", hash).
		SetResult(&payload).
		Get(path)
	if err != nil {
		log.Err(err).Str("path", path).Msg("catalog request failed")
		return nil, fmt.Errorf("%w: %w", ErrUpstream, err)
	}

	if resp.StatusCode() != http.StatusOK {
		log.Error().Str("path", path).Int("status", resp.StatusCode()).Msg("catalog returned non-success status")
		return nil, fmt.Errorf("%w: status %d", ErrUpstream, resp.StatusCode())
	}

	return payload.Data.Results, nil
}
