package service

import (
	"context"
	"net/url"

	"github.com/google/go-querystring/query"

	feedsDomain "github.com/gen-relay/genlayer-relay/internal/feeds/domain"
)

const simplePricePath = "/api/v3/simple/price"

// CoinGeckoClient talks to the CoinGecko public API.
type CoinGeckoClient struct {
	baseParams
	client *SimpleHTTPClient
}

// NewCoinGeckoClient returns a PriceClient. apiKey may be empty for the keyless tier.
func NewCoinGeckoClient(client *SimpleHTTPClient, apiKey string) *CoinGeckoClient {
	return &CoinGeckoClient{
		baseParams: baseParams{APIKey: apiKey},
		client:     client,
	}
}

// baseParams are included with every CoinGecko request.
type baseParams struct {
	APIKey string `url:"x_cg_demo_api_key,omitempty"`
}

// simplePriceParams for fetching prices
type simplePriceParams struct {
	baseParams
	IDs          string `url:"ids"`
	VsCurrencies string `url:"vs_currencies"`
	Precision    string `url:"precision,omitempty"`
}

// GenerateQueryString implements QueryStringBody.
func (p *simplePriceParams) GenerateQueryString() (url.Values, error) {
	return query.Values(p)
}

// FetchSimplePrice fetches prices from /api/v3/simple/price.
func (c *CoinGeckoClient) FetchSimplePrice(
	ctx context.Context,
	ids, vsCurrencies string,
) (feedsDomain.Prices, error) {
	req, err := c.client.NewRequest(ctx, simplePricePath, &simplePriceParams{
		baseParams:   c.baseParams,
		IDs:          ids,
		VsCurrencies: vsCurrencies,
		Precision:    "full",
	})
	if err != nil {
		return nil, err
	}

	var body feedsDomain.Prices
	if err := c.client.Do(req, &body); err != nil {
		return nil, err
	}

	return body, nil
}
