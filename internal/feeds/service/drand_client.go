package service

import (
	"context"
	"fmt"

	feedsDomain "github.com/gen-relay/genlayer-relay/internal/feeds/domain"
)

const latestRandomnessPath = "/public/latest"

// DrandClient talks to a drand HTTP relay.
type DrandClient struct {
	client *SimpleHTTPClient
}

// NewDrandClient returns a RandomnessClient.
func NewDrandClient(client *SimpleHTTPClient) *DrandClient {
	return &DrandClient{client: client}
}

type drandBeacon struct {
	Round      uint64 `json:"round"`
	Randomness string `json:"randomness"`
	Signature  string `json:"signature"`
}

// FetchLatest fetches the latest beacon from /public/latest.
func (c *DrandClient) FetchLatest(ctx context.Context) (*feedsDomain.Randomness, error) {
	req, err := c.client.NewRequest(ctx, latestRandomnessPath, nil)
	if err != nil {
		return nil, err
	}

	var beacon drandBeacon
	if err := c.client.Do(req, &beacon); err != nil {
		return nil, err
	}
	if beacon.Randomness == "" {
		return nil, fmt.Errorf("%w: empty randomness in round %d", feedsDomain.ErrUpstreamFailed, beacon.Round)
	}

	return &feedsDomain.Randomness{
		Round:      beacon.Round,
		Randomness: beacon.Randomness,
		Signature:  beacon.Signature,
	}, nil
}
