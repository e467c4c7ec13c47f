package dto

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	feedsDomain "github.com/gen-relay/genlayer-relay/internal/feeds/domain"
)

func TestMapPricesToResponse(t *testing.T) {
	tests := []struct {
		name   string
		prices feedsDomain.Prices
		want   string
	}{
		{
			name:   "nil prices",
			prices: nil,
			want:   `{"status":"ok","data":{}}`,
		},
		{
			name: "decimal strings",
			prices: feedsDomain.Prices{
				"bitcoin": {"usd": decimal.RequireFromString("64123.45")},
			},
			want: `{"status":"ok","data":{"bitcoin":{"usd":"64123.45"}}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body, err := json.Marshal(MapPricesToResponse(tt.prices))
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, string(body))
		})
	}
}

func TestMapPriceOptionsToResponse(t *testing.T) {
	tests := []struct {
		name    string
		options *feedsDomain.PriceOptions
		want    string
	}{
		{
			name:    "nil slices",
			options: &feedsDomain.PriceOptions{},
			want:    `{"status":"ok","crypto":[],"fx":[]}`,
		},
		{
			name:    "populated",
			options: &feedsDomain.PriceOptions{Crypto: []string{"bitcoin"}, FX: []string{"usd", "eur"}},
			want:    `{"status":"ok","crypto":["bitcoin"],"fx":["usd","eur"]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body, err := json.Marshal(MapPriceOptionsToResponse(tt.options))
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, string(body))
		})
	}
}

func TestMapWeatherToResponse(t *testing.T) {
	weather := &feedsDomain.Weather{Name: "London", Timestamp: 1700000000}

	response := MapWeatherToResponse(weather)

	assert.Equal(t, "ok", response.Status)
	assert.Same(t, weather, response.Data)

	body, err := json.Marshal(response)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(body, &decoded))
	data := decoded["data"].(map[string]any)
	assert.Equal(t, "London", data["name"])
	assert.EqualValues(t, 1700000000, data["dt"])
}

func TestMapRandomnessToResponse(t *testing.T) {
	randomness := &feedsDomain.Randomness{
		Round:      4242,
		Randomness: "cafebabe",
		Signature:  "deadbeef",
	}

	body, err := json.Marshal(MapRandomnessToResponse(randomness))
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":"ok","random":"cafebabe","round":4242}`, string(body))
}
