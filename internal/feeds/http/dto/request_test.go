package dto

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPricesQuery_Validate(t *testing.T) {
	tests := []struct {
		name     string
		query    PricesQuery
		wantErr  bool
		errField string
	}{
		{name: "empty uses defaults", query: PricesQuery{}},
		{name: "single ids and vs", query: PricesQuery{IDs: "bitcoin", Vs: "usd"}},
		{name: "lists", query: PricesQuery{IDs: "bitcoin,ethereum,wrapped-bitcoin", Vs: "usd,eur"}},
		{name: "uppercase id", query: PricesQuery{IDs: "Bitcoin"}, wantErr: true, errField: "ids"},
		{name: "trailing comma", query: PricesQuery{IDs: "bitcoin,"}, wantErr: true, errField: "ids"},
		{name: "space in vs", query: PricesQuery{Vs: "usd, eur"}, wantErr: true, errField: "vs"},
		{name: "ids too long", query: PricesQuery{IDs: strings.Repeat("a", 513)}, wantErr: true, errField: "ids"},
		{name: "vs too long", query: PricesQuery{Vs: strings.Repeat("a", 129)}, wantErr: true, errField: "vs"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.query.Validate()
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			assert.Error(t, err)
			assert.Contains(t, strings.ToLower(err.Error()), tt.errField)
		})
	}
}

func TestWeatherQuery_Validate(t *testing.T) {
	tests := []struct {
		name    string
		city    string
		wantErr bool
	}{
		{name: "empty left to use case", city: ""},
		{name: "plain city", city: "London"},
		{name: "city with country", city: "Paris, FR"},
		{name: "accented city", city: "São Paulo"},
		{name: "digits", city: "London1", wantErr: true},
		{name: "query injection", city: "London&appid=x", wantErr: true},
		{name: "too long", city: strings.Repeat("a", 101), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query := WeatherQuery{City: tt.city}
			err := query.Validate()
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			assert.Error(t, err)
			assert.Contains(t, strings.ToLower(err.Error()), "city")
		})
	}
}
