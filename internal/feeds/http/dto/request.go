// Package dto provides data transfer objects for the feed endpoints.
package dto

import (
	validation "github.com/jellydator/validation"

	customValidation "github.com/gen-relay/genlayer-relay/internal/validation"
)

// PricesQuery contains the query parameters of GET /prices.
type PricesQuery struct {
	IDs string `form:"ids"` // e.g. "bitcoin,ethereum"
	Vs  string `form:"vs"`  // e.g. "usd,eur"
}

// Validate checks if the prices query is valid. Empty values fall back to defaults.
func (q *PricesQuery) Validate() error {
	return validation.ValidateStruct(q,
		validation.Field(&q.IDs,
			validation.Length(0, 512),
			customValidation.IdentifierList,
		),
		validation.Field(&q.Vs,
			validation.Length(0, 128),
			customValidation.IdentifierList,
		),
	)
}

// WeatherQuery contains the query parameters of GET /weather.
type WeatherQuery struct {
	City string `form:"city"`
}

// Validate checks the city format. A missing city is reported by the use case.
func (q *WeatherQuery) Validate() error {
	return validation.ValidateStruct(q,
		validation.Field(&q.City,
			validation.Length(0, 100),
			customValidation.City,
		),
	)
}
