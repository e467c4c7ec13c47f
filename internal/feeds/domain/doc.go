// Package domain defines the data relayed from third-party feeds: crypto and
// fiat prices, current weather and public randomness.
package domain
