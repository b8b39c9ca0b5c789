// Package domain contains the core model of the I Ching engine: lines,
// hexagram patterns, trigrams, catalog entries and readings.
//
// The domain is transport- and source-agnostic: it does not depend on
// net/http, random number generators or the terminal. Infra adapters supply
// randomness and render the values defined here.
package domain
