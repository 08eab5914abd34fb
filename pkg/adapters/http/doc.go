// Package http exposes the toolkit over a REST API.
//
// NewHandler assembles a chi router covering dates, geography lookups,
// fuzzy search and numeral transliteration, plus the operational surface
// (health, info, metrics, OpenAPI document and Swagger UI). Search results
// can be cached through a ports.Cache.
//
// The handler is transport-only; listener lifecycle and graceful shutdown
// belong to the caller.
package http
