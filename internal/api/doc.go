// Package api implements the HTTP handlers for the prompt generation
// service. Handlers are stateless per-request shells: they decode and
// validate input, delegate to the prompt service, and relay its result
// envelope verbatim into the JSON response. They never re-validate provider
// output.
package api
