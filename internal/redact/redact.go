// Package redact provides utilities for redacting provider credentials from
// strings before they are logged. Provider faults can echo request details
// back in their error messages, so everything that reaches a log record goes
// through here first.
package redact

import "regexp"

// RedactedKeyPlaceholder replaces anything that looks like an API key.
const RedactedKeyPlaceholder = "[REDACTED_KEY]"

// Precompiled credential patterns.
var (
	// Anthropic-style keys (sk-ant-...) and other sk- prefixed secrets
	providerKeyRegex = regexp.MustCompile(`sk-[A-Za-z0-9_-]{8,}`)

	// Key/token assignments, e.g. "api_key=...", "x-api-key: ..."
	apiKeyRegex = regexp.MustCompile(
		`(?i)(api[_-]?key|token|secret|authorization)(['"\s:=]+)[A-Za-z0-9_\-.~+/]{8,}`,
	)

	// Bearer tokens in header dumps
	bearerRegex = regexp.MustCompile(`(?i)bearer\s+[A-Za-z0-9_\-.~+/]{8,}`)
)

// String redacts credential material from the input string.
func String(input string) string {
	if input == "" {
		return input
	}

	result := providerKeyRegex.ReplaceAllString(input, RedactedKeyPlaceholder)
	result = apiKeyRegex.ReplaceAllString(result, "${1}${2}"+RedactedKeyPlaceholder)
	result = bearerRegex.ReplaceAllString(result, RedactedKeyPlaceholder)
	return result
}

// Error redacts credential material from an error's Error() output.
func Error(err error) string {
	if err == nil {
		return ""
	}
	return String(err.Error())
}
