// Package anthropic provides an implementation of the generation interface
// using Anthropic's Messages API.
package anthropic
