// Package main implements the promptgen command-line interface for
// generating prompts from the terminal, either from flags or through an
// interactive loop.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/phrazzld/promptgen-api/internal/config"
	"github.com/phrazzld/promptgen-api/internal/domain"
	"github.com/phrazzld/promptgen-api/internal/generation"
	"github.com/phrazzld/promptgen-api/internal/platform/anthropic"
	"github.com/phrazzld/promptgen-api/internal/platform/gemini"
	"github.com/phrazzld/promptgen-api/internal/service"
	"github.com/phrazzld/promptgen-api/internal/version"
)

// cliOptions holds the parsed command-line flags.
type cliOptions struct {
	input        string
	promptType   string
	context      string
	instructions string
	verbose      bool
	showVersion  bool
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run is the testable entry point. It returns the process exit code:
// 0 on success, 1 on a missing credential or generation failure.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	// Load a local .env file when present; real environment variables win.
	_ = godotenv.Load()

	opts, err := parseFlags(args, stderr)
	if err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 1
	}

	if opts.showVersion {
		fmt.Fprintf(stdout, "promptgen %s\n", version.Version)
		return 0
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "Error: failed to load configuration: %v\n", err)
		return 1
	}

	// The CLI logs to stderr so generated prompts on stdout stay clean.
	logLevel := slog.LevelError
	if opts.verbose {
		logLevel = slog.LevelInfo
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: logLevel}))

	generator, err := buildGenerator(context.Background(), cfg.LLM, logger)
	if err != nil {
		fmt.Fprintf(stderr, "Error initializing generator: %v\n", err)
		return 1
	}

	promptService, err := service.NewPromptService(generator, cfg.LLM, logger)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	if opts.input != "" {
		return singlePromptMode(promptService, opts, stdout, stderr)
	}

	return interactiveMode(promptService, stdin, stdout, stderr)
}

// parseFlags parses the command-line arguments into cliOptions.
func parseFlags(args []string, stderr io.Writer) (*cliOptions, error) {
	opts := &cliOptions{}

	fs := flag.NewFlagSet("promptgen", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.input, "i", "", "Input text for prompt generation")
	fs.StringVar(&opts.input, "input", "", "Input text for prompt generation")
	fs.StringVar(&opts.promptType, "t", "general", "Type of prompt to generate (general, creative, technical, image)")
	fs.StringVar(&opts.promptType, "type", "general", "Type of prompt to generate (general, creative, technical, image)")
	fs.StringVar(&opts.context, "c", "", "Additional context for the prompt")
	fs.StringVar(&opts.context, "context", "", "Additional context for the prompt")
	fs.StringVar(&opts.instructions, "instructions", "", "Custom instructions for prompt generation")
	fs.BoolVar(&opts.verbose, "v", false, "Show additional metadata")
	fs.BoolVar(&opts.verbose, "verbose", false, "Show additional metadata")
	fs.BoolVar(&opts.showVersion, "version", false, "Print version and exit")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: promptgen [flags]\n\n")
		fmt.Fprintf(stderr, "Without -i/--input the CLI starts in interactive mode.\n\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return opts, nil
}

// buildGenerator constructs the provider adapter selected by configuration.
func buildGenerator(
	ctx context.Context,
	cfg config.LLMConfig,
	logger *slog.Logger,
) (generation.Generator, error) {
	switch cfg.Provider {
	case "gemini":
		return gemini.NewClient(ctx, cfg.GeminiAPIKey, logger)
	default:
		return anthropic.NewClient(cfg.AnthropicAPIKey, logger, nil, cfg.BaseURL)
	}
}

// newRequest builds a generation request, warning on stderr when an unknown
// prompt type falls back to general.
func newRequest(input, contextText, promptType, instructions string, stderr io.Writer) domain.GenerationRequest {
	if _, known := domain.ParsePromptType(promptType); !known && promptType != "" {
		fmt.Fprintf(stderr, "Warning: unknown prompt type %q, using general\n", promptType)
	}
	return domain.NewGenerationRequest(input, contextText, promptType, instructions)
}

// singlePromptMode generates one prompt from the parsed flags. The generated
// prompt goes to stdout; metadata (with --verbose) and errors go to stderr.
func singlePromptMode(
	promptService service.PromptService,
	opts *cliOptions,
	stdout, stderr io.Writer,
) int {
	req := newRequest(opts.input, opts.context, opts.promptType, opts.instructions, stderr)
	result := promptService.GeneratePrompt(context.Background(), req)

	if !result.Success {
		fmt.Fprintf(stderr, "Error: %s\n", result.ErrorMessage)
		return 1
	}

	fmt.Fprintln(stdout, result.Prompt)

	if opts.verbose && result.Metadata != nil {
		fmt.Fprintf(stderr, "# Model: %s\n", result.Metadata.Model)
		fmt.Fprintf(stderr, "# Type: %s\n", result.Metadata.PromptType)
		if result.Metadata.TokensUsed != nil {
			fmt.Fprintf(stderr, "# Tokens: %d\n", *result.Metadata.TokensUsed)
		}
	}

	return 0
}

// interactiveMode loops reading generation requests from the terminal until
// an exit keyword is entered.
func interactiveMode(
	promptService service.PromptService,
	stdin io.Reader,
	stdout, stderr io.Writer,
) int {
	fmt.Fprintln(stdout, "Prompt Generator CLI")
	fmt.Fprintln(stdout, strings.Repeat("=", 40))
	fmt.Fprintln(stdout, "Interactive Mode - Type 'quit' to exit")

	scanner := bufio.NewScanner(stdin)
	for {
		fmt.Fprintln(stdout, "\n"+strings.Repeat("-", 40))

		input, ok := promptLine(scanner, stdout, "Enter your prompt request (or 'quit'): ")
		if !ok {
			fmt.Fprintln(stdout, "Goodbye!")
			return 0
		}

		switch strings.ToLower(input) {
		case "quit", "exit", "q":
			fmt.Fprintln(stdout, "Goodbye!")
			return 0
		case "":
			fmt.Fprintln(stdout, "Please enter a valid request")
			continue
		}

		fmt.Fprintln(stdout, "\nSelect prompt type:")
		for i, d := range domain.PromptTypeDescriptors() {
			fmt.Fprintf(stdout, "%d. %s\n", i+1, d.Label)
		}
		choice, ok := promptLine(scanner, stdout, "Enter choice (1-4, default: 1): ")
		if !ok {
			return 0
		}
		promptType := promptTypeFromChoice(choice)

		contextText, ok := promptLine(scanner, stdout, "Additional context (optional): ")
		if !ok {
			return 0
		}
		instructions, ok := promptLine(scanner, stdout, "Custom instructions (optional): ")
		if !ok {
			return 0
		}

		fmt.Fprintln(stdout, "\nGenerating prompt...")

		req := newRequest(input, contextText, promptType, instructions, stderr)
		result := promptService.GeneratePrompt(context.Background(), req)

		if !result.Success {
			fmt.Fprintf(stderr, "Error: %s\n", result.ErrorMessage)
			continue
		}

		fmt.Fprintln(stdout, "\nGenerated Prompt:")
		fmt.Fprintln(stdout, strings.Repeat("=", 50))
		fmt.Fprintln(stdout, result.Prompt)
		fmt.Fprintln(stdout, strings.Repeat("=", 50))

		if result.Metadata != nil {
			fmt.Fprintln(stdout, "\nMetadata:")
			fmt.Fprintf(stdout, "   Model: %s\n", result.Metadata.Model)
			fmt.Fprintf(stdout, "   Type: %s\n", result.Metadata.PromptType)
			if result.Metadata.TokensUsed != nil {
				fmt.Fprintf(stdout, "   Tokens: %d\n", *result.Metadata.TokensUsed)
			}
		}
	}
}

// promptLine prints a prompt and reads one trimmed line. The second return
// value is false when input is exhausted.
func promptLine(scanner *bufio.Scanner, stdout io.Writer, prompt string) (string, bool) {
	fmt.Fprint(stdout, prompt)
	if !scanner.Scan() {
		return "", false
	}
	return strings.TrimSpace(scanner.Text()), true
}

// promptTypeFromChoice maps a numbered menu choice to a prompt type value.
// Anything outside 1-4 defaults to general.
func promptTypeFromChoice(choice string) string {
	types := domain.AllPromptTypes
	switch choice {
	case "2":
		return string(types[1])
	case "3":
		return string(types[2])
	case "4":
		return string(types[3])
	default:
		return string(types[0])
	}
}
