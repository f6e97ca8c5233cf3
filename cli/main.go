package main

import (
	"fmt"
	"os"

	"github.com/aqua777/krait"
)

func main() {
	splitCmd := krait.New("split", "Split text into pre-tokens", "Split each argument, or each stdin line when no arguments are given, with a pre-tokenizer loaded from --file (ByteLevel when omitted)").
		WithStringP(KeyFile, "Pre-tokenizer config (.json, .yaml or tokenizer.json)", "file", "f", "PRETOKENIZE_FILE", "").
		WithBoolP(KeyJSON, "Print each result as a JSON array", "json", "j", "PRETOKENIZE_JSON", false).
		WithIntP(KeyConcurrency, "Maximum texts split at once, 0 for no limit", "concurrency", "n", "PRETOKENIZE_CONCURRENCY", DefaultConcurrency).
		WithArbitraryArgs().
		WithSanityCheck(checkLimits).
		WithRun(runSplit)

	validateCmd := krait.New("validate", "Validate a pre-tokenizer config", "Parse and build a pre-tokenizer config and print its normalized form").
		WithStringP(KeyFile, "Pre-tokenizer config (.json, .yaml or tokenizer.json)", "file", "f", "PRETOKENIZE_FILE", "").
		WithNoArgs().
		WithSanityCheck(checkLimits).
		WithRun(runValidate)

	patternCmd := krait.New("pattern", "Show the matches of a pattern", "Print the byte span and text of every match of --regex in each argument").
		WithStringP(KeyRegex, "Pattern to match", "regex", "r", "PRETOKENIZE_REGEX", "").
		WithMinimumNArgs(1).
		WithRun(runPattern)

	app := krait.App(AppName, "Pre-tokenizer CLI tool", "Load, validate and run HuggingFace-style pre-tokenizer configurations").
		WithConfig("", "config", "", "PRETOKENIZE_CONFIG").
		// Global options (shared across subcommands)
		WithIntP(KeyMaxDepth, "Maximum Sequence nesting depth", "max-depth", "", "PRETOKENIZE_MAX_DEPTH", DefaultMaxDepth).
		WithBoolP(KeyVerbose, "Enable verbose output", "verbose", "v", "PRETOKENIZE_VERBOSE", false).
		WithCommand(splitCmd).
		WithCommand(validateCmd).
		WithCommand(patternCmd).
		WithRun(func(args []string) error {
			// Default action: show help
			fmt.Println("pretokenize - Use 'pretokenize split --help' to split text")
			return nil
		})

	if err := app.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
