package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/aqua777/krait"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/aqua777/go-pretokenizer/pattern"
	"github.com/aqua777/go-pretokenizer/pretokenizer"
	"github.com/aqua777/go-pretokenizer/settings"
	"github.com/aqua777/go-pretokenizer/validation"
)

func checkLimits() error {
	return validation.ValidateLimits(validation.Limits{
		MaxDepth:    krait.GetInt(KeyMaxDepth),
		Concurrency: krait.GetInt(KeyConcurrency),
	})
}

// newLogger returns a development logger when verbose, otherwise a production
// logger that only reports warnings and above.
func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	return cfg.Build()
}

func setup() (*zap.Logger, error) {
	logger, err := newLogger(krait.GetBool(KeyVerbose))
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}
	settings.SetLogger(logger)
	settings.SetMaxDepth(krait.GetInt(KeyMaxDepth))
	return logger, nil
}

// loadConfig reads the config at path, or returns the default ByteLevel
// config when path is empty.
func loadConfig(path string) (pretokenizer.Config, error) {
	if path == "" {
		return pretokenizer.Config{Type: pretokenizer.TypeByteLevel}, nil
	}
	return pretokenizer.LoadFile(path)
}

func runSplit(args []string) error {
	logger, err := setup()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	cfg, err := loadConfig(krait.GetString(KeyFile))
	if err != nil {
		return err
	}
	p, err := cfg.Build()
	if err != nil {
		return fmt.Errorf("failed to build pre-tokenizer: %w", err)
	}

	texts := args
	if len(texts) == 0 {
		if texts, err = readLines(os.Stdin); err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
	}

	results, err := pretokenizer.SplitAll(context.Background(), p, texts, krait.GetInt(KeyConcurrency))
	if err != nil {
		return err
	}
	logger.Debug("split complete", zap.Int("texts", len(texts)), zap.String("type", string(cfg.Type)))

	w := bufio.NewWriter(os.Stdout)
	for _, pieces := range results {
		if err := writePieces(w, pieces, krait.GetBool(KeyJSON)); err != nil {
			return err
		}
	}
	return w.Flush()
}

func runValidate(args []string) error {
	logger, err := setup()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	path := krait.GetString(KeyFile)
	if path == "" {
		return fmt.Errorf("--file is required")
	}

	cfg, err := pretokenizer.LoadFile(path)
	if err != nil {
		return err
	}
	if _, err := cfg.Build(); err != nil {
		return err
	}

	fmt.Printf("ok: %s\n", cfg)
	return nil
}

func runPattern(args []string) error {
	expr := krait.GetString(KeyRegex)
	if expr == "" {
		return fmt.Errorf("--regex is required")
	}

	m, err := pattern.Compile(expr)
	if err != nil {
		return err
	}

	for _, text := range args {
		writeSpans(os.Stdout, text, m.FindAll(text))
	}
	return nil
}

// readLines returns the lines of r without their line terminators.
func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		lines = append(lines, strings.TrimSuffix(scanner.Text(), "\r"))
	}
	return lines, scanner.Err()
}

func writePieces(w io.Writer, pieces []string, asJSON bool) error {
	if asJSON {
		if pieces == nil {
			pieces = []string{}
		}
		data, err := json.Marshal(pieces)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	}

	quoted := make([]string, len(pieces))
	for i, piece := range pieces {
		quoted[i] = strconv.Quote(piece)
	}
	_, err := fmt.Fprintln(w, strings.Join(quoted, " "))
	return err
}

func writeSpans(w io.Writer, text string, spans []pattern.Span) {
	fmt.Fprintf(w, "%s (%d matches)\n", strconv.Quote(text), len(spans))
	for _, span := range spans {
		fmt.Fprintf(w, "  %d:%d %s\n", span.Start, span.End, strconv.Quote(text[span.Start:span.End]))
	}
}
