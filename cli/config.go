package main

import (
	"github.com/aqua777/go-pretokenizer/settings"
)

const (
	AppName = "pretokenize"
)

// Default configuration values
const (
	DefaultConcurrency = 0
	DefaultMaxDepth    = settings.DefaultMaxDepth
)

// Config keys for krait
const (
	KeyFile        = "file"
	KeyJSON        = "json"
	KeyConcurrency = "split.concurrency"
	KeyMaxDepth    = "max-depth"
	KeyRegex       = "regex"
	KeyVerbose     = "verbose"
)
