package settings

import (
	"sync"

	"go.uber.org/zap"
)

const (
	// DefaultMaxDepth bounds Sequence nesting in pre-tokenizer configurations.
	DefaultMaxDepth = 32
)

var (
	mu           sync.RWMutex
	globalLogger *zap.Logger
	globalDepth  int
)

func init() {
	// Library code stays silent unless a caller installs a logger.
	globalLogger = zap.NewNop()
	globalDepth = DefaultMaxDepth
}

// SetLogger sets the global logger. A nil logger restores the no-op logger.
func SetLogger(l *zap.Logger) {
	mu.Lock()
	defer mu.Unlock()
	if l == nil {
		l = zap.NewNop()
	}
	globalLogger = l
}

// GetLogger gets the global logger.
func GetLogger() *zap.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return globalLogger
}

// SetMaxDepth sets the global maximum nesting depth. Non-positive values
// restore DefaultMaxDepth.
func SetMaxDepth(depth int) {
	mu.Lock()
	defer mu.Unlock()
	if depth <= 0 {
		depth = DefaultMaxDepth
	}
	globalDepth = depth
}

// GetMaxDepth gets the global maximum nesting depth.
func GetMaxDepth() int {
	mu.RLock()
	defer mu.RUnlock()
	return globalDepth
}
