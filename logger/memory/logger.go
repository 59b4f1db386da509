// Package memory builds a logger with an in-memory output buffer
// for tests of log-producing components
package memory

import (
	"net/url"
	"strconv"
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var sinkSeq int64

// New creates a logger with a memory sink. A nil config means the
// production config at debug level with iso8601 timestamps.
func New(cfg *zap.Config) (*zap.Logger, *Buffer, error) {

	// zap.RegisterSink requires a unique scheme per sink
	sinkID := "histmem" + strconv.FormatInt(atomic.AddInt64(&sinkSeq, 1), 10)

	buf := NewBuffer()
	err := zap.RegisterSink(sinkID, func(*url.URL) (zap.Sink, error) {
		return buf, nil
	})
	if err != nil {
		return nil, nil, err
	}

	if cfg == nil {
		prodConfig := zap.NewProductionConfig()
		cfg = &prodConfig
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	}
	cfg.OutputPaths = []string{sinkID + "://"}

	l, err := cfg.Build()
	return l, buf, err
}
