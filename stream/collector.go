// Package stream folds labels observed on a kafka topic into a
// histogram: one bump per message, with the label and amount taken
// from the message by an extractor.
package stream

import (
	"context"
	"io"

	"github.com/google/uuid"
	pkgerr "github.com/pkg/errors"
	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/histkit/histogram-go-lib/hist"
)

// IReader interface of kafka reader client
type IReader interface {
	ReadMessage(ctx context.Context) (kafkago.Message, error)
	Close() (err error)
}

// An Extractor takes the label and the bump amount from a message.
// An error skips the message without stopping the collector.
type Extractor[L comparable, M hist.Measure] func(msg kafkago.Message) (L, M, error)

// KeyExtractor counts messages by key, one unit per message
func KeyExtractor(msg kafkago.Message) (string, uint64, error) {
	return string(msg.Key), 1, nil
}

// A Collector reads messages and bumps the destination histogram
type Collector[L comparable, M hist.Measure] struct {
	reader  IReader
	extract Extractor[L, M]
	dest    *hist.Locked[L, M]
	logger  *zap.Logger
	runID   string
}

// NewCollector creates a collector over the reader.
// The destination histogram may be shared with other collectors.
func NewCollector[L comparable, M hist.Measure](
	reader IReader,
	extract Extractor[L, M],
	dest *hist.Locked[L, M],
	logger *zap.Logger,
) *Collector[L, M] {

	if logger == nil {
		logger = zap.NewNop()
	}

	runID := uuid.New().String()

	return &Collector[L, M]{
		reader:  reader,
		extract: extract,
		dest:    dest,
		logger:  logger.With(zap.String("run-id", runID)),
		runID:   runID,
	}
}

// RunID returns the collector run identifier used in the logs
func (c *Collector[L, M]) RunID() string {
	return c.runID
}

// Run reads messages until the context is cancelled or the reader
// is closed
func (c *Collector[L, M]) Run(ctx context.Context) error {

	c.logger.Info("collector started")

	var observed int64
	for {
		msg, err := c.reader.ReadMessage(ctx)
		if err != nil {
			if pkgerr.Is(err, context.Canceled) ||
				pkgerr.Is(err, context.DeadlineExceeded) ||
				pkgerr.Is(err, io.EOF) {

				c.logger.Info("collector stopped", zap.Int64("observed", observed))
				return nil
			}
			return pkgerr.Wrap(err, "read message")
		}

		label, amount, err := c.extract(msg)
		if err != nil {
			c.logger.Warn("skip message",
				zap.Error(err),
				zap.Int64("offset", msg.Offset))
			continue
		}

		c.dest.BumpBy(label, amount)
		observed++
	}
}

// Close closes the underlying reader
func (c *Collector[L, M]) Close() error {
	return c.reader.Close()
}
