// The histo command builds label frequency histograms: from token
// streams on files/stdin, or from the keys of a kafka topic with a
// prometheus metrics endpoint.
package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"strconv"
	"strings"
	"syscall"
	"time"

	pkgerr "github.com/pkg/errors"
	flag "github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/histkit/histogram-go-lib/config"
	"github.com/histkit/histogram-go-lib/hist"
	"github.com/histkit/histogram-go-lib/logger"
	"github.com/histkit/histogram-go-lib/metric"
	"github.com/histkit/histogram-go-lib/serde"
	"github.com/histkit/histogram-go-lib/service"
	"github.com/histkit/histogram-go-lib/service/info"
	"github.com/histkit/histogram-go-lib/service/router"
	"github.com/histkit/histogram-go-lib/stream"
	"github.com/histkit/histogram-go-lib/worker"
)

// set with -ldflags
var version = "dev"

type options struct {
	ConfigFile   string
	Top          int
	Weighted     bool
	Workers      int
	Lower        bool
	JSON         bool
	MetricsAddr  string
	KafkaTopic   string
	KafkaBrokers []string
	KafkaGroup   string

	Files []string
}

func main() {

	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "histo:", err)
		os.Exit(1)
	}
}

func run(args []string) error {

	opt, err := parseOptions(args)
	if err != nil {
		if pkgerr.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	l, err := logger.New()
	if err != nil {
		return err
	}
	defer l.Sync()

	if opt.KafkaTopic != "" {
		return runKafka(l, opt)
	}

	return runFiles(l, opt)
}

func parseOptions(args []string) (*options, error) {

	opt := &options{}

	flags := flag.NewFlagSet("histo", flag.ContinueOnError)
	flags.ParseErrorsWhitelist.UnknownFlags = true // logger flags

	flags.StringVar(&opt.ConfigFile, "config", "", "config file")
	flags.IntVar(&opt.Top, "top", 10, "ranking size to print (0 - all labels)")
	flags.BoolVar(&opt.Weighted, "weighted", false, "read 'label weight' lines instead of tokens")
	flags.IntVar(&opt.Workers, "workers", 0, "collection workers (0 - one per cpu)")
	flags.BoolVar(&opt.Lower, "lower", false, "lowercase tokens before counting")
	flags.BoolVar(&opt.JSON, "json", false, "print the snapshot as json")
	flags.StringVar(&opt.MetricsAddr, "metrics-addr", "", "serve /metrics and /health on the address")
	flags.StringVar(&opt.KafkaTopic, "kafka-topic", "", "collect labels from the kafka topic keys")
	flags.StringSliceVar(&opt.KafkaBrokers, "kafka-brokers", nil, "kafka brokers list")
	flags.StringVar(&opt.KafkaGroup, "kafka-group", "histo", "kafka consumer group")

	if err := flags.Parse(args); err != nil {
		return nil, err
	}
	opt.Files = flags.Args()

	// environment and config file supply defaults for unset flags
	v := config.New("histo", true)
	if opt.ConfigFile != "" {
		if err := config.MergeFile(v, opt.ConfigFile); err != nil {
			return nil, err
		}
	}

	if !flags.Changed("top") && v.IsSet("top") {
		opt.Top = v.GetInt("top")
	}
	if !flags.Changed("workers") && v.IsSet("workers") {
		opt.Workers = v.GetInt("workers")
	}
	if !flags.Changed("metrics-addr") && v.IsSet("metrics-addr") {
		opt.MetricsAddr = v.GetString("metrics-addr")
	}
	if !flags.Changed("kafka-brokers") && v.IsSet("kafka-brokers") {
		brokers, err := config.GetStrings(v, "kafka-brokers")
		if err != nil {
			return nil, err
		}
		opt.KafkaBrokers = brokers
	}
	if !flags.Changed("kafka-topic") && v.IsSet("kafka-topic") {
		opt.KafkaTopic = v.GetString("kafka-topic")
	}

	return opt, nil
}

func runFiles(l *zap.Logger, opt *options) error {

	readers, closeAll, err := openInputs(opt.Files)
	if err != nil {
		return err
	}
	defer closeAll()

	if opt.Weighted {
		h, err := collectWeighted(readers)
		if err != nil {
			return err
		}

		l.Debug("weighted collection done", zap.Int("labels", h.Len()))
		return printResult(h, opt.Top, opt.JSON)
	}

	h, err := collectCounts(readers, opt)
	if err != nil {
		return err
	}

	l.Debug("collection done", zap.Int("labels", h.Len()), zap.Uint64("total", h.Total()))
	return printResult(h, opt.Top, opt.JSON)
}

func openInputs(files []string) (readers []io.Reader, closeAll func(), err error) {

	if len(files) == 0 {
		return []io.Reader{os.Stdin}, func() {}, nil
	}

	opened := make([]*os.File, 0, len(files))
	closeAll = func() {
		for _, f := range opened {
			f.Close()
		}
	}

	for _, name := range files {
		f, err := os.Open(name)
		if err != nil {
			closeAll()
			return nil, nil, pkgerr.Wrap(err, "open input")
		}
		opened = append(opened, f)
		readers = append(readers, f)
	}

	return readers, closeAll, nil
}

// one unit per token, folded concurrently
func collectCounts(readers []io.Reader, opt *options) (*hist.Histogram[string, uint64], error) {

	c := worker.NewCollector[string, uint64](opt.Workers)
	c.Run()

	for _, r := range readers {
		scanner := bufio.NewScanner(r)
		scanner.Split(bufio.ScanWords)

		for scanner.Scan() {
			token := scanner.Text()
			if opt.Lower {
				token = strings.ToLower(token)
			}
			c.Add(token)
		}

		if err := scanner.Err(); err != nil {
			c.Close()
			return nil, pkgerr.Wrap(err, "read input")
		}
	}

	if err := c.Close(); err != nil {
		return nil, err
	}

	return c.Result(), nil
}

// 'label weight' lines
func collectWeighted(readers []io.Reader) (*hist.Histogram[string, float64], error) {

	h := hist.NewWeights[string]()

	for _, r := range readers {
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}

			fields := strings.Fields(line)
			if len(fields) != 2 {
				return nil, pkgerr.Errorf("invalid line: '%s'", line)
			}

			weight, err := strconv.ParseFloat(fields[1], 64)
			if err != nil || weight < 0 {
				return nil, pkgerr.Errorf("invalid weight: '%s'", fields[1])
			}

			h.BumpBy(fields[0], weight)
		}

		if err := scanner.Err(); err != nil {
			return nil, pkgerr.Wrap(err, "read input")
		}
	}

	return h, nil
}

func printResult[M hist.Measure](h *hist.Histogram[string, M], top int, asJSON bool) error {

	if asJSON {
		data, err := serde.JSON[string, M]{Indent: true}.Encode(hist.SnapshotOf(h))
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	}

	entries := hist.RankingEntries(h)
	if top > 0 && len(entries) > top {
		entries = entries[:top]
	}

	for _, e := range entries {
		fmt.Printf("%10v  %v\n", e.Measure, e.Label)
	}

	if mode, ok := h.Mode(); ok {
		fmt.Println("mode:", mode)
	}
	fmt.Println("total:", h.Total())

	return nil
}

func runKafka(l *zap.Logger, opt *options) error {

	if len(opt.KafkaBrokers) == 0 {
		return pkgerr.New("kafka brokers list is empty")
	}

	reader := stream.NewReader(&stream.Config{
		Brokers: opt.KafkaBrokers,
		Topic:   opt.KafkaTopic,
		GroupID: opt.KafkaGroup,
		Timeout: 10 * time.Second,
	})

	dest := hist.NewLocked[string, uint64]()
	collector := stream.NewCollector(reader, stream.KeyExtractor, dest, l)
	defer collector.Close()

	exporter, err := metric.New("histo", "labels", metric.Source(dest, nil))
	if err != nil {
		return err
	}

	tasks := []service.Task{
		collector.Run,

		func(ctx context.Context) error {
			ticker := time.NewTicker(5 * time.Second)
			defer ticker.Stop()

			for {
				select {
				case <-ticker.C:
					exporter.Update()
				case <-ctx.Done():
					exporter.Update()
					return nil
				}
			}
		},
	}

	if opt.MetricsAddr != "" {
		admin := router.NewAdminRouter(&info.Info{
			Name:      "histo",
			Version:   version,
			GoVersion: runtime.Version(),
			RunID:     collector.RunID(),
		})

		httpSvc := service.NewHTTP(admin, 5*time.Second, l)
		tasks = append(tasks, func(ctx context.Context) error {
			return httpSvc.ListenAndServe(ctx, opt.MetricsAddr)
		})
	}

	sigCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	chErr, cancel := service.RunGroup(tasks...)
	go func() {
		<-sigCtx.Done()
		collector.Close()
		cancel()
	}()

	var firstErr error
	for err := range chErr {
		if err != nil && firstErr == nil {
			firstErr = err
			cancel()
		}
	}
	if firstErr != nil {
		return firstErr
	}

	return printResult(dest.Unwrap(), opt.Top, opt.JSON)
}
