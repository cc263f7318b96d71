package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/c360studio/skosread/config"
	"github.com/c360studio/skosread/document"
	"github.com/c360studio/skosread/document/triple"
	"github.com/c360studio/skosread/export"
	"github.com/c360studio/skosread/graph"
	"github.com/c360studio/skosread/pipeline"
	"github.com/c360studio/skosread/storage"
	"github.com/c360studio/skosread/watch"
)

// app runs vocabulary files through the pipeline and reports them.
type app struct {
	cfg      *config.Config
	logger   *slog.Logger
	stdout   io.Writer
	format   export.Format
	pipeline *pipeline.Pipeline
	registry *prometheus.Registry

	metricsFile string

	// nc is set when publishing is enabled; store when a bucket is
	// configured too.
	nc    *nats.Conn
	store *storage.Store
}

func newLogger(w io.Writer, level string) (*slog.Logger, error) {
	lvl, err := config.LogConfig{Level: level}.SlogLevel()
	if err != nil {
		return nil, err
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})), nil
}

// loadConfig layers the config files and the flags the user set.
func loadConfig(cmd *cobra.Command, f *flags) (*config.Config, error) {
	bootstrap, err := newLogger(cmd.ErrOrStderr(), f.logLevel)
	if err != nil {
		return nil, err
	}

	cfg, err := config.NewLoader(bootstrap).Load(f.configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	changed := cmd.Flags().Changed
	if changed("backend") {
		cfg.Backend = f.backend
	}
	if changed("input-format") {
		cfg.InputFormat = f.inputFormat
	}
	if changed("output") {
		cfg.Report.Output = f.output
	}
	if changed("format") {
		cfg.Report.Format = f.format
	} else if changed("output") {
		// Without --format, an explicit output file picks the format
		if detected, ok := export.FormatFromExtension(f.output); ok {
			cfg.Report.Format = string(detected)
		}
	}
	if changed("publish") {
		cfg.Publish.Enabled = f.publish
	}
	if changed("nats-url") {
		cfg.Publish.URL = f.natsURL
	}
	if changed("subject") {
		cfg.Publish.Subject = f.subject
	}
	if changed("bucket") {
		cfg.Publish.Bucket = f.bucket
	}
	if changed("log-level") {
		cfg.Log.Level = f.logLevel
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func newApp(cmd *cobra.Command, f *flags) (*app, error) {
	cfg, err := loadConfig(cmd, f)
	if err != nil {
		return nil, err
	}

	logger, err := newLogger(cmd.ErrOrStderr(), cfg.Log.Level)
	if err != nil {
		return nil, err
	}

	format, err := export.ParseFormat(cfg.Report.Format)
	if err != nil {
		return nil, err
	}

	registry := prometheus.NewRegistry()
	opts := []pipeline.Option{pipeline.WithRegisterer(registry)}
	if cfg.InputFormat != "" {
		inputFormat, _ := document.ParseFormat(cfg.InputFormat)
		opts = append(opts, pipeline.WithInputFormat(inputFormat))
	}
	p, err := pipeline.New(document.Backend(strings.ToLower(cfg.Backend)), logger, opts...)
	if err != nil {
		return nil, err
	}

	a := &app{
		cfg:         cfg,
		logger:      logger,
		stdout:      cmd.OutOrStdout(),
		format:      format,
		pipeline:    p,
		registry:    registry,
		metricsFile: f.metricsFile,
	}

	if cfg.Publish.Enabled {
		nc, err := nats.Connect(cfg.Publish.URL,
			nats.Name(appName),
			nats.Timeout(cfg.Publish.Timeout))
		if err != nil {
			return nil, fmt.Errorf("connect to NATS at %s: %w", cfg.Publish.URL, err)
		}
		a.nc = nc
		logger.Info("Connected to NATS", "url", cfg.Publish.URL, "subject", cfg.Publish.Subject)

		if cfg.Publish.Bucket != "" {
			js, err := jetstream.New(nc)
			if err != nil {
				nc.Close()
				return nil, fmt.Errorf("jetstream: %w", err)
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), cfg.Publish.Timeout)
			defer cancel()
			store, err := storage.NewStore(ctx, js, cfg.Publish.Bucket)
			if err != nil {
				nc.Close()
				return nil, err
			}
			a.store = store
		}
	}

	return a, nil
}

// close releases the NATS connection and writes the metrics file.
func (a *app) close() {
	if a.nc != nil {
		if err := a.nc.FlushTimeout(a.cfg.Publish.Timeout); err != nil {
			a.logger.Warn("Failed to flush NATS connection", "error", err)
		}
		a.nc.Close()
	}
	if a.metricsFile != "" {
		if err := prometheus.WriteToTextfile(a.metricsFile, a.registry); err != nil {
			a.logger.Warn("Failed to write metrics file", "path", a.metricsFile, "error", err)
		}
	}
}

// publisher returns the configured publisher, or nil when publishing is off.
func (a *app) publisher() graph.Publisher {
	if a.nc == nil {
		return nil
	}
	return a.nc
}

// runFile processes one vocabulary and writes its report to the
// configured output, or stdout.
func (a *app) runFile(ctx context.Context, path string) error {
	if a.cfg.Report.Output == "" {
		return a.process(ctx, path, a.stdout)
	}
	return a.processToFile(ctx, path, a.cfg.Report.Output)
}

func (a *app) processToFile(ctx context.Context, path, output string) error {
	var buf bytes.Buffer
	if err := a.process(ctx, path, &buf); err != nil {
		return err
	}
	return writeFileAtomic(output, buf.Bytes())
}

// writeFileAtomic replaces output with data through a temp file in the
// same directory, so a failed write never leaves a truncated report.
func writeFileAtomic(output string, data []byte) error {
	dir := filepath.Dir(output)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(output)+".*")
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write output: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close output: %w", err)
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return fmt.Errorf("chmod output: %w", err)
	}
	if err := os.Rename(tmp.Name(), output); err != nil {
		return fmt.Errorf("replace output: %w", err)
	}
	return nil
}

// process runs the pipeline on path, publishes the concepts when enabled
// and writes the report to w.
func (a *app) process(ctx context.Context, path string, w io.Writer) error {
	res, err := a.pipeline.Run(path)
	if err != nil {
		return err
	}

	if pub := a.publisher(); pub != nil {
		n, err := graph.PublishGraph(ctx, pub, a.cfg.Publish.Subject, res.Graph, res.RunID)
		if err != nil {
			return fmt.Errorf("publish %s: %w", path, err)
		}
		a.logger.Info("Published concepts", "run_id", res.RunID, "count", n)
	}

	if a.store != nil {
		n, err := a.store.PutGraph(ctx, res.Graph, res.RunID, path)
		if err != nil {
			return fmt.Errorf("store %s: %w", path, err)
		}
		a.logger.Info("Stored concept snapshots", "bucket", a.cfg.Publish.Bucket, "count", n)
	}

	if err := export.Report(w, res.Graph, a.format); err != nil {
		return fmt.Errorf("report %s: %w", path, err)
	}
	return nil
}

// runBatch processes every file matching pattern, in lexical order.
func (a *app) runBatch(ctx context.Context, pattern string) error {
	matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
	if err != nil {
		return fmt.Errorf("invalid glob %q: %w", pattern, err)
	}
	if len(matches) == 0 {
		return fmt.Errorf("no files match %s", pattern)
	}

	info, _ := export.GetFormatInfo(a.format)
	for _, path := range matches {
		if err := ctx.Err(); err != nil {
			return err
		}

		if a.cfg.Report.Output == "" {
			if len(matches) > 1 {
				a.logger.Info("Reporting vocabulary", "path", path)
			}
			if err := a.process(ctx, path, a.stdout); err != nil {
				return err
			}
			continue
		}

		base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		output := filepath.Join(a.cfg.Report.Output, base+info.Extension)
		if err := a.processToFile(ctx, path, output); err != nil {
			return err
		}
		a.logger.Info("Wrote report", "path", path, "output", output)
	}
	return nil
}

// runWatch reports path once, then again after every content change until
// ctx is done. Failures after the first report are logged, not returned.
func (a *app) runWatch(ctx context.Context, path string) error {
	if err := a.runFile(ctx, path); err != nil {
		return err
	}

	w, err := watch.New(a.cfg.Watch, []string{path}, a.logger)
	if err != nil {
		return err
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	if err := w.Start(ctx); err != nil {
		return err
	}
	defer w.Stop()
	defer func() {
		if dropped := w.DroppedEvents(); dropped > 0 {
			a.logger.Warn("Watcher dropped change events", "path", path, "dropped", dropped)
		}
	}()

	for ev := range w.Events() {
		if ev.Operation == watch.OpDelete {
			a.logger.Warn("Vocabulary removed, waiting for it to return", "path", ev.Path)
			continue
		}
		if err := a.runFile(ctx, path); err != nil {
			if errors.Is(err, document.ErrDocumentLoad) || errors.Is(err, triple.ErrUnsupportedFormat) {
				a.logger.Error("Failed to reload vocabulary", "path", path, "error", err)
				continue
			}
			return err
		}
	}
	return nil
}
