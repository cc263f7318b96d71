// Package main provides the skosread binary entry point.
// skosread extracts the SKOS concept hierarchy of a vocabulary file and
// reports it as text, structured data or RDF.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/c360studio/skosread/config"
)

const (
	Version   = "0.1.0"
	BuildTime = "dev"
	appName   = "skosread"
)

func main() {
	// Add panic recovery
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			_, _ = fmt.Fprintf(os.Stderr, "PANIC: %v\nStack trace:\n%s\n", r, string(buf[:n]))
			os.Exit(2)
		}
	}()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err := rootCmd().ExecuteContext(ctx)
	cancel()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// flags holds the command-line values shared by all commands.
type flags struct {
	configPath  string
	logLevel    string
	backend     string
	format      string
	output      string
	inputFormat string
	publish     bool
	natsURL     string
	subject     string
	bucket      string
	metricsFile string
}

func rootCmd() *cobra.Command {
	var f flags

	cmd := &cobra.Command{
		Use:   "skosread [flags] <file>",
		Short: "Extract the SKOS concept hierarchy of a vocabulary",
		Long: `skosread reads a SKOS vocabulary (N-Triples, Turtle or RDF/XML),
normalizes its concepts and reports each concept with its labels,
notes and broader, narrower and related concepts.

The document can be read through one of three backends:
- graph: RDF statement graph (default)
- ontology: OWL axioms
- dataset: SKOS annotation dataset

All backends produce the same concept graph for the same document.`,
		Args:          cobra.ExactArgs(1),
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			a, err := newApp(cmd, &f)
			if err != nil {
				return err
			}
			defer a.close()
			return a.runFile(cmd.Context(), args[0])
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&f.configPath, "config", "c", "", "Config file path (YAML)")
	pf.StringVar(&f.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	pf.StringVarP(&f.backend, "backend", "b", "", "Document backend (graph, ontology, dataset)")
	pf.StringVarP(&f.format, "format", "f", "", "Report format (text, json, yaml, jsonld, turtle, ntriples)")
	pf.StringVarP(&f.output, "output", "o", "", "Report file (default stdout; a directory for batch)")
	pf.StringVar(&f.inputFormat, "input-format", "", "Input syntax (ntriples, turtle, rdfxml); detected from extension if empty")
	pf.BoolVar(&f.publish, "publish", false, "Publish concepts to NATS")
	pf.StringVar(&f.natsURL, "nats-url", "", "NATS server URL")
	pf.StringVar(&f.subject, "subject", "", "NATS subject for published concepts")
	pf.StringVar(&f.bucket, "bucket", "", "NATS KV bucket for concept snapshots (requires --publish)")
	pf.StringVar(&f.metricsFile, "metrics-file", "", "Write run metrics in Prometheus text format to this file")

	cmd.AddCommand(batchCmd(&f))
	cmd.AddCommand(watchCmd(&f))
	cmd.AddCommand(configCmd(&f))

	// Version command
	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s version %s (build: %s)\n", appName, Version, BuildTime)
		},
	})

	return cmd
}

func batchCmd(f *flags) *cobra.Command {
	return &cobra.Command{
		Use:   "batch <glob>",
		Short: "Report every vocabulary matching a glob",
		Long: `Batch reads every file matching the glob (** matches any number of
directories) and reports each one independently. With --output the
reports are written into that directory, one file per vocabulary.
The first file that fails to load stops the batch.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			a, err := newApp(cmd, f)
			if err != nil {
				return err
			}
			defer a.close()
			return a.runBatch(cmd.Context(), args[0])
		},
	}
}

func watchCmd(f *flags) *cobra.Command {
	return &cobra.Command{
		Use:   "watch <file>",
		Short: "Report a vocabulary again whenever it changes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			a, err := newApp(cmd, f)
			if err != nil {
				return err
			}
			defer a.close()
			return a.runWatch(cmd.Context(), args[0])
		},
	}
}

func configCmd(f *flags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage configuration",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "init [path]",
		Short: "Write the default configuration",
		Long: `Init writes the default configuration as YAML to path, or to
~/.config/skosread/config.yaml when no path is given. Existing files
are left untouched.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			logger, err := newLogger(cmd.ErrOrStderr(), f.logLevel)
			if err != nil {
				return err
			}
			written, err := config.NewLoader(logger).InitConfig(path)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", written)
			return nil
		},
	})
	return cmd
}
