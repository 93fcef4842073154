// Package cmd implements the formatter command line.
package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/nibzard/ganttfmt/internal/config"
	"github.com/nibzard/ganttfmt/internal/formatter"
	"github.com/nibzard/ganttfmt/internal/logging"
	"github.com/nibzard/ganttfmt/internal/ui"
)

// Version is set via ldflags at build time.
var Version = "dev"

// mode is the output mode chosen by flags.
type mode int

const (
	modeWrite mode = iota
	modeStdout
	modeCheck
	modePreview
)

// previewFunc runs the interactive preview. Tests replace it.
var previewFunc = ui.RunPreview

// Run executes the formatter CLI.
func Run(ctx context.Context, args []string) error {
	return run(ctx, args, os.Stdout, os.Stderr)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("formatter", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		printUsage(fs, stderr)
	}
	help := fs.Bool("help", false, "Show help")
	fs.BoolVar(help, "h", false, "Show help")
	showVersion := fs.Bool("version", false, "Show version")
	fs.BoolVar(showVersion, "v", false, "Show version")
	exampleConfig := fs.Bool("example-config", false, "Print an example config file")
	check := fs.Bool("check", false, "Report files that are not formatted without writing")
	toStdout := fs.Bool("stdout", false, "Print the formatted result instead of writing it")
	preview := fs.Bool("preview", false, "Review the formatted result in a terminal UI before writing")

	cfg, err := config.Load(fs, args)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if *help {
		printUsage(fs, stdout)
		return nil
	}
	if *showVersion {
		fmt.Fprintf(stdout, "formatter version %s\n", Version)
		return nil
	}
	if *exampleConfig {
		fmt.Fprint(stdout, config.ExampleConfig())
		return nil
	}

	m, err := selectMode(*check, *toStdout, *preview)
	if err != nil {
		return err
	}

	paths := fs.Args()
	switch {
	case len(paths) == 0:
		printUsage(fs, stderr)
		return fmt.Errorf("missing input path")
	case len(paths) > 2:
		return fmt.Errorf("unexpected arguments: %v", paths[2:])
	case len(paths) == 2 && m != modeWrite:
		return fmt.Errorf("output path cannot be combined with -check, -stdout or -preview")
	}

	src := paths[0]
	dst := src
	if len(paths) == 2 {
		dst = paths[1]
	}

	logger := logging.NewFromConfig(stderr, cfg.LogLevel, cfg.LogFormat)
	if cfg.ConfigFile != "" {
		logger.Debug("loaded config", "path", cfg.ConfigFile)
	}
	fmtr := formatter.New(
		formatter.WithVocabulary(cfg.Vocabulary()),
		formatter.WithMeasure(cfg.WidthMode.Measure()),
		formatter.WithLogger(logger),
	)

	switch m {
	case modeStdout:
		return stdoutCommand(fmtr, src, stdout)
	case modeCheck:
		return checkCommand(fmtr, logger, src)
	case modePreview:
		return previewCommand(ctx, fmtr, logger, src)
	}
	return writeCommand(fmtr, logger, src, dst)
}

func selectMode(check, toStdout, preview bool) (mode, error) {
	selected := modeWrite
	count := 0
	if check {
		selected = modeCheck
		count++
	}
	if toStdout {
		selected = modeStdout
		count++
	}
	if preview {
		selected = modePreview
		count++
	}
	if count > 1 {
		return modeWrite, fmt.Errorf("-check, -stdout and -preview are mutually exclusive")
	}
	return selected, nil
}

// writeCommand formats src and writes the result to dst.
func writeCommand(fmtr *formatter.Formatter, logger *log.Logger, src, dst string) error {
	res, err := fmtr.FormatFile(src, dst)
	if err != nil {
		return err
	}
	logger.Info("formatted", "path", dst, "changed", res.Changed)
	return nil
}

// stdoutCommand prints the formatted result of src.
func stdoutCommand(fmtr *formatter.Formatter, src string, stdout io.Writer) error {
	source, err := formatter.ReadSource(src)
	if err != nil {
		return err
	}
	_, err = io.WriteString(stdout, fmtr.Format(source))
	return err
}

// checkCommand fails if src is not already formatted.
func checkCommand(fmtr *formatter.Formatter, logger *log.Logger, src string) error {
	_, err := fmtr.CheckFile(src)
	if errors.Is(err, formatter.ErrNotFormatted) {
		logger.Warn("not formatted", "path", src)
	}
	return err
}

// previewCommand shows the formatted result and writes it only if accepted.
func previewCommand(ctx context.Context, fmtr *formatter.Formatter, logger *log.Logger, src string) error {
	source, err := formatter.ReadSource(src)
	if err != nil {
		return err
	}
	res := fmtr.FormatWithResult(source)
	if !res.Changed {
		logger.Info("already formatted", "path", src)
		return nil
	}

	decision, err := previewFunc(ctx, src, source, res.Content)
	if err != nil {
		return fmt.Errorf("preview: %w", err)
	}
	if decision != ui.DecisionWrite {
		logger.Info("discarded", "path", src)
		return nil
	}
	if err := formatter.WriteOutput(src, res.Content); err != nil {
		return err
	}
	logger.Info("formatted", "path", src, "changed", true)
	return nil
}

func printUsage(fs *flag.FlagSet, w io.Writer) {
	fmt.Fprintln(w, "formatter - align Mermaid Gantt chart sources")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  formatter [options] <input-path> [output-path]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "With one path the file is rewritten in place. With two the result is")
	fmt.Fprintln(w, "written to output-path, which is created or overwritten.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Options:")
	fs.SetOutput(w)
	fs.PrintDefaults()
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Examples:")
	fmt.Fprintln(w, "  formatter chart.mmd                 Format chart.mmd in place")
	fmt.Fprintln(w, "  formatter chart.mmd out.mmd         Write the result to out.mmd")
	fmt.Fprintln(w, "  formatter -check chart.mmd          Exit 1 if chart.mmd is not formatted")
	fmt.Fprintln(w, "  formatter -stdout chart.mmd         Print the result")
	fmt.Fprintln(w, "  formatter -config fmt.toml a.mmd    Load options from a TOML file")
}
