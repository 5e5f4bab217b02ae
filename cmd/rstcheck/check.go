package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/Ishaan29/rstcheck/internal/checker"
	"github.com/Ishaan29/rstcheck/internal/config"
	"github.com/Ishaan29/rstcheck/internal/docs"
	"github.com/Ishaan29/rstcheck/internal/docs/markdown"
	"github.com/Ishaan29/rstcheck/internal/docs/rst"
	"github.com/Ishaan29/rstcheck/internal/history"
	rlog "github.com/Ishaan29/rstcheck/internal/log"
	"github.com/Ishaan29/rstcheck/internal/model"
	"github.com/Ishaan29/rstcheck/internal/report"
)

// errFailuresFound signals a completed run with a nonzero failure count.
// It carries no message of its own: the summary line has already been
// printed by the time it surfaces.
var errFailuresFound = errors.New("failures found")

// runCheckCmd executes the root check action.
func runCheckCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := setupLogger(getVerboseFlag(cmd))
	slog.SetDefault(logger)

	// Handle interrupt signals for a clean early exit.
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		logger.Info("received shutdown signal, cancelling...")
		cancel()
	}()

	return runCheck(ctx, cfg, logger)
}

// buildConfig creates a Config from cobra command flags and the optional
// configuration file. Boolean strictness flags are OR-ed with the file's
// defaults, so either source can enable a mode.
func buildConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.NewConfig()
	cfg.Targets = args

	var err error

	cfg.StrictRST, err = cmd.Flags().GetBool("strict-rst")
	if err != nil {
		return nil, err
	}
	cfg.StrictWarnings, err = cmd.Flags().GetBool("strict-warnings")
	if err != nil {
		return nil, err
	}
	cfg.Jobs, err = cmd.Flags().GetInt("jobs")
	if err != nil {
		return nil, err
	}
	cfg.CheckTimeout = getDurationFlag(cmd, "check-timeout")

	cfg.JSONReport, err = cmd.Flags().GetBool("json")
	if err != nil {
		return nil, err
	}
	cfg.MarkdownReport, err = cmd.Flags().GetBool("markdown")
	if err != nil {
		return nil, err
	}
	cfg.ReportFile, err = cmd.Flags().GetString("output")
	if err != nil {
		return nil, err
	}
	cfg.Save, err = cmd.Flags().GetBool("save")
	if err != nil {
		return nil, err
	}
	cfg.ConfigFilePath, err = cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	// Load the configuration file. An explicitly specified path must
	// exist; the default locations may silently be absent.
	explicitConfigPath := cfg.ConfigFilePath != ""
	configPath := config.FindConfigFile(cfg.ConfigFilePath)
	if configPath != "" {
		cfg.File, err = config.LoadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
		cfg.StrictRST = cfg.StrictRST || cfg.File.StrictRST
		cfg.StrictWarnings = cfg.StrictWarnings || cfg.File.StrictWarnings
	} else if explicitConfigPath {
		return nil, fmt.Errorf("configuration file not found: %s", cfg.ConfigFilePath)
	}

	return cfg, nil
}

// setupLogger creates a structured logger based on verbosity setting.
// Temporary snippet paths are rewritten so verbose logs diff cleanly
// across runs.
func setupLogger(verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	handler := rlog.NewTempPathHandler(slog.NewTextHandler(os.Stderr, opts))
	return slog.New(handler)
}

// buildRegistry seeds the language registry and applies configuration-file
// overrides.
func buildRegistry(cfg *config.Config) *checker.Registry {
	registry := checker.NewRegistry()
	for tag, lang := range cfg.File.Languages {
		registry.Register(checker.Spec{
			Language:         tag,
			Extension:        lang.Extension,
			Args:             lang.Command,
			WarningsAsErrors: lang.WarningsAsErrors,
		})
	}
	return registry
}

// parserFor selects the markup parser collaborator by file extension:
// Markdown for .md files, reStructuredText for everything else.
func parserFor(path string, strict bool) docs.Parser {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown", ".mkd":
		return markdown.NewParser()
	default:
		return rst.NewParser(strict)
	}
}

// runCheck checks every target document and reports the aggregate.
func runCheck(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	chk := checker.New(
		checker.WithRegistry(buildRegistry(cfg)),
		checker.WithStrictWarnings(cfg.StrictWarnings),
		checker.WithTimeout(cfg.CheckTimeout),
		checker.WithLogger(logger),
	)

	logger.Info("starting check",
		"targets", cfg.Targets,
		"strictRST", cfg.StrictRST,
		"strictWarnings", cfg.StrictWarnings,
		"jobs", cfg.Jobs,
	)

	var results []*model.DocumentResult
	if cfg.Jobs > 1 && len(cfg.Targets) > 1 {
		results = checkParallel(ctx, cfg, chk)
	} else {
		results = checkSequential(ctx, cfg, chk)
	}

	summary := model.NewRunSummary()
	console := report.NewConsoleWriter(os.Stderr, cfg.StrictWarnings)
	for _, result := range results {
		summary.Add(result)
		if err := console.WriteDocument(result); err != nil {
			return err
		}
	}
	if err := console.WriteSummary(summary); err != nil {
		return err
	}

	if err := writeArtifact(cfg, summary); err != nil {
		logger.Error("report failed", "error", err)
	}

	if cfg.Save {
		if err := saveRun(ctx, cfg, summary, logger); err != nil {
			logger.Error("failed to save run", "error", err)
		}
	}

	if summary.TotalFailures(cfg.StrictWarnings) > 0 {
		return errFailuresFound
	}
	return nil
}

// checkSequential checks documents one at a time, in input order.
func checkSequential(ctx context.Context, cfg *config.Config, chk *checker.Checker) []*model.DocumentResult {
	results := make([]*model.DocumentResult, 0, len(cfg.Targets))
	for _, target := range cfg.Targets {
		select {
		case <-ctx.Done():
			result := model.NewDocumentResult(target)
			result.ParseError = ctx.Err().Error()
			results = append(results, result)
			continue
		default:
		}
		results = append(results, checkOne(ctx, cfg, chk, target))
	}
	return results
}

// checkParallel checks documents concurrently. Results keep input order:
// each goroutine writes only its own slot, and no two documents share
// writable state.
func checkParallel(ctx context.Context, cfg *config.Config, chk *checker.Checker) []*model.DocumentResult {
	results := make([]*model.DocumentResult, len(cfg.Targets))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Jobs)
	for i, target := range cfg.Targets {
		i, target := i, target
		g.Go(func() error {
			results[i] = checkOne(gctx, cfg, chk, target)
			return nil
		})
	}
	_ = g.Wait() //nolint:errcheck // Workers never return errors

	return results
}

// checkOne reads, parses, and checks a single document. Every failure mode
// is folded into the DocumentResult; this function never fails the run
// directly.
func checkOne(ctx context.Context, cfg *config.Config, chk *checker.Checker, target string) *model.DocumentResult {
	source, err := os.ReadFile(target) //nolint:gosec // User-provided document path is intentional
	if err != nil {
		result := model.NewDocumentResult(target)
		result.ParseError = err.Error()
		return result
	}

	parser := parserFor(target, cfg.StrictRST)
	root, err := parser.Parse(source, target)
	if err != nil {
		result := model.NewDocumentResult(target)
		result.ParseError = err.Error()
		return result
	}

	return chk.CheckDocument(ctx, root, target)
}

// writeArtifact writes the JSON or Markdown run report when requested.
func writeArtifact(cfg *config.Config, summary *model.RunSummary) error {
	if !cfg.JSONReport && !cfg.MarkdownReport {
		return nil
	}

	out := os.Stdout
	if cfg.ReportFile != "" {
		dir := filepath.Dir(cfg.ReportFile)
		if dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0750); err != nil {
				return fmt.Errorf("failed to create output directory: %w", err)
			}
		}
		f, err := os.OpenFile(cfg.ReportFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer func() {
			_ = f.Close() //nolint:errcheck // Best effort cleanup
		}()
		out = f
	}

	var writer report.Writer
	if cfg.JSONReport {
		writer = report.NewJSONWriter(out, cfg.StrictWarnings)
	} else {
		writer = report.NewMarkdownWriter(out, cfg.StrictWarnings)
	}
	return writer.WriteSummary(summary)
}

// saveRun records the run in the history database.
func saveRun(ctx context.Context, cfg *config.Config, summary *model.RunSummary, logger *slog.Logger) error {
	db, err := history.Open(cfg.DBDir, history.DefaultOptions())
	if err != nil {
		return fmt.Errorf("failed to open history database: %w", err)
	}
	defer func() {
		_ = db.Close() //nolint:errcheck // Best effort cleanup
	}()

	if err := db.Save(ctx, summary, cfg.StrictWarnings); err != nil {
		return fmt.Errorf("failed to save run: %w", err)
	}
	logger.Info("run saved to history", "dir", cfg.DBDir)
	return nil
}
