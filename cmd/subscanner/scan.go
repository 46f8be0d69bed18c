// cmd/subscanner/scan.go
package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"subscanner/internal/adapters/output"
	"subscanner/internal/core/domain"
	"subscanner/internal/core/ports"
	"subscanner/internal/core/usecases"
	"subscanner/internal/platform/config"
	"subscanner/internal/platform/dnsx"
	"subscanner/internal/platform/httpclient"
	"subscanner/internal/platform/logx"
	"subscanner/internal/platform/registry"
	"subscanner/internal/platform/ui"
)

func newScanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan [flags] [domain]",
		Short: "collect subdomains of a domain from every enabled source",
		Example: `  subscanner scan example.com
  subscanner scan -d example.com -r -o results.csv
  subscanner scan example.com --disable wayback --disable commoncrawl`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				if cmd.Flags().Changed(config.FlagDomain) {
					return withCode(exitUsage, fmt.Errorf("domain given both as argument and --%s", config.FlagDomain))
				}
				if err := cmd.Flags().Set(config.FlagDomain, args[0]); err != nil {
					return withCode(exitUsage, err)
				}
			}

			cfg, err := config.Load(cmd.Flags())
			if err != nil {
				return withCode(exitUsage, fmt.Errorf("configuration load failed: %w", err))
			}
			if err := cfg.Validate(); err != nil {
				return withCode(exitUsage, err)
			}
			return runScan(cmd.Context(), cfg, cmd.OutOrStdout())
		},
	}
	config.BindFlags(cmd.Flags())
	return cmd
}

// newLogger builds the shared logger. While spinners are on, only errors are
// logged so lines do not tear the live area.
func newLogger(cfg config.Config, mode ui.UIMode) logx.Logger {
	if cfg.Silent || mode == ui.UIModePretty {
		return logx.NewSilent()
	}
	return logx.NewWithLevel(logx.ParseLevel(cfg.LogLevel))
}

// runScan wires the collaborators described by cfg, runs one scan and renders
// or exports its result. The returned error carries the exit code.
func runScan(parent context.Context, cfg config.Config, stdout io.Writer) error {
	mode := ui.ParseUIMode(cfg.UI.Mode)
	if cfg.UI.NoColor {
		ui.DisableColors()
	}
	logger := newLogger(cfg, mode)

	logger.Info("subscanner starting",
		"version", version,
		"target", cfg.Target,
		"resolve", cfg.Resolve,
		"workers", cfg.Workers,
	)

	target := domain.Target{Root: cfg.Target, StrictSuffix: cfg.StrictSuffix}
	if err := target.Validate(); err != nil {
		return withCode(exitUsage, err)
	}

	// Shared transport
	client := httpclient.New(httpclient.Config{
		Timeout:    cfg.HTTP.Timeout,
		MaxRetries: cfg.HTTP.MaxRetries,
		UserAgent:  cfg.HTTP.UserAgent,
	}, logger)
	defer func() {
		<-client.Close(cfg.HTTP.GracePeriod)
		logger.Debug("transport closed")
	}()

	sources, err := registry.Global().Build(client, logger)
	if err != nil {
		return withCode(exitRuntime, fmt.Errorf("failed to build sources: %w", err))
	}

	lookuper, err := dnsx.New(dnsx.Config{
		Backend:    domain.ResolverBackend(cfg.Resolver.Backend),
		Nameserver: cfg.Resolver.Nameserver,
		Timeout:    cfg.Resolver.LookupTimeout,
	}, logger)
	if err != nil {
		return withCode(exitUsage, err)
	}

	presenter := ui.New(mode)
	defer presenter.Close()

	orch := usecases.NewOrchestrator(usecases.OrchestratorOptions{
		Sources:         sources,
		Logger:          logger,
		Observers:       []ports.Notifier{presenter},
		MaxWorkers:      cfg.Workers,
		Lookuper:        lookuper,
		ResolverWorkers: cfg.Resolver.Workers,
		LookupTimeout:   cfg.Resolver.LookupTimeout,
	})
	if err := applySourceSelection(orch, cfg.Sources); err != nil {
		_ = orch.Close()
		return withCode(exitUsage, err)
	}

	ctx, cancel := rootContextWithSignals(parent, cfg.ScanTimeout)
	defer cancel()

	presenter.Start(ui.ScanInfo{
		Target:       target.Root,
		Sources:      enabledNames(orch),
		Workers:      cfg.Workers,
		Timeout:      cfg.ScanTimeout,
		Resolve:      cfg.Resolve,
		StrictSuffix: cfg.StrictSuffix,
	})

	result, runErr := orch.Run(ctx, target, cfg.Resolve)

	// Pending events reach the presenter before the final render.
	if err := orch.Close(); err != nil {
		logger.Warn("event dispatcher did not drain", "error", err.Error())
	}

	if result == nil {
		presenter.Error(runErr.Error())
		return withCode(exitRuntime, runErr)
	}
	result.Metadata.Version = version

	if runErr != nil {
		logger.Err(runErr, "phase", "run", "elapsed_ms", result.Metadata.Duration.Milliseconds())
		// Continue to emit partial results (useful in pipelines)
	}

	if err := render(mode, presenter, stdout, cfg, result); err != nil {
		return withCode(exitRuntime, fmt.Errorf("render: %w", err))
	}

	if cfg.Output.File != "" {
		if err := export(cfg, result); err != nil {
			presenter.Error(err.Error())
			return withCode(exitRuntime, err)
		}
		logger.Info("results written", "file", cfg.Output.File, "format", cfg.ExportFormat())
	}

	if runErr != nil {
		if domain.IsCanceled(runErr) {
			return withCode(exitCanceled, runErr)
		}
		return withCode(exitRuntime, runErr)
	}
	return nil
}

// applySourceSelection applies --enable-only and --disable. Unknown names are
// reported as errors.
func applySourceSelection(orch *usecases.Orchestrator, sel config.Sources) error {
	if len(sel.EnableOnly) > 0 {
		for _, s := range orch.Sources() {
			s.SetEnabled(false)
		}
		for _, name := range sel.EnableOnly {
			if err := orch.SetEnabled(name, true); err != nil {
				return err
			}
		}
	}
	for _, name := range sel.Disable {
		if err := orch.SetEnabled(name, false); err != nil {
			return err
		}
	}
	return nil
}

func enabledNames(orch *usecases.Orchestrator) []string {
	var names []string
	for _, s := range orch.Sources() {
		if s.Enabled() {
			names = append(names, s.Name())
		}
	}
	return names
}

// render shows the result on the terminal. In quiet mode without an output
// file the hostnames go to stdout one per line, so the command composes with
// other tools.
func render(mode ui.UIMode, presenter ui.Presenter, stdout io.Writer, cfg config.Config, result *domain.ScanResult) error {
	switch mode {
	case ui.UIModePlain:
		return output.WriteTable(stdout, result)
	case ui.UIModeQuiet:
		if cfg.Output.File != "" {
			return nil
		}
		exp, err := output.New(domain.ExportFormatTXT)
		if err != nil {
			return err
		}
		return exp.Export(stdout, result)
	default:
		presenter.Finish(result)
		return nil
	}
}

func export(cfg config.Config, result *domain.ScanResult) error {
	exp, err := output.New(cfg.ExportFormat())
	if err != nil {
		return err
	}
	path := strings.TrimSpace(cfg.Output.File)
	if err := output.WriteFile(path, exp, result); err != nil {
		return fmt.Errorf("%s output: %w", cfg.ExportFormat(), err)
	}
	return nil
}
