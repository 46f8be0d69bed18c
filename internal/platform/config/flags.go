// internal/platform/config/flags.go
package config

import (
	"fmt"

	"github.com/spf13/pflag"
)

// Nombres de flags; también son las claves del switch en applyFlags.
const (
	FlagConfig          = "config"
	FlagDomain          = "domain"
	FlagStrictSuffix    = "strict-suffix"
	FlagResolve         = "resolve"
	FlagWorkers         = "workers"
	FlagScanTimeout     = "scan-timeout"
	FlagDisable         = "disable"
	FlagEnableOnly      = "enable-only"
	FlagHTTPTimeout     = "http-timeout"
	FlagUserAgent       = "user-agent"
	FlagRetries         = "retries"
	FlagGrace           = "grace"
	FlagResolver        = "resolver"
	FlagNameserver      = "nameserver"
	FlagResolverWorkers = "resolver-workers"
	FlagLookupTimeout   = "lookup-timeout"
	FlagOutput          = "output"
	FlagFormat          = "format"
	FlagUI              = "ui"
	FlagNoColor         = "no-color"
	FlagLogLevel        = "log-level"
	FlagSilent          = "silent"
)

// BindFlags registra los flags del escaneo en fs con los valores por defecto.
func BindFlags(fs *pflag.FlagSet) {
	d := DefaultConfig()

	fs.String(FlagConfig, "", "YAML config file")
	fs.StringP(FlagDomain, "d", "", "target domain (e.g., example.com)")
	fs.Bool(FlagStrictSuffix, d.StrictSuffix, "only accept hosts equal to the domain or ending in .domain")
	fs.BoolP(FlagResolve, "r", d.Resolve, "resolve discovered subdomains to an address")
	fs.IntP(FlagWorkers, "w", d.Workers, "max sources queried in parallel (0 = all)")
	fs.Duration(FlagScanTimeout, d.ScanTimeout, "overall scan deadline (0 = none)")

	fs.StringSlice(FlagDisable, nil, "disable a source by name (repeatable)")
	fs.StringSlice(FlagEnableOnly, nil, "run only these sources (comma separated)")

	fs.Duration(FlagHTTPTimeout, d.HTTP.Timeout, "per-request HTTP timeout")
	fs.String(FlagUserAgent, d.HTTP.UserAgent, "User-Agent header sent to every source")
	fs.Int(FlagRetries, d.HTTP.MaxRetries, "retries on 429/502/503/504")
	fs.Duration(FlagGrace, d.HTTP.GracePeriod, "grace period for in-flight requests after cancellation")

	fs.String(FlagResolver, d.Resolver.Backend, "resolver backend: system|dns")
	fs.String(FlagNameserver, d.Resolver.Nameserver, "nameserver for the dns backend (host:port)")
	fs.Int(FlagResolverWorkers, d.Resolver.Workers, "concurrent DNS lookups")
	fs.Duration(FlagLookupTimeout, d.Resolver.LookupTimeout, "per-lookup timeout")

	fs.StringP(FlagOutput, "o", "", "write results to file")
	fs.StringP(FlagFormat, "f", "", "output format: txt|json|csv (default: from file extension)")

	fs.String(FlagUI, d.UI.Mode, "terminal UI: pretty|plain|quiet")
	fs.Bool(FlagNoColor, d.UI.NoColor, "disable colors")
	fs.String(FlagLogLevel, d.LogLevel, "log level: debug|info|warn|error")
	fs.BoolP(FlagSilent, "s", d.Silent, "only log errors")
}

// applyFlags copia sobre cfg solo los flags que el usuario cambió.
func applyFlags(fs *pflag.FlagSet, cfg *Config) error {
	var firstErr error
	set := func(err error) {
		if err != nil && firstErr == nil {
			firstErr = err
		}
	}

	fs.Visit(func(f *pflag.Flag) {
		var err error
		switch f.Name {
		case FlagDomain:
			cfg.Target, err = fs.GetString(f.Name)
		case FlagStrictSuffix:
			cfg.StrictSuffix, err = fs.GetBool(f.Name)
		case FlagResolve:
			cfg.Resolve, err = fs.GetBool(f.Name)
		case FlagWorkers:
			cfg.Workers, err = fs.GetInt(f.Name)
		case FlagScanTimeout:
			cfg.ScanTimeout, err = fs.GetDuration(f.Name)
		case FlagDisable:
			cfg.Sources.Disable, err = fs.GetStringSlice(f.Name)
		case FlagEnableOnly:
			cfg.Sources.EnableOnly, err = fs.GetStringSlice(f.Name)
		case FlagHTTPTimeout:
			cfg.HTTP.Timeout, err = fs.GetDuration(f.Name)
		case FlagUserAgent:
			cfg.HTTP.UserAgent, err = fs.GetString(f.Name)
		case FlagRetries:
			cfg.HTTP.MaxRetries, err = fs.GetInt(f.Name)
		case FlagGrace:
			cfg.HTTP.GracePeriod, err = fs.GetDuration(f.Name)
		case FlagResolver:
			cfg.Resolver.Backend, err = fs.GetString(f.Name)
		case FlagNameserver:
			cfg.Resolver.Nameserver, err = fs.GetString(f.Name)
		case FlagResolverWorkers:
			cfg.Resolver.Workers, err = fs.GetInt(f.Name)
		case FlagLookupTimeout:
			cfg.Resolver.LookupTimeout, err = fs.GetDuration(f.Name)
		case FlagOutput:
			cfg.Output.File, err = fs.GetString(f.Name)
		case FlagFormat:
			cfg.Output.Format, err = fs.GetString(f.Name)
		case FlagUI:
			cfg.UI.Mode, err = fs.GetString(f.Name)
		case FlagNoColor:
			cfg.UI.NoColor, err = fs.GetBool(f.Name)
		case FlagLogLevel:
			cfg.LogLevel, err = fs.GetString(f.Name)
		case FlagSilent:
			cfg.Silent, err = fs.GetBool(f.Name)
		}
		if err != nil {
			set(fmt.Errorf("flag --%s: %w", f.Name, err))
		}
	})
	return firstErr
}

// Load inicializa la configuración por capas:
// defaults -> YAML (--config o SUBSCANNER_CONFIG) -> ENV -> flags cambiados.
// fs puede ser nil (solo defaults, archivo y entorno).
func Load(fs *pflag.FlagSet) (Config, error) {
	cfg := DefaultConfig()

	path := getenv(envPrefix+"CONFIG", "")
	if fs != nil {
		if f := fs.Lookup(FlagConfig); f != nil && f.Changed {
			path = f.Value.String()
		}
	}
	if path != "" {
		if err := LoadFile(&cfg, path); err != nil {
			return cfg, err
		}
	}

	loadFromEnv(&cfg)

	if fs != nil {
		if err := applyFlags(fs, &cfg); err != nil {
			return cfg, err
		}
	}

	normalize(&cfg)
	return cfg, nil
}
