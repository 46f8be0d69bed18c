// internal/platform/config/config.go
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"subscanner/internal/core/domain"
)

const envPrefix = "SUBSCANNER_"

type Config struct {
	// App
	Target       string        `yaml:"domain"`
	StrictSuffix bool          `yaml:"strict_suffix"`
	Resolve      bool          `yaml:"resolve"`
	Workers      int           `yaml:"workers"`      // 0 = una unidad por fuente
	ScanTimeout  time.Duration `yaml:"scan_timeout"` // 0 = sin timeout

	// ConfigFile ruta del YAML cargado (si hubo)
	ConfigFile string `yaml:"-"`

	Sources  Sources  `yaml:"sources"`
	HTTP     HTTP     `yaml:"http"`
	Resolver Resolver `yaml:"resolver"`
	Output   Output   `yaml:"output"`
	UI       UI       `yaml:"ui"`

	LogLevel string `yaml:"log_level"`
	Silent   bool   `yaml:"silent"`
}

type Sources struct {
	Disable    []string `yaml:"disable"`
	EnableOnly []string `yaml:"enable_only"`
}

type HTTP struct {
	Timeout     time.Duration `yaml:"timeout"`
	UserAgent   string        `yaml:"user_agent"`
	MaxRetries  int           `yaml:"max_retries"`
	GracePeriod time.Duration `yaml:"grace_period"`
}

type Resolver struct {
	Backend       string        `yaml:"backend"`
	Nameserver    string        `yaml:"nameserver"`
	Workers       int           `yaml:"workers"`
	LookupTimeout time.Duration `yaml:"lookup_timeout"`
}

type Output struct {
	File   string `yaml:"file"`
	Format string `yaml:"format"` // vacío = inferir por extensión
}

type UI struct {
	Mode    string `yaml:"mode"`
	NoColor bool   `yaml:"no_color"`
}

// DefaultConfig retorna una configuración por defecto.
func DefaultConfig() Config {
	return Config{
		Workers:     0,
		ScanTimeout: 0,

		HTTP: HTTP{
			Timeout:     30 * time.Second,
			UserAgent:   "Mozilla/5.0 (Windows NT 10.0; Win64; x64) subscanner/1.0",
			MaxRetries:  0,
			GracePeriod: 5 * time.Second,
		},

		Resolver: Resolver{
			Backend:       string(domain.ResolverBackendSystem),
			Nameserver:    "8.8.8.8:53",
			Workers:       50,
			LookupTimeout: 5 * time.Second,
		},

		UI: UI{
			Mode: "pretty",
		},

		LogLevel: "info",
	}
}

// LoadFile mezcla un archivo YAML sobre cfg. Las claves ausentes conservan su valor.
func LoadFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	cfg.ConfigFile = path
	return nil
}

// loadFromEnv carga configuración desde variables de entorno SUBSCANNER_*.
func loadFromEnv(cfg *Config) {
	if v := getenv(envPrefix+"DOMAIN", ""); v != "" {
		cfg.Target = v
	}
	if v := getenv(envPrefix+"STRICT_SUFFIX", ""); v != "" {
		cfg.StrictSuffix = parseBool(v)
	}
	if v := getenv(envPrefix+"RESOLVE", ""); v != "" {
		cfg.Resolve = parseBool(v)
	}
	if v := getenv(envPrefix+"WORKERS", ""); v != "" {
		cfg.Workers = parseInt(v, cfg.Workers)
	}
	if v := getenv(envPrefix+"SCAN_TIMEOUT", ""); v != "" {
		cfg.ScanTimeout = parseDuration(v, cfg.ScanTimeout)
	}

	// Sources: listas separadas por comas
	if v := getenv(envPrefix+"DISABLE", ""); v != "" {
		cfg.Sources.Disable = parseList(v)
	}
	if v := getenv(envPrefix+"ENABLE_ONLY", ""); v != "" {
		cfg.Sources.EnableOnly = parseList(v)
	}

	// HTTP
	if v := getenv(envPrefix+"HTTP_TIMEOUT", ""); v != "" {
		cfg.HTTP.Timeout = parseDuration(v, cfg.HTTP.Timeout)
	}
	if v := getenv(envPrefix+"USER_AGENT", ""); v != "" {
		cfg.HTTP.UserAgent = v
	}
	if v := getenv(envPrefix+"RETRIES", ""); v != "" {
		cfg.HTTP.MaxRetries = parseInt(v, cfg.HTTP.MaxRetries)
	}
	if v := getenv(envPrefix+"GRACE", ""); v != "" {
		cfg.HTTP.GracePeriod = parseDuration(v, cfg.HTTP.GracePeriod)
	}

	// Resolver
	if v := getenv(envPrefix+"RESOLVER", ""); v != "" {
		cfg.Resolver.Backend = v
	}
	if v := getenv(envPrefix+"NAMESERVER", ""); v != "" {
		cfg.Resolver.Nameserver = v
	}
	if v := getenv(envPrefix+"RESOLVER_WORKERS", ""); v != "" {
		cfg.Resolver.Workers = parseInt(v, cfg.Resolver.Workers)
	}
	if v := getenv(envPrefix+"LOOKUP_TIMEOUT", ""); v != "" {
		cfg.Resolver.LookupTimeout = parseDuration(v, cfg.Resolver.LookupTimeout)
	}

	// Output
	if v := getenv(envPrefix+"OUTPUT", ""); v != "" {
		cfg.Output.File = v
	}
	if v := getenv(envPrefix+"FORMAT", ""); v != "" {
		cfg.Output.Format = v
	}

	// UI / logging
	if v := getenv(envPrefix+"UI", ""); v != "" {
		cfg.UI.Mode = v
	}
	if v := getenv(envPrefix+"NO_COLOR", ""); v != "" {
		cfg.UI.NoColor = parseBool(v)
	}
	if v := getenv(envPrefix+"LOG_LEVEL", ""); v != "" {
		cfg.LogLevel = v
	}
	if v := getenv(envPrefix+"SILENT", ""); v != "" {
		cfg.Silent = parseBool(v)
	}
}

func normalize(c *Config) {
	c.Target = strings.TrimSpace(strings.ToLower(strings.TrimSuffix(strings.TrimSpace(c.Target), ".")))
	if c.Workers < 0 {
		c.Workers = 0
	}
	if c.ScanTimeout < 0 {
		c.ScanTimeout = 0
	}
	c.Resolver.Backend = strings.ToLower(strings.TrimSpace(c.Resolver.Backend))
	c.Output.Format = strings.ToLower(strings.TrimSpace(c.Output.Format))
	c.UI.Mode = strings.ToLower(strings.TrimSpace(c.UI.Mode))
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	c.Sources.Disable = cleanNames(c.Sources.Disable)
	c.Sources.EnableOnly = cleanNames(c.Sources.EnableOnly)
}

// YAML serializa la configuración efectiva (útil para debugging).
func (c Config) YAML() (string, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// ExportFormat resuelve el formato de salida: explícito o por extensión.
func (c Config) ExportFormat() domain.ExportFormat {
	if c.Output.Format != "" {
		if f, err := domain.ParseExportFormat(c.Output.Format); err == nil {
			return f
		}
	}
	ext := ""
	if i := strings.LastIndex(c.Output.File, "."); i >= 0 {
		ext = c.Output.File[i+1:]
	}
	if f, err := domain.ParseExportFormat(ext); err == nil {
		return f
	}
	return domain.ExportFormatTXT
}

// Helpers

func getenv(k, def string) string {
	if v, ok := os.LookupEnv(k); ok && v != "" {
		return v
	}
	return def
}

func parseBool(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "t", "true", "y", "yes", "on":
		return true
	default:
		return false
	}
}

func parseInt(v string, def int) int {
	i, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return def
	}
	return i
}

// parseDuration acepta "30s", "1m" o un entero en segundos.
func parseDuration(v string, def time.Duration) time.Duration {
	v = strings.TrimSpace(v)
	if d, err := time.ParseDuration(v); err == nil {
		return d
	}
	if s, err := strconv.Atoi(v); err == nil {
		return time.Duration(s) * time.Second
	}
	return def
}

func parseList(v string) []string {
	return cleanNames(strings.Split(v, ","))
}

// cleanNames recorta, pasa a minúsculas y descarta vacíos y duplicados.
func cleanNames(names []string) []string {
	var out []string
	seen := map[string]bool{}
	for _, n := range names {
		n = strings.ToLower(strings.TrimSpace(n))
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	return out
}
