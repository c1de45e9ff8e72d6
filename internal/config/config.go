package config

import (
	"flag"
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"

	"github.com/atomicstack/dragmenu/internal/app"
)

// Config captures runtime configuration for the application.
type Config struct {
	App      app.Config
	Logging  Logging
	Features Features
	Flags    map[string]string
	Args     []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

type Features struct {
	Verbose bool
}

const (
	envWidth       = "DRAGMENU_WIDTH"
	envHeight      = "DRAGMENU_HEIGHT"
	envShowFooter  = "DRAGMENU_FOOTER"
	envVerbose     = "DRAGMENU_VERBOSE"
	envTrace       = "DRAGMENU_TRACE"
	envLogFile     = "DRAGMENU_LOG_FILE"
	envSeed        = "DRAGMENU_SEED"
	envMetricsAddr = "DRAGMENU_METRICS_ADDR"
)

// moveList collects repeated -move drag:hover flags.
type moveList []app.Move

func (l *moveList) String() string {
	if l == nil {
		return ""
	}
	parts := make([]string, len(*l))
	for i, m := range *l {
		parts[i] = m.String()
	}
	return strings.Join(parts, ",")
}

func (l *moveList) Set(value string) error {
	m, err := ParseMove(value)
	if err != nil {
		return err
	}
	*l = append(*l, m)
	return nil
}

// ParseMove splits a "drag:hover" pair.
func ParseMove(value string) (app.Move, error) {
	drag, hover, ok := strings.Cut(value, ":")
	drag, hover = strings.TrimSpace(drag), strings.TrimSpace(hover)
	if !ok || drag == "" || hover == "" {
		return app.Move{}, fmt.Errorf("move %q must look like drag:hover", value)
	}
	return app.Move{Drag: drag, Hover: hover}, nil
}

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("dragmenu", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	width := fs.Int("width", envOrInt(env, envWidth, 0), "desired viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, 0), "desired viewport height in rows (0 uses terminal height)")
	footer := fs.Bool("footer", envOrBool(env, envShowFooter, false), "enable footer hint row (disabled by default)")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	verbose := fs.Bool("verbose", envOrBool(env, envVerbose, false), "print messages for moves and selections")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")
	seed := fs.String("seed", envOrDefault(env, envSeed, ""), "TOML file with the initial arrangement (built-in seed when empty)")
	metricsAddr := fs.String("metrics-addr", envOrDefault(env, envMetricsAddr, ""), "host:port to serve Prometheus metrics on")
	printTree := fs.Bool("print", false, "print the arrangement as a table instead of starting the UI")
	var moves moveList
	fs.Var(&moves, "move", "apply a drag:hover move before starting (repeatable)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}
	if *height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *height)
	}

	cfg := Config{
		App: app.Config{
			Width:       *width,
			Height:      *height,
			ShowFooter:  *footer,
			Verbose:     *verbose,
			SeedPath:    *seed,
			MetricsAddr: *metricsAddr,
			Print:       *printTree,
			Moves:       []app.Move(moves),
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Features: Features{
			Verbose: *verbose,
		},
		Flags: map[string]string{
			"width":       strconv.Itoa(*width),
			"height":      strconv.Itoa(*height),
			"footer":      strconv.FormatBool(*footer),
			"trace":       strconv.FormatBool(*trace),
			"verbose":     strconv.FormatBool(*verbose),
			"logFile":     *logFile,
			"seed":        *seed,
			"metricsAddr": *metricsAddr,
			"print":       strconv.FormatBool(*printTree),
			"moves":       moves.String(),
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate checks values that parse cleanly but cannot be used.
func Validate(cfg Config) error {
	if addr := cfg.App.MetricsAddr; addr != "" {
		if _, port, err := net.SplitHostPort(addr); err != nil {
			return fmt.Errorf("metrics-addr %q: %w", addr, err)
		} else if port == "" {
			return fmt.Errorf("metrics-addr %q: missing port", addr)
		}
	}
	for _, m := range cfg.App.Moves {
		if _, err := ParseMove(m.String()); err != nil {
			return err
		}
	}
	return nil
}
